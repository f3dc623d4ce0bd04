// Package netctl flips host network connectivity by shelling out to the
// platform's network utility. Commands run synchronously; a non-zero exit or
// spawn failure surfaces as a *CommandError and is never retried here.
package netctl

import (
	"context"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"
	"sync"

	"github.com/TFury30/LagSwitch/internal/procutil"
)

// CommandError reports a failed network toggle command.
type CommandError struct {
	Command string // the command line that was attempted
	Output  string // trimmed combined output, may be empty
	Err     error  // exit status or spawn error
}

func (e *CommandError) Error() string {
	if e.Output != "" {
		return fmt.Sprintf("command %q failed: %v: %s", e.Command, e.Err, e.Output)
	}
	return fmt.Sprintf("command %q failed: %v", e.Command, e.Err)
}

func (e *CommandError) Unwrap() error { return e.Err }

// Controller implements the connectivity toggler on top of OS commands.
// Command overrides may be swapped at runtime (settings live-reload); the
// transition worker serializes the actual invocations.
type Controller struct {
	mu          sync.Mutex
	disableArgv []string
	enableArgv  []string
}

// New builds a Controller. Empty override strings select the platform
// default commands; non-empty ones are split with shell-style quoting.
func New(disableOverride, enableOverride string) (*Controller, error) {
	c := &Controller{}
	if err := c.SetOverrides(disableOverride, enableOverride); err != nil {
		return nil, err
	}
	return c, nil
}

// SetOverrides replaces the active command pair. Invalid override strings
// leave the previous commands in place.
func (c *Controller) SetOverrides(disableOverride, enableOverride string) error {
	disableArgv, err := resolveCommand(disableOverride, defaultDisableCommand)
	if err != nil {
		return fmt.Errorf("disable command: %w", err)
	}
	enableArgv, err := resolveCommand(enableOverride, defaultEnableCommand)
	if err != nil {
		return fmt.Errorf("enable command: %w", err)
	}

	c.mu.Lock()
	c.disableArgv = disableArgv
	c.enableArgv = enableArgv
	c.mu.Unlock()
	return nil
}

func resolveCommand(override, fallback string) ([]string, error) {
	source := strings.TrimSpace(override)
	if source == "" {
		source = fallback
	}
	argv, err := SplitCommand(source)
	if err != nil {
		return nil, err
	}
	if len(argv) == 0 {
		return nil, fmt.Errorf("command is empty")
	}
	return argv, nil
}

// Disable cuts network connectivity (e.g. "ipconfig /release").
func (c *Controller) Disable(ctx context.Context) error {
	return c.run(ctx, c.commandFor(true))
}

// Enable restores network connectivity (e.g. "ipconfig /renew").
func (c *Controller) Enable(ctx context.Context) error {
	return c.run(ctx, c.commandFor(false))
}

func (c *Controller) commandFor(disable bool) []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	if disable {
		return c.disableArgv
	}
	return c.enableArgv
}

func (c *Controller) run(ctx context.Context, argv []string) error {
	line := strings.Join(argv, " ")
	slog.Debug("[netctl] running command", "command", line)

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	procutil.HideWindow(cmd)

	out, err := cmd.CombinedOutput()
	if err != nil {
		return &CommandError{
			Command: line,
			Output:  strings.TrimSpace(string(out)),
			Err:     err,
		}
	}
	return nil
}
