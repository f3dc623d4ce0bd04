package netctl

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestSplitCommand(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		want    []string
		wantErr bool
	}{
		{name: "plain", line: "ipconfig /release", want: []string{"ipconfig", "/release"}},
		{name: "extra whitespace", line: "  nmcli   networking off ", want: []string{"nmcli", "networking", "off"}},
		{name: "double quoted service name", line: `networksetup -setnetworkserviceenabled "Thunderbolt Ethernet" off`, want: []string{"networksetup", "-setnetworkserviceenabled", "Thunderbolt Ethernet", "off"}},
		{name: "single quoted", line: `sh -c 'echo hi'`, want: []string{"sh", "-c", "echo hi"}},
		{name: "adjacent quote joins token", line: `cmd a"b c"d`, want: []string{"cmd", "ab cd"}},
		{name: "empty", line: "", want: nil},
		{name: "unterminated quote", line: `cmd "oops`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SplitCommand(tt.line)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("SplitCommand(%q) succeeded, want error", tt.line)
				}
				return
			}
			if err != nil {
				t.Fatalf("SplitCommand(%q) failed: %v", tt.line, err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("SplitCommand(%q) = %v, want %v", tt.line, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Fatalf("SplitCommand(%q) = %v, want %v", tt.line, got, tt.want)
				}
			}
		})
	}
}

func TestNewRejectsUnparsableOverride(t *testing.T) {
	if _, err := New(`bad "quote`, ""); err == nil {
		t.Fatal("New with unterminated quote should fail")
	}
	if _, err := New("", `also "bad`); err == nil {
		t.Fatal("New with bad enable override should fail")
	}
}

func TestSetOverridesKeepsPreviousOnError(t *testing.T) {
	c, err := New("true-disable", "true-enable")
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if err := c.SetOverrides(`broken "`, ""); err == nil {
		t.Fatal("SetOverrides with bad command should fail")
	}

	if got := c.commandFor(true); len(got) != 1 || got[0] != "true-disable" {
		t.Fatalf("disable argv after failed override = %v, want previous", got)
	}
}

func TestRunMissingBinaryReturnsCommandError(t *testing.T) {
	c, err := New("lagswitch-test-no-such-binary --off", "lagswitch-test-no-such-binary --on")
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	runErr := c.Disable(context.Background())
	if runErr == nil {
		t.Fatal("Disable with missing binary should fail")
	}

	var cmdErr *CommandError
	if !errors.As(runErr, &cmdErr) {
		t.Fatalf("error type = %T, want *CommandError", runErr)
	}
	if !strings.Contains(cmdErr.Command, "lagswitch-test-no-such-binary") {
		t.Fatalf("CommandError.Command = %q, want attempted command line", cmdErr.Command)
	}
	if cmdErr.Unwrap() == nil {
		t.Fatal("CommandError should wrap the underlying error")
	}
}

func TestCommandErrorMessage(t *testing.T) {
	e := &CommandError{Command: "ipconfig /release", Output: "access denied", Err: errors.New("exit status 1")}
	msg := e.Error()
	for _, want := range []string{"ipconfig /release", "exit status 1", "access denied"} {
		if !strings.Contains(msg, want) {
			t.Fatalf("Error() = %q, missing %q", msg, want)
		}
	}
}
