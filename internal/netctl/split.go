package netctl

import (
	"fmt"
	"strings"
)

// SplitCommand splits a command line into argv, honoring single and double
// quotes. No operators or substitution: override commands run a single
// program, not a shell pipeline.
func SplitCommand(line string) ([]string, error) {
	var argv []string
	var current strings.Builder
	var quote byte
	inToken := false

	for i := 0; i < len(line); i++ {
		ch := line[i]
		switch {
		case quote != 0:
			if ch == quote {
				quote = 0
			} else {
				current.WriteByte(ch)
			}
		case ch == '\'' || ch == '"':
			quote = ch
			inToken = true
		case ch == ' ' || ch == '\t':
			if inToken {
				argv = append(argv, current.String())
				current.Reset()
				inToken = false
			}
		default:
			current.WriteByte(ch)
			inToken = true
		}
	}

	if quote != 0 {
		return nil, fmt.Errorf("unterminated %c quote in %q", quote, line)
	}
	if inToken {
		argv = append(argv, current.String())
	}
	return argv, nil
}
