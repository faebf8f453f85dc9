package prompt

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/peterh/liner"
)

// ErrCancelled is returned when the user aborts input.
var ErrCancelled = errors.New("cancelled by user")

// Prompter interface wraps basic prompting functionality for testability
type Prompter interface {
	Prompt(string) (string, error)
	Close() error
}

// LinerPrompter wraps liner.State to implement Prompter interface
type LinerPrompter struct {
	*liner.State
}

// NewLinerPrompter creates a new liner-based prompter
func NewLinerPrompter() Prompter {
	line := liner.NewLiner()
	line.SetCtrlCAborts(true)
	return &LinerPrompter{State: line}
}

// MultiLineInput reads source code from the terminal until two consecutive
// empty lines are entered.
func MultiLineInput(out io.Writer, header string) (string, error) {
	prompter := NewLinerPrompter()
	defer func() { _ = prompter.Close() }()

	return MultiLineInputWithPrompter(prompter, out, header)
}

// MultiLineInputWithPrompter accepts multi-line text input, ending with double
// Enter. Trailing blank lines are not part of the result. EOF ends input
// early; EOF before any text, or an abort, returns ErrCancelled.
func MultiLineInputWithPrompter(prompter Prompter, out io.Writer, header string) (string, error) {
	_, _ = color.New(color.FgCyan).Fprintf(out, "%s (Press Enter twice when done)\n", header)

	lines := make([]string, 0, 10) // pre-allocate with initial capacity
	emptyLineCount := 0

	for {
		input, err := prompter.Prompt(color.YellowString("  "))
		if err != nil {
			if errors.Is(err, io.EOF) && len(lines) > 0 {
				break
			}
			if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
				return "", ErrCancelled
			}
			return "", fmt.Errorf("multi-line input failed: %w", err)
		}

		if input == "" {
			emptyLineCount++
			if emptyLineCount >= 2 {
				break
			}
		} else {
			emptyLineCount = 0
		}

		lines = append(lines, input)
	}

	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines) == 0 {
		return "", nil
	}

	return strings.Join(lines, "\n") + "\n", nil
}
