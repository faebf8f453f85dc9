package prompt

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/peterh/liner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockPrompter replays scripted responses, then returns err.
type mockPrompter struct {
	err       error
	responses []string
	calls     int
	closed    bool
}

func (m *mockPrompter) Prompt(string) (string, error) {
	if m.calls >= len(m.responses) {
		m.calls++
		return "", m.err
	}
	resp := m.responses[m.calls]
	m.calls++
	return resp, nil
}

func (m *mockPrompter) Close() error {
	m.closed = true
	return nil
}

func init() {
	color.NoColor = true
}

func TestMultiLineInputWithPrompter(t *testing.T) {
	t.Parallel()

	errBoom := errors.New("boom")

	tests := []struct {
		name      string
		err       error
		wantErrIs error
		want      string
		responses []string
		wantErr   bool
	}{
		{
			name:      "ends on two empty lines",
			responses: []string{"class A {", "", "}", "", ""},
			want:      "class A {\n\n}\n",
		},
		{
			name:      "EOF after text ends input",
			responses: []string{"var x = 1;"},
			err:       io.EOF,
			want:      "var x = 1;\n",
		},
		{
			name:      "EOF before text cancels",
			err:       io.EOF,
			wantErr:   true,
			wantErrIs: ErrCancelled,
		},
		{
			name:      "ctrl-c cancels",
			responses: []string{"x"},
			err:       liner.ErrPromptAborted,
			wantErr:   true,
			wantErrIs: ErrCancelled,
		},
		{
			name:      "other errors are wrapped",
			err:       errBoom,
			wantErr:   true,
			wantErrIs: errBoom,
		},
		{
			name:      "only blank lines",
			responses: []string{"", ""},
			want:      "",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var out strings.Builder
			prompter := &mockPrompter{responses: tt.responses, err: tt.err}

			got, err := MultiLineInputWithPrompter(prompter, &out, "Your code:")
			if tt.wantErr {
				require.ErrorIs(t, err, tt.wantErrIs)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Contains(t, out.String(), "Your code: (Press Enter twice when done)")
		})
	}
}

func TestMultiLineInputWithPrompter_StopsReading(t *testing.T) {
	t.Parallel()

	prompter := &mockPrompter{responses: []string{"a", "", "", "never read"}}

	got, err := MultiLineInputWithPrompter(prompter, io.Discard, "Code")

	require.NoError(t, err)
	assert.Equal(t, "a\n", got)
	assert.Equal(t, 3, prompter.calls)
}
