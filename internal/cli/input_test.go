package cli

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSimpleText(t *testing.T) {
	out := &bytes.Buffer{}
	r := bufio.NewReader(strings.NewReader("  hello  \n"))

	got, err := GetSimpleText(r, "Say something", out)
	require.NoError(t, err)
	assert.Equal(t, "hello", got)
	assert.Contains(t, out.String(), "Say something")
}

func TestGetSimpleText_PartialLineAtEOF(t *testing.T) {
	r := bufio.NewReader(strings.NewReader("no newline"))

	got, err := GetSimpleText(r, "p", &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, "no newline", got)
}

func TestGetTextDefault(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		current string
		want    string
	}{
		{name: "empty keeps current", input: "\n", current: "cake", want: "cake"},
		{name: "input replaces current", input: "pie\n", current: "cake", want: "pie"},
		{name: "no current", input: "\nnext\n", current: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := &bytes.Buffer{}
			r := bufio.NewReader(strings.NewReader(tt.input))

			got, err := GetTextDefault(r, "Field", tt.current, out)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)

			if tt.current != "" {
				assert.Contains(t, out.String(), "["+tt.current+"]")
			}
		})
	}
}
