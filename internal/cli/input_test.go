package cli

import (
	"bufio"
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSimpleText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain line", "Alice Johnson\n", "Alice Johnson"},
		{"surrounding spaces trimmed", "  E101  \n", "E101"},
		{"partial line before EOF", "no newline", "no newline"},
		{"empty line", "\n", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			got, err := GetSimpleText(bufio.NewReader(strings.NewReader(tt.input)), "Full name", &out)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Contains(t, out.String(), "Full name")
		})
	}
}

func TestGetSimpleTextEOF(t *testing.T) {
	var out bytes.Buffer
	_, err := GetSimpleText(bufio.NewReader(strings.NewReader("")), "Email", &out)
	assert.ErrorIs(t, err, io.EOF)
}

func TestGetChoice(t *testing.T) {
	var out bytes.Buffer
	reader := bufio.NewReader(strings.NewReader("MAYBE\nPRESENT\n"))
	got, err := GetChoice(reader, "Status", []string{"PRESENT", "ABSENT"}, &out)
	require.NoError(t, err)
	assert.Equal(t, "PRESENT", got)
	assert.Contains(t, out.String(), "Please enter one of: PRESENT, ABSENT")
}

func TestGetChoiceEOF(t *testing.T) {
	var out bytes.Buffer
	_, err := GetChoice(bufio.NewReader(strings.NewReader("")), "Status", []string{"PRESENT", "ABSENT"}, &out)
	assert.ErrorIs(t, err, io.EOF)
}

func TestGetPassword(t *testing.T) {
	orig := readPassword
	readPassword = func(fd int) ([]byte, error) { return []byte("admin123"), nil }
	defer func() { readPassword = orig }()

	var out bytes.Buffer
	pw, err := GetPassword(&out)
	require.NoError(t, err)
	assert.Equal(t, []byte("admin123"), pw)
	assert.Contains(t, out.String(), "Enter password:")
}
