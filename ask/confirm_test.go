package ask

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfirm_Answers(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		defaultYes bool
		want       bool
	}{
		{"y", "y\n", false, true},
		{"yes", "yes\n", false, true},
		{"uppercase YES", "YES\n", false, true},
		{"no", "no\n", true, false},
		{"anything else", "whatever\n", true, false},
		{"empty uses default yes", "\n", true, true},
		{"empty uses default no", "\n", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			got, err := confirm(strings.NewReader(tt.input), &out, "Continue?", tt.defaultYes)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestConfirm_Hint(t *testing.T) {
	var out bytes.Buffer
	_, err := confirm(strings.NewReader("y\n"), &out, "Continue?", true)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Continue?")
	assert.Contains(t, out.String(), "[Y/n]")

	out.Reset()
	_, err = confirm(strings.NewReader("y\n"), &out, "Continue?", false)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "[y/N]")
}

func TestConfirm_StreamClosed(t *testing.T) {
	var out bytes.Buffer
	_, err := confirm(strings.NewReader(""), &out, "Continue?", false)
	assert.ErrorIs(t, err, ErrClosed)
}
