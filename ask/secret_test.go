package ask

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Pipes are not terminals, so these tests exercise the plain-read fallback.
// The no-echo path needs a real TTY and is covered by manual testing.

func TestSecret_NonTerminalFallback(t *testing.T) {
	oldStdin := os.Stdin
	defer func() { os.Stdin = oldStdin }()

	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdin = r

	go func() {
		defer w.Close()
		w.Write([]byte("hunter2\n"))
	}()

	secret, err := Secret("API token")
	require.NoError(t, err)
	assert.Equal(t, "hunter2", secret)
}

func TestSecret_StreamClosed(t *testing.T) {
	oldStdin := os.Stdin
	defer func() { os.Stdin = oldStdin }()

	r, w, err := os.Pipe()
	require.NoError(t, err)
	w.Close()
	os.Stdin = r

	_, err = Secret("API token")
	assert.ErrorIs(t, err, ErrClosed)
}
