package gridconv

import (
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// CaptureOutput runs command with os.Stdout redirected and returns what it
// printed.
func CaptureOutput(t *testing.T, command func()) string {
	t.Helper()

	var oldStdout = os.Stdout
	defer func() {
		os.Stdout = oldStdout
	}()

	var r, w, _ = os.Pipe()
	os.Stdout = w

	var done = make(chan []byte)
	go func() {
		var outputBytes, _ = io.ReadAll(r)
		done <- outputBytes
	}()

	command()

	w.Close() //nolint:gosec

	os.Stdout = oldStdout

	return string(<-done)
}

// AssertOutputContains checks that command prints each of the expected
// strings.
func AssertOutputContains(t *testing.T, command func(), expectedOutputContains ...string) {
	t.Helper()

	var outputString = CaptureOutput(t, command)

	for _, expected := range expectedOutputContains {
		assert.Contains(t, outputString, expected)
	}
}

// WithStdin runs command with input available on os.Stdin.
func WithStdin(t *testing.T, input string, command func()) {
	t.Helper()

	var oldStdin = os.Stdin
	defer func() {
		os.Stdin = oldStdin
	}()

	var r, w, err = os.Pipe()
	require.NoError(t, err)

	go func() {
		_, _ = io.WriteString(w, input)
		w.Close() //nolint:gosec
	}()

	os.Stdin = r

	command()
}
