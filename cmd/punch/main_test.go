package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_PunchInThenOut(t *testing.T) {
	// --- Arrange ---
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("PUNCH_CONFIG", "")
	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}

	// --- Act ---
	inCode := run([]string{"in"}, stdout, stderr)
	outCode := run([]string{"out"}, stdout, stderr)

	// --- Assert ---
	require.Equal(t, 0, inCode, stderr.String())
	require.Equal(t, 0, outCode, stderr.String())
	assert.Contains(t, stdout.String(), "Punched in at")
	assert.Contains(t, stdout.String(), "Punched out at")

	data, err := os.ReadFile(filepath.Join(home, ".punch", "punch.log"))
	require.NoError(t, err)
	assert.Len(t, bytes.Split(bytes.TrimSpace(data), []byte("\n")), 2)
}

func TestRun_UnknownCommand(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}

	code := run([]string{"sideways"}, stdout, stderr)

	assert.Equal(t, 2, code)
	assert.Empty(t, stdout.String())
	assert.Contains(t, stderr.String(), "Usage:")
}
