package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/require"

	"github.com/roach88/punch/internal/testutil"
)

// monday09 is 2024-03-04 09:00 UTC, a Monday.
var monday09 = time.Date(2024, 3, 4, 9, 0, 0, 0, time.UTC)

// setupHome points HOME at a temp dir so the default log lands there.
// Returns the default log path.
func setupHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	for _, k := range []string{"PUNCH_CONFIG", "PUNCH_STORE", "PUNCH_LOG_PATH", "PUNCH_DB_PATH", "PUNCH_LOG_LEVEL"} {
		t.Setenv(k, "")
	}
	return filepath.Join(home, ".punch", "punch.log")
}

// writeLog writes raw log content to path, creating parent directories.
func writeLog(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

type result struct {
	code   int
	stdout string
	stderr string
}

// runCLI executes the punch CLI against clock.
func runCLI(t *testing.T, clock *testutil.FakeClock, args ...string) result {
	t.Helper()
	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	opts := &RootOptions{}
	if clock != nil {
		opts.Clock = clock
	}
	code := Execute(context.Background(), args, stdout, stderr, opts)
	return result{code: code, stdout: stdout.String(), stderr: stderr.String()}
}

func assertGolden(t *testing.T, name, got string) {
	t.Helper()
	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, name, []byte(got))
}
