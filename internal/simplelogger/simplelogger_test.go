package simplelogger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLog_WritesAndAppends(t *testing.T) {
	t.Setenv(EnvVar, filepath.Join(t.TempDir(), "filediff.log"))

	Log("open %s", "a.bin")
	Log("size %d\n", 123)

	b, err := os.ReadFile(os.Getenv(EnvVar))
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(string(b), "\n"), "\n")
	require.Len(t, lines, 2)
	require.True(t, strings.HasSuffix(lines[0], " open a.bin"), lines[0])
	require.True(t, strings.HasSuffix(lines[1], " size 123"), lines[1])
}

func TestLog_NoOpWhenUnset(t *testing.T) {
	t.Setenv(EnvVar, "")
	Log("should not %s", "panic")
}

func TestLog_NoOpWhenPathIsDirectory(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(EnvVar, dir)

	Log("ignored %d", 1)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Empty(t, entries)
}
