package corpus

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/arthur-debert/fzf-alt/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tempFile(t *testing.T, content string) *os.File {
	t.Helper()
	path := filepath.Join(t.TempDir(), "candidates")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	f, err := os.Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })
	return f
}

func TestOpen(t *testing.T) {
	ctx := context.Background()

	t.Run("files from path", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "files.txt")
		require.NoError(t, os.WriteFile(path, []byte("lib/a.ex\ntest/a_test.exs\n"), 0644))

		c, err := Open(ctx, Options{FilesFrom: path})
		require.NoError(t, err)
		lines, err := c.ReadLines()
		require.NoError(t, err)
		assert.Equal(t, []string{"lib/a.ex", "test/a_test.exs"}, lines)
	})

	t.Run("files from missing path", func(t *testing.T) {
		_, err := Open(ctx, Options{FilesFrom: filepath.Join(t.TempDir(), "nope")})
		require.Error(t, err)
		assert.Equal(t, errors.ErrFileAccess, errors.GetErrorCode(err))
	})

	t.Run("files from stdin", func(t *testing.T) {
		c, err := Open(ctx, Options{FilesFrom: StdinName, Stdin: tempFile(t, "lib/b.ex\n")})
		require.NoError(t, err)
		lines, err := c.ReadLines()
		require.NoError(t, err)
		assert.Equal(t, []string{"lib/b.ex"}, lines)
	})

	t.Run("files from wins over list command", func(t *testing.T) {
		c, err := Open(ctx, Options{FilesFrom: StdinName, ListCommand: "false", Stdin: tempFile(t, "x\n")})
		require.NoError(t, err)
		lines, err := c.ReadLines()
		require.NoError(t, err)
		assert.Equal(t, []string{"x"}, lines)
	})

	t.Run("piped stdin is used when nothing else is set", func(t *testing.T) {
		c, err := Open(ctx, Options{Stdin: tempFile(t, "lib/piped.ex\n")})
		require.NoError(t, err)
		assert.False(t, c.Inherited())
		lines, err := c.ReadLines()
		require.NoError(t, err)
		assert.Equal(t, []string{"lib/piped.ex"}, lines)
	})

	t.Run("blank list command is ignored", func(t *testing.T) {
		c, err := Open(ctx, Options{ListCommand: "   ", Stdin: tempFile(t, "y\n")})
		require.NoError(t, err)
		lines, err := c.ReadLines()
		require.NoError(t, err)
		assert.Equal(t, []string{"y"}, lines)
	})
}

func TestOpenListCommand(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("relies on POSIX utilities")
	}
	ctx := context.Background()

	t.Run("output becomes the corpus", func(t *testing.T) {
		c, err := Open(ctx, Options{ListCommand: `printf lib/a.ex\nlib/b.ex\n`})
		require.NoError(t, err)
		lines, err := c.ReadLines()
		require.NoError(t, err)
		assert.Equal(t, []string{"lib/a.ex", "lib/b.ex"}, lines)
	})

	t.Run("runs in dir", func(t *testing.T) {
		dir := t.TempDir()
		c, err := Open(ctx, Options{ListCommand: "pwd", Dir: dir})
		require.NoError(t, err)
		lines, err := c.ReadLines()
		require.NoError(t, err)
		require.Len(t, lines, 1)

		want, err := filepath.EvalSymlinks(dir)
		require.NoError(t, err)
		got, err := filepath.EvalSymlinks(strings.TrimSpace(lines[0]))
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("failure is a process error", func(t *testing.T) {
		_, err := Open(ctx, Options{ListCommand: "false"})
		require.Error(t, err)
		assert.Equal(t, errors.ErrProcess, errors.GetErrorCode(err))
		assert.Equal(t, 1, errors.GetErrorDetails(err)["exitCode"])
	})

	t.Run("missing binary", func(t *testing.T) {
		_, err := Open(ctx, Options{ListCommand: "fzf-alt-no-such-lister --all"})
		require.Error(t, err)
		assert.Equal(t, errors.ErrProcess, errors.GetErrorCode(err))
	})
}
