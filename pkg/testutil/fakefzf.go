package testutil

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

// Environment variables read by the fake fzf
const (
	// FakeFzfMode selects a failure: "fail" exits 2, "hang" never finishes
	FakeFzfMode = "FAKE_FZF_MODE"
	// FakeFzfArgs names a file that receives the arguments, one per line
	FakeFzfArgs = "FAKE_FZF_ARGS"
)

// fakeFzf keeps the stdin lines containing the --filter query, in order,
// and exits 1 when none do, as fzf does
const fakeFzf = `#!/bin/sh
if [ -n "$FAKE_FZF_ARGS" ]; then
  printf '%s\n' "$@" > "$FAKE_FZF_ARGS"
fi
case "$FAKE_FZF_MODE" in
  fail)
    echo "unknown option" >&2
    exit 2
    ;;
  hang)
    exec sleep 5
    ;;
esac
grep -F -- "$2"
`

// WriteFakeFzf writes an executable fzf stand-in and returns its path. The
// test is skipped where there is no POSIX shell.
func WriteFakeFzf(t *testing.T) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("fake fzf is a shell script")
	}
	path := filepath.Join(t.TempDir(), "fzf")
	if err := os.WriteFile(path, []byte(fakeFzf), 0755); err != nil {
		t.Fatalf("failed to write fake fzf: %v", err)
	}
	return path
}
