package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/arthur-debert/fzf-alt/pkg/paths"
)

// TestEnvironment is a throwaway project with its own config directory
type TestEnvironment struct {
	ProjectRoot string
	ConfigDir   string
	HomeDir     string

	t *testing.T
}

// NewTestEnvironment creates the directories, points fzf-alt at them and
// changes into the project root
func NewTestEnvironment(t *testing.T) *TestEnvironment {
	t.Helper()

	tempDir := t.TempDir()
	// resolve symlinked temp dirs (macOS /var -> /private/var) so paths compare equal
	if resolved, err := filepath.EvalSymlinks(tempDir); err == nil {
		tempDir = resolved
	}

	env := &TestEnvironment{
		ProjectRoot: filepath.Join(tempDir, "project"),
		ConfigDir:   filepath.Join(tempDir, "config"),
		HomeDir:     filepath.Join(tempDir, "home"),
		t:           t,
	}
	for _, dir := range []string{env.ProjectRoot, env.ConfigDir, env.HomeDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			t.Fatalf("failed to create %s: %v", dir, err)
		}
	}

	t.Setenv(paths.EnvHome, env.HomeDir)
	t.Setenv("XDG_STATE_HOME", filepath.Join(env.HomeDir, ".local", "state"))
	t.Setenv(paths.EnvConfigDir, env.ConfigDir)
	t.Setenv(paths.EnvProjectRoot, env.ProjectRoot)
	for _, name := range []string{"FZF_ALT_RANKER_COMMAND", "FZF_ALT_RANKER_TIMEOUT", "FZF_ALT_CORPUS_COMMAND"} {
		t.Setenv(name, "")
		_ = os.Unsetenv(name)
	}

	Chdir(t, env.ProjectRoot)
	return env
}

// Chdir changes the working directory until the test ends
func Chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatalf("failed to get working directory: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("failed to change to %s: %v", dir, err)
	}
	t.Cleanup(func() { _ = os.Chdir(prev) })
}

// WriteFile writes content to a path relative to the project root and
// returns the absolute path
func (env *TestEnvironment) WriteFile(rel, content string) string {
	env.t.Helper()
	path := filepath.Join(env.ProjectRoot, rel)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		env.t.Fatalf("failed to create directory for %s: %v", rel, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		env.t.Fatalf("failed to write %s: %v", rel, err)
	}
	return path
}

// WriteFileList writes one candidate per line and returns the file's path
func (env *TestEnvironment) WriteFileList(rel string, candidates ...string) string {
	env.t.Helper()
	return env.WriteFile(rel, strings.Join(candidates, "\n")+"\n")
}

// WriteUserConfig writes the per-user config.toml
func (env *TestEnvironment) WriteUserConfig(content string) string {
	env.t.Helper()
	path := filepath.Join(env.ConfigDir, paths.UserConfigFile)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		env.t.Fatalf("failed to write user config: %v", err)
	}
	return path
}

// WriteProjectConfig writes .fzf-alt.toml at the project root
func (env *TestEnvironment) WriteProjectConfig(content string) string {
	env.t.Helper()
	return env.WriteFile(paths.ProjectConfigFile, content)
}
