package paths

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/fzf-alt/pkg/errors"
)

// Environment variable names
const (
	// EnvProjectRoot pins the project root instead of asking git
	EnvProjectRoot = "FZF_ALT_PROJECT_ROOT"

	// EnvConfigDir overrides the XDG config directory for fzf-alt
	EnvConfigDir = "FZF_ALT_CONFIG_DIR"

	// EnvHome is the standard home directory variable
	EnvHome = "HOME"
)

const (
	// AppDirName is the directory name for fzf-alt specific files
	AppDirName = "fzf-alt"

	// UserConfigFile is the name of the per-user configuration file
	UserConfigFile = "config.toml"

	// ProjectConfigFile is the name of the project-local override
	ProjectConfigFile = ".fzf-alt.toml"
)

// Paths provides centralized path management for fzf-alt
type Paths interface {
	ProjectRoot() string
	WorkDir() string
	ConfigDir() string
	UserConfigPath() string
	ProjectConfigPath() string
}

type paths struct {
	projectRoot string
	workDir     string
	configDir   string
}

// New creates a Paths instance. If projectRoot is empty it is determined
// from the environment, git, or the working directory, in that order.
func New(projectRoot string) (Paths, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to get current directory")
	}

	p := &paths{workDir: cwd}

	if projectRoot == "" {
		projectRoot = findProjectRoot(cwd)
	}
	absRoot, err := filepath.Abs(expandHome(projectRoot))
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to get absolute path for project root")
	}
	p.projectRoot = absRoot

	if dir := os.Getenv(EnvConfigDir); dir != "" {
		p.configDir = expandHome(dir)
	} else {
		p.configDir = filepath.Join(xdg.ConfigHome, AppDirName)
	}

	return p, nil
}

// findProjectRoot uses the following priority:
// 1. FZF_ALT_PROJECT_ROOT
// 2. git repository root ('git rev-parse --show-toplevel')
// 3. the current working directory
func findProjectRoot(cwd string) string {
	if root := os.Getenv(EnvProjectRoot); root != "" {
		return root
	}

	if gitRoot, err := findGitRoot(cwd); err == nil && gitRoot != "" {
		return gitRoot
	}

	return cwd
}

// findGitRoot attempts to find the root of the git repository containing dir
func findGitRoot(dir string) (string, error) {
	cmd := exec.Command("git", "rev-parse", "--show-toplevel")
	cmd.Dir = dir

	output, err := cmd.Output()
	if err != nil {
		return "", err
	}

	gitRoot := strings.TrimSpace(string(output))
	if gitRoot == "" {
		return "", errors.New(errors.ErrFileAccess, "git root is empty")
	}
	return gitRoot, nil
}

// expandHome expands ~ to the home directory
func expandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = os.Getenv(EnvHome)
		if homeDir == "" {
			return path
		}
	}

	if len(path) == 1 {
		return homeDir
	}

	if path[1] == '/' || path[1] == filepath.Separator {
		return filepath.Join(homeDir, path[2:])
	}

	// ~something (not the user's home)
	return path
}

// ProjectRoot returns the root directory of the current project
func (p *paths) ProjectRoot() string {
	return p.projectRoot
}

// WorkDir returns the directory fzf-alt was started from
func (p *paths) WorkDir() string {
	return p.workDir
}

// ConfigDir returns the config directory for fzf-alt
func (p *paths) ConfigDir() string {
	return p.configDir
}

// UserConfigPath returns the per-user config file path, whether or not it exists
func (p *paths) UserConfigPath() string {
	return filepath.Join(p.configDir, UserConfigFile)
}

// ProjectConfigPath returns the nearest .fzf-alt.toml from the working
// directory up to the project root, or "" when there is none.
func (p *paths) ProjectConfigPath() string {
	dir := p.workDir
	for {
		candidate := filepath.Join(dir, ProjectConfigFile)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate
		}

		if dir == p.projectRoot {
			return ""
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		// Stop once we leave the project
		if rel, err := filepath.Rel(p.projectRoot, parent); err != nil || strings.HasPrefix(rel, "..") {
			return ""
		}
		dir = parent
	}
}
