// Package paths provides centralized path handling for fzf-alt.
//
// It resolves the project root the alternate lookup runs in and the
// locations configuration is read from:
//
//   - Project root: FZF_ALT_PROJECT_ROOT, else the enclosing git
//     repository, else the current directory
//   - User config: $FZF_ALT_CONFIG_DIR or $XDG_CONFIG_HOME/fzf-alt, holding
//     config.toml
//   - Project config: the nearest .fzf-alt.toml between the working
//     directory and the project root
//
// # Usage
//
//	p, err := paths.New("")
//	if err != nil {
//	    return err
//	}
//
//	p.ProjectRoot()       // /home/user/src/app
//	p.UserConfigPath()    // /home/user/.config/fzf-alt/config.toml
//	p.ProjectConfigPath() // /home/user/src/app/.fzf-alt.toml, or ""
package paths
