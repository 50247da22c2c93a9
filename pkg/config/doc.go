// Package config handles configuration management for fzf-alt.
//
// Configuration is layered, later layers winning key by key:
//
//  1. embedded defaults (embedded/defaults.toml)
//  2. the user file, $XDG_CONFIG_HOME/fzf-alt/config.toml
//  3. the nearest project-local .fzf-alt.toml
//  4. FZF_ALT_RANKER_* and FZF_ALT_CORPUS_* environment variables
//
// An explicit config file replaces layers 2 and 3. The merged tree is
// decoded into Config and validated once; the filetype table it carries is
// compiled by package rules.
//
// A filetype entry looks like:
//
//	[filetypes.elixir]
//	is_test = '_test.exs$'
//	strip = '(?P<p>[^_\\/]+)_?(\w+)?.exs?$'
package config
