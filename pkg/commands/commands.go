// Package commands provides the command implementations behind the CLI.
//
// It coordinates paths, configuration, corpus selection and the resolver so
// that the cobra layer only parses flags and renders results. Each command
// lives in its own subdirectory:
//   - resolve/   - Resolve, the default command
//   - rules/     - ListRules
//   - genconfig/ - GenConfig
package commands

import (
	"context"

	"github.com/arthur-debert/fzf-alt/pkg/commands/genconfig"
	"github.com/arthur-debert/fzf-alt/pkg/commands/resolve"
	"github.com/arthur-debert/fzf-alt/pkg/commands/rules"
	"github.com/arthur-debert/fzf-alt/pkg/resolver"
	"github.com/arthur-debert/fzf-alt/pkg/ui/display"
)

// Resolve finds the alternate of a file
type ResolveOptions = resolve.Options

func Resolve(ctx context.Context, opts ResolveOptions) (*resolver.Result, error) {
	return resolve.Resolve(ctx, opts)
}

// ListRules loads the configuration and lists its filetype rules
type ListRulesOptions = rules.Options

func ListRules(opts ListRulesOptions) (*display.RuleListing, error) {
	return rules.ListRules(opts)
}

// GenConfig prints or writes a starter configuration file
type GenConfigOptions = genconfig.Options

func GenConfig(opts GenConfigOptions) (*genconfig.Result, error) {
	return genconfig.GenConfig(opts)
}
