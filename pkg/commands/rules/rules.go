package rules

import (
	"github.com/arthur-debert/fzf-alt/pkg/config"
	"github.com/arthur-debert/fzf-alt/pkg/logging"
	"github.com/arthur-debert/fzf-alt/pkg/paths"
	ruletable "github.com/arthur-debert/fzf-alt/pkg/rules"
	"github.com/arthur-debert/fzf-alt/pkg/ui/display"
)

// Options selects the configuration to list
type Options struct {
	ProjectRoot string
	ConfigFile  string
}

// ListRules loads and compiles the configuration and returns its rules in
// filetype order. A pattern that does not compile fails the listing.
func ListRules(opts Options) (*display.RuleListing, error) {
	logger := logging.GetLogger("commands.rules")

	p, err := paths.New(opts.ProjectRoot)
	if err != nil {
		return nil, err
	}

	cfg, err := config.Load(config.LoadOptions{Paths: p, ConfigFile: opts.ConfigFile})
	if err != nil {
		return nil, err
	}

	table, err := ruletable.Compile(cfg.Filetypes)
	if err != nil {
		return nil, err
	}

	listing := &display.RuleListing{
		Rules:   []display.RuleRow{},
		Sources: append([]string{}, cfg.Sources...),
	}
	for _, name := range table.Names() {
		rule := table[name]
		if !rule.HasKeyGroup() {
			logger.Warn().
				Str("filetype", name).
				Str("strip", rule.StripPattern.String()).
				Msg("Strip pattern has no (?P<p>...) group, file names will be searched as-is")
		}
		listing.Rules = append(listing.Rules, display.RuleRow{
			Filetype: name,
			IsTest:   rule.TestPattern.String(),
			Strip:    rule.StripPattern.String(),
		})
	}

	logger.Debug().Int("filetypes", len(listing.Rules)).Msg("Listed rules")
	return listing, nil
}
