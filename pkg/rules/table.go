package rules

import (
	"regexp"
	"sort"

	"github.com/arthur-debert/fzf-alt/pkg/config"
	"github.com/arthur-debert/fzf-alt/pkg/errors"
	"github.com/arthur-debert/fzf-alt/pkg/logging"
)

// Table maps filetype identifiers to compiled rules. Lookups are
// case-sensitive.
type Table map[string]*Rule

// Compile builds a Table from raw filetype configuration. Every pattern is
// compiled up front; the first failure, in filetype order, is returned.
func Compile(filetypes map[string]config.FiletypeConfig) (Table, error) {
	logger := logging.GetLogger("rules")

	names := make([]string, 0, len(filetypes))
	for name := range filetypes {
		names = append(names, name)
	}
	sort.Strings(names)

	table := make(Table, len(filetypes))
	for _, name := range names {
		ft := filetypes[name]

		testPattern, err := compilePattern(name, "is_test", ft.IsTest)
		if err != nil {
			return nil, err
		}
		stripPattern, err := compilePattern(name, "strip", ft.Strip)
		if err != nil {
			return nil, err
		}

		// resolution stays quiet; the rules command reports this at warn level
		if stripPattern.SubexpIndex(KeyGroup) < 0 {
			logger.Debug().
				Str("filetype", name).
				Str("strip", ft.Strip).
				Msg("Strip pattern has no (?P<p>...) group, file names will be searched as-is")
		}

		table[name] = &Rule{
			Filetype:     name,
			TestPattern:  testPattern,
			StripPattern: stripPattern,
		}
	}

	logger.Debug().Strs("filetypes", names).Msg("Compiled rule table")
	return table, nil
}

func compilePattern(filetype, field, pattern string) (*regexp.Regexp, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrPatternCompile,
			"filetype %q: %s pattern does not compile", filetype, field).
			WithDetail("filetype", filetype).
			WithDetail("field", field).
			WithDetail("pattern", pattern)
	}
	return re, nil
}

// Lookup returns the rule for filetype
func (t Table) Lookup(filetype string) (*Rule, error) {
	rule, ok := t[filetype]
	if !ok {
		return nil, errors.Newf(errors.ErrUnknownFiletype, "%s not found in fzf-alt config", filetype).
			WithDetail("filetype", filetype)
	}
	return rule, nil
}

// Names returns the filetypes in sorted order
func (t Table) Names() []string {
	names := make([]string, 0, len(t))
	for name := range t {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
