package resolve

import (
	"context"
	"os"
	"time"

	"github.com/arthur-debert/fzf-alt/pkg/config"
	"github.com/arthur-debert/fzf-alt/pkg/corpus"
	"github.com/arthur-debert/fzf-alt/pkg/errors"
	"github.com/arthur-debert/fzf-alt/pkg/logging"
	"github.com/arthur-debert/fzf-alt/pkg/paths"
	"github.com/arthur-debert/fzf-alt/pkg/ranker"
	"github.com/arthur-debert/fzf-alt/pkg/resolver"
	"github.com/arthur-debert/fzf-alt/pkg/rules"
)

// Options holds the inputs of a resolution. Empty values fall back to the
// loaded configuration.
type Options struct {
	Filename  string
	Filetype  string
	Alternate string

	ProjectRoot string
	ConfigFile  string

	// RankerCommand and Timeout override [ranker] when set
	RankerCommand string
	Timeout       time.Duration

	// FilesFrom and ListCommand select the corpus; ListCommand overrides
	// [corpus] command
	FilesFrom   string
	ListCommand string
	Stdin       *os.File
}

// Resolve loads configuration, builds the rule table and ranker, and
// resolves opts.Filename. A Result with Found false means no alternate.
func Resolve(ctx context.Context, opts Options) (*resolver.Result, error) {
	logger := logging.GetLogger("commands.resolve")

	if opts.Filename == "" || opts.Filetype == "" {
		return nil, errors.New(errors.ErrInvalidInput, "a filename and a filetype are required")
	}
	if opts.Timeout < 0 {
		return nil, errors.Newf(errors.ErrInvalidInput, "timeout must not be negative, got %s", opts.Timeout)
	}

	p, err := paths.New(opts.ProjectRoot)
	if err != nil {
		return nil, err
	}

	cfg, err := config.Load(config.LoadOptions{
		Paths:      p,
		ConfigFile: opts.ConfigFile,
		Overrides:  overrides(opts),
	})
	if err != nil {
		return nil, err
	}

	table, err := rules.Compile(cfg.Filetypes)
	if err != nil {
		return nil, err
	}

	fzf := ranker.NewFzf(cfg.Ranker, p.WorkDir())
	res := resolver.New(table, fzf)
	req := resolver.Request{Filename: opts.Filename, Filetype: opts.Filetype}

	if opts.Alternate != "" {
		// stdin is left untouched for a mode that never reads it
		result, err := res.ResolveWith(ctx, req, opts.Alternate, ranker.Inherit())
		return &result, err
	}

	// an unknown filetype must fail before any list command is spawned
	if _, err := table.Lookup(opts.Filetype); err != nil {
		return nil, err
	}

	candidates, err := corpus.Open(ctx, corpus.Options{
		FilesFrom:   opts.FilesFrom,
		ListCommand: cfg.Corpus.Command,
		Dir:         p.WorkDir(),
		Stdin:       opts.Stdin,
	})
	if err != nil {
		return nil, err
	}

	logger.Debug().
		Str("projectRoot", p.ProjectRoot()).
		Str("ranker", cfg.Ranker.Command).
		Bool("inheritedCorpus", candidates.Inherited()).
		Msg("Resolving")

	result, err := res.Resolve(ctx, req, candidates)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// overrides turns the set flags into config keys
func overrides(opts Options) map[string]interface{} {
	o := map[string]interface{}{}
	if opts.RankerCommand != "" {
		o["ranker.command"] = opts.RankerCommand
	}
	if opts.Timeout > 0 {
		o["ranker.timeout"] = opts.Timeout
	}
	if opts.ListCommand != "" {
		o["corpus.command"] = opts.ListCommand
	}
	return o
}
