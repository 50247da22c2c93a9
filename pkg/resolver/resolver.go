// Package resolver finds the alternate of a file: its test when given an
// implementation, its implementation when given a test.
//
// The rule table and ranker are injected; the resolver performs no
// configuration lookup or filesystem access of its own.
package resolver

import (
	"context"

	"github.com/arthur-debert/fzf-alt/pkg/errors"
	"github.com/arthur-debert/fzf-alt/pkg/logging"
	"github.com/arthur-debert/fzf-alt/pkg/ranker"
	"github.com/arthur-debert/fzf-alt/pkg/rules"
	"github.com/rs/zerolog"
)

// Request names the file to resolve and the filetype whose rule applies
type Request struct {
	Filename string
	Filetype string
}

// Result is the outcome of a resolution. Found is false when the ranker
// produced no candidate of the opposite classification.
type Result struct {
	Path         string `json:"path,omitempty"`
	Key          string `json:"key"`
	OriginIsTest bool   `json:"originIsTest"`
	Found        bool   `json:"found"`
}

// Resolver ties a rule table to a ranker
type Resolver struct {
	table  rules.Table
	ranker ranker.Ranker
	logger zerolog.Logger
}

// New creates a resolver
func New(table rules.Table, r ranker.Ranker) *Resolver {
	return &Resolver{
		table:  table,
		ranker: r,
		logger: logging.GetLogger("resolver"),
	}
}

// Resolve returns the first ranked candidate whose test classification is
// the opposite of req.Filename's. Ranker order is kept as is, and the input
// file is not excluded from the candidates.
func (r *Resolver) Resolve(ctx context.Context, req Request, corpus ranker.Corpus) (Result, error) {
	done := logging.LogOperationStart(r.logger, "resolve")
	defer done()

	rule, err := r.table.Lookup(req.Filetype)
	if err != nil {
		return Result{}, err
	}

	key := rule.ExtractKey(req.Filename)
	originIsTest := rule.IsTest(req.Filename)
	result := Result{Key: key, OriginIsTest: originIsTest}

	r.logger.Debug().
		Str("filename", req.Filename).
		Str("filetype", req.Filetype).
		Str("key", key).
		Bool("originIsTest", originIsTest).
		Msg("Resolving alternate")

	ranked, err := r.ranker.Rank(ctx, key, corpus)
	if err != nil {
		return Result{}, err
	}

	for _, candidate := range ranked {
		if rule.IsTest(candidate) != originIsTest {
			result.Path = candidate
			result.Found = true
			r.logger.Info().Str("alternate", candidate).Msg("Found alternate")
			return result, nil
		}
	}

	r.logger.Info().
		Str("filename", req.Filename).
		Int("candidates", len(ranked)).
		Msg("No alternate found")
	return result, nil
}

// ResolveWith is the two-file mode of the command line, where the caller
// also names a candidate alternate. It is not supported yet and always
// returns NOT_IMPLEMENTED without consulting the ranker.
func (r *Resolver) ResolveWith(_ context.Context, req Request, alternate string, _ ranker.Corpus) (Result, error) {
	return Result{}, errors.New(errors.ErrNotImplemented, "resolving against an explicit alternate is not supported yet").
		WithDetail("filename", req.Filename).
		WithDetail("alternate", alternate)
}
