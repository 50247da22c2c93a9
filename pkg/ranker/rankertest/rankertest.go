// Package rankertest provides ranker substitutes for tests.
package rankertest

import (
	"context"
	"strings"
	"sync"
	"unicode"

	"github.com/arthur-debert/fzf-alt/pkg/ranker"
	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Fixed returns the same ranking for every query, ignoring the corpus
type Fixed []string

// Rank implements ranker.Ranker
func (f Fixed) Rank(_ context.Context, _ string, _ ranker.Corpus) ([]string, error) {
	return append([]string(nil), f...), nil
}

// Failing always returns Err
type Failing struct {
	Err error
}

// Rank implements ranker.Ranker
func (f Failing) Rank(context.Context, string, ranker.Corpus) ([]string, error) {
	return nil, f.Err
}

// Subsequence keeps the candidates containing the query as a subsequence,
// in corpus order. With fzf's smart case this is what
// `fzf --filter <query> --no-sort` returns for plain queries.
type Subsequence struct{}

// Rank implements ranker.Ranker
func (Subsequence) Rank(_ context.Context, query string, corpus ranker.Corpus) ([]string, error) {
	lines, err := corpus.ReadLines()
	if err != nil {
		return nil, err
	}
	if strings.IndexFunc(query, unicode.IsUpper) >= 0 {
		return fuzzy.Find(query, lines), nil
	}
	return fuzzy.FindFold(query, lines), nil
}

// Call is one recorded Rank invocation
type Call struct {
	Query  string
	Corpus []string
}

// Recorder wraps a ranker and records what it was asked
type Recorder struct {
	Next ranker.Ranker

	mu    sync.Mutex
	calls []Call
}

// Rank implements ranker.Ranker. The corpus is drained and replayed to Next.
func (r *Recorder) Rank(ctx context.Context, query string, corpus ranker.Corpus) ([]string, error) {
	var lines []string
	if !corpus.Inherited() {
		var err error
		if lines, err = corpus.ReadLines(); err != nil {
			return nil, err
		}
		corpus = ranker.Lines(lines)
	}

	r.mu.Lock()
	r.calls = append(r.calls, Call{Query: query, Corpus: lines})
	r.mu.Unlock()

	if r.Next == nil {
		return nil, nil
	}
	return r.Next.Rank(ctx, query, corpus)
}

// Calls returns the recorded invocations
func (r *Recorder) Calls() []Call {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Call(nil), r.calls...)
}
