package ranker

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"strings"

	"github.com/arthur-debert/fzf-alt/pkg/errors"
)

// Ranker filters a corpus down to the candidates matching query, most
// relevant first. Implementations must not reorder beyond their own
// matching policy.
type Ranker interface {
	Rank(ctx context.Context, query string, corpus Corpus) ([]string, error)
}

// Corpus is the ordered list of candidate paths, one per line
type Corpus struct {
	r io.Reader
}

// Lines builds a corpus from a slice of paths
func Lines(paths []string) Corpus {
	var buf bytes.Buffer
	for _, p := range paths {
		buf.WriteString(p)
		buf.WriteByte('\n')
	}
	return Corpus{r: &buf}
}

// FromReader builds a corpus streamed from r
func FromReader(r io.Reader) Corpus {
	return Corpus{r: r}
}

// Inherit returns a corpus that is not supplied by fzf-alt: the ranker reads
// the host's stdin, and fzf lists files itself when that is a terminal.
func Inherit() Corpus {
	return Corpus{}
}

// Inherited reports whether the ranker should read the host's stdin
func (c Corpus) Inherited() bool {
	return c.r == nil
}

// Reader returns the corpus stream, nil when inherited
func (c Corpus) Reader() io.Reader {
	return c.r
}

// ReadLines drains the corpus into a slice. Blank lines are dropped.
func (c Corpus) ReadLines() ([]string, error) {
	if c.Inherited() {
		return nil, errors.New(errors.ErrInvalidInput, "inherited corpus cannot be read in-process")
	}
	return splitLines(c.r)
}

func splitLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to read candidate lines")
	}
	return lines, nil
}
