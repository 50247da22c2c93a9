package ranker

import (
	"bytes"
	"context"
	stderrors "errors"
	"io"
	"os"
	"os/exec"
	"time"

	"github.com/arthur-debert/fzf-alt/pkg/config"
	"github.com/arthur-debert/fzf-alt/pkg/errors"
	"github.com/arthur-debert/fzf-alt/pkg/logging"
	"github.com/rs/zerolog"
)

// fzf exits 1 when nothing matched; that is an empty ranking, not a failure
const noMatchExitCode = 1

// waitDelay bounds how long Wait lingers on I/O after the child is killed
const waitDelay = 2 * time.Second

// Fzf ranks candidates with an external fzf process
type Fzf struct {
	logger  zerolog.Logger
	command string
	args    []string
	timeout time.Duration
	dir     string
	stdin   io.Reader
}

// NewFzf creates an fzf ranker from configuration. dir is the child's
// working directory; empty means the current one.
func NewFzf(cfg config.RankerConfig, dir string) *Fzf {
	return &Fzf{
		logger:  logging.GetLogger("ranker.fzf"),
		command: cfg.Command,
		args:    cfg.Args,
		timeout: cfg.Timeout,
		dir:     dir,
		stdin:   os.Stdin,
	}
}

// Args returns the argument list used for query
func (f *Fzf) Args(query string) []string {
	args := []string{"--filter", query, "--no-sort"}
	return append(args, f.args...)
}

// Rank runs fzf once and returns its output lines in order
func (f *Fzf) Rank(ctx context.Context, query string, corpus Corpus) ([]string, error) {
	if f.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, f.timeout)
		defer cancel()
	}

	args := f.Args(query)
	cmd := exec.CommandContext(ctx, f.command, args...)
	cmd.Dir = f.dir
	cmd.WaitDelay = waitDelay

	// exec copies the reader into the child's stdin and closes it when done
	if corpus.Inherited() {
		cmd.Stdin = f.stdin
	} else {
		cmd.Stdin = corpus.Reader()
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	logging.LogCommand(f.logger, f.command, args)
	start := time.Now()

	err := cmd.Run()

	f.logger.Debug().
		Dur("duration", time.Since(start)).
		Int("stdoutBytes", stdout.Len()).
		Str("stderr", stderr.String()).
		Msg("Ranker finished")

	if err != nil {
		if ctx.Err() == nil && isNoMatch(err) {
			f.logger.Debug().Str("query", query).Msg("Ranker found no matches")
			return []string{}, nil
		}
		return nil, f.classify(ctx, err, stderr.String())
	}

	lines, err := splitLines(&stdout)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrProcess, "failed to read ranker output")
	}

	f.logger.Debug().Str("query", query).Int("matches", len(lines)).Msg("Ranked candidates")
	return lines, nil
}

func isNoMatch(err error) bool {
	var exitErr *exec.ExitError
	return stderrors.As(err, &exitErr) && exitErr.ExitCode() == noMatchExitCode
}

// classify maps a failed run to a coded error
func (f *Fzf) classify(ctx context.Context, err error, stderr string) error {
	if stderrors.Is(ctx.Err(), context.DeadlineExceeded) {
		return errors.Newf(errors.ErrProcessTimeout, "ranker %s did not finish within %s", f.command, f.timeout).
			WithDetail("command", f.command).
			WithDetail("timeout", f.timeout.String())
	}
	if ctx.Err() != nil {
		return errors.Wrapf(ctx.Err(), errors.ErrProcess, "ranker %s was interrupted", f.command).
			WithDetail("command", f.command)
	}

	var exitErr *exec.ExitError
	if stderrors.As(err, &exitErr) {
		return errors.Wrapf(err, errors.ErrProcess, "ranker %s exited with status %d", f.command, exitErr.ExitCode()).
			WithDetail("command", f.command).
			WithDetail("exitCode", exitErr.ExitCode()).
			WithDetail("stderr", stderr)
	}

	return errors.Wrapf(err, errors.ErrProcess, "failed to run ranker %s", f.command).
		WithDetail("command", f.command)
}
