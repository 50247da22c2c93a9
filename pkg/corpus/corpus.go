// Package corpus decides where the candidate file list handed to the ranker
// comes from: a file, the host's stdin, a listing command, or fzf itself.
package corpus

import (
	"bytes"
	"context"
	stderrors "errors"
	"os"
	"os/exec"
	"strings"

	"github.com/arthur-debert/fzf-alt/pkg/errors"
	"github.com/arthur-debert/fzf-alt/pkg/logging"
	"github.com/arthur-debert/fzf-alt/pkg/ranker"
	"github.com/mattn/go-isatty"
)

// StdinName selects the host's stdin as the corpus file
const StdinName = "-"

// Options selects the corpus source. FilesFrom takes precedence over
// ListCommand; with neither set the host's stdin is used when piped.
type Options struct {
	// FilesFrom is a file with one candidate per line, or "-" for stdin
	FilesFrom string
	// ListCommand is run once and its output is the corpus, e.g. "git ls-files".
	// It is split on whitespace and run without a shell.
	ListCommand string
	// Dir is the working directory for ListCommand
	Dir string
	// Stdin defaults to os.Stdin
	Stdin *os.File
}

// Open resolves opts to a ranker corpus
func Open(ctx context.Context, opts Options) (ranker.Corpus, error) {
	logger := logging.GetLogger("corpus")

	stdin := opts.Stdin
	if stdin == nil {
		stdin = os.Stdin
	}

	switch {
	case opts.FilesFrom == StdinName:
		logger.Debug().Msg("Reading candidates from stdin")
		return ranker.FromReader(stdin), nil

	case opts.FilesFrom != "":
		data, err := os.ReadFile(opts.FilesFrom)
		if err != nil {
			return ranker.Corpus{}, errors.Wrapf(err, errors.ErrFileAccess, "cannot read candidate list %s", opts.FilesFrom).
				WithDetail("path", opts.FilesFrom)
		}
		logger.Debug().Str("path", opts.FilesFrom).Int("bytes", len(data)).Msg("Read candidates from file")
		return ranker.FromReader(bytes.NewReader(data)), nil

	case strings.TrimSpace(opts.ListCommand) != "":
		return runList(ctx, opts.ListCommand, opts.Dir)

	case isTerminal(stdin):
		logger.Debug().Msg("Stdin is a terminal, letting the ranker list files")
		return ranker.Inherit(), nil

	default:
		logger.Debug().Msg("Reading piped candidates from stdin")
		return ranker.FromReader(stdin), nil
	}
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func runList(ctx context.Context, command, dir string) (ranker.Corpus, error) {
	logger := logging.GetLogger("corpus")

	fields := strings.Fields(command)
	cmd := exec.CommandContext(ctx, fields[0], fields[1:]...)
	cmd.Dir = dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	logging.LogCommand(logger, fields[0], fields[1:])
	if err := cmd.Run(); err != nil {
		wrapped := errors.Wrapf(err, errors.ErrProcess, "list command %q failed", command).
			WithDetail("command", command).
			WithDetail("stderr", stderr.String())
		var exitErr *exec.ExitError
		if stderrors.As(err, &exitErr) {
			wrapped = wrapped.WithDetail("exitCode", exitErr.ExitCode())
		}
		return ranker.Corpus{}, wrapped
	}

	logger.Debug().Str("command", command).Int("bytes", stdout.Len()).Msg("Listed candidates")
	return ranker.FromReader(&stdout), nil
}
