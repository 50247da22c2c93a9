package fzfalt

import (
	stderrors "errors"
	"fmt"
	"io"

	"github.com/arthur-debert/fzf-alt/pkg/errors"
	"github.com/arthur-debert/fzf-alt/pkg/ui/styles"
)

// Exit codes
const (
	ExitOK          = 0
	ExitNoAlternate = 1
	ExitError       = 2
)

// ErrNoAlternate is returned by the root command when resolution found no
// candidate. It is reported through the exit code only.
var ErrNoAlternate = stderrors.New("no alternate found")

// ExitCode maps the error returned by Execute to the process exit code
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case stderrors.Is(err, ErrNoAlternate):
		return ExitNoAlternate
	default:
		return ExitError
	}
}

// ReportError writes err to w in the Error style. Input errors get a usage
// hint. Nothing is written for ErrNoAlternate.
func ReportError(w io.Writer, err error) {
	if err == nil || stderrors.Is(err, ErrNoAlternate) {
		return
	}
	fmt.Fprintln(w, styles.Render("Error", fmt.Sprintf("Error: %v", err)))
	if errors.IsErrorCode(err, errors.ErrInvalidInput) {
		fmt.Fprintln(w, styles.Render("Muted", MsgUsageHint))
	}
}
