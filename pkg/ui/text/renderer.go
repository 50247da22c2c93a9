// Package text provides plain text output without any styling
package text

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/arthur-debert/fzf-alt/pkg/ui/display"
)

// Renderer provides plain text output without colors or styling
type Renderer struct {
	output io.Writer
}

// New creates a new text renderer
func New(output io.Writer) (*Renderer, error) {
	return &Renderer{output: output}, nil
}

// RenderResult renders any result type as plain text
func (r *Renderer) RenderResult(result interface{}) error {
	switch v := result.(type) {
	case *display.RuleListing:
		return r.renderRules(v)
	default:
		_, err := fmt.Fprintf(r.output, "%+v\n", result)
		return err
	}
}

// renderRules writes one tab-aligned line per filetype, suitable for cut/awk
func (r *Renderer) renderRules(listing *display.RuleListing) error {
	tw := tabwriter.NewWriter(r.output, 0, 4, 2, ' ', 0)
	if _, err := fmt.Fprintln(tw, "FILETYPE\tIS_TEST\tSTRIP"); err != nil {
		return err
	}
	for _, row := range listing.Rules {
		if _, err := fmt.Fprintf(tw, "%s\t%s\t%s\n", row.Filetype, row.IsTest, row.Strip); err != nil {
			return err
		}
	}
	return tw.Flush()
}

// RenderError renders an error as plain text
func (r *Renderer) RenderError(err error) error {
	_, writeErr := fmt.Fprintf(r.output, "Error: %v\n", err)
	return writeErr
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, msg)
	return err
}
