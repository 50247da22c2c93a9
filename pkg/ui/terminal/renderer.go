// Package terminal provides rich terminal output with colors and styling
package terminal

import (
	"fmt"
	"io"

	"github.com/arthur-debert/fzf-alt/pkg/ui/display"
	"github.com/arthur-debert/fzf-alt/pkg/ui/styles"
	"github.com/pterm/pterm"
)

// Renderer provides rich terminal output using pterm tables and the
// semantic style registry
type Renderer struct {
	output io.Writer
}

// New creates a new terminal renderer
func New(w io.Writer) (*Renderer, error) {
	return &Renderer{output: w}, nil
}

// RenderResult renders any result type with rich terminal formatting
func (r *Renderer) RenderResult(result interface{}) error {
	switch v := result.(type) {
	case *display.RuleListing:
		return r.renderRules(v)
	default:
		_, err := fmt.Fprintf(r.output, "%+v\n", result)
		return err
	}
}

func (r *Renderer) renderRules(listing *display.RuleListing) error {
	if _, err := fmt.Fprintln(r.output, styles.Render("Header", "Filetype rules")); err != nil {
		return err
	}

	data := pterm.TableData{{"Filetype", "Test pattern", "Strip pattern"}}
	for _, row := range listing.Rules {
		data = append(data, []string{
			styles.Render("Filetype", row.Filetype),
			styles.Render("Pattern", row.IsTest),
			styles.Render("Pattern", row.Strip),
		})
	}

	table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintln(r.output, table); err != nil {
		return err
	}

	if len(listing.Sources) == 0 {
		return nil
	}
	if _, err := fmt.Fprintln(r.output); err != nil {
		return err
	}
	for _, source := range listing.Sources {
		if _, err := fmt.Fprintln(r.output, styles.Render("Muted", "loaded from ")+styles.Render("FilePath", source)); err != nil {
			return err
		}
	}
	return nil
}

// RenderError renders an error in the Error style
func (r *Renderer) RenderError(err error) error {
	_, writeErr := fmt.Fprintln(r.output, styles.Render("Error", fmt.Sprintf("Error: %v", err)))
	return writeErr
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, styles.Render("Info", msg))
	return err
}
