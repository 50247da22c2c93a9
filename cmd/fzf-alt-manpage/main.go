package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/fzf-alt/cmd/fzfalt"
	"github.com/arthur-debert/fzf-alt/internal/version"
)

func main() {
	rootCmd := fzfalt.NewRootCmd()

	header := &doc.GenManHeader{
		Title:   "FZF-ALT",
		Section: "1",
		Source:  "fzf-alt " + version.Version,
		Manual:  "fzf-alt manual",
	}

	if err := doc.GenMan(rootCmd, header, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
