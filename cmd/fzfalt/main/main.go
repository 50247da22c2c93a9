package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/arthur-debert/fzf-alt/cmd/fzfalt"
)

func main() {
	// cancelling the context kills a running fzf
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := fzfalt.NewRootCmd().ExecuteContext(ctx)
	stop()

	fzfalt.ReportError(os.Stderr, err)
	os.Exit(fzfalt.ExitCode(err))
}
