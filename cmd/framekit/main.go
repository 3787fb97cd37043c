package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/matzehuels/framekit/internal/cli"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	c := cli.New(os.Stderr, cli.LogInfo)
	if code := cli.Report(os.Stderr, c.RootCommand().ExecuteContext(ctx)); code != 0 {
		os.Exit(code)
	}
}
