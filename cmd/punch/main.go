// Command punch is a personal time tracker: punch in, punch out, and read
// the time card.
package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/roach88/punch/internal/cli"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run encapsulates the entrypoint for easier testing.
func run(args []string, stdout, stderr io.Writer) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return cli.Execute(ctx, args, stdout, stderr, nil)
}
