package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"go.uber.org/automaxprocs/maxprocs"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	// Configure GOMAXPROCS quietly.
	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply and the program continues safely.
	_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))

	ctx, stop := notifyContext(context.Background())
	defer stop()

	if err := run(ctx, os.Args, DefaultEnv()); err != nil {
		// Usage was already printed for the no-arguments case.
		if !errors.Is(err, ErrNoInput) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
