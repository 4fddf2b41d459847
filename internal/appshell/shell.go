// Package appshell is the process wrapper shared by the binaries.
package appshell

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"
)

// Func is an entry point that reports its own exit code.
type Func func(ctx context.Context, stdout, stderr io.Writer) int

// Code runs fn under a context cancelled by SIGINT/SIGTERM or by parent.
// A zero code from a cancelled run becomes 130.
func Code(parent context.Context, fn Func, stdout, stderr io.Writer) int {
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	code := fn(ctx, stdout, stderr)
	if ctx.Err() != nil && code == 0 {
		code = 130
	}
	return code
}

// Main runs fn against the process streams and exits.
func Main(fn Func) {
	os.Exit(Code(context.Background(), fn, os.Stdout, os.Stderr))
}
