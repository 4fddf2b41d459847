// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/spf13/viper"

	"github.com/susannmudra/bioinformatics/core/dna"
	"github.com/susannmudra/bioinformatics/internal/config"
	"github.com/susannmudra/bioinformatics/internal/logging"
	"github.com/susannmudra/bioinformatics/internal/version"
	"github.com/susannmudra/bioinformatics/internal/writers"
)

// Exit codes.
const (
	ExitOK       = 0
	ExitInvalid  = 2 // bad configuration or rejected input
	ExitWrite    = 3
	ExitCanceled = 130
)

// Main resolves the configuration from defaults and the environment, then
// runs it.
func Main(ctx context.Context, stdout, stderr io.Writer) int {
	cfg, err := config.Load(viper.New())
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return ExitInvalid
	}
	return Run(ctx, cfg, stdout, stderr)
}

// Run reverse-complements cfg.Sequence and writes the result to stdout in
// cfg.Output format. Diagnostics go to stderr.
func Run(ctx context.Context, cfg config.Config, stdout, stderr io.Writer) int {
	if err := config.Validate(cfg); err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return ExitInvalid
	}
	log, err := logging.New(cfg.LogLevel, stderr)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return ExitInvalid
	}
	defer func() { _ = log.Sync() }()
	return run(ctx, cfg, log, stdout, stderr)
}

func run(ctx context.Context, cfg config.Config, log logging.Logger, stdout, stderr io.Writer) int {
	if ctx.Err() != nil {
		return ExitCanceled
	}

	policy, err := dna.ParsePolicy(cfg.Unknown)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return ExitInvalid
	}
	t, err := dna.New(policy)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return ExitInvalid
	}

	log.Debugw("transforming",
		"version", version.Version,
		"length", utf8.RuneCountInString(cfg.Sequence),
		"policy", policy.String(),
		"output", cfg.Output,
	)
	res, err := t.Transform(cfg.Sequence)
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "error: %v\n", err)
		return ExitInvalid
	}
	if res.Dropped > 0 {
		log.Warnw("dropped characters outside A C G T", "dropped", res.Dropped)
	}

	outw := bufio.NewWriter(stdout)
	if err := writers.Write(cfg.Output, outw, res); writers.IsBrokenPipe(err) {
		return ExitOK
	} else if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return ExitWrite
	}
	if err := outw.Flush(); writers.IsBrokenPipe(err) {
		log.Debugw("stdout closed early")
		return ExitOK
	} else if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return ExitWrite
	}
	log.Debugw("done", "written", utf8.RuneCountInString(res.Output))
	return ExitOK
}
