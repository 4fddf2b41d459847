package app

import (
	"bytes"
	"context"
	"encoding/json"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"gopkg.in/yaml.v3"

	"github.com/susannmudra/bioinformatics/internal/config"
	"github.com/susannmudra/bioinformatics/pkg/api"
)

func runCfg(t *testing.T, cfg config.Config) (int, string, string) {
	t.Helper()
	var out, errBuf bytes.Buffer
	code := Run(context.Background(), cfg, &out, &errBuf)
	return code, out.String(), errBuf.String()
}

func TestRunDefault(t *testing.T) {
	code, out, errOut := runCfg(t, config.Default())
	assert.Equal(t, ExitOK, code)
	assert.Equal(t, "TGTAATC\n", out)
	assert.Empty(t, errOut)
}

func TestRunEmptySequence(t *testing.T) {
	cfg := config.Default()
	cfg.Sequence = ""
	code, out, _ := runCfg(t, cfg)
	assert.Equal(t, ExitOK, code)
	assert.Equal(t, "\n", out)
}

func TestRunRejectInvalidBase(t *testing.T) {
	cfg := config.Default()
	cfg.Sequence = "GATN"
	cfg.Unknown = "reject"

	code, out, errOut := runCfg(t, cfg)
	assert.Equal(t, ExitInvalid, code)
	assert.Empty(t, out)
	assert.Contains(t, errOut, "invalid base 'N' at 4")
}

func TestRunKeepPassesThrough(t *testing.T) {
	cfg := config.Default()
	cfg.Sequence = "GATN"
	cfg.Unknown = "keep"

	code, out, _ := runCfg(t, cfg)
	assert.Equal(t, ExitOK, code)
	assert.Equal(t, "NATC\n", out)
}

func TestRunDropWarns(t *testing.T) {
	cfg := config.Default()
	cfg.Sequence = "GATN"

	core, logs := observer.New(zapcore.DebugLevel)
	var out, errBuf bytes.Buffer
	code := run(context.Background(), cfg, zap.New(core).Sugar(), &out, &errBuf)

	assert.Equal(t, ExitOK, code)
	assert.Equal(t, "ATC\n", out.String())
	warns := logs.FilterLevelExact(zapcore.WarnLevel).All()
	require.Len(t, warns, 1)
	assert.Equal(t, int64(1), warns[0].ContextMap()["dropped"])
}

func TestRunDropWarningReachesStderr(t *testing.T) {
	cfg := config.Default()
	cfg.Sequence = "NGATTACA"

	code, out, errOut := runCfg(t, cfg)
	assert.Equal(t, ExitOK, code)
	assert.Equal(t, "TGTAATC\n", out)
	assert.Contains(t, errOut, "dropped characters outside A C G T")
}

func TestRunJSON(t *testing.T) {
	cfg := config.Default()
	cfg.Output = config.FormatJSON

	code, out, _ := runCfg(t, cfg)
	require.Equal(t, ExitOK, code)

	var got api.ResultV1
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, api.ResultV1{Input: "GATTACA", ReverseComplement: "TGTAATC", Length: 7, Policy: "drop"}, got)
}

func TestRunYAML(t *testing.T) {
	cfg := config.Default()
	cfg.Output = config.FormatYAML
	cfg.Sequence = "GATNTACA"

	code, out, _ := runCfg(t, cfg)
	require.Equal(t, ExitOK, code)

	var got api.ResultV1
	require.NoError(t, yaml.Unmarshal([]byte(out), &got))
	assert.Equal(t, "TGTAATC", got.ReverseComplement)
	assert.Equal(t, 1, got.Dropped)
}

func TestRunInvalidConfig(t *testing.T) {
	for name, mutate := range map[string]func(*config.Config){
		"output":    func(c *config.Config) { c.Output = "fasta" },
		"log level": func(c *config.Config) { c.LogLevel = "trace" },
		"policy":    func(c *config.Config) { c.Unknown = "ignore" },
	} {
		cfg := config.Default()
		mutate(&cfg)
		code, out, errOut := runCfg(t, cfg)
		assert.Equal(t, ExitInvalid, code, name)
		assert.Empty(t, out, name)
		assert.NotEmpty(t, errOut, name)
	}
}

func TestRunCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	code := Run(ctx, config.Default(), &out, &bytes.Buffer{})
	assert.Equal(t, ExitCanceled, code)
	assert.Empty(t, out.String())
}

type errWriter struct{ err error }

func (w errWriter) Write([]byte) (int, error) { return 0, w.err }

func TestRunBrokenPipeIsSuccess(t *testing.T) {
	var errBuf bytes.Buffer
	code := Run(context.Background(), config.Default(), errWriter{syscall.EPIPE}, &errBuf)
	assert.Equal(t, ExitOK, code)
	assert.Empty(t, errBuf.String())
}

func TestRunWriteFailure(t *testing.T) {
	var errBuf bytes.Buffer
	code := Run(context.Background(), config.Default(), errWriter{syscall.ENOSPC}, &errBuf)
	assert.Equal(t, ExitWrite, code)
	assert.Contains(t, errBuf.String(), "no space left")
}

func TestMainUsesEnvironment(t *testing.T) {
	t.Setenv("REVCOMP_SEQUENCE", "AACCGGTT")

	var out, errBuf bytes.Buffer
	code := Main(context.Background(), &out, &errBuf)
	assert.Equal(t, ExitOK, code)
	assert.Equal(t, "AACCGGTT\n", out.String())
}

func TestMainBadEnvironment(t *testing.T) {
	t.Setenv("REVCOMP_UNKNOWN", "ignore")

	var out, errBuf bytes.Buffer
	code := Main(context.Background(), &out, &errBuf)
	assert.Equal(t, ExitInvalid, code)
	assert.Contains(t, errBuf.String(), "invalid unknown-base policy")
}

func TestRunPretty(t *testing.T) {
	cfg := config.Default()
	cfg.Output = config.FormatPretty

	code, out, _ := runCfg(t, cfg)
	require.Equal(t, ExitOK, code)
	assert.Contains(t, out, "# 5'-GATTACA-3'\n")
	assert.Contains(t, out, "\nTGTAATC\n")
}
