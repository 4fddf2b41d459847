// Package logging builds the zap logger used for diagnostics on stderr.
// Results never go through the logger.
package logging

import (
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the subset of *zap.SugaredLogger the app relies on.
type Logger interface {
	Debugw(msg string, keysAndValues ...interface{})
	Infow(msg string, keysAndValues ...interface{})
	Warnw(msg string, keysAndValues ...interface{})
	Errorw(msg string, keysAndValues ...interface{})
	Sync() error
}

// Levels lists the accepted level names.
var Levels = []string{"debug", "info", "warn", "error"}

// ParseLevel maps a level name to a zap level.
func ParseLevel(level string) (zapcore.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return zapcore.DebugLevel, nil
	case "info":
		return zapcore.InfoLevel, nil
	case "", "warn", "warning":
		return zapcore.WarnLevel, nil
	case "error":
		return zapcore.ErrorLevel, nil
	}
	return zapcore.WarnLevel, fmt.Errorf("invalid log level %q; allowed: %s", level, strings.Join(Levels, " "))
}

// New returns a console logger writing to w at the given level.
func New(level string, w io.Writer) (*zap.SugaredLogger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}
	enc := zap.NewDevelopmentEncoderConfig()
	enc.TimeKey = "" // keep stderr lines stable
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(enc), zapcore.AddSync(w), lvl)
	return zap.New(core).Named("revcomp").Sugar(), nil
}

// Nop discards everything.
func Nop() *zap.SugaredLogger { return zap.NewNop().Sugar() }
