// Package config holds the run settings, resolved through viper from
// defaults and REVCOMP_* environment variables.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/susannmudra/bioinformatics/core/dna"
	"github.com/susannmudra/bioinformatics/internal/logging"
)

// EnvPrefix namespaces environment overrides, e.g. REVCOMP_SEQUENCE.
const EnvPrefix = "REVCOMP"

// DefaultSequence is the input used when nothing else is configured.
const DefaultSequence = "GATTACA"

// Output formats.
const (
	FormatText   = "text"
	FormatJSON   = "json"
	FormatYAML   = "yaml"
	FormatPretty = "pretty"
)

// Config is the root-level settings struct.
type Config struct {
	// the sequence to transform
	Sequence string `mapstructure:"sequence"`

	// what to do with characters outside A C G T: drop | reject | keep
	Unknown string `mapstructure:"unknown"`

	// result format: text | json | yaml | pretty
	Output string `mapstructure:"output"`

	// stderr log level: debug | info | warn | error
	LogLevel string `mapstructure:"log-level"`
}

// Default returns the configuration used when no overrides are set.
func Default() Config {
	return Config{
		Sequence: DefaultSequence,
		Unknown:  dna.Drop.String(),
		Output:   FormatText,
		LogLevel: "warn",
	}
}

// Load registers defaults on v, binds environment overrides, and returns
// the validated Config.
func Load(v *viper.Viper) (Config, error) {
	d := Default()
	v.SetDefault("sequence", d.Sequence)
	v.SetDefault("unknown", d.Unknown)
	v.SetDefault("output", d.Output)
	v.SetDefault("log-level", d.LogLevel)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return c, fmt.Errorf("decode config: %w", err)
	}
	if err := Validate(c); err != nil {
		return c, err
	}
	return c, nil
}

// Validate checks the enumerated fields. Any sequence is accepted; what
// happens to non-canonical characters is the Unknown policy's business.
func Validate(c Config) error {
	if _, err := dna.ParsePolicy(c.Unknown); err != nil {
		return fmt.Errorf("invalid unknown-base policy: %w", err)
	}
	switch c.Output {
	case FormatText, FormatJSON, FormatYAML, FormatPretty:
	default:
		return fmt.Errorf("invalid output %q; allowed: %s %s %s %s", c.Output, FormatText, FormatJSON, FormatYAML, FormatPretty)
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}
