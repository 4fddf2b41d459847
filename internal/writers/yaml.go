package writers

import (
	"io"

	"gopkg.in/yaml.v3"

	"github.com/susannmudra/bioinformatics/core/dna"
	"github.com/susannmudra/bioinformatics/internal/config"
)

func init() { Register(config.FormatYAML, WriteYAML) }

// WriteYAML writes one v1 document.
func WriteYAML(w io.Writer, r dna.Result) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(ToAPIResult(r)); err != nil {
		_ = enc.Close()
		return err
	}
	return enc.Close()
}
