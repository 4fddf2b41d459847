package writers

import (
	"io"

	"github.com/susannmudra/bioinformatics/core/dna"
	"github.com/susannmudra/bioinformatics/internal/config"
	"github.com/susannmudra/bioinformatics/internal/pretty"
)

func init() { Register(config.FormatPretty, WritePretty) }

// WritePretty writes the duplex block followed by the reverse complement.
func WritePretty(w io.Writer, r dna.Result) error {
	_, err := io.WriteString(w, pretty.RenderDuplex(r, pretty.DefaultOptions))
	return err
}
