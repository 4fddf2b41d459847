package writers

import (
	"fmt"
	"io"

	"github.com/susannmudra/bioinformatics/core/dna"
	"github.com/susannmudra/bioinformatics/internal/config"
)

func init() { Register(config.FormatText, WriteText) }

// WriteText prints the reverse complement alone on one line.
func WriteText(w io.Writer, r dna.Result) error {
	_, err := fmt.Fprintln(w, r.Output)
	return err
}
