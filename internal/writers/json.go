package writers

import (
	"encoding/json"
	"io"
	"unicode/utf8"

	"github.com/susannmudra/bioinformatics/core/dna"
	"github.com/susannmudra/bioinformatics/internal/config"
	"github.com/susannmudra/bioinformatics/pkg/api"
)

func init() { Register(config.FormatJSON, WriteJSON) }

// ToAPIResult converts a domain Result to the stable wire schema (v1).
func ToAPIResult(r dna.Result) api.ResultV1 {
	return api.ResultV1{
		Input:             r.Input,
		ReverseComplement: r.Output,
		Length:            utf8.RuneCountInString(r.Output),
		Policy:            r.Policy.String(),
		Dropped:           r.Dropped,
	}
}

// WriteJSON writes one indented v1 object.
func WriteJSON(w io.Writer, r dna.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(ToAPIResult(r))
}
