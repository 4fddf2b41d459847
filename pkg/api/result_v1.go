// pkg/api/result_v1.go
package api

// ResultV1 is the stable JSON/YAML schema for one reverse-complement result.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type ResultV1 struct {
	Input             string `json:"input" yaml:"input"`
	ReverseComplement string `json:"reverse_complement" yaml:"reverse_complement"`
	Length            int    `json:"length" yaml:"length"` // characters in ReverseComplement
	Policy            string `json:"policy" yaml:"policy"` // "drop" | "reject" | "keep"
	Dropped           int    `json:"dropped,omitempty" yaml:"dropped,omitempty"`
}
