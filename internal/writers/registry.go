// internal/writers/registry.go
package writers

import (
	"fmt"
	"io"
	"sort"

	"github.com/susannmudra/bioinformatics/core/dna"
)

// WriteFunc serializes one result to w.
type WriteFunc func(w io.Writer, r dna.Result) error

// ResultWriters maps a format name to its handler.
// Populated from init() blocks in text.go, json.go and yaml.go.
var ResultWriters = map[string]WriteFunc{}

// Register installs fn for format (last wins).
func Register(format string, fn WriteFunc) { ResultWriters[format] = fn }

// Write dispatches to the writer registered for format.
func Write(format string, w io.Writer, r dna.Result) error {
	fn, ok := ResultWriters[format]
	if !ok {
		return fmt.Errorf("unknown result format %q (no writer registered)", format)
	}
	return fn(w, r)
}

// Formats returns the registered format names, sorted.
func Formats() []string {
	out := make([]string, 0, len(ResultWriters))
	for f := range ResultWriters {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}
