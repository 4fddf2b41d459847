// Package pretty renders a sequence and its partner strand as an ASCII
// duplex block.
package pretty

import (
	"fmt"
	"strings"

	"github.com/susannmudra/bioinformatics/core/dna"
)

// Options control the ASCII rendering.
type Options struct {
	// Bases per block. If <=0, use default (60).
	Width int

	// Glyphs
	PairGlyph string // default "|"
	GapGlyph  string // default "."
}

// DefaultOptions is the look used by the "pretty" output format.
var DefaultOptions = Options{
	Width:     60,
	PairGlyph: "|",
	GapGlyph:  ".",
}

const linePrefix = "# "

// RenderDuplex draws r.Input 5'→3' over its partner strand 3'→5', then the
// reverse complement on its own line. Positions without a partner get
// GapGlyph on the bottom strand and no bar.
func RenderDuplex(r dna.Result, opt Options) string {
	opt = withDefaults(opt)

	top := []rune(r.Input)
	bars := make([]string, len(top))
	bottom := make([]string, len(top))
	for i, b := range top {
		if c, ok := dna.Pair(b); ok {
			bars[i] = opt.PairGlyph
			bottom[i] = string(c)
			continue
		}
		bars[i] = " "
		bottom[i] = opt.GapGlyph
	}

	var sb strings.Builder
	blocks := (len(top) + opt.Width - 1) / opt.Width
	for blk := 0; blk < blocks; blk++ {
		off := blk * opt.Width
		end := off + opt.Width
		if end > len(top) {
			end = len(top)
		}
		if blk > 0 {
			sb.WriteString(linePrefix + "\n")
		}
		if blocks > 1 {
			fmt.Fprintf(&sb, "%s%d-%d\n", linePrefix, off+1, end)
		}
		fmt.Fprintf(&sb, "%s5'-%s-3'\n", linePrefix, string(top[off:end]))
		fmt.Fprintf(&sb, "%s   %s\n", linePrefix, strings.Join(bars[off:end], ""))
		fmt.Fprintf(&sb, "%s3'-%s-5'\n", linePrefix, strings.Join(bottom[off:end], ""))
	}
	if blocks == 0 {
		fmt.Fprintf(&sb, "%s5'--3'\n%s3'--5'\n", linePrefix, linePrefix)
	}
	fmt.Fprintf(&sb, "%sreverse complement (5'→3', %s):\n%s\n", linePrefix, r.Policy, r.Output)
	return sb.String()
}

func withDefaults(opt Options) Options {
	if opt.Width <= 0 {
		opt.Width = DefaultOptions.Width
	}
	if opt.PairGlyph == "" {
		opt.PairGlyph = DefaultOptions.PairGlyph
	}
	if opt.GapGlyph == "" {
		opt.GapGlyph = DefaultOptions.GapGlyph
	}
	return opt
}
