// Package dna computes reverse complements of DNA sequences.
//
// Sequences are strings over A, C, G, T. The package-level functions never
// fail and drop any other character, which matches the classic one-line
// reverse-complement scripts. A Transformer makes that choice explicit.
package dna

import "strings"

// Result summarises one reverse-complement run.
type Result struct {
	Input   string
	Output  string
	Policy  Policy
	Dropped int // characters omitted under Drop
}

var std = &Transformer{policy: Drop}

// Reverse returns seq with its characters in inverted order.
func Reverse(seq string) string {
	return string(reversed(seq))
}

// Complement replaces A↔T and C↔G, dropping anything else.
func Complement(seq string) string {
	out, _ := std.Complement(seq)
	return out
}

// ReverseComplement is Complement(Reverse(seq)).
func ReverseComplement(seq string) string {
	return Complement(Reverse(seq))
}

// Transformer applies a fixed Policy to non-canonical characters.
type Transformer struct {
	policy Policy
}

// New returns a Transformer for p.
func New(p Policy) (*Transformer, error) {
	if !p.valid() {
		return nil, ErrUnknownPolicy
	}
	return &Transformer{policy: p}, nil
}

// Policy reports the policy t was built with.
func (t *Transformer) Policy() Policy { return t.policy }

// Complement complements seq under t's policy.
func (t *Transformer) Complement(seq string) (string, error) {
	out, _, err := t.complement([]rune(seq), func(i int) int { return i + 1 })
	return out, err
}

// ReverseComplement reverses seq and complements it under t's policy.
func (t *Transformer) ReverseComplement(seq string) (string, error) {
	res, err := t.Transform(seq)
	if err != nil {
		return "", err
	}
	return res.Output, nil
}

// Transform is ReverseComplement with the drop count attached.
// Under Reject the reported position refers to seq as given.
func (t *Transformer) Transform(seq string) (Result, error) {
	rev := reversed(seq)
	n := len(rev)
	out, dropped, err := t.complement(rev, func(i int) int { return n - i })
	if err != nil {
		return Result{}, err
	}
	return Result{Input: seq, Output: out, Policy: t.policy, Dropped: dropped}, nil
}

// complement walks seq once; pos maps an index in seq to the position
// reported by an InvalidBaseError.
func (t *Transformer) complement(seq []rune, pos func(int) int) (string, int, error) {
	var b strings.Builder
	b.Grow(len(seq))
	dropped := 0
	for i, r := range seq {
		if c, ok := pair(r); ok {
			b.WriteByte(c)
			continue
		}
		switch t.policy {
		case Reject:
			return "", 0, &InvalidBaseError{Base: r, Pos: pos(i)}
		case Keep:
			b.WriteRune(r)
		default:
			dropped++
		}
	}
	return b.String(), dropped, nil
}

func reversed(seq string) []rune {
	r := []rune(seq)
	for i, j := 0, len(r)-1; i < j; i, j = i+1, j-1 {
		r[i], r[j] = r[j], r[i]
	}
	return r
}
