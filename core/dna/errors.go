package dna

import (
	"errors"
	"fmt"
)

// ErrInvalidBase matches every *InvalidBaseError via errors.Is.
var ErrInvalidBase = errors.New("invalid base")

// InvalidBaseError reports the first non-canonical character seen under Reject.
// Pos is 1-based and counts characters of the caller's input, not bytes.
type InvalidBaseError struct {
	Base rune
	Pos  int
}

func (e *InvalidBaseError) Error() string {
	return fmt.Sprintf("invalid base %q at %d; allowed: A C G T", e.Base, e.Pos)
}

func (e *InvalidBaseError) Is(target error) bool { return target == ErrInvalidBase }
