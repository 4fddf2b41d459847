package dna

import (
	"errors"
	"fmt"
	"strings"
)

// Policy decides what Complement does with a character outside A, C, G, T.
type Policy int

const (
	// Drop omits the character from the output.
	Drop Policy = iota
	// Reject fails the whole operation with an *InvalidBaseError.
	Reject
	// Keep copies the character through unchanged.
	Keep
)

// ErrUnknownPolicy is returned for policy names or values that are not defined.
var ErrUnknownPolicy = errors.New("unknown policy")

var policyNames = [...]string{Drop: "drop", Reject: "reject", Keep: "keep"}

func (p Policy) String() string {
	if !p.valid() {
		return fmt.Sprintf("Policy(%d)", int(p))
	}
	return policyNames[p]
}

func (p Policy) valid() bool { return p >= Drop && p <= Keep }

// ParsePolicy accepts "drop", "reject" or "keep" (case-insensitive).
// An empty string selects Drop.
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "drop":
		return Drop, nil
	case "reject":
		return Reject, nil
	case "keep":
		return Keep, nil
	}
	return Drop, fmt.Errorf("%w %q; allowed: drop reject keep", ErrUnknownPolicy, s)
}
