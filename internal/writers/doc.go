// Package writers turns a dna.Result into serialized output.
//
// Design:
//   • Writers own all presentation knowledge (plain line, JSON, YAML, duplex block).
//   • core/dna stays domain-only; the app layer only picks a format.
//   • JSON/YAML go through pkg/api (v1) for a stable wire format.
package writers
