// Package normalize implements it reduces a raw input buffer
// in one of four host-language syntaxes to a single logical line -
// sentinel stripped, continuations collapsed, comments removed - ready for
// directive-name recognition.
package normalize

import "github.com/leapstack-labs/roup/pkg/hostlang"

// Normalizer normalizes raw directive text for one (language, dialect)
// pair. It holds no mutable state and is safe to share across goroutines.
type Normalizer struct {
	Language hostlang.Language
	Dialect  hostlang.Dialect
}

// New constructs a Normalizer for the given host language and dialect.
func New(lang hostlang.Language, dialect hostlang.Dialect) *Normalizer {
	return &Normalizer{Language: lang, Dialect: dialect}
}

// Normalize strips the sentinel, collapses continuations, and removes
// comments from raw, returning the directive-name-plus-clauses text.
func (n *Normalizer) Normalize(raw string) (string, error) {
	switch n.Language {
	case hostlang.C, hostlang.CPP:
		return NormalizeC(raw, n.Dialect)
	case hostlang.FortranFree:
		return NormalizeFortranFree(raw, n.Dialect)
	case hostlang.FortranFixed:
		return NormalizeFortranFixed(raw, n.Dialect)
	default:
		return "", &SentinelError{Message: "unknown host language"}
	}
}
