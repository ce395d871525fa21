package ir

import "github.com/leapstack-labs/roup/pkg/hostlang"

// DirectiveIR is the complete, semantically lifted representation of one
// parsed directive. It owns all of its strings; conversion from
// the concrete tree severs any borrow of the original input buffer.
type DirectiveIR struct {
	kind     DirectiveKind
	name     string
	clauses  []ClauseData
	location hostlang.Position
	language hostlang.Language
}

// NewDirectiveIR constructs a DirectiveIR. Clauses are copied by reference
// (the slice is retained as given); callers should not mutate it afterward.
func NewDirectiveIR(kind DirectiveKind, name string, clauses []ClauseData, location hostlang.Position, language hostlang.Language) DirectiveIR {
	return DirectiveIR{kind: kind, name: name, clauses: clauses, location: location, language: language}
}

// Kind returns the directive's canonical kind.
func (d DirectiveIR) Kind() DirectiveKind { return d.kind }

// Name returns the directive's canonical textual name.
func (d DirectiveIR) Name() string { return d.name }

// Clauses returns the directive's clauses in source order.
func (d DirectiveIR) Clauses() []ClauseData { return d.clauses }

// Location returns the directive's source position.
func (d DirectiveIR) Location() hostlang.Position { return d.location }

// Language returns the host language this directive is currently rendered
// in. Setting it to a different language (WithLanguage) is how pkg/render
// performs language translation.
func (d DirectiveIR) Language() hostlang.Language { return d.language }

// WithLanguage returns a copy of d retargeted at a different host language,
// leaving kind/name/clauses/location untouched; pkg/render consults the new
// language to pick translated spellings and array-section syntax.
func (d DirectiveIR) WithLanguage(lang hostlang.Language) DirectiveIR {
	d.language = lang
	return d
}
