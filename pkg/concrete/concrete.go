// Package concrete holds the concrete directive/clause tree: the parser's
// direct output, still close to source text, before the typed-IR lifting
// step (pkg/convert) interprets clause payloads.
package concrete

import "github.com/leapstack-labs/roup/pkg/hostlang"

// DirectiveName is the concrete-tree name of a recognized directive: either
// one of the registry's canonical spellings, or the Other escape for text
// that matched no registered name.
type DirectiveName struct {
	Canonical string // "" when Other is set
	Other     string // set only when this name did not match the registry
}

// IsOther reports whether this name fell back to the escape variant.
func (n DirectiveName) IsOther() bool { return n.Canonical == "" }

// String returns the name's textual form, canonical or Other.
func (n DirectiveName) String() string {
	if n.IsOther() {
		return n.Other
	}
	return n.Canonical
}

// CanonicalDirectiveName builds a recognized DirectiveName.
func CanonicalDirectiveName(name string) DirectiveName {
	return DirectiveName{Canonical: name}
}

// OtherDirectiveName builds the Other escape for unrecognized text.
func OtherDirectiveName(text string) DirectiveName {
	return DirectiveName{Other: text}
}

// CacheData decomposes an OpenACC cache directive's parameter.
type CacheData struct {
	ReadOnly  bool
	Variables []string
}

// WaitData decomposes an OpenACC wait directive's parameter.
type WaitData struct {
	Devnum  string
	Queues  []string
	Expr    []string
}

// Directive is the parser's direct output for one directive occurrence.
type Directive struct {
	Name      DirectiveName
	Parameter string // directive-specific payload text, e.g. a critical section name
	Clauses   []Clause
	Position  hostlang.Position

	CacheData *CacheData
	WaitData  *WaitData
}

// ClauseName is the concrete-tree name of a recognized clause, with the
// same Other escape convention as DirectiveName.
type ClauseName struct {
	Canonical string
	Other     string
}

// IsOther reports whether this clause name fell back to the escape variant.
func (n ClauseName) IsOther() bool { return n.Canonical == "" }

func (n ClauseName) String() string {
	if n.IsOther() {
		return n.Other
	}
	return n.Canonical
}

// CanonicalClauseName builds a recognized ClauseName.
func CanonicalClauseName(name string) ClauseName {
	return ClauseName{Canonical: name}
}

// OtherClauseName builds the Other escape for unrecognized clause text.
func OtherClauseName(text string) ClauseName {
	return ClauseName{Other: text}
}

// ClauseKind tags the variant of a Clause's payload. Structured kinds are
// produced directly by the clause-specific parsers of pkg/clauseparse,
// ahead of the IR lifting step, placing them at the concrete-tree layer
// rather than deferring all structure to IR conversion.
type ClauseKind int32

const (
	KindBare ClauseKind = iota
	KindParenthesized
	KindVariableList
	KindReduction
	KindCopyIn
	KindCopyOut
	KindCreate
	KindGang
	KindWorker
	KindVector
)

// ReductionPayload is the concrete-tree payload of a reduction clause.
type ReductionPayload struct {
	Operator              string
	UserDefinedIdentifier string
	Variables             []string
	SpaceAfterColon        bool
}

// AccDataModifier is the optional readonly:/zero: modifier on an OpenACC
// copy*/create clause.
type AccDataModifier int32

const (
	AccModifierNone AccDataModifier = iota
	AccModifierReadonly
	AccModifierZero
)

// AccDataPayload is the concrete-tree payload of copyin/copyout/create.
type AccDataPayload struct {
	Modifier  AccDataModifier
	Variables []string
}

// AccGangWorkerModifier is the optional num:/static:/length: modifier on
// gang/worker/vector clauses.
type AccGangWorkerModifier int32

const (
	AccGWModifierNone AccGangWorkerModifier = iota
	AccGWModifierNum
	AccGWModifierStatic
	AccGWModifierLength
)

// AccGangWorkerPayload is the concrete-tree payload of gang/worker/vector.
type AccGangWorkerPayload struct {
	Modifier    AccGangWorkerModifier
	Expressions []string
}

// Clause is the parser's direct output for one clause occurrence.
type Clause struct {
	Name ClauseName
	Kind ClauseKind

	Parenthesized string // KindParenthesized: uninterpreted payload text
	Variables     []string // KindVariableList

	Reduction ReductionPayload     // KindReduction
	AccData   AccDataPayload       // KindCopyIn, KindCopyOut, KindCreate
	AccGW     AccGangWorkerPayload // KindGang, KindWorker, KindVector
}
