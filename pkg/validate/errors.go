// Package validate implements semantic validation of a typed
// DirectiveIR beyond what parsing already guarantees syntactically
// correct - whether each clause is allowed on its directive, and whether
// the directive's clause set conflicts with itself.
package validate

import "fmt"

// ErrorKind tags the variant of a ValidationError.
type ErrorKind int32

const (
	// ClauseNotAllowed means a clause's kind is not permitted on this
	// directive's kind (e.g. nowait on a bare parallel).
	ClauseNotAllowed ErrorKind = iota
	// ConflictingClauses means two clauses are individually allowed but
	// cannot coexist (ordered and schedule(auto/runtime)).
	ConflictingClauses
	// MissingRequiredClause means a directive requires a clause this IR
	// does not carry. Reserved for future required-clause rules; no
	// current rule raises it.
	MissingRequiredClause
	// InvalidCombination means more than one instance of a clause that may
	// appear at most once was found (default, num_threads, proc_bind).
	InvalidCombination
)

func (k ErrorKind) String() string {
	switch k {
	case ClauseNotAllowed:
		return "clause not allowed"
	case ConflictingClauses:
		return "conflicting clauses"
	case MissingRequiredClause:
		return "missing required clause"
	case InvalidCombination:
		return "invalid combination"
	default:
		return "<unknown validation error kind>"
	}
}

// Error reports one semantic validation failure.
type Error struct {
	Kind ErrorKind

	ClauseName string // ClauseNotAllowed
	Directive  string // ClauseNotAllowed, MissingRequiredClause
	Clause1    string // ConflictingClauses
	Clause2    string // ConflictingClauses
	Clauses    []string // InvalidCombination
	Required   string // MissingRequiredClause
	Reason     string
}

func (e *Error) Error() string {
	switch e.Kind {
	case ClauseNotAllowed:
		return fmt.Sprintf("clause %q not allowed on %q directive: %s", e.ClauseName, e.Directive, e.Reason)
	case ConflictingClauses:
		return fmt.Sprintf("conflicting clauses %q and %q: %s", e.Clause1, e.Clause2, e.Reason)
	case MissingRequiredClause:
		return fmt.Sprintf("directive %q requires clause %q", e.Directive, e.Required)
	case InvalidCombination:
		return fmt.Sprintf("invalid combination of clauses %v: %s", e.Clauses, e.Reason)
	default:
		return e.Reason
	}
}
