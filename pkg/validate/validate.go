package validate

import "github.com/leapstack-labs/roup/pkg/ir"

// Context checks clause compatibility for one directive kind.
type Context struct {
	directive ir.DirectiveKind
}

// NewContext builds a validation context for directive.
func NewContext(directive ir.DirectiveKind) Context {
	return Context{directive: directive}
}

// IsClauseAllowed reports whether clause may appear on the context's
// directive kind, per the per-clause allowedness table below.
func (c Context) IsClauseAllowed(clause ir.ClauseData) error {
	name := clause.ClauseName()
	d := c.directive

	switch clause.Kind {
	case ir.ClauseBare:
		if name == "nowait" {
			if d.IsWorksharing() || d == ir.DirectiveTarget {
				return nil
			}
			return &Error{Kind: ClauseNotAllowed, ClauseName: name, Directive: d.String(),
				Reason: "nowait only allowed on worksharing constructs (for, sections, single) or target"}
		}
		return nil

	case ir.ClauseReduction:
		if d.IsParallel() || d.IsWorksharing() || d.IsSimd() || d.IsTeams() {
			return nil
		}
		return &Error{Kind: ClauseNotAllowed, ClauseName: name, Directive: d.String(),
			Reason: "reduction requires parallel, worksharing, simd, or teams context"}

	case ir.ClauseSchedule:
		if d.IsLoop() || d.IsWorksharing() {
			return nil
		}
		return &Error{Kind: ClauseNotAllowed, ClauseName: name, Directive: d.String(),
			Reason: "schedule only allowed on loop constructs (for, parallel for, etc.)"}

	case ir.ClauseNumThreads:
		if d.IsParallel() {
			return nil
		}
		return &Error{Kind: ClauseNotAllowed, ClauseName: name, Directive: d.String(),
			Reason: "num_threads only allowed on parallel constructs"}

	case ir.ClauseMap:
		if d.IsTarget() {
			return nil
		}
		return &Error{Kind: ClauseNotAllowed, ClauseName: name, Directive: d.String(),
			Reason: "map only allowed on target constructs"}

	case ir.ClauseDepend:
		if d.IsTask() || d == ir.DirectiveOrdered {
			return nil
		}
		return &Error{Kind: ClauseNotAllowed, ClauseName: name, Directive: d.String(),
			Reason: "depend only allowed on task constructs or ordered"}

	case ir.ClauseLinear:
		if d.IsSimd() || d.IsLoop() {
			return nil
		}
		return &Error{Kind: ClauseNotAllowed, ClauseName: name, Directive: d.String(),
			Reason: "linear only allowed on simd or loop constructs"}

	case ir.ClauseCollapse:
		if d.IsLoop() || d.IsWorksharing() {
			return nil
		}
		return &Error{Kind: ClauseNotAllowed, ClauseName: name, Directive: d.String(),
			Reason: "collapse only allowed on loop constructs"}

	case ir.ClauseOrdered:
		if d.IsLoop() || d.IsWorksharing() {
			return nil
		}
		return &Error{Kind: ClauseNotAllowed, ClauseName: name, Directive: d.String(),
			Reason: "ordered only allowed on loop constructs"}

	case ir.ClauseProcBind:
		if d.IsParallel() {
			return nil
		}
		return &Error{Kind: ClauseNotAllowed, ClauseName: name, Directive: d.String(),
			Reason: "proc_bind only allowed on parallel constructs"}

	case ir.ClausePrivate, ir.ClauseFirstprivate, ir.ClauseLastprivate, ir.ClauseShared:
		return nil

	case ir.ClauseDefault:
		if d.IsParallel() || d.IsTask() {
			return nil
		}
		return &Error{Kind: ClauseNotAllowed, ClauseName: name, Directive: d.String(),
			Reason: "default only allowed on parallel or task constructs"}

	case ir.ClauseIf:
		return nil

	case ir.ClauseDevice:
		if d.IsTarget() {
			return nil
		}
		return &Error{Kind: ClauseNotAllowed, ClauseName: name, Directive: d.String(),
			Reason: "device only allowed on target constructs"}

	case ir.ClauseDepobjUpdate:
		if d.IsDepobj() {
			return nil
		}
		return &Error{Kind: ClauseNotAllowed, ClauseName: name, Directive: d.String(),
			Reason: "depobj_update only allowed on depobj"}

	case ir.ClauseGrainsize, ir.ClauseNumTasks:
		if d == ir.DirectiveTaskloop {
			return nil
		}
		return &Error{Kind: ClauseNotAllowed, ClauseName: name, Directive: d.String(),
			Reason: "grainsize/num_tasks only allowed on taskloop"}

	case ir.ClauseGeneric:
		return nil

	default:
		return nil
	}
}

// ValidateAll checks every clause's allowedness plus the directive's
// conflict rules, returning every violation found rather than stopping at
// the first.
func (c Context) ValidateAll(clauses []ir.ClauseData) []error {
	var errs []error
	for _, clause := range clauses {
		if err := c.IsClauseAllowed(clause); err != nil {
			errs = append(errs, err)
		}
	}
	errs = append(errs, c.checkConflicts(clauses)...)
	return errs
}

func (c Context) checkConflicts(clauses []ir.ClauseData) []error {
	var errs []error

	count := func(k ir.ClauseKind) int {
		n := 0
		for _, cl := range clauses {
			if cl.Kind == k {
				n++
			}
		}
		return n
	}

	if n := count(ir.ClauseDefault); n > 1 {
		errs = append(errs, &Error{Kind: InvalidCombination, Clauses: repeat("default", n),
			Reason: "only one default clause allowed"})
	}
	if n := count(ir.ClauseNumThreads); n > 1 {
		errs = append(errs, &Error{Kind: InvalidCombination, Clauses: repeat("num_threads", n),
			Reason: "only one num_threads clause allowed"})
	}
	if n := count(ir.ClauseProcBind); n > 1 {
		errs = append(errs, &Error{Kind: InvalidCombination, Clauses: repeat("proc_bind", n),
			Reason: "only one proc_bind clause allowed"})
	}

	hasOrdered := false
	hasAutoRuntime := false
	for _, cl := range clauses {
		if cl.Kind == ir.ClauseOrdered {
			hasOrdered = true
		}
		if cl.Kind == ir.ClauseSchedule && (cl.Schedule.Kind == ir.ScheduleAuto || cl.Schedule.Kind == ir.ScheduleRuntime) {
			hasAutoRuntime = true
		}
	}
	if hasOrdered && hasAutoRuntime {
		errs = append(errs, &Error{Kind: ConflictingClauses, Clause1: "ordered", Clause2: "schedule(auto/runtime)",
			Reason: "ordered not compatible with schedule(auto) or schedule(runtime)"})
	}

	return errs
}

func repeat(s string, n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = s
	}
	return out
}

// Directive validates d's clauses against its own kind.
func Directive(d ir.DirectiveIR) []error {
	return NewContext(d.Kind()).ValidateAll(d.Clauses())
}
