package ir

import "strings"

// These predicates are derived structurally from a DirectiveKind's canonical
// name rather than stored as flags, so a
// newly added combined directive automatically classifies correctly as long
// as its canonical name follows the usual OpenMP/OpenACC word order.

func (k DirectiveKind) words() []string {
	if k == DirectiveOther {
		return nil
	}
	return strings.Fields(k.String())
}

func (k DirectiveKind) hasWord(w string) bool {
	for _, tok := range k.words() {
		if tok == w {
			return true
		}
	}
	return false
}

func (k DirectiveKind) firstWord() string {
	f := k.words()
	if len(f) == 0 {
		return ""
	}
	return f[0]
}

// IsParallel reports whether k names a parallel region (plain or combined,
// e.g. "parallel for simd").
func (k DirectiveKind) IsParallel() bool {
	return k.hasWord("parallel")
}

// IsWorksharing reports whether k is (or combines) a worksharing construct:
// for/do, sections, single, or workshare. Declare/begin/end forms, which
// carry no clauses of their own, are excluded.
func (k DirectiveKind) IsWorksharing() bool {
	switch k.firstWord() {
	case "declare", "end", "begin":
		return false
	}
	return k.hasWord("for") || k.hasWord("do") || k.hasWord("sections") ||
		k.hasWord("single") || k.hasWord("workshare")
}

// IsLoop reports whether k is associated with a loop nest: for/do,
// distribute, simd, taskloop, or the OpenACC/loop-transform "loop" family.
func (k DirectiveKind) IsLoop() bool {
	switch k.firstWord() {
	case "declare", "begin":
		return false
	}
	return k.hasWord("for") || k.hasWord("do") || k.hasWord("distribute") ||
		k.hasWord("simd") || k.hasWord("loop") || k.hasWord("taskloop")
}

// IsSimd reports whether k applies SIMD semantics: any combined form
// containing "simd", plus the standalone "declare simd" directive.
func (k DirectiveKind) IsSimd() bool {
	if k.firstWord() == "declare" {
		return k == DirectiveDeclareSimd
	}
	return k.hasWord("simd")
}

// IsTarget reports whether k is a target-offload construct.
func (k DirectiveKind) IsTarget() bool {
	return k.hasWord("target")
}

// IsTeams reports whether k is (or combines) a teams construct.
func (k DirectiveKind) IsTeams() bool {
	return k.hasWord("teams")
}

// IsTask reports whether k is a task-family construct: task, taskloop,
// taskgroup, taskwait, taskyield.
func (k DirectiveKind) IsTask() bool {
	return k.hasWord("task") || k.hasWord("taskloop") || k.hasWord("taskgroup") ||
		k.hasWord("taskwait") || k.hasWord("taskyield")
}

// IsAtomic reports whether k is one of the atomic directive forms.
func (k DirectiveKind) IsAtomic() bool {
	return k.firstWord() == "atomic"
}

// IsDepobj reports whether k is the depobj directive.
func (k DirectiveKind) IsDepobj() bool {
	return k == DirectiveDepobj
}

// IsLoopTransform reports whether k is an OpenMP 6.0 loop-transformation
// construct (tile, unroll, split, stripe, fuse, interchange, reverse).
func (k DirectiveKind) IsLoopTransform() bool {
	switch k {
	case DirectiveTile, DirectiveUnroll, DirectiveSplit, DirectiveStripe,
		DirectiveFuse, DirectiveInterchange, DirectiveReverse:
		return true
	}
	return false
}
