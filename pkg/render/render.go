// Package render implements rendering a typed DirectiveIR back
// to host-language text, translating that text between C/C++ and Fortran
// spellings, and a redacted form for logging and corpus analysis.
package render

import (
	"strconv"
	"strings"

	"github.com/leapstack-labs/roup/pkg/hostlang"
	"github.com/leapstack-labs/roup/pkg/ir"
)

// sentinel returns the host-language prefix a directive is emitted under.
func sentinel(lang hostlang.Language, dialect hostlang.Dialect) string {
	switch lang {
	case hostlang.FortranFree, hostlang.FortranFixed:
		return "!$" + dialect.String() + " "
	default:
		return "#pragma " + dialect.String() + " "
	}
}

// Directive renders d to its canonical textual form under dialect, using
// d.Language() to choose the sentinel and directive/clause spelling.
func Directive(d ir.DirectiveIR, dialect hostlang.Dialect) string {
	var b strings.Builder
	b.WriteString(sentinel(d.Language(), dialect))
	b.WriteString(TranslateName(d.Name(), d.Language()))
	for _, c := range d.Clauses() {
		b.WriteByte(' ')
		b.WriteString(clauseText(c, d.Language()))
	}
	return b.String()
}

// Plain renders d with every expression replaced by "<expr>" and every
// identifier/variable by "<identifier>".
func Plain(d ir.DirectiveIR, dialect hostlang.Dialect) string {
	var b strings.Builder
	b.WriteString(sentinel(d.Language(), dialect))
	b.WriteString(TranslateName(d.Name(), d.Language()))
	for _, c := range d.Clauses() {
		b.WriteByte(' ')
		b.WriteString(redactedClauseText(c))
	}
	return b.String()
}

// Translate returns a copy of d retargeted at lang by updating its language
// tag only. The directive name's for/do spelling and the clause payloads
// are translated at render time by Directive (via TranslateName and
// clauseText), which consult d.Language(); DirectiveKind itself is
// dialect/language-agnostic.
func Translate(d ir.DirectiveIR, lang hostlang.Language) ir.DirectiveIR {
	return d.WithLanguage(lang)
}

// TranslateName swaps every whole "for"/"do" word in name for the spelling
// target prefers, covering combined forms like "parallel for" <-> "parallel
// do" and nested ones that embed for/do anywhere in the word sequence.
func TranslateName(name string, target hostlang.Language) string {
	words := strings.Fields(name)
	for i, w := range words {
		switch {
		case target.IsFortran() && w == "for":
			words[i] = "do"
		case !target.IsFortran() && w == "do":
			words[i] = "for"
		}
	}
	return strings.Join(words, " ")
}

func clauseText(c ir.ClauseData, lang hostlang.Language) string {
	name := c.ClauseName()
	switch c.Kind {
	case ir.ClauseBare:
		return name
	case ir.ClauseGeneric:
		if c.GenericPayload == "" {
			return name
		}
		return name + "(" + c.GenericPayload + ")"
	case ir.ClausePrivate, ir.ClauseFirstprivate, ir.ClauseLastprivate, ir.ClauseShared:
		return name + "(" + itemsText(c.Items, lang) + ")"
	case ir.ClauseDefault:
		return name + "(" + c.Default.String() + ")"
	case ir.ClauseReduction:
		op := c.Reduction.Operator.String()
		if c.Reduction.Operator == ir.ReductionOther {
			op = c.Reduction.UserDefinedIdentifier
		}
		colon := ":"
		if c.Reduction.SpaceAfterColon {
			colon = ": "
		}
		return name + "(" + op + colon + itemsText(c.Reduction.Items, lang) + ")"
	case ir.ClauseMap:
		var prefix string
		if c.Map.MapType != nil {
			prefix = c.Map.MapType.String() + ": "
		}
		return name + "(" + prefix + itemsText(c.Map.Items, lang) + ")"
	case ir.ClauseSchedule:
		s := c.Schedule.Kind.String()
		if c.Schedule.ChunkSize != nil {
			s += ", " + c.Schedule.ChunkSize.Text
		}
		return name + "(" + s + ")"
	case ir.ClauseLinear:
		s := itemsText(c.Linear.Items, lang)
		if c.Linear.Step != nil {
			s += ": " + c.Linear.Step.Text
		}
		return name + "(" + s + ")"
	case ir.ClauseIf:
		s := c.If.Condition.Text
		if c.If.DirectiveNameModifier != "" {
			s = c.If.DirectiveNameModifier + ": " + s
		}
		return name + "(" + s + ")"
	case ir.ClauseNumThreads:
		return name + "(" + c.NumThreads.Text + ")"
	case ir.ClauseProcBind:
		return name + "(" + c.ProcBind.String() + ")"
	case ir.ClauseCollapse:
		return name + "(" + c.Collapse.Text + ")"
	case ir.ClauseOrdered:
		if c.Ordered == nil {
			return name
		}
		return name + "(" + c.Ordered.Text + ")"
	case ir.ClauseDepend:
		return name + "(" + c.Depend.DependType.String() + ": " + itemsText(c.Depend.Items, lang) + ")"
	case ir.ClauseAtomicDefaultMemOrder:
		return name + "(" + c.AtomicDefaultMemOrder.String() + ")"
	case ir.ClauseBind:
		return name + "(" + c.Bind.String() + ")"
	case ir.ClauseOrder:
		return name + "(" + c.Order.String() + ")"
	case ir.ClauseGrainsize:
		s := c.Grainsize.Text
		if c.GrainsizeStrict {
			s = "strict: " + s
		}
		return name + "(" + s + ")"
	case ir.ClauseNumTasks:
		s := c.NumTasks.Text
		if c.NumTasksStrict {
			s = "strict: " + s
		}
		return name + "(" + s + ")"
	case ir.ClauseDevice:
		s := c.Device.Text
		if c.DeviceModifier != "" {
			s = c.DeviceModifier + ": " + s
		}
		return name + "(" + s + ")"
	case ir.ClauseDepobjUpdate:
		return name + "(" + c.DepobjUpdate.String() + ")"
	default:
		return name
	}
}

func itemsText(items []ir.ClauseItem, lang hostlang.Language) string {
	parts := make([]string, len(items))
	for i, it := range items {
		parts[i] = itemText(it, lang)
	}
	return strings.Join(parts, ", ")
}

// itemText renders one clause item under lang, converting array sections
// between C bracket form and Fortran parenthesized lower:upper:stride form.
func itemText(it ir.ClauseItem, lang hostlang.Language) string {
	switch it.Kind {
	case ir.ItemIdentifier:
		return it.Identifier.Text
	case ir.ItemExpression:
		return it.Expression.Text
	case ir.ItemVariable:
		if !lang.IsFortran() {
			return it.Variable.String()
		}
		var b strings.Builder
		b.WriteString(it.Variable.Name)
		for _, sec := range it.Variable.ArraySections {
			b.WriteString(fortranSection(sec))
		}
		return b.String()
	default:
		return ""
	}
}

// fortranSection renders a length-form array section in Fortran's
// lower:upper:stride form: upper = lower + length - 1. Both bounds default
// to empty when absent, matching the open bounds Fortran assumed-shape
// sections allow.
func fortranSection(sec ir.ArraySection) string {
	lower := ""
	if sec.LowerBound != nil {
		lower = sec.LowerBound.Text
	}
	upper := ""
	if sec.Length != nil {
		upper = fortranUpperBound(lower, sec.Length.Text)
	}
	s := "(" + lower + ":" + upper
	if sec.Stride != nil {
		s += ":" + sec.Stride.Text
	}
	return s + ")"
}

// fortranUpperBound computes "lower + length - 1" textually, folding the
// arithmetic when both operands are integer literals and falling back to an
// explicit expression otherwise.
func fortranUpperBound(lower, length string) string {
	if lower == "" {
		return length
	}
	li, lerr := strconv.Atoi(lower)
	ni, nerr := strconv.Atoi(length)
	if lerr == nil && nerr == nil {
		return strconv.Itoa(li + ni - 1)
	}
	return lower + "+" + length + "-1"
}

func redactedClauseText(c ir.ClauseData) string {
	name := c.ClauseName()
	switch c.Kind {
	case ir.ClauseBare:
		return name
	case ir.ClauseGeneric:
		if c.GenericPayload == "" {
			return name
		}
		return name + "(<expr>)"
	case ir.ClausePrivate, ir.ClauseFirstprivate, ir.ClauseLastprivate, ir.ClauseShared:
		return name + "(" + redactedItems(len(c.Items)) + ")"
	case ir.ClauseReduction:
		op := c.Reduction.Operator.String()
		if c.Reduction.Operator == ir.ReductionOther {
			op = "<identifier>"
		}
		return name + "(" + op + ": " + redactedItems(len(c.Reduction.Items)) + ")"
	case ir.ClauseMap:
		return name + "(" + redactedItems(len(c.Map.Items)) + ")"
	case ir.ClauseIf:
		return name + "(<expr>)"
	case ir.ClauseNumThreads:
		return name + "(<expr>)"
	case ir.ClauseCollapse:
		return name + "(<expr>)"
	case ir.ClauseDepend:
		return name + "(" + c.Depend.DependType.String() + ": " + redactedItems(len(c.Depend.Items)) + ")"
	default:
		return name
	}
}

func redactedItems(n int) string {
	parts := make([]string, n)
	for i := range parts {
		parts[i] = "<identifier>"
	}
	return strings.Join(parts, ", ")
}
