// Package convert implements lifting the concrete
// directive/clause tree produced by pkg/registry into the sum-typed IR of
// pkg/ir, dispatching each clause's remaining payload text through
// pkg/clauseparse's structured parsers.
package convert

import (
	"strings"

	"github.com/leapstack-labs/roup/pkg/clauseparse"
	"github.com/leapstack-labs/roup/pkg/concrete"
	"github.com/leapstack-labs/roup/pkg/hostlang"
	"github.com/leapstack-labs/roup/pkg/ir"
)

// NormalizationMode selects how repeated clauses of the same name are
// treated during lifting.
type NormalizationMode int32

const (
	// Disabled preserves clause order and duplicates exactly.
	Disabled NormalizationMode = iota
	// MergeVariableLists concatenates same-name variable-list clauses
	// (private, firstprivate, lastprivate, shared) into one, in source
	// order.
	MergeVariableLists
	// ParserParity is the default, matching the historical reference
	// parsers' behavior of merging duplicate variable-list clauses
	//; it behaves
	// identically to MergeVariableLists.
	ParserParity
)

// String renders the mode's config/flag spelling.
func (m NormalizationMode) String() string {
	switch m {
	case Disabled:
		return "disabled"
	case MergeVariableLists:
		return "merge_variable_lists"
	case ParserParity:
		return "parser_parity"
	default:
		return "unknown"
	}
}

// ParseNormalizationMode maps a CLI/config flag value to a NormalizationMode.
func ParseNormalizationMode(s string) (NormalizationMode, error) {
	switch s {
	case "disabled":
		return Disabled, nil
	case "merge_variable_lists", "merge-variable-lists":
		return MergeVariableLists, nil
	case "parser_parity", "parser-parity", "":
		return ParserParity, nil
	default:
		return 0, &ConversionError{Kind: Unknown, Message: "unknown normalization mode " + s}
	}
}

// Options configures one conversion pass.
type Options struct {
	Language                 hostlang.Language
	LanguageSemanticsEnabled bool
	Normalization            NormalizationMode
}

// DefaultOptions returns the standard configuration: full language-aware
// item discrimination and ParserParity clause merging.
func DefaultOptions(lang hostlang.Language) Options {
	return Options{Language: lang, LanguageSemanticsEnabled: true, Normalization: ParserParity}
}

func (o Options) itemConfig() clauseparse.Config {
	return clauseparse.Config{Language: o.Language, LanguageSemanticsEnabled: o.LanguageSemanticsEnabled}
}

// ConvertDirective lifts one concrete.Directive into a DirectiveIR.
// Unrecognized directive names (concrete.DirectiveName.IsOther) fail with
// an Unknown ConversionError; a clause whose payload cannot be converted
// fails the whole directive with that clause's ConversionError.
func ConvertDirective(d concrete.Directive, opts Options) (ir.DirectiveIR, error) {
	if d.Name.IsOther() {
		return ir.DirectiveIR{}, &ConversionError{Kind: Unknown, Message: "unrecognized directive name: " + d.Name.String()}
	}
	kind, ok := ir.LookupDirectiveKind(d.Name.Canonical)
	if !ok {
		return ir.DirectiveIR{}, &ConversionError{Kind: Unknown, Message: "no DirectiveKind for: " + d.Name.Canonical}
	}

	clauses := make([]ir.ClauseData, 0, len(d.Clauses))
	for _, c := range d.Clauses {
		cd, err := convertClause(c, opts)
		if err != nil {
			return ir.DirectiveIR{}, err
		}
		clauses = append(clauses, cd)
	}

	if opts.Normalization != Disabled {
		clauses = mergeVariableListClauses(clauses)
	}

	return ir.NewDirectiveIR(kind, d.Name.Canonical, clauses, d.Position, opts.Language), nil
}

// mergeVariableListClauses concatenates same-name adjacent-or-not
// variable-list clauses into the first occurrence, dropping later
// duplicates, preserving source order of items.
func mergeVariableListClauses(clauses []ir.ClauseData) []ir.ClauseData {
	firstIndex := make(map[ir.ClauseKind]int)
	var out []ir.ClauseData
	for _, c := range clauses {
		if !isVariableListKind(c.Kind) {
			out = append(out, c)
			continue
		}
		if idx, seen := firstIndex[c.Kind]; seen {
			out[idx].Items = append(out[idx].Items, c.Items...)
			continue
		}
		firstIndex[c.Kind] = len(out)
		out = append(out, c)
	}
	return out
}

func isVariableListKind(k ir.ClauseKind) bool {
	switch k {
	case ir.ClausePrivate, ir.ClauseFirstprivate, ir.ClauseLastprivate, ir.ClauseShared:
		return true
	}
	return false
}

// variableListClauseKinds maps the canonical names pkg/registry structures
// at the concrete layer as KindVariableList to their ClauseData kind; names
// with no dedicated ClauseData variant (copyin, copyprivate, ...) fall
// through to Generic.
var variableListClauseKinds = map[string]ir.ClauseKind{
	"private":      ir.ClausePrivate,
	"firstprivate": ir.ClauseFirstprivate,
	"lastprivate":  ir.ClauseLastprivate,
	"shared":       ir.ClauseShared,
}

func convertClause(c concrete.Clause, opts Options) (ir.ClauseData, error) {
	name := c.Name.String()
	switch c.Kind {
	case concrete.KindBare:
		return ir.ClauseData{Kind: ir.ClauseBare, Name: name}, nil

	case concrete.KindVariableList:
		items, err := itemsFromTokens(c.Variables, opts)
		if err != nil {
			return ir.ClauseData{}, clauseErr(name, err)
		}
		if kind, ok := variableListClauseKinds[name]; ok {
			return ir.ClauseData{Kind: kind, Name: name, Items: items}, nil
		}
		return ir.ClauseData{Kind: ir.ClauseGeneric, Name: name, GenericPayload: strings.Join(c.Variables, ", ")}, nil

	case concrete.KindReduction:
		data, err := reductionFromPayload(c.Reduction, opts)
		if err != nil {
			return ir.ClauseData{}, clauseErr(name, err)
		}
		return ir.ClauseData{Kind: ir.ClauseReduction, Name: name, Reduction: data}, nil

	case concrete.KindCopyIn, concrete.KindCopyOut, concrete.KindCreate:
		return ir.ClauseData{Kind: ir.ClauseGeneric, Name: name, GenericPayload: accDataText(c.AccData)}, nil

	case concrete.KindGang, concrete.KindWorker, concrete.KindVector:
		return ir.ClauseData{Kind: ir.ClauseGeneric, Name: name, GenericPayload: accGangWorkerText(c.AccGW)}, nil

	case concrete.KindParenthesized:
		return convertParenthesized(name, c.Parenthesized, opts)

	default:
		return ir.ClauseData{}, &ConversionError{Kind: Unknown, Clause: name, Message: "unrecognized concrete clause kind"}
	}
}

// convertParenthesized dispatches a parenthesized clause's raw payload to
// its specific structured parser, for the names ClauseData's sum type
// models explicitly; every other parenthesized clause name (the ACC
// data/async/gang-worker scalar forms, and the OpenMP scalars with no
// dedicated variant) becomes Generic, preserving the raw text for
// rendering.
func convertParenthesized(name, payload string, opts Options) (ir.ClauseData, error) {
	cfg := opts.itemConfig()
	switch name {
	case "map":
		data, err := clauseparse.ParseMap(payload, cfg)
		if err != nil {
			return ir.ClauseData{}, clauseErr(name, err)
		}
		return ir.ClauseData{Kind: ir.ClauseMap, Name: name, Map: data}, nil

	case "schedule":
		data, err := clauseparse.ParseSchedule(payload)
		if err != nil {
			return ir.ClauseData{}, clauseErr(name, err)
		}
		return ir.ClauseData{Kind: ir.ClauseSchedule, Name: name, Schedule: data}, nil

	case "linear":
		data, err := clauseparse.ParseLinear(payload, cfg)
		if err != nil {
			return ir.ClauseData{}, unsupportedOrSyntax(name, err)
		}
		return ir.ClauseData{Kind: ir.ClauseLinear, Name: name, Linear: data}, nil

	case "depend":
		data, err := clauseparse.ParseDepend(payload, cfg)
		if err != nil {
			return ir.ClauseData{}, clauseErr(name, err)
		}
		return ir.ClauseData{Kind: ir.ClauseDepend, Name: name, Depend: data}, nil

	case "if":
		return ir.ClauseData{Kind: ir.ClauseIf, Name: name, If: clauseparse.ParseIf(payload)}, nil

	case "default":
		kind, err := clauseparse.ParseDefault(payload)
		if err != nil {
			return ir.ClauseData{}, clauseErr(name, err)
		}
		return ir.ClauseData{Kind: ir.ClauseDefault, Name: name, Default: kind}, nil

	case "proc_bind":
		pb, err := clauseparse.ParseProcBind(payload)
		if err != nil {
			return ir.ClauseData{}, clauseErr(name, err)
		}
		return ir.ClauseData{Kind: ir.ClauseProcBind, Name: name, ProcBind: pb}, nil

	case "num_threads":
		return ir.ClauseData{Kind: ir.ClauseNumThreads, Name: name, NumThreads: ir.NewExpression(strings.TrimSpace(payload))}, nil

	case "collapse":
		return ir.ClauseData{Kind: ir.ClauseCollapse, Name: name, Collapse: ir.NewExpression(strings.TrimSpace(payload))}, nil

	case "atomic_default_mem_order":
		mo, err := clauseparse.ParseAtomicDefaultMemOrder(payload)
		if err != nil {
			return ir.ClauseData{}, clauseErr(name, err)
		}
		return ir.ClauseData{Kind: ir.ClauseAtomicDefaultMemOrder, Name: name, AtomicDefaultMemOrder: mo}, nil

	case "bind":
		k, err := clauseparse.ParseOrderKind(payload)
		if err != nil {
			return ir.ClauseData{}, clauseErr(name, err)
		}
		return ir.ClauseData{Kind: ir.ClauseBind, Name: name, Bind: k}, nil

	case "order":
		k, err := clauseparse.ParseOrderKind(payload)
		if err != nil {
			return ir.ClauseData{}, clauseErr(name, err)
		}
		return ir.ClauseData{Kind: ir.ClauseOrder, Name: name, Order: k}, nil

	case "grainsize":
		sm := clauseparse.ParseStrictModifierExpr(payload)
		return ir.ClauseData{Kind: ir.ClauseGrainsize, Name: name, Grainsize: sm.Expr, GrainsizeStrict: sm.Strict}, nil

	case "num_tasks":
		sm := clauseparse.ParseStrictModifierExpr(payload)
		return ir.ClauseData{Kind: ir.ClauseNumTasks, Name: name, NumTasks: sm.Expr, NumTasksStrict: sm.Strict}, nil

	case "device":
		dm := clauseparse.ParseDeviceModifierExpr(payload)
		return ir.ClauseData{Kind: ir.ClauseDevice, Name: name, Device: dm.Expr, DeviceModifier: dm.Modifier}, nil

	case "depobj_update":
		dt, err := clauseparse.ParseDepobjUpdate(payload)
		if err != nil {
			return ir.ClauseData{}, clauseErr(name, err)
		}
		return ir.ClauseData{Kind: ir.ClauseDepobjUpdate, Name: name, DepobjUpdate: dt}, nil

	case "ordered":
		if strings.TrimSpace(payload) == "" {
			return ir.ClauseData{Kind: ir.ClauseOrdered, Name: name}, nil
		}
		expr := ir.NewExpression(strings.TrimSpace(payload))
		return ir.ClauseData{Kind: ir.ClauseOrdered, Name: name, Ordered: &expr}, nil

	default:
		return ir.ClauseData{Kind: ir.ClauseGeneric, Name: name, GenericPayload: payload}, nil
	}
}

func itemsFromTokens(tokens []string, opts Options) ([]ir.ClauseItem, error) {
	cfg := opts.itemConfig()
	items := make([]ir.ClauseItem, 0, len(tokens))
	for _, tok := range tokens {
		item, err := clauseparse.ParseItem(tok, cfg)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

func reductionFromPayload(p concrete.ReductionPayload, opts Options) (ir.ReductionData, error) {
	items, err := itemsFromTokens(p.Variables, opts)
	if err != nil {
		return ir.ReductionData{}, err
	}
	data := ir.ReductionData{SpaceAfterColon: p.SpaceAfterColon, Items: items}
	if op, known := ir.LookupReductionOperator(p.Operator); known {
		data.Operator = op
	} else {
		data.Operator = ir.ReductionOther
		data.UserDefinedIdentifier = p.Operator
	}
	return data, nil
}

func accDataText(p concrete.AccDataPayload) string {
	var b strings.Builder
	switch p.Modifier {
	case concrete.AccModifierReadonly:
		b.WriteString("readonly: ")
	case concrete.AccModifierZero:
		b.WriteString("zero: ")
	}
	b.WriteString(strings.Join(p.Variables, ", "))
	return b.String()
}

func accGangWorkerText(p concrete.AccGangWorkerPayload) string {
	var b strings.Builder
	switch p.Modifier {
	case concrete.AccGWModifierNum:
		b.WriteString("num: ")
	case concrete.AccGWModifierStatic:
		b.WriteString("static: ")
	case concrete.AccGWModifierLength:
		b.WriteString("length: ")
	}
	b.WriteString(strings.Join(p.Expressions, ", "))
	return b.String()
}

func clauseErr(name string, err error) error {
	return &ConversionError{Kind: InvalidClauseSyntax, Clause: name, Message: err.Error(), Cause: err}
}

func unsupportedOrSyntax(name string, err error) error {
	if cse, ok := err.(*clauseparse.ClauseSyntaxError); ok && strings.Contains(cse.Message, "not supported") {
		return &ConversionError{Kind: Unsupported, Clause: name, Message: cse.Message, Cause: err}
	}
	return clauseErr(name, err)
}
