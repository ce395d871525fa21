package registry

import (
	"strings"

	"github.com/leapstack-labs/roup/pkg/concrete"
	"github.com/leapstack-labs/roup/pkg/hostlang"
	"github.com/leapstack-labs/roup/pkg/ir"
)

// Builder accumulates directive and clause rules before Build freezes them
// into an immutable Registry.
type Builder struct {
	dialect         hostlang.Dialect
	caseInsensitive bool
	directiveRules  map[string]DirectiveRule
	clauseRules     map[string]ClauseRule
	defaultClause   ClauseRule
}

// NewBuilder starts a registry under construction for one dialect.
func NewBuilder(dialect hostlang.Dialect, caseInsensitive bool) *Builder {
	return &Builder{
		dialect:         dialect,
		caseInsensitive: caseInsensitive,
		directiveRules:  make(map[string]DirectiveRule),
		clauseRules:     make(map[string]ClauseRule),
		defaultClause:   ClauseRule{Kind: ClauseRuleFlexible},
	}
}

// RegisterDirectiveNames registers every name in names with a Generic rule
// (no parameter; parse clauses directly).
func (b *Builder) RegisterDirectiveNames(names []string) *Builder {
	for _, n := range names {
		b.directiveRules[n] = DirectiveRule{Kind: DirectiveRuleGeneric}
	}
	return b
}

// RegisterCustomDirective overrides name's rule with a directive-specific
// parameter parser.
func (b *Builder) RegisterCustomDirective(name string, parser DirectiveParamParser) *Builder {
	b.directiveRules[name] = DirectiveRule{Kind: DirectiveRuleCustom, Custom: parser}
	return b
}

// RegisterClauseBare registers a clause with no payload.
func (b *Builder) RegisterClauseBare(names ...string) *Builder {
	for _, n := range names {
		b.clauseRules[n] = ClauseRule{Kind: ClauseRuleBare}
	}
	return b
}

// RegisterClauseParenthesized registers a clause whose payload is kept as
// uninterpreted text until pkg/convert structures it.
func (b *Builder) RegisterClauseParenthesized(names ...string) *Builder {
	for _, n := range names {
		b.clauseRules[n] = ClauseRule{Kind: ClauseRuleParenthesized}
	}
	return b
}

// RegisterClauseFlexible registers a clause whose "(...)" is optional.
func (b *Builder) RegisterClauseFlexible(names ...string) *Builder {
	for _, n := range names {
		b.clauseRules[n] = ClauseRule{Kind: ClauseRuleFlexible}
	}
	return b
}

// RegisterClauseCustom registers a clause with a concrete-tree-structuring
// parser, optionally tolerating a bare (unparenthesized) occurrence.
func (b *Builder) RegisterClauseCustom(allowBare bool, parser ClauseParserFunc, names ...string) *Builder {
	for _, n := range names {
		b.clauseRules[n] = ClauseRule{Kind: ClauseRuleCustom, Custom: parser, AllowBareCustom: allowBare}
	}
	return b
}

// WithDefaultClauseRule sets the fallback rule for names not found in the
// registry.
func (b *Builder) WithDefaultClauseRule(rule ClauseRule) *Builder {
	b.defaultClause = rule
	return b
}

// Build freezes the builder into an immutable Registry, precomputing the
// lowercase side-maps once.
func (b *Builder) Build() *Registry {
	r := &Registry{
		dialect:           b.dialect,
		caseInsensitive:   b.caseInsensitive,
		directiveRules:    b.directiveRules,
		clauseRules:       b.clauseRules,
		defaultClauseRule: b.defaultClause,
	}
	if b.caseInsensitive {
		r.directiveRulesLower = make(map[string]directiveEntry, len(b.directiveRules))
		for k, v := range b.directiveRules {
			r.directiveRulesLower[strings.ToLower(k)] = directiveEntry{canonical: k, rule: v}
		}
		r.clauseRulesLower = make(map[string]clauseEntry, len(b.clauseRules))
		for k, v := range b.clauseRules {
			r.clauseRulesLower[strings.ToLower(k)] = clauseEntry{canonical: k, rule: v}
		}
	}
	return r
}

// accDirectiveNames lists the canonical directive names OpenACC recognizes:
// its own constructs, plus the handful the two dialects share verbatim
// (parallel, loop family, atomic family), since DirectiveKind's data model
// is dialect-agnostic (no per-kind Dialect field).
var accDirectiveNames = []string{
	"parallel", "loop", "parallel loop", "parallel loop simd",
	"kernels", "kernels loop", "serial", "serial loop",
	"data", "enter data", "exit data", "host_data",
	"declare", "wait", "routine", "set", "init", "shutdown", "cache", "update",
	"atomic", "atomic read", "atomic write", "atomic update", "atomic capture",
	"end", "end parallel",
}

// NewOpenMPRegistry builds the OpenMP directive/clause registry: every
// canonical DirectiveKind name, the handful that need a Custom parameter
// parser, and the full clause table.
func NewOpenMPRegistry(caseInsensitive bool) *Registry {
	b := NewBuilder(hostlang.OpenMP, caseInsensitive)

	var names []string
	for _, k := range ir.AllDirectiveKinds() {
		if k == ir.DirectiveOther {
			continue
		}
		names = append(names, k.String())
	}
	b.RegisterDirectiveNames(names)

	b.RegisterCustomDirective("cache", parseCacheParam)
	b.RegisterCustomDirective("wait", parseWaitParam)
	b.RegisterCustomDirective("routine", parseRoutineParam)
	b.RegisterCustomDirective("end", parseEndParam)
	b.RegisterCustomDirective("critical", parseNameParam)
	b.RegisterCustomDirective("scan", parseScanParam)
	b.RegisterCustomDirective("declare mapper", parseDeclareMapperParam)
	b.RegisterCustomDirective("depobj", parseNameParam)
	b.RegisterCustomDirective("cancel", parseNameParam)
	b.RegisterCustomDirective("cancellation point", parseNameParam)
	b.RegisterCustomDirective("declare reduction", parseDeclareReductionParam)
	b.RegisterCustomDirective("declare simd", parseNameParam)
	b.RegisterCustomDirective("flush", parseFlushParam)
	b.RegisterCustomDirective("threadprivate", parseParenListParam)
	b.RegisterCustomDirective("allocate", parseParenListParam)
	b.RegisterCustomDirective("declare target", parseDeclareTargetParam)
	b.RegisterCustomDirective("update", parseUpdateParam)

	registerOpenMPClauses(b)
	b.WithDefaultClauseRule(ClauseRule{Kind: ClauseRuleUnsupported})
	return b.Build()
}

// NewOpenACCRegistry builds the OpenACC directive/clause registry.
func NewOpenACCRegistry(caseInsensitive bool) *Registry {
	b := NewBuilder(hostlang.OpenACC, caseInsensitive)
	b.RegisterDirectiveNames(accDirectiveNames)

	b.RegisterCustomDirective("cache", parseCacheParam)
	b.RegisterCustomDirective("wait", parseWaitParam)
	b.RegisterCustomDirective("routine", parseRoutineParam)
	b.RegisterCustomDirective("update", parseUpdateParam)

	registerOpenACCClauses(b)
	b.WithDefaultClauseRule(ClauseRule{Kind: ClauseRuleFlexible})
	return b.Build()
}

func registerOpenMPClauses(b *Builder) {
	b.RegisterClauseBare("nowait", "untied", "mergeable", "threads", "simd", "inbranch",
		"notinbranch", "seq_cst", "acq_rel", "acquire", "release", "relaxed", "full", "partial")
	b.RegisterClauseCustom(false, variableListClause,
		"private", "firstprivate", "lastprivate", "shared", "copyin", "copyprivate",
		"uses_allocators", "in_reduction", "task_reduction", "is_device_ptr",
		"use_device_ptr", "use_device_addr", "has_device_addr", "enter", "link", "to", "from")
	b.RegisterClauseCustom(false, reductionClause, "reduction")
	b.RegisterClauseParenthesized(
		"default", "proc_bind", "schedule", "collapse", "if", "num_threads", "map",
		"depend", "linear", "device", "grainsize", "num_tasks", "bind", "order",
		"atomic_default_mem_order", "final", "priority", "safelen", "simdlen",
		"allocator", "align", "aligned", "num_teams", "thread_limit", "dist_schedule",
		"device_type", "when", "match", "partial", "sizes", "permutation", "full")
	b.RegisterClauseFlexible("ordered", "defaultmap")
}

func registerOpenACCClauses(b *Builder) {
	b.RegisterClauseBare("independent", "seq", "auto", "nohost", "finalize", "if_present", "readonly")
	b.RegisterClauseCustom(false, variableListClause, "private", "firstprivate")
	b.RegisterClauseCustom(false, reductionClause, "reduction")
	b.RegisterClauseCustom(true, accGangWorkerClauseKind(concrete.KindGang), "gang")
	b.RegisterClauseCustom(true, accGangWorkerClauseKind(concrete.KindWorker), "worker")
	b.RegisterClauseCustom(true, accGangWorkerClauseKind(concrete.KindVector), "vector")
	b.RegisterClauseCustom(false, accDataClauseKind(concrete.KindCopyIn), "copyin", "pcopyin", "present_or_copyin")
	b.RegisterClauseCustom(false, accDataClauseKind(concrete.KindCopyOut), "copyout", "pcopyout", "present_or_copyout")
	b.RegisterClauseCustom(false, accDataClauseKind(concrete.KindCreate), "create", "pcreate", "present_or_create")
	b.RegisterClauseParenthesized(
		"copy", "pcopy", "present_or_copy", "present", "deviceptr", "device_resident",
		"link", "num_gangs", "num_workers", "vector_length", "tile", "collapse",
		"default", "async", "wait", "device_type", "dtype", "if", "self", "host", "device")
}
