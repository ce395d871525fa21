// Package registry implements the dialect-specific directive
// and clause name registries, longest-match directive recognition, and
// clause-sequence parsing that hands off to pkg/clauseparse for structured
// payloads.
package registry

import (
	"strings"

	"github.com/leapstack-labs/roup/pkg/clauseparse"
	"github.com/leapstack-labs/roup/pkg/concrete"
	"github.com/leapstack-labs/roup/pkg/hostlang"
)

// Registry holds one dialect's directive and clause rule tables. It is
// built once per (dialect, case-sensitivity) pair and is immutable and
// safe to share across goroutines thereafter.
type Registry struct {
	dialect         hostlang.Dialect
	caseInsensitive bool

	directiveRules      map[string]DirectiveRule
	directiveRulesLower map[string]directiveEntry

	clauseRules      map[string]ClauseRule
	clauseRulesLower map[string]clauseEntry
	defaultClauseRule ClauseRule
}

// directiveEntry pairs a case-insensitively looked-up rule with the
// registry's canonical spelling, so a case-insensitive match (Fortran)
// normalizes to that spelling rather than preserving the input's casing.
type directiveEntry struct {
	canonical string
	rule      DirectiveRule
}

type clauseEntry struct {
	canonical string
	rule      ClauseRule
}

func (r *Registry) lookupDirectiveRule(candidate string) (string, DirectiveRule, bool) {
	if r.caseInsensitive {
		e, ok := r.directiveRulesLower[strings.ToLower(candidate)]
		return e.canonical, e.rule, ok
	}
	rule, ok := r.directiveRules[candidate]
	return candidate, rule, ok
}

func (r *Registry) lookupClauseRule(name string) (string, ClauseRule, bool) {
	if r.caseInsensitive {
		e, ok := r.clauseRulesLower[strings.ToLower(name)]
		return e.canonical, e.rule, ok
	}
	rule, ok := r.clauseRules[name]
	return name, rule, ok
}

// RecognizeDirective matches the longest canonical directive name whose
// words prefix the normalized token stream. It always returns a result: an
// unmatched stream falls back to the Other escape holding the first word,
// so recognition is total on syntactically valid input.
//
// The last word considered for a given k may run straight into a "(" with
// no separating space ("critical(name1)", "cache(readonly: a, b)"), since
// only top-level spaces break splitTopLevelWords' words and a directive's
// own parameter list attaches directly to its name. So each candidate's
// last word is tried both whole and split at its identifier prefix.
func (r *Registry) RecognizeDirective(normalized string) (concrete.DirectiveName, DirectiveRule, string) {
	words := splitTopLevelWords(normalized)
	if len(words) == 0 {
		return concrete.OtherDirectiveName(""), DirectiveRule{Kind: DirectiveRuleGeneric}, ""
	}
	for k := len(words); k >= 1; k-- {
		lastIdent, lastRemainder := leadingIdentifier(words[k-1])
		if lastIdent == "" || lastIdent == words[k-1] {
			candidate := joinWords(words[:k])
			if canonical, rule, ok := r.lookupDirectiveRule(candidate); ok {
				return concrete.CanonicalDirectiveName(canonical), rule, joinWords(words[k:])
			}
			continue
		}
		candidate := joinWords(append(append([]string{}, words[:k-1]...), lastIdent))
		if canonical, rule, ok := r.lookupDirectiveRule(candidate); ok {
			rest := lastRemainder
			if tail := joinWords(words[k:]); tail != "" {
				if rest != "" {
					rest += " " + tail
				} else {
					rest = tail
				}
			}
			return concrete.CanonicalDirectiveName(canonical), rule, rest
		}
	}
	ident, remainder := leadingIdentifier(words[0])
	if ident == "" {
		ident = words[0]
		remainder = ""
	}
	rest := remainder
	if tail := joinWords(words[1:]); tail != "" {
		if rest != "" {
			rest += " " + tail
		} else {
			rest = tail
		}
	}
	return concrete.OtherDirectiveName(ident), DirectiveRule{Kind: DirectiveRuleGeneric}, rest
}

// ParseDirective recognizes the directive name, parses its parameter (if
// any), and parses its clause sequence, producing the concrete tree.
func (r *Registry) ParseDirective(normalized string, lang hostlang.Language) (concrete.Directive, error) {
	name, rule, rest := r.RecognizeDirective(normalized)

	param, cache, wait, remaining, err := rule.parseParam(rest, lang)
	if err != nil {
		return concrete.Directive{}, err
	}

	clauses, err := r.ParseClauseSequence(remaining, lang)
	if err != nil {
		return concrete.Directive{}, err
	}

	return concrete.Directive{
		Name:      name,
		Parameter: param,
		Clauses:   clauses,
		CacheData: cache,
		WaitData:  wait,
	}, nil
}

// ParseClauseSequence repeatedly recognizes a clause name and dispatches to
// its rule until the input is exhausted.
func (r *Registry) ParseClauseSequence(rest string, lang hostlang.Language) ([]concrete.Clause, error) {
	rest = strings.TrimLeft(rest, " ")
	var clauses []concrete.Clause
	for rest != "" {
		name, after := leadingIdentifier(rest)
		if name == "" {
			return nil, &clauseparse.ClauseSyntaxError{Message: "expected clause name near: " + rest}
		}
		canonical, rule, ok := r.lookupClauseRule(name)
		clauseName := canonical
		if !ok {
			rule = r.defaultClauseRule
			clauseName = name
		}
		clause, tail, err := rule.parse(clauseName, after, lang)
		if err != nil {
			return nil, err
		}
		if !ok {
			clause.Name = concrete.OtherClauseName(name)
		}
		clauses = append(clauses, clause)
		rest = strings.TrimLeft(tail, " ")
	}
	return clauses, nil
}

// Dialect returns the dialect this registry was built for.
func (r *Registry) Dialect() hostlang.Dialect { return r.dialect }
