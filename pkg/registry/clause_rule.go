package registry

import (
	"strings"

	"github.com/leapstack-labs/roup/pkg/clauseparse"
	"github.com/leapstack-labs/roup/pkg/concrete"
	"github.com/leapstack-labs/roup/pkg/hostlang"
)

// ClauseRuleKind tags how a clause's payload is recognized and parsed.
type ClauseRuleKind int32

const (
	ClauseRuleBare ClauseRuleKind = iota
	ClauseRuleParenthesized
	ClauseRuleFlexible
	ClauseRuleCustom
	ClauseRuleUnsupported
)

// ClauseParserFunc builds a concrete.Clause's structured fields from its
// already-extracted parenthesized payload text.
type ClauseParserFunc func(name string, payload string, lang hostlang.Language) (concrete.Clause, error)

// ClauseRule associates a clause name with its payload-recognition
// strategy. AllowBareCustom only applies to ClauseRuleCustom: it lets a
// custom clause (gang, worker, vector) appear without parentheses as a
// Bare clause, matching OpenACC's clauses that are bare by default and
// only carry a modifier/item list when parenthesized").
type ClauseRule struct {
	Kind            ClauseRuleKind
	Custom          ClauseParserFunc
	AllowBareCustom bool
}

func (r ClauseRule) parse(name, rest string, lang hostlang.Language) (concrete.Clause, string, error) {
	switch r.Kind {
	case ClauseRuleBare:
		return concrete.Clause{Name: concrete.CanonicalClauseName(name), Kind: concrete.KindBare}, rest, nil
	case ClauseRuleParenthesized:
		payload, tail, err := extractParenthesized(rest)
		if err != nil {
			return concrete.Clause{}, rest, err
		}
		return concrete.Clause{
			Name:          concrete.CanonicalClauseName(name),
			Kind:          concrete.KindParenthesized,
			Parenthesized: payload,
		}, tail, nil
	case ClauseRuleFlexible:
		if startsWithParen(rest) {
			return ClauseRule{Kind: ClauseRuleParenthesized}.parse(name, rest, lang)
		}
		return ClauseRule{Kind: ClauseRuleBare}.parse(name, rest, lang)
	case ClauseRuleCustom:
		if r.AllowBareCustom && !startsWithParen(rest) {
			return concrete.Clause{Name: concrete.CanonicalClauseName(name), Kind: concrete.KindBare}, rest, nil
		}
		payload, tail, err := extractParenthesized(rest)
		if err != nil {
			return concrete.Clause{}, rest, err
		}
		clause, cerr := r.Custom(name, payload, lang)
		if cerr != nil {
			return concrete.Clause{}, rest, cerr
		}
		return clause, tail, nil
	default:
		return concrete.Clause{}, rest, &UnsupportedClauseError{Name: name}
	}
}

// UnsupportedClauseError reports that a clause name matched the registry
// but its rule is Unsupported.
type UnsupportedClauseError struct {
	Name string
}

func (e *UnsupportedClauseError) Error() string {
	return "clause not supported: " + e.Name
}

func startsWithParen(s string) bool {
	return strings.HasPrefix(strings.TrimLeft(s, " \t"), "(")
}

// extractParenthesized requires rest to begin (after optional whitespace)
// with a balanced "(...)" group, returning its inner text and the
// remainder following the closing paren.
func extractParenthesized(rest string) (payload string, tail string, err error) {
	trimmed := strings.TrimLeft(rest, " \t")
	if !strings.HasPrefix(trimmed, "(") {
		return "", rest, &clauseparse.ClauseSyntaxError{Message: "expected '(' after clause name"}
	}
	depth := 0
	for i, c := range trimmed {
		switch c {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return trimmed[1:i], trimmed[i+1:], nil
			}
		}
	}
	return "", rest, &clauseparse.ClauseSyntaxError{Message: "unbalanced parentheses in clause payload"}
}

// variableListClause builds the Custom parser shared by private,
// firstprivate, lastprivate, and shared: a plain variable list with no
// further structuring beyond array-section discrimination.
func variableListClause(name, payload string, lang hostlang.Language) (concrete.Clause, error) {
	vars := clauseparse.SplitComma(payload)
	return concrete.Clause{
		Name:      concrete.CanonicalClauseName(name),
		Kind:      concrete.KindVariableList,
		Variables: vars,
	}, nil
}

// reductionClause builds the Custom parser for "reduction".
func reductionClause(name, payload string, lang hostlang.Language) (concrete.Clause, error) {
	before, after, ok := clauseparse.SplitTopLevelFirst(payload, ':')
	if !ok {
		return concrete.Clause{}, &clauseparse.ClauseSyntaxError{Message: "reduction clause missing ':'"}
	}
	// after comes back trimmed, so the space is read from the raw payload.
	rawAfter := strings.TrimLeft(payload[strings.Index(payload, before)+len(before):], " \t")
	return concrete.Clause{
		Name: concrete.CanonicalClauseName(name),
		Kind: concrete.KindReduction,
		Reduction: concrete.ReductionPayload{
			Operator:        strings.TrimSpace(before),
			Variables:       clauseparse.SplitComma(after),
			SpaceAfterColon: strings.HasPrefix(strings.TrimPrefix(rawAfter, ":"), " "),
		},
	}, nil
}

// accDataClauseKind builds the Custom parser shared by copyin, copyout,
// create and their pcopy*/present_or_* aliases.
func accDataClauseKind(kind concrete.ClauseKind) ClauseParserFunc {
	return func(name, payload string, lang hostlang.Language) (concrete.Clause, error) {
		data, err := clauseparse.ParseAccData(payload)
		if err != nil {
			return concrete.Clause{}, err
		}
		return concrete.Clause{
			Name:    concrete.CanonicalClauseName(name),
			Kind:    kind,
			AccData: data,
		}, nil
	}
}

// accGangWorkerClauseKind builds the Custom parser shared by gang, worker,
// and vector.
func accGangWorkerClauseKind(kind concrete.ClauseKind) ClauseParserFunc {
	return func(name, payload string, lang hostlang.Language) (concrete.Clause, error) {
		data, err := clauseparse.ParseAccGangWorker(payload)
		if err != nil {
			return concrete.Clause{}, err
		}
		return concrete.Clause{
			Name:  concrete.CanonicalClauseName(name),
			Kind:  kind,
			AccGW: data,
		}, nil
	}
}
