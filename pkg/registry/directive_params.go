package registry

import (
	"strings"

	"github.com/leapstack-labs/roup/pkg/clauseparse"
	"github.com/leapstack-labs/roup/pkg/concrete"
	"github.com/leapstack-labs/roup/pkg/hostlang"
)

// parseCacheParam decomposes the OpenACC cache directive's parameter into
// its structured CacheData, leaving the rest of the line (the
// clause sequence; cache itself carries no clauses) untouched.
func parseCacheParam(rest string, lang hostlang.Language) (string, *concrete.CacheData, *concrete.WaitData, string, error) {
	payload, tail, err := extractParenthesized(rest)
	if err != nil {
		return "", nil, nil, rest, err
	}
	data, err := clauseparse.ParseAccCache(payload)
	if err != nil {
		return "", nil, nil, rest, err
	}
	return "", &data, nil, tail, nil
}

// parseWaitParam decomposes the OpenACC wait directive/clause parameter
// into its structured WaitData. The parameter list is optional:
// a bare "wait" has neither devnum nor queues.
func parseWaitParam(rest string, lang hostlang.Language) (string, *concrete.CacheData, *concrete.WaitData, string, error) {
	trimmed := strings.TrimLeft(rest, " \t")
	if !strings.HasPrefix(trimmed, "(") {
		return "", nil, nil, rest, nil
	}
	payload, tail, err := extractParenthesized(rest)
	if err != nil {
		return "", nil, nil, rest, err
	}
	data, err := clauseparse.ParseAccWait(payload)
	if err != nil {
		return "", nil, nil, rest, err
	}
	return "", nil, &data, tail, nil
}

// parseRoutineParam reads an optional leading function-name parameter
// before the clause sequence ("#pragma omp declare routine(name) seq", or
// a bare "#pragma acc routine seq" naming no function).
func parseRoutineParam(rest string, lang hostlang.Language) (string, *concrete.CacheData, *concrete.WaitData, string, error) {
	trimmed := strings.TrimLeft(rest, " \t")
	if strings.HasPrefix(trimmed, "(") {
		payload, tail, err := extractParenthesized(rest)
		if err != nil {
			return "", nil, nil, rest, err
		}
		return strings.TrimSpace(payload), nil, nil, tail, nil
	}
	return "", nil, nil, rest, nil
}

// parseEndParam reads the inner directive name an "end" directive closes
// ("!$acc end parallel" -> parameter "parallel").
func parseEndParam(rest string, lang hostlang.Language) (string, *concrete.CacheData, *concrete.WaitData, string, error) {
	trimmed := trimLeadingSpace(rest)
	var words []string
	for trimmed != "" {
		word, after := leadingIdentifier(trimmed)
		if word == "" {
			break
		}
		words = append(words, word)
		trimmed = trimLeadingSpace(after)
	}
	return strings.Join(words, " "), nil, nil, trimmed, nil
}

// parseNameParam reads a single optional parenthesized or bare identifier
// parameter: critical's section name, depobj's object name, cancel's
// construct-type keyword, declare simd's associated function name.
func parseNameParam(rest string, lang hostlang.Language) (string, *concrete.CacheData, *concrete.WaitData, string, error) {
	trimmed := strings.TrimLeft(rest, " \t")
	if strings.HasPrefix(trimmed, "(") {
		payload, tail, err := extractParenthesized(rest)
		if err != nil {
			return "", nil, nil, rest, err
		}
		return strings.TrimSpace(payload), nil, nil, tail, nil
	}
	word, after := leadingIdentifier(trimmed)
	return word, nil, nil, after, nil
}

// parseScanParam reads scan's inclusive/exclusive parameter keyword.
func parseScanParam(rest string, lang hostlang.Language) (string, *concrete.CacheData, *concrete.WaitData, string, error) {
	return parseNameParam(rest, lang)
}

// parseDeclareMapperParam reads "declare mapper"'s "mapper-identifier:type"
// parameter ahead of its clause sequence (the default-map clause itself is
// the one free-standing clause that follows).
func parseDeclareMapperParam(rest string, lang hostlang.Language) (string, *concrete.CacheData, *concrete.WaitData, string, error) {
	payload, tail, err := extractParenthesized(rest)
	if err != nil {
		return "", nil, nil, rest, err
	}
	return strings.TrimSpace(payload), nil, nil, tail, nil
}

// parseDeclareReductionParam reads "declare reduction"'s
// "(identifier : type-list : combiner)" parameter.
func parseDeclareReductionParam(rest string, lang hostlang.Language) (string, *concrete.CacheData, *concrete.WaitData, string, error) {
	payload, tail, err := extractParenthesized(rest)
	if err != nil {
		return "", nil, nil, rest, err
	}
	return strings.TrimSpace(payload), nil, nil, tail, nil
}

// parseFlushParam reads flush's optional parenthesized variable list,
// keeping it as the directive parameter text since it precedes (and is
// distinct from) the memory-order clauses that may follow.
func parseFlushParam(rest string, lang hostlang.Language) (string, *concrete.CacheData, *concrete.WaitData, string, error) {
	trimmed := strings.TrimLeft(rest, " \t")
	if !strings.HasPrefix(trimmed, "(") {
		return "", nil, nil, rest, nil
	}
	payload, tail, err := extractParenthesized(rest)
	if err != nil {
		return "", nil, nil, rest, err
	}
	return strings.TrimSpace(payload), nil, nil, tail, nil
}

// parseParenListParam reads a required parenthesized list parameter used
// by threadprivate and allocate, both of which take a variable list and no
// further clause sequence (allocate's optional allocator clause aside).
func parseParenListParam(rest string, lang hostlang.Language) (string, *concrete.CacheData, *concrete.WaitData, string, error) {
	payload, tail, err := extractParenthesized(rest)
	if err != nil {
		return "", nil, nil, rest, err
	}
	return strings.TrimSpace(payload), nil, nil, tail, nil
}

// parseDeclareTargetParam reads declare target's to/link lists, which in
// the OpenMP grammar are clauses (to(...), link(...)) rather than a
// directive parameter, so this leaves the text untouched for the clause
// sequence loop to recognize; it exists to make the registration explicit.
func parseDeclareTargetParam(rest string, lang hostlang.Language) (string, *concrete.CacheData, *concrete.WaitData, string, error) {
	return "", nil, nil, rest, nil
}

// parseUpdateParam reads OpenACC's "update"'s self/host/device clauses are
// ordinary clauses, so like declare target this leaves text untouched; for
// OpenMP "target update" the to/from clauses are likewise parsed by the
// clause sequence loop.
func parseUpdateParam(rest string, lang hostlang.Language) (string, *concrete.CacheData, *concrete.WaitData, string, error) {
	return "", nil, nil, rest, nil
}
