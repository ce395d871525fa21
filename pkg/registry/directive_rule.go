package registry

import (
	"strings"

	"github.com/leapstack-labs/roup/pkg/concrete"
	"github.com/leapstack-labs/roup/pkg/hostlang"
)

// DirectiveRuleKind tags how a directive's parameter is parsed before
// clause-sequence parsing takes over.
type DirectiveRuleKind int32

const (
	DirectiveRuleGeneric DirectiveRuleKind = iota
	DirectiveRuleCustom
	DirectiveRuleUnsupported
)

func (k DirectiveRuleKind) String() string {
	switch k {
	case DirectiveRuleGeneric:
		return "generic"
	case DirectiveRuleCustom:
		return "custom"
	case DirectiveRuleUnsupported:
		return "unsupported"
	default:
		return "<unknown directive rule kind>"
	}
}

// DirectiveParamParser parses a directive-specific parameter grammar from
// the text following the directive name, returning the parameter text
// (and, for cache/wait, the decomposed structured payload) plus whatever
// text remains for clause-sequence parsing.
type DirectiveParamParser func(rest string, lang hostlang.Language) (param string, cache *concrete.CacheData, wait *concrete.WaitData, remaining string, err error)

// DirectiveRule associates a canonical directive name with its parameter
// grammar.
type DirectiveRule struct {
	Kind   DirectiveRuleKind
	Custom DirectiveParamParser
}

// UnsupportedDirectiveError reports that a directive name matched the
// registry but its rule is reserved/unsupported.
type UnsupportedDirectiveError struct {
	Name string
}

func (e *UnsupportedDirectiveError) Error() string {
	return "directive not supported: " + e.Name
}

func (r DirectiveRule) parseParam(rest string, lang hostlang.Language) (param string, cache *concrete.CacheData, wait *concrete.WaitData, remaining string, err error) {
	switch r.Kind {
	case DirectiveRuleGeneric:
		return "", nil, nil, rest, nil
	case DirectiveRuleCustom:
		return r.Custom(rest, lang)
	default:
		return "", nil, nil, rest, &UnsupportedDirectiveError{}
	}
}

// leadingIdentifier reads a run of identifier characters (letters, digits,
// underscore) from the start of s.
func leadingIdentifier(s string) (word, rest string) {
	i := 0
	for i < len(s) {
		c := s[i]
		if c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') {
			i++
			continue
		}
		break
	}
	return s[:i], s[i:]
}

// trimLeadingSpace trims exactly the leading run of spaces produced by
// pkg/normalize's whitespace collapsing (single spaces only).
func trimLeadingSpace(s string) string {
	return strings.TrimPrefix(s, " ")
}
