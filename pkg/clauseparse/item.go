package clauseparse

import (
	"strings"

	"github.com/leapstack-labs/roup/pkg/hostlang"
	"github.com/leapstack-labs/roup/pkg/ir"
)

// Config controls item classification: with LanguageSemanticsEnabled
// false, every clause item becomes an Identifier regardless of its shape.
type Config struct {
	Language                 hostlang.Language
	LanguageSemanticsEnabled bool
}

// DefaultConfig enables language-aware item discrimination.
func DefaultConfig(lang hostlang.Language) Config {
	return Config{Language: lang, LanguageSemanticsEnabled: true}
}

// ParseItemList splits a comma-separated clause payload and classifies each
// item as an Identifier, Variable (with array sections), or Expression.
func ParseItemList(payload string, cfg Config) ([]ir.ClauseItem, error) {
	raw := SplitComma(payload)
	items := make([]ir.ClauseItem, 0, len(raw))
	for _, r := range raw {
		item, err := ParseItem(r, cfg)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

// ParseItem classifies one clause-item token.
func ParseItem(text string, cfg Config) (ir.ClauseItem, error) {
	text = strings.TrimSpace(text)
	if !cfg.LanguageSemanticsEnabled {
		return ir.NewIdentifierItem(text), nil
	}

	if name, sections, ok, err := parseCArraySections(text); err != nil {
		return ir.ClauseItem{}, err
	} else if ok {
		return ir.NewVariableItem(name, sections), nil
	}

	if cfg.Language.IsFortran() {
		if name, sections, ok, err := parseFortranArraySections(text); err != nil {
			return ir.ClauseItem{}, err
		} else if ok {
			return ir.NewVariableItem(name, sections), nil
		}
	}

	if isPureIdentifier(text) {
		return ir.NewIdentifierItem(text), nil
	}
	return ir.NewExpressionItem(text), nil
}

// isPureIdentifier reports whether text is a syntactically plain
// identifier: letters/digits/underscore, "::"-qualified segments, or
// "%"/"->" component access, with no other punctuation or operators.
func isPureIdentifier(text string) bool {
	if text == "" {
		return false
	}
	i := 0
	for i < len(text) {
		c := text[i]
		switch {
		case c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9'):
			i++
		case c == ':' && i+1 < len(text) && text[i+1] == ':':
			i += 2
		case c == '%':
			i++
		case c == '-' && i+1 < len(text) && text[i+1] == '>':
			i += 2
		default:
			return false
		}
	}
	return i == len(text)
}
