package clauseparse

import (
	"strings"

	"github.com/leapstack-labs/roup/pkg/ir"
)

// parseCArraySections recognizes a C/C++ array-section item: an identifier
// prefix followed by one or more bracketed sections of the forms
// [L], [L:N], [L:N:S], [:N], [L:], [:]. The length is
// stored as-is; no bound conversion is needed for the C form.
func parseCArraySections(text string) (name string, sections []ir.ArraySection, ok bool, err error) {
	i := strings.IndexByte(text, '[')
	if i <= 0 {
		return "", nil, false, nil
	}
	name = text[:i]
	if !isPureIdentifier(name) {
		return "", nil, false, nil
	}
	rest := text[i:]
	for len(rest) > 0 {
		if rest[0] != '[' {
			return "", nil, false, nil
		}
		end := matchingBracket(rest)
		if end < 0 {
			return "", nil, false, nil
		}
		inner := rest[1:end]
		sec, serr := parseCSection(inner)
		if serr != nil {
			return "", nil, false, serr
		}
		sections = append(sections, sec)
		rest = rest[end+1:]
	}
	return name, sections, true, nil
}

func matchingBracket(s string) int {
	depth := 0
	for i, c := range s {
		switch c {
		case '[':
			depth++
		case ']':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

// parseCSection parses the content between one pair of brackets:
// "", "L", "L:N", "L:N:S", ":N", "L:", ":".
func parseCSection(inner string) (ir.ArraySection, error) {
	parts := SplitTopLevel(inner, ':')
	var sec ir.ArraySection
	switch len(parts) {
	case 1:
		if parts[0] != "" {
			e := ir.NewExpression(parts[0])
			sec.Length = &e
		}
	case 2:
		if parts[0] != "" {
			e := ir.NewExpression(parts[0])
			sec.LowerBound = &e
		}
		if parts[1] != "" {
			e := ir.NewExpression(parts[1])
			sec.Length = &e
		}
	case 3:
		if parts[0] != "" {
			e := ir.NewExpression(parts[0])
			sec.LowerBound = &e
		}
		if parts[1] != "" {
			e := ir.NewExpression(parts[1])
			sec.Length = &e
		}
		if parts[2] != "" {
			e := ir.NewExpression(parts[2])
			sec.Stride = &e
		}
	default:
		return sec, &ClauseSyntaxError{Message: "malformed array section: " + inner}
	}
	return sec, nil
}

// parseFortranArraySections recognizes a Fortran array-section item: an
// identifier followed by a trailing parenthesized group of comma-separated
// colon-forms. Each dimension's L:U[:S] is converted to the IR's stored
// length form: length = ((U-L)/S)+1, with L defaulting to 1 when absent.
func parseFortranArraySections(text string) (name string, sections []ir.ArraySection, ok bool, err error) {
	if !strings.HasSuffix(text, ")") {
		return "", nil, false, nil
	}
	i := strings.IndexByte(text, '(')
	if i <= 0 {
		return "", nil, false, nil
	}
	name = text[:i]
	if !isPureIdentifier(name) {
		return "", nil, false, nil
	}
	inner := text[i+1 : len(text)-1]
	dims := SplitTopLevel(inner, ',')
	hasColon := false
	for _, d := range dims {
		if strings.Contains(d, ":") {
			hasColon = true
			break
		}
	}
	if !hasColon {
		return "", nil, false, nil
	}
	for _, d := range dims {
		sec, serr := parseFortranDimension(d)
		if serr != nil {
			return "", nil, false, serr
		}
		sections = append(sections, sec)
	}
	return name, sections, true, nil
}

// parseFortranDimension parses one Fortran dimension "L:U[:S]", converting
// it to the IR's length-based ArraySection.
func parseFortranDimension(dim string) (ir.ArraySection, error) {
	parts := SplitTopLevel(dim, ':')
	var sec ir.ArraySection
	switch len(parts) {
	case 1:
		// No colon: a single scalar subscript, not a section; record it as
		// a degenerate section whose length is "1" and whose lower bound
		// is the subscript itself.
		e := ir.NewExpression(parts[0])
		sec.LowerBound = &e
		one := ir.NewExpression("1")
		sec.Length = &one
		return sec, nil
	case 2, 3:
		lowerText := parts[0]
		if lowerText == "" {
			lowerText = "1"
		}
		upperText := parts[1]
		strideText := "1"
		if len(parts) == 3 && parts[2] != "" {
			strideText = parts[2]
		}
		lower := ir.NewExpression(lowerText)
		sec.LowerBound = &lower
		length := ir.NewExpression(fortranLengthExpr(lowerText, upperText, strideText, len(parts) == 3 && parts[2] != ""))
		sec.Length = &length
		if len(parts) == 3 && parts[2] != "" {
			stride := ir.NewExpression(parts[2])
			sec.Stride = &stride
		}
		return sec, nil
	default:
		return sec, &ClauseSyntaxError{Message: "malformed Fortran array section: " + dim}
	}
}

// fortranLengthExpr renders "((U-L)/S)+1" symbolically, eliding the
// stride division when no explicit stride was given (stride 1).
func fortranLengthExpr(lower, upper, stride string, explicitStride bool) string {
	if !explicitStride {
		return "((" + upper + ")-(" + lower + ")+1)"
	}
	return "(((" + upper + ")-(" + lower + "))/(" + stride + "))+1"
}
