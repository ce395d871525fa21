package normalize

import (
	"strings"

	"github.com/leapstack-labs/roup/pkg/hostlang"
)

// lexPragma strips a leading "#pragma" plus the whitespace that must follow
// it.
func lexPragma(input string) (rest string, ok bool) {
	s := strings.TrimLeft(input, " \t")
	if !strings.HasPrefix(s, "#pragma") {
		return "", false
	}
	s = s[len("#pragma"):]
	trimmed := strings.TrimLeft(s, " \t")
	if trimmed == s {
		// "#pragma" must be followed by whitespace (or nothing at all).
		if trimmed != "" {
			return "", false
		}
	}
	return trimmed, true
}

// collapseCLineContinuations joins physical lines that end in a backslash
// immediately before the newline. The backslash and newline are deleted;
// the leading whitespace of the following line collapses to one space.
// Returns the input unchanged (same string value, no allocation) when no
// continuation marker is present - the documented hot path.
func collapseCLineContinuations(input string) string {
	if isAllOnOneLine(input) || !hasBackslashContinuation(input) {
		return input
	}
	var b strings.Builder
	b.Grow(len(input))
	i := 0
	for i < len(input) {
		if input[i] == '\\' && i+1 < len(input) && (input[i+1] == '\n' || (input[i+1] == '\r' && i+2 < len(input) && input[i+2] == '\n')) {
			// Skip the backslash and the newline (and its \r, if any).
			i++
			if input[i] == '\r' {
				i++
			}
			i++ // the '\n'
			// Leading whitespace of the next line becomes a single space.
			for i < len(input) && (input[i] == ' ' || input[i] == '\t') {
				i++
			}
			b.WriteByte(' ')
			continue
		}
		b.WriteByte(input[i])
		i++
	}
	return b.String()
}

// stripCComments deletes // line comments and /* */ block comments that
// start outside balanced parentheses. Block comments may span what used to
// be a continuation boundary, which is safe here because continuations have
// already been collapsed by the time this runs.
func stripCComments(input string) string {
	var b strings.Builder
	b.Grow(len(input))
	depth := 0
	i := 0
	for i < len(input) {
		c := input[i]
		switch {
		case c == '(' :
			depth++
			b.WriteByte(c)
			i++
		case c == ')':
			if depth > 0 {
				depth--
			}
			b.WriteByte(c)
			i++
		case depth == 0 && c == '/' && i+1 < len(input) && input[i+1] == '/':
			// Line comment: the rest of the (already-joined) text is gone.
			return b.String()
		case depth == 0 && c == '/' && i+1 < len(input) && input[i+1] == '*':
			end := strings.Index(input[i+2:], "*/")
			if end < 0 {
				i = len(input)
			} else {
				i += 2 + end + 2
			}
			b.WriteByte(' ')
		default:
			b.WriteByte(c)
			i++
		}
	}
	return b.String()
}

// NormalizeC reduces a raw #pragma directive buffer (possibly spanning
// several physical lines joined by backslash continuation) to the text
// following the dialect keyword: directive name plus clause sequence, with
// whitespace collapsed to single-space separators.
func NormalizeC(input string, dialect hostlang.Dialect) (string, error) {
	joined := collapseCLineContinuations(input)
	stripped := stripCComments(joined)
	rest, ok := lexPragma(stripped)
	if !ok {
		return "", &SentinelError{Message: `expected "#pragma" sentinel`}
	}
	rest = strings.TrimLeft(rest, " \t")
	want := dialect.String()
	if !strings.HasPrefix(rest, want) {
		return "", &SentinelError{Message: `expected "` + want + `" after #pragma, got "` + firstWord(rest) + `"`}
	}
	rest = rest[len(want):]
	if rest != "" && rest[0] != ' ' && rest[0] != '\t' {
		return "", &SentinelError{Message: `expected "` + want + `" after #pragma, got "` + firstWord(rest) + `"`}
	}
	return collapseWhitespace(rest), nil
}

func firstWord(s string) string {
	s = strings.TrimLeft(s, " \t")
	if i := strings.IndexAny(s, " \t("); i >= 0 {
		return s[:i]
	}
	return s
}
