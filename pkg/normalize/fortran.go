package normalize

import (
	"strings"

	"github.com/leapstack-labs/roup/pkg/hostlang"
)

// freeSentinel recognizes the free-form sentinel "!$<prefix>" (full) or
// bare "!$" (short), case-insensitively, optionally immediately followed by
// a continuation "&". Returns the remaining line content and whether a
// leading "&" was consumed (the "leading form" of continuation).
func freeSentinel(line string, prefix string) (rest string, leadingAmp bool, ok bool) {
	trimmed := strings.TrimLeft(line, " \t")
	if !strings.HasPrefix(trimmed, "!$") {
		return "", false, false
	}
	rest = trimmed[2:]
	lowerRest := strings.ToLower(rest)
	if strings.HasPrefix(lowerRest, prefix) {
		rest = rest[len(prefix):]
		lowerRest = lowerRest[len(prefix):]
		// Forgiving rule: tolerate one duplicated dialect keyword, e.g.
		// "!$omp omp teams".
		afterWS := strings.TrimLeft(rest, " \t")
		afterWSLower := strings.TrimLeft(lowerRest, " \t")
		if strings.HasPrefix(afterWSLower, prefix) {
			next := afterWSLower[len(prefix):]
			if next == "" || next[0] == ' ' || next[0] == '\t' {
				rest = afterWS[len(prefix):]
			}
		}
	}
	// Short form ("!$" alone) falls through with rest unchanged.
	if strings.HasPrefix(rest, "&") {
		rest = rest[1:]
		leadingAmp = true
	}
	return rest, leadingAmp, true
}

// stripFortranInlineComment removes a trailing "! comment" from line
// content, leaving the content unchanged if no unescaped "!" is present.
// The sentinel itself has already been stripped by the time this runs, so
// any "!" encountered here starts a genuine comment.
func stripFortranInlineComment(s string) string {
	if i := strings.IndexByte(s, '!'); i >= 0 {
		return s[:i]
	}
	return s
}

// trailingAmpersand reports whether the trailing form of continuation is
// present (a "&" as the last non-blank character) and returns the content
// with that marker removed.
func trailingAmpersand(s string) (rest string, hasAmp bool) {
	trimmedRight := strings.TrimRight(s, " \t")
	if strings.HasSuffix(trimmedRight, "&") {
		return trimmedRight[:len(trimmedRight)-1], true
	}
	return s, false
}

// collapseFortranFree joins the free-form continuation lines of a single
// directive into one logical line and strips the sentinel from each,
// returning the text following the dialect keyword.
func collapseFortranFree(input string, dialect hostlang.Dialect) (string, error) {
	prefix := dialect.String()
	lines := strings.Split(strings.ReplaceAll(input, "\r\n", "\n"), "\n")

	rest, _, ok := freeSentinel(lines[0], prefix)
	if !ok {
		return "", &SentinelError{Pos: hostlang.Position{Line: 1}, Message: `expected "!$` + prefix + `" or "!$" sentinel`}
	}
	content := stripFortranInlineComment(rest)
	var b strings.Builder
	lineNo := 1
	for {
		part, hasAmp := trailingAmpersand(content)
		b.WriteString(part)
		if !hasAmp {
			break
		}
		lineNo++
		if lineNo > len(lines) {
			return "", &ContinuationError{Pos: hostlang.Position{Line: lineNo - 1}, Message: "trailing & continuation with no following line"}
		}
		next := lines[lineNo-1]
		nextRest, _, nok := freeSentinel(next, prefix)
		if !nok {
			return "", &ContinuationError{Pos: hostlang.Position{Line: lineNo}, Message: "continuation line missing sentinel"}
		}
		content = stripFortranInlineComment(nextRest)
	}
	return b.String(), nil
}

// NormalizeFortranFree is the free-form analogue of NormalizeC.
func NormalizeFortranFree(input string, dialect hostlang.Dialect) (string, error) {
	joined, err := collapseFortranFree(input, dialect)
	if err != nil {
		return "", err
	}
	return collapseWhitespace(joined), nil
}

// fixedSentinel recognizes the fixed-form sentinel in columns one through
// five: one of the comment starters {c, C, *} followed by "$<prefix>" or
// bare "$", or the free-form spellings "!$omp"/"!$omp&" which fixed-form
// source also accepts Case-insensitive throughout.
func fixedSentinel(line string, prefix string) (rest string, isContinuation bool, ok bool) {
	if len(line) == 0 {
		return "", false, false
	}
	lower := strings.ToLower(line)
	starters := []byte{'c', '*', '!'}
	found := false
	for _, c := range starters {
		if lower[0] == c {
			found = true
			break
		}
	}
	if !found {
		return "", false, false
	}
	if len(lower) < 2 || lower[1] != '$' {
		return "", false, false
	}
	body := line[2:]
	lowerBody := lower[2:]
	if strings.HasPrefix(lowerBody, prefix) {
		body = body[len(prefix):]
		lowerBody = lowerBody[len(prefix):]
		afterWS := strings.TrimLeft(body, " \t")
		afterWSLower := strings.TrimLeft(lowerBody, " \t")
		if strings.HasPrefix(afterWSLower, prefix) {
			next := afterWSLower[len(prefix):]
			if next == "" || next[0] == ' ' || next[0] == '\t' {
				body = afterWS[len(prefix):]
			}
		}
	}
	if strings.HasPrefix(body, "&") {
		body = body[1:]
		isContinuation = true
	}
	return body, isContinuation, true
}

// collapseFortranFixed joins fixed-form continuation lines. Every physical
// line beyond the first is required to carry the "&"-form sentinel (the
// fixed-form column-6 continuation marker, spelled here as part of the
// sentinel ); fixed-form always inserts exactly one
// separating space between joined segments ("tokens across continuation
// are concatenated with one separating space"), unlike free-form which
// preserves source spacing verbatim.
func collapseFortranFixed(input string, dialect hostlang.Dialect) (string, error) {
	prefix := dialect.String()
	lines := strings.Split(strings.ReplaceAll(input, "\r\n", "\n"), "\n")

	rest, isCont, ok := fixedSentinel(lines[0], prefix)
	if !ok {
		return "", &SentinelError{Pos: hostlang.Position{Line: 1}, Message: `expected a fixed-form sentinel in columns 1-5`}
	}
	if isCont {
		return "", &ContinuationError{Pos: hostlang.Position{Line: 1}, Message: "directive cannot start with a continuation sentinel"}
	}
	segments := []string{strings.TrimSpace(stripFortranInlineComment(rest))}
	for i := 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == "" {
			continue
		}
		nextRest, nextIsCont, nok := fixedSentinel(lines[i], prefix)
		if !nok || !nextIsCont {
			return "", &ContinuationError{Pos: hostlang.Position{Line: i + 1}, Message: "continuation line missing \"&\" sentinel"}
		}
		segments = append(segments, strings.TrimSpace(stripFortranInlineComment(nextRest)))
	}
	return strings.Join(segments, " "), nil
}

// NormalizeFortranFixed is the fixed-form analogue of NormalizeC.
func NormalizeFortranFixed(input string, dialect hostlang.Dialect) (string, error) {
	joined, err := collapseFortranFixed(input, dialect)
	if err != nil {
		return "", err
	}
	return collapseWhitespace(joined), nil
}
