package normalize

import "strings"

// collapseWhitespace replaces every run of ASCII whitespace with a single
// space and trims the result. It is the final step of every continuation
// path so that joined fragments (which may abut with zero or two spaces
// depending on where a physical line was split) always come out with
// exactly one separating space, matching the "whitespace only as token
// separator" rule.
func collapseWhitespace(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	inSpace := false
	for _, r := range s {
		if r == ' ' || r == '\t' || r == '\r' || r == '\n' {
			if !inSpace && b.Len() > 0 {
				b.WriteByte(' ')
			}
			inSpace = true
			continue
		}
		inSpace = false
		b.WriteRune(r)
	}
	return strings.TrimRight(b.String(), " ")
}

// hasBackslashContinuation reports whether s contains a backslash
// immediately followed by a newline (C/C++ continuation marker), the
// condition under which the slow join path is required.
func hasBackslashContinuation(s string) bool {
	for i := 0; i+1 < len(s); i++ {
		if s[i] == '\\' && (s[i+1] == '\n' || (s[i+1] == '\r' && i+2 < len(s) && s[i+2] == '\n')) {
			return true
		}
	}
	return false
}

// isAllOnOneLine reports whether s contains no newline at all, the
// fast-path precondition shared by every host language.
func isAllOnOneLine(s string) bool {
	return !strings.ContainsAny(s, "\n\r")
}
