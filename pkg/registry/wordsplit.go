package registry

import "strings"

// splitTopLevelWords splits s on single spaces that are not nested inside
// balanced parentheses or brackets, returning each word's text. Because pkg/normalize already collapsed whitespace to single
// spaces outside parens, this is sufficient to recover directive-name word
// boundaries without ever splitting inside a clause payload.
func splitTopLevelWords(s string) []string {
	var words []string
	depth := 0
	start := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(', '[':
			depth++
		case ')', ']':
			if depth > 0 {
				depth--
			}
		case ' ':
			if depth == 0 {
				if i > start {
					words = append(words, s[start:i])
				}
				start = i + 1
			}
		}
	}
	if start < len(s) {
		words = append(words, s[start:])
	}
	return words
}

// joinWords re-renders a contiguous prefix of words with a single separating
// space, matching the normalized line's own spacing convention.
func joinWords(words []string) string {
	return strings.Join(words, " ")
}
