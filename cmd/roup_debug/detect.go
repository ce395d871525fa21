package main

import (
	"fmt"
	"strings"

	"github.com/leapstack-labs/roup/pkg/hostlang"
)

// detectSentinel sniffs raw's first non-blank token to guess its host
// language and dialect; forced supplies the dialect only when the sentinel
// does not name one.
func detectSentinel(raw string, forced *hostlang.Dialect) (hostlang.Language, hostlang.Dialect, error) {
	trimmed := strings.TrimLeft(raw, " \t\r\n")

	if rest, ok := strings.CutPrefix(trimmed, "#pragma"); ok {
		rest = strings.TrimLeft(rest, " \t")
		if d, ok := sniffDialectWord(rest); ok {
			return hostlang.C, d, nil
		}
		if forced != nil {
			return hostlang.C, *forced, nil
		}
		return 0, 0, fmt.Errorf("unrecognized #pragma sentinel: %q", firstLine(trimmed))
	}

	lower := strings.ToLower(trimmed)
	for _, prefix := range []string{"!$", "c$", "*$"} {
		if !strings.HasPrefix(lower, prefix) {
			continue
		}
		lang := hostlang.FortranFree
		if prefix != "!$" {
			lang = hostlang.FortranFixed
		}
		if d, ok := sniffDialectWord(lower[len(prefix):]); ok {
			return lang, d, nil
		}
		if forced != nil {
			return lang, *forced, nil
		}
		return 0, 0, fmt.Errorf("unrecognized Fortran sentinel: %q", firstLine(trimmed))
	}

	return 0, 0, fmt.Errorf("no recognized sentinel (#pragma, !$, c$, *$) in input: %q", firstLine(trimmed))
}

func sniffDialectWord(rest string) (hostlang.Dialect, bool) {
	lower := strings.ToLower(rest)
	switch {
	case strings.HasPrefix(lower, "omp"):
		return hostlang.OpenMP, true
	case strings.HasPrefix(lower, "acc"):
		return hostlang.OpenACC, true
	default:
		return 0, false
	}
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	if len(s) > 60 {
		return s[:60] + "..."
	}
	return s
}
