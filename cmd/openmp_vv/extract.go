package main

import "strings"

// cSourceExtensions lists the file suffixes openmp_vv scans for #pragma omp
// directives.
var cSourceExtensions = []string{".c", ".h", ".cc", ".cpp", ".cxx", ".hpp", ".hh"}

func isCSource(name string) bool {
	for _, ext := range cSourceExtensions {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}
	return false
}

// extractPragmas scans source for every "#pragma omp" occurrence, joining
// backslash-continued physical lines into one logical directive string
// (matching the continuation rule pkg/normalize.NormalizeC later
// re-collapses; extraction only needs to find where a directive starts and
// ends, not interpret its content).
func extractPragmas(source string) []string {
	lines := strings.Split(source, "\n")
	var out []string

	for i := 0; i < len(lines); i++ {
		trimmed := strings.TrimLeft(lines[i], " \t")
		if !strings.HasPrefix(trimmed, "#pragma") {
			continue
		}
		rest := strings.TrimLeft(trimmed[len("#pragma"):], " \t")
		if !strings.HasPrefix(rest, "omp") {
			continue
		}

		var b strings.Builder
		b.WriteString(trimmed)
		for strings.HasSuffix(strings.TrimRight(lines[i], "\r"), "\\") && i+1 < len(lines) {
			i++
			b.WriteByte('\n')
			b.WriteString(lines[i])
		}
		out = append(out, b.String())
	}

	return out
}
