package clauseparse

import (
	"strings"

	"github.com/leapstack-labs/roup/pkg/ir"
)

// ParseSchedule parses a schedule clause payload: "[<modifiers> :]
// <kind>[, <chunk>]". The modifier group, when present, ends
// at the first top-level colon; kind and chunk are comma-separated.
func ParseSchedule(payload string) (ir.ScheduleData, error) {
	var data ir.ScheduleData
	rest := strings.TrimSpace(payload)

	if before, after, ok := SplitTopLevelFirst(rest, ':'); ok {
		allModifiers := true
		mods := SplitTopLevel(before, ',')
		parsed := make([]ir.ScheduleModifier, 0, len(mods))
		for _, m := range mods {
			mod, known := ir.LookupScheduleModifier(strings.TrimSpace(m))
			if !known {
				allModifiers = false
				break
			}
			parsed = append(parsed, mod)
		}
		if allModifiers && len(parsed) > 0 {
			data.Modifiers = parsed
			rest = strings.TrimLeft(after, " ")
		}
	}

	parts := SplitTopLevel(rest, ',')
	if len(parts) == 0 || parts[0] == "" {
		return data, &ClauseSyntaxError{Message: "schedule clause missing kind"}
	}
	kind, known := ir.LookupScheduleKind(strings.TrimSpace(parts[0]))
	if !known {
		return data, &ClauseSyntaxError{Message: "unknown schedule kind: " + parts[0]}
	}
	data.Kind = kind
	if len(parts) > 1 {
		chunk := ir.NewExpression(strings.TrimSpace(parts[1]))
		data.ChunkSize = &chunk
	}
	return data, nil
}
