package clauseparse

import (
	"strings"

	"github.com/leapstack-labs/roup/pkg/concrete"
)

// ParseAccData parses an OpenACC copyin/copyout/create clause payload: an
// optional "readonly:" or "zero:" modifier followed by the variable list.
func ParseAccData(payload string) (concrete.AccDataPayload, error) {
	rest := strings.TrimSpace(payload)
	modifier := concrete.AccModifierNone
	if before, after, ok := SplitTopLevelFirst(rest, ':'); ok {
		switch strings.TrimSpace(before) {
		case "readonly":
			modifier = concrete.AccModifierReadonly
			rest = strings.TrimLeft(after, " ")
		case "zero":
			modifier = concrete.AccModifierZero
			rest = strings.TrimLeft(after, " ")
		}
	}
	vars := SplitComma(rest)
	return concrete.AccDataPayload{Modifier: modifier, Variables: vars}, nil
}

// ParseAccGangWorker parses an OpenACC gang/worker/vector clause payload:
// an optional "num:", "static:", or "length:" modifier followed by an
// expression list, preserving the modifier prefix exactly for rendering.
func ParseAccGangWorker(payload string) (concrete.AccGangWorkerPayload, error) {
	rest := strings.TrimSpace(payload)
	modifier := concrete.AccGWModifierNone
	if before, after, ok := SplitTopLevelFirst(rest, ':'); ok {
		switch strings.TrimSpace(before) {
		case "num":
			modifier = concrete.AccGWModifierNum
			rest = strings.TrimLeft(after, " ")
		case "static":
			modifier = concrete.AccGWModifierStatic
			rest = strings.TrimLeft(after, " ")
		case "length":
			modifier = concrete.AccGWModifierLength
			rest = strings.TrimLeft(after, " ")
		}
	}
	exprs := SplitComma(rest)
	return concrete.AccGangWorkerPayload{Modifier: modifier, Expressions: exprs}, nil
}

// ParseAccWait parses an OpenACC wait directive's parameter: the
// "devnum:"/"queues:" sectioned payload.
func ParseAccWait(payload string) (concrete.WaitData, error) {
	var data concrete.WaitData
	rest := strings.TrimSpace(payload)
	if rest == "" {
		return data, nil
	}
	if strings.HasPrefix(rest, "devnum:") {
		rest = strings.TrimPrefix(rest, "devnum:")
		rest = strings.TrimLeft(rest, " ")
		idx := strings.Index(rest, ":")
		if idx < 0 {
			return data, &ClauseSyntaxError{Message: "wait devnum missing queues separator"}
		}
		data.Devnum = strings.TrimSpace(rest[:idx])
		rest = strings.TrimLeft(rest[idx+1:], " ")
	}
	rest = strings.TrimPrefix(rest, "queues:")
	rest = strings.TrimLeft(rest, " ")
	if rest != "" {
		data.Queues = SplitComma(rest)
	}
	return data, nil
}

// ParseAccCache parses an OpenACC cache directive's parameter: an optional
// "readonly:" prefix followed by the variable list.
func ParseAccCache(payload string) (concrete.CacheData, error) {
	rest := strings.TrimSpace(payload)
	var data concrete.CacheData
	if strings.HasPrefix(rest, "readonly:") {
		data.ReadOnly = true
		rest = strings.TrimLeft(strings.TrimPrefix(rest, "readonly:"), " ")
	}
	data.Variables = SplitComma(rest)
	return data, nil
}
