package clauseparse

import (
	"strings"

	"github.com/leapstack-labs/roup/pkg/ir"
)

// ParseLinear parses a linear clause payload: "items [: step]". The last
// top-level colon separates the step, when present. Modifier syntax
// ("linear(val(x, y): step)") is left unimplemented as an open design
// question and is reported as ClauseSyntaxError so pkg/convert can surface
// it as Unsupported rather than silently misparsing it.
func ParseLinear(payload string, cfg Config) (ir.LinearData, error) {
	var data ir.LinearData
	rest := strings.TrimSpace(payload)

	for _, mod := range []string{"val", "ref", "uval"} {
		if strings.HasPrefix(rest, mod+"(") {
			return data, &ClauseSyntaxError{Message: "linear clause modifier syntax is not supported"}
		}
	}

	itemsText := rest
	if before, after, ok := SplitTopLevelLast(rest, ':'); ok {
		itemsText = before
		step := ir.NewExpression(strings.TrimSpace(after))
		data.Step = &step
	}

	items, err := ParseItemList(itemsText, cfg)
	if err != nil {
		return ir.LinearData{}, err
	}
	data.Items = items
	return data, nil
}
