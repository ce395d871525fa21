package clauseparse

import (
	"strings"

	"github.com/leapstack-labs/roup/pkg/ir"
)

// ParseDepend parses a depend clause payload: "<depend-type> : <items>".
func ParseDepend(payload string, cfg Config) (ir.DependData, error) {
	before, after, ok := SplitTopLevelFirst(payload, ':')
	if !ok {
		return ir.DependData{}, &ClauseSyntaxError{Message: "depend clause missing ':'"}
	}
	depType, known := ir.LookupDependType(strings.TrimSpace(before))
	if !known {
		return ir.DependData{}, &ClauseSyntaxError{Message: "unknown depend type: " + before}
	}
	items, err := ParseItemList(after, cfg)
	if err != nil {
		return ir.DependData{}, err
	}
	return ir.DependData{DependType: depType, Items: items}, nil
}

// ParseIf parses an if clause payload: "[directive-name-modifier :]
// condition".
func ParseIf(payload string) ir.IfData {
	if before, after, ok := SplitTopLevelFirst(payload, ':'); ok && isPureIdentifier(strings.TrimSpace(before)) {
		return ir.IfData{
			DirectiveNameModifier: strings.TrimSpace(before),
			Condition:             ir.NewExpression(strings.TrimSpace(after)),
		}
	}
	return ir.IfData{Condition: ir.NewExpression(strings.TrimSpace(payload))}
}
