package clauseparse

import (
	"strings"

	"github.com/leapstack-labs/roup/pkg/ir"
)

// ParseReduction parses a reduction clause payload: "<operator>[<id>] :
// <item-list>". The operator is one of the OpenMP/OpenACC
// built-ins or an arbitrary user-defined identifier; whether a space
// follows the colon is recorded for faithful rendering.
func ParseReduction(payload string, cfg Config) (ir.ReductionData, error) {
	before, after, ok := SplitTopLevelFirst(payload, ':')
	if !ok {
		return ir.ReductionData{}, &ClauseSyntaxError{Message: "reduction clause missing ':'"}
	}
	// after comes back trimmed, so the space is read from the raw payload.
	rawAfter := strings.TrimLeft(payload[strings.Index(payload, before)+len(before):], " \t")
	spaceAfterColon := strings.HasPrefix(strings.TrimPrefix(rawAfter, ":"), " ")
	operatorText := strings.TrimSpace(before)

	data := ir.ReductionData{SpaceAfterColon: spaceAfterColon}
	if op, known := ir.LookupReductionOperator(operatorText); known {
		data.Operator = op
	} else {
		data.Operator = ir.ReductionOther
		data.UserDefinedIdentifier = operatorText
	}

	items, err := ParseItemList(after, cfg)
	if err != nil {
		return ir.ReductionData{}, err
	}
	data.Items = items
	return data, nil
}
