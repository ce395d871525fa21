package main

import (
	"fmt"
	"strings"

	"github.com/leapstack-labs/roup/pkg/concrete"
)

// clauseTrace renders one concrete clause's name and recognized payload
// shape for roup_debug's per-clause trace step.
func clauseTrace(c concrete.Clause) string {
	switch c.Kind {
	case concrete.KindBare:
		return fmt.Sprintf("%s (bare)", c.Name)
	case concrete.KindParenthesized:
		return fmt.Sprintf("%s(%s)", c.Name, c.Parenthesized)
	case concrete.KindVariableList:
		return fmt.Sprintf("%s(%s)", c.Name, strings.Join(c.Variables, ", "))
	case concrete.KindReduction:
		op := c.Reduction.Operator
		if op == "" {
			op = c.Reduction.UserDefinedIdentifier
		}
		return fmt.Sprintf("%s(%s: %s)", c.Name, op, strings.Join(c.Reduction.Variables, ", "))
	case concrete.KindCopyIn, concrete.KindCopyOut, concrete.KindCreate:
		return fmt.Sprintf("%s(%s)", c.Name, strings.Join(c.AccData.Variables, ", "))
	case concrete.KindGang, concrete.KindWorker, concrete.KindVector:
		return fmt.Sprintf("%s(%s)", c.Name, strings.Join(c.AccGW.Expressions, ", "))
	default:
		return c.Name.String()
	}
}
