package clauseparse

import (
	"strings"

	"github.com/leapstack-labs/roup/pkg/ir"
)

// ParseDefault parses a default clause payload against its keyword table.
func ParseDefault(payload string) (ir.DefaultKind, error) {
	kind, ok := ir.LookupDefaultKind(strings.TrimSpace(payload))
	if !ok {
		return 0, &ClauseSyntaxError{Message: "unknown default kind: " + payload}
	}
	return kind, nil
}

// ParseProcBind parses a proc_bind clause payload against its keyword
// table.
func ParseProcBind(payload string) (ir.ProcBind, error) {
	pb, ok := ir.LookupProcBind(strings.TrimSpace(payload))
	if !ok {
		return 0, &ClauseSyntaxError{Message: "unknown proc_bind kind: " + payload}
	}
	return pb, nil
}

// ParseAtomicDefaultMemOrder parses an atomic_default_mem_order clause
// payload against its keyword table.
func ParseAtomicDefaultMemOrder(payload string) (ir.MemoryOrder, error) {
	mo, ok := ir.LookupMemoryOrder(strings.TrimSpace(payload))
	if !ok {
		return 0, &ClauseSyntaxError{Message: "unknown memory order: " + payload}
	}
	return mo, nil
}

// ParseOrderKind parses an order or bind clause payload against the shared
// keyword table.
func ParseOrderKind(payload string) (ir.OrderKind, error) {
	ok2, ok := ir.LookupOrderKind(strings.TrimSpace(payload))
	if !ok {
		return 0, &ClauseSyntaxError{Message: "unknown order/bind kind: " + payload}
	}
	return ok2, nil
}

// StrictModifierExpr is the parsed form of a clause that accepts an
// optional "strict:" modifier prefix before its expression
// (grainsize[+modifier], num_tasks[+modifier]).
type StrictModifierExpr struct {
	Strict bool
	Expr   ir.Expression
}

// ParseStrictModifierExpr parses "[strict:] expr".
func ParseStrictModifierExpr(payload string) StrictModifierExpr {
	if before, after, ok := SplitTopLevelFirst(payload, ':'); ok && strings.TrimSpace(before) == "strict" {
		return StrictModifierExpr{Strict: true, Expr: ir.NewExpression(strings.TrimSpace(after))}
	}
	return StrictModifierExpr{Expr: ir.NewExpression(strings.TrimSpace(payload))}
}

// DeviceModifierExpr is the parsed form of a device clause, which accepts
// an optional "ancestor:"/"device_num:" modifier on target only").
type DeviceModifierExpr struct {
	Modifier string
	Expr     ir.Expression
}

// ParseDeviceModifierExpr parses "[ancestor:|device_num:] expr".
func ParseDeviceModifierExpr(payload string) DeviceModifierExpr {
	if before, after, ok := SplitTopLevelFirst(payload, ':'); ok {
		mod := strings.TrimSpace(before)
		if mod == "ancestor" || mod == "device_num" {
			return DeviceModifierExpr{Modifier: mod, Expr: ir.NewExpression(strings.TrimSpace(after))}
		}
	}
	return DeviceModifierExpr{Expr: ir.NewExpression(strings.TrimSpace(payload))}
}

// ParseDepobjUpdate parses a depobj_update clause payload against the
// depend-type keyword table (it names which dependence type to update to).
func ParseDepobjUpdate(payload string) (ir.DependType, error) {
	dt, ok := ir.LookupDependType(strings.TrimSpace(payload))
	if !ok {
		return 0, &ClauseSyntaxError{Message: "unknown depobj_update type: " + payload}
	}
	return dt, nil
}
