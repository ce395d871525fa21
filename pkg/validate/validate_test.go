package validate_test

import (
	"testing"

	"github.com/leapstack-labs/roup/pkg/hostlang"
	"github.com/leapstack-labs/roup/pkg/ir"
	"github.com/leapstack-labs/roup/pkg/validate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsClauseAllowed_NowaitOnParallelRejected(t *testing.T) {
	c := validate.NewContext(ir.DirectiveParallel)
	err := c.IsClauseAllowed(ir.ClauseData{Kind: ir.ClauseBare, Name: "nowait"})
	require.Error(t, err)
	var target *validate.Error
	require.ErrorAs(t, err, &target)
	assert.Equal(t, validate.ClauseNotAllowed, target.Kind)
}

func TestIsClauseAllowed_NowaitOnForAllowed(t *testing.T) {
	c := validate.NewContext(ir.DirectiveFor)
	err := c.IsClauseAllowed(ir.ClauseData{Kind: ir.ClauseBare, Name: "nowait"})
	assert.NoError(t, err)
}

func TestIsClauseAllowed_ReductionOnTaskRejected(t *testing.T) {
	c := validate.NewContext(ir.DirectiveTask)
	err := c.IsClauseAllowed(ir.ClauseData{Kind: ir.ClauseReduction})
	require.Error(t, err)
}

func TestIsClauseAllowed_MapRequiresTarget(t *testing.T) {
	c := validate.NewContext(ir.DirectiveParallel)
	err := c.IsClauseAllowed(ir.ClauseData{Kind: ir.ClauseMap})
	require.Error(t, err)

	c = validate.NewContext(ir.DirectiveTarget)
	err = c.IsClauseAllowed(ir.ClauseData{Kind: ir.ClauseMap})
	assert.NoError(t, err)
}

func TestValidateAll_MultipleDefaultClausesConflict(t *testing.T) {
	d := ir.NewDirectiveIR(ir.DirectiveParallel, "parallel", []ir.ClauseData{
		{Kind: ir.ClauseDefault, Default: ir.DefaultShared},
		{Kind: ir.ClauseDefault, Default: ir.DefaultNone},
	}, hostlang.Position{}, hostlang.C)

	errs := validate.Directive(d)
	require.Len(t, errs, 1)
	var target *validate.Error
	require.ErrorAs(t, errs[0], &target)
	assert.Equal(t, validate.InvalidCombination, target.Kind)
}

func TestValidateAll_OrderedConflictsWithScheduleAuto(t *testing.T) {
	d := ir.NewDirectiveIR(ir.DirectiveFor, "for", []ir.ClauseData{
		{Kind: ir.ClauseOrdered},
		{Kind: ir.ClauseSchedule, Schedule: ir.ScheduleData{Kind: ir.ScheduleAuto}},
	}, hostlang.Position{}, hostlang.C)

	errs := validate.Directive(d)
	require.Len(t, errs, 1)
	var target *validate.Error
	require.ErrorAs(t, errs[0], &target)
	assert.Equal(t, validate.ConflictingClauses, target.Kind)
}

func TestValidateAll_ValidParallelForReduction(t *testing.T) {
	d := ir.NewDirectiveIR(ir.DirectiveParallelFor, "parallel for", []ir.ClauseData{
		{Kind: ir.ClausePrivate},
		{Kind: ir.ClauseReduction},
		{Kind: ir.ClauseBare, Name: "nowait"},
	}, hostlang.Position{}, hostlang.C)

	errs := validate.Directive(d)
	assert.Empty(t, errs)
}
