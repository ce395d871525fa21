package convert

import (
	"testing"

	"github.com/leapstack-labs/roup/pkg/hostlang"
	"github.com/leapstack-labs/roup/pkg/ir"
	"github.com/leapstack-labs/roup/pkg/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertDirective_ParallelForReductionNowait(t *testing.T) {
	r := registry.NewOpenMPRegistry(false)
	cd, err := r.ParseDirective("parallel for private(x) reduction(+: sum) nowait", hostlang.C)
	require.NoError(t, err)

	out, err := ConvertDirective(cd, DefaultOptions(hostlang.C))
	require.NoError(t, err)
	assert.Equal(t, ir.DirectiveParallelFor, out.Kind())
	require.Len(t, out.Clauses(), 3)
	assert.Equal(t, ir.ClausePrivate, out.Clauses()[0].Kind)
	assert.Equal(t, ir.ClauseReduction, out.Clauses()[1].Kind)
	assert.Equal(t, ir.ReductionAdd, out.Clauses()[1].Reduction.Operator)
	assert.Equal(t, ir.ClauseBare, out.Clauses()[2].Kind)
}

func TestConvertDirective_UnknownNameErrors(t *testing.T) {
	r := registry.NewOpenACCRegistry(false)
	cd, err := r.ParseDirective("some_vendor_directive", hostlang.C)
	require.NoError(t, err)
	require.True(t, cd.Name.IsOther())

	_, err = ConvertDirective(cd, DefaultOptions(hostlang.C))
	require.Error(t, err)
	var target *ConversionError
	require.ErrorAs(t, err, &target)
	assert.Equal(t, Unknown, target.Kind)
}

func TestConvertDirective_MergesVariableListClauses(t *testing.T) {
	r := registry.NewOpenMPRegistry(false)
	cd, err := r.ParseDirective("parallel private(x) private(y)", hostlang.C)
	require.NoError(t, err)

	out, err := ConvertDirective(cd, DefaultOptions(hostlang.C))
	require.NoError(t, err)
	require.Len(t, out.Clauses(), 1)
	require.Len(t, out.Clauses()[0].Items, 2)
	assert.Equal(t, "x", out.Clauses()[0].Items[0].Identifier.Text)
	assert.Equal(t, "y", out.Clauses()[0].Items[1].Identifier.Text)
}

func TestConvertDirective_DisabledKeepsDuplicates(t *testing.T) {
	r := registry.NewOpenMPRegistry(false)
	cd, err := r.ParseDirective("parallel private(x) private(y)", hostlang.C)
	require.NoError(t, err)

	opts := DefaultOptions(hostlang.C)
	opts.Normalization = Disabled
	out, err := ConvertDirective(cd, opts)
	require.NoError(t, err)
	require.Len(t, out.Clauses(), 2)
}

func TestConvertDirective_ScheduleClause(t *testing.T) {
	r := registry.NewOpenMPRegistry(false)
	cd, err := r.ParseDirective("for schedule(monotonic: dynamic, 4)", hostlang.C)
	require.NoError(t, err)

	out, err := ConvertDirective(cd, DefaultOptions(hostlang.C))
	require.NoError(t, err)
	require.Len(t, out.Clauses(), 1)
	assert.Equal(t, ir.ClauseSchedule, out.Clauses()[0].Kind)
	assert.Equal(t, ir.ScheduleDynamic, out.Clauses()[0].Schedule.Kind)
}

func TestConvertDirective_LinearModifierUnsupported(t *testing.T) {
	r := registry.NewOpenMPRegistry(false)
	cd, err := r.ParseDirective("simd linear(val(x, y): step)", hostlang.C)
	require.NoError(t, err)

	_, err = ConvertDirective(cd, DefaultOptions(hostlang.C))
	require.Error(t, err)
	var target *ConversionError
	require.ErrorAs(t, err, &target)
	assert.Equal(t, Unsupported, target.Kind)
}

func TestConvertDirective_GangVectorBareTileGeneric(t *testing.T) {
	r := registry.NewOpenACCRegistry(false)
	cd, err := r.ParseDirective("parallel loop gang vector tile(32)", hostlang.C)
	require.NoError(t, err)

	out, err := ConvertDirective(cd, DefaultOptions(hostlang.C))
	require.NoError(t, err)
	require.Len(t, out.Clauses(), 3)
	assert.Equal(t, ir.ClauseBare, out.Clauses()[0].Kind)
	assert.Equal(t, ir.ClauseBare, out.Clauses()[1].Kind)
	assert.Equal(t, ir.ClauseGeneric, out.Clauses()[2].Kind)
	assert.Equal(t, "32", out.Clauses()[2].GenericPayload)
}
