package clauseparse

import (
	"testing"

	"github.com/leapstack-labs/roup/pkg/concrete"
	"github.com/leapstack-labs/roup/pkg/hostlang"
	"github.com/leapstack-labs/roup/pkg/ir"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitTopLevel_RespectsParens(t *testing.T) {
	got := SplitTopLevel("mapper(x), to: arr[0:N]", ':')
	assert.Equal(t, []string{"mapper(x), to", "arr[0:N]"}, got)
}

func TestSplitTopLevel_DoubleColonNotSplit(t *testing.T) {
	got := SplitTopLevel("std::vector", ':')
	assert.Equal(t, []string{"std::vector"}, got)
}

func TestSplitComma_EmptyYieldsNil(t *testing.T) {
	assert.Nil(t, SplitComma("   "))
}

func TestParseItem_CArraySection(t *testing.T) {
	cfg := DefaultConfig(hostlang.C)
	item, err := ParseItem("arr[0:N]", cfg)
	require.NoError(t, err)
	require.Equal(t, ir.ItemVariable, item.Kind)
	assert.Equal(t, "arr", item.Variable.Name)
	require.Len(t, item.Variable.ArraySections, 1)
	assert.Equal(t, "0", item.Variable.ArraySections[0].LowerBound.Text)
	assert.Equal(t, "N", item.Variable.ArraySections[0].Length.Text)
}

func TestParseItem_FortranArraySection(t *testing.T) {
	cfg := DefaultConfig(hostlang.FortranFree)
	item, err := ParseItem("array(1:n)", cfg)
	require.NoError(t, err)
	require.Equal(t, ir.ItemVariable, item.Kind)
	assert.Equal(t, "array", item.Variable.Name)
	require.Len(t, item.Variable.ArraySections, 1)
	sec := item.Variable.ArraySections[0]
	assert.Equal(t, "1", sec.LowerBound.Text)
	assert.Equal(t, "((n)-(1)+1)", sec.Length.Text)
}

func TestParseItem_PlainIdentifier(t *testing.T) {
	cfg := DefaultConfig(hostlang.C)
	item, err := ParseItem("sum", cfg)
	require.NoError(t, err)
	assert.Equal(t, ir.ItemIdentifier, item.Kind)
	assert.Equal(t, "sum", item.Identifier.Text)
}

func TestParseItem_Expression(t *testing.T) {
	cfg := DefaultConfig(hostlang.C)
	item, err := ParseItem("a + b", cfg)
	require.NoError(t, err)
	assert.Equal(t, ir.ItemExpression, item.Kind)
}

func TestParseItem_LanguageSemanticsDisabled(t *testing.T) {
	cfg := Config{Language: hostlang.C, LanguageSemanticsEnabled: false}
	item, err := ParseItem("arr[0:N]", cfg)
	require.NoError(t, err)
	assert.Equal(t, ir.ItemIdentifier, item.Kind)
	assert.Equal(t, "arr[0:N]", item.Identifier.Text)
}

func TestParseReduction_BuiltinOperator(t *testing.T) {
	cfg := DefaultConfig(hostlang.C)
	data, err := ParseReduction("+: sum", cfg)
	require.NoError(t, err)
	assert.Equal(t, ir.ReductionAdd, data.Operator)
	assert.True(t, data.SpaceAfterColon)
	require.Len(t, data.Items, 1)
	assert.Equal(t, "sum", data.Items[0].Identifier.Text)
}

func TestParseReduction_UserDefinedOperator(t *testing.T) {
	cfg := DefaultConfig(hostlang.C)
	data, err := ParseReduction("my_op:x", cfg)
	require.NoError(t, err)
	assert.Equal(t, ir.ReductionOther, data.Operator)
	assert.Equal(t, "my_op", data.UserDefinedIdentifier)
	assert.False(t, data.SpaceAfterColon)
}

func TestParseMap_MapperAndType(t *testing.T) {
	cfg := DefaultConfig(hostlang.C)
	data, err := ParseMap("mapper(custom), to: arr[0:N]", cfg)
	require.NoError(t, err)
	require.NotNil(t, data.Mapper)
	assert.Equal(t, "custom", data.Mapper.Text)
	require.NotNil(t, data.MapType)
	assert.Equal(t, ir.MapTo, *data.MapType)
	require.Len(t, data.Items, 1)
	assert.Equal(t, "arr", data.Items[0].Variable.Name)
}

func TestParseSchedule_WithModifiersAndChunk(t *testing.T) {
	data, err := ParseSchedule("monotonic: dynamic, 4")
	require.NoError(t, err)
	assert.Equal(t, ir.ScheduleDynamic, data.Kind)
	require.Len(t, data.Modifiers, 1)
	assert.Equal(t, ir.ScheduleModifierMonotonic, data.Modifiers[0])
	require.NotNil(t, data.ChunkSize)
	assert.Equal(t, "4", data.ChunkSize.Text)
}

func TestParseSchedule_KindOnly(t *testing.T) {
	data, err := ParseSchedule("static")
	require.NoError(t, err)
	assert.Equal(t, ir.ScheduleStatic, data.Kind)
	assert.Nil(t, data.ChunkSize)
}

func TestParseDepend_KnownType(t *testing.T) {
	cfg := DefaultConfig(hostlang.C)
	data, err := ParseDepend("out: a, b", cfg)
	require.NoError(t, err)
	assert.Equal(t, ir.DependOut, data.DependType)
	assert.Len(t, data.Items, 2)
}

func TestParseIf_WithDirectiveModifier(t *testing.T) {
	data := ParseIf("target: n > 0")
	assert.Equal(t, "target", data.DirectiveNameModifier)
	assert.Equal(t, "n > 0", data.Condition.Text)
}

func TestParseIf_ConditionOnly(t *testing.T) {
	data := ParseIf("n > 0")
	assert.Equal(t, "", data.DirectiveNameModifier)
	assert.Equal(t, "n > 0", data.Condition.Text)
}

func TestParseAccData_ReadonlyModifier(t *testing.T) {
	data, err := ParseAccData("readonly: a, b")
	require.NoError(t, err)
	assert.Equal(t, concrete.AccModifierReadonly, data.Modifier)
	assert.Equal(t, []string{"a", "b"}, data.Variables)
}

func TestParseAccGangWorker_NumModifier(t *testing.T) {
	data, err := ParseAccGangWorker("num: 4")
	require.NoError(t, err)
	assert.Equal(t, []string{"4"}, data.Expressions)
}

func TestParseAccWait_DevnumAndQueues(t *testing.T) {
	data, err := ParseAccWait("devnum: 0 : queues: 1, 2")
	require.NoError(t, err)
	assert.Equal(t, "0", data.Devnum)
	assert.Equal(t, []string{"1", "2"}, data.Queues)
}
