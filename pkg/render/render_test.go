package render_test

import (
	"testing"

	"github.com/leapstack-labs/roup/pkg/hostlang"
	"github.com/leapstack-labs/roup/pkg/ir"
	"github.com/leapstack-labs/roup/pkg/render"
	"github.com/stretchr/testify/assert"
)

func TestDirective_ParallelForPrivateNowait(t *testing.T) {
	d := ir.NewDirectiveIR(ir.DirectiveParallelFor, "parallel for", []ir.ClauseData{
		{Kind: ir.ClausePrivate, Items: []ir.ClauseItem{ir.NewIdentifierItem("x")}},
		{Kind: ir.ClauseBare, Name: "nowait"},
	}, hostlang.Position{}, hostlang.C)

	got := render.Directive(d, hostlang.OpenMP)
	assert.Equal(t, "#pragma omp parallel for private(x) nowait", got)
}

func TestTranslateName_ForToDoAndBack(t *testing.T) {
	assert.Equal(t, "parallel do", render.TranslateName("parallel for", hostlang.FortranFree))
	assert.Equal(t, "parallel for", render.TranslateName("parallel do", hostlang.C))
	assert.Equal(t, "target teams distribute parallel do simd",
		render.TranslateName("target teams distribute parallel for simd", hostlang.FortranFree))
}

func TestDirective_FortranSentinelAndDoSpelling(t *testing.T) {
	d := ir.NewDirectiveIR(ir.DirectiveParallelFor, "parallel for", nil, hostlang.Position{}, hostlang.FortranFree)
	got := render.Directive(d, hostlang.OpenMP)
	assert.Equal(t, "!$omp parallel do", got)
}

func TestItemText_ArraySectionTranslatesToFortranForm(t *testing.T) {
	d := ir.NewDirectiveIR(ir.DirectiveTarget, "target", []ir.ClauseData{
		{Kind: ir.ClauseMap, Map: ir.MapData{
			Items: []ir.ClauseItem{
				ir.NewVariableItem("a", []ir.ArraySection{{
					LowerBound: exprPtr("0"),
					Length:     exprPtr("10"),
				}}),
			},
		}},
	}, hostlang.Position{}, hostlang.FortranFree)

	got := render.Directive(d, hostlang.OpenMP)
	assert.Equal(t, "!$omp target map(a(0:9))", got)
}

func TestPlain_RedactsExpressionsAndIdentifiers(t *testing.T) {
	d := ir.NewDirectiveIR(ir.DirectiveParallel, "parallel", []ir.ClauseData{
		{Kind: ir.ClausePrivate, Items: []ir.ClauseItem{ir.NewIdentifierItem("x"), ir.NewIdentifierItem("y")}},
		{Kind: ir.ClauseIf, If: ir.IfData{Condition: ir.NewExpression("n > 0")}},
	}, hostlang.Position{}, hostlang.C)

	got := render.Plain(d, hostlang.OpenMP)
	assert.Equal(t, "#pragma omp parallel private(<identifier>, <identifier>) if(<expr>)", got)
}

func exprPtr(s string) *ir.Expression {
	e := ir.NewExpression(s)
	return &e
}
