package abi_test

import (
	"testing"

	"github.com/leapstack-labs/roup/pkg/abi"
	"github.com/leapstack-labs/roup/pkg/hostlang"
	"github.com/leapstack-labs/roup/pkg/ir"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_InsertGetFree(t *testing.T) {
	r := abi.NewRegistry()
	h := r.Insert("hello")
	assert.NotZero(t, h)

	v, status := r.Get(h)
	require.Equal(t, abi.OK, status)
	assert.Equal(t, "hello", v)

	r.Free(h)
	_, status = r.Get(h)
	assert.Equal(t, abi.NotFound, status)
}

func TestRegistry_ZeroHandleAlwaysNotFound(t *testing.T) {
	r := abi.NewRegistry()
	_, status := r.Get(0)
	assert.Equal(t, abi.NotFound, status)
}

func TestRegistry_FreeIsIdempotent(t *testing.T) {
	r := abi.NewRegistry()
	h := r.Insert(1)
	r.Free(h)
	r.Free(h)
	_, status := r.Get(h)
	assert.Equal(t, abi.NotFound, status)
}

func TestDirectiveRegistry_ParseAndDirective(t *testing.T) {
	d := ir.NewDirectiveIR(ir.DirectiveParallel, "parallel", nil, hostlang.Position{}, hostlang.C)
	reg := abi.NewDirectiveRegistry()
	h := reg.Parse(d)

	got, status := reg.Directive(h)
	require.Equal(t, abi.OK, status)
	assert.Equal(t, ir.DirectiveParallel, got.Kind())
}

func TestClauseIterator_WalksInSourceOrder(t *testing.T) {
	d := ir.NewDirectiveIR(ir.DirectiveParallel, "parallel", []ir.ClauseData{
		{Kind: ir.ClauseBare, Name: "a"},
		{Kind: ir.ClauseBare, Name: "b"},
	}, hostlang.Position{}, hostlang.C)

	it := abi.ClauseIteratorOf(d)
	var out ir.ClauseData
	require.True(t, it.Next(&out))
	assert.Equal(t, "a", out.Name)
	require.True(t, it.Next(&out))
	assert.Equal(t, "b", out.Name)
	assert.False(t, it.Next(&out))
}
