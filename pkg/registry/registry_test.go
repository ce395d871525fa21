package registry

import (
	"testing"

	"github.com/leapstack-labs/roup/pkg/concrete"
	"github.com/leapstack-labs/roup/pkg/hostlang"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenMP_RecognizeDirective_LongestMatch(t *testing.T) {
	r := NewOpenMPRegistry(false)
	name, _, rest := r.RecognizeDirective("parallel for private(x) reduction(+: sum)")
	assert.Equal(t, "parallel for", name.String())
	assert.Equal(t, "private(x) reduction(+: sum)", rest)
}

func TestOpenMP_RecognizeDirective_FallsBackToOther(t *testing.T) {
	r := NewOpenMPRegistry(false)
	name, _, _ := r.RecognizeDirective("bogus_directive foo")
	assert.True(t, name.IsOther())
	assert.Equal(t, "bogus_directive", name.Other)
}

func TestOpenMP_ParseDirective_ParallelForWithClauses(t *testing.T) {
	r := NewOpenMPRegistry(false)
	d, err := r.ParseDirective("parallel for private(x) reduction(+: sum) nowait", hostlang.C)
	require.NoError(t, err)
	assert.Equal(t, "parallel for", d.Name.String())
	require.Len(t, d.Clauses, 3)
	assert.Equal(t, concrete.KindVariableList, d.Clauses[0].Kind)
	assert.Equal(t, []string{"x"}, d.Clauses[0].Variables)
	assert.Equal(t, concrete.KindReduction, d.Clauses[1].Kind)
	assert.Equal(t, "+", d.Clauses[1].Reduction.Operator)
	assert.Equal(t, concrete.KindBare, d.Clauses[2].Kind)
}

func TestOpenMP_ParseDirective_UnknownClauseIsUnsupported(t *testing.T) {
	r := NewOpenMPRegistry(false)
	_, err := r.ParseDirective("parallel bogus_clause(x)", hostlang.C)
	require.Error(t, err)
	var target *UnsupportedClauseError
	assert.ErrorAs(t, err, &target)
}

func TestOpenACC_ParseDirective_GangVectorTile(t *testing.T) {
	r := NewOpenACCRegistry(false)
	d, err := r.ParseDirective("parallel loop gang vector tile(32)", hostlang.C)
	require.NoError(t, err)
	assert.Equal(t, "parallel loop", d.Name.String())
	require.Len(t, d.Clauses, 3)
	assert.Equal(t, concrete.KindBare, d.Clauses[0].Kind)
	assert.Equal(t, concrete.KindBare, d.Clauses[1].Kind)
	assert.Equal(t, concrete.KindParenthesized, d.Clauses[2].Kind)
	assert.Equal(t, "32", d.Clauses[2].Parenthesized)
}

func TestOpenACC_ParseDirective_UnknownClauseIsFlexible(t *testing.T) {
	r := NewOpenACCRegistry(false)
	d, err := r.ParseDirective("parallel vendor_ext(1)", hostlang.C)
	require.NoError(t, err)
	require.Len(t, d.Clauses, 1)
	assert.True(t, d.Clauses[0].Name.IsOther())
	assert.Equal(t, concrete.KindParenthesized, d.Clauses[0].Kind)
}

func TestOpenACC_ParseDirective_Cache(t *testing.T) {
	r := NewOpenACCRegistry(false)
	d, err := r.ParseDirective("cache(readonly: a, b)", hostlang.C)
	require.NoError(t, err)
	require.NotNil(t, d.CacheData)
	assert.True(t, d.CacheData.ReadOnly)
	assert.Equal(t, []string{"a", "b"}, d.CacheData.Variables)
}

func TestOpenACC_ParseDirective_WaitBare(t *testing.T) {
	r := NewOpenACCRegistry(false)
	d, err := r.ParseDirective("wait", hostlang.C)
	require.NoError(t, err)
	assert.Nil(t, d.WaitData)
}

func TestOpenMP_ParseDirective_CriticalName(t *testing.T) {
	r := NewOpenMPRegistry(false)
	d, err := r.ParseDirective("critical(name1)", hostlang.C)
	require.NoError(t, err)
	assert.Equal(t, "name1", d.Parameter)
}

func TestOpenMP_CaseInsensitive(t *testing.T) {
	r := NewOpenMPRegistry(true)
	name, _, _ := r.RecognizeDirective("PARALLEL FOR")
	assert.Equal(t, "parallel for", name.String())
}
