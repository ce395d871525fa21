package normalize

import (
	"testing"

	"github.com/leapstack-labs/roup/pkg/hostlang"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeC_SingleLine(t *testing.T) {
	n := New(hostlang.C, hostlang.OpenMP)
	got, err := n.Normalize("#pragma omp parallel for private(i, j)")
	require.NoError(t, err)
	assert.Equal(t, "parallel for private(i, j)", got)
}

func TestNormalizeC_BackslashContinuation(t *testing.T) {
	n := New(hostlang.C, hostlang.OpenMP)
	got, err := n.Normalize("#pragma omp parallel for \\\n    private(i, j)")
	require.NoError(t, err)
	assert.Equal(t, "parallel for private(i, j)", got)
}

func TestNormalizeC_StripsLineComment(t *testing.T) {
	n := New(hostlang.C, hostlang.OpenMP)
	got, err := n.Normalize("#pragma omp parallel // enable threading")
	require.NoError(t, err)
	assert.Equal(t, "parallel", got)
}

func TestNormalizeC_StripsBlockCommentOutsideParens(t *testing.T) {
	n := New(hostlang.C, hostlang.OpenMP)
	got, err := n.Normalize("#pragma omp parallel /* comment */ for")
	require.NoError(t, err)
	assert.Equal(t, "parallel for", got)
}

func TestNormalizeC_KeepsParenContentUntouched(t *testing.T) {
	n := New(hostlang.C, hostlang.OpenMP)
	got, err := n.Normalize("#pragma omp target map(to: arr[0:N])")
	require.NoError(t, err)
	assert.Equal(t, "target map(to: arr[0:N])", got)
}

func TestNormalizeC_WrongSentinel(t *testing.T) {
	n := New(hostlang.C, hostlang.OpenMP)
	_, err := n.Normalize("#pragma acc parallel")
	require.Error(t, err)
	var sentinelErr *SentinelError
	require.ErrorAs(t, err, &sentinelErr)
}

func TestNormalizeFortranFree_MultiLineContinuation(t *testing.T) {
	n := New(hostlang.FortranFree, hostlang.OpenMP)
	got, err := n.Normalize("!$omp parallel do private(i, &\n!$omp& j, &\n!$omp& k)")
	require.NoError(t, err)
	assert.Equal(t, "parallel do private(i, j, k)", got)
}

func TestNormalizeFortranFree_CaseInsensitiveSentinel(t *testing.T) {
	n := New(hostlang.FortranFree, hostlang.OpenMP)
	got, err := n.Normalize("!$OMP PARALLEL")
	require.NoError(t, err)
	assert.Equal(t, "PARALLEL", got)
}

func TestNormalizeFortranFree_ForgivingDuplicateKeyword(t *testing.T) {
	n := New(hostlang.FortranFree, hostlang.OpenMP)
	got, err := n.Normalize("!$omp omp teams")
	require.NoError(t, err)
	assert.Equal(t, "teams", got)
}

func TestNormalizeFortranFree_InlineCommentStripped(t *testing.T) {
	n := New(hostlang.FortranFree, hostlang.OpenMP)
	got, err := n.Normalize("!$omp parallel ! start threads")
	require.NoError(t, err)
	assert.Equal(t, "parallel", got)
}

func TestNormalizeFortranFree_UnterminatedContinuation(t *testing.T) {
	n := New(hostlang.FortranFree, hostlang.OpenMP)
	_, err := n.Normalize("!$omp parallel do private(i, &")
	require.Error(t, err)
	var contErr *ContinuationError
	require.ErrorAs(t, err, &contErr)
}

func TestNormalizeFortranFixed_CStarSentinel(t *testing.T) {
	n := New(hostlang.FortranFixed, hostlang.OpenMP)
	got, err := n.Normalize("C$OMP PARALLEL DO\nC$OMP& PRIVATE(I)")
	require.NoError(t, err)
	assert.Equal(t, "PARALLEL DO PRIVATE(I)", got)
}

func TestNormalizeFortranFixed_StarSentinel(t *testing.T) {
	n := New(hostlang.FortranFixed, hostlang.OpenMP)
	got, err := n.Normalize("*$omp parallel")
	require.NoError(t, err)
	assert.Equal(t, "parallel", got)
}
