package fastmat

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Strassen falls back to a direct kernel call when n == F.
func TestStrassenSingleFragmentIsDirectKernelCall(t *testing.T) {
	a := Random(4, 4, rand.New(rand.NewSource(5)))
	b := Random(4, 4, rand.New(rand.NewSource(6)))
	za, err := ToZOrder(a, 4)
	require.NoError(t, err)
	zb, err := ToZOrder(b, 4)
	require.NoError(t, err)

	got, err := Strassen(za, zb, SequentialDistributor{}, ScalarKernel{})
	require.NoError(t, err)
	want, err := Multiply(za, zb, SequentialDistributor{}, ScalarKernel{})
	require.NoError(t, err)
	assert.True(t, want.Equal(got))
}

// Property 7: strassen agrees with the standard recursive multiplier under
// the /20 rounding canonicalisation, across fragment sizes and
// distributors.
func TestStrassenAgreesWithMultiply(t *testing.T) {
	rng := rand.New(rand.NewSource(101))
	for _, tc := range []struct {
		f, n   int
		dist   Distributor
		kernel Kernel
	}{
		{2, 8, SequentialDistributor{}, ScalarKernel{}},
		{2, 16, NewParallelDistributor(4), ScalarKernel{}},
		{4, 32, SequentialDistributor{}, SIMDKernel{}},
		{1, 8, NewParallelDistributor(2), SIMDKernel{}},
	} {
		a := Random(tc.n, tc.n, rng)
		b := Random(tc.n, tc.n, rng)
		za, err := ToZOrder(a, tc.f)
		require.NoError(t, err)
		zb, err := ToZOrder(b, tc.f)
		require.NoError(t, err)

		standard, err := Multiply(za, zb, tc.dist, tc.kernel)
		require.NoError(t, err)
		strassen, err := Strassen(za, zb, tc.dist, tc.kernel)
		require.NoError(t, err)

		assert.True(t, FromZOrder(standard).ApproxEqual(FromZOrder(strassen), 20),
			"F=%d N=%d", tc.f, tc.n)
	}
}

// E6: strassen<Par<32>, SIMD> against simple_multiply on random 64x64,
// under /20 rounding canonicalisation.
func TestStrassen64x64AgainstSimpleMultiply(t *testing.T) {
	rng := rand.New(rand.NewSource(64))
	a := Random(64, 64, rng)
	b := Random(64, 64, rng)

	want, err := SimpleMultiply(a, b)
	require.NoError(t, err)

	const f = 8
	za, err := ToZOrder(a, f)
	require.NoError(t, err)
	zb, err := ToZOrder(b, f)
	require.NoError(t, err)

	zr, err := Strassen(za, zb, NewParallelDistributor(32), SIMDKernel{})
	require.NoError(t, err)

	got := FromZOrder(zr)
	assert.True(t, want.ApproxEqual(got, 20))
}

func TestStrassenRejectsMismatchedOperands(t *testing.T) {
	a, err := zeroZMatrix(2, 8)
	require.NoError(t, err)
	b, err := zeroZMatrix(2, 4)
	require.NoError(t, err)
	_, err = Strassen(a, b, SequentialDistributor{}, ScalarKernel{})
	require.Error(t, err)
}
