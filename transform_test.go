package fastmat

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTripLayout(t *testing.T) {
	for _, f := range []int{1, 2, 4} {
		for _, blocks := range []int{1, 2, 4, 8} {
			n := f * blocks
			t.Run("", func(t *testing.T) {
				want := Random(n, n, rand.New(rand.NewSource(int64(f*1000+blocks))))
				z, err := ToZOrder(want, f)
				require.NoError(t, err)
				got := FromZOrder(z)
				assert.True(t, want.Equal(got))

				// and the reverse direction
				z2, err := ToZOrder(got, f)
				require.NoError(t, err)
				assert.True(t, z.Equal(z2))
			})
		}
	}
}

// E5: a literal 2x2 round trip with F=1, where the quad-tree degenerates
// to the natural row-major order.
func TestRoundTrip2x2FragmentOne(t *testing.T) {
	a := FromRows([][]float32{
		{1, 2},
		{3, 4},
	})
	z, err := ToZOrder(a, 1)
	require.NoError(t, err)
	assert.Equal(t, []float32{1, 2, 3, 4}, z.Raw())

	back := FromZOrder(z)
	assert.True(t, a.Equal(back))
}

func TestBlockLocality(t *testing.T) {
	// At F=2, N=8 the four F-by-F blocks covering the top-left 4x4
	// quadrant must occupy the first 16 contiguous elements, in turn
	// grouped into four runs of 4, one per 2x2 block.
	a := Random(8, 8, rand.New(rand.NewSource(7)))
	z, err := ToZOrder(a, 2)
	require.NoError(t, err)

	// Reconstruct what the top-left 4x4 sub-matrix should be and confirm
	// it is exactly the first 16 buffer elements in Z-order.
	top := Sized(4, 4)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			top.Set(x, y, a.Get(x, y))
		}
	}
	subZ, err := ToZOrder(top, 2)
	require.NoError(t, err)
	assert.Equal(t, subZ.Raw(), z.Raw()[:16])
}

func TestToZOrderRejectsBadShapes(t *testing.T) {
	nonSquare := Sized(3, 2)
	_, err := ToZOrder(nonSquare, 1)
	require.Error(t, err)
	var shapeErr *ShapeError
	require.ErrorAs(t, err, &shapeErr)
	assert.Equal(t, NonSquare, shapeErr.Kind)

	notMultiple := Sized(5, 5)
	_, err = ToZOrder(notMultiple, 2)
	require.Error(t, err)
	require.ErrorAs(t, err, &shapeErr)
	assert.Equal(t, NotPowerOfTwoMultipleOfF, shapeErr.Kind)

	notPow2Blocks := Sized(6, 6)
	_, err = ToZOrder(notPow2Blocks, 2) // n/f == 3, not a power of two
	require.Error(t, err)
	require.ErrorAs(t, err, &shapeErr)
	assert.Equal(t, NotPowerOfTwoMultipleOfF, shapeErr.Kind)
}
