package fastmat

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSizedIsZeroFilled(t *testing.T) {
	m := Sized(3, 2)
	w, h := m.Dims()
	require.Equal(t, 3, w)
	require.Equal(t, 2, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			assert.Equal(t, float32(0), m.Get(x, y))
		}
	}
}

func TestRandomIsDeterministicUnderSeed(t *testing.T) {
	a := Random(4, 4, rand.New(rand.NewSource(1)))
	b := Random(4, 4, rand.New(rand.NewSource(1)))
	assert.True(t, a.Equal(b))
	for _, v := range a.Raw() {
		assert.GreaterOrEqual(t, v, float32(0))
		assert.Less(t, v, float32(10))
	}
}

func TestIdentity(t *testing.T) {
	id := Identity(3)
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			want := float32(0)
			if x == y {
				want = 1
			}
			assert.Equal(t, want, id.Get(x, y))
		}
	}
}

func TestGetSetOutOfRangePanics(t *testing.T) {
	m := Sized(2, 2)
	assert.Panics(t, func() { m.Get(2, 0) })
	assert.Panics(t, func() { m.Get(0, -1) })
	assert.Panics(t, func() { m.Set(2, 2, 1) })
}

func TestRowsIteratesInOrderAndIsRestartable(t *testing.T) {
	m := FromRows([][]float32{
		{1, 2, 3},
		{4, 5, 6},
	})
	var seen [][]float32
	for y, row := range m.Rows() {
		cp := append([]float32(nil), row...)
		assert.Equal(t, y, len(seen))
		seen = append(seen, cp)
	}
	require.Len(t, seen, 2)
	assert.Equal(t, []float32{1, 2, 3}, seen[0])
	assert.Equal(t, []float32{4, 5, 6}, seen[1])

	// restartable: iterating again yields the same sequence.
	var again [][]float32
	for _, row := range m.Rows() {
		again = append(again, append([]float32(nil), row...))
	}
	assert.Equal(t, seen, again)
}

func TestApproxEqualCanonicalisesByStep(t *testing.T) {
	a := FromRows([][]float32{{100, 200}})
	b := FromRows([][]float32{{101, 199}})
	assert.True(t, a.ApproxEqual(b, 20))
	c := FromRows([][]float32{{100, 221}})
	assert.False(t, a.ApproxEqual(c, 20))
}

func TestBorrowViewsIndexLikeTheOwner(t *testing.T) {
	m := FromRows([][]float32{
		{1, 2},
		{3, 4},
	})
	v := m.Borrow()
	w, h := v.Dims()
	require.Equal(t, 2, w)
	require.Equal(t, 2, h)
	assert.Equal(t, float32(1), v.At(0, 0))
	assert.Equal(t, float32(4), v.At(1, 1))

	mv := m.BorrowMut()
	mv.Set(0, 0, 9)
	assert.Equal(t, float32(9), m.Get(0, 0))
	mv.Add(0, 0, 1)
	assert.Equal(t, float32(10), m.Get(0, 0))
}
