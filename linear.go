// Package fastmat implements a dense single-precision matrix multiplication
// engine built around three orthogonal techniques: a Z-order (Morton)
// storage transform, recursive divide-and-conquer multiplication (standard
// and Strassen), and interchangeable scalar/SIMD fragment kernels.
//
// The package is deliberately narrow: LinearMatrix and ZMatrix carry
// row-major and Morton-order float32 data respectively, and every
// multiplication is total — a malformed shape fails synchronously at the
// call boundary (ShapeError) rather than mid-computation. There is no
// logging, no retry, and no partial result in this package; callers that
// need those carry them in their own layer (see cmd/fastmat).
package fastmat

import "math/rand"

// LinearMatrix is a row-major, owned, w-by-h matrix of float32 elements.
// The element at logical coordinate (x, y) — x the column, y the row —
// lives at buffer index x + w*y.
type LinearMatrix struct {
	w, h int
	data []float32
}

// Sized returns a zero-filled w-by-h LinearMatrix.
func Sized(w, h int) *LinearMatrix {
	if w < 0 || h < 0 {
		panic("fastmat: negative dimension")
	}
	return &LinearMatrix{w: w, h: h, data: make([]float32, w*h)}
}

// Random returns a w-by-h LinearMatrix with each element drawn uniformly
// from [0, 10). A nil rng uses the package-global source.
func Random(w, h int, rng *rand.Rand) *LinearMatrix {
	m := Sized(w, h)
	for i := range m.data {
		if rng != nil {
			m.data[i] = rng.Float32() * 10
		} else {
			m.data[i] = rand.Float32() * 10
		}
	}
	return m
}

// Identity returns the n-by-n identity matrix.
func Identity(n int) *LinearMatrix {
	m := Sized(n, n)
	for i := 0; i < n; i++ {
		m.Set(i, i, 1)
	}
	return m
}

// FromRows builds a LinearMatrix from literal rows; every row must have the
// same length. Primarily used by tests.
func FromRows(rows [][]float32) *LinearMatrix {
	h := len(rows)
	if h == 0 {
		return Sized(0, 0)
	}
	w := len(rows[0])
	m := Sized(w, h)
	for y, row := range rows {
		if len(row) != w {
			panic("fastmat: ragged rows")
		}
		copy(m.data[y*w:(y+1)*w], row)
	}
	return m
}

// Dims returns the matrix's (width, height).
func (m *LinearMatrix) Dims() (w, h int) { return m.w, m.h }

func (m *LinearMatrix) index(x, y int) int {
	if x < 0 || x >= m.w || y < 0 || y >= m.h {
		panic(&BoundsError{X: x, Y: y, W: m.w, H: m.h})
	}
	return x + m.w*y
}

// Get returns the element at (x, y). Out-of-range coordinates panic with a
// *BoundsError; this is a programmer error, not a recoverable condition.
func (m *LinearMatrix) Get(x, y int) float32 {
	return m.data[m.index(x, y)]
}

// Set assigns the element at (x, y). Out-of-range coordinates panic with a
// *BoundsError.
func (m *LinearMatrix) Set(x, y int, v float32) {
	m.data[m.index(x, y)] = v
}

// Equal reports whether two matrices have identical dimensions and
// bit-identical elements.
func (m *LinearMatrix) Equal(o *LinearMatrix) bool {
	if m.w != o.w || m.h != o.h {
		return false
	}
	for i := range m.data {
		if m.data[i] != o.data[i] {
			return false
		}
	}
	return true
}

// ApproxEqual reports whether two matrices have identical dimensions and
// elements that agree after both are canonicalised to the nearest multiple
// of step (used to absorb SIMD / Strassen float-reordering noise; see
// spec.md §8 property 5).
func (m *LinearMatrix) ApproxEqual(o *LinearMatrix, step float32) bool {
	if m.w != o.w || m.h != o.h {
		return false
	}
	for i := range m.data {
		if roundTo(m.data[i], step) != roundTo(o.data[i], step) {
			return false
		}
	}
	return true
}

func roundTo(v, step float32) float32 {
	if step == 0 {
		return v
	}
	q := v / step
	if q >= 0 {
		return float32(int64(q + 0.5))
	}
	return float32(int64(q - 0.5))
}

// Rows returns a finite, restartable iterator over the matrix's borrowed
// rows, each of length w. The returned function follows the range-over-func
// iterator shape: yield is called once per row, in order, and iteration
// stops early if yield returns false.
func (m *LinearMatrix) Rows() func(yield func(int, []float32) bool) {
	return func(yield func(int, []float32) bool) {
		for y := 0; y < m.h; y++ {
			if !yield(y, m.data[y*m.w:(y+1)*m.w]) {
				return
			}
		}
	}
}

// Slice is a non-owning, read-only, strided view over a w-by-h region of
// float32 data: element (x, y) lives at data[x + stride*y]. Its lifetime is
// dominated by the LinearMatrix or ZMatrix it was borrowed from.
type Slice struct {
	w, h, stride int
	data         []float32
}

// MutableSlice is a Slice that additionally permits assignment.
type MutableSlice struct {
	Slice
}

func newSlice(w, h, stride int, data []float32) Slice {
	return Slice{w: w, h: h, stride: stride, data: data}
}

// Dims returns the view's (width, height).
func (s Slice) Dims() (w, h int) { return s.w, s.h }

// At returns the element at (x, y) within the view.
func (s Slice) At(x, y int) float32 {
	return s.data[x+s.stride*y]
}

// Set assigns the element at (x, y) within the view.
func (s MutableSlice) Set(x, y int, v float32) {
	s.data[x+s.stride*y] = v
}

// Add accumulates v onto the element at (x, y) within the view.
func (s MutableSlice) Add(x, y int, v float32) {
	s.data[x+s.stride*y] += v
}

// Borrow returns a read-only view of the whole matrix.
func (m *LinearMatrix) Borrow() Slice {
	return newSlice(m.w, m.h, m.w, m.data)
}

// BorrowMut returns a mutable view of the whole matrix.
func (m *LinearMatrix) BorrowMut() MutableSlice {
	return MutableSlice{newSlice(m.w, m.h, m.w, m.data)}
}

// Raw exposes the backing buffer directly, in row-major order. Callers must
// not resize it; this exists for the codec and for kernels that want a flat
// slice rather than indexed access.
func (m *LinearMatrix) Raw() []float32 { return m.data }
