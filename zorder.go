package fastmat

import "math/bits"

// ZMatrix is a square n-by-n matrix of float32 elements stored in recursive
// Z-order (Morton) layout, parameterised by a fragment size F: every F-by-F
// sub-block is contiguous in the backing buffer, and so is every larger
// power-of-two-times-F block (spec.md §4.D).
//
// F is a runtime field rather than a Go type parameter: Go has no
// value-level generics over integers, and spec.md's design notes sanction
// exactly this fallback ("pass F as a constructor argument plus
// assert-once").
type ZMatrix struct {
	f    int
	n    int
	data []float32
}

// F returns the matrix's fragment size.
func (z *ZMatrix) F() int { return z.f }

// N returns the matrix's side length.
func (z *ZMatrix) N() int { return z.n }

// Raw exposes the backing buffer in Z-order. Callers must not resize it.
func (z *ZMatrix) Raw() []float32 { return z.data }

// zeroZMatrix allocates a zero-filled n-by-n ZMatrix with fragment size f,
// validating the (f, n) invariants from spec.md §3: f must be positive,
// n must be a multiple of f, and n/f must be a power of two.
func zeroZMatrix(f, n int) (*ZMatrix, error) {
	if err := validateFragmentedSize(f, n); err != nil {
		return nil, err
	}
	return &ZMatrix{f: f, n: n, data: make([]float32, n*n)}, nil
}

func validateFragmentedSize(f, n int) error {
	if f <= 0 {
		return shapeErrorf(NotPowerOfTwoMultipleOfF, "fragment size F=%d must be positive", f)
	}
	if n%f != 0 {
		return shapeErrorf(NotPowerOfTwoMultipleOfF, "side n=%d is not a multiple of F=%d", n, f)
	}
	blocks := n / f
	if blocks != 0 && bits.OnesCount(uint(blocks)) != 1 {
		return shapeErrorf(NotPowerOfTwoMultipleOfF, "n/F=%d is not a power of two", blocks)
	}
	return nil
}

// Equal reports whether two ZMatrix values share F, N, and bit-identical
// buffers. Because the Z-order permutation is a deterministic function of
// (F, N), buffer equality is equivalent to logical element-wise equality.
func (z *ZMatrix) Equal(o *ZMatrix) bool {
	if z.f != o.f || z.n != o.n {
		return false
	}
	for i := range z.data {
		if z.data[i] != o.data[i] {
			return false
		}
	}
	return true
}

// quarter describes the four contiguous quadrants of a ZMatrix block of
// side s, as buffer offsets into the owning Z-order buffer. Because every
// s-by-s block (s a power-of-two multiple of F) is contiguous and its four
// h-by-h children (h = s/2) equally partition it (spec.md §4.D), each
// quadrant is itself a contiguous slice of length h*h.
type quarter struct {
	tl, tr, bl, br []float32
}

// splitQuarters partitions a contiguous s*s-length Z-order block into its
// four h*h-length child quadrants, in (top-left, top-right, bottom-left,
// bottom-right) order. s must be even; callers only invoke this above the
// fragment size, where that always holds.
func splitQuarters(block []float32, s int) quarter {
	if s%2 != 0 {
		panic("fastmat: odd block side cannot be quartered")
	}
	h := s / 2
	blockSize := h * h
	return quarter{
		tl: block[0*blockSize : 1*blockSize],
		tr: block[1*blockSize : 2*blockSize],
		bl: block[2*blockSize : 3*blockSize],
		br: block[3*blockSize : 4*blockSize],
	}
}
