package fastmat

// ToZOrder converts a LinearMatrix into a ZMatrix with fragment size f. m
// must be square with a side that is a multiple of f, and side/f must be a
// power of two; violations return a *ShapeError synchronously, before any
// data is touched.
func ToZOrder(m *LinearMatrix, f int) (*ZMatrix, error) {
	w, h := m.Dims()
	if w != h {
		return nil, shapeErrorf(NonSquare, "linear matrix is %dx%d", w, h)
	}
	z, err := zeroZMatrix(f, w)
	if err != nil {
		return nil, err
	}
	cur := 0
	writeZOrder(m.data, w, z.data, &cur, 0, 0, w, f)
	return z, nil
}

// writeZOrder is the write direction of T_F,n (spec.md §4.D): a pre-order
// quad-tree walk over the linear buffer that appends into out via cur, a
// cursor closed over by the recursion.
func writeZOrder(src []float32, stride int, out []float32, cur *int, x0, y0, s, f int) {
	if s == f {
		for j := 0; j < f; j++ {
			row := (y0 + j) * stride
			copy(out[*cur:*cur+f], src[row+x0:row+x0+f])
			*cur += f
		}
		return
	}
	h := s / 2
	writeZOrder(src, stride, out, cur, x0, y0, h, f)
	writeZOrder(src, stride, out, cur, x0+h, y0, h, f)
	writeZOrder(src, stride, out, cur, x0, y0+h, h, f)
	writeZOrder(src, stride, out, cur, x0+h, y0+h, h, f)
}

// FromZOrder is the structural inverse of ToZOrder: it consumes z's buffer
// in the same pre-order quad-tree traversal and scatters it back into
// row-major coordinates.
func FromZOrder(z *ZMatrix) *LinearMatrix {
	n := z.N()
	m := Sized(n, n)
	cur := 0
	readZOrder(z.data, m.data, n, &cur, 0, 0, n, z.F())
	return m
}

func readZOrder(in []float32, dst []float32, stride int, cur *int, x0, y0, s, f int) {
	if s == f {
		for j := 0; j < f; j++ {
			row := (y0 + j) * stride
			copy(dst[row+x0:row+x0+f], in[*cur:*cur+f])
			*cur += f
		}
		return
	}
	h := s / 2
	readZOrder(in, dst, stride, cur, x0, y0, h, f)
	readZOrder(in, dst, stride, cur, x0+h, y0, h, f)
	readZOrder(in, dst, stride, cur, x0, y0+h, h, f)
	readZOrder(in, dst, stride, cur, x0+h, y0+h, h, f)
}
