package fastmat

// Kernel is the fragment-level multiply-add contract shared by the scalar
// and SIMD kernels (spec.md §4.B/§4.C):
//
//	target[x,y] += Σ_{p in [0,L)} a[p,y] * b[x,p]
//
// target is w-by-h, a is L-by-h, b is w-by-L; a.Dims().w must equal
// b.Dims().h. The kernel accumulates onto target's existing content rather
// than overwriting it, so repeated calls (as in the standard recursive
// multiplier's two-products-per-quadrant accumulation) compose correctly.
type Kernel interface {
	MultiplyAdd(target MutableSlice, a, b Slice)
}

func checkKernelShapes(target MutableSlice, a, b Slice) {
	w, h := target.Dims()
	aw, ah := a.Dims()
	bw, bh := b.Dims()
	if ah != h || bw != w || aw != bh {
		panic(shapeErrorf(ShapeMismatch,
			"kernel: target %dx%d, a %dx%d, b %dx%d", w, h, aw, ah, bw, bh))
	}
}

// ScalarKernel is the canonical triple-loop multiply-add, in (x, y, p)
// order. It performs no fast-path and is bit-for-bit deterministic.
type ScalarKernel struct{}

// MultiplyAdd implements Kernel using the textbook triple loop. Each product
// is added onto the target cell's running value in turn, so splitting the
// inner dimension across several calls yields the same bits as one call.
func (ScalarKernel) MultiplyAdd(target MutableSlice, a, b Slice) {
	checkKernelShapes(target, a, b)
	w, h := target.Dims()
	l, _ := a.Dims()
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			sum := target.At(x, y)
			for p := 0; p < l; p++ {
				sum += a.At(p, y) * b.At(x, p)
			}
			target.Set(x, y, sum)
		}
	}
}

// fragmentSlices wraps a contiguous, row-major f-by-f block (as produced by
// the Z-order layout at the leaf level) into the Slice/MutableSlice views
// Kernel expects, with stride == f.
func fragmentSlices(targetBlock, aBlock, bBlock []float32, f int) (MutableSlice, Slice, Slice) {
	return MutableSlice{newSlice(f, f, f, targetBlock)},
		newSlice(f, f, f, aBlock),
		newSlice(f, f, f, bBlock)
}
