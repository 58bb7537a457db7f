package fastmat

// SimpleMultiply computes a*b directly on row-major LinearMatrix operands
// using ScalarKernel, with no Z-order transform and no recursion. It is
// the non-core fallback spec.md §6 calls out as "exported for
// cross-checking": unlike Multiply/Strassen it accepts rectangular inputs,
// and every cross-variant equivalence property in spec.md §8 is stated in
// terms of agreement with this function.
func SimpleMultiply(a, b *LinearMatrix) (*LinearMatrix, error) {
	aw, ah := a.Dims()
	bw, bh := b.Dims()
	if aw != bh {
		return nil, shapeErrorf(ShapeMismatch, "a is %dx%d, b is %dx%d", aw, ah, bw, bh)
	}
	r := Sized(bw, ah)
	var kern ScalarKernel
	kern.MultiplyAdd(r.BorrowMut(), a.Borrow(), b.Borrow())
	return r, nil
}
