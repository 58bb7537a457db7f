package fastmat

// Multiply computes a*b as a ZMatrix using the standard 8-multiply
// recursive divide-and-conquer algorithm (spec.md §4.G), bottoming out at
// fragment size F with kern, and distributing each level's four
// independent sub-products through dist.
//
// a and b must share F and N; violations return a *ShapeError before any
// recursion happens. Given valid inputs the algorithm is total: it always
// produces a mathematically correct result (modulo float reordering).
func Multiply(a, b *ZMatrix, dist Distributor, kern Kernel) (*ZMatrix, error) {
	if a.f != b.f || a.n != b.n {
		return nil, shapeErrorf(ShapeMismatch, "a is F=%d,N=%d but b is F=%d,N=%d", a.f, a.n, b.f, b.n)
	}
	r, err := zeroZMatrix(a.f, a.n)
	if err != nil {
		return nil, err
	}
	multiplyAdd(r.data, a.data, b.data, a.n, a.f, dist, kern)
	return r, nil
}

// multiplyAdd is mult_add from spec.md §4.G: rBlock, aBlock, bBlock are
// contiguous Z-order buffer slices of side s. At the leaf it invokes kern
// directly; above the leaf it quarters all three operands, builds the four
// (r_ij, a1, b1, a2, b2) tasks, and hands them to dist.
func multiplyAdd(rBlock, aBlock, bBlock []float32, s, f int, dist Distributor, kern Kernel) {
	if s == f {
		target, av, bv := fragmentSlices(rBlock, aBlock, bBlock, f)
		kern.MultiplyAdd(target, av, bv)
		return
	}

	h := s / 2
	r := splitQuarters(rBlock, s)
	a := splitQuarters(aBlock, s)
	b := splitQuarters(bBlock, s)

	tasks := []Task{
		func() { // r11 += a11*b11 + a12*b21
			multiplyAdd(r.tl, a.tl, b.tl, h, f, dist, kern)
			multiplyAdd(r.tl, a.tr, b.bl, h, f, dist, kern)
		},
		func() { // r12 += a11*b12 + a12*b22
			multiplyAdd(r.tr, a.tl, b.tr, h, f, dist, kern)
			multiplyAdd(r.tr, a.tr, b.br, h, f, dist, kern)
		},
		func() { // r21 += a21*b11 + a22*b21
			multiplyAdd(r.bl, a.bl, b.tl, h, f, dist, kern)
			multiplyAdd(r.bl, a.br, b.bl, h, f, dist, kern)
		},
		func() { // r22 += a21*b12 + a22*b22
			multiplyAdd(r.br, a.bl, b.tr, h, f, dist, kern)
			multiplyAdd(r.br, a.br, b.br, h, f, dist, kern)
		},
	}
	dist.Run(s, tasks)
}
