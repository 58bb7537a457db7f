package fastmat

// Strassen computes a*b as a ZMatrix using the 7-multiply Strassen
// variant (spec.md §4.H), falling back to a direct kernel call when the
// matrices are already a single fragment (n == F): Strassen needs at least
// one level of recursion to pay for its extra additions. Above that, every
// level recurses into strassenAdd itself; the kernel is only invoked once a
// sub-problem bottoms out at the fragment size.
func Strassen(a, b *ZMatrix, dist Distributor, kern Kernel) (*ZMatrix, error) {
	if a.f != b.f || a.n != b.n {
		return nil, shapeErrorf(ShapeMismatch, "a is F=%d,N=%d but b is F=%d,N=%d", a.f, a.n, b.f, b.n)
	}
	r, err := zeroZMatrix(a.f, a.n)
	if err != nil {
		return nil, err
	}
	if a.n == a.f {
		target, av, bv := fragmentSlices(r.data, a.data, b.data, a.f)
		kern.MultiplyAdd(target, av, bv)
		return r, nil
	}
	strassenAdd(r.data, a.data, b.data, a.n, a.f, dist, kern)
	return r, nil
}

// strassenAdd computes rBlock = aBlock * bBlock (the whole s-by-s block, as
// a fresh, non-accumulating product) via the seven Strassen sub-products,
// recursing into itself for each sub-product and calling kern directly only
// once a sub-problem bottoms out at the fragment size. rBlock is assumed
// zero on entry.
func strassenAdd(rBlock, aBlock, bBlock []float32, s, f int, dist Distributor, kern Kernel) {
	if s == f {
		target, av, bv := fragmentSlices(rBlock, aBlock, bBlock, f)
		kern.MultiplyAdd(target, av, bv)
		return
	}

	h := s / 2
	block := h * h
	a := splitQuarters(aBlock, s)
	b := splitQuarters(bBlock, s)
	r := splitQuarters(rBlock, s)

	m1L, m1R := getBlock(block), getBlock(block)
	m2L := getBlock(block)
	m3R := getBlock(block)
	m4R := getBlock(block)
	m5L := getBlock(block)
	m6L, m6R := getBlock(block), getBlock(block)
	m7L, m7R := getBlock(block), getBlock(block)
	defer func() {
		for _, buf := range [][]float32{m1L, m1R, m2L, m3R, m4R, m5L, m6L, m6R, m7L, m7R} {
			putBlock(buf)
		}
	}()

	addElems(m1L, a.tl, a.br)
	addElems(m1R, b.tl, b.br)
	addElems(m2L, a.bl, a.br)
	subElems(m3R, b.tr, b.br)
	subElems(m4R, b.bl, b.tl)
	addElems(m5L, a.tl, a.tr)
	subElems(m6L, a.bl, a.tl)
	addElems(m6R, b.tl, b.tr)
	subElems(m7L, a.tr, a.br)
	addElems(m7R, b.bl, b.br)

	m1 := getBlock(block)
	m2 := getBlock(block)
	m3 := getBlock(block)
	m4 := getBlock(block)
	m5 := getBlock(block)
	m6 := getBlock(block)
	m7 := getBlock(block)
	defer func() {
		for _, buf := range [][]float32{m1, m2, m3, m4, m5, m6, m7} {
			putBlock(buf)
		}
	}()

	tasks := []Task{
		func() { strassenAdd(m1, m1L, m1R, h, f, dist, kern) },
		func() { strassenAdd(m2, m2L, b.tl, h, f, dist, kern) },
		func() { strassenAdd(m3, a.tl, m3R, h, f, dist, kern) },
		func() { strassenAdd(m4, a.br, m4R, h, f, dist, kern) },
		func() { strassenAdd(m5, m5L, b.br, h, f, dist, kern) },
		func() { strassenAdd(m6, m6L, m6R, h, f, dist, kern) },
		func() { strassenAdd(m7, m7L, m7R, h, f, dist, kern) },
	}
	dist.Run(s, tasks)

	// r11 = M1 + M4 - M5 + M7
	for i := 0; i < block; i++ {
		r.tl[i] = m1[i] + m4[i] - m5[i] + m7[i]
	}
	// r12 = M3 + M5
	for i := 0; i < block; i++ {
		r.tr[i] = m3[i] + m5[i]
	}
	// r21 = M2 + M4
	for i := 0; i < block; i++ {
		r.bl[i] = m2[i] + m4[i]
	}
	// r22 = M1 - M2 + M3 + M6
	for i := 0; i < block; i++ {
		r.br[i] = m1[i] - m2[i] + m3[i] + m6[i]
	}
}

func addElems(dst, a, b []float32) {
	for i := range dst {
		dst[i] = a[i] + b[i]
	}
}

func subElems(dst, a, b []float32) {
	for i := range dst {
		dst[i] = a[i] - b[i]
	}
}
