//go:build !amd64

package fastmat

// Off amd64 there is no cheap runtime feature probe for vector width, so
// the fallback kernel degrades to lane width 1: each inner product is a
// plain sequential sum, added to the target cell in one step. It is still
// routed through SIMDKernel so call sites that select {Scalar, SIMD} don't
// need a third, platform-aware case.
func simdLanes() int { return 1 }

func dotLanes(x, y []float32) float32 { return dotLanesGeneric(x, y, 1) }
