package fastmat

import (
	"math/bits"
	"sync"
)

// blockPool is a size-stratified pool of scratch float32 buffers, one
// sync.Pool per power-of-two size class — the same bucketing gonum's
// mat/pool.go uses for its workspace Dense/Vector pools (poolFor returns
// the ceiling of log2 of the requested size). Strassen allocates 17 of
// these per recursion frame (spec.md §4.H); pooling lets deep recursions
// reuse buffers from sibling frames that have already returned instead of
// allocating fresh on every call.
var blockPool [64]sync.Pool

func poolBucket(n int) int {
	if n <= 1 {
		return 0
	}
	return bits.Len(uint(n - 1))
}

// getBlock returns a zero-filled float32 slice of length n, drawn from the
// pool when a suitably large buffer is available.
func getBlock(n int) []float32 {
	bucket := poolBucket(n)
	if v := blockPool[bucket].Get(); v != nil {
		buf := v.([]float32)[:n]
		for i := range buf {
			buf[i] = 0
		}
		return buf
	}
	return make([]float32, n, 1<<uint(bucket))
}

func putBlock(buf []float32) {
	if cap(buf) == 0 {
		return
	}
	bucket := poolBucket(cap(buf))
	blockPool[bucket].Put(buf[:cap(buf)])
}
