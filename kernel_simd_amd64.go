//go:build amd64

package fastmat

import "golang.org/x/sys/cpu"

// On amd64, lane width tracks the widest available float32 vector register
// this process can actually use: 8 lanes (256-bit, AVX2) when available,
// otherwise 4 lanes (128-bit, SSE2-equivalent). This mirrors gonum's
// internal/asm/f64 dot_amd64.go, which swaps DotUnitary's implementation
// between an AVX2 and an SSE2 assembly routine in an init() gated on
// cpu.X86.HasAVX2 — the dispatch shape is identical, only here the "kernel"
// behind each width is the portable dotLanesGeneric loop (kernel_simd.go) rather than
// hand-written assembly (see DESIGN.md for why: reproducing go-highway's
// or gonum's actual .s files by hand, unverified by a build, is not a risk
// worth taking for this kernel).
var lanes int

func init() {
	if cpu.X86.HasAVX2 {
		lanes = 8
	} else {
		lanes = 4
	}
}

func simdLanes() int { return lanes }

func dotLanes(x, y []float32) float32 { return dotLanesGeneric(x, y, lanes) }
