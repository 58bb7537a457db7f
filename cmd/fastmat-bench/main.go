// Command fastmat-bench is the benchmarking harness spec.md §1 places
// outside the core: for every {matrix size, fragment size} pair it times
// the standard multiplier, and for F >= 32 also Strassen, both with the
// SIMD kernel and a parallel distributor of cutoff 256, over freshly
// generated random matrices, and renders throughput as an SVG scatter
// plot, matching the
// `strassen-{F}` benchmark label spec.md §4.H calls out for F >= 32.
package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/fastmat/fastmat"
)

var log = zlog.With().Caller().Logger().Output(zerolog.ConsoleWriter{Out: os.Stderr})

func init() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
}

type result struct {
	label    string
	fragment int
	n        int
	lanes    int
	gflops   float64
	elapsed  time.Duration
}

func main() {
	var (
		sizes     []int
		fragments []int
		out       string
	)
	cmd := &cobra.Command{
		Use:   "fastmat-bench",
		Short: "benchmark fastmat's multiply variants and plot throughput",
		RunE: func(cmd *cobra.Command, args []string) error {
			results := runAll(sizes, fragments)
			for _, r := range results {
				log.Info().
					Str("label", r.label).
					Int("n", r.n).
					Int("lanes", r.lanes).
					Float64("gflops", r.gflops).
					Dur("elapsed", r.elapsed).
					Msg("benchmark sample")
			}
			return renderPlot(results, out)
		},
	}
	cmd.Flags().IntSliceVar(&sizes, "sizes", []int{64, 128, 256}, "matrix side lengths to benchmark")
	cmd.Flags().IntSliceVar(&fragments, "fragments", []int{8, 16, 32}, "fragment sizes to benchmark")
	cmd.Flags().StringVar(&out, "out", "fastmat-bench.svg", "output SVG path")

	if err := cmd.Execute(); err != nil {
		log.Fatal().Err(err).Msg("fastmat-bench failed")
	}
}

func runAll(sizes, fragments []int) []result {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	kern := fastmat.SIMDKernel{}
	lanes := kern.Lanes()
	var out []result
	for _, n := range sizes {
		a := fastmat.Random(n, n, rng)
		b := fastmat.Random(n, n, rng)
		for _, f := range fragments {
			if n%f != 0 {
				continue
			}
			za, err := fastmat.ToZOrder(a, f)
			if err != nil {
				continue
			}
			zb, err := fastmat.ToZOrder(b, f)
			if err != nil {
				continue
			}

			out = append(out, timeVariant(fmt.Sprintf("standard-%d", f), f, n, lanes, func() error {
				_, err := fastmat.Multiply(za, zb, fastmat.NewParallelDistributor(256), kern)
				return err
			}))

			// The strassen-{F} label is only meaningful for F >= 32
			// (spec.md §4.H): below that Strassen's extra additions
			// cost more than the multiplication it saves.
			if f >= 32 {
				out = append(out, timeVariant(fmt.Sprintf("strassen-%d", f), f, n, lanes, func() error {
					_, err := fastmat.Strassen(za, zb, fastmat.NewParallelDistributor(256), kern)
					return err
				}))
			}
		}
	}
	return out
}

func timeVariant(label string, f, n, lanes int, run func() error) result {
	start := time.Now()
	if err := run(); err != nil {
		log.Warn().Err(err).Str("label", label).Msg("benchmark variant failed")
	}
	elapsed := time.Since(start)
	flops := 2.0 * float64(n) * float64(n) * float64(n)
	gflops := flops / elapsed.Seconds() / 1e9
	return result{label: label, fragment: f, n: n, lanes: lanes, gflops: gflops, elapsed: elapsed}
}

func renderPlot(results []result, path string) error {
	p := plot.New()
	p.Title.Text = "fastmat throughput"
	p.X.Label.Text = "matrix side n"
	p.Y.Label.Text = "GFLOP/s"

	byLabel := map[string]plotter.XYs{}
	for _, r := range results {
		byLabel[r.label] = append(byLabel[r.label], plotter.XY{X: float64(r.n), Y: r.gflops})
	}
	for label, pts := range byLabel {
		scatter, err := plotter.NewScatter(pts)
		if err != nil {
			return fmt.Errorf("fastmat-bench: plot %s: %w", label, err)
		}
		p.Add(scatter)
		p.Legend.Add(label, scatter)
	}

	if err := p.Save(8*vg.Inch, 5*vg.Inch, path); err != nil {
		return fmt.Errorf("fastmat-bench: save plot: %w", err)
	}
	log.Info().Str("path", path).Msg("wrote benchmark plot")
	return nil
}
