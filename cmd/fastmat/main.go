// Command fastmat is the CLI driver spec.md §1 places outside the core:
// random matrix generation, on-disk persistence through the codec, and a
// small human-readable display — none of which the fastmat package itself
// is allowed to do (spec.md §7: "No logging from the core").
package main

import (
	"fmt"
	"math/rand"
	"os"

	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/fastmat/fastmat"
)

var log = zlog.With().Caller().Logger().Output(zerolog.ConsoleWriter{Out: os.Stderr})

func init() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
}

func main() {
	if err := rootCmd().Execute(); err != nil {
		log.Fatal().Err(err).Msg("fastmat failed")
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "fastmat",
		Short: "random generation, persistence, and display for fastmat matrices",
	}
	root.AddCommand(randomCmd(), printCmd(), mulCmd())
	return root
}

func randomCmd() *cobra.Command {
	var seed int64
	cmd := &cobra.Command{
		Use:   "random <width> <height> <out-file>",
		Short: "write a random LinearMatrix blob",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			w, h, err := parseDims(args[0], args[1])
			if err != nil {
				return err
			}
			var rng *rand.Rand
			if seed != 0 {
				rng = rand.New(rand.NewSource(seed))
			}
			m := fastmat.Random(w, h, rng)
			if err := saveMatrix(args[2], m); err != nil {
				return err
			}
			log.Info().Int("width", w).Int("height", h).Str("out", args[2]).Msg("wrote random matrix")
			return nil
		},
	}
	cmd.Flags().Int64Var(&seed, "seed", 0, "PRNG seed; 0 uses the process-global source")
	return cmd
}

func printCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "print <file>",
		Short: "display a LinearMatrix blob as aligned rows",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := loadMatrix(args[0])
			if err != nil {
				return err
			}
			for _, row := range m.Rows() {
				for _, v := range row {
					fmt.Fprintf(cmd.OutOrStdout(), "%8.3f ", v)
				}
				fmt.Fprintln(cmd.OutOrStdout())
			}
			return nil
		},
	}
}

func mulCmd() *cobra.Command {
	var (
		fragment  int
		algorithm string
		kernel    string
		dist      string
		cutoff    int
	)
	cmd := &cobra.Command{
		Use:   "mul <a-file> <b-file> <out-file>",
		Short: "multiply two square power-of-two LinearMatrix blobs",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadMatrix(args[0])
			if err != nil {
				return err
			}
			b, err := loadMatrix(args[1])
			if err != nil {
				return err
			}

			result, err := multiplyWithOptions(a, b, fragment, algorithm, kernel, dist, cutoff)
			if err != nil {
				return err
			}
			if err := saveMatrix(args[2], result); err != nil {
				return err
			}
			log.Info().
				Str("algorithm", algorithm).
				Str("kernel", kernel).
				Str("distributor", dist).
				Int("fragment", fragment).
				Msg("multiplication complete")
			return nil
		},
	}
	cmd.Flags().IntVar(&fragment, "fragment", 32, "fragment size F")
	cmd.Flags().StringVar(&algorithm, "algorithm", "standard", "standard|strassen")
	cmd.Flags().StringVar(&kernel, "kernel", "scalar", "scalar|simd")
	cmd.Flags().StringVar(&dist, "dist", "sequential", "sequential|parallel")
	cmd.Flags().IntVar(&cutoff, "cutoff", 256, "parallel distributor cutoff L")
	return cmd
}

func multiplyWithOptions(a, b *fastmat.LinearMatrix, fragment int, algorithm, kernelName, distName string, cutoff int) (*fastmat.LinearMatrix, error) {
	za, err := fastmat.ToZOrder(a, fragment)
	if err != nil {
		return nil, err
	}
	zb, err := fastmat.ToZOrder(b, fragment)
	if err != nil {
		return nil, err
	}

	kern, err := resolveKernel(kernelName)
	if err != nil {
		return nil, err
	}
	distributor, err := resolveDistributor(distName, cutoff)
	if err != nil {
		return nil, err
	}

	var zr *fastmat.ZMatrix
	switch algorithm {
	case "standard":
		zr, err = fastmat.Multiply(za, zb, distributor, kern)
	case "strassen":
		zr, err = fastmat.Strassen(za, zb, distributor, kern)
	default:
		return nil, fmt.Errorf("fastmat: unknown algorithm %q", algorithm)
	}
	if err != nil {
		return nil, err
	}
	return fastmat.FromZOrder(zr), nil
}

func resolveKernel(name string) (fastmat.Kernel, error) {
	switch name {
	case "scalar":
		return fastmat.ScalarKernel{}, nil
	case "simd":
		return fastmat.SIMDKernel{}, nil
	default:
		return nil, fmt.Errorf("fastmat: unknown kernel %q", name)
	}
}

func resolveDistributor(name string, cutoff int) (fastmat.Distributor, error) {
	switch name {
	case "sequential":
		return fastmat.SequentialDistributor{}, nil
	case "parallel":
		return fastmat.NewParallelDistributor(cutoff), nil
	default:
		return nil, fmt.Errorf("fastmat: unknown distributor %q", name)
	}
}

func parseDims(wArg, hArg string) (int, int, error) {
	var w, h int
	if _, err := fmt.Sscanf(wArg, "%d", &w); err != nil {
		return 0, 0, fmt.Errorf("fastmat: bad width %q: %w", wArg, err)
	}
	if _, err := fmt.Sscanf(hArg, "%d", &h); err != nil {
		return 0, 0, fmt.Errorf("fastmat: bad height %q: %w", hArg, err)
	}
	return w, h, nil
}

func loadMatrix(path string) (*fastmat.LinearMatrix, error) {
	blob, err := os.ReadFile(path)
	if err != nil {
		return nil, &fastmat.IOError{Op: "read " + path, Err: err}
	}
	m := &fastmat.LinearMatrix{}
	if err := m.UnmarshalBinary(blob); err != nil {
		return nil, err
	}
	return m, nil
}

func saveMatrix(path string, m *fastmat.LinearMatrix) error {
	blob, err := m.MarshalBinary()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, blob, 0o644); err != nil {
		return &fastmat.IOError{Op: "write " + path, Err: err}
	}
	return nil
}
