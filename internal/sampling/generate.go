// Package sampling draws large batches from a distribution in parallel.
package sampling

import (
	"context"
	"log/slog"
	"math/rand/v2"

	"github.com/spboyer/gauss/gaussian"
	"github.com/spboyer/gauss/internal/boxmuller"
	"golang.org/x/sync/errgroup"
)

// chunkSize bounds how many draws a worker makes between context checks.
const chunkSize = 1 << 16

// Options controls Generate.
type Options struct {
	Count   int
	Workers int
	// Seed makes the output reproducible for a fixed Workers value. A nil
	// seed draws one from the global source.
	Seed *uint64
}

// Generate returns opts.Count independent draws from g. Work is split into
// contiguous ranges, one per worker, each with its own seeded source.
func Generate(ctx context.Context, g gaussian.Gaussian, opts Options) ([]float64, error) {
	if opts.Count <= 0 {
		return []float64{}, nil
	}
	workers := max(1, min(opts.Workers, opts.Count))

	seed := rand.Uint64()
	if opts.Seed != nil {
		seed = *opts.Seed
	}

	out := make([]float64, opts.Count)
	per := (opts.Count + workers - 1) / workers

	slog.Debug("generating samples", "dist", g.String(), "count", opts.Count, "workers", workers, "seed", seed)

	eg, ctx := errgroup.WithContext(ctx)
	for i := range workers {
		lo := i * per
		hi := min(lo+per, opts.Count)
		if lo >= hi {
			break
		}
		src := boxmuller.New(seed + uint64(i))
		eg.Go(func() error {
			for start := lo; start < hi; start += chunkSize {
				if err := ctx.Err(); err != nil {
					return err
				}
				end := min(start+chunkSize, hi)
				copy(out[start:end], g.RandomWith(src, end-start))
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
