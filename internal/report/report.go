// Package report walks every canonical flop class and summarizes texture,
// class weight and bluff-candidate counts per suit pattern.
package report

import (
	"context"
	"errors"
	"fmt"
	"io"
	"runtime"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"golang.org/x/sync/errgroup"

	"github.com/lox/pokertools/internal/statistics"
	"github.com/lox/pokertools/isomorph"
	"github.com/lox/pokertools/sdk/classification"
)

// Options configures a report run. Zero values pick sensible defaults.
type Options struct {
	Workers int
	Bluff   classification.BluffOptions
	Clock   quartz.Clock
	Logger  *log.Logger
	// Classes restricts the run; nil means every canonical class.
	Classes []isomorph.Class
}

// FlopStats describes one canonical flop.
type FlopStats struct {
	Slot            int
	Flop            isomorph.Flop
	Pattern         isomorph.SuitPattern
	Weight          int
	Isomorphs       int
	Rainbow         bool
	Monotone        bool
	Paired          bool
	BluffCandidates int
}

// PatternSummary aggregates FlopStats sharing a suit pattern. Bluffs holds
// bluff-candidate counts weighted by class weight, so its mean is per raw flop.
type PatternSummary struct {
	Pattern         isomorph.SuitPattern
	Flops           int
	Weight          int
	BluffCandidates int
	Bluffs          statistics.Statistics
}

// Summary is the result of a run. Flops follow the input class order.
type Summary struct {
	Flops       []FlopStats
	ByPattern   []PatternSummary
	Bluffs      statistics.Statistics
	TotalWeight int
	Started     time.Time
	Elapsed     time.Duration
}

// Run analyzes every class, fanning work out over opts.Workers goroutines.
func Run(ctx context.Context, opts Options) (*Summary, error) {
	clock := opts.Clock
	if clock == nil {
		clock = quartz.NewReal()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	classes := opts.Classes
	if classes == nil {
		classes = isomorph.CanonicalClasses()
	}

	idx, err := isomorph.DefaultIndex()
	if err != nil {
		return nil, err
	}

	started := clock.Now()
	logger.Debug("starting report", "flops", len(classes), "workers", workers, "board_pairs", opts.Bluff.BoardPairs)

	stats := make([]FlopStats, len(classes))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, class := range classes {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			s, err := analyze(idx, class, opts.Bluff)
			if err != nil {
				return fmt.Errorf("flop %s: %w", class.Flop, err)
			}
			stats[i] = s
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	summary := summarize(stats)
	summary.Started = started
	summary.Elapsed = clock.Since(started)
	logger.Info("report complete", "flops", len(stats), "weight", summary.TotalWeight, "elapsed", summary.Elapsed)
	return summary, nil
}

func analyze(idx *isomorph.Index, class isomorph.Class, bluff classification.BluffOptions) (FlopStats, error) {
	f := class.Flop
	slot, ok := idx.Lookup(f)
	if !ok {
		return FlopStats{}, errors.New("not in canonical index")
	}
	candidates, err := classification.BluffCandidates(f, bluff)
	if err != nil {
		return FlopStats{}, err
	}

	return FlopStats{
		Slot:            slot,
		Flop:            f,
		Pattern:         f.Pattern(),
		Weight:          class.Weight,
		Isomorphs:       len(isomorph.SuitIsomorphs(f)),
		Rainbow:         classification.IsRainbow(f),
		Monotone:        classification.IsMonotone(f),
		Paired:          classification.HasPair(f) || classification.HasThreeOfAKind(f),
		BluffCandidates: len(candidates),
	}, nil
}

func summarize(stats []FlopStats) *Summary {
	patterns := isomorph.Patterns()
	byPattern := make([]PatternSummary, len(patterns))
	for i, p := range patterns {
		byPattern[i].Pattern = p
	}

	s := &Summary{Flops: stats, ByPattern: byPattern}
	for _, fs := range stats {
		ps := &byPattern[fs.Pattern]
		ps.Flops++
		ps.Weight += fs.Weight
		ps.BluffCandidates += fs.BluffCandidates
		ps.Bluffs.Add(float64(fs.BluffCandidates), float64(fs.Weight))
		s.TotalWeight += fs.Weight
	}
	for i := range byPattern {
		s.Bluffs.Merge(&byPattern[i].Bluffs)
	}
	return s
}
