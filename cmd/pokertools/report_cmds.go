package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lox/pokertools/internal/fileutil"
	"github.com/lox/pokertools/internal/handid"
	"github.com/lox/pokertools/internal/phh"
	"github.com/lox/pokertools/internal/report"
	"github.com/lox/pokertools/isomorph"
	"github.com/lox/pokertools/poker"
)

type ReportCmd struct {
	Workers int `short:"w" help:"Worker goroutines (default from config)"`
}

func (c *ReportCmd) Run(app *App) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return c.run(ctx, app)
}

func (c *ReportCmd) run(ctx context.Context, app *App) error {
	opts, err := app.Config.BluffOptions()
	if err != nil {
		return err
	}
	workers := app.Config.Report.Workers
	if c.Workers > 0 {
		workers = c.Workers
	}

	summary, err := report.Run(ctx, report.Options{
		Workers: workers,
		Bluff:   opts,
		Clock:   app.Clock,
		Logger:  app.Logger,
	})
	if err != nil {
		return err
	}

	w := newTable(app.Out)
	fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
		headerStyle.Render("pattern"),
		headerStyle.Render("flops"),
		headerStyle.Render("raw flops"),
		headerStyle.Render("bluffs"),
		headerStyle.Render("mean"),
		headerStyle.Render("max"))
	for _, ps := range summary.ByPattern {
		fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%.2f\t%.0f\n",
			ps.Pattern, ps.Flops, ps.Weight, ps.BluffCandidates, ps.Bluffs.Mean(), ps.Bluffs.Max)
	}
	fmt.Fprintf(w, "%s\t%d\t%d\t\t%.2f\t%.0f\n",
		headerStyle.Render("all"), len(summary.Flops), summary.TotalWeight, summary.Bluffs.Mean(), summary.Bluffs.Max)
	if err := w.Flush(); err != nil {
		return err
	}
	footer(app.Out, "%d canonical flops covering %d raw flops in %v",
		len(summary.Flops), summary.TotalWeight, summary.Elapsed.Truncate(time.Millisecond))
	return nil
}

type DealCmd struct {
	Seed    *int64 `help:"Random seed for a reproducible deal"`
	Players int    `short:"p" help:"Number of players to deal holecards to" default:"1"`
	PHH     string `name:"phh" help:"Also write the deal as a PHH hand history to this file"`
}

func (c *DealCmd) Run(app *App) error {
	if c.Players < 1 || c.Players > 9 {
		return fmt.Errorf("players must be between 1 and 9, got %d", c.Players)
	}

	var seed int64
	if c.Seed != nil {
		seed = *c.Seed
		app.Logger.Info("Using deterministic seed", "seed", seed)
	} else {
		seed = app.Clock.Now().UnixNano()
		app.Logger.Info("Using random seed", "seed", seed)
	}

	rng := poker.NewRand(seed)
	deck := poker.NewDeck(rng)
	holes := make([][]poker.Card, c.Players)
	for i := range holes {
		holes[i] = deck.Deal(2)
	}
	flop, err := isomorph.FlopFromCards(deck.Deal(3))
	if err != nil {
		return err
	}

	m := isomorph.TranslationMap(flop)
	canon := isomorph.Canonical(flop)

	w := newTable(app.Out)
	row(w, "seed", seed)
	row(w, "flop", cardsStyle.Render(flop.String()))
	row(w, "canonical flop", cardsStyle.Render(canon.String()))
	row(w, "map", mapStyle.Render(m.String()))
	for i, hole := range holes {
		moved, err := isomorph.TranslateCards(m, hole)
		if err != nil {
			return err
		}
		row(w, fmt.Sprintf("p%d", i+1), fmt.Sprintf("%s -> %s",
			cardsStyle.Render(poker.FormatCards(hole)), cardsStyle.Render(poker.FormatCards(moved))))
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if c.PHH == "" {
		return nil
	}
	hand, err := phh.FromDeal(phh.Deal{
		ID:         handid.New(app.Clock, rng).Generate(),
		Holes:      holes,
		Flop:       flop[:],
		SmallBlind: 1,
		BigBlind:   2,
		Stack:      200,
		Metadata: map[string]any{
			"seed":           seed,
			"canonical_flop": canon.String(),
			"suit_map":       m.String(),
		},
	})
	if err != nil {
		return err
	}
	err = fileutil.WriteAtomic(c.PHH, 0o644, func(out io.Writer) error {
		return phh.Encode(out, hand)
	})
	if err != nil {
		return fmt.Errorf("write %s: %w", c.PHH, err)
	}
	app.Logger.Info("Wrote hand history", "file", c.PHH, "hand", hand.HandID)
	return nil
}
