package main

import (
	"fmt"

	"github.com/lox/pokertools/isomorph"
	"github.com/lox/pokertools/poker"
	"github.com/lox/pokertools/sdk/analysis"
	"github.com/lox/pokertools/sdk/classification"
)

type RangeCmd struct {
	Notation string `arg:"" help:"Range notation, e.g. 'JJ+, A5s-A2s, KTo+'"`
	Flop     string `help:"Translate the range into this flop's canonical suits"`
}

func (c *RangeCmd) Run(app *App) error {
	r, err := analysis.ParseRange(c.Notation)
	if err != nil {
		return err
	}
	if c.Flop != "" {
		flop, err := isomorph.ParseFlop(c.Flop)
		if err != nil {
			return err
		}
		m := isomorph.TranslationMap(flop)
		if r, err = r.TranslateSuits(m); err != nil {
			return err
		}
		app.Logger.Debug("Translated range", "flop", flop, "map", m)
	}

	for _, h := range r.Combos() {
		fmt.Fprintln(app.Out, cardsStyle.Render(h.String()))
	}
	footer(app.Out, "%d combos", r.Size())
	return nil
}

type PropsCmd struct {
	Hole string `arg:"" help:"Holecards, e.g. 'Kc Qc'"`
	Flop string `arg:"" help:"Flop cards"`
}

func (c *PropsCmd) Run(app *App) error {
	hole, err := poker.ParseHoleCards(c.Hole)
	if err != nil {
		return err
	}
	flop, err := isomorph.ParseFlop(c.Flop)
	if err != nil {
		return err
	}
	if err := poker.CheckCards(5, append(hole.Cards(), flop[:]...)...); err != nil {
		return err
	}
	opts, err := app.Config.BluffOptions()
	if err != nil {
		return err
	}

	category, err := classification.Categorize(hole.Hand() | flop.Hand())
	if err != nil {
		return err
	}
	onePair, err := classification.IsOnePair(hole, flop, true)
	if err != nil {
		return err
	}
	threeFlush, err := classification.IsThreeFlush(hole, flop, opts.Required)
	if err != nil {
		return err
	}
	threeStraight, err := classification.IsThreeStraight(hole, flop, opts.Required)
	if err != nil {
		return err
	}
	overcards, err := classification.HasTwoOvercards(hole, flop)
	if err != nil {
		return err
	}
	bluff, err := classification.IsBluffCandidate(hole, flop, opts)
	if err != nil {
		return err
	}

	w := newTable(app.Out)
	row(w, "hand", cardsStyle.Render(hole.String()+" | "+flop.String()))
	row(w, "category", category)
	row(w, "pocket pair", yesNo(classification.IsPair(hole)))
	row(w, "suited", yesNo(classification.IsSuited(hole)))
	row(w, "connected", yesNo(classification.IsConnected(hole)))
	row(w, "one gap", yesNo(classification.HasOneGap(hole)))
	row(w, "two gap", yesNo(classification.HasTwoGap(hole)))
	row(w, "rainbow flop", yesNo(classification.IsRainbow(flop)))
	row(w, "monotone flop", yesNo(classification.IsMonotone(flop)))
	row(w, "two-flush flop", yesNo(classification.HasTwoFlush(flop)))
	row(w, "paired flop", yesNo(classification.HasPair(flop)))
	row(w, "trips flop", yesNo(classification.HasThreeOfAKind(flop)))
	row(w, "three-straight flop", yesNo(classification.HasThreeStraight(flop)))
	row(w, "gutshot flop", yesNo(classification.HasGutshot(flop)))
	row(w, "one pair", yesNo(onePair))
	row(w, fmt.Sprintf("three flush (%d)", opts.Required), yesNo(threeFlush))
	row(w, fmt.Sprintf("three straight (%d)", opts.Required), yesNo(threeStraight))
	row(w, "two overcards", yesNo(overcards))
	row(w, "bluff candidate", yesNo(bluff))
	return w.Flush()
}

type BluffsCmd struct {
	Flop       string `arg:"" help:"Flop cards"`
	BoardPairs string `help:"Whether board-only pairs disqualify: ignore or count (default from config)"`
	Required   *int   `help:"Holecards the three-flush and three-straight must use (default from config)"`
}

func (c *BluffsCmd) Run(app *App) error {
	flop, err := isomorph.ParseFlop(c.Flop)
	if err != nil {
		return err
	}
	opts, err := app.Config.BluffOptions()
	if err != nil {
		return err
	}
	if c.BoardPairs != "" {
		if opts.BoardPairs, err = classification.ParseBoardPairPolicy(c.BoardPairs); err != nil {
			return err
		}
	}
	if c.Required != nil {
		opts.Required = *c.Required
	}

	hands, err := classification.BluffCandidates(flop, opts)
	if err != nil {
		return err
	}
	app.Logger.Debug("Found bluff candidates", "flop", flop, "board_pairs", opts.BoardPairs, "required", opts.Required, "count", len(hands))

	for _, h := range hands {
		fmt.Fprintln(app.Out, cardsStyle.Render(h.String()))
	}
	footer(app.Out, "%d bluff candidates on %s", len(hands), flop)
	return nil
}
