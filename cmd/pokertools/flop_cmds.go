package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/lox/pokertools/internal/fileutil"
	"github.com/lox/pokertools/isomorph"
	"github.com/lox/pokertools/poker"
)

type CanonicalCmd struct {
	Flop  string `arg:"" help:"Flop cards, e.g. 'Qs Qd 4d'"`
	Hole  string `help:"Holecards to carry into canonical space"`
	Board string `short:"b" help:"Turn and river cards to carry into canonical space"`
}

func (c *CanonicalCmd) Run(app *App) error {
	flop, err := isomorph.ParseFlop(c.Flop)
	if err != nil {
		return err
	}
	s := isomorph.Scenario{Flop: flop}
	if c.Hole != "" {
		if s.Hole, err = poker.ParseCards(c.Hole); err != nil {
			return fmt.Errorf("hole: %w", err)
		}
	}
	if c.Board != "" {
		if s.Board, err = poker.ParseCards(c.Board); err != nil {
			return fmt.Errorf("board: %w", err)
		}
	}

	canon, m, err := s.Canonical()
	if err != nil {
		return err
	}
	idx, err := isomorph.DefaultIndex()
	if err != nil {
		return err
	}
	slot, ok := idx.Lookup(canon.Flop)
	if !ok {
		return fmt.Errorf("flop %s missing from index", canon.Flop)
	}
	weight := isomorph.CanonicalClasses()[slot].Weight
	app.Logger.Debug("Canonicalized flop", "flop", flop, "canonical", canon.Flop, "map", m)

	w := newTable(app.Out)
	row(w, "flop", cardsStyle.Render(flop.String()))
	row(w, "canonical", cardsStyle.Render(canon.Flop.String()))
	row(w, "pattern", canon.Flop.Pattern())
	row(w, "slot", slot)
	row(w, "raw flops", weight)
	row(w, "map", mapStyle.Render(m.String()))
	if len(s.Hole) > 0 {
		row(w, "hole", fmt.Sprintf("%s -> %s", poker.FormatCards(s.Hole), cardsStyle.Render(poker.FormatCards(canon.Hole))))
	}
	if len(s.Board) > 0 {
		row(w, "board", fmt.Sprintf("%s -> %s", poker.FormatCards(s.Board), cardsStyle.Render(poker.FormatCards(canon.Board))))
	}
	return w.Flush()
}

type IsomorphsCmd struct {
	Flop string `arg:"" help:"Flop cards"`
}

func (c *IsomorphsCmd) Run(app *App) error {
	flop, err := isomorph.ParseFlop(c.Flop)
	if err != nil {
		return err
	}

	isos := isomorph.SuitIsomorphs(flop)
	for _, f := range isos {
		fmt.Fprintln(app.Out, cardsStyle.Render(f.String()))
	}
	footer(app.Out, "%d isomorphs of %s (%s)", len(isos), flop, flop.Pattern())
	return nil
}

type CanonicalsCmd struct {
	Count  bool   `help:"Only print how many canonical flops there are"`
	Output string `short:"o" help:"Also write slot, flop, pattern and weight as CSV to this file"`
}

func (c *CanonicalsCmd) Run(app *App) error {
	classes := isomorph.CanonicalClasses()
	if c.Count {
		fmt.Fprintln(app.Out, len(classes))
		return nil
	}

	idx, err := isomorph.DefaultIndex()
	if err != nil {
		return err
	}

	w := newTable(app.Out)
	fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
		headerStyle.Render("slot"),
		headerStyle.Render("flop"),
		headerStyle.Render("pattern"),
		headerStyle.Render("weight"))
	total := 0
	for _, class := range classes {
		slot, ok := idx.Lookup(class.Flop)
		if !ok {
			return fmt.Errorf("flop %s missing from index", class.Flop)
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%d\n", slot, cardsStyle.Render(class.Flop.String()), class.Pattern(), class.Weight)
		total += class.Weight
	}
	if err := w.Flush(); err != nil {
		return err
	}
	footer(app.Out, "%d canonical flops covering %d raw flops", len(classes), total)

	if c.Output == "" {
		return nil
	}
	err = fileutil.WriteAtomic(c.Output, 0o644, func(out io.Writer) error {
		return writeClassesCSV(out, idx, classes)
	})
	if err != nil {
		return fmt.Errorf("write %s: %w", c.Output, err)
	}
	app.Logger.Info("Wrote canonical flops", "file", c.Output, "flops", len(classes))
	return nil
}

func writeClassesCSV(out io.Writer, idx *isomorph.Index, classes []isomorph.Class) error {
	cw := csv.NewWriter(out)
	if err := cw.Write([]string{"slot", "flop", "pattern", "weight"}); err != nil {
		return err
	}
	for _, class := range classes {
		slot, _ := idx.Lookup(class.Flop)
		record := []string{
			strconv.Itoa(slot),
			class.Flop.String(),
			class.Pattern().String(),
			strconv.Itoa(class.Weight),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
