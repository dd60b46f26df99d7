package isomorph

import (
	"fmt"
	"slices"

	"github.com/lox/pokertools/poker"
)

// Flop is three distinct cards in the order they were given.
type Flop [3]poker.Card

// NewFlop validates three cards and keeps their order.
func NewFlop(c1, c2, c3 poker.Card) (Flop, error) {
	f := Flop{c1, c2, c3}
	if err := f.Validate(); err != nil {
		return Flop{}, err
	}
	return f, nil
}

// FlopFromCards validates a card slice as a flop.
func FlopFromCards(cards []poker.Card) (Flop, error) {
	if err := poker.CheckCards(3, cards...); err != nil {
		return Flop{}, fmt.Errorf("flop: %w", err)
	}
	return Flop{cards[0], cards[1], cards[2]}, nil
}

// ParseFlop parses "6s 8d 7c" or "6s8d7c".
func ParseFlop(s string) (Flop, error) {
	cards, err := poker.ParseCards(s)
	if err != nil {
		return Flop{}, fmt.Errorf("flop: %w", err)
	}
	return FlopFromCards(cards)
}

// MustParseFlop is ParseFlop for literals known to be valid.
func MustParseFlop(s string) Flop {
	f, err := ParseFlop(s)
	if err != nil {
		panic(err)
	}
	return f
}

// Validate checks for three valid, distinct cards.
func (f Flop) Validate() error {
	if err := poker.CheckCards(3, f[:]...); err != nil {
		return fmt.Errorf("flop: %w", err)
	}
	return nil
}

// Sorted returns the flop in ascending card order.
func (f Flop) Sorted() Flop {
	poker.SortCards(f[:])
	return f
}

// Pattern classifies the suits in the order given.
func (f Flop) Pattern() SuitPattern {
	return PatternOf(f[0].Suit(), f[1].Suit(), f[2].Suit())
}

// Hand returns the flop as a card set; it is order independent.
func (f Flop) Hand() poker.Hand {
	return poker.NewHand(f[:]...)
}

// Cards returns the cards as a fresh slice.
func (f Flop) Cards() []poker.Card {
	return slices.Clone(f[:])
}

// Suits returns the suit of each position.
func (f Flop) Suits() [3]uint8 {
	return [3]uint8{f[0].Suit(), f[1].Suit(), f[2].Suit()}
}

func (f Flop) String() string {
	return poker.FormatCards(f[:])
}

// compareFlops orders flops lexicographically by card order.
func compareFlops(a, b Flop) int {
	for i := range a {
		if c := poker.Compare(a[i], b[i]); c != 0 {
			return c
		}
	}
	return 0
}
