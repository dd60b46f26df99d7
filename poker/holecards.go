package poker

import (
	"fmt"
	"slices"
	"sync"
)

// HoleCards is a two-card starting hand kept in a single canonical order:
// higher rank first, and on a pair the lower suit letter first.
type HoleCards [2]Card

// NewHoleCards validates two cards and returns them in canonical order.
func NewHoleCards(a, b Card) (HoleCards, error) {
	if err := CheckCards(2, a, b); err != nil {
		return HoleCards{}, err
	}
	return orderHoleCards(a, b), nil
}

func orderHoleCards(a, b Card) HoleCards {
	switch {
	case a.Rank() < b.Rank():
		a, b = b, a
	case a.Rank() == b.Rank() && a.Suit() > b.Suit():
		a, b = b, a
	}
	return HoleCards{a, b}
}

// ParseHoleCards parses "AcKc" or "Ac Kc".
func ParseHoleCards(s string) (HoleCards, error) {
	cards, err := ParseCards(s)
	if err != nil {
		return HoleCards{}, err
	}
	if len(cards) != 2 {
		return HoleCards{}, fmt.Errorf("%w: holecards need 2 cards, got %d", ErrInvalidShape, len(cards))
	}
	return NewHoleCards(cards[0], cards[1])
}

// MustParseHoleCards is ParseHoleCards for literals known to be valid.
func MustParseHoleCards(s string) HoleCards {
	h, err := ParseHoleCards(s)
	if err != nil {
		panic(err)
	}
	return h
}

// Hand returns both cards as a card set.
func (h HoleCards) Hand() Hand {
	return Hand(h[0]) | Hand(h[1])
}

// Cards returns the two cards as a slice.
func (h HoleCards) Cards() []Card {
	return []Card{h[0], h[1]}
}

// Suited reports whether both cards share a suit.
func (h HoleCards) Suited() bool {
	return h[0].Suit() == h[1].Suit()
}

// Paired reports whether both cards share a rank.
func (h HoleCards) Paired() bool {
	return h[0].Rank() == h[1].Rank()
}

func (h HoleCards) String() string {
	return h[0].String() + " " + h[1].String()
}

// allHoleCards walks the universe from the top: ranks descending, suits
// ascending within a rank, pairing each card with every card after it.
var allHoleCards = sync.OnceValue(func() []HoleCards {
	order := make([]Card, 0, NumCards)
	for rank := int(Ace); rank >= int(Two); rank-- {
		for suit := range uint8(NumSuits) {
			order = append(order, NewCard(uint8(rank), suit))
		}
	}

	combos := make([]HoleCards, 0, NumCards*(NumCards-1)/2)
	for i, a := range order {
		for _, b := range order[i+1:] {
			combos = append(combos, orderHoleCards(a, b))
		}
	}
	return combos
})

// AllHoleCards returns all 1,326 starting hands, "Ac Ad" first.
func AllHoleCards() []HoleCards {
	return slices.Clone(allHoleCards())
}
