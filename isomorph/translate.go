package isomorph

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lox/pokertools/poker"
)

// ErrInvalidSuitMap is returned when a SuitMap is not a permutation of the
// four suits.
var ErrInvalidSuitMap = errors.New("suit map is not a permutation")

// SuitMap maps a source suit (the index) to a destination suit.
type SuitMap [poker.NumSuits]uint8

// Identity leaves every suit in place.
var Identity = SuitMap{poker.Clubs, poker.Diamonds, poker.Hearts, poker.Spades}

// Validate checks that m is a bijection on the four suits.
func (m SuitMap) Validate() error {
	var seen [poker.NumSuits]bool
	for src, dst := range m {
		if dst >= poker.NumSuits || seen[dst] {
			return fmt.Errorf("%w: %c maps to %d", ErrInvalidSuitMap, poker.SuitChar(uint8(src)), dst)
		}
		seen[dst] = true
	}
	return nil
}

// Apply returns the destination of suit.
func (m SuitMap) Apply(suit uint8) uint8 {
	return m[suit]
}

// Inverse returns the map that undoes m.
func (m SuitMap) Inverse() SuitMap {
	var inv SuitMap
	for src, dst := range m {
		inv[dst] = uint8(src)
	}
	return inv
}

// TranslateCard moves c to its mapped suit, keeping its rank.
func (m SuitMap) TranslateCard(c poker.Card) (poker.Card, error) {
	suit := c.Suit()
	if suit >= poker.NumSuits {
		return 0, fmt.Errorf("%w: %#x", poker.ErrInvalidSuit, uint64(c))
	}
	return poker.NewCard(c.Rank(), m[suit]), nil
}

// TranslateHand moves every card of h through m.
func (m SuitMap) TranslateHand(h poker.Hand) poker.Hand {
	var out poker.Hand
	for suit := range uint8(poker.NumSuits) {
		out |= poker.Hand(h.GetSuitMask(suit)) << (13 * m[suit])
	}
	return out
}

func (m SuitMap) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for src, dst := range m {
		if src > 0 {
			b.WriteString(", ")
		}
		b.WriteByte(poker.SuitChar(uint8(src)))
		b.WriteByte(':')
		b.WriteByte(poker.SuitChar(dst))
	}
	b.WriteByte('}')
	return b.String()
}

// TranslationMap returns the suit permutation that carries f onto its
// canonical form: sorting f and mapping each card through the result yields
// Canonical(f). The map is always a full bijection, so it can also move
// holecards and later board cards into the same canonical space.
func TranslationMap(f Flop) SuitMap {
	sorted := f.Sorted()
	if sorted.Suits() == Canonical(sorted).Suits() {
		return Identity
	}

	if sorted.Pattern() == PatternAAA {
		m := Identity
		suit := sorted[0].Suit()
		m[suit], m[poker.Clubs] = poker.Clubs, suit
		return m
	}

	var (
		m         SuitMap
		mappedSrc [poker.NumSuits]bool
		usedDst   [poker.NumSuits]bool
	)
	labels := canonicalLabels(sorted)
	for i, c := range sorted {
		src, dst := c.Suit(), preferredSuits[labels[i]]
		m[src] = dst
		mappedSrc[src] = true
		usedDst[dst] = true
	}

	// Suits the flop does not use pair off in ascending order.
	var freeSrc, freeDst []uint8
	for suit := range uint8(poker.NumSuits) {
		if !mappedSrc[suit] {
			freeSrc = append(freeSrc, suit)
		}
		if !usedDst[suit] {
			freeDst = append(freeDst, suit)
		}
	}
	for i, src := range freeSrc {
		m[src] = freeDst[i]
	}
	return m
}

// Translation validates cards as a flop and returns its translation map.
func Translation(cards ...poker.Card) (SuitMap, error) {
	f, err := FlopFromCards(cards)
	if err != nil {
		return SuitMap{}, err
	}
	return TranslationMap(f), nil
}

// TranslateCards applies m to each card, keeping ranks and input order.
func TranslateCards(m SuitMap, cards []poker.Card) ([]poker.Card, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	out := make([]poker.Card, len(cards))
	for i, c := range cards {
		t, err := m.TranslateCard(c)
		if err != nil {
			return nil, err
		}
		out[i] = t
	}
	return out, nil
}

// TranslateHoleCards applies m to both holecards and restores canonical
// holecard order.
func TranslateHoleCards(m SuitMap, h poker.HoleCards) (poker.HoleCards, error) {
	cards, err := TranslateCards(m, h.Cards())
	if err != nil {
		return poker.HoleCards{}, err
	}
	return poker.NewHoleCards(cards[0], cards[1])
}
