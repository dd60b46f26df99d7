// Package poker holds the bit-packed card model shared by every other package:
// cards, card sets, holecards, parsing, ordering and the deck.
package poker

import (
	"fmt"
	"math/bits"
	"slices"
	"strings"
	"sync"
)

// Card represents a single card as a bit position in a uint64.
// Layout: [13 spades][13 hearts][13 diamonds][13 clubs]
type Card uint64

// Hand is also a uint64 but can contain multiple cards.
type Hand uint64

// Suit constants. The numeric order matches the c < d < h < s letter order.
const (
	Clubs    uint8 = 0
	Diamonds uint8 = 1
	Hearts   uint8 = 2
	Spades   uint8 = 3
)

// Rank constants (0-12 for 2-A)
const (
	Two   uint8 = 0
	Three uint8 = 1
	Four  uint8 = 2
	Five  uint8 = 3
	Six   uint8 = 4
	Seven uint8 = 5
	Eight uint8 = 6
	Nine  uint8 = 7
	Ten   uint8 = 8
	Jack  uint8 = 9
	Queen uint8 = 10
	King  uint8 = 11
	Ace   uint8 = 12
)

const (
	NumSuits = 4
	NumRanks = 13
	NumCards = NumSuits * NumRanks

	RankMask = 0x1FFF // 13 bits for ranks
	deckMask = 1<<NumCards - 1
)

const (
	rankChars = "23456789TJQKA"
	suitChars = "cdhs"
)

// NewCard creates a card from rank and suit.
func NewCard(rank, suit uint8) Card {
	offset := suit*13 + rank
	return Card(1) << offset
}

// Valid reports whether c is exactly one of the 52 cards.
func (c Card) Valid() bool {
	return c != 0 && c&(c-1) == 0 && c&deckMask != 0
}

// GetBitPosition returns which bit position this card occupies (0-51), or 255.
func (c Card) GetBitPosition() uint8 {
	if !c.Valid() {
		return 255
	}
	return uint8(bits.TrailingZeros64(uint64(c)))
}

// Rank returns the rank of the card (0-12), or 255 for an invalid card.
func (c Card) Rank() uint8 {
	pos := c.GetBitPosition()
	if pos == 255 {
		return 255
	}
	return pos % 13
}

// Suit returns the suit of the card (0-3), or 255 for an invalid card.
func (c Card) Suit() uint8 {
	pos := c.GetBitPosition()
	if pos == 255 {
		return 255
	}
	return pos / 13
}

// Value returns the rank on the 2-14 scale used by range notation and
// straight arithmetic.
func (c Card) Value() int {
	return int(c.Rank()) + 2
}

// String returns the string representation (e.g., "As", "Kh")
func (c Card) String() string {
	if !c.Valid() {
		return "??"
	}
	return string(rankChars[c.Rank()]) + string(suitChars[c.Suit()])
}

// RankChar returns the notation character for a rank (0-12).
func RankChar(rank uint8) byte {
	if rank > Ace {
		return '?'
	}
	return rankChars[rank]
}

// SuitChar returns the notation character for a suit (0-3).
func SuitChar(suit uint8) byte {
	if suit > Spades {
		return '?'
	}
	return suitChars[suit]
}

// ParseRank converts a rank character (either case) to 0-12.
func ParseRank(b byte) (uint8, bool) {
	switch b {
	case '2', '3', '4', '5', '6', '7', '8', '9':
		return b - '2', true
	case 'T', 't':
		return Ten, true
	case 'J', 'j':
		return Jack, true
	case 'Q', 'q':
		return Queen, true
	case 'K', 'k':
		return King, true
	case 'A', 'a':
		return Ace, true
	}
	return 0, false
}

// ParseSuit converts a suit character (either case) to 0-3.
func ParseSuit(b byte) (uint8, bool) {
	switch b {
	case 'c', 'C':
		return Clubs, true
	case 'd', 'D':
		return Diamonds, true
	case 'h', 'H':
		return Hearts, true
	case 's', 'S':
		return Spades, true
	}
	return 0, false
}

// ParseCard parses a string like "As" into a Card
func ParseCard(s string) (Card, error) {
	if len(s) != 2 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidCard, s)
	}
	rank, ok := ParseRank(s[0])
	if !ok {
		return 0, fmt.Errorf("%w: invalid rank %q", ErrInvalidCard, s[0])
	}
	suit, ok := ParseSuit(s[1])
	if !ok {
		return 0, fmt.Errorf("%w: invalid suit %q", ErrInvalidCard, s[1])
	}
	return NewCard(rank, suit), nil
}

// ParseCards parses a card list such as "As Kd 7c", "As,Kd" or "AsKd7c".
func ParseCards(s string) ([]Card, error) {
	compact := strings.Map(func(r rune) rune {
		switch r {
		case ' ', ',', '\t', '[', ']':
			return -1
		}
		return r
	}, s)
	if len(compact)%2 != 0 {
		return nil, fmt.Errorf("%w: %q is not a list of two-character cards", ErrInvalidCard, s)
	}

	cards := make([]Card, 0, len(compact)/2)
	for i := 0; i < len(compact); i += 2 {
		card, err := ParseCard(compact[i : i+2])
		if err != nil {
			return nil, err
		}
		cards = append(cards, card)
	}
	return cards, nil
}

// MustParseCards is ParseCards for literals known to be valid.
func MustParseCards(s string) []Card {
	cards, err := ParseCards(s)
	if err != nil {
		panic(err)
	}
	return cards
}

// FormatCards joins cards with single spaces.
func FormatCards(cards []Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}

// Compare orders cards by rank, then by suit.
func Compare(a, b Card) int {
	if ra, rb := a.Rank(), b.Rank(); ra != rb {
		if ra < rb {
			return -1
		}
		return 1
	}
	sa, sb := a.Suit(), b.Suit()
	switch {
	case sa < sb:
		return -1
	case sa > sb:
		return 1
	}
	return 0
}

// SortCards sorts cards in place in ascending card order.
func SortCards(cards []Card) {
	slices.SortFunc(cards, Compare)
}

// NewHand creates a hand from multiple cards
func NewHand(cards ...Card) Hand {
	var h Hand
	for _, c := range cards {
		h |= Hand(c)
	}
	return h
}

// AddCard adds a card to the hand
func (h *Hand) AddCard(c Card) {
	*h |= Hand(c)
}

// HasCard checks if the hand contains a specific card
func (h Hand) HasCard(c Card) bool {
	return (h & Hand(c)) != 0
}

// CountCards returns the number of cards in the hand
func (h Hand) CountCards() int {
	return bits.OnesCount64(uint64(h))
}

// GetSuitMask returns the cards of a specific suit as a rank bitmask
func (h Hand) GetSuitMask(suit uint8) uint16 {
	offset := suit * 13
	return uint16((h >> offset) & RankMask)
}

// GetRankMask returns a bitmask of which ranks are present.
// The ace is mirrored into bit 13 so A-2-3 windows can be found.
func (h Hand) GetRankMask() uint16 {
	mask := uint16(0)
	for suit := range uint8(NumSuits) {
		mask |= h.GetSuitMask(suit)
	}
	if mask&(1<<Ace) != 0 {
		mask |= 1 << 13
	}
	return mask
}

// RankCounts returns how many cards of each rank the hand holds.
func (h Hand) RankCounts() [NumRanks]int {
	var counts [NumRanks]int
	for suit := range uint8(NumSuits) {
		mask := h.GetSuitMask(suit)
		for mask != 0 {
			rank := bits.TrailingZeros16(mask)
			counts[rank]++
			mask &= mask - 1
		}
	}
	return counts
}

// Cards returns the cards of the hand in ascending card order.
func (h Hand) Cards() []Card {
	cards := make([]Card, 0, h.CountCards())
	for rank := range uint8(NumRanks) {
		for suit := range uint8(NumSuits) {
			if c := NewCard(rank, suit); h.HasCard(c) {
				cards = append(cards, c)
			}
		}
	}
	return cards
}

func (h Hand) String() string {
	return FormatCards(h.Cards())
}

var universe = sync.OnceValue(func() []Card {
	cards := make([]Card, 0, NumCards)
	for rank := range uint8(NumRanks) {
		for suit := range uint8(NumSuits) {
			cards = append(cards, NewCard(rank, suit))
		}
	}
	return cards
})

// Universe returns the 52 cards in ascending card order.
func Universe() []Card {
	return slices.Clone(universe())
}
