package poker

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidShape is returned when an operation receives the wrong number of cards.
	ErrInvalidShape = errors.New("invalid number of cards")
	// ErrDuplicateCard is returned when the same card appears twice.
	ErrDuplicateCard = errors.New("duplicate card")
	// ErrInvalidCard is returned for unparseable text or a value outside the 52 cards.
	ErrInvalidCard = errors.New("invalid card")
	// ErrInvalidSuit is returned when a card carries no usable suit.
	ErrInvalidSuit = errors.New("invalid suit")
)

// CheckCards verifies that cards are valid and pairwise distinct. When want
// is positive the count must match it exactly.
func CheckCards(want int, cards ...Card) error {
	if want > 0 && len(cards) != want {
		return fmt.Errorf("%w: want %d, got %d", ErrInvalidShape, want, len(cards))
	}

	var seen Hand
	for _, c := range cards {
		if !c.Valid() {
			return fmt.Errorf("%w: %#x", ErrInvalidCard, uint64(c))
		}
		if seen.HasCard(c) {
			return fmt.Errorf("%w: %s", ErrDuplicateCard, c)
		}
		seen.AddCard(c)
	}
	return nil
}
