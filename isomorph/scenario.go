package isomorph

import (
	"fmt"

	"github.com/lox/pokertools/poker"
)

// Scenario is a flop together with the cards that travel with it: a
// player's holecards and any turn or river cards.
type Scenario struct {
	Flop  Flop
	Hole  []poker.Card
	Board []poker.Card
}

// Validate checks that every card in the scenario is valid and that no card
// appears twice. At most two cards may follow the flop.
func (s Scenario) Validate() error {
	if len(s.Board) > 2 {
		return fmt.Errorf("scenario: %w: at most 2 cards after the flop, got %d", poker.ErrInvalidShape, len(s.Board))
	}
	all := make([]poker.Card, 0, 3+len(s.Hole)+len(s.Board))
	all = append(all, s.Flop[:]...)
	all = append(all, s.Hole...)
	all = append(all, s.Board...)
	if err := poker.CheckCards(0, all...); err != nil {
		return fmt.Errorf("scenario: %w", err)
	}
	return nil
}

// Canonical moves the whole scenario into the canonical space of its flop.
// The flop comes back canonical and sorted; holecards and board cards keep
// their order. The map used is returned alongside.
func (s Scenario) Canonical() (Scenario, SuitMap, error) {
	if err := s.Validate(); err != nil {
		return Scenario{}, SuitMap{}, err
	}

	m := TranslationMap(s.Flop)
	hole, err := TranslateCards(m, s.Hole)
	if err != nil {
		return Scenario{}, SuitMap{}, err
	}
	board, err := TranslateCards(m, s.Board)
	if err != nil {
		return Scenario{}, SuitMap{}, err
	}

	return Scenario{
		Flop:  Canonical(s.Flop),
		Hole:  hole,
		Board: board,
	}, m, nil
}
