package phh

import (
	"fmt"

	"github.com/lox/pokertools/poker"
)

// Deal is a hand dealt up to the flop with no betting.
type Deal struct {
	ID         string
	Holes      [][]poker.Card
	Flop       []poker.Card
	SmallBlind int
	BigBlind   int
	Stack      int
	Metadata   map[string]any
}

// FromDeal builds the hand history of d. Every seat posts nothing beyond
// the blinds and no player acts, so the actions are deals only.
func FromDeal(d Deal) (*HandHistory, error) {
	n := len(d.Holes)
	if n == 0 {
		return nil, fmt.Errorf("phh: deal has no seats")
	}
	if err := poker.CheckCards(3, d.Flop...); err != nil {
		return nil, fmt.Errorf("phh: flop: %w", err)
	}

	hand := &HandHistory{
		Variant:           Variant,
		SeatCount:         n,
		Antes:             make([]int, n),
		BlindsOrStraddles: make([]int, n),
		MinBet:            d.BigBlind,
		StartingStacks:    make([]int, n),
		HandID:            d.ID,
		Metadata:          d.Metadata,
	}
	if n > 1 {
		hand.BlindsOrStraddles[0] = d.SmallBlind
		hand.BlindsOrStraddles[1] = d.BigBlind
	} else {
		hand.BlindsOrStraddles[0] = d.BigBlind
	}

	for seat, hole := range d.Holes {
		if err := poker.CheckCards(2, hole...); err != nil {
			return nil, fmt.Errorf("phh: seat %d: %w", seat+1, err)
		}
		hand.StartingStacks[seat] = d.Stack
		hand.Players = append(hand.Players, fmt.Sprintf("p%d", seat+1))
		hand.Actions = append(hand.Actions, DealHole(seat, hole))
	}
	all := append([]poker.Card(nil), d.Flop...)
	for _, hole := range d.Holes {
		all = append(all, hole...)
	}
	if err := poker.CheckCards(0, all...); err != nil {
		return nil, fmt.Errorf("phh: %w", err)
	}

	hand.Actions = append(hand.Actions, DealBoard(d.Flop))
	return hand, nil
}
