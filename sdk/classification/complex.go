package classification

import (
	"errors"
	"fmt"

	"github.com/lox/pokertools/isomorph"
	"github.com/lox/pokertools/poker"
)

// ErrRequiredHolecards is returned when a holecard requirement is not 0, 1 or 2.
var ErrRequiredHolecards = errors.New("required holecards must be 0, 1 or 2")

// fiveCards checks that holecards and flop are five distinct cards and
// returns them as one set.
func fiveCards(hole poker.HoleCards, flop isomorph.Flop) (poker.Hand, error) {
	cards := append(hole.Cards(), flop[:]...)
	if err := poker.CheckCards(5, cards...); err != nil {
		return 0, err
	}
	return poker.NewHand(cards...), nil
}

func checkRequired(required int) error {
	if required < 0 || required > 2 {
		return fmt.Errorf("%w: got %d", ErrRequiredHolecards, required)
	}
	return nil
}

// IsOnePair reports whether the five cards make exactly one pair. With
// excludeBoard set, a pair sitting on the flop alone does not count.
func IsOnePair(hole poker.HoleCards, flop isomorph.Flop, excludeBoard bool) (bool, error) {
	hand, err := fiveCards(hole, flop)
	if err != nil {
		return false, err
	}
	if excludeBoard && HasPair(flop) {
		return false, nil
	}
	return IsOnePairHand(hand), nil
}

// valueMask sets bit v for every card value 2-14 present, plus bit 1 for an ace.
func valueMask(hand poker.Hand) uint16 {
	ranks := hand.GetRankMask() & poker.RankMask
	mask := ranks << 2
	if ranks&(1<<poker.Ace) != 0 {
		mask |= 1 << 1
	}
	return mask
}

// inWindow reports whether a card value sits in the three-rank window
// starting at low; an ace is also worth 1.
func inWindow(value, low int) bool {
	if value == 14 && low == 1 {
		return true
	}
	return value >= low && value <= low+2
}

// IsThreeStraight reports three consecutive ranks among the five cards, at
// least required of which are holecards. The ace plays high or low.
func IsThreeStraight(hole poker.HoleCards, flop isomorph.Flop, required int) (bool, error) {
	if err := checkRequired(required); err != nil {
		return false, err
	}
	hand, err := fiveCards(hole, flop)
	if err != nil {
		return false, err
	}

	mask := valueMask(hand)
	v1, v2 := hole[0].Value(), hole[1].Value()
	for low := 1; low <= 12; low++ {
		window := uint16(0b111) << low
		if mask&window != window {
			continue
		}
		in1, in2 := inWindow(v1, low), inWindow(v2, low)
		switch required {
		case 2:
			if in1 && in2 {
				return true, nil
			}
		case 1:
			if in1 || in2 {
				return true, nil
			}
		default:
			return true, nil
		}
	}
	return false, nil
}

// IsThreeFlush reports a suit holding exactly three of the five cards, at
// least required of which are holecards.
func IsThreeFlush(hole poker.HoleCards, flop isomorph.Flop, required int) (bool, error) {
	if err := checkRequired(required); err != nil {
		return false, err
	}
	hand, err := fiveCards(hole, flop)
	if err != nil {
		return false, err
	}

	s1, s2 := hole[0].Suit(), hole[1].Suit()
	for suit := range uint8(poker.NumSuits) {
		if poker.Hand(hand.GetSuitMask(suit)).CountCards() != 3 {
			continue
		}
		switch required {
		case 2:
			if s1 == suit && s2 == suit {
				return true, nil
			}
		case 1:
			if s1 == suit || s2 == suit {
				return true, nil
			}
		default:
			return true, nil
		}
	}
	return false, nil
}

// HasTwoOvercards reports whether both holecards outrank every flop card.
func HasTwoOvercards(hole poker.HoleCards, flop isomorph.Flop) (bool, error) {
	if _, err := fiveCards(hole, flop); err != nil {
		return false, err
	}
	top := max(flop[0].Rank(), flop[1].Rank(), flop[2].Rank())
	return hole[0].Rank() > top && hole[1].Rank() > top, nil
}
