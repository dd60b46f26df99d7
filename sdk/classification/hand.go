// Package classification answers yes/no questions about holecards, flops
// and the five-card hand they make together: hand categories, flop texture,
// holecard shape, draws built from both holecards, and bluff candidacy.
//
// Everything works on bit-packed poker.Hand sets; rank windows treat the ace
// as both high and low.
package classification

import (
	"fmt"
	"math/bits"

	"github.com/lox/pokertools/poker"
)

// HandType enumerates the categories of five-card hands ordered from weakest
// to strongest.
type HandType uint8

const (
	HighCard HandType = iota
	Pair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
)

func (ht HandType) String() string {
	switch ht {
	case HighCard:
		return "High Card"
	case Pair:
		return "Pair"
	case TwoPair:
		return "Two Pair"
	case ThreeOfAKind:
		return "Three of a Kind"
	case Straight:
		return "Straight"
	case Flush:
		return "Flush"
	case FullHouse:
		return "Full House"
	case FourOfAKind:
		return "Four of a Kind"
	case StraightFlush:
		return "Straight Flush"
	default:
		return "Unknown"
	}
}

// Categorize returns the category of exactly five cards.
func Categorize(hand poker.Hand) (HandType, error) {
	if n := hand.CountCards(); n != 5 {
		return HighCard, fmt.Errorf("%w: a hand needs 5 cards, got %d", poker.ErrInvalidShape, n)
	}
	return categorize(hand), nil
}

// shape summarizes a hand by suit and rank multiplicity.
type shape struct {
	suits    int    // distinct suits
	rankMask uint16 // ranks present, no ace mirror
	quads    uint16
	trips    uint16
	pairs    uint16
}

func shapeOf(hand poker.Hand) shape {
	var s shape
	var masks [poker.NumSuits]uint16
	for suit := range uint8(poker.NumSuits) {
		masks[suit] = hand.GetSuitMask(suit)
		if masks[suit] != 0 {
			s.suits++
		}
		s.rankMask |= masks[suit]
	}

	s0, s1, s2, s3 := masks[0], masks[1], masks[2], masks[3]
	s.quads = s0 & s1 & s2 & s3
	tripCandidates := (s0 & s1 & s2) | (s0 & s1 & s3) | (s0 & s2 & s3) | (s1 & s2 & s3)
	s.trips = tripCandidates &^ s.quads
	s.pairs = ((s0 & s1) | (s0 & s2) | (s0 & s3) | (s1 & s2) | (s1 & s3) | (s2 & s3)) &^ tripCandidates
	return s
}

// distinctRanks reports whether no rank repeats.
func (s shape) distinctRanks() bool {
	return s.quads|s.trips|s.pairs == 0
}

// straight reports five distinct ranks in sequence, A-2-3-4-5 included.
func (s shape) straight() bool {
	const wheel = 0x100F // A + 2-3-4-5
	if !s.distinctRanks() || bits.OnesCount16(s.rankMask) != 5 {
		return false
	}
	if s.rankMask == wheel {
		return true
	}
	low := bits.TrailingZeros16(s.rankMask)
	return s.rankMask>>low == 0x1F
}

func categorize(hand poker.Hand) HandType {
	s := shapeOf(hand)
	flush := s.suits == 1
	straight := s.straight()
	pairs := bits.OnesCount16(s.pairs)

	switch {
	case flush && straight:
		return StraightFlush
	case s.quads != 0:
		return FourOfAKind
	case s.trips != 0 && pairs > 0:
		return FullHouse
	case flush:
		return Flush
	case straight:
		return Straight
	case s.trips != 0:
		return ThreeOfAKind
	case pairs >= 2:
		return TwoPair
	case pairs == 1:
		return Pair
	default:
		return HighCard
	}
}

// IsStraightFlush is true for five suited cards in sequence.
func IsStraightFlush(hand poker.Hand) bool {
	return IsFlush(hand) && IsStraight(hand)
}

func IsFourOfAKind(hand poker.Hand) bool {
	return hand.CountCards() == 5 && shapeOf(hand).quads != 0
}

func IsFullHouse(hand poker.Hand) bool {
	s := shapeOf(hand)
	return hand.CountCards() == 5 && s.trips != 0 && s.pairs != 0
}

// IsFlush is true for five cards of one suit, straight flushes included.
func IsFlush(hand poker.Hand) bool {
	return hand.CountCards() == 5 && shapeOf(hand).suits == 1
}

// IsStraight is true for five ranks in sequence, straight flushes included.
func IsStraight(hand poker.Hand) bool {
	return hand.CountCards() == 5 && shapeOf(hand).straight()
}

func IsThreeOfAKind(hand poker.Hand) bool {
	s := shapeOf(hand)
	return hand.CountCards() == 5 && s.trips != 0 && s.pairs == 0
}

func IsTwoPair(hand poker.Hand) bool {
	return hand.CountCards() == 5 && bits.OnesCount16(shapeOf(hand).pairs) == 2
}

// IsOnePairHand is true when exactly one rank is paired and nothing else
// repeats.
func IsOnePairHand(hand poker.Hand) bool {
	s := shapeOf(hand)
	return hand.CountCards() == 5 && s.trips|s.quads == 0 && bits.OnesCount16(s.pairs) == 1
}

// IsNoPair is the complement of IsPairOrBetter: no repeated rank, no
// straight, no flush.
func IsNoPair(hand poker.Hand) bool {
	if hand.CountCards() != 5 {
		return false
	}
	s := shapeOf(hand)
	return s.distinctRanks() && !s.straight() && s.suits != 1
}

func IsPairOrBetter(hand poker.Hand) bool {
	return hand.CountCards() == 5 && !IsNoPair(hand)
}

func IsTwoPairOrBetter(hand poker.Hand) bool {
	return hand.CountCards() == 5 && categorize(hand) >= TwoPair
}
