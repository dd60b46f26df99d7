package classification

import (
	"math/bits"

	"github.com/lox/pokertools/isomorph"
	"github.com/lox/pokertools/poker"
)

// Flop texture predicates. Each looks only at the three flop cards.

func suitCount(h poker.Hand) int {
	n := 0
	for suit := range uint8(poker.NumSuits) {
		if h.GetSuitMask(suit) != 0 {
			n++
		}
	}
	return n
}

// IsRainbow is true when all three suits differ.
func IsRainbow(f isomorph.Flop) bool {
	return suitCount(f.Hand()) == 3
}

// IsMonotone is true when all three cards share a suit.
func IsMonotone(f isomorph.Flop) bool {
	return suitCount(f.Hand()) == 1
}

// HasTwoFlush is true when exactly two cards share a suit.
func HasTwoFlush(f isomorph.Flop) bool {
	return suitCount(f.Hand()) == 2
}

// HasPair is true for a paired flop; trips do not count.
func HasPair(f isomorph.Flop) bool {
	s := shapeOf(f.Hand())
	return s.pairs != 0 && s.trips == 0
}

func HasThreeOfAKind(f isomorph.Flop) bool {
	return shapeOf(f.Hand()).trips != 0
}

// flopSpan returns the distinct rank mask and whether the three ranks differ.
func flopSpan(f isomorph.Flop) (uint16, bool) {
	s := shapeOf(f.Hand())
	return s.rankMask, bits.OnesCount16(s.rankMask) == 3
}

// spread is the distance between the lowest and highest rank in mask.
func spread(mask uint16) int {
	return bits.Len16(mask) - 1 - bits.TrailingZeros16(mask)
}

// aceLow moves an ace from rank twelve to just below the deuce.
func aceLow(mask uint16) uint16 {
	if mask&(1<<poker.Ace) == 0 {
		return mask
	}
	return (mask&^(1<<poker.Ace))<<1 | 1
}

// HasThreeStraight is true for three consecutive ranks; A-2-3 counts.
func HasThreeStraight(f isomorph.Flop) bool {
	mask, distinct := flopSpan(f)
	if !distinct {
		return false
	}
	return spread(mask) == 2 || spread(aceLow(mask)) == 2
}

// HasGutshot is true for three distinct ranks spanning four, so one missing
// rank would complete four in a row. A-2-4 and A-3-4 count.
func HasGutshot(f isomorph.Flop) bool {
	mask, distinct := flopSpan(f)
	if !distinct {
		return false
	}
	return spread(mask) == 3 || spread(aceLow(mask)) == 3
}
