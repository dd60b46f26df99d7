package classification

import (
	"fmt"
	"strings"

	"github.com/lox/pokertools/isomorph"
	"github.com/lox/pokertools/poker"
)

// BoardPairPolicy decides whether a pair made only by flop cards stops a
// hand from being a bluff candidate.
type BoardPairPolicy uint8

const (
	// BoardPairsIgnore treats board-only pairs and trips as shared, so they
	// do not disqualify. Only pairs using a holecard, straights and flushes do.
	BoardPairsIgnore BoardPairPolicy = iota
	// BoardPairsCount disqualifies any pair or better among the five cards.
	BoardPairsCount
)

func (p BoardPairPolicy) String() string {
	switch p {
	case BoardPairsIgnore:
		return "ignore"
	case BoardPairsCount:
		return "count"
	default:
		return "unknown"
	}
}

// ParseBoardPairPolicy accepts "ignore" or "count".
func ParseBoardPairPolicy(s string) (BoardPairPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "ignore", "":
		return BoardPairsIgnore, nil
	case "count":
		return BoardPairsCount, nil
	default:
		return 0, fmt.Errorf("unknown board pair policy %q (want ignore or count)", s)
	}
}

// BluffOptions tunes the bluff-candidate heuristic.
type BluffOptions struct {
	BoardPairs BoardPairPolicy
	// Required is how many holecards the three-flush and three-straight
	// must each use.
	Required int
}

// DefaultBluffOptions requires both holecards and ignores board-only pairs.
func DefaultBluffOptions() BluffOptions {
	return BluffOptions{BoardPairs: BoardPairsIgnore, Required: 2}
}

// IsBluffCandidate reports whether the holecards make no hand on this flop
// yet hold three-to-a-flush and three-to-a-straight.
func IsBluffCandidate(hole poker.HoleCards, flop isomorph.Flop, opts BluffOptions) (bool, error) {
	hand, err := fiveCards(hole, flop)
	if err != nil {
		return false, err
	}
	if err := checkRequired(opts.Required); err != nil {
		return false, err
	}
	if madeHand(hole, hand, opts.BoardPairs) {
		return false, nil
	}

	flush, err := IsThreeFlush(hole, flop, opts.Required)
	if err != nil || !flush {
		return false, err
	}
	return IsThreeStraight(hole, flop, opts.Required)
}

// madeHand reports whether the five cards already hold something worth
// showing down under the given policy.
func madeHand(hole poker.HoleCards, hand poker.Hand, policy BoardPairPolicy) bool {
	if policy == BoardPairsCount {
		return IsPairOrBetter(hand)
	}
	s := shapeOf(hand)
	if s.straight() || s.suits == 1 {
		return true
	}
	counts := hand.RankCounts()
	return counts[hole[0].Rank()] >= 2 || counts[hole[1].Rank()] >= 2
}

// BluffCandidates returns every starting hand that is a bluff candidate on
// the flop, skipping hands that share a card with it. Hands come back in
// poker.AllHoleCards order.
func BluffCandidates(flop isomorph.Flop, opts BluffOptions) ([]poker.HoleCards, error) {
	if err := flop.Validate(); err != nil {
		return nil, err
	}
	if err := checkRequired(opts.Required); err != nil {
		return nil, err
	}

	board := flop.Hand()
	var out []poker.HoleCards
	for _, hole := range poker.AllHoleCards() {
		if hole.Hand()&board != 0 {
			continue
		}
		ok, err := IsBluffCandidate(hole, flop, opts)
		if err != nil {
			return nil, err
		}
		if ok {
			out = append(out, hole)
		}
	}
	return out, nil
}
