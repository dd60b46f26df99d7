// Package isomorph computes canonical representatives of three-card flops
// under suit relabeling and card reordering, enumerates suit-isomorphic
// flops, and translates related cards into canonical space.
//
// Two flops are isomorphic when a permutation of the four suits maps one
// onto the other. Of the 22,100 raw flops exactly 1,755 are canonical.
package isomorph

// SuitPattern classifies the suits of three cards by which positions share
// a suit. A, B and C name the distinct suits in order of first appearance.
type SuitPattern uint8

const (
	PatternAAA SuitPattern = iota // monotone
	PatternAAB                    // first two share a suit
	PatternABA                    // outer two share a suit
	PatternABB                    // last two share a suit
	PatternABC                    // rainbow
)

// patternLabels maps each position to its distinct-suit slot (A=0, B=1, C=2).
var patternLabels = [...][3]uint8{
	PatternAAA: {0, 0, 0},
	PatternAAB: {0, 0, 1},
	PatternABA: {0, 1, 0},
	PatternABB: {0, 1, 1},
	PatternABC: {0, 1, 2},
}

// PatternOf classifies three suits in the order given.
func PatternOf(s1, s2, s3 uint8) SuitPattern {
	switch {
	case s1 == s2 && s2 == s3:
		return PatternAAA
	case s1 == s2:
		return PatternAAB
	case s1 == s3:
		return PatternABA
	case s2 == s3:
		return PatternABB
	default:
		return PatternABC
	}
}

func (p SuitPattern) String() string {
	switch p {
	case PatternAAA:
		return "AAA"
	case PatternAAB:
		return "AAB"
	case PatternABA:
		return "ABA"
	case PatternABB:
		return "ABB"
	case PatternABC:
		return "ABC"
	default:
		return "unknown"
	}
}

// Distinct returns how many different suits the pattern uses.
func (p SuitPattern) Distinct() int {
	switch p {
	case PatternAAA:
		return 1
	case PatternABC:
		return 3
	default:
		return 2
	}
}

// Size returns the number of flops in a suit-isomorphism class with this
// pattern: the injective assignments of its distinct suits to four suits.
func (p SuitPattern) Size() int {
	n := 1
	for i := range p.Distinct() {
		n *= 4 - i
	}
	return n
}

// Patterns lists every pattern in declaration order.
func Patterns() []SuitPattern {
	return []SuitPattern{PatternAAA, PatternAAB, PatternABA, PatternABB, PatternABC}
}
