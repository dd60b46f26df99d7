package isomorph

import (
	"github.com/lox/pokertools/poker"
)

// preferredSuits are handed out to distinct suits in order of appearance.
var preferredSuits = [3]uint8{poker.Clubs, poker.Diamonds, poker.Hearts}

// canonicalLabels returns the preferred-suit slot for each position of a
// sorted flop.
//
// An ABB flop whose first two cards share a rank is the one case where the
// plain pattern labels miss the minimum: the lone suit goes to the pair's
// second card as diamonds, so the flush pair can take clubs. Relabeling the
// first two positions {1, 0} gives the same card set as {0, 1, 0} after
// sorting but stays a consistent suit-to-suit relabeling.
func canonicalLabels(sorted Flop) [3]uint8 {
	p := sorted.Pattern()
	if p == PatternABB && sorted[0].Rank() == sorted[1].Rank() {
		return [3]uint8{1, 0, 0}
	}
	return patternLabels[p]
}

// relabel rewrites a sorted flop with preferred suits. The result may be
// out of card order.
func relabel(sorted Flop) Flop {
	labels := canonicalLabels(sorted)
	var out Flop
	for i, c := range sorted {
		out[i] = poker.NewCard(c.Rank(), preferredSuits[labels[i]])
	}
	return out
}

// Canonical returns the canonical representative of f's isomorphism class.
// The result is sorted, is its own canonical form, and is the same for any
// ordering or suit relabeling of f. f must be a valid flop.
func Canonical(f Flop) Flop {
	return relabel(f.Sorted()).Sorted()
}

// Canonicalize validates cards as a flop and returns its canonical form.
func Canonicalize(cards ...poker.Card) (Flop, error) {
	f, err := FlopFromCards(cards)
	if err != nil {
		return Flop{}, err
	}
	return Canonical(f), nil
}

// IsCanonical reports whether f, in the order given, is a canonical flop.
func IsCanonical(f Flop) bool {
	return f == Canonical(f)
}

// SuitIsomorphs returns every flop reachable from f by a suit permutation,
// keeping f's card order as the template. The result holds 4, 12 or 24
// distinct flops depending on the pattern, f itself included.
func SuitIsomorphs(f Flop) []Flop {
	p := f.Pattern()
	labels := patternLabels[p]
	distinct := p.Distinct()

	out := make([]Flop, 0, p.Size())
	var assign [3]uint8
	var used [poker.NumSuits]bool

	var walk func(depth int)
	walk = func(depth int) {
		if depth == distinct {
			var g Flop
			for i, c := range f {
				g[i] = poker.NewCard(c.Rank(), assign[labels[i]])
			}
			out = append(out, g)
			return
		}
		for suit := range uint8(poker.NumSuits) {
			if used[suit] {
				continue
			}
			used[suit] = true
			assign[depth] = suit
			walk(depth + 1)
			used[suit] = false
		}
	}
	walk(0)

	return out
}

// Isomorphs validates cards as a flop and returns its suit isomorphs.
func Isomorphs(cards ...poker.Card) ([]Flop, error) {
	f, err := FlopFromCards(cards)
	if err != nil {
		return nil, err
	}
	return SuitIsomorphs(f), nil
}
