package isomorph

import (
	"slices"
	"sync"

	"github.com/lox/pokertools/poker"
)

// Class is one canonical flop and the number of raw flops that map to it.
type Class struct {
	Flop   Flop
	Weight int
}

// Pattern returns the suit pattern of the canonical flop.
func (c Class) Pattern() SuitPattern {
	return c.Flop.Pattern()
}

// canonicalClasses canonicalizes all C(52,3) flops once.
var canonicalClasses = sync.OnceValue(func() []Class {
	deck := poker.Universe()
	weights := make(map[Flop]int, 1755)
	for i := 0; i < len(deck); i++ {
		for j := i + 1; j < len(deck); j++ {
			for k := j + 1; k < len(deck); k++ {
				weights[Canonical(Flop{deck[i], deck[j], deck[k]})]++
			}
		}
	}

	classes := make([]Class, 0, len(weights))
	for f, w := range weights {
		classes = append(classes, Class{Flop: f, Weight: w})
	}
	slices.SortFunc(classes, func(a, b Class) int {
		return compareFlops(a.Flop, b.Flop)
	})
	return classes
})

// AllCanonicalFlops returns the 1,755 canonical flops sorted by card order.
// The set is computed once per process; each call returns a fresh slice.
func AllCanonicalFlops() []Flop {
	classes := canonicalClasses()
	flops := make([]Flop, len(classes))
	for i, c := range classes {
		flops[i] = c.Flop
	}
	return flops
}

// CanonicalClasses returns every canonical flop with its weight, in the
// same order as AllCanonicalFlops. Weights sum to 22,100.
func CanonicalClasses() []Class {
	return slices.Clone(canonicalClasses())
}
