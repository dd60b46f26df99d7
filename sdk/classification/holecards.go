package classification

import (
	"github.com/lox/pokertools/poker"
)

// IsPair is true for a pocket pair.
func IsPair(h poker.HoleCards) bool {
	return h.Paired()
}

// IsSuited is true when both holecards share a suit.
func IsSuited(h poker.HoleCards) bool {
	return h.Suited()
}

// IsConnected is true for adjacent ranks, e.g. 98 or A2.
func IsConnected(h poker.HoleCards) bool {
	return gapSize(h) == 1
}

// HasOneGap is true for ranks two apart, e.g. 97 or A3.
func HasOneGap(h poker.HoleCards) bool {
	return gapSize(h) == 2
}

// HasTwoGap is true for ranks three apart, e.g. 96 or A4.
func HasTwoGap(h poker.HoleCards) bool {
	return gapSize(h) == 3
}

// gapSize is the rank distance between the holecards. An ace may play high
// or low, whichever is closer.
func gapSize(h poker.HoleCards) int {
	a, b := h[0].Value(), h[1].Value()
	if a < b {
		a, b = b, a
	}
	if a == 14 {
		return min(a-b, b-1)
	}
	return a - b
}
