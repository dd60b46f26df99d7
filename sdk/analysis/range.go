// Package analysis expands PokerStove-style range notation into explicit
// holecard combinations and moves ranges between suit spaces.
package analysis

import (
	"fmt"
	"slices"
	"strings"

	"github.com/lox/pokertools/isomorph"
	"github.com/lox/pokertools/poker"
)

// Range represents a collection of poker hands with associated weights.
// Combos keep the order in which the notation produced them; a combo named
// twice is kept once, at its first position.
type Range struct {
	// Map from the two hole cards combined as a single Hand to weight (0-1)
	hands  map[poker.Hand]float64
	combos []poker.HoleCards
}

// NewRange creates a new empty range.
func NewRange() *Range {
	return &Range{
		hands: make(map[poker.Hand]float64),
	}
}

// ParseRange creates a range from standard poker notation.
// Examples: "AA,KK", "AKs,AKo", "TT+", "A5s-A2s", "Q2s+", "99-55", "8d7d"
func ParseRange(notation string) (*Range, error) {
	r := NewRange()

	for part := range strings.SplitSeq(notation, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		if err := r.addRangePart(part); err != nil {
			return nil, fmt.Errorf("invalid range part %q: %w", part, err)
		}
	}

	return r, nil
}

// Translate expands notation into holecard names such as "Ac Kc".
func Translate(notation string) ([]string, error) {
	r, err := ParseRange(notation)
	if err != nil {
		return nil, err
	}
	names := make([]string, len(r.combos))
	for i, h := range r.combos {
		names[i] = h.String()
	}
	return names, nil
}

// addRangePart adds a single range notation part to the range.
func (r *Range) addRangePart(part string) error {
	switch {
	case strings.HasSuffix(part, "+"):
		return r.addPlusRange(strings.TrimSuffix(part, "+"))
	case strings.Contains(part, "-"):
		return r.addDashRange(part)
	case len(part) == 4:
		return r.addExplicitCombo(part)
	}
	return r.addSingleHand(part, 1.0)
}

// handNotation is a parsed "AKs"-style name.
type handNotation struct {
	high, low int // 2-14
	suited    bool
	offsuit   bool
}

func parseHandNotation(notation string) (handNotation, error) {
	if len(notation) < 2 || len(notation) > 3 {
		return handNotation{}, fmt.Errorf("invalid notation length: %s", notation)
	}

	rank1 := parseRank(notation[0])
	rank2 := parseRank(notation[1])
	if rank1 == 0 || rank2 == 0 {
		return handNotation{}, fmt.Errorf("invalid rank in: %s", notation)
	}

	h := handNotation{high: max(rank1, rank2), low: min(rank1, rank2)}
	if len(notation) == 2 {
		h.suited, h.offsuit = true, true
		return h, nil
	}

	if rank1 == rank2 {
		return handNotation{}, fmt.Errorf("pocket pairs cannot have suited/offsuit modifier: %s", notation)
	}
	switch notation[2] {
	case 's':
		h.suited = true
	case 'o':
		h.offsuit = true
	default:
		return handNotation{}, fmt.Errorf("invalid modifier: %c", notation[2])
	}
	return h, nil
}

func (h handNotation) pair() bool {
	return h.high == h.low
}

// add adds every combo the notation names with ranks high and low.
func (r *Range) add(h handNotation, high, low int, weight float64) {
	if high == low {
		r.addPocketPair(high, weight)
		return
	}
	if h.suited {
		r.addSuitedCombos(high, low, weight)
	}
	if h.offsuit {
		r.addOffsuitCombos(high, low, weight)
	}
}

// addSingleHand adds all combinations of a single hand notation.
func (r *Range) addSingleHand(notation string, weight float64) error {
	h, err := parseHandNotation(notation)
	if err != nil {
		return err
	}
	r.add(h, h.high, h.low, weight)
	return nil
}

// addExplicitCombo adds one named combo such as "8d7d".
func (r *Range) addExplicitCombo(notation string) error {
	cards, err := poker.ParseCards(notation)
	if err != nil {
		return err
	}
	hole, err := poker.NewHoleCards(cards[0], cards[1])
	if err != nil {
		return err
	}
	r.addCombo(hole, 1.0)
	return nil
}

// addPlusRange handles notations like "TT+" (TT and every higher pair) and
// "Q2s+" (Q2s up to QJs). base is the notation without its "+".
func (r *Range) addPlusRange(base string) error {
	h, err := parseHandNotation(base)
	if err != nil {
		return err
	}

	if h.pair() {
		for rank := 14; rank >= h.high; rank-- {
			r.addPocketPair(rank, 1.0)
		}
		return nil
	}

	// The kicker climbs to one below the top card.
	for rank := h.high - 1; rank >= h.low; rank-- {
		r.add(h, h.high, rank, 1.0)
	}
	return nil
}

// addDashRange handles notations like "99-55" or "A5s-A2s", in either direction.
func (r *Range) addDashRange(notation string) error {
	start, end, ok := strings.Cut(notation, "-")
	if !ok || strings.Contains(end, "-") {
		return fmt.Errorf("invalid dash range format")
	}

	from, err := parseHandNotation(strings.TrimSpace(start))
	if err != nil {
		return err
	}
	to, err := parseHandNotation(strings.TrimSpace(end))
	if err != nil {
		return err
	}

	if from.pair() && to.pair() {
		for rank := max(from.high, to.high); rank >= min(from.high, to.high); rank-- {
			r.addPocketPair(rank, 1.0)
		}
		return nil
	}

	if from.pair() || to.pair() || from.high != to.high ||
		from.suited != to.suited || from.offsuit != to.offsuit {
		return fmt.Errorf("unsupported range format: %s", notation)
	}

	// Same high card, different kickers
	for rank := max(from.low, to.low); rank >= min(from.low, to.low); rank-- {
		r.add(from, from.high, rank, 1.0)
	}
	return nil
}

// addCombo records a combo once, keeping its first position.
func (r *Range) addCombo(hole poker.HoleCards, weight float64) {
	hand := hole.Hand()
	if _, ok := r.hands[hand]; ok {
		return
	}
	r.hands[hand] = weight
	r.combos = append(r.combos, hole)
}

func (r *Range) addCards(c1, c2 poker.Card, weight float64) {
	hole, err := poker.NewHoleCards(c1, c2)
	if err != nil {
		return
	}
	r.addCombo(hole, weight)
}

// addPocketPair adds all 6 combinations of a pocket pair
func (r *Range) addPocketPair(rank int, weight float64) {
	pRank := uint8(rank - 2)
	for suit1 := range uint8(4) {
		for suit2 := suit1 + 1; suit2 < 4; suit2++ {
			r.addCards(poker.NewCard(pRank, suit1), poker.NewCard(pRank, suit2), weight)
		}
	}
}

// addSuitedCombos adds all 4 suited combinations
func (r *Range) addSuitedCombos(rank1, rank2 int, weight float64) {
	pRank1 := uint8(rank1 - 2)
	pRank2 := uint8(rank2 - 2)
	for suit := range uint8(4) {
		r.addCards(poker.NewCard(pRank1, suit), poker.NewCard(pRank2, suit), weight)
	}
}

// addOffsuitCombos adds all 12 offsuit combinations
func (r *Range) addOffsuitCombos(rank1, rank2 int, weight float64) {
	pRank1 := uint8(rank1 - 2)
	pRank2 := uint8(rank2 - 2)
	for suit1 := range uint8(4) {
		for suit2 := range uint8(4) {
			if suit1 != suit2 {
				r.addCards(poker.NewCard(pRank1, suit1), poker.NewCard(pRank2, suit2), weight)
			}
		}
	}
}

// Combos returns the range's holecards in notation order.
func (r *Range) Combos() []poker.HoleCards {
	return slices.Clone(r.combos)
}

// TranslateSuits returns a copy of the range with every combo moved
// through m, for example into a flop's canonical suit space.
func (r *Range) TranslateSuits(m isomorph.SuitMap) (*Range, error) {
	out := NewRange()
	for _, hole := range r.combos {
		moved, err := isomorph.TranslateHoleCards(m, hole)
		if err != nil {
			return nil, err
		}
		out.addCombo(moved, r.hands[hole.Hand()])
	}
	return out, nil
}

// Contains checks if a specific hand is in the range using string cards
func (r *Range) Contains(card1, card2 string) bool {
	c1, err1 := poker.ParseCard(card1)
	c2, err2 := poker.ParseCard(card2)
	if err1 != nil || err2 != nil {
		return false
	}
	return r.ContainsCards(c1, c2)
}

// ContainsHand checks if a hand (as poker.Hand) is in the range
func (r *Range) ContainsHand(hand poker.Hand) bool {
	_, ok := r.hands[hand]
	return ok
}

// ContainsCards checks if hole cards are in the range
func (r *Range) ContainsCards(c1, c2 poker.Card) bool {
	return r.ContainsHand(poker.NewHand(c1, c2))
}

// Size returns the number of hand combinations in the range
func (r *Range) Size() int {
	return len(r.combos)
}

// Hands returns all hands in the range sorted by bit value
func (r *Range) Hands() []poker.Hand {
	hands := make([]poker.Hand, 0, len(r.hands))
	for hand := range r.hands {
		hands = append(hands, hand)
	}
	slices.Sort(hands)
	return hands
}

// Weight returns the weight of a specific hand in the range
func (r *Range) Weight(hand poker.Hand) float64 {
	return r.hands[hand]
}

// parseRank converts an upper-case rank character to 2-14, or 0.
func parseRank(c byte) int {
	if c >= 'a' && c <= 'z' {
		return 0
	}
	rank, ok := poker.ParseRank(c)
	if !ok {
		return 0
	}
	return int(rank) + 2
}
