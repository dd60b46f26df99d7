package poker

import (
	rand "math/rand/v2"
)

const goldenRatio64 = 0x9e3779b97f4a7c15

// NewRand returns a *rand.Rand seeded deterministically from seed, so a
// deal can be replayed from the seed alone.
func NewRand(seed int64) *rand.Rand {
	u := uint64(seed)
	return rand.New(rand.NewPCG(mix(u), mix(u+goldenRatio64)))
}

func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}

// Deck represents a standard 52-card deck
type Deck struct {
	cards [NumCards]Card
	next  int
	rng   *rand.Rand // nil falls back to the global source
}

// NewDeck creates a new shuffled deck with explicit RNG
func NewDeck(rng *rand.Rand) *Deck {
	d := &Deck{rng: rng}
	copy(d.cards[:], universe())
	d.Shuffle()
	return d
}

// NewSeededDeck creates a deck whose order depends only on seed.
func NewSeededDeck(seed int64) *Deck {
	return NewDeck(NewRand(seed))
}

// Shuffle shuffles the deck using Fisher-Yates
func (d *Deck) Shuffle() {
	d.next = 0
	for i := len(d.cards) - 1; i > 0; i-- {
		var j int
		if d.rng != nil {
			j = d.rng.IntN(i + 1)
		} else {
			j = rand.IntN(i + 1)
		}
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
}

// Deal deals n cards from the deck, or nil when too few remain.
func (d *Deck) Deal(n int) []Card {
	if n < 0 || d.next+n > len(d.cards) {
		return nil
	}
	cards := make([]Card, n)
	copy(cards, d.cards[d.next:d.next+n])
	d.next += n
	return cards
}

// DealOne deals a single card from the deck, or 0 when empty.
func (d *Deck) DealOne() Card {
	if d.next >= len(d.cards) {
		return 0
	}
	card := d.cards[d.next]
	d.next++
	return card
}

// Reset resets and reshuffles the deck
func (d *Deck) Reset() {
	d.Shuffle()
}

// CardsRemaining returns the number of cards left in the deck
func (d *Deck) CardsRemaining() int {
	return len(d.cards) - d.next
}
