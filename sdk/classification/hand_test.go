package classification

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/pokertools/isomorph"
	"github.com/lox/pokertools/poker"
)

// parseHand builds a card set from a card list for tests.
func parseHand(s string) poker.Hand {
	return poker.NewHand(poker.MustParseCards(s)...)
}

func TestCategorize(t *testing.T) {
	t.Parallel()
	tests := []struct {
		hand string
		want HandType
	}{
		{"7s 6s Ts 9s 8s", StraightFlush},
		{"3s Js Jc Jd Jh", FourOfAKind},
		{"7h Ks 7d 7c Kd", FullHouse},
		{"2h 9h Jh Qh Kh", Flush},
		{"Ac 2d 3h 4s 5c", Straight},
		{"Tc Jd Qh Ks Ac", Straight},
		{"3s Js Jc Jd 2d", ThreeOfAKind},
		{"6s 7s 6c 2d 7d", TwoPair},
		{"2s 2h Ac Ks Qh", Pair},
		{"As 7s 6c 2d Qd", HighCard},
		{"Qc Kd Ah 2s 3c", HighCard},
	}

	for _, tc := range tests {
		t.Run(tc.hand, func(t *testing.T) {
			t.Parallel()
			got, err := Categorize(parseHand(tc.hand))
			require.NoError(t, err)
			assert.Equal(t, tc.want, got, "got %s", got)
		})
	}
}

func TestCategorizeWrongSize(t *testing.T) {
	t.Parallel()
	_, err := Categorize(parseHand("As Ks Qs Js"))
	assert.ErrorIs(t, err, poker.ErrInvalidShape)
}

func TestHandPredicates(t *testing.T) {
	t.Parallel()
	sf := parseHand("7s 6s Ts 9s 8s")
	assert.True(t, IsStraightFlush(sf))
	assert.True(t, IsFlush(sf))
	assert.True(t, IsStraight(sf))
	assert.True(t, IsPairOrBetter(sf))
	assert.True(t, IsTwoPairOrBetter(sf))

	assert.True(t, IsFourOfAKind(parseHand("3s Js Jc Jd Jh")))
	assert.True(t, IsFullHouse(parseHand("7h Ks 7d 7c Kd")))
	assert.True(t, IsThreeOfAKind(parseHand("3s Js Jc Jd 2d")))
	assert.False(t, IsThreeOfAKind(parseHand("7h Ks 7d 7c Kd")))
	assert.True(t, IsTwoPair(parseHand("6s 7s 6c 2d 7d")))
	assert.True(t, IsOnePairHand(parseHand("2s 2h Ac Ks Qh")))
	assert.False(t, IsOnePairHand(parseHand("6s 7s 6c 2d 7d")))

	nopair := parseHand("As 7s 6c 2d Qd")
	assert.True(t, IsNoPair(nopair))
	assert.False(t, IsPairOrBetter(nopair))
	assert.False(t, IsTwoPairOrBetter(parseHand("2s 2h Ac Ks Qh")))

	assert.False(t, IsNoPair(parseHand("Ac 2d 3h 4s 5c")), "a wheel is a made hand")
	assert.False(t, IsNoPair(parseHand("2h 9h Jh Qh Kh")), "a flush is a made hand")
	assert.False(t, IsNoPair(parseHand("As 7s 6c 2d")), "four cards are not a hand")
}

func TestFlopPredicates(t *testing.T) {
	t.Parallel()
	tests := []struct {
		flop     string
		rainbow  bool
		monotone bool
		twoFlush bool
		pair     bool
		trips    bool
		straight bool
		gutshot  bool
	}{
		{flop: "2c 3d Ah", rainbow: true, straight: true},
		{flop: "2c 4d Ah", rainbow: true, gutshot: true},
		{flop: "3c 4d Ah", rainbow: true, gutshot: true},
		{flop: "2c 5d Ah", rainbow: true},
		{flop: "5c 6c 7c", monotone: true, straight: true},
		{flop: "5c 6c 8d", twoFlush: true, gutshot: true},
		{flop: "Qc Kd Ah", rainbow: true, straight: true},
		{flop: "Kc Kd 2h", rainbow: true, pair: true},
		{flop: "Kc Kd Qd", twoFlush: true, pair: true},
		{flop: "9c 9d 9h", rainbow: true, trips: true},
		{flop: "2s 7s Ks", monotone: true},
	}

	for _, tc := range tests {
		t.Run(tc.flop, func(t *testing.T) {
			t.Parallel()
			f := isomorph.MustParseFlop(tc.flop)
			assert.Equal(t, tc.rainbow, IsRainbow(f), "rainbow")
			assert.Equal(t, tc.monotone, IsMonotone(f), "monotone")
			assert.Equal(t, tc.twoFlush, HasTwoFlush(f), "two-flush")
			assert.Equal(t, tc.pair, HasPair(f), "pair")
			assert.Equal(t, tc.trips, HasThreeOfAKind(f), "trips")
			assert.Equal(t, tc.straight, HasThreeStraight(f), "three-straight")
			assert.Equal(t, tc.gutshot, HasGutshot(f), "gutshot")
		})
	}
}

func TestHolecardPredicates(t *testing.T) {
	t.Parallel()
	tests := []struct {
		hole      string
		pair      bool
		suited    bool
		connected bool
		oneGap    bool
		twoGap    bool
	}{
		{hole: "8c 8d", pair: true},
		{hole: "Ah Kh", suited: true, connected: true},
		{hole: "Ac 2d", connected: true},
		{hole: "Ac 3d", oneGap: true},
		{hole: "Ac 4d", twoGap: true},
		{hole: "9s 8s", suited: true, connected: true},
		{hole: "9s 7d", oneGap: true},
		{hole: "9s 6d", twoGap: true},
		{hole: "9s 5d"},
		{hole: "Ac Qd", oneGap: true},
	}

	for _, tc := range tests {
		t.Run(tc.hole, func(t *testing.T) {
			t.Parallel()
			h := poker.MustParseHoleCards(tc.hole)
			assert.Equal(t, tc.pair, IsPair(h), "pair")
			assert.Equal(t, tc.suited, IsSuited(h), "suited")
			assert.Equal(t, tc.connected, IsConnected(h), "connected")
			assert.Equal(t, tc.oneGap, HasOneGap(h), "one gap")
			assert.Equal(t, tc.twoGap, HasTwoGap(h), "two gap")
		})
	}
}
