package classification

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/pokertools/isomorph"
	"github.com/lox/pokertools/poker"
)

func TestIsThreeStraight(t *testing.T) {
	t.Parallel()
	tests := []struct {
		hole     string
		flop     string
		required int
		want     bool
	}{
		{"4d 5c", "Qd 3h Kh", 2, true},
		{"2h 3c", "8h 7h 6h", 2, false},
		{"2h 3c", "8h 7h 6h", 0, true},
		{"9h 2c", "8h 7h Kh", 1, true},
		{"9h 2c", "8h 7h Kh", 2, false},
		{"Ac 3c", "2c Jh Qd", 2, true},
		{"Ac Kc", "Qc 2h 7d", 2, true},
		{"Ac 2c", "Kc 7h 8d", 2, false},
		{"5c 5d", "4h 6s Kd", 2, true},
		{"Qs Js", "7s Td 2d", 2, true},
	}

	for _, tc := range tests {
		t.Run(tc.hole+" on "+tc.flop, func(t *testing.T) {
			t.Parallel()
			got, err := IsThreeStraight(poker.MustParseHoleCards(tc.hole), isomorph.MustParseFlop(tc.flop), tc.required)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestIsThreeFlush(t *testing.T) {
	t.Parallel()
	tests := []struct {
		hole     string
		flop     string
		required int
		want     bool
	}{
		{"2d 3d", "7d Qh Kh", 2, true},
		{"2h 3d", "7h Ah Kd", 2, false},
		{"2h 3d", "7h Ah Kd", 1, true},
		{"2c 3d", "7h Ah Kh", 0, true},
		{"2c 3d", "7h Ah Kh", 1, false},
		{"2h 3h", "7h Ah Kd", 2, false}, // four hearts is not three-to-a-flush
	}

	for _, tc := range tests {
		t.Run(tc.hole+" on "+tc.flop, func(t *testing.T) {
			t.Parallel()
			got, err := IsThreeFlush(poker.MustParseHoleCards(tc.hole), isomorph.MustParseFlop(tc.flop), tc.required)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestIsOnePair(t *testing.T) {
	t.Parallel()
	pairedHole := poker.MustParseHoleCards("Ac Kd")
	ok, err := IsOnePair(pairedHole, isomorph.MustParseFlop("As 7h 2c"), true)
	require.NoError(t, err)
	assert.True(t, ok)

	boardPair := isomorph.MustParseFlop("Ks Kh 2c")
	hole := poker.MustParseHoleCards("9c 8d")
	ok, err = IsOnePair(hole, boardPair, true)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = IsOnePair(hole, boardPair, false)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = IsOnePair(poker.MustParseHoleCards("9c 9d"), boardPair, false)
	require.NoError(t, err)
	assert.False(t, ok, "two pair is not one pair")
}

func TestHasTwoOvercards(t *testing.T) {
	t.Parallel()
	flop := isomorph.MustParseFlop("Qs 7h 2c")

	ok, err := HasTwoOvercards(poker.MustParseHoleCards("Ac Kd"), flop)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = HasTwoOvercards(poker.MustParseHoleCards("Ac 7d"), flop)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = HasTwoOvercards(poker.MustParseHoleCards("Qc Kd"), flop)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestComplexValidation(t *testing.T) {
	t.Parallel()
	hole := poker.MustParseHoleCards("Qs Js")
	conflict := isomorph.Flop{
		poker.NewCard(poker.Queen, poker.Spades),
		poker.NewCard(poker.Two, poker.Diamonds),
		poker.NewCard(poker.Three, poker.Diamonds),
	}

	_, err := IsThreeStraight(hole, conflict, 2)
	assert.ErrorIs(t, err, poker.ErrDuplicateCard)
	_, err = IsThreeFlush(hole, conflict, 2)
	assert.ErrorIs(t, err, poker.ErrDuplicateCard)
	_, err = IsOnePair(hole, conflict, true)
	assert.ErrorIs(t, err, poker.ErrDuplicateCard)
	_, err = HasTwoOvercards(hole, conflict)
	assert.ErrorIs(t, err, poker.ErrDuplicateCard)
	_, err = IsBluffCandidate(hole, conflict, DefaultBluffOptions())
	assert.ErrorIs(t, err, poker.ErrDuplicateCard)

	flop := isomorph.MustParseFlop("7s Td 2d")
	_, err = IsThreeStraight(hole, flop, 3)
	assert.ErrorIs(t, err, ErrRequiredHolecards)
	_, err = IsThreeFlush(hole, flop, -1)
	assert.ErrorIs(t, err, ErrRequiredHolecards)
}
