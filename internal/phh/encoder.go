package phh

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/lox/pokertools/poker"
)

// Variant is the PHH code for no-limit Texas hold'em.
const Variant = "NT"

// Encode writes the hand history to the provided writer in PHH TOML format.
func Encode(w io.Writer, hand *HandHistory) error {
	if hand == nil {
		return fmt.Errorf("phh: hand history is nil")
	}

	enc := toml.NewEncoder(w)
	enc.Indent = "\t"
	return enc.Encode(hand)
}

// EncodeToBytes encodes and returns the result as bytes.
func EncodeToBytes(hand *HandHistory) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, hand); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Decode reads a PHH document.
func Decode(r io.Reader) (*HandHistory, error) {
	var hand HandHistory
	if _, err := toml.NewDecoder(r).Decode(&hand); err != nil {
		return nil, fmt.Errorf("phh: %w", err)
	}
	return &hand, nil
}

// joinCards renders cards the PHH way, without separators: "AhKh".
func joinCards(cards []poker.Card) string {
	var b strings.Builder
	for _, c := range cards {
		b.WriteString(c.String())
	}
	return b.String()
}

// DealHole is the action dealing cards to a seat (0-based).
func DealHole(seat int, cards []poker.Card) string {
	return fmt.Sprintf("d dh p%d %s", seat+1, joinCards(cards))
}

// DealBoard is the action dealing community cards.
func DealBoard(cards []poker.Card) string {
	return "d db " + joinCards(cards)
}
