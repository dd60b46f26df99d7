// Package phh writes dealt hands in the Poker Hand History (PHH) TOML format.
package phh

// HandHistory represents a single poker hand encoded in PHH format.
type HandHistory struct {
	Variant           string         `toml:"variant"`
	SeatCount         int            `toml:"seat_count,omitempty"`
	Antes             []int          `toml:"antes"`
	BlindsOrStraddles []int          `toml:"blinds_or_straddles"`
	MinBet            int            `toml:"min_bet"`
	StartingStacks    []int          `toml:"starting_stacks"`
	Actions           []string       `toml:"actions"`
	Players           []string       `toml:"players,omitempty"`
	HandID            string         `toml:"hand"`
	Metadata          map[string]any `toml:"metadata,omitempty"`
}
