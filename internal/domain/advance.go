package domain

import "fmt"

// RoundingMode snapping of a computed time to the next boundary (always rounds up)
type RoundingMode int

const (
	RoundingNone RoundingMode = 0
	RoundingFive RoundingMode = 5
	RoundingTen  RoundingMode = 10
)

// ParseRoundingMode accepts 0, 5 or 10
func ParseRoundingMode(v int) (RoundingMode, error) {
	switch m := RoundingMode(v); m {
	case RoundingNone, RoundingFive, RoundingTen:
		return m, nil
	default:
		return RoundingNone, fmt.Errorf("invalid rounding mode %d: expected 0, 5 or 10", v)
	}
}

// Step rounding step in minutes, 0 for none
func (m RoundingMode) Step() int {
	return int(m)
}
