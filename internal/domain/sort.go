package domain

import "fmt"

// SortKey sortable showtime dimension
type SortKey string

const (
	SortByCinema  SortKey = "cinema"
	SortByTheater SortKey = "theater"
	SortByMovie   SortKey = "movie"
	SortByDate    SortKey = "date"
	SortByTime    SortKey = "time"
	SortByBooked  SortKey = "booked"
	SortByRelease SortKey = "release"
)

// SortKeys all keys in display order
var SortKeys = []SortKey{
	SortByCinema, SortByTheater, SortByMovie, SortByDate, SortByTime, SortByBooked, SortByRelease,
}

// ParseSortKey validates a key name
func ParseSortKey(s string) (SortKey, error) {
	for _, k := range SortKeys {
		if string(k) == s {
			return k, nil
		}
	}
	return "", fmt.Errorf("unknown sort key %q", s)
}

// SortDirection multiplier applied to the comparator
type SortDirection int

const (
	SortNone       SortDirection = 0
	SortAscending  SortDirection = 1
	SortDescending SortDirection = -1
)

// ParseSortDirection accepts -1, 0, 1
func ParseSortDirection(v int) (SortDirection, error) {
	switch d := SortDirection(v); d {
	case SortNone, SortAscending, SortDescending:
		return d, nil
	default:
		return SortNone, fmt.Errorf("invalid sort direction %d", v)
	}
}

// SortState at most one active key. Zero value means unsorted.
type SortState struct {
	Key       SortKey
	Direction SortDirection
}

// IsActive reports whether a comparator is applied
func (s SortState) IsActive() bool {
	return s.Key != "" && s.Direction != SortNone
}

// Equal compares sort states, every inactive state is equal to unsorted
func (s SortState) Equal(o SortState) bool {
	if !s.IsActive() || !o.IsActive() {
		return s.IsActive() == o.IsActive()
	}
	return s == o
}

// DirectionOf direction for a key, none for every inactive key
func (s SortState) DirectionOf(key SortKey) SortDirection {
	if s.Key != key {
		return SortNone
	}
	return s.Direction
}

// Toggle cycles none -> ascending -> descending -> none for key and resets the others
func (s SortState) Toggle(key SortKey) SortState {
	switch s.DirectionOf(key) {
	case SortNone:
		return SortState{Key: key, Direction: SortAscending}
	case SortAscending:
		return SortState{Key: key, Direction: SortDescending}
	default:
		return SortState{}
	}
}
