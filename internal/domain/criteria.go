package domain

import (
	"fmt"
	"strings"
	"time"
)

// DateBucket relative day bucket filter
type DateBucket string

const (
	DateBucketNone   DateBucket = ""
	DateBucketPast   DateBucket = "past"
	DateBucketToday  DateBucket = "today"
	DateBucketFuture DateBucket = "future"
)

// ReleaseBucket release flag filter
type ReleaseBucket string

const (
	ReleaseBucketNone       ReleaseBucket = ""
	ReleaseBucketReleased   ReleaseBucket = "released"
	ReleaseBucketUnreleased ReleaseBucket = "unreleased"
)

// ParseDateBucket parses a bucket name, empty string means no constraint
func ParseDateBucket(s string) (DateBucket, error) {
	switch b := DateBucket(strings.ToLower(s)); b {
	case DateBucketNone, DateBucketPast, DateBucketToday, DateBucketFuture:
		return b, nil
	default:
		return DateBucketNone, fmt.Errorf("unknown date bucket %q", s)
	}
}

// ParseReleaseBucket parses a bucket name, empty string means no constraint
func ParseReleaseBucket(s string) (ReleaseBucket, error) {
	switch b := ReleaseBucket(strings.ToLower(s)); b {
	case ReleaseBucketNone, ReleaseBucketReleased, ReleaseBucketUnreleased:
		return b, nil
	default:
		return ReleaseBucketNone, fmt.Errorf("unknown release bucket %q", s)
	}
}

// FilterCriteria search filters. Zero value matches every showtime.
// Set dimensions are OR within, all dimensions combine with AND.
type FilterCriteria struct {
	CinemaIDs      []string
	TheaterNumbers []int
	MovieIDs       []string
	Dates          []string // DayLabelFormat
	Times          []string // TimeLabelFormat

	DateFrom *time.Time // inclusive, compared by calendar day
	DateTo   *time.Time // inclusive, compared by calendar day
	TimeFrom *string    // TimeLabelFormat, inclusive
	TimeTo   *string    // TimeLabelFormat, inclusive

	DateBucket    DateBucket
	ReleaseBucket ReleaseBucket
}

// IsEmpty reports whether no constraint is set
func (c *FilterCriteria) IsEmpty() bool {
	return len(c.CinemaIDs) == 0 &&
		len(c.TheaterNumbers) == 0 &&
		len(c.MovieIDs) == 0 &&
		len(c.Dates) == 0 &&
		len(c.Times) == 0 &&
		c.DateFrom == nil && c.DateTo == nil &&
		c.TimeFrom == nil && c.TimeTo == nil &&
		c.DateBucket == DateBucketNone &&
		c.ReleaseBucket == ReleaseBucketNone
}

// Equal compares criteria by value, nil and empty sets are equal
func (c *FilterCriteria) Equal(o FilterCriteria) bool {
	return equalSlices(c.CinemaIDs, o.CinemaIDs) &&
		equalSlices(c.TheaterNumbers, o.TheaterNumbers) &&
		equalSlices(c.MovieIDs, o.MovieIDs) &&
		equalSlices(c.Dates, o.Dates) &&
		equalSlices(c.Times, o.Times) &&
		equalDays(c.DateFrom, o.DateFrom) && equalDays(c.DateTo, o.DateTo) &&
		equalPtr(c.TimeFrom, o.TimeFrom) && equalPtr(c.TimeTo, o.TimeTo) &&
		c.DateBucket == o.DateBucket &&
		c.ReleaseBucket == o.ReleaseBucket
}

func equalSlices[T comparable](a, b []T) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func equalPtr[T comparable](a, b *T) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func equalDays(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Equal(*b)
}

// ParseDayLabel parses a day in DayLabelFormat or DateFormat
func ParseDayLabel(s string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	if t, err := time.ParseInLocation(DayLabelFormat, s, loc); err == nil {
		return t, nil
	}
	t, err := time.ParseInLocation(DateFormat, s, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid day %q: expected %q or %q", s, DayLabelFormat, DateFormat)
	}
	return t, nil
}

// NormalizeTimeLabel accepts "HH : MM" or "HH:MM" and returns TimeLabelFormat
func NormalizeTimeLabel(s string) (string, error) {
	if t, err := time.Parse(TimeLabelFormat, s); err == nil {
		return t.Format(TimeLabelFormat), nil
	}
	t, err := time.Parse(TimeFormat, s)
	if err != nil {
		return "", fmt.Errorf("invalid time %q: expected %q or %q", s, TimeLabelFormat, TimeFormat)
	}
	return t.Format(TimeLabelFormat), nil
}
