package domain

import (
	"time"
)

// CinemaRef reference to a cinema owning a theater
type CinemaRef struct {
	ID   string
	Name string
}

// TheaterRef reference to a theater (screening room)
type TheaterRef struct {
	ID     string
	Number int
	Cinema *CinemaRef
}

// MovieRef reference to the movie being screened
type MovieRef struct {
	ID              string
	Name            string
	DurationMinutes int
}

// Movie catalog entry
type Movie struct {
	ID              string
	Name            string
	DurationMinutes int
}

// Showtime represents a scheduled screening as returned by the cinema backend
type Showtime struct {
	ID          string
	Movie       *MovieRef
	Theater     *TheaterRef
	StartsAt    time.Time
	SeatsBooked int
	IsReleased  bool
}

// IntegrityIssue returns a non-empty reason when the record cannot take part in search
func (s *Showtime) IntegrityIssue() string {
	switch {
	case s.Movie == nil:
		return "missing movie reference"
	case s.Theater == nil:
		return "missing theater reference"
	case s.Theater.Cinema == nil:
		return "missing cinema reference"
	case s.StartsAt.IsZero():
		return "missing start time"
	default:
		return ""
	}
}

// LocalStart returns the start time in the given location (nil keeps the original one)
func (s *Showtime) LocalStart(loc *time.Location) time.Time {
	if loc == nil {
		return s.StartsAt
	}
	return s.StartsAt.In(loc)
}

// DayLabel formatted calendar day, e.g. "05 Mar 2024"
func (s *Showtime) DayLabel(loc *time.Location) string {
	return s.LocalStart(loc).Format(DayLabelFormat)
}

// TimeLabel formatted wall clock time, e.g. "09 : 05"
func (s *Showtime) TimeLabel(loc *time.Location) string {
	return s.LocalStart(loc).Format(TimeLabelFormat)
}

// MinutesOfDay minutes since local midnight
func (s *Showtime) MinutesOfDay(loc *time.Location) int {
	t := s.LocalStart(loc)
	return t.Hour()*60 + t.Minute()
}

// StartOfDay truncates t to local midnight
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
