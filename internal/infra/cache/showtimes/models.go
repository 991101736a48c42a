package showtimes

import (
	"time"

	"github.com/m04kA/SMC-ShowtimeService/internal/domain"
)

// entry представление сеанса в кэше
type entry struct {
	ID          string     `json:"id"`
	MovieID     string     `json:"movie_id,omitempty"`
	MovieName   string     `json:"movie_name,omitempty"`
	MovieLength int        `json:"movie_length,omitempty"`
	HasMovie    bool       `json:"has_movie"`
	TheaterID   string     `json:"theater_id,omitempty"`
	TheaterNum  int        `json:"theater_number,omitempty"`
	HasTheater  bool       `json:"has_theater"`
	CinemaID    string     `json:"cinema_id,omitempty"`
	CinemaName  string     `json:"cinema_name,omitempty"`
	HasCinema   bool       `json:"has_cinema"`
	StartsAt    *time.Time `json:"starts_at,omitempty"`
	SeatsBooked int        `json:"seats_booked"`
	IsReleased  bool       `json:"is_released"`
}

func fromDomain(s domain.Showtime) entry {
	e := entry{
		ID:          s.ID,
		SeatsBooked: s.SeatsBooked,
		IsReleased:  s.IsReleased,
	}
	if s.Movie != nil {
		e.HasMovie = true
		e.MovieID = s.Movie.ID
		e.MovieName = s.Movie.Name
		e.MovieLength = s.Movie.DurationMinutes
	}
	if s.Theater != nil {
		e.HasTheater = true
		e.TheaterID = s.Theater.ID
		e.TheaterNum = s.Theater.Number
		if s.Theater.Cinema != nil {
			e.HasCinema = true
			e.CinemaID = s.Theater.Cinema.ID
			e.CinemaName = s.Theater.Cinema.Name
		}
	}
	if !s.StartsAt.IsZero() {
		startsAt := s.StartsAt
		e.StartsAt = &startsAt
	}
	return e
}

func (e entry) toDomain() domain.Showtime {
	s := domain.Showtime{
		ID:          e.ID,
		SeatsBooked: e.SeatsBooked,
		IsReleased:  e.IsReleased,
	}
	if e.HasMovie {
		s.Movie = &domain.MovieRef{ID: e.MovieID, Name: e.MovieName, DurationMinutes: e.MovieLength}
	}
	if e.HasTheater {
		s.Theater = &domain.TheaterRef{ID: e.TheaterID, Number: e.TheaterNum}
		if e.HasCinema {
			s.Theater.Cinema = &domain.CinemaRef{ID: e.CinemaID, Name: e.CinemaName}
		}
	}
	if e.StartsAt != nil {
		s.StartsAt = *e.StartsAt
	}
	return s
}
