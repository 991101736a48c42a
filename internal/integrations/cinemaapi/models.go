package cinemaapi

import (
	"bytes"
	"encoding/json"
	"time"

	"github.com/m04kA/SMC-ShowtimeService/internal/domain"
)

// envelope ответы backend завернуты в {"data": ...}
type envelope[T any] struct {
	Success bool `json:"success"`
	Data    T    `json:"data"`
}

// User текущий пользователь из /auth/me
type User struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Success bool   `json:"success"`
	Token   string `json:"token"`
}

// populated ссылка, которую backend может вернуть как объект, как id-строку или null
// Всё, кроме объекта, считается незаполненной ссылкой
type populated[T any] struct {
	Value *T
}

func (p *populated[T]) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || b[0] != '{' {
		p.Value = nil
		return nil
	}
	var v T
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	p.Value = &v
	return nil
}

type cinemaDTO struct {
	ID   string `json:"_id"`
	Name string `json:"name"`
}

type theaterDTO struct {
	ID     string               `json:"_id"`
	Number int                  `json:"number"`
	Cinema populated[cinemaDTO] `json:"cinema"`
}

type movieDTO struct {
	ID     string `json:"_id"`
	Name   string `json:"name"`
	Length int    `json:"length"` // длительность в минутах
}

type showtimeDTO struct {
	ID        string                `json:"_id"`
	Movie     populated[movieDTO]   `json:"movie"`
	Theater   populated[theaterDTO] `json:"theater"`
	Showtime  *time.Time            `json:"showtime"`
	Seats     []json.RawMessage     `json:"seats"`
	IsRelease bool                  `json:"isRelease"`
}

type createShowtimeRequest struct {
	Movie     string    `json:"movie"`
	Showtime  time.Time `json:"showtime"`
	Theater   string    `json:"theater"`
	Repeat    int       `json:"repeat"`
	IsRelease bool      `json:"isRelease"`
}

type updateReleaseRequest struct {
	IsRelease bool `json:"isRelease"`
}

// toDomain сохраняет отсутствующие ссылки как nil, чтобы поиск мог их отбраковать
func (s showtimeDTO) toDomain() domain.Showtime {
	result := domain.Showtime{
		ID:          s.ID,
		SeatsBooked: len(s.Seats),
		IsReleased:  s.IsRelease,
	}
	if s.Showtime != nil {
		result.StartsAt = *s.Showtime
	}
	if movie := s.Movie.Value; movie != nil {
		result.Movie = &domain.MovieRef{
			ID:              movie.ID,
			Name:            movie.Name,
			DurationMinutes: movie.Length,
		}
	}
	if theater := s.Theater.Value; theater != nil {
		result.Theater = &domain.TheaterRef{
			ID:     theater.ID,
			Number: theater.Number,
		}
		if cinema := theater.Cinema.Value; cinema != nil {
			result.Theater.Cinema = &domain.CinemaRef{
				ID:   cinema.ID,
				Name: cinema.Name,
			}
		}
	}
	return result
}

func (m movieDTO) toDomain() domain.Movie {
	return domain.Movie{
		ID:              m.ID,
		Name:            m.Name,
		DurationMinutes: m.Length,
	}
}
