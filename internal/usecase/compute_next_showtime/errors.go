package compute_next_showtime

import "errors"

var (
	// ErrMovieNotSelected возвращается, если фильм не указан
	ErrMovieNotSelected = errors.New("compute_next_showtime: select a movie first")

	// ErrMovieNotFound возвращается, если длительность фильма не удалось получить
	ErrMovieNotFound = errors.New("compute_next_showtime: movie not found, select a movie first")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("compute_next_showtime: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("compute_next_showtime: internal error")
)
