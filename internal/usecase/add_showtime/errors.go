package add_showtime

import "errors"

var (
	// ErrAccessDenied возвращается, если сессия не принадлежит администратору
	ErrAccessDenied = errors.New("add_showtime: access denied")

	// ErrMovieNotSelected возвращается, если фильм не указан
	ErrMovieNotSelected = errors.New("add_showtime: select a movie first")

	// ErrMovieNotFound возвращается, если фильм не найден в каталоге
	ErrMovieNotFound = errors.New("add_showtime: movie not found, select a movie first")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("add_showtime: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("add_showtime: internal error")
)
