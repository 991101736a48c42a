package search_showtimes

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("search_showtimes: invalid input data")

	// ErrUnauthorized возвращается, когда backend отклонил токен сессии
	ErrUnauthorized = errors.New("search_showtimes: unauthorized")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("search_showtimes: internal error")
)
