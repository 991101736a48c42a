package bulk_update_showtimes

import "errors"

var (
	// ErrAccessDenied возвращается, если сессия не принадлежит администратору
	ErrAccessDenied = errors.New("bulk_update_showtimes: access denied")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("bulk_update_showtimes: invalid input data")
)
