package cinemaapi

import "errors"

var (
	// ErrInvalidCredentials возвращается при неверном логине или пароле
	ErrInvalidCredentials = errors.New("cinemaapi client: invalid credentials")

	// ErrUnauthorized возвращается, когда backend отклонил токен
	ErrUnauthorized = errors.New("cinemaapi client: unauthorized")

	// ErrForbidden возвращается, когда у токена нет прав на операцию
	ErrForbidden = errors.New("cinemaapi client: forbidden")

	// ErrMovieNotFound возвращается, когда фильм не найден в каталоге
	ErrMovieNotFound = errors.New("cinemaapi client: movie not found")

	// ErrShowtimeNotFound возвращается, когда сеанс не найден
	ErrShowtimeNotFound = errors.New("cinemaapi client: showtime not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("cinemaapi client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от backend
	ErrInvalidResponse = errors.New("cinemaapi client: invalid response")
)
