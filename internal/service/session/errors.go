package session

import "errors"

var (
	// ErrInvalidCredentials возвращается при неверном логине или пароле
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrUnauthorized возвращается, если токен отсутствует или отклонен backend
	ErrUnauthorized = errors.New("unauthorized")

	// ErrSessionExpired возвращается, если срок действия токена истек
	ErrSessionExpired = errors.New("session expired")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
