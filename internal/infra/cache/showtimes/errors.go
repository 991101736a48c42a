package showtimes

import "errors"

var (
	// ErrCacheRead возвращается при ошибке чтения снапшота из Redis
	ErrCacheRead = errors.New("showtimes.cache: failed to read snapshot")

	// ErrCacheWrite возвращается при ошибке записи снапшота в Redis
	ErrCacheWrite = errors.New("showtimes.cache: failed to write snapshot")

	// ErrDecode возвращается при поврежденном содержимом кэша
	ErrDecode = errors.New("showtimes.cache: failed to decode snapshot")
)
