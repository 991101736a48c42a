package search_showtimes

import (
	"context"

	searchShowtimes "github.com/m04kA/SMC-ShowtimeService/internal/usecase/search_showtimes"
)

type SearchShowtimesUseCase interface {
	Execute(ctx context.Context, req *searchShowtimes.Request) (*searchShowtimes.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
