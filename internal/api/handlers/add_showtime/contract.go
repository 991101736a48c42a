package add_showtime

import (
	"context"

	addShowtime "github.com/m04kA/SMC-ShowtimeService/internal/usecase/add_showtime"
)

type AddShowtimeUseCase interface {
	Execute(ctx context.Context, req *addShowtime.Request) (*addShowtime.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
