package compute_next_showtime

import (
	"context"

	computeNext "github.com/m04kA/SMC-ShowtimeService/internal/usecase/compute_next_showtime"
)

type ComputeNextShowtimeUseCase interface {
	Execute(ctx context.Context, req *computeNext.Request) (*computeNext.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
