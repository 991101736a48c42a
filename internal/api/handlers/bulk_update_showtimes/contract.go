package bulk_update_showtimes

import (
	"context"

	bulkUpdate "github.com/m04kA/SMC-ShowtimeService/internal/usecase/bulk_update_showtimes"
)

type BulkUpdateUseCase interface {
	Execute(ctx context.Context, req *bulkUpdate.Request) (*bulkUpdate.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
