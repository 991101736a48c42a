package add_showtime

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ShowtimeService/internal/domain"
	computeNext "github.com/m04kA/SMC-ShowtimeService/internal/usecase/compute_next_showtime"
)

// ShowtimeCreator создание сеансов в cinema backend
type ShowtimeCreator interface {
	CreateShowtime(ctx context.Context, token string, draft domain.ShowtimeDraft) error
}

// NextShowtimeComputer расчет времени следующего сеанса
type NextShowtimeComputer interface {
	Execute(ctx context.Context, req *computeNext.Request) (*computeNext.Response, error)
}

// SnapshotInvalidator сброс кэша снапшотов после изменений
type SnapshotInvalidator interface {
	Invalidate(ctx context.Context) error
}

// FactsWriter запись фактов сессии
type FactsWriter interface {
	SetLastDate(ctx context.Context, username string, date time.Time) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
