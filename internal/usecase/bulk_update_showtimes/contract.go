package bulk_update_showtimes

import (
	"context"
)

// ShowtimeWriter изменение сеансов в cinema backend
type ShowtimeWriter interface {
	SetShowtimeRelease(ctx context.Context, token, showtimeID string, released bool) error
	DeleteShowtime(ctx context.Context, token, showtimeID string) error
}

// SnapshotInvalidator сброс кэша снапшотов после изменений
type SnapshotInvalidator interface {
	Invalidate(ctx context.Context) error
}

// MetricsRecorder учет исходов по каждому сеансу
type MetricsRecorder interface {
	IncBulkOutcome(action string, success bool)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
