package search_showtimes

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ShowtimeService/internal/domain"
)

// ShowtimeSource источник снапшота сеансов (cinema backend)
type ShowtimeSource interface {
	ListShowtimes(ctx context.Context, token string, includeUnreleased bool) ([]domain.Showtime, error)
}

// SnapshotCache кэш снапшотов сеансов
type SnapshotCache interface {
	Get(ctx context.Context, key string) ([]domain.Showtime, bool, error)
	Set(ctx context.Context, key string, showtimes []domain.Showtime) error
}

// MetricsRecorder учет предупреждений целостности и попаданий в кэш
type MetricsRecorder interface {
	IncDataIntegrityWarning()
	IncSnapshotCache(hit bool)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
