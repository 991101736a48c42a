package facts

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ShowtimeService/internal/domain"
)

// FactsRepository интерфейс хранилища фактов сессий
type FactsRepository interface {
	Get(ctx context.Context, username string, now time.Time) (*domain.SessionFacts, error)
	Upsert(ctx context.Context, facts *domain.SessionFacts, now time.Time) error
	Delete(ctx context.Context, username string) error
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
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

type realTimeProvider struct{}

func (realTimeProvider) Now() time.Time {
	return time.Now()
}
