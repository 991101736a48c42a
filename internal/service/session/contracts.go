package session

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ShowtimeService/internal/integrations/cinemaapi"
)

// AuthBackend аутентификация в cinema backend
type AuthBackend interface {
	Login(ctx context.Context, username, password string) (string, error)
	GetMe(ctx context.Context, token string) (*cinemaapi.User, error)
	Logout(ctx context.Context, token string) error
}

// FactsCleaner удаление фактов сессии при выходе
type FactsCleaner interface {
	Clear(ctx context.Context, username string) error
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
