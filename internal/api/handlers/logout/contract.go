package logout

import (
	"context"

	"github.com/m04kA/SMC-ShowtimeService/internal/domain"
)

type SessionService interface {
	Logout(ctx context.Context, session *domain.Session) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
