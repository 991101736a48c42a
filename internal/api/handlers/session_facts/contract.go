package session_facts

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ShowtimeService/internal/domain"
)

type FactsService interface {
	Get(ctx context.Context, username string) (*domain.SessionFacts, error)
	Update(ctx context.Context, username string, lastCinemaIndex *int, lastDate *time.Time) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
