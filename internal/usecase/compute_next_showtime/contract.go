package compute_next_showtime

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ShowtimeService/internal/domain"
)

// MovieCatalog источник длительности фильмов
type MovieCatalog interface {
	GetMovie(ctx context.Context, movieID string) (*domain.Movie, error)
}

// FactsWriter запись факта "последняя выбранная дата" сессии
type FactsWriter interface {
	SetLastDate(ctx context.Context, username string, date time.Time) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
