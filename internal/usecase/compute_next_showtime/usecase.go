package compute_next_showtime

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-ShowtimeService/internal/domain"
	"github.com/m04kA/SMC-ShowtimeService/internal/integrations/cinemaapi"
)

// UseCase use case расчета времени следующего сеанса
type UseCase struct {
	movies MovieCatalog
	facts  FactsWriter
	logger Logger
}

// NewUseCase создает новый экземпляр use case
// facts может быть nil, тогда последняя дата не сохраняется
func NewUseCase(movies MovieCatalog, facts FactsWriter, logger Logger) *UseCase {
	return &UseCase{
		movies: movies,
		facts:  facts,
		logger: logger,
	}
}

// Execute выполняет расчет следующего сеанса
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ComputeNextShowtime: movie=%s, anchor=%s, gap=%02d:%02d, rounding=%d, advanceDate=%t",
		req.MovieID, req.Anchor.Format(domain.DateFormat+" "+domain.TimeFormat),
		req.GapHours, req.GapMinutes, req.Rounding, req.AdvanceDate)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("ComputeNextShowtime: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем длительность фильма
	movie, err := uc.movies.GetMovie(ctx, req.MovieID)
	if err != nil {
		if errors.Is(err, cinemaapi.ErrMovieNotFound) {
			uc.logger.Warn("ComputeNextShowtime: movie id=%s not found", req.MovieID)
			return nil, ErrMovieNotFound
		}
		uc.logger.Error("ComputeNextShowtime: failed to get movie id=%s: %v", req.MovieID, err)
		return nil, fmt.Errorf("%w: failed to get movie: %v", ErrInternal, err)
	}

	if movie.DurationMinutes < 0 {
		uc.logger.Warn("ComputeNextShowtime: movie id=%s has negative duration %d", movie.ID, movie.DurationMinutes)
		return nil, fmt.Errorf("%w: movie duration is negative", ErrInvalidInput)
	}

	// 3. Считаем следующее время
	result := Advance(AdvanceInput{
		Anchor:          req.Anchor,
		DurationMinutes: movie.DurationMinutes,
		GapHours:        req.GapHours,
		GapMinutes:      req.GapMinutes,
		Rounding:        req.Rounding,
	})

	// 4. Рабочая дата: переносится только по запросу
	nextDate := domain.StartOfDay(result.Next)
	date := domain.StartOfDay(req.Anchor)
	if req.AdvanceDate {
		date = nextDate
		uc.rememberDate(ctx, req.Session, date)
	}

	uc.logger.Info("ComputeNextShowtime: next showtime for movie=%s is %s on %s (rolledOver=%t)",
		movie.ID, result.Time, date.Format(domain.DateFormat), result.DateRolledOver)

	return &Response{
		MovieID:              movie.ID,
		MovieDurationMinutes: movie.DurationMinutes,
		Time:                 result.Time,
		Date:                 date,
		NextDate:             nextDate,
		StartsAt:             result.Time.OnDate(date),
		DateRolledOver:       result.DateRolledOver,
	}, nil
}

// rememberDate сохраняет рабочую дату в фактах сессии, ошибки только логируются
func (uc *UseCase) rememberDate(ctx context.Context, session *domain.Session, date time.Time) {
	if uc.facts == nil || session == nil || session.Username == "" {
		return
	}
	if err := uc.facts.SetLastDate(ctx, session.Username, date); err != nil {
		uc.logger.Warn("ComputeNextShowtime: failed to persist last date for %s: %v", session.Username, err)
	}
}
