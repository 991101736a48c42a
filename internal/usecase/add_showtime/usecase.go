package add_showtime

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-ShowtimeService/internal/domain"
	"github.com/m04kA/SMC-ShowtimeService/internal/integrations/cinemaapi"
	computeNext "github.com/m04kA/SMC-ShowtimeService/internal/usecase/compute_next_showtime"
)

// UseCase use case добавления сеанса с подстановкой следующего
type UseCase struct {
	creator     ShowtimeCreator
	advancer    NextShowtimeComputer
	invalidator SnapshotInvalidator
	facts       FactsWriter
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
// invalidator и facts могут быть nil
func NewUseCase(
	creator ShowtimeCreator,
	advancer NextShowtimeComputer,
	invalidator SnapshotInvalidator,
	facts FactsWriter,
	logger Logger,
) *UseCase {
	return &UseCase{
		creator:     creator,
		advancer:    advancer,
		invalidator: invalidator,
		facts:       facts,
		logger:      logger,
	}
}

// Execute создает сеанс и рассчитывает следующий
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Проверка прав
	if !req.Session.IsAdmin() {
		uc.logger.Warn("AddShowtime: non-admin session attempted to add showtime")
		return nil, ErrAccessDenied
	}

	// 2. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("AddShowtime: validation failed: %v", err)
		return nil, err
	}

	startsAt := req.StartTime.OnDate(req.Date)
	uc.logger.Info("AddShowtime: movie=%s, theater=%s, start=%s, repeat=%d, released=%t",
		req.MovieID, req.TheaterID, startsAt.Format(domain.DateFormat+" "+domain.TimeFormat),
		req.RepeatDays, req.IsReleased)

	// 3. Следующий сеанс считаем до создания, чтобы неизвестный фильм ничего не создал
	var next *computeNext.Response
	if req.AutoAdvance {
		var err error
		next, err = uc.advancer.Execute(ctx, &computeNext.Request{
			Session:    req.Session,
			MovieID:    req.MovieID,
			Anchor:     startsAt,
			GapHours:   req.GapHours,
			GapMinutes: req.GapMinutes,
			Rounding:   req.Rounding,
		})
		if err != nil {
			switch {
			case errors.Is(err, computeNext.ErrMovieNotFound):
				return nil, ErrMovieNotFound
			case errors.Is(err, computeNext.ErrMovieNotSelected):
				return nil, ErrMovieNotSelected
			case errors.Is(err, computeNext.ErrInvalidInput):
				return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
			default:
				return nil, fmt.Errorf("%w: failed to compute next showtime: %v", ErrInternal, err)
			}
		}
	}

	// 4. Создаем сеанс в backend
	err := uc.creator.CreateShowtime(ctx, req.Session.Token, domain.ShowtimeDraft{
		MovieID:    req.MovieID,
		TheaterID:  req.TheaterID,
		StartsAt:   startsAt,
		RepeatDays: req.RepeatDays,
		IsReleased: req.IsReleased,
	})
	if err != nil {
		if errors.Is(err, cinemaapi.ErrUnauthorized) || errors.Is(err, cinemaapi.ErrForbidden) {
			uc.logger.Warn("AddShowtime: backend rejected session %s: %v", req.Session.Username, err)
			return nil, ErrAccessDenied
		}
		uc.logger.Error("AddShowtime: failed to create showtime: %v", err)
		return nil, fmt.Errorf("%w: failed to create showtime: %v", ErrInternal, err)
	}

	if uc.invalidator != nil {
		if err := uc.invalidator.Invalidate(ctx); err != nil {
			uc.logger.Warn("AddShowtime: failed to invalidate snapshot cache: %v", err)
		}
	}

	resp := &Response{
		StartsAt:   startsAt,
		RepeatDays: req.RepeatDays,
	}

	// 5. Подстановка следующего сеанса
	if next != nil {
		date := next.Date
		if req.AdvanceDate {
			date = next.NextDate
			uc.rememberDate(ctx, req.Session, date)
		}
		resp.Next = &NextPrefill{
			Time:           next.Time,
			Date:           date,
			DateRolledOver: next.DateRolledOver,
		}
		uc.logger.Info("AddShowtime: next prefill %s on %s", next.Time, date.Format(domain.DateFormat))
	}

	return resp, nil
}

func (uc *UseCase) rememberDate(ctx context.Context, session *domain.Session, date time.Time) {
	if uc.facts == nil || session.Username == "" {
		return
	}
	if err := uc.facts.SetLastDate(ctx, session.Username, date); err != nil {
		uc.logger.Warn("AddShowtime: failed to persist last date for %s: %v", session.Username, err)
	}
}
