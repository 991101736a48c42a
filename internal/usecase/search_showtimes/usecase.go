package search_showtimes

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-ShowtimeService/internal/domain"
	"github.com/m04kA/SMC-ShowtimeService/internal/integrations/cinemaapi"
)

const (
	// SnapshotKeyAdmin ключ кэша снапшота с неопубликованными сеансами
	SnapshotKeyAdmin = "showtimes:all"
	// SnapshotKeyPublic ключ кэша снапшота опубликованных сеансов
	SnapshotKeyPublic = "showtimes:released"
)

// UseCase use case поиска сеансов: фильтрация, сортировка и фасеты
type UseCase struct {
	source       ShowtimeSource
	cache        SnapshotCache
	metrics      MetricsRecorder
	location     *time.Location
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
// cache и metrics могут быть nil
func NewUseCase(
	source ShowtimeSource,
	cache SnapshotCache,
	metrics MetricsRecorder,
	location *time.Location,
	logger Logger,
) *UseCase {
	if location == nil {
		location = time.Local
	}
	return &UseCase{
		source:       source,
		cache:        cache,
		metrics:      metrics,
		location:     location,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// WithTimeProvider подменяет источник текущего времени
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute выполняет поиск
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	admin := req.Session.IsAdmin()
	uc.logger.Info("SearchShowtimes: admin=%t, sort=%s/%d, refresh=%t",
		admin, req.Sort.Key, req.Sort.Direction, req.Refresh)

	// 1. Валидация сортировки
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("SearchShowtimes: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем снапшот
	snapshot, err := uc.loadSnapshot(ctx, req.Session, admin, req.Refresh)
	if err != nil {
		return nil, err
	}

	// 3. Отбраковываем записи с неполными ссылками
	valid, warnings := partition(snapshot)
	for _, w := range warnings {
		uc.logger.Warn("SearchShowtimes: skipping showtime id=%s: %s", w.ShowtimeID, w.Reason)
		if uc.metrics != nil {
			uc.metrics.IncDataIntegrityWarning()
		}
	}

	// 4. Фасеты по полному снапшоту, затем фильтр и сортировка
	facets := BuildFacets(valid, uc.location)
	visible := Filter(valid, req.Criteria, uc.timeProvider.Now(), uc.location)
	Sort(visible, req.Sort, uc.location)

	// 5. Отметки сохраняются только при неизменных фильтрах и сортировке
	selected, cleared := applySelection(req, visible)

	uc.logger.Info("SearchShowtimes: %d of %d showtimes matched (%d skipped), selected=%d, selectionCleared=%t",
		len(visible), len(snapshot), len(warnings), len(selected), cleared)

	return &Response{
		Showtimes:        visible,
		Facets:           facets,
		Warnings:         warnings,
		Total:            len(snapshot),
		Selected:         selected,
		SelectionCleared: cleared,
	}, nil
}

func applySelection(req *Request, visible []domain.Showtime) ([]string, bool) {
	if req.Selection == nil {
		return []string{}, false
	}

	state := domain.RestoreSearchState(req.Selection.Criteria, req.Selection.Sort, req.Selection.IDs)
	cleared := state.Apply(req.Criteria, req.Sort)
	return state.Selected(visible), cleared
}

func (uc *UseCase) loadSnapshot(ctx context.Context, session *domain.Session, admin bool, refresh bool) ([]domain.Showtime, error) {
	key := SnapshotKeyPublic
	if admin {
		key = SnapshotKeyAdmin
	}

	if uc.cache != nil && !refresh {
		cached, ok, err := uc.cache.Get(ctx, key)
		switch {
		case err != nil:
			uc.logger.Warn("SearchShowtimes: snapshot cache read failed: %v", err)
		case ok:
			uc.recordCache(true)
			return cached, nil
		default:
			uc.recordCache(false)
		}
	}

	token := ""
	if session != nil {
		token = session.Token
	}

	showtimes, err := uc.source.ListShowtimes(ctx, token, admin)
	if err != nil {
		if errors.Is(err, cinemaapi.ErrUnauthorized) || errors.Is(err, cinemaapi.ErrForbidden) {
			uc.logger.Warn("SearchShowtimes: backend rejected session: %v", err)
			return nil, ErrUnauthorized
		}
		uc.logger.Error("SearchShowtimes: failed to list showtimes: %v", err)
		return nil, fmt.Errorf("%w: failed to list showtimes: %v", ErrInternal, err)
	}

	if uc.cache != nil {
		if err := uc.cache.Set(ctx, key, showtimes); err != nil {
			uc.logger.Warn("SearchShowtimes: snapshot cache write failed: %v", err)
		}
	}

	return showtimes, nil
}

func (uc *UseCase) recordCache(hit bool) {
	if uc.metrics != nil {
		uc.metrics.IncSnapshotCache(hit)
	}
}
