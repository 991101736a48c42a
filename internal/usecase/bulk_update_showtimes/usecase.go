package bulk_update_showtimes

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"
)

const defaultConcurrency = 8

// UseCase use case массового публикования, снятия с публикации и удаления сеансов
type UseCase struct {
	writer      ShowtimeWriter
	invalidator SnapshotInvalidator
	metrics     MetricsRecorder
	concurrency int
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
// invalidator и metrics могут быть nil
func NewUseCase(
	writer ShowtimeWriter,
	invalidator SnapshotInvalidator,
	metrics MetricsRecorder,
	concurrency int,
	logger Logger,
) *UseCase {
	if concurrency <= 0 {
		concurrency = defaultConcurrency
	}
	return &UseCase{
		writer:      writer,
		invalidator: invalidator,
		metrics:     metrics,
		concurrency: concurrency,
		logger:      logger,
	}
}

// Execute выполняет действие для каждого сеанса параллельно
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Проверка прав и входных данных
	if !req.Session.IsAdmin() {
		uc.logger.Warn("BulkUpdateShowtimes: non-admin session attempted %s", req.Action)
		return nil, ErrAccessDenied
	}

	if _, err := ParseAction(string(req.Action)); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	ids := uniqueIDs(req.ShowtimeIDs)
	if len(ids) == 0 {
		return nil, fmt.Errorf("%w: no showtimes selected", ErrInvalidInput)
	}

	uc.logger.Info("BulkUpdateShowtimes: %s %d showtimes by %s", req.Action, len(ids), req.Session.Username)

	// 2. Параллельная обработка, ошибки собираются, а не прерывают пакет
	var mu sync.Mutex
	failed := make(map[string]string)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(uc.concurrency)

	for _, id := range ids {
		id := id
		g.Go(func() error {
			err := uc.apply(gctx, req.Session.Token, req.Action, id)
			if uc.metrics != nil {
				uc.metrics.IncBulkOutcome(string(req.Action), err == nil)
			}
			if err != nil {
				uc.logger.Warn("BulkUpdateShowtimes: %s showtime id=%s failed: %v", req.Action, id, err)
				mu.Lock()
				failed[id] = err.Error()
				mu.Unlock()
			}
			return nil
		})
	}
	_ = g.Wait()

	// Порядок ошибок как в запросе
	ordered := make([]Failure, 0, len(failed))
	for _, id := range ids {
		if reason, ok := failed[id]; ok {
			ordered = append(ordered, Failure{ShowtimeID: id, Reason: reason})
		}
	}

	// 3. Видимый набор изменился, сбрасываем снапшоты
	if len(ordered) < len(ids) && uc.invalidator != nil {
		if err := uc.invalidator.Invalidate(ctx); err != nil {
			uc.logger.Warn("BulkUpdateShowtimes: failed to invalidate snapshot cache: %v", err)
		}
	}

	resp := &Response{
		Action:    req.Action,
		Requested: len(ids),
		Succeeded: len(ids) - len(ordered),
		Failed:    len(ordered),
		Failures:  ordered,
	}

	uc.logger.Info("BulkUpdateShowtimes: %s finished, %d/%d succeeded", req.Action, resp.Succeeded, resp.Requested)

	return resp, nil
}

func (uc *UseCase) apply(ctx context.Context, token string, action Action, id string) error {
	switch action {
	case ActionRelease:
		return uc.writer.SetShowtimeRelease(ctx, token, id, true)
	case ActionUnrelease:
		return uc.writer.SetShowtimeRelease(ctx, token, id, false)
	default:
		return uc.writer.DeleteShowtime(ctx, token, id)
	}
}

// uniqueIDs убирает пустые и повторяющиеся ID, сохраняя порядок
func uniqueIDs(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	result := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		result = append(result, id)
	}
	return result
}
