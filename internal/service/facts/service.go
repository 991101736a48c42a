package facts

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-ShowtimeService/internal/domain"
	factsRepo "github.com/m04kA/SMC-ShowtimeService/internal/infra/storage/facts"
	"github.com/m04kA/SMC-ShowtimeService/pkg/ptr"
)

// Service сервис фактов сессии: последний выбранный кинотеатр и последняя дата
// Каждая запись продлевает срок жизни фактов на ttl
type Service struct {
	repo         FactsRepository
	ttl          time.Duration
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса фактов
func NewService(repo FactsRepository, ttl time.Duration, logger Logger) *Service {
	return &Service{
		repo:         repo,
		ttl:          ttl,
		timeProvider: realTimeProvider{},
		logger:       logger,
	}
}

// WithTimeProvider подменяет источник текущего времени
func (s *Service) WithTimeProvider(tp TimeProvider) *Service {
	s.timeProvider = tp
	return s
}

// Get возвращает факты сессии; отсутствие фактов не является ошибкой
func (s *Service) Get(ctx context.Context, username string) (*domain.SessionFacts, error) {
	if username == "" {
		return nil, fmt.Errorf("%w: username is required", ErrInvalidInput)
	}

	facts, err := s.repo.Get(ctx, username, s.timeProvider.Now())
	if err != nil {
		if errors.Is(err, factsRepo.ErrFactsNotFound) {
			return &domain.SessionFacts{Username: username}, nil
		}
		s.logger.Error("Get: failed to get facts for username=%s: %v", username, err)
		return nil, fmt.Errorf("%w: failed to get facts: %v", ErrInternal, err)
	}

	return facts, nil
}

// SetLastCinemaIndex сохраняет индекс последнего выбранного кинотеатра
func (s *Service) SetLastCinemaIndex(ctx context.Context, username string, index int) error {
	if index < 0 {
		return fmt.Errorf("%w: cinema index must be non-negative", ErrInvalidInput)
	}
	return s.upsert(ctx, &domain.SessionFacts{Username: username, LastCinemaIndex: ptr.Ptr(index)})
}

// SetLastDate сохраняет последнюю рабочую дату
func (s *Service) SetLastDate(ctx context.Context, username string, date time.Time) error {
	if date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	return s.upsert(ctx, &domain.SessionFacts{Username: username, LastDate: ptr.Ptr(domain.StartOfDay(date))})
}

// Update сохраняет заданные поля, nil-поля не меняются
func (s *Service) Update(ctx context.Context, username string, lastCinemaIndex *int, lastDate *time.Time) error {
	if lastCinemaIndex != nil && *lastCinemaIndex < 0 {
		return fmt.Errorf("%w: cinema index must be non-negative", ErrInvalidInput)
	}
	facts := &domain.SessionFacts{Username: username, LastCinemaIndex: lastCinemaIndex}
	if lastDate != nil {
		facts.LastDate = ptr.Ptr(domain.StartOfDay(*lastDate))
	}
	return s.upsert(ctx, facts)
}

// Clear удаляет факты сессии
func (s *Service) Clear(ctx context.Context, username string) error {
	if err := s.repo.Delete(ctx, username); err != nil {
		s.logger.Error("Clear: failed to delete facts for username=%s: %v", username, err)
		return fmt.Errorf("%w: failed to delete facts: %v", ErrInternal, err)
	}
	return nil
}

// PurgeExpired удаляет просроченные факты всех сессий
func (s *Service) PurgeExpired(ctx context.Context) (int64, error) {
	n, err := s.repo.DeleteExpired(ctx, s.timeProvider.Now())
	if err != nil {
		return 0, fmt.Errorf("%w: failed to purge facts: %v", ErrInternal, err)
	}
	return n, nil
}

func (s *Service) upsert(ctx context.Context, facts *domain.SessionFacts) error {
	if facts.Username == "" {
		return fmt.Errorf("%w: username is required", ErrInvalidInput)
	}

	now := s.timeProvider.Now()
	facts.ExpiresAt = now.Add(s.ttl)
	if err := s.repo.Upsert(ctx, facts, now); err != nil {
		s.logger.Error("Upsert: failed to save facts for username=%s: %v", facts.Username, err)
		return fmt.Errorf("%w: failed to save facts: %v", ErrInternal, err)
	}

	return nil
}
