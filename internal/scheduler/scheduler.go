package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
)

const jobTimeout = time.Minute

// FactsPurger удаление просроченных фактов сессий
type FactsPurger interface {
	PurgeExpired(ctx context.Context) (int64, error)
}

// MetricsRecorder учет удаленных фактов
type MetricsRecorder interface {
	AddFactsPurged(n int64)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Scheduler периодические фоновые задачи сервиса
type Scheduler struct {
	cron      *cron.Cron
	purger    FactsPurger
	metrics   MetricsRecorder
	purgeSpec string
	logger    Logger
}

// NewScheduler создает планировщик; metrics может быть nil
func NewScheduler(purger FactsPurger, metrics MetricsRecorder, purgeSpec string, logger Logger) *Scheduler {
	return &Scheduler{
		cron:      cron.New(),
		purger:    purger,
		metrics:   metrics,
		purgeSpec: purgeSpec,
		logger:    logger,
	}
}

// Start регистрирует задачи и запускает планировщик
func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc(s.purgeSpec, s.runPurge); err != nil {
		return fmt.Errorf("failed to add facts purge job: %w", err)
	}

	s.cron.Start()
	s.logger.Info("Scheduler started: facts purge=%q", s.purgeSpec)
	return nil
}

// Stop останавливает планировщик и ждет завершения текущих задач
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.logger.Info("Scheduler stopped")
}

func (s *Scheduler) runPurge() {
	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	n, err := s.purger.PurgeExpired(ctx)
	if err != nil {
		s.logger.Error("Facts purge job failed: %v", err)
		return
	}

	if s.metrics != nil {
		s.metrics.AddFactsPurged(n)
	}
	if n > 0 {
		s.logger.Info("Facts purge job removed %d expired records", n)
	}
}
