package app

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// WarmUpper прогревает кэш доступности
type WarmUpper interface {
	WarmUp(ctx context.Context, weeks int) error
}

// Scheduler управляет фоновыми задачами
type Scheduler struct {
	warmer   WarmUpper
	weeks    int
	interval time.Duration
	logger   *zap.Logger
	stopChan chan struct{}
	done     chan struct{}
}

// NewScheduler создаёт новый планировщик
func NewScheduler(warmer WarmUpper, weeks int, interval time.Duration, logger *zap.Logger) *Scheduler {
	return &Scheduler{
		warmer:   warmer,
		weeks:    weeks,
		interval: interval,
		logger:   logger,
		stopChan: make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Start запускает фоновые задачи
func (s *Scheduler) Start(ctx context.Context) {
	s.logger.Info("Starting background scheduler", zap.Duration("interval", s.interval))

	go s.runWarmUpTask(ctx)
}

// Stop останавливает фоновые задачи и ждёт завершения текущего прогона
func (s *Scheduler) Stop() {
	s.logger.Info("Stopping background scheduler")
	close(s.stopChan)
	<-s.done
}

func (s *Scheduler) runWarmUpTask(ctx context.Context) {
	defer close(s.done)

	// Первый запуск сразу при старте
	s.warmUp(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.warmUp(ctx)
		case <-s.stopChan:
			s.logger.Info("Warm-up task stopped")
			return
		case <-ctx.Done():
			s.logger.Info("Warm-up task cancelled")
			return
		}
	}
}

func (s *Scheduler) warmUp(ctx context.Context) {
	started := time.Now()

	if err := s.warmer.WarmUp(ctx, s.weeks); err != nil {
		s.logger.Error("Availability warm-up failed", zap.Error(err))
		return
	}

	s.logger.Info("Availability warm-up completed",
		zap.Int("weeks", s.weeks),
		zap.Duration("took", time.Since(started)))
}
