package service

import (
	"context"
	"log"
	"sync"
	"time"

	"cinehub-rest-api/internal/repository"
)

// RetentionConfig holds configuration for the notification retention
// scheduler.
type RetentionConfig struct {
	// ReadRetention is how long read notifications are kept.
	// Default: 30 days
	ReadRetention time.Duration

	// SweepInterval is how often the sweep runs.
	// Default: 24 hours
	SweepInterval time.Duration
}

// DefaultRetentionConfig returns the default retention configuration.
func DefaultRetentionConfig() RetentionConfig {
	return RetentionConfig{
		ReadRetention: 30 * 24 * time.Hour,
		SweepInterval: 24 * time.Hour,
	}
}

// RetentionScheduler periodically prunes read notifications older than the
// retention window. Unread notifications are never removed.
type RetentionScheduler struct {
	repo      repository.NotificationRepository
	config    RetentionConfig
	ticker    *time.Ticker
	stopCh    chan struct{}
	stopOnce  sync.Once
	isRunning bool
	mu        sync.Mutex
}

// NewRetentionScheduler creates a new retention scheduler.
func NewRetentionScheduler(repo repository.NotificationRepository, config RetentionConfig) *RetentionScheduler {
	if config.ReadRetention == 0 {
		config.ReadRetention = 30 * 24 * time.Hour
	}
	if config.SweepInterval == 0 {
		config.SweepInterval = 24 * time.Hour
	}

	return &RetentionScheduler{
		repo:   repo,
		config: config,
		stopCh: make(chan struct{}),
	}
}

// Start begins the retention scheduler.
func (s *RetentionScheduler) Start() {
	s.mu.Lock()
	if s.isRunning {
		s.mu.Unlock()
		return
	}
	s.isRunning = true
	s.ticker = time.NewTicker(s.config.SweepInterval)
	s.mu.Unlock()

	log.Printf("[RetentionScheduler] Started - Interval: %v, Retention: %v",
		s.config.SweepInterval, s.config.ReadRetention)

	go s.run()
}

func (s *RetentionScheduler) run() {
	for {
		select {
		case <-s.ticker.C:
			s.runSweep()
		case <-s.stopCh:
			log.Printf("[RetentionScheduler] Stopped")
			return
		}
	}
}

func (s *RetentionScheduler) runSweep() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	cutoff := time.Now().UTC().Add(-s.config.ReadRetention)
	deleted, err := s.repo.DeleteReadBefore(ctx, cutoff)
	if err != nil {
		log.Printf("[RetentionScheduler] Error during sweep: %v", err)
		return
	}

	if deleted > 0 {
		log.Printf("[RetentionScheduler] Pruned %d read notifications", deleted)
	}
}

// Stop stops the retention scheduler.
func (s *RetentionScheduler) Stop() {
	s.stopOnce.Do(func() {
		s.mu.Lock()
		defer s.mu.Unlock()

		if s.ticker != nil {
			s.ticker.Stop()
		}
		close(s.stopCh)
		s.isRunning = false
	})
}

// RunNow triggers an immediate sweep and returns the number of pruned rows.
func (s *RetentionScheduler) RunNow() (int64, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	cutoff := time.Now().UTC().Add(-s.config.ReadRetention)
	return s.repo.DeleteReadBefore(ctx, cutoff)
}
