package service

import (
	"context"
	"sync"

	"cinehub-rest-api/internal/model"
	"cinehub-rest-api/internal/repository"
)

// NotificationService owns the per-user notification log and fans new
// notifications out to connected stream subscribers.
type NotificationService struct {
	repo repository.NotificationRepository

	mu          sync.RWMutex
	subscribers map[int64]map[chan model.Notification]struct{}
}

// NewNotificationService creates a new notification service.
func NewNotificationService(repo repository.NotificationRepository) *NotificationService {
	return &NotificationService{
		repo:        repo,
		subscribers: make(map[int64]map[chan model.Notification]struct{}),
	}
}

// Notify appends a notification and pushes it to live subscribers.
func (s *NotificationService) Notify(ctx context.Context, n model.Notification) error {
	if err := s.repo.Insert(ctx, &n); err != nil {
		return err
	}
	s.Broadcast(n)
	return nil
}

// Broadcast pushes an already-persisted notification to live subscribers.
// Used when the insert happened inside another repository's transaction.
func (s *NotificationService) Broadcast(n model.Notification) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for ch := range s.subscribers[n.UserID] {
		select {
		case ch <- n:
		default:
			// Slow subscriber; drop rather than block the caller.
		}
	}
}

// Subscribe registers a live stream for a user. The returned cancel func
// must be called when the subscriber disconnects.
func (s *NotificationService) Subscribe(userID int64) (<-chan model.Notification, func()) {
	ch := make(chan model.Notification, 16)

	s.mu.Lock()
	if s.subscribers[userID] == nil {
		s.subscribers[userID] = make(map[chan model.Notification]struct{})
	}
	s.subscribers[userID][ch] = struct{}{}
	s.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			s.mu.Lock()
			if subs, ok := s.subscribers[userID]; ok {
				delete(subs, ch)
				if len(subs) == 0 {
					delete(s.subscribers, userID)
				}
			}
			s.mu.Unlock()
			close(ch)
		})
	}
	return ch, cancel
}

// List returns a user's notifications, newest first.
func (s *NotificationService) List(ctx context.Context, userID int64, limit int) ([]model.Notification, error) {
	return s.repo.ListByUser(ctx, userID, limit)
}

// MarkRead flips a notification to read. Idempotent.
func (s *NotificationService) MarkRead(ctx context.Context, id, userID int64) error {
	return s.repo.MarkRead(ctx, id, userID)
}

// MarkAllRead flips all of a user's notifications to read.
func (s *NotificationService) MarkAllRead(ctx context.Context, userID int64) error {
	return s.repo.MarkAllRead(ctx, userID)
}

// UnreadCount returns the number of unread notifications.
func (s *NotificationService) UnreadCount(ctx context.Context, userID int64) (int64, error) {
	return s.repo.UnreadCount(ctx, userID)
}

// SubscriberCount reports currently connected stream subscribers.
func (s *NotificationService) SubscriberCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	total := 0
	for _, subs := range s.subscribers {
		total += len(subs)
	}
	return total
}
