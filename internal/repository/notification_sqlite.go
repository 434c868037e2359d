package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"cinehub-rest-api/internal/model"
)

// SQLiteNotificationRepository implements NotificationRepository using
// SQLite. Notifications are keyed by user_id; the per-user log is read
// newest first.
type SQLiteNotificationRepository struct {
	db *sql.DB
	mu sync.RWMutex
}

// NewSQLiteNotificationRepository creates a new SQLite notification repository.
func NewSQLiteNotificationRepository(db *sql.DB) *SQLiteNotificationRepository {
	return &SQLiteNotificationRepository{db: db}
}

// Insert appends a notification and sets its ID.
func (r *SQLiteNotificationRepository) Insert(ctx context.Context, n *model.Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if n.CreatedAt.IsZero() {
		n.CreatedAt = time.Now().UTC()
	}

	res, err := r.db.ExecContext(ctx,
		`INSERT INTO notifications (user_id, type, title, message, read, created_at, data) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		n.UserID, string(n.Type), n.Title, n.Message, n.Read, n.CreatedAt, nullableJSON(n.Data))
	if err != nil {
		return fmt.Errorf("failed to insert notification: %w", err)
	}

	n.ID, err = res.LastInsertId()
	return err
}

// ListByUser returns a user's notifications, newest first.
func (r *SQLiteNotificationRepository) ListByUser(ctx context.Context, userID int64, limit int) ([]model.Notification, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if limit <= 0 {
		limit = 50
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT id, user_id, type, title, message, read, created_at, data
		 FROM notifications WHERE user_id = ? ORDER BY created_at DESC, id DESC LIMIT ?`,
		userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	defer rows.Close()

	notifications := []model.Notification{}
	for rows.Next() {
		var n model.Notification
		var typ string
		var data sql.NullString
		if err := rows.Scan(&n.ID, &n.UserID, &typ, &n.Title, &n.Message, &n.Read, &n.CreatedAt, &data); err != nil {
			return nil, err
		}
		n.Type = model.NotificationType(typ)
		if data.Valid {
			n.Data = json.RawMessage(data.String)
		}
		notifications = append(notifications, n)
	}
	return notifications, rows.Err()
}

// MarkRead flips a notification to read. Marking an already-read or missing
// notification is a no-op, which makes the operation idempotent.
func (r *SQLiteNotificationRepository) MarkRead(ctx context.Context, id, userID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.ExecContext(ctx,
		`UPDATE notifications SET read = 1 WHERE id = ? AND user_id = ?`, id, userID)
	if err != nil {
		return fmt.Errorf("failed to mark notification read: %w", err)
	}
	return nil
}

// MarkAllRead flips all of a user's notifications to read.
func (r *SQLiteNotificationRepository) MarkAllRead(ctx context.Context, userID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.ExecContext(ctx,
		`UPDATE notifications SET read = 1 WHERE user_id = ? AND read = 0`, userID)
	if err != nil {
		return fmt.Errorf("failed to mark notifications read: %w", err)
	}
	return nil
}

// UnreadCount returns the number of unread notifications.
func (r *SQLiteNotificationRepository) UnreadCount(ctx context.Context, userID int64) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var count int64
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM notifications WHERE user_id = ? AND read = 0`, userID).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}

// DeleteReadBefore removes read notifications created before the cutoff.
func (r *SQLiteNotificationRepository) DeleteReadBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	res, err := r.db.ExecContext(ctx,
		`DELETE FROM notifications WHERE read = 1 AND created_at < ?`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to delete read notifications: %w", err)
	}

	deleted, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}

	if deleted > 0 {
		log.Printf("[SQLiteNotificationRepository] Pruned %d read notifications (cutoff: %v)", deleted, cutoff)
	}
	return deleted, nil
}

// Ensure SQLiteNotificationRepository implements NotificationRepository
var _ NotificationRepository = (*SQLiteNotificationRepository)(nil)
