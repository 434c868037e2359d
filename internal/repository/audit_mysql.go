package repository

import (
	"context"
	"database/sql"
	"fmt"

	"cinehub-rest-api/internal/model"
)

// MySQLAuditRepository implements AuditRepository using MySQL. It is an
// optional, best-effort mirror of point movements for offline analysis;
// failures here never roll back the owning operation.
type MySQLAuditRepository struct {
	db *sql.DB
}

// NewMySQLAuditRepository creates a new MySQL audit repository and ensures
// the table exists.
func NewMySQLAuditRepository(db *sql.DB) (*MySQLAuditRepository, error) {
	query := `
	CREATE TABLE IF NOT EXISTS point_events (
		id BIGINT AUTO_INCREMENT PRIMARY KEY,
		user_id BIGINT NOT NULL,
		kind VARCHAR(16) NOT NULL,
		amount BIGINT NOT NULL,
		reason VARCHAR(255) NOT NULL,
		created_at DATETIME NOT NULL,
		INDEX idx_point_events_user (user_id),
		INDEX idx_point_events_created (created_at)
	)`
	if _, err := db.Exec(query); err != nil {
		return nil, fmt.Errorf("failed to create point_events table: %w", err)
	}
	return &MySQLAuditRepository{db: db}, nil
}

// RecordPointEvent appends a point movement to the audit log.
func (r *MySQLAuditRepository) RecordPointEvent(ctx context.Context, ev model.PointEvent) error {
	query := `INSERT INTO point_events (user_id, kind, amount, reason, created_at) VALUES (?, ?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, query, ev.UserID, string(ev.Kind), ev.Amount, ev.Reason, ev.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to record point event: %w", err)
	}
	return nil
}

// RecentEvents returns the most recent point movements.
func (r *MySQLAuditRepository) RecentEvents(ctx context.Context, limit int) ([]model.PointEvent, error) {
	if limit <= 0 {
		limit = 100
	}

	query := `SELECT id, user_id, kind, amount, reason, created_at
		FROM point_events ORDER BY created_at DESC, id DESC LIMIT ?`

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query point events: %w", err)
	}
	defer rows.Close()

	events := []model.PointEvent{}
	for rows.Next() {
		var ev model.PointEvent
		var kind string
		if err := rows.Scan(&ev.ID, &ev.UserID, &kind, &ev.Amount, &ev.Reason, &ev.CreatedAt); err != nil {
			return nil, err
		}
		ev.Kind = model.PointEventKind(kind)
		events = append(events, ev)
	}
	return events, rows.Err()
}

// Ensure MySQLAuditRepository implements AuditRepository
var _ AuditRepository = (*MySQLAuditRepository)(nil)
