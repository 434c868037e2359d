package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"cinehub-rest-api/internal/model"
)

// communityMovieIDStart keeps community movie ids clear of the static
// catalog's range.
const communityMovieIDStart int64 = 10001

// SQLiteSuggestionRepository implements SuggestionRepository using SQLite.
// The review transitions run in a single transaction with a status guard in
// SQL, which makes a double review impossible regardless of UI behavior.
type SQLiteSuggestionRepository struct {
	db *sql.DB
	mu sync.RWMutex
}

// NewSQLiteSuggestionRepository creates a new SQLite suggestion repository.
func NewSQLiteSuggestionRepository(db *sql.DB) *SQLiteSuggestionRepository {
	return &SQLiteSuggestionRepository{db: db}
}

// Create inserts a pending suggestion and sets its ID.
func (r *SQLiteSuggestionRepository) Create(ctx context.Context, s *model.MovieSuggestion) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	genres, _ := json.Marshal(s.Genres)
	castList, _ := json.Marshal(s.Cast)

	query := `
		INSERT INTO movie_suggestions
			(user_id, user_name, title, description, image, year, duration, genres, cast_list, director, trailer, status, submitted_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	res, err := r.db.ExecContext(ctx, query,
		s.UserID, s.UserName, s.Title, s.Description, s.Image, s.Year, s.Duration,
		string(genres), string(castList), s.Director, s.Trailer, string(s.Status), s.SubmittedAt)
	if err != nil {
		return fmt.Errorf("failed to create suggestion: %w", err)
	}

	s.ID, err = res.LastInsertId()
	return err
}

// GetByID retrieves a suggestion by id.
func (r *SQLiteSuggestionRepository) GetByID(ctx context.Context, id int64) (*model.MovieSuggestion, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rows, err := r.db.QueryContext(ctx, suggestionSelect+` WHERE id = ?`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, ErrNotFound
	}
	s, err := scanSuggestion(rows)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// List returns suggestions filtered by status; empty status means all.
func (r *SQLiteSuggestionRepository) List(ctx context.Context, status model.SuggestionStatus) ([]model.MovieSuggestion, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var rows *sql.Rows
	var err error
	if status == "" {
		rows, err = r.db.QueryContext(ctx, suggestionSelect+` ORDER BY submitted_at DESC, id DESC`)
	} else {
		rows, err = r.db.QueryContext(ctx, suggestionSelect+` WHERE status = ? ORDER BY submitted_at DESC, id DESC`, string(status))
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list suggestions: %w", err)
	}
	defer rows.Close()

	return collectSuggestions(rows)
}

// ListByUser returns a user's suggestions, newest first.
func (r *SQLiteSuggestionRepository) ListByUser(ctx context.Context, userID int64) ([]model.MovieSuggestion, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rows, err := r.db.QueryContext(ctx, suggestionSelect+` WHERE user_id = ? ORDER BY submitted_at DESC, id DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list suggestions: %w", err)
	}
	defer rows.Close()

	return collectSuggestions(rows)
}

// Approve atomically transitions a pending suggestion to approved, inserts
// the community movie, credits the reward and appends the notification.
func (r *SQLiteSuggestionRepository) Approve(ctx context.Context, id, adminID int64, movie model.Movie, reward int64, n model.Notification) (*model.MovieSuggestion, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	now := time.Now().UTC()
	if err := markReviewed(ctx, tx, id, model.SuggestionApproved, adminID, now); err != nil {
		return nil, err
	}

	genres, _ := json.Marshal(movie.Genres)
	castList, _ := json.Marshal(movie.Cast)
	if _, err := tx.ExecContext(ctx, `
		INSERT INTO community_movies (id, title, description, image, year, duration, rating, genres, cast_list, director, trailer)
		VALUES ((SELECT COALESCE(MAX(id) + 1, ?) FROM community_movies), ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		communityMovieIDStart, movie.Title, movie.Description, movie.Image, movie.Year, movie.Duration,
		movie.Rating, string(genres), string(castList), movie.Director, movie.Trailer); err != nil {
		return nil, fmt.Errorf("failed to insert community movie: %w", err)
	}

	if _, err := tx.ExecContext(ctx,
		`UPDATE users SET points = points + ? WHERE id = ?`, reward, n.UserID); err != nil {
		return nil, fmt.Errorf("failed to credit reward: %w", err)
	}

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO notifications (user_id, type, title, message, read, created_at, data) VALUES (?, ?, ?, ?, 0, ?, ?)`,
		n.UserID, string(n.Type), n.Title, n.Message, now, nullableJSON(n.Data)); err != nil {
		return nil, fmt.Errorf("failed to insert notification: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit approval: %w", err)
	}

	return r.getLocked(ctx, id)
}

// Reject atomically transitions a pending suggestion to rejected and
// appends the notification.
func (r *SQLiteSuggestionRepository) Reject(ctx context.Context, id, adminID int64, n model.Notification) (*model.MovieSuggestion, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	now := time.Now().UTC()
	if err := markReviewed(ctx, tx, id, model.SuggestionRejected, adminID, now); err != nil {
		return nil, err
	}

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO notifications (user_id, type, title, message, read, created_at, data) VALUES (?, ?, ?, ?, 0, ?, ?)`,
		n.UserID, string(n.Type), n.Title, n.Message, now, nullableJSON(n.Data)); err != nil {
		return nil, fmt.Errorf("failed to insert notification: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit rejection: %w", err)
	}

	return r.getLocked(ctx, id)
}

// markReviewed performs the guarded state transition. The WHERE clause only
// matches pending rows; zero rows affected means the suggestion was missing
// or already reviewed.
func markReviewed(ctx context.Context, tx *sql.Tx, id int64, status model.SuggestionStatus, adminID int64, now time.Time) error {
	res, err := tx.ExecContext(ctx,
		`UPDATE movie_suggestions SET status = ?, reviewed_at = ?, reviewed_by = ? WHERE id = ? AND status = 'pending'`,
		string(status), now, adminID, id)
	if err != nil {
		return fmt.Errorf("failed to update suggestion: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		var exists int
		if err := tx.QueryRowContext(ctx,
			`SELECT COUNT(*) FROM movie_suggestions WHERE id = ?`, id).Scan(&exists); err != nil {
			return err
		}
		if exists == 0 {
			return ErrNotFound
		}
		return ErrNotPending
	}
	return nil
}

// getLocked re-reads a suggestion while the write lock is held.
func (r *SQLiteSuggestionRepository) getLocked(ctx context.Context, id int64) (*model.MovieSuggestion, error) {
	rows, err := r.db.QueryContext(ctx, suggestionSelect+` WHERE id = ?`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, ErrNotFound
	}
	return scanSuggestion(rows)
}

const suggestionSelect = `
	SELECT id, user_id, user_name, title, description, image, year, duration,
	       genres, cast_list, director, trailer, status, submitted_at, reviewed_at, reviewed_by
	FROM movie_suggestions`

func scanSuggestion(rows *sql.Rows) (*model.MovieSuggestion, error) {
	var s model.MovieSuggestion
	var genres, castList, status string
	var reviewedAt sql.NullTime
	var reviewedBy sql.NullInt64

	err := rows.Scan(&s.ID, &s.UserID, &s.UserName, &s.Title, &s.Description, &s.Image, &s.Year,
		&s.Duration, &genres, &castList, &s.Director, &s.Trailer, &status, &s.SubmittedAt, &reviewedAt, &reviewedBy)
	if err != nil {
		return nil, fmt.Errorf("failed to scan suggestion: %w", err)
	}

	s.Status = model.SuggestionStatus(status)
	if err := json.Unmarshal([]byte(genres), &s.Genres); err != nil {
		return nil, fmt.Errorf("invalid genres for suggestion %d: %w", s.ID, err)
	}
	if err := json.Unmarshal([]byte(castList), &s.Cast); err != nil {
		return nil, fmt.Errorf("invalid cast for suggestion %d: %w", s.ID, err)
	}
	if reviewedAt.Valid {
		t := reviewedAt.Time
		s.ReviewedAt = &t
	}
	if reviewedBy.Valid {
		v := reviewedBy.Int64
		s.ReviewedBy = &v
	}
	return &s, nil
}

func collectSuggestions(rows *sql.Rows) ([]model.MovieSuggestion, error) {
	suggestions := []model.MovieSuggestion{}
	for rows.Next() {
		s, err := scanSuggestion(rows)
		if err != nil {
			return nil, err
		}
		suggestions = append(suggestions, *s)
	}
	return suggestions, rows.Err()
}

// Ensure SQLiteSuggestionRepository implements SuggestionRepository
var _ SuggestionRepository = (*SQLiteSuggestionRepository)(nil)
