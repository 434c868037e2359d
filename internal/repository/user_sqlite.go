package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"cinehub-rest-api/internal/model"
)

// SQLiteUserRepository implements UserRepository using SQLite. The inventory
// is stored as a JSON column on the user row, so a user read always carries
// a consistent balance+inventory pair.
type SQLiteUserRepository struct {
	db *sql.DB
	mu sync.RWMutex
}

// NewSQLiteUserRepository creates a new SQLite user repository.
func NewSQLiteUserRepository(db *sql.DB) *SQLiteUserRepository {
	return &SQLiteUserRepository{db: db}
}

// Create inserts a new user and sets its ID.
func (r *SQLiteUserRepository) Create(ctx context.Context, u *model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	invJSON, err := json.Marshal(u.Inventory)
	if err != nil {
		return fmt.Errorf("failed to marshal inventory: %w", err)
	}

	query := `
		INSERT INTO users (name, email, password_hash, avatar, points, is_admin, join_date, inventory_json, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`

	res, err := r.db.ExecContext(ctx, query,
		u.Name, u.Email, u.PasswordHash, u.Avatar, u.Points, u.IsAdmin, u.JoinDate, string(invJSON), u.CreatedAt)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return ErrDuplicateEmail
		}
		return fmt.Errorf("failed to create user: %w", err)
	}

	u.ID, err = res.LastInsertId()
	if err != nil {
		return err
	}
	return nil
}

// GetByID retrieves a user by id.
func (r *SQLiteUserRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	query := `SELECT id, name, email, avatar, points, is_admin, join_date, inventory_json, created_at
		FROM users WHERE id = ?`
	return r.scanUser(r.db.QueryRowContext(ctx, query, id))
}

// GetByEmail retrieves a user by email.
func (r *SQLiteUserRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	query := `SELECT id, name, email, avatar, points, is_admin, join_date, inventory_json, created_at
		FROM users WHERE email = ?`
	return r.scanUser(r.db.QueryRowContext(ctx, query, email))
}

// PasswordHash returns the stored credential hash for an email.
func (r *SQLiteUserRepository) PasswordHash(ctx context.Context, email string) (string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var hash string
	err := r.db.QueryRowContext(ctx, `SELECT password_hash FROM users WHERE email = ?`, email).Scan(&hash)
	if err != nil {
		if err == sql.ErrNoRows {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("failed to get password hash: %w", err)
	}
	return hash, nil
}

// UpdateInventory replaces a user's inventory record.
func (r *SQLiteUserRepository) UpdateInventory(ctx context.Context, id int64, inv model.Inventory) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	invJSON, err := json.Marshal(inv)
	if err != nil {
		return fmt.Errorf("failed to marshal inventory: %w", err)
	}

	res, err := r.db.ExecContext(ctx, `UPDATE users SET inventory_json = ? WHERE id = ?`, string(invJSON), id)
	if err != nil {
		return fmt.Errorf("failed to update inventory: %w", err)
	}
	return requireRow(res)
}

// UpdateAvatar sets a user's avatar image.
func (r *SQLiteUserRepository) UpdateAvatar(ctx context.Context, id int64, avatar string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	res, err := r.db.ExecContext(ctx, `UPDATE users SET avatar = ? WHERE id = ?`, avatar, id)
	if err != nil {
		return fmt.Errorf("failed to update avatar: %w", err)
	}
	return requireRow(res)
}

// AddPoints unconditionally credits points. No upper bound is enforced.
func (r *SQLiteUserRepository) AddPoints(ctx context.Context, id int64, amount int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	res, err := r.db.ExecContext(ctx, `UPDATE users SET points = points + ? WHERE id = ?`, amount, id)
	if err != nil {
		return fmt.Errorf("failed to add points: %w", err)
	}
	return requireRow(res)
}

// SetAdmin grants or revokes admin rights by email.
func (r *SQLiteUserRepository) SetAdmin(ctx context.Context, email string, isAdmin bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	res, err := r.db.ExecContext(ctx, `UPDATE users SET is_admin = ? WHERE email = ?`, isAdmin, email)
	if err != nil {
		return fmt.Errorf("failed to set admin flag: %w", err)
	}
	return requireRow(res)
}

// Count returns the number of registered users.
func (r *SQLiteUserRepository) Count(ctx context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var count int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *SQLiteUserRepository) scanUser(row *sql.Row) (*model.User, error) {
	var u model.User
	var invJSON string

	err := row.Scan(&u.ID, &u.Name, &u.Email, &u.Avatar, &u.Points, &u.IsAdmin, &u.JoinDate, &invJSON, &u.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan user: %w", err)
	}

	if err := json.Unmarshal([]byte(invJSON), &u.Inventory); err != nil {
		return nil, fmt.Errorf("invalid inventory JSON for user %d: %w", u.ID, err)
	}
	return &u, nil
}

// requireRow converts a zero-row update into ErrNotFound.
func requireRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// Ensure SQLiteUserRepository implements UserRepository
var _ UserRepository = (*SQLiteUserRepository)(nil)
