package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"sync"

	"cinehub-rest-api/internal/model"
)

// SQLiteMovieRepository implements MovieRepository using SQLite. It only
// reads; community movies are inserted inside the suggestion approval
// transaction.
type SQLiteMovieRepository struct {
	db *sql.DB
	mu sync.RWMutex
}

// NewSQLiteMovieRepository creates a new SQLite movie repository.
func NewSQLiteMovieRepository(db *sql.DB) *SQLiteMovieRepository {
	return &SQLiteMovieRepository{db: db}
}

const movieSelect = `
	SELECT id, title, description, image, year, duration, rating, genres, cast_list, director, trailer
	FROM community_movies`

// List returns all community movies.
func (r *SQLiteMovieRepository) List(ctx context.Context) ([]model.Movie, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rows, err := r.db.QueryContext(ctx, movieSelect+` ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list community movies: %w", err)
	}
	defer rows.Close()

	movies := []model.Movie{}
	for rows.Next() {
		m, err := scanMovie(rows)
		if err != nil {
			return nil, err
		}
		movies = append(movies, *m)
	}
	return movies, rows.Err()
}

// GetByID retrieves a community movie by id.
func (r *SQLiteMovieRepository) GetByID(ctx context.Context, id int64) (*model.Movie, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rows, err := r.db.QueryContext(ctx, movieSelect+` WHERE id = ?`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, ErrNotFound
	}
	return scanMovie(rows)
}

// Count returns the number of community movies.
func (r *SQLiteMovieRepository) Count(ctx context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var count int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM community_movies`).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func scanMovie(rows *sql.Rows) (*model.Movie, error) {
	var m model.Movie
	var genres, castList string

	err := rows.Scan(&m.ID, &m.Title, &m.Description, &m.Image, &m.Year, &m.Duration,
		&m.Rating, &genres, &castList, &m.Director, &m.Trailer)
	if err != nil {
		return nil, fmt.Errorf("failed to scan movie: %w", err)
	}

	if err := json.Unmarshal([]byte(genres), &m.Genres); err != nil {
		return nil, fmt.Errorf("invalid genres for movie %d: %w", m.ID, err)
	}
	if err := json.Unmarshal([]byte(castList), &m.Cast); err != nil {
		return nil, fmt.Errorf("invalid cast for movie %d: %w", m.ID, err)
	}
	return &m, nil
}

// Ensure SQLiteMovieRepository implements MovieRepository
var _ MovieRepository = (*SQLiteMovieRepository)(nil)
