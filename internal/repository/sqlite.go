package repository

import (
	"database/sql"
	"fmt"
	"log"

	_ "modernc.org/sqlite" // Pure Go SQLite driver - no CGO required
)

// OpenSQLite opens the SQLite database, applies the connection settings and
// creates the schema. All SQLite repositories share the returned handle.
func OpenSQLite(dbPath string) (*sql.DB, error) {
	// Open with WAL mode and other optimizations
	dsn := fmt.Sprintf("%s?_journal_mode=WAL&_synchronous=NORMAL&_cache_size=10000&_busy_timeout=5000", dbPath)

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open SQLite: %w", err)
	}

	// SQLite connection pool settings
	db.SetMaxOpenConns(1) // SQLite only supports 1 writer
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0) // Keep connection alive

	if err := createTables(db); err != nil {
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	log.Printf("[SQLite] Initialized with database: %s", dbPath)
	return db, nil
}

// createTables creates the full schema.
func createTables(db *sql.DB) error {
	query := `
	CREATE TABLE IF NOT EXISTS users (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		email TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		avatar TEXT NOT NULL DEFAULT '',
		points INTEGER NOT NULL DEFAULT 0 CHECK (points >= 0),
		is_admin INTEGER NOT NULL DEFAULT 0,
		join_date TEXT NOT NULL,
		inventory_json TEXT NOT NULL,
		created_at DATETIME NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_users_email ON users(email);

	CREATE TABLE IF NOT EXISTS custom_store_items (
		id INTEGER PRIMARY KEY,
		type TEXT NOT NULL,
		name TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		image TEXT NOT NULL DEFAULT '',
		cost INTEGER NOT NULL CHECK (cost > 0),
		data TEXT NOT NULL DEFAULT '{}'
	);

	CREATE TABLE IF NOT EXISTS purchases (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id INTEGER NOT NULL,
		item_id INTEGER NOT NULL,
		item_name TEXT NOT NULL,
		item_type TEXT NOT NULL,
		cost INTEGER NOT NULL,
		purchased_at DATETIME NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_purchases_user ON purchases(user_id);

	CREATE TABLE IF NOT EXISTS notifications (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id INTEGER NOT NULL,
		type TEXT NOT NULL,
		title TEXT NOT NULL,
		message TEXT NOT NULL,
		read INTEGER NOT NULL DEFAULT 0,
		created_at DATETIME NOT NULL,
		data TEXT
	);
	CREATE INDEX IF NOT EXISTS idx_notifications_user ON notifications(user_id, created_at);

	CREATE TABLE IF NOT EXISTS movie_suggestions (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id INTEGER NOT NULL,
		user_name TEXT NOT NULL,
		title TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		image TEXT NOT NULL DEFAULT '',
		year INTEGER NOT NULL DEFAULT 0,
		duration TEXT NOT NULL DEFAULT '',
		genres TEXT NOT NULL DEFAULT '[]',
		cast_list TEXT NOT NULL DEFAULT '[]',
		director TEXT NOT NULL DEFAULT '',
		trailer TEXT NOT NULL DEFAULT '',
		status TEXT NOT NULL DEFAULT 'pending',
		submitted_at DATETIME NOT NULL,
		reviewed_at DATETIME,
		reviewed_by INTEGER
	);
	CREATE INDEX IF NOT EXISTS idx_suggestions_status ON movie_suggestions(status);
	CREATE INDEX IF NOT EXISTS idx_suggestions_user ON movie_suggestions(user_id);

	CREATE TABLE IF NOT EXISTS community_movies (
		id INTEGER PRIMARY KEY,
		title TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		image TEXT NOT NULL DEFAULT '',
		year INTEGER NOT NULL DEFAULT 0,
		duration TEXT NOT NULL DEFAULT '',
		rating REAL NOT NULL DEFAULT 0,
		genres TEXT NOT NULL DEFAULT '[]',
		cast_list TEXT NOT NULL DEFAULT '[]',
		director TEXT NOT NULL DEFAULT '',
		trailer TEXT NOT NULL DEFAULT ''
	);

	CREATE TABLE IF NOT EXISTS favorites (
		user_id INTEGER NOT NULL,
		movie_id INTEGER NOT NULL,
		created_at DATETIME NOT NULL,
		removed INTEGER NOT NULL DEFAULT 0,
		PRIMARY KEY (user_id, movie_id)
	);

	CREATE TABLE IF NOT EXISTS comments (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		movie_id INTEGER NOT NULL,
		user_id INTEGER NOT NULL,
		user_name TEXT NOT NULL,
		user_avatar TEXT NOT NULL DEFAULT '',
		text TEXT NOT NULL,
		likes INTEGER NOT NULL DEFAULT 0,
		created_at DATETIME NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_comments_movie ON comments(movie_id, created_at);

	CREATE TABLE IF NOT EXISTS reactions (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		movie_id INTEGER NOT NULL,
		user_id INTEGER NOT NULL,
		user_name TEXT NOT NULL,
		emoji TEXT NOT NULL,
		created_at DATETIME NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_reactions_movie ON reactions(movie_id);

	CREATE TABLE IF NOT EXISTS watch_history (
		user_id INTEGER NOT NULL,
		movie_id INTEGER NOT NULL,
		watched_at DATETIME NOT NULL,
		PRIMARY KEY (user_id, movie_id)
	);

	CREATE TABLE IF NOT EXISTS game_scores (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id INTEGER NOT NULL,
		game_id INTEGER NOT NULL,
		score INTEGER NOT NULL,
		points_earned INTEGER NOT NULL,
		played_at DATETIME NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_game_scores_user ON game_scores(user_id);

	CREATE TABLE IF NOT EXISTS community_posts (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id INTEGER NOT NULL,
		user_name TEXT NOT NULL,
		user_avatar TEXT NOT NULL DEFAULT '',
		content TEXT NOT NULL,
		likes INTEGER NOT NULL DEFAULT 0,
		created_at DATETIME NOT NULL
	);

	CREATE TABLE IF NOT EXISTS community_comments (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		post_id INTEGER NOT NULL,
		user_id INTEGER NOT NULL,
		user_name TEXT NOT NULL,
		content TEXT NOT NULL,
		created_at DATETIME NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_community_comments_post ON community_comments(post_id);
	`
	_, err := db.Exec(query)
	return err
}
