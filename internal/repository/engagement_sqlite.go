package repository

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	"cinehub-rest-api/internal/model"
)

// SQLiteEngagementRepository implements EngagementRepository using SQLite.
type SQLiteEngagementRepository struct {
	db *sql.DB
	mu sync.RWMutex
}

// NewSQLiteEngagementRepository creates a new SQLite engagement repository.
func NewSQLiteEngagementRepository(db *sql.DB) *SQLiteEngagementRepository {
	return &SQLiteEngagementRepository{db: db}
}

// AddFavorite records a favorite. Returns true only on the pair's first-ever
// add: removal keeps the row with a removed flag, so a re-add flips the flag
// back and returns false. The caller relies on this to pay the reward once.
func (r *SQLiteEngagementRepository) AddFavorite(ctx context.Context, userID, movieID int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	res, err := r.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO favorites (user_id, movie_id, created_at) VALUES (?, ?, ?)`,
		userID, movieID, time.Now().UTC())
	if err != nil {
		return false, fmt.Errorf("failed to add favorite: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	if affected > 0 {
		return true, nil
	}

	_, err = r.db.ExecContext(ctx,
		`UPDATE favorites SET removed = 0, created_at = ? WHERE user_id = ? AND movie_id = ? AND removed = 1`,
		time.Now().UTC(), userID, movieID)
	if err != nil {
		return false, fmt.Errorf("failed to restore favorite: %w", err)
	}
	return false, nil
}

// RemoveFavorite unmarks a favorite. The row stays behind so the reward
// history survives; removing a missing favorite is a no-op.
func (r *SQLiteEngagementRepository) RemoveFavorite(ctx context.Context, userID, movieID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.ExecContext(ctx,
		`UPDATE favorites SET removed = 1 WHERE user_id = ? AND movie_id = ?`, userID, movieID)
	if err != nil {
		return fmt.Errorf("failed to remove favorite: %w", err)
	}
	return nil
}

// ListFavorites returns the movie ids a user has favorited.
func (r *SQLiteEngagementRepository) ListFavorites(ctx context.Context, userID int64) ([]int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rows, err := r.db.QueryContext(ctx,
		`SELECT movie_id FROM favorites WHERE user_id = ? AND removed = 0 ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list favorites: %w", err)
	}
	defer rows.Close()

	ids := []int64{}
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// AddComment inserts a movie comment and sets its ID.
func (r *SQLiteEngagementRepository) AddComment(ctx context.Context, c *model.Comment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now().UTC()
	}

	res, err := r.db.ExecContext(ctx,
		`INSERT INTO comments (movie_id, user_id, user_name, user_avatar, text, likes, created_at) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		c.MovieID, c.UserID, c.UserName, c.UserAvatar, c.Text, c.Likes, c.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to add comment: %w", err)
	}
	c.ID, err = res.LastInsertId()
	return err
}

// ListComments returns a movie's comments, newest first.
func (r *SQLiteEngagementRepository) ListComments(ctx context.Context, movieID int64) ([]model.Comment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rows, err := r.db.QueryContext(ctx,
		`SELECT id, movie_id, user_id, user_name, user_avatar, text, likes, created_at
		 FROM comments WHERE movie_id = ? ORDER BY created_at DESC, id DESC`, movieID)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	defer rows.Close()

	comments := []model.Comment{}
	for rows.Next() {
		var c model.Comment
		if err := rows.Scan(&c.ID, &c.MovieID, &c.UserID, &c.UserName, &c.UserAvatar, &c.Text, &c.Likes, &c.CreatedAt); err != nil {
			return nil, err
		}
		comments = append(comments, c)
	}
	return comments, rows.Err()
}

// AddReaction inserts a movie reaction and sets its ID.
func (r *SQLiteEngagementRepository) AddReaction(ctx context.Context, reaction *model.Reaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if reaction.CreatedAt.IsZero() {
		reaction.CreatedAt = time.Now().UTC()
	}

	res, err := r.db.ExecContext(ctx,
		`INSERT INTO reactions (movie_id, user_id, user_name, emoji, created_at) VALUES (?, ?, ?, ?, ?)`,
		reaction.MovieID, reaction.UserID, reaction.UserName, reaction.Emoji, reaction.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to add reaction: %w", err)
	}
	reaction.ID, err = res.LastInsertId()
	return err
}

// ListReactions returns a movie's reactions.
func (r *SQLiteEngagementRepository) ListReactions(ctx context.Context, movieID int64) ([]model.Reaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rows, err := r.db.QueryContext(ctx,
		`SELECT id, movie_id, user_id, user_name, emoji, created_at
		 FROM reactions WHERE movie_id = ? ORDER BY created_at DESC, id DESC`, movieID)
	if err != nil {
		return nil, fmt.Errorf("failed to list reactions: %w", err)
	}
	defer rows.Close()

	reactions := []model.Reaction{}
	for rows.Next() {
		var re model.Reaction
		if err := rows.Scan(&re.ID, &re.MovieID, &re.UserID, &re.UserName, &re.Emoji, &re.CreatedAt); err != nil {
			return nil, err
		}
		reactions = append(reactions, re)
	}
	return reactions, rows.Err()
}

// RecordTrailerWatch marks a trailer watched. Returns true only on the
// first watch, which is the one that earns points.
func (r *SQLiteEngagementRepository) RecordTrailerWatch(ctx context.Context, userID, movieID int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	res, err := r.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO watch_history (user_id, movie_id, watched_at) VALUES (?, ?, ?)`,
		userID, movieID, time.Now().UTC())
	if err != nil {
		return false, fmt.Errorf("failed to record trailer watch: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

// AddGameScore inserts a game score and sets its ID.
func (r *SQLiteEngagementRepository) AddGameScore(ctx context.Context, s *model.GameScore) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if s.PlayedAt.IsZero() {
		s.PlayedAt = time.Now().UTC()
	}

	res, err := r.db.ExecContext(ctx,
		`INSERT INTO game_scores (user_id, game_id, score, points_earned, played_at) VALUES (?, ?, ?, ?, ?)`,
		s.UserID, s.GameID, s.Score, s.PointsEarned, s.PlayedAt)
	if err != nil {
		return fmt.Errorf("failed to add game score: %w", err)
	}
	s.ID, err = res.LastInsertId()
	return err
}

// ListGameScores returns a user's game scores, newest first.
func (r *SQLiteEngagementRepository) ListGameScores(ctx context.Context, userID int64) ([]model.GameScore, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rows, err := r.db.QueryContext(ctx,
		`SELECT id, user_id, game_id, score, points_earned, played_at
		 FROM game_scores WHERE user_id = ? ORDER BY played_at DESC, id DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list game scores: %w", err)
	}
	defer rows.Close()

	scores := []model.GameScore{}
	for rows.Next() {
		var s model.GameScore
		if err := rows.Scan(&s.ID, &s.UserID, &s.GameID, &s.Score, &s.PointsEarned, &s.PlayedAt); err != nil {
			return nil, err
		}
		scores = append(scores, s)
	}
	return scores, rows.Err()
}

// CreatePost inserts a community post and sets its ID.
func (r *SQLiteEngagementRepository) CreatePost(ctx context.Context, p *model.CommunityPost) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC()
	}

	res, err := r.db.ExecContext(ctx,
		`INSERT INTO community_posts (user_id, user_name, user_avatar, content, likes, created_at) VALUES (?, ?, ?, ?, ?, ?)`,
		p.UserID, p.UserName, p.UserAvatar, p.Content, p.Likes, p.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create post: %w", err)
	}
	p.ID, err = res.LastInsertId()
	return err
}

// ListPosts returns community posts, newest first.
func (r *SQLiteEngagementRepository) ListPosts(ctx context.Context, limit int) ([]model.CommunityPost, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if limit <= 0 {
		limit = 50
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT id, user_id, user_name, user_avatar, content, likes, created_at
		 FROM community_posts ORDER BY created_at DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	defer rows.Close()

	posts := []model.CommunityPost{}
	for rows.Next() {
		var p model.CommunityPost
		if err := rows.Scan(&p.ID, &p.UserID, &p.UserName, &p.UserAvatar, &p.Content, &p.Likes, &p.CreatedAt); err != nil {
			return nil, err
		}
		posts = append(posts, p)
	}
	return posts, rows.Err()
}

// LikePost increments a post's like counter.
func (r *SQLiteEngagementRepository) LikePost(ctx context.Context, postID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	res, err := r.db.ExecContext(ctx,
		`UPDATE community_posts SET likes = likes + 1 WHERE id = ?`, postID)
	if err != nil {
		return fmt.Errorf("failed to like post: %w", err)
	}
	return requireRow(res)
}

// AddPostComment inserts a community comment and sets its ID.
func (r *SQLiteEngagementRepository) AddPostComment(ctx context.Context, c *model.CommunityComment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now().UTC()
	}

	res, err := r.db.ExecContext(ctx,
		`INSERT INTO community_comments (post_id, user_id, user_name, content, created_at) VALUES (?, ?, ?, ?, ?)`,
		c.PostID, c.UserID, c.UserName, c.Content, c.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to add post comment: %w", err)
	}
	c.ID, err = res.LastInsertId()
	return err
}

// ListPostComments returns a post's comments, oldest first.
func (r *SQLiteEngagementRepository) ListPostComments(ctx context.Context, postID int64) ([]model.CommunityComment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rows, err := r.db.QueryContext(ctx,
		`SELECT id, post_id, user_id, user_name, content, created_at
		 FROM community_comments WHERE post_id = ? ORDER BY created_at, id`, postID)
	if err != nil {
		return nil, fmt.Errorf("failed to list post comments: %w", err)
	}
	defer rows.Close()

	comments := []model.CommunityComment{}
	for rows.Next() {
		var c model.CommunityComment
		if err := rows.Scan(&c.ID, &c.PostID, &c.UserID, &c.UserName, &c.Content, &c.CreatedAt); err != nil {
			return nil, err
		}
		comments = append(comments, c)
	}
	return comments, rows.Err()
}

// Ensure SQLiteEngagementRepository implements EngagementRepository
var _ EngagementRepository = (*SQLiteEngagementRepository)(nil)
