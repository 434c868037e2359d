package model

import "time"

// Comment is a per-movie user comment.
type Comment struct {
	ID         int64     `json:"id"`
	MovieID    int64     `json:"movie_id"`
	UserID     int64     `json:"user_id"`
	UserName   string    `json:"user_name"`
	UserAvatar string    `json:"user_avatar"`
	Text       string    `json:"text"`
	Likes      int64     `json:"likes"`
	CreatedAt  time.Time `json:"created_at"`
}

// Reaction is an emoji reaction on a movie.
type Reaction struct {
	ID        int64     `json:"id"`
	MovieID   int64     `json:"movie_id"`
	UserID    int64     `json:"user_id"`
	UserName  string    `json:"user_name"`
	Emoji     string    `json:"emoji"`
	CreatedAt time.Time `json:"created_at"`
}

// WatchHistoryItem records a trailer watch. Each movie rewards at most once.
type WatchHistoryItem struct {
	MovieID   int64     `json:"movie_id"`
	WatchedAt time.Time `json:"watched_at"`
}

// MiniGame is a static mini-game definition. PointsReward is the maximum
// award for a perfect score.
type MiniGame struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	Category     string `json:"category"`
	Difficulty   string `json:"difficulty"`
	PointsReward int64  `json:"points_reward"`
	Icon         string `json:"icon"`
}

// GameScore records one play of a mini-game.
type GameScore struct {
	ID           int64     `json:"id"`
	UserID       int64     `json:"user_id"`
	GameID       int64     `json:"game_id"`
	Score        int64     `json:"score"`
	PointsEarned int64     `json:"points_earned"`
	PlayedAt     time.Time `json:"played_at"`
}

// CommunityPost is a post in the community feed.
type CommunityPost struct {
	ID         int64     `json:"id"`
	UserID     int64     `json:"user_id"`
	UserName   string    `json:"user_name"`
	UserAvatar string    `json:"user_avatar"`
	Content    string    `json:"content"`
	Likes      int64     `json:"likes"`
	CreatedAt  time.Time `json:"created_at"`
}

// CommunityComment is a reply to a community post.
type CommunityComment struct {
	ID        int64     `json:"id"`
	PostID    int64     `json:"post_id"`
	UserID    int64     `json:"user_id"`
	UserName  string    `json:"user_name"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}
