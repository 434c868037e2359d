package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"cinehub-rest-api/internal/cache"
	"cinehub-rest-api/internal/catalog"
	"cinehub-rest-api/internal/model"
	"cinehub-rest-api/internal/repository"
)

const commentCooldownKeyPrefix = "cooldown:comment:"

// EngagementService covers per-movie interactions (favorites, comments,
// reactions, trailer watches), mini-game plays and the community feed.
// Point rewards route through the economy service.
type EngagementService struct {
	engagement repository.EngagementRepository
	movies     repository.MovieRepository
	economy    *EconomyService
	cache      cache.Cache
}

func NewEngagementService(
	engagement repository.EngagementRepository,
	movies repository.MovieRepository,
	economy *EconomyService,
	c cache.Cache,
) *EngagementService {
	return &EngagementService{
		engagement: engagement,
		movies:     movies,
		economy:    economy,
		cache:      c,
	}
}

// MovieByID resolves a movie from the static catalog or the community
// catalog.
func (s *EngagementService) MovieByID(ctx context.Context, id int64) (model.Movie, error) {
	if movie, ok := catalog.MovieByID(id); ok {
		return movie, nil
	}
	movie, err := s.movies.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.Movie{}, ErrMovieNotFound
		}
		return model.Movie{}, err
	}
	return *movie, nil
}

// ListMovies returns the merged catalog: static movies followed by community
// movies, optionally filtered by genre.
func (s *EngagementService) ListMovies(ctx context.Context, genre string) ([]model.Movie, error) {
	community, err := s.movies.List(ctx)
	if err != nil {
		return nil, err
	}
	merged := append([]model.Movie{}, catalog.Movies()...)
	merged = append(merged, community...)

	if genre == "" {
		return merged, nil
	}

	filtered := merged[:0]
	for _, m := range merged {
		for _, g := range m.Genres {
			if strings.EqualFold(g, genre) {
				filtered = append(filtered, m)
				break
			}
		}
	}
	return filtered, nil
}

// AddFavorite marks a movie as a favorite. Only the first add of a given
// movie pays the reward; re-adding after removal pays nothing.
func (s *EngagementService) AddFavorite(ctx context.Context, userID, movieID int64) error {
	if _, err := s.MovieByID(ctx, movieID); err != nil {
		return err
	}

	added, err := s.engagement.AddFavorite(ctx, userID, movieID)
	if err != nil {
		return err
	}
	if added {
		if err := s.economy.EarnPoints(ctx, userID, s.economy.Config().FavoriteReward, "favorite"); err != nil {
			log.Printf("[EngagementService] favorite reward failed: %v", err)
		}
	}
	return nil
}

// RemoveFavorite unmarks a favorite. Points already paid are kept.
func (s *EngagementService) RemoveFavorite(ctx context.Context, userID, movieID int64) error {
	return s.engagement.RemoveFavorite(ctx, userID, movieID)
}

// ListFavorites returns the user's favorite movie ids.
func (s *EngagementService) ListFavorites(ctx context.Context, userID int64) ([]int64, error) {
	return s.engagement.ListFavorites(ctx, userID)
}

// AddComment posts a comment on a movie and pays the comment reward. A
// per-user cooldown spaces comments out; posting during the cooldown
// returns ErrCommentCooldown.
func (s *EngagementService) AddComment(ctx context.Context, user *model.User, movieID int64, text string) (*model.Comment, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("comment text is required")
	}
	if _, err := s.MovieByID(ctx, movieID); err != nil {
		return nil, err
	}

	cooldownKey := fmt.Sprintf("%s%d", commentCooldownKeyPrefix, user.ID)
	if exists, err := s.cache.Exists(ctx, cooldownKey); err == nil && exists {
		return nil, ErrCommentCooldown
	}

	comment := &model.Comment{
		MovieID:    movieID,
		UserID:     user.ID,
		UserName:   user.Name,
		UserAvatar: user.Avatar,
		Text:       text,
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.engagement.AddComment(ctx, comment); err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, cooldownKey, []byte("1"), s.economy.Config().CommentCooldown); err != nil {
		log.Printf("[EngagementService] failed to set comment cooldown: %v", err)
	}
	if err := s.economy.EarnPoints(ctx, user.ID, s.economy.Config().CommentReward, "comment"); err != nil {
		log.Printf("[EngagementService] comment reward failed: %v", err)
	}
	return comment, nil
}

// ListComments returns a movie's comments.
func (s *EngagementService) ListComments(ctx context.Context, movieID int64) ([]model.Comment, error) {
	return s.engagement.ListComments(ctx, movieID)
}

// AddReaction records an emoji reaction on a movie. Reactions pay nothing.
func (s *EngagementService) AddReaction(ctx context.Context, user *model.User, movieID int64, emoji string) (*model.Reaction, error) {
	if emoji == "" {
		return nil, fmt.Errorf("emoji is required")
	}
	if _, err := s.MovieByID(ctx, movieID); err != nil {
		return nil, err
	}

	reaction := &model.Reaction{
		MovieID:   movieID,
		UserID:    user.ID,
		UserName:  user.Name,
		Emoji:     emoji,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.engagement.AddReaction(ctx, reaction); err != nil {
		return nil, err
	}
	return reaction, nil
}

// ListReactions returns a movie's reactions.
func (s *EngagementService) ListReactions(ctx context.Context, movieID int64) ([]model.Reaction, error) {
	return s.engagement.ListReactions(ctx, movieID)
}

// WatchTrailer records a trailer watch. Only the first watch of each movie
// pays the reward.
func (s *EngagementService) WatchTrailer(ctx context.Context, userID, movieID int64) (rewarded bool, err error) {
	if _, err := s.MovieByID(ctx, movieID); err != nil {
		return false, err
	}

	first, err := s.engagement.RecordTrailerWatch(ctx, userID, movieID)
	if err != nil {
		return false, err
	}
	if first {
		if err := s.economy.EarnPoints(ctx, userID, s.economy.Config().TrailerReward, "trailer"); err != nil {
			log.Printf("[EngagementService] trailer reward failed: %v", err)
		}
	}
	return first, nil
}

// SubmitGameScore records a play and pays points proportional to the score:
// floor(score/100 * reward), scores capped at 100. Every play pays.
func (s *EngagementService) SubmitGameScore(ctx context.Context, userID, gameID, score int64) (*model.GameScore, error) {
	game, ok := catalog.MiniGameByID(gameID)
	if !ok {
		return nil, ErrGameNotFound
	}
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	earned := score * game.PointsReward / 100
	record := &model.GameScore{
		UserID:       userID,
		GameID:       gameID,
		Score:        score,
		PointsEarned: earned,
		PlayedAt:     time.Now().UTC(),
	}
	if err := s.engagement.AddGameScore(ctx, record); err != nil {
		return nil, err
	}

	if err := s.economy.EarnPoints(ctx, userID, earned, "game:"+game.Name); err != nil {
		log.Printf("[EngagementService] game reward failed: %v", err)
	}
	return record, nil
}

// ListGameScores returns a user's game score history.
func (s *EngagementService) ListGameScores(ctx context.Context, userID int64) ([]model.GameScore, error) {
	return s.engagement.ListGameScores(ctx, userID)
}

// CreatePost publishes a community post and pays the post reward. The daily
// comment-count policy is informational; nothing here enforces it.
func (s *EngagementService) CreatePost(ctx context.Context, user *model.User, content string) (*model.CommunityPost, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, fmt.Errorf("post content is required")
	}

	post := &model.CommunityPost{
		UserID:     user.ID,
		UserName:   user.Name,
		UserAvatar: user.Avatar,
		Content:    content,
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.engagement.CreatePost(ctx, post); err != nil {
		return nil, err
	}

	if err := s.economy.EarnPoints(ctx, user.ID, s.economy.Config().PostReward, "community_post"); err != nil {
		log.Printf("[EngagementService] post reward failed: %v", err)
	}
	return post, nil
}

// ListPosts returns the community feed, newest first.
func (s *EngagementService) ListPosts(ctx context.Context, limit int) ([]model.CommunityPost, error) {
	return s.engagement.ListPosts(ctx, limit)
}

// LikePost increments a post's like counter.
func (s *EngagementService) LikePost(ctx context.Context, postID int64) error {
	err := s.engagement.LikePost(ctx, postID)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrPostNotFound
	}
	return err
}

// AddPostComment replies to a community post. Replies pay nothing.
func (s *EngagementService) AddPostComment(ctx context.Context, user *model.User, postID int64, content string) (*model.CommunityComment, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, fmt.Errorf("comment content is required")
	}

	comment := &model.CommunityComment{
		PostID:    postID,
		UserID:    user.ID,
		UserName:  user.Name,
		Content:   content,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.engagement.AddPostComment(ctx, comment); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}
	return comment, nil
}

// ListPostComments returns a post's replies.
func (s *EngagementService) ListPostComments(ctx context.Context, postID int64) ([]model.CommunityComment, error) {
	return s.engagement.ListPostComments(ctx, postID)
}
