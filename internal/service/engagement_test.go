package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cinehub-rest-api/internal/service"
)

func TestEngagementService_Favorites(t *testing.T) {
	ctx := context.Background()

	t.Run("first add pays, re-add does not", func(t *testing.T) {
		env := newTestEnv(t)
		user := env.newUser(t, "Ana", "ana@example.com")
		before := env.balance(t, user.ID)

		require.NoError(t, env.engage.AddFavorite(ctx, user.ID, 1))
		assert.Equal(t, before+1, env.balance(t, user.ID))

		// Remove and re-add: ownership history does not reset the reward.
		require.NoError(t, env.engage.RemoveFavorite(ctx, user.ID, 1))
		require.NoError(t, env.engage.AddFavorite(ctx, user.ID, 1))
		assert.Equal(t, before+1, env.balance(t, user.ID))

		favorites, err := env.engage.ListFavorites(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, []int64{1}, favorites)
	})

	t.Run("remove and re-add cycles never pay again", func(t *testing.T) {
		env := newTestEnv(t)
		user := env.newUser(t, "Ana", "ana@example.com")
		before := env.balance(t, user.ID)

		for i := 0; i < 3; i++ {
			require.NoError(t, env.engage.AddFavorite(ctx, user.ID, 1))
			require.NoError(t, env.engage.RemoveFavorite(ctx, user.ID, 1))
		}
		require.NoError(t, env.engage.AddFavorite(ctx, user.ID, 1))

		assert.Equal(t, before+1, env.balance(t, user.ID))

		favorites, err := env.engage.ListFavorites(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, []int64{1}, favorites)
	})

	t.Run("removed favorite leaves the list", func(t *testing.T) {
		env := newTestEnv(t)
		user := env.newUser(t, "Ana", "ana@example.com")

		require.NoError(t, env.engage.AddFavorite(ctx, user.ID, 1))
		require.NoError(t, env.engage.RemoveFavorite(ctx, user.ID, 1))

		favorites, err := env.engage.ListFavorites(ctx, user.ID)
		require.NoError(t, err)
		assert.Empty(t, favorites)
	})

	t.Run("unknown movie", func(t *testing.T) {
		env := newTestEnv(t)
		user := env.newUser(t, "Ana", "ana@example.com")

		err := env.engage.AddFavorite(ctx, user.ID, 500)
		require.ErrorIs(t, err, service.ErrMovieNotFound)
	})
}

func TestEngagementService_Comments(t *testing.T) {
	ctx := context.Background()

	t.Run("comment pays and starts cooldown", func(t *testing.T) {
		env := newTestEnv(t)
		user := env.newUser(t, "Ana", "ana@example.com")
		before := env.balance(t, user.ID)

		comment, err := env.engage.AddComment(ctx, user, 1, "Gran película")
		require.NoError(t, err)
		assert.Equal(t, user.Name, comment.UserName)
		assert.Equal(t, before+1, env.balance(t, user.ID))

		// Second comment inside the cooldown window.
		_, err = env.engage.AddComment(ctx, user, 1, "Otra vez")
		require.ErrorIs(t, err, service.ErrCommentCooldown)
		assert.Equal(t, before+1, env.balance(t, user.ID))

		comments, err := env.engage.ListComments(ctx, 1)
		require.NoError(t, err)
		assert.Len(t, comments, 1)
	})

	t.Run("cooldown is per user", func(t *testing.T) {
		env := newTestEnv(t)
		ana := env.newUser(t, "Ana", "ana@example.com")
		leo := env.newUser(t, "Leo", "leo@example.com")

		_, err := env.engage.AddComment(ctx, ana, 1, "Primera")
		require.NoError(t, err)
		_, err = env.engage.AddComment(ctx, leo, 1, "Segunda")
		require.NoError(t, err)
	})
}

func TestEngagementService_Trailer(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	user := env.newUser(t, "Ana", "ana@example.com")
	before := env.balance(t, user.ID)

	rewarded, err := env.engage.WatchTrailer(ctx, user.ID, 1)
	require.NoError(t, err)
	assert.True(t, rewarded)
	assert.Equal(t, before+2, env.balance(t, user.ID))

	rewarded, err = env.engage.WatchTrailer(ctx, user.ID, 1)
	require.NoError(t, err)
	assert.False(t, rewarded)
	assert.Equal(t, before+2, env.balance(t, user.ID))

	// A different movie rewards again.
	rewarded, err = env.engage.WatchTrailer(ctx, user.ID, 2)
	require.NoError(t, err)
	assert.True(t, rewarded)
	assert.Equal(t, before+4, env.balance(t, user.ID))
}

func TestEngagementService_GameScores(t *testing.T) {
	ctx := context.Background()

	t.Run("payout is proportional to score", func(t *testing.T) {
		env := newTestEnv(t)
		user := env.newUser(t, "Ana", "ana@example.com")
		before := env.balance(t, user.ID)

		// Game 5 rewards 20 at a perfect score.
		record, err := env.engage.SubmitGameScore(ctx, user.ID, 5, 50)
		require.NoError(t, err)
		assert.Equal(t, int64(10), record.PointsEarned)
		assert.Equal(t, before+10, env.balance(t, user.ID))
	})

	t.Run("score is capped at 100", func(t *testing.T) {
		env := newTestEnv(t)
		user := env.newUser(t, "Ana", "ana@example.com")

		record, err := env.engage.SubmitGameScore(ctx, user.ID, 1, 250)
		require.NoError(t, err)
		assert.Equal(t, int64(100), record.Score)
		assert.Equal(t, int64(10), record.PointsEarned)
	})

	t.Run("every play pays", func(t *testing.T) {
		env := newTestEnv(t)
		user := env.newUser(t, "Ana", "ana@example.com")
		before := env.balance(t, user.ID)

		for i := 0; i < 3; i++ {
			_, err := env.engage.SubmitGameScore(ctx, user.ID, 2, 100)
			require.NoError(t, err)
		}
		assert.Equal(t, before+15, env.balance(t, user.ID))

		scores, err := env.engage.ListGameScores(ctx, user.ID)
		require.NoError(t, err)
		assert.Len(t, scores, 3)
	})

	t.Run("unknown game", func(t *testing.T) {
		env := newTestEnv(t)
		user := env.newUser(t, "Ana", "ana@example.com")

		_, err := env.engage.SubmitGameScore(ctx, user.ID, 99, 50)
		require.ErrorIs(t, err, service.ErrGameNotFound)
	})
}

func TestEngagementService_CommunityFeed(t *testing.T) {
	ctx := context.Background()

	t.Run("post pays, likes and replies do not", func(t *testing.T) {
		env := newTestEnv(t)
		user := env.newUser(t, "Ana", "ana@example.com")
		before := env.balance(t, user.ID)

		post, err := env.engage.CreatePost(ctx, user, "¿Cuál es su final favorito?")
		require.NoError(t, err)
		assert.Equal(t, before+5, env.balance(t, user.ID))

		require.NoError(t, env.engage.LikePost(ctx, post.ID))
		_, err = env.engage.AddPostComment(ctx, user, post.ID, "El de El Último Tren")
		require.NoError(t, err)
		assert.Equal(t, before+5, env.balance(t, user.ID))

		posts, err := env.engage.ListPosts(ctx, 10)
		require.NoError(t, err)
		require.Len(t, posts, 1)
		assert.Equal(t, int64(1), posts[0].Likes)

		replies, err := env.engage.ListPostComments(ctx, post.ID)
		require.NoError(t, err)
		assert.Len(t, replies, 1)
	})

	t.Run("liking a missing post", func(t *testing.T) {
		env := newTestEnv(t)
		err := env.engage.LikePost(ctx, 777)
		require.ErrorIs(t, err, service.ErrPostNotFound)
	})
}

func TestEngagementService_Movies(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	t.Run("static catalog resolves", func(t *testing.T) {
		movie, err := env.engage.MovieByID(ctx, 1)
		require.NoError(t, err)
		assert.NotEmpty(t, movie.Title)
	})

	t.Run("genre filter", func(t *testing.T) {
		all, err := env.engage.ListMovies(ctx, "")
		require.NoError(t, err)
		require.NotEmpty(t, all)

		filtered, err := env.engage.ListMovies(ctx, all[0].Genres[0])
		require.NoError(t, err)
		require.NotEmpty(t, filtered)
		assert.LessOrEqual(t, len(filtered), len(all))
	})
}
