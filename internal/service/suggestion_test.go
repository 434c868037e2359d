package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cinehub-rest-api/internal/model"
	"cinehub-rest-api/internal/service"
)

func testDraft() model.SuggestionDraft {
	return model.SuggestionDraft{
		Title:       "El Proyector Fantasma",
		Description: "Un cine abandonado proyecta películas que nadie filmó.",
		Year:        2023,
		Duration:    "1h 48min",
		Genres:      []string{"Terror", "Misterio"},
		Cast:        []string{"Lucía Prado"},
		Director:    "R. Ibáñez",
	}
}

func TestSuggestionService_Submit(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	user := env.newUser(t, "Ana", "ana@example.com")

	suggestion, err := env.suggest.Submit(ctx, user.ID, user.Name, testDraft())
	require.NoError(t, err)
	assert.Equal(t, model.SuggestionPending, suggestion.Status)
	assert.Nil(t, suggestion.ReviewedAt)

	mine, err := env.suggest.ListByUser(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, mine, 1)

	notifications, err := env.notifier.List(ctx, user.ID, 10)
	require.NoError(t, err)
	require.NotEmpty(t, notifications)
	assert.Equal(t, model.NotificationSuggestionReceived, notifications[0].Type)
}

func TestSuggestionService_Approve(t *testing.T) {
	ctx := context.Background()

	t.Run("approval publishes movie and pays reward once", func(t *testing.T) {
		env := newTestEnv(t)
		user := env.newUser(t, "Ana", "ana@example.com")
		admin := env.newUser(t, "Mod", "mod@example.com")

		suggestion, err := env.suggest.Submit(ctx, user.ID, user.Name, testDraft())
		require.NoError(t, err)

		before := env.balance(t, user.ID)

		reviewed, err := env.suggest.Approve(ctx, suggestion.ID, admin.ID)
		require.NoError(t, err)
		assert.Equal(t, model.SuggestionApproved, reviewed.Status)
		require.NotNil(t, reviewed.ReviewedBy)
		assert.Equal(t, admin.ID, *reviewed.ReviewedBy)
		assert.NotNil(t, reviewed.ReviewedAt)

		// +10 reward, exactly once.
		assert.Equal(t, before+10, env.balance(t, user.ID))

		movies, err := env.movies.List(ctx)
		require.NoError(t, err)
		require.Len(t, movies, 1)
		assert.Equal(t, suggestion.Title, movies[0].Title)
		assert.Equal(t, 4.0, movies[0].Rating)
		assert.GreaterOrEqual(t, movies[0].ID, int64(10001))

		notifications, err := env.notifier.List(ctx, user.ID, 10)
		require.NoError(t, err)
		assert.Equal(t, model.NotificationSuggestionApproved, notifications[0].Type)

		// The reward shows up in the audit stream like any other credit.
		events, err := env.audit.RecentEvents(ctx, 10)
		require.NoError(t, err)
		require.Len(t, events, 1)
		assert.Equal(t, user.ID, events[0].UserID)
		assert.Equal(t, model.PointEventEarn, events[0].Kind)
		assert.Equal(t, int64(10), events[0].Amount)
		assert.Equal(t, "suggestion:"+suggestion.Title, events[0].Reason)
	})

	t.Run("second review of any kind is rejected", func(t *testing.T) {
		env := newTestEnv(t)
		user := env.newUser(t, "Ana", "ana@example.com")
		admin := env.newUser(t, "Mod", "mod@example.com")

		suggestion, err := env.suggest.Submit(ctx, user.ID, user.Name, testDraft())
		require.NoError(t, err)

		_, err = env.suggest.Approve(ctx, suggestion.ID, admin.ID)
		require.NoError(t, err)

		balanceAfterFirst := env.balance(t, user.ID)

		_, err = env.suggest.Approve(ctx, suggestion.ID, admin.ID)
		require.ErrorIs(t, err, service.ErrAlreadyReviewed)
		_, err = env.suggest.Reject(ctx, suggestion.ID, admin.ID)
		require.ErrorIs(t, err, service.ErrAlreadyReviewed)

		// No double reward, no second movie.
		assert.Equal(t, balanceAfterFirst, env.balance(t, user.ID))
		movies, err := env.movies.List(ctx)
		require.NoError(t, err)
		assert.Len(t, movies, 1)
	})

	t.Run("unknown suggestion", func(t *testing.T) {
		env := newTestEnv(t)
		admin := env.newUser(t, "Mod", "mod@example.com")

		_, err := env.suggest.Approve(ctx, 12345, admin.ID)
		require.ErrorIs(t, err, service.ErrSuggestionNotFound)
	})
}

func TestSuggestionService_Reject(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	user := env.newUser(t, "Ana", "ana@example.com")
	admin := env.newUser(t, "Mod", "mod@example.com")

	suggestion, err := env.suggest.Submit(ctx, user.ID, user.Name, testDraft())
	require.NoError(t, err)

	before := env.balance(t, user.ID)

	reviewed, err := env.suggest.Reject(ctx, suggestion.ID, admin.ID)
	require.NoError(t, err)
	assert.Equal(t, model.SuggestionRejected, reviewed.Status)

	// Rejection pays nothing and publishes nothing.
	assert.Equal(t, before, env.balance(t, user.ID))
	movies, err := env.movies.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, movies)

	notifications, err := env.notifier.List(ctx, user.ID, 10)
	require.NoError(t, err)
	assert.Equal(t, model.NotificationSuggestionRejected, notifications[0].Type)
}
