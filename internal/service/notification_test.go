package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cinehub-rest-api/internal/model"
)

func TestNotificationService_Log(t *testing.T) {
	ctx := context.Background()

	t.Run("newest first with unread count", func(t *testing.T) {
		env := newTestEnv(t)
		user := env.newUser(t, "Ana", "ana@example.com")

		for _, title := range []string{"primera", "segunda", "tercera"} {
			require.NoError(t, env.notifier.Notify(ctx, model.Notification{
				UserID: user.ID,
				Type:   model.NotificationPointsEarned,
				Title:  title,
			}))
		}

		notifications, err := env.notifier.List(ctx, user.ID, 10)
		require.NoError(t, err)
		require.Len(t, notifications, 3)
		assert.Equal(t, "tercera", notifications[0].Title)
		assert.Equal(t, "primera", notifications[2].Title)

		unread, err := env.notifier.UnreadCount(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(3), unread)
	})

	t.Run("mark read is idempotent", func(t *testing.T) {
		env := newTestEnv(t)
		user := env.newUser(t, "Ana", "ana@example.com")

		require.NoError(t, env.notifier.Notify(ctx, model.Notification{
			UserID: user.ID, Type: model.NotificationPointsEarned, Title: "hola",
		}))

		notifications, err := env.notifier.List(ctx, user.ID, 10)
		require.NoError(t, err)
		id := notifications[0].ID

		require.NoError(t, env.notifier.MarkRead(ctx, id, user.ID))
		require.NoError(t, env.notifier.MarkRead(ctx, id, user.ID))
		// Unknown ids are a no-op too.
		require.NoError(t, env.notifier.MarkRead(ctx, 9999, user.ID))

		unread, err := env.notifier.UnreadCount(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(0), unread)
	})

	t.Run("mark all read", func(t *testing.T) {
		env := newTestEnv(t)
		user := env.newUser(t, "Ana", "ana@example.com")

		for i := 0; i < 4; i++ {
			require.NoError(t, env.notifier.Notify(ctx, model.Notification{
				UserID: user.ID, Type: model.NotificationPointsEarned, Title: "n",
			}))
		}

		require.NoError(t, env.notifier.MarkAllRead(ctx, user.ID))

		unread, err := env.notifier.UnreadCount(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(0), unread)
	})
}

func TestNotificationService_Subscribe(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	user := env.newUser(t, "Ana", "ana@example.com")

	ch, cancel := env.notifier.Subscribe(user.ID)
	defer cancel()
	assert.Equal(t, 1, env.notifier.SubscriberCount())

	require.NoError(t, env.notifier.Notify(ctx, model.Notification{
		UserID: user.ID, Type: model.NotificationPointsEarned, Title: "en vivo",
	}))

	select {
	case n := <-ch:
		assert.Equal(t, "en vivo", n.Title)
	case <-time.After(time.Second):
		t.Fatal("expected a streamed notification")
	}

	cancel()
	assert.Equal(t, 0, env.notifier.SubscriberCount())
}
