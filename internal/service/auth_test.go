package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cinehub-rest-api/internal/model"
	"cinehub-rest-api/internal/service"
)

func TestAuthService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("welcome grant and empty inventory", func(t *testing.T) {
		env := newTestEnv(t)

		user, token, err := env.auth.Register(ctx, "Ana", "ana@example.com", "secret")
		require.NoError(t, err)
		assert.NotZero(t, user.ID)
		assert.Equal(t, int64(10), user.Points)
		assert.Empty(t, user.Inventory.Themes)
		assert.Nil(t, user.Inventory.ActiveTheme)
		assert.False(t, user.IsAdmin)

		// The token opens a live session.
		session, err := env.sessions.Validate(ctx, token)
		require.NoError(t, err)
		assert.Equal(t, user.ID, session.UserID)
	})

	t.Run("email normalization and duplicates", func(t *testing.T) {
		env := newTestEnv(t)

		_, _, err := env.auth.Register(ctx, "Ana", "Ana@Example.com", "secret")
		require.NoError(t, err)

		_, _, err = env.auth.Register(ctx, "Otra", "ana@example.com", "secret")
		require.ErrorIs(t, err, service.ErrEmailTaken)
	})
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()

	t.Run("valid credentials open a session and notify", func(t *testing.T) {
		env := newTestEnv(t)
		user := env.newUser(t, "Ana", "ana@example.com")

		logged, token, err := env.auth.Login(ctx, "ana@example.com", "secret")
		require.NoError(t, err)
		assert.Equal(t, user.ID, logged.ID)
		assert.NotEmpty(t, token)

		notifications, err := env.notifier.List(ctx, user.ID, 10)
		require.NoError(t, err)
		require.NotEmpty(t, notifications)
		assert.Equal(t, model.NotificationLogin, notifications[0].Type)
	})

	t.Run("wrong password", func(t *testing.T) {
		env := newTestEnv(t)
		env.newUser(t, "Ana", "ana@example.com")

		_, _, err := env.auth.Login(ctx, "ana@example.com", "wrong")
		require.ErrorIs(t, err, service.ErrInvalidCredentials)
	})

	t.Run("unknown email looks like bad credentials", func(t *testing.T) {
		env := newTestEnv(t)

		_, _, err := env.auth.Login(ctx, "nobody@example.com", "secret")
		require.ErrorIs(t, err, service.ErrInvalidCredentials)
	})

	t.Run("lockout after three failures", func(t *testing.T) {
		env := newTestEnv(t)
		env.newUser(t, "Ana", "ana@example.com")

		for i := 0; i < 3; i++ {
			_, _, err := env.auth.Login(ctx, "ana@example.com", "wrong")
			require.ErrorIs(t, err, service.ErrInvalidCredentials)
		}

		// Even the correct password is locked out now.
		_, _, err := env.auth.Login(ctx, "ana@example.com", "secret")
		require.ErrorIs(t, err, service.ErrAccountLocked)
	})

	t.Run("successful login clears the failure counter", func(t *testing.T) {
		env := newTestEnv(t)
		env.newUser(t, "Ana", "ana@example.com")

		for i := 0; i < 2; i++ {
			_, _, err := env.auth.Login(ctx, "ana@example.com", "wrong")
			require.ErrorIs(t, err, service.ErrInvalidCredentials)
		}

		_, _, err := env.auth.Login(ctx, "ana@example.com", "secret")
		require.NoError(t, err)

		// Counter reset: two more failures do not lock.
		for i := 0; i < 2; i++ {
			_, _, err := env.auth.Login(ctx, "ana@example.com", "wrong")
			require.ErrorIs(t, err, service.ErrInvalidCredentials)
		}
		_, _, err = env.auth.Login(ctx, "ana@example.com", "secret")
		require.NoError(t, err)
	})
}

func TestAuthService_Logout(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	env.newUser(t, "Ana", "ana@example.com")

	_, token, err := env.auth.Login(ctx, "ana@example.com", "secret")
	require.NoError(t, err)

	require.NoError(t, env.auth.Logout(ctx, token))

	_, err = env.sessions.Validate(ctx, token)
	require.Error(t, err)
}
