package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cinehub-rest-api/internal/model"
	"cinehub-rest-api/internal/service"
)

func TestEconomyService_Purchase(t *testing.T) {
	ctx := context.Background()

	t.Run("insufficient points rejects without mutation", func(t *testing.T) {
		env := newTestEnv(t)
		user := env.newUser(t, "Ana", "ana@example.com")
		env.fund(t, user.ID, 30) // balance 40, theme 1 costs 50

		_, err := env.economy.Purchase(ctx, user.ID, 1)
		require.ErrorIs(t, err, service.ErrInsufficientPoints)

		assert.Equal(t, int64(40), env.balance(t, user.ID))

		fresh, err := env.users.GetByID(ctx, user.ID)
		require.NoError(t, err)
		assert.Empty(t, fresh.Inventory.Themes)

		purchases, err := env.store.ListPurchases(ctx, user.ID)
		require.NoError(t, err)
		assert.Empty(t, purchases)
	})

	t.Run("successful purchase deducts, grants and notifies", func(t *testing.T) {
		env := newTestEnv(t)
		user := env.newUser(t, "Ana", "ana@example.com")
		env.fund(t, user.ID, 50) // balance 60

		purchase, err := env.economy.Purchase(ctx, user.ID, 1)
		require.NoError(t, err)
		assert.Equal(t, int64(1), purchase.ItemID)
		assert.Equal(t, int64(50), purchase.Cost)

		assert.Equal(t, int64(10), env.balance(t, user.ID))

		fresh, err := env.users.GetByID(ctx, user.ID)
		require.NoError(t, err)
		assert.True(t, fresh.Inventory.Owns(model.ItemTypeTheme, 1))

		purchases, err := env.store.ListPurchases(ctx, user.ID)
		require.NoError(t, err)
		require.Len(t, purchases, 1)
		assert.Equal(t, "Tema Océano", purchases[0].ItemName)

		notifications, err := env.notifier.List(ctx, user.ID, 10)
		require.NoError(t, err)
		require.NotEmpty(t, notifications)
		assert.Equal(t, model.NotificationPurchase, notifications[0].Type)
		assert.False(t, notifications[0].Read)
	})

	t.Run("owned item cannot be bought twice", func(t *testing.T) {
		env := newTestEnv(t)
		user := env.newUser(t, "Ana", "ana@example.com")
		env.fund(t, user.ID, 200)

		_, err := env.economy.Purchase(ctx, user.ID, 1)
		require.NoError(t, err)

		_, err = env.economy.Purchase(ctx, user.ID, 1)
		require.ErrorIs(t, err, service.ErrAlreadyOwned)
		assert.Equal(t, int64(160), env.balance(t, user.ID))
	})

	t.Run("unknown item", func(t *testing.T) {
		env := newTestEnv(t)
		user := env.newUser(t, "Ana", "ana@example.com")

		_, err := env.economy.Purchase(ctx, user.ID, 999)
		require.ErrorIs(t, err, service.ErrItemNotFound)
	})

	t.Run("custom item purchase", func(t *testing.T) {
		env := newTestEnv(t)
		user := env.newUser(t, "Ana", "ana@example.com")
		env.fund(t, user.ID, 100)

		item := &model.StoreItem{Type: model.ItemTypeEmote, Name: "Custom", Cost: 30}
		require.NoError(t, env.store.CreateCustomItem(ctx, item))
		assert.GreaterOrEqual(t, item.ID, model.CustomItemIDStart)

		_, err := env.economy.Purchase(ctx, user.ID, item.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(80), env.balance(t, user.ID))
	})
}

func TestEconomyService_Cosmetics(t *testing.T) {
	ctx := context.Background()

	t.Run("apply theme returns CSS payload", func(t *testing.T) {
		env := newTestEnv(t)
		user := env.newUser(t, "Ana", "ana@example.com")
		env.fund(t, user.ID, 100)

		_, err := env.economy.Purchase(ctx, user.ID, 1)
		require.NoError(t, err)

		css, err := env.economy.ApplyCosmetic(ctx, user.ID, 1, service.SlotTheme)
		require.NoError(t, err)
		require.NotNil(t, css)
		assert.Equal(t, "theme-oceano", css.Class)
		assert.Equal(t, "#0ea5e9", css.Variables["--theme-primary"])
		assert.Equal(t, "#0c4a6e", css.Variables["--theme-secondary"])
		assert.Equal(t, "#38bdf8", css.Variables["--theme-accent"])
		assert.Equal(t, "#020617", css.Variables["--theme-bg"])

		active, err := env.economy.ActiveThemeCSS(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, "theme-oceano", active.Class)
	})

	t.Run("unowned theme cannot be applied", func(t *testing.T) {
		env := newTestEnv(t)
		user := env.newUser(t, "Ana", "ana@example.com")

		_, err := env.economy.ApplyCosmetic(ctx, user.ID, 1, service.SlotTheme)
		require.ErrorIs(t, err, service.ErrNotOwned)
	})

	t.Run("wrong slot rejected", func(t *testing.T) {
		env := newTestEnv(t)
		user := env.newUser(t, "Ana", "ana@example.com")
		env.fund(t, user.ID, 100)

		_, err := env.economy.Purchase(ctx, user.ID, 1)
		require.NoError(t, err)

		_, err = env.economy.ApplyCosmetic(ctx, user.ID, 1, service.SlotBadge)
		require.ErrorIs(t, err, service.ErrWrongSlot)
	})

	t.Run("reset theme returns to default", func(t *testing.T) {
		env := newTestEnv(t)
		user := env.newUser(t, "Ana", "ana@example.com")
		env.fund(t, user.ID, 100)

		_, err := env.economy.Purchase(ctx, user.ID, 1)
		require.NoError(t, err)
		_, err = env.economy.ApplyCosmetic(ctx, user.ID, 1, service.SlotTheme)
		require.NoError(t, err)

		require.NoError(t, env.economy.ResetCosmetic(ctx, user.ID, service.SlotTheme))

		css, err := env.economy.ActiveThemeCSS(ctx, user.ID)
		require.NoError(t, err)
		assert.Empty(t, css.Class)
		assert.Empty(t, css.Variables)
	})

	t.Run("avatar apply sets profile image", func(t *testing.T) {
		env := newTestEnv(t)
		user := env.newUser(t, "Ana", "ana@example.com")
		env.fund(t, user.ID, 100)

		_, err := env.economy.Purchase(ctx, user.ID, 20)
		require.NoError(t, err)

		css, err := env.economy.ApplyCosmetic(ctx, user.ID, 20, service.SlotAvatar)
		require.NoError(t, err)
		assert.Nil(t, css)

		fresh, err := env.users.GetByID(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, "/images/avatars/director.png", fresh.Avatar)
	})
}

func TestEconomyService_EarnPoints(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	user := env.newUser(t, "Ana", "ana@example.com")

	require.NoError(t, env.economy.EarnPoints(ctx, user.ID, 25, "test"))
	assert.Equal(t, int64(35), env.balance(t, user.ID))

	// Non-positive amounts are a no-op.
	require.NoError(t, env.economy.EarnPoints(ctx, user.ID, 0, "test"))
	assert.Equal(t, int64(35), env.balance(t, user.ID))

	require.ErrorIs(t, env.economy.EarnPoints(ctx, 9999, 5, "test"), service.ErrUserNotFound)
}
