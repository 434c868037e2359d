package repository

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cinehub-rest-api/internal/model"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := OpenSQLite(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func insertUser(t *testing.T, repo *SQLiteUserRepository, email string) *model.User {
	t.Helper()
	u := &model.User{
		Name:         "Ana",
		Email:        email,
		PasswordHash: "hash",
		Points:       10,
		JoinDate:     "2026-08-30",
		Inventory:    model.NewInventory(),
		CreatedAt:    time.Now().UTC(),
	}
	require.NoError(t, repo.Create(context.Background(), u))
	return u
}

func TestSQLiteUserRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewSQLiteUserRepository(openTestDB(t))

	t.Run("round trip with inventory", func(t *testing.T) {
		u := insertUser(t, repo, "ana@example.com")
		require.NotZero(t, u.ID)

		u.Inventory.Themes = []int64{1, 2}
		active := int64(2)
		u.Inventory.ActiveTheme = &active
		require.NoError(t, repo.UpdateInventory(ctx, u.ID, u.Inventory))

		got, err := repo.GetByID(ctx, u.ID)
		require.NoError(t, err)
		assert.Equal(t, "ana@example.com", got.Email)
		assert.Equal(t, int64(10), got.Points)
		assert.Equal(t, []int64{1, 2}, got.Inventory.Themes)
		require.NotNil(t, got.Inventory.ActiveTheme)
		assert.Equal(t, int64(2), *got.Inventory.ActiveTheme)

		byEmail, err := repo.GetByEmail(ctx, "ana@example.com")
		require.NoError(t, err)
		assert.Equal(t, u.ID, byEmail.ID)
	})

	t.Run("duplicate email", func(t *testing.T) {
		insertUser(t, repo, "dup@example.com")
		u := &model.User{Name: "Otro", Email: "dup@example.com", Inventory: model.NewInventory(), CreatedAt: time.Now().UTC()}
		err := repo.Create(ctx, u)
		assert.ErrorIs(t, err, ErrDuplicateEmail)
	})

	t.Run("password hash lookup", func(t *testing.T) {
		insertUser(t, repo, "hash@example.com")
		hash, err := repo.PasswordHash(ctx, "hash@example.com")
		require.NoError(t, err)
		assert.Equal(t, "hash", hash)

		_, err = repo.PasswordHash(ctx, "nobody@example.com")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("add points", func(t *testing.T) {
		u := insertUser(t, repo, "points@example.com")
		require.NoError(t, repo.AddPoints(ctx, u.ID, 15))
		got, err := repo.GetByID(ctx, u.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(25), got.Points)

		assert.ErrorIs(t, repo.AddPoints(ctx, 9999, 5), ErrNotFound)
	})

	t.Run("set admin", func(t *testing.T) {
		u := insertUser(t, repo, "admin@example.com")
		assert.False(t, u.IsAdmin)

		require.NoError(t, repo.SetAdmin(ctx, "admin@example.com", true))
		got, err := repo.GetByID(ctx, u.ID)
		require.NoError(t, err)
		assert.True(t, got.IsAdmin)

		require.NoError(t, repo.SetAdmin(ctx, "admin@example.com", false))
		got, err = repo.GetByID(ctx, u.ID)
		require.NoError(t, err)
		assert.False(t, got.IsAdmin)

		assert.ErrorIs(t, repo.SetAdmin(ctx, "nobody@example.com", true), ErrNotFound)
	})

	t.Run("missing user", func(t *testing.T) {
		_, err := repo.GetByID(ctx, 424242)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestSQLiteNotificationRepository_Retention(t *testing.T) {
	ctx := context.Background()
	repo := NewSQLiteNotificationRepository(openTestDB(t))

	old := time.Now().UTC().Add(-40 * 24 * time.Hour)
	insert := func(title string, read bool, createdAt time.Time) *model.Notification {
		n := &model.Notification{
			UserID:    1,
			Type:      model.NotificationPointsEarned,
			Title:     title,
			Read:      read,
			CreatedAt: createdAt,
		}
		require.NoError(t, repo.Insert(ctx, n))
		return n
	}

	insert("vieja leída", true, old)
	insert("vieja sin leer", false, old)
	insert("reciente leída", true, time.Now().UTC())

	cutoff := time.Now().UTC().Add(-30 * 24 * time.Hour)
	deleted, err := repo.DeleteReadBefore(ctx, cutoff)
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	// Unread entries survive regardless of age.
	list, err := repo.ListByUser(ctx, 1, 50)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "reciente leída", list[0].Title)
	assert.Equal(t, "vieja sin leer", list[1].Title)
}

func TestSQLiteStoreRepository_CustomItemIDs(t *testing.T) {
	ctx := context.Background()
	repo := NewSQLiteStoreRepository(openTestDB(t))

	first := &model.StoreItem{Type: model.ItemTypeOther, Name: "Insignia VIP", Cost: 100}
	require.NoError(t, repo.CreateCustomItem(ctx, first))
	assert.Equal(t, int64(model.CustomItemIDStart), first.ID)

	second := &model.StoreItem{Type: model.ItemTypeOther, Name: "Marco Dorado", Cost: 200}
	require.NoError(t, repo.CreateCustomItem(ctx, second))
	assert.Equal(t, first.ID+1, second.ID)

	// IDs are never reused after a delete at the tail.
	require.NoError(t, repo.DeleteCustomItem(ctx, first.ID))
	third := &model.StoreItem{Type: model.ItemTypeOther, Name: "Emote Palomitas", Cost: 50}
	require.NoError(t, repo.CreateCustomItem(ctx, third))
	assert.Equal(t, second.ID+1, third.ID)

	got, err := repo.GetCustomItem(ctx, third.ID)
	require.NoError(t, err)
	assert.Equal(t, "Emote Palomitas", got.Name)

	_, err = repo.GetCustomItem(ctx, first.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}
