package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevelFor(t *testing.T) {
	tests := []struct {
		points int64
		want   string
	}{
		{0, "Novato"},
		{49, "Novato"},
		{50, "Aficionado"},
		{149, "Aficionado"},
		{150, "Cinéfilo"},
		{399, "Cinéfilo"},
		{400, "Crítico"},
		{999, "Crítico"},
		{1000, "Leyenda"},
		{50000, "Leyenda"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, LevelFor(tt.points).Name, "points=%d", tt.points)
	}
}

func TestInventory_Buckets(t *testing.T) {
	inv := NewInventory()

	*inv.Bucket(ItemTypeTheme) = append(*inv.Bucket(ItemTypeTheme), 1)
	*inv.Bucket(ItemTypeEmote) = append(*inv.Bucket(ItemTypeEmote), 10)
	*inv.Bucket(ItemTypeOther) = append(*inv.Bucket(ItemTypeOther), 30)

	assert.True(t, inv.Owns(ItemTypeTheme, 1))
	assert.False(t, inv.Owns(ItemTypeTheme, 2))
	assert.True(t, inv.Owns(ItemTypeEmote, 10))
	assert.True(t, inv.Owns(ItemTypeOther, 30))
	// Ownership is per bucket: the same id in another bucket does not count.
	assert.False(t, inv.Owns(ItemTypeAvatar, 1))
}

func TestInventory_JSONRoundTrip(t *testing.T) {
	inv := NewInventory()
	inv.Themes = []int64{1, 3}
	active := int64(3)
	inv.ActiveTheme = &active

	data, err := json.Marshal(inv)
	require.NoError(t, err)

	var decoded Inventory
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, inv.Themes, decoded.Themes)
	require.NotNil(t, decoded.ActiveTheme)
	assert.Equal(t, int64(3), *decoded.ActiveTheme)
	assert.Nil(t, decoded.ActiveBadge)
}

func TestThemeDataOf(t *testing.T) {
	t.Run("valid theme payload", func(t *testing.T) {
		item := StoreItem{
			ID: 1, Type: ItemTypeTheme,
			Data: json.RawMessage(`{"name":"oceano","primaryColor":"#0ea5e9","secondaryColor":"#0c4a6e","accentColor":"#38bdf8","backgroundColor":"#020617"}`),
		}

		data, err := ThemeDataOf(item)
		require.NoError(t, err)
		assert.Equal(t, "oceano", data.Name)
		assert.Equal(t, "#0ea5e9", data.PrimaryColor)
	})

	t.Run("non-theme item", func(t *testing.T) {
		_, err := ThemeDataOf(StoreItem{ID: 10, Type: ItemTypeEmote})
		require.Error(t, err)
	})

	t.Run("malformed payload", func(t *testing.T) {
		_, err := ThemeDataOf(StoreItem{ID: 1, Type: ItemTypeTheme, Data: json.RawMessage(`nope`)})
		require.Error(t, err)
	})
}

func TestItemType_Valid(t *testing.T) {
	assert.True(t, ItemTypeTheme.Valid())
	assert.True(t, ItemTypeOther.Valid())
	assert.False(t, ItemType("weapon").Valid())
	assert.False(t, ItemType("").Valid())
}
