package model

import (
	"encoding/json"
	"fmt"
	"time"
)

// ItemType classifies a store item and decides which inventory bucket it
// lands in when purchased.
type ItemType string

const (
	ItemTypeTheme  ItemType = "theme"
	ItemTypeEmote  ItemType = "emote"
	ItemTypeAvatar ItemType = "avatar"
	ItemTypeOther  ItemType = "other"
)

// CustomItemIDStart is the first id available to admin-created store items.
// The static catalog owns everything below it.
const CustomItemIDStart int64 = 1001

// Valid reports whether t is a known item type.
func (t ItemType) Valid() bool {
	switch t {
	case ItemTypeTheme, ItemTypeEmote, ItemTypeAvatar, ItemTypeOther:
		return true
	}
	return false
}

// StoreItem is a purchasable cosmetic. Catalog entries are immutable;
// custom items (id >= CustomItemIDStart) are managed by admins.
type StoreItem struct {
	ID          int64           `json:"id"`
	Type        ItemType        `json:"type"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Image       string          `json:"image"`
	Cost        int64           `json:"cost"`
	Data        json.RawMessage `json:"data,omitempty"`
}

// ThemeData is the type-specific payload of a theme item.
type ThemeData struct {
	Name            string `json:"name"`
	PrimaryColor    string `json:"primaryColor"`
	SecondaryColor  string `json:"secondaryColor"`
	AccentColor     string `json:"accentColor"`
	BackgroundColor string `json:"backgroundColor"`
}

// ThemeDataOf decodes the theme payload of a theme-typed item.
func ThemeDataOf(item StoreItem) (ThemeData, error) {
	var d ThemeData
	if item.Type != ItemTypeTheme {
		return d, fmt.Errorf("item %d is not a theme", item.ID)
	}
	if err := json.Unmarshal(item.Data, &d); err != nil {
		return d, fmt.Errorf("invalid theme payload for item %d: %w", item.ID, err)
	}
	return d, nil
}

// Inventory is the set of cosmetics a user owns, partitioned by item type,
// plus the currently applied cosmetic of each slot. Badge and frame items
// are typed "other" and live in the Others bucket.
type Inventory struct {
	Themes      []int64 `json:"themes"`
	Emotes      []int64 `json:"emotes"`
	Avatars     []int64 `json:"avatars"`
	Others      []int64 `json:"others"`
	ActiveTheme *int64  `json:"activeTheme,omitempty"`
	ActiveBadge *int64  `json:"activeBadge,omitempty"`
	ActiveFrame *int64  `json:"activeFrame,omitempty"`
}

// NewInventory returns an empty inventory with all buckets allocated.
func NewInventory() Inventory {
	return Inventory{
		Themes:  []int64{},
		Emotes:  []int64{},
		Avatars: []int64{},
		Others:  []int64{},
	}
}

// Bucket returns a pointer to the bucket holding items of the given type.
func (inv *Inventory) Bucket(t ItemType) *[]int64 {
	switch t {
	case ItemTypeTheme:
		return &inv.Themes
	case ItemTypeEmote:
		return &inv.Emotes
	case ItemTypeAvatar:
		return &inv.Avatars
	default:
		return &inv.Others
	}
}

// Owns reports whether the item id is present in the bucket for its type.
func (inv *Inventory) Owns(t ItemType, itemID int64) bool {
	for _, id := range *inv.Bucket(t) {
		if id == itemID {
			return true
		}
	}
	return false
}

// Purchase is an append-only log record of a completed store purchase.
type Purchase struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"user_id"`
	ItemID      int64     `json:"item_id"`
	ItemName    string    `json:"item_name"`
	ItemType    ItemType  `json:"item_type"`
	Cost        int64     `json:"cost"`
	PurchasedAt time.Time `json:"purchased_at"`
}
