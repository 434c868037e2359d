package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"cinehub-rest-api/internal/catalog"
	"cinehub-rest-api/internal/config"
	"cinehub-rest-api/internal/metrics"
	"cinehub-rest-api/internal/model"
	"cinehub-rest-api/internal/repository"
)

// CosmeticSlot names an equippable slot on a user profile.
type CosmeticSlot string

const (
	SlotTheme  CosmeticSlot = "theme"
	SlotBadge  CosmeticSlot = "badge"
	SlotFrame  CosmeticSlot = "frame"
	SlotAvatar CosmeticSlot = "avatar"
)

// ThemeCSS is the rendering payload of an applied theme: the CSS custom
// properties for the document root plus the theme class. An empty payload
// (no variables, no class) means no theme is applied.
type ThemeCSS struct {
	Variables map[string]string `json:"variables"`
	Class     string            `json:"class"`
}

// EconomyService governs point balances, ownership checks and inventory
// placement. It is the only code path that spends points.
type EconomyService struct {
	users    repository.UserRepository
	store    repository.StoreRepository
	notifier *NotificationService
	audit    repository.AuditRepository // optional
	cfg      config.EconomyConfig
}

// NewEconomyService creates a new economy service. audit may be nil.
func NewEconomyService(
	users repository.UserRepository,
	store repository.StoreRepository,
	notifier *NotificationService,
	audit repository.AuditRepository,
	cfg config.EconomyConfig,
) *EconomyService {
	return &EconomyService{
		users:    users,
		store:    store,
		notifier: notifier,
		audit:    audit,
		cfg:      cfg,
	}
}

// ItemByID resolves a store item from the static catalog or the custom
// item table.
func (s *EconomyService) ItemByID(ctx context.Context, id int64) (model.StoreItem, error) {
	if item, ok := catalog.StoreItemByID(id); ok {
		return item, nil
	}
	item, err := s.store.GetCustomItem(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.StoreItem{}, ErrItemNotFound
		}
		return model.StoreItem{}, err
	}
	return *item, nil
}

// ListItems returns the full store catalog: static items plus custom items.
func (s *EconomyService) ListItems(ctx context.Context) ([]model.StoreItem, error) {
	custom, err := s.store.ListCustomItems(ctx)
	if err != nil {
		return nil, err
	}
	items := append([]model.StoreItem{}, catalog.StoreItems()...)
	return append(items, custom...), nil
}

// Purchase gates and applies a store purchase. Both failure paths reject
// before any mutation; the success path is a single transaction.
func (s *EconomyService) Purchase(ctx context.Context, userID, itemID int64) (*model.Purchase, error) {
	user, err := s.userByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	item, err := s.ItemByID(ctx, itemID)
	if err != nil {
		return nil, err
	}

	if user.Points < item.Cost {
		return nil, ErrInsufficientPoints
	}
	if user.Inventory.Owns(item.Type, item.ID) {
		return nil, ErrAlreadyOwned
	}

	updatedInv := user.Inventory
	bucket := updatedInv.Bucket(item.Type)
	*bucket = append(append([]int64{}, *bucket...), item.ID)

	data, _ := json.Marshal(map[string]interface{}{"itemId": item.ID, "itemName": item.Name})
	notification := model.Notification{
		UserID:  user.ID,
		Type:    model.NotificationPurchase,
		Title:   "¡Compra realizada!",
		Message: fmt.Sprintf("Has comprado %s por %d puntos", item.Name, item.Cost),
		Data:    data,
	}

	purchase, err := s.store.RecordPurchase(ctx, user.ID, item, updatedInv, notification)
	if err != nil {
		if errors.Is(err, repository.ErrInsufficientPoints) {
			return nil, ErrInsufficientPoints
		}
		return nil, err
	}

	metrics.PurchasesTotal.Inc()
	metrics.PointsSpentTotal.Add(float64(item.Cost))
	s.notifier.Broadcast(notification)
	s.recordAudit(ctx, user.ID, model.PointEventSpend, item.Cost, "purchase:"+item.Name)

	log.Printf("[EconomyService] user_id=%d purchased item_id=%d (%s) for %d points",
		user.ID, item.ID, item.Name, item.Cost)
	return purchase, nil
}

// ApplyCosmetic equips an owned item into a slot. Themes return the CSS
// payload the client writes to the document root.
func (s *EconomyService) ApplyCosmetic(ctx context.Context, userID, itemID int64, slot CosmeticSlot) (*ThemeCSS, error) {
	user, err := s.userByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	item, err := s.ItemByID(ctx, itemID)
	if err != nil {
		return nil, err
	}

	requiredType, err := slotItemType(slot)
	if err != nil {
		return nil, err
	}
	if item.Type != requiredType {
		return nil, ErrWrongSlot
	}
	if !user.Inventory.Owns(item.Type, item.ID) {
		return nil, ErrNotOwned
	}

	if slot == SlotAvatar {
		// Avatars have no active slot; equipping one replaces the
		// profile image directly.
		var payload struct {
			URL string `json:"url"`
		}
		_ = json.Unmarshal(item.Data, &payload)
		avatar := payload.URL
		if avatar == "" {
			avatar = item.Image
		}
		if err := s.users.UpdateAvatar(ctx, user.ID, avatar); err != nil {
			return nil, err
		}
		return nil, nil
	}

	inv := user.Inventory
	id := item.ID
	switch slot {
	case SlotTheme:
		inv.ActiveTheme = &id
	case SlotBadge:
		inv.ActiveBadge = &id
	case SlotFrame:
		inv.ActiveFrame = &id
	}

	if err := s.users.UpdateInventory(ctx, user.ID, inv); err != nil {
		return nil, err
	}

	if slot == SlotTheme {
		css, err := ThemeCSSFor(item)
		if err != nil {
			return nil, err
		}
		return &css, nil
	}
	return nil, nil
}

// ResetCosmetic clears a slot. Resetting the theme also returns the client
// to the default styling (empty CSS payload).
func (s *EconomyService) ResetCosmetic(ctx context.Context, userID int64, slot CosmeticSlot) error {
	user, err := s.userByID(ctx, userID)
	if err != nil {
		return err
	}

	inv := user.Inventory
	switch slot {
	case SlotTheme:
		inv.ActiveTheme = nil
	case SlotBadge:
		inv.ActiveBadge = nil
	case SlotFrame:
		inv.ActiveFrame = nil
	case SlotAvatar:
		return s.users.UpdateAvatar(ctx, user.ID, "")
	default:
		return ErrWrongSlot
	}

	return s.users.UpdateInventory(ctx, user.ID, inv)
}

// ActiveThemeCSS returns the CSS payload for the user's active theme, or an
// empty payload when no theme is applied.
func (s *EconomyService) ActiveThemeCSS(ctx context.Context, userID int64) (ThemeCSS, error) {
	user, err := s.userByID(ctx, userID)
	if err != nil {
		return ThemeCSS{}, err
	}

	if user.Inventory.ActiveTheme == nil {
		return ThemeCSS{Variables: map[string]string{}}, nil
	}

	item, err := s.ItemByID(ctx, *user.Inventory.ActiveTheme)
	if err != nil {
		// Dangling reference to a deleted custom theme; render default.
		if errors.Is(err, ErrItemNotFound) {
			return ThemeCSS{Variables: map[string]string{}}, nil
		}
		return ThemeCSS{}, err
	}
	return ThemeCSSFor(item)
}

// EarnPoints unconditionally credits points. No upper bound is enforced;
// unbounded accumulation is accepted behavior.
func (s *EconomyService) EarnPoints(ctx context.Context, userID, amount int64, reason string) error {
	if amount <= 0 {
		return nil
	}
	if err := s.users.AddPoints(ctx, userID, amount); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	metrics.PointsAwardedTotal.Add(float64(amount))
	s.recordAudit(ctx, userID, model.PointEventEarn, amount, reason)
	return nil
}

// RecordReward mirrors an already-applied credit to the audit log. For flows
// that move points inside their own repository transaction and cannot go
// through EarnPoints.
func (s *EconomyService) RecordReward(ctx context.Context, userID, amount int64, reason string) {
	s.recordAudit(ctx, userID, model.PointEventEarn, amount, reason)
}

// Config exposes the economy constants to other services.
func (s *EconomyService) Config() config.EconomyConfig {
	return s.cfg
}

func (s *EconomyService) userByID(ctx context.Context, userID int64) (*model.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// recordAudit mirrors a point movement to the audit log, best effort.
func (s *EconomyService) recordAudit(ctx context.Context, userID int64, kind model.PointEventKind, amount int64, reason string) {
	if s.audit == nil {
		return
	}
	ev := model.PointEvent{
		UserID:    userID,
		Kind:      kind,
		Amount:    amount,
		Reason:    reason,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.audit.RecordPointEvent(ctx, ev); err != nil {
		log.Printf("[EconomyService] audit write failed: %v", err)
	}
}

// ThemeCSSFor computes the document-root payload of a theme item: the four
// color variables and the theme class.
func ThemeCSSFor(item model.StoreItem) (ThemeCSS, error) {
	data, err := model.ThemeDataOf(item)
	if err != nil {
		return ThemeCSS{}, err
	}
	return ThemeCSS{
		Variables: map[string]string{
			"--theme-primary":   data.PrimaryColor,
			"--theme-secondary": data.SecondaryColor,
			"--theme-accent":    data.AccentColor,
			"--theme-bg":        data.BackgroundColor,
		},
		Class: "theme-" + data.Name,
	}, nil
}

func slotItemType(slot CosmeticSlot) (model.ItemType, error) {
	switch slot {
	case SlotTheme:
		return model.ItemTypeTheme, nil
	case SlotBadge, SlotFrame:
		// Badge and frame items are typed "other".
		return model.ItemTypeOther, nil
	case SlotAvatar:
		return model.ItemTypeAvatar, nil
	default:
		return "", ErrWrongSlot
	}
}
