package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"cinehub-rest-api/internal/model"
)

// SQLiteStoreRepository implements StoreRepository using SQLite.
type SQLiteStoreRepository struct {
	db *sql.DB
	mu sync.RWMutex
}

// NewSQLiteStoreRepository creates a new SQLite store repository.
func NewSQLiteStoreRepository(db *sql.DB) *SQLiteStoreRepository {
	return &SQLiteStoreRepository{db: db}
}

// CreateCustomItem inserts an admin-created item. Ids are allocated above
// the static catalog's reserved range.
func (r *SQLiteStoreRepository) CreateCustomItem(ctx context.Context, item *model.StoreItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	data := item.Data
	if len(data) == 0 {
		data = json.RawMessage("{}")
	}

	query := `
		INSERT INTO custom_store_items (id, type, name, description, image, cost, data)
		VALUES ((SELECT COALESCE(MAX(id) + 1, ?) FROM custom_store_items), ?, ?, ?, ?, ?, ?)`

	res, err := r.db.ExecContext(ctx, query,
		model.CustomItemIDStart, string(item.Type), item.Name, item.Description, item.Image, item.Cost, string(data))
	if err != nil {
		return fmt.Errorf("failed to create custom item: %w", err)
	}

	item.ID, err = res.LastInsertId()
	return err
}

// UpdateCustomItem replaces a custom item's fields.
func (r *SQLiteStoreRepository) UpdateCustomItem(ctx context.Context, item model.StoreItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	query := `UPDATE custom_store_items SET type = ?, name = ?, description = ?, image = ?, cost = ?, data = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		string(item.Type), item.Name, item.Description, item.Image, item.Cost, string(item.Data), item.ID)
	if err != nil {
		return fmt.Errorf("failed to update custom item: %w", err)
	}
	return requireRow(res)
}

// DeleteCustomItem removes a custom item.
func (r *SQLiteStoreRepository) DeleteCustomItem(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	res, err := r.db.ExecContext(ctx, `DELETE FROM custom_store_items WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete custom item: %w", err)
	}
	return requireRow(res)
}

// GetCustomItem retrieves a custom item by id.
func (r *SQLiteStoreRepository) GetCustomItem(ctx context.Context, id int64) (*model.StoreItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	query := `SELECT id, type, name, description, image, cost, data FROM custom_store_items WHERE id = ?`
	return scanStoreItem(r.db.QueryRowContext(ctx, query, id))
}

// ListCustomItems returns all custom items.
func (r *SQLiteStoreRepository) ListCustomItems(ctx context.Context) ([]model.StoreItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rows, err := r.db.QueryContext(ctx,
		`SELECT id, type, name, description, image, cost, data FROM custom_store_items ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list custom items: %w", err)
	}
	defer rows.Close()

	items := []model.StoreItem{}
	for rows.Next() {
		var it model.StoreItem
		var typ, data string
		if err := rows.Scan(&it.ID, &typ, &it.Name, &it.Description, &it.Image, &it.Cost, &data); err != nil {
			return nil, err
		}
		it.Type = model.ItemType(typ)
		it.Data = json.RawMessage(data)
		items = append(items, it)
	}
	return items, rows.Err()
}

// RecordPurchase applies the whole purchase in one transaction. The balance
// deduction is guarded in SQL, so the balance can never go negative even if
// the caller's precondition check raced a concurrent request.
func (r *SQLiteStoreRepository) RecordPurchase(ctx context.Context, userID int64, item model.StoreItem, updatedInv model.Inventory, n model.Notification) (*model.Purchase, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	invJSON, err := json.Marshal(updatedInv)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal inventory: %w", err)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		`UPDATE users SET points = points - ? WHERE id = ? AND points >= ?`,
		item.Cost, userID, item.Cost)
	if err != nil {
		return nil, fmt.Errorf("failed to deduct points: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, ErrInsufficientPoints
	}

	if _, err := tx.ExecContext(ctx,
		`UPDATE users SET inventory_json = ? WHERE id = ?`, string(invJSON), userID); err != nil {
		return nil, fmt.Errorf("failed to update inventory: %w", err)
	}

	now := time.Now().UTC()
	purchase := &model.Purchase{
		UserID:      userID,
		ItemID:      item.ID,
		ItemName:    item.Name,
		ItemType:    item.Type,
		Cost:        item.Cost,
		PurchasedAt: now,
	}

	res, err = tx.ExecContext(ctx,
		`INSERT INTO purchases (user_id, item_id, item_name, item_type, cost, purchased_at) VALUES (?, ?, ?, ?, ?, ?)`,
		purchase.UserID, purchase.ItemID, purchase.ItemName, string(purchase.ItemType), purchase.Cost, purchase.PurchasedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to record purchase: %w", err)
	}
	purchase.ID, err = res.LastInsertId()
	if err != nil {
		return nil, err
	}

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO notifications (user_id, type, title, message, read, created_at, data) VALUES (?, ?, ?, ?, 0, ?, ?)`,
		n.UserID, string(n.Type), n.Title, n.Message, now, nullableJSON(n.Data)); err != nil {
		return nil, fmt.Errorf("failed to insert notification: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit purchase: %w", err)
	}
	return purchase, nil
}

// ListPurchases returns a user's purchases, newest first.
func (r *SQLiteStoreRepository) ListPurchases(ctx context.Context, userID int64) ([]model.Purchase, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rows, err := r.db.QueryContext(ctx,
		`SELECT id, user_id, item_id, item_name, item_type, cost, purchased_at
		 FROM purchases WHERE user_id = ? ORDER BY purchased_at DESC, id DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list purchases: %w", err)
	}
	defer rows.Close()

	purchases := []model.Purchase{}
	for rows.Next() {
		var p model.Purchase
		var typ string
		if err := rows.Scan(&p.ID, &p.UserID, &p.ItemID, &p.ItemName, &typ, &p.Cost, &p.PurchasedAt); err != nil {
			return nil, err
		}
		p.ItemType = model.ItemType(typ)
		purchases = append(purchases, p)
	}
	return purchases, rows.Err()
}

// CountPurchases returns the total number of purchases.
func (r *SQLiteStoreRepository) CountPurchases(ctx context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var count int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM purchases`).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func scanStoreItem(row *sql.Row) (*model.StoreItem, error) {
	var it model.StoreItem
	var typ, data string

	err := row.Scan(&it.ID, &typ, &it.Name, &it.Description, &it.Image, &it.Cost, &data)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan store item: %w", err)
	}
	it.Type = model.ItemType(typ)
	it.Data = json.RawMessage(data)
	return &it, nil
}

// nullableJSON converts an empty payload into SQL NULL.
func nullableJSON(data json.RawMessage) interface{} {
	if len(data) == 0 {
		return nil
	}
	return string(data)
}

// Ensure SQLiteStoreRepository implements StoreRepository
var _ StoreRepository = (*SQLiteStoreRepository)(nil)
