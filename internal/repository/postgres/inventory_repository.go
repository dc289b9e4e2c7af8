// internal/repository/postgres/inventory_repository.go
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/chesters/restock-backend/internal/domain"
)

type inventoryRepository struct {
	db *DB
}

func NewInventoryRepository(db *DB) *inventoryRepository {
	return &inventoryRepository{db: db}
}

func (r *inventoryRepository) ListItems(ctx context.Context) ([]domain.Item, error) {
	query := `
		SELECT id, name, category, COALESCE(supplier, '') AS supplier, unit,
			COALESCE(location, '') AS location, week_par, weekend_par,
			threshold, daily_usage, COALESCE(cost, 0) AS cost,
			created_at, updated_at
		FROM items
		ORDER BY name
	`

	items := make([]domain.Item, 0)
	if err := r.db.SelectContext(ctx, &items, query); err != nil {
		return nil, fmt.Errorf("%w: listing items: %v", domain.ErrStoreUnavailable, err)
	}

	return items, nil
}

func (r *inventoryRepository) GetItem(ctx context.Context, id string) (*domain.Item, error) {
	query := `
		SELECT id, name, category, COALESCE(supplier, '') AS supplier, unit,
			COALESCE(location, '') AS location, week_par, weekend_par,
			threshold, daily_usage, COALESCE(cost, 0) AS cost,
			created_at, updated_at
		FROM items
		WHERE id = $1
	`

	var item domain.Item
	err := r.db.GetContext(ctx, &item, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrItemNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: getting item %s: %v", domain.ErrStoreUnavailable, id, err)
	}

	return &item, nil
}

func (r *inventoryRepository) CreateItem(ctx context.Context, item *domain.Item) error {
	query := `
		INSERT INTO items (
			id, name, category, supplier, unit, location,
			week_par, weekend_par, threshold, daily_usage, cost,
			created_at, updated_at
		) VALUES ($1, $2, $3, NULLIF($4, ''), $5, $6, $7, $8, $9, $10, $11, NOW(), NOW())
	`

	_, err := r.db.ExecContext(ctx, query,
		item.ID, item.Name, item.Category, item.Supplier, item.Unit, item.Location,
		item.WeekPar, item.WeekendPar, item.Threshold, item.DailyUsage, item.Cost,
	)
	if err != nil {
		return fmt.Errorf("failed to insert item %s: %w", item.ID, err)
	}

	return nil
}

func (r *inventoryRepository) UpdateItem(ctx context.Context, item *domain.Item) error {
	query := `
		UPDATE items SET
			name = $2, category = $3, supplier = NULLIF($4, ''), unit = $5, location = $6,
			week_par = $7, weekend_par = $8, threshold = $9, daily_usage = $10,
			cost = $11, updated_at = NOW()
		WHERE id = $1
	`

	res, err := r.db.ExecContext(ctx, query,
		item.ID, item.Name, item.Category, item.Supplier, item.Unit, item.Location,
		item.WeekPar, item.WeekendPar, item.Threshold, item.DailyUsage, item.Cost,
	)
	if err != nil {
		return fmt.Errorf("failed to update item %s: %w", item.ID, err)
	}

	if rows, err := res.RowsAffected(); err == nil && rows == 0 {
		return domain.ErrItemNotFound
	}

	return nil
}

func (r *inventoryRepository) DeleteItem(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete item %s: %w", id, err)
	}

	if rows, err := res.RowsAffected(); err == nil && rows == 0 {
		return domain.ErrItemNotFound
	}

	return nil
}

func (r *inventoryRepository) ListCategories(ctx context.Context) ([]domain.Category, error) {
	categories := make([]domain.Category, 0)
	query := `SELECT id, name FROM categories ORDER BY name`
	if err := r.db.SelectContext(ctx, &categories, query); err != nil {
		return nil, fmt.Errorf("%w: listing categories: %v", domain.ErrStoreUnavailable, err)
	}

	return categories, nil
}

func (r *inventoryRepository) ListSuppliers(ctx context.Context) ([]domain.Supplier, error) {
	suppliers := make([]domain.Supplier, 0)
	query := `
		SELECT id, name, COALESCE(contact, '') AS contact, COALESCE(phone, '') AS phone
		FROM suppliers
		ORDER BY name
	`
	if err := r.db.SelectContext(ctx, &suppliers, query); err != nil {
		return nil, fmt.Errorf("%w: listing suppliers: %v", domain.ErrStoreUnavailable, err)
	}

	return suppliers, nil
}

// LatestCounts fetches the newest observation per item in one query instead
// of one round trip per item.
func (r *inventoryRepository) LatestCounts(ctx context.Context) (map[string]domain.LatestCount, error) {
	query := `
		SELECT DISTINCT ON (item_id) item_id, count, counted_at
		FROM inventory_counts
		ORDER BY item_id, counted_at DESC
	`

	var rows []domain.LatestCount
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("%w: loading latest counts: %v", domain.ErrStoreUnavailable, err)
	}

	counts := make(map[string]domain.LatestCount, len(rows))
	for _, row := range rows {
		counts[row.ItemID] = row
	}

	return counts, nil
}

func (r *inventoryRepository) AppendCounts(ctx context.Context, entries []domain.CountEntry, author string) error {
	if len(entries) == 0 {
		return nil
	}

	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		query := `
			INSERT INTO inventory_counts (item_id, count, counted_at, counted_by)
			VALUES ($1, $2, $3, $4)
		`

		stmt, err := tx.PrepareContext(ctx, query)
		if err != nil {
			return fmt.Errorf("failed to prepare count insert: %w", err)
		}
		defer stmt.Close()

		countedAt := time.Now()
		for _, entry := range entries {
			if _, err := stmt.ExecContext(ctx, entry.ItemID, entry.Count, countedAt, author); err != nil {
				return fmt.Errorf("failed to insert count for item %s: %w", entry.ItemID, err)
			}
		}

		return nil
	})
}

func (r *inventoryRepository) CountHistory(ctx context.Context, limit int) ([]domain.CountHistoryEntry, error) {
	if limit <= 0 {
		limit = 100
	}

	query := `
		SELECT c.id, c.item_id,
			COALESCE(i.name, 'Unknown') AS item_name,
			COALESCE(i.category, '') AS category,
			COALESCE(i.unit, '') AS unit,
			c.count, c.counted_at, c.counted_by
		FROM inventory_counts c
		LEFT JOIN items i ON i.id = c.item_id
		ORDER BY c.counted_at DESC
		LIMIT $1
	`

	history := make([]domain.CountHistoryEntry, 0)
	if err := r.db.SelectContext(ctx, &history, query, limit); err != nil {
		return nil, fmt.Errorf("%w: loading count history: %v", domain.ErrStoreUnavailable, err)
	}

	return history, nil
}
