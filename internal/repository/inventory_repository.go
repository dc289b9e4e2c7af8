// internal/repository/inventory_repository.go
package repository

import (
	"context"

	"github.com/chesters/restock-backend/internal/domain"
)

// InventoryRepository is the persistent-store boundary. Item, category and
// supplier records are owned by the store; counts are append-only and never
// mutated through this interface.
type InventoryRepository interface {
	ListItems(ctx context.Context) ([]domain.Item, error)
	GetItem(ctx context.Context, id string) (*domain.Item, error)
	CreateItem(ctx context.Context, item *domain.Item) error
	UpdateItem(ctx context.Context, item *domain.Item) error
	DeleteItem(ctx context.Context, id string) error

	ListCategories(ctx context.Context) ([]domain.Category, error)
	ListSuppliers(ctx context.Context) ([]domain.Supplier, error)

	// LatestCounts returns the most recent observation per item in a single
	// batched read keyed by item id.
	LatestCounts(ctx context.Context) (map[string]domain.LatestCount, error)

	// AppendCounts writes a batch of observations with a shared author and
	// timestamp. The batch lands all-or-nothing.
	AppendCounts(ctx context.Context, entries []domain.CountEntry, author string) error

	CountHistory(ctx context.Context, limit int) ([]domain.CountHistoryEntry, error)
}
