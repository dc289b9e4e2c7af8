// internal/repository/memory/inventory_repository.go
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/chesters/restock-backend/internal/domain"
)

// InventoryRepository is an in-memory store used in tests and local runs.
// It mirrors the Postgres implementation's semantics: append-only counts,
// all-or-nothing batches, latest count by timestamp.
type InventoryRepository struct {
	mu          sync.RWMutex
	items       map[string]domain.Item
	categories  []domain.Category
	suppliers   []domain.Supplier
	counts      []domain.Count
	nextCountID int64

	// Err, when set, is returned by every call. Lets tests simulate an
	// unreachable store.
	Err error
}

func NewInventoryRepository() *InventoryRepository {
	return &InventoryRepository{
		items:       make(map[string]domain.Item),
		nextCountID: 1,
	}
}

func (r *InventoryRepository) SeedItems(items ...domain.Item) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, item := range items {
		r.items[item.ID] = item
	}
}

func (r *InventoryRepository) SeedCategories(categories ...domain.Category) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.categories = append(r.categories, categories...)
}

func (r *InventoryRepository) SeedSuppliers(suppliers ...domain.Supplier) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.suppliers = append(r.suppliers, suppliers...)
}

// SeedCount records an observation at a fixed timestamp.
func (r *InventoryRepository) SeedCount(itemID string, count float64, countedAt time.Time, countedBy string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.counts = append(r.counts, domain.Count{
		ID:        r.nextCountID,
		ItemID:    itemID,
		Count:     count,
		CountedAt: countedAt,
		CountedBy: countedBy,
	})
	r.nextCountID++
}

func (r *InventoryRepository) ListItems(ctx context.Context) ([]domain.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.Err != nil {
		return nil, r.Err
	}

	items := make([]domain.Item, 0, len(r.items))
	for _, item := range r.items {
		items = append(items, item)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].Name < items[j].Name })

	return items, nil
}

func (r *InventoryRepository) GetItem(ctx context.Context, id string) (*domain.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.Err != nil {
		return nil, r.Err
	}

	item, ok := r.items[id]
	if !ok {
		return nil, domain.ErrItemNotFound
	}

	return &item, nil
}

func (r *InventoryRepository) CreateItem(ctx context.Context, item *domain.Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}

	now := time.Now()
	stored := *item
	stored.CreatedAt = now
	stored.UpdatedAt = now
	r.items[item.ID] = stored

	return nil
}

func (r *InventoryRepository) UpdateItem(ctx context.Context, item *domain.Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}

	existing, ok := r.items[item.ID]
	if !ok {
		return domain.ErrItemNotFound
	}

	stored := *item
	stored.CreatedAt = existing.CreatedAt
	stored.UpdatedAt = time.Now()
	r.items[item.ID] = stored

	return nil
}

func (r *InventoryRepository) DeleteItem(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}

	if _, ok := r.items[id]; !ok {
		return domain.ErrItemNotFound
	}
	delete(r.items, id)

	return nil
}

func (r *InventoryRepository) ListCategories(ctx context.Context) ([]domain.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.Err != nil {
		return nil, r.Err
	}

	return append([]domain.Category(nil), r.categories...), nil
}

func (r *InventoryRepository) ListSuppliers(ctx context.Context) ([]domain.Supplier, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.Err != nil {
		return nil, r.Err
	}

	return append([]domain.Supplier(nil), r.suppliers...), nil
}

func (r *InventoryRepository) LatestCounts(ctx context.Context) (map[string]domain.LatestCount, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.Err != nil {
		return nil, r.Err
	}

	latest := make(map[string]domain.LatestCount)
	for _, c := range r.counts {
		current, ok := latest[c.ItemID]
		if !ok || c.CountedAt.After(current.CountedAt) {
			latest[c.ItemID] = domain.LatestCount{ItemID: c.ItemID, Count: c.Count, CountedAt: c.CountedAt}
		}
	}

	return latest, nil
}

func (r *InventoryRepository) AppendCounts(ctx context.Context, entries []domain.CountEntry, author string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}

	countedAt := time.Now()
	for _, entry := range entries {
		r.counts = append(r.counts, domain.Count{
			ID:        r.nextCountID,
			ItemID:    entry.ItemID,
			Count:     entry.Count,
			CountedAt: countedAt,
			CountedBy: author,
		})
		r.nextCountID++
	}

	return nil
}

func (r *InventoryRepository) CountHistory(ctx context.Context, limit int) ([]domain.CountHistoryEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.Err != nil {
		return nil, r.Err
	}
	if limit <= 0 {
		limit = 100
	}

	history := make([]domain.CountHistoryEntry, 0, len(r.counts))
	for _, c := range r.counts {
		entry := domain.CountHistoryEntry{
			ID:        c.ID,
			ItemID:    c.ItemID,
			ItemName:  "Unknown",
			Count:     c.Count,
			CountedAt: c.CountedAt,
			CountedBy: c.CountedBy,
		}
		if item, ok := r.items[c.ItemID]; ok {
			entry.ItemName = item.Name
			entry.Category = item.Category
			entry.Unit = item.Unit
		}
		history = append(history, entry)
	}

	sort.Slice(history, func(i, j int) bool {
		if history[i].CountedAt.Equal(history[j].CountedAt) {
			return history[i].ID > history[j].ID
		}
		return history[i].CountedAt.After(history[j].CountedAt)
	})

	if len(history) > limit {
		history = history[:limit]
	}

	return history, nil
}
