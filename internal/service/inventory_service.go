// internal/service/inventory_service.go
package service

import (
	"context"
	"fmt"
	"math"

	"github.com/chesters/restock-backend/internal/cache"
	"github.com/chesters/restock-backend/internal/domain"
	"github.com/chesters/restock-backend/internal/repository"
	"github.com/rs/zerolog/log"
)

// InventoryService owns catalog reads, item writes and batch count
// submission. Item writes validate the store contract before touching the
// repository; count batches land all-or-nothing.
type InventoryService struct {
	repo  repository.InventoryRepository
	cache cache.OrderListCache
}

func NewInventoryService(repo repository.InventoryRepository, cacheImpl cache.OrderListCache) *InventoryService {
	if cacheImpl == nil {
		cacheImpl = cache.NewNoopOrderListCache()
	}
	return &InventoryService{repo: repo, cache: cacheImpl}
}

func (s *InventoryService) ListItems(ctx context.Context) ([]domain.Item, error) {
	return s.repo.ListItems(ctx)
}

func (s *InventoryService) GetItem(ctx context.Context, id string) (*domain.Item, error) {
	return s.repo.GetItem(ctx, id)
}

func (s *InventoryService) ListCategories(ctx context.Context) ([]domain.Category, error) {
	return s.repo.ListCategories(ctx)
}

func (s *InventoryService) ListSuppliers(ctx context.Context) ([]domain.Supplier, error) {
	return s.repo.ListSuppliers(ctx)
}

func (s *InventoryService) CountHistory(ctx context.Context, limit int) ([]domain.CountHistoryEntry, error) {
	return s.repo.CountHistory(ctx, limit)
}

func (s *InventoryService) CreateItem(ctx context.Context, payload ItemPayload) (*domain.Item, error) {
	item, err := payload.Normalize()
	if err != nil {
		return nil, err
	}

	if err := s.repo.CreateItem(ctx, item); err != nil {
		return nil, err
	}

	s.invalidateOrderLists(ctx)

	return item, nil
}

func (s *InventoryService) UpdateItem(ctx context.Context, id string, payload ItemPayload) (*domain.Item, error) {
	payload.ID = id

	item, err := payload.Normalize()
	if err != nil {
		return nil, err
	}

	if err := s.repo.UpdateItem(ctx, item); err != nil {
		return nil, err
	}

	s.invalidateOrderLists(ctx)

	return item, nil
}

func (s *InventoryService) DeleteItem(ctx context.Context, id string) error {
	if err := s.repo.DeleteItem(ctx, id); err != nil {
		return err
	}

	s.invalidateOrderLists(ctx)

	return nil
}

// SubmitCounts appends a batch of observations. Malformed entries are
// rejected per entry and reported as warnings; the remaining entries land as
// one all-or-nothing batch. Returns how many entries were accepted.
func (s *InventoryService) SubmitCounts(ctx context.Context, entries []domain.CountEntry, author string) (int, []string, error) {
	if author == "" {
		author = "Unknown"
	}

	accepted := make([]domain.CountEntry, 0, len(entries))
	var warnings []string
	for _, entry := range entries {
		switch {
		case entry.ItemID == "":
			warnings = append(warnings, "count entry missing item_id")
		case math.IsNaN(entry.Count) || math.IsInf(entry.Count, 0):
			warnings = append(warnings, fmt.Sprintf("item %s: count is not a finite number", entry.ItemID))
		case entry.Count < 0:
			warnings = append(warnings, fmt.Sprintf("item %s: count is negative", entry.ItemID))
		default:
			accepted = append(accepted, entry)
		}
	}

	if len(accepted) == 0 {
		return 0, warnings, nil
	}

	if err := s.repo.AppendCounts(ctx, accepted, author); err != nil {
		return 0, warnings, err
	}

	s.invalidateOrderLists(ctx)

	return len(accepted), warnings, nil
}

func (s *InventoryService) invalidateOrderLists(ctx context.Context) {
	if err := s.cache.Invalidate(ctx); err != nil {
		log.Warn().Err(err).Msg("inventory: order list cache invalidation failed")
	}
}
