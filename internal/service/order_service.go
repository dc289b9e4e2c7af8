// internal/service/order_service.go
package service

import (
	"context"
	"time"

	"github.com/chesters/restock-backend/internal/cache"
	"github.com/chesters/restock-backend/internal/domain"
	"github.com/chesters/restock-backend/internal/ordering"
	"github.com/chesters/restock-backend/internal/repository"
	"github.com/rs/zerolog/log"
)

// OrderService computes delivery windows and reorder recommendations over a
// snapshot of the store. The decision engine itself is pure; this service owns
// snapshot fetching and the optional cache in front of it.
type OrderService struct {
	repo     repository.InventoryRepository
	cache    cache.OrderListCache
	schedule ordering.Schedule
}

func NewOrderService(repo repository.InventoryRepository, cacheImpl cache.OrderListCache, schedule ordering.Schedule) *OrderService {
	if cacheImpl == nil {
		cacheImpl = cache.NewNoopOrderListCache()
	}
	return &OrderService{repo: repo, cache: cacheImpl, schedule: schedule}
}

// ComputeWindow resolves the next delivery window for now. No I/O.
func (s *OrderService) ComputeWindow(now time.Time) domain.DeliveryWindow {
	return s.schedule.Resolve(now)
}

// GetOrderList builds the reorder recommendation for the window containing
// now. Cache failures degrade to a recompute, never to an error.
func (s *OrderService) GetOrderList(ctx context.Context, now time.Time) (*domain.OrderList, error) {
	window := s.schedule.Resolve(now)

	if list, ok, err := s.cache.Get(ctx, window); err == nil && ok {
		return list, nil
	} else if err != nil {
		log.Warn().Err(err).Msg("order list: cache get failed")
	}

	items, err := s.repo.ListItems(ctx)
	if err != nil {
		return nil, err
	}

	counts, err := s.repo.LatestCounts(ctx)
	if err != nil {
		return nil, err
	}

	list := ordering.BuildOrderList(items, counts, window)
	for _, warning := range list.Warnings {
		log.Warn().Str("warning", warning).Msg("order list: item excluded for data quality")
	}

	if err := s.cache.Set(ctx, &list); err != nil {
		log.Warn().Err(err).Msg("order list: cache set failed")
	}

	return &list, nil
}

// GetGroupedOrderList re-partitions the order list by category for display.
func (s *OrderService) GetGroupedOrderList(ctx context.Context, now time.Time) (*domain.OrderList, []domain.CategoryGroup, error) {
	list, err := s.GetOrderList(ctx, now)
	if err != nil {
		return nil, nil, err
	}

	categories, err := s.repo.ListCategories(ctx)
	if err != nil {
		return nil, nil, err
	}

	return list, ordering.GroupByCategory(*list, categories), nil
}

// EvaluateItem runs the decision engine for a single item against the window
// containing now.
func (s *OrderService) EvaluateItem(ctx context.Context, itemID string, now time.Time) (*domain.OrderLine, error) {
	item, err := s.repo.GetItem(ctx, itemID)
	if err != nil {
		return nil, err
	}

	if err := item.CheckNumerics(); err != nil {
		return nil, err
	}

	counts, err := s.repo.LatestCounts(ctx)
	if err != nil {
		return nil, err
	}

	current := 0.0
	if latest, ok := counts[item.ID]; ok {
		current = latest.Count
	}

	line := ordering.EvaluateItem(*item, current, s.schedule.Resolve(now))

	return &line, nil
}
