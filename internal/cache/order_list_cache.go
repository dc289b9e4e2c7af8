package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/chesters/restock-backend/internal/config"
	"github.com/chesters/restock-backend/internal/domain"
	"github.com/redis/go-redis/v9"
)

const (
	orderListKeyPrefix    = "order_list:"
	orderListScanBatchLen = 100
)

// OrderListCache memoizes the computed order list per delivery day and par
// profile. A cached list is advisory: any failure reads as a miss and callers
// recompute from the store snapshot.
type OrderListCache interface {
	Get(ctx context.Context, window domain.DeliveryWindow) (*domain.OrderList, bool, error)
	Set(ctx context.Context, list *domain.OrderList) error
	Invalidate(ctx context.Context) error
}

type redisOrderListCache struct {
	client *redis.Client
	ttl    time.Duration
}

type noopOrderListCache struct{}

func NewOrderListCache(cfg config.CacheConfig) (OrderListCache, error) {
	if !cfg.Enabled {
		return &noopOrderListCache{}, nil
	}

	client, ttl, err := newRedisClient(cfg)
	if err != nil {
		return nil, err
	}

	return &redisOrderListCache{client: client, ttl: ttl}, nil
}

func NewNoopOrderListCache() OrderListCache {
	return &noopOrderListCache{}
}

func orderListKey(window domain.DeliveryWindow) string {
	return fmt.Sprintf("%s%s:%s:%d", orderListKeyPrefix, window.DayLabel, window.ParProfile, window.DaysUntil)
}

func (c *redisOrderListCache) Get(ctx context.Context, window domain.DeliveryWindow) (*domain.OrderList, bool, error) {
	payload, err := c.client.Get(ctx, orderListKey(window)).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get failed: %w", err)
	}

	var list domain.OrderList
	if err := json.Unmarshal(payload, &list); err != nil {
		return nil, false, fmt.Errorf("decoding cached order list: %w", err)
	}

	return &list, true, nil
}

func (c *redisOrderListCache) Set(ctx context.Context, list *domain.OrderList) error {
	payload, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("encoding order list: %w", err)
	}

	if err := c.client.Set(ctx, orderListKey(list.Window), payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}

	return nil
}

// Invalidate drops every cached order list. Called whenever new counts land,
// since any new observation can change the recommendation.
func (c *redisOrderListCache) Invalidate(ctx context.Context) error {
	return deleteKeysWithPrefix(ctx, c.client, orderListKeyPrefix, orderListScanBatchLen)
}

func (c *noopOrderListCache) Get(context.Context, domain.DeliveryWindow) (*domain.OrderList, bool, error) {
	return nil, false, nil
}

func (c *noopOrderListCache) Set(context.Context, *domain.OrderList) error {
	return nil
}

func (c *noopOrderListCache) Invalidate(context.Context) error {
	return nil
}
