package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/chesters/restock-backend/internal/domain"
	"github.com/chesters/restock-backend/internal/ordering"
	"github.com/chesters/restock-backend/internal/repository/memory"
)

// 2025-01-07 is a Tuesday: two days until the Thursday truck, weekend profile.
var tuesday = time.Date(2025, time.January, 7, 9, 0, 0, 0, time.UTC)

func seededRepo() *memory.InventoryRepository {
	repo := memory.NewInventoryRepository()
	repo.SeedCategories(
		domain.Category{ID: "produce", Name: "Produce"},
		domain.Category{ID: "protein", Name: "Protein"},
	)
	repo.SeedItems(
		domain.Item{
			ID: "tomatoes", Name: "Tomatoes", Category: "produce", Unit: "lb",
			WeekPar: 10, WeekendPar: 15, Threshold: 5, DailyUsage: 3, Cost: 2,
		},
		domain.Item{
			ID: "chicken", Name: "Chicken", Category: "protein", Unit: "case",
			WeekPar: 4, WeekendPar: 6, Threshold: 2, DailyUsage: 1, Cost: 40,
		},
		domain.Item{
			ID: "limes", Name: "Limes", Category: "produce", Unit: "ea",
			WeekPar: 30, WeekendPar: 30, Threshold: 5, DailyUsage: 2, Cost: 0.3,
		},
	)
	repo.SeedCount("tomatoes", 10, tuesday.Add(-2*time.Hour), "sam")
	repo.SeedCount("chicken", 5, tuesday.Add(-2*time.Hour), "sam")
	repo.SeedCount("limes", 20, tuesday.Add(-26*time.Hour), "alex")
	// A fresher lime count must win over the stale one.
	repo.SeedCount("limes", 25, tuesday.Add(-time.Hour), "sam")
	return repo
}

func newOrderService(repo *memory.InventoryRepository) *OrderService {
	return NewOrderService(repo, nil, ordering.DefaultSchedule())
}

func TestOrderService_ComputeWindow(t *testing.T) {
	svc := newOrderService(seededRepo())

	window := svc.ComputeWindow(tuesday)

	if window.Day != time.Thursday || window.DaysUntil != 2 {
		t.Errorf("window = %s in %d days, want Thursday in 2", window.Day, window.DaysUntil)
	}
	if window.ParProfile != domain.ProfileWeekend {
		t.Errorf("profile = %s, want weekend", window.ParProfile)
	}
}

func TestOrderService_GetOrderList(t *testing.T) {
	svc := newOrderService(seededRepo())

	list, err := svc.GetOrderList(context.Background(), tuesday)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// tomatoes: 10 - 3*2 = 4 < 5, order 15-10=5; chicken: 5 - 2 = 3 >= 2,
	// good; limes: latest count 25, 25 - 4 = 21 >= 5, good.
	if len(list.Lines) != 1 {
		t.Fatalf("lines = %d, want 1: %+v", len(list.Lines), list.Lines)
	}
	line := list.Lines[0]
	if line.Item.ID != "tomatoes" {
		t.Fatalf("line item = %s, want tomatoes", line.Item.ID)
	}
	if line.OrderAmount != 5 {
		t.Errorf("orderAmount = %v, want 5 (weekend par)", line.OrderAmount)
	}
	if line.Tier != domain.TierOrder {
		t.Errorf("tier = %s, want order", line.Tier)
	}
	if list.TotalCost != 10 {
		t.Errorf("totalCost = %v, want 10", list.TotalCost)
	}
}

func TestOrderService_GetGroupedOrderList(t *testing.T) {
	svc := newOrderService(seededRepo())

	list, groups, err := svc.GetGroupedOrderList(context.Background(), tuesday)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(groups) != 1 || groups[0].Category.ID != "produce" {
		t.Fatalf("groups = %+v, want single produce group", groups)
	}
	if len(groups[0].Lines) != len(list.Lines) {
		t.Errorf("grouped %d lines, flat list has %d", len(groups[0].Lines), len(list.Lines))
	}
}

func TestOrderService_EvaluateItem(t *testing.T) {
	svc := newOrderService(seededRepo())

	line, err := svc.EvaluateItem(context.Background(), "tomatoes", tuesday)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if line.ProjectedStock != 4 || line.OrderAmount != 5 {
		t.Errorf("projected = %v, orderAmount = %v, want 4 and 5", line.ProjectedStock, line.OrderAmount)
	}

	if _, err := svc.EvaluateItem(context.Background(), "nope", tuesday); !errors.Is(err, domain.ErrItemNotFound) {
		t.Errorf("unknown item error = %v, want ErrItemNotFound", err)
	}
}

func TestOrderService_EmptyCatalog(t *testing.T) {
	svc := newOrderService(memory.NewInventoryRepository())

	list, err := svc.GetOrderList(context.Background(), tuesday)
	if err != nil {
		t.Fatalf("empty catalog must not error, got %v", err)
	}
	if len(list.Lines) != 0 || list.TotalCost != 0 {
		t.Errorf("list = %+v, want empty with zero total", list)
	}
}

func TestOrderService_StoreUnavailable(t *testing.T) {
	repo := seededRepo()
	repo.Err = domain.ErrStoreUnavailable
	svc := newOrderService(repo)

	if _, err := svc.GetOrderList(context.Background(), tuesday); !errors.Is(err, domain.ErrStoreUnavailable) {
		t.Errorf("error = %v, want ErrStoreUnavailable", err)
	}
}
