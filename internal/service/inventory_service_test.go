package service

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/chesters/restock-backend/internal/domain"
	"github.com/chesters/restock-backend/internal/repository/memory"
)

func f(v float64) *float64 { return &v }

func TestInventoryService_SubmitCounts(t *testing.T) {
	repo := seededRepo()
	svc := NewInventoryService(repo, nil)

	entries := []domain.CountEntry{
		{ItemID: "tomatoes", Count: 12},
		{ItemID: "chicken", Count: 3.5},
		{ItemID: "", Count: 1},
		{ItemID: "limes", Count: math.NaN()},
		{ItemID: "chicken", Count: -1},
	}

	accepted, warnings, err := svc.SubmitCounts(context.Background(), entries, "sam")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if accepted != 2 {
		t.Errorf("accepted = %d, want 2", accepted)
	}
	if len(warnings) != 3 {
		t.Errorf("warnings = %v, want 3", warnings)
	}

	latest, err := repo.LatestCounts(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if latest["tomatoes"].Count != 12 {
		t.Errorf("latest tomatoes = %v, want 12", latest["tomatoes"].Count)
	}
	if latest["chicken"].Count != 3.5 {
		t.Errorf("latest chicken = %v, want 3.5", latest["chicken"].Count)
	}
	// The stale lime count must survive untouched; counts are append-only.
	if latest["limes"].Count != 25 {
		t.Errorf("latest limes = %v, want 25", latest["limes"].Count)
	}
}

func TestInventoryService_SubmitCounts_AllOrNothing(t *testing.T) {
	repo := seededRepo()
	repo.Err = domain.ErrStoreUnavailable
	svc := NewInventoryService(repo, nil)

	accepted, _, err := svc.SubmitCounts(context.Background(),
		[]domain.CountEntry{{ItemID: "tomatoes", Count: 12}}, "sam")

	if !errors.Is(err, domain.ErrStoreUnavailable) {
		t.Fatalf("error = %v, want ErrStoreUnavailable", err)
	}
	if accepted != 0 {
		t.Errorf("accepted = %d, want 0 on a failed batch", accepted)
	}
}

func TestInventoryService_SubmitCounts_EmptyBatch(t *testing.T) {
	svc := NewInventoryService(seededRepo(), nil)

	accepted, warnings, err := svc.SubmitCounts(context.Background(), nil, "sam")
	if err != nil || accepted != 0 || len(warnings) != 0 {
		t.Errorf("empty batch: accepted = %d, warnings = %v, err = %v", accepted, warnings, err)
	}
}

func TestInventoryService_CreateItem_NormalizesLegacyKeys(t *testing.T) {
	repo := memory.NewInventoryRepository()
	svc := NewInventoryService(repo, nil)

	payload := ItemPayload{
		ID:               "flour",
		Name:             "Flour",
		Category:         "dry-goods-dry",
		Unit:             "lb",
		LegacyWeekPar:    f(20),
		LegacyWeekendPar: f(25),
		Threshold:        f(5),
		LegacyDailyUsage: f(3),
	}

	item, err := svc.CreateItem(context.Background(), payload)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if item.WeekPar != 20 || item.WeekendPar != 25 || item.DailyUsage != 3 {
		t.Errorf("normalized item = %+v, legacy keys not folded in", item)
	}
	if item.Cost != 0 {
		t.Errorf("cost = %v, want default 0", item.Cost)
	}

	stored, err := repo.GetItem(context.Background(), "flour")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stored.WeekPar != 20 {
		t.Errorf("stored week_par = %v, want 20", stored.WeekPar)
	}
}

func TestInventoryService_CreateItem_SnakeCaseWinsOverLegacy(t *testing.T) {
	svc := NewInventoryService(memory.NewInventoryRepository(), nil)

	payload := ItemPayload{
		ID:       "rice",
		Name:     "Rice",
		Category: "dry-goods-dry",
		Unit:     "lb",
		WeekPar:  f(10), LegacyWeekPar: f(99),
		WeekendPar: f(12), Threshold: f(2), DailyUsage: f(1),
	}

	item, err := svc.CreateItem(context.Background(), payload)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if item.WeekPar != 10 {
		t.Errorf("week_par = %v, want snake_case value 10", item.WeekPar)
	}
}

func TestInventoryService_CreateItem_RejectsMissingNumeric(t *testing.T) {
	svc := NewInventoryService(memory.NewInventoryRepository(), nil)

	payload := ItemPayload{
		ID:       "rice",
		Name:     "Rice",
		Category: "dry-goods-dry",
		Unit:     "lb",
		WeekPar:  f(10), WeekendPar: f(12), DailyUsage: f(1),
		// threshold deliberately absent
	}

	_, err := svc.CreateItem(context.Background(), payload)

	var dq *domain.DataQualityError
	if !errors.As(err, &dq) {
		t.Fatalf("error = %v, want DataQualityError", err)
	}
	if dq.Field != "threshold" {
		t.Errorf("field = %s, want threshold", dq.Field)
	}
}

func TestInventoryService_UpdateItem_NotFound(t *testing.T) {
	svc := NewInventoryService(memory.NewInventoryRepository(), nil)

	payload := ItemPayload{
		Name: "Ghost", Category: "produce", Unit: "ea",
		WeekPar: f(1), WeekendPar: f(1), Threshold: f(0), DailyUsage: f(0),
	}

	if _, err := svc.UpdateItem(context.Background(), "ghost", payload); !errors.Is(err, domain.ErrItemNotFound) {
		t.Errorf("error = %v, want ErrItemNotFound", err)
	}
}
