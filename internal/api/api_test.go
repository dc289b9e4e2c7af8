package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/chesters/restock-backend/internal/domain"
	"github.com/chesters/restock-backend/internal/ordering"
	"github.com/chesters/restock-backend/internal/repository/memory"
	"github.com/chesters/restock-backend/internal/service"
	"github.com/gin-gonic/gin"
)

func testRouter(t *testing.T) (*gin.Engine, *memory.InventoryRepository) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repo := memory.NewInventoryRepository()
	repo.SeedCategories(domain.Category{ID: "produce", Name: "Produce"})
	repo.SeedItems(domain.Item{
		ID: "tomatoes", Name: "Tomatoes", Category: "produce", Unit: "lb",
		WeekPar: 10, WeekendPar: 15, Threshold: 5, DailyUsage: 3, Cost: 2,
	})
	repo.SeedCount("tomatoes", 10, time.Date(2025, time.January, 7, 8, 0, 0, 0, time.UTC), "sam")

	services := &Services{
		InventoryService: service.NewInventoryService(repo, nil),
		OrderService:     service.NewOrderService(repo, nil, ordering.DefaultSchedule()),
	}

	return NewRouter(services, []string{"*"}), repo
}

func doRequest(t *testing.T, router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	return rec
}

func TestRouter_GetOrderList(t *testing.T) {
	router, _ := testRouter(t)

	// 2025-01-07 is a Tuesday: Thursday truck, two days out, weekend par.
	rec := doRequest(t, router, http.MethodGet, "/api/v1/orders/list?date=2025-01-07", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var list domain.OrderList
	if err := json.Unmarshal(rec.Body.Bytes(), &list); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if list.Window.DaysUntil != 2 || list.Window.ParProfile != domain.ProfileWeekend {
		t.Errorf("window = %+v, want Thursday window 2 days out", list.Window)
	}
	if len(list.Lines) != 1 || list.Lines[0].OrderAmount != 5 {
		t.Errorf("lines = %+v, want one tomato line ordering 5", list.Lines)
	}
	if list.TotalCost != 10 {
		t.Errorf("totalCost = %v, want 10", list.TotalCost)
	}
}

func TestRouter_GetWindow_InvalidDate(t *testing.T) {
	router, _ := testRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/api/v1/orders/window?date=yesterday", "")

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestRouter_SubmitCounts(t *testing.T) {
	router, repo := testRouter(t)

	body := `{"counted_by":"alex","counts":[{"item_id":"tomatoes","count":20}]}`
	rec := doRequest(t, router, http.MethodPost, "/api/v1/inventory/counts", body)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	latest, err := repo.LatestCounts(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if latest["tomatoes"].Count != 20 {
		t.Errorf("latest count = %v, want 20", latest["tomatoes"].Count)
	}
}

func TestRouter_CreateItem_RejectsBadNumerics(t *testing.T) {
	router, _ := testRouter(t)

	body := `{"id":"salt","name":"Salt","category":"produce","unit":"lb",
		"week_par":5,"weekend_par":5,"threshold":-1,"daily_usage":0.1}`
	rec := doRequest(t, router, http.MethodPost, "/api/v1/inventory/items", body)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Errorf("status = %d, want 422, body = %s", rec.Code, rec.Body.String())
	}
}

func TestRouter_EvaluateUnknownItem(t *testing.T) {
	router, _ := testRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/api/v1/orders/items/ghost?date=2025-01-07", "")

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}
