// internal/api/handlers/order_handler.go
package handlers

import (
	"net/http"
	"time"

	"github.com/chesters/restock-backend/internal/service"
	"github.com/gin-gonic/gin"
)

type OrderHandler struct {
	service *service.OrderService
	now     func() time.Time
}

func NewOrderHandler(service *service.OrderService) *OrderHandler {
	return &OrderHandler{service: service, now: time.Now}
}

// resolveNow honors an optional ?date=YYYY-MM-DD override so a manager can
// preview a different truck cycle; otherwise the wall clock decides.
func (h *OrderHandler) resolveNow(c *gin.Context) (time.Time, bool) {
	raw := c.Query("date")
	if raw == "" {
		return h.now(), true
	}

	parsed, err := time.Parse("2006-01-02", raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date, want YYYY-MM-DD"})
		return time.Time{}, false
	}

	return parsed, true
}

func (h *OrderHandler) GetWindow(c *gin.Context) {
	now, ok := h.resolveNow(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{"window": h.service.ComputeWindow(now)})
}

func (h *OrderHandler) GetOrderList(c *gin.Context) {
	now, ok := h.resolveNow(c)
	if !ok {
		return
	}

	list, err := h.service.GetOrderList(c.Request.Context(), now)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, list)
}

func (h *OrderHandler) GetGroupedOrderList(c *gin.Context) {
	now, ok := h.resolveNow(c)
	if !ok {
		return
	}

	list, groups, err := h.service.GetGroupedOrderList(c.Request.Context(), now)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"window":     list.Window,
		"groups":     groups,
		"total_cost": list.TotalCost,
		"warnings":   list.Warnings,
	})
}

func (h *OrderHandler) EvaluateItem(c *gin.Context) {
	now, ok := h.resolveNow(c)
	if !ok {
		return
	}

	line, err := h.service.EvaluateItem(c.Request.Context(), c.Param("id"), now)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"line": line})
}
