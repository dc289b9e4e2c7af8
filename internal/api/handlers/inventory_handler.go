// internal/api/handlers/inventory_handler.go
package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/chesters/restock-backend/internal/domain"
	"github.com/chesters/restock-backend/internal/service"
	"github.com/gin-gonic/gin"
)

type InventoryHandler struct {
	service *service.InventoryService
}

func NewInventoryHandler(service *service.InventoryService) *InventoryHandler {
	return &InventoryHandler{service: service}
}

func (h *InventoryHandler) GetItems(c *gin.Context) {
	items, err := h.service.ListItems(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": items})
}

func (h *InventoryHandler) GetCategories(c *gin.Context) {
	categories, err := h.service.ListCategories(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

func (h *InventoryHandler) GetSuppliers(c *gin.Context) {
	suppliers, err := h.service.ListSuppliers(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"suppliers": suppliers})
}

func (h *InventoryHandler) CreateItem(c *gin.Context) {
	var payload service.ItemPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid item payload"})
		return
	}
	if payload.ID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "item id is required"})
		return
	}

	item, err := h.service.CreateItem(c.Request.Context(), payload)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"item": item})
}

func (h *InventoryHandler) UpdateItem(c *gin.Context) {
	var payload service.ItemPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid item payload"})
		return
	}

	item, err := h.service.UpdateItem(c.Request.Context(), c.Param("id"), payload)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"item": item})
}

func (h *InventoryHandler) DeleteItem(c *gin.Context) {
	if err := h.service.DeleteItem(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": c.Param("id")})
}

type countBatchRequest struct {
	Counts []domain.CountEntry `json:"counts"`
	Author string              `json:"counted_by"`
}

// SubmitCounts appends a batch of inventory observations. The batch succeeds
// or fails as one write; malformed entries come back as warnings.
func (h *InventoryHandler) SubmitCounts(c *gin.Context) {
	var req countBatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid count batch"})
		return
	}
	if len(req.Counts) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no counts to save"})
		return
	}

	accepted, warnings, err := h.service.SubmitCounts(c.Request.Context(), req.Counts, req.Author)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"saved":    accepted,
		"warnings": warnings,
	})
}

func (h *InventoryHandler) GetHistory(c *gin.Context) {
	limit := 100
	if v, err := strconv.Atoi(c.DefaultQuery("limit", "100")); err == nil && v > 0 {
		limit = v
	}

	history, err := h.service.CountHistory(c.Request.Context(), limit)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"history": history})
}

// writeError maps domain errors onto HTTP statuses shared by both handlers.
func writeError(c *gin.Context, err error) {
	var dq *domain.DataQualityError
	switch {
	case errors.As(err, &dq):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": dq.Error()})
	case errors.Is(err, domain.ErrItemNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "item not found"})
	case errors.Is(err, domain.ErrStoreUnavailable):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "inventory store unavailable"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
