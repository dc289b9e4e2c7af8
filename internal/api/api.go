// internal/api/api.go
package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/chesters/restock-backend/internal/api/handlers"
	"github.com/chesters/restock-backend/internal/api/middleware"
	"github.com/chesters/restock-backend/internal/service"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type Services struct {
	InventoryService *service.InventoryService
	OrderService     *service.OrderService
}

func NewRouter(services *Services, allowedOrigins []string) *gin.Engine {
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	defaultOrigins := []string{"http://localhost:3000", "http://127.0.0.1:3000"}
	corsConfig := cors.Config{
		AllowOrigins:     defaultOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(allowedOrigins) > 0 {
		normalizedOrigins, allowAll := normalizeAllowedOrigins(allowedOrigins)
		if allowAll {
			corsConfig.AllowOrigins = nil
			corsConfig.AllowOriginFunc = func(origin string) bool { return true }
		} else if len(normalizedOrigins) > 0 {
			corsConfig.AllowOrigins = normalizedOrigins
		}
	}
	router.Use(cors.New(corsConfig))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	apiGroup := router.Group("/api/v1")

	if services != nil {
		if services.InventoryService != nil {
			inventoryHandler := handlers.NewInventoryHandler(services.InventoryService)
			inventoryGroup := apiGroup.Group("/inventory")
			{
				inventoryGroup.GET("/items", inventoryHandler.GetItems)
				inventoryGroup.POST("/items", inventoryHandler.CreateItem)
				inventoryGroup.PUT("/items/:id", inventoryHandler.UpdateItem)
				inventoryGroup.DELETE("/items/:id", inventoryHandler.DeleteItem)
				inventoryGroup.GET("/categories", inventoryHandler.GetCategories)
				inventoryGroup.GET("/suppliers", inventoryHandler.GetSuppliers)
				inventoryGroup.POST("/counts", inventoryHandler.SubmitCounts)
				inventoryGroup.GET("/counts/history", inventoryHandler.GetHistory)
			}
		}

		if services.OrderService != nil {
			orderHandler := handlers.NewOrderHandler(services.OrderService)
			orderGroup := apiGroup.Group("/orders")
			{
				orderGroup.GET("/window", orderHandler.GetWindow)
				orderGroup.GET("/list", orderHandler.GetOrderList)
				orderGroup.GET("/list/grouped", orderHandler.GetGroupedOrderList)
				orderGroup.GET("/items/:id", orderHandler.EvaluateItem)
			}
		}
	}

	return router
}

func normalizeAllowedOrigins(origins []string) ([]string, bool) {
	var (
		parsed   []string
		allowAll bool
	)
	for _, origin := range origins {
		parts := strings.Split(origin, ",")
		for _, part := range parts {
			trimmed := strings.TrimSpace(part)
			if trimmed == "" {
				continue
			}
			if trimmed == "*" {
				allowAll = true
				continue
			}
			parsed = append(parsed, trimmed)
		}
	}
	return parsed, allowAll
}
