package handler

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/bubbleflash/service-movers/internal/domain/catalog"
	"github.com/bubbleflash/service-movers/internal/response"
)

// CatalogHandler serves the per-item shifting catalog and its quote
// endpoint.
type CatalogHandler struct {
	catalog *catalog.Catalog
}

// NewCatalogHandler creates a CatalogHandler.
func NewCatalogHandler(c *catalog.Catalog) *CatalogHandler {
	return &CatalogHandler{catalog: c}
}

// RegisterRoutes mounts the catalog routes on the given group.
func (h *CatalogHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/services", h.List)
	rg.GET("/services/:id", h.Get)
	rg.GET("/services/category/:category", h.ByCategory)
	rg.GET("/services/distance-pricing", h.DistancePricing)
	rg.POST("/services/quote", h.Quote)
}

// List handles GET /services, optionally filtered by ?category=.
func (h *CatalogHandler) List(c *gin.Context) {
	category := c.DefaultQuery("category", "all")
	response.Success(c, h.catalog.ByCategory(category))
}

// Get handles GET /services/:id.
func (h *CatalogHandler) Get(c *gin.Context) {
	svc, err := h.catalog.Get(c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, svc)
}

// ByCategory handles GET /services/category/:category.
func (h *CatalogHandler) ByCategory(c *gin.Context) {
	response.Success(c, h.catalog.ByCategory(c.Param("category")))
}

// DistancePricing handles GET /services/distance-pricing, returning the
// banded schedule for display.
func (h *CatalogHandler) DistancePricing(c *gin.Context) {
	response.Success(c, catalog.DistanceTiers())
}

type itemQuoteRequest struct {
	ServiceID  string  `json:"service_id" binding:"required"`
	DistanceKm float64 `json:"distance_km"`
}

// Quote handles POST /services/quote.
func (h *CatalogHandler) Quote(c *gin.Context) {
	var req itemQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, fmt.Sprintf("invalid request body: %v", err))
		return
	}

	quote, err := h.catalog.Quote(req.ServiceID, req.DistanceKm)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, quote)
}
