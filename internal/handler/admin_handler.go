package handler

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/bubbleflash/service-movers/internal/application"
	"github.com/bubbleflash/service-movers/internal/response"
)

const (
	defaultPage  = 1
	defaultLimit = 20
	maxLimit     = 100
)

// AdminHandler serves the JWT-guarded administrative endpoints.
type AdminHandler struct {
	service *application.BookingService
}

// NewAdminHandler creates an AdminHandler.
func NewAdminHandler(service *application.BookingService) *AdminHandler {
	return &AdminHandler{service: service}
}

// RegisterRoutes mounts the admin routes on the given (already guarded) group.
func (h *AdminHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/bookings", h.List)
	rg.PUT("/bookings/:id/status", h.UpdateStatus)
	rg.PUT("/bookings/:id/assign", h.AssignEmployee)
	rg.GET("/stats/bookings", h.Stats)
}

// List handles GET /admin/bookings with status/move_type filters and paging.
func (h *AdminHandler) List(c *gin.Context) {
	page, limit := parsePagination(c)
	filter := application.ListFilter{
		Status:   c.Query("status"),
		MoveType: c.Query("move_type"),
	}

	result, err := h.service.ListBookings(c.Request.Context(), filter, page, limit)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Paginated(c, result.Items, result.Total, page, limit)
}

type updateStatusRequest struct {
	Status     string `json:"status" binding:"required"`
	AdminNotes string `json:"admin_notes"`
	Reason     string `json:"reason"`
}

// UpdateStatus handles PUT /admin/bookings/:id/status.
func (h *AdminHandler) UpdateStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid booking ID")
		return
	}

	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, fmt.Sprintf("invalid request body: %v", err))
		return
	}

	dto, err := h.service.UpdateStatus(c.Request.Context(), id, req.Status, req.AdminNotes, req.Reason)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto)
}

type assignEmployeeRequest struct {
	EmployeeID uuid.UUID `json:"employee_id" binding:"required"`
}

// AssignEmployee handles PUT /admin/bookings/:id/assign.
func (h *AdminHandler) AssignEmployee(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid booking ID")
		return
	}

	var req assignEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, fmt.Sprintf("invalid request body: %v", err))
		return
	}

	dto, err := h.service.AssignEmployee(c.Request.Context(), id, req.EmployeeID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto)
}

// Stats handles GET /admin/stats/bookings.
func (h *AdminHandler) Stats(c *gin.Context) {
	stats, err := h.service.GetStats(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, stats)
}

func parsePagination(c *gin.Context) (page, limit int) {
	page = defaultPage
	limit = defaultLimit
	if v, err := strconv.Atoi(c.DefaultQuery("page", "")); err == nil && v > 0 {
		page = v
	}
	if v, err := strconv.Atoi(c.DefaultQuery("limit", "")); err == nil && v > 0 {
		limit = v
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	return page, limit
}
