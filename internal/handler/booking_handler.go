// Package handler holds the gin HTTP handlers for the public and
// administrative APIs.
package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/bubbleflash/service-movers/internal/application"
	"github.com/bubbleflash/service-movers/internal/pdf"
	"github.com/bubbleflash/service-movers/internal/response"
)

// BookingHandler serves the public booking endpoints.
type BookingHandler struct {
	service *application.BookingService
}

// NewBookingHandler creates a BookingHandler.
func NewBookingHandler(service *application.BookingService) *BookingHandler {
	return &BookingHandler{service: service}
}

// RegisterRoutes mounts the public booking routes on the given group.
func (h *BookingHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/bookings", h.Create)
	rg.GET("/bookings/:id", h.Get)
	rg.GET("/bookings/:id/receipt", h.Receipt)
	rg.GET("/bookings/phone/:phone", h.GetByPhone)
	rg.POST("/bookings/:id/pay", h.VerifyPayment)
	rg.POST("/quote", h.Quote)
}

// Create handles POST /bookings.
func (h *BookingHandler) Create(c *gin.Context) {
	var req application.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, fmt.Sprintf("invalid request body: %v", err))
		return
	}

	result, err := h.service.CreateBooking(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, result)
}

// Get handles GET /bookings/:id.
func (h *BookingHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid booking ID")
		return
	}

	dto, err := h.service.GetBooking(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto)
}

// GetByPhone handles GET /bookings/phone/:phone.
func (h *BookingHandler) GetByPhone(c *gin.Context) {
	dtos, err := h.service.GetBookingsByPhone(c.Request.Context(), c.Param("phone"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessList(c, dtos, len(dtos))
}

type verifyPaymentRequest struct {
	RazorpayOrderID   string `json:"razorpay_order_id" binding:"required"`
	RazorpayPaymentID string `json:"razorpay_payment_id" binding:"required"`
	RazorpaySignature string `json:"razorpay_signature" binding:"required"`
}

// VerifyPayment handles POST /bookings/:id/pay, the gateway callback relay.
func (h *BookingHandler) VerifyPayment(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid booking ID")
		return
	}

	var req verifyPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, fmt.Sprintf("invalid request body: %v", err))
		return
	}

	dto, err := h.service.VerifyPayment(c.Request.Context(), id, req.RazorpayOrderID, req.RazorpayPaymentID, req.RazorpaySignature)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto)
}

// Quote handles POST /quote: a price breakdown without creating a booking.
func (h *BookingHandler) Quote(c *gin.Context) {
	var req application.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, fmt.Sprintf("invalid request body: %v", err))
		return
	}

	breakdown, err := h.service.Quote(req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, breakdown)
}

// Receipt handles GET /bookings/:id/receipt, streaming a PDF receipt.
func (h *BookingHandler) Receipt(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid booking ID")
		return
	}

	bk, err := h.service.GetBookingAggregate(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	data, err := pdf.Receipt(bk)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s.pdf", bk.BookingNumber()))
	c.Data(http.StatusOK, "application/pdf", data)
}
