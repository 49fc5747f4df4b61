// Package application orchestrates the booking use cases on top of the
// domain layer, the payment gateway and the event stream.
package application

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/bubbleflash/service-movers/internal/domain"
	"github.com/bubbleflash/service-movers/internal/domain/booking"
	"github.com/bubbleflash/service-movers/internal/events"
	"github.com/bubbleflash/service-movers/internal/geo"
	"github.com/bubbleflash/service-movers/internal/payment"
)

const (
	currencyINR    = "INR"
	saveRetryLimit = 3
	eventSource    = "service-movers"
)

// CustomerInput is the customer section of a booking request.
type CustomerInput struct {
	Name      string     `json:"name" binding:"required"`
	Phone     string     `json:"phone" binding:"required"`
	Email     string     `json:"email"`
	AccountID *uuid.UUID `json:"account_id"`
}

// AddressInput is an address as submitted by the client.
type AddressInput struct {
	Full    string   `json:"full" binding:"required"`
	Lat     *float64 `json:"lat"`
	Lng     *float64 `json:"lng"`
	Pincode string   `json:"pincode"`
	City    string   `json:"city"`
}

// CreateBookingRequest holds the data needed to create a new booking.
type CreateBookingRequest struct {
	Customer           CustomerInput              `json:"customer" binding:"required"`
	MoveType           string                     `json:"move_type" binding:"required"`
	HomeSize           string                     `json:"home_size" binding:"required"`
	SourceAddress      AddressInput               `json:"source_address" binding:"required"`
	DestinationAddress AddressInput               `json:"destination_address" binding:"required"`
	MovingDate         time.Time                  `json:"moving_date" binding:"required"`
	DistanceKm         *float64                   `json:"distance_km"`
	VehicleShifting    *booking.VehicleSelection  `json:"vehicle_shifting"`
	PaintingServices   *booking.PaintingSelection `json:"painting_services"`
	PaymentMethod      string                     `json:"payment_method"`
	Notes              string                     `json:"notes"`
}

// QuoteRequest holds the inputs for a standalone price quote.
type QuoteRequest struct {
	MoveType         string                     `json:"move_type" binding:"required"`
	HomeSize         string                     `json:"home_size" binding:"required"`
	DistanceKm       float64                    `json:"distance_km"`
	VehicleShifting  *booking.VehicleSelection  `json:"vehicle_shifting"`
	PaintingServices *booking.PaintingSelection `json:"painting_services"`
}

// BookingDTO is the response representation of a booking.
type BookingDTO struct {
	ID                 uuid.UUID                `json:"id"`
	BookingNumber      string                   `json:"booking_number"`
	Customer           booking.Customer         `json:"customer"`
	MoveType           string                   `json:"move_type"`
	HomeSize           string                   `json:"home_size"`
	SourceAddress      booking.Address          `json:"source_address"`
	DestinationAddress booking.Address          `json:"destination_address"`
	MovingDate         time.Time                `json:"moving_date"`
	DistanceKm         float64                  `json:"distance_km"`
	VehicleShifting    booking.VehicleShifting  `json:"vehicle_shifting"`
	PaintingServices   booking.PaintingServices `json:"painting_services"`
	Pricing            booking.PriceBreakdown   `json:"pricing"`
	Status             string                   `json:"status"`
	Payment            booking.PaymentDetails   `json:"payment"`
	AssignedEmployee   *uuid.UUID               `json:"assigned_employee,omitempty"`
	Notes              string                   `json:"notes,omitempty"`
	AdminNotes         string                   `json:"admin_notes,omitempty"`
	CancellationReason string                   `json:"cancellation_reason,omitempty"`
	CompletedAt        *time.Time               `json:"completed_at,omitempty"`
	CancelledAt        *time.Time               `json:"cancelled_at,omitempty"`
	Version            int64                    `json:"version"`
	CreatedAt          time.Time                `json:"created_at"`
	UpdatedAt          time.Time                `json:"updated_at"`
}

// CreateBookingResult bundles the new booking with the gateway order the
// client needs to complete an online payment. Order is nil for COD.
type CreateBookingResult struct {
	Booking       BookingDTO     `json:"booking"`
	RazorpayOrder *payment.Order `json:"razorpay_order,omitempty"`
}

// ListFilter narrows the administrative booking listing.
type ListFilter struct {
	Status   string
	MoveType string
}

// BookingStatsDTO holds booking statistics for the admin dashboard.
type BookingStatsDTO struct {
	TotalBookings int64            `json:"total_bookings"`
	ByStatus      map[string]int64 `json:"by_status"`
}

// BookingService is the application service orchestrating booking use cases.
type BookingService struct {
	repo      booking.Repository
	quoter    *booking.HomeMoveQuoter
	gateway   payment.Gateway
	verifier  *payment.Verifier
	publisher events.Publisher
	logger    *zap.Logger
}

// NewBookingService creates a new BookingService. publisher may be nil when
// eventing is disabled.
func NewBookingService(
	repo booking.Repository,
	quoter *booking.HomeMoveQuoter,
	gateway payment.Gateway,
	verifier *payment.Verifier,
	publisher events.Publisher,
	logger *zap.Logger,
) *BookingService {
	return &BookingService{
		repo:      repo,
		quoter:    quoter,
		gateway:   gateway,
		verifier:  verifier,
		publisher: publisher,
		logger:    logger,
	}
}

// Quote computes an itemized price breakdown without persisting anything.
func (s *BookingService) Quote(req QuoteRequest) (booking.PriceBreakdown, error) {
	return s.quoter.Quote(
		booking.HomeSize(req.HomeSize),
		booking.MoveType(req.MoveType),
		req.DistanceKm,
		vehicleSelection(req.VehicleShifting),
		paintingSelection(req.PaintingServices),
	)
}

// CreateBooking quotes, mints a booking number, persists the booking and,
// for online/UPI payments, opens a payment-gateway order.
func (s *BookingService) CreateBooking(ctx context.Context, req CreateBookingRequest) (*CreateBookingResult, error) {
	method := booking.NormalizePaymentMethod(req.PaymentMethod)
	if !method.IsValid() {
		return nil, domain.NewValidationError(fmt.Sprintf("invalid payment method: %s", req.PaymentMethod))
	}

	source := toAddress(req.SourceAddress)
	destination := toAddress(req.DestinationAddress)

	distanceKm, err := resolveDistance(req.DistanceKm, source, destination)
	if err != nil {
		return nil, err
	}

	pricing, err := s.quoter.Quote(
		booking.HomeSize(req.HomeSize),
		booking.MoveType(req.MoveType),
		distanceKm,
		vehicleSelection(req.VehicleShifting),
		paintingSelection(req.PaintingServices),
	)
	if err != nil {
		return nil, err
	}

	bk, err := booking.NewBooking(booking.NewBookingParams{
		Customer: booking.Customer{
			Name:      req.Customer.Name,
			Phone:     req.Customer.Phone,
			Email:     req.Customer.Email,
			AccountID: req.Customer.AccountID,
		},
		MoveType:           booking.MoveType(req.MoveType),
		HomeSize:           booking.HomeSize(req.HomeSize),
		SourceAddress:      source,
		DestinationAddress: destination,
		MovingDate:         req.MovingDate,
		DistanceKm:         distanceKm,
		Vehicle:            vehicleSelection(req.VehicleShifting),
		Painting:           paintingSelection(req.PaintingServices),
		Pricing:            pricing,
		PaymentMethod:      method,
		Notes:              req.Notes,
	})
	if err != nil {
		return nil, err
	}

	// The generator alone does not guarantee uniqueness; regenerate and
	// retry when the repository reports a booking-number collision.
	for attempt := 1; ; attempt++ {
		err = s.repo.Save(ctx, bk)
		if err == nil {
			break
		}
		if !domain.IsConflict(err) || attempt >= saveRetryLimit {
			return nil, err
		}
		s.logger.Warn("booking number collision, regenerating",
			zap.String("booking_number", bk.BookingNumber()),
			zap.Int("attempt", attempt),
		)
		if err := bk.RegenerateNumber(); err != nil {
			return nil, err
		}
	}

	result := &CreateBookingResult{}

	if method.RequiresGatewayOrder() {
		order, err := s.gateway.CreateOrder(ctx, payment.OrderRequest{
			AmountMinorUnits: toMinorUnits(pricing.TotalAmount),
			Currency:         currencyINR,
			Receipt:          bk.BookingNumber(),
			Notes: map[string]string{
				"booking_number": bk.BookingNumber(),
				"move_type":      string(bk.MoveType()),
				"home_size":      string(bk.HomeSize()),
			},
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create gateway order for %s: %w", bk.BookingNumber(), err)
		}

		bk.AttachGatewayOrder(order.ID)
		bk.IncrementVersion()
		if err := s.repo.Update(ctx, bk); err != nil {
			return nil, err
		}
		result.RazorpayOrder = &order
	}

	s.publish(ctx, events.BookingCreated, bk)

	result.Booking = toBookingDTO(bk)
	return result, nil
}

// VerifyPayment checks a gateway callback's signature and, on success,
// advances the booking to confirmed. A mismatch marks the payment failed
// but leaves the status untouched so the customer can retry. Duplicate
// callbacks for an already-paid booking are idempotent.
func (s *BookingService) VerifyPayment(ctx context.Context, bookingID uuid.UUID, orderID, paymentID, signature string) (*BookingDTO, error) {
	bk, err := s.repo.FindByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if !s.verifier.Verify(orderID, paymentID, signature) {
		bk.FailPayment()
		bk.IncrementVersion()
		if err := s.repo.Update(ctx, bk); err != nil {
			return nil, err
		}
		s.publish(ctx, events.BookingPaymentFailed, bk)
		return nil, domain.NewVerificationError("invalid payment signature")
	}

	// Redelivered callback for a booking that is already paid: no further
	// side effects.
	if bk.IsPaid() {
		dto := toBookingDTO(bk)
		return &dto, nil
	}

	if err := bk.ConfirmPayment(paymentID); err != nil {
		return nil, err
	}
	bk.IncrementVersion()
	if err := s.repo.Update(ctx, bk); err != nil {
		return nil, err
	}

	s.publish(ctx, events.BookingPaymentConfirmed, bk)

	dto := toBookingDTO(bk)
	return &dto, nil
}

// GetBooking retrieves a single booking by ID.
func (s *BookingService) GetBooking(ctx context.Context, bookingID uuid.UUID) (*BookingDTO, error) {
	bk, err := s.repo.FindByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	dto := toBookingDTO(bk)
	return &dto, nil
}

// GetBookingAggregate retrieves the domain aggregate, for callers that need
// more than the DTO (receipt rendering).
func (s *BookingService) GetBookingAggregate(ctx context.Context, bookingID uuid.UUID) (*booking.Booking, error) {
	return s.repo.FindByID(ctx, bookingID)
}

// GetBookingsByPhone retrieves all bookings for a customer phone, newest
// first.
func (s *BookingService) GetBookingsByPhone(ctx context.Context, phone string) ([]BookingDTO, error) {
	if phone == "" {
		return nil, domain.NewValidationError("phone is required")
	}
	bookings, err := s.repo.FindByPhone(ctx, phone)
	if err != nil {
		return nil, err
	}
	dtos := make([]BookingDTO, len(bookings))
	for i, bk := range bookings {
		dtos[i] = toBookingDTO(bk)
	}
	return dtos, nil
}

// ListBookings returns a filtered, paginated listing (admin).
func (s *BookingService) ListBookings(ctx context.Context, filter ListFilter, page, limit int) (*domain.PaginatedResult[BookingDTO], error) {
	var f booking.Filter
	if filter.Status != "" {
		status, err := booking.ParseStatus(filter.Status)
		if err != nil {
			return nil, domain.NewValidationError(err.Error())
		}
		f.Status = &status
	}
	if filter.MoveType != "" {
		mt := booking.MoveType(filter.MoveType)
		if !mt.IsValid() {
			return nil, domain.NewValidationError(fmt.Sprintf("invalid move type: %s", filter.MoveType))
		}
		f.MoveType = &mt
	}

	bookings, total, err := s.repo.List(ctx, f, page, limit)
	if err != nil {
		return nil, err
	}

	dtos := make([]BookingDTO, len(bookings))
	for i, bk := range bookings {
		dtos[i] = toBookingDTO(bk)
	}
	result := domain.NewPaginatedResult(dtos, total, page, limit)
	return &result, nil
}

// UpdateStatus runs an administrative lifecycle transition, attaching admin
// notes and, for cancellations, the reason.
func (s *BookingService) UpdateStatus(ctx context.Context, bookingID uuid.UUID, status, adminNotes, reason string) (*BookingDTO, error) {
	target, err := booking.ParseStatus(status)
	if err != nil {
		return nil, domain.NewValidationError(err.Error())
	}

	bk, err := s.repo.FindByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if err := bk.TransitionTo(target, adminNotes); err != nil {
		return nil, err
	}
	if target == booking.StatusCancelled && reason != "" {
		bk.SetCancellationReason(reason)
	}

	bk.IncrementVersion()
	if err := s.repo.Update(ctx, bk); err != nil {
		return nil, err
	}

	s.publish(ctx, events.BookingStatusChanged, bk)

	dto := toBookingDTO(bk)
	return &dto, nil
}

// AssignEmployee sets the employee responsible for the booking. Allowed at
// any time and independent of status.
func (s *BookingService) AssignEmployee(ctx context.Context, bookingID, employeeID uuid.UUID) (*BookingDTO, error) {
	bk, err := s.repo.FindByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if err := bk.AssignEmployee(employeeID); err != nil {
		return nil, err
	}

	bk.IncrementVersion()
	if err := s.repo.Update(ctx, bk); err != nil {
		return nil, err
	}

	s.publish(ctx, events.BookingEmployeeAssigned, bk)

	dto := toBookingDTO(bk)
	return &dto, nil
}

// GetStats returns aggregate booking statistics (admin).
func (s *BookingService) GetStats(ctx context.Context) (*BookingStatsDTO, error) {
	counts, err := s.repo.CountByStatus(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get booking stats: %w", err)
	}

	var total int64
	for _, c := range counts {
		total += c
	}
	return &BookingStatsDTO{TotalBookings: total, ByStatus: counts}, nil
}

// --- Helpers ---

func (s *BookingService) publish(ctx context.Context, eventType string, bk *booking.Booking) {
	if s.publisher == nil {
		return
	}

	evt := events.BookingEvent{
		BookingID:     bk.ID(),
		BookingNumber: bk.BookingNumber(),
		Status:        string(bk.Status()),
		PaymentStatus: string(bk.Payment().Status),
		TotalAmount:   bk.Pricing().TotalAmount,
		OccurredAt:    time.Now().UTC(),
	}
	cloudEvent, err := events.NewCloudEvent(eventSource, eventType, evt)
	if err != nil {
		s.logger.Error("failed to create cloud event",
			zap.String("event_type", eventType),
			zap.Error(err),
		)
		return
	}

	if err := s.publisher.PublishEvent(ctx, events.TopicBookingEvents, bk.ID().String(), cloudEvent); err != nil {
		s.logger.Error("failed to publish event",
			zap.String("event_type", eventType),
			zap.String("booking_id", bk.ID().String()),
			zap.Error(err),
		)
	}
}

// resolveDistance prefers a caller-supplied distance, falls back to the
// haversine estimate when both addresses carry coordinates, and otherwise
// treats the move as within the flat-rate radius.
func resolveDistance(supplied *float64, source, destination booking.Address) (float64, error) {
	if supplied != nil {
		if *supplied < 0 {
			return 0, domain.NewValidationError("distance cannot be negative")
		}
		return *supplied, nil
	}
	if source.HasCoordinates() && destination.HasCoordinates() {
		return geo.DistanceKm(*source.Latitude, *source.Longitude, *destination.Latitude, *destination.Longitude), nil
	}
	return 0, nil
}

func toMinorUnits(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

func toAddress(in AddressInput) booking.Address {
	return booking.Address{
		Full:      in.Full,
		Latitude:  in.Lat,
		Longitude: in.Lng,
		Pincode:   in.Pincode,
		City:      in.City,
	}
}

func vehicleSelection(in *booking.VehicleSelection) booking.VehicleSelection {
	if in == nil {
		return booking.VehicleSelection{}
	}
	return *in
}

func paintingSelection(in *booking.PaintingSelection) booking.PaintingSelection {
	if in == nil {
		return booking.PaintingSelection{}
	}
	return *in
}

func toBookingDTO(bk *booking.Booking) BookingDTO {
	return BookingDTO{
		ID:                 bk.ID(),
		BookingNumber:      bk.BookingNumber(),
		Customer:           bk.Customer(),
		MoveType:           string(bk.MoveType()),
		HomeSize:           string(bk.HomeSize()),
		SourceAddress:      bk.SourceAddress(),
		DestinationAddress: bk.DestinationAddress(),
		MovingDate:         bk.MovingDate(),
		DistanceKm:         bk.DistanceKm(),
		VehicleShifting:    bk.VehicleShifting(),
		PaintingServices:   bk.PaintingServices(),
		Pricing:            bk.Pricing(),
		Status:             string(bk.Status()),
		Payment:            bk.Payment(),
		AssignedEmployee:   bk.AssignedEmployee(),
		Notes:              bk.Notes(),
		AdminNotes:         bk.AdminNotes(),
		CancellationReason: bk.CancellationReason(),
		CompletedAt:        bk.CompletedAt(),
		CancelledAt:        bk.CancelledAt(),
		Version:            bk.Version(),
		CreatedAt:          bk.CreatedAt(),
		UpdatedAt:          bk.UpdatedAt(),
	}
}
