package booking

import (
	"fmt"
	"time"

	"github.com/bubbleflash/service-movers/internal/domain"
	"github.com/google/uuid"
)

const (
	maxNameLen    = 100
	maxPhoneLen   = 15
	maxEmailLen   = 100
	maxAddressLen = 500
	maxNotesLen   = 1000
)

// Booking is the aggregate root for a movers & packers booking.
type Booking struct {
	id                 uuid.UUID
	bookingNumber      string
	customer           Customer
	moveType           MoveType
	homeSize           HomeSize
	sourceAddress      Address
	destinationAddress Address
	movingDate         time.Time
	distanceKm         float64
	vehicleShifting    VehicleShifting
	paintingServices   PaintingServices
	pricing            PriceBreakdown
	status             Status
	payment            PaymentDetails
	assignedEmployee   *uuid.UUID
	notes              string
	adminNotes         string
	cancellationReason string
	completedAt        *time.Time
	cancelledAt        *time.Time

	version   int64
	createdAt time.Time
	updatedAt time.Time
}

// NewBookingParams holds the validated-at-construction inputs for a booking.
type NewBookingParams struct {
	Customer           Customer
	MoveType           MoveType
	HomeSize           HomeSize
	SourceAddress      Address
	DestinationAddress Address
	MovingDate         time.Time
	DistanceKm         float64
	Vehicle            VehicleSelection
	Painting           PaintingSelection
	Pricing            PriceBreakdown
	PaymentMethod      PaymentMethod
	Notes              string
}

// NewBooking creates a new Booking aggregate. COD bookings enter the
// lifecycle directly as confirmed; online and UPI bookings start as created
// and wait for a verified payment callback. The booking number is assigned
// exactly once, here, before any persistence.
func NewBooking(p NewBookingParams) (*Booking, error) {
	if p.Customer.Name == "" {
		return nil, domain.NewValidationError("customer name is required")
	}
	if len(p.Customer.Name) > maxNameLen {
		return nil, domain.NewValidationError("customer name is too long")
	}
	if p.Customer.Phone == "" {
		return nil, domain.NewValidationError("customer phone is required")
	}
	if len(p.Customer.Phone) > maxPhoneLen {
		return nil, domain.NewValidationError("customer phone is too long")
	}
	if len(p.Customer.Email) > maxEmailLen {
		return nil, domain.NewValidationError("customer email is too long")
	}
	if !p.MoveType.IsValid() {
		return nil, domain.NewValidationError(fmt.Sprintf("invalid move type: %s", p.MoveType))
	}
	if !p.HomeSize.IsValid() {
		return nil, domain.NewValidationError(fmt.Sprintf("invalid home size: %s", p.HomeSize))
	}
	if p.SourceAddress.Full == "" {
		return nil, domain.NewValidationError("source address is required")
	}
	if p.DestinationAddress.Full == "" {
		return nil, domain.NewValidationError("destination address is required")
	}
	if len(p.SourceAddress.Full) > maxAddressLen || len(p.DestinationAddress.Full) > maxAddressLen {
		return nil, domain.NewValidationError("address is too long")
	}
	if p.MovingDate.IsZero() {
		return nil, domain.NewValidationError("moving date is required")
	}
	if p.DistanceKm < 0 {
		return nil, domain.NewValidationError("distance cannot be negative")
	}
	if !p.PaymentMethod.IsValid() {
		return nil, domain.NewValidationError(fmt.Sprintf("invalid payment method: %s", p.PaymentMethod))
	}
	if len(p.Notes) > maxNotesLen {
		return nil, domain.NewValidationError("notes are too long")
	}
	sum := p.Pricing.BasePrice + p.Pricing.VehicleCharge + p.Pricing.PaintingCharge + p.Pricing.DistanceCharge
	if p.Pricing.TotalAmount != roundPaise(sum) {
		return nil, domain.NewValidationError("pricing total does not match its components")
	}

	number, err := GenerateBookingNumber()
	if err != nil {
		return nil, err
	}

	status := StatusCreated
	if p.PaymentMethod == PaymentCOD {
		status = StatusConfirmed
	}

	vehicleType := VehicleType("")
	if p.Vehicle.Enabled {
		vehicleType = p.Vehicle.VehicleType
	}

	now := time.Now().UTC()
	return &Booking{
		id:                 uuid.New(),
		bookingNumber:      number,
		customer:           p.Customer,
		moveType:           p.MoveType,
		homeSize:           p.HomeSize,
		sourceAddress:      p.SourceAddress,
		destinationAddress: p.DestinationAddress,
		movingDate:         p.MovingDate,
		distanceKm:         p.DistanceKm,
		vehicleShifting: VehicleShifting{
			Enabled:     p.Vehicle.Enabled,
			VehicleType: vehicleType,
			Charge:      p.Pricing.VehicleCharge,
		},
		paintingServices: PaintingServices{
			Interior: p.Painting.Interior,
			Exterior: p.Painting.Exterior,
			Wood:     p.Painting.Wood,
			Charge:   p.Pricing.PaintingCharge,
		},
		pricing: p.Pricing,
		status:  status,
		payment: PaymentDetails{
			Method: p.PaymentMethod,
			Status: PaymentPending,
		},
		notes:     p.Notes,
		version:   1,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// RegenerateNumber mints a fresh booking number after a uniqueness conflict.
// Only legal before the booking has been persisted.
func (b *Booking) RegenerateNumber() error {
	number, err := GenerateBookingNumber()
	if err != nil {
		return err
	}
	b.bookingNumber = number
	return nil
}

// Snapshot is the flat persistence view of a Booking, used by repositories
// to rebuild the aggregate without re-running creation validation.
type Snapshot struct {
	ID                 uuid.UUID
	BookingNumber      string
	Customer           Customer
	MoveType           MoveType
	HomeSize           HomeSize
	SourceAddress      Address
	DestinationAddress Address
	MovingDate         time.Time
	DistanceKm         float64
	VehicleShifting    VehicleShifting
	PaintingServices   PaintingServices
	Pricing            PriceBreakdown
	Status             Status
	Payment            PaymentDetails
	AssignedEmployee   *uuid.UUID
	Notes              string
	AdminNotes         string
	CancellationReason string
	CompletedAt        *time.Time
	CancelledAt        *time.Time
	Version            int64
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// Reconstruct rebuilds a Booking from persistence data (no validation).
func Reconstruct(s Snapshot) *Booking {
	return &Booking{
		id:                 s.ID,
		bookingNumber:      s.BookingNumber,
		customer:           s.Customer,
		moveType:           s.MoveType,
		homeSize:           s.HomeSize,
		sourceAddress:      s.SourceAddress,
		destinationAddress: s.DestinationAddress,
		movingDate:         s.MovingDate,
		distanceKm:         s.DistanceKm,
		vehicleShifting:    s.VehicleShifting,
		paintingServices:   s.PaintingServices,
		pricing:            s.Pricing,
		status:             s.Status,
		payment:            s.Payment,
		assignedEmployee:   s.AssignedEmployee,
		notes:              s.Notes,
		adminNotes:         s.AdminNotes,
		cancellationReason: s.CancellationReason,
		completedAt:        s.CompletedAt,
		cancelledAt:        s.CancelledAt,
		version:            s.Version,
		createdAt:          s.CreatedAt,
		updatedAt:          s.UpdatedAt,
	}
}

// Snapshot returns the flat persistence view of the booking.
func (b *Booking) Snapshot() Snapshot {
	return Snapshot{
		ID:                 b.id,
		BookingNumber:      b.bookingNumber,
		Customer:           b.customer,
		MoveType:           b.moveType,
		HomeSize:           b.homeSize,
		SourceAddress:      b.sourceAddress,
		DestinationAddress: b.destinationAddress,
		MovingDate:         b.movingDate,
		DistanceKm:         b.distanceKm,
		VehicleShifting:    b.vehicleShifting,
		PaintingServices:   b.paintingServices,
		Pricing:            b.pricing,
		Status:             b.status,
		Payment:            b.payment,
		AssignedEmployee:   b.assignedEmployee,
		Notes:              b.notes,
		AdminNotes:         b.adminNotes,
		CancellationReason: b.cancellationReason,
		CompletedAt:        b.completedAt,
		CancelledAt:        b.cancelledAt,
		Version:            b.version,
		CreatedAt:          b.createdAt,
		UpdatedAt:          b.updatedAt,
	}
}

// --- Getters ---

// ID returns the booking's unique identifier.
func (b *Booking) ID() uuid.UUID { return b.id }

// BookingNumber returns the human-readable booking number.
func (b *Booking) BookingNumber() string { return b.bookingNumber }

// Customer returns the customer details.
func (b *Booking) Customer() Customer { return b.customer }

// MoveType returns the move type. Immutable after creation.
func (b *Booking) MoveType() MoveType { return b.moveType }

// HomeSize returns the dwelling size. Immutable after creation.
func (b *Booking) HomeSize() HomeSize { return b.homeSize }

// SourceAddress returns the source address.
func (b *Booking) SourceAddress() Address { return b.sourceAddress }

// DestinationAddress returns the destination address.
func (b *Booking) DestinationAddress() Address { return b.destinationAddress }

// MovingDate returns the scheduled moving date.
func (b *Booking) MovingDate() time.Time { return b.movingDate }

// DistanceKm returns the move distance used for pricing.
func (b *Booking) DistanceKm() float64 { return b.distanceKm }

// VehicleShifting returns the vehicle-shifting add-on.
func (b *Booking) VehicleShifting() VehicleShifting { return b.vehicleShifting }

// PaintingServices returns the painting add-on.
func (b *Booking) PaintingServices() PaintingServices { return b.paintingServices }

// Pricing returns the itemized price breakdown computed at creation.
func (b *Booking) Pricing() PriceBreakdown { return b.pricing }

// Status returns the current booking status.
func (b *Booking) Status() Status { return b.status }

// Payment returns the payment details.
func (b *Booking) Payment() PaymentDetails { return b.payment }

// AssignedEmployee returns the assigned employee, or nil if unassigned.
func (b *Booking) AssignedEmployee() *uuid.UUID { return b.assignedEmployee }

// Notes returns the customer notes.
func (b *Booking) Notes() string { return b.notes }

// AdminNotes returns the administrative notes.
func (b *Booking) AdminNotes() string { return b.adminNotes }

// CancellationReason returns the cancellation reason, if any.
func (b *Booking) CancellationReason() string { return b.cancellationReason }

// CompletedAt returns when the booking was completed.
func (b *Booking) CompletedAt() *time.Time { return b.completedAt }

// CancelledAt returns when the booking was cancelled.
func (b *Booking) CancelledAt() *time.Time { return b.cancelledAt }

// Version returns the entity version for optimistic locking.
func (b *Booking) Version() int64 { return b.version }

// CreatedAt returns the creation timestamp.
func (b *Booking) CreatedAt() time.Time { return b.createdAt }

// UpdatedAt returns the last-updated timestamp.
func (b *Booking) UpdatedAt() time.Time { return b.updatedAt }

// --- Behavior ---

// AttachGatewayOrder records the payment-gateway order created for this
// booking.
func (b *Booking) AttachGatewayOrder(orderID string) {
	b.payment.GatewayOrderID = orderID
	b.updatedAt = time.Now().UTC()
}

// ConfirmPayment advances the booking to confirmed after a verified payment
// callback, recording the gateway payment reference and the paid amount.
func (b *Booking) ConfirmPayment(gatewayPaymentID string) error {
	if !b.status.CanTransitionTo(StatusConfirmed) {
		return domain.NewInvalidStateError(string(b.status), string(StatusConfirmed))
	}
	now := time.Now().UTC()
	b.status = StatusConfirmed
	b.payment.Status = PaymentPaid
	b.payment.GatewayPaymentID = gatewayPaymentID
	b.payment.PaidAmount = b.pricing.TotalAmount
	b.payment.PaidAt = &now
	b.updatedAt = now
	return nil
}

// FailPayment marks the payment as failed after a signature mismatch. The
// booking status is deliberately left unchanged so the customer can retry.
// A booking that has already been paid is never marked failed.
func (b *Booking) FailPayment() {
	if b.payment.Status == PaymentPaid {
		return
	}
	b.payment.Status = PaymentFailed
	b.updatedAt = time.Now().UTC()
}

// IsPaid reports whether the payment has been verified.
func (b *Booking) IsPaid() bool {
	return b.payment.Status == PaymentPaid
}

// TransitionTo moves the booking to the target status if the transition is
// legal, stamping completed_at / cancelled_at on entry into those states.
// Administrative notes, when present, are attached in the same operation.
func (b *Booking) TransitionTo(target Status, adminNotes string) error {
	if !target.IsValid() {
		return domain.NewValidationError(fmt.Sprintf("invalid booking status: %s", target))
	}
	if !b.status.CanTransitionTo(target) {
		return domain.NewInvalidStateError(string(b.status), string(target))
	}
	now := time.Now().UTC()
	b.status = target
	switch target {
	case StatusCompleted:
		b.completedAt = &now
	case StatusCancelled:
		b.cancelledAt = &now
	}
	if adminNotes != "" {
		b.adminNotes = adminNotes
	}
	b.updatedAt = now
	return nil
}

// SetCancellationReason records why a booking was cancelled.
func (b *Booking) SetCancellationReason(reason string) {
	b.cancellationReason = reason
	b.updatedAt = time.Now().UTC()
}

// AssignEmployee assigns an employee to the booking. Allowed at any time
// and does not affect status or pricing.
func (b *Booking) AssignEmployee(employeeID uuid.UUID) error {
	if employeeID == uuid.Nil {
		return domain.NewValidationError("employee ID is required")
	}
	b.assignedEmployee = &employeeID
	b.updatedAt = time.Now().UTC()
	return nil
}

// IncrementVersion bumps the version for optimistic locking.
func (b *Booking) IncrementVersion() {
	b.version++
	b.updatedAt = time.Now().UTC()
}
