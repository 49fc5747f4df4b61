package booking

import (
	"time"

	"github.com/google/uuid"
)

// MoveType distinguishes local moves from intercity moves.
type MoveType string

const (
	MoveWithinCity MoveType = "within-city"
	MoveIntercity  MoveType = "intercity"
)

// IsValid returns true if the move type is recognized.
func (m MoveType) IsValid() bool {
	switch m {
	case MoveWithinCity, MoveIntercity:
		return true
	}
	return false
}

// HomeSize represents the dwelling size being moved.
type HomeSize string

const (
	Home1BHK  HomeSize = "1bhk"
	Home2BHK  HomeSize = "2bhk"
	Home3BHK  HomeSize = "3bhk"
	Home4BHK  HomeSize = "4bhk"
	HomeVilla HomeSize = "villa"
)

// IsValid returns true if the home size is recognized.
func (h HomeSize) IsValid() bool {
	switch h {
	case Home1BHK, Home2BHK, Home3BHK, Home4BHK, HomeVilla:
		return true
	}
	return false
}

// VehicleType represents which vehicles are shifted alongside the move.
type VehicleType string

const (
	VehicleBike VehicleType = "bike"
	VehicleCar  VehicleType = "car"
	VehicleBoth VehicleType = "both"
)

// IsValid returns true if the vehicle type is recognized.
func (v VehicleType) IsValid() bool {
	switch v {
	case VehicleBike, VehicleCar, VehicleBoth:
		return true
	}
	return false
}

// PaymentMethod is how the customer pays for the booking.
type PaymentMethod string

const (
	PaymentOnline PaymentMethod = "online"
	PaymentCOD    PaymentMethod = "cod"
	PaymentUPI    PaymentMethod = "upi"
)

// IsValid returns true if the payment method is recognized.
func (p PaymentMethod) IsValid() bool {
	switch p {
	case PaymentOnline, PaymentCOD, PaymentUPI:
		return true
	}
	return false
}

// NormalizePaymentMethod maps legacy aliases from older clients onto the
// closed enum. Unknown values pass through and fail IsValid.
func NormalizePaymentMethod(s string) PaymentMethod {
	switch s {
	case "razorpay":
		return PaymentOnline
	case "cash":
		return PaymentCOD
	case "":
		return PaymentOnline
	}
	return PaymentMethod(s)
}

// RequiresGatewayOrder reports whether this method needs a payment-gateway
// order at booking creation.
func (p PaymentMethod) RequiresGatewayOrder() bool {
	return p == PaymentOnline || p == PaymentUPI
}

// PaymentState is the state of the payment attached to a booking.
type PaymentState string

const (
	PaymentPending PaymentState = "pending"
	PaymentPaid    PaymentState = "paid"
	PaymentFailed  PaymentState = "failed"
)

// Customer identifies the person the booking belongs to.
type Customer struct {
	Name      string     `json:"name"`
	Phone     string     `json:"phone"`
	Email     string     `json:"email,omitempty"`
	AccountID *uuid.UUID `json:"account_id,omitempty"`
}

// Address is a value object for the source or destination of a move.
type Address struct {
	Full      string   `json:"full"`
	Latitude  *float64 `json:"lat,omitempty"`
	Longitude *float64 `json:"lng,omitempty"`
	Pincode   string   `json:"pincode,omitempty"`
	City      string   `json:"city,omitempty"`
}

// HasCoordinates reports whether both latitude and longitude are present.
func (a Address) HasCoordinates() bool {
	return a.Latitude != nil && a.Longitude != nil
}

// VehicleSelection is the vehicle-shifting add-on as requested by the caller.
type VehicleSelection struct {
	Enabled     bool        `json:"enabled"`
	VehicleType VehicleType `json:"vehicle_type,omitempty"`
}

// PaintingSelection is the painting add-on as requested by the caller.
// Flags are independent; any subset is valid.
type PaintingSelection struct {
	Interior bool `json:"interior"`
	Exterior bool `json:"exterior"`
	Wood     bool `json:"wood"`
}

// VehicleShifting is the stored vehicle add-on with its priced charge.
type VehicleShifting struct {
	Enabled     bool        `json:"enabled"`
	VehicleType VehicleType `json:"vehicle_type,omitempty"`
	Charge      float64     `json:"charge"`
}

// PaintingServices is the stored painting add-on with its priced charge.
type PaintingServices struct {
	Interior bool    `json:"interior"`
	Exterior bool    `json:"exterior"`
	Wood     bool    `json:"wood"`
	Charge   float64 `json:"charge"`
}

// PriceBreakdown is the itemized result of a quote. TotalAmount is always
// the sum of the four components.
type PriceBreakdown struct {
	BasePrice      float64 `json:"base_price"`
	VehicleCharge  float64 `json:"vehicle_charge"`
	PaintingCharge float64 `json:"painting_charge"`
	DistanceCharge float64 `json:"distance_charge"`
	TotalAmount    float64 `json:"total_amount"`
}

// PaymentDetails tracks the gateway references and state for a booking.
type PaymentDetails struct {
	Method           PaymentMethod `json:"method"`
	GatewayOrderID   string        `json:"gateway_order_id,omitempty"`
	GatewayPaymentID string        `json:"gateway_payment_id,omitempty"`
	Status           PaymentState  `json:"status"`
	PaidAmount       float64       `json:"paid_amount"`
	PaidAt           *time.Time    `json:"paid_at,omitempty"`
}
