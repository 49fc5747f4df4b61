package booking

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bubbleflash/service-movers/internal/domain"
)

func validParams(t *testing.T, method PaymentMethod) NewBookingParams {
	t.Helper()

	pricing, err := NewHomeMoveQuoter().Quote(Home2BHK, MoveWithinCity, 12, VehicleSelection{}, PaintingSelection{})
	require.NoError(t, err)

	return NewBookingParams{
		Customer:           Customer{Name: "Asha Verma", Phone: "+919876543210", Email: "asha@example.com"},
		MoveType:           MoveWithinCity,
		HomeSize:           Home2BHK,
		SourceAddress:      Address{Full: "12 MG Road, Bengaluru", Pincode: "560001"},
		DestinationAddress: Address{Full: "4 Residency Road, Bengaluru", Pincode: "560025"},
		MovingDate:         time.Now().AddDate(0, 0, 7),
		DistanceKm:         12,
		Pricing:            pricing,
		PaymentMethod:      method,
	}
}

func TestNewBookingOnlineStartsCreated(t *testing.T) {
	bk, err := NewBooking(validParams(t, PaymentOnline))
	require.NoError(t, err)

	assert.Equal(t, StatusCreated, bk.Status())
	assert.Equal(t, PaymentPending, bk.Payment().Status)
	assert.Equal(t, PaymentOnline, bk.Payment().Method)
	assert.NotEqual(t, uuid.Nil, bk.ID())
	assert.NotEmpty(t, bk.BookingNumber())
	assert.Equal(t, int64(1), bk.Version())
}

func TestNewBookingCODStartsConfirmed(t *testing.T) {
	bk, err := NewBooking(validParams(t, PaymentCOD))
	require.NoError(t, err)

	assert.Equal(t, StatusConfirmed, bk.Status())
	assert.Equal(t, PaymentPending, bk.Payment().Status)
}

func TestNewBookingUPIStartsCreated(t *testing.T) {
	bk, err := NewBooking(validParams(t, PaymentUPI))
	require.NoError(t, err)

	assert.Equal(t, StatusCreated, bk.Status())
}

func TestNewBookingValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*NewBookingParams)
	}{
		{"missing customer name", func(p *NewBookingParams) { p.Customer.Name = "" }},
		{"missing customer phone", func(p *NewBookingParams) { p.Customer.Phone = "" }},
		{"invalid move type", func(p *NewBookingParams) { p.MoveType = "interstate" }},
		{"invalid home size", func(p *NewBookingParams) { p.HomeSize = "6bhk" }},
		{"missing source address", func(p *NewBookingParams) { p.SourceAddress.Full = "" }},
		{"missing destination address", func(p *NewBookingParams) { p.DestinationAddress.Full = "" }},
		{"zero moving date", func(p *NewBookingParams) { p.MovingDate = time.Time{} }},
		{"negative distance", func(p *NewBookingParams) { p.DistanceKm = -5 }},
		{"invalid payment method", func(p *NewBookingParams) { p.PaymentMethod = "cheque" }},
		{"tampered pricing total", func(p *NewBookingParams) { p.Pricing.TotalAmount += 100 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := validParams(t, PaymentOnline)
			tt.mutate(&params)

			_, err := NewBooking(params)
			require.Error(t, err)
			assert.True(t, domain.IsValidation(err))
		})
	}
}

func TestRegenerateNumberChangesNumber(t *testing.T) {
	bk, err := NewBooking(validParams(t, PaymentOnline))
	require.NoError(t, err)

	before := bk.BookingNumber()
	require.NoError(t, bk.RegenerateNumber())
	assert.NotEqual(t, before, bk.BookingNumber())
	assert.Regexp(t, `^MP[0-9A-Z]+$`, bk.BookingNumber())
}

func TestConfirmPayment(t *testing.T) {
	bk, err := NewBooking(validParams(t, PaymentOnline))
	require.NoError(t, err)
	bk.AttachGatewayOrder("order_test123")

	require.NoError(t, bk.ConfirmPayment("pay_test456"))

	assert.Equal(t, StatusConfirmed, bk.Status())
	assert.Equal(t, PaymentPaid, bk.Payment().Status)
	assert.Equal(t, "order_test123", bk.Payment().GatewayOrderID)
	assert.Equal(t, "pay_test456", bk.Payment().GatewayPaymentID)
	assert.Equal(t, bk.Pricing().TotalAmount, bk.Payment().PaidAmount)
	require.NotNil(t, bk.Payment().PaidAt)
	assert.True(t, bk.IsPaid())
}

func TestConfirmPaymentRejectedFromTerminalState(t *testing.T) {
	bk, err := NewBooking(validParams(t, PaymentOnline))
	require.NoError(t, err)
	require.NoError(t, bk.TransitionTo(StatusCancelled, ""))

	err = bk.ConfirmPayment("pay_test456")
	require.Error(t, err)
	assert.True(t, domain.IsInvalidState(err))
	assert.False(t, bk.IsPaid())
}

func TestFailPayment(t *testing.T) {
	bk, err := NewBooking(validParams(t, PaymentOnline))
	require.NoError(t, err)

	bk.FailPayment()

	assert.Equal(t, PaymentFailed, bk.Payment().Status)
	// Status is untouched so the customer can retry payment.
	assert.Equal(t, StatusCreated, bk.Status())
}

func TestFailPaymentDoesNotDowngradePaid(t *testing.T) {
	bk, err := NewBooking(validParams(t, PaymentOnline))
	require.NoError(t, err)
	require.NoError(t, bk.ConfirmPayment("pay_test456"))

	bk.FailPayment()

	assert.Equal(t, PaymentPaid, bk.Payment().Status)
	assert.True(t, bk.IsPaid())
}

func TestTransitionToStampsTimestamps(t *testing.T) {
	bk, err := NewBooking(validParams(t, PaymentCOD))
	require.NoError(t, err)

	require.NoError(t, bk.TransitionTo(StatusInProgress, "crew dispatched"))
	assert.Equal(t, StatusInProgress, bk.Status())
	assert.Equal(t, "crew dispatched", bk.AdminNotes())
	assert.Nil(t, bk.CompletedAt())

	require.NoError(t, bk.TransitionTo(StatusCompleted, ""))
	assert.Equal(t, StatusCompleted, bk.Status())
	require.NotNil(t, bk.CompletedAt())
	assert.Nil(t, bk.CancelledAt())
}

func TestTransitionToCancelledStampsCancelledAt(t *testing.T) {
	bk, err := NewBooking(validParams(t, PaymentCOD))
	require.NoError(t, err)

	require.NoError(t, bk.TransitionTo(StatusCancelled, ""))
	bk.SetCancellationReason("customer changed plans")

	require.NotNil(t, bk.CancelledAt())
	assert.Equal(t, "customer changed plans", bk.CancellationReason())
}

func TestTransitionToRejectsIllegalMoves(t *testing.T) {
	bk, err := NewBooking(validParams(t, PaymentCOD))
	require.NoError(t, err)
	require.NoError(t, bk.TransitionTo(StatusCompleted, ""))

	err = bk.TransitionTo(StatusInProgress, "")
	require.Error(t, err)
	assert.True(t, domain.IsInvalidState(err))
	assert.Equal(t, StatusCompleted, bk.Status())
}

func TestTransitionToRejectsUnknownStatus(t *testing.T) {
	bk, err := NewBooking(validParams(t, PaymentCOD))
	require.NoError(t, err)

	err = bk.TransitionTo("shipped", "")
	require.Error(t, err)
	assert.True(t, domain.IsValidation(err))
}

func TestAssignEmployee(t *testing.T) {
	bk, err := NewBooking(validParams(t, PaymentCOD))
	require.NoError(t, err)

	employeeID := uuid.New()
	require.NoError(t, bk.AssignEmployee(employeeID))
	require.NotNil(t, bk.AssignedEmployee())
	assert.Equal(t, employeeID, *bk.AssignedEmployee())

	assert.Error(t, bk.AssignEmployee(uuid.Nil))
}

func TestSnapshotRoundTrip(t *testing.T) {
	bk, err := NewBooking(validParams(t, PaymentOnline))
	require.NoError(t, err)
	bk.AttachGatewayOrder("order_test123")
	require.NoError(t, bk.ConfirmPayment("pay_test456"))
	bk.IncrementVersion()

	rebuilt := Reconstruct(bk.Snapshot())

	assert.Equal(t, bk.ID(), rebuilt.ID())
	assert.Equal(t, bk.BookingNumber(), rebuilt.BookingNumber())
	assert.Equal(t, bk.Status(), rebuilt.Status())
	assert.Equal(t, bk.Payment(), rebuilt.Payment())
	assert.Equal(t, bk.Pricing(), rebuilt.Pricing())
	assert.Equal(t, bk.Version(), rebuilt.Version())
}

func TestNormalizePaymentMethod(t *testing.T) {
	tests := []struct {
		in   string
		want PaymentMethod
	}{
		{"online", PaymentOnline},
		{"cod", PaymentCOD},
		{"upi", PaymentUPI},
		{"razorpay", PaymentOnline},
		{"cash", PaymentCOD},
		{"", PaymentOnline},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizePaymentMethod(tt.in))
	}

	assert.False(t, NormalizePaymentMethod("cheque").IsValid())
}
