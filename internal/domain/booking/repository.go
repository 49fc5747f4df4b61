package booking

import (
	"context"

	"github.com/google/uuid"
)

// Filter narrows administrative booking listings. Nil fields match all.
type Filter struct {
	Status   *Status
	MoveType *MoveType
}

// Repository defines the persistence contract for booking aggregates.
// Implementations must enforce uniqueness of booking_number and apply
// Update conditionally on the stored version so duplicate payment
// callbacks cannot double-apply.
type Repository interface {
	// Save persists a new booking. A booking-number collision is reported
	// as a ConflictError.
	Save(ctx context.Context, b *Booking) error

	// FindByID retrieves a booking by its unique identifier.
	FindByID(ctx context.Context, id uuid.UUID) (*Booking, error)

	// FindByNumber retrieves a booking by its human-readable booking number.
	FindByNumber(ctx context.Context, number string) (*Booking, error)

	// FindByPhone retrieves all bookings for a customer phone, newest first.
	FindByPhone(ctx context.Context, phone string) ([]*Booking, error)

	// List retrieves bookings matching the filter with pagination, newest
	// first, returning the total match count.
	List(ctx context.Context, filter Filter, page, limit int) ([]*Booking, int64, error)

	// Update persists changes to an existing booking with optimistic locking.
	Update(ctx context.Context, b *Booking) error

	// CountByStatus returns booking counts grouped by status (admin).
	CountByStatus(ctx context.Context) (map[string]int64, error)
}
