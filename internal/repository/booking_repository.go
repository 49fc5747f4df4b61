// Package repository implements the booking repository on PostgreSQL via
// gorm, with sub-documents stored as jsonb.
package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/bubbleflash/service-movers/internal/domain"
	"github.com/bubbleflash/service-movers/internal/domain/booking"
)

const uniqueViolationCode = "23505"

// BookingModel is the gorm persistence model for a booking.
type BookingModel struct {
	ID                 uuid.UUID      `gorm:"type:uuid;primaryKey"`
	BookingNumber      string         `gorm:"uniqueIndex;size:32;not null"`
	CustomerPhone      string         `gorm:"index;size:15;not null"`
	Customer           datatypes.JSON `gorm:"type:jsonb;not null"`
	MoveType           string         `gorm:"index;size:20;not null"`
	HomeSize           string         `gorm:"size:20;not null"`
	SourceAddress      datatypes.JSON `gorm:"type:jsonb;not null"`
	DestinationAddress datatypes.JSON `gorm:"type:jsonb;not null"`
	MovingDate         time.Time      `gorm:"index;not null"`
	DistanceKm         float64        `gorm:"not null"`
	VehicleShifting    datatypes.JSON `gorm:"type:jsonb"`
	PaintingServices   datatypes.JSON `gorm:"type:jsonb"`
	Pricing            datatypes.JSON `gorm:"type:jsonb;not null"`
	Status             string         `gorm:"index;size:20;not null"`
	Payment            datatypes.JSON `gorm:"type:jsonb;not null"`
	AssignedEmployee   *uuid.UUID     `gorm:"type:uuid"`
	Notes              string         `gorm:"type:text"`
	AdminNotes         string         `gorm:"type:text"`
	CancellationReason string         `gorm:"type:text"`
	CompletedAt        *time.Time
	CancelledAt        *time.Time
	Version            int64     `gorm:"not null"`
	CreatedAt          time.Time `gorm:"not null"`
	UpdatedAt          time.Time `gorm:"not null"`
}

// TableName sets the table name for gorm.
func (BookingModel) TableName() string { return "bookings" }

// BookingRepository is the PostgreSQL implementation of booking.Repository.
type BookingRepository struct {
	db *gorm.DB
}

// NewBookingRepository creates a BookingRepository.
func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

// Save inserts a new booking. A unique violation on the booking number is
// reported as a ConflictError so the caller can regenerate and retry.
func (r *BookingRepository) Save(ctx context.Context, bk *booking.Booking) error {
	model, err := toModel(bk)
	if err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if isUniqueViolation(err) {
			return domain.NewConflictError(fmt.Sprintf("booking number %s already exists", bk.BookingNumber()))
		}
		return fmt.Errorf("failed to save booking: %w", err)
	}
	return nil
}

// FindByID retrieves a booking by its ID.
func (r *BookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	var model BookingModel
	err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("Booking", id.String())
		}
		return nil, fmt.Errorf("failed to find booking: %w", err)
	}
	return toDomain(&model)
}

// FindByNumber retrieves a booking by its booking number.
func (r *BookingRepository) FindByNumber(ctx context.Context, number string) (*booking.Booking, error) {
	var model BookingModel
	err := r.db.WithContext(ctx).First(&model, "booking_number = ?", number).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("Booking", number)
		}
		return nil, fmt.Errorf("failed to find booking: %w", err)
	}
	return toDomain(&model)
}

// FindByPhone retrieves a customer's bookings, newest first.
func (r *BookingRepository) FindByPhone(ctx context.Context, phone string) ([]*booking.Booking, error) {
	var models []BookingModel
	err := r.db.WithContext(ctx).
		Where("customer_phone = ?", phone).
		Order("created_at DESC").
		Find(&models).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find bookings by phone: %w", err)
	}
	return toDomainSlice(models)
}

// List retrieves a filtered, paginated page of bookings plus the total count.
func (r *BookingRepository) List(ctx context.Context, filter booking.Filter, page, limit int) ([]*booking.Booking, int64, error) {
	query := r.db.WithContext(ctx).Model(&BookingModel{})
	if filter.Status != nil {
		query = query.Where("status = ?", string(*filter.Status))
	}
	if filter.MoveType != nil {
		query = query.Where("move_type = ?", string(*filter.MoveType))
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count bookings: %w", err)
	}

	var models []BookingModel
	err := query.
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&models).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list bookings: %w", err)
	}

	bookings, err := toDomainSlice(models)
	if err != nil {
		return nil, 0, err
	}
	return bookings, total, nil
}

// Update persists the booking conditioned on its previous version. A stale
// version matches no rows and surfaces as a ConflictError.
func (r *BookingRepository) Update(ctx context.Context, bk *booking.Booking) error {
	model, err := toModel(bk)
	if err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&BookingModel{}).
		Where("id = ? AND version = ?", model.ID, model.Version-1).
		Updates(map[string]interface{}{
			"customer":            model.Customer,
			"customer_phone":      model.CustomerPhone,
			"vehicle_shifting":    model.VehicleShifting,
			"painting_services":   model.PaintingServices,
			"pricing":             model.Pricing,
			"status":              model.Status,
			"payment":             model.Payment,
			"assigned_employee":   model.AssignedEmployee,
			"notes":               model.Notes,
			"admin_notes":         model.AdminNotes,
			"cancellation_reason": model.CancellationReason,
			"completed_at":        model.CompletedAt,
			"cancelled_at":        model.CancelledAt,
			"version":             model.Version,
			"updated_at":          model.UpdatedAt,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update booking: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.NewConflictError(fmt.Sprintf("booking %s was modified concurrently", bk.ID()))
	}
	return nil
}

// CountByStatus returns the number of bookings per status.
func (r *BookingRepository) CountByStatus(ctx context.Context) (map[string]int64, error) {
	type row struct {
		Status string
		Count  int64
	}
	var rows []row
	err := r.db.WithContext(ctx).
		Model(&BookingModel{}).
		Select("status, COUNT(*) as count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count bookings by status: %w", err)
	}

	counts := make(map[string]int64, len(rows))
	for _, item := range rows {
		counts[item.Status] = item.Count
	}
	return counts, nil
}

// --- Mapping ---

func toModel(bk *booking.Booking) (*BookingModel, error) {
	s := bk.Snapshot()

	customer, err := json.Marshal(s.Customer)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal customer: %w", err)
	}
	source, err := json.Marshal(s.SourceAddress)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal source address: %w", err)
	}
	destination, err := json.Marshal(s.DestinationAddress)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal destination address: %w", err)
	}
	vehicle, err := json.Marshal(s.VehicleShifting)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal vehicle shifting: %w", err)
	}
	painting, err := json.Marshal(s.PaintingServices)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal painting services: %w", err)
	}
	pricing, err := json.Marshal(s.Pricing)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal pricing: %w", err)
	}
	payment, err := json.Marshal(s.Payment)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal payment: %w", err)
	}

	return &BookingModel{
		ID:                 s.ID,
		BookingNumber:      s.BookingNumber,
		CustomerPhone:      s.Customer.Phone,
		Customer:           datatypes.JSON(customer),
		MoveType:           string(s.MoveType),
		HomeSize:           string(s.HomeSize),
		SourceAddress:      datatypes.JSON(source),
		DestinationAddress: datatypes.JSON(destination),
		MovingDate:         s.MovingDate,
		DistanceKm:         s.DistanceKm,
		VehicleShifting:    datatypes.JSON(vehicle),
		PaintingServices:   datatypes.JSON(painting),
		Pricing:            datatypes.JSON(pricing),
		Status:             string(s.Status),
		Payment:            datatypes.JSON(payment),
		AssignedEmployee:   s.AssignedEmployee,
		Notes:              s.Notes,
		AdminNotes:         s.AdminNotes,
		CancellationReason: s.CancellationReason,
		CompletedAt:        s.CompletedAt,
		CancelledAt:        s.CancelledAt,
		Version:            s.Version,
		CreatedAt:          s.CreatedAt,
		UpdatedAt:          s.UpdatedAt,
	}, nil
}

func toDomain(m *BookingModel) (*booking.Booking, error) {
	var customer booking.Customer
	if err := json.Unmarshal(m.Customer, &customer); err != nil {
		return nil, fmt.Errorf("failed to unmarshal customer: %w", err)
	}
	var source booking.Address
	if err := json.Unmarshal(m.SourceAddress, &source); err != nil {
		return nil, fmt.Errorf("failed to unmarshal source address: %w", err)
	}
	var destination booking.Address
	if err := json.Unmarshal(m.DestinationAddress, &destination); err != nil {
		return nil, fmt.Errorf("failed to unmarshal destination address: %w", err)
	}
	var vehicle booking.VehicleShifting
	if len(m.VehicleShifting) > 0 {
		if err := json.Unmarshal(m.VehicleShifting, &vehicle); err != nil {
			return nil, fmt.Errorf("failed to unmarshal vehicle shifting: %w", err)
		}
	}
	var painting booking.PaintingServices
	if len(m.PaintingServices) > 0 {
		if err := json.Unmarshal(m.PaintingServices, &painting); err != nil {
			return nil, fmt.Errorf("failed to unmarshal painting services: %w", err)
		}
	}
	var pricing booking.PriceBreakdown
	if err := json.Unmarshal(m.Pricing, &pricing); err != nil {
		return nil, fmt.Errorf("failed to unmarshal pricing: %w", err)
	}
	var payment booking.PaymentDetails
	if err := json.Unmarshal(m.Payment, &payment); err != nil {
		return nil, fmt.Errorf("failed to unmarshal payment: %w", err)
	}

	return booking.Reconstruct(booking.Snapshot{
		ID:                 m.ID,
		BookingNumber:      m.BookingNumber,
		Customer:           customer,
		MoveType:           booking.MoveType(m.MoveType),
		HomeSize:           booking.HomeSize(m.HomeSize),
		SourceAddress:      source,
		DestinationAddress: destination,
		MovingDate:         m.MovingDate,
		DistanceKm:         m.DistanceKm,
		VehicleShifting:    vehicle,
		PaintingServices:   painting,
		Pricing:            pricing,
		Status:             booking.Status(m.Status),
		Payment:            payment,
		AssignedEmployee:   m.AssignedEmployee,
		Notes:              m.Notes,
		AdminNotes:         m.AdminNotes,
		CancellationReason: m.CancellationReason,
		CompletedAt:        m.CompletedAt,
		CancelledAt:        m.CancelledAt,
		Version:            m.Version,
		CreatedAt:          m.CreatedAt,
		UpdatedAt:          m.UpdatedAt,
	}), nil
}

func toDomainSlice(models []BookingModel) ([]*booking.Booking, error) {
	out := make([]*booking.Booking, len(models))
	for i := range models {
		bk, err := toDomain(&models[i])
		if err != nil {
			return nil, err
		}
		out[i] = bk
	}
	return out, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}
