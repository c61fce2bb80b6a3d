package booking

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// ErrBookingNotFound is returned when no booking matches the lookup
var ErrBookingNotFound = errors.New("booking not found")

// Repository persists the booking ledger
type Repository interface {
	Create(ctx context.Context, booking *Booking) error
	GetByRef(ctx context.Context, bookingRef string) (*Booking, error)
	ListBySession(ctx context.Context, sessionID string, limit, offset int) ([]Booking, int64, error)
}

type repository struct {
	db *gorm.DB
}

// NewRepository creates a GORM-backed booking repository
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// Create writes the booking, its passenger, and its leg tickets in one
// transaction
func (r *repository) Create(ctx context.Context, booking *Booking) error {
	if err := r.db.WithContext(ctx).Create(booking).Error; err != nil {
		return fmt.Errorf("failed to create booking: %w", err)
	}
	return nil
}

func (r *repository) GetByRef(ctx context.Context, bookingRef string) (*Booking, error) {
	var booking Booking
	err := r.db.WithContext(ctx).
		Preload("Passenger").
		Preload("LegTickets").
		Where("booking_ref = ?", bookingRef).
		First(&booking).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to get booking: %w", err)
	}
	return &booking, nil
}

func (r *repository) ListBySession(ctx context.Context, sessionID string, limit, offset int) ([]Booking, int64, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	var total int64
	if err := r.db.WithContext(ctx).Model(&Booking{}).
		Where("session_id = ?", sessionID).
		Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count bookings: %w", err)
	}

	var bookings []Booking
	err := r.db.WithContext(ctx).
		Preload("LegTickets").
		Where("session_id = ?", sessionID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&bookings).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list bookings: %w", err)
	}

	return bookings, total, nil
}
