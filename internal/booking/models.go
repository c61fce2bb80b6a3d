package booking

import (
	"time"

	"github.com/google/uuid"
)

// Booking is the persisted record of one booking attempt that ticketed at
// least one leg. It is an audit ledger, not a source of truth for pricing.
type Booking struct {
	ID         uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	SessionID  string    `gorm:"type:varchar(64);index;not null" json:"session_id"`
	TripType   string    `gorm:"type:varchar(20);not null" json:"trip_type"`
	TotalLegs  int       `gorm:"not null" json:"total_legs"`
	TotalPrice float64   `gorm:"not null" json:"total_price"`
	Currency   string    `gorm:"type:varchar(3)" json:"currency"`
	Status     string    `gorm:"type:varchar(20);check:status IN ('ALL_SUCCEEDED', 'PARTIALLY_FAILED')" json:"status"`
	BookingRef string    `gorm:"unique;not null" json:"booking_ref"`

	// Trip-level confirmation: the first leg's PNR and provider booking id
	PNR               string `gorm:"type:varchar(20)" json:"pnr"`
	ProviderBookingID string `gorm:"type:varchar(64)" json:"provider_booking_id"`

	// Set when Status is PARTIALLY_FAILED
	FailedAtIndex *int   `json:"failed_at_index,omitempty"`
	FailureReason string `json:"failure_reason,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relationships
	Passenger  *Passenger  `json:"passenger,omitempty" gorm:"foreignKey:BookingID;constraint:OnDelete:CASCADE;"`
	LegTickets []LegTicket `json:"leg_tickets,omitempty" gorm:"foreignKey:BookingID;constraint:OnDelete:CASCADE;"`
}

// Passenger is the lead adult passenger recorded with the booking
type Passenger struct {
	ID          uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	BookingID   uuid.UUID `gorm:"type:uuid;index;not null" json:"booking_id"`
	FirstName   string    `gorm:"type:varchar(100);not null" json:"first_name"`
	LastName    string    `gorm:"type:varchar(100);not null" json:"last_name"`
	Gender      string    `gorm:"type:varchar(10)" json:"gender"`
	DateOfBirth string    `gorm:"type:varchar(10)" json:"date_of_birth"`
	Email       string    `gorm:"type:varchar(255)" json:"email"`
	Phone       string    `gorm:"type:varchar(32)" json:"phone"`
	Nationality string    `gorm:"type:varchar(64)" json:"nationality"`
	Address     string    `gorm:"type:varchar(255)" json:"address"`
	CreatedAt   time.Time `json:"created_at"`
}

// LegTicket is one leg's issuance record, raw provider payload included
// for support diagnostics
type LegTicket struct {
	ID        uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	BookingID uuid.UUID `gorm:"type:uuid;index;not null" json:"booking_id"`
	LegIndex  int       `gorm:"not null" json:"leg_index"`

	Origin      string `gorm:"type:varchar(8)" json:"origin"`
	Destination string `gorm:"type:varchar(8)" json:"destination"`
	Carrier     string `gorm:"type:varchar(8)" json:"carrier"`

	Status            string  `gorm:"type:varchar(20);check:status IN ('ISSUED', 'FAILED')" json:"status"`
	PNR               string  `gorm:"type:varchar(20)" json:"pnr"`
	ProviderBookingID string  `gorm:"type:varchar(64)" json:"provider_booking_id"`
	BaseFare          float64 `json:"base_fare"`
	Tax               float64 `json:"tax"`
	Surcharges        float64 `json:"surcharges"`
	FallbackSuccess   bool    `json:"fallback_success"`
	FailureReason     string  `json:"failure_reason,omitempty"`

	RawResponse string `gorm:"type:jsonb" json:"raw_response,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

// TableName sets the table name for Booking
func (Booking) TableName() string {
	return "bookings"
}

// TableName sets the table name for Passenger
func (Passenger) TableName() string {
	return "passengers"
}

// TableName sets the table name for LegTicket
func (LegTicket) TableName() string {
	return "leg_tickets"
}
