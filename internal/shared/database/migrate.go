package database

import (
	"fmt"

	"aerobook/internal/booking"

	"gorm.io/gorm"
)

// Migrate runs schema migrations for the booking ledger
func Migrate(db *gorm.DB) error {
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`).Error; err != nil {
		return fmt.Errorf("failed to enable uuid-ossp: %w", err)
	}

	if err := db.AutoMigrate(
		&booking.Booking{},
		&booking.Passenger{},
		&booking.LegTicket{},
	); err != nil {
		return fmt.Errorf("auto-migration failed: %w", err)
	}

	return nil
}
