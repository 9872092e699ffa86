package service

import (
	"time"
)

// Service is a read-only catalog entry for a detailing package. IDs are
// strings because the booking clients send them verbatim.
type Service struct {
	ID              string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	Name            string    `gorm:"type:varchar(255);not null" json:"name"`
	Description     string    `gorm:"type:text" json:"description"`
	DurationMinutes int       `gorm:"type:int;not null" json:"duration_minutes"`
	Price           float64   `gorm:"type:numeric;not null" json:"price"`
	CreatedAt       time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// DepositAmount returns the deposit collected at booking time, fixed at 50%
// of the service price.
func (s Service) DepositAmount() float64 {
	return s.Price / 2
}
