package vehicle

import (
	"fmt"
	"time"
)

// Vehicle is a customer's registered vehicle, referenced by the dashboard
// join. The booking flow only records a free-form vehicle type label, so an
// appointment may have no vehicle row at all.
type Vehicle struct {
	ID         uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	CustomerID uint      `gorm:"not null;index" json:"customer_id"`
	Make       string    `gorm:"type:varchar(100);not null" json:"make"`
	Model      string    `gorm:"type:varchar(100);not null" json:"model"`
	Year       int       `gorm:"type:int" json:"year"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// Label renders the vehicle the way the dashboard lists it.
func (v Vehicle) Label() string {
	return fmt.Sprintf("%d %s %s", v.Year, v.Make, v.Model)
}
