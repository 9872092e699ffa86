package appointment

import (
	"time"

	customerModel "detail-genius/models/customer"
	vehicleModel "detail-genius/models/vehicle"
)

// Appointment represents one booked detailing job.
type Appointment struct {
	ID   uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Uuid string `gorm:"type:varchar(36);not null;unique" json:"uuid"`

	// Foreign key for customers relationship
	CustomerID uint                   `gorm:"not null;index" json:"customer_id"`
	Customer   customerModel.Customer `gorm:"foreignKey:CustomerID" json:"customer"`

	// ServiceID is stored exactly as submitted. The booking flow does not
	// validate it against the catalog; the dashboard join falls back to a
	// generic label when it does not resolve.
	ServiceID   string `gorm:"type:varchar(36);not null" json:"service_id"`
	VehicleType string `gorm:"type:varchar(50);not null" json:"vehicle_type"`

	// Optional link to a registered vehicle, set outside the booking flow.
	VehicleID *uint                 `gorm:"index" json:"vehicle_id,omitempty"`
	Vehicle   *vehicleModel.Vehicle `gorm:"foreignKey:VehicleID" json:"vehicle,omitempty"`

	// StartTime is the naive local instant string "YYYY-MM-DDTHH:MM:SS",
	// composed from the submitted date and time with no timezone handling.
	// ISO ordering makes lexical sort equal chronological sort.
	StartTime string `gorm:"type:varchar(32);not null;index" json:"start_time"`

	Status AppointmentStatus `gorm:"type:varchar(20);not null" json:"status"`

	// Price and deposit are written as zero placeholders at booking time;
	// the deposit charged through checkout is priced from the catalog.
	TotalPrice    float64 `gorm:"type:numeric;not null;default:0" json:"total_price"`
	DepositAmount float64 `gorm:"type:numeric;not null;default:0" json:"deposit_amount"`
	DepositPaid   bool    `gorm:"type:bool;not null;default:false" json:"deposit_paid"`

	CreatedAt time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt *time.Time `gorm:"index" json:"deleted_at,omitempty"`
}
