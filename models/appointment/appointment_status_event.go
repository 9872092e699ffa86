package appointment

import (
	"time"
)

// AppointmentStatusEvent represents a status change event for an appointment
type AppointmentStatusEvent struct {
	ID uint `gorm:"primaryKey;autoIncrement" json:"id"`

	// Foreign key for appointment relationship
	AppointmentID uint        `gorm:"not null;index" json:"appointment_id"`
	Appointment   Appointment `gorm:"foreignKey:AppointmentID" json:"appointment"`

	Status    AppointmentStatus `gorm:"size:20;not null" json:"status"`
	CreatedBy string            `gorm:"type:varchar(255);not null" json:"created_by"`
	CreatedAt time.Time         `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time         `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName sets the table name for the AppointmentStatusEvent model
func (AppointmentStatusEvent) TableName() string {
	return "appointment_status_events"
}
