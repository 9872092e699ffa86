package appointment_event

import (
	appointmentModel "detail-genius/models/appointment"

	"gorm.io/gorm"
)

// RecordStatusEvent writes one AppointmentStatusEvent row for the given
// appointment and status. Called on create and on every status transition so
// the event table is a full trail of the job lifecycle.
func RecordStatusEvent(tx *gorm.DB, a *appointmentModel.Appointment, status appointmentModel.AppointmentStatus, createdBy string) error {
	if createdBy == "" {
		createdBy = "system"
	}

	ev := appointmentModel.AppointmentStatusEvent{
		AppointmentID: a.ID,
		Status:        status,
		CreatedBy:     createdBy,
	}

	return tx.Create(&ev).Error
}
