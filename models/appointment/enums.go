package appointment

// AppointmentStatus is the closed set of job states.
type AppointmentStatus string

const (
	StatusScheduled  AppointmentStatus = "Scheduled"
	StatusConfirmed  AppointmentStatus = "Confirmed"
	StatusInProgress AppointmentStatus = "In Progress"
	StatusCompleted  AppointmentStatus = "Completed"
)

func (as AppointmentStatus) String() string {
	return string(as)
}

func (as AppointmentStatus) IsValid() bool {
	switch as {
	case StatusScheduled, StatusConfirmed, StatusInProgress, StatusCompleted:
		return true
	default:
		return false
	}
}

// IsCompleted returns true if the appointment counts toward revenue.
func (as AppointmentStatus) IsCompleted() bool {
	return as == StatusCompleted
}

// BadgeClass maps a status to its dashboard treatment. The mapping is binary:
// In Progress gets the active badge, every other status shares the default.
func (as AppointmentStatus) BadgeClass() string {
	if as == StatusInProgress {
		return "badge-active"
	}
	return "badge-default"
}

// GetAllAppointmentStatuses returns all valid appointment statuses
func GetAllAppointmentStatuses() []AppointmentStatus {
	return []AppointmentStatus{
		StatusScheduled,
		StatusConfirmed,
		StatusInProgress,
		StatusCompleted,
	}
}
