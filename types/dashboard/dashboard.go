package dashboard

// DashboardStats holds the headline numbers for the business overview.
type DashboardStats struct {
	TotalCustomers int64   `json:"total_customers"`
	ActiveJobs     int64   `json:"active_jobs"`
	Revenue        float64 `json:"revenue"`
	RevenueDisplay string  `json:"revenue_display"`
}

// UpcomingAppointment is one row of the upcoming-appointments list, joined to
// its service, customer and vehicle labels.
type UpcomingAppointment struct {
	AppointmentID uint   `json:"appointment_id"`
	CustomerName  string `json:"customer_name"`
	ServiceName   string `json:"service_name"`
	VehicleLabel  string `json:"vehicle_label"`
	StartTime     string `json:"start_time"`
	TimeDisplay   string `json:"time_display"`
	Status        string `json:"status"`
	StatusClass   string `json:"status_class"`
}

// Overview is the full dashboard view model. A failed load responds with the
// zero value of this struct and an empty Upcoming list.
type Overview struct {
	Stats    DashboardStats        `json:"stats"`
	Upcoming []UpcomingAppointment `json:"upcoming"`
}
