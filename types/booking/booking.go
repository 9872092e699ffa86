package booking

// BookingCreateRequest is the payload the booking wizard submits. Fields are
// forwarded to the store as-is; constraint violations come back as a store
// error rather than a field-level validation error.
type BookingCreateRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	ServiceID   string `json:"serviceId"`
	VehicleType string `json:"vehicleType"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	SmsConsent  bool   `json:"smsConsent"`
}

// BookingCreateResponse is the success data for a booking submission.
// SessionID is present only when a deposit checkout session was created.
type BookingCreateResponse struct {
	AppointmentID   uint   `json:"appointment_id"`
	AppointmentUuid string `json:"appointment_uuid"`
	SessionID       string `json:"session_id,omitempty"`
}
