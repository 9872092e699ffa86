package appointment

import "fmt"

// UpdateStatusRequest asks for an appointment status transition.
type UpdateStatusRequest struct {
	Status    string `json:"status"`
	UpdatedBy string `json:"updated_by"`
}

func (r UpdateStatusRequest) Validate() error {
	if r.Status == "" {
		return fmt.Errorf("status is required")
	}
	return nil
}
