package appointment

import (
	"errors"
	"fmt"

	"detail-genius/logger"
	appointmentModel "detail-genius/models/appointment"
	appointmentEvent "detail-genius/services/appointment_event"
	"detail-genius/types"
	appointmentTypes "detail-genius/types/appointment"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// AppointmentController handles job lifecycle updates (progress, completion).
type AppointmentController struct {
	DB     *gorm.DB
	Logger *logger.AsyncLogger
}

// NewAppointmentController creates a new appointment controller
func NewAppointmentController(db *gorm.DB, asyncLogger *logger.AsyncLogger) *AppointmentController {
	return &AppointmentController{
		DB:     db,
		Logger: asyncLogger,
	}
}

// UpdateStatus moves an appointment through the job lifecycle and snapshots
// the transition into the status event trail.
func (ac *AppointmentController) UpdateStatus(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid appointment id",
			Data:    nil,
		})
	}

	var req appointmentTypes.UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse request body", err)
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request body",
			Data:    nil,
		})
	}

	if err := req.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: err.Error(),
			Data:    nil,
		})
	}

	status := appointmentModel.AppointmentStatus(req.Status)
	if !status.IsValid() {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: fmt.Sprintf("Invalid status %q", req.Status),
			Data:    nil,
		})
	}

	var appt appointmentModel.Appointment
	if err := ac.DB.First(&appt, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
				Status:  fiber.StatusNotFound,
				Message: "Appointment not found",
				Data:    nil,
			})
		}
		logger.Error("Database error while loading appointment", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Database error",
			Data:    nil,
		})
	}

	err = ac.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&appt).Update("status", status).Error; err != nil {
			logger.Error("Failed to update appointment status", err)
			return err
		}
		return appointmentEvent.RecordStatusEvent(tx, &appt, status, req.UpdatedBy)
	})

	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to update appointment",
			Data:    nil,
		})
	}

	logger.Success(fmt.Sprintf("Appointment %d moved to %s", appt.ID, status))

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Appointment status updated",
		Data:    appt,
	})
}
