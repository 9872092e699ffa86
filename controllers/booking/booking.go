package booking

import (
	"fmt"
	"time"

	"detail-genius/logger"
	appointmentModel "detail-genius/models/appointment"
	customerModel "detail-genius/models/customer"
	serviceModel "detail-genius/models/service"
	appointmentEvent "detail-genius/services/appointment_event"
	"detail-genius/services/payment"
	"detail-genius/types"
	bookingTypes "detail-genius/types/booking"
	"detail-genius/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// BookingController handles booking-related HTTP requests
type BookingController struct {
	DB      *gorm.DB
	Logger  *logger.AsyncLogger
	Payment *payment.Client
}

// NewBookingController creates a new booking controller
func NewBookingController(db *gorm.DB, asyncLogger *logger.AsyncLogger, paymentClient *payment.Client) *BookingController {
	return &BookingController{
		DB:      db,
		Logger:  asyncLogger,
		Payment: paymentClient,
	}
}

// Store creates a booking: it upserts the customer keyed on email, inserts a
// Confirmed appointment referencing the resolved row, and, when payments are
// configured, opens a deposit checkout session. Both writes run in one
// transaction so a failed upsert can never leave an appointment behind.
func (bc *BookingController) Store(c *fiber.Ctx) error {
	start := time.Now()

	var req bookingTypes.BookingCreateRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse request body", err)
		return bc.respond(c, start, fiber.StatusBadRequest, types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request body",
			Data:    nil,
		})
	}

	var cust customerModel.Customer
	var appt appointmentModel.Appointment

	// Request fields are forwarded to the store as-is; a missing or malformed
	// field surfaces as a constraint error from the transaction below.
	err := bc.DB.Transaction(func(tx *gorm.DB) error {
		var consentDate *time.Time
		if req.SmsConsent {
			t := time.Now()
			consentDate = &t
		}

		cust = customerModel.Customer{
			Uuid:           uuid.NewString(),
			FullName:       req.Name,
			Email:          req.Email,
			Phone:          req.Phone,
			SmsConsent:     req.SmsConsent,
			SmsConsentDate: consentDate,
		}

		if err := tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "email"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"full_name", "phone", "sms_consent", "sms_consent_date",
			}),
		}).Create(&cust).Error; err != nil {
			logger.Error("Failed to upsert customer", err)
			return err
		}

		// Re-read by email into a fresh struct: on conflict the id filled
		// by Create is not the surviving row's, and a primed primary key
		// would leak into the query conditions.
		var resolved customerModel.Customer
		if err := tx.Where("email = ?", req.Email).First(&resolved).Error; err != nil {
			logger.Error("Failed to load upserted customer", err)
			return err
		}
		cust = resolved

		appt = appointmentModel.Appointment{
			Uuid:        uuid.NewString(),
			CustomerID:  cust.ID,
			ServiceID:   req.ServiceID,
			VehicleType: req.VehicleType,
			StartTime:   utils.CombineStartTime(req.Date, req.Time),
			Status:      appointmentModel.StatusConfirmed,
			// Placeholder pricing; the deposit session is priced from the
			// catalog without touching the stored row.
			TotalPrice:    0,
			DepositAmount: 0,
			DepositPaid:   false,
		}

		if err := tx.Create(&appt).Error; err != nil {
			logger.Error("Failed to create appointment", err)
			return err
		}

		return appointmentEvent.RecordStatusEvent(tx, &appt, appointmentModel.StatusConfirmed, "booking")
	})

	if err != nil {
		return bc.respond(c, start, fiber.StatusInternalServerError, types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to create booking",
			Data:    fiber.Map{"details": err.Error()},
		})
	}

	logger.Success(fmt.Sprintf("Booking created successfully with ID: %d", appt.ID))

	resp := bookingTypes.BookingCreateResponse{
		AppointmentID:   appt.ID,
		AppointmentUuid: appt.Uuid,
	}

	// The booking is committed; a checkout failure here is retried out of
	// band rather than failing the submission.
	if bc.Payment != nil && bc.Payment.Enabled() {
		var svc serviceModel.Service
		if err := bc.DB.First(&svc, "id = ?", req.ServiceID).Error; err != nil {
			logger.Warning(fmt.Sprintf("No catalog service %q, skipping deposit session", req.ServiceID))
		} else if sessionID, err := bc.Payment.CreateDepositSession(svc, appt.Uuid); err != nil {
			logger.Warning(fmt.Sprintf("Deposit session for appointment %d failed: %v", appt.ID, err))
		} else {
			resp.SessionID = sessionID
		}
	}

	return bc.respond(c, start, fiber.StatusCreated, types.ApiResponse{
		Status:  fiber.StatusCreated,
		Message: "Booking created successfully",
		Data:    resp,
	})
}

// respond sends the JSON response and queues a request log entry.
func (bc *BookingController) respond(c *fiber.Ctx, start time.Time, status int, body types.ApiResponse) error {
	if bc.Logger != nil {
		bc.Logger.Log(types.LogEntry{
			Method:      c.Method(),
			URL:         c.OriginalURL(),
			ClientIP:    c.IP(),
			RequestBody: string(c.Body()),
			StatusCode:  status,
			LatencyMs:   time.Since(start).Milliseconds(),
			CreatedAt:   time.Now(),
		})
	}
	return c.Status(status).JSON(body)
}
