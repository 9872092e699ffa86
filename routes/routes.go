package routes

import (
	appointmentController "detail-genius/controllers/appointment"
	bookingController "detail-genius/controllers/booking"
	dashboardController "detail-genius/controllers/dashboard"
	serviceController "detail-genius/controllers/service"
	"detail-genius/logger"
	"detail-genius/services/payment"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	asyncLogger := logger.NewAsyncLogger(db)
	paymentClient := payment.NewClientFromEnv()

	booking := bookingController.NewBookingController(db, asyncLogger, paymentClient)
	dashboard := dashboardController.NewDashboardController(db, asyncLogger)
	appointments := appointmentController.NewAppointmentController(db, asyncLogger)
	services := serviceController.NewServiceController(db)

	// Start the async logger processing goroutine
	go asyncLogger.ProcessLog()

	// Index route
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"service": "detail-genius",
			"status":  "ok",
		})
	})

	/*=============================================================================
	| Public Routes
	===============================================================================*/
	api := app.Group("/api")
	api.Post("/bookings/create", booking.Store)
	api.Get("/services", services.Index)

	/*=============================================================================
	| Dashboard Routes
	===============================================================================*/
	api.Get("/dashboard/overview", dashboard.Overview)

	/*=============================================================================
	| Appointment Routes
	===============================================================================*/
	api.Patch("/appointments/:id/status", appointments.UpdateStatus)
}
