package appointment_test

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"detail-genius/database"
	appointmentModel "detail-genius/models/appointment"
	customerModel "detail-genius/models/customer"
	"detail-genius/routes"
)

func setupApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatal(err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	app := fiber.New()
	routes.SetupRoutes(app, db)
	return app, db
}

func seedAppointment(t *testing.T, db *gorm.DB) appointmentModel.Appointment {
	t.Helper()
	cust := customerModel.Customer{
		Uuid:     uuid.NewString(),
		FullName: "David Wilson",
		Email:    "david@example.com",
		Phone:    "(555) 000-0000",
	}
	if err := db.Create(&cust).Error; err != nil {
		t.Fatal(err)
	}
	appt := appointmentModel.Appointment{
		Uuid:        uuid.NewString(),
		CustomerID:  cust.ID,
		ServiceID:   "3",
		VehicleType: "SUV",
		StartTime:   "2024-06-01T09:00:00",
		Status:      appointmentModel.StatusConfirmed,
	}
	if err := db.Create(&appt).Error; err != nil {
		t.Fatal(err)
	}
	return appt
}

func patchStatus(t *testing.T, app *fiber.App, path, status string) int {
	t.Helper()
	body, _ := json.Marshal(map[string]string{"status": status, "updated_by": "dispatch"})
	req := httptest.NewRequest("PATCH", path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatal(err)
	}
	return resp.StatusCode
}

func TestUpdateStatusTransitionsAndRecordsEvent(t *testing.T) {
	app, db := setupApp(t)
	appt := seedAppointment(t, db)

	code := patchStatus(t, app, "/api/appointments/1/status", "In Progress")
	if code != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}

	var updated appointmentModel.Appointment
	if err := db.First(&updated, appt.ID).Error; err != nil {
		t.Fatal(err)
	}
	if updated.Status != appointmentModel.StatusInProgress {
		t.Fatalf("want In Progress, got %q", updated.Status)
	}

	var events []appointmentModel.AppointmentStatusEvent
	if err := db.Where("appointment_id = ?", appt.ID).Find(&events).Error; err != nil {
		t.Fatal(err)
	}
	if len(events) != 1 {
		t.Fatalf("want 1 status event, got %d", len(events))
	}
	if events[0].Status != appointmentModel.StatusInProgress || events[0].CreatedBy != "dispatch" {
		t.Fatalf("unexpected event %+v", events[0])
	}

	// Completion is a second transition and a second event.
	if code := patchStatus(t, app, "/api/appointments/1/status", "Completed"); code != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}
	var eventCount int64
	db.Model(&appointmentModel.AppointmentStatusEvent{}).Where("appointment_id = ?", appt.ID).Count(&eventCount)
	if eventCount != 2 {
		t.Fatalf("want 2 status events, got %d", eventCount)
	}
}

func TestUpdateStatusRejectsUnknownStatus(t *testing.T) {
	app, db := setupApp(t)
	seedAppointment(t, db)

	if code := patchStatus(t, app, "/api/appointments/1/status", "Cancelled"); code != fiber.StatusBadRequest {
		t.Fatalf("expected 400 for out-of-set status, got %d", code)
	}
	if code := patchStatus(t, app, "/api/appointments/1/status", ""); code != fiber.StatusBadRequest {
		t.Fatalf("expected 400 for empty status, got %d", code)
	}
}

func TestUpdateStatusUnknownAppointment(t *testing.T) {
	app, _ := setupApp(t)

	if code := patchStatus(t, app, "/api/appointments/42/status", "Completed"); code != fiber.StatusNotFound {
		t.Fatalf("expected 404, got %d", code)
	}
}
