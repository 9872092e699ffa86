package dashboard_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"detail-genius/database"
	"detail-genius/database/seeders"
	appointmentModel "detail-genius/models/appointment"
	customerModel "detail-genius/models/customer"
	vehicleModel "detail-genius/models/vehicle"
	"detail-genius/routes"
	dashboardTypes "detail-genius/types/dashboard"
)

func setupApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	// In-memory sqlite: every pool connection would get its own database.
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatal(err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	if err := seeders.SeedServices(db); err != nil {
		t.Fatalf("seed services: %v", err)
	}

	app := fiber.New()
	routes.SetupRoutes(app, db)
	return app, db
}

func seedCustomer(t *testing.T, db *gorm.DB, name, email string) customerModel.Customer {
	t.Helper()
	cust := customerModel.Customer{
		Uuid:     uuid.NewString(),
		FullName: name,
		Email:    email,
		Phone:    "(555) 000-0000",
	}
	if err := db.Create(&cust).Error; err != nil {
		t.Fatal(err)
	}
	return cust
}

func seedAppointment(t *testing.T, db *gorm.DB, customerID uint, serviceID, start string, status appointmentModel.AppointmentStatus, price float64) appointmentModel.Appointment {
	t.Helper()
	appt := appointmentModel.Appointment{
		Uuid:        uuid.NewString(),
		CustomerID:  customerID,
		ServiceID:   serviceID,
		VehicleType: "Sedan",
		StartTime:   start,
		Status:      status,
		TotalPrice:  price,
	}
	if err := db.Create(&appt).Error; err != nil {
		t.Fatal(err)
	}
	return appt
}

func fetchOverview(t *testing.T, app *fiber.App) dashboardTypes.Overview {
	t.Helper()
	req := httptest.NewRequest("GET", "/api/dashboard/overview", nil)
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var envelope struct {
		Data dashboardTypes.Overview `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatal(err)
	}
	return envelope.Data
}

func TestRevenueSumsCompletedOnly(t *testing.T) {
	app, db := setupApp(t)

	cust := seedCustomer(t, db, "Sarah Davis", "sarah@example.com")
	seedAppointment(t, db, cust.ID, "1", "2024-06-01T09:00:00", appointmentModel.StatusCompleted, 100)
	seedAppointment(t, db, cust.ID, "1", "2024-06-02T09:00:00", appointmentModel.StatusCompleted, 50)
	seedAppointment(t, db, cust.ID, "1", "2024-06-03T09:00:00", appointmentModel.StatusCompleted, 0)
	seedAppointment(t, db, cust.ID, "1", "2024-06-04T09:00:00", appointmentModel.StatusScheduled, 500)

	overview := fetchOverview(t, app)
	if overview.Stats.Revenue != 150 {
		t.Fatalf("want revenue 150, got %v", overview.Stats.Revenue)
	}
	if overview.Stats.RevenueDisplay != "$150" {
		t.Fatalf("want revenue display $150, got %q", overview.Stats.RevenueDisplay)
	}
}

func TestStatsCountsCustomersAndActiveJobs(t *testing.T) {
	app, db := setupApp(t)

	a := seedCustomer(t, db, "Sarah Davis", "sarah@example.com")
	b := seedCustomer(t, db, "David Wilson", "david@example.com")
	seedAppointment(t, db, a.ID, "2", "2024-06-01T09:00:00", appointmentModel.StatusInProgress, 0)
	seedAppointment(t, db, b.ID, "2", "2024-06-01T11:00:00", appointmentModel.StatusScheduled, 0)

	overview := fetchOverview(t, app)
	if overview.Stats.TotalCustomers != 2 {
		t.Fatalf("want 2 customers, got %d", overview.Stats.TotalCustomers)
	}
	if overview.Stats.ActiveJobs != 1 {
		t.Fatalf("want 1 active job, got %d", overview.Stats.ActiveJobs)
	}
}

func TestUpcomingOrderedAndLimitedToFive(t *testing.T) {
	app, db := setupApp(t)

	cust := seedCustomer(t, db, "Emily Rodriguez", "emily@example.com")
	starts := []string{
		"2024-06-01T09:00:00",
		"2024-06-01T11:00:00",
		"2024-06-02T09:00:00",
		"2024-06-03T13:00:00",
		"2024-06-04T15:00:00",
		"2024-06-05T09:00:00",
	}
	// Insert out of order; ordering must come from the query. Status does not
	// matter for inclusion.
	statuses := []appointmentModel.AppointmentStatus{
		appointmentModel.StatusCompleted,
		appointmentModel.StatusInProgress,
		appointmentModel.StatusScheduled,
		appointmentModel.StatusConfirmed,
		appointmentModel.StatusScheduled,
		appointmentModel.StatusScheduled,
	}
	for i := len(starts) - 1; i >= 0; i-- {
		seedAppointment(t, db, cust.ID, "1", starts[i], statuses[i], 0)
	}

	overview := fetchOverview(t, app)
	if len(overview.Upcoming) != 5 {
		t.Fatalf("want 5 upcoming rows, got %d", len(overview.Upcoming))
	}
	for i, row := range overview.Upcoming {
		if row.StartTime != starts[i] {
			t.Fatalf("row %d: want start %q, got %q", i, starts[i], row.StartTime)
		}
	}
}

func TestUpcomingJoinLabelsAndFallbacks(t *testing.T) {
	app, db := setupApp(t)

	cust := seedCustomer(t, db, "Michael Chen", "michael@example.com")

	// Resolvable joins, including a registered vehicle.
	veh := vehicleModel.Vehicle{CustomerID: cust.ID, Make: "Tesla", Model: "Model S", Year: 2022}
	if err := db.Create(&veh).Error; err != nil {
		t.Fatal(err)
	}
	withVehicle := seedAppointment(t, db, cust.ID, "1", "2024-06-01T09:00:00", appointmentModel.StatusInProgress, 0)
	if err := db.Model(&withVehicle).Update("vehicle_id", veh.ID).Error; err != nil {
		t.Fatal(err)
	}

	// Unknown service, no customer row, no vehicle.
	seedAppointment(t, db, 9999, "no-such-service", "2024-06-01T11:00:00", appointmentModel.StatusScheduled, 0)

	overview := fetchOverview(t, app)
	if len(overview.Upcoming) != 2 {
		t.Fatalf("want 2 upcoming rows, got %d", len(overview.Upcoming))
	}

	resolved := overview.Upcoming[0]
	if resolved.CustomerName != "Michael Chen" {
		t.Fatalf("want customer name, got %q", resolved.CustomerName)
	}
	if resolved.ServiceName != "Interior Deep Clean" {
		t.Fatalf("want catalog service name, got %q", resolved.ServiceName)
	}
	if resolved.VehicleLabel != "2022 Tesla Model S" {
		t.Fatalf("want vehicle label, got %q", resolved.VehicleLabel)
	}
	if resolved.TimeDisplay != "9:00 AM" {
		t.Fatalf("want time display 9:00 AM, got %q", resolved.TimeDisplay)
	}
	if resolved.StatusClass != "badge-active" {
		t.Fatalf("want active badge for In Progress, got %q", resolved.StatusClass)
	}

	fallback := overview.Upcoming[1]
	if fallback.CustomerName != "Unknown" {
		t.Fatalf("want Unknown customer fallback, got %q", fallback.CustomerName)
	}
	if fallback.ServiceName != "Detailing" {
		t.Fatalf("want Detailing service fallback, got %q", fallback.ServiceName)
	}
	if fallback.VehicleLabel != "Unknown Vehicle" {
		t.Fatalf("want Unknown Vehicle fallback, got %q", fallback.VehicleLabel)
	}
	if fallback.StatusClass != "badge-default" {
		t.Fatalf("want default badge for Scheduled, got %q", fallback.StatusClass)
	}
}

func TestQueryFailureFallsBackToZeroedView(t *testing.T) {
	app, db := setupApp(t)

	cust := seedCustomer(t, db, "Sarah Davis", "sarah@example.com")
	seedAppointment(t, db, cust.ID, "1", "2024-06-01T09:00:00", appointmentModel.StatusCompleted, 100)

	// Force three of the four reads to fail.
	if err := db.Migrator().DropTable(&appointmentModel.Appointment{}); err != nil {
		t.Fatal(err)
	}

	overview := fetchOverview(t, app)
	if overview.Stats.TotalCustomers != 0 || overview.Stats.ActiveJobs != 0 || overview.Stats.Revenue != 0 {
		t.Fatalf("stats not zeroed on failure: %+v", overview.Stats)
	}
	if len(overview.Upcoming) != 0 {
		t.Fatalf("upcoming not empty on failure: %d rows", len(overview.Upcoming))
	}
}
