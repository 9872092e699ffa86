package dashboard

import (
	"detail-genius/logger"
	appointmentModel "detail-genius/models/appointment"
	customerModel "detail-genius/models/customer"
	"detail-genius/types"
	dashboardTypes "detail-genius/types/dashboard"
	"detail-genius/utils"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// DashboardController serves the internal business-overview endpoints.
type DashboardController struct {
	DB     *gorm.DB
	Logger *logger.AsyncLogger
}

// NewDashboardController creates a new dashboard controller
func NewDashboardController(db *gorm.DB, asyncLogger *logger.AsyncLogger) *DashboardController {
	return &DashboardController{
		DB:     db,
		Logger: asyncLogger,
	}
}

// upcomingRow is the scan target for the joined upcoming-appointments query.
// Joined columns are pointers because every join is a LEFT JOIN.
type upcomingRow struct {
	AppointmentID uint
	StartTime     string
	Status        string
	CustomerName  *string
	ServiceName   *string
	Make          *string
	Model         *string
	Year          *int
}

// Overview aggregates the four dashboard reads into one view model. The
// reads are independent, so they run concurrently and join. If any of them
// fails the whole view falls back to its zeroed state; the failure is logged
// but never surfaced to the caller.
func (dc *DashboardController) Overview(c *fiber.Ctx) error {
	var (
		totalCustomers int64
		activeJobs     []appointmentModel.Appointment
		revenue        float64
		rows           []upcomingRow
	)

	// The upcoming list is unfiltered by date unless the caller opts in;
	// scope=today bounds it to the current day.
	scopeToday := c.Query("scope") == "today"

	g, ctx := errgroup.WithContext(c.Context())
	db := dc.DB.WithContext(ctx)

	g.Go(func() error {
		return db.Model(&customerModel.Customer{}).Count(&totalCustomers).Error
	})

	g.Go(func() error {
		return db.Where("status = ?", appointmentModel.StatusInProgress).Find(&activeJobs).Error
	})

	g.Go(func() error {
		return db.Model(&appointmentModel.Appointment{}).
			Where("status = ?", appointmentModel.StatusCompleted).
			Select("COALESCE(SUM(total_price), 0)").
			Scan(&revenue).Error
	})

	g.Go(func() error {
		q := db.Table("appointments").
			Select("appointments.id AS appointment_id, appointments.start_time, appointments.status, " +
				"customers.full_name AS customer_name, services.name AS service_name, " +
				"vehicles.make, vehicles.model, vehicles.year").
			Joins("LEFT JOIN customers ON customers.id = appointments.customer_id").
			Joins("LEFT JOIN services ON services.id = appointments.service_id").
			Joins("LEFT JOIN vehicles ON vehicles.id = appointments.vehicle_id").
			Order("appointments.start_time ASC").
			Limit(5)
		if scopeToday {
			from, to := utils.TodayRange()
			q = q.Where("appointments.start_time BETWEEN ? AND ?", from, to)
		}
		return q.Scan(&rows).Error
	})

	if err := g.Wait(); err != nil {
		logger.Error("Failed to load dashboard overview", err)
		return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
			Status:  fiber.StatusOK,
			Message: "Dashboard overview",
			Data:    emptyOverview(),
		})
	}

	overview := dashboardTypes.Overview{
		Stats: dashboardTypes.DashboardStats{
			TotalCustomers: totalCustomers,
			ActiveJobs:     int64(len(activeJobs)),
			Revenue:        revenue,
			RevenueDisplay: utils.FormatCurrency(revenue),
		},
		Upcoming: make([]dashboardTypes.UpcomingAppointment, 0, len(rows)),
	}

	for _, row := range rows {
		overview.Upcoming = append(overview.Upcoming, viewRow(row))
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Dashboard overview",
		Data:    overview,
	})
}

// viewRow maps a joined row to its display form, filling fallback labels
// where a join did not resolve.
func viewRow(row upcomingRow) dashboardTypes.UpcomingAppointment {
	customerName := "Unknown"
	if row.CustomerName != nil && *row.CustomerName != "" {
		customerName = *row.CustomerName
	}

	serviceName := "Detailing"
	if row.ServiceName != nil && *row.ServiceName != "" {
		serviceName = *row.ServiceName
	}

	vehicleLabel := "Unknown Vehicle"
	if row.Make != nil && row.Model != nil {
		year := 0
		if row.Year != nil {
			year = *row.Year
		}
		vehicleLabel = utils.FormatVehicleLabel(year, *row.Make, *row.Model)
	}

	status := appointmentModel.AppointmentStatus(row.Status)

	return dashboardTypes.UpcomingAppointment{
		AppointmentID: row.AppointmentID,
		CustomerName:  customerName,
		ServiceName:   serviceName,
		VehicleLabel:  vehicleLabel,
		StartTime:     row.StartTime,
		TimeDisplay:   utils.FormatTimeOfDay(row.StartTime),
		Status:        status.String(),
		StatusClass:   status.BadgeClass(),
	}
}

func emptyOverview() dashboardTypes.Overview {
	return dashboardTypes.Overview{
		Stats: dashboardTypes.DashboardStats{
			RevenueDisplay: utils.FormatCurrency(0),
		},
		Upcoming: []dashboardTypes.UpcomingAppointment{},
	}
}
