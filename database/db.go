package database

import (
	"fmt"
	"os"

	"detail-genius/logger"
	appointmentModel "detail-genius/models/appointment"
	customerModel "detail-genius/models/customer"
	logModel "detail-genius/models/log"
	serviceModel "detail-genius/models/service"
	vehicleModel "detail-genius/models/vehicle"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

// InitDB initializes the database connection with auto migration and indexing
func InitDB() (*gorm.DB, error) {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		logger.Error("Error loading .env file", err)
	}

	host := os.Getenv("DB_HOST")
	port := os.Getenv("DB_PORT")
	database := os.Getenv("DB_DATABASE")
	user := os.Getenv("DB_USERNAME")
	password := os.Getenv("DB_PASSWORD")
	sslmode := os.Getenv("DB_SSLMODE")

	if sslmode == "" {
		sslmode = "disable"
	}

	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		host, port, user, password, database, sslmode)

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		logger.Error("Failed to connect to the database", err)
		return nil, err
	}
	logger.Success("Successfully connected to the database")

	if err := Migrate(DB); err != nil {
		logger.Error("Failed to run migrations", err)
		return nil, err
	}
	logger.Success("All migrations completed successfully")

	if err := createForeignKeyConstraints(); err != nil {
		logger.Error("Failed to create foreign key constraints", err)
		return nil, err
	}
	logger.Success("All foreign key constraints created successfully")

	if err := createIndexes(); err != nil {
		logger.Error("Failed to create indexes", err)
		return nil, err
	}
	logger.Success("All indexes created successfully")

	return DB, nil
}

// Migrate runs auto migration for all models in dependency order.
func Migrate(db *gorm.DB) error {
	// Stage 1: reference relations without foreign keys
	stage1Models := []interface{}{
		&customerModel.Customer{},
		&serviceModel.Service{},
	}

	for _, model := range stage1Models {
		if err := db.AutoMigrate(model); err != nil {
			return fmt.Errorf("failed to migrate %T: %w", model, err)
		}
	}

	// Stage 2: models with dependencies on Stage 1
	stage2Models := []interface{}{
		&vehicleModel.Vehicle{},
		&appointmentModel.Appointment{},
		&appointmentModel.AppointmentStatusEvent{},
	}

	for _, model := range stage2Models {
		if err := db.AutoMigrate(model); err != nil {
			return fmt.Errorf("failed to migrate %T: %w", model, err)
		}
	}

	// Stage 3: logging
	if err := db.AutoMigrate(&logModel.Log{}); err != nil {
		return fmt.Errorf("failed to migrate %T: %w", &logModel.Log{}, err)
	}

	return nil
}

// createIndexes creates additional indexes for better performance
func createIndexes() error {
	if err := DB.Exec("CREATE INDEX IF NOT EXISTS idx_customers_uuid ON customers(uuid)").Error; err != nil {
		return fmt.Errorf("failed to create customer uuid index: %w", err)
	}
	if err := DB.Exec("CREATE INDEX IF NOT EXISTS idx_customers_email ON customers(email)").Error; err != nil {
		return fmt.Errorf("failed to create customer email index: %w", err)
	}
	if err := DB.Exec("CREATE INDEX IF NOT EXISTS idx_appointments_status ON appointments(status)").Error; err != nil {
		return fmt.Errorf("failed to create appointment status index: %w", err)
	}
	if err := DB.Exec("CREATE INDEX IF NOT EXISTS idx_appointments_start_time ON appointments(start_time)").Error; err != nil {
		return fmt.Errorf("failed to create appointment start_time index: %w", err)
	}
	if err := DB.Exec("CREATE INDEX IF NOT EXISTS idx_appointments_customer_id ON appointments(customer_id)").Error; err != nil {
		return fmt.Errorf("failed to create appointment customer_id index: %w", err)
	}
	if err := DB.Exec("CREATE INDEX IF NOT EXISTS idx_logs_status_code ON logs(status_code)").Error; err != nil {
		return fmt.Errorf("failed to create log status_code index: %w", err)
	}
	if err := DB.Exec("CREATE INDEX IF NOT EXISTS idx_logs_created_at ON logs(created_at)").Error; err != nil {
		return fmt.Errorf("failed to create log created_at index: %w", err)
	}

	return nil
}

// createForeignKeyConstraints creates foreign key constraints after auto migration
func createForeignKeyConstraints() error {
	constraints := []struct {
		name string
		sql  string
	}{
		{
			name: "fk_appointments_customer",
			sql: `ALTER TABLE appointments ADD CONSTRAINT fk_appointments_customer
				  FOREIGN KEY (customer_id) REFERENCES customers(id)
				  ON UPDATE CASCADE ON DELETE RESTRICT`,
		},
		{
			name: "fk_vehicles_customer",
			sql: `ALTER TABLE vehicles ADD CONSTRAINT fk_vehicles_customer
				  FOREIGN KEY (customer_id) REFERENCES customers(id)
				  ON UPDATE CASCADE ON DELETE RESTRICT`,
		},
		{
			name: "fk_appointment_status_events_appointment",
			sql: `ALTER TABLE appointment_status_events ADD CONSTRAINT fk_appointment_status_events_appointment
				  FOREIGN KEY (appointment_id) REFERENCES appointments(id)
				  ON UPDATE CASCADE ON DELETE CASCADE`,
		},
	}

	for _, constraint := range constraints {
		var exists bool
		checkSQL := `
			SELECT EXISTS (
				SELECT 1 FROM information_schema.table_constraints
				WHERE constraint_name = $1
			)
		`

		err := DB.Raw(checkSQL, constraint.name).Scan(&exists).Error
		if err != nil {
			logger.Warning(fmt.Sprintf("Failed to check constraint existence: %s - Error: %v", constraint.name, err))
			continue
		}

		if !exists {
			if err := DB.Exec(constraint.sql).Error; err != nil {
				logger.Warning(fmt.Sprintf("Failed to create constraint: %s - Error: %v", constraint.name, err))
			} else {
				logger.Success(fmt.Sprintf("Successfully created constraint: %s", constraint.name))
			}
		}
	}

	return nil
}

// GetDB returns the database instance
func GetDB() *gorm.DB {
	return DB
}
