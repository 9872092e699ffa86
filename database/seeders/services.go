package seeders

import (
	"log"

	serviceModel "detail-genius/models/service"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SeedServices keeps the service catalog in sync with the packages the
// booking wizard offers. Upserts on id so re-running is harmless.
func SeedServices(db *gorm.DB) error {
	log.Printf("🔍 Checking service catalog data integrity...")

	services := []serviceModel.Service{
		{ID: "1", Name: "Interior Deep Clean", Description: "Full vacuum, steam clean, stain removal", DurationMinutes: 120, Price: 150},
		{ID: "2", Name: "Exterior Gloss & Seal", Description: "Wash, clay bar, polish, sealant", DurationMinutes: 180, Price: 200},
		{ID: "3", Name: "Platinum Transformation", Description: "Full interior + exterior + 1-year protection", DurationMinutes: 300, Price: 450},
	}

	for _, svc := range services {
		err := db.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"name", "description", "duration_minutes", "price",
			}),
		}).Create(&svc).Error
		if err != nil {
			return err
		}
	}

	log.Printf("✅ Service catalog seeded (%d packages)", len(services))
	return nil
}
