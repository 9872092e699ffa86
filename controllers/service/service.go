package service

import (
	"detail-genius/logger"
	serviceModel "detail-genius/models/service"
	"detail-genius/types"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// ServiceController serves the read-only detailing catalog so clients do not
// have to hardcode it.
type ServiceController struct {
	DB *gorm.DB
}

// NewServiceController creates a new service controller
func NewServiceController(db *gorm.DB) *ServiceController {
	return &ServiceController{DB: db}
}

// Index lists the catalog ordered by id.
func (sc *ServiceController) Index(c *fiber.Ctx) error {
	var services []serviceModel.Service
	if err := sc.DB.Order("id ASC").Find(&services).Error; err != nil {
		logger.Error("Failed to list services", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to list services",
			Data:    nil,
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Service catalog",
		Data:    services,
	})
}
