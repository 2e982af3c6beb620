package provider

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/localserve/marketplace-api/controllers"
	"github.com/localserve/marketplace-api/db"
	"github.com/localserve/marketplace-api/logger"
	"github.com/localserve/marketplace-api/middleware"
	"github.com/localserve/marketplace-api/models"
	"github.com/localserve/marketplace-api/utils"
)

type ServiceInput struct {
	Title       string   `json:"title"`
	Category    string   `json:"category"`
	Description string   `json:"description"`
	Price       *float64 `json:"price"`
	Image       string   `json:"image"`
	IsActive    *bool    `json:"is_active"`
}

// GetMyServices lists all services owned by the logged-in provider,
// including deactivated ones.
func GetMyServices(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	var services []models.Service
	if err := db.DB.Where("provider_id = ?", user.ID).Order("created_at desc").Find(&services).Error; err != nil {
		logger.Get().Error("failed to fetch provider services", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "failed to fetch services",
		})
	}

	return c.JSON(fiber.Map{"services": services})
}

// CreateService creates a new catalog entry owned by the logged-in provider.
func CreateService(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	input := new(ServiceInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "cannot parse JSON",
		})
	}
	if input.Title == "" || input.Category == "" || input.Price == nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "title, category and price are required",
		})
	}
	if *input.Price < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "price must be non-negative",
		})
	}

	service := models.Service{
		ProviderID:  user.ID,
		Title:       input.Title,
		Category:    input.Category,
		Description: input.Description,
		Price:       *input.Price,
		Image:       input.Image,
		IsActive:    true,
	}

	if err := db.DB.Create(&service).Error; err != nil {
		logger.Get().Error("failed to create service", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "failed to create service",
		})
	}

	controllers.InvalidateCategoryCache()

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "service created successfully",
		"service": service,
	})
}

// UpdateService mutates a service owned by the logged-in provider. Ownership
// is part of the lookup, so another provider's service reads as not found.
func UpdateService(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	id := c.Params("id")

	input := new(ServiceInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "cannot parse JSON",
		})
	}

	var service models.Service
	if err := db.DB.Where("provider_id = ?", user.ID).First(&service, id).Error; err != nil {
		return utils.Fail(c, models.ErrNotFound)
	}

	if input.Title != "" {
		service.Title = input.Title
	}
	if input.Category != "" {
		service.Category = input.Category
	}
	if input.Description != "" {
		service.Description = input.Description
	}
	if input.Image != "" {
		service.Image = input.Image
	}
	if input.Price != nil {
		if *input.Price < 0 {
			return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
				Message: "price must be non-negative",
			})
		}
		service.Price = *input.Price
	}
	if input.IsActive != nil {
		service.IsActive = *input.IsActive
	}

	if err := db.DB.Save(&service).Error; err != nil {
		logger.Get().Error("failed to update service", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "failed to update service",
		})
	}

	controllers.InvalidateCategoryCache()

	return c.JSON(fiber.Map{
		"message": "service updated successfully",
		"service": service,
	})
}

// DeleteService soft-deletes by flipping IsActive off. Existing bookings keep
// their snapshot of the provider and stay intact.
func DeleteService(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	id := c.Params("id")

	var service models.Service
	if err := db.DB.Where("provider_id = ?", user.ID).First(&service, id).Error; err != nil {
		return utils.Fail(c, models.ErrNotFound)
	}

	service.IsActive = false
	if err := db.DB.Save(&service).Error; err != nil {
		logger.Get().Error("failed to deactivate service", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "failed to delete service",
		})
	}

	controllers.InvalidateCategoryCache()

	return c.JSON(fiber.Map{
		"message": "service deleted successfully",
		"service": service,
	})
}
