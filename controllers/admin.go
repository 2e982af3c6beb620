package controllers

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/localserve/marketplace-api/db"
	"github.com/localserve/marketplace-api/logger"
	"github.com/localserve/marketplace-api/models"
	"github.com/localserve/marketplace-api/utils"
)

// GetAdminStats returns marketplace-wide counts.
func GetAdminStats(c *fiber.Ctx) error {
	var stats struct {
		TotalUsers     int64 `json:"total_users"`
		TotalProviders int64 `json:"total_providers"`
		TotalServices  int64 `json:"total_services"`
		TotalBookings  int64 `json:"total_bookings"`
	}

	db.DB.Model(&models.User{}).Count(&stats.TotalUsers)
	db.DB.Model(&models.User{}).Where("role = ?", models.RoleProvider).Count(&stats.TotalProviders)
	db.DB.Model(&models.Service{}).Count(&stats.TotalServices)
	db.DB.Model(&models.Booking{}).Count(&stats.TotalBookings)

	return c.JSON(stats)
}

// GetAllUsers lists users, optionally filtered by role.
func GetAllUsers(c *fiber.Ctx) error {
	query := db.DB.Model(&models.User{})
	if role := c.Query("role"); role != "" {
		query = query.Where("role = ?", role)
	}

	var users []models.User
	if err := query.Order("created_at desc").Find(&users).Error; err != nil {
		logger.Get().Error("failed to fetch users", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "failed to fetch users",
		})
	}

	return c.JSON(fiber.Map{"users": users})
}

// VerifyProvider flips the verified flag on a provider's profile.
func VerifyProvider(c *fiber.Ctx) error {
	id := c.Params("id")

	var user models.User
	if err := db.DB.Preload("Profile").First(&user, id).Error; err != nil {
		return utils.Fail(c, models.ErrNotFound)
	}
	if !user.IsProvider() || user.Profile == nil {
		return utils.Fail(c, models.ErrNotFound)
	}

	user.Profile.Verified = true
	if err := db.DB.Save(user.Profile).Error; err != nil {
		logger.Get().Error("failed to verify provider", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "failed to verify provider",
		})
	}

	return c.JSON(fiber.Map{
		"message": "provider verified",
		"user":    user,
	})
}

// GetAllBookings lists every booking, optionally filtered by status.
func GetAllBookings(c *fiber.Ctx) error {
	query := db.DB.Preload("Service").Preload("Customer").Preload("Provider")
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var bookings []models.Booking
	if err := query.Order("created_at desc").Find(&bookings).Error; err != nil {
		logger.Get().Error("failed to fetch bookings", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "failed to fetch bookings",
		})
	}

	return c.JSON(fiber.Map{"bookings": bookings})
}
