package controllers

import (
	"encoding/json"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/localserve/marketplace-api/db"
	"github.com/localserve/marketplace-api/logger"
	"github.com/localserve/marketplace-api/models"
	"github.com/localserve/marketplace-api/redis"
	"github.com/localserve/marketplace-api/utils"
)

const categoriesCacheKey = "services:categories"

// GetAllServices returns active services, optionally filtered by category or
// a title search. Deactivated services never appear in public listings.
func GetAllServices(c *fiber.Ctx) error {
	query := db.DB.Where("is_active = ?", true)

	if category := c.Query("category"); category != "" {
		query = query.Where("category = ?", category)
	}
	if search := c.Query("search"); search != "" {
		query = query.Where("title LIKE ?", "%"+search+"%")
	}

	var services []models.Service
	if err := query.Find(&services).Error; err != nil {
		logger.Get().Error("failed to fetch services", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "failed to fetch services",
		})
	}

	return c.JSON(fiber.Map{"services": services})
}

// GetService returns one active service by id.
func GetService(c *fiber.Ctx) error {
	id := c.Params("id")

	var service models.Service
	if err := db.DB.Where("is_active = ?", true).First(&service, id).Error; err != nil {
		return utils.Fail(c, models.ErrNotFound)
	}
	return c.JSON(fiber.Map{"service": service})
}

// GetCategories returns the distinct category list, cached in redis for ten
// minutes. Writers invalidate the key on service create/update.
func GetCategories(c *fiber.Ctx) error {
	if redis.Client != nil {
		if cached, err := redis.Client.Get(redis.Ctx, categoriesCacheKey).Result(); err == nil {
			var categories []string
			if json.Unmarshal([]byte(cached), &categories) == nil {
				return c.JSON(fiber.Map{"categories": categories})
			}
		}
	}

	var categories []string
	if err := db.DB.Model(&models.Service{}).
		Where("is_active = ?", true).
		Distinct().
		Pluck("category", &categories).Error; err != nil {
		logger.Get().Error("failed to fetch categories", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "failed to fetch categories",
		})
	}

	if redis.Client != nil {
		if data, err := json.Marshal(categories); err == nil {
			redis.Client.Set(redis.Ctx, categoriesCacheKey, data, 10*time.Minute)
		}
	}

	return c.JSON(fiber.Map{"categories": categories})
}

// InvalidateCategoryCache drops the cached category list after a write.
func InvalidateCategoryCache() {
	if redis.Client != nil {
		redis.Client.Del(redis.Ctx, categoriesCacheKey)
	}
}
