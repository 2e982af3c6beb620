package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/localserve/marketplace-api/db"
	"github.com/localserve/marketplace-api/logger"
	"github.com/localserve/marketplace-api/middleware"
	"github.com/localserve/marketplace-api/models"
	"github.com/localserve/marketplace-api/utils"
)

// GetCart lists the authenticated user's cart items, newest first, with the
// underlying service included.
func GetCart(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	var items []models.CartItem
	if err := db.DB.Preload("Service").
		Where("user_id = ?", user.ID).
		Order("created_at desc").
		Find(&items).Error; err != nil {
		logger.Get().Error("failed to fetch cart", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "failed to fetch cart",
		})
	}

	return c.JSON(fiber.Map{"cart": items})
}

type CartInput struct {
	ServiceID uint `json:"service_id"`
	Quantity  int  `json:"quantity"`
}

// AddToCart puts an active service into the user's cart. Adding a service
// that is already in the cart bumps its quantity instead of creating a
// duplicate row.
func AddToCart(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	input := new(CartInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "cannot parse JSON",
		})
	}
	if input.ServiceID == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "service_id is required",
		})
	}
	if input.Quantity <= 0 {
		input.Quantity = 1
	}

	var service models.Service
	if err := db.DB.Where("is_active = ?", true).First(&service, input.ServiceID).Error; err != nil {
		return utils.Fail(c, models.ErrNotFound)
	}

	var item models.CartItem
	err := db.DB.Where("user_id = ? AND service_id = ?", user.ID, service.ID).First(&item).Error
	switch {
	case err == nil:
		item.Quantity += input.Quantity
		if err := db.DB.Save(&item).Error; err != nil {
			logger.Get().Error("failed to update cart item", zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
				Message: "failed to update cart item",
			})
		}
		item.Service = service
		return c.JSON(fiber.Map{
			"message": "cart item quantity updated",
			"item":    item,
		})
	case errors.Is(err, gorm.ErrRecordNotFound):
		item = models.CartItem{
			UserID:    user.ID,
			ServiceID: service.ID,
			Quantity:  input.Quantity,
		}
		if err := db.DB.Create(&item).Error; err != nil {
			logger.Get().Error("failed to add cart item", zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
				Message: "failed to add cart item",
			})
		}
		item.Service = service
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"message": "item added to cart",
			"item":    item,
		})
	default:
		logger.Get().Error("failed to read cart", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "failed to read cart",
		})
	}
}

type CartQuantityInput struct {
	Quantity int `json:"quantity"`
}

// UpdateCartItem sets the quantity of one of the user's cart items.
func UpdateCartItem(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	id := c.Params("id")

	input := new(CartQuantityInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "cannot parse JSON",
		})
	}
	if input.Quantity < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "quantity must be at least 1",
		})
	}

	var item models.CartItem
	if err := db.DB.Preload("Service").
		Where("user_id = ?", user.ID).
		First(&item, id).Error; err != nil {
		return utils.Fail(c, models.ErrNotFound)
	}

	item.Quantity = input.Quantity
	if err := db.DB.Save(&item).Error; err != nil {
		logger.Get().Error("failed to update cart item", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "failed to update cart item",
		})
	}

	return c.JSON(fiber.Map{
		"message": "cart item updated",
		"item":    item,
	})
}

// RemoveFromCart deletes one of the user's cart items. Items belonging to
// other users read as 404.
func RemoveFromCart(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	id := c.Params("id")

	var item models.CartItem
	if err := db.DB.Where("user_id = ?", user.ID).First(&item, id).Error; err != nil {
		return utils.Fail(c, models.ErrNotFound)
	}

	if err := db.DB.Delete(&item).Error; err != nil {
		logger.Get().Error("failed to remove cart item", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "failed to remove cart item",
		})
	}

	return c.JSON(fiber.Map{"message": "item removed from cart"})
}

// ClearCart deletes all of the user's cart items.
func ClearCart(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	if err := db.DB.Where("user_id = ?", user.ID).Delete(&models.CartItem{}).Error; err != nil {
		logger.Get().Error("failed to clear cart", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "failed to clear cart",
		})
	}

	return c.JSON(fiber.Map{"message": "cart cleared"})
}
