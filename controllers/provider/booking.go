package provider

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/localserve/marketplace-api/db"
	"github.com/localserve/marketplace-api/logger"
	"github.com/localserve/marketplace-api/middleware"
	"github.com/localserve/marketplace-api/models"
	"github.com/localserve/marketplace-api/utils"
)

// GetBookings lists bookings placed against the logged-in provider's
// services, optionally filtered by status.
func GetBookings(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	query := db.DB.Preload("Service").Preload("Customer").
		Where("provider_id = ?", user.ID)
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var bookings []models.Booking
	if err := query.Order("created_at desc").Find(&bookings).Error; err != nil {
		logger.Get().Error("failed to fetch provider bookings", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "failed to fetch bookings",
		})
	}

	return c.JSON(fiber.Map{"bookings": bookings})
}

type statusInput struct {
	Status models.BookingStatus `json:"status"`
}

// UpdateBookingStatus advances a booking through its lifecycle on behalf of
// the provider. The state machine decides legality and authority.
func UpdateBookingStatus(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	id := c.Params("id")

	input := new(statusInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "cannot parse JSON",
		})
	}
	if !models.ValidStatus(input.Status) {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "invalid status",
		})
	}

	var booking models.Booking
	if err := db.DB.First(&booking, id).Error; err != nil {
		return utils.Fail(c, models.ErrNotFound)
	}

	if err := booking.Transition(user, input.Status); err != nil {
		return utils.Fail(c, err)
	}

	if err := db.DB.Save(&booking).Error; err != nil {
		logger.Get().Error("failed to update booking", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "failed to update booking",
		})
	}

	return c.JSON(fiber.Map{
		"message": "booking status updated",
		"booking": booking,
	})
}
