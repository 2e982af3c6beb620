package controllers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/localserve/marketplace-api/db"
	"github.com/localserve/marketplace-api/logger"
	"github.com/localserve/marketplace-api/middleware"
	"github.com/localserve/marketplace-api/models"
	"github.com/localserve/marketplace-api/utils"
)

type BookingInput struct {
	ServiceID   uint      `json:"service_id"`
	BookingDate time.Time `json:"booking_date"`
	BookingTime string    `json:"booking_time"`
	Address     string    `json:"address"`
	TotalAmount float64   `json:"total_amount"`
}

// CreateBooking books an active service for the authenticated customer.
// The service's provider id is snapshotted onto the booking at creation;
// later reassignment of the service does not touch existing bookings.
func CreateBooking(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	input := new(BookingInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "cannot parse JSON",
		})
	}
	if input.ServiceID == 0 || input.Address == "" {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "service_id and address are required",
		})
	}

	var service models.Service
	if err := db.DB.Where("is_active = ?", true).First(&service, input.ServiceID).Error; err != nil {
		return utils.Fail(c, models.ErrNotFound)
	}

	booking := models.Booking{
		CustomerID:  user.ID,
		ProviderID:  service.ProviderID,
		ServiceID:   service.ID,
		BookingDate: input.BookingDate,
		BookingTime: input.BookingTime,
		Address:     input.Address,
		TotalAmount: input.TotalAmount,
		Status:      models.StatusPending,
	}

	if err := db.DB.Create(&booking).Error; err != nil {
		logger.Get().Error("failed to create booking", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "failed to create booking",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "booking created successfully",
		"booking": booking,
	})
}

// GetMyBookings lists the authenticated customer's bookings, optionally
// filtered by status.
func GetMyBookings(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	query := db.DB.Preload("Service").Where("customer_id = ?", user.ID)
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

// GetBooking returns a single booking. Only the booking's customer or
// provider may read it; anyone else gets 403.
func GetBooking(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	id := c.Params("id")

	var booking models.Booking
	if err := db.DB.Preload("Service").First(&booking, id).Error; err != nil {
		return utils.Fail(c, models.ErrNotFound)
	}

	if !booking.IsParticipant(user) {
		return utils.Fail(c, models.ErrForbidden)
	}

	return c.JSON(fiber.Map{"booking": booking})
}

type StatusInput struct {
	Status models.BookingStatus `json:"status"`
}

// UpdateBookingStatus requests a status transition on behalf of the
// authenticated user. The state machine on the model decides whether the
// transition and the actor are acceptable.
func UpdateBookingStatus(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	id := c.Params("id")

	input := new(StatusInput)
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
