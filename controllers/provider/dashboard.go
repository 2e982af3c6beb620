package provider

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/localserve/marketplace-api/db"
	"github.com/localserve/marketplace-api/middleware"
	"github.com/localserve/marketplace-api/models"
)

// GetDashboardStats returns booking counts and completed revenue for the
// logged-in provider.
func GetDashboardStats(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	var stats struct {
		TotalBookings  int64     `json:"total_bookings"`
		PendingCount   int64     `json:"pending_count"`
		ConfirmedCount int64     `json:"confirmed_count"`
		CompletedCount int64     `json:"completed_count"`
		CancelledCount int64     `json:"cancelled_count"`
		TotalServices  int64     `json:"total_services"`
		TotalEarnings  float64   `json:"total_earnings"`
		LastUpdated    time.Time `json:"last_updated"`
	}

	bookings := db.DB.Model(&models.Booking{}).Where("provider_id = ?", user.ID)
	bookings.Count(&stats.TotalBookings)

	countByStatus := func(s models.BookingStatus, dst *int64) {
		db.DB.Model(&models.Booking{}).
			Where("provider_id = ? AND status = ?", user.ID, s).
			Count(dst)
	}
	countByStatus(models.StatusPending, &stats.PendingCount)
	countByStatus(models.StatusConfirmed, &stats.ConfirmedCount)
	countByStatus(models.StatusCompleted, &stats.CompletedCount)
	countByStatus(models.StatusCancelled, &stats.CancelledCount)

	db.DB.Model(&models.Service{}).Where("provider_id = ?", user.ID).Count(&stats.TotalServices)

	var earnings struct{ Total float64 }
	db.DB.Model(&models.Booking{}).
		Where("provider_id = ? AND status = ?", user.ID, models.StatusCompleted).
		Select("COALESCE(SUM(total_amount), 0) as total").
		Scan(&earnings)
	stats.TotalEarnings = earnings.Total

	stats.LastUpdated = time.Now()

	return c.JSON(stats)
}
