package cron

import (
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/localserve/marketplace-api/config"
	"github.com/localserve/marketplace-api/db"
	"github.com/localserve/marketplace-api/logger"
	"github.com/localserve/marketplace-api/models"
	"github.com/localserve/marketplace-api/utils"
)

// StartCronJobs schedules the daily booking reminder run.
func StartCronJobs(cfg *config.Config) {
	c := cron.New()
	// Every day at 08:00, remind customers of tomorrow's confirmed bookings
	_, err := c.AddFunc("0 8 * * *", func() { sendBookingReminders(cfg.SMTP) })
	if err != nil {
		logger.Get().Fatal("failed to add cron job", zap.Error(err))
	}
	c.Start()
	logger.Get().Info("cron scheduler started for booking reminders")
}

// sendBookingReminders mails every customer with a confirmed booking
// scheduled for the next day.
func sendBookingReminders(smtp config.SMTPConfig) {
	log := logger.Get()

	tomorrow := time.Now().AddDate(0, 0, 1)
	dayStart := time.Date(tomorrow.Year(), tomorrow.Month(), tomorrow.Day(), 0, 0, 0, 0, tomorrow.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)

	var bookings []models.Booking
	err := db.DB.Preload("Customer").Preload("Service").Preload("Provider").
		Where("status = ? AND booking_date >= ? AND booking_date < ?",
			models.StatusConfirmed, dayStart, dayEnd).
		Find(&bookings).Error
	if err != nil {
		log.Error("failed to fetch bookings for reminders", zap.Error(err))
		return
	}

	for _, booking := range bookings {
		if err := sendReminderEmail(smtp, &booking); err != nil {
			log.Error("failed to send reminder",
				zap.Uint("booking_id", booking.ID), zap.Error(err))
			continue
		}
		log.Info("sent booking reminder",
			zap.Uint("booking_id", booking.ID),
			zap.String("customer", booking.Customer.Email))
	}
}

func sendReminderEmail(smtp config.SMTPConfig, booking *models.Booking) error {
	subject := fmt.Sprintf("Reminder: Upcoming Booking - %s", booking.Service.Title)
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>This is a reminder for your booking scheduled tomorrow.</p>
		<p><strong>Details:</strong></p>
		<ul>
			<li><strong>Service:</strong> %s</li>
			<li><strong>Provider:</strong> %s</li>
			<li><strong>Date:</strong> %s</li>
			<li><strong>Time:</strong> %s</li>
			<li><strong>Address:</strong> %s</li>
		</ul>
		<p>If you need to cancel, please do so as soon as possible.</p>
	`, booking.Customer.Name, booking.Service.Title, booking.Provider.Name,
		booking.BookingDate.Format("2006-01-02"),
		booking.BookingTime,
		booking.Address)

	return utils.SendEmail(smtp, booking.Customer.Email, subject, body)
}
