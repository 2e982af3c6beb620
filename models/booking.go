package models

import (
	"time"

	"gorm.io/gorm"
)

type BookingStatus string

const (
	StatusPending    BookingStatus = "pending"
	StatusConfirmed  BookingStatus = "confirmed"
	StatusInProgress BookingStatus = "in-progress"
	StatusCompleted  BookingStatus = "completed"
	StatusCancelled  BookingStatus = "cancelled"
)

// ValidStatus reports whether s is one of the known booking statuses.
func ValidStatus(s BookingStatus) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusInProgress, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

type Booking struct {
	ID            uint          `json:"id" gorm:"primaryKey"`
	CustomerID    uint          `json:"customer_id"`
	Customer      User          `json:"customer,omitempty" gorm:"foreignKey:CustomerID"`
	ProviderID    uint          `json:"provider_id"`
	Provider      User          `json:"provider,omitempty" gorm:"foreignKey:ProviderID"`
	ServiceID     uint          `json:"service_id"`
	Service       Service       `json:"service,omitempty" gorm:"foreignKey:ServiceID"`
	BookingDate   time.Time     `json:"booking_date"`
	BookingTime   string        `json:"booking_time"`
	Address       string        `json:"address"`
	TotalAmount   float64       `json:"total_amount"`
	Status        BookingStatus `json:"status"`
	PaymentStatus string        `json:"payment_status"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

func (b *Booking) BeforeCreate(tx *gorm.DB) error {
	if b.Status == "" {
		b.Status = StatusPending
	}
	if b.PaymentStatus == "" {
		b.PaymentStatus = "pending"
	}
	return nil
}

// IsParticipant reports whether u is the booking's customer or provider.
// Bookings are visible to participants only.
func (b *Booking) IsParticipant(u *User) bool {
	return u.ID == b.CustomerID || u.ID == b.ProviderID
}

// terminal reports whether no further transitions are allowed from s.
func terminal(s BookingStatus) bool {
	return s == StatusCompleted || s == StatusCancelled
}

// Transition moves the booking to next on behalf of actor, enforcing both
// the status graph and transition authority:
//
//	pending -> confirmed -> in-progress -> completed   (provider only)
//	pending|confirmed -> cancelled                     (customer or provider)
//
// A request from a terminal state fails with ErrInvalidTransition. Any other
// disallowed request, including one from a non-participant, fails with
// ErrForbidden. The status is mutated in memory only; the caller persists.
func (b *Booking) Transition(actor *User, next BookingStatus) error {
	if terminal(b.Status) {
		return ErrInvalidTransition
	}
	if !b.IsParticipant(actor) {
		return ErrForbidden
	}

	isProvider := actor.ID == b.ProviderID

	allowed := false
	switch {
	case next == StatusCancelled && (b.Status == StatusPending || b.Status == StatusConfirmed):
		allowed = true // either party may cancel before work starts
	case isProvider && b.Status == StatusPending && next == StatusConfirmed:
		allowed = true
	case isProvider && b.Status == StatusConfirmed && next == StatusInProgress:
		allowed = true
	case isProvider && b.Status == StatusInProgress && next == StatusCompleted:
		allowed = true
	}
	if !allowed {
		return ErrForbidden
	}

	b.Status = next
	return nil
}
