package models

import (
	"time"
)

// CartItem is a customer's saved service with a quantity, kept until the
// customer books or clears it. One row per user/service pair.
type CartItem struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"index:idx_cart_user_service,unique"`
	ServiceID uint      `json:"service_id" gorm:"index:idx_cart_user_service,unique"`
	Service   Service   `json:"service,omitempty" gorm:"foreignKey:ServiceID"`
	Quantity  int       `json:"quantity" gorm:"default:1"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
