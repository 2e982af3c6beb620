package models

import (
	"time"
)

type Service struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	ProviderID  uint      `json:"provider_id"`
	Provider    User      `json:"provider,omitempty" gorm:"foreignKey:ProviderID"`
	Title       string    `json:"title"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Image       string    `json:"image"`
	Rating      float64   `json:"rating"`
	Reviews     int       `json:"reviews"`
	IsActive    bool      `json:"is_active" gorm:"default:true"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
