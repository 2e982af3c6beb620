package models

import (
	"time"
)

type UserRole string

const (
	RoleCustomer UserRole = "customer"
	RoleProvider UserRole = "provider"
	RoleAdmin    UserRole = "admin"
)

// ValidRole reports whether r is one of the known roles.
func ValidRole(r UserRole) bool {
	switch r {
	case RoleCustomer, RoleProvider, RoleAdmin:
		return true
	}
	return false
}

type User struct {
	ID         uint             `json:"id" gorm:"primaryKey"`
	Name       string           `json:"name"`
	Email      string           `json:"email" gorm:"uniqueIndex"`
	Password   string           `json:"-"`
	Phone      string           `json:"phone,omitempty"`
	Role       UserRole         `json:"role"`
	ProfilePic string           `json:"profile_pic,omitempty"`
	Profile    *ProviderProfile `json:"provider_profile,omitempty" gorm:"foreignKey:UserID"`
	CreatedAt  time.Time        `json:"created_at"`
	UpdatedAt  time.Time        `json:"updated_at"`
}

// ProviderProfile carries the provider-only fields. The row exists only for
// users with the provider role, so a customer can never carry business data.
type ProviderProfile struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	UserID       uint      `json:"user_id" gorm:"uniqueIndex"`
	BusinessName string    `json:"business_name"`
	Bio          string    `json:"bio"`
	Experience   int       `json:"experience"`
	ServiceAreas []string  `json:"service_areas" gorm:"serializer:json"`
	Verified     bool      `json:"verified"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// IsProvider reports whether the user may own services.
func (u *User) IsProvider() bool {
	return u.Role == RoleProvider
}

// IsAdmin reports whether the user has admin privileges.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
