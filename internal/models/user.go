package models

import (
	"time"
)

// User roles.
const (
	RoleConsumer = "CONSUMER"
	RoleVendor   = "VENDOR"
)

// User represents an account identified by phone number.
type User struct {
	BaseModel
	Phone         string         `gorm:"uniqueIndex" json:"phone_number"`
	PasswordHash  string         `json:"-"`
	Name          string         `json:"name"`
	Email         string         `json:"email"`
	Role          string         `gorm:"default:CONSUMER" json:"role"`
	IsVerified    bool           `json:"is_verified"`
	VendorProfile *VendorProfile `json:"vendor_profile,omitempty"`
	Addresses     []Address      `json:"addresses,omitempty"`
	CartItems     []CartItem     `json:"-"`
	Orders        []Order        `json:"-"`
	Wishlist      []Wishlist     `json:"-"`
}

// OTP is a single-use login code sent to a phone number.
type OTP struct {
	BaseModel
	Phone     string    `gorm:"index" json:"phone_number"`
	Code      string    `json:"-"`
	ExpiresAt time.Time `json:"expires_at"`
	IsUsed    bool      `json:"is_used"`
}
