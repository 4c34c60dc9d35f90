package models

import "github.com/google/uuid"

// Address is a delivery address; at most one per user carries IsDefault.
type Address struct {
	BaseModel
	UserID      uuid.UUID `gorm:"type:uuid;index" json:"user_id"`
	Title       string    `json:"title"`
	FullAddress string    `json:"full_address"`
	Landmark    string    `json:"landmark"`
	City        string    `json:"city"`
	State       string    `json:"state"`
	Pincode     string    `json:"pincode"`
	Phone       string    `json:"phone_number"`
	IsDefault   bool      `json:"is_default"`
}
