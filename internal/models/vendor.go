package models

import "github.com/google/uuid"

// VendorProfile holds shop metadata for users with the VENDOR role.
type VendorProfile struct {
	BaseModel
	UserID      uuid.UUID `gorm:"type:uuid;uniqueIndex" json:"user_id"`
	ShopName    string    `json:"shop_name"`
	ShopAddress string    `json:"shop_address"`
	Description string    `json:"description"`
	Rating      float64   `json:"rating"`
	Products    []Product `gorm:"foreignKey:VendorID" json:"products,omitempty"`
}
