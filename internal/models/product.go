package models

import "github.com/google/uuid"

// Product is a grocery item sold by a single vendor.
type Product struct {
	BaseModel
	Name          string         `json:"name"`
	Description   string         `json:"description"`
	Price         float64        `json:"price"`
	DiscountPrice *float64       `json:"discount_price,omitempty"`
	Category      string         `gorm:"index" json:"category"`
	Unit          string         `json:"unit"`
	Stock         int            `json:"stock"`
	ImageURL      string         `json:"image_url"`
	IsFeatured    bool           `json:"is_featured"`
	VendorID      uuid.UUID      `gorm:"type:uuid;index" json:"vendor_id"`
	Vendor        *VendorProfile `json:"vendor,omitempty"`
}

// EffectivePrice returns the discount price when one is set, else the list price.
func (p *Product) EffectivePrice() float64 {
	if p.DiscountPrice != nil && *p.DiscountPrice > 0 {
		return *p.DiscountPrice
	}
	return p.Price
}
