package models

import (
	"github.com/google/uuid"
)

// Order lifecycle statuses.
const (
	OrderStatusPending        = "PENDING"
	OrderStatusConfirmed      = "CONFIRMED"
	OrderStatusPreparing      = "PREPARING"
	OrderStatusOutForDelivery = "OUT_FOR_DELIVERY"
	OrderStatusDelivered      = "DELIVERED"
	OrderStatusCancelled      = "CANCELLED"
)

// Payment methods accepted at checkout.
const (
	PaymentMethodCOD  = "COD"
	PaymentMethodUPI  = "UPI"
	PaymentMethodCard = "Card"
)

// ValidOrderStatus reports whether s is a known lifecycle status.
func ValidOrderStatus(s string) bool {
	switch s {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusPreparing,
		OrderStatusOutForDelivery, OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

// OnlinePaymentMethod reports whether the method settles through the gateway.
func OnlinePaymentMethod(m string) bool {
	return m == PaymentMethodUPI || m == PaymentMethodCard
}

// Order is a vendor-scoped purchase record created at checkout. The delivery
// address is denormalized so later address edits never rewrite history.
type Order struct {
	BaseModel
	OrderNumber string         `gorm:"uniqueIndex" json:"order_number"`
	UserID      uuid.UUID      `gorm:"type:uuid;index" json:"user_id"`
	User        *User          `json:"user,omitempty"`
	VendorID    uuid.UUID      `gorm:"type:uuid;index" json:"vendor_id"`
	Vendor      *VendorProfile `json:"vendor,omitempty"`
	TotalAmount float64        `json:"total_amount"`

	PaymentMethod string `json:"payment_method"`
	PaymentID     string `json:"payment_id"`
	Status        string `json:"status"`

	DeliveryTitle       string `json:"delivery_title"`
	DeliveryFullAddress string `json:"delivery_full_address"`
	DeliveryLandmark    string `json:"delivery_landmark"`
	DeliveryCity        string `json:"delivery_city"`
	DeliveryState       string `json:"delivery_state"`
	DeliveryPincode     string `json:"delivery_pincode"`
	DeliveryPhone       string `json:"delivery_phone"`

	Notes string      `json:"notes"`
	Items []OrderItem `json:"items,omitempty"`
}

// OrderItem records one purchased line at its price at time of purchase.
type OrderItem struct {
	BaseModel
	OrderID   uuid.UUID `gorm:"type:uuid;index" json:"order_id"`
	ProductID uuid.UUID `gorm:"type:uuid" json:"product_id"`
	Product   *Product  `json:"product,omitempty"`
	Quantity  int       `json:"quantity"`
	Price     float64   `json:"price"`
}
