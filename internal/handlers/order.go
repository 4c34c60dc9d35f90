package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/example/freshcart/internal/middleware"
	"github.com/example/freshcart/internal/models"
	"github.com/example/freshcart/internal/services"
	"github.com/example/freshcart/internal/utils"
)

// OrderHandler manages order endpoints.
type OrderHandler struct {
	db       *gorm.DB
	orders   *services.OrderService
	razorpay *services.RazorpayService
}

// NewOrderHandler constructs OrderHandler.
func NewOrderHandler(db *gorm.DB, orders *services.OrderService, razorpay *services.RazorpayService) *OrderHandler {
	return &OrderHandler{db: db, orders: orders, razorpay: razorpay}
}

type createOrderRequest struct {
	AddressID     string `json:"addressId"`
	PaymentMethod string `json:"paymentMethod"`
	Notes         string `json:"notes"`
}

// CreateOrder converts the cart into one order per vendor.
func (h *OrderHandler) CreateOrder(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
	}

	var req createOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	if req.AddressID == "" || req.PaymentMethod == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Address and payment method are required")
	}

	switch req.PaymentMethod {
	case models.PaymentMethodCOD, models.PaymentMethodUPI, models.PaymentMethodCard:
	default:
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payment method")
	}

	addressID, err := uuid.Parse(req.AddressID)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid address id")
	}

	result, err := h.orders.Place(user.ID, addressID, req.PaymentMethod, req.Notes)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrCartEmpty):
			return fiber.NewError(fiber.StatusBadRequest, "Cart is empty")
		case errors.Is(err, services.ErrAddressNotFound):
			return fiber.NewError(fiber.StatusNotFound, "Address not found")
		case errors.Is(err, services.ErrInsufficientStock):
			return fiber.NewError(fiber.StatusBadRequest, "Insufficient stock")
		}
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"status":  "success",
		"message": "Order placed successfully",
		"data": fiber.Map{
			"orders":        result.Orders,
			"razorpayKeyId": result.RazorpayKeyID,
		},
	})
}

// ListOrders returns the user's orders, newest first.
func (h *OrderHandler) ListOrders(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
	}

	pg := utils.ParsePagination(c, 10)
	query := h.db.Model(&models.Order{}).Where("user_id = ?", user.ID)

	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return err
	}

	var orders []models.Order
	if err := query.Preload("Items.Product").Preload("Vendor").
		Order("created_at desc").
		Limit(pg.Limit).Offset(pg.Offset).
		Find(&orders).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"status": "success",
		"data": fiber.Map{
			"orders":     orders,
			"pagination": pg.Envelope(total),
		},
	})
}

// GetOrder returns a single order belonging to the user.
func (h *OrderHandler) GetOrder(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid id")
	}

	var order models.Order
	if err := h.db.Preload("Items.Product").Preload("Vendor").
		First(&order, "id = ? AND user_id = ?", id, user.ID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return fiber.NewError(fiber.StatusNotFound, "Order not found")
		}
		return err
	}

	return c.JSON(fiber.Map{
		"status": "success",
		"data":   order,
	})
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

// UpdateOrderStatus moves an order through its lifecycle. Only the vendor the
// order belongs to may do this; the route carries a VENDOR role gate.
func (h *OrderHandler) UpdateOrderStatus(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid id")
	}

	var req updateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	if !models.ValidOrderStatus(req.Status) {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid status")
	}

	var profile models.VendorProfile
	if err := h.db.First(&profile, "user_id = ?", user.ID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return fiber.NewError(fiber.StatusForbidden, "Access denied")
		}
		return err
	}

	var order models.Order
	if err := h.db.First(&order, "id = ? AND vendor_id = ?", id, profile.ID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return fiber.NewError(fiber.StatusNotFound, "Order not found")
		}
		return err
	}

	if err := h.db.Model(&order).Update("status", req.Status).Error; err != nil {
		return err
	}
	order.Status = req.Status

	return c.JSON(fiber.Map{
		"status":  "success",
		"message": "Order status updated",
		"data":    order,
	})
}

type verifyPaymentRequest struct {
	RazorpayOrderID   string `json:"razorpay_order_id"`
	RazorpayPaymentID string `json:"razorpay_payment_id"`
	RazorpaySignature string `json:"razorpay_signature"`
	OrderID           string `json:"orderId"`
}

// VerifyPayment validates a Razorpay checkout callback. A matching signature
// confirms the order and stores the payment id; anything else leaves the
// order untouched.
func (h *OrderHandler) VerifyPayment(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
	}

	var req verifyPaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	if req.RazorpayOrderID == "" || req.RazorpayPaymentID == "" || req.RazorpaySignature == "" || req.OrderID == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Missing payment verification fields")
	}

	orderID, err := uuid.Parse(req.OrderID)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid order id")
	}

	if !h.razorpay.VerifySignature(req.RazorpayOrderID, req.RazorpayPaymentID, req.RazorpaySignature) {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid signature")
	}

	var order models.Order
	if err := h.db.First(&order, "id = ? AND user_id = ?", orderID, user.ID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return fiber.NewError(fiber.StatusNotFound, "Order not found")
		}
		return err
	}

	if err := h.db.Model(&order).Updates(map[string]interface{}{
		"status":     models.OrderStatusConfirmed,
		"payment_id": req.RazorpayPaymentID,
	}).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"status":  "success",
		"message": "Payment verified successfully",
	})
}
