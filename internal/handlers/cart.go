package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/example/freshcart/internal/middleware"
	"github.com/example/freshcart/internal/models"
)

// CartHandler manages the authenticated user's cart.
type CartHandler struct {
	db *gorm.DB
}

// NewCartHandler constructs CartHandler.
func NewCartHandler(db *gorm.DB) *CartHandler {
	return &CartHandler{db: db}
}

// GetCart returns the cart items with a running total at effective prices.
func (h *CartHandler) GetCart(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
	}

	var items []models.CartItem
	if err := h.db.Preload("Product.Vendor").
		Where("user_id = ?", user.ID).
		Order("created_at desc").
		Find(&items).Error; err != nil {
		return err
	}

	var total float64
	for _, item := range items {
		total += item.Product.EffectivePrice() * float64(item.Quantity)
	}

	return c.JSON(fiber.Map{
		"status": "success",
		"data": fiber.Map{
			"items":     items,
			"total":     total,
			"itemCount": len(items),
		},
	})
}

type addToCartRequest struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// AddToCart puts a product in the cart, merging with an existing row for the
// same product. The resulting quantity may never exceed current stock.
func (h *CartHandler) AddToCart(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
	}

	var req addToCartRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	if req.ProductID == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Product ID is required")
	}
	if req.Quantity <= 0 {
		req.Quantity = 1
	}

	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid product id")
	}

	var product models.Product
	if err := h.db.First(&product, "id = ?", productID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return fiber.NewError(fiber.StatusNotFound, "Product not found")
		}
		return err
	}

	if product.Stock < req.Quantity {
		return fiber.NewError(fiber.StatusBadRequest, "Insufficient stock")
	}

	var item models.CartItem
	err = h.db.Where("user_id = ? AND product_id = ?", user.ID, productID).First(&item).Error
	switch {
	case err == nil:
		newQuantity := item.Quantity + req.Quantity
		if product.Stock < newQuantity {
			return fiber.NewError(fiber.StatusBadRequest, "Insufficient stock")
		}
		if err := h.db.Model(&item).Update("quantity", newQuantity).Error; err != nil {
			return err
		}
		item.Quantity = newQuantity
	case err == gorm.ErrRecordNotFound:
		item = models.CartItem{
			UserID:    user.ID,
			ProductID: productID,
			Quantity:  req.Quantity,
		}
		if err := h.db.Create(&item).Error; err != nil {
			return err
		}
	default:
		return err
	}

	item.Product = &product

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"status":  "success",
		"message": "Product added to cart",
		"data":    item,
	})
}

type updateCartRequest struct {
	Quantity int `json:"quantity"`
}

// UpdateCartItem sets an explicit quantity, re-validated against stock.
// Quantities below 1 are rejected; clients remove the item instead.
func (h *CartHandler) UpdateCartItem(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
	}

	itemID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid id")
	}

	var req updateCartRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	if req.Quantity < 1 {
		return fiber.NewError(fiber.StatusBadRequest, "Quantity must be at least 1")
	}

	var item models.CartItem
	if err := h.db.Preload("Product").
		First(&item, "id = ? AND user_id = ?", itemID, user.ID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return fiber.NewError(fiber.StatusNotFound, "Cart item not found")
		}
		return err
	}

	if item.Product.Stock < req.Quantity {
		return fiber.NewError(fiber.StatusBadRequest, "Insufficient stock")
	}

	if err := h.db.Model(&item).Update("quantity", req.Quantity).Error; err != nil {
		return err
	}
	item.Quantity = req.Quantity

	return c.JSON(fiber.Map{
		"status":  "success",
		"message": "Cart updated",
		"data":    item,
	})
}

// RemoveFromCart deletes one cart row, scoped to the requesting user.
func (h *CartHandler) RemoveFromCart(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
	}

	itemID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid id")
	}

	var item models.CartItem
	if err := h.db.First(&item, "id = ? AND user_id = ?", itemID, user.ID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return fiber.NewError(fiber.StatusNotFound, "Cart item not found")
		}
		return err
	}

	if err := h.db.Delete(&item).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"status":  "success",
		"message": "Item removed from cart",
	})
}

// ClearCart removes every cart row for the user.
func (h *CartHandler) ClearCart(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
	}

	if err := h.db.Where("user_id = ?", user.ID).Delete(&models.CartItem{}).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"status":  "success",
		"message": "Cart cleared",
	})
}
