package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/example/freshcart/internal/middleware"
	"github.com/example/freshcart/internal/models"
)

// WishlistHandler manages saved products.
type WishlistHandler struct {
	db *gorm.DB
}

// NewWishlistHandler constructs WishlistHandler.
func NewWishlistHandler(db *gorm.DB) *WishlistHandler {
	return &WishlistHandler{db: db}
}

// GetWishlist returns the user's saved products, newest first.
func (h *WishlistHandler) GetWishlist(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
	}

	var entries []models.Wishlist
	if err := h.db.Preload("Product.Vendor").
		Where("user_id = ?", user.ID).
		Order("created_at desc").
		Find(&entries).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"status": "success",
		"data":   entries,
	})
}

type addToWishlistRequest struct {
	ProductID string `json:"productId"`
}

// AddToWishlist saves a product; duplicates are a conflict.
func (h *WishlistHandler) AddToWishlist(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
	}

	var req addToWishlistRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	if req.ProductID == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Product ID is required")
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

	var existing models.Wishlist
	if err := h.db.Where("user_id = ? AND product_id = ?", user.ID, productID).
		First(&existing).Error; err == nil {
		return fiber.NewError(fiber.StatusConflict, "Product already in wishlist")
	} else if err != gorm.ErrRecordNotFound {
		return err
	}

	entry := models.Wishlist{
		UserID:    user.ID,
		ProductID: productID,
	}
	if err := h.db.Create(&entry).Error; err != nil {
		return err
	}
	entry.Product = &product

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"status":  "success",
		"message": "Product added to wishlist",
		"data":    entry,
	})
}

// RemoveFromWishlist deletes the saved entry for a product.
func (h *WishlistHandler) RemoveFromWishlist(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
	}

	productID, err := uuid.Parse(c.Params("productId"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid product id")
	}

	var entry models.Wishlist
	if err := h.db.Where("user_id = ? AND product_id = ?", user.ID, productID).
		First(&entry).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return fiber.NewError(fiber.StatusNotFound, "Product not in wishlist")
		}
		return err
	}

	if err := h.db.Delete(&entry).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"status":  "success",
		"message": "Product removed from wishlist",
	})
}
