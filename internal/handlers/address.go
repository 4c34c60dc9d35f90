package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/example/freshcart/internal/middleware"
	"github.com/example/freshcart/internal/models"
)

// AddressHandler manages delivery addresses.
type AddressHandler struct {
	db *gorm.DB
}

// NewAddressHandler constructs AddressHandler.
func NewAddressHandler(db *gorm.DB) *AddressHandler {
	return &AddressHandler{db: db}
}

// ListAddresses returns user addresses, default first.
func (h *AddressHandler) ListAddresses(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
	}

	var addresses []models.Address
	if err := h.db.Where("user_id = ?", user.ID).
		Order("is_default desc, created_at desc").
		Find(&addresses).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"status": "success",
		"data":   addresses,
	})
}

type createAddressRequest struct {
	Title       string `json:"title"`
	FullAddress string `json:"fullAddress"`
	Landmark    string `json:"landmark"`
	City        string `json:"city"`
	State       string `json:"state"`
	Pincode     string `json:"pincode"`
	Phone       string `json:"phoneNumber"`
	IsDefault   bool   `json:"isDefault"`
}

// CreateAddress creates an address; marking it default unsets every other default.
func (h *AddressHandler) CreateAddress(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
	}

	var req createAddressRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	if req.FullAddress == "" || req.City == "" || req.State == "" || req.Pincode == "" || req.Phone == "" {
		return fiber.NewError(fiber.StatusBadRequest, "All required fields must be provided")
	}

	if req.Title == "" {
		req.Title = "Home"
	}

	address := models.Address{
		UserID:      user.ID,
		Title:       req.Title,
		FullAddress: req.FullAddress,
		Landmark:    req.Landmark,
		City:        req.City,
		State:       req.State,
		Pincode:     req.Pincode,
		Phone:       req.Phone,
		IsDefault:   req.IsDefault,
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		if req.IsDefault {
			if err := tx.Model(&models.Address{}).
				Where("user_id = ? AND is_default = ?", user.ID, true).
				Update("is_default", false).Error; err != nil {
				return err
			}
		}
		return tx.Create(&address).Error
	})
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"status":  "success",
		"message": "Address created successfully",
		"data":    address,
	})
}

type updateAddressRequest struct {
	Title       *string `json:"title"`
	FullAddress *string `json:"fullAddress"`
	Landmark    *string `json:"landmark"`
	City        *string `json:"city"`
	State       *string `json:"state"`
	Pincode     *string `json:"pincode"`
	Phone       *string `json:"phoneNumber"`
	IsDefault   *bool   `json:"isDefault"`
}

// UpdateAddress updates an address owned by the user.
func (h *AddressHandler) UpdateAddress(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
	}

	addrID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid id")
	}

	var req updateAddressRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	var address models.Address
	if err := h.db.First(&address, "id = ? AND user_id = ?", addrID, user.ID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return fiber.NewError(fiber.StatusNotFound, "Address not found")
		}
		return err
	}

	updates := map[string]interface{}{}
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.FullAddress != nil {
		updates["full_address"] = *req.FullAddress
	}
	if req.Landmark != nil {
		updates["landmark"] = *req.Landmark
	}
	if req.City != nil {
		updates["city"] = *req.City
	}
	if req.State != nil {
		updates["state"] = *req.State
	}
	if req.Pincode != nil {
		updates["pincode"] = *req.Pincode
	}
	if req.Phone != nil {
		updates["phone"] = *req.Phone
	}
	if req.IsDefault != nil {
		updates["is_default"] = *req.IsDefault
	}

	if len(updates) == 0 {
		return fiber.NewError(fiber.StatusBadRequest, "No fields to update")
	}

	err = h.db.Transaction(func(tx *gorm.DB) error {
		if req.IsDefault != nil && *req.IsDefault {
			if err := tx.Model(&models.Address{}).
				Where("user_id = ? AND is_default = ? AND id != ?", user.ID, true, addrID).
				Update("is_default", false).Error; err != nil {
				return err
			}
		}
		return tx.Model(&address).Updates(updates).Error
	})
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"status":  "success",
		"message": "Address updated successfully",
		"data":    address,
	})
}

// DeleteAddress removes an address owned by the user.
func (h *AddressHandler) DeleteAddress(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
	}

	addrID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid id")
	}

	var address models.Address
	if err := h.db.First(&address, "id = ? AND user_id = ?", addrID, user.ID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return fiber.NewError(fiber.StatusNotFound, "Address not found")
		}
		return err
	}

	if err := h.db.Delete(&address).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"status":  "success",
		"message": "Address deleted successfully",
	})
}

// SetDefaultAddress marks one address default and unsets the rest.
func (h *AddressHandler) SetDefaultAddress(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
	}

	addrID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid id")
	}

	var address models.Address
	if err := h.db.First(&address, "id = ? AND user_id = ?", addrID, user.ID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return fiber.NewError(fiber.StatusNotFound, "Address not found")
		}
		return err
	}

	err = h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Address{}).
			Where("user_id = ? AND is_default = ?", user.ID, true).
			Update("is_default", false).Error; err != nil {
			return err
		}
		return tx.Model(&address).Update("is_default", true).Error
	})
	if err != nil {
		return err
	}
	address.IsDefault = true

	return c.JSON(fiber.Map{
		"status":  "success",
		"message": "Default address updated",
		"data":    address,
	})
}
