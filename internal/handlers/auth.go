package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/example/freshcart/internal/config"
	"github.com/example/freshcart/internal/middleware"
	"github.com/example/freshcart/internal/models"
	"github.com/example/freshcart/internal/services"
	"github.com/example/freshcart/internal/utils"
)

// AuthHandler bundles dependencies for authentication endpoints.
type AuthHandler struct {
	db  *gorm.DB
	cfg *config.Config
	otp *services.OTPService
}

// NewAuthHandler constructs an AuthHandler.
func NewAuthHandler(db *gorm.DB, cfg *config.Config, otp *services.OTPService) *AuthHandler {
	return &AuthHandler{db: db, cfg: cfg, otp: otp}
}

type sendOTPRequest struct {
	Phone string `json:"phoneNumber"`
}

// SendOTP issues a login code for the given phone number. Outside production
// the code is echoed in the response for testing.
func (h *AuthHandler) SendOTP(c *fiber.Ctx) error {
	var req sendOTPRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	if req.Phone == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Phone number is required")
	}

	code, err := h.otp.Issue(req.Phone)
	if err != nil {
		return err
	}

	payload := fiber.Map{
		"status":  "success",
		"message": "OTP sent successfully",
	}
	if !h.cfg.IsProduction() {
		payload["otp"] = code
	}

	return c.JSON(payload)
}

type verifyOTPRequest struct {
	Phone string `json:"phoneNumber"`
	OTP   string `json:"otp"`
}

// VerifyOTP consumes a login code and signs the user in. Unknown phones get a
// needsRegistration hint instead of a token.
func (h *AuthHandler) VerifyOTP(c *fiber.Ctx) error {
	var req verifyOTPRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	if req.Phone == "" || req.OTP == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Phone number and OTP are required")
	}

	if err := h.otp.Verify(req.Phone, req.OTP); err != nil {
		if errors.Is(err, services.ErrOTPInvalid) {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid or expired OTP")
		}
		return err
	}

	var user models.User
	if err := h.db.Preload("VendorProfile").Where("phone = ?", req.Phone).First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"status":            "error",
				"message":           "User not found. Please register first.",
				"needsRegistration": true,
			})
		}
		return err
	}

	if err := h.db.Model(&user).Update("is_verified", true).Error; err != nil {
		return err
	}

	token, err := utils.GenerateToken(h.cfg.JWTSecret, user.ID, h.cfg.TokenExpires)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"status":  "success",
		"message": "Login successful",
		"data": fiber.Map{
			"user":  user,
			"token": token,
		},
	})
}

type registerRequest struct {
	Phone    string `json:"phoneNumber"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Email    string `json:"email"`
}

// Register creates a new consumer account.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req registerRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	if req.Phone == "" || req.Password == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Phone number and password are required")
	}

	var existing models.User
	if err := h.db.Where("phone = ?", req.Phone).First(&existing).Error; err == nil {
		return fiber.NewError(fiber.StatusConflict, "User already exists")
	} else if err != gorm.ErrRecordNotFound {
		return err
	}

	passwordHash, err := utils.HashPassword(req.Password)
	if err != nil {
		return err
	}

	user := models.User{
		Phone:        req.Phone,
		PasswordHash: passwordHash,
		Name:         req.Name,
		Email:        req.Email,
		Role:         models.RoleConsumer,
	}

	if err := h.db.Create(&user).Error; err != nil {
		return err
	}

	token, err := utils.GenerateToken(h.cfg.JWTSecret, user.ID, h.cfg.TokenExpires)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"status":  "success",
		"message": "Registration successful",
		"data": fiber.Map{
			"user":  user,
			"token": token,
		},
	})
}

type loginRequest struct {
	Phone    string `json:"phoneNumber"`
	Password string `json:"password"`
}

// Login authenticates with phone number and password.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	if req.Phone == "" || req.Password == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Phone number and password are required")
	}

	var user models.User
	if err := h.db.Preload("VendorProfile").Where("phone = ?", req.Phone).First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid credentials")
		}
		return err
	}

	if !utils.CheckPassword(user.PasswordHash, req.Password) {
		return fiber.NewError(fiber.StatusUnauthorized, "Invalid credentials")
	}

	token, err := utils.GenerateToken(h.cfg.JWTSecret, user.ID, h.cfg.TokenExpires)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"status":  "success",
		"message": "Login successful",
		"data": fiber.Map{
			"user":  user,
			"token": token,
		},
	})
}

// GetProfile returns the authenticated user with addresses and vendor profile.
func (h *AuthHandler) GetProfile(c *fiber.Ctx) error {
	current, ok := middleware.CurrentUser(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
	}

	var user models.User
	if err := h.db.Preload("Addresses").Preload("VendorProfile").
		First(&user, "id = ?", current.ID).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"status": "success",
		"data":   user,
	})
}
