package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/example/freshcart/internal/config"
	"github.com/example/freshcart/internal/database"
	"github.com/example/freshcart/internal/handlers"
	"github.com/example/freshcart/internal/models"
	"github.com/example/freshcart/internal/routes"
	"github.com/example/freshcart/internal/utils"
)

func newTestApp(t *testing.T) (*fiber.App, *gorm.DB, *config.Config) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	cfg := &config.Config{
		AppPort:           "0",
		Environment:       "test",
		JWTSecret:         "test-secret",
		TokenExpires:      time.Hour,
		OTPExpires:        10 * time.Minute,
		RazorpayKeyID:     "rzp_test_key",
		RazorpayKeySecret: "test_secret",
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.NewErrorHandler(false),
	})
	routes.Register(app, db, cfg)

	return app, db, cfg
}

func doRequest(t *testing.T, app *fiber.App, method, path, token string, body interface{}) (*http.Response, map[string]interface{}) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(encoded)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var payload map[string]interface{}
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &payload))
	}

	return resp, payload
}

func seedUser(t *testing.T, db *gorm.DB, cfg *config.Config, phone, role string) (models.User, string) {
	t.Helper()

	hash, err := utils.HashPassword("password123")
	require.NoError(t, err)

	user := models.User{
		Phone:        phone,
		PasswordHash: hash,
		Name:         "Test User",
		Role:         role,
		IsVerified:   true,
	}
	require.NoError(t, db.Create(&user).Error)

	token, err := utils.GenerateToken(cfg.JWTSecret, user.ID, time.Hour)
	require.NoError(t, err)

	return user, token
}

func authToken(t *testing.T, cfg *config.Config, userID uuid.UUID) string {
	t.Helper()

	token, err := utils.GenerateToken(cfg.JWTSecret, userID, time.Hour)
	require.NoError(t, err)
	return token
}

func seedVendorWithProduct(t *testing.T, db *gorm.DB, phone, name string, price float64, discount *float64, stock int) (models.VendorProfile, models.Product) {
	t.Helper()

	owner := models.User{Phone: phone, Name: name + " Owner", Role: models.RoleVendor}
	require.NoError(t, db.Create(&owner).Error)

	profile := models.VendorProfile{UserID: owner.ID, ShopName: name}
	require.NoError(t, db.Create(&profile).Error)

	product := models.Product{
		Name:          name + " Product",
		Price:         price,
		DiscountPrice: discount,
		Category:      "Vegetables",
		Unit:          "kg",
		Stock:         stock,
		VendorID:      profile.ID,
	}
	require.NoError(t, db.Create(&product).Error)

	return profile, product
}

func seedAddress(t *testing.T, db *gorm.DB, userID uuid.UUID, isDefault bool) models.Address {
	t.Helper()

	address := models.Address{
		UserID:      userID,
		Title:       "Home",
		FullAddress: "42 Test Lane",
		City:        "Bangalore",
		State:       "Karnataka",
		Pincode:     "560001",
		Phone:       "+919800000000",
		IsDefault:   isDefault,
	}
	require.NoError(t, db.Create(&address).Error)
	return address
}
