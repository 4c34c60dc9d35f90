package services

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/example/freshcart/internal/database"
	"github.com/example/freshcart/internal/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	return db
}

func createTestUser(t *testing.T, db *gorm.DB, phone string) models.User {
	t.Helper()

	user := models.User{
		Phone:      phone,
		Name:       "Test User",
		Role:       models.RoleConsumer,
		IsVerified: true,
	}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func createTestVendor(t *testing.T, db *gorm.DB, phone, shopName string) models.VendorProfile {
	t.Helper()

	user := models.User{
		Phone: phone,
		Name:  shopName + " Owner",
		Role:  models.RoleVendor,
	}
	require.NoError(t, db.Create(&user).Error)

	profile := models.VendorProfile{
		UserID:   user.ID,
		ShopName: shopName,
	}
	require.NoError(t, db.Create(&profile).Error)
	return profile
}

func createTestProduct(t *testing.T, db *gorm.DB, vendorID uuid.UUID, name string, price float64, discount *float64, stock int) models.Product {
	t.Helper()

	product := models.Product{
		Name:          name,
		Price:         price,
		DiscountPrice: discount,
		Category:      "Vegetables",
		Unit:          "kg",
		Stock:         stock,
		VendorID:      vendorID,
	}
	require.NoError(t, db.Create(&product).Error)
	return product
}

func createTestAddress(t *testing.T, db *gorm.DB, userID uuid.UUID) models.Address {
	t.Helper()

	address := models.Address{
		UserID:      userID,
		Title:       "Home",
		FullAddress: "42 Test Lane",
		City:        "Bangalore",
		State:       "Karnataka",
		Pincode:     "560001",
		Phone:       "+919800000000",
	}
	require.NoError(t, db.Create(&address).Error)
	return address
}

func addCartItem(t *testing.T, db *gorm.DB, userID, productID uuid.UUID, qty int) {
	t.Helper()

	require.NoError(t, db.Create(&models.CartItem{
		UserID:    userID,
		ProductID: productID,
		Quantity:  qty,
	}).Error)
}

func floatPtr(v float64) *float64 { return &v }
