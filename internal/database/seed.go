package database

import (
	"log"

	"gorm.io/gorm"

	"github.com/example/freshcart/internal/models"
	"github.com/example/freshcart/internal/utils"
)

func floatPtr(v float64) *float64 { return &v }

// Seed wipes and reloads demo vendors, products and a consumer account.
// Development tooling only.
func Seed(conn *gorm.DB) error {
	tables := []interface{}{
		&models.OrderItem{},
		&models.Order{},
		&models.Wishlist{},
		&models.CartItem{},
		&models.Address{},
		&models.Product{},
		&models.VendorProfile{},
		&models.OTP{},
		&models.User{},
	}
	for _, table := range tables {
		if err := conn.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(table).Error; err != nil {
			return err
		}
	}

	vendorHash, err := utils.HashPassword("vendor123")
	if err != nil {
		return err
	}

	vendor1 := models.User{
		Phone:        "+919876543210",
		PasswordHash: vendorHash,
		Name:         "Ravi Kumar",
		Role:         models.RoleVendor,
		IsVerified:   true,
		VendorProfile: &models.VendorProfile{
			ShopName:    "Fresh Vegetables Corner",
			ShopAddress: "Market Road, Sector 15, Bangalore",
			Description: "Your trusted source for farm-fresh vegetables",
			Rating:      4.7,
		},
	}
	if err := conn.Create(&vendor1).Error; err != nil {
		return err
	}

	vendor2 := models.User{
		Phone:        "+919876543211",
		PasswordHash: vendorHash,
		Name:         "Sita Devi",
		Role:         models.RoleVendor,
		IsVerified:   true,
		VendorProfile: &models.VendorProfile{
			ShopName:    "Organic Green Store",
			ShopAddress: "MG Road, Indiranagar, Bangalore",
			Description: "Premium organic fruits and vegetables",
			Rating:      4.9,
		},
	}
	if err := conn.Create(&vendor2).Error; err != nil {
		return err
	}

	consumerHash, err := utils.HashPassword("user123")
	if err != nil {
		return err
	}
	consumer := models.User{
		Phone:        "+919876543212",
		PasswordHash: consumerHash,
		Name:         "Amit Sharma",
		Role:         models.RoleConsumer,
		IsVerified:   true,
	}
	if err := conn.Create(&consumer).Error; err != nil {
		return err
	}

	products := []models.Product{
		{
			Name:          "Tomato",
			Description:   "Fresh red tomatoes, perfect for salads and cooking",
			Price:         40,
			DiscountPrice: floatPtr(35),
			Category:      "Vegetables",
			Unit:          "kg",
			Stock:         50,
			ImageURL:      "https://images.unsplash.com/photo-1592924357228-91a4daadcfea?w=400",
			IsFeatured:    true,
			VendorID:      vendor1.VendorProfile.ID,
		},
		{
			Name:          "Onion",
			Description:   "Fresh onions, essential for every kitchen",
			Price:         30,
			DiscountPrice: floatPtr(25),
			Category:      "Vegetables",
			Unit:          "kg",
			Stock:         100,
			ImageURL:      "https://images.unsplash.com/photo-1618512496248-a07fe83aa8cb?w=400",
			VendorID:      vendor1.VendorProfile.ID,
		},
		{
			Name:        "Potato",
			Description: "Farm fresh potatoes, great for multiple dishes",
			Price:       25,
			Category:    "Vegetables",
			Unit:        "kg",
			Stock:       120,
			ImageURL:    "https://images.unsplash.com/photo-1518977676601-b53f82aba655?w=400",
			VendorID:    vendor1.VendorProfile.ID,
		},
		{
			Name:          "Carrot",
			Description:   "Sweet and crunchy carrots, rich in vitamins",
			Price:         45,
			DiscountPrice: floatPtr(40),
			Category:      "Vegetables",
			Unit:          "kg",
			Stock:         60,
			ImageURL:      "https://images.unsplash.com/photo-1598170845058-32b9d6a5da37?w=400",
			IsFeatured:    true,
			VendorID:      vendor1.VendorProfile.ID,
		},
		{
			Name:          "Banana",
			Description:   "Ripe yellow bananas, naturally sweet",
			Price:         60,
			DiscountPrice: floatPtr(50),
			Category:      "Fruits",
			Unit:          "dozen",
			Stock:         80,
			ImageURL:      "https://images.unsplash.com/photo-1571771894821-ce9b6c11b08e?w=400",
			IsFeatured:    true,
			VendorID:      vendor2.VendorProfile.ID,
		},
		{
			Name:          "Apple",
			Description:   "Crisp organic apples from Himachal",
			Price:         150,
			DiscountPrice: floatPtr(130),
			Category:      "Fruits",
			Unit:          "kg",
			Stock:         40,
			ImageURL:      "https://images.unsplash.com/photo-1560806887-1e4cd0b6cbd6?w=400",
			IsFeatured:    true,
			VendorID:      vendor2.VendorProfile.ID,
		},
		{
			Name:        "Spinach",
			Description: "Organic baby spinach, washed and packed",
			Price:       35,
			Category:    "Leafy Greens",
			Unit:        "bunch",
			Stock:       30,
			ImageURL:    "https://images.unsplash.com/photo-1576045057995-568f588f82fb?w=400",
			VendorID:    vendor2.VendorProfile.ID,
		},
	}

	if err := conn.Create(&products).Error; err != nil {
		return err
	}

	log.Printf("[Seed] Loaded %d products across 2 vendors", len(products))
	return nil
}
