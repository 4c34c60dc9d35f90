package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/example/freshcart/internal/config"
	"github.com/example/freshcart/internal/handlers"
	"github.com/example/freshcart/internal/middleware"
	"github.com/example/freshcart/internal/models"
	"github.com/example/freshcart/internal/services"
)

// Register wires up all HTTP routes.
func Register(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	smsService := services.NewSMSService(cfg.SMSGatewayURL, cfg.SMSGatewayKey)
	otpService := services.NewOTPService(db, smsService, cfg.OTPExpires)
	razorpayService := services.NewRazorpayService(cfg.RazorpayKeyID, cfg.RazorpayKeySecret)
	orderService := services.NewOrderService(db, razorpayService)

	authHandler := handlers.NewAuthHandler(db, cfg, otpService)
	productHandler := handlers.NewProductHandler(db)
	cartHandler := handlers.NewCartHandler(db)
	addressHandler := handlers.NewAddressHandler(db)
	orderHandler := handlers.NewOrderHandler(db, orderService, razorpayService)
	wishlistHandler := handlers.NewWishlistHandler(db)

	api := app.Group("/api")
	protected := middleware.Protected(db, cfg)

	// Auth routes
	auth := api.Group("/auth")
	auth.Post("/send-otp", authHandler.SendOTP)
	auth.Post("/verify-otp", authHandler.VerifyOTP)
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)
	auth.Get("/profile", protected, authHandler.GetProfile)

	// Public catalog
	products := api.Group("/products")
	products.Get("/", productHandler.ListProducts)
	products.Get("/search", productHandler.SearchProducts)
	products.Get("/:id", productHandler.GetProduct)

	// Cart
	cart := api.Group("/cart", protected)
	cart.Get("/", cartHandler.GetCart)
	cart.Post("/", cartHandler.AddToCart)
	cart.Patch("/:id", cartHandler.UpdateCartItem)
	cart.Delete("/:id", cartHandler.RemoveFromCart)
	cart.Delete("/", cartHandler.ClearCart)

	// Addresses
	addresses := api.Group("/addresses", protected)
	addresses.Get("/", addressHandler.ListAddresses)
	addresses.Post("/", addressHandler.CreateAddress)
	addresses.Put("/:id", addressHandler.UpdateAddress)
	addresses.Delete("/:id", addressHandler.DeleteAddress)
	addresses.Patch("/:id/default", addressHandler.SetDefaultAddress)

	// Orders
	orders := api.Group("/orders", protected)
	orders.Post("/", orderHandler.CreateOrder)
	orders.Get("/", orderHandler.ListOrders)
	orders.Post("/verify-payment", orderHandler.VerifyPayment)
	orders.Get("/:id", orderHandler.GetOrder)
	orders.Patch("/:id/status", middleware.RequireRole(models.RoleVendor), orderHandler.UpdateOrderStatus)

	// Wishlist
	wishlist := api.Group("/wishlist", protected)
	wishlist.Get("/", wishlistHandler.GetWishlist)
	wishlist.Post("/", wishlistHandler.AddToWishlist)
	wishlist.Delete("/:productId", wishlistHandler.RemoveFromWishlist)
}
