package services

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math"
	"math/big"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/example/freshcart/internal/models"
)

// Order placement failures surfaced to the handler layer.
var (
	ErrCartEmpty         = errors.New("cart is empty")
	ErrAddressNotFound   = errors.New("address not found")
	ErrInsufficientStock = errors.New("insufficient stock")
)

// OrderService turns a cart into vendor-scoped orders.
type OrderService struct {
	db       *gorm.DB
	razorpay *RazorpayService
}

// NewOrderService constructs an OrderService.
func NewOrderService(db *gorm.DB, razorpay *RazorpayService) *OrderService {
	return &OrderService{db: db, razorpay: razorpay}
}

// PlacementResult is what checkout returns to the client.
type PlacementResult struct {
	Orders        []models.Order
	RazorpayKeyID string
}

// Place converts the user's cart into one order per vendor. The whole sequence
// runs in a single transaction: stock decrements are guarded so two concurrent
// checkouts can never oversubscribe a product, and any failure rolls back
// every vendor's order. Online payment methods get a Razorpay order per vendor
// order; COD orders start out CONFIRMED, online ones PENDING until the payment
// callback is verified.
func (s *OrderService) Place(userID, addressID uuid.UUID, paymentMethod, notes string) (*PlacementResult, error) {
	var orderIDs []uuid.UUID

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var items []models.CartItem
		if err := tx.Preload("Product").Where("user_id = ?", userID).Find(&items).Error; err != nil {
			return err
		}
		if len(items) == 0 {
			return ErrCartEmpty
		}

		var address models.Address
		if err := tx.First(&address, "id = ? AND user_id = ?", addressID, userID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return ErrAddressNotFound
			}
			return err
		}

		// Partition by vendor, keeping first-appearance order.
		groups := make(map[uuid.UUID][]models.CartItem)
		var vendors []uuid.UUID
		for _, item := range items {
			vendorID := item.Product.VendorID
			if _, ok := groups[vendorID]; !ok {
				vendors = append(vendors, vendorID)
			}
			groups[vendorID] = append(groups[vendorID], item)
		}

		for _, vendorID := range vendors {
			group := groups[vendorID]

			var total float64
			for _, item := range group {
				total += item.Product.EffectivePrice() * float64(item.Quantity)
			}

			orderNumber, err := generateOrderNumber()
			if err != nil {
				return err
			}

			status := models.OrderStatusConfirmed
			paymentID := ""
			if models.OnlinePaymentMethod(paymentMethod) {
				status = models.OrderStatusPending
				gatewayOrderID, err := s.razorpay.CreateOrder(int64(math.Round(total*100)), "INR", orderNumber)
				if err != nil {
					return err
				}
				paymentID = gatewayOrderID
			}

			order := models.Order{
				OrderNumber:   orderNumber,
				UserID:        userID,
				VendorID:      vendorID,
				TotalAmount:   total,
				PaymentMethod: paymentMethod,
				PaymentID:     paymentID,
				Status:        status,

				DeliveryTitle:       address.Title,
				DeliveryFullAddress: address.FullAddress,
				DeliveryLandmark:    address.Landmark,
				DeliveryCity:        address.City,
				DeliveryState:       address.State,
				DeliveryPincode:     address.Pincode,
				DeliveryPhone:       address.Phone,

				Notes: notes,
			}

			for _, item := range group {
				order.Items = append(order.Items, models.OrderItem{
					ProductID: item.ProductID,
					Quantity:  item.Quantity,
					Price:     item.Product.EffectivePrice(),
				})
			}

			if err := tx.Create(&order).Error; err != nil {
				return err
			}

			for _, item := range group {
				res := tx.Model(&models.Product{}).
					Where("id = ? AND stock >= ?", item.ProductID, item.Quantity).
					UpdateColumn("stock", gorm.Expr("stock - ?", item.Quantity))
				if res.Error != nil {
					return res.Error
				}
				if res.RowsAffected == 0 {
					return ErrInsufficientStock
				}
			}

			orderIDs = append(orderIDs, order.ID)
		}

		return tx.Where("user_id = ?", userID).Delete(&models.CartItem{}).Error
	})
	if err != nil {
		return nil, err
	}

	var orders []models.Order
	if err := s.db.Preload("Items.Product").Preload("Vendor").
		Where("id IN ?", orderIDs).
		Order("created_at asc").
		Find(&orders).Error; err != nil {
		return nil, err
	}

	return &PlacementResult{
		Orders:        orders,
		RazorpayKeyID: s.razorpay.KeyID(),
	}, nil
}

func generateOrderNumber() (string, error) {
	suffix, err := rand.Int(rand.Reader, big.NewInt(1000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("ORD%d%03d", time.Now().UnixMilli(), suffix.Int64()), nil
}
