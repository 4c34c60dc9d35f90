package services

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
)

// ErrGatewayNotConfigured is returned when an online payment is requested but
// no Razorpay credentials are set.
var ErrGatewayNotConfigured = errors.New("payment gateway not configured")

const razorpayBaseURL = "https://api.razorpay.com"

// RazorpayService creates gateway orders and validates payment callbacks.
type RazorpayService struct {
	keyID     string
	keySecret string
	baseURL   string
	client    *http.Client
}

// NewRazorpayService constructs a RazorpayService.
func NewRazorpayService(keyID, keySecret string) *RazorpayService {
	return &RazorpayService{
		keyID:     keyID,
		keySecret: keySecret,
		baseURL:   razorpayBaseURL,
		client:    http.DefaultClient,
	}
}

// KeyID returns the public key the client needs to open the checkout widget.
func (s *RazorpayService) KeyID() string {
	return s.keyID
}

type razorpayOrderRequest struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
}

type razorpayOrderResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

// CreateOrder registers an order with Razorpay and returns the gateway order id.
// Amount is in paise.
func (s *RazorpayService) CreateOrder(amountPaise int64, currency, receipt string) (string, error) {
	if s.keyID == "" || s.keySecret == "" {
		return "", ErrGatewayNotConfigured
	}

	payload := razorpayOrderRequest{
		Amount:   amountPaise,
		Currency: currency,
		Receipt:  receipt,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequest(http.MethodPost, s.baseURL+"/v1/orders", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth(s.keyID, s.keySecret)

	resp, err := s.client.Do(req)
	if err != nil {
		log.Printf("[Razorpay] Order creation failed: %v", err)
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Printf("[Razorpay] Unexpected status: %d", resp.StatusCode)
		return "", fmt.Errorf("razorpay returned status %d", resp.StatusCode)
	}

	var result razorpayOrderResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", err
	}

	return result.ID, nil
}

// VerifySignature checks a checkout callback signature: the hex HMAC-SHA256 of
// "<orderID>|<paymentID>" under the key secret. The comparison is constant time.
func (s *RazorpayService) VerifySignature(orderID, paymentID, signature string) bool {
	mac := hmac.New(sha256.New, []byte(s.keySecret))
	fmt.Fprintf(mac, "%s|%s", orderID, paymentID)
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}
