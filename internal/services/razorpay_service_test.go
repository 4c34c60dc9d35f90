package services

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signPayment(secret, orderID, paymentID string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

func TestVerifySignature(t *testing.T) {
	svc := NewRazorpayService("rzp_test_key", "test_secret")

	good := signPayment("test_secret", "order_abc", "pay_xyz")
	assert.True(t, svc.VerifySignature("order_abc", "pay_xyz", good))
}

func TestVerifySignatureMismatch(t *testing.T) {
	svc := NewRazorpayService("rzp_test_key", "test_secret")

	assert.False(t, svc.VerifySignature("order_abc", "pay_xyz", "deadbeef"))

	// Signature over different ids must not validate.
	other := signPayment("test_secret", "order_abc", "pay_other")
	assert.False(t, svc.VerifySignature("order_abc", "pay_xyz", other))
}

func TestCreateOrder(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/orders", r.URL.Path)

		user, pass, ok := r.BasicAuth()
		require.True(t, ok)
		assert.Equal(t, "rzp_test_key", user)
		assert.Equal(t, "test_secret", pass)

		var req razorpayOrderRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, int64(8000), req.Amount)
		assert.Equal(t, "INR", req.Currency)

		json.NewEncoder(w).Encode(razorpayOrderResponse{ID: "order_test123", Status: "created"})
	}))
	defer srv.Close()

	svc := NewRazorpayService("rzp_test_key", "test_secret")
	svc.baseURL = srv.URL

	orderID, err := svc.CreateOrder(8000, "INR", "ORD1")
	require.NoError(t, err)
	assert.Equal(t, "order_test123", orderID)
}

func TestCreateOrderGatewayError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	svc := NewRazorpayService("rzp_test_key", "test_secret")
	svc.baseURL = srv.URL

	_, err := svc.CreateOrder(100, "INR", "ORD2")
	assert.Error(t, err)
}

func TestCreateOrderUnconfigured(t *testing.T) {
	svc := NewRazorpayService("", "")

	_, err := svc.CreateOrder(100, "INR", "ORD3")
	assert.ErrorIs(t, err, ErrGatewayNotConfigured)
}
