package handlers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/freshcart/internal/models"
)

func TestRegisterLoginAndProfile(t *testing.T) {
	app, _, _ := newTestApp(t)

	resp, payload := doRequest(t, app, http.MethodPost, "/api/auth/register", "", map[string]interface{}{
		"phoneNumber": "+919800001001",
		"password":    "secret123",
		"name":        "Amit Sharma",
		"email":       "amit@example.com",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "success", payload["status"])

	data := payload["data"].(map[string]interface{})
	token := data["token"].(string)
	require.NotEmpty(t, token)

	resp, payload = doRequest(t, app, http.MethodPost, "/api/auth/login", "", map[string]interface{}{
		"phoneNumber": "+919800001001",
		"password":    "secret123",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, payload = doRequest(t, app, http.MethodGet, "/api/auth/profile", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	user := payload["data"].(map[string]interface{})
	assert.Equal(t, "Amit Sharma", user["name"])
}

func TestRegisterDuplicatePhone(t *testing.T) {
	app, _, _ := newTestApp(t)

	body := map[string]interface{}{
		"phoneNumber": "+919800001002",
		"password":    "secret123",
	}
	resp, _ := doRequest(t, app, http.MethodPost, "/api/auth/register", "", body)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, payload := doRequest(t, app, http.MethodPost, "/api/auth/register", "", body)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "error", payload["status"])
}

func TestLoginWrongPassword(t *testing.T) {
	app, db, cfg := newTestApp(t)
	seedUser(t, db, cfg, "+919800001003", models.RoleConsumer)

	resp, payload := doRequest(t, app, http.MethodPost, "/api/auth/login", "", map[string]interface{}{
		"phoneNumber": "+919800001003",
		"password":    "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "error", payload["status"])
}

func TestOTPLoginFlow(t *testing.T) {
	app, db, cfg := newTestApp(t)
	seedUser(t, db, cfg, "+919800001004", models.RoleConsumer)

	resp, payload := doRequest(t, app, http.MethodPost, "/api/auth/send-otp", "", map[string]interface{}{
		"phoneNumber": "+919800001004",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// Outside production the code is echoed for testing.
	code, ok := payload["otp"].(string)
	require.True(t, ok)
	require.Len(t, code, 6)

	resp, payload = doRequest(t, app, http.MethodPost, "/api/auth/verify-otp", "", map[string]interface{}{
		"phoneNumber": "+919800001004",
		"otp":         code,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	data := payload["data"].(map[string]interface{})
	assert.NotEmpty(t, data["token"])

	var user models.User
	require.NoError(t, db.First(&user, "phone = ?", "+919800001004").Error)
	assert.True(t, user.IsVerified)

	// The code is single use.
	resp, _ = doRequest(t, app, http.MethodPost, "/api/auth/verify-otp", "", map[string]interface{}{
		"phoneNumber": "+919800001004",
		"otp":         code,
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestVerifyOTPUnknownPhoneNeedsRegistration(t *testing.T) {
	app, _, _ := newTestApp(t)

	resp, payload := doRequest(t, app, http.MethodPost, "/api/auth/send-otp", "", map[string]interface{}{
		"phoneNumber": "+919800001005",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	code := payload["otp"].(string)

	resp, payload = doRequest(t, app, http.MethodPost, "/api/auth/verify-otp", "", map[string]interface{}{
		"phoneNumber": "+919800001005",
		"otp":         code,
	})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, true, payload["needsRegistration"])
}

func TestProfileRequiresToken(t *testing.T) {
	app, _, _ := newTestApp(t)

	resp, payload := doRequest(t, app, http.MethodGet, "/api/auth/profile", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "error", payload["status"])
}
