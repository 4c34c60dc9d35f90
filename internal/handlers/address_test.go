package handlers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/freshcart/internal/models"
)

func TestCreateDefaultAddressUnsetsOthers(t *testing.T) {
	app, db, cfg := newTestApp(t)
	user, token := seedUser(t, db, cfg, "+919800002001", models.RoleConsumer)
	first := seedAddress(t, db, user.ID, true)

	resp, _ := doRequest(t, app, http.MethodPost, "/api/addresses", token, map[string]interface{}{
		"title":       "Office",
		"fullAddress": "7 Work Street",
		"city":        "Bangalore",
		"state":       "Karnataka",
		"pincode":     "560002",
		"phoneNumber": "+919800000001",
		"isDefault":   true,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var defaults []models.Address
	require.NoError(t, db.Where("user_id = ? AND is_default = ?", user.ID, true).Find(&defaults).Error)
	require.Len(t, defaults, 1)
	assert.Equal(t, "Office", defaults[0].Title)
	assert.NotEqual(t, first.ID, defaults[0].ID)
}

func TestSetDefaultAddress(t *testing.T) {
	app, db, cfg := newTestApp(t)
	user, token := seedUser(t, db, cfg, "+919800002002", models.RoleConsumer)
	old := seedAddress(t, db, user.ID, true)
	next := seedAddress(t, db, user.ID, false)

	resp, payload := doRequest(t, app, http.MethodPatch, "/api/addresses/"+next.ID.String()+"/default", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "success", payload["status"])

	var defaults []models.Address
	require.NoError(t, db.Where("user_id = ? AND is_default = ?", user.ID, true).Find(&defaults).Error)
	require.Len(t, defaults, 1)
	assert.Equal(t, next.ID, defaults[0].ID)

	var reloadedOld models.Address
	require.NoError(t, db.First(&reloadedOld, "id = ?", old.ID).Error)
	assert.False(t, reloadedOld.IsDefault)
}

func TestAddressScopedToOwner(t *testing.T) {
	app, db, cfg := newTestApp(t)
	owner, _ := seedUser(t, db, cfg, "+919800002003", models.RoleConsumer)
	address := seedAddress(t, db, owner.ID, false)
	_, intruderToken := seedUser(t, db, cfg, "+919800002004", models.RoleConsumer)

	resp, _ := doRequest(t, app, http.MethodDelete, "/api/addresses/"+address.ID.String(), intruderToken, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	var count int64
	require.NoError(t, db.Model(&models.Address{}).Where("id = ?", address.ID).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestCreateAddressMissingFields(t *testing.T) {
	app, db, cfg := newTestApp(t)
	_, token := seedUser(t, db, cfg, "+919800002005", models.RoleConsumer)

	resp, payload := doRequest(t, app, http.MethodPost, "/api/addresses", token, map[string]interface{}{
		"title": "Home",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "error", payload["status"])
}
