package handlers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/aquashop/internal/models"
)

func TestRegisterIssuesUsableToken(t *testing.T) {
	app, _ := setupTestApp(t)

	token := registerUser(t, app, "Alice", "alice@example.com")

	resp := doRequest(t, app, authedRequest(http.MethodGet, "/api/profile", token, nil))
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, "alice@example.com", body["email"])
	assert.Equal(t, "Alice", body["name"])
	assert.NotContains(t, body, "password")
	assert.NotContains(t, body, "password_hash")
}

func TestRegisterDuplicateEmailCaseInsensitive(t *testing.T) {
	app, _ := setupTestApp(t)

	registerUser(t, app, "Alice", "alice@example.com")

	resp := doRequest(t, app, jsonRequest(http.MethodPost, "/api/register", map[string]string{
		"name":     "Impostor",
		"email":    "ALICE@Example.com",
		"password": "secret99",
		"phone":    "1112223334",
		"address":  "9 Coral Road",
	}))
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "email already registered", decodeBody(t, resp)["error"])
}

func TestRegisterValidation(t *testing.T) {
	app, db := setupTestApp(t)

	cases := map[string]map[string]string{
		"bad email":      {"name": "A", "email": "not-an-email", "password": "secret99", "phone": "9876543210", "address": "x"},
		"short password": {"name": "A", "email": "a@example.com", "password": "abc", "phone": "9876543210", "address": "x"},
		"bad phone":      {"name": "A", "email": "a@example.com", "password": "secret99", "phone": "12345", "address": "x"},
		"missing name":   {"email": "a@example.com", "password": "secret99", "phone": "9876543210", "address": "x"},
	}

	for name, payload := range cases {
		t.Run(name, func(t *testing.T) {
			resp := doRequest(t, app, jsonRequest(http.MethodPost, "/api/register", payload))
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		})
	}

	var count int64
	require.NoError(t, db.Model(&models.User{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestLoginGenericErrorShape(t *testing.T) {
	app, _ := setupTestApp(t)

	registerUser(t, app, "Alice", "alice@example.com")

	wrongPassword := doRequest(t, app, jsonRequest(http.MethodPost, "/api/login", map[string]string{
		"email":    "alice@example.com",
		"password": "wrong-password",
	}))
	unknownEmail := doRequest(t, app, jsonRequest(http.MethodPost, "/api/login", map[string]string{
		"email":    "nobody@example.com",
		"password": "whatever1",
	}))

	require.Equal(t, http.StatusUnauthorized, wrongPassword.StatusCode)
	require.Equal(t, http.StatusUnauthorized, unknownEmail.StatusCode)

	// No user enumeration: both failures must be indistinguishable.
	assert.Equal(t, readBody(t, unknownEmail), readBody(t, wrongPassword))
}

func TestLoginSuccess(t *testing.T) {
	app, _ := setupTestApp(t)

	registerUser(t, app, "Alice", "alice@example.com")

	resp := doRequest(t, app, jsonRequest(http.MethodPost, "/api/login", map[string]string{
		"email":    "Alice@Example.com",
		"password": "secret99",
	}))
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	token, _ := body["token"].(string)
	require.NotEmpty(t, token)

	profile := doRequest(t, app, authedRequest(http.MethodGet, "/api/profile", token, nil))
	assert.Equal(t, http.StatusOK, profile.StatusCode)
}

func TestProfileRequiresToken(t *testing.T) {
	app, _ := setupTestApp(t)

	resp := doRequest(t, app, jsonRequest(http.MethodGet, "/api/profile", nil))
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = doRequest(t, app, authedRequest(http.MethodGet, "/api/profile", "bogus-token", nil))
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestBlockedUserHasNoEnforcedEffect(t *testing.T) {
	// isActive is persisted and shown to admins but deliberately not
	// enforced on any route.
	app, db := setupTestApp(t)

	token := registerUser(t, app, "Alice", "alice@example.com")

	user := lookupUser(t, db, "alice@example.com")
	require.NoError(t, db.Model(&models.User{}).Where("id = ?", user.ID).
		Update("is_active", false).Error)

	resp := doRequest(t, app, authedRequest(http.MethodGet, "/api/profile", token, nil))
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, false, body["is_active"])
}
