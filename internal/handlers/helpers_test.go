package handlers_test

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"net/url"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/example/aquashop/internal/config"
	"github.com/example/aquashop/internal/database"
	"github.com/example/aquashop/internal/models"
	"github.com/example/aquashop/internal/routes"
	"github.com/example/aquashop/internal/services"
)

// base64 encoded 32-byte key for the cookie encryption middleware.
const testSessionKey = "MDEyMzQ1Njc4OWFiY2RlZjAxMjM0NTY3ODlhYmNkZWY="

const (
	testAdminEmail    = "admin@example.com"
	testAdminPassword = "admin123"
	testGatewaySecret = "gateway-secret"
)

var testDBCounter int64

// fakeGateway stands in for Razorpay: order ids are canned, signatures are
// real HMACs under testGatewaySecret.
type fakeGateway struct{}

func (fakeGateway) CreateOrder(amount int64, currency, receipt string) (string, error) {
	return "order_test123", nil
}

func (fakeGateway) VerifyPayment(orderID, paymentID, signature string) bool {
	return services.VerifySignature(orderID, paymentID, signature, testGatewaySecret)
}

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:handlers_test_%d?mode=memory&cache=shared", atomic.AddInt64(&testDBCounter, 1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()

	return &config.Config{
		JWTSecret:     "test-jwt-secret",
		TokenExpires:  time.Hour,
		SessionKey:    testSessionKey,
		AdminEmail:    testAdminEmail,
		AdminPassword: testAdminPassword,
		UploadDir:     t.TempDir(),
	}
}

func setupTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	db := setupTestDB(t)
	cfg := testConfig(t)

	require.NoError(t, database.EnsureDefaultAdmin(db, cfg.AdminEmail, cfg.AdminPassword))

	app := routes.NewApp("../../views", cfg.SessionKey)
	routes.Register(app, db, cfg, fakeGateway{})

	return app, db
}

func doRequest(t *testing.T, app *fiber.App, req *http.Request) *http.Response {
	t.Helper()
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func jsonRequest(method, target string, payload interface{}) *http.Request {
	var body io.Reader
	if payload != nil {
		raw, _ := json.Marshal(payload)
		body = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, target, body)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func decodeBody(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()
	defer resp.Body.Close()

	var out map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(raw)
}

// registerUser creates an account through the API and returns its bearer token.
func registerUser(t *testing.T, app *fiber.App, name, email string) string {
	t.Helper()

	resp := doRequest(t, app, jsonRequest(http.MethodPost, "/api/register", map[string]string{
		"name":     name,
		"email":    email,
		"password": "secret99",
		"phone":    "9876543210",
		"address":  "12 Reef Lane",
	}))
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	body := decodeBody(t, resp)
	token, _ := body["token"].(string)
	require.NotEmpty(t, token)
	return token
}

func authedRequest(method, target, token string, payload interface{}) *http.Request {
	req := jsonRequest(method, target, payload)
	req.Header.Set("Authorization", "Bearer "+token)
	return req
}

// adminLogin walks the HTML login flow and returns the session cookies.
func adminLogin(t *testing.T, app *fiber.App) string {
	t.Helper()

	form := url.Values{}
	form.Set("email", testAdminEmail)
	form.Set("password", testAdminPassword)

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp := doRequest(t, app, req)
	require.Equal(t, http.StatusFound, resp.StatusCode)
	require.Equal(t, "/home", resp.Header.Get("Location"))

	cookies := resp.Cookies()
	require.NotEmpty(t, cookies)

	pairs := make([]string, 0, len(cookies))
	for _, ck := range cookies {
		pairs = append(pairs, ck.Name+"="+ck.Value)
	}
	return strings.Join(pairs, "; ")
}

func adminRequest(method, target, cookies string, body io.Reader) *http.Request {
	req := httptest.NewRequest(method, target, body)
	req.Header.Set("Cookie", cookies)
	return req
}

// createFish inserts a catalog record directly.
func createFish(t *testing.T, db *gorm.DB, name string, price float64) models.Fish {
	t.Helper()

	fish := models.Fish{Name: name, Photo: "/uploads/" + name + ".jpg", Price: price, Type: "freshwater"}
	require.NoError(t, db.Create(&fish).Error)
	return fish
}

// fishMultipartForm builds a creation form, optionally with a photo part.
func fishMultipartForm(t *testing.T, fields map[string]string, withPhoto bool) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	for key, value := range fields {
		require.NoError(t, writer.WriteField(key, value))
	}

	if withPhoto {
		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition", `form-data; name="photo"; filename="fish.jpg"`)
		header.Set("Content-Type", "image/jpeg")
		part, err := writer.CreatePart(header)
		require.NoError(t, err)
		_, err = part.Write([]byte("fake-jpeg-bytes"))
		require.NoError(t, err)
	}

	require.NoError(t, writer.Close())
	return &buf, writer.FormDataContentType()
}

func lookupUser(t *testing.T, db *gorm.DB, email string) models.User {
	t.Helper()

	var user models.User
	require.NoError(t, db.Where("email = ?", email).First(&user).Error)
	return user
}

// signTestPayment produces the signature the fake gateway expects.
func signTestPayment(orderID, paymentID string) string {
	mac := hmac.New(sha256.New, []byte(testGatewaySecret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}
