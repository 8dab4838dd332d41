package handlers

import (
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"gorm.io/gorm"

	"github.com/example/aquashop/internal/middleware"
	"github.com/example/aquashop/internal/models"
	"github.com/example/aquashop/internal/utils"
)

// AdminAuthHandler serves the dashboard login and logout pages.
type AdminAuthHandler struct {
	db       *gorm.DB
	sessions *session.Store
}

// NewAdminAuthHandler constructs AdminAuthHandler.
func NewAdminAuthHandler(db *gorm.DB, sessions *session.Store) *AdminAuthHandler {
	return &AdminAuthHandler{db: db, sessions: sessions}
}

// LoginForm renders the login page, or skips straight to the dashboard
// for an already authenticated session.
func (h *AdminAuthHandler) LoginForm(c *fiber.Ctx) error {
	if middleware.IsAdminSession(c, h.sessions) {
		return c.Redirect("/home")
	}
	return c.Render("login", fiber.Map{"Error": nil})
}

// Login verifies admin credentials and marks the session. Unknown emails
// and wrong passwords render the same message.
func (h *AdminAuthHandler) Login(c *fiber.Ctx) error {
	email := strings.ToLower(strings.TrimSpace(c.FormValue("email")))
	password := c.FormValue("password")

	var admin models.Admin
	err := h.db.Where("email = ?", email).First(&admin).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Printf("admin login lookup failed: %v", err)
		return c.Render("login", fiber.Map{"Error": "An error occurred"})
	}

	if err != nil || !utils.CheckPassword(admin.PasswordHash, password) {
		return c.Render("login", fiber.Map{"Error": "Invalid email or password"})
	}

	if err := middleware.MarkAdminSession(c, h.sessions); err != nil {
		log.Printf("failed to save admin session: %v", err)
		return c.Render("login", fiber.Map{"Error": "An error occurred"})
	}

	return c.Redirect("/home")
}

// Logout clears the session unconditionally and returns to the login page.
func (h *AdminAuthHandler) Logout(c *fiber.Ctx) error {
	middleware.ClearAdminSession(c, h.sessions)
	return c.Redirect("/")
}
