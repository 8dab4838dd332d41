package handlers

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/example/aquashop/internal/models"
	"github.com/example/aquashop/internal/utils"
)

const usersPerPage = 10

// AdminUserHandler manages customers from the dashboard.
type AdminUserHandler struct {
	db *gorm.DB
}

// NewAdminUserHandler constructs AdminUserHandler.
func NewAdminUserHandler(db *gorm.DB) *AdminUserHandler {
	return &AdminUserHandler{db: db}
}

// List renders the paginated user list with an optional name filter.
func (h *AdminUserHandler) List(c *fiber.Ctx) error {
	pg := utils.ParsePagination(c, usersPerPage)
	search := c.Query("search")

	query := h.db.Model(&models.User{})
	if search != "" {
		query = query.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(search)+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return err
	}

	var users []models.User
	if err := query.Order("created_at desc").
		Limit(pg.Limit).Offset(pg.Offset).
		Find(&users).Error; err != nil {
		return err
	}

	return c.Render("userlist", fiber.Map{
		"Users":       users,
		"CurrentPage": pg.Page,
		"TotalPages":  utils.PageCount(total, usersPerPage),
		"TotalUsers":  total,
		"Search":      search,
	})
}

// Block deactivates a user. Best effort: failures are logged and the
// browser is sent back to the list either way.
func (h *AdminUserHandler) Block(c *fiber.Ctx) error {
	h.setActive(c, false)
	return c.Redirect("/userlist")
}

// Unblock reactivates a user, same best-effort policy as Block.
func (h *AdminUserHandler) Unblock(c *fiber.Ctx) error {
	h.setActive(c, true)
	return c.Redirect("/userlist")
}

func (h *AdminUserHandler) setActive(c *fiber.Ctx, active bool) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		log.Printf("block/unblock: invalid user id %q", c.Params("id"))
		return
	}

	if err := h.db.Model(&models.User{}).Where("id = ?", id).
		Update("is_active", active).Error; err != nil {
		log.Printf("block/unblock user %s failed: %v", id, err)
	}
}
