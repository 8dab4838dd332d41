package handlers

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/example/aquashop/internal/models"
	"github.com/example/aquashop/internal/utils"
)

// Dashboard fish list is capped; the full list lives on /retrieve_fish.
const dashboardFishLimit = 20

// AdminFishHandler manages the fish catalog from the dashboard.
type AdminFishHandler struct {
	db        *gorm.DB
	uploadDir string
}

// NewAdminFishHandler constructs AdminFishHandler.
func NewAdminFishHandler(db *gorm.DB, uploadDir string) *AdminFishHandler {
	return &AdminFishHandler{db: db, uploadDir: uploadDir}
}

// Home renders the dashboard: recent fishes with an optional name filter
// plus the pending order count.
func (h *AdminFishHandler) Home(c *fiber.Ctx) error {
	search := c.Query("search")

	query := h.db.Model(&models.Fish{})
	if search != "" {
		query = query.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(search)+"%")
	}

	var fishes []models.Fish
	if err := query.Order("created_at desc").Limit(dashboardFishLimit).Find(&fishes).Error; err != nil {
		return err
	}

	var pendingCount int64
	if err := h.db.Model(&models.Order{}).
		Where("status = ?", models.OrderStatusPending).
		Count(&pendingCount).Error; err != nil {
		return err
	}

	return c.Render("fish_home", fiber.Map{
		"Fishes":      fishes,
		"Search":      search,
		"OrdersCount": pendingCount,
	})
}

// CreateForm renders the empty creation form.
func (h *AdminFishHandler) CreateForm(c *fiber.Ctx) error {
	return c.Render("fish_create", fiber.Map{"Errors": nil, "Values": emptyFishValues()})
}

type fishForm struct {
	Name  string  `validate:"required,max=500"`
	Price float64 `validate:"gte=0"`
	Type  string  `validate:"required,max=100"`
}

// Create validates the multipart form and persists a new fish. Validation
// failures re-render the form with field errors and persist nothing.
func (h *AdminFishHandler) Create(c *fiber.Ctx) error {
	form, fieldErrors := h.parseFishForm(c)

	photoFile, err := c.FormFile("photo")
	if err != nil {
		fieldErrors["photo"] = "Photo is required"
	}

	if len(fieldErrors) > 0 {
		return c.Status(fiber.StatusBadRequest).Render("fish_create", fiber.Map{
			"Errors": fieldErrors,
			"Values": fiber.Map{
				"Name":  form.Name,
				"Price": c.FormValue("price"),
				"Type":  form.Type,
			},
		})
	}

	photo, err := utils.SaveUpload(c, photoFile, h.uploadDir)
	if err != nil {
		return h.renderUploadError(c, "fish_create", err)
	}

	fish := models.Fish{
		Name:  form.Name,
		Photo: photo,
		Price: form.Price,
		Type:  form.Type,
	}

	if videoFile, err := c.FormFile("video"); err == nil {
		video, err := utils.SaveUpload(c, videoFile, h.uploadDir)
		if err != nil {
			return h.renderUploadError(c, "fish_create", err)
		}
		fish.Video = video
	}

	if err := h.db.Create(&fish).Error; err != nil {
		return err
	}

	return c.Redirect("/home")
}

// List renders every fish, newest first.
func (h *AdminFishHandler) List(c *fiber.Ctx) error {
	var fishes []models.Fish
	if err := h.db.Order("created_at desc").Find(&fishes).Error; err != nil {
		return err
	}
	return c.Render("fish_retrieve", fiber.Map{"Fishes": fishes})
}

// UpdateForm renders the edit form for one fish.
func (h *AdminFishHandler) UpdateForm(c *fiber.Ctx) error {
	fish, err := h.findFish(c)
	if err != nil {
		return err
	}
	return c.Render("fish_update", fiber.Map{"Fish": fish, "Errors": nil})
}

// Update merges changed scalar fields and replaces media paths only when a
// new file arrived in this request.
func (h *AdminFishHandler) Update(c *fiber.Ctx) error {
	fish, err := h.findFish(c)
	if err != nil {
		return err
	}

	form, fieldErrors := h.parseFishForm(c)
	if len(fieldErrors) > 0 {
		return c.Status(fiber.StatusBadRequest).Render("fish_update", fiber.Map{
			"Fish":   fish,
			"Errors": fieldErrors,
		})
	}

	fish.Name = form.Name
	fish.Price = form.Price
	fish.Type = form.Type

	if photoFile, err := c.FormFile("photo"); err == nil {
		photo, err := utils.SaveUpload(c, photoFile, h.uploadDir)
		if err != nil {
			return h.renderMediaError(c, "fish_update", fiber.Map{"Fish": fish}, err)
		}
		fish.Photo = photo
	}

	if videoFile, err := c.FormFile("video"); err == nil {
		video, err := utils.SaveUpload(c, videoFile, h.uploadDir)
		if err != nil {
			return h.renderMediaError(c, "fish_update", fiber.Map{"Fish": fish}, err)
		}
		fish.Video = video
	}

	if err := h.db.Save(&fish).Error; err != nil {
		return err
	}

	return c.Redirect("/home")
}

// DeleteForm renders the confirmation page.
func (h *AdminFishHandler) DeleteForm(c *fiber.Ctx) error {
	fish, err := h.findFish(c)
	if err != nil {
		return err
	}
	return c.Render("fish_delete", fiber.Map{"Fish": fish})
}

// Delete removes the fish after confirmation.
func (h *AdminFishHandler) Delete(c *fiber.Ctx) error {
	fish, err := h.findFish(c)
	if err != nil {
		return err
	}

	if err := h.db.Delete(&fish).Error; err != nil {
		return err
	}

	return c.Redirect("/home")
}

func (h *AdminFishHandler) findFish(c *fiber.Ctx) (models.Fish, error) {
	var fish models.Fish

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fish, fiber.NewError(fiber.StatusNotFound, "Fish not found")
	}

	if err := h.db.First(&fish, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fish, fiber.NewError(fiber.StatusNotFound, "Fish not found")
		}
		return fish, err
	}

	return fish, nil
}

func (h *AdminFishHandler) parseFishForm(c *fiber.Ctx) (fishForm, map[string]string) {
	fieldErrors := make(map[string]string)

	form := fishForm{
		Name: strings.TrimSpace(c.FormValue("name")),
		Type: strings.TrimSpace(c.FormValue("type")),
	}

	price, err := strconv.ParseFloat(c.FormValue("price"), 64)
	if err != nil {
		fieldErrors["price"] = "Invalid price format"
	}
	form.Price = price

	if err := validate.Struct(form); err != nil {
		for field, msg := range fishFieldErrors(err) {
			fieldErrors[field] = msg
		}
	}

	return form, fieldErrors
}

func (h *AdminFishHandler) renderUploadError(c *fiber.Ctx, view string, err error) error {
	return h.renderMediaError(c, view, fiber.Map{"Values": emptyFishValues()}, err)
}

func (h *AdminFishHandler) renderMediaError(c *fiber.Ctx, view string, data fiber.Map, err error) error {
	if errors.Is(err, utils.ErrUnsupportedMedia) {
		data["Errors"] = map[string]string{"photo": "Only images and videos allowed"}
		return c.Status(fiber.StatusBadRequest).Render(view, data)
	}
	return err
}

func emptyFishValues() fiber.Map {
	return fiber.Map{"Name": "", "Price": "", "Type": ""}
}
