package handlers

import (
	"net/mail"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/example/stride/internal/models"
	"github.com/example/stride/internal/utils"
)

// SupportHandler manages support pages and contact messages.
type SupportHandler struct {
	db *gorm.DB
}

// NewSupportHandler constructs SupportHandler.
func NewSupportHandler(db *gorm.DB) *SupportHandler {
	return &SupportHandler{db: db}
}

// Support pages

func (h *SupportHandler) ListSupportPages(c *fiber.Ctx) error {
	var pages []models.SupportPage
	if err := h.db.Order("slug asc").Find(&pages).Error; err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "data": pages})
}

// GetSupportPage returns one page by its slug.
func (h *SupportHandler) GetSupportPage(c *fiber.Ctx) error {
	slug := c.Params("slug")

	var page models.SupportPage
	if err := h.db.First(&page, "slug = ?", slug).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return fiber.NewError(fiber.StatusNotFound, "page not found")
		}
		return err
	}

	return c.JSON(fiber.Map{"success": true, "data": page})
}

func (h *SupportHandler) CreateSupportPage(c *fiber.Ctx) error {
	var page models.SupportPage
	if err := c.BodyParser(&page); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	page.Slug = strings.ToLower(strings.TrimSpace(page.Slug))
	if page.Slug == "" || page.Title == "" {
		return fiber.NewError(fiber.StatusBadRequest, "slug and title are required")
	}

	if err := h.db.Create(&page).Error; err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": page})
}

func (h *SupportHandler) UpdateSupportPage(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	var page models.SupportPage
	if err := h.db.First(&page, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return fiber.NewError(fiber.StatusNotFound, "page not found")
		}
		return err
	}

	if err := c.BodyParser(&page); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	page.ID = id

	if err := h.db.Save(&page).Error; err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "data": page})
}

func (h *SupportHandler) DeleteSupportPage(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}
	if err := h.db.Delete(&models.SupportPage{}, "id = ?", id).Error; err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Contact messages

type contactMessageRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// CreateContactMessage accepts a contact-form submission from anyone.
func (h *SupportHandler) CreateContactMessage(c *fiber.Ctx) error {
	var req contactMessageRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Message) == "" {
		return fiber.NewError(fiber.StatusBadRequest, "name and message are required")
	}
	if _, err := mail.ParseAddress(req.Email); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid email address")
	}

	msg := models.ContactMessage{
		Name:    strings.TrimSpace(req.Name),
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	}
	if err := h.db.Create(&msg).Error; err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": msg})
}

// ListContactMessages returns submitted messages for the admin panel.
func (h *SupportHandler) ListContactMessages(c *fiber.Ctx) error {
	pg := utils.ParsePagination(c)

	var total int64
	if err := h.db.Model(&models.ContactMessage{}).Count(&total).Error; err != nil {
		return err
	}

	var messages []models.ContactMessage
	if err := h.db.Order("created_at desc").
		Limit(pg.Limit).Offset(pg.Offset).
		Find(&messages).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    messages,
		"pagination": fiber.Map{
			"current_page":   pg.Page,
			"items_per_page": pg.Limit,
			"total_items":    total,
		},
	})
}

func (h *SupportHandler) DeleteContactMessage(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}
	if err := h.db.Delete(&models.ContactMessage{}, "id = ?", id).Error; err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
