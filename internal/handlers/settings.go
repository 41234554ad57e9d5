package handlers

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/example/stride/internal/models"
	"github.com/example/stride/internal/services"
)

// SettingsHandler serves and updates the singleton site settings.
type SettingsHandler struct {
	db    *gorm.DB
	cache *services.SettingsCache
}

// NewSettingsHandler constructs SettingsHandler.
func NewSettingsHandler(db *gorm.DB, cache *services.SettingsCache) *SettingsHandler {
	return &SettingsHandler{db: db, cache: cache}
}

// GetSettings returns the storefront configuration. The gateway secret key
// never leaves the server; active ads and local payment methods ride along
// so storefront pages need a single fetch.
func (h *SettingsHandler) GetSettings(c *fiber.Ctx) error {
	settings, err := h.cache.Get(c.Context())
	if err != nil {
		return err
	}

	var ads []models.PromotionalAd
	if err := h.db.Where("active = ?", true).Order("created_at desc").Find(&ads).Error; err != nil {
		return err
	}
	settings.PromotionalAds = ads

	var methods []models.LocalPaymentMethod
	if err := h.db.Where("active = ?", true).Order("created_at asc").Find(&methods).Error; err != nil {
		return err
	}
	settings.LocalPaymentMethods = methods

	return c.JSON(fiber.Map{"success": true, "data": settings})
}

type updateSettingsRequest struct {
	Facebook              *string  `json:"facebook"`
	Instagram             *string  `json:"instagram"`
	Twitter               *string  `json:"twitter"`
	Youtube               *string  `json:"youtube"`
	EnableCardGateway     *bool    `json:"enable_card_gateway"`
	EnableCOD             *bool    `json:"enable_cod"`
	GatewayPublishableKey *string  `json:"gateway_publishable_key"`
	GatewaySecretKey      *string  `json:"gateway_secret_key"`
	Currency              *string  `json:"currency"`
	DeliveryCharges       *float64 `json:"delivery_charges"`
}

// UpdateSettings applies a partial update to the singleton row and
// invalidates the cache so the next read sees fresh values.
func (h *SettingsHandler) UpdateSettings(c *fiber.Ctx) error {
	var req updateSettingsRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	settings, err := h.cache.Refresh(c.Context())
	if err != nil {
		return err
	}

	updates := map[string]interface{}{}
	if req.Facebook != nil {
		updates["facebook"] = *req.Facebook
	}
	if req.Instagram != nil {
		updates["instagram"] = *req.Instagram
	}
	if req.Twitter != nil {
		updates["twitter"] = *req.Twitter
	}
	if req.Youtube != nil {
		updates["youtube"] = *req.Youtube
	}
	if req.EnableCardGateway != nil {
		updates["enable_card_gateway"] = *req.EnableCardGateway
	}
	if req.EnableCOD != nil {
		updates["enable_cod"] = *req.EnableCOD
	}
	if req.GatewayPublishableKey != nil {
		updates["gateway_publishable_key"] = *req.GatewayPublishableKey
	}
	if req.GatewaySecretKey != nil {
		updates["gateway_secret_key"] = *req.GatewaySecretKey
	}
	if req.Currency != nil {
		updates["currency"] = *req.Currency
	}
	if req.DeliveryCharges != nil {
		if *req.DeliveryCharges < 0 {
			return fiber.NewError(fiber.StatusBadRequest, "delivery_charges cannot be negative")
		}
		updates["delivery_charges"] = *req.DeliveryCharges
	}

	if len(updates) == 0 {
		return fiber.NewError(fiber.StatusBadRequest, "no fields to update")
	}

	if err := h.db.Model(&models.SiteSettings{}).
		Where("id = ?", settings.ID).
		Updates(updates).Error; err != nil {
		return err
	}

	h.cache.Invalidate()

	fresh, err := h.cache.Get(c.Context())
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{"success": true, "data": fresh})
}
