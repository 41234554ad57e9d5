package handlers

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/example/stride/internal/middleware"
	"github.com/example/stride/internal/models"
	"github.com/example/stride/internal/services"
)

// CheckoutHandler exposes the checkout transaction.
type CheckoutHandler struct {
	db       *gorm.DB
	checkout *services.CheckoutService
}

// NewCheckoutHandler constructs CheckoutHandler.
func NewCheckoutHandler(db *gorm.DB, checkout *services.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{db: db, checkout: checkout}
}

// PlaceOrder validates the submission and runs the atomic
// stock-check-and-decrement plus order creation. Business failures keep the
// cart intact and name the offending item so the shopper can adjust.
func (h *CheckoutHandler) PlaceOrder(c *fiber.Ctx) error {
	userID, ok := middleware.GetCurrentUserID(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	var user models.User
	if err := h.db.First(&user, "id = ?", userID).Error; err != nil {
		return err
	}

	var input services.CheckoutInput
	if err := c.BodyParser(&input); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	order, err := h.checkout.PlaceOrder(c.Context(), userID, user.Name, input)
	if err != nil {
		switch e := err.(type) {
		case *services.ValidationError:
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"field":   e.Field,
				"error":   e.Message,
			})
		case *services.CheckoutError:
			status := fiber.StatusConflict
			if e.Kind == services.CheckoutErrPayment {
				status = fiber.StatusPaymentRequired
			}
			if e.Kind == services.CheckoutErrDisabled {
				status = fiber.StatusServiceUnavailable
			}
			return c.Status(status).JSON(fiber.Map{
				"success":   false,
				"kind":      e.Kind,
				"item":      e.ItemName,
				"available": e.Available,
				"error":     e.Error(),
			})
		default:
			return err
		}
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"id":             order.ID,
			"status":         order.Status,
			"payment_status": order.PaymentStatus,
			"total_price":    order.TotalPrice,
			"currency":       order.Currency,
			"placed_at":      order.PlacedAt,
		},
	})
}
