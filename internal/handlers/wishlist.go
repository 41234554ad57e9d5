package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/example/stride/internal/middleware"
	"github.com/example/stride/internal/services"
)

// WishlistHandler manages wishlist endpoints for users and guests.
type WishlistHandler struct {
	svc *services.WishlistService
}

// NewWishlistHandler constructs WishlistHandler.
func NewWishlistHandler(svc *services.WishlistService) *WishlistHandler {
	return &WishlistHandler{svc: svc}
}

// GetWishlist returns the owner's wishlist.
func (h *WishlistHandler) GetWishlist(c *fiber.Ctx) error {
	userID, guestToken, err := cartOwner(c)
	if err != nil {
		return err
	}

	wl, err := h.svc.Get(c.Context(), userID, guestToken)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{"success": true, "data": wl.ProductIDs})
}

type toggleWishlistRequest struct {
	ProductID string `json:"product_id"`
}

// ToggleWishlist flips membership of a product in the owner's wishlist.
func (h *WishlistHandler) ToggleWishlist(c *fiber.Ctx) error {
	userID, guestToken, err := cartOwner(c)
	if err != nil {
		return err
	}

	var req toggleWishlistRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if req.ProductID == "" {
		return fiber.NewError(fiber.StatusBadRequest, "product_id is required")
	}

	ids, err := h.svc.Toggle(c.Context(), userID, guestToken, req.ProductID)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{"success": true, "data": ids})
}

type mergeWishlistRequest struct {
	GuestToken string `json:"guest_token"`
}

// MergeWishlist unions the guest wishlist into the authenticated user's on
// login and discards the guest copy.
func (h *WishlistHandler) MergeWishlist(c *fiber.Ctx) error {
	userID, ok := middleware.GetCurrentUserID(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	var req mergeWishlistRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if req.GuestToken == "" {
		return fiber.NewError(fiber.StatusBadRequest, "guest_token is required")
	}

	ids, err := h.svc.Merge(c.Context(), userID, req.GuestToken)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{"success": true, "data": ids})
}
