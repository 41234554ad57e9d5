package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/example/stride/internal/middleware"
	"github.com/example/stride/internal/models"
	"github.com/example/stride/internal/services"
)

// CartHandler manages cart endpoints for both authenticated users and
// guests. Guests identify themselves with an X-Guest-Token header.
type CartHandler struct {
	db    *gorm.DB
	store *services.CartStore
}

// NewCartHandler constructs CartHandler.
func NewCartHandler(db *gorm.DB, store *services.CartStore) *CartHandler {
	return &CartHandler{db: db, store: store}
}

// cartOwner resolves the request's cart identity: the authenticated user
// when a valid token was presented, else the guest token header.
func cartOwner(c *fiber.Ctx) (*uuid.UUID, string, error) {
	if userID, ok := middleware.GetCurrentUserID(c); ok {
		return &userID, "", nil
	}
	if token := middleware.GetGuestToken(c); token != "" {
		return nil, token, nil
	}
	return nil, "", fiber.NewError(fiber.StatusUnauthorized, "authentication or guest token required")
}

// GetCart returns the owner's cart and its running total.
func (h *CartHandler) GetCart(c *fiber.Ctx) error {
	userID, guestToken, err := cartOwner(c)
	if err != nil {
		return err
	}

	cart, err := h.store.LoadOrCreate(c.Context(), userID, guestToken)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    cart,
		"total":   services.CartTotal(cart.Items),
	})
}

type addCartItemRequest struct {
	ProductID     string  `json:"product_id"`
	SelectedSize  string  `json:"selected_size"`
	SelectedColor *string `json:"selected_color"`
}

// AddItem adds one unit of a product to the cart. Rejected with 409 when
// another unit would exceed the product's stock.
func (h *CartHandler) AddItem(c *fiber.Ctx) error {
	userID, guestToken, err := cartOwner(c)
	if err != nil {
		return err
	}

	var req addCartItemRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid product_id")
	}

	var product models.Product
	if err := h.db.First(&product, "id = ?", productID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return fiber.NewError(fiber.StatusNotFound, "product not found")
		}
		return err
	}

	if !product.HasSize(req.SelectedSize) {
		return fiber.NewError(fiber.StatusBadRequest, "invalid size for this product")
	}

	cart, err := h.store.LoadOrCreate(c.Context(), userID, guestToken)
	if err != nil {
		return err
	}

	items, ok := services.AddToCart(cart.Items, &product, req.SelectedSize, req.SelectedColor)
	if !ok {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"success": false,
			"error":   "maximum stock reached",
			"stock":   product.Stock,
		})
	}

	if err := h.store.ReplaceItems(c.Context(), cart, items); err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    cart,
		"total":   services.CartTotal(cart.Items),
	})
}

type updateCartItemRequest struct {
	ProductID     string  `json:"product_id"`
	SelectedSize  string  `json:"selected_size"`
	SelectedColor *string `json:"selected_color"`
	Quantity      int     `json:"quantity"`
}

// UpdateItem sets a line's quantity. Out-of-range quantities leave the cart
// unchanged.
func (h *CartHandler) UpdateItem(c *fiber.Ctx) error {
	userID, guestToken, err := cartOwner(c)
	if err != nil {
		return err
	}

	var req updateCartItemRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid product_id")
	}

	cart, err := h.store.LoadOrCreate(c.Context(), userID, guestToken)
	if err != nil {
		return err
	}

	items := services.UpdateQuantity(cart.Items, productID, req.SelectedSize, req.Quantity, req.SelectedColor)
	if err := h.store.ReplaceItems(c.Context(), cart, items); err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    cart,
		"total":   services.CartTotal(cart.Items),
	})
}

type removeCartItemRequest struct {
	ProductID     string  `json:"product_id"`
	SelectedSize  string  `json:"selected_size"`
	SelectedColor *string `json:"selected_color"`
}

// RemoveItem deletes a line from the cart. No-op when absent.
func (h *CartHandler) RemoveItem(c *fiber.Ctx) error {
	userID, guestToken, err := cartOwner(c)
	if err != nil {
		return err
	}

	var req removeCartItemRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid product_id")
	}

	cart, err := h.store.LoadOrCreate(c.Context(), userID, guestToken)
	if err != nil {
		return err
	}

	items := services.RemoveFromCart(cart.Items, productID, req.SelectedSize, req.SelectedColor)
	if err := h.store.ReplaceItems(c.Context(), cart, items); err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    cart,
		"total":   services.CartTotal(cart.Items),
	})
}

// ClearCart empties the owner's cart.
func (h *CartHandler) ClearCart(c *fiber.Ctx) error {
	userID, guestToken, err := cartOwner(c)
	if err != nil {
		return err
	}

	cart, err := h.store.LoadOrCreate(c.Context(), userID, guestToken)
	if err != nil {
		return err
	}

	if err := h.store.ReplaceItems(c.Context(), cart, nil); err != nil {
		return err
	}

	return c.JSON(fiber.Map{"success": true, "data": cart, "total": 0})
}

type mergeCartRequest struct {
	GuestToken string `json:"guest_token"`
}

// MergeCart folds the guest cart identified in the body into the
// authenticated user's cart. Called once right after login.
func (h *CartHandler) MergeCart(c *fiber.Ctx) error {
	userID, ok := middleware.GetCurrentUserID(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	var req mergeCartRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if req.GuestToken == "" {
		return fiber.NewError(fiber.StatusBadRequest, "guest_token is required")
	}

	cart, err := h.store.MergeOnLogin(c.Context(), userID, req.GuestToken)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    cart,
		"total":   services.CartTotal(cart.Items),
	})
}
