package handlers

import (
	"bufio"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/valyala/fasthttp"
	"gorm.io/gorm"

	"github.com/example/stride/internal/middleware"
	"github.com/example/stride/internal/models"
	"github.com/example/stride/internal/services"
)

// ReviewHandler manages product reviews, including the live snapshot stream
// consumed by open product-detail views.
type ReviewHandler struct {
	db  *gorm.DB
	hub *services.ReviewHub
}

// NewReviewHandler constructs ReviewHandler.
func NewReviewHandler(db *gorm.DB, hub *services.ReviewHub) *ReviewHandler {
	return &ReviewHandler{db: db, hub: hub}
}

// ListReviews returns a product's reviews, newest first.
func (h *ReviewHandler) ListReviews(c *fiber.Ctx) error {
	productID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	reviews, err := h.loadReviews(productID)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{"success": true, "data": reviews})
}

type createReviewRequest struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

// CreateReview adds a review and pushes a fresh snapshot to subscribers.
func (h *ReviewHandler) CreateReview(c *fiber.Ctx) error {
	userID, ok := middleware.GetCurrentUserID(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	productID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	var req createReviewRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if req.Rating < 1 || req.Rating > 5 {
		return fiber.NewError(fiber.StatusBadRequest, "rating must be between 1 and 5")
	}

	var product models.Product
	if err := h.db.First(&product, "id = ?", productID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return fiber.NewError(fiber.StatusNotFound, "product not found")
		}
		return err
	}

	var user models.User
	if err := h.db.First(&user, "id = ?", userID).Error; err != nil {
		return err
	}

	review := models.Review{
		ProductID: productID,
		UserID:    userID,
		UserName:  user.Name,
		Rating:    req.Rating,
		Comment:   req.Comment,
	}

	if err := h.db.Create(&review).Error; err != nil {
		return err
	}

	h.publishSnapshot(productID)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": review})
}

// DeleteReview removes a review. Allowed for the author and for admins.
func (h *ReviewHandler) DeleteReview(c *fiber.Ctx) error {
	userID, ok := middleware.GetCurrentUserID(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	reviewID, err := uuid.Parse(c.Params("reviewId"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	var review models.Review
	if err := h.db.First(&review, "id = ?", reviewID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return fiber.NewError(fiber.StatusNotFound, "review not found")
		}
		return err
	}

	if review.UserID != userID {
		var user models.User
		if err := h.db.First(&user, "id = ?", userID).Error; err != nil {
			return err
		}
		if !user.IsAdmin() {
			return fiber.NewError(fiber.StatusForbidden, "not your review")
		}
	}

	if err := h.db.Delete(&review).Error; err != nil {
		return err
	}

	h.publishSnapshot(review.ProductID)

	return c.SendStatus(fiber.StatusNoContent)
}

// StreamReviews serves server-sent events with review snapshots for one
// product. The subscription is torn down when the client disconnects.
func (h *ReviewHandler) StreamReviews(c *fiber.Ctx) error {
	productID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	initial, err := h.loadReviews(productID)
	if err != nil {
		return err
	}

	updates, cancel := h.hub.Subscribe(productID)

	c.Set("Content-Type", "text/event-stream")
	c.Set("Cache-Control", "no-cache")
	c.Set("Connection", "keep-alive")

	c.Context().SetBodyStreamWriter(fasthttp.StreamWriter(func(w *bufio.Writer) {
		defer cancel()

		if err := writeSnapshot(w, initial); err != nil {
			return
		}

		keepalive := time.NewTicker(25 * time.Second)
		defer keepalive.Stop()

		for {
			select {
			case snapshot, ok := <-updates:
				if !ok {
					return
				}
				if err := writeSnapshot(w, snapshot); err != nil {
					return
				}
			case <-keepalive.C:
				if _, err := fmt.Fprint(w, ": keepalive\n\n"); err != nil {
					return
				}
				if err := w.Flush(); err != nil {
					return
				}
			}
		}
	}))

	return nil
}

func writeSnapshot(w *bufio.Writer, reviews []models.Review) error {
	payload, err := json.Marshal(reviews)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "event: reviews\ndata: %s\n\n", payload); err != nil {
		return err
	}
	return w.Flush()
}

func (h *ReviewHandler) loadReviews(productID uuid.UUID) ([]models.Review, error) {
	var reviews []models.Review
	err := h.db.Where("product_id = ?", productID).
		Order("created_at desc").
		Find(&reviews).Error
	return reviews, err
}

func (h *ReviewHandler) publishSnapshot(productID uuid.UUID) {
	reviews, err := h.loadReviews(productID)
	if err != nil {
		log.Printf("[Reviews] snapshot reload failed for %s: %v", productID, err)
		return
	}
	h.hub.Publish(productID, reviews)
}
