package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/example/stride/internal/models"
	"github.com/example/stride/internal/services"
	"github.com/example/stride/internal/utils"
)

// ProductHandler manages product listing and CRUD.
type ProductHandler struct {
	db *gorm.DB
}

// NewProductHandler constructs ProductHandler.
func NewProductHandler(db *gorm.DB) *ProductHandler {
	return &ProductHandler{db: db}
}

// ListProducts returns the published catalog filtered by the category, tag,
// search, and sort query params. Filtering runs over the in-memory list so
// its semantics stay byte-for-byte the pure pipeline's.
func (h *ProductHandler) ListProducts(c *fiber.Ctx) error {
	var products []models.Product
	if err := h.db.Preload("ColorVariants").
		Where("is_published = ?", true).
		Order("created_at desc").
		Find(&products).Error; err != nil {
		return err
	}

	query := services.CatalogQuery{
		Category: c.Query("category"),
		Tag:      c.Query("tag"),
		Search:   c.Query("search"),
		Sort:     c.Query("sort", services.SortNewest),
	}
	filtered := services.FilterProducts(products, query)

	return c.JSON(fiber.Map{
		"success": true,
		"data":    filtered,
		"tags":    services.CollectTags(products),
	})
}

// ListAllProducts returns every product, including unpublished, for the
// admin panel.
func (h *ProductHandler) ListAllProducts(c *fiber.Ctx) error {
	pg := utils.ParsePagination(c)

	var total int64
	if err := h.db.Model(&models.Product{}).Count(&total).Error; err != nil {
		return err
	}

	var products []models.Product
	if err := h.db.Preload("ColorVariants").
		Limit(pg.Limit).Offset(pg.Offset).
		Order("created_at desc").
		Find(&products).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    products,
		"pagination": fiber.Map{
			"current_page":   pg.Page,
			"items_per_page": pg.Limit,
			"total_items":    total,
		},
	})
}

// GetProduct loads a single product with variants.
func (h *ProductHandler) GetProduct(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	var product models.Product
	if err := h.db.Preload("ColorVariants").
		First(&product, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return fiber.NewError(fiber.StatusNotFound, "product not found")
		}
		return err
	}

	return c.JSON(fiber.Map{"success": true, "data": product})
}

type colorVariantRequest struct {
	Color        string   `json:"color"`
	ImageURLs    []string `json:"image_urls"`
	DisplayOrder int      `json:"display_order"`
}

type productRequest struct {
	Name            string                `json:"name"`
	Price           float64               `json:"price"`
	DiscountedPrice *float64              `json:"discounted_price"`
	Category        string                `json:"category"`
	Description     string                `json:"description"`
	Sizes           []string              `json:"sizes"`
	Stock           int                   `json:"stock"`
	ImageURLs       []string              `json:"image_urls"`
	Tags            []string              `json:"tags"`
	IsPublished     *bool                 `json:"is_published"`
	ColorVariants   []colorVariantRequest `json:"color_variants"`
}

func (h *ProductHandler) buildProductFromRequest(req productRequest) (models.Product, error) {
	if req.Name == "" {
		return models.Product{}, errors.New("name is required")
	}
	if req.Price <= 0 {
		return models.Product{}, errors.New("price must be positive")
	}
	if req.DiscountedPrice != nil && *req.DiscountedPrice >= req.Price {
		return models.Product{}, errors.New("discounted price must be below the base price")
	}
	if len(req.Sizes) == 0 {
		return models.Product{}, errors.New("at least one size is required")
	}
	if req.Stock < 0 {
		return models.Product{}, errors.New("stock cannot be negative")
	}

	product := models.Product{
		Name:            req.Name,
		Price:           req.Price,
		DiscountedPrice: req.DiscountedPrice,
		Category:        req.Category,
		Description:     req.Description,
		Sizes:           req.Sizes,
		Stock:           req.Stock,
		ImageURLs:       req.ImageURLs,
		Tags:            req.Tags,
		IsPublished:     true,
	}
	if req.IsPublished != nil {
		product.IsPublished = *req.IsPublished
	}

	for i, v := range req.ColorVariants {
		product.ColorVariants = append(product.ColorVariants, models.ColorVariant{
			Color:        v.Color,
			ImageURLs:    v.ImageURLs,
			DisplayOrder: i,
		})
	}

	return product, nil
}

// CreateProduct handles product creation (admin only).
func (h *ProductHandler) CreateProduct(c *fiber.Ctx) error {
	var req productRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	product, err := h.buildProductFromRequest(req)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	if err := h.db.Create(&product).Error; err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": product})
}

// UpdateProduct updates an existing product and replaces its color variants.
func (h *ProductHandler) UpdateProduct(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	var existing models.Product
	if err := h.db.First(&existing, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return fiber.NewError(fiber.StatusNotFound, "product not found")
		}
		return err
	}

	var req productRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	product, err := h.buildProductFromRequest(req)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	product.ID = existing.ID
	product.CreatedAt = existing.CreatedAt

	if err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("product_id = ?", product.ID).Delete(&models.ColorVariant{}).Error; err != nil {
			return err
		}

		// Select explicitly so false/zero values overwrite too.
		if err := tx.Model(&existing).
			Select("Name", "Price", "DiscountedPrice", "Category", "Description",
				"Sizes", "Stock", "ImageURLs", "Tags", "IsPublished").
			Updates(product).Error; err != nil {
			return err
		}

		for i := range product.ColorVariants {
			product.ColorVariants[i].ProductID = product.ID
		}
		if len(product.ColorVariants) > 0 {
			if err := tx.Create(&product.ColorVariants).Error; err != nil {
				return err
			}
		}
		return nil
	}); err != nil {
		return err
	}

	return c.JSON(fiber.Map{"success": true, "data": product})
}

// DeleteProduct removes a product and its variants.
func (h *ProductHandler) DeleteProduct(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	if err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("product_id = ?", id).Delete(&models.ColorVariant{}).Error; err != nil {
			return err
		}
		if err := tx.Where("product_id = ?", id).Delete(&models.Review{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Product{}, "id = ?", id).Error
	}); err != nil {
		return err
	}

	return c.SendStatus(fiber.StatusNoContent)
}
