package models

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Product is a catalog entry. Stock is decremented only by the checkout
// transaction; every other write comes from the admin panel.
type Product struct {
	BaseModel
	Name            string         `json:"name"`
	Price           float64        `json:"price"`
	DiscountedPrice *float64       `json:"discounted_price,omitempty"`
	Category        string         `gorm:"index" json:"category"`
	Description     string         `json:"description"`
	Sizes           pq.StringArray `gorm:"type:text[]" json:"sizes"`
	Stock           int            `json:"stock"`
	ImageURLs       pq.StringArray `gorm:"type:text[]" json:"image_urls"`
	Tags            pq.StringArray `gorm:"type:text[]" json:"tags,omitempty"`
	IsPublished     bool           `gorm:"default:true" json:"is_published"`
	ColorVariants   []ColorVariant `json:"color_variants,omitempty"`
}

// EffectivePrice returns the discounted price when one is set, else the
// base price. Absence of a discount is distinct from a discount of zero.
func (p *Product) EffectivePrice() float64 {
	if p.DiscountedPrice != nil {
		return *p.DiscountedPrice
	}
	return p.Price
}

// HasSize reports whether the label is one of the product's sizes.
func (p *Product) HasSize(size string) bool {
	for _, s := range p.Sizes {
		if s == size {
			return true
		}
	}
	return false
}

// ColorVariant is an alternate colorway with its own image set.
type ColorVariant struct {
	BaseModel
	ProductID    uuid.UUID      `gorm:"type:uuid;index" json:"product_id"`
	Color        string         `json:"color"`
	ImageURLs    pq.StringArray `gorm:"type:text[]" json:"image_urls"`
	DisplayOrder int            `json:"display_order"`
}

// Category groups products for browsing and filtering.
type Category struct {
	BaseModel
	Name     string `gorm:"uniqueIndex" json:"name"`
	ImageURL string `json:"image_url"`
}

// Review is a customer review on a product.
type Review struct {
	BaseModel
	ProductID uuid.UUID `gorm:"type:uuid;index" json:"product_id"`
	UserID    uuid.UUID `gorm:"type:uuid;index" json:"user_id"`
	UserName  string    `json:"user_name"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
}
