package models

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Cart holds one shopper's line items. Exactly one of UserID and GuestToken
// is set: authenticated carts are keyed by user, anonymous carts by an
// opaque token the client keeps on the device.
type Cart struct {
	BaseModel
	UserID     *uuid.UUID `gorm:"type:uuid;uniqueIndex" json:"user_id,omitempty"`
	GuestToken *string    `gorm:"uniqueIndex" json:"guest_token,omitempty"`
	Items      []CartItem `json:"items"`
}

// CartItem is a product snapshot plus quantity and selection. Prices and
// the stock ceiling are captured at add time, not live-linked.
type CartItem struct {
	BaseModel
	CartID          uuid.UUID `gorm:"type:uuid;index" json:"cart_id"`
	ProductID       uuid.UUID `gorm:"type:uuid;index" json:"product_id"`
	Name            string    `json:"name"`
	UnitPrice       float64   `json:"unit_price"`
	DiscountedPrice *float64  `json:"discounted_price,omitempty"`
	SelectedSize    string    `json:"selected_size"`
	SelectedColor   *string   `json:"selected_color,omitempty"`
	Quantity        int       `json:"quantity"`
	StockCeiling    int       `json:"stock_ceiling"`
	ImageURL        string    `json:"image_url"`
}

// EffectiveUnitPrice returns the discounted price when one was captured,
// else the base price.
func (i *CartItem) EffectiveUnitPrice() float64 {
	if i.DiscountedPrice != nil {
		return *i.DiscountedPrice
	}
	return i.UnitPrice
}

// MatchesKey reports whether the item has the given merge key
// (product, size, color).
func (i *CartItem) MatchesKey(productID uuid.UUID, size string, color *string) bool {
	if i.ProductID != productID || i.SelectedSize != size {
		return false
	}
	if i.SelectedColor == nil || color == nil {
		return i.SelectedColor == nil && color == nil
	}
	return *i.SelectedColor == *color
}

// Wishlist is a per-owner set of product ids. Ownership mirrors Cart:
// user id for authenticated sessions, guest token otherwise.
type Wishlist struct {
	BaseModel
	UserID     *uuid.UUID     `gorm:"type:uuid;uniqueIndex" json:"user_id,omitempty"`
	GuestToken *string        `gorm:"uniqueIndex" json:"guest_token,omitempty"`
	ProductIDs pq.StringArray `gorm:"type:text[]" json:"product_ids"`
}
