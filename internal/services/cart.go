package services

import (
	"github.com/google/uuid"

	"github.com/example/stride/internal/models"
)

// Cart operations work on an in-memory item list; callers persist the full
// list after every mutation. The stock ceiling recorded on each item is the
// snapshot captured at add time, not a live re-check.

// AddToCart increments the matching line or appends a new one with quantity 1.
// Returns false and leaves the list unchanged when another unit would exceed
// the product's stock.
func AddToCart(items []models.CartItem, product *models.Product, size string, color *string) ([]models.CartItem, bool) {
	current := 0
	idx := -1
	for i := range items {
		if items[i].MatchesKey(product.ID, size, color) {
			current = items[i].Quantity
			idx = i
			break
		}
	}

	if current+1 > product.Stock {
		return items, false
	}

	if idx >= 0 {
		items[idx].Quantity++
		return items, true
	}

	imageURL := ""
	if len(product.ImageURLs) > 0 {
		imageURL = product.ImageURLs[0]
	}

	return append(items, models.CartItem{
		ProductID:       product.ID,
		Name:            product.Name,
		UnitPrice:       product.Price,
		DiscountedPrice: product.DiscountedPrice,
		SelectedSize:    size,
		SelectedColor:   color,
		Quantity:        1,
		StockCeiling:    product.Stock,
		ImageURL:        imageURL,
	}), true
}

// RemoveFromCart deletes the matching line. No-op if absent.
func RemoveFromCart(items []models.CartItem, productID uuid.UUID, size string, color *string) []models.CartItem {
	result := items[:0]
	for i := range items {
		if !items[i].MatchesKey(productID, size, color) {
			result = append(result, items[i])
		}
	}
	return result
}

// UpdateQuantity sets the quantity on the matching line. Ignored when the
// new quantity is below one or above the line's recorded stock ceiling.
func UpdateQuantity(items []models.CartItem, productID uuid.UUID, size string, quantity int, color *string) []models.CartItem {
	if quantity < 1 {
		return items
	}
	for i := range items {
		if items[i].MatchesKey(productID, size, color) {
			if quantity > items[i].StockCeiling {
				return items
			}
			items[i].Quantity = quantity
			return items
		}
	}
	return items
}

// CartTotal sums effective unit price times quantity over all lines.
func CartTotal(items []models.CartItem) float64 {
	var total float64
	for i := range items {
		total += items[i].EffectiveUnitPrice() * float64(items[i].Quantity)
	}
	return total
}

// MergeCarts folds a guest cart into the authenticated cart on login.
// The remote cart is the base truth; local lines only contribute delta
// quantities, so already-synced items are not double counted. For each
// local line the remote match by (product, size, color) gains the local
// quantity; unmatched lines are appended. The caller must clear the guest
// cart in the same transaction so a repeated login cannot re-add the delta.
func MergeCarts(local, remote []models.CartItem) []models.CartItem {
	merged := make([]models.CartItem, len(remote))
	copy(merged, remote)

	for _, l := range local {
		found := false
		for i := range merged {
			if merged[i].MatchesKey(l.ProductID, l.SelectedSize, l.SelectedColor) {
				merged[i].Quantity += l.Quantity
				found = true
				break
			}
		}
		if !found {
			appended := l
			appended.BaseModel = models.BaseModel{}
			merged = append(merged, appended)
		}
	}

	return merged
}
