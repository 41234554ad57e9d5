package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/example/stride/internal/models"
)

func strPtr(s string) *string { return &s }

func floatPtr(f float64) *float64 { return &f }

func testProduct(stock int) *models.Product {
	return &models.Product{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Name:      "Red Tee",
		Price:     25,
		Stock:     stock,
		ImageURLs: []string{"https://cdn.example.com/red-tee.jpg"},
	}
}

func TestAddToCartAppendsNewLine(t *testing.T) {
	p := testProduct(3)

	items, ok := AddToCart(nil, p, "M", nil)
	assert.True(t, ok)
	assert.Len(t, items, 1)
	assert.Equal(t, p.ID, items[0].ProductID)
	assert.Equal(t, 1, items[0].Quantity)
	assert.Equal(t, 3, items[0].StockCeiling)
	assert.Equal(t, "https://cdn.example.com/red-tee.jpg", items[0].ImageURL)
}

func TestAddToCartIncrementsMatchingLine(t *testing.T) {
	p := testProduct(3)

	items, _ := AddToCart(nil, p, "M", nil)
	items, ok := AddToCart(items, p, "M", nil)
	assert.True(t, ok)
	assert.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Quantity)
}

func TestAddToCartStopsAtStock(t *testing.T) {
	p := testProduct(3)

	var items []models.CartItem
	var ok bool
	for i := 0; i < 3; i++ {
		items, ok = AddToCart(items, p, "M", nil)
		assert.True(t, ok)
	}

	items, ok = AddToCart(items, p, "M", nil)
	assert.False(t, ok)
	assert.Len(t, items, 1)
	assert.Equal(t, 3, items[0].Quantity)
}

func TestAddToCartDistinguishesSizeAndColor(t *testing.T) {
	p := testProduct(10)

	items, _ := AddToCart(nil, p, "M", nil)
	items, _ = AddToCart(items, p, "L", nil)
	items, _ = AddToCart(items, p, "M", strPtr("red"))

	assert.Len(t, items, 3)
}

func TestUpdateQuantityWithinCeiling(t *testing.T) {
	p := testProduct(5)
	items, _ := AddToCart(nil, p, "M", nil)

	items = UpdateQuantity(items, p.ID, "M", 4, nil)
	assert.Equal(t, 4, items[0].Quantity)
}

func TestUpdateQuantityRejectsOutOfRange(t *testing.T) {
	p := testProduct(5)
	items, _ := AddToCart(nil, p, "M", nil)

	items = UpdateQuantity(items, p.ID, "M", 0, nil)
	assert.Equal(t, 1, items[0].Quantity)

	items = UpdateQuantity(items, p.ID, "M", 6, nil)
	assert.Equal(t, 1, items[0].Quantity)
}

func TestRemoveFromCartAbsentKeyIsNoop(t *testing.T) {
	p := testProduct(5)
	items, _ := AddToCart(nil, p, "M", nil)

	items = RemoveFromCart(items, p.ID, "L", nil)
	assert.Len(t, items, 1)

	items = RemoveFromCart(items, p.ID, "M", nil)
	assert.Len(t, items, 0)
}

func TestCartTotalUsesEffectivePrice(t *testing.T) {
	items := []models.CartItem{
		{UnitPrice: 25, Quantity: 2},
		{UnitPrice: 60, DiscountedPrice: floatPtr(45), Quantity: 1},
	}

	assert.InDelta(t, 95, CartTotal(items), 0.001)
}

func TestMergeCartsSumsQuantitiesByKey(t *testing.T) {
	productID := uuid.New()
	local := []models.CartItem{
		{ProductID: productID, SelectedSize: "M", Quantity: 2},
	}
	remote := []models.CartItem{
		{ProductID: productID, SelectedSize: "M", Quantity: 3},
	}

	merged := MergeCarts(local, remote)
	assert.Len(t, merged, 1)
	assert.Equal(t, 5, merged[0].Quantity)
}

func TestMergeCartsAppendsUnmatchedLines(t *testing.T) {
	remoteID := uuid.New()
	localID := uuid.New()
	local := []models.CartItem{
		{BaseModel: models.BaseModel{ID: uuid.New()}, ProductID: localID, SelectedSize: "S", Quantity: 1},
	}
	remote := []models.CartItem{
		{ProductID: remoteID, SelectedSize: "M", Quantity: 1},
	}

	merged := MergeCarts(local, remote)
	assert.Len(t, merged, 2)
	assert.Equal(t, localID, merged[1].ProductID)
	assert.Equal(t, uuid.Nil, merged[1].ID)
}

func TestMergeCartsEmptyLocalLeavesRemoteUnchanged(t *testing.T) {
	remote := []models.CartItem{
		{ProductID: uuid.New(), SelectedSize: "M", Quantity: 2},
	}

	merged := MergeCarts(nil, remote)
	assert.Equal(t, remote, merged)
}

func TestMergeCartsColorIsPartOfKey(t *testing.T) {
	productID := uuid.New()
	local := []models.CartItem{
		{ProductID: productID, SelectedSize: "M", SelectedColor: strPtr("red"), Quantity: 1},
	}
	remote := []models.CartItem{
		{ProductID: productID, SelectedSize: "M", Quantity: 1},
	}

	merged := MergeCarts(local, remote)
	assert.Len(t, merged, 2)
}
