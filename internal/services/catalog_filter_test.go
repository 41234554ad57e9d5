package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/example/stride/internal/models"
)

func catalogFixture() []models.Product {
	return []models.Product{
		{Name: "Red Tee", Category: "Shirts", Price: 25, Tags: []string{"summer", "casual"}},
		{Name: "Blue Hoodie", Category: "Hoodies", Price: 60, Tags: []string{"winter"}},
		{Name: "Linen Shirt", Category: "Shirts", Price: 45, Tags: []string{"summer", "formal"}},
		{Name: "Black Cap", Category: "Accessories", Price: 15, Tags: []string{"casual"}},
	}
}

func names(products []models.Product) []string {
	out := make([]string, len(products))
	for i, p := range products {
		out[i] = p.Name
	}
	return out
}

func TestFilterProductsNoQueryKeepsInputOrder(t *testing.T) {
	got := FilterProducts(catalogFixture(), CatalogQuery{Sort: SortNewest})
	assert.Equal(t, []string{"Red Tee", "Blue Hoodie", "Linen Shirt", "Black Cap"}, names(got))
}

func TestFilterProductsByCategory(t *testing.T) {
	got := FilterProducts(catalogFixture(), CatalogQuery{Category: "shirts"})
	assert.Equal(t, []string{"Red Tee", "Linen Shirt"}, names(got))
}

func TestFilterProductsFiltersCompose(t *testing.T) {
	got := FilterProducts(catalogFixture(), CatalogQuery{Category: "Shirts", Tag: "summer", Search: "linen"})
	assert.Equal(t, []string{"Linen Shirt"}, names(got))
}

func TestFilterProductsSearchMatchesNameCategoryAndTags(t *testing.T) {
	assert.Equal(t, []string{"Blue Hoodie"}, names(FilterProducts(catalogFixture(), CatalogQuery{Search: "HOODIE"})))
	assert.Equal(t, []string{"Linen Shirt"}, names(FilterProducts(catalogFixture(), CatalogQuery{Search: "formal"})))
}

func TestFilterProductsSortByPrice(t *testing.T) {
	low := FilterProducts(catalogFixture(), CatalogQuery{Sort: SortPriceLow})
	assert.Equal(t, []string{"Black Cap", "Red Tee", "Linen Shirt", "Blue Hoodie"}, names(low))

	high := FilterProducts(catalogFixture(), CatalogQuery{Sort: SortPriceHigh})
	assert.Equal(t, []string{"Blue Hoodie", "Linen Shirt", "Red Tee", "Black Cap"}, names(high))
}

func TestFilterProductsPriceSortIgnoresDiscount(t *testing.T) {
	discounted := float64(10)
	products := []models.Product{
		{Name: "A", Price: 30, DiscountedPrice: &discounted},
		{Name: "B", Price: 20},
	}

	got := FilterProducts(products, CatalogQuery{Sort: SortPriceLow})
	assert.Equal(t, []string{"B", "A"}, names(got))
}

func TestFilterProductsDoesNotMutateInput(t *testing.T) {
	products := catalogFixture()
	FilterProducts(products, CatalogQuery{Category: "Shirts", Sort: SortPriceHigh})
	assert.Equal(t, []string{"Red Tee", "Blue Hoodie", "Linen Shirt", "Black Cap"}, names(products))
}

func TestCollectTags(t *testing.T) {
	tags := CollectTags(catalogFixture())
	assert.Equal(t, []string{"casual", "formal", "summer", "winter"}, tags)
}
