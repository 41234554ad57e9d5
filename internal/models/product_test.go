package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEffectivePrice(t *testing.T) {
	p := Product{Price: 60}
	assert.Equal(t, 60.0, p.EffectivePrice())

	discounted := 45.0
	p.DiscountedPrice = &discounted
	assert.Equal(t, 45.0, p.EffectivePrice())
}

func TestHasSize(t *testing.T) {
	p := Product{Sizes: []string{"S", "M", "L"}}
	assert.True(t, p.HasSize("M"))
	assert.False(t, p.HasSize("XL"))
}

func TestCheckoutPossible(t *testing.T) {
	s := SiteSettings{}
	assert.False(t, s.CheckoutPossible())

	s.EnableCOD = true
	assert.True(t, s.CheckoutPossible())

	s = SiteSettings{EnableCardGateway: true}
	assert.True(t, s.CheckoutPossible())
}
