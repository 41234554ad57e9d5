package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanUserCancelOnlyWhilePending(t *testing.T) {
	order := Order{Status: OrderStatusPending}
	assert.True(t, order.CanUserCancel())

	for _, status := range []string{
		OrderStatusProcessing, OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled,
	} {
		order.Status = status
		assert.False(t, order.CanUserCancel(), status)
	}
}

func TestValidOrderStatus(t *testing.T) {
	assert.True(t, ValidOrderStatus(OrderStatusShipped))
	assert.False(t, ValidOrderStatus("shipped"))
	assert.False(t, ValidOrderStatus("Refunded"))
	assert.False(t, ValidOrderStatus(""))
}

func TestValidPaymentMethod(t *testing.T) {
	assert.True(t, ValidPaymentMethod(PaymentMethodCard))
	assert.True(t, ValidPaymentMethod(PaymentMethodCOD))
	assert.False(t, ValidPaymentMethod("Crypto"))
}
