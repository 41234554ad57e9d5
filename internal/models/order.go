package models

import (
	"time"

	"github.com/google/uuid"
)

// Order statuses. Admins may set any status; customers may only cancel
// while the order is still pending.
const (
	OrderStatusPending    = "Pending"
	OrderStatusProcessing = "Processing"
	OrderStatusShipped    = "Shipped"
	OrderStatusDelivered  = "Delivered"
	OrderStatusCancelled  = "Cancelled"
)

// Payment methods.
const (
	PaymentMethodCard = "Card"
	PaymentMethodCOD  = "COD"
)

// Payment statuses.
const (
	PaymentStatusPaid    = "Paid"
	PaymentStatusPending = "Pending"
	PaymentStatusFailed  = "Failed"
)

// Order is created once at checkout. Items are frozen snapshots; status is
// the only field mutated afterwards.
type Order struct {
	BaseModel
	UserID          uuid.UUID   `gorm:"type:uuid;index" json:"user_id"`
	User            *User       `json:"user,omitempty"`
	UserName        string      `json:"user_name"`
	Status          string      `json:"status"`
	PaymentMethod   string      `json:"payment_method"`
	PaymentStatus   string      `json:"payment_status"`
	PaymentToken    string      `json:"payment_token,omitempty"`
	Subtotal        float64     `json:"subtotal"`
	DeliveryFee     float64     `json:"delivery_fee"`
	TotalPrice      float64     `json:"total_price"`
	Currency        string      `json:"currency"`
	ShippingAddress string      `json:"shipping_address"`
	PhoneNumber     string      `json:"phone_number,omitempty"`
	PlacedAt        time.Time   `json:"placed_at"`
	Items           []OrderItem `json:"items,omitempty"`
}

// OrderItem freezes a cart line at purchase time.
type OrderItem struct {
	BaseModel
	OrderID         uuid.UUID `gorm:"type:uuid;index" json:"order_id"`
	ProductID       uuid.UUID `gorm:"type:uuid" json:"product_id"`
	Name            string    `json:"name"`
	SelectedSize    string    `json:"selected_size"`
	SelectedColor   *string   `json:"selected_color,omitempty"`
	Quantity        int       `json:"quantity"`
	UnitPrice       float64   `json:"unit_price"`
	DiscountedPrice *float64  `json:"discounted_price,omitempty"`
	LineTotal       float64   `json:"line_total"`
}

// ValidOrderStatus reports whether s is one of the known statuses.
func ValidOrderStatus(s string) bool {
	switch s {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusShipped,
		OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

// CanUserCancel reports whether the owning customer may still cancel.
// Self-service cancellation is only allowed while the order is pending.
func (o *Order) CanUserCancel() bool {
	return o.Status == OrderStatusPending
}

// ValidPaymentMethod reports whether m is a supported payment method.
func ValidPaymentMethod(m string) bool {
	return m == PaymentMethodCard || m == PaymentMethodCOD
}
