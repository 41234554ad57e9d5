package services

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/example/stride/internal/models"
)

// Checkout failure kinds.
const (
	CheckoutErrMissingAsset  = "missing_asset"
	CheckoutErrStockCritical = "stock_critical"
	CheckoutErrPayment       = "payment_failed"
	CheckoutErrDisabled      = "checkout_disabled"
)

// CheckoutError is a business failure from the checkout transaction. The
// whole transaction aborts and the cart is left untouched.
type CheckoutError struct {
	Kind      string
	ItemName  string
	Available int
	Reason    string
}

func (e *CheckoutError) Error() string {
	switch e.Kind {
	case CheckoutErrMissingAsset:
		return fmt.Sprintf("missing asset: %q is no longer available", e.ItemName)
	case CheckoutErrStockCritical:
		return fmt.Sprintf("stock critical: only %d of %q left", e.Available, e.ItemName)
	case CheckoutErrPayment:
		return fmt.Sprintf("payment failed: %s", e.Reason)
	case CheckoutErrDisabled:
		return "checkout is currently disabled"
	}
	return e.Reason
}

// ValidationError points at the offending checkout field. Validation runs
// before any backend interaction.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// CheckoutInput is the shopper's shipping and payment submission.
type CheckoutInput struct {
	PaymentMethod   string       `json:"payment_method"`
	ShippingAddress string       `json:"shipping_address"`
	PhoneNumber     string       `json:"phone_number"`
	Card            *CardDetails `json:"card,omitempty"`
}

// ValidateCheckoutInput enforces the client-side preconditions: address
// always required, phone for COD, and manual card field checks only when no
// hosted gateway will tokenize the card.
func ValidateCheckoutInput(in CheckoutInput, gatewayEnabled bool) error {
	if strings.TrimSpace(in.ShippingAddress) == "" {
		return &ValidationError{Field: "shipping_address", Message: "shipping address is required"}
	}

	if !models.ValidPaymentMethod(in.PaymentMethod) {
		return &ValidationError{Field: "payment_method", Message: "unsupported payment method"}
	}

	if in.PaymentMethod == models.PaymentMethodCOD {
		if strings.TrimSpace(in.PhoneNumber) == "" {
			return &ValidationError{Field: "phone_number", Message: "phone number is required for cash on delivery"}
		}
		return nil
	}

	// Card path. With a gateway configured the processor validates the card;
	// the manual-entry fallback is checked here.
	if gatewayEnabled {
		return nil
	}

	if in.Card == nil {
		return &ValidationError{Field: "card", Message: "card details are required"}
	}

	number := strings.ReplaceAll(in.Card.Number, " ", "")
	if len(number) != 16 || !allDigits(number) {
		return &ValidationError{Field: "card_number", Message: "card number must be 16 digits"}
	}
	if !strings.Contains(in.Card.Expiry, "/") || len(in.Card.Expiry) < 5 {
		return &ValidationError{Field: "card_expiry", Message: "use MM/YY format"}
	}
	if len(in.Card.CVC) < 3 {
		return &ValidationError{Field: "card_cvc", Message: "CVC incomplete"}
	}

	return nil
}

func allDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// CheckoutService converts a cart into a durable order without overselling.
type CheckoutService struct {
	db       *gorm.DB
	settings *SettingsCache
	gateway  Tokenizer
	notifier *AdminNotifier
}

// NewCheckoutService constructs a CheckoutService.
func NewCheckoutService(db *gorm.DB, settings *SettingsCache, gateway Tokenizer, notifier *AdminNotifier) *CheckoutService {
	return &CheckoutService{db: db, settings: settings, gateway: gateway, notifier: notifier}
}

// PlaceOrder validates the submission, optionally tokenizes the card, then
// runs the all-or-nothing stock-check-and-decrement plus order creation.
// On success the cart is cleared in the same transaction; on any failure
// the cart is untouched so the shopper can adjust and resubmit.
func (s *CheckoutService) PlaceOrder(ctx context.Context, userID uuid.UUID, userName string, in CheckoutInput) (*models.Order, error) {
	settings, err := s.settings.Get(ctx)
	if err != nil {
		return nil, err
	}

	if !settings.CheckoutPossible() {
		return nil, &CheckoutError{Kind: CheckoutErrDisabled}
	}
	if in.PaymentMethod == models.PaymentMethodCard && !settings.EnableCardGateway && !settings.EnableCOD {
		return nil, &CheckoutError{Kind: CheckoutErrDisabled}
	}

	gatewayEnabled := settings.EnableCardGateway && settings.GatewaySecretKey != ""
	if err := ValidateCheckoutInput(in, gatewayEnabled); err != nil {
		return nil, err
	}

	var cart models.Cart
	if err := s.db.WithContext(ctx).Preload("Items").
		First(&cart, "user_id = ?", userID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, &ValidationError{Field: "cart", Message: "cart is empty"}
		}
		return nil, err
	}
	if len(cart.Items) == 0 {
		return nil, &ValidationError{Field: "cart", Message: "cart is empty"}
	}

	paymentToken := ""
	paymentStatus := models.PaymentStatusPending
	if in.PaymentMethod == models.PaymentMethodCard {
		if gatewayEnabled {
			if in.Card == nil {
				return nil, &ValidationError{Field: "card", Message: "card details are required"}
			}
			token, err := s.gateway.Tokenize(ctx, settings.GatewaySecretKey, *in.Card)
			if err != nil {
				if gwErr, ok := err.(*GatewayError); ok {
					return nil, &CheckoutError{Kind: CheckoutErrPayment, Reason: gwErr.Message}
				}
				return nil, &CheckoutError{Kind: CheckoutErrPayment, Reason: "payment gateway unavailable"}
			}
			paymentToken = token
		}
		// A token or an accepted manual entry counts as paid.
		paymentStatus = models.PaymentStatusPaid
	}

	order := models.Order{
		UserID:          userID,
		UserName:        userName,
		Status:          models.OrderStatusPending,
		PaymentMethod:   in.PaymentMethod,
		PaymentStatus:   paymentStatus,
		PaymentToken:    paymentToken,
		Currency:        settings.Currency,
		DeliveryFee:     settings.DeliveryCharges,
		ShippingAddress: strings.TrimSpace(in.ShippingAddress),
		PhoneNumber:     strings.TrimSpace(in.PhoneNumber),
		PlacedAt:        time.Now(),
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var subtotal float64
		for _, item := range cart.Items {
			// Fresh stock read under a row lock, never the client snapshot.
			// A losing concurrent submitter blocks here and then sees the
			// decremented quantity.
			var product models.Product
			if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
				First(&product, "id = ?", item.ProductID).Error; err != nil {
				if err == gorm.ErrRecordNotFound {
					return &CheckoutError{Kind: CheckoutErrMissingAsset, ItemName: item.Name}
				}
				return err
			}

			if product.Stock < item.Quantity {
				return &CheckoutError{
					Kind:      CheckoutErrStockCritical,
					ItemName:  product.Name,
					Available: product.Stock,
				}
			}

			if err := tx.Model(&models.Product{}).
				Where("id = ?", product.ID).
				Update("stock", product.Stock-item.Quantity).Error; err != nil {
				return err
			}

			lineTotal := item.EffectiveUnitPrice() * float64(item.Quantity)
			subtotal += lineTotal
			order.Items = append(order.Items, models.OrderItem{
				ProductID:       item.ProductID,
				Name:            item.Name,
				SelectedSize:    item.SelectedSize,
				SelectedColor:   item.SelectedColor,
				Quantity:        item.Quantity,
				UnitPrice:       item.UnitPrice,
				DiscountedPrice: item.DiscountedPrice,
				LineTotal:       lineTotal,
			})
		}

		order.Subtotal = subtotal
		order.TotalPrice = subtotal + order.DeliveryFee

		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		return tx.Where("cart_id = ?", cart.ID).Delete(&models.CartItem{}).Error
	})
	if err != nil {
		return nil, err
	}

	if s.notifier != nil {
		go s.notifier.NotifyNewOrder(order)
	}

	log.Printf("[Checkout] order %s placed by %s (%s, %s)", order.ID, userID, order.PaymentMethod, order.PaymentStatus)
	return &order, nil
}
