package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/stride/internal/models"
)

func validCard() *CardDetails {
	return &CardDetails{
		Number: "4242 4242 4242 4242",
		Name:   "J Doe",
		Expiry: "12/27",
		CVC:    "123",
	}
}

func assertFieldError(t *testing.T, err error, field string) {
	t.Helper()
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, field, vErr.Field)
}

func TestValidateCheckoutRequiresAddress(t *testing.T) {
	for _, method := range []string{models.PaymentMethodCard, models.PaymentMethodCOD} {
		err := ValidateCheckoutInput(CheckoutInput{
			PaymentMethod: method,
			PhoneNumber:   "5550001",
			Card:          validCard(),
		}, false)
		assertFieldError(t, err, "shipping_address")
	}
}

func TestValidateCheckoutRejectsUnknownMethod(t *testing.T) {
	err := ValidateCheckoutInput(CheckoutInput{
		PaymentMethod:   "Crypto",
		ShippingAddress: "12 Main St",
	}, false)
	assertFieldError(t, err, "payment_method")
}

func TestValidateCheckoutCODRequiresPhone(t *testing.T) {
	err := ValidateCheckoutInput(CheckoutInput{
		PaymentMethod:   models.PaymentMethodCOD,
		ShippingAddress: "12 Main St",
	}, false)
	assertFieldError(t, err, "phone_number")

	err = ValidateCheckoutInput(CheckoutInput{
		PaymentMethod:   models.PaymentMethodCOD,
		ShippingAddress: "12 Main St",
		PhoneNumber:     "5550001",
	}, false)
	assert.NoError(t, err)
}

func TestValidateCheckoutManualCardChecks(t *testing.T) {
	base := CheckoutInput{
		PaymentMethod:   models.PaymentMethodCard,
		ShippingAddress: "12 Main St",
	}

	err := ValidateCheckoutInput(base, false)
	assertFieldError(t, err, "card")

	short := validCard()
	short.Number = "4242 4242 4242 424"
	in := base
	in.Card = short
	assertFieldError(t, ValidateCheckoutInput(in, false), "card_number")

	letters := validCard()
	letters.Number = "4242 4242 4242 424x"
	in.Card = letters
	assertFieldError(t, ValidateCheckoutInput(in, false), "card_number")

	badExpiry := validCard()
	badExpiry.Expiry = "1227"
	in.Card = badExpiry
	assertFieldError(t, ValidateCheckoutInput(in, false), "card_expiry")

	badCVC := validCard()
	badCVC.CVC = "12"
	in.Card = badCVC
	assertFieldError(t, ValidateCheckoutInput(in, false), "card_cvc")

	in.Card = validCard()
	assert.NoError(t, ValidateCheckoutInput(in, false))
}

func TestValidateCheckoutGatewaySkipsManualCardChecks(t *testing.T) {
	// The gateway validates card fields itself; its rejection surfaces as a
	// payment failure later, not a field error here.
	err := ValidateCheckoutInput(CheckoutInput{
		PaymentMethod:   models.PaymentMethodCard,
		ShippingAddress: "12 Main St",
	}, true)
	assert.NoError(t, err)
}

func TestCheckoutErrorMessages(t *testing.T) {
	assert.Equal(t, `missing asset: "Red Tee" is no longer available`,
		(&CheckoutError{Kind: CheckoutErrMissingAsset, ItemName: "Red Tee"}).Error())
	assert.Equal(t, `stock critical: only 2 of "Red Tee" left`,
		(&CheckoutError{Kind: CheckoutErrStockCritical, ItemName: "Red Tee", Available: 2}).Error())
	assert.Equal(t, "payment failed: card declined",
		(&CheckoutError{Kind: CheckoutErrPayment, Reason: "card declined"}).Error())
	assert.Equal(t, "checkout is currently disabled",
		(&CheckoutError{Kind: CheckoutErrDisabled}).Error())
}
