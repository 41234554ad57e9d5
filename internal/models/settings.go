package models

// SiteSettings stores storefront configuration managed via admin panel.
// There should be only one row (singleton pattern).
type SiteSettings struct {
	BaseModel
	// Social links
	Facebook  string `json:"facebook"`
	Instagram string `json:"instagram"`
	Twitter   string `json:"twitter"`
	Youtube   string `json:"youtube"`

	// Payment rails. Checkout degrades gracefully when both are off.
	EnableCardGateway    bool   `json:"enable_card_gateway"`
	EnableCOD            bool   `json:"enable_cod"`
	GatewayPublishableKey string `json:"gateway_publishable_key"`
	GatewaySecretKey      string `json:"-"`

	Currency        string  `gorm:"default:USD" json:"currency"`
	DeliveryCharges float64 `json:"delivery_charges"`

	PromotionalAds      []PromotionalAd      `gorm:"-" json:"promotional_ads,omitempty"`
	LocalPaymentMethods []LocalPaymentMethod `gorm:"-" json:"local_payment_methods,omitempty"`
}

// CheckoutPossible reports whether at least one payment rail is enabled.
func (s *SiteSettings) CheckoutPossible() bool {
	return s.EnableCardGateway || s.EnableCOD
}

// PromotionalAd is a clickable promo slot shown on the storefront.
type PromotionalAd struct {
	BaseModel
	ImageURL string `json:"image_url"`
	LinkURL  string `json:"link_url"`
	Active   bool   `json:"active"`
}

// LocalPaymentMethod is a manually settled payment account (e.g. a mobile
// wallet) the shop advertises alongside card and COD.
type LocalPaymentMethod struct {
	BaseModel
	Name          string `json:"name"`
	AccountName   string `json:"account_name"`
	AccountNumber string `json:"account_number"`
	Instructions  string `json:"instructions,omitempty"`
	Active        bool   `json:"active"`
}

// Banner is a storefront hero image.
type Banner struct {
	BaseModel
	Title    string `json:"title,omitempty"`
	ImageURL string `json:"image_url"`
}
