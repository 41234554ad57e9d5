package models

import (
	"github.com/google/uuid"
)

// SupportPage is admin-editable static content (FAQ, shipping policy, ...).
type SupportPage struct {
	BaseModel
	Slug    string `gorm:"uniqueIndex" json:"slug"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

// ContactMessage is a message submitted through the contact form.
type ContactMessage struct {
	BaseModel
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// UserAddress is a saved shipping address.
type UserAddress struct {
	BaseModel
	UserID      uuid.UUID `gorm:"type:uuid;index" json:"user_id"`
	Label       string    `json:"label"`
	FullAddress string    `json:"full_address"`
	IsDefault   bool      `json:"is_default"`
}
