package models

import (
	"time"
)

// User roles.
const (
	RoleUser  = "USER"
	RoleAdmin = "ADMIN"
)

// User represents a customer or administrator account.
type User struct {
	BaseModel
	Name         string        `json:"name"`
	Email        string        `gorm:"uniqueIndex" json:"email"`
	PasswordHash string        `json:"-"`
	Role         string        `gorm:"default:USER" json:"role"`
	IsVerified   bool          `json:"is_verified"`
	IsBlocked    bool          `json:"is_blocked"`
	Addresses    []UserAddress `json:"addresses,omitempty"`
	Orders       []Order       `json:"orders,omitempty"`
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// EmailVerification keeps track of verification tokens sent to users.
type EmailVerification struct {
	BaseModel
	Email     string     `gorm:"index" json:"email"`
	Token     string     `gorm:"index" json:"token"`
	ExpiresAt time.Time  `json:"expires_at"`
	Verified  bool       `json:"verified"`
	UsedAt    *time.Time `json:"used_at"`
}

// PasswordResetToken stores one-shot password reset tokens.
type PasswordResetToken struct {
	BaseModel
	Email     string     `gorm:"index" json:"email"`
	Token     string     `gorm:"index" json:"token"`
	Code      string     `json:"-"`
	ExpiresAt time.Time  `json:"expires_at"`
	Verified  bool       `json:"verified"`
	UsedAt    *time.Time `json:"used_at"`
}
