package services

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/example/stride/internal/models"
)

// CartStore persists carts for both owner kinds. Every mutation writes the
// full item list back, mirroring the client's whole-cart sync policy.
type CartStore struct {
	db *gorm.DB
}

// NewCartStore constructs a CartStore.
func NewCartStore(db *gorm.DB) *CartStore {
	return &CartStore{db: db}
}

// LoadOrCreate returns the owner's cart with items, creating an empty cart
// on first use.
func (s *CartStore) LoadOrCreate(ctx context.Context, userID *uuid.UUID, guestToken string) (*models.Cart, error) {
	var cart models.Cart
	err := ownerClause(s.db.WithContext(ctx).Preload("Items"), userID, guestToken).First(&cart).Error
	if err == gorm.ErrRecordNotFound {
		cart = models.Cart{UserID: userID}
		if userID == nil {
			cart.GuestToken = &guestToken
		}
		if err := s.db.WithContext(ctx).Create(&cart).Error; err != nil {
			return nil, err
		}
		return &cart, nil
	}
	if err != nil {
		return nil, err
	}
	return &cart, nil
}

// ReplaceItems writes the full item list for a cart, replacing whatever was
// stored before.
func (s *CartStore) ReplaceItems(ctx context.Context, cart *models.Cart, items []models.CartItem) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("cart_id = ?", cart.ID).Delete(&models.CartItem{}).Error; err != nil {
			return err
		}

		for i := range items {
			items[i].BaseModel = models.BaseModel{}
			items[i].CartID = cart.ID
		}
		if len(items) > 0 {
			if err := tx.Create(&items).Error; err != nil {
				return err
			}
		}

		cart.Items = items
		return nil
	})
}

// MergeOnLogin folds the guest cart into the user's cart and deletes the
// guest cart in the same transaction, so a repeated login cannot re-apply
// the same delta.
func (s *CartStore) MergeOnLogin(ctx context.Context, userID uuid.UUID, guestToken string) (*models.Cart, error) {
	userCart, err := s.LoadOrCreate(ctx, &userID, "")
	if err != nil {
		return nil, err
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var guestCart models.Cart
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Preload("Items").
			Where("guest_token = ?", guestToken).
			First(&guestCart).Error
		if err == gorm.ErrRecordNotFound {
			return nil
		}
		if err != nil {
			return err
		}

		merged := MergeCarts(guestCart.Items, userCart.Items)

		if err := tx.Where("cart_id = ?", userCart.ID).Delete(&models.CartItem{}).Error; err != nil {
			return err
		}
		for i := range merged {
			merged[i].BaseModel = models.BaseModel{}
			merged[i].CartID = userCart.ID
		}
		if len(merged) > 0 {
			if err := tx.Create(&merged).Error; err != nil {
				return err
			}
		}
		userCart.Items = merged

		if err := tx.Where("cart_id = ?", guestCart.ID).Delete(&models.CartItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&guestCart).Error
	})
	if err != nil {
		return nil, err
	}
	return userCart, nil
}
