package services

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/example/stride/internal/models"
)

// ToggleID returns the set with id added when absent or removed when
// present. Order of the remaining ids is preserved; membership is what
// matters.
func ToggleID(ids []string, id string) []string {
	for i, existing := range ids {
		if existing == id {
			return append(append([]string{}, ids[:i]...), ids[i+1:]...)
		}
	}
	return append(append([]string{}, ids...), id)
}

// WishlistService persists per-owner wishlists.
type WishlistService struct {
	db *gorm.DB
}

// NewWishlistService constructs a WishlistService.
func NewWishlistService(db *gorm.DB) *WishlistService {
	return &WishlistService{db: db}
}

// ownerClause scopes queries to either the user or the guest token.
func ownerClause(tx *gorm.DB, userID *uuid.UUID, guestToken string) *gorm.DB {
	if userID != nil {
		return tx.Where("user_id = ?", *userID)
	}
	return tx.Where("guest_token = ?", guestToken)
}

// Get returns the owner's wishlist, creating an empty one on first use.
func (s *WishlistService) Get(ctx context.Context, userID *uuid.UUID, guestToken string) (*models.Wishlist, error) {
	var wl models.Wishlist
	err := ownerClause(s.db.WithContext(ctx), userID, guestToken).First(&wl).Error
	if err == gorm.ErrRecordNotFound {
		wl = models.Wishlist{UserID: userID, ProductIDs: []string{}}
		if userID == nil {
			wl.GuestToken = &guestToken
		}
		if err := s.db.WithContext(ctx).Create(&wl).Error; err != nil {
			return nil, err
		}
		return &wl, nil
	}
	if err != nil {
		return nil, err
	}
	return &wl, nil
}

// Toggle flips membership of productID in the owner's wishlist. The row is
// read under an update lock so rapid repeated toggles serialize instead of
// losing updates.
func (s *WishlistService) Toggle(ctx context.Context, userID *uuid.UUID, guestToken string, productID string) ([]string, error) {
	if _, err := s.Get(ctx, userID, guestToken); err != nil {
		return nil, err
	}

	var result []string
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var wl models.Wishlist
		if err := ownerClause(tx.Clauses(clause.Locking{Strength: "UPDATE"}), userID, guestToken).
			First(&wl).Error; err != nil {
			return err
		}

		wl.ProductIDs = ToggleID(wl.ProductIDs, productID)
		result = wl.ProductIDs
		return tx.Save(&wl).Error
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// Merge folds a guest wishlist into the user's on login (set union) and
// deletes the guest row.
func (s *WishlistService) Merge(ctx context.Context, userID uuid.UUID, guestToken string) ([]string, error) {
	userWL, err := s.Get(ctx, &userID, "")
	if err != nil {
		return nil, err
	}

	var result []string
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var guestWL models.Wishlist
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("guest_token = ?", guestToken).First(&guestWL).Error
		if err == gorm.ErrRecordNotFound {
			result = userWL.ProductIDs
			return nil
		}
		if err != nil {
			return err
		}

		merged := append([]string{}, userWL.ProductIDs...)
		for _, id := range guestWL.ProductIDs {
			present := false
			for _, existing := range merged {
				if existing == id {
					present = true
					break
				}
			}
			if !present {
				merged = append(merged, id)
			}
		}
		result = merged

		if err := tx.Model(&models.Wishlist{}).
			Where("id = ?", userWL.ID).
			Update("product_ids", pqArray(merged)).Error; err != nil {
			return err
		}
		return tx.Delete(&guestWL).Error
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func pqArray(ids []string) interface{} {
	return models.Wishlist{ProductIDs: ids}.ProductIDs
}
