package services

import (
	"sync"

	"github.com/google/uuid"

	"github.com/example/stride/internal/models"
)

// ReviewHub fans review snapshots out to live product-detail views. Each
// subscription is a channel of full snapshots plus a cancel func the
// consumer must call on teardown; a write to a product's reviews publishes
// a fresh snapshot to every subscriber of that product.
type ReviewHub struct {
	mu   sync.Mutex
	subs map[uuid.UUID]map[chan []models.Review]struct{}
}

// NewReviewHub constructs an empty hub.
func NewReviewHub() *ReviewHub {
	return &ReviewHub{subs: map[uuid.UUID]map[chan []models.Review]struct{}{}}
}

// Subscribe registers a listener for one product's review snapshots.
// The returned cancel func is idempotent and closes the channel.
func (h *ReviewHub) Subscribe(productID uuid.UUID) (<-chan []models.Review, func()) {
	ch := make(chan []models.Review, 4)

	h.mu.Lock()
	if h.subs[productID] == nil {
		h.subs[productID] = map[chan []models.Review]struct{}{}
	}
	h.subs[productID][ch] = struct{}{}
	h.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			h.mu.Lock()
			if set, ok := h.subs[productID]; ok {
				delete(set, ch)
				if len(set) == 0 {
					delete(h.subs, productID)
				}
			}
			h.mu.Unlock()
			close(ch)
		})
	}

	return ch, cancel
}

// Publish delivers a snapshot to all of the product's subscribers. Slow
// consumers with a full buffer miss this snapshot rather than block the
// writer; a later publish catches them up.
func (h *ReviewHub) Publish(productID uuid.UUID, reviews []models.Review) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for ch := range h.subs[productID] {
		select {
		case ch <- reviews:
		default:
		}
	}
}

// SubscriberCount reports how many listeners a product currently has.
func (h *ReviewHub) SubscriberCount(productID uuid.UUID) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs[productID])
}
