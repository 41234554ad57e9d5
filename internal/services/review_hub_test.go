package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/stride/internal/models"
)

func TestReviewHubDeliversSnapshot(t *testing.T) {
	hub := NewReviewHub()
	productID := uuid.New()

	ch, cancel := hub.Subscribe(productID)
	defer cancel()

	snapshot := []models.Review{{Rating: 5, Comment: "great fit"}}
	hub.Publish(productID, snapshot)

	got := <-ch
	require.Len(t, got, 1)
	assert.Equal(t, "great fit", got[0].Comment)
}

func TestReviewHubScopesByProduct(t *testing.T) {
	hub := NewReviewHub()
	a := uuid.New()
	b := uuid.New()

	chA, cancelA := hub.Subscribe(a)
	defer cancelA()
	chB, cancelB := hub.Subscribe(b)
	defer cancelB()

	hub.Publish(a, []models.Review{{Rating: 4}})

	assert.Len(t, <-chA, 1)
	select {
	case <-chB:
		t.Fatal("subscriber of another product received the snapshot")
	default:
	}
}

func TestReviewHubCancelIsIdempotent(t *testing.T) {
	hub := NewReviewHub()
	productID := uuid.New()

	_, cancel := hub.Subscribe(productID)
	assert.Equal(t, 1, hub.SubscriberCount(productID))

	cancel()
	cancel()
	assert.Equal(t, 0, hub.SubscriberCount(productID))
}

func TestReviewHubPublishAfterCancelDoesNotPanic(t *testing.T) {
	hub := NewReviewHub()
	productID := uuid.New()

	_, cancel := hub.Subscribe(productID)
	cancel()

	hub.Publish(productID, []models.Review{{Rating: 3}})
}

func TestReviewHubSlowConsumerDoesNotBlockPublish(t *testing.T) {
	hub := NewReviewHub()
	productID := uuid.New()

	ch, cancel := hub.Subscribe(productID)
	defer cancel()

	// Overfill the subscription buffer; extra publishes are dropped.
	for i := 0; i < 10; i++ {
		hub.Publish(productID, []models.Review{{Rating: i}})
	}

	assert.Equal(t, 0, (<-ch)[0].Rating)
}
