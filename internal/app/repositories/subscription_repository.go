package repositories

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"github.com/opennotes/backend/internal/app/models"
)

// SubscriptionRepository persists per-user subject subscriptions as a
// subcollection under the user's document, keyed by subject ID.
type SubscriptionRepository struct {
	client *firestore.Client
}

// NewSubscriptionRepository creates a new SubscriptionRepository
func NewSubscriptionRepository(client *firestore.Client) *SubscriptionRepository {
	return &SubscriptionRepository{client: client}
}

func (r *SubscriptionRepository) collection(userID string) *firestore.CollectionRef {
	return r.client.Collection(models.UsersCollection).Doc(userID).Collection(models.SubscriptionsCollection)
}

// Create upserts the subscription record for a subject. Subscribing twice
// overwrites the snapshot rather than erroring.
func (r *SubscriptionRepository) Create(ctx context.Context, userID string, sub *models.Subscription) error {
	if _, err := r.collection(userID).Doc(sub.SubjectID).Set(ctx, sub); err != nil {
		return fmt.Errorf("save subscription %s for user %s: %w", sub.SubjectID, userID, err)
	}
	return nil
}

// GetByUser lists a user's subscriptions in document-ID order
func (r *SubscriptionRepository) GetByUser(ctx context.Context, userID string) ([]models.Subscription, error) {
	iter := r.collection(userID).Documents(ctx)
	defer iter.Stop()

	var subs []models.Subscription
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("stream subscriptions for user %s: %w", userID, err)
		}
		var sub models.Subscription
		if err := doc.DataTo(&sub); err != nil {
			return nil, fmt.Errorf("decode subscription %s: %w", doc.Ref.ID, err)
		}
		subs = append(subs, sub)
	}
	return subs, nil
}
