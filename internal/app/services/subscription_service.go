package services

import (
	"context"
	"time"

	"github.com/opennotes/backend/internal/app/models"
	"github.com/opennotes/backend/internal/app/models/dto"
	"github.com/opennotes/backend/internal/pkg/apperrors"
)

// SubscriptionService defines the interface for subscription operations
type SubscriptionService interface {
	Subscribe(ctx context.Context, req *dto.SubscribeRequest) error
	GetByUser(ctx context.Context, userID string) ([]models.Subscription, error)
}

// subscriptionServiceImpl implements SubscriptionService
type subscriptionServiceImpl struct {
	subscriptions SubscriptionStore
}

// NewSubscriptionService creates a new SubscriptionService
func NewSubscriptionService(subscriptions SubscriptionStore) SubscriptionService {
	return &subscriptionServiceImpl{subscriptions: subscriptions}
}

// Subscribe records the subject snapshot under the user
func (s *subscriptionServiceImpl) Subscribe(ctx context.Context, req *dto.SubscribeRequest) error {
	sub := &models.Subscription{
		SubjectID:    req.SubjectID,
		Title:        req.Title,
		Code:         req.Code,
		Icon:         req.Icon,
		SubscribedAt: time.Now().UTC(),
	}
	if err := s.subscriptions.Create(ctx, req.UserID, sub); err != nil {
		return apperrors.NewExternalError(apperrors.ErrDocumentStore, err)
	}
	return nil
}

// GetByUser lists a user's subscriptions
func (s *subscriptionServiceImpl) GetByUser(ctx context.Context, userID string) ([]models.Subscription, error) {
	subs, err := s.subscriptions.GetByUser(ctx, userID)
	if err != nil {
		return nil, apperrors.NewExternalError(apperrors.ErrDocumentStore, err)
	}
	return subs, nil
}
