package services

import (
	"context"

	"github.com/opennotes/backend/internal/app/models"
)

// Services defined in this package:
// - NoteService: upload, authoring, listing, deletion, admin stats
// - SubjectService: subject requests, listing, cascade deletion
// - ChatService: context-grounded question answering over stored notes
// - ApprovalService: flips approval flags on notes and subjects
// - SubscriptionService: per-user subject subscriptions

// The store interfaces below are what the services actually need from the
// repositories. The Firestore repositories satisfy them; tests substitute
// in-memory fakes.

// NoteStore is the note persistence surface used by services
type NoteStore interface {
	Create(ctx context.Context, note *models.Note) (string, error)
	GetAll(ctx context.Context) ([]models.StoredNote, error)
	GetByUploader(ctx context.Context, uploaderID string) ([]models.StoredNote, error)
	GetBySubject(ctx context.Context, subject string) ([]models.StoredNote, error)
	Delete(ctx context.Context, id string) error
	Approve(ctx context.Context, id string) error
	DeleteBySubject(ctx context.Context, subject string) (int, error)
}

// SubjectStore is the subject persistence surface used by services
type SubjectStore interface {
	Create(ctx context.Context, subject *models.Subject) (string, error)
	GetByID(ctx context.Context, id string) (*models.StoredSubject, error)
	GetAll(ctx context.Context, showAll bool) ([]models.StoredSubject, error)
	Approve(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}

// SubscriptionStore is the subscription persistence surface used by services
type SubscriptionStore interface {
	Create(ctx context.Context, userID string, sub *models.Subscription) error
	GetByUser(ctx context.Context, userID string) ([]models.Subscription, error)
}
