package repositories

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"github.com/opennotes/backend/internal/app/models"
	"github.com/opennotes/backend/internal/pkg/apperrors"
	"github.com/opennotes/backend/internal/pkg/dberrors"
)

// SubjectRepository persists subjects in the document store
type SubjectRepository struct {
	client *firestore.Client
}

// NewSubjectRepository creates a new SubjectRepository
func NewSubjectRepository(client *firestore.Client) *SubjectRepository {
	return &SubjectRepository{client: client}
}

func (r *SubjectRepository) collection() *firestore.CollectionRef {
	return r.client.Collection(models.SubjectsCollection)
}

// Create inserts a subject and returns its store-assigned document ID
func (r *SubjectRepository) Create(ctx context.Context, subject *models.Subject) (string, error) {
	ref, _, err := r.collection().Add(ctx, subject)
	if err != nil {
		return "", fmt.Errorf("insert subject: %w", err)
	}
	return ref.ID, nil
}

// GetByID fetches a subject by document ID; nil when it does not exist
func (r *SubjectRepository) GetByID(ctx context.Context, id string) (*models.StoredSubject, error) {
	doc, err := r.collection().Doc(id).Get(ctx)
	if err != nil {
		if dberrors.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get subject %s: %w", id, err)
	}
	var subject models.Subject
	if err := doc.DataTo(&subject); err != nil {
		return nil, fmt.Errorf("decode subject %s: %w", id, err)
	}
	return &models.StoredSubject{ID: doc.Ref.ID, Subject: subject}, nil
}

// GetAll lists subjects, restricted to approved ones unless showAll is set
func (r *SubjectRepository) GetAll(ctx context.Context, showAll bool) ([]models.StoredSubject, error) {
	query := r.collection().Query
	if !showAll {
		query = r.collection().Where("is_approved", "==", true)
	}

	iter := query.Documents(ctx)
	defer iter.Stop()

	var subjects []models.StoredSubject
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("stream subjects: %w", err)
		}
		var subject models.Subject
		if err := doc.DataTo(&subject); err != nil {
			return nil, fmt.Errorf("decode subject %s: %w", doc.Ref.ID, err)
		}
		subjects = append(subjects, models.StoredSubject{ID: doc.Ref.ID, Subject: subject})
	}
	return subjects, nil
}

// Approve flips the subject's approval flag to true
func (r *SubjectRepository) Approve(ctx context.Context, id string) error {
	_, err := r.collection().Doc(id).Update(ctx, []firestore.Update{
		{Path: "is_approved", Value: true},
	})
	if err != nil {
		if dberrors.IsNotFound(err) {
			return apperrors.ErrSubjectNotFound
		}
		return fmt.Errorf("approve subject %s: %w", id, err)
	}
	return nil
}

// Delete removes the subject document itself. Cascading its notes is the
// service's job.
func (r *SubjectRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.collection().Doc(id).Delete(ctx); err != nil {
		return fmt.Errorf("delete subject %s: %w", id, err)
	}
	return nil
}
