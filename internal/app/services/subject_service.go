package services

import (
	"context"
	"time"

	"github.com/opennotes/backend/internal/app/models"
	"github.com/opennotes/backend/internal/app/models/dto"
	"github.com/opennotes/backend/internal/pkg/apperrors"
	"github.com/opennotes/backend/internal/pkg/logger"
)

// SubjectService defines the interface for subject operations
type SubjectService interface {
	Request(ctx context.Context, req *dto.RequestSubjectRequest) error
	GetAll(ctx context.Context, showAll bool) ([]models.StoredSubject, error)
	Delete(ctx context.Context, subjectID string) (int, error)
}

// subjectServiceImpl implements SubjectService
type subjectServiceImpl struct {
	subjects SubjectStore
	notes    NoteStore
}

// NewSubjectService creates a new SubjectService
func NewSubjectService(subjects SubjectStore, notes NoteStore) SubjectService {
	return &subjectServiceImpl{
		subjects: subjects,
		notes:    notes,
	}
}

// Request creates a subject awaiting approval
func (s *subjectServiceImpl) Request(ctx context.Context, req *dto.RequestSubjectRequest) error {
	subject := &models.Subject{
		Title:       req.Title,
		Code:        req.Code,
		Field:       req.Field,
		Description: req.Description,
		Icon:        req.Icon,
		Chapters:    []string{},
		IsApproved:  false,
		UploaderID:  req.UploaderID,
		CreatedAt:   time.Now().UTC(),
	}

	id, err := s.subjects.Create(ctx, subject)
	if err != nil {
		return apperrors.NewExternalError(apperrors.ErrDocumentStore, err)
	}

	logger.Info().Str("subjectId", id).Str("title", subject.Title).Msg("Subject requested")
	return nil
}

// GetAll lists subjects; unapproved ones only show up when showAll is set
func (s *subjectServiceImpl) GetAll(ctx context.Context, showAll bool) ([]models.StoredSubject, error) {
	subjects, err := s.subjects.GetAll(ctx, showAll)
	if err != nil {
		return nil, apperrors.NewExternalError(apperrors.ErrDocumentStore, err)
	}
	return subjects, nil
}

// Delete removes a subject and cascades to every note whose subject field
// equals the subject's stored title. Returns the number of notes removed.
// The match is on the human-readable title, not a stable identifier, so
// renaming a subject would orphan its notes; see DESIGN.md.
func (s *subjectServiceImpl) Delete(ctx context.Context, subjectID string) (int, error) {
	subject, err := s.subjects.GetByID(ctx, subjectID)
	if err != nil {
		return 0, apperrors.NewExternalError(apperrors.ErrDocumentStore, err)
	}
	if subject == nil {
		return 0, apperrors.ErrSubjectNotFound
	}

	deleted, err := s.notes.DeleteBySubject(ctx, subject.Title)
	if err != nil {
		return deleted, apperrors.NewExternalError(apperrors.ErrDocumentStore, err)
	}

	if err := s.subjects.Delete(ctx, subjectID); err != nil {
		return deleted, apperrors.NewExternalError(apperrors.ErrDocumentStore, err)
	}

	logger.Info().Str("subjectId", subjectID).Str("title", subject.Title).Int("deletedNotes", deleted).Msg("Subject deleted with cascade")
	return deleted, nil
}
