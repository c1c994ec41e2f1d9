package services

import (
	"context"

	"github.com/opennotes/backend/internal/pkg/apperrors"
	"github.com/opennotes/backend/internal/pkg/logger"
)

// Approvable entity kinds. The approve endpoint dispatches over this
// closed set rather than writing to an arbitrary caller-named collection.
const (
	ApprovalKindNotes    = "notes"
	ApprovalKindSubjects = "subjects"
)

// ApprovalService flips approval flags on approvable entities
type ApprovalService interface {
	Approve(ctx context.Context, kind, itemID string) error
}

// approvalServiceImpl implements ApprovalService
type approvalServiceImpl struct {
	notes    NoteStore
	subjects SubjectStore
}

// NewApprovalService creates a new ApprovalService
func NewApprovalService(notes NoteStore, subjects SubjectStore) ApprovalService {
	return &approvalServiceImpl{
		notes:    notes,
		subjects: subjects,
	}
}

// Approve sets is_approved on the named item. Unknown kinds are rejected
// before any store access.
func (s *approvalServiceImpl) Approve(ctx context.Context, kind, itemID string) error {
	var err error
	switch kind {
	case ApprovalKindNotes:
		err = s.notes.Approve(ctx, itemID)
	case ApprovalKindSubjects:
		err = s.subjects.Approve(ctx, itemID)
	default:
		return apperrors.ErrInvalidApprovalKind
	}
	if err != nil {
		return err
	}

	logger.Info().Str("kind", kind).Str("itemId", itemID).Msg("Item approved")
	return nil
}
