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

// firestoreBatchLimit is the store's documented ceiling for a single
// atomic write batch.
const firestoreBatchLimit = 500

// NoteRepository persists notes in the document store
type NoteRepository struct {
	client *firestore.Client
}

// NewNoteRepository creates a new NoteRepository
func NewNoteRepository(client *firestore.Client) *NoteRepository {
	return &NoteRepository{client: client}
}

func (r *NoteRepository) collection() *firestore.CollectionRef {
	return r.client.Collection(models.NotesCollection)
}

// Create inserts a note and returns its store-assigned document ID
func (r *NoteRepository) Create(ctx context.Context, note *models.Note) (string, error) {
	ref, _, err := r.collection().Add(ctx, note)
	if err != nil {
		return "", fmt.Errorf("insert note: %w", err)
	}
	return ref.ID, nil
}

// GetAll returns every stored note, approved or not, in document-ID order
func (r *NoteRepository) GetAll(ctx context.Context) ([]models.StoredNote, error) {
	return r.query(ctx, r.collection().Query)
}

// GetByUploader returns the notes a user uploaded, in document-ID order
func (r *NoteRepository) GetByUploader(ctx context.Context, uploaderID string) ([]models.StoredNote, error) {
	return r.query(ctx, r.collection().Where("uploader_id", "==", uploaderID))
}

// GetBySubject returns notes whose subject field equals the given title
// exactly. No approval filter is applied.
func (r *NoteRepository) GetBySubject(ctx context.Context, subject string) ([]models.StoredNote, error) {
	return r.query(ctx, r.collection().Where("subject", "==", subject))
}

// Delete removes a single note document. The blob it points at is kept.
func (r *NoteRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.collection().Doc(id).Delete(ctx); err != nil {
		return fmt.Errorf("delete note %s: %w", id, err)
	}
	return nil
}

// Approve flips the note's approval flag to true
func (r *NoteRepository) Approve(ctx context.Context, id string) error {
	_, err := r.collection().Doc(id).Update(ctx, []firestore.Update{
		{Path: "is_approved", Value: true},
	})
	if err != nil {
		if dberrors.IsNotFound(err) {
			return apperrors.ErrNoteNotFound
		}
		return fmt.Errorf("approve note %s: %w", id, err)
	}
	return nil
}

// DeleteBySubject removes every note whose subject equals the given
// title, in atomic batches of at most firestoreBatchLimit writes, and
// returns the number removed.
func (r *NoteRepository) DeleteBySubject(ctx context.Context, subject string) (int, error) {
	iter := r.collection().Where("subject", "==", subject).Documents(ctx)
	defer iter.Stop()

	var refs []*firestore.DocumentRef
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return 0, fmt.Errorf("scan notes for subject %q: %w", subject, err)
		}
		refs = append(refs, doc.Ref)
	}

	deleted := 0
	for len(refs) > 0 {
		chunk := refs
		if len(chunk) > firestoreBatchLimit {
			chunk = chunk[:firestoreBatchLimit]
		}
		batch := r.client.Batch()
		for _, ref := range chunk {
			batch.Delete(ref)
		}
		if _, err := batch.Commit(ctx); err != nil {
			return deleted, fmt.Errorf("batch delete notes for subject %q: %w", subject, err)
		}
		deleted += len(chunk)
		refs = refs[len(chunk):]
	}
	return deleted, nil
}

// query streams the documents matched by q. Without an explicit OrderBy
// the store returns documents in document-ID order; callers rely on that
// being stable, nothing more.
func (r *NoteRepository) query(ctx context.Context, q firestore.Query) ([]models.StoredNote, error) {
	iter := q.Documents(ctx)
	defer iter.Stop()

	var notes []models.StoredNote
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("stream notes: %w", err)
		}
		var note models.Note
		if err := doc.DataTo(&note); err != nil {
			return nil, fmt.Errorf("decode note %s: %w", doc.Ref.ID, err)
		}
		notes = append(notes, models.StoredNote{ID: doc.Ref.ID, Note: note})
	}
	return notes, nil
}
