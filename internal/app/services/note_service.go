package services

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/opennotes/backend/internal/app/models"
	"github.com/opennotes/backend/internal/app/models/dto"
	"github.com/opennotes/backend/internal/pkg/apperrors"
	"github.com/opennotes/backend/internal/pkg/blobstore"
	"github.com/opennotes/backend/internal/pkg/extract"
	"github.com/opennotes/backend/internal/pkg/logger"
	"github.com/opennotes/backend/internal/pkg/pdfgen"
)

// NoteService defines the interface for note operations
type NoteService interface {
	Upload(ctx context.Context, form *dto.UploadNoteForm, file *multipart.FileHeader) error
	CreateAuthored(ctx context.Context, req *dto.CreateNoteRequest) error
	GetByUploader(ctx context.Context, uploaderID string) ([]models.StoredNote, error)
	Delete(ctx context.Context, noteID string) error
	AdminStats(ctx context.Context) (*dto.AdminStatsResponse, error)
}

// noteServiceImpl implements NoteService
type noteServiceImpl struct {
	notes NoteStore
	blobs blobstore.Uploader
}

// NewNoteService creates a new NoteService
func NewNoteService(notes NoteStore, blobs blobstore.Uploader) NoteService {
	return &noteServiceImpl{
		notes: notes,
		blobs: blobs,
	}
}

// Upload stores an uploaded document: blob upload with a public link,
// best-effort text extraction, then a document-store insert. New notes
// always start unapproved.
func (s *noteServiceImpl) Upload(ctx context.Context, form *dto.UploadNoteForm, file *multipart.FileHeader) error {
	data, err := bufferUpload(file)
	if err != nil {
		return err
	}

	objectName := uuid.New().String() + filepath.Ext(file.Filename)
	fileURL, err := s.blobs.Upload(ctx, objectName, file.Header.Get("Content-Type"), bytes.NewReader(data))
	if err != nil {
		return apperrors.NewExternalError(apperrors.ErrBlobStore, err)
	}

	text := extract.Text(data, file.Filename)

	note := &models.Note{
		Title:         form.Title,
		Subject:       form.Subject,
		Course:        form.Course,
		Topic:         form.Topic,
		Tags:          splitTags(form.Tags),
		AcademicLevel: form.AcademicLevel,
		Description:   form.Description,
		YoutubeURL:    form.YoutubeURL,
		FileURL:       fileURL,
		UploaderID:    form.UploaderID,
		IsApproved:    false,
		ExtractedText: truncate(text, models.MaxStoredTextChars),
		CreatedAt:     time.Now().UTC(),
	}

	// A store failure here leaves the uploaded blob orphaned; there is no
	// cross-store compensation.
	id, err := s.notes.Create(ctx, note)
	if err != nil {
		return apperrors.NewExternalError(apperrors.ErrDocumentStore, err)
	}

	logger.Info().Str("noteId", id).Str("subject", note.Subject).Int("extractedChars", len(note.ExtractedText)).Msg("Note uploaded")
	return nil
}

// CreateAuthored stores a note written directly online. The content is
// rendered to a PDF so authored notes display like uploaded ones; the raw
// content itself becomes the extracted text.
func (s *noteServiceImpl) CreateAuthored(ctx context.Context, req *dto.CreateNoteRequest) error {
	rendered, err := pdfgen.Render(req.Title, req.Content)
	if err != nil {
		return fmt.Errorf("render authored note: %w", err)
	}

	objectName := uuid.New().String() + ".pdf"
	fileURL, err := s.blobs.Upload(ctx, objectName, "application/pdf", bytes.NewReader(rendered))
	if err != nil {
		return apperrors.NewExternalError(apperrors.ErrBlobStore, err)
	}

	note := &models.Note{
		Title:         req.Title,
		Subject:       req.Subject,
		Course:        req.Course,
		Topic:         req.Topic,
		Tags:          splitTags(req.Tags),
		AcademicLevel: req.AcademicLevel,
		FileURL:       fileURL,
		UploaderID:    req.UploaderID,
		IsApproved:    false,
		ExtractedText: truncate(req.Content, models.MaxStoredTextChars),
		CreatedAt:     time.Now().UTC(),
	}

	id, err := s.notes.Create(ctx, note)
	if err != nil {
		return apperrors.NewExternalError(apperrors.ErrDocumentStore, err)
	}

	logger.Info().Str("noteId", id).Str("subject", note.Subject).Msg("Authored note created")
	return nil
}

// GetByUploader lists a user's notes with their document IDs attached
func (s *noteServiceImpl) GetByUploader(ctx context.Context, uploaderID string) ([]models.StoredNote, error) {
	notes, err := s.notes.GetByUploader(ctx, uploaderID)
	if err != nil {
		return nil, apperrors.NewExternalError(apperrors.ErrDocumentStore, err)
	}
	return notes, nil
}

// Delete removes one note document. The blob it references stays behind.
func (s *noteServiceImpl) Delete(ctx context.Context, noteID string) error {
	if err := s.notes.Delete(ctx, noteID); err != nil {
		return apperrors.NewExternalError(apperrors.ErrDocumentStore, err)
	}
	return nil
}

// AdminStats returns an unfiltered dump of every stored note
func (s *noteServiceImpl) AdminStats(ctx context.Context) (*dto.AdminStatsResponse, error) {
	notes, err := s.notes.GetAll(ctx)
	if err != nil {
		return nil, apperrors.NewExternalError(apperrors.ErrDocumentStore, err)
	}
	return &dto.AdminStatsResponse{
		TotalNotes: len(notes),
		AllNotes:   notes,
	}, nil
}

// bufferUpload copies the multipart part through a temp file and returns
// its bytes. The temp file is removed on every exit path.
func bufferUpload(file *multipart.FileHeader) ([]byte, error) {
	src, err := file.Open()
	if err != nil {
		return nil, fmt.Errorf("open uploaded file: %w", err)
	}
	defer src.Close()

	tmp, err := os.CreateTemp("", "opennotes-upload-*")
	if err != nil {
		return nil, fmt.Errorf("create temp upload buffer: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := io.Copy(tmp, src); err != nil {
		tmp.Close()
		return nil, fmt.Errorf("buffer uploaded file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return nil, fmt.Errorf("flush temp upload buffer: %w", err)
	}

	data, err := os.ReadFile(tmpPath)
	if err != nil {
		return nil, fmt.Errorf("read temp upload buffer: %w", err)
	}
	return data, nil
}

// splitTags turns a comma-separated form value into a trimmed list
func splitTags(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	var tags []string
	for _, tag := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(tag); trimmed != "" {
			tags = append(tags, trimmed)
		}
	}
	return tags
}

// truncate cuts s to at most n bytes, backing the cut off to the nearest
// rune boundary so the result stays valid UTF-8.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}
