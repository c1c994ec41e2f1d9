package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/opennotes/backend/internal/app/models"
	"github.com/opennotes/backend/internal/pkg/apperrors"
	"github.com/opennotes/backend/internal/pkg/llm"
	"github.com/opennotes/backend/internal/pkg/logger"
)

const (
	// generalTopic is the sentinel filter meaning "every stored note".
	generalTopic = "general"

	// maxContextChars is the hard cutoff applied to the assembled note
	// text before it goes into the prompt. Not sentence-aware.
	maxContextChars = 30000

	// noNotesAnswer is returned verbatim when no note text matched; the
	// completion service is not called in that case.
	noNotesAnswer = "I couldn't find any notes for this topic. Please upload a PDF first!"

	promptTemplate = `You are a helpful tutor. Answer the question based ONLY on the following notes.
If the answer is not in the notes, say "I don't see that in your notes."

NOTES:
%s

QUESTION:
%s`
)

// ChatService answers questions grounded strictly in stored note text
type ChatService interface {
	Answer(ctx context.Context, question, topicID string) (string, error)
}

// chatServiceImpl implements ChatService
type chatServiceImpl struct {
	notes     NoteStore
	completer llm.Completer
}

// NewChatService creates a new ChatService
func NewChatService(notes NoteStore, completer llm.Completer) ChatService {
	return &chatServiceImpl{
		notes:     notes,
		completer: completer,
	}
}

// Answer selects notes by subject, assembles their extracted text under
// the context budget, and asks the completion service once. The note
// selection ignores approval flags; an empty or "general" topic selects
// every stored note, anything else matches the subject field exactly.
func (s *chatServiceImpl) Answer(ctx context.Context, question, topicID string) (string, error) {
	notes, err := s.selectNotes(ctx, topicID)
	if err != nil {
		return "", apperrors.NewExternalError(apperrors.ErrDocumentStore, err)
	}

	// Notes arrive in the store's document-ID order; that order is stable
	// but otherwise meaningless.
	var sb strings.Builder
	for _, note := range notes {
		if note.ExtractedText == "" {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteString("\n\n")
		}
		sb.WriteString(note.ExtractedText)
	}

	if sb.Len() == 0 {
		logger.Info().Str("topic", topicID).Msg("No note text for topic, returning fallback")
		return noNotesAnswer, nil
	}

	noteText := truncate(sb.String(), maxContextChars)

	prompt := fmt.Sprintf(promptTemplate, noteText, question)

	answer, err := s.completer.Complete(ctx, prompt)
	if err != nil {
		return "", apperrors.NewExternalError(apperrors.ErrCompletionService, err)
	}

	logger.Info().Str("topic", topicID).Int("contextChars", len(noteText)).Msg("Question answered from notes")
	return answer, nil
}

func (s *chatServiceImpl) selectNotes(ctx context.Context, topicID string) ([]models.StoredNote, error) {
	if topicID == "" || topicID == generalTopic {
		return s.notes.GetAll(ctx)
	}
	return s.notes.GetBySubject(ctx, topicID)
}
