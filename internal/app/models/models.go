package models

import "time"

// Collection names in the document store.
const (
	NotesCollection         = "notes"
	SubjectsCollection      = "subjects"
	UsersCollection         = "users"
	SubscriptionsCollection = "subscriptions"
)

// MaxStoredTextChars bounds the extracted text persisted on a note. The
// cut happens at write time so stored documents and later prompts stay
// bounded.
const MaxStoredTextChars = 100000

// Note is a stored study document: metadata, a public file link,
// extracted text, and an approval gate.
type Note struct {
	Title         string    `firestore:"title" json:"title"`
	Subject       string    `firestore:"subject" json:"subject"`
	Course        string    `firestore:"course,omitempty" json:"course,omitempty"`
	Topic         string    `firestore:"topic,omitempty" json:"topic,omitempty"`
	Tags          []string  `firestore:"tags,omitempty" json:"tags,omitempty"`
	AcademicLevel string    `firestore:"academic_level,omitempty" json:"academic_level,omitempty"`
	Description   string    `firestore:"description,omitempty" json:"description,omitempty"`
	YoutubeURL    string    `firestore:"youtube_url,omitempty" json:"youtube_url,omitempty"`
	FileURL       string    `firestore:"file_url" json:"file_url"`
	UploaderID    string    `firestore:"uploader_id" json:"uploader_id"`
	IsApproved    bool      `firestore:"is_approved" json:"is_approved"`
	ExtractedText string    `firestore:"extracted_text" json:"extracted_text"`
	CreatedAt     time.Time `firestore:"created_at" json:"created_at"`
}

// StoredNote is a note joined with its store-assigned document ID.
type StoredNote struct {
	ID string `json:"id"`
	Note
}

// Subject groups notes under a top-level topic. Requires admin approval
// before it shows up publicly.
type Subject struct {
	Title       string    `firestore:"title" json:"title"`
	Code        string    `firestore:"code" json:"code"`
	Field       string    `firestore:"field" json:"field"`
	Description string    `firestore:"description,omitempty" json:"description,omitempty"`
	Icon        string    `firestore:"icon,omitempty" json:"icon,omitempty"`
	Chapters    []string  `firestore:"chapters" json:"chapters"`
	IsApproved  bool      `firestore:"is_approved" json:"is_approved"`
	UploaderID  string    `firestore:"uploader_id" json:"uploader_id"`
	CreatedAt   time.Time `firestore:"created_at" json:"created_at"`
}

// StoredSubject is a subject joined with its store-assigned document ID.
type StoredSubject struct {
	ID string `json:"id"`
	Subject
}

// Subscription is a per-user snapshot of subject metadata, keyed by the
// subject's document ID under the user's document.
type Subscription struct {
	SubjectID    string    `firestore:"subject_id" json:"subject_id"`
	Title        string    `firestore:"title" json:"title"`
	Code         string    `firestore:"code,omitempty" json:"code,omitempty"`
	Icon         string    `firestore:"icon,omitempty" json:"icon,omitempty"`
	SubscribedAt time.Time `firestore:"subscribed_at" json:"subscribed_at"`
}
