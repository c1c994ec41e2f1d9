package services

import (
	"bytes"
	"context"
	"errors"
	"mime/multipart"
	"reflect"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/opennotes/backend/internal/app/models"
	"github.com/opennotes/backend/internal/app/models/dto"
	"github.com/opennotes/backend/internal/pkg/apperrors"
)

func makeFileHeader(t *testing.T, filename string, data []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("file", filename)
	if err != nil {
		t.Fatalf("CreateFormFile: %v", err)
	}
	if _, err := part.Write(data); err != nil {
		t.Fatalf("write part: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}

	form, err := multipart.NewReader(&buf, w.Boundary()).ReadForm(32 << 20)
	if err != nil {
		t.Fatalf("ReadForm: %v", err)
	}
	t.Cleanup(func() { form.RemoveAll() })
	return form.File["file"][0]
}

func TestNoteUpload(t *testing.T) {
	store := &fakeNoteStore{}
	blobs := newFakeUploader()
	svc := NewNoteService(store, blobs)

	form := &dto.UploadNoteForm{
		Title:      "Kinematics",
		Subject:    "Physics",
		Course:     "PHY101",
		Topic:      "motion",
		Tags:       " velocity, acceleration ,,",
		UploaderID: "user-1",
	}
	file := makeFileHeader(t, "notes.txt", []byte("velocity is displacement over time"))

	if err := svc.Upload(context.Background(), form, file); err != nil {
		t.Fatalf("Upload returned error: %v", err)
	}

	if len(store.notes) != 1 {
		t.Fatalf("stored %d notes, want 1", len(store.notes))
	}
	note := store.notes[0]

	if note.IsApproved {
		t.Error("uploaded note must start unapproved")
	}
	if note.ExtractedText != "velocity is displacement over time" {
		t.Errorf("ExtractedText = %q, want plain file contents", note.ExtractedText)
	}
	if want := []string{"velocity", "acceleration"}; !reflect.DeepEqual(note.Tags, want) {
		t.Errorf("Tags = %v, want %v", note.Tags, want)
	}
	if !strings.HasPrefix(note.FileURL, "https://storage.googleapis.com/test-bucket/") {
		t.Errorf("FileURL = %q, want blob store URL", note.FileURL)
	}
	if !strings.HasSuffix(note.FileURL, ".txt") {
		t.Errorf("FileURL = %q, want original extension preserved", note.FileURL)
	}
	if note.CreatedAt.IsZero() {
		t.Error("CreatedAt not set")
	}
	if len(blobs.objects) != 1 {
		t.Fatalf("uploaded %d blobs, want 1", len(blobs.objects))
	}
}

func TestNoteUploadTruncatesExtractedText(t *testing.T) {
	store := &fakeNoteStore{}
	svc := NewNoteService(store, newFakeUploader())

	form := &dto.UploadNoteForm{Title: "Big", Subject: "Physics", UploaderID: "user-1"}
	file := makeFileHeader(t, "big.txt", bytes.Repeat([]byte("x"), models.MaxStoredTextChars+5000))

	if err := svc.Upload(context.Background(), form, file); err != nil {
		t.Fatalf("Upload returned error: %v", err)
	}
	if got := len(store.notes[0].ExtractedText); got != models.MaxStoredTextChars {
		t.Fatalf("ExtractedText length = %d, want %d", got, models.MaxStoredTextChars)
	}
}

func TestNoteUploadTruncationKeepsValidUTF8(t *testing.T) {
	store := &fakeNoteStore{}
	svc := NewNoteService(store, newFakeUploader())

	// A multi-byte rune straddling the cap must be dropped whole, not
	// left as a dangling lead byte.
	content := strings.Repeat("a", models.MaxStoredTextChars-1) + "€"
	form := &dto.UploadNoteForm{Title: "Big", Subject: "Physics", UploaderID: "user-1"}
	file := makeFileHeader(t, "big.txt", []byte(content))

	if err := svc.Upload(context.Background(), form, file); err != nil {
		t.Fatalf("Upload returned error: %v", err)
	}
	stored := store.notes[0].ExtractedText
	if !utf8.ValidString(stored) {
		t.Fatal("stored text contains invalid UTF-8")
	}
	if stored != strings.Repeat("a", models.MaxStoredTextChars-1) {
		t.Fatalf("stored text length = %d, want cut at the rune boundary", len(stored))
	}
}

func TestTruncateRuneBoundary(t *testing.T) {
	tests := []struct {
		name string
		s    string
		n    int
		want string
	}{
		{"short string untouched", "abc", 10, "abc"},
		{"ascii cut exact", "abcdef", 3, "abc"},
		{"euro straddles cut", "ab€", 3, "ab"},
		{"euro straddles cut mid-rune", "ab€", 4, "ab"},
		{"euro fits", "ab€", 5, "ab€"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := truncate(tt.s, tt.n)
			if got != tt.want {
				t.Fatalf("truncate(%q, %d) = %q, want %q", tt.s, tt.n, got, tt.want)
			}
			if !utf8.ValidString(got) {
				t.Fatal("result contains invalid UTF-8")
			}
		})
	}
}

func TestNoteUploadUnextractableFile(t *testing.T) {
	store := &fakeNoteStore{}
	svc := NewNoteService(store, newFakeUploader())

	form := &dto.UploadNoteForm{Title: "Photo", Subject: "Physics", UploaderID: "user-1"}
	file := makeFileHeader(t, "diagram.png", []byte{0x89, 0x50, 0x4e, 0x47})

	if err := svc.Upload(context.Background(), form, file); err != nil {
		t.Fatalf("Upload returned error: %v", err)
	}
	if store.notes[0].ExtractedText != "" {
		t.Fatalf("ExtractedText = %q, want empty for unsupported format", store.notes[0].ExtractedText)
	}
}

func TestNoteUploadBlobFailure(t *testing.T) {
	store := &fakeNoteStore{}
	blobs := newFakeUploader()
	blobs.err = errors.New("bucket gone")
	svc := NewNoteService(store, blobs)

	form := &dto.UploadNoteForm{Title: "T", Subject: "S", UploaderID: "u"}
	file := makeFileHeader(t, "a.txt", []byte("text"))

	err := svc.Upload(context.Background(), form, file)
	if !errors.Is(err, apperrors.ErrBlobStore) {
		t.Fatalf("err = %v, want ErrBlobStore", err)
	}
	if len(store.notes) != 0 {
		t.Fatal("note must not be stored when the blob upload fails")
	}
}

func TestNoteCreateAuthored(t *testing.T) {
	store := &fakeNoteStore{}
	blobs := newFakeUploader()
	svc := NewNoteService(store, blobs)

	req := &dto.CreateNoteRequest{
		Title:      "Thermodynamics summary",
		Content:    "Heat flows from hot to cold.",
		Subject:    "Physics",
		Tags:       "heat",
		UploaderID: "user-2",
	}
	if err := svc.CreateAuthored(context.Background(), req); err != nil {
		t.Fatalf("CreateAuthored returned error: %v", err)
	}

	note := store.notes[0]
	if note.IsApproved {
		t.Error("authored note must start unapproved")
	}
	if note.ExtractedText != req.Content {
		t.Errorf("ExtractedText = %q, want raw content", note.ExtractedText)
	}
	if !strings.HasSuffix(note.FileURL, ".pdf") {
		t.Errorf("FileURL = %q, want rendered PDF object", note.FileURL)
	}

	for name, data := range blobs.objects {
		if !strings.HasSuffix(name, ".pdf") {
			t.Errorf("object %q, want .pdf suffix", name)
		}
		if !bytes.HasPrefix(data, []byte("%PDF")) {
			t.Error("rendered object is not a PDF")
		}
	}
}

func TestNoteGetByUploader(t *testing.T) {
	store := &fakeNoteStore{notes: []models.StoredNote{
		{ID: "n1", Note: models.Note{UploaderID: "alice"}},
		{ID: "n2", Note: models.Note{UploaderID: "bob"}},
		{ID: "n3", Note: models.Note{UploaderID: "alice"}},
	}}
	svc := NewNoteService(store, newFakeUploader())

	notes, err := svc.GetByUploader(context.Background(), "alice")
	if err != nil {
		t.Fatalf("GetByUploader returned error: %v", err)
	}
	if len(notes) != 2 {
		t.Fatalf("got %d notes, want 2", len(notes))
	}
	for _, n := range notes {
		if n.UploaderID != "alice" {
			t.Errorf("note %s belongs to %q", n.ID, n.UploaderID)
		}
	}
}

func TestNoteAdminStats(t *testing.T) {
	store := &fakeNoteStore{notes: []models.StoredNote{
		{ID: "n1", Note: models.Note{IsApproved: true}},
		{ID: "n2", Note: models.Note{IsApproved: false}},
	}}
	svc := NewNoteService(store, newFakeUploader())

	stats, err := svc.AdminStats(context.Background())
	if err != nil {
		t.Fatalf("AdminStats returned error: %v", err)
	}
	if stats.TotalNotes != 2 {
		t.Fatalf("TotalNotes = %d, want 2 (approval status must not filter)", stats.TotalNotes)
	}
	if len(stats.AllNotes) != 2 {
		t.Fatalf("AllNotes has %d entries, want 2", len(stats.AllNotes))
	}
}

func TestSplitTags(t *testing.T) {
	tests := []struct {
		raw  string
		want []string
	}{
		{"", nil},
		{"   ", nil},
		{"a", []string{"a"}},
		{"a,b", []string{"a", "b"}},
		{" a , b ,, ", []string{"a", "b"}},
	}
	for _, tt := range tests {
		if got := splitTags(tt.raw); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("splitTags(%q) = %v, want %v", tt.raw, got, tt.want)
		}
	}
}
