package services

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/opennotes/backend/internal/app/models"
)

// fakeNoteStore is an in-memory NoteStore backed by an ordered slice so
// listing order is deterministic.
type fakeNoteStore struct {
	notes   []models.StoredNote
	nextID  int
	failAll bool
}

func (f *fakeNoteStore) Create(_ context.Context, note *models.Note) (string, error) {
	if f.failAll {
		return "", errors.New("store unavailable")
	}
	f.nextID++
	id := fmt.Sprintf("note-%d", f.nextID)
	f.notes = append(f.notes, models.StoredNote{ID: id, Note: *note})
	return id, nil
}

func (f *fakeNoteStore) GetAll(_ context.Context) ([]models.StoredNote, error) {
	if f.failAll {
		return nil, errors.New("store unavailable")
	}
	out := make([]models.StoredNote, len(f.notes))
	copy(out, f.notes)
	return out, nil
}

func (f *fakeNoteStore) GetByUploader(_ context.Context, uploaderID string) ([]models.StoredNote, error) {
	if f.failAll {
		return nil, errors.New("store unavailable")
	}
	var out []models.StoredNote
	for _, n := range f.notes {
		if n.UploaderID == uploaderID {
			out = append(out, n)
		}
	}
	return out, nil
}

func (f *fakeNoteStore) GetBySubject(_ context.Context, subject string) ([]models.StoredNote, error) {
	if f.failAll {
		return nil, errors.New("store unavailable")
	}
	var out []models.StoredNote
	for _, n := range f.notes {
		if n.Subject == subject {
			out = append(out, n)
		}
	}
	return out, nil
}

func (f *fakeNoteStore) Delete(_ context.Context, id string) error {
	for i, n := range f.notes {
		if n.ID == id {
			f.notes = append(f.notes[:i], f.notes[i+1:]...)
			return nil
		}
	}
	return errors.New("no such note")
}

func (f *fakeNoteStore) Approve(_ context.Context, id string) error {
	for i, n := range f.notes {
		if n.ID == id {
			f.notes[i].IsApproved = true
			return nil
		}
	}
	return errors.New("no such note")
}

func (f *fakeNoteStore) DeleteBySubject(_ context.Context, subject string) (int, error) {
	var kept []models.StoredNote
	deleted := 0
	for _, n := range f.notes {
		if n.Subject == subject {
			deleted++
			continue
		}
		kept = append(kept, n)
	}
	f.notes = kept
	return deleted, nil
}

// fakeSubjectStore is an in-memory SubjectStore keyed by generated IDs.
type fakeSubjectStore struct {
	subjects map[string]models.Subject
	nextID   int
}

func newFakeSubjectStore() *fakeSubjectStore {
	return &fakeSubjectStore{subjects: make(map[string]models.Subject)}
}

func (f *fakeSubjectStore) Create(_ context.Context, subject *models.Subject) (string, error) {
	f.nextID++
	id := fmt.Sprintf("subject-%d", f.nextID)
	f.subjects[id] = *subject
	return id, nil
}

func (f *fakeSubjectStore) GetByID(_ context.Context, id string) (*models.StoredSubject, error) {
	subject, ok := f.subjects[id]
	if !ok {
		return nil, nil
	}
	return &models.StoredSubject{ID: id, Subject: subject}, nil
}

func (f *fakeSubjectStore) GetAll(_ context.Context, showAll bool) ([]models.StoredSubject, error) {
	var out []models.StoredSubject
	for id, subject := range f.subjects {
		if !showAll && !subject.IsApproved {
			continue
		}
		out = append(out, models.StoredSubject{ID: id, Subject: subject})
	}
	return out, nil
}

func (f *fakeSubjectStore) Approve(_ context.Context, id string) error {
	subject, ok := f.subjects[id]
	if !ok {
		return errors.New("no such subject")
	}
	subject.IsApproved = true
	f.subjects[id] = subject
	return nil
}

func (f *fakeSubjectStore) Delete(_ context.Context, id string) error {
	if _, ok := f.subjects[id]; !ok {
		return errors.New("no such subject")
	}
	delete(f.subjects, id)
	return nil
}

// fakeSubscriptionStore records subscriptions per user, upserting on
// subject ID like the real store does.
type fakeSubscriptionStore struct {
	byUser map[string][]models.Subscription
}

func newFakeSubscriptionStore() *fakeSubscriptionStore {
	return &fakeSubscriptionStore{byUser: make(map[string][]models.Subscription)}
}

func (f *fakeSubscriptionStore) Create(_ context.Context, userID string, sub *models.Subscription) error {
	subs := f.byUser[userID]
	for i, existing := range subs {
		if existing.SubjectID == sub.SubjectID {
			subs[i] = *sub
			return nil
		}
	}
	f.byUser[userID] = append(subs, *sub)
	return nil
}

func (f *fakeSubscriptionStore) GetByUser(_ context.Context, userID string) ([]models.Subscription, error) {
	return f.byUser[userID], nil
}

// fakeCompleter records every prompt it receives and replies with a
// canned answer.
type fakeCompleter struct {
	prompts []string
	answer  string
	err     error
}

func (f *fakeCompleter) Complete(_ context.Context, prompt string) (string, error) {
	f.prompts = append(f.prompts, prompt)
	if f.err != nil {
		return "", f.err
	}
	return f.answer, nil
}

// fakeUploader returns a deterministic URL per object and remembers what
// was uploaded.
type fakeUploader struct {
	objects map[string][]byte
	err     error
}

func newFakeUploader() *fakeUploader {
	return &fakeUploader{objects: make(map[string][]byte)}
}

func (f *fakeUploader) Upload(_ context.Context, objectName, _ string, r io.Reader) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	f.objects[objectName] = data
	return "https://storage.googleapis.com/test-bucket/" + objectName, nil
}
