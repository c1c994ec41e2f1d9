package repositories

import (
	"cloud.google.com/go/firestore"
)

// Repositories holds all the repository instances
type Repositories struct {
	NoteRepository         *NoteRepository
	SubjectRepository      *SubjectRepository
	SubscriptionRepository *SubscriptionRepository
}

// NewRepositories creates all repositories over a shared Firestore client
func NewRepositories(client *firestore.Client) *Repositories {
	return &Repositories{
		NoteRepository:         NewNoteRepository(client),
		SubjectRepository:      NewSubjectRepository(client),
		SubscriptionRepository: NewSubscriptionRepository(client),
	}
}
