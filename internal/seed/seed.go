// Package seed creates default data so a fresh deployment is usable
// without an admin round-trip.
package seed

import (
	"context"
	"errors"
	"time"

	"github.com/opennotes/backend/internal/app/models"
	"github.com/opennotes/backend/internal/app/repositories"
	"github.com/opennotes/backend/internal/pkg/logger"
)

// defaultSubjects are created pre-approved on an empty deployment.
var defaultSubjects = []models.Subject{
	{Title: "Mathematics", Code: "MATH", Field: "Science", Icon: "calculator", Description: "Algebra, calculus and everything in between"},
	{Title: "Physics", Code: "PHY", Field: "Science", Icon: "atom", Description: "Mechanics, waves, electricity and modern physics"},
	{Title: "Chemistry", Code: "CHEM", Field: "Science", Icon: "flask", Description: "General, organic and physical chemistry"},
	{Title: "Biology", Code: "BIO", Field: "Science", Icon: "dna", Description: "Cell biology, genetics and physiology"},
	{Title: "Computer Science", Code: "CS", Field: "Engineering", Icon: "cpu", Description: "Programming, algorithms and systems"},
	{Title: "History", Code: "HIST", Field: "Humanities", Icon: "scroll", Description: "World and regional history"},
}

// CreateDefaultData seeds the default subjects when the subject
// collection is empty. Existing deployments are left alone.
func CreateDefaultData(ctx context.Context, repos *repositories.Repositories) error {
	existing, err := repos.SubjectRepository.GetAll(ctx, true)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		logger.Debug().Int("subjects", len(existing)).Msg("Subjects already present, skipping seed")
		return nil
	}

	logger.Info().Msg("Empty subject collection, creating default subjects...")

	var finalErr error
	created := 0
	for _, subject := range defaultSubjects {
		s := subject
		s.Chapters = []string{}
		s.IsApproved = true
		s.UploaderID = "system"
		s.CreatedAt = time.Now().UTC()

		if _, err := repos.SubjectRepository.Create(ctx, &s); err != nil {
			logger.Error().Err(err).Str("title", s.Title).Msg("Error creating default subject")
			finalErr = errors.Join(finalErr, err)
			continue
		}
		created++
	}

	logger.Info().Int("created", created).Msg("Default subject seeding finished")
	return finalErr
}
