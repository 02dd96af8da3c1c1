package database

import (
	"errors"

	"github.com/redflagged/redflagged/internal/models"
)

// Store is the moderation queue. Nothing stored here is published to the feed.
type Store interface {
	AddSubmission(submission *models.Submission) error
	AddReport(report *models.Report) error
	AddResponse(response *models.Response) error

	ListSubmissions() ([]models.Submission, error)
	ListFlagReports(flagID int) ([]models.Report, error)
	ListFlagResponses(flagID int) ([]models.Response, error)
}

type DuplicateKey struct {
	nested error
}

func (e *DuplicateKey) Error() string {
	return e.nested.Error()
}

func (e *DuplicateKey) Unwrap() error {
	return e.nested
}

func IsDuplicateKey(err error) bool {
	duplicateKey := &DuplicateKey{}
	return errors.As(err, &duplicateKey)
}
