package notify

import (
	"fmt"
	"strings"

	"github.com/redflagged/redflagged/internal/models"
)

// Notifier tells moderators about new items in the moderation queue.
type Notifier interface {
	Submission(submission *models.Submission) error
	Report(flag *models.Flag, report *models.Report) error
	Response(flag *models.Flag, response *models.Response) error
}

type Nop struct{}

func (Nop) Submission(*models.Submission) error { return nil }

func (Nop) Report(*models.Flag, *models.Report) error { return nil }

func (Nop) Response(*models.Flag, *models.Response) error { return nil }

func violationLabels(ids []string) string {
	labels := make([]string, 0, len(ids))
	for _, id := range ids {
		if v, found := models.FindViolation(id); found {
			labels = append(labels, v.Label)
		}
	}
	return strings.Join(labels, ", ")
}

func FormatSubmission(s *models.Submission) string {
	return fmt.Sprintf("New redflag submission %s\n%s – %s (%s)\nViolations: %s\nProofs: %d",
		s.ID, s.Company, s.Role, s.DateRange, violationLabels(s.Violations), len(s.Proofs))
}

func FormatReport(flag *models.Flag, r *models.Report) string {
	return fmt.Sprintf("Flag #%d (%s) reported as %q by %s\n%s",
		flag.ID, flag.Company, r.Type, r.Email, r.Explanation)
}

func FormatResponse(flag *models.Flag, r *models.Response) string {
	return fmt.Sprintf("Response to flag #%d (%s) from %s, %s <%s>\n%s",
		flag.ID, flag.Company, r.Name, r.Title, r.Email, r.Response)
}
