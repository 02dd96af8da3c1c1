package wizard

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"golang.org/x/exp/slices"

	"github.com/redflagged/redflagged/internal/models"
)

const (
	StepBasicInfo    = 1
	StepDetails      = 2
	StepVerification = 3
)

const (
	MaxNarrativeLength = 1000
	MaxNamesLength     = 200
	MaxQuotesLength    = 2000
	ConsentYes         = "yes"
)

var (
	ErrIncomplete = errors.New("Please fill out all required fields before proceeding.")
	ErrUnverified = errors.New("Please verify all required information before submitting.")
)

type Step struct {
	Number int
	Title  string
}

var Steps = []Step{
	{StepBasicInfo, "Basic Info"},
	{StepDetails, "Details"},
	{StepVerification, "Verification"},
}

// Fields are the user inputs of the submission form, grouped by step.
type Fields struct {
	Company    string   `form:"company" json:"company"`
	Role       string   `form:"role" json:"role"`
	DateRange  string   `form:"dateRange" json:"date_range"`
	Violations []string `form:"violations" json:"violations"`

	Narrative string `form:"narrative" json:"narrative"`

	Names   string `form:"names" json:"names"`
	Quotes  string `form:"quotes" json:"quotes"`
	Consent string `form:"consent" json:"consent"`
}

type Draft struct {
	ID   string
	Step int
	Fields

	Proofs          []string
	EvidenceArchive string
}

func NewDraft() *Draft {
	return &Draft{
		ID:   uuid.New().String(),
		Step: StepBasicInfo,
	}
}

func cleanViolations(ids []string) []string {
	res := make([]string, 0, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if _, known := models.FindViolation(id); !known || slices.Contains(res, id) {
			continue
		}
		res = append(res, id)
	}
	return res
}

// Apply copies the inputs belonging to step into the draft.
func (d *Draft) Apply(step int, fields Fields) {
	switch step {
	case StepBasicInfo:
		d.Company = strings.TrimSpace(fields.Company)
		d.Role = strings.TrimSpace(fields.Role)
		d.DateRange = strings.TrimSpace(fields.DateRange)
		d.Violations = cleanViolations(fields.Violations)
	case StepDetails:
		d.Narrative = strings.TrimSpace(fields.Narrative)
	case StepVerification:
		d.Names = strings.TrimSpace(fields.Names)
		d.Quotes = strings.TrimSpace(fields.Quotes)
		d.Consent = strings.TrimSpace(fields.Consent)
	}
}

func (d *Draft) HasViolation(id string) bool {
	return slices.Contains(d.Violations, id)
}

func (d *Draft) StepValid(step int) bool {
	switch step {
	case StepBasicInfo:
		return d.Company != "" && d.Role != "" && d.DateRange != "" && len(cleanViolations(d.Violations)) > 0
	case StepDetails:
		return d.Narrative != "" && utf8.RuneCountInString(d.Narrative) <= MaxNarrativeLength
	case StepVerification:
		return d.Consent == ConsentYes &&
			utf8.RuneCountInString(d.Names) <= MaxNamesLength &&
			utf8.RuneCountInString(d.Quotes) <= MaxQuotesLength
	default:
		return false
	}
}

// Next advances to the following step if the current one is complete.
func (d *Draft) Next() error {
	if !d.StepValid(d.Step) {
		return ErrIncomplete
	}
	if d.Step < StepVerification {
		d.Step++
	}
	return nil
}

func (d *Draft) Back() {
	if d.Step > StepBasicInfo {
		d.Step--
	}
}

func (d *Draft) Valid() bool {
	for _, step := range Steps {
		if !d.StepValid(step.Number) {
			return false
		}
	}
	return true
}

// Submit turns a complete draft into a pending submission and clears the draft.
func (d *Draft) Submit(now time.Time) (*models.Submission, error) {
	if !d.Valid() {
		return nil, ErrUnverified
	}

	submission := &models.Submission{
		ID:              uuid.New().String(),
		CreatedAt:       now,
		Company:         d.Company,
		Role:            d.Role,
		DateRange:       d.DateRange,
		Violations:      append([]string(nil), d.Violations...),
		Narrative:       d.Narrative,
		Proofs:          append([]string(nil), d.Proofs...),
		EvidenceArchive: d.EvidenceArchive,
		Names:           d.Names,
		Quotes:          d.Quotes,
		Consent:         d.Consent,
		Status:          models.SubmissionStatusPending,
	}

	d.Reset()
	return submission, nil
}

// Reset starts a new draft under a new id, so its evidence never shares a path
// with the one just submitted.
func (d *Draft) Reset() {
	*d = *NewDraft()
}

func (d *Draft) NarrativeLength() int {
	return utf8.RuneCountInString(d.Narrative)
}
