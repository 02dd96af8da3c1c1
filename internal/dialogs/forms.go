package dialogs

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/redflagged/redflagged/internal/models"
)

type ReportReason struct {
	Value string
	Label string
}

var ReportReasons = []ReportReason{
	{models.ReportTypeIncorrect, "Information is incorrect"},
	{models.ReportTypeInappropriate, "Content is inappropriate"},
	{models.ReportTypePersonal, "I work for this company"},
	{models.ReportTypeOther, "Other"},
}

type ReportForm struct {
	ReportType  string `form:"reportType" json:"reportType" validate:"oneof=incorrect inappropriate personal other"`
	Explanation string `form:"explanation" json:"explanation" validate:"min=10,max=500"`
	Email       string `form:"email" json:"email" validate:"email"`
}

var reportMessages = map[string]string{
	"reportType.oneof": "Please select a reason for your report",
	"explanation.min":  "Please provide at least 10 characters of explanation",
	"explanation.max":  "Explanation must be less than 500 characters",
	"email.email":      "Please enter a valid email address",
}

func (f *ReportForm) Normalize() {
	f.ReportType = strings.TrimSpace(f.ReportType)
	if f.ReportType == "" {
		f.ReportType = models.ReportTypeIncorrect
	}
	f.Explanation = strings.TrimSpace(f.Explanation)
	f.Email = strings.TrimSpace(f.Email)
}

// Check normalizes the form and returns field errors, nil when the form is valid.
func (f *ReportForm) Check() (Errors, error) {
	f.Normalize()
	return check(f, reportMessages)
}

func (f *ReportForm) ToReport(flagID int, now time.Time) *models.Report {
	return &models.Report{
		ID:          uuid.New().String(),
		CreatedAt:   now,
		FlagID:      flagID,
		Type:        f.ReportType,
		Explanation: f.Explanation,
		Email:       f.Email,
	}
}

type ResponseForm struct {
	Response string `form:"response" json:"response" validate:"min=20,max=1000"`
	Email    string `form:"email" json:"email" validate:"email"`
	Name     string `form:"name" json:"name" validate:"min=2,max=100"`
	Title    string `form:"title" json:"title" validate:"min=2,max=100"`
}

var responseMessages = map[string]string{
	"response.min": "Please provide at least 20 characters in your response",
	"response.max": "Response must be less than 1000 characters",
	"email.email":  "Please enter a valid email address",
	"name.min":     "Please enter your name",
	"name.max":     "Name must be less than 100 characters",
	"title.min":    "Please enter your title",
	"title.max":    "Title must be less than 100 characters",
}

func (f *ResponseForm) Normalize() {
	f.Response = strings.TrimSpace(f.Response)
	f.Email = strings.TrimSpace(f.Email)
	f.Name = strings.TrimSpace(f.Name)
	f.Title = strings.TrimSpace(f.Title)
}

func (f *ResponseForm) Check() (Errors, error) {
	f.Normalize()
	return check(f, responseMessages)
}

func (f *ResponseForm) ToResponse(flagID int, now time.Time) *models.Response {
	return &models.Response{
		ID:        uuid.New().String(),
		CreatedAt: now,
		FlagID:    flagID,
		Response:  f.Response,
		Email:     f.Email,
		Name:      f.Name,
		Title:     f.Title,
	}
}
