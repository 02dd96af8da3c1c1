package api

import "github.com/redflagged/redflagged/internal/models"

type ReportRequest struct {
	ReportType  string `json:"reportType" form:"reportType"`
	Explanation string `json:"explanation" form:"explanation"`
	Email       string `json:"email" form:"email"`
}

// Errors are keyed by form field name.
type ReportResponse struct {
	Status
	ID     string            `json:"id,omitempty"`
	Errors map[string]string `json:"errors,omitempty"`
}

type ReportsResponse struct {
	Status
	Reports []models.Report `json:"reports,omitempty"`
}
