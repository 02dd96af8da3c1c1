package api

import "github.com/redflagged/redflagged/internal/models"

type SubmissionRequest struct {
	Company    string   `json:"company"`
	Role       string   `json:"role"`
	DateRange  string   `json:"date_range"`
	Violations []string `json:"violations"`
	Narrative  string   `json:"narrative"`
	Names      string   `json:"names,omitempty"`
	Quotes     string   `json:"quotes,omitempty"`
	Consent    string   `json:"consent"`
}

type SubmissionResponse struct {
	Status
	ID string `json:"id,omitempty"`
}

type SubmissionsResponse struct {
	Status
	Submissions []models.Submission `json:"submissions,omitempty"`
}
