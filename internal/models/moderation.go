package models

import "time"

const SubmissionStatusPending = "pending"

type SubmissionStatus = string

// Submission is a completed wizard, queued for review. It never appears in the feed.
type Submission struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	Company    string   `json:"company"`
	Role       string   `json:"role"`
	DateRange  string   `json:"date_range"`
	Violations []string `gorm:"serializer:json" json:"violations"`
	Narrative  string   `json:"narrative"`

	Proofs          []string `gorm:"serializer:json" json:"proofs,omitempty"`
	EvidenceArchive string   `json:"evidence_archive,omitempty"`

	Names   string `json:"names,omitempty"`
	Quotes  string `json:"quotes,omitempty"`
	Consent string `json:"consent"`

	Status SubmissionStatus `gorm:"index" json:"status"`
}

const (
	ReportTypeIncorrect     = "incorrect"
	ReportTypeInappropriate = "inappropriate"
	ReportTypePersonal      = "personal"
	ReportTypeOther         = "other"
)

type Report struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	FlagID      int    `gorm:"index" json:"flag_id"`
	Type        string `json:"report_type"`
	Explanation string `json:"explanation"`
	Email       string `json:"email"`
}

type Response struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	FlagID   int    `gorm:"index" json:"flag_id"`
	Response string `json:"response"`
	Email    string `json:"email"`
	Name     string `json:"name"`
	Title    string `json:"title"`
}
