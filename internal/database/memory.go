package database

import (
	"fmt"
	"sync"

	"github.com/redflagged/redflagged/internal/models"
)

// Memory is a Store for deployments without postgres. Contents are lost on restart.
type Memory struct {
	mu          sync.RWMutex
	submissions []models.Submission
	reports     []models.Report
	responses   []models.Response
	ids         map[string]struct{}
}

func NewMemory() *Memory {
	return &Memory{ids: make(map[string]struct{})}
}

func (m *Memory) claim(id string) error {
	if _, found := m.ids[id]; found {
		return &DuplicateKey{fmt.Errorf("duplicate id %s", id)}
	}
	m.ids[id] = struct{}{}
	return nil
}

func (m *Memory) AddSubmission(submission *models.Submission) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.claim(submission.ID); err != nil {
		return err
	}
	copied := *submission
	copied.Violations = append([]string(nil), submission.Violations...)
	copied.Proofs = append([]string(nil), submission.Proofs...)
	m.submissions = append(m.submissions, copied)
	return nil
}

func (m *Memory) AddReport(report *models.Report) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.claim(report.ID); err != nil {
		return err
	}
	m.reports = append(m.reports, *report)
	return nil
}

func (m *Memory) AddResponse(response *models.Response) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.claim(response.ID); err != nil {
		return err
	}
	m.responses = append(m.responses, *response)
	return nil
}

func (m *Memory) ListSubmissions() ([]models.Submission, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	res := make([]models.Submission, len(m.submissions))
	copy(res, m.submissions)
	return res, nil
}

func (m *Memory) ListFlagReports(flagID int) ([]models.Report, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	res := make([]models.Report, 0)
	for _, report := range m.reports {
		if report.FlagID == flagID {
			res = append(res, report)
		}
	}
	return res, nil
}

func (m *Memory) ListFlagResponses(flagID int) ([]models.Response, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	res := make([]models.Response, 0)
	for _, response := range m.responses {
		if response.FlagID == flagID {
			res = append(res, response)
		}
	}
	return res, nil
}
