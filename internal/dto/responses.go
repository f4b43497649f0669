package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/ignatzorin/grant-assistant/internal/usecase/workflow"
)

// SessionResponse ответ на открытие страницы.
type SessionResponse struct {
	ID        uuid.UUID         `json:"id"`
	Token     string            `json:"token"`
	ExpiresAt time.Time         `json:"expires_at"`
	Workflow  workflow.Snapshot `json:"workflow"`
}

// SubmissionResponse ответ на отправку формы.
type SubmissionResponse struct {
	Submission int               `json:"submission"`
	StartedAt  time.Time         `json:"started_at"`
	Workflow   workflow.Snapshot `json:"workflow"`
}

// NewSubmissionResponse собирает ответ из отправки и текущего состояния.
func NewSubmissionResponse(sub *workflow.Submission, snap workflow.Snapshot) *SubmissionResponse {
	return &SubmissionResponse{
		Submission: sub.Number,
		StartedAt:  sub.StartedAt,
		Workflow:   snap,
	}
}

// HealthResponse представляет ответ health check.
type HealthResponse struct {
	Status    string            `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Checks    map[string]string `json:"checks"`
}
