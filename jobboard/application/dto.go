package application

import (
	"time"

	"github.com/Makanak1/Job-Board-Platform/pkg/kernel"
)

// ============================================================================
// Request DTOs
// ============================================================================

type CreateApplicationRequest struct {
	JobID       string  `json:"job_id" validate:"required"`
	ResumeID    *string `json:"resume_id,omitempty"`
	CoverLetter string  `json:"cover_letter" validate:"omitempty,max=10000"`
}

type UpdateStatusRequest struct {
	Status        string `json:"status" validate:"required"`
	EmployerNotes string `json:"employer_notes" validate:"omitempty,max=5000"`
}

// ReceivedFilters narrows an employer's received-application listings.
type ReceivedFilters struct {
	Status Status
	JobID  kernel.JobID
}

// ============================================================================
// Response DTOs
// ============================================================================

type ApplicationResponse struct {
	ID            kernel.ApplicationID `json:"id"`
	JobID         kernel.JobID         `json:"job_id"`
	CandidateID   kernel.CandidateID   `json:"candidate_id"`
	ResumeID      *kernel.ResumeID     `json:"resume_id,omitempty"`
	CoverLetter   string               `json:"cover_letter,omitempty"`
	Status        Status               `json:"status"`
	EmployerNotes string               `json:"employer_notes,omitempty"`
	AppliedAt     time.Time            `json:"applied_at"`
	UpdatedAt     time.Time            `json:"updated_at"`
	ReviewedAt    *time.Time           `json:"reviewed_at,omitempty"`
}

// ApplicationDetailResponse is the single-application view including
// the full status history.
type ApplicationDetailResponse struct {
	ApplicationResponse
	JobTitle      kernel.JobTitle      `json:"job_title"`
	CompanyName   kernel.CompanyName   `json:"company_name"`
	CandidateName string               `json:"candidate_name"`
	History       []StatusHistoryEntry `json:"history"`
}

// StatusHistoryEntry is a history row with the acting user's email
// denormalized so clients can show who made the change.
type StatusHistoryEntry struct {
	ID             string               `db:"id" json:"id"`
	ApplicationID  kernel.ApplicationID `db:"application_id" json:"application_id"`
	OldStatus      Status               `db:"old_status" json:"old_status"`
	NewStatus      Status               `db:"new_status" json:"new_status"`
	ChangedBy      *kernel.UserID       `db:"changed_by" json:"changed_by,omitempty"`
	ChangedByEmail string               `db:"changed_by_email" json:"changed_by_email,omitempty"`
	Notes          string               `db:"notes" json:"notes,omitempty"`
	ChangedAt      time.Time            `db:"changed_at" json:"changed_at"`
}

// ApplicationListItem is a row in candidate or employer listings with
// denormalized names so clients avoid extra lookups.
type ApplicationListItem struct {
	ID            kernel.ApplicationID `db:"id" json:"id"`
	JobID         kernel.JobID         `db:"job_id" json:"job_id"`
	JobTitle      kernel.JobTitle      `db:"job_title" json:"job_title"`
	CompanyName   kernel.CompanyName   `db:"company_name" json:"company_name"`
	CandidateID   kernel.CandidateID   `db:"candidate_id" json:"candidate_id"`
	CandidateName string               `db:"candidate_name" json:"candidate_name"`
	Status        Status               `db:"status" json:"status"`
	AppliedAt     time.Time            `db:"applied_at" json:"applied_at"`
	UpdatedAt     time.Time            `db:"updated_at" json:"updated_at"`
}

type PaginatedApplicationsResponse = kernel.Paginated[ApplicationListItem]

func ToApplicationResponse(a *Application) ApplicationResponse {
	return ApplicationResponse{
		ID:            a.ID,
		JobID:         a.JobID,
		CandidateID:   a.CandidateID,
		ResumeID:      a.ResumeID,
		CoverLetter:   a.CoverLetter,
		Status:        a.Status,
		EmployerNotes: a.EmployerNotes,
		AppliedAt:     a.AppliedAt,
		UpdatedAt:     a.UpdatedAt,
		ReviewedAt:    a.ReviewedAt,
	}
}
