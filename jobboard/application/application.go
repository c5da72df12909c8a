package application

import (
	"time"

	"github.com/Makanak1/Job-Board-Platform/pkg/kernel"
)

// Status is the lifecycle state of an application.
type Status string

const (
	StatusPending            Status = "pending"
	StatusUnderReview        Status = "under_review"
	StatusShortlisted        Status = "shortlisted"
	StatusInterviewScheduled Status = "interview_scheduled"
	StatusRejected           Status = "rejected"
	StatusHired              Status = "hired"
	StatusWithdrawn          Status = "withdrawn"
)

// AllStatuses lists every valid application status.
var AllStatuses = []Status{
	StatusPending,
	StatusUnderReview,
	StatusShortlisted,
	StatusInterviewScheduled,
	StatusRejected,
	StatusHired,
	StatusWithdrawn,
}

// IsValid checks whether the status is a known value.
func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusUnderReview, StatusShortlisted,
		StatusInterviewScheduled, StatusRejected, StatusHired, StatusWithdrawn:
		return true
	}
	return false
}

// IsTerminal reports whether the status ends the application lifecycle.
func (s Status) IsTerminal() bool {
	return s == StatusRejected || s == StatusHired || s == StatusWithdrawn
}

type Application struct {
	ID            kernel.ApplicationID `db:"id" json:"id"`
	JobID         kernel.JobID         `db:"job_id" json:"job_id"`
	CandidateID   kernel.CandidateID   `db:"candidate_id" json:"candidate_id"`
	ResumeID      *kernel.ResumeID     `db:"resume_id" json:"resume_id,omitempty"`
	CoverLetter   string               `db:"cover_letter" json:"cover_letter,omitempty"`
	Status        Status               `db:"status" json:"status"`
	EmployerNotes string               `db:"employer_notes" json:"employer_notes,omitempty"`
	AppliedAt     time.Time            `db:"applied_at" json:"applied_at"`
	UpdatedAt     time.Time            `db:"updated_at" json:"updated_at"`
	ReviewedAt    *time.Time           `db:"reviewed_at" json:"reviewed_at,omitempty"`
}

// ============================================================================
// Domain Methods
// ============================================================================

// ChangeStatus moves the application to newStatus and returns the status it
// held before the change. The first time the application leaves pending,
// reviewed_at is stamped; it is never overwritten afterwards.
func (a *Application) ChangeStatus(newStatus Status, notes string) (Status, error) {
	if !newStatus.IsValid() {
		return "", ErrInvalidStatus().WithDetail("status", string(newStatus))
	}

	oldStatus := a.Status
	a.Status = newStatus
	if notes != "" {
		a.EmployerNotes = notes
	}

	now := time.Now()
	if a.ReviewedAt == nil && oldStatus != newStatus && newStatus != StatusPending {
		a.ReviewedAt = &now
	}
	a.UpdatedAt = now

	return oldStatus, nil
}

// CanWithdraw reports whether the candidate may still retract the application.
// Hired and rejected decisions are final, and a withdrawn application
// cannot be withdrawn again.
func (a *Application) CanWithdraw() bool {
	return !a.Status.IsTerminal()
}

// Withdraw retracts the application and returns the status it held before.
// It goes through the same status-change path as an employer update, so
// withdrawing a pending application also stamps reviewed_at.
func (a *Application) Withdraw() (Status, error) {
	if !a.CanWithdraw() {
		return "", ErrCannotWithdraw().WithDetail("status", string(a.Status))
	}
	return a.ChangeStatus(StatusWithdrawn, "")
}
