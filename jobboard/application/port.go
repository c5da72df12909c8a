package application

import (
	"context"

	"github.com/Makanak1/Job-Board-Platform/pkg/kernel"
)

type Repository interface {
	Create(ctx context.Context, app *Application) error
	GetByID(ctx context.Context, id kernel.ApplicationID) (*Application, error)

	// GetOwnedByCandidate retrieves an application only if it belongs to
	// the given candidate. A miss for any reason reads as not found, so
	// callers never learn whether a foreign application exists.
	GetOwnedByCandidate(ctx context.Context, id kernel.ApplicationID, candidateID kernel.CandidateID) (*Application, error)

	// GetOwnedByEmployer retrieves an application only if its job belongs
	// to the given employer.
	GetOwnedByEmployer(ctx context.Context, id kernel.ApplicationID, employerID kernel.EmployerID) (*Application, error)

	// UpdateWithHistory persists the application change and appends the
	// history entry in a single transaction.
	UpdateWithHistory(ctx context.Context, app *Application, entry *StatusHistory) error

	// ListHistory returns the audit trail newest first, with the acting
	// user's email resolved for display.
	ListHistory(ctx context.Context, applicationID kernel.ApplicationID) ([]StatusHistoryEntry, error)
	ListByCandidateID(ctx context.Context, candidateID kernel.CandidateID, pagination kernel.PaginationOptions) (*kernel.Paginated[ApplicationListItem], error)
	ListByEmployerID(ctx context.Context, employerID kernel.EmployerID, filters ReceivedFilters, pagination kernel.PaginationOptions) (*kernel.Paginated[ApplicationListItem], error)
	ListByJobID(ctx context.Context, jobID kernel.JobID, pagination kernel.PaginationOptions) (*kernel.Paginated[ApplicationListItem], error)
	ExistsByJobAndCandidate(ctx context.Context, jobID kernel.JobID, candidateID kernel.CandidateID) (bool, error)

	CountByCandidateID(ctx context.Context, candidateID kernel.CandidateID) (int64, error)
	StatusCountsByCandidate(ctx context.Context, candidateID kernel.CandidateID) (map[string]int64, error)
	CountByEmployerID(ctx context.Context, employerID kernel.EmployerID) (int64, error)
	StatusCountsByEmployer(ctx context.Context, employerID kernel.EmployerID) (map[string]int64, error)
}

// Event classifies what happened to an application for notification purposes.
type Event string

const (
	EventNew          Event = "new"
	EventStatusUpdate Event = "status_update"
)

// Notifier is told about application events after they are committed.
// Implementations must not affect the outcome of the triggering operation.
type Notifier interface {
	Notify(ctx context.Context, app *Application, event Event) error
}
