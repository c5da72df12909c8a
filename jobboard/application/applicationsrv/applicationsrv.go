package applicationsrv

import (
	"context"
	"time"

	"github.com/Makanak1/Job-Board-Platform/jobboard/application"
	"github.com/Makanak1/Job-Board-Platform/jobboard/candidate"
	"github.com/Makanak1/Job-Board-Platform/jobboard/employer"
	"github.com/Makanak1/Job-Board-Platform/jobboard/job"
	"github.com/Makanak1/Job-Board-Platform/pkg/errx"
	"github.com/Makanak1/Job-Board-Platform/pkg/kernel"
	"github.com/Makanak1/Job-Board-Platform/pkg/logx"
	"github.com/google/uuid"
)

// ApplicationService provides business operations for job applications
type ApplicationService struct {
	applicationRepo application.Repository
	jobRepo         job.Repository
	candidateRepo   candidate.Repository
	employerRepo    employer.Repository
	resumeRepo      candidate.ResumeRepository
	notifier        application.Notifier
}

// NewApplicationService creates a new instance of the application service
func NewApplicationService(
	applicationRepo application.Repository,
	jobRepo job.Repository,
	candidateRepo candidate.Repository,
	employerRepo employer.Repository,
	resumeRepo candidate.ResumeRepository,
	notifier application.Notifier,
) *ApplicationService {
	return &ApplicationService{
		applicationRepo: applicationRepo,
		jobRepo:         jobRepo,
		candidateRepo:   candidateRepo,
		employerRepo:    employerRepo,
		resumeRepo:      resumeRepo,
		notifier:        notifier,
	}
}

// Apply submits a new application for the calling candidate
func (s *ApplicationService) Apply(ctx context.Context, userID kernel.UserID, req application.CreateApplicationRequest) (*application.Application, error) {
	applicant, err := s.resolveCandidate(ctx, userID)
	if err != nil {
		return nil, err
	}

	jobID := kernel.JobID(req.JobID)
	posting, err := s.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return nil, job.ErrNotFound().WithDetail("job_id", req.JobID)
	}

	if !posting.IsActive {
		return nil, application.ErrJobNotActive().WithDetail("job_id", req.JobID)
	}
	if posting.IsExpired() {
		return nil, application.ErrJobExpired().WithDetail("job_id", req.JobID)
	}

	exists, err := s.applicationRepo.ExistsByJobAndCandidate(ctx, jobID, applicant.ID)
	if err != nil {
		return nil, errx.Wrap(err, "failed to check duplicate application", errx.TypeInternal)
	}
	if exists {
		return nil, application.ErrAlreadyApplied().WithDetail("job_id", req.JobID)
	}

	// A referenced resume must exist and belong to the applicant
	var resumeID *kernel.ResumeID
	if req.ResumeID != nil && *req.ResumeID != "" {
		rid := kernel.ResumeID(*req.ResumeID)
		resume, err := s.resumeRepo.GetByID(ctx, rid)
		if err != nil || !resume.BelongsTo(applicant.ID) {
			return nil, application.ErrInvalidResume().WithDetail("resume_id", *req.ResumeID)
		}
		resumeID = &rid
	}

	now := time.Now()
	newApplication := &application.Application{
		ID:          kernel.NewApplicationID(uuid.NewString()),
		JobID:       jobID,
		CandidateID: applicant.ID,
		ResumeID:    resumeID,
		CoverLetter: req.CoverLetter,
		Status:      application.StatusPending,
		AppliedAt:   now,
		UpdatedAt:   now,
	}

	// The unique constraint catches submissions racing past the check above
	if err := s.applicationRepo.Create(ctx, newApplication); err != nil {
		return nil, err
	}

	logx.Infof("candidate %s applied to job %s (application %s)", applicant.ID, jobID, newApplication.ID)

	s.notify(ctx, newApplication, application.EventNew)

	return newApplication, nil
}

// GetApplication retrieves an application visible to the caller: the owning
// candidate or the employer owning the job. Anyone else gets not-found.
func (s *ApplicationService) GetApplication(ctx context.Context, userID kernel.UserID, userType kernel.UserType, id kernel.ApplicationID) (*application.ApplicationDetailResponse, error) {
	var app *application.Application
	var err error

	switch userType {
	case kernel.UserTypeCandidate:
		applicant, cerr := s.resolveCandidate(ctx, userID)
		if cerr != nil {
			return nil, cerr
		}
		app, err = s.applicationRepo.GetOwnedByCandidate(ctx, id, applicant.ID)
	case kernel.UserTypeEmployer:
		owner, eerr := s.resolveEmployer(ctx, userID)
		if eerr != nil {
			return nil, eerr
		}
		app, err = s.applicationRepo.GetOwnedByEmployer(ctx, id, owner.ID)
	case kernel.UserTypeAdmin:
		app, err = s.applicationRepo.GetByID(ctx, id)
	default:
		return nil, application.ErrInsufficientPermissions()
	}

	if err != nil {
		return nil, application.ErrNotFound().WithDetail("application_id", id.String())
	}

	return s.toDetailResponse(ctx, app)
}

// UpdateStatus moves an application to a new status on behalf of the
// employer owning its job, recording the transition in the audit trail.
func (s *ApplicationService) UpdateStatus(ctx context.Context, userID kernel.UserID, id kernel.ApplicationID, req application.UpdateStatusRequest) (*application.Application, error) {
	owner, err := s.resolveEmployer(ctx, userID)
	if err != nil {
		return nil, err
	}

	app, err := s.applicationRepo.GetOwnedByEmployer(ctx, id, owner.ID)
	if err != nil {
		return nil, application.ErrNotFound().WithDetail("application_id", id.String())
	}

	oldStatus, err := app.ChangeStatus(application.Status(req.Status), req.EmployerNotes)
	if err != nil {
		return nil, err
	}

	entry := application.NewStatusHistory(app.ID, oldStatus, app.Status, userID, req.EmployerNotes)

	if err := s.applicationRepo.UpdateWithHistory(ctx, app, entry); err != nil {
		return nil, errx.Wrap(err, "failed to update application status", errx.TypeInternal)
	}

	logx.Infof("application %s moved %s -> %s by user %s", app.ID, oldStatus, app.Status, userID)

	s.notify(ctx, app, application.EventStatusUpdate)

	return app, nil
}

// Withdraw retracts the calling candidate's application. Final decisions
// (hired, rejected) cannot be withdrawn.
func (s *ApplicationService) Withdraw(ctx context.Context, userID kernel.UserID, id kernel.ApplicationID) (*application.Application, error) {
	applicant, err := s.resolveCandidate(ctx, userID)
	if err != nil {
		return nil, err
	}

	app, err := s.applicationRepo.GetOwnedByCandidate(ctx, id, applicant.ID)
	if err != nil {
		return nil, application.ErrNotFound().WithDetail("application_id", id.String())
	}

	oldStatus, err := app.Withdraw()
	if err != nil {
		return nil, err
	}

	entry := application.NewStatusHistory(app.ID, oldStatus, app.Status, userID, "")

	if err := s.applicationRepo.UpdateWithHistory(ctx, app, entry); err != nil {
		return nil, errx.Wrap(err, "failed to withdraw application", errx.TypeInternal)
	}

	logx.Infof("application %s withdrawn by candidate %s", app.ID, applicant.ID)

	s.notify(ctx, app, application.EventStatusUpdate)

	return app, nil
}

// ListMine retrieves the calling candidate's applications
func (s *ApplicationService) ListMine(ctx context.Context, userID kernel.UserID, pagination kernel.PaginationOptions) (*application.PaginatedApplicationsResponse, error) {
	applicant, err := s.resolveCandidate(ctx, userID)
	if err != nil {
		return nil, err
	}

	items, err := s.applicationRepo.ListByCandidateID(ctx, applicant.ID, pagination)
	if err != nil {
		return nil, errx.Wrap(err, "failed to list applications", errx.TypeInternal)
	}

	return items, nil
}

// ListReceived retrieves applications across the calling employer's postings
func (s *ApplicationService) ListReceived(ctx context.Context, userID kernel.UserID, filters application.ReceivedFilters, pagination kernel.PaginationOptions) (*application.PaginatedApplicationsResponse, error) {
	owner, err := s.resolveEmployer(ctx, userID)
	if err != nil {
		return nil, err
	}

	if filters.Status != "" && !filters.Status.IsValid() {
		return nil, application.ErrInvalidStatus().WithDetail("status", string(filters.Status))
	}

	items, err := s.applicationRepo.ListByEmployerID(ctx, owner.ID, filters, pagination)
	if err != nil {
		return nil, errx.Wrap(err, "failed to list received applications", errx.TypeInternal)
	}

	return items, nil
}

// ListByJob retrieves applications to one posting owned by the caller
func (s *ApplicationService) ListByJob(ctx context.Context, userID kernel.UserID, jobID kernel.JobID, pagination kernel.PaginationOptions) (*application.PaginatedApplicationsResponse, error) {
	owner, err := s.resolveEmployer(ctx, userID)
	if err != nil {
		return nil, err
	}

	posting, err := s.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return nil, job.ErrNotFound().WithDetail("job_id", jobID.String())
	}
	if !posting.OwnedBy(owner.ID) {
		return nil, job.ErrNotFound().WithDetail("job_id", jobID.String())
	}

	items, err := s.applicationRepo.ListByJobID(ctx, jobID, pagination)
	if err != nil {
		return nil, errx.Wrap(err, "failed to list applications by job", errx.TypeInternal)
	}

	return items, nil
}

// ============================================================================
// Helper Methods
// ============================================================================

func (s *ApplicationService) resolveCandidate(ctx context.Context, userID kernel.UserID) (*candidate.Candidate, error) {
	profile, err := s.candidateRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, candidate.ErrNotACandidate()
	}
	return profile, nil
}

func (s *ApplicationService) resolveEmployer(ctx context.Context, userID kernel.UserID) (*employer.Employer, error) {
	profile, err := s.employerRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, employer.ErrNotAnEmployer()
	}
	return profile, nil
}

// notify delivers an application event after the triggering write has
// committed. Delivery failures are logged and never surfaced to callers.
func (s *ApplicationService) notify(ctx context.Context, app *application.Application, event application.Event) {
	if s.notifier == nil {
		return
	}
	if err := s.notifier.Notify(ctx, app, event); err != nil {
		logx.Warnf("failed to deliver %s notification for application %s: %v", event, app.ID, err)
	}
}

func (s *ApplicationService) toDetailResponse(ctx context.Context, app *application.Application) (*application.ApplicationDetailResponse, error) {
	history, err := s.applicationRepo.ListHistory(ctx, app.ID)
	if err != nil {
		return nil, errx.Wrap(err, "failed to load status history", errx.TypeInternal)
	}

	detail := &application.ApplicationDetailResponse{
		ApplicationResponse: application.ToApplicationResponse(app),
		History:             history,
	}

	// Denormalized names are best-effort on the detail view
	if posting, err := s.jobRepo.GetByID(ctx, app.JobID); err == nil {
		detail.JobTitle = posting.Title
		if owner, err := s.employerRepo.GetByID(ctx, posting.EmployerID); err == nil {
			detail.CompanyName = owner.CompanyName
		}
	}
	if applicant, err := s.candidateRepo.GetByID(ctx, app.CandidateID); err == nil {
		detail.CandidateName = applicant.FullName()
	}

	return detail, nil
}
