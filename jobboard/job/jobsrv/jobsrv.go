package jobsrv

import (
	"context"
	"time"

	"github.com/Makanak1/Job-Board-Platform/jobboard/employer"
	"github.com/Makanak1/Job-Board-Platform/jobboard/job"
	"github.com/Makanak1/Job-Board-Platform/pkg/errx"
	"github.com/Makanak1/Job-Board-Platform/pkg/kernel"
	"github.com/Makanak1/Job-Board-Platform/pkg/logx"
	"github.com/google/uuid"
)

// JobService provides business operations for job postings
type JobService struct {
	jobRepo      job.Repository
	employerRepo employer.Repository
}

// NewJobService creates a new instance of the job service
func NewJobService(jobRepo job.Repository, employerRepo employer.Repository) *JobService {
	return &JobService{
		jobRepo:      jobRepo,
		employerRepo: employerRepo,
	}
}

// CreateJob creates a new posting owned by the calling employer
func (s *JobService) CreateJob(ctx context.Context, userID kernel.UserID, req job.CreateJobRequest) (*job.Job, error) {
	owner, err := s.employerRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, employer.ErrNotAnEmployer()
	}

	jobType := job.JobType(req.JobType)
	if !jobType.IsValid() {
		return nil, job.ErrInvalidJobType().WithDetail("job_type", req.JobType)
	}

	level := job.ExperienceLevel(req.ExperienceLevel)
	if !level.IsValid() {
		return nil, job.ErrInvalidExperienceLevel().WithDetail("experience_level", req.ExperienceLevel)
	}

	if req.SalaryMin != nil && req.SalaryMax != nil && *req.SalaryMin > *req.SalaryMax {
		return nil, job.ErrInvalidSalaryRange().
			WithDetail("salary_min", *req.SalaryMin).
			WithDetail("salary_max", *req.SalaryMax)
	}

	positions := req.PositionsAvailable
	if positions < 1 {
		positions = 1
	}

	now := time.Now()
	title := kernel.JobTitle(req.Title)

	newJob := &job.Job{
		ID:                  kernel.NewJobID(uuid.NewString()),
		EmployerID:          owner.ID,
		Title:               title,
		Slug:                job.GenerateSlug(title),
		Description:         kernel.JobDescription(req.Description),
		Requirements:        req.Requirements,
		Responsibilities:    req.Responsibilities,
		Category:            req.Category,
		JobType:             jobType,
		ExperienceLevel:     level,
		Location:            req.Location,
		SalaryMin:           req.SalaryMin,
		SalaryMax:           req.SalaryMax,
		SalaryCurrency:      req.SalaryCurrency,
		IsActive:            true,
		PositionsAvailable:  positions,
		ApplicationDeadline: req.ApplicationDeadline,
		CreatedAt:           now,
		UpdatedAt:           now,
	}

	if err := s.jobRepo.Create(ctx, newJob); err != nil {
		return nil, errx.Wrap(err, "failed to create job", errx.TypeInternal)
	}

	logx.Infof("employer %s posted job %s", owner.ID, newJob.ID)

	return newJob, nil
}

// GetJobBySlug retrieves a public posting by slug and counts the view
func (s *JobService) GetJobBySlug(ctx context.Context, slug kernel.JobSlug) (*job.JobResponse, error) {
	found, err := s.jobRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, job.ErrNotFound().WithDetail("slug", string(slug))
	}

	// View counting failures never break the read path
	if err := s.jobRepo.IncrementViews(ctx, found.ID); err != nil {
		logx.Warnf("failed to increment views for job %s: %v", found.ID, err)
	}
	found.Views++

	resp := job.ToJobResponse(&found.Job, found.CompanyName)
	return &resp, nil
}

// ListJobs retrieves active public postings matching the filters
func (s *JobService) ListJobs(ctx context.Context, filters job.ListFilters, pagination kernel.PaginationOptions) (*job.PaginatedJobsResponse, error) {
	filters.ActiveOnly = true

	jobs, err := s.jobRepo.List(ctx, filters, pagination)
	if err != nil {
		return nil, errx.Wrap(err, "failed to list jobs", errx.TypeInternal)
	}

	responses := make([]job.JobResponse, 0, len(jobs.Items))
	for i := range jobs.Items {
		responses = append(responses, job.ToJobResponse(&jobs.Items[i].Job, jobs.Items[i].CompanyName))
	}

	return &kernel.Paginated[job.JobResponse]{
		Items: responses,
		Page:  jobs.Page,
		Empty: jobs.Empty,
	}, nil
}

// UpdateJob updates a posting after verifying ownership
func (s *JobService) UpdateJob(ctx context.Context, userID kernel.UserID, jobID kernel.JobID, req job.UpdateJobRequest) (*job.Job, error) {
	existing, err := s.getOwnedJob(ctx, userID, jobID)
	if err != nil {
		return nil, err
	}

	if req.JobType != nil && !job.JobType(*req.JobType).IsValid() {
		return nil, job.ErrInvalidJobType().WithDetail("job_type", *req.JobType)
	}
	if req.ExperienceLevel != nil && !job.ExperienceLevel(*req.ExperienceLevel).IsValid() {
		return nil, job.ErrInvalidExperienceLevel().WithDetail("experience_level", *req.ExperienceLevel)
	}

	existing.ApplyUpdate(req)

	if existing.SalaryMin != nil && existing.SalaryMax != nil && *existing.SalaryMin > *existing.SalaryMax {
		return nil, job.ErrInvalidSalaryRange().
			WithDetail("salary_min", *existing.SalaryMin).
			WithDetail("salary_max", *existing.SalaryMax)
	}

	if err := s.jobRepo.Update(ctx, existing); err != nil {
		return nil, errx.Wrap(err, "failed to update job", errx.TypeInternal)
	}

	return existing, nil
}

// ToggleActive flips the is_active flag on a posting
func (s *JobService) ToggleActive(ctx context.Context, userID kernel.UserID, jobID kernel.JobID) (*job.Job, error) {
	existing, err := s.getOwnedJob(ctx, userID, jobID)
	if err != nil {
		return nil, err
	}

	existing.IsActive = !existing.IsActive
	existing.UpdatedAt = time.Now()

	if err := s.jobRepo.Update(ctx, existing); err != nil {
		return nil, errx.Wrap(err, "failed to toggle job", errx.TypeInternal)
	}

	return existing, nil
}

// DeleteJob deletes a posting after verifying ownership
func (s *JobService) DeleteJob(ctx context.Context, userID kernel.UserID, jobID kernel.JobID) error {
	existing, err := s.getOwnedJob(ctx, userID, jobID)
	if err != nil {
		return err
	}

	if err := s.jobRepo.Delete(ctx, existing.ID); err != nil {
		return errx.Wrap(err, "failed to delete job", errx.TypeInternal)
	}

	logx.Infof("job %s deleted by user %s", jobID, userID)
	return nil
}

// ============================================================================
// Helper Methods
// ============================================================================

// getOwnedJob loads a posting and verifies the caller's employer profile
// owns it. Non-owners get not-found, never forbidden, so foreign postings
// stay concealed.
func (s *JobService) getOwnedJob(ctx context.Context, userID kernel.UserID, jobID kernel.JobID) (*job.Job, error) {
	owner, err := s.employerRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, employer.ErrNotAnEmployer()
	}

	existing, err := s.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return nil, job.ErrNotFound().WithDetail("job_id", jobID.String())
	}

	if !existing.OwnedBy(owner.ID) {
		return nil, job.ErrNotFound().WithDetail("job_id", jobID.String())
	}

	return existing, nil
}
