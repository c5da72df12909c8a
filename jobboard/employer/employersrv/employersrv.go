package employersrv

import (
	"context"

	"github.com/Makanak1/Job-Board-Platform/jobboard/application"
	"github.com/Makanak1/Job-Board-Platform/jobboard/employer"
	"github.com/Makanak1/Job-Board-Platform/jobboard/job"
	"github.com/Makanak1/Job-Board-Platform/pkg/errx"
	"github.com/Makanak1/Job-Board-Platform/pkg/kernel"
)

// EmployerService provides business operations for employer profiles
type EmployerService struct {
	employerRepo    employer.Repository
	jobRepo         job.Repository
	applicationRepo application.Repository
}

// NewEmployerService creates a new instance of the employer service
func NewEmployerService(
	employerRepo employer.Repository,
	jobRepo job.Repository,
	applicationRepo application.Repository,
) *EmployerService {
	return &EmployerService{
		employerRepo:    employerRepo,
		jobRepo:         jobRepo,
		applicationRepo: applicationRepo,
	}
}

// GetMyProfile retrieves the employer profile of the authenticated user
func (s *EmployerService) GetMyProfile(ctx context.Context, userID kernel.UserID) (*employer.EmployerResponse, error) {
	profile, err := s.employerRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, employer.ErrNotFound().WithDetail("user_id", userID.String())
	}

	resp := employer.ToEmployerResponse(profile)
	return &resp, nil
}

// GetProfile retrieves a public employer profile by ID
func (s *EmployerService) GetProfile(ctx context.Context, employerID kernel.EmployerID) (*employer.EmployerResponse, error) {
	profile, err := s.employerRepo.GetByID(ctx, employerID)
	if err != nil {
		return nil, employer.ErrNotFound().WithDetail("employer_id", employerID.String())
	}

	resp := employer.ToEmployerResponse(profile)
	return &resp, nil
}

// UpdateMyProfile updates the employer profile of the authenticated user
func (s *EmployerService) UpdateMyProfile(ctx context.Context, userID kernel.UserID, req employer.UpdateEmployerRequest) (*employer.EmployerResponse, error) {
	profile, err := s.employerRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, employer.ErrNotFound().WithDetail("user_id", userID.String())
	}

	profile.ApplyUpdate(req)

	if err := s.employerRepo.Update(ctx, profile); err != nil {
		return nil, errx.Wrap(err, "failed to update employer profile", errx.TypeInternal)
	}

	resp := employer.ToEmployerResponse(profile)
	return &resp, nil
}

// ListEmployers retrieves public employer profiles with pagination
func (s *EmployerService) ListEmployers(ctx context.Context, pagination kernel.PaginationOptions) (*kernel.Paginated[employer.EmployerResponse], error) {
	employers, err := s.employerRepo.List(ctx, pagination)
	if err != nil {
		return nil, errx.Wrap(err, "failed to list employers", errx.TypeInternal)
	}

	responses := make([]employer.EmployerResponse, 0, len(employers.Items))
	for i := range employers.Items {
		responses = append(responses, employer.ToEmployerResponse(&employers.Items[i]))
	}

	return &kernel.Paginated[employer.EmployerResponse]{
		Items: responses,
		Page:  employers.Page,
		Empty: employers.Empty,
	}, nil
}

// ListMyJobs retrieves all job postings of the authenticated employer,
// including inactive and expired ones
func (s *EmployerService) ListMyJobs(ctx context.Context, userID kernel.UserID, pagination kernel.PaginationOptions) (*kernel.Paginated[job.Job], error) {
	profile, err := s.employerRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, employer.ErrNotAnEmployer()
	}

	jobs, err := s.jobRepo.ListByEmployerID(ctx, profile.ID, pagination)
	if err != nil {
		return nil, errx.Wrap(err, "failed to list employer jobs", errx.TypeInternal)
	}

	return jobs, nil
}

// GetMyStats aggregates the authenticated employer's hiring activity
func (s *EmployerService) GetMyStats(ctx context.Context, userID kernel.UserID) (*employer.EmployerStatsResponse, error) {
	profile, err := s.employerRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, employer.ErrNotAnEmployer()
	}

	totalJobs, err := s.jobRepo.CountByEmployerID(ctx, profile.ID, false)
	if err != nil {
		return nil, errx.Wrap(err, "failed to count jobs", errx.TypeInternal)
	}

	activeJobs, err := s.jobRepo.CountByEmployerID(ctx, profile.ID, true)
	if err != nil {
		return nil, errx.Wrap(err, "failed to count active jobs", errx.TypeInternal)
	}

	totalApplications, err := s.applicationRepo.CountByEmployerID(ctx, profile.ID)
	if err != nil {
		return nil, errx.Wrap(err, "failed to count applications", errx.TypeInternal)
	}

	statusCounts, err := s.applicationRepo.StatusCountsByEmployer(ctx, profile.ID)
	if err != nil {
		return nil, errx.Wrap(err, "failed to group applications by status", errx.TypeInternal)
	}

	return &employer.EmployerStatsResponse{
		EmployerID:           profile.ID,
		TotalJobs:            totalJobs,
		ActiveJobs:           activeJobs,
		TotalApplications:    totalApplications,
		ApplicationsByStatus: statusCounts,
	}, nil
}
