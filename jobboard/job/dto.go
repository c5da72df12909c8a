package job

import (
	"time"

	"github.com/Makanak1/Job-Board-Platform/pkg/kernel"
)

// ============================================================================
// Request DTOs
// ============================================================================

type CreateJobRequest struct {
	Title               string     `json:"title" validate:"required,max=200"`
	Description         string     `json:"description" validate:"required"`
	Requirements        string     `json:"requirements" validate:"omitempty,max=10000"`
	Responsibilities    string     `json:"responsibilities" validate:"omitempty,max=10000"`
	Category            string     `json:"category" validate:"omitempty,max=100"`
	JobType             string     `json:"job_type" validate:"required"`
	ExperienceLevel     string     `json:"experience_level" validate:"required"`
	Location            string     `json:"location" validate:"omitempty,max=200"`
	SalaryMin           *int64     `json:"salary_min" validate:"omitempty,min=0"`
	SalaryMax           *int64     `json:"salary_max" validate:"omitempty,min=0"`
	SalaryCurrency      string     `json:"salary_currency" validate:"omitempty,len=3"`
	PositionsAvailable  int        `json:"positions_available" validate:"omitempty,min=1"`
	ApplicationDeadline *time.Time `json:"application_deadline,omitempty"`
}

type UpdateJobRequest struct {
	Title               *string    `json:"title,omitempty" validate:"omitempty,max=200"`
	Description         *string    `json:"description,omitempty"`
	Requirements        *string    `json:"requirements,omitempty" validate:"omitempty,max=10000"`
	Responsibilities    *string    `json:"responsibilities,omitempty" validate:"omitempty,max=10000"`
	Category            *string    `json:"category,omitempty" validate:"omitempty,max=100"`
	JobType             *string    `json:"job_type,omitempty"`
	ExperienceLevel     *string    `json:"experience_level,omitempty"`
	Location            *string    `json:"location,omitempty" validate:"omitempty,max=200"`
	SalaryMin           *int64     `json:"salary_min,omitempty" validate:"omitempty,min=0"`
	SalaryMax           *int64     `json:"salary_max,omitempty" validate:"omitempty,min=0"`
	SalaryCurrency      *string    `json:"salary_currency,omitempty" validate:"omitempty,len=3"`
	PositionsAvailable  *int       `json:"positions_available,omitempty" validate:"omitempty,min=1"`
	ApplicationDeadline *time.Time `json:"application_deadline,omitempty"`
}

// ListFilters narrows public job searches.
type ListFilters struct {
	Search          string
	Category        string
	JobType         string
	ExperienceLevel string
	Location        string
	SalaryMin       *int64
	EmployerID      kernel.EmployerID
	ActiveOnly      bool
}

// ============================================================================
// Response DTOs
// ============================================================================

type JobResponse struct {
	ID                  kernel.JobID          `json:"id"`
	EmployerID          kernel.EmployerID     `json:"employer_id"`
	CompanyName         kernel.CompanyName    `json:"company_name,omitempty"`
	Title               kernel.JobTitle       `json:"title"`
	Slug                kernel.JobSlug        `json:"slug"`
	Description         kernel.JobDescription `json:"description"`
	Requirements        string                `json:"requirements,omitempty"`
	Responsibilities    string                `json:"responsibilities,omitempty"`
	Category            string                `json:"category,omitempty"`
	JobType             JobType               `json:"job_type"`
	ExperienceLevel     ExperienceLevel       `json:"experience_level"`
	Location            string                `json:"location,omitempty"`
	SalaryMin           *int64                `json:"salary_min,omitempty"`
	SalaryMax           *int64                `json:"salary_max,omitempty"`
	SalaryCurrency      string                `json:"salary_currency,omitempty"`
	IsActive            bool                  `json:"is_active"`
	IsExpired           bool                  `json:"is_expired"`
	PositionsAvailable  int                   `json:"positions_available"`
	Views               int64                 `json:"views"`
	ApplicationDeadline *time.Time            `json:"application_deadline,omitempty"`
	CreatedAt           time.Time             `json:"created_at"`
	UpdatedAt           time.Time             `json:"updated_at"`
}

// JobWithCompany pairs a posting with the denormalized company name
// for list and detail views.
type JobWithCompany struct {
	Job
	CompanyName kernel.CompanyName `db:"company_name"`
}

type PaginatedJobsResponse = kernel.Paginated[JobResponse]

func ToJobResponse(j *Job, companyName kernel.CompanyName) JobResponse {
	return JobResponse{
		ID:                  j.ID,
		EmployerID:          j.EmployerID,
		CompanyName:         companyName,
		Title:               j.Title,
		Slug:                j.Slug,
		Description:         j.Description,
		Requirements:        j.Requirements,
		Responsibilities:    j.Responsibilities,
		Category:            j.Category,
		JobType:             j.JobType,
		ExperienceLevel:     j.ExperienceLevel,
		Location:            j.Location,
		SalaryMin:           j.SalaryMin,
		SalaryMax:           j.SalaryMax,
		SalaryCurrency:      j.SalaryCurrency,
		IsActive:            j.IsActive,
		IsExpired:           j.IsExpired(),
		PositionsAvailable:  j.PositionsAvailable,
		Views:               j.Views,
		ApplicationDeadline: j.ApplicationDeadline,
		CreatedAt:           j.CreatedAt,
		UpdatedAt:           j.UpdatedAt,
	}
}
