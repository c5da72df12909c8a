package employer

import (
	"time"

	"github.com/Makanak1/Job-Board-Platform/pkg/kernel"
)

// ============================================================================
// Request DTOs
// ============================================================================

type UpdateEmployerRequest struct {
	CompanyName *string `json:"company_name,omitempty" validate:"omitempty,max=200"`
	Website     *string `json:"website,omitempty" validate:"omitempty,url"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=5000"`
	Industry    *string `json:"industry,omitempty" validate:"omitempty,max=100"`
	CompanySize *string `json:"company_size,omitempty" validate:"omitempty,max=50"`
	FoundedYear *int    `json:"founded_year,omitempty" validate:"omitempty,min=1800,max=2100"`
	Location    *string `json:"location,omitempty" validate:"omitempty,max=200"`
}

// ============================================================================
// Response DTOs
// ============================================================================

type EmployerResponse struct {
	ID          kernel.EmployerID  `json:"id"`
	UserID      kernel.UserID      `json:"user_id"`
	CompanyName kernel.CompanyName `json:"company_name"`
	CompanyLogo kernel.BucketURL   `json:"company_logo,omitempty"`
	Website     string             `json:"website,omitempty"`
	Description string             `json:"description,omitempty"`
	Industry    string             `json:"industry,omitempty"`
	CompanySize string             `json:"company_size,omitempty"`
	FoundedYear *int               `json:"founded_year,omitempty"`
	Location    string             `json:"location,omitempty"`
	IsVerified  bool               `json:"is_verified"`
	CreatedAt   time.Time          `json:"created_at"`
}

// EmployerStatsResponse aggregates an employer's hiring activity.
type EmployerStatsResponse struct {
	EmployerID         kernel.EmployerID `json:"employer_id"`
	TotalJobs          int64             `json:"total_jobs"`
	ActiveJobs         int64             `json:"active_jobs"`
	TotalApplications  int64             `json:"total_applications"`
	ApplicationsByStatus map[string]int64 `json:"applications_by_status"`
}

func ToEmployerResponse(e *Employer) EmployerResponse {
	return EmployerResponse{
		ID:          e.ID,
		UserID:      e.UserID,
		CompanyName: e.CompanyName,
		CompanyLogo: e.CompanyLogo,
		Website:     e.Website,
		Description: e.Description,
		Industry:    e.Industry,
		CompanySize: e.CompanySize,
		FoundedYear: e.FoundedYear,
		Location:    e.Location,
		IsVerified:  e.IsVerified,
		CreatedAt:   e.CreatedAt,
	}
}
