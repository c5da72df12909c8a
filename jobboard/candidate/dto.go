package candidate

import (
	"time"

	"github.com/Makanak1/Job-Board-Platform/pkg/kernel"
)

// ============================================================================
// Request DTOs
// ============================================================================

type UpdateCandidateRequest struct {
	FirstName       *string `json:"first_name,omitempty" validate:"omitempty,max=100"`
	LastName        *string `json:"last_name,omitempty" validate:"omitempty,max=100"`
	Headline        *string `json:"headline,omitempty" validate:"omitempty,max=200"`
	Bio             *string `json:"bio,omitempty" validate:"omitempty,max=5000"`
	Skills          *string `json:"skills,omitempty" validate:"omitempty,max=2000"`
	ExperienceYears *int    `json:"experience_years,omitempty" validate:"omitempty,min=0,max=80"`
	Location        *string `json:"location,omitempty" validate:"omitempty,max=200"`
	LinkedinURL     *string `json:"linkedin_url,omitempty" validate:"omitempty,url"`
	PortfolioURL    *string `json:"portfolio_url,omitempty" validate:"omitempty,url"`
}

type UploadResumeRequest struct {
	CandidateID kernel.CandidateID
	Title       string
	FileName    string
	ContentType string
	FileSize    int64
	FileData    []byte
	IsPrimary   bool
}

// ============================================================================
// Response DTOs
// ============================================================================

type CandidateResponse struct {
	ID              kernel.CandidateID `json:"id"`
	UserID          kernel.UserID      `json:"user_id"`
	FirstName       kernel.FirstName   `json:"first_name"`
	LastName        kernel.LastName    `json:"last_name"`
	Headline        string             `json:"headline,omitempty"`
	Bio             string             `json:"bio,omitempty"`
	Skills          string             `json:"skills,omitempty"`
	ExperienceYears int                `json:"experience_years"`
	Location        string             `json:"location,omitempty"`
	LinkedinURL     string             `json:"linkedin_url,omitempty"`
	PortfolioURL    string             `json:"portfolio_url,omitempty"`
	CreatedAt       time.Time          `json:"created_at"`
}

type ResumeResponse struct {
	ID          kernel.ResumeID    `json:"id"`
	CandidateID kernel.CandidateID `json:"candidate_id"`
	Title       string             `json:"title"`
	FileURL     kernel.BucketURL   `json:"file_url"`
	FileName    string             `json:"file_name"`
	FileSize    int64              `json:"file_size"`
	IsPrimary   bool               `json:"is_primary"`
	UploadedAt  time.Time          `json:"uploaded_at"`
}

// CandidateStatsResponse aggregates a candidate's application activity.
type CandidateStatsResponse struct {
	CandidateID          kernel.CandidateID `json:"candidate_id"`
	TotalApplications    int64              `json:"total_applications"`
	ApplicationsByStatus map[string]int64   `json:"applications_by_status"`
	ResumeCount          int64              `json:"resume_count"`
}

func ToCandidateResponse(c *Candidate) CandidateResponse {
	return CandidateResponse{
		ID:              c.ID,
		UserID:          c.UserID,
		FirstName:       c.FirstName,
		LastName:        c.LastName,
		Headline:        c.Headline,
		Bio:             c.Bio,
		Skills:          c.Skills,
		ExperienceYears: c.ExperienceYears,
		Location:        c.Location,
		LinkedinURL:     c.LinkedinURL,
		PortfolioURL:    c.PortfolioURL,
		CreatedAt:       c.CreatedAt,
	}
}

func ToResumeResponse(r *Resume) ResumeResponse {
	return ResumeResponse{
		ID:          r.ID,
		CandidateID: r.CandidateID,
		Title:       r.Title,
		FileURL:     r.FileURL,
		FileName:    r.FileName,
		FileSize:    r.FileSize,
		IsPrimary:   r.IsPrimary,
		UploadedAt:  r.UploadedAt,
	}
}
