package job

import (
	"strings"
	"time"

	"github.com/Makanak1/Job-Board-Platform/pkg/kernel"
	"github.com/google/uuid"
)

// JobType categorizes the employment arrangement of a posting.
type JobType string

const (
	JobTypeFullTime   JobType = "full_time"
	JobTypePartTime   JobType = "part_time"
	JobTypeContract   JobType = "contract"
	JobTypeInternship JobType = "internship"
	JobTypeRemote     JobType = "remote"
)

// IsValid checks whether the job type is a known value.
func (t JobType) IsValid() bool {
	switch t {
	case JobTypeFullTime, JobTypePartTime, JobTypeContract, JobTypeInternship, JobTypeRemote:
		return true
	}
	return false
}

// ExperienceLevel categorizes the seniority a posting targets.
type ExperienceLevel string

const (
	ExperienceLevelEntry  ExperienceLevel = "entry"
	ExperienceLevelMid    ExperienceLevel = "mid"
	ExperienceLevelSenior ExperienceLevel = "senior"
	ExperienceLevelLead   ExperienceLevel = "lead"
)

// IsValid checks whether the experience level is a known value.
func (l ExperienceLevel) IsValid() bool {
	switch l {
	case ExperienceLevelEntry, ExperienceLevelMid, ExperienceLevelSenior, ExperienceLevelLead:
		return true
	}
	return false
}

type Job struct {
	ID                  kernel.JobID          `db:"id" json:"id"`
	EmployerID          kernel.EmployerID     `db:"employer_id" json:"employer_id"`
	Title               kernel.JobTitle       `db:"title" json:"title"`
	Slug                kernel.JobSlug        `db:"slug" json:"slug"`
	Description         kernel.JobDescription `db:"description" json:"description"`
	Requirements        string                `db:"requirements" json:"requirements,omitempty"`
	Responsibilities    string                `db:"responsibilities" json:"responsibilities,omitempty"`
	Category            string                `db:"category" json:"category,omitempty"`
	JobType             JobType               `db:"job_type" json:"job_type"`
	ExperienceLevel     ExperienceLevel       `db:"experience_level" json:"experience_level"`
	Location            string                `db:"location" json:"location,omitempty"`
	SalaryMin           *int64                `db:"salary_min" json:"salary_min,omitempty"`
	SalaryMax           *int64                `db:"salary_max" json:"salary_max,omitempty"`
	SalaryCurrency      string                `db:"salary_currency" json:"salary_currency,omitempty"`
	IsActive            bool                  `db:"is_active" json:"is_active"`
	PositionsAvailable  int                   `db:"positions_available" json:"positions_available"`
	Views               int64                 `db:"views" json:"views"`
	ApplicationDeadline *time.Time            `db:"application_deadline" json:"application_deadline,omitempty"`
	CreatedAt           time.Time             `db:"created_at" json:"created_at"`
	UpdatedAt           time.Time             `db:"updated_at" json:"updated_at"`
}

// ============================================================================
// Domain Methods
// ============================================================================

// IsExpired reports whether the application deadline has passed.
// A posting without a deadline never expires.
func (j *Job) IsExpired() bool {
	if j.ApplicationDeadline == nil {
		return false
	}
	return time.Now().After(*j.ApplicationDeadline)
}

// AcceptsApplications reports whether new applications can be submitted.
func (j *Job) AcceptsApplications() bool {
	return j.IsActive && !j.IsExpired()
}

// OwnedBy reports whether the posting belongs to the given employer.
func (j *Job) OwnedBy(employerID kernel.EmployerID) bool {
	return j.EmployerID == employerID
}

// ApplyUpdate applies the non-nil fields of the request to the posting.
func (j *Job) ApplyUpdate(req UpdateJobRequest) {
	if req.Title != nil {
		j.Title = kernel.JobTitle(*req.Title)
	}
	if req.Description != nil {
		j.Description = kernel.JobDescription(*req.Description)
	}
	if req.Requirements != nil {
		j.Requirements = *req.Requirements
	}
	if req.Responsibilities != nil {
		j.Responsibilities = *req.Responsibilities
	}
	if req.Category != nil {
		j.Category = *req.Category
	}
	if req.JobType != nil {
		j.JobType = JobType(*req.JobType)
	}
	if req.ExperienceLevel != nil {
		j.ExperienceLevel = ExperienceLevel(*req.ExperienceLevel)
	}
	if req.Location != nil {
		j.Location = *req.Location
	}
	if req.SalaryMin != nil {
		j.SalaryMin = req.SalaryMin
	}
	if req.SalaryMax != nil {
		j.SalaryMax = req.SalaryMax
	}
	if req.SalaryCurrency != nil {
		j.SalaryCurrency = *req.SalaryCurrency
	}
	if req.ApplicationDeadline != nil {
		j.ApplicationDeadline = req.ApplicationDeadline
	}
	if req.PositionsAvailable != nil {
		j.PositionsAvailable = *req.PositionsAvailable
	}
	j.UpdatedAt = time.Now()
}

// GenerateSlug builds a URL-safe slug from a title with a random suffix
// so two postings with the same title never collide.
func GenerateSlug(title kernel.JobTitle) kernel.JobSlug {
	base := strings.ToLower(string(title))
	var b strings.Builder
	lastDash := false
	for _, r := range base {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash && b.Len() > 0 {
				b.WriteRune('-')
				lastDash = true
			}
		}
	}
	slug := strings.Trim(b.String(), "-")
	suffix := uuid.NewString()[:8]
	if slug == "" {
		return kernel.JobSlug(suffix)
	}
	return kernel.JobSlug(slug + "-" + suffix)
}
