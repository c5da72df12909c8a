package report

import "time"

// ============================================================================
// Response DTOs
// ============================================================================

// PlatformStatsResponse is the admin overview of platform activity.
type PlatformStatsResponse struct {
	TotalUsers           int64            `json:"total_users"`
	UsersByType          map[string]int64 `json:"users_by_type"`
	TotalJobs            int64            `json:"total_jobs"`
	ActiveJobs           int64            `json:"active_jobs"`
	TotalApplications    int64            `json:"total_applications"`
	ApplicationsByStatus map[string]int64 `json:"applications_by_status"`
	TotalNotifications   int64            `json:"total_notifications"`
	GeneratedAt          time.Time        `json:"generated_at"`
}

// JobAnalyticsRow aggregates application activity per posting.
type JobAnalyticsRow struct {
	JobID            string  `db:"job_id" json:"job_id"`
	JobTitle         string  `db:"job_title" json:"job_title"`
	CompanyName      string  `db:"company_name" json:"company_name"`
	Views            int64   `db:"views" json:"views"`
	ApplicationCount int64   `db:"application_count" json:"application_count"`
	HiredCount       int64   `db:"hired_count" json:"hired_count"`
	ConversionRate   float64 `db:"-" json:"conversion_rate"`
}

// ApplicationExportRow is one line of the applications CSV export.
type ApplicationExportRow struct {
	ApplicationID  string     `db:"application_id"`
	JobTitle       string     `db:"job_title"`
	CompanyName    string     `db:"company_name"`
	CandidateName  string     `db:"candidate_name"`
	CandidateEmail string     `db:"candidate_email"`
	Status         string     `db:"status"`
	AppliedAt      time.Time  `db:"applied_at"`
	ReviewedAt     *time.Time `db:"reviewed_at"`
}

// JobExportRow is one line of the jobs CSV export.
type JobExportRow struct {
	JobID            string     `db:"job_id"`
	Title            string     `db:"title"`
	CompanyName      string     `db:"company_name"`
	JobType          string     `db:"job_type"`
	ExperienceLevel  string     `db:"experience_level"`
	Location         string     `db:"location"`
	IsActive         bool       `db:"is_active"`
	Views            int64      `db:"views"`
	ApplicationCount int64      `db:"application_count"`
	Deadline         *time.Time `db:"application_deadline"`
	CreatedAt        time.Time  `db:"created_at"`
}
