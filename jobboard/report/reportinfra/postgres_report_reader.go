package reportinfra

import (
	"context"
	"fmt"
	"time"

	"github.com/Makanak1/Job-Board-Platform/jobboard/report"
	"github.com/jmoiron/sqlx"
)

// PostgresReportReader implements report.Reader using aggregate SQL
type PostgresReportReader struct {
	db *sqlx.DB
}

// NewPostgresReportReader creates a new PostgreSQL report reader
func NewPostgresReportReader(db *sqlx.DB) *PostgresReportReader {
	return &PostgresReportReader{
		db: db,
	}
}

type groupCountRow struct {
	Key   string `db:"key"`
	Count int64  `db:"count"`
}

// PlatformStats gathers the platform-wide counters
func (r *PostgresReportReader) PlatformStats(ctx context.Context) (*report.PlatformStatsResponse, error) {
	stats := &report.PlatformStatsResponse{
		UsersByType:          map[string]int64{},
		ApplicationsByStatus: map[string]int64{},
		GeneratedAt:          time.Now(),
	}

	counts := []struct {
		query string
		dest  *int64
	}{
		{`SELECT COUNT(*) FROM users`, &stats.TotalUsers},
		{`SELECT COUNT(*) FROM jobs`, &stats.TotalJobs},
		{`SELECT COUNT(*) FROM jobs WHERE is_active = TRUE`, &stats.ActiveJobs},
		{`SELECT COUNT(*) FROM applications`, &stats.TotalApplications},
		{`SELECT COUNT(*) FROM notifications`, &stats.TotalNotifications},
	}

	for _, c := range counts {
		if err := r.db.GetContext(ctx, c.dest, c.query); err != nil {
			return nil, fmt.Errorf("failed to gather platform stats: %w", err)
		}
	}

	var userRows []groupCountRow
	userQuery := `SELECT user_type AS key, COUNT(*) AS count FROM users GROUP BY user_type`
	if err := r.db.SelectContext(ctx, &userRows, userQuery); err != nil {
		return nil, fmt.Errorf("failed to group users by type: %w", err)
	}
	for _, row := range userRows {
		stats.UsersByType[row.Key] = row.Count
	}

	var statusRows []groupCountRow
	statusQuery := `SELECT status AS key, COUNT(*) AS count FROM applications GROUP BY status`
	if err := r.db.SelectContext(ctx, &statusRows, statusQuery); err != nil {
		return nil, fmt.Errorf("failed to group applications by status: %w", err)
	}
	for _, row := range statusRows {
		stats.ApplicationsByStatus[row.Key] = row.Count
	}

	return stats, nil
}

// JobAnalytics aggregates application activity for the busiest postings
func (r *PostgresReportReader) JobAnalytics(ctx context.Context, limit int) ([]report.JobAnalyticsRow, error) {
	if limit <= 0 {
		limit = 50
	}

	query := `
		SELECT
			j.id AS job_id,
			j.title AS job_title,
			e.company_name,
			j.views,
			COUNT(a.id) AS application_count,
			COUNT(a.id) FILTER (WHERE a.status = 'hired') AS hired_count
		FROM jobs j
		INNER JOIN employers e ON j.employer_id = e.id
		LEFT JOIN applications a ON a.job_id = j.id
		GROUP BY j.id, j.title, e.company_name, j.views
		ORDER BY application_count DESC, j.views DESC
		LIMIT $1
	`

	var rows []report.JobAnalyticsRow
	if err := r.db.SelectContext(ctx, &rows, query, limit); err != nil {
		return nil, fmt.Errorf("failed to aggregate job analytics: %w", err)
	}

	for i := range rows {
		if rows[i].Views > 0 {
			rows[i].ConversionRate = float64(rows[i].ApplicationCount) / float64(rows[i].Views)
		}
	}

	return rows, nil
}

// ApplicationExport retrieves the flat rows of the applications export
func (r *PostgresReportReader) ApplicationExport(ctx context.Context) ([]report.ApplicationExportRow, error) {
	query := `
		SELECT
			a.id AS application_id,
			j.title AS job_title,
			e.company_name,
			c.first_name || ' ' || c.last_name AS candidate_name,
			u.email AS candidate_email,
			a.status,
			a.applied_at,
			a.reviewed_at
		FROM applications a
		INNER JOIN jobs j ON a.job_id = j.id
		INNER JOIN employers e ON j.employer_id = e.id
		INNER JOIN candidates c ON a.candidate_id = c.id
		INNER JOIN users u ON c.user_id = u.id
		ORDER BY a.applied_at DESC
	`

	var rows []report.ApplicationExportRow
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("failed to export applications: %w", err)
	}

	return rows, nil
}

// JobExport retrieves the flat rows of the jobs export
func (r *PostgresReportReader) JobExport(ctx context.Context) ([]report.JobExportRow, error) {
	query := `
		SELECT
			j.id AS job_id,
			j.title,
			e.company_name,
			j.job_type,
			j.experience_level,
			j.location,
			j.is_active,
			j.views,
			COUNT(a.id) AS application_count,
			j.application_deadline,
			j.created_at
		FROM jobs j
		INNER JOIN employers e ON j.employer_id = e.id
		LEFT JOIN applications a ON a.job_id = j.id
		GROUP BY j.id, e.company_name
		ORDER BY j.created_at DESC
	`

	var rows []report.JobExportRow
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("failed to export jobs: %w", err)
	}

	return rows, nil
}
