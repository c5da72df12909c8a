package reportsrv

import (
	"bytes"
	"context"
	"encoding/csv"
	"strconv"
	"time"

	"github.com/Makanak1/Job-Board-Platform/jobboard/report"
	"github.com/Makanak1/Job-Board-Platform/pkg/errx"
)

// ReportService generates admin reports and exports
type ReportService struct {
	reader report.Reader
}

// NewReportService creates a new instance of the report service
func NewReportService(reader report.Reader) *ReportService {
	return &ReportService{
		reader: reader,
	}
}

// PlatformStats returns the platform-wide activity overview
func (s *ReportService) PlatformStats(ctx context.Context) (*report.PlatformStatsResponse, error) {
	stats, err := s.reader.PlatformStats(ctx)
	if err != nil {
		return nil, errx.Wrap(err, "failed to generate platform stats", errx.TypeInternal)
	}
	return stats, nil
}

// JobAnalytics returns per-posting application analytics
func (s *ReportService) JobAnalytics(ctx context.Context, limit int) ([]report.JobAnalyticsRow, error) {
	rows, err := s.reader.JobAnalytics(ctx, limit)
	if err != nil {
		return nil, errx.Wrap(err, "failed to generate job analytics", errx.TypeInternal)
	}
	return rows, nil
}

// ExportApplicationsCSV renders the full applications export as CSV
func (s *ReportService) ExportApplicationsCSV(ctx context.Context) ([]byte, error) {
	rows, err := s.reader.ApplicationExport(ctx)
	if err != nil {
		return nil, errx.Wrap(err, "failed to export applications", errx.TypeInternal)
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := []string{
		"application_id", "job_title", "company_name", "candidate_name",
		"candidate_email", "status", "applied_at", "reviewed_at",
	}
	if err := w.Write(header); err != nil {
		return nil, errx.Wrap(err, "failed to write csv header", errx.TypeInternal)
	}

	for _, row := range rows {
		reviewedAt := ""
		if row.ReviewedAt != nil {
			reviewedAt = row.ReviewedAt.Format(time.RFC3339)
		}

		record := []string{
			row.ApplicationID,
			row.JobTitle,
			row.CompanyName,
			row.CandidateName,
			row.CandidateEmail,
			row.Status,
			row.AppliedAt.Format(time.RFC3339),
			reviewedAt,
		}
		if err := w.Write(record); err != nil {
			return nil, errx.Wrap(err, "failed to write csv record", errx.TypeInternal)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, errx.Wrap(err, "failed to flush csv", errx.TypeInternal)
	}

	return buf.Bytes(), nil
}

// ExportJobsCSV renders the full jobs export as CSV
func (s *ReportService) ExportJobsCSV(ctx context.Context) ([]byte, error) {
	rows, err := s.reader.JobExport(ctx)
	if err != nil {
		return nil, errx.Wrap(err, "failed to export jobs", errx.TypeInternal)
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := []string{
		"job_id", "title", "company_name", "job_type", "experience_level",
		"location", "is_active", "views", "application_count", "deadline",
		"created_at",
	}
	if err := w.Write(header); err != nil {
		return nil, errx.Wrap(err, "failed to write csv header", errx.TypeInternal)
	}

	for _, row := range rows {
		deadline := ""
		if row.Deadline != nil {
			deadline = row.Deadline.Format(time.RFC3339)
		}

		record := []string{
			row.JobID,
			row.Title,
			row.CompanyName,
			row.JobType,
			row.ExperienceLevel,
			row.Location,
			strconv.FormatBool(row.IsActive),
			strconv.FormatInt(row.Views, 10),
			strconv.FormatInt(row.ApplicationCount, 10),
			deadline,
			row.CreatedAt.Format(time.RFC3339),
		}
		if err := w.Write(record); err != nil {
			return nil, errx.Wrap(err, "failed to write csv record", errx.TypeInternal)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, errx.Wrap(err, "failed to flush csv", errx.TypeInternal)
	}

	return buf.Bytes(), nil
}
