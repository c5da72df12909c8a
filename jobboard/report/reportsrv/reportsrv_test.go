package reportsrv

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Makanak1/Job-Board-Platform/jobboard/report"
)

// ============================================================================
// Fakes
// ============================================================================

type fakeReader struct {
	stats           *report.PlatformStatsResponse
	analytics       []report.JobAnalyticsRow
	applicationRows []report.ApplicationExportRow
	jobRows         []report.JobExportRow
	err             error
}

func (r *fakeReader) PlatformStats(_ context.Context) (*report.PlatformStatsResponse, error) {
	return r.stats, r.err
}

func (r *fakeReader) JobAnalytics(_ context.Context, limit int) ([]report.JobAnalyticsRow, error) {
	return r.analytics, r.err
}

func (r *fakeReader) ApplicationExport(_ context.Context) ([]report.ApplicationExportRow, error) {
	return r.applicationRows, r.err
}

func (r *fakeReader) JobExport(_ context.Context) ([]report.JobExportRow, error) {
	return r.jobRows, r.err
}

// ============================================================================
// Tests
// ============================================================================

func TestExportApplicationsCSV(t *testing.T) {
	applied := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	reviewed := applied.Add(48 * time.Hour)

	reader := &fakeReader{
		applicationRows: []report.ApplicationExportRow{
			{
				ApplicationID:  "app-1",
				JobTitle:       "Backend Engineer",
				CompanyName:    "Initech",
				CandidateName:  "Ada Lovelace",
				CandidateEmail: "ada@example.com",
				Status:         "hired",
				AppliedAt:      applied,
				ReviewedAt:     &reviewed,
			},
			{
				ApplicationID:  "app-2",
				JobTitle:       "Data Analyst",
				CompanyName:    "Initech",
				CandidateName:  "Grace Hopper",
				CandidateEmail: "grace@example.com",
				Status:         "pending",
				AppliedAt:      applied,
			},
		},
	}
	service := NewReportService(reader)

	data, err := service.ExportApplicationsCSV(context.Background())
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "application_id,job_title,company_name,candidate_name,candidate_email,status,applied_at,reviewed_at", lines[0])
	assert.Contains(t, lines[1], "app-1")
	assert.Contains(t, lines[1], "2026-03-16T09:30:00Z")
	// Unreviewed applications leave the reviewed_at column empty
	assert.True(t, strings.HasSuffix(lines[2], "pending,2026-03-14T09:30:00Z,"))
}

func TestExportJobsCSV(t *testing.T) {
	created := time.Date(2026, 1, 5, 12, 0, 0, 0, time.UTC)

	reader := &fakeReader{
		jobRows: []report.JobExportRow{
			{
				JobID:            "job-1",
				Title:            "Backend Engineer",
				CompanyName:      "Initech",
				JobType:          "full_time",
				ExperienceLevel:  "mid",
				Location:         "Berlin",
				IsActive:         true,
				Views:            120,
				ApplicationCount: 7,
				CreatedAt:        created,
			},
		},
	}
	service := NewReportService(reader)

	data, err := service.ExportJobsCSV(context.Background())
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "job_id,title,company_name,job_type,experience_level,location,is_active,views,application_count,deadline,created_at", lines[0])
	assert.Equal(t, "job-1,Backend Engineer,Initech,full_time,mid,Berlin,true,120,7,,2026-01-05T12:00:00Z", lines[1])
}

func TestExportApplicationsCSVReaderFailure(t *testing.T) {
	service := NewReportService(&fakeReader{err: errors.New("db down")})

	_, err := service.ExportApplicationsCSV(context.Background())
	require.Error(t, err)
}

func TestPlatformStats(t *testing.T) {
	reader := &fakeReader{
		stats: &report.PlatformStatsResponse{
			TotalUsers:        42,
			UsersByType:       map[string]int64{"candidate": 30, "employer": 11, "admin": 1},
			TotalJobs:         12,
			ActiveJobs:        9,
			TotalApplications: 88,
		},
	}
	service := NewReportService(reader)

	stats, err := service.PlatformStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(42), stats.TotalUsers)
	assert.Equal(t, int64(30), stats.UsersByType["candidate"])
}

func TestJobAnalytics(t *testing.T) {
	reader := &fakeReader{
		analytics: []report.JobAnalyticsRow{
			{JobID: "job-1", JobTitle: "Backend Engineer", Views: 100, ApplicationCount: 10, ConversionRate: 0.1},
		},
	}
	service := NewReportService(reader)

	rows, err := service.JobAnalytics(context.Background(), 5)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.InDelta(t, 0.1, rows[0].ConversionRate, 1e-9)
}
