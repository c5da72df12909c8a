package report

import "context"

// Reader runs the aggregate queries behind admin reports.
type Reader interface {
	PlatformStats(ctx context.Context) (*PlatformStatsResponse, error)
	JobAnalytics(ctx context.Context, limit int) ([]JobAnalyticsRow, error)
	ApplicationExport(ctx context.Context) ([]ApplicationExportRow, error)
	JobExport(ctx context.Context) ([]JobExportRow, error)
}
