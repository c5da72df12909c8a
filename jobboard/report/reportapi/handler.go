package reportapi

import (
	"fmt"
	"time"

	"github.com/Makanak1/Job-Board-Platform/jobboard/report/reportsrv"
	"github.com/Makanak1/Job-Board-Platform/pkg/iam/auth"
	"github.com/Makanak1/Job-Board-Platform/pkg/kernel"
	"github.com/gofiber/fiber/v2"
)

// Handlers provides HTTP handlers for admin reporting
type Handlers struct {
	service *reportsrv.ReportService
}

// NewHandlers creates a new report handlers instance
func NewHandlers(service *reportsrv.ReportService) *Handlers {
	return &Handlers{service: service}
}

// PlatformStats returns platform-wide counters
// GET /api/reports/platform-stats
func (h *Handlers) PlatformStats(c *fiber.Ctx) error {
	stats, err := h.service.PlatformStats(c.Context())
	if err != nil {
		return err
	}

	return c.JSON(stats)
}

// JobAnalytics returns per-posting view and conversion figures
// GET /api/reports/job-analytics
func (h *Handlers) JobAnalytics(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 0)

	rows, err := h.service.JobAnalytics(c.Context(), limit)
	if err != nil {
		return err
	}

	return c.JSON(rows)
}

// ExportApplications streams all applications as a CSV attachment
// GET /api/reports/applications/export
func (h *Handlers) ExportApplications(c *fiber.Ctx) error {
	data, err := h.service.ExportApplicationsCSV(c.Context())
	if err != nil {
		return err
	}

	filename := fmt.Sprintf("applications-%s.csv", time.Now().Format("2006-01-02"))
	c.Set(fiber.HeaderContentType, "text/csv")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))

	return c.Send(data)
}

// ExportJobs streams all job postings as a CSV attachment
// GET /api/reports/jobs/export
func (h *Handlers) ExportJobs(c *fiber.Ctx) error {
	data, err := h.service.ExportJobsCSV(c.Context())
	if err != nil {
		return err
	}

	filename := fmt.Sprintf("jobs-%s.csv", time.Now().Format("2006-01-02"))
	c.Set(fiber.HeaderContentType, "text/csv")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))

	return c.Send(data)
}

// RegisterRoutes registers all report routes
func RegisterRoutes(app *fiber.App, handlers *Handlers, authMiddleware fiber.Handler) {
	api := app.Group("/api/reports",
		authMiddleware,
		auth.RequireUserType(kernel.UserTypeAdmin),
	)

	api.Get("/platform-stats", handlers.PlatformStats)
	api.Get("/job-analytics", handlers.JobAnalytics)
	api.Get("/applications/export", handlers.ExportApplications)
	api.Get("/jobs/export", handlers.ExportJobs)
}
