package jobapi

import (
	"github.com/Makanak1/Job-Board-Platform/jobboard/job"
	"github.com/Makanak1/Job-Board-Platform/jobboard/job/jobsrv"
	"github.com/Makanak1/Job-Board-Platform/pkg/iam/auth"
	"github.com/Makanak1/Job-Board-Platform/pkg/kernel"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// Handlers provides HTTP handlers for job posting operations
type Handlers struct {
	service  *jobsrv.JobService
	validate *validator.Validate
}

// NewHandlers creates a new job handlers instance
func NewHandlers(service *jobsrv.JobService) *Handlers {
	return &Handlers{
		service:  service,
		validate: validator.New(),
	}
}

// CreateJob creates a new posting
// POST /api/jobs
func (h *Handlers) CreateJob(c *fiber.Ctx) error {
	authContext, ok := auth.GetAuthContext(c)
	if !ok {
		return auth.ErrMissingToken()
	}

	var req job.CreateJobRequest
	if err := c.BodyParser(&req); err != nil {
		return job.ErrInvalidRequest().WithDetail("parse_error", err.Error())
	}

	if err := h.validate.Struct(req); err != nil {
		return job.ErrInvalidRequest().WithDetail("validation_error", err.Error())
	}

	newJob, err := h.service.CreateJob(c.Context(), authContext.UserID, req)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(newJob)
}

// ListJobs retrieves active public postings
// GET /api/jobs
func (h *Handlers) ListJobs(c *fiber.Ctx) error {
	pagination := parsePaginationOptions(c)

	filters := job.ListFilters{
		Search:          c.Query("search"),
		Category:        c.Query("category"),
		JobType:         c.Query("job_type"),
		ExperienceLevel: c.Query("experience_level"),
		Location:        c.Query("location"),
	}
	if min := c.QueryInt("salary_min", -1); min >= 0 {
		v := int64(min)
		filters.SalaryMin = &v
	}
	if employerID := c.Query("employer_id"); employerID != "" {
		filters.EmployerID = kernel.EmployerID(employerID)
	}

	jobs, err := h.service.ListJobs(c.Context(), filters, pagination)
	if err != nil {
		return err
	}

	return c.JSON(jobs)
}

// GetJobBySlug retrieves a public posting by slug
// GET /api/jobs/:slug
func (h *Handlers) GetJobBySlug(c *fiber.Ctx) error {
	slug := kernel.JobSlug(c.Params("slug"))
	if slug == "" {
		return job.ErrNotFound().WithDetail("slug", "missing or empty")
	}

	found, err := h.service.GetJobBySlug(c.Context(), slug)
	if err != nil {
		return err
	}

	return c.JSON(found)
}

// UpdateJob updates a posting owned by the caller
// PUT /api/jobs/:id
func (h *Handlers) UpdateJob(c *fiber.Ctx) error {
	authContext, ok := auth.GetAuthContext(c)
	if !ok {
		return auth.ErrMissingToken()
	}

	jobID := kernel.JobID(c.Params("id"))
	if jobID == "" {
		return job.ErrNotFound().WithDetail("id", "missing or empty")
	}

	var req job.UpdateJobRequest
	if err := c.BodyParser(&req); err != nil {
		return job.ErrInvalidRequest().WithDetail("parse_error", err.Error())
	}

	if err := h.validate.Struct(req); err != nil {
		return job.ErrInvalidRequest().WithDetail("validation_error", err.Error())
	}

	updated, err := h.service.UpdateJob(c.Context(), authContext.UserID, jobID, req)
	if err != nil {
		return err
	}

	return c.JSON(updated)
}

// ToggleActive flips the active flag on a posting owned by the caller
// POST /api/jobs/:id/toggle-active
func (h *Handlers) ToggleActive(c *fiber.Ctx) error {
	authContext, ok := auth.GetAuthContext(c)
	if !ok {
		return auth.ErrMissingToken()
	}

	jobID := kernel.JobID(c.Params("id"))
	if jobID == "" {
		return job.ErrNotFound().WithDetail("id", "missing or empty")
	}

	updated, err := h.service.ToggleActive(c.Context(), authContext.UserID, jobID)
	if err != nil {
		return err
	}

	return c.JSON(updated)
}

// DeleteJob deletes a posting owned by the caller
// DELETE /api/jobs/:id
func (h *Handlers) DeleteJob(c *fiber.Ctx) error {
	authContext, ok := auth.GetAuthContext(c)
	if !ok {
		return auth.ErrMissingToken()
	}

	jobID := kernel.JobID(c.Params("id"))
	if jobID == "" {
		return job.ErrNotFound().WithDetail("id", "missing or empty")
	}

	if err := h.service.DeleteJob(c.Context(), authContext.UserID, jobID); err != nil {
		return err
	}

	return c.Status(fiber.StatusNoContent).Send(nil)
}

// parsePaginationOptions extracts pagination options from query parameters
func parsePaginationOptions(c *fiber.Ctx) kernel.PaginationOptions {
	page := c.QueryInt("page", 1)
	pageSize := c.QueryInt("page_size", kernel.DefaultPageSize)

	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > kernel.MaxPageSize {
		pageSize = kernel.DefaultPageSize
	}

	return kernel.PaginationOptions{
		Page:     page,
		PageSize: pageSize,
	}
}

// RegisterRoutes registers all job routes
func RegisterRoutes(app *fiber.App, handlers *Handlers, authMiddleware fiber.Handler) {
	api := app.Group("/api/jobs")

	// Public routes
	api.Get("/", handlers.ListJobs)

	// Employer routes; fixed paths and write verbs take precedence
	// over the public :slug route
	api.Post("/",
		authMiddleware,
		auth.RequireUserType(kernel.UserTypeEmployer),
		handlers.CreateJob,
	)

	api.Put("/:id",
		authMiddleware,
		auth.RequireUserType(kernel.UserTypeEmployer),
		handlers.UpdateJob,
	)

	api.Post("/:id/toggle-active",
		authMiddleware,
		auth.RequireUserType(kernel.UserTypeEmployer),
		handlers.ToggleActive,
	)

	api.Delete("/:id",
		authMiddleware,
		auth.RequireUserType(kernel.UserTypeEmployer),
		handlers.DeleteJob,
	)

	api.Get("/:slug", handlers.GetJobBySlug)
}
