package applicationapi

import (
	"github.com/Makanak1/Job-Board-Platform/jobboard/application"
	"github.com/Makanak1/Job-Board-Platform/jobboard/application/applicationsrv"
	"github.com/Makanak1/Job-Board-Platform/pkg/iam/auth"
	"github.com/Makanak1/Job-Board-Platform/pkg/kernel"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// Handlers provides HTTP handlers for application operations
type Handlers struct {
	service  *applicationsrv.ApplicationService
	validate *validator.Validate
}

// NewHandlers creates a new application handlers instance
func NewHandlers(service *applicationsrv.ApplicationService) *Handlers {
	return &Handlers{
		service:  service,
		validate: validator.New(),
	}
}

// Apply submits a candidate's application to a job
// POST /api/applications/apply
func (h *Handlers) Apply(c *fiber.Ctx) error {
	authContext, ok := auth.GetAuthContext(c)
	if !ok {
		return auth.ErrMissingToken()
	}

	var req application.CreateApplicationRequest
	if err := c.BodyParser(&req); err != nil {
		return application.ErrInvalidRequest().WithDetail("parse_error", err.Error())
	}

	if err := h.validate.Struct(req); err != nil {
		return application.ErrInvalidRequest().WithDetail("validation_error", err.Error())
	}

	app, err := h.service.Apply(c.Context(), authContext.UserID, req)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(application.ToApplicationResponse(app))
}

// ListMine lists the caller's own applications
// GET /api/applications/my-applications
func (h *Handlers) ListMine(c *fiber.Ctx) error {
	authContext, ok := auth.GetAuthContext(c)
	if !ok {
		return auth.ErrMissingToken()
	}

	pagination := parsePaginationOptions(c)

	apps, err := h.service.ListMine(c.Context(), authContext.UserID, pagination)
	if err != nil {
		return err
	}

	return c.JSON(apps)
}

// ListReceived lists applications across the caller's postings
// GET /api/applications/received
func (h *Handlers) ListReceived(c *fiber.Ctx) error {
	authContext, ok := auth.GetAuthContext(c)
	if !ok {
		return auth.ErrMissingToken()
	}

	pagination := parsePaginationOptions(c)
	filters := application.ReceivedFilters{
		Status: application.Status(c.Query("status")),
		JobID:  kernel.JobID(c.Query("job_id")),
	}

	apps, err := h.service.ListReceived(c.Context(), authContext.UserID, filters, pagination)
	if err != nil {
		return err
	}

	return c.JSON(apps)
}

// ListByJob lists applications to a single posting owned by the caller
// GET /api/applications/job/:jobId
func (h *Handlers) ListByJob(c *fiber.Ctx) error {
	authContext, ok := auth.GetAuthContext(c)
	if !ok {
		return auth.ErrMissingToken()
	}

	jobID := kernel.JobID(c.Params("jobId"))
	if jobID == "" {
		return application.ErrNotFound().WithDetail("job_id", "missing or empty")
	}

	pagination := parsePaginationOptions(c)

	apps, err := h.service.ListByJob(c.Context(), authContext.UserID, jobID, pagination)
	if err != nil {
		return err
	}

	return c.JSON(apps)
}

// GetApplication retrieves one application with its status history
// GET /api/applications/:id
func (h *Handlers) GetApplication(c *fiber.Ctx) error {
	authContext, ok := auth.GetAuthContext(c)
	if !ok {
		return auth.ErrMissingToken()
	}

	applicationID := kernel.ApplicationID(c.Params("id"))
	if applicationID == "" {
		return application.ErrNotFound().WithDetail("id", "missing or empty")
	}

	detail, err := h.service.GetApplication(c.Context(), authContext.UserID, authContext.UserType, applicationID)
	if err != nil {
		return err
	}

	return c.JSON(detail)
}

// UpdateStatus moves an application through the review workflow
// PATCH /api/applications/:id/update-status
func (h *Handlers) UpdateStatus(c *fiber.Ctx) error {
	authContext, ok := auth.GetAuthContext(c)
	if !ok {
		return auth.ErrMissingToken()
	}

	applicationID := kernel.ApplicationID(c.Params("id"))
	if applicationID == "" {
		return application.ErrNotFound().WithDetail("id", "missing or empty")
	}

	var req application.UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return application.ErrInvalidRequest().WithDetail("parse_error", err.Error())
	}

	if err := h.validate.Struct(req); err != nil {
		return application.ErrInvalidRequest().WithDetail("validation_error", err.Error())
	}

	updated, err := h.service.UpdateStatus(c.Context(), authContext.UserID, applicationID, req)
	if err != nil {
		return err
	}

	return c.JSON(application.ToApplicationResponse(updated))
}

// Withdraw retracts the caller's own application
// POST /api/applications/:id/withdraw
func (h *Handlers) Withdraw(c *fiber.Ctx) error {
	authContext, ok := auth.GetAuthContext(c)
	if !ok {
		return auth.ErrMissingToken()
	}

	applicationID := kernel.ApplicationID(c.Params("id"))
	if applicationID == "" {
		return application.ErrNotFound().WithDetail("id", "missing or empty")
	}

	updated, err := h.service.Withdraw(c.Context(), authContext.UserID, applicationID)
	if err != nil {
		return err
	}

	return c.JSON(application.ToApplicationResponse(updated))
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

// RegisterRoutes registers all application routes
func RegisterRoutes(app *fiber.App, handlers *Handlers, authMiddleware fiber.Handler) {
	api := app.Group("/api/applications", authMiddleware)

	// Candidate routes
	api.Post("/apply",
		auth.RequireUserType(kernel.UserTypeCandidate),
		handlers.Apply,
	)
	api.Get("/my-applications",
		auth.RequireUserType(kernel.UserTypeCandidate),
		handlers.ListMine,
	)

	// Employer routes
	api.Get("/received",
		auth.RequireUserType(kernel.UserTypeEmployer),
		handlers.ListReceived,
	)
	api.Get("/job/:jobId",
		auth.RequireUserType(kernel.UserTypeEmployer),
		handlers.ListByJob,
	)

	// Shared routes; fixed paths registered above take precedence
	api.Get("/:id", handlers.GetApplication)
	api.Patch("/:id/update-status",
		auth.RequireUserType(kernel.UserTypeEmployer),
		handlers.UpdateStatus,
	)
	api.Post("/:id/withdraw",
		auth.RequireUserType(kernel.UserTypeCandidate),
		handlers.Withdraw,
	)
}
