package employerapi

import (
	"github.com/Makanak1/Job-Board-Platform/jobboard/employer"
	"github.com/Makanak1/Job-Board-Platform/jobboard/employer/employersrv"
	"github.com/Makanak1/Job-Board-Platform/pkg/iam/auth"
	"github.com/Makanak1/Job-Board-Platform/pkg/kernel"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// Handlers provides HTTP handlers for employer operations
type Handlers struct {
	service  *employersrv.EmployerService
	validate *validator.Validate
}

// NewHandlers creates a new employer handlers instance
func NewHandlers(service *employersrv.EmployerService) *Handlers {
	return &Handlers{
		service:  service,
		validate: validator.New(),
	}
}

// GetMyProfile retrieves the authenticated employer's profile
// GET /api/employers/me
func (h *Handlers) GetMyProfile(c *fiber.Ctx) error {
	authContext, ok := auth.GetAuthContext(c)
	if !ok {
		return auth.ErrMissingToken()
	}

	profile, err := h.service.GetMyProfile(c.Context(), authContext.UserID)
	if err != nil {
		return err
	}

	return c.JSON(profile)
}

// UpdateMyProfile updates the authenticated employer's profile
// PATCH /api/employers/me
func (h *Handlers) UpdateMyProfile(c *fiber.Ctx) error {
	authContext, ok := auth.GetAuthContext(c)
	if !ok {
		return auth.ErrMissingToken()
	}

	var req employer.UpdateEmployerRequest
	if err := c.BodyParser(&req); err != nil {
		return employer.ErrInvalidRequest().WithDetail("parse_error", err.Error())
	}

	if err := h.validate.Struct(req); err != nil {
		return employer.ErrInvalidRequest().WithDetail("validation_error", err.Error())
	}

	profile, err := h.service.UpdateMyProfile(c.Context(), authContext.UserID, req)
	if err != nil {
		return err
	}

	return c.JSON(profile)
}

// ListMyJobs retrieves all postings of the authenticated employer
// GET /api/employers/me/jobs
func (h *Handlers) ListMyJobs(c *fiber.Ctx) error {
	authContext, ok := auth.GetAuthContext(c)
	if !ok {
		return auth.ErrMissingToken()
	}

	pagination := parsePaginationOptions(c)

	jobs, err := h.service.ListMyJobs(c.Context(), authContext.UserID, pagination)
	if err != nil {
		return err
	}

	return c.JSON(jobs)
}

// GetMyStats retrieves the authenticated employer's hiring stats
// GET /api/employers/me/stats
func (h *Handlers) GetMyStats(c *fiber.Ctx) error {
	authContext, ok := auth.GetAuthContext(c)
	if !ok {
		return auth.ErrMissingToken()
	}

	stats, err := h.service.GetMyStats(c.Context(), authContext.UserID)
	if err != nil {
		return err
	}

	return c.JSON(stats)
}

// ListEmployers retrieves public employer profiles
// GET /api/employers
func (h *Handlers) ListEmployers(c *fiber.Ctx) error {
	pagination := parsePaginationOptions(c)

	employers, err := h.service.ListEmployers(c.Context(), pagination)
	if err != nil {
		return err
	}

	return c.JSON(employers)
}

// GetEmployer retrieves a public employer profile
// GET /api/employers/:id
func (h *Handlers) GetEmployer(c *fiber.Ctx) error {
	employerID := kernel.EmployerID(c.Params("id"))
	if employerID == "" {
		return employer.ErrNotFound().WithDetail("id", "missing or empty")
	}

	profile, err := h.service.GetProfile(c.Context(), employerID)
	if err != nil {
		return err
	}

	return c.JSON(profile)
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

// RegisterRoutes registers all employer routes
func RegisterRoutes(app *fiber.App, handlers *Handlers, authMiddleware fiber.Handler) {
	api := app.Group("/api/employers")

	// Authenticated employer routes before the public :id route
	api.Get("/me",
		authMiddleware,
		auth.RequireUserType(kernel.UserTypeEmployer),
		handlers.GetMyProfile,
	)

	api.Patch("/me",
		authMiddleware,
		auth.RequireUserType(kernel.UserTypeEmployer),
		handlers.UpdateMyProfile,
	)

	api.Get("/me/jobs",
		authMiddleware,
		auth.RequireUserType(kernel.UserTypeEmployer),
		handlers.ListMyJobs,
	)

	api.Get("/me/stats",
		authMiddleware,
		auth.RequireUserType(kernel.UserTypeEmployer),
		handlers.GetMyStats,
	)

	// Public routes
	api.Get("/", handlers.ListEmployers)
	api.Get("/:id", handlers.GetEmployer)
}
