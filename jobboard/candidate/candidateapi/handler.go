package candidateapi

import (
	"io"

	"github.com/Makanak1/Job-Board-Platform/jobboard/candidate"
	"github.com/Makanak1/Job-Board-Platform/jobboard/candidate/candidatesrv"
	"github.com/Makanak1/Job-Board-Platform/pkg/iam/auth"
	"github.com/Makanak1/Job-Board-Platform/pkg/kernel"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// Handlers provides HTTP handlers for candidate operations
type Handlers struct {
	service  *candidatesrv.CandidateService
	validate *validator.Validate
}

// NewHandlers creates a new candidate handlers instance
func NewHandlers(service *candidatesrv.CandidateService) *Handlers {
	return &Handlers{
		service:  service,
		validate: validator.New(),
	}
}

// GetMyProfile retrieves the authenticated candidate's profile
// GET /api/candidates/me
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

// UpdateMyProfile updates the authenticated candidate's profile
// PATCH /api/candidates/me
func (h *Handlers) UpdateMyProfile(c *fiber.Ctx) error {
	authContext, ok := auth.GetAuthContext(c)
	if !ok {
		return auth.ErrMissingToken()
	}

	var req candidate.UpdateCandidateRequest
	if err := c.BodyParser(&req); err != nil {
		return candidate.ErrInvalidRequest().WithDetail("parse_error", err.Error())
	}

	if err := h.validate.Struct(req); err != nil {
		return candidate.ErrInvalidRequest().WithDetail("validation_error", err.Error())
	}

	profile, err := h.service.UpdateMyProfile(c.Context(), authContext.UserID, req)
	if err != nil {
		return err
	}

	return c.JSON(profile)
}

// UploadResume uploads a resume file
// POST /api/candidates/me/resumes
func (h *Handlers) UploadResume(c *fiber.Ctx) error {
	authContext, ok := auth.GetAuthContext(c)
	if !ok {
		return auth.ErrMissingToken()
	}

	file, err := c.FormFile("file")
	if err != nil {
		return candidate.ErrInvalidRequest().WithDetail("file_error", err.Error())
	}

	fileContent, err := file.Open()
	if err != nil {
		return candidate.ErrInvalidRequest().WithDetail("file_open_error", err.Error())
	}
	defer fileContent.Close()

	fileData, err := io.ReadAll(fileContent)
	if err != nil {
		return candidate.ErrInvalidRequest().WithDetail("file_read_error", err.Error())
	}

	req := candidate.UploadResumeRequest{
		Title:       c.FormValue("title"),
		FileName:    file.Filename,
		ContentType: file.Header.Get("Content-Type"),
		FileSize:    file.Size,
		FileData:    fileData,
		IsPrimary:   c.FormValue("is_primary") == "true",
	}

	resume, err := h.service.UploadResume(c.Context(), authContext.UserID, req)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(resume)
}

// ListMyResumes retrieves the authenticated candidate's resumes
// GET /api/candidates/me/resumes
func (h *Handlers) ListMyResumes(c *fiber.Ctx) error {
	authContext, ok := auth.GetAuthContext(c)
	if !ok {
		return auth.ErrMissingToken()
	}

	resumes, err := h.service.ListMyResumes(c.Context(), authContext.UserID)
	if err != nil {
		return err
	}

	return c.JSON(resumes)
}

// DownloadResume streams one of the candidate's resume files
// GET /api/candidates/me/resumes/:id/download
func (h *Handlers) DownloadResume(c *fiber.Ctx) error {
	authContext, ok := auth.GetAuthContext(c)
	if !ok {
		return auth.ErrMissingToken()
	}

	resumeID := kernel.ResumeID(c.Params("id"))
	if resumeID == "" {
		return candidate.ErrResumeNotFound().WithDetail("id", "missing or empty")
	}

	stream, filename, err := h.service.DownloadResume(c.Context(), authContext.UserID, resumeID)
	if err != nil {
		return err
	}
	defer stream.Close()

	c.Set("Content-Disposition", "attachment; filename=\""+filename+"\"")
	c.Set("Content-Type", "application/octet-stream")

	return c.SendStream(stream)
}

// DeleteResume deletes one of the candidate's resumes
// DELETE /api/candidates/me/resumes/:id
func (h *Handlers) DeleteResume(c *fiber.Ctx) error {
	authContext, ok := auth.GetAuthContext(c)
	if !ok {
		return auth.ErrMissingToken()
	}

	resumeID := kernel.ResumeID(c.Params("id"))
	if resumeID == "" {
		return candidate.ErrResumeNotFound().WithDetail("id", "missing or empty")
	}

	if err := h.service.DeleteResume(c.Context(), authContext.UserID, resumeID); err != nil {
		return err
	}

	return c.Status(fiber.StatusNoContent).Send(nil)
}

// GetMyStats retrieves the authenticated candidate's application stats
// GET /api/candidates/me/stats
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

// ListCandidates retrieves public candidate profiles
// GET /api/candidates
func (h *Handlers) ListCandidates(c *fiber.Ctx) error {
	pagination := parsePaginationOptions(c)

	candidates, err := h.service.ListCandidates(c.Context(), pagination)
	if err != nil {
		return err
	}

	return c.JSON(candidates)
}

// GetCandidate retrieves a public candidate profile
// GET /api/candidates/:id
func (h *Handlers) GetCandidate(c *fiber.Ctx) error {
	candidateID := kernel.CandidateID(c.Params("id"))
	if candidateID == "" {
		return candidate.ErrNotFound().WithDetail("id", "missing or empty")
	}

	profile, err := h.service.GetCandidate(c.Context(), candidateID)
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

// RegisterRoutes registers all candidate routes
func RegisterRoutes(app *fiber.App, handlers *Handlers, authMiddleware fiber.Handler) {
	api := app.Group("/api/candidates")

	requireCandidate := auth.RequireUserType(kernel.UserTypeCandidate)

	// Authenticated candidate routes before the public :id route
	api.Get("/me", authMiddleware, requireCandidate, handlers.GetMyProfile)
	api.Patch("/me", authMiddleware, requireCandidate, handlers.UpdateMyProfile)
	api.Get("/me/stats", authMiddleware, requireCandidate, handlers.GetMyStats)

	api.Post("/me/resumes", authMiddleware, requireCandidate, handlers.UploadResume)
	api.Get("/me/resumes", authMiddleware, requireCandidate, handlers.ListMyResumes)
	api.Get("/me/resumes/:id/download", authMiddleware, requireCandidate, handlers.DownloadResume)
	api.Delete("/me/resumes/:id", authMiddleware, requireCandidate, handlers.DeleteResume)

	// Public routes
	api.Get("/", handlers.ListCandidates)
	api.Get("/:id", handlers.GetCandidate)
}
