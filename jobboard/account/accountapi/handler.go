package accountapi

import (
	"github.com/Makanak1/Job-Board-Platform/jobboard/account"
	"github.com/Makanak1/Job-Board-Platform/jobboard/account/accountsrv"
	"github.com/Makanak1/Job-Board-Platform/pkg/iam/auth"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// Handlers provides HTTP handlers for account operations
type Handlers struct {
	service  *accountsrv.AccountService
	validate *validator.Validate
}

// NewHandlers creates a new account handlers instance
func NewHandlers(service *accountsrv.AccountService) *Handlers {
	return &Handlers{
		service:  service,
		validate: validator.New(),
	}
}

// Register creates a new account
// POST /api/auth/register
func (h *Handlers) Register(c *fiber.Ctx) error {
	var req account.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return account.ErrInvalidRequest().WithDetail("parse_error", err.Error())
	}

	if err := h.validate.Struct(req); err != nil {
		return account.ErrInvalidRequest().WithDetail("validation_error", err.Error())
	}

	resp, err := h.service.Register(c.Context(), req)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(resp)
}

// Login authenticates a user
// POST /api/auth/login
func (h *Handlers) Login(c *fiber.Ctx) error {
	var req account.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return account.ErrInvalidRequest().WithDetail("parse_error", err.Error())
	}

	if err := h.validate.Struct(req); err != nil {
		return account.ErrInvalidRequest().WithDetail("validation_error", err.Error())
	}

	resp, err := h.service.Login(c.Context(), req)
	if err != nil {
		return err
	}

	return c.JSON(resp)
}

// Refresh exchanges a refresh token for new tokens
// POST /api/auth/refresh
func (h *Handlers) Refresh(c *fiber.Ctx) error {
	var req account.RefreshRequest
	if err := c.BodyParser(&req); err != nil {
		return account.ErrInvalidRequest().WithDetail("parse_error", err.Error())
	}

	if err := h.validate.Struct(req); err != nil {
		return account.ErrInvalidRequest().WithDetail("validation_error", err.Error())
	}

	tokens, err := h.service.Refresh(c.Context(), req.RefreshToken)
	if err != nil {
		return err
	}

	return c.JSON(tokens)
}

// GetProfile retrieves the authenticated user's account
// GET /api/auth/me
func (h *Handlers) GetProfile(c *fiber.Ctx) error {
	authContext, ok := auth.GetAuthContext(c)
	if !ok {
		return auth.ErrMissingToken()
	}

	profile, err := h.service.GetProfile(c.Context(), authContext.UserID)
	if err != nil {
		return err
	}

	return c.JSON(profile)
}

// UpdateProfile updates account-level profile fields
// PATCH /api/auth/me
func (h *Handlers) UpdateProfile(c *fiber.Ctx) error {
	authContext, ok := auth.GetAuthContext(c)
	if !ok {
		return auth.ErrMissingToken()
	}

	var req account.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return account.ErrInvalidRequest().WithDetail("parse_error", err.Error())
	}

	if err := h.validate.Struct(req); err != nil {
		return account.ErrInvalidRequest().WithDetail("validation_error", err.Error())
	}

	profile, err := h.service.UpdateProfile(c.Context(), authContext.UserID, req)
	if err != nil {
		return err
	}

	return c.JSON(profile)
}

// ChangePassword changes the authenticated user's password
// POST /api/auth/change-password
func (h *Handlers) ChangePassword(c *fiber.Ctx) error {
	authContext, ok := auth.GetAuthContext(c)
	if !ok {
		return auth.ErrMissingToken()
	}

	var req account.ChangePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return account.ErrInvalidRequest().WithDetail("parse_error", err.Error())
	}

	if err := h.validate.Struct(req); err != nil {
		return account.ErrInvalidRequest().WithDetail("validation_error", err.Error())
	}

	if err := h.service.ChangePassword(c.Context(), authContext.UserID, req); err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Password changed successfully",
	})
}

// RegisterRoutes registers all account routes
func RegisterRoutes(app *fiber.App, handlers *Handlers, authMiddleware fiber.Handler) {
	api := app.Group("/api/auth")

	api.Post("/register", handlers.Register)
	api.Post("/login", handlers.Login)
	api.Post("/refresh", handlers.Refresh)

	api.Get("/me", authMiddleware, handlers.GetProfile)
	api.Patch("/me", authMiddleware, handlers.UpdateProfile)
	api.Post("/change-password", authMiddleware, handlers.ChangePassword)
}
