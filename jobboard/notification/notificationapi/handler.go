package notificationapi

import (
	"github.com/Makanak1/Job-Board-Platform/jobboard/notification"
	"github.com/Makanak1/Job-Board-Platform/jobboard/notification/notificationsrv"
	"github.com/Makanak1/Job-Board-Platform/pkg/iam/auth"
	"github.com/Makanak1/Job-Board-Platform/pkg/kernel"
	"github.com/gofiber/fiber/v2"
)

// Handlers provides HTTP handlers for notification operations
type Handlers struct {
	service *notificationsrv.NotificationService
}

// NewHandlers creates a new notification handlers instance
func NewHandlers(service *notificationsrv.NotificationService) *Handlers {
	return &Handlers{service: service}
}

// ListMine lists the caller's notifications, newest first
// GET /api/notifications
func (h *Handlers) ListMine(c *fiber.Ctx) error {
	authContext, ok := auth.GetAuthContext(c)
	if !ok {
		return auth.ErrMissingToken()
	}

	pagination := parsePaginationOptions(c)
	unreadOnly := c.Query("unread_only") == "true"

	notifications, err := h.service.ListMine(c.Context(), authContext.UserID, unreadOnly, pagination)
	if err != nil {
		return err
	}

	return c.JSON(notifications)
}

// CountUnread returns the caller's unread notification count
// GET /api/notifications/unread-count
func (h *Handlers) CountUnread(c *fiber.Ctx) error {
	authContext, ok := auth.GetAuthContext(c)
	if !ok {
		return auth.ErrMissingToken()
	}

	count, err := h.service.CountUnread(c.Context(), authContext.UserID)
	if err != nil {
		return err
	}

	return c.JSON(notification.UnreadCountResponse{Unread: count})
}

// MarkRead marks one of the caller's notifications as read
// POST /api/notifications/:id/read
func (h *Handlers) MarkRead(c *fiber.Ctx) error {
	authContext, ok := auth.GetAuthContext(c)
	if !ok {
		return auth.ErrMissingToken()
	}

	notificationID := kernel.NotificationID(c.Params("id"))
	if notificationID == "" {
		return notification.ErrNotFound().WithDetail("id", "missing or empty")
	}

	if err := h.service.MarkRead(c.Context(), authContext.UserID, notificationID); err != nil {
		return err
	}

	return c.JSON(fiber.Map{"message": "Notification marked as read"})
}

// MarkAllRead marks every unread notification of the caller as read
// POST /api/notifications/read-all
func (h *Handlers) MarkAllRead(c *fiber.Ctx) error {
	authContext, ok := auth.GetAuthContext(c)
	if !ok {
		return auth.ErrMissingToken()
	}

	updated, err := h.service.MarkAllRead(c.Context(), authContext.UserID)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"message": "All notifications marked as read",
		"updated": updated,
	})
}

// Delete removes one of the caller's notifications
// DELETE /api/notifications/:id
func (h *Handlers) Delete(c *fiber.Ctx) error {
	authContext, ok := auth.GetAuthContext(c)
	if !ok {
		return auth.ErrMissingToken()
	}

	notificationID := kernel.NotificationID(c.Params("id"))
	if notificationID == "" {
		return notification.ErrNotFound().WithDetail("id", "missing or empty")
	}

	if err := h.service.Delete(c.Context(), authContext.UserID, notificationID); err != nil {
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

// RegisterRoutes registers all notification routes
func RegisterRoutes(app *fiber.App, handlers *Handlers, authMiddleware fiber.Handler) {
	api := app.Group("/api/notifications", authMiddleware)

	api.Get("/", handlers.ListMine)
	api.Get("/unread-count", handlers.CountUnread)
	api.Post("/read-all", handlers.MarkAllRead)
	api.Post("/:id/read", handlers.MarkRead)
	api.Delete("/:id", handlers.Delete)
}
