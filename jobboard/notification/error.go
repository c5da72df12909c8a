package notification

import (
	"net/http"

	"github.com/Makanak1/Job-Board-Platform/pkg/errx"
)

var ErrRegistry = errx.NewRegistry("NOTIFICATION")

var (
	CodeNotFound = ErrRegistry.Register(
		"NOT_FOUND",
		errx.TypeNotFound,
		http.StatusNotFound,
		"Notification not found")

	CodeQueueUnavailable = ErrRegistry.Register(
		"QUEUE_UNAVAILABLE",
		errx.TypeExternal,
		http.StatusServiceUnavailable,
		"Email queue is unavailable")

	CodeInvalidRequest = ErrRegistry.Register(
		"INVALID_REQUEST",
		errx.TypeValidation,
		http.StatusBadRequest,
		"Invalid request payload")
)

// ============================================================================
// Error Helper Functions
// ============================================================================

func ErrNotFound() *errx.Error {
	return ErrRegistry.New(CodeNotFound)
}

func ErrQueueUnavailable() *errx.Error {
	return ErrRegistry.New(CodeQueueUnavailable)
}

func ErrInvalidRequest() *errx.Error {
	return ErrRegistry.New(CodeInvalidRequest)
}
