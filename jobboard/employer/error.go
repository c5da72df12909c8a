package employer

import (
	"net/http"

	"github.com/Makanak1/Job-Board-Platform/pkg/errx"
)

var ErrRegistry = errx.NewRegistry("EMPLOYER")

var (
	CodeNotFound = ErrRegistry.Register(
		"NOT_FOUND",
		errx.TypeNotFound,
		http.StatusNotFound,
		"Employer profile not found")

	CodeAlreadyExists = ErrRegistry.Register(
		"ALREADY_EXISTS",
		errx.TypeConflict,
		http.StatusConflict,
		"Employer profile already exists for this user")

	CodeNotAnEmployer = ErrRegistry.Register(
		"NOT_AN_EMPLOYER",
		errx.TypeAuthorization,
		http.StatusForbidden,
		"This operation requires an employer account")

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

func ErrAlreadyExists() *errx.Error {
	return ErrRegistry.New(CodeAlreadyExists)
}

func ErrNotAnEmployer() *errx.Error {
	return ErrRegistry.New(CodeNotAnEmployer)
}

func ErrInvalidRequest() *errx.Error {
	return ErrRegistry.New(CodeInvalidRequest)
}
