package account

import (
	"net/http"

	"github.com/Makanak1/Job-Board-Platform/pkg/errx"
)

var ErrRegistry = errx.NewRegistry("ACCOUNT")

var (
	CodeNotFound = ErrRegistry.Register(
		"NOT_FOUND",
		errx.TypeNotFound,
		http.StatusNotFound,
		"User not found")

	CodeEmailTaken = ErrRegistry.Register(
		"EMAIL_TAKEN",
		errx.TypeConflict,
		http.StatusConflict,
		"An account with this email already exists")

	CodeInvalidCredentials = ErrRegistry.Register(
		"INVALID_CREDENTIALS",
		errx.TypeAuthentication,
		http.StatusUnauthorized,
		"Invalid email or password")

	CodeWrongPassword = ErrRegistry.Register(
		"WRONG_PASSWORD",
		errx.TypeValidation,
		http.StatusBadRequest,
		"Current password is incorrect")

	CodeInvalidUserType = ErrRegistry.Register(
		"INVALID_USER_TYPE",
		errx.TypeValidation,
		http.StatusBadRequest,
		"Invalid user type")

	CodeInvalidRequest = ErrRegistry.Register(
		"INVALID_REQUEST",
		errx.TypeValidation,
		http.StatusBadRequest,
		"Invalid request payload")

	CodeDatabaseError = ErrRegistry.Register(
		"DATABASE_ERROR",
		errx.TypeInternal,
		http.StatusInternalServerError,
		"Database operation failed")
)

// ============================================================================
// Error Helper Functions
// ============================================================================

func ErrNotFound() *errx.Error {
	return ErrRegistry.New(CodeNotFound)
}

func ErrEmailTaken() *errx.Error {
	return ErrRegistry.New(CodeEmailTaken)
}

func ErrInvalidCredentials() *errx.Error {
	return ErrRegistry.New(CodeInvalidCredentials)
}

func ErrWrongPassword() *errx.Error {
	return ErrRegistry.New(CodeWrongPassword)
}

func ErrInvalidUserType() *errx.Error {
	return ErrRegistry.New(CodeInvalidUserType)
}

func ErrInvalidRequest() *errx.Error {
	return ErrRegistry.New(CodeInvalidRequest)
}

func ErrDatabaseError() *errx.Error {
	return ErrRegistry.New(CodeDatabaseError)
}
