package application

import (
	"net/http"

	"github.com/Makanak1/Job-Board-Platform/pkg/errx"
)

var ErrRegistry = errx.NewRegistry("APPLICATION")

var (
	CodeNotFound = ErrRegistry.Register(
		"NOT_FOUND",
		errx.TypeNotFound,
		http.StatusNotFound,
		"Application not found")

	CodeAlreadyApplied = ErrRegistry.Register(
		"ALREADY_APPLIED",
		errx.TypeConflict,
		http.StatusConflict,
		"You have already applied to this job")

	CodeJobNotActive = ErrRegistry.Register(
		"JOB_NOT_ACTIVE",
		errx.TypeBusiness,
		http.StatusBadRequest,
		"This job posting is not accepting applications")

	CodeJobExpired = ErrRegistry.Register(
		"JOB_EXPIRED",
		errx.TypeBusiness,
		http.StatusBadRequest,
		"The application deadline for this job has passed")

	CodeInvalidResume = ErrRegistry.Register(
		"INVALID_RESUME",
		errx.TypeValidation,
		http.StatusBadRequest,
		"Resume does not exist or belongs to another candidate")

	CodeInvalidStatus = ErrRegistry.Register(
		"INVALID_STATUS",
		errx.TypeValidation,
		http.StatusBadRequest,
		"Invalid application status")

	CodeCannotWithdraw = ErrRegistry.Register(
		"CANNOT_WITHDRAW",
		errx.TypeBusiness,
		http.StatusBadRequest,
		"Application can no longer be withdrawn")

	CodeInsufficientPermissions = ErrRegistry.Register(
		"INSUFFICIENT_PERMISSIONS",
		errx.TypeAuthorization,
		http.StatusForbidden,
		"You do not have permission to perform this operation")

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

func ErrAlreadyApplied() *errx.Error {
	return ErrRegistry.New(CodeAlreadyApplied)
}

func ErrJobNotActive() *errx.Error {
	return ErrRegistry.New(CodeJobNotActive)
}

func ErrJobExpired() *errx.Error {
	return ErrRegistry.New(CodeJobExpired)
}

func ErrInvalidResume() *errx.Error {
	return ErrRegistry.New(CodeInvalidResume)
}

func ErrInvalidStatus() *errx.Error {
	return ErrRegistry.New(CodeInvalidStatus)
}

func ErrCannotWithdraw() *errx.Error {
	return ErrRegistry.New(CodeCannotWithdraw)
}

func ErrInsufficientPermissions() *errx.Error {
	return ErrRegistry.New(CodeInsufficientPermissions)
}

func ErrInvalidRequest() *errx.Error {
	return ErrRegistry.New(CodeInvalidRequest)
}
