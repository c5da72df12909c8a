package job

import (
	"net/http"

	"github.com/Makanak1/Job-Board-Platform/pkg/errx"
)

var ErrRegistry = errx.NewRegistry("JOB")

var (
	CodeNotFound = ErrRegistry.Register(
		"NOT_FOUND",
		errx.TypeNotFound,
		http.StatusNotFound,
		"Job posting not found")

	CodeNotOwner = ErrRegistry.Register(
		"NOT_OWNER",
		errx.TypeAuthorization,
		http.StatusForbidden,
		"Job posting belongs to another employer")

	CodeInvalidJobType = ErrRegistry.Register(
		"INVALID_JOB_TYPE",
		errx.TypeValidation,
		http.StatusBadRequest,
		"Invalid job type")

	CodeInvalidExperienceLevel = ErrRegistry.Register(
		"INVALID_EXPERIENCE_LEVEL",
		errx.TypeValidation,
		http.StatusBadRequest,
		"Invalid experience level")

	CodeInvalidSalaryRange = ErrRegistry.Register(
		"INVALID_SALARY_RANGE",
		errx.TypeValidation,
		http.StatusBadRequest,
		"Minimum salary cannot exceed maximum salary")

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

func ErrNotOwner() *errx.Error {
	return ErrRegistry.New(CodeNotOwner)
}

func ErrInvalidJobType() *errx.Error {
	return ErrRegistry.New(CodeInvalidJobType)
}

func ErrInvalidExperienceLevel() *errx.Error {
	return ErrRegistry.New(CodeInvalidExperienceLevel)
}

func ErrInvalidSalaryRange() *errx.Error {
	return ErrRegistry.New(CodeInvalidSalaryRange)
}

func ErrInvalidRequest() *errx.Error {
	return ErrRegistry.New(CodeInvalidRequest)
}
