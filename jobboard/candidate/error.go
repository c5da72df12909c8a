package candidate

import (
	"net/http"

	"github.com/Makanak1/Job-Board-Platform/pkg/errx"
)

var ErrRegistry = errx.NewRegistry("CANDIDATE")

var (
	CodeNotFound = ErrRegistry.Register(
		"NOT_FOUND",
		errx.TypeNotFound,
		http.StatusNotFound,
		"Candidate profile not found")

	CodeAlreadyExists = ErrRegistry.Register(
		"ALREADY_EXISTS",
		errx.TypeConflict,
		http.StatusConflict,
		"Candidate profile already exists for this user")

	CodeNotACandidate = ErrRegistry.Register(
		"NOT_A_CANDIDATE",
		errx.TypeAuthorization,
		http.StatusForbidden,
		"This operation requires a candidate account")

	CodeResumeNotFound = ErrRegistry.Register(
		"RESUME_NOT_FOUND",
		errx.TypeNotFound,
		http.StatusNotFound,
		"Resume not found")

	CodeInvalidFileType = ErrRegistry.Register(
		"INVALID_FILE_TYPE",
		errx.TypeValidation,
		http.StatusBadRequest,
		"Unsupported resume file type")

	CodeFileSizeTooLarge = ErrRegistry.Register(
		"FILE_SIZE_TOO_LARGE",
		errx.TypeValidation,
		http.StatusBadRequest,
		"Resume file exceeds the size limit")

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

func ErrNotACandidate() *errx.Error {
	return ErrRegistry.New(CodeNotACandidate)
}

func ErrResumeNotFound() *errx.Error {
	return ErrRegistry.New(CodeResumeNotFound)
}

func ErrInvalidFileType() *errx.Error {
	return ErrRegistry.New(CodeInvalidFileType)
}

func ErrFileSizeTooLarge() *errx.Error {
	return ErrRegistry.New(CodeFileSizeTooLarge)
}

func ErrInvalidRequest() *errx.Error {
	return ErrRegistry.New(CodeInvalidRequest)
}
