package report

import (
	"net/http"

	"github.com/Makanak1/Job-Board-Platform/pkg/errx"
)

var ErrRegistry = errx.NewRegistry("REPORT")

var (
	CodeAdminOnly = ErrRegistry.Register(
		"ADMIN_ONLY",
		errx.TypeAuthorization,
		http.StatusForbidden,
		"Reports are restricted to platform administrators")

	CodeGenerationFailed = ErrRegistry.Register(
		"GENERATION_FAILED",
		errx.TypeInternal,
		http.StatusInternalServerError,
		"Failed to generate report")
)

func ErrAdminOnly() *errx.Error {
	return ErrRegistry.New(CodeAdminOnly)
}

func ErrGenerationFailed() *errx.Error {
	return ErrRegistry.New(CodeGenerationFailed)
}
