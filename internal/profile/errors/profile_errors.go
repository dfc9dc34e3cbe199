package profileerrors

import (
	"net/http"

	"worknest/internal/shared/apperror"
)

var (
	ErrProfileNotFound = apperror.New(
		apperror.CodeNotFound,
		"Profile not found",
		http.StatusNotFound,
	)

	ErrInvalidCredentials = apperror.New(
		apperror.CodeUnauthorized,
		"Invalid email or password",
		http.StatusUnauthorized,
	)

	ErrNoReportingManager = apperror.New(
		apperror.CodeNotFound,
		"Staff member has no reporting manager",
		http.StatusNotFound,
	)
)
