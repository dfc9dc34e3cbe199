package wfhrequesterrors

import (
	"net/http"

	"worknest/internal/shared/apperror"
)

var (
	ErrRequestNotFound = apperror.New(
		apperror.CodeNotFound,
		"Request not found",
		http.StatusNotFound,
	)
	ErrInvalidRequestID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid request id",
		http.StatusBadRequest,
	)
	ErrInvalidStaffID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid staff id",
		http.StatusBadRequest,
	)
	ErrNoRequestedDates = apperror.New(
		apperror.CodeInvalidInput,
		"requested_dates must contain at least one date",
		http.StatusBadRequest,
	)
	ErrInvalidDateFormat = apperror.New(
		apperror.CodeInvalidInput,
		"invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrDuplicateDates = apperror.New(
		apperror.CodeInvalidInput,
		"requested_dates must not repeat",
		http.StatusBadRequest,
	)
	ErrManagerLookupFailed = apperror.New(
		apperror.CodeDownstreamUnavailable,
		"profile service unavailable, cannot resolve reporting manager",
		http.StatusServiceUnavailable,
	)
)
