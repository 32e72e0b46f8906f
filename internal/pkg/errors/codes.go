package errors

import "net/http"

var (
	ErrUnknownTarget = New(
		"NAVIGATION_UNKNOWN_TARGET",
		"Target not found in reference geography",
		http.StatusUnprocessableEntity,
	)

	ErrFilterValidation = New(
		"FILTER_VALIDATION",
		"Invalid filter criteria",
		http.StatusBadRequest,
	)

	ErrSessionNotFound = New(
		"SESSION_NOT_FOUND",
		"Dashboard session not found or expired",
		http.StatusNotFound,
	)

	ErrSessionLimit = New(
		"SESSION_LIMIT_REACHED",
		"Too many concurrent dashboard sessions",
		http.StatusServiceUnavailable,
	)

	ErrInvalidRequest = New(
		"INVALID_REQUEST",
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrDatabaseError = New(
		"DATABASE_ERROR",
		"Database operation failed",
		http.StatusInternalServerError,
	)

	ErrCacheError = New(
		"CACHE_ERROR",
		"Cache operation failed",
		http.StatusInternalServerError,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)
