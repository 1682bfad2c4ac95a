package services

import (
	"errors"
	"net/http"
	"time"

	continuity_errors "continuity/pkg/errors"
)

// HTTPStatus maps service errors to HTTP status codes.
func HTTPStatus(err error) int {
	switch {
	case errors.Is(err, continuity_errors.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, continuity_errors.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, continuity_errors.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, continuity_errors.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, continuity_errors.ErrAlreadyExists), errors.Is(err, continuity_errors.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, continuity_errors.ErrRateLimited):
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

func coalesceString(v *string, fallback string) string {
	if v != nil {
		return *v
	}
	return fallback
}

func coalesceStringPtr(v *string, fallback *string) *string {
	if v != nil {
		return v
	}
	return fallback
}

func coalesceBool(v *bool, fallback bool) bool {
	if v != nil {
		return *v
	}
	return fallback
}

func coalesceInt64(v *int64, fallback int64) int64 {
	if v != nil {
		return *v
	}
	return fallback
}

func coalesceIntPtr(v *int, fallback *int) *int {
	if v != nil {
		return v
	}
	return fallback
}

func coalesceTimePtr(v *time.Time, fallback *time.Time) *time.Time {
	if v != nil {
		return v
	}
	return fallback
}
