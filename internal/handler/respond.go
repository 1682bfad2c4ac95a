// Package handler provides HTTP handlers for API endpoints.
package handler

import (
	"errors"
	"net/http"
	"strconv"

	"continuity/internal/services"
	"continuity/internal/transport/httpdto"
	continuity_errors "continuity/pkg/errors"

	"github.com/gin-gonic/gin"
)

func writeError(c *gin.Context, err error) {
	c.JSON(services.HTTPStatus(err), httpdto.NewErrorResponse(err.Error(), errorCode(err)))
}

func errorCode(err error) string {
	switch {
	case errors.Is(err, continuity_errors.ErrInvalidInput):
		return "INVALID_REQUEST"
	case errors.Is(err, continuity_errors.ErrUnauthorized):
		return "UNAUTHORIZED"
	case errors.Is(err, continuity_errors.ErrForbidden):
		return "FORBIDDEN"
	case errors.Is(err, continuity_errors.ErrNotFound):
		return "NOT_FOUND"
	case errors.Is(err, continuity_errors.ErrAlreadyExists), errors.Is(err, continuity_errors.ErrConflict):
		return "CONFLICT"
	case errors.Is(err, continuity_errors.ErrRateLimited):
		return "RATE_LIMITED"
	default:
		return "REQUEST_FAILED"
	}
}

func pathID(c *gin.Context, name string) (int, bool) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, httpdto.NewErrorResponse("invalid "+name, "INVALID_REQUEST"))
		return 0, false
	}
	return id, true
}
