package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apperrors "land-marketplace-service/pkg/errors"
	"land-marketplace-service/pkg/logger"
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// Pagination represents pagination information
type Pagination struct {
	Total      int64 `json:"total"`
	Page       int64 `json:"page"`
	Limit      int64 `json:"limit"`
	TotalPages int64 `json:"totalPages"`
}

// MessageResponse is returned by endpoints whose client only shows a message.
type MessageResponse struct {
	Message string `json:"message"`
	ID      int64  `json:"_id,omitempty"`
}

// IDResponse carries the id of a created or deleted record.
type IDResponse struct {
	ID int64 `json:"_id"`
}

// handleError converts usecase errors to HTTP responses. Client-facing messages pass through
// verbatim; anything untyped becomes a generic 500.
func handleError(c *gin.Context, log *zap.Logger, err error) {
	status := apperrors.StatusOf(err)
	log = logger.WithContext(c.Request.Context(), log)

	if status >= http.StatusInternalServerError {
		log.Error("request failed", zap.String("path", c.FullPath()), zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "internal_error",
			Message: "An internal error occurred",
		})
		return
	}

	log.Debug("request rejected", zap.Int("status", status), zap.Error(err))
	c.JSON(status, ErrorResponse{
		Error:   errorCode(err),
		Message: err.Error(),
	})
}

func errorCode(err error) string {
	var (
		validationErr   *apperrors.ValidationError
		notFoundErr     *apperrors.NotFoundError
		alreadyExistErr *apperrors.AlreadyExistsError
		unauthorizedErr *apperrors.UnauthorizedError
	)
	switch {
	case errors.As(err, &validationErr):
		return "validation_error"
	case errors.As(err, &notFoundErr):
		return "not_found"
	case errors.As(err, &alreadyExistErr):
		return "already_exists"
	case errors.As(err, &unauthorizedErr):
		return "unauthorized"
	default:
		return "internal_error"
	}
}

// badRequest writes a 400 for malformed input that never reached a usecase.
func badRequest(c *gin.Context, code, message string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: code, Message: message})
}

// parseID reads a positive int64 path or query parameter.
func parseID(raw string) (int64, bool) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// parsePaging reads page and limit; out-of-range values are clamped by the usecases.
func parsePaging(c *gin.Context) (int64, int64) {
	page, err := strconv.ParseInt(c.DefaultQuery("page", "1"), 10, 64)
	if err != nil {
		page = 1
	}
	limit, err := strconv.ParseInt(c.DefaultQuery("limit", "10"), 10, 64)
	if err != nil {
		limit = 10
	}
	return page, limit
}
