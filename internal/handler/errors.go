package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"inspoboard/internal/service"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

// respondError maps the service error taxonomy onto HTTP statuses. Errors
// outside the taxonomy are logged and answered with a generic 500.
func respondError(c *gin.Context, err error) {
	var verr *service.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: verr.Reason, Field: verr.Field})
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case errors.Is(err, service.ErrConstraintViolation):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	default:
		slog.ErrorContext(c.Request.Context(), "request failed",
			"method", c.Request.Method,
			"route", c.FullPath(),
			"error", err,
		)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
	}
}

func invalidBody(c *gin.Context) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
}
