package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/99minutos/time-tracker/internal/core/domain"
)

// errorResponse is the envelope for echo and internal errors.
type errorResponse struct {
	Error string `json:"error"`
}

// messageResponse is the envelope for rejected clock operations.
type messageResponse struct {
	Message string `json:"message"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Renders conflicts as 400 and unknown users as 404 with {"message": ...}.
//   - Keeps echo's own status codes (routing, binding, validation).
//   - Logs anything else and returns 500 with the error text.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, body := resolveError(err, log, c)
		_ = c.JSON(code, body)
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, any) {
	// Echo's own errors (bind failures, 404 from router, validation, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, errorResponse{Error: fmt.Sprintf("%v", he.Message)}
	}

	userID := c.Param("user_id")

	switch domain.KindOf(err) {
	case domain.KindConflict:
		return http.StatusBadRequest, messageResponse{Message: conflictMessage(err, userID)}
	case domain.KindNotFound:
		return http.StatusNotFound, messageResponse{Message: fmt.Sprintf("No time log found for user %s.", userID)}
	}

	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Str("user_id", userID).
		Msg("unhandled error")

	return http.StatusInternalServerError, errorResponse{Error: err.Error()}
}

func conflictMessage(err error, userID string) string {
	if errors.Is(err, domain.ErrAlreadyClockedIn) {
		return fmt.Sprintf("User %s is already clocked in.", userID)
	}
	return fmt.Sprintf("User %s is not clocked in.", userID)
}
