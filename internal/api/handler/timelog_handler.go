package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/99minutos/time-tracker/internal/api/metrics"
	"github.com/99minutos/time-tracker/internal/core/domain"
	"github.com/99minutos/time-tracker/internal/core/ports"
)

const welcomeMessage = "Welcome to the Time Tracker API. Use /clock_in/<user_id>, /clock_out/<user_id>, or /view_time_log/<user_id> to interact with the app."

// TimeLogHandler handles HTTP requests for clock operations.
type TimeLogHandler struct {
	service ports.TimeLogService
}

func NewTimeLogHandler(service ports.TimeLogService) *TimeLogHandler {
	return &TimeLogHandler{service: service}
}

// Welcome handles GET /.
//
// @Summary      Welcome message
// @Tags         meta
// @Produce      json
// @Success      200  {object}  messageResponse
// @Router       / [get]
func (h *TimeLogHandler) Welcome(c echo.Context) error {
	return c.JSON(http.StatusOK, messageResponse{Message: welcomeMessage})
}

// ClockIn handles POST /clock_in/:user_id.
//
// @Summary      Clock a user in
// @Tags         time_logs
// @Produce      json
// @Param        user_id  path      string  true  "User identifier"
// @Success      200      {object}  messageResponse
// @Failure      400      {object}  messageResponse  "already clocked in"
// @Failure      422      {object}  errorResponse
// @Failure      500      {object}  errorResponse
// @Router       /clock_in/{user_id} [post]
func (h *TimeLogHandler) ClockIn(c echo.Context) error {
	userID, err := bindUserID(c)
	if err != nil {
		return err
	}

	timer := prometheus.NewTimer(metrics.StoreOperationDuration.WithLabelValues("clock_in"))
	result, err := h.service.ClockIn(c.Request().Context(), userID)
	timer.ObserveDuration()
	countOperation("clock_in", err)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toClockInResponse(result))
}

// ClockOut handles POST /clock_out/:user_id.
//
// @Summary      Clock a user out
// @Description  Closes the open session and reports the worked time in hours.
// @Tags         time_logs
// @Produce      json
// @Param        user_id  path      string  true  "User identifier"
// @Success      200      {object}  clockOutResponse
// @Failure      400      {object}  messageResponse  "not clocked in"
// @Failure      422      {object}  errorResponse
// @Failure      500      {object}  errorResponse
// @Router       /clock_out/{user_id} [post]
func (h *TimeLogHandler) ClockOut(c echo.Context) error {
	userID, err := bindUserID(c)
	if err != nil {
		return err
	}

	timer := prometheus.NewTimer(metrics.StoreOperationDuration.WithLabelValues("clock_out"))
	result, err := h.service.ClockOut(c.Request().Context(), userID)
	timer.ObserveDuration()
	countOperation("clock_out", err)
	if err != nil {
		return err
	}

	metrics.SessionDurationHours.Observe(result.TotalHours)
	return c.JSON(http.StatusOK, toClockOutResponse(result))
}

// View handles GET /view_time_log/:user_id.
//
// @Summary      View a user's time log
// @Tags         time_logs
// @Produce      json
// @Param        user_id  path      string  true  "User identifier"
// @Success      200      {object}  timeLogResponse
// @Failure      404      {object}  messageResponse  "no time log"
// @Failure      422      {object}  errorResponse
// @Failure      500      {object}  errorResponse
// @Router       /view_time_log/{user_id} [get]
func (h *TimeLogHandler) View(c echo.Context) error {
	userID, err := bindUserID(c)
	if err != nil {
		return err
	}

	timer := prometheus.NewTimer(metrics.StoreOperationDuration.WithLabelValues("view"))
	view, err := h.service.View(c.Request().Context(), userID)
	timer.ObserveDuration()
	countOperation("view", err)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toTimeLogResponse(view))
}

func bindUserID(c echo.Context) (string, error) {
	var p userPathParams
	if err := (&echo.DefaultBinder{}).BindPathParams(c, &p); err != nil {
		return "", echo.NewHTTPError(http.StatusBadRequest, "invalid request")
	}
	if err := c.Validate(&p); err != nil {
		return "", echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}
	return p.UserID, nil
}

func countOperation(operation string, err error) {
	result := "ok"
	if err != nil {
		result = domain.KindOf(err).String()
	}
	metrics.ClockOperationsTotal.WithLabelValues(operation, result).Inc()
}
