package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/99minutos/time-tracker/docs"
	"github.com/99minutos/time-tracker/internal/api/handler"
	"github.com/99minutos/time-tracker/internal/api/middleware"
	"github.com/99minutos/time-tracker/internal/core/ports"
)

const metricsSubsystem = "http"

// Dependencies is everything the router wires into handlers.
type Dependencies struct {
	TimeLogs ports.TimeLogService
	// Store backs the readiness probe.
	Store  handler.Pinger
	Logger zerolog.Logger
	// Registry receives the HTTP metrics and serves /metrics. Nil means the
	// Prometheus default registry.
	Registry *prometheus.Registry
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	var (
		registerer prometheus.Registerer = prometheus.DefaultRegisterer
		gatherer   prometheus.Gatherer   = prometheus.DefaultGatherer
	)
	if deps.Registry != nil {
		registerer, gatherer = deps.Registry, deps.Registry
	}

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(middleware.RequestLogger(deps.Logger))
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:  metricsSubsystem,
		Registerer: registerer,
	}))

	// --- Time log routes ---
	timeLogHandler := handler.NewTimeLogHandler(deps.TimeLogs)

	e.GET("/", timeLogHandler.Welcome)
	e.POST("/clock_in/:user_id", timeLogHandler.ClockIn)
	e.POST("/clock_out/:user_id", timeLogHandler.ClockOut)
	e.GET("/view_time_log/:user_id", timeLogHandler.View)

	// --- Health probes ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(map[string]handler.Pinger{
		"time_logs": deps.Store,
	})

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – is the time log file usable?

	// --- Ops ---
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: gatherer}))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
