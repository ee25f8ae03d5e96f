package middleware

import (
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"
)

// RequestID tags every request with a ULID, honouring an incoming
// X-Request-Id header.
func RequestID() echo.MiddlewareFunc {
	return echomiddleware.RequestIDWithConfig(echomiddleware.RequestIDConfig{
		Generator: func() string {
			return ulid.Make().String()
		},
	})
}

// RequestLogger writes one structured line per request through log.
// Server errors log at error level, client errors at warn, the rest at info.
func RequestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogRemoteIP:  true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			var ev *zerolog.Event
			switch {
			case v.Status >= 500:
				ev = log.Error().Err(v.Error)
			case v.Status >= 400:
				ev = log.Warn()
			default:
				ev = log.Info()
			}

			ev.Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("request_id", v.RequestID).
				Str("remote_ip", v.RemoteIP).
				Msg("request")
			return nil
		},
	})
}
