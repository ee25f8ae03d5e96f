package api

import (
	"net/http"
	"time"

	"github.com/rs/cors"
)

// ServerConfig is the startup configuration of the HTTP server.
type ServerConfig struct {
	Port           string
	AllowedOrigins []string
}

// NewServer wraps the router with CORS so the browser dashboard can call the
// API from its own origin, and returns a ready to start http.Server.
func NewServer(cfg ServerConfig, deps Dependencies) *http.Server {
	router := NewRouter(deps)

	c := cors.New(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "X-Request-Id"},
		ExposedHeaders: []string{"X-Request-Id"},
	})

	return &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           c.Handler(router),
		ReadHeaderTimeout: 30 * time.Second,
	}
}
