package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jessevdk/go-flags"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/99minutos/time-tracker/internal/api"
	"github.com/99minutos/time-tracker/internal/core/service"
	"github.com/99minutos/time-tracker/internal/infrastructure/db/jsonfile"
	"github.com/99minutos/time-tracker/internal/pkg/clock"
	"github.com/99minutos/time-tracker/internal/pkg/config"
	"github.com/99minutos/time-tracker/pkg/logger"
)

const shutdownTimeout = 5 * time.Second

type Options struct {
	EnvFile string `long:"env-file" default:".env" description:"dotenv file loaded before reading the environment; ignored when missing"`
}

// @title           Time Tracker API
// @version         1.0
// @description     Clock users in and out and report the hours they worked.
// @BasePath        /
func main() {
	var opts Options
	if _, err := flags.NewParser(&opts, flags.Default).Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(2)
	}

	if err := run(opts); err != nil {
		fmt.Fprintf(os.Stderr, "time-tracker: %v\n", err)
		os.Exit(1)
	}
}

func run(opts Options) error {
	if err := godotenv.Load(opts.EnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load %s: %w", opts.EnvFile, err)
	}

	ctx := context.Background()
	cfg, err := config.Load(ctx)
	if err != nil {
		return err
	}

	log := logger.New(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  !cfg.IsProduction(),
		Service: "time-tracker",
	})

	repo, err := jsonfile.NewTimeLogRepository(jsonfile.Config{Path: cfg.Store.Path})
	if err != nil {
		return err
	}
	log.Info().Str("path", repo.Path()).Msg("time log store ready")

	timeLogs := service.NewTimeLogService(repo, clock.Real{}, log)

	server := api.NewServer(api.ServerConfig{
		Port:           cfg.Port,
		AllowedOrigins: cfg.Origins(),
	}, api.Dependencies{
		TimeLogs: timeLogs,
		Store:    repo,
		Logger:   log,
	})

	return serve(server, log)
}

// serve runs the server until SIGINT/SIGTERM, then drains in-flight requests.
func serve(server *http.Server, log zerolog.Logger) error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(stop)

	serveErr := make(chan error, 1)
	go func() {
		log.Info().Str("addr", server.Addr).Msg("listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("server: %w", err)
		}
		return nil
	case sig := <-stop:
		log.Info().Str("signal", sig.String()).Msg("shutdown signal received")
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	log.Info().Msg("server stopped gracefully")
	return nil
}
