package app

import (
	"context"
	"fmt"
	"log/slog"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"lottoscope/internal/config"
	apierrors "lottoscope/internal/errors"
	"lottoscope/internal/infrastructure"
	custommiddleware "lottoscope/internal/middleware"
	"lottoscope/internal/services"
	transporthttp "lottoscope/internal/transport/http"
)

// Version is stamped at build time.
var Version = "dev"

// Application wires configuration, logging, the analysis service and the
// HTTP transport into one runnable server.
type Application struct {
	Config  *config.Config
	Logger  *slog.Logger
	Service *services.AnalysisService
	Server  *nethttp.Server
}

// NewApplication builds a fully wired application from the environment.
func NewApplication() (*Application, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	if err := cfg.EnsureDirectories(); err != nil {
		return nil, err
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	app := &Application{
		Config:  cfg,
		Logger:  logger,
		Service: services.NewAnalysisService(logger),
	}
	app.Server = &nethttp.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      app.router(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}
	return app, nil
}

// router assembles the middleware chain and route tree.
func (a *Application) router() chi.Router {
	r := chi.NewRouter()

	r.Use(custommiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(custommiddleware.StructuredLogger(a.Logger))
	r.Use(custommiddleware.Recoverer(a.Logger))
	r.Use(custommiddleware.RateLimit(a.Config.Server.RateLimit))
	r.Use(custommiddleware.WithTimeout(a.Config.Server.WriteTimeout))

	errorHandler := apierrors.NewErrorHandler(a.Logger)
	analysisHandler := transporthttp.NewAnalysisHandler(
		a.Service,
		a.Logger,
		errorHandler,
		a.Config.Profile.ToProfile(),
		a.Config.Server.MaxUploadBytes,
	)
	healthHandler := transporthttp.NewHealthHandler(Version)

	r.Route("/api", func(r chi.Router) {
		r.Mount("/health", healthHandler.Routes())
		r.Mount("/analysis", analysisHandler.Routes())
	})
	r.Handle("/metrics", promhttp.Handler())

	return r
}

// Run starts the server and blocks until shutdown. SIGINT/SIGTERM trigger a
// graceful stop bounded by the configured shutdown timeout.
func (a *Application) Run() error {
	errCh := make(chan error, 1)
	go func() {
		a.Logger.Info("server starting", slog.String("addr", a.Server.Addr))
		if err := a.Server.ListenAndServe(); err != nil && err != nethttp.ErrServerClosed {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case sig := <-sigCh:
		a.Logger.Info("shutting down", slog.String("signal", sig.String()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), a.Config.Server.ShutdownTimeout)
	defer cancel()
	if err := a.Server.Shutdown(ctx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}

	_ = infrastructure.CloseLogFile()
	return nil
}
