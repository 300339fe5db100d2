package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fs-indexer/internal/filesystem"
	"fs-indexer/internal/handlers"
	"fs-indexer/internal/indexer"
	"fs-indexer/internal/logging"
	"fs-indexer/internal/memory"
	"fs-indexer/internal/metrics"
	"fs-indexer/internal/middleware"
	"fs-indexer/internal/startup"

	"github.com/gorilla/mux"
)

func main() {
	startTime := time.Now()

	// Load configuration
	config, err := startup.LoadConfig()
	if err != nil {
		startup.LogFatal("Configuration error: %v", err)
	}

	// Set GOMEMLIMIT from the container limit before the first walk
	memory.ConfigureFromEnv()

	// Wire filesystem metrics before the first walk
	if config.MetricsEnabled {
		filesystem.SetObserver(metrics.NewFilesystemObserver())
		metrics.InitializeMetrics()
	}

	// Initialize indexer
	startup.LogIndexerInit(config.Walker)
	idx := indexer.New(indexer.Config{
		Walker:   config.Walker,
		Provider: filesystem.NewLocal(filesystem.DefaultRetryConfig()),
		Logger:   logging.Default(),
	})

	// Initialize handlers
	h := handlers.New(idx, config)

	// Setup router
	router := setupRouter(h, config)

	// Log routes dynamically
	startup.LogHTTPRoutes(router, config.LogHealthChecks)

	// Apply compression middleware
	handler := middleware.Compression(middleware.DefaultCompressionConfig())(router)

	// Create server
	srv := &http.Server{
		Addr:              ":" + config.Port,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      0, // large trees take a while to walk and encode
		IdleTimeout:       60 * time.Second,
	}

	var metricsSrv *http.Server
	if config.MetricsEnabled {
		metricsSrv = startMetricsServer(h, config.MetricsPort)
	}

	// Start graceful shutdown handler
	go handleShutdown(srv, metricsSrv)

	// Start server
	startup.LogServerStarted(startup.ServerConfig{
		Port:            config.Port,
		MetricsPort:     config.MetricsPort,
		MetricsEnabled:  config.MetricsEnabled,
		StartupDuration: time.Since(startTime),
	})
	if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		startup.LogFatal("Server error: %v", err)
	}
}

func setupRouter(h *handlers.Handlers, config *startup.Config) *mux.Router {
	r := mux.NewRouter()

	// Health check and version routes
	r.HandleFunc("/health", h.HealthCheck).Methods("GET")
	r.HandleFunc("/healthz", h.HealthCheck).Methods("GET")
	r.HandleFunc("/livez", h.LivenessCheck).Methods("GET", "HEAD")
	r.HandleFunc("/version", h.GetVersion).Methods("GET")

	// Index API. Registered on the root router so a method mismatch is
	// answered with 405 rather than a subrouter 404.
	r.HandleFunc("/api/index", h.GetIndex).Methods("GET")
	r.HandleFunc("/api/children", h.GetChildren).Methods("GET")
	r.HandleFunc("/api/children/{path:.*}", h.GetChildren).Methods("GET")

	loggingConfig := middleware.DefaultLoggingConfig()
	loggingConfig.LogHealthChecks = config.LogHealthChecks
	r.Use(middleware.Logger(loggingConfig))
	if config.MetricsEnabled {
		r.Use(middleware.Metrics(middleware.DefaultMetricsConfig()))
	}

	return r
}

func startMetricsServer(h *handlers.Handlers, port string) *http.Server {
	m := http.NewServeMux()
	m.Handle("/metrics", h.MetricsHandler())
	m.HandleFunc("/health", h.HealthCheck)

	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           m,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			logging.Error("Metrics server error: %v", err)
		}
	}()

	return srv
}

func handleShutdown(srv, metricsSrv *http.Server) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigChan

	startup.LogShutdownInitiated(sig.String())

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if metricsSrv != nil {
		if err := metricsSrv.Shutdown(ctx); err != nil {
			logging.Warn("Metrics server shutdown error: %v", err)
		} else {
			startup.LogShutdownStepComplete("Metrics server stopped")
		}
	}

	if err := srv.Shutdown(ctx); err != nil {
		logging.Warn("Server shutdown error: %v", err)
	} else {
		startup.LogShutdownStepComplete("HTTP server stopped")
	}

	startup.LogShutdownComplete()
}
