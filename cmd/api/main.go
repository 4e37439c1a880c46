package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/d9nchik/ynab-gateway/internal/api/handlers"
	"github.com/d9nchik/ynab-gateway/internal/api/middleware"
	"github.com/d9nchik/ynab-gateway/internal/config"
	"github.com/d9nchik/ynab-gateway/internal/logger"
	"github.com/d9nchik/ynab-gateway/internal/ynab"
)

func main() {
	// Optional .env for local development
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		bootLog := logger.New("")
		bootLog.Fatal().Err(err).Msg("Failed to load configuration")
	}

	log := logger.New(cfg.LogLevel)

	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("Invalid configuration")
	}

	// One YNAB client per request, scoped to that request's token
	newClient := func(token string) ynab.Service {
		return ynab.NewWithConfig(cfg.YNABBaseURL, cfg.YNABTimeout, token)
	}

	ynabHandler := handlers.NewYnabHandler(newClient, log)

	// Create router
	router := mux.NewRouter()

	// YnabAPI operations, routed by name
	rpc := router.PathPrefix("/rpc/YnabAPI").Subrouter()
	rpc.HandleFunc("/GetBudgets", ynabHandler.GetBudgets).Methods(http.MethodPost)
	rpc.HandleFunc("/GetTransactionsByAccount", ynabHandler.GetTransactionsByAccount).Methods(http.MethodPost)
	rpc.HandleFunc("/UpdateTransactions", ynabHandler.UpdateTransactions).Methods(http.MethodPost)

	// Observability endpoints
	router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		middleware.WriteJSON(w, http.StatusOK, map[string]string{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	}).Methods(http.MethodGet)

	// Per-route metrics, labeled by route template
	router.Use(middleware.Metrics)

	// Apply middleware
	handler := middleware.Recovery(log)(
		middleware.RequestID(log)(
			middleware.Logger(log)(
				middleware.CORS(router),
			),
		),
	)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Addr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Info().Str("addr", cfg.Addr).Msg("Starting YNAB gateway")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}
