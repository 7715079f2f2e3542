package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/AxZethh/inbank-backend/internal/config"
	"github.com/AxZethh/inbank-backend/internal/domain/decision"
	"github.com/AxZethh/inbank-backend/internal/http/handlers"
	"github.com/AxZethh/inbank-backend/internal/identity"
	"github.com/AxZethh/inbank-backend/internal/observability"
	"github.com/AxZethh/inbank-backend/internal/server"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	logger := observability.NewLogger(cfg.Env)

	if err := cfg.Constraints.Validate(); err != nil {
		logger.Error("invalid business constraints", "err", err)
		os.Exit(1)
	}

	validator := identity.NewEstonian()
	engine := decision.NewEngine(cfg.Constraints, validator)
	decisionHandler := handlers.NewDecisionHandler(engine, logger)

	r := server.NewRouter(cfg, logger, server.Dependencies{
		Checker:         validator,
		DecisionHandler: decisionHandler,
	})
	httpServer := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info("api server starting", "addr", cfg.Addr())
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", "err", err)
			os.Exit(1)
		}
	}()

	sigCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-sigCtx.Done()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	_ = httpServer.Shutdown(shutdownCtx)
	logger.Info("api server stopped")
}
