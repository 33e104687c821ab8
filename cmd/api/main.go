package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hrshiniA/portfolio-app/internal/auth"
	"github.com/hrshiniA/portfolio-app/internal/config"
	"github.com/hrshiniA/portfolio-app/internal/handler"
	"github.com/hrshiniA/portfolio-app/internal/maintenance"
	"github.com/hrshiniA/portfolio-app/internal/repository"
	"github.com/hrshiniA/portfolio-app/internal/service"
	"github.com/sirupsen/logrus"
)

func main() {
	// Initialize logger
	logger := newLogger(os.Getenv("LOG_LEVEL"))

	// Load configuration
	cfg, err := config.NewConfig()
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Initialize database
	repo, err := repository.Open(ctx, cfg.DBDriver, cfg.DBConn)
	if err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}
	defer repo.Close()
	logger.Infof("Connected to %s database", repo.Dialect())

	// Initialize layers
	tokens := auth.NewTokens(cfg.JWTSecret)
	svc := service.NewService(repo, tokens, auth.NewHasher(cfg.BcryptCost), logger)
	h := handler.NewHandler(svc, logger)
	r := handler.NewRouter(h, tokens, cfg.CORSOrigin, logger)

	// Periodic maintenance
	if cfg.MaintenanceSchedule != "" {
		sched, err := maintenance.NewScheduler(cfg.MaintenanceSchedule, repo, logger)
		if err != nil {
			logger.Fatalf("Failed to schedule maintenance: %v", err)
		}
		sched.Start()
		defer sched.Stop()
	}

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Errorf("Server shutdown failed: %v", err)
		}
	}()

	logger.Infof("Starting server on %s", addr)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatalf("Server failed: %v", err)
	}
	logger.Info("Server stopped")
}

func newLogger(level string) *logrus.Logger {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logLevel, err := logrus.ParseLevel(level)
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)
	return logger
}
