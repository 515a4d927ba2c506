package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/furuilin66/guandan/config"
	"github.com/furuilin66/guandan/db"
	"github.com/furuilin66/guandan/handlers"
	"github.com/furuilin66/guandan/live"
	api "github.com/furuilin66/guandan/routes"
	"github.com/furuilin66/guandan/services"
	"github.com/go-chi/chi/v5"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("configuration loaded", slog.Int("port", cfg.ServerPort), slog.String("data_dir", cfg.DataDir))

	store, err := db.Open(cfg.DataDir)
	if err != nil {
		logger.Error("failed to open store", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("store opened", slog.String("path", store.Path()))

	hub := live.NewHub(logger)
	go hub.Run()
	logger.Info("websocket hub started")

	teamService := services.NewTeamService(store)
	matchService := services.NewMatchService(store, hub, logger)
	authService := services.NewAuthService(store, hub, logger, cfg.AdminPassword, cfg.AdminPasswordHash)
	exportService := services.NewExportService(store)
	logger.Info("services initialized")

	teamHandler := handlers.NewTeamHandler(teamService, cfg.JWTSecretKey)
	matchHandler := handlers.NewMatchHandler(matchService, exportService)
	authHandler := handlers.NewAuthHandler(authService)
	webSocketHandler := handlers.NewWebSocketHandler(hub, matchService, logger)
	logger.Info("HTTP handlers initialized")

	router := chi.NewRouter()
	api.SetupRoutes(router, teamHandler, matchHandler, authHandler, webSocketHandler, cfg.StaticDir)
	logger.Info("routes configured")

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	serverErrors := make(chan error, 1)
	go func() {
		logger.Info("starting server", slog.String("address", server.Addr))
		serverErrors <- server.ListenAndServe()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", slog.Any("error", err))
			os.Exit(1)
		}
		logger.Info("server stopped gracefully")
	case sig := <-quit:
		logger.Info("shutdown signal received", slog.String("signal", sig.String()))

		shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancelShutdown()

		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("graceful shutdown failed", slog.Any("error", err))
			if closeErr := server.Close(); closeErr != nil {
				logger.Error("failed to force close server", slog.Any("error", closeErr))
			}
			os.Exit(1)
		}
		logger.Info("server shutdown complete")
	}
}
