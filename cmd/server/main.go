package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pdf-summarizer/internal/config"
	"pdf-summarizer/internal/handler"

	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found or could not be loaded: %v", err)
	}
	// Wiring
	container := config.NewContainer()
	cfg := container.Config

	// Handlers
	summaryHandler := handler.NewSummaryHandler(
		container.SummaryService,
		container.Logger,
	)

	documentHandler := handler.NewDocumentHandler(
		container.DocumentService,
		container.Sessions,
		cfg.GetMaxFileSize(),
		container.Logger,
	)

	// Router
	router := handler.NewRouter(
		summaryHandler,
		documentHandler,
		handler.RouterConfig{
			AllowedOrigins: cfg.GetAllowedOrigins(),
			MaxBodyBytes:   cfg.GetMaxBodyBytes(),
			Logger:         container.Logger,
		},
	)

	// start server
	server := &http.Server{
		Addr:              ":" + cfg.GetServerPort(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Run server
	go func() {
		container.Logger.Info("Server listening", "address", server.Addr, "health", "/api/health")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			container.Logger.Error("Server failed to start", err)
			os.Exit(1)
		}
	}()
	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	container.Logger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		container.Logger.Error("Graceful shutdown failed", err)
		_ = server.Close()
	}
	if err := container.Close(); err != nil {
		container.Logger.Error("Failed to release resources", err)
	}

	container.Logger.Info("Server exited")
}
