package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Baptiste68/recette/pkg/api"
	"github.com/Baptiste68/recette/pkg/config"
	"github.com/Baptiste68/recette/pkg/diet"
	"github.com/Baptiste68/recette/pkg/inventory"
	"github.com/Baptiste68/recette/pkg/logger"
	"github.com/Baptiste68/recette/pkg/openai"
	"github.com/Baptiste68/recette/pkg/scheduler"
	"github.com/Baptiste68/recette/pkg/spoonacular"
	"github.com/Baptiste68/recette/pkg/storage"
	"github.com/Baptiste68/recette/pkg/telegram"
)

func main() {
	// Initialize logger
	log := logger.Global
	log.Info("Starting recette server...")

	// Load configuration
	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Error("Failed to load configuration: %v", err)
		os.Exit(1)
	}

	// Initialize storage
	store, err := storage.New(cfg.DataDir)
	if err != nil {
		log.Error("Failed to initialize storage: %v", err)
		os.Exit(1)
	}
	defer store.Close()

	// Start BadgerDB garbage collection
	store.StartGCRoutine(10 * time.Minute)

	// Initialize services
	inventoryService := inventory.NewService(store, log)
	dietService := diet.NewService(store, log)
	spoonacularClient := spoonacular.New(cfg.SpoonacularAPIKey, cfg.SpoonacularAPIBase, log)

	// Free-text ingredient parsing is optional
	var parser api.IngredientParser
	if cfg.OpenAIAPIKey != "" {
		parser = openai.New(cfg.OpenAIAPIKey, cfg.OpenAIAPIBase, cfg.OpenAIModel)
		log.Info("OpenAI ingredient parsing enabled")
	}

	// Expiry alerts are optional, they need a bot token and a chat ID
	var alertScheduler *scheduler.Service
	if cfg.TelegramBotToken != "" && cfg.TelegramChatID != 0 {
		notifier, err := telegram.New(cfg.TelegramBotToken, log)
		if err != nil {
			log.Error("Failed to initialize Telegram notifier: %v", err)
			os.Exit(1)
		}
		alertScheduler = scheduler.New(inventoryService, notifier, cfg.TelegramChatID, cfg.AlertInterval)
		alertScheduler.Start()
	}

	// Build the HTTP surface
	handler := api.NewHandler(inventoryService, dietService, spoonacularClient, parser, log)
	router := api.Router(handler, cfg.CORSOrigins)

	server := &http.Server{
		Addr:    cfg.ListenAddr,
		Handler: router,
	}

	go func() {
		log.Info("Listening on %s", cfg.ListenAddr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("HTTP server error: %v", err)
			os.Exit(1)
		}
	}()

	// Wait for termination signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	log.Info("Shutting down...")
	if alertScheduler != nil {
		alertScheduler.Stop()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Error("Graceful shutdown failed: %v", err)
	}
}
