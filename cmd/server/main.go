package main

import (
	"context"
	"fmt"
	"os"

	"github.com/dsemenko/notesage/internal/ai"
	"github.com/dsemenko/notesage/internal/config"
	"github.com/dsemenko/notesage/internal/handler"
	"github.com/dsemenko/notesage/internal/logger"
	"github.com/dsemenko/notesage/internal/server"
	"github.com/dsemenko/notesage/internal/service"
	"github.com/dsemenko/notesage/internal/store"
	"github.com/joho/godotenv"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("notesage-server")

	// a local .env is optional; real deployments set the environment directly
	if err := godotenv.Load(); err == nil {
		log.Debug().Msg("loaded .env file")
	}
	if key := os.Getenv("GEMINI_API_KEY"); key != "" && os.Getenv("AI_API_KEY") == "" {
		os.Setenv("AI_API_KEY", key)
	}

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx := context.Background()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}

	chatModel, err := ai.NewGeminiModel(ctx, cfg.AI, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating chat model")
	}

	services := service.NewServices(storages, chatModel, cfg, log)

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
