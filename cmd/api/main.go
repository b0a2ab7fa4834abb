package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/svcbase/item-service/internal/logger"
	"github.com/svcbase/item-service/internal/server"
)

func main() {
	godotenv.Load(".env")

	config, err := server.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logLevel := config.LogLevel
	if config.Debug {
		logLevel = "debug"
	}
	if err := logger.Init(logLevel, os.Stdout); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	srv, err := server.NewServer(config)
	if err != nil {
		log.Fatalf("Failed to create server: %v", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := srv.Start(ctx); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
