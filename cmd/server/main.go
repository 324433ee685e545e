package main

import (
	"context"
	"log"

	"herotech/internal/config"
	"herotech/internal/server"
	"herotech/pkg/logger"
	"herotech/pkg/shutdown"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	cfg := config.New()
	logger.New(logger.Options{
		Service: "hero-tech-api",
		Env:     cfg.Env,
		Level:   cfg.LogLevel,
	})

	srv, err := server.New(cfg)
	if err != nil {
		log.Fatalf("Failed to create server: %v", err)
	}

	ctx, cancel := shutdown.WithSignals(context.Background())
	defer cancel()

	if err := srv.Run(ctx); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
