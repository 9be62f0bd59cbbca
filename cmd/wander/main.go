// Package main is the entry point for Wander.
package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"

	"github.com/samdwyer/wander/internal/game"
	"github.com/samdwyer/wander/internal/logger"
	"github.com/samdwyer/wander/internal/telemetry"
)

func main() {
	// Load .env for local development. Not fatal - env vars might be set
	// directly.
	if err := godotenv.Load(); err != nil {
		log.Printf("Note: .env file not loaded: %v", err)
	}

	appLog := logger.New()
	ctx := context.Background()

	shutdown, err := telemetry.Setup(ctx)
	if err != nil {
		appLog.WithError(err).Warn("telemetry setup failed, running without observability")
	} else {
		defer func() {
			if err := shutdown(ctx); err != nil {
				appLog.WithError(err).Error("telemetry shutdown failed")
			}
		}()
	}

	g, err := game.New(game.ConfigFromEnv(), appLog)
	if err != nil {
		log.Fatalf("Failed to initialize game: %v", err)
	}
	defer g.Close()

	if err := g.Run(ctx); err != nil {
		log.Fatalf("Game error: %v", err)
	}
}
