package main

import (
	"flag"
	"log"

	"learnhub/internal/config"
	"learnhub/internal/database"
	"learnhub/internal/logger"

	"go.uber.org/zap"
)

func main() {
	sourceDir := flag.String("source", "migrations", "directory containing migration files")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	l := logger.Get()
	defer logger.Sync()

	if err := database.RunMigrations(cfg.GetDSN(), *sourceDir); err != nil {
		l.Fatal("Failed to run migrations", zap.Error(err))
	}
	l.Info("Migrations applied", zap.String("source", *sourceDir))
}
