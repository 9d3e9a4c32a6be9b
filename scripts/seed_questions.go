// Re-seed the practice question catalog.
//
// Seeding already runs automatically on startup when the table is empty.
// This script forces a re-seed, for example after wiping the catalog.
//
// Usage: go run scripts/seed_questions.go
package main

import (
	"interview_sim_backend/internal/config"
	"interview_sim_backend/pkg/database"
	"interview_sim_backend/pkg/logger"
	"log"
)

func main() {
	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if !cfg.BackendConfigured() {
		log.Fatal("Database is not configured; nothing to seed")
	}

	logger.InitLogger(cfg.Server.Mode)

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := database.SeedQuestions(db, true); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	log.Println("Question catalog seeded")
}
