// Standalone question-bank importer.
//
// Bulk-loads a JSON question bank into the database without going
// through the HTTP API. Intended for first deployment or large batch
// imports; day-to-day imports go through POST /api/admin/questions/import.
//
// Usage: go run scripts/import_questions.go <bank.json>

package main

import (
	"log"
	"os"
	"skillsetz_backend/internal/config"
	"skillsetz_backend/internal/repository"
	"skillsetz_backend/internal/service"
	"skillsetz_backend/pkg/database"
	"skillsetz_backend/pkg/logger"

	"gopkg.in/yaml.v3"
)

func main() {
	if len(os.Args) < 2 {
		log.Fatal("usage: go run scripts/import_questions.go <bank.json>")
	}

	data, err := os.ReadFile("configs/config.yaml")
	if err != nil {
		log.Fatalf("Failed to read config file: %v", err)
	}

	var cfg config.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		log.Fatalf("Failed to parse config file: %v", err)
	}

	logger.InitLogger(&cfg)

	db, err := database.InitDB(&cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	importer := service.NewQuestionImportService(
		repository.NewSkillRepository(db),
		repository.NewQuestionRepository(db),
	)

	log.Printf("Importing questions from %s...", os.Args[1])
	result, err := importer.ImportFile(os.Args[1])
	if err != nil {
		log.Fatalf("Import failed: %v", err)
	}
	log.Printf("Done: %d created, %d skipped, %d failed", result.Created, result.Skipped, result.Failed)
}
