package main

import (
	"context"
	"log"
	"os"

	"ai-summarizer-be/internal/repository/unitofwork"
	"ai-summarizer-be/internal/service"
	"ai-summarizer-be/pkg/database"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
)

// Seeds the built-in prompt presets. Safe to run repeatedly: seeding is
// skipped when defaults already exist.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		color.Red("Error: DB_CONNECTION_STRING is not set")
		os.Exit(1)
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		color.Red("Error: Failed to connect to database: %v", err)
		os.Exit(1)
	}

	uowFactory := unitofwork.NewRepositoryFactory(db)
	promptService := service.NewPromptService(uowFactory)

	created, err := promptService.SeedDefaults(context.Background())
	if err != nil {
		color.Red("Error: Failed to seed default prompts: %v", err)
		os.Exit(1)
	}

	if created == 0 {
		color.Yellow("Default prompts already exist. Nothing to do.")
		return
	}

	color.Green("✅ Seeded %d default prompts", created)
}
