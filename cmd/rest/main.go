package main

import (
	"context"
	"log"

	"ai-summarizer-be/internal/bootstrap"
	"ai-summarizer-be/internal/config"
	"ai-summarizer-be/internal/server"
	"ai-summarizer-be/internal/tracer"
	"ai-summarizer-be/pkg/database"
)

func main() {
	// 0. Initialize Tracer (no-op unless OTEL_ENABLED=true)
	shutdownTracer := tracer.InitTracer()
	defer shutdownTracer(context.Background())

	// 1. Load Configuration
	cfg := config.Load()

	// 2. Initialize Database
	gormDB, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Panicf("Unable to connect to GORM DB: %v", err)
	}

	// 3. Bootstrap Dependencies (Container)
	container := bootstrap.NewContainer(gormDB, cfg)

	// 4. Seed Default Prompts
	if created, err := container.PromptService.SeedDefaults(context.Background()); err != nil {
		log.Printf("Warn: Failed to seed default prompts: %v", err)
	} else if created > 0 {
		log.Printf("Seeded %d default prompts", created)
	}

	// 5. Start Background Services
	// Note: In a larger app, we might use an errgroup or supervisor here
	go func() {
		log.Println("Background: Starting Consumer Service...")
		if err := container.ConsumerService.Consume(context.Background()); err != nil {
			log.Printf("Background Consumer Error: %v", err)
		}
	}()

	// 6. Initialize Server
	srv := server.New(cfg, container)

	// 7. Run Server
	log.Fatal(srv.Run())
}
