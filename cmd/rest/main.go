package main

import (
	"context"
	"log"

	"ratesignal-be/internal/bootstrap"
	"ratesignal-be/internal/config"
	"ratesignal-be/internal/model"
	"ratesignal-be/internal/server"
	"ratesignal-be/pkg/database"
)

func main() {
	// 1. Load Configuration
	cfg := config.Load()

	// 2. Initialize Database
	gormDB, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Panicf("Unable to connect to GORM DB: %v", err)
	}

	if err := gormDB.AutoMigrate(
		&model.BusinessConfig{},
		&model.ConfigSnapshot{},
		&model.RatingEvent{},
		&model.Feedback{},
	); err != nil {
		log.Panicf("Unable to migrate schema: %v", err)
	}

	// 3. Bootstrap Dependencies (Container)
	container := bootstrap.NewContainer(gormDB, cfg)

	// Seed the demo dataset on first boot so the rating page works out of
	// the box.
	if err := container.ConfigService.EnsureDefault(context.Background()); err != nil {
		log.Printf("[WARN] Unable to seed default config: %v", err)
	}

	// 4. Start Background Services
	go func() {
		log.Println("Background: Starting Change Feed Service...")
		if err := container.ChangeFeedService.Consume(context.Background()); err != nil {
			log.Printf("Background Change Feed Error: %v", err)
		}
	}()

	// 5. Initialize Server
	srv := server.New(cfg, container)

	// 6. Run Server
	log.Fatal(srv.Run())
}
