package main

import (
	"context"
	"log"

	"schoolms/config"
	"schoolms/db"
)

// Loads the example teachers, activities, and welcome announcement into the
// configured database. Safe to run repeatedly.
func main() {
	log.Printf("🌱 Seeding example data...")

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("❌ Failed to load config: %v", err)
	}

	dbConn, err := db.NewConnection(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("❌ Failed to connect to database: %v", err)
	}
	defer dbConn.Close()

	ctx := context.Background()
	if err := db.EnsureSchema(ctx, dbConn, cfg.DatabaseSchema); err != nil {
		log.Fatalf("❌ Failed to ensure schema: %v", err)
	}

	teachersRepo := db.NewPostgresTeachersRepository(dbConn, cfg.DatabaseSchema)
	activitiesRepo := db.NewPostgresActivitiesRepository(dbConn, cfg.DatabaseSchema)
	announcementsRepo := db.NewPostgresAnnouncementsRepository(dbConn, cfg.DatabaseSchema)

	if err := db.SeedExampleData(ctx, teachersRepo, activitiesRepo, announcementsRepo); err != nil {
		log.Fatalf("❌ Failed to seed example data: %v", err)
	}

	log.Printf("✅ Successfully seeded example data")
}
