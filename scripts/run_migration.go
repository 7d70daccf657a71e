package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/ridwanfathin/gst-billing-service/internal/config"
	"github.com/ridwanfathin/gst-billing-service/internal/database"
)

func main() {
	down := flag.Int("down", 0, "number of migrations to roll back instead of migrating up")
	flag.Parse()

	// Load configuration (.env and environment)
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}

	// Connect to database
	db, err := database.NewPostgresDB(context.Background(), cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Unable to connect to database: %v", err)
	}
	defer db.Close()

	if *down > 0 {
		if err := db.RollbackMigrations(*down); err != nil {
			log.Fatalf("Failed to roll back migrations: %v", err)
		}
		fmt.Printf("Rolled back %d migration(s)\n", *down)
		return
	}

	if err := db.RunMigrations(); err != nil {
		log.Fatalf("Failed to execute migrations: %v", err)
	}

	fmt.Println("Migration successfully executed!")
}
