// Command seed populates the database with demo catalog data.
package main

import (
	"flag"
	"log"

	"holocron/internal/config"
	"holocron/internal/database"
	"holocron/internal/seed"
)

func main() {
	numUsers := flag.Int("users", 10, "number of fake users to create")
	clean := flag.Bool("clean", false, "wipe existing rows before seeding")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := seed.Run(db, seed.Options{
		NumUsers:    *numUsers,
		ShouldClean: *clean,
	}); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}
}
