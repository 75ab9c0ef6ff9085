package main

import (
	"log"
	"os"

	"github.com/randogapp/randog/internal/db"
	"github.com/randogapp/randog/pkg/config"
)

func main() {
	if len(os.Args) < 2 {
		log.Fatal("Usage: migrate [up|down|status|reset]")
	}

	cfg, err := config.New()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := db.Migrate(cfg, os.Args[1]); err != nil {
		log.Fatalf("Migration %s failed: %v", os.Args[1], err)
	}

	log.Printf("Migration %s completed", os.Args[1])
}
