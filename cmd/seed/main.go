package main

import (
	"log"

	"github.com/example/freshcart/internal/config"
	"github.com/example/freshcart/internal/database"
)

func main() {
	cfg := config.Load()
	db := database.Connect(cfg.DatabaseURL)

	if err := database.Seed(db); err != nil {
		log.Fatalf("seed failed: %v", err)
	}

	log.Println("Seed complete")
}
