package main

import (
	"fmt"
	"log"

	"hr-portal-backend/config"
	"hr-portal-backend/internal/database"

	"github.com/joho/godotenv"
)

func main() {
	fmt.Println("Starting database seeding...")

	if err := godotenv.Load(); err != nil {
		log.Println("Warning: no .env file found, using system environment variables.")
	}

	cfg := config.Load()
	db, err := config.ConnectDB(cfg)
	if err != nil {
		log.Fatalf("database connection failed: %v", err)
	}

	if err := database.SeedAll(db); err != nil {
		log.Fatalf("seeding failed: %v", err)
	}

	fmt.Println("Seeding complete.")
}
