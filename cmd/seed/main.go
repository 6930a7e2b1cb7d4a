// Seeds the single admin account. Safe to run repeatedly: an existing
// account with the same username is left untouched.
package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/sidra-al/Double-H-Portfolio/internal/accounts"
	"github.com/sidra-al/Double-H-Portfolio/internal/config"
	"github.com/sidra-al/Double-H-Portfolio/internal/database"
)

const (
	seedUsername = "admin"
	seedPassword = "admin123"
	seedRole     = "admin"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println(".env not loaded, continuing with environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	if err := database.Connect(cfg); err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	if err := database.Migrate(&accounts.Account{}); err != nil {
		log.Fatalf("migrations failed: %v", err)
	}

	created, err := accounts.Seed(database.DB, seedUsername, seedPassword, seedRole)
	if err != nil {
		log.Fatalf("failed to seed admin account: %v", err)
	}

	if !created {
		log.Println("admin account already exists; to reset the password, delete it from the database first")
		return
	}

	log.Printf("admin account created (username: %s, password: %s)", seedUsername, seedPassword)
	log.Println("change the password after first login")
}
