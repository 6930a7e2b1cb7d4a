package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/sidra-al/Double-H-Portfolio/internal/accounts"
	"github.com/sidra-al/Double-H-Portfolio/internal/config"
	"github.com/sidra-al/Double-H-Portfolio/internal/content"
	"github.com/sidra-al/Double-H-Portfolio/internal/database"
	"github.com/sidra-al/Double-H-Portfolio/internal/server"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println(".env not loaded, continuing with environment variables")
	}

	if m := os.Getenv("GIN_MODE"); m != "" {
		gin.SetMode(m)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}
	log.Println(cfg)

	if err := database.Connect(cfg); err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	// run migrations to create tables
	if err := database.Migrate(&accounts.Account{}, &content.Record{}); err != nil {
		log.Fatalf("migrations failed: %v", err)
	}

	r := server.New(cfg)

	log.Printf("server listening on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
