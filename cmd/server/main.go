package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/ridequest/rideon-api/internal/api"
	"github.com/ridequest/rideon-api/internal/config"
	"github.com/ridequest/rideon-api/internal/db"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using system env")
	}

	cfg := config.Load()
	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET is not set")
	}

	db.InitDB(cfg.DBUrl)

	r := api.SetupRouter(cfg)

	log.Printf("server running on %s", cfg.Addr)
	if err := r.Run(cfg.Addr); err != nil {
		log.Fatal(err)
	}
}
