package main

import (
	"database/sql"
	"log"

	"github.com/joho/godotenv"
	_ "modernc.org/sqlite"

	"ride-route-service/internal/adapters/repositories"
	"ride-route-service/internal/config"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	dbPath := config.Get("DB_PATH", "data/app.db")

	sdb, err := sql.Open("sqlite", dbPath)
	if err != nil {
		log.Fatal(err)
	}
	defer sdb.Close()

	if err := sdb.Ping(); err != nil {
		log.Fatal(err)
	}

	seedPath := config.Get("SEED_PATH", "data/seeds/problems.json")
	initAndSeed(sdb, seedPath)
}

func initAndSeed(sdb *sql.DB, seedPath string) {
	log.Println("Initializing database schema...")
	if err := repositories.InitSchema(sdb); err != nil {
		log.Fatalf("schema initialization failed: %v", err)
	}
	log.Println("Schema ready.")

	log.Println("Seeding database...")
	if err := repositories.SeedFromJSON(sdb, seedPath); err != nil {
		log.Fatalf("seeding failed: %v", err)
	}
	log.Println("Seeding complete.")
}
