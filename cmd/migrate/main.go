package main

import (
	"log"
	"os"

	"notekeep-be/internal/model"
	"notekeep-be/pkg/database"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database: ", err)
	}

	log.Println("Starting migration...")

	// gen_random_uuid() needs pgcrypto on older Postgres
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS pgcrypto;`).Error; err != nil {
		log.Printf("Warn: Failed to create pgcrypto extension: %v. Continuing...", err)
	}

	if err := db.AutoMigrate(&model.User{}, &model.Note{}); err != nil {
		log.Fatal("Error: AutoMigrate failed: ", err)
	}

	log.Println("Migration completed: users, notes")
}
