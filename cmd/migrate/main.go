package main

import (
	"log"
	"os"

	"estate-crm-be/internal/model"
	"estate-crm-be/pkg/database"

	"github.com/joho/godotenv"
)

func main() {
	// 1. Load Environment Variables
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	// 2. Connect to Database using existing GORM helpers
	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	log.Println("Starting GORM migration...")

	// 3. Pre-Migration: extensions GORM AutoMigrate does not handle
	log.Println("Step 1: Setting up extensions...")

	setupSQL := []string{
		`CREATE EXTENSION IF NOT EXISTS pgcrypto;`,
		`CREATE EXTENSION IF NOT EXISTS vector;`,
	}

	for _, sql := range setupSQL {
		if err := db.Exec(sql).Error; err != nil {
			log.Printf("Warn: Failed to execute setup SQL: %v. Continuing...", err)
		}
	}

	// 4. AutoMigrate all models
	log.Println("Step 2: Running AutoMigrate...")

	models := []interface{}{
		&model.User{},
		&model.Contact{},
		&model.Property{},
		&model.PropertyEmbedding{},
		&model.Opportunity{},
		&model.Note{},
		&model.Attachment{},
		&model.Activity{},
		&model.AuditLog{},
	}

	if err := db.AutoMigrate(models...); err != nil {
		log.Fatalf("Error: AutoMigrate failed: %v", err)
	}

	// 5. Post-Migration: view joining listings with their chunks for ad-hoc
	// inspection of what the WhatsApp responder can retrieve.
	log.Println("Step 3: Creating views...")

	postMigrationSQL := []string{
		`CREATE OR REPLACE VIEW searchable_properties AS
		 SELECT p.id AS property_id, p.title, p.price, p.status, pe.chunk_index, pe.content, pe.embedding_value AS embedding
		 FROM properties p JOIN property_embeddings pe ON p.id = pe.property_id
		 WHERE p.deleted_at IS NULL AND pe.deleted_at IS NULL;`,
	}

	for _, sql := range postMigrationSQL {
		if err := db.Exec(sql).Error; err != nil {
			log.Printf("Warn: Failed to execute post-migration SQL: %v", err)
		}
	}

	log.Println("Success: Database migration completed via GORM.")
}
