// Package db opens the relational store and runs schema migrations.
package db

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	applicationentity "jobboard_backend/internal/feature/applications/domain/entity"
	identityentity "jobboard_backend/internal/feature/identity/domain/entity"
	listingentity "jobboard_backend/internal/feature/listings/domain/entity"
	savedjobentity "jobboard_backend/internal/feature/savedjobs/domain/entity"
)

// OpenDB opens the PostgreSQL connection from environment configuration,
// retrying briefly on startup so the service survives a database that is
// still coming up. TranslateError is enabled so unique-constraint
// violations surface as gorm.ErrDuplicatedKey to the adapters.
func OpenDB() *gorm.DB {
	host := os.Getenv("DB_HOST")
	port := os.Getenv("DB_PORT")
	user := os.Getenv("DB_USER")
	pass := os.Getenv("DB_PASSWORD")
	name := os.Getenv("DB_NAME")
	sslmode := os.Getenv("DB_SSLMODE")
	if sslmode == "" {
		sslmode = "disable"
	}

	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		host, port, user, pass, name, sslmode)

	var (
		conn *gorm.DB
		err  error
	)

	deadline := time.Now().Add(60 * time.Second)
	for {
		conn, err = gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
		if err == nil {
			break
		}
		if time.Now().After(deadline) {
			log.Fatalf("DB connect failed after 60s: %v", err)
		}
		log.Printf("DB connect failed, retrying...: %v", err)
		time.Sleep(3 * time.Second)
	}

	if os.Getenv("RUN_MIGRATIONS") == "true" {
		// マイグレーション（Identity, Token, Listing, Application, SavedJob）
		if err := conn.AutoMigrate(
			&identityentity.Identity{},
			&identityentity.Token{},
			&listingentity.Listing{},
			&applicationentity.Application{},
			&savedjobentity.SavedJob{},
		); err != nil {
			log.Fatalf("failed to migrate: %v", err)
		}
	}

	return conn
}
