// Command closejob deactivates a job listing by ID so it stops accepting
// applications. Usage: closejob <listing_id>
package main

import (
	"context"
	"errors"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"jobboard_backend/internal/feature/listings/adapters"
	"jobboard_backend/internal/feature/listings/usecase"
	infradb "jobboard_backend/internal/platform/db"
)

func main() {
	if len(os.Args) != 2 {
		log.Fatal("usage: closejob <listing_id>")
	}
	id, err := strconv.ParseUint(os.Args[1], 10, 64)
	if err != nil {
		log.Fatalf("invalid listing id %q: %v", os.Args[1], err)
	}

	if err := godotenv.Load(); err != nil {
		log.Println("[WARN] No .env file found. Using environment variables.")
	}

	db := infradb.OpenDB()
	listingRepo := adapters.NewListingGorm(db)
	// identity読み取りは不要：Closeは所有者チェックを迂回する管理操作
	uc := usecase.NewListingUsecase(listingRepo, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := uc.Close(ctx, uint(id)); err != nil {
		if errors.Is(err, usecase.ErrListingNotFound) {
			log.Fatalf("job id:%d doesn't exist", id)
		}
		log.Fatal(err)
	}
	log.Printf("Job with %d closed successfully", id)
}
