package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	redisv9 "github.com/redis/go-redis/v9"

	"jobboard_backend/internal/app/di"
	"jobboard_backend/internal/app/router"
	applicationadapters "jobboard_backend/internal/feature/applications/adapters"
	applicationhandler "jobboard_backend/internal/feature/applications/transport/handler"
	applicationusecase "jobboard_backend/internal/feature/applications/usecase"
	identityadapters "jobboard_backend/internal/feature/identity/adapters"
	identityhandler "jobboard_backend/internal/feature/identity/transport/handler"
	identityusecase "jobboard_backend/internal/feature/identity/usecase"
	listingadapters "jobboard_backend/internal/feature/listings/adapters"
	listinghandler "jobboard_backend/internal/feature/listings/transport/handler"
	listingusecase "jobboard_backend/internal/feature/listings/usecase"
	savedjobadapters "jobboard_backend/internal/feature/savedjobs/adapters"
	savedjobhandler "jobboard_backend/internal/feature/savedjobs/transport/handler"
	savedjobusecase "jobboard_backend/internal/feature/savedjobs/usecase"
	infradb "jobboard_backend/internal/platform/db"
	"jobboard_backend/internal/platform/mail"
	infraredis "jobboard_backend/internal/platform/redis"
)

func main() {
	// .env（存在すれば）
	if err := godotenv.Load(); err != nil {
		log.Println("[WARN] No .env file found. Using environment variables.")
	}

	// db
	db := infradb.OpenDB()

	// Redis
	var rdb *redisv9.Client
	if tmp, err := infraredis.NewRedisClient(); err != nil {
		log.Println("[WARN] Redis unavailable. Running without token cache.")
		rdb = nil
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Println("[ERROR] Failed to close Redis client:", err)
			}
		}()
	}

	// Notifier（SMTP未設定時はログ出力にフォールバック）
	var notifier applicationusecase.Notifier
	if host := os.Getenv("SMTP_HOST"); host != "" {
		notifier = mail.NewSMTPNotifier(mail.SMTPConfig{
			Host:     host,
			Port:     os.Getenv("SMTP_PORT"),
			Username: os.Getenv("SMTP_USERNAME"),
			Password: os.Getenv("SMTP_PASSWORD"),
			From:     os.Getenv("SMTP_FROM"),
		})
	} else {
		log.Println("[WARN] SMTP_HOST is not set. Notifications will be logged only.")
		notifier = mail.NewLogNotifier()
	}

	// Repository
	identityRepo := identityadapters.NewIdentityGorm(db)
	tokenRepo := identityadapters.NewTokenGorm(db)
	listingRepo := listingadapters.NewListingGorm(db)
	applicationRepo := applicationadapters.NewApplicationGorm(db)
	savedJobRepo := savedjobadapters.NewSavedJobGorm(db)

	// Redisキャッシュでラップしたトークンリゾルバ
	tokenResolver := di.NewTokenResolver(rdb, db)

	// Usecase
	identityUC := identityusecase.NewIdentityUsecase(identityRepo, tokenRepo)
	listingUC := listingusecase.NewListingUsecase(listingRepo, identityRepo)
	applyUC := applicationusecase.NewApplyUsecase(applicationRepo, listingRepo, identityRepo, notifier)
	savedJobUC := savedjobusecase.NewSavedJobUsecase(savedJobRepo, listingRepo)

	// Handler
	identityH := identityhandler.NewIdentityHandler(identityUC)
	listingH := listinghandler.NewListingHandler(listingUC)
	applicationH := applicationhandler.NewApplicationHandler(applyUC)
	savedJobH := savedjobhandler.NewSavedJobHandler(savedJobUC)

	// ルータ生成
	router := router.NewRouter(identityH, listingH, applicationH, savedJobH, tokenResolver, identityRepo)

	if err := router.Run(":8080"); err != nil {
		log.Fatal(err)
	}
}
