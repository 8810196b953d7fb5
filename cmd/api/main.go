package main

import (
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"marketplace-backend/internal/client"
	"marketplace-backend/internal/config"
	"marketplace-backend/internal/handler"
	"marketplace-backend/internal/middleware"
	"marketplace-backend/internal/repository"
	"marketplace-backend/internal/server"
	"marketplace-backend/internal/service"
)

func main() {
	// load .env into os.Environ
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found (ok in prod)")
	}

	cfg := &config.Config{}
	if err := env.Parse(cfg); err != nil {
		fmt.Printf("Failed to parse config: %v\n", err)
		os.Exit(1)
	}

	logger, err := newLogger(cfg.Log)
	if err != nil {
		fmt.Printf("Failed to build logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()
	sugar := logger.Sugar()

	db, err := client.InitSqliteClient(cfg.DatabaseURL)
	if err != nil {
		sugar.Fatalw("database initialization error", "error", err)
	}

	storefrontClient := client.NewStorefrontClient(&cfg.Storefront)
	mediaClient := client.NewMediaClient(&cfg.Media)
	verifier := client.NewJWTVerifier(cfg.Auth.TokenSecret)

	orderRepo := repository.NewOrderRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	userRepo := repository.NewUserRepository(db)
	listingRepo := repository.NewListingRepository(db)
	transactionRepo := repository.NewTransactionRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	eventRepo := repository.NewEventRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)

	handlers := server.Handlers{
		Order:       handler.NewOrderHandler(service.NewOrderService(storefrontClient, orderRepo, categoryRepo, sugar)),
		Category:    handler.NewCategoryHandler(service.NewCategoryService(storefrontClient, categoryRepo, sugar)),
		User:        handler.NewUserHandler(service.NewUserService(userRepo)),
		Listing:     handler.NewListingHandler(service.NewListingService(listingRepo)),
		Transaction: handler.NewTransactionHandler(service.NewTransactionService(transactionRepo)),
		Review:      handler.NewReviewHandler(service.NewReviewService(reviewRepo)),
		Event:       handler.NewEventHandler(service.NewEventService(eventRepo)),
		Upload:      handler.NewUploadHandler(service.NewUploadService(mediaClient)),
		Webhook:     handler.NewWebhookHandler(service.NewWebhookService(notificationRepo, sugar)),
	}

	authMiddleware := middleware.NewAuthMiddleware(verifier)
	srv := server.NewServer(handlers, authMiddleware)

	serverAddr := cfg.HTTP.Host + ":" + cfg.HTTP.Port

	sugar.Infow("starting HTTP server", "addr", serverAddr)
	go func() {
		if err := srv.Start(serverAddr); err != nil && err != http.ErrServerClosed {
			sugar.Fatalw("HTTP server error", "error", err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)

	<-sigChan
	sugar.Info("signal received, starting graceful shutdown...")

	if err := srv.Shutdown(); err != nil {
		sugar.Fatalw("HTTP server shutdown error", "error", err)
	}
	sugar.Info("server stopped")
}

func newLogger(cfg config.Log) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		level = zapcore.InfoLevel
	}

	zapCfg := zap.NewProductionConfig()
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)

	return zapCfg.Build()
}
