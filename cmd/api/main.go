package main

import (
	"context"
	"log"
	"time"

	"continuity/config"
	"continuity/internal/cleanup"
	"continuity/internal/compression"
	"continuity/internal/handler"
	"continuity/internal/redis"
	"continuity/internal/repository"
	"continuity/internal/server"
	"continuity/internal/services"
	"continuity/internal/storage"
	"continuity/pkg/database"
	"continuity/pkg/logger"
)

func main() {
	cfg := config.LoadConfig()

	l := logger.New(loggerMode(cfg.AppMode))
	logger.SetGlobalLogger(l)

	database.Connect(cfg)
	defer database.Close()

	if err := database.RunFullMigration("migrations"); err != nil {
		log.Fatalf("Failed to apply migrations: %v", err)
	}

	redis.Initialize(redis.Config{
		Host:     cfg.RedisHost,
		Port:     cfg.RedisPort,
		Password: cfg.RedisPassword,
	})
	limiter := redis.NewRateLimiter(redis.GetClient(), redis.DefaultRateLimitConfig())

	store, err := storage.NewClient(context.Background(), storage.S3Config{
		Region:     cfg.StorageRegion,
		Bucket:     cfg.StorageBucket,
		AccessKey:  cfg.StorageAccessKey,
		SecretKey:  cfg.StorageSecretKey,
		Endpoint:   cfg.StorageEndpoint,
		PublicBase: cfg.StoragePublicBase,
	})
	if err != nil {
		log.Fatalf("Failed to create storage client: %v", err)
	}

	compressor := compression.New(cfg.ImageMaxWidth, cfg.ImageQuality)

	userRepo := repository.NewUserRepository(database.DB)
	spaceRepo := repository.NewSpaceRepository(database.DB)
	folderRepo := repository.NewFolderRepository(database.DB)
	snapshotRepo := repository.NewSnapshotRepository(database.DB)
	characterRepo := repository.NewCharacterRepository(database.DB)
	attachmentRepo := repository.NewAttachmentRepository(database.DB)
	userSpaceRepo := repository.NewUserSpaceRepository(database.DB)

	authService := services.NewAuthService(userRepo, cfg)
	spaceService := services.NewSpaceService(spaceRepo)
	folderService := services.NewFolderService(folderRepo)
	snapshotService := services.NewSnapshotService(snapshotRepo)
	characterService := services.NewCharacterService(characterRepo)
	attachmentService := services.NewAttachmentService(attachmentRepo)
	userSpaceService := services.NewUserSpaceService(userSpaceRepo)

	reconciler := cleanup.NewReconciler(attachmentRepo, store, l)
	runner := cleanup.NewRunner(reconciler, time.Duration(cfg.CleanupIntervalHours)*time.Hour)

	runnerCtx, stopRunner := context.WithCancel(context.Background())
	defer stopRunner()
	go runner.Run(runnerCtx)

	handlers := &server.Handlers{
		Auth:       handler.NewAuthHandler(authService),
		Space:      handler.NewSpaceHandler(spaceService),
		Folder:     handler.NewFolderHandler(folderService),
		Snapshot:   handler.NewSnapshotHandler(snapshotService),
		Character:  handler.NewCharacterHandler(characterService),
		Attachment: handler.NewAttachmentHandler(attachmentService, store, compressor),
		UserSpace:  handler.NewUserSpaceHandler(userSpaceService),
	}

	srv := server.New(cfg, l)
	srv.SetupRoutes(handlers, authService, limiter)

	if err := srv.Start(); err != nil {
		log.Fatalf("Server exited with error: %v", err)
	}
}

func loggerMode(appMode string) string {
	if appMode == server.ReleaseMode {
		return logger.ProductionMode
	}
	return logger.DevelopmentMode
}
