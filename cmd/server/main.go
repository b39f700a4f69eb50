package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/itxsomi270/back-end/internal/adapter/repository/cache"
	"github.com/itxsomi270/back-end/internal/adapter/repository/jsonfile"
	"github.com/itxsomi270/back-end/internal/adapter/repository/mongodb"
	"github.com/itxsomi270/back-end/internal/config"
	"github.com/itxsomi270/back-end/internal/handler"
	"github.com/itxsomi270/back-end/internal/middleware"
	"github.com/itxsomi270/back-end/internal/rental/domain"
	"github.com/itxsomi270/back-end/internal/rental/usecase"
	"github.com/itxsomi270/back-end/internal/router"
)

const postsFile = "posts.json"

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("can't initialize zap logger: %v", err)
	}
	defer logger.Sync()

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err))
	}

	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		logger.Fatal("Failed to create data directory", zap.String("dataDir", cfg.DataDir), zap.Error(err))
	}

	var accountRepo domain.AccountRepository
	var listingRepo domain.ListingRepository

	switch cfg.StorageDriver {
	case "mongo":
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
		if err == nil {
			err = mongoClient.Ping(ctx, nil)
		}
		cancel()
		if err != nil {
			logger.Fatal("Failed to connect to MongoDB", zap.String("uri", cfg.MongoURI), zap.Error(err))
		}
		defer func() {
			if err := mongoClient.Disconnect(context.Background()); err != nil {
				logger.Error("Failed to disconnect MongoDB", zap.Error(err))
			}
		}()
		logger.Info("Connected to MongoDB", zap.String("database", cfg.MongoDB))

		db := mongoClient.Database(cfg.MongoDB)
		accountRepo = mongodb.NewAccountRepository(db, logger)
		listingRepo = mongodb.NewListingRepository(db, logger)
	case "file":
		logger.Info("Using file-backed storage", zap.String("dataDir", cfg.DataDir))
		accountRepo = jsonfile.NewAccountRepository(cfg.DataDir, logger)
		listingRepo = jsonfile.NewListingRepository(cfg.DataDir, logger)
	default:
		logger.Fatal("Unknown storage driver", zap.String("driver", cfg.StorageDriver))
	}

	// The /posts variant is always file-backed.
	postRepo := jsonfile.NewRecordStore(filepath.Join(cfg.DataDir, postsFile), logger)

	var listingCache usecase.ListingCache
	if cfg.RedisAddress != "" {
		c, err := cache.NewListingCache(cfg.RedisAddress)
		if err != nil {
			logger.Fatal("Failed to connect to Redis", zap.String("address", cfg.RedisAddress), zap.Error(err))
		}
		defer c.Close()
		logger.Info("Listing cache enabled", zap.String("address", cfg.RedisAddress))
		listingCache = c
	}

	accountUC := usecase.NewAccountUsecase(accountRepo, logger)
	listingUC := usecase.NewListingUsecase(listingRepo, listingCache, logger)
	postUC := usecase.NewPostUsecase(postRepo, logger)

	accountHandler := handler.NewAccountHandler(accountUC, logger)
	listingHandler := handler.NewListingHandler(listingUC, logger)
	postHandler := handler.NewPostHandler(postUC, logger)

	mux := chi.NewRouter()
	mux.Use(middleware.Logger(logger))
	mux.Get("/health", handler.Health)
	router.SetupAccountRoutes(mux, accountHandler)
	router.SetupListingRoutes(mux, listingHandler)
	router.SetupPostRoutes(mux, postHandler)

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Port),
		Handler: mux,
	}

	go func() {
		logger.Info("Starting HTTP server", zap.String("address", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Failed to start HTTP server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("Forced shutdown", zap.Error(err))
	}
}
