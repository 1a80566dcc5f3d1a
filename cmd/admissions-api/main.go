// cmd/admissions-api/main.go
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"admissions-backend/internal/api"
	commonaws "admissions-backend/internal/common/aws"
	"admissions-backend/internal/common/config"
	"admissions-backend/internal/common/database"
	"admissions-backend/internal/common/logger"
	"admissions-backend/internal/notify"
	"admissions-backend/internal/service"
	"admissions-backend/internal/store"
)

// retryWithBackoff attempts to execute a function with exponential backoff
func retryWithBackoff(operation func() error, maxRetries int, initialDelay time.Duration, log *zap.Logger, operationName string) error {
	var err error
	delay := initialDelay

	for i := 0; i < maxRetries; i++ {
		err = operation()
		if err == nil {
			return nil
		}

		if i < maxRetries-1 {
			log.Warn(fmt.Sprintf("%s failed, retrying...", operationName),
				zap.Error(err),
				zap.Int("attempt", i+1),
				zap.Int("maxRetries", maxRetries),
				zap.Duration("nextRetryIn", delay),
			)
			time.Sleep(delay)
			delay *= 2 // Exponential backoff
		}
	}

	return fmt.Errorf("%s failed after %d attempts: %w", operationName, maxRetries, err)
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	zapLog := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer zapLog.Sync()
	log := logger.NewZapAdapter(zapLog)

	zapLog.Info("starting admissions API",
		zap.String("name", cfg.App.Name),
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Environment),
	)

	// The file substrate must be available: it is the floor the service
	// never drops below.
	fileStore, err := store.NewFile(cfg.Database.File.Path, log)
	if err != nil {
		zapLog.Fatal("failed to open file store", zap.Error(err))
	}

	// Mongo is primary but optional. When the URI is unset or the
	// connection never comes up, the service runs on the file store
	// alone.
	var st store.Store = fileStore
	var mongoClient *database.MongoClient
	if cfg.Database.Mongo.URI != "" {
		err = retryWithBackoff(func() error {
			var connErr error
			mongoClient, connErr = database.NewMongo(context.Background(), cfg.Database.Mongo)
			return connErr
		}, 3, 2*time.Second, zapLog, "mongo connect")
		if err != nil {
			zapLog.Warn("mongo unavailable, continuing on file store only", zap.Error(err))
		} else {
			mongoStore, err := store.NewMongoStore(context.Background(), mongoClient, log)
			if err != nil {
				zapLog.Warn("mongo store init failed, continuing on file store only", zap.Error(err))
			} else {
				if err := mongoStore.SeedContent(context.Background()); err != nil {
					zapLog.Warn("content seeding failed", zap.Error(err))
				}
				st = store.NewFailover(mongoStore, fileStore, log)
				zapLog.Info("mongo store ready", zap.String("database", cfg.Database.Mongo.Database))
			}
		}
	} else {
		zapLog.Info("no mongo URI configured, using file store")
	}

	var redisClient *database.RedisClient
	if cfg.Database.Redis.Enabled {
		redisClient, err = database.NewRedis(cfg.Database.Redis)
		if err != nil || redisClient.Ping(context.Background()) != nil {
			zapLog.Warn("redis unavailable, content cache disabled", zap.Error(err))
			redisClient = nil
		} else {
			zapLog.Info("redis content cache ready", zap.String("address", cfg.Database.Redis.Address))
		}
	}

	var sesClient notify.SESService
	var snsClient notify.SNSService
	if cfg.Notifications.Email.Enabled && cfg.Notifications.Email.Provider == notify.ProviderSES {
		client, err := commonaws.NewSESClient(context.Background(), cfg.Notifications.AWS.Region)
		if err != nil {
			zapLog.Warn("SES client init failed, email channel degraded", zap.Error(err))
		} else {
			sesClient = client
		}
	}
	if cfg.Notifications.SMS.Enabled {
		client, err := commonaws.NewSNSClient(context.Background(), cfg.Notifications.AWS.Region)
		if err != nil {
			zapLog.Warn("SNS client init failed, SMS channel degraded", zap.Error(err))
		} else {
			snsClient = client
		}
	}
	dispatcher := notify.NewDispatcher(&cfg.Notifications, log, sesClient, snsClient)

	cacheTTL := time.Duration(cfg.Database.Redis.TTL) * time.Second
	deps := api.Dependencies{
		Logger:       log,
		CORSOrigins:  cfg.Server.CORSOrigins,
		Store:        st,
		Applications: service.NewApplicationService(st, dispatcher, log),
		Auth:         service.NewAuthService(st, log),
		Content:      service.NewContentService(st, redisClient, cacheTTL, log),
		Leads:        service.NewLeadService(st, log),
	}

	server := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      api.NewRouter(deps),
		ReadTimeout:  config.GetDuration(cfg.Server.ReadTimeout),
		WriteTimeout: config.GetDuration(cfg.Server.WriteTimeout),
	}

	go func() {
		zapLog.Info("HTTP server listening", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zapLog.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	// --- Graceful Shutdown ---
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	zapLog.Info("Shutdown signal received, stopping server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), config.GetDuration(cfg.Server.ShutdownTimeout))
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		zapLog.Error("server shutdown error", zap.Error(err))
	}

	if redisClient != nil {
		_ = redisClient.Close()
	}
	if mongoClient != nil {
		_ = mongoClient.Close(context.Background())
	}

	zapLog.Info("shutdown complete")
}
