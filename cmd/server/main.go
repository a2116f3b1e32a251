package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/campusconnect/campusconnect/internal/cache"
	"github.com/campusconnect/campusconnect/internal/db"
	"github.com/campusconnect/campusconnect/internal/kafka"
	"github.com/campusconnect/campusconnect/internal/logger"
	"github.com/campusconnect/campusconnect/internal/marketplace"
	"github.com/campusconnect/campusconnect/internal/notify"
	"github.com/campusconnect/campusconnect/internal/repository/postgresql"
	"github.com/campusconnect/campusconnect/internal/server"
)

func main() {
	log := logger.New()
	defer func() {
		_ = log.Sync()
	}()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	database, err := db.NewDb(ctx)
	if err != nil {
		log.Fatal("database init failed", zap.Error(err))
	}
	defer database.GetPool().Close()

	itemRepo := postgresql.NewItemRepo(database)
	transactionRepo := postgresql.NewTransactionRepo(database)
	notificationRepo := postgresql.NewNotificationRepo(database)
	userRepo := postgresql.NewUserRepo(database)
	categoryRepo := postgresql.NewCategoryRepo(database)
	reviewRepo := postgresql.NewReviewRepo(database)
	outboxRepo := postgresql.NewOutboxTaskRepo()

	itemCache := cache.NewItemCache(log)
	if err := itemCache.LoadInitialData(ctx, itemRepo); err != nil {
		log.Warn("item cache warmup failed, starting cold", zap.Error(err))
	}

	registry := notify.NewRegistry(log)

	service := marketplace.NewService(
		database,
		itemRepo, transactionRepo, notificationRepo, userRepo, categoryRepo, reviewRepo, outboxRepo,
		registry, itemCache, log,
	)

	var producer kafka.Producer
	if brokers := os.Getenv("KAFKA_BROKERS"); brokers != "" {
		producer = kafka.NewWriterProducer(strings.Split(brokers, ","), log)
	} else {
		producer = kafka.NewConsoleProducer(log)
	}
	publisher := kafka.NewPublisher(database, outboxRepo, producer, kafka.DefaultPublisherConfig(), log)

	srv := server.New(service, userRepo, registry, server.Config{
		Port:      envOr("SERVER_PORT", "9000"),
		JWTSecret: envOr("JWT_SECRET", "dev-secret-change-me"),
	}, log)

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		return srv.Run(groupCtx)
	})
	group.Go(func() error {
		publisher.Run(groupCtx)
		return nil
	})
	group.Go(func() error {
		service.RunSweeper(groupCtx, marketplace.DefaultSweeperConfig())
		return nil
	})
	group.Go(func() error {
		<-groupCtx.Done()
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := group.Wait(); err != nil {
		log.Fatal("server exited with error", zap.Error(err))
	}
	log.Info("server gracefully stopped")
}

func envOr(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}
