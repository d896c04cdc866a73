package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	auction "car-auction/internal/auctionService"
	"car-auction/internal/clock"
	"car-auction/internal/config"
	"car-auction/internal/notify"
	"car-auction/internal/repository"
	"car-auction/internal/server"
	"car-auction/utils"

	rd "github.com/redis/go-redis/v9"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	utils.SetLogLevel(cfg.LogLevel)

	repo, err := buildRepo(cfg)
	if err != nil {
		utils.Fatal("failed to open store", map[string]any{"error": err.Error()})
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	notifier, cleanup := buildNotifier(ctx, cfg)
	defer cleanup()

	svc := auction.NewAuctionService(repo, notifier, clock.NewSystem(), auction.Settings{
		CountdownSeconds:      cfg.CountdownSeconds,
		BuyersPremiumRate:     cfg.BuyersPremiumRate,
		RequireSellerApproval: cfg.RequireSellerApproval,
		PaymentDueDays:        cfg.PaymentDueDays,
		MinScheduleLead:       cfg.MinScheduleLead,
		LotQueueDepth:         cfg.LotQueueDepth,
	})

	driver := auction.NewRotationDriver(svc, cfg.RotationPollInterval)
	go driver.Run(ctx)

	router := server.SetupRouter(svc)

	utils.Info("starting auction server", map[string]any{"address": cfg.ServerAddress})
	if err := router.Run(cfg.ServerAddress); err != nil {
		utils.Fatal("server stopped", map[string]any{"error": err.Error()})
	}
}

// buildRepo opens the configured store: sqlite via gorm by default, or the
// in-memory repo for local runs.
func buildRepo(cfg *config.Config) (repository.AuctionDB, error) {
	if cfg.UseMemoryStore {
		return repository.NewMemoryRepo(), nil
	}
	db, err := gorm.Open(sqlite.Open(cfg.DBPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", cfg.DBPath, err)
	}
	return repository.NewGormRepo(db)
}

// buildNotifier wires the event path. With Redis configured, events go to
// the stream outbox and a relay forwards them to Kafka; otherwise they are
// logged.
func buildNotifier(ctx context.Context, cfg *config.Config) (notify.Publisher, func()) {
	if cfg.RedisAddr == "" {
		return notify.NewLogPublisher(), func() {}
	}

	rdb := rd.NewClient(&rd.Options{Addr: cfg.RedisAddr, DB: cfg.RedisDB})
	sinks := notify.Fanout{
		notify.NewLogPublisher(),
		notify.NewStreamPublisher(rdb, cfg.EventStream),
	}

	cleanup := func() { _ = rdb.Close() }
	if len(cfg.KafkaBrokers) > 0 {
		producer := notify.NewProducer(cfg.KafkaBrokers, cfg.KafkaTopic)
		relay := notify.NewRelay(rdb, producer, cfg.EventStream, cfg.EventGroup, cfg.EventConsumer)
		go relay.Run(ctx)
		cleanup = func() {
			_ = producer.Close()
			_ = rdb.Close()
		}
	}
	return sinks, cleanup
}
