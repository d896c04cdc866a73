package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	auction "car-auction/internal/auctionService"
	"car-auction/internal/clock"
	"car-auction/internal/config"
	"car-auction/internal/repository"
	"car-auction/utils"

	"github.com/brianvoe/gofakeit/v7"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// seed populates a fresh database with a scheduled auction full of synthetic
// vehicle lots and pre-bids, for local development and demos.
func main() {
	lotCount := flag.Int("lots", 12, "number of lots to create")
	bidderCount := flag.Int("bidders", 8, "size of the synthetic bidder pool")
	seedVal := flag.Int64("seed", 0, "random seed, 0 for time-based")
	flag.Parse()

	cfg, err := config.NewConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	utils.SetLogLevel(cfg.LogLevel)
	if *seedVal != 0 {
		if err := gofakeit.Seed(*seedVal); err != nil {
			utils.Fatal("seed: bad random seed", map[string]any{"error": err.Error()})
		}
	}

	db, err := gorm.Open(sqlite.Open(cfg.DBPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		utils.Fatal("seed: open sqlite", map[string]any{"error": err.Error()})
	}
	repo, err := repository.NewGormRepo(db)
	if err != nil {
		utils.Fatal("seed: migrate", map[string]any{"error": err.Error()})
	}

	svc := auction.NewAuctionService(repo, nil, clock.NewSystem(), auction.Settings{
		CountdownSeconds:      cfg.CountdownSeconds,
		BuyersPremiumRate:     cfg.BuyersPremiumRate,
		RequireSellerApproval: cfg.RequireSellerApproval,
		PaymentDueDays:        cfg.PaymentDueDays,
		MinScheduleLead:       cfg.MinScheduleLead,
		LotQueueDepth:         cfg.LotQueueDepth,
	})

	ctx := context.Background()
	a, err := svc.CreateAuction(ctx, fmt.Sprintf("%s Auto Auction", gofakeit.City()), gofakeit.UUID(), cfg.CountdownSeconds)
	if err != nil {
		utils.Fatal("seed: create auction", map[string]any{"error": err.Error()})
	}

	start := time.Now().Add(cfg.MinScheduleLead + time.Hour)
	if _, err := svc.ScheduleAuction(ctx, a.ID, start, start.Add(4*time.Hour)); err != nil {
		utils.Fatal("seed: schedule auction", map[string]any{"error": err.Error()})
	}

	bidders := make([]string, *bidderCount)
	for i := range bidders {
		bidders[i] = gofakeit.UUID()
	}

	for n := 1; n <= *lotCount; n++ {
		car := gofakeit.Car()
		startingPrice := float64(gofakeit.Number(4, 120)) * 250
		var reserve *float64
		if gofakeit.Bool() {
			r := startingPrice * (1 + gofakeit.Float64Range(0.1, 0.5))
			reserve = &r
		}
		l, err := svc.AddLot(ctx, a.ID, gofakeit.UUID(), n, startingPrice, reserve, startingPrice)
		if err != nil {
			utils.Fatal("seed: add lot", map[string]any{"lot_number": n, "error": err.Error()})
		}
		utils.Info("seed: lot created", map[string]any{
			"lot_number": n,
			"vehicle":    fmt.Sprintf("%d %s %s", car.Year, car.Brand, car.Model),
			"starting":   startingPrice,
		})

		// Roughly half the lots collect pre-bids.
		if !gofakeit.Bool() {
			continue
		}
		amount := startingPrice
		for i := 0; i < gofakeit.Number(1, 3); i++ {
			amount += float64(gofakeit.Number(1, 6)) * 50
			bidder := bidders[gofakeit.Number(0, len(bidders)-1)]
			if _, err := svc.PlaceBid(ctx, auction.PlaceBidInput{
				LotID:    l.ID,
				BidderID: bidder,
				Amount:   amount,
				Kind:     auction.BidKindPreBid,
			}); err != nil {
				utils.Warn("seed: pre-bid rejected", map[string]any{"lot_number": n, "error": err.Error()})
			}
		}
	}

	utils.Info("seed: done", map[string]any{
		"auction_id": a.ID,
		"lots":       *lotCount,
		"db":         cfg.DBPath,
	})
}
