package auction

import (
	"context"
	"errors"
	"testing"
	"time"

	"car-auction/internal/clock"
	model "car-auction/internal/models"
	"car-auction/internal/repository"

	"github.com/stretchr/testify/require"
)

var testStart = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

func errorsIsAny(err error, targets ...error) bool {
	for _, t := range targets {
		if errors.Is(err, t) {
			return true
		}
	}
	return false
}

func newTestService(t *testing.T, settings Settings) (*AuctionService, *clock.Fake, *repository.MemoryRepo) {
	t.Helper()
	if settings.CountdownSeconds == 0 {
		settings.CountdownSeconds = 90
	}
	if settings.BuyersPremiumRate == 0 {
		settings.BuyersPremiumRate = 0.10
	}
	clk := clock.NewFake(testStart)
	repo := repository.NewMemoryRepo()
	svc := NewAuctionService(repo, nil, clk, settings)
	return svc, clk, repo
}

// scheduleAuction creates a Scheduled auction with its pre-bid window open
// from the fake clock's current instant until liveAt.
func scheduleAuction(t *testing.T, svc *AuctionService, liveAt time.Time) *model.Auction {
	t.Helper()
	ctx := context.Background()
	a, err := svc.CreateAuction(ctx, "Tuesday Sale", "loc1", 90)
	require.NoError(t, err)
	_, err = svc.ScheduleAuction(ctx, a.ID, liveAt, liveAt.Add(4*time.Hour))
	require.NoError(t, err)
	a, err = svc.GetAuction(ctx, a.ID)
	require.NoError(t, err)
	return a
}

func addLot(t *testing.T, svc *AuctionService, auctionID string, lotNumber int, startingPrice float64, reserve *float64) *model.Lot {
	t.Helper()
	l, err := svc.AddLot(context.Background(), auctionID, "vehicle-"+string(rune('0'+lotNumber)), lotNumber, startingPrice, reserve, startingPrice)
	require.NoError(t, err)
	return l
}

// startAuction jumps the clock to the scheduled start and begins the live
// phase.
func startAuction(t *testing.T, svc *AuctionService, clk *clock.Fake, a *model.Auction) *model.Auction {
	t.Helper()
	clk.Set(*a.StartTime)
	started, err := svc.StartAuction(context.Background(), a.ID)
	require.NoError(t, err)
	return started
}

func placeLive(t *testing.T, svc *AuctionService, lotID, bidderID string, amount float64) *model.Bid {
	t.Helper()
	b, err := svc.PlaceBid(context.Background(), PlaceBidInput{
		LotID:    lotID,
		BidderID: bidderID,
		Amount:   amount,
		Kind:     BidKindLive,
	})
	require.NoError(t, err)
	return b
}

func registerProxy(t *testing.T, svc *AuctionService, lotID, bidderID string, ceiling float64) *model.Bid {
	t.Helper()
	b, err := svc.PlaceBid(context.Background(), PlaceBidInput{
		LotID:        lotID,
		BidderID:     bidderID,
		Kind:         BidKindProxy,
		ProxyCeiling: ceiling,
	})
	require.NoError(t, err)
	return b
}
