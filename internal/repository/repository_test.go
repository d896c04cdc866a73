package repository

import (
	"context"
	"testing"
	"time"

	"car-auction/internal/auctionerrors"
	model "car-auction/internal/models"

	"github.com/stretchr/testify/require"
)

func seedLot(t *testing.T, r *MemoryRepo, id string, lotNumber int) *model.Lot {
	t.Helper()
	l := &model.Lot{
		ID:            id,
		AuctionID:     "a1",
		VehicleID:     "veh-" + id,
		LotNumber:     lotNumber,
		StartingPrice: 500,
		CurrentPrice:  500,
		Condition:     model.LotPreAuction,
		WinnerStatus:  model.WinnerPending,
	}
	require.NoError(t, r.CreateLot(context.Background(), l))
	return l
}

func TestAuctionRoundTrip(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	r := NewMemoryRepo()

	a := &model.Auction{ID: "a1", Name: "Tuesday Sale", Status: model.AuctionDraft}
	require.NoError(t, r.CreateAuction(ctx, a))
	require.ErrorIs(t, r.CreateAuction(ctx, a), auctionerrors.ErrConflict)

	got, err := r.GetAuction(ctx, "a1")
	require.NoError(t, err)
	require.Equal(t, "Tuesday Sale", got.Name)

	got.Name = "Wednesday Sale"
	require.NoError(t, r.SaveAuction(ctx, got))
	require.Equal(t, 1, got.Version)

	_, err = r.GetAuction(ctx, "missing")
	require.ErrorIs(t, err, auctionerrors.ErrAuctionNotFound)
}

// Save* must reject a writer holding an out-of-date version token.
func TestStaleVersionRejected(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	r := NewMemoryRepo()

	a := &model.Auction{ID: "a1", Status: model.AuctionDraft}
	require.NoError(t, r.CreateAuction(ctx, a))

	first, err := r.GetAuction(ctx, "a1")
	require.NoError(t, err)
	second, err := r.GetAuction(ctx, "a1")
	require.NoError(t, err)

	require.NoError(t, r.SaveAuction(ctx, first))
	require.ErrorIs(t, r.SaveAuction(ctx, second), auctionerrors.ErrStaleVersion)

	// refetch picks up the bumped token
	fresh, err := r.GetAuction(ctx, "a1")
	require.NoError(t, err)
	require.NoError(t, r.SaveAuction(ctx, fresh))
}

// Reads hand out copies: mutating a returned aggregate never leaks into the
// store without a Save.
func TestReadsAreIsolatedCopies(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	r := NewMemoryRepo()
	seedLot(t, r, "lot1", 1)

	first, err := r.GetLot(ctx, "lot1")
	require.NoError(t, err)
	first.CurrentPrice = 9999

	stored, err := r.GetLot(ctx, "lot1")
	require.NoError(t, err)
	require.Equal(t, 500.0, stored.CurrentPrice)
}

func TestGetLotsByAuctionOrdering(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	r := NewMemoryRepo()
	seedLot(t, r, "lotC", 3)
	seedLot(t, r, "lotA", 1)
	seedLot(t, r, "lotB", 2)

	lots, err := r.GetLotsByAuction(ctx, "a1")
	require.NoError(t, err)
	require.Len(t, lots, 3)
	for i, want := range []int{1, 2, 3} {
		require.Equal(t, want, lots[i].LotNumber)
	}

	none, err := r.GetLotsByAuction(ctx, "other")
	require.NoError(t, err)
	require.Empty(t, none)
}

func TestBidLedger(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	r := NewMemoryRepo()
	seedLot(t, r, "lot1", 1)

	b1 := &model.Bid{ID: "b1", LotID: "lot1", BidderID: "alice", Amount: 500, Status: model.BidPlaced, SequenceNumber: 1}
	b2 := &model.Bid{ID: "b2", LotID: "lot1", BidderID: "bob", Amount: 550, Status: model.BidPlaced, SequenceNumber: 2}
	require.NoError(t, r.RecordBid(ctx, b1))
	require.NoError(t, r.RecordBid(ctx, b2))
	require.ErrorIs(t, r.RecordBid(ctx, b1), auctionerrors.ErrConflict)

	orphan := &model.Bid{ID: "b3", LotID: "missing", BidderID: "carol", Amount: 600}
	require.ErrorIs(t, r.RecordBid(ctx, orphan), auctionerrors.ErrLotNotFound)

	// arrival order is preserved
	ledger, err := r.GetBidsByLot(ctx, "lot1")
	require.NoError(t, err)
	require.Len(t, ledger, 2)
	require.Equal(t, "b1", ledger[0].ID)
	require.Equal(t, "b2", ledger[1].ID)

	got, err := r.GetBid(ctx, "b1")
	require.NoError(t, err)
	got.Status = model.BidRetracted
	require.NoError(t, r.SaveBid(ctx, got))

	saved, err := r.GetBid(ctx, "b1")
	require.NoError(t, err)
	require.Equal(t, model.BidRetracted, saved.Status)
	require.Equal(t, 1, saved.Version)
}

func TestWinnerByLotPicksLatest(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	r := NewMemoryRepo()
	assigned := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	orig := &model.Winner{
		ID:            "w1",
		LotID:         "lot1",
		BidderID:      "alice",
		Amount:        600,
		PaymentStatus: model.PaymentCancelled,
		AssignedAt:    assigned,
	}
	second := &model.Winner{
		ID:             "w2",
		LotID:          "lot1",
		BidderID:       "bob",
		Amount:         550,
		PaymentStatus:  model.PaymentPending,
		AssignedAt:     assigned.Add(time.Hour),
		IsSecondChance: true,
	}
	require.NoError(t, r.CreateWinner(ctx, orig))
	require.NoError(t, r.CreateWinner(ctx, second))

	got, err := r.GetWinnerByLot(ctx, "lot1")
	require.NoError(t, err)
	require.Equal(t, "w2", got.ID)

	byID, err := r.GetWinner(ctx, "w1")
	require.NoError(t, err)
	require.Equal(t, "alice", byID.BidderID)

	_, err = r.GetWinnerByLot(ctx, "lot2")
	require.ErrorIs(t, err, auctionerrors.ErrWinnerNotFound)
}

func TestListAuctionsByStatus(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	r := NewMemoryRepo()
	require.NoError(t, r.CreateAuction(ctx, &model.Auction{ID: "a2", Status: model.AuctionRunning}))
	require.NoError(t, r.CreateAuction(ctx, &model.Auction{ID: "a1", Status: model.AuctionRunning}))
	require.NoError(t, r.CreateAuction(ctx, &model.Auction{ID: "a3", Status: model.AuctionDraft}))

	running, err := r.ListAuctionsByStatus(ctx, model.AuctionRunning)
	require.NoError(t, err)
	require.Len(t, running, 2)
	require.Equal(t, "a1", running[0].ID)
	require.Equal(t, "a2", running[1].ID)
}
