package auction

import (
	"context"
	"sync"
	"testing"
	"time"

	"car-auction/internal/auctionerrors"
	model "car-auction/internal/models"

	"github.com/stretchr/testify/require"
)

func TestPreBidWindow(t *testing.T) {
	t.Parallel()

	t.Run("closed_before_schedule", func(t *testing.T) {
		t.Parallel()
		ctx := context.Background()
		svc, _, _ := newTestService(t, Settings{})
		a, err := svc.CreateAuction(ctx, "Draft Sale", "loc1", 90)
		require.NoError(t, err)
		l, err := svc.AddLot(ctx, a.ID, "veh1", 1, 500, nil, 500)
		require.NoError(t, err)

		_, err = svc.PlaceBid(ctx, PlaceBidInput{LotID: l.ID, BidderID: "alice", Amount: 600, Kind: BidKindPreBid})
		require.ErrorIs(t, err, auctionerrors.ErrLotNotBiddable)
	})

	t.Run("closed_at_live_start", func(t *testing.T) {
		t.Parallel()
		ctx := context.Background()
		svc, clk, _ := newTestService(t, Settings{})
		a := scheduleAuction(t, svc, testStart.Add(2*time.Hour))
		l := addLot(t, svc, a.ID, 1, 500, nil)

		clk.Set(*a.StartTime)
		_, err := svc.PlaceBid(ctx, PlaceBidInput{LotID: l.ID, BidderID: "alice", Amount: 600, Kind: BidKindPreBid})
		require.ErrorIs(t, err, auctionerrors.ErrLotNotBiddable)
	})
}

// Pre-bids must clear the floor and strictly beat the standing pre-bid, but
// are not bound to the live increment ladder.
func TestPreBidFloorAndOutbid(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc, _, _ := newTestService(t, Settings{})
	a := scheduleAuction(t, svc, testStart.Add(2*time.Hour))
	l := addLot(t, svc, a.ID, 1, 500, nil)

	_, err := svc.PlaceBid(ctx, PlaceBidInput{LotID: l.ID, BidderID: "alice", Amount: 499, Kind: BidKindPreBid})
	require.ErrorIs(t, err, auctionerrors.ErrBidTooLow)

	_, err = svc.PlaceBid(ctx, PlaceBidInput{LotID: l.ID, BidderID: "alice", Amount: 500, Kind: BidKindPreBid})
	require.NoError(t, err)

	// matching the standing pre-bid is not enough
	_, err = svc.PlaceBid(ctx, PlaceBidInput{LotID: l.ID, BidderID: "bob", Amount: 500, Kind: BidKindPreBid})
	require.ErrorIs(t, err, auctionerrors.ErrBidTooLow)

	// any strict raise beats it, no ladder step needed
	_, err = svc.PlaceBid(ctx, PlaceBidInput{LotID: l.ID, BidderID: "bob", Amount: 510, Kind: BidKindPreBid})
	require.NoError(t, err)

	got, err := svc.GetLot(ctx, l.ID)
	require.NoError(t, err)
	require.Equal(t, 2, got.PreBidCount)
	require.Equal(t, 500.0, got.CurrentPrice)
}

// The opening live bid may match the seeded price exactly; after that the
// ladder applies.
func TestLiveBidLadder(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc, clk, _ := newTestService(t, Settings{})
	a := scheduleAuction(t, svc, testStart.Add(2*time.Hour))
	l := addLot(t, svc, a.ID, 1, 500, nil)
	startAuction(t, svc, clk, a)

	_, err := svc.PlaceBid(ctx, PlaceBidInput{LotID: l.ID, BidderID: "alice", Amount: 499, Kind: BidKindLive})
	require.ErrorIs(t, err, auctionerrors.ErrBidTooLow)

	placeLive(t, svc, l.ID, "alice", 500)

	// price 500 sits in the 50-step tier, next minimum is 550
	_, err = svc.PlaceBid(ctx, PlaceBidInput{LotID: l.ID, BidderID: "bob", Amount: 500, Kind: BidKindLive})
	require.ErrorIs(t, err, auctionerrors.ErrBidTooLow)
	_, err = svc.PlaceBid(ctx, PlaceBidInput{LotID: l.ID, BidderID: "bob", Amount: 549, Kind: BidKindLive})
	require.ErrorIs(t, err, auctionerrors.ErrBidTooLow)

	placeLive(t, svc, l.ID, "bob", 550)

	got, err := svc.GetLot(ctx, l.ID)
	require.NoError(t, err)
	require.Equal(t, 550.0, got.CurrentPrice)
	require.Equal(t, 2, got.BidCount)
}

func TestProxyRegistrationRules(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc, _, _ := newTestService(t, Settings{})
	a := scheduleAuction(t, svc, testStart.Add(2*time.Hour))
	l := addLot(t, svc, a.ID, 1, 500, nil)

	_, err := svc.PlaceBid(ctx, PlaceBidInput{LotID: l.ID, BidderID: "alice", Kind: BidKindProxy})
	require.ErrorIs(t, err, auctionerrors.ErrInvalidBid)

	reg := registerProxy(t, svc, l.ID, "alice", 1000)

	// one standing registration per bidder per lot
	_, err = svc.PlaceBid(ctx, PlaceBidInput{LotID: l.ID, BidderID: "alice", Kind: BidKindProxy, ProxyCeiling: 1500})
	require.ErrorIs(t, err, auctionerrors.ErrProxyConflict)

	// cancelling frees the slot
	_, err = svc.CancelProxy(ctx, reg.ID, "alice")
	require.NoError(t, err)
	registerProxy(t, svc, l.ID, "alice", 1500)
}

func TestProxyCeilingBelowCurrentPrice(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc, clk, _ := newTestService(t, Settings{})
	a := scheduleAuction(t, svc, testStart.Add(2*time.Hour))
	l := addLot(t, svc, a.ID, 1, 500, nil)
	startAuction(t, svc, clk, a)

	placeLive(t, svc, l.ID, "alice", 500)
	placeLive(t, svc, l.ID, "bob", 700)

	_, err := svc.PlaceBid(ctx, PlaceBidInput{LotID: l.ID, BidderID: "carol", Kind: BidKindProxy, ProxyCeiling: 600})
	require.ErrorIs(t, err, auctionerrors.ErrBidTooLow)
}

// A bidder holding a standing registration cannot also bid manually on the
// same lot; the registration must be cancelled first.
func TestManualBidWhileHoldingProxyRejected(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc, clk, _ := newTestService(t, Settings{})
	a := scheduleAuction(t, svc, testStart.Add(2*time.Hour))
	l := addLot(t, svc, a.ID, 1, 500, nil)
	startAuction(t, svc, clk, a)

	reg := registerProxy(t, svc, l.ID, "alice", 2000)

	_, err := svc.PlaceBid(ctx, PlaceBidInput{LotID: l.ID, BidderID: "alice", Amount: 600, Kind: BidKindLive})
	require.ErrorIs(t, err, auctionerrors.ErrProxyConflict)

	// other bidders are unaffected
	placeLive(t, svc, l.ID, "bob", 600)

	// cancelling the registration re-opens manual bidding
	_, err = svc.CancelProxy(ctx, reg.ID, "alice")
	require.NoError(t, err)
	placeLive(t, svc, l.ID, "alice", 700)
}

func TestRetractBid(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc, clk, _ := newTestService(t, Settings{})
	a := scheduleAuction(t, svc, testStart.Add(2*time.Hour))
	l := addLot(t, svc, a.ID, 1, 500, nil)

	alice, err := svc.PlaceBid(ctx, PlaceBidInput{LotID: l.ID, BidderID: "alice", Amount: 600, Kind: BidKindPreBid})
	require.NoError(t, err)
	bob, err := svc.PlaceBid(ctx, PlaceBidInput{LotID: l.ID, BidderID: "bob", Amount: 650, Kind: BidKindPreBid})
	require.NoError(t, err)

	_, err = svc.RetractBid(ctx, alice.ID, "mallory")
	require.ErrorIs(t, err, auctionerrors.ErrNotOwner)

	got, err := svc.RetractBid(ctx, alice.ID, "alice")
	require.NoError(t, err)
	require.Equal(t, model.BidRetracted, got.Status)

	// once the lot closes the ledger is frozen
	startAuction(t, svc, clk, a)
	clk.Advance(91 * time.Second)
	_, err = svc.MoveToNextCar(ctx, a.ID)
	require.NoError(t, err)

	_, err = svc.RetractBid(ctx, bob.ID, "bob")
	require.ErrorIs(t, err, auctionerrors.ErrLotClosed)
}

func TestUpdateBidAmountRules(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc, clk, _ := newTestService(t, Settings{})
	a := scheduleAuction(t, svc, testStart.Add(2*time.Hour))
	l := addLot(t, svc, a.ID, 1, 500, nil)

	pre, err := svc.PlaceBid(ctx, PlaceBidInput{LotID: l.ID, BidderID: "alice", Amount: 600, Kind: BidKindPreBid})
	require.NoError(t, err)

	_, err = svc.UpdateBidAmount(ctx, pre.ID, "alice", 550)
	require.ErrorIs(t, err, auctionerrors.ErrInvalidBid)

	got, err := svc.UpdateBidAmount(ctx, pre.ID, "alice", 700)
	require.NoError(t, err)
	require.Equal(t, 700.0, got.Amount)

	// live bids are immutable ledger entries
	startAuction(t, svc, clk, a)
	live := placeLive(t, svc, l.ID, "bob", 700)
	_, err = svc.UpdateBidAmount(ctx, live.ID, "bob", 800)
	require.ErrorIs(t, err, auctionerrors.ErrInvalidBid)
}

// A raise goes through the same gates as a fresh bid of its kind: pre-bids
// honor the collection window, proxy ceilings honor the current price.
func TestUpdateBidAmountRevalidates(t *testing.T) {
	t.Parallel()

	t.Run("pre_bid_raise_after_window", func(t *testing.T) {
		t.Parallel()
		ctx := context.Background()
		svc, clk, _ := newTestService(t, Settings{})
		a := scheduleAuction(t, svc, testStart.Add(2*time.Hour))
		l := addLot(t, svc, a.ID, 1, 500, nil)

		pre, err := svc.PlaceBid(ctx, PlaceBidInput{LotID: l.ID, BidderID: "alice", Amount: 600, Kind: BidKindPreBid})
		require.NoError(t, err)

		clk.Set(*a.StartTime)
		_, err = svc.UpdateBidAmount(ctx, pre.ID, "alice", 700)
		require.ErrorIs(t, err, auctionerrors.ErrLotNotBiddable)
	})

	t.Run("proxy_raise_below_current_price", func(t *testing.T) {
		t.Parallel()
		ctx := context.Background()
		svc, clk, _ := newTestService(t, Settings{})
		a := scheduleAuction(t, svc, testStart.Add(2*time.Hour))
		l := addLot(t, svc, a.ID, 1, 500, nil)
		startAuction(t, svc, clk, a)

		placeLive(t, svc, l.ID, "alice", 500)
		reg := registerProxy(t, svc, l.ID, "bob", 600)
		placeLive(t, svc, l.ID, "alice", 550)

		// bob's proxy is exhausted at 600, alice takes the lead past it
		placeLive(t, svc, l.ID, "alice", 700)
		got, _ := svc.GetLot(ctx, l.ID)
		require.Equal(t, 700.0, got.CurrentPrice)

		_, err := svc.UpdateBidAmount(ctx, reg.ID, "bob", 650)
		require.ErrorIs(t, err, auctionerrors.ErrBidTooLow)

		// a raise clearing the price re-arms the proxy
		_, err = svc.UpdateBidAmount(ctx, reg.ID, "bob", 800)
		require.NoError(t, err)
		got, _ = svc.GetLot(ctx, l.ID)
		require.Equal(t, 750.0, got.CurrentPrice)
		top, err := svc.GetHighestBid(ctx, l.ID)
		require.NoError(t, err)
		require.Equal(t, "bob", top.BidderID)
	})
}

// Activation seeds the opening price from the highest valid pre-bid without
// counting it as a live bid.
func TestPreBidSeedsActivation(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc, clk, _ := newTestService(t, Settings{})
	a := scheduleAuction(t, svc, testStart.Add(2*time.Hour))
	reserve := 640.0
	l := addLot(t, svc, a.ID, 1, 500, &reserve)

	_, err := svc.PlaceBid(ctx, PlaceBidInput{LotID: l.ID, BidderID: "alice", Amount: 600, Kind: BidKindPreBid})
	require.NoError(t, err)
	_, err = svc.PlaceBid(ctx, PlaceBidInput{LotID: l.ID, BidderID: "bob", Amount: 650, Kind: BidKindPreBid})
	require.NoError(t, err)

	startAuction(t, svc, clk, a)

	got, err := svc.GetLot(ctx, l.ID)
	require.NoError(t, err)
	require.Equal(t, model.LotLiveAuction, got.Condition)
	require.True(t, got.IsActive)
	require.Equal(t, 650.0, got.CurrentPrice)
	require.Equal(t, 0, got.BidCount)
	require.True(t, got.ReserveMet)

	// the seed is not a standing bid
	_, err = svc.GetHighestBid(ctx, l.ID)
	require.ErrorIs(t, err, auctionerrors.ErrBidNotFound)
}

// Pre-bids seed the price but cannot win; with no live bid the lot passes
// unsold.
func TestPreBidsAloneGoUnsold(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc, clk, _ := newTestService(t, Settings{})
	a := scheduleAuction(t, svc, testStart.Add(2*time.Hour))
	l := addLot(t, svc, a.ID, 1, 500, nil)

	_, err := svc.PlaceBid(ctx, PlaceBidInput{LotID: l.ID, BidderID: "alice", Amount: 600, Kind: BidKindPreBid})
	require.NoError(t, err)

	startAuction(t, svc, clk, a)
	clk.Advance(91 * time.Second)
	_, err = svc.MoveToNextCar(ctx, a.ID)
	require.NoError(t, err)

	got, err := svc.GetLot(ctx, l.ID)
	require.NoError(t, err)
	require.Equal(t, model.LotUnsold, got.Condition)
	require.Equal(t, "no bids", got.UnsoldReason)

	_, err = svc.GetWinnerByLot(ctx, l.ID)
	require.ErrorIs(t, err, auctionerrors.ErrWinnerNotFound)

	ended, err := svc.GetAuction(ctx, a.ID)
	require.NoError(t, err)
	require.Equal(t, model.AuctionEnded, ended.Status)
}

// Concurrent live bids serialize through the lot lock: no lost updates, and
// every rejection is either a ladder miss or lock pressure.
func TestConcurrentLiveBids(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc, clk, _ := newTestService(t, Settings{})
	a := scheduleAuction(t, svc, testStart.Add(2*time.Hour))
	l := addLot(t, svc, a.ID, 1, 500, nil)
	startAuction(t, svc, clk, a)

	var (
		mu       sync.Mutex
		accepted []float64
		wg       sync.WaitGroup
	)
	for i := 0; i < 8; i++ {
		amount := 1000.0 + float64(i)*100
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.PlaceBid(ctx, PlaceBidInput{
				LotID:    l.ID,
				BidderID: "bidder",
				Amount:   amount,
				Kind:     BidKindLive,
			})
			if err != nil {
				if !errorsIsAny(err, auctionerrors.ErrBidTooLow, auctionerrors.ErrLotBusy) {
					t.Errorf("unexpected bid error: %v", err)
				}
				return
			}
			mu.Lock()
			accepted = append(accepted, amount)
			mu.Unlock()
		}()
	}
	wg.Wait()

	require.NotEmpty(t, accepted)
	top := accepted[0]
	for _, amt := range accepted {
		if amt > top {
			top = amt
		}
	}

	got, err := svc.GetLot(ctx, l.ID)
	require.NoError(t, err)
	require.Equal(t, top, got.CurrentPrice)
	require.Equal(t, len(accepted), got.BidCount)
}
