package auction

import (
	"context"
	"testing"
	"time"

	"car-auction/internal/auctionerrors"
	model "car-auction/internal/models"

	"github.com/stretchr/testify/require"
)

// Drives a two-lot auction end to end through the rotation driver: the
// countdown closes each lot in turn and the auction ends when the run list
// is exhausted.
func TestRotationFullAuction(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc, clk, _ := newTestService(t, Settings{})
	a := scheduleAuction(t, svc, testStart.Add(2*time.Hour))
	lot1 := addLot(t, svc, a.ID, 1, 500, nil)
	lot2 := addLot(t, svc, a.ID, 2, 800, nil)
	startAuction(t, svc, clk, a)

	driver := NewRotationDriver(svc, time.Second)

	got, _ := svc.GetAuction(ctx, a.ID)
	require.Equal(t, lot1.ID, got.CurrentLotID)

	// a bid late in the round re-anchors the countdown
	clk.Advance(60 * time.Second)
	placeLive(t, svc, lot1.ID, "alice", 500)

	clk.Advance(60 * time.Second)
	driver.Tick(ctx)
	got, _ = svc.GetAuction(ctx, a.ID)
	require.Equal(t, lot1.ID, got.CurrentLotID)

	clk.Advance(31 * time.Second)
	driver.Tick(ctx)

	closed, _ := svc.GetLot(ctx, lot1.ID)
	require.Equal(t, model.LotSellerApproved, closed.Condition)
	require.Equal(t, 500.0, *closed.HammerPrice)
	w, err := svc.GetWinnerByLot(ctx, lot1.ID)
	require.NoError(t, err)
	require.Equal(t, "alice", w.BidderID)

	got, _ = svc.GetAuction(ctx, a.ID)
	require.Equal(t, lot2.ID, got.CurrentLotID)

	// no bids on the second lot, it passes and the auction ends
	clk.Advance(91 * time.Second)
	driver.Tick(ctx)

	unsold, _ := svc.GetLot(ctx, lot2.ID)
	require.Equal(t, model.LotUnsold, unsold.Condition)

	ended, _ := svc.GetAuction(ctx, a.ID)
	require.Equal(t, model.AuctionEnded, ended.Status)
	require.Empty(t, ended.CurrentLotID)
}

// A bid landing between the sweep's expiry check and the close must keep
// its round: the driver's close path re-checks the countdown under the lot
// lock and backs off.
func TestLateBidKeepsRound(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc, clk, _ := newTestService(t, Settings{})
	a := scheduleAuction(t, svc, testStart.Add(2*time.Hour))
	l := addLot(t, svc, a.ID, 1, 500, nil)
	startAuction(t, svc, clk, a)

	placeLive(t, svc, l.ID, "alice", 500)
	clk.Advance(91 * time.Second)

	// the countdown has run out, but a bid slips in before the close
	placeLive(t, svc, l.ID, "bob", 550)

	got, err := svc.RotateIfExpired(ctx, a.ID)
	require.NoError(t, err)
	require.Equal(t, l.ID, got.CurrentLotID)

	still, _ := svc.GetLot(ctx, l.ID)
	require.Equal(t, model.LotLiveAuction, still.Condition)
	require.True(t, still.IsActive)

	// with the round truly expired the same path closes the lot
	clk.Advance(91 * time.Second)
	_, err = svc.RotateIfExpired(ctx, a.ID)
	require.NoError(t, err)

	closed, _ := svc.GetLot(ctx, l.ID)
	require.Equal(t, 550.0, *closed.HammerPrice)

	w, err := svc.GetWinnerByLot(ctx, l.ID)
	require.NoError(t, err)
	require.Equal(t, "bob", w.BidderID)
}

// The lot carrying the strongest pre-bid opens the auction, ahead of lower
// lot numbers.
func TestFirstLotSelectionByPreBid(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc, clk, _ := newTestService(t, Settings{})
	a := scheduleAuction(t, svc, testStart.Add(2*time.Hour))
	addLot(t, svc, a.ID, 1, 500, nil)
	lot2 := addLot(t, svc, a.ID, 2, 500, nil)
	lot3 := addLot(t, svc, a.ID, 3, 500, nil)

	_, err := svc.PlaceBid(ctx, PlaceBidInput{LotID: lot2.ID, BidderID: "alice", Amount: 550, Kind: BidKindPreBid})
	require.NoError(t, err)
	_, err = svc.PlaceBid(ctx, PlaceBidInput{LotID: lot3.ID, BidderID: "bob", Amount: 600, Kind: BidKindPreBid})
	require.NoError(t, err)

	startAuction(t, svc, clk, a)

	got, err := svc.GetAuction(ctx, a.ID)
	require.NoError(t, err)
	require.Equal(t, lot3.ID, got.CurrentLotID)
}

func TestReserveNotMetGoesUnsold(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc, clk, _ := newTestService(t, Settings{})
	a := scheduleAuction(t, svc, testStart.Add(2*time.Hour))
	reserve := 2000.0
	l := addLot(t, svc, a.ID, 1, 500, &reserve)
	startAuction(t, svc, clk, a)

	placeLive(t, svc, l.ID, "alice", 500)
	placeLive(t, svc, l.ID, "bob", 600)

	clk.Advance(91 * time.Second)
	_, err := svc.MoveToNextCar(ctx, a.ID)
	require.NoError(t, err)

	got, err := svc.GetLot(ctx, l.ID)
	require.NoError(t, err)
	require.Equal(t, model.LotUnsold, got.Condition)
	require.Equal(t, "reserve not met", got.UnsoldReason)
	require.Equal(t, model.WinnerUnsold, got.WinnerStatus)

	_, err = svc.GetWinnerByLot(ctx, l.ID)
	require.ErrorIs(t, err, auctionerrors.ErrWinnerNotFound)
}

// Cancelling a running auction pulls the live lot off the block without
// closing it.
func TestCancelAuctionWhileRunning(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc, clk, _ := newTestService(t, Settings{})
	a := scheduleAuction(t, svc, testStart.Add(2*time.Hour))
	l := addLot(t, svc, a.ID, 1, 500, nil)
	startAuction(t, svc, clk, a)

	cancelled, err := svc.CancelAuction(ctx, a.ID)
	require.NoError(t, err)
	require.Equal(t, model.AuctionCancelled, cancelled.Status)
	require.Empty(t, cancelled.CurrentLotID)

	got, err := svc.GetLot(ctx, l.ID)
	require.NoError(t, err)
	require.Equal(t, model.LotReadyForAuction, got.Condition)
	require.False(t, got.IsActive)
}

func TestCancelEndedAuctionRejected(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc, clk, _ := newTestService(t, Settings{})
	a := scheduleAuction(t, svc, testStart.Add(2*time.Hour))
	addLot(t, svc, a.ID, 1, 500, nil)
	startAuction(t, svc, clk, a)

	_, err := svc.EndAuction(ctx, a.ID)
	require.NoError(t, err)

	_, err = svc.CancelAuction(ctx, a.ID)
	require.ErrorIs(t, err, auctionerrors.ErrIllegalTransition)
}

// Walks a sold lot through seller approval, deposit, full payment and
// hand-over, with the winner's ledger gating the payment-complete step.
func TestWinnerPaymentChain(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc, clk, _ := newTestService(t, Settings{RequireSellerApproval: true})
	a := scheduleAuction(t, svc, testStart.Add(2*time.Hour))
	l := addLot(t, svc, a.ID, 1, 500, nil)
	startAuction(t, svc, clk, a)

	placeLive(t, svc, l.ID, "alice", 1000)
	clk.Advance(91 * time.Second)
	_, err := svc.MoveToNextCar(ctx, a.ID)
	require.NoError(t, err)

	got, _ := svc.GetLot(ctx, l.ID)
	require.Equal(t, model.LotAwaitingApproval, got.Condition)
	require.Equal(t, 1100.0, got.TotalPrice)

	got, err = svc.ApproveWinner(ctx, l.ID)
	require.NoError(t, err)
	require.Equal(t, model.LotSellerApproved, got.Condition)

	w, err := svc.GetWinnerByLot(ctx, l.ID)
	require.NoError(t, err)
	require.NotNil(t, w.ConfirmedAt)

	got, err = svc.MarkDepositPaid(ctx, l.ID)
	require.NoError(t, err)
	require.Equal(t, model.LotAwaitingPayment, got.Condition)

	// payment must be settled in full first
	_, err = svc.CompletePayment(ctx, l.ID)
	require.ErrorIs(t, err, auctionerrors.ErrInvariant)

	w, err = svc.RecordPayment(ctx, w.ID, 400)
	require.NoError(t, err)
	require.Equal(t, model.PaymentPartiallyPaid, w.PaymentStatus)
	w, err = svc.RecordPayment(ctx, w.ID, 600)
	require.NoError(t, err)
	require.Equal(t, model.PaymentPaid, w.PaymentStatus)

	got, err = svc.CompletePayment(ctx, l.ID)
	require.NoError(t, err)
	require.Equal(t, model.LotReadyForPickup, got.Condition)

	got, err = svc.CompleteSale(ctx, l.ID)
	require.NoError(t, err)
	require.Equal(t, model.LotCompleted, got.Condition)
	require.Equal(t, model.WinnerCompleted, got.WinnerStatus)
}

func TestSecondChanceWinner(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc, clk, _ := newTestService(t, Settings{})
	a := scheduleAuction(t, svc, testStart.Add(2*time.Hour))
	l := addLot(t, svc, a.ID, 1, 500, nil)
	startAuction(t, svc, clk, a)

	placeLive(t, svc, l.ID, "alice", 500)
	placeLive(t, svc, l.ID, "bob", 550)
	placeLive(t, svc, l.ID, "alice", 600)

	clk.Advance(91 * time.Second)
	_, err := svc.MoveToNextCar(ctx, a.ID)
	require.NoError(t, err)

	orig, err := svc.GetWinnerByLot(ctx, l.ID)
	require.NoError(t, err)
	require.Equal(t, "alice", orig.BidderID)

	// a live obligation blocks the offer
	_, err = svc.CreateSecondChanceWinner(ctx, l.ID)
	require.ErrorIs(t, err, auctionerrors.ErrIllegalTransition)

	_, err = svc.CancelWinner(ctx, orig.ID)
	require.NoError(t, err)

	clk.Advance(time.Hour)
	second, err := svc.CreateSecondChanceWinner(ctx, l.ID)
	require.NoError(t, err)
	require.Equal(t, "bob", second.BidderID)
	require.Equal(t, 550.0, second.Amount)
	require.True(t, second.IsSecondChance)
	require.Equal(t, orig.ID, second.OriginalWinnerID)

	// the fresh offer is now the lot's winner of record
	current, err := svc.GetWinnerByLot(ctx, l.ID)
	require.NoError(t, err)
	require.Equal(t, second.ID, current.ID)
}

func TestListAuctions(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc, clk, _ := newTestService(t, Settings{})
	a := scheduleAuction(t, svc, testStart.Add(2*time.Hour))
	addLot(t, svc, a.ID, 1, 500, nil)

	running, err := svc.ListAuctions(ctx, model.AuctionRunning)
	require.NoError(t, err)
	require.Empty(t, running)

	startAuction(t, svc, clk, a)

	running, err = svc.ListAuctions(ctx, model.AuctionRunning)
	require.NoError(t, err)
	require.Len(t, running, 1)
	require.Equal(t, a.ID, running[0].ID)

	_, err = svc.ListAuctions(ctx, "Bogus")
	require.ErrorIs(t, err, auctionerrors.ErrValidation)
}

func TestSendPaymentReminder(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc, clk, _ := newTestService(t, Settings{})
	a := scheduleAuction(t, svc, testStart.Add(2*time.Hour))
	l := addLot(t, svc, a.ID, 1, 500, nil)
	startAuction(t, svc, clk, a)

	placeLive(t, svc, l.ID, "alice", 500)
	clk.Advance(91 * time.Second)
	_, err := svc.MoveToNextCar(ctx, a.ID)
	require.NoError(t, err)

	w, err := svc.GetWinnerByLot(ctx, l.ID)
	require.NoError(t, err)

	w, err = svc.SendPaymentReminder(ctx, w.ID)
	require.NoError(t, err)
	require.Equal(t, 1, w.ReminderCount)
	w, err = svc.SendPaymentReminder(ctx, w.ID)
	require.NoError(t, err)
	require.Equal(t, 2, w.ReminderCount)

	_, err = svc.RecordPayment(ctx, w.ID, w.Amount)
	require.NoError(t, err)
	_, err = svc.SendPaymentReminder(ctx, w.ID)
	require.ErrorIs(t, err, auctionerrors.ErrIllegalTransition)
}
