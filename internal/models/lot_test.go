package models

import (
	"testing"
	"time"

	"car-auction/internal/auctionerrors"

	"github.com/stretchr/testify/require"
)

func TestBidIncrementLadder(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		price    float64
		expected float64
	}{
		{"low_price", 100, 25},
		{"just_below_500", 499.99, 25},
		{"exactly_500", 500, 50},
		{"just_below_1000", 999, 50},
		{"exactly_1000", 1000, 100},
		{"mid_tier", 2500, 100},
		{"just_below_5000", 4999, 100},
		{"exactly_5000", 5000, 250},
		{"just_below_10000", 9999, 250},
		{"exactly_10000", 10000, 500},
		{"high_price", 75000, 500},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.expected, BidIncrement(tc.price))
		})
	}
}

func TestNextMinimumBid(t *testing.T) {
	t.Parallel()

	l := &Lot{CurrentPrice: 1000}
	require.Equal(t, 1100.0, l.NextMinimumBid())

	l.CurrentPrice = 450
	require.Equal(t, 475.0, l.NextMinimumBid())
}

func TestLotActivateSeedsPrice(t *testing.T) {
	t.Parallel()

	now := time.Now().UTC()
	reserve := 1200.0
	l := &Lot{
		ID:            "lot1",
		StartingPrice: 1000,
		ReservePrice:  &reserve,
		CurrentPrice:  1000,
		Condition:     LotReadyForAuction,
	}

	require.NoError(t, l.Activate(1300, now))
	require.Equal(t, LotLiveAuction, l.Condition)
	require.True(t, l.IsActive)
	require.Equal(t, 1300.0, l.CurrentPrice)
	require.True(t, l.ReserveMet)
	require.Nil(t, l.LastBidAt)
}

func TestLotActivateSeedBelowStartingIsClamped(t *testing.T) {
	t.Parallel()

	l := &Lot{StartingPrice: 500, CurrentPrice: 500, Condition: LotReadyForAuction}
	require.NoError(t, l.Activate(100, time.Now()))
	require.Equal(t, 500.0, l.CurrentPrice)
}

func TestUpdateCurrentPriceMonotonic(t *testing.T) {
	t.Parallel()

	now := time.Now().UTC()
	l := &Lot{ID: "lot1", StartingPrice: 500, CurrentPrice: 500, Condition: LotLiveAuction, IsActive: true}

	require.NoError(t, l.UpdateCurrentPrice(550, now))
	require.Equal(t, 1, l.BidCount)
	require.NotNil(t, l.LastBidAt)

	err := l.UpdateCurrentPrice(540, now)
	require.ErrorIs(t, err, auctionerrors.ErrBidTooLow)
	require.Equal(t, 550.0, l.CurrentPrice)

	// equal amount is accepted, used when a proxy opens at the seeded price
	require.NoError(t, l.UpdateCurrentPrice(550, now))
	require.Equal(t, 2, l.BidCount)
}

func TestReserveMetIsSticky(t *testing.T) {
	t.Parallel()

	now := time.Now().UTC()
	reserve := 600.0
	l := &Lot{ID: "lot1", StartingPrice: 500, CurrentPrice: 500, ReservePrice: &reserve, Condition: LotLiveAuction, IsActive: true}

	require.False(t, l.ReserveMet)
	require.NoError(t, l.UpdateCurrentPrice(600, now))
	require.True(t, l.ReserveMet)

	// the flag never clears once set
	require.NoError(t, l.UpdateCurrentPrice(650, now))
	require.True(t, l.ReserveMet)
}

func TestIsTimeExpired(t *testing.T) {
	t.Parallel()

	start := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	l := &Lot{ID: "lot1", Condition: LotLiveAuction, IsActive: true, ActiveStartedAt: &start}

	require.False(t, l.IsTimeExpired(start.Add(89*time.Second), 90))
	require.True(t, l.IsTimeExpired(start.Add(90*time.Second), 90))

	// a bid resets the anchor
	bidAt := start.Add(60 * time.Second)
	l.LastBidAt = &bidAt
	require.False(t, l.IsTimeExpired(start.Add(100*time.Second), 90))
	require.True(t, l.IsTimeExpired(bidAt.Add(90*time.Second), 90))

	// inactive lots never expire
	l.IsActive = false
	require.False(t, l.IsTimeExpired(start.Add(time.Hour), 90))
}

func TestMarkWonComputesPremium(t *testing.T) {
	t.Parallel()

	now := time.Now().UTC()
	due := now.AddDate(0, 0, 7)
	l := &Lot{ID: "lot1", StartingPrice: 1000, CurrentPrice: 1200, Condition: LotLiveAuction, IsActive: true}

	require.NoError(t, l.MarkWon(1200, 0.10, true, due, now))
	require.Equal(t, LotAwaitingApproval, l.Condition)
	require.Equal(t, WinnerAwaitingSeller, l.WinnerStatus)
	require.Equal(t, 1200.0, *l.HammerPrice)
	require.Equal(t, 120.0, l.BuyersPremium)
	require.Equal(t, 1320.0, l.TotalPrice)
	require.False(t, l.IsActive)
}

func TestMarkWonPremiumRoundsToCents(t *testing.T) {
	t.Parallel()

	now := time.Now().UTC()
	l := &Lot{ID: "lot1", StartingPrice: 100, CurrentPrice: 333.33, Condition: LotLiveAuction, IsActive: true}

	require.NoError(t, l.MarkWon(333.33, 0.10, false, now, now))
	require.Equal(t, 33.33, l.BuyersPremium)
	require.Equal(t, 366.66, l.TotalPrice)
	// approval skipped when the seller's sign-off is not required
	require.Equal(t, LotSellerApproved, l.Condition)
	require.Equal(t, WinnerSellerApproved, l.WinnerStatus)
}

func TestMarkUnsold(t *testing.T) {
	t.Parallel()

	l := &Lot{ID: "lot1", Condition: LotLiveAuction, IsActive: true}
	require.NoError(t, l.MarkUnsold("reserve not met"))
	require.Equal(t, LotUnsold, l.Condition)
	require.Equal(t, WinnerUnsold, l.WinnerStatus)
	require.Equal(t, "reserve not met", l.UnsoldReason)
	require.False(t, l.IsActive)
}

func TestPaymentChainHappyPath(t *testing.T) {
	t.Parallel()

	now := time.Now().UTC()
	l := &Lot{ID: "lot1", StartingPrice: 1000, CurrentPrice: 1500, Condition: LotLiveAuction, IsActive: true}

	require.NoError(t, l.MarkWon(1500, 0.10, true, now, now))
	require.NoError(t, l.ApproveWinner())
	require.Equal(t, LotSellerApproved, l.Condition)
	require.NoError(t, l.MarkDepositPaid())
	require.Equal(t, LotAwaitingPayment, l.Condition)
	require.NoError(t, l.CompletePayment())
	require.Equal(t, LotReadyForPickup, l.Condition)
	require.NoError(t, l.CompleteSale())
	require.Equal(t, LotCompleted, l.Condition)
	require.Equal(t, WinnerCompleted, l.WinnerStatus)
	require.True(t, l.Closed())
}

func TestPaymentChainIllegalSkips(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		op   func(l *Lot) error
		from LotCondition
	}{
		{"deposit_before_approval", func(l *Lot) error { return l.MarkDepositPaid() }, LotAwaitingApproval},
		{"complete_payment_before_deposit", func(l *Lot) error { return l.CompletePayment() }, LotSellerApproved},
		{"complete_sale_before_payment", func(l *Lot) error { return l.CompleteSale() }, LotAwaitingPayment},
		{"approve_unsold", func(l *Lot) error { return l.ApproveWinner() }, LotUnsold},
		{"activate_sold", func(l *Lot) error { return l.Activate(100, time.Now()) }, LotSold},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			l := &Lot{ID: "lot1", StartingPrice: 100, Condition: tc.from}
			require.ErrorIs(t, tc.op(l), auctionerrors.ErrIllegalTransition)
		})
	}
}

func TestRejectWinnerFoldsToUnsold(t *testing.T) {
	t.Parallel()

	now := time.Now().UTC()
	l := &Lot{ID: "lot1", StartingPrice: 1000, CurrentPrice: 1500, Condition: LotLiveAuction, IsActive: true}

	require.NoError(t, l.MarkWon(1500, 0.10, true, now, now))
	require.NoError(t, l.RejectWinner())
	require.Equal(t, LotUnsold, l.Condition)
	require.Equal(t, WinnerSellerRejected, l.WinnerStatus)
}

func TestDeactivateReturnsLotToReady(t *testing.T) {
	t.Parallel()

	now := time.Now().UTC()
	l := &Lot{ID: "lot1", StartingPrice: 500, CurrentPrice: 500, Condition: LotReadyForAuction}
	require.NoError(t, l.Activate(500, now))
	require.NoError(t, l.Deactivate())
	require.Equal(t, LotReadyForAuction, l.Condition)
	require.False(t, l.IsActive)
	require.Nil(t, l.ActiveStartedAt)
}
