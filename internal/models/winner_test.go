package models

import (
	"testing"
	"time"

	"car-auction/internal/auctionerrors"

	"github.com/stretchr/testify/require"
)

func newPendingWinner() *Winner {
	return &Winner{
		ID:            "w1",
		LotID:         "lot1",
		BidderID:      "bidder1",
		Amount:        1200,
		PaymentStatus: PaymentPending,
		PaymentDueAt:  time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
	}
}

func TestMarkPaidAccumulates(t *testing.T) {
	t.Parallel()

	w := newPendingWinner()

	require.NoError(t, w.MarkPaid(500))
	require.Equal(t, PaymentPartiallyPaid, w.PaymentStatus)
	require.Equal(t, 700.0, w.Outstanding())

	require.NoError(t, w.MarkPaid(700))
	require.Equal(t, PaymentPaid, w.PaymentStatus)
	require.Equal(t, 0.0, w.Outstanding())

	// no further payments once settled
	require.ErrorIs(t, w.MarkPaid(1), auctionerrors.ErrIllegalTransition)
}

// Installments summing exactly to the amount due must settle the winner,
// cent amounts included.
func TestMarkPaidCentExactness(t *testing.T) {
	t.Parallel()

	w := newPendingWinner()
	w.Amount = 0.30

	require.NoError(t, w.MarkPaid(0.10))
	require.Equal(t, PaymentPartiallyPaid, w.PaymentStatus)
	require.Equal(t, 0.20, w.Outstanding())

	require.NoError(t, w.MarkPaid(0.20))
	require.Equal(t, PaymentPaid, w.PaymentStatus)
	require.Equal(t, 0.0, w.Outstanding())
}

func TestMarkPaidRejectsOverpayment(t *testing.T) {
	t.Parallel()

	w := newPendingWinner()
	require.NoError(t, w.MarkPaid(1000))

	err := w.MarkPaid(300)
	require.ErrorIs(t, err, auctionerrors.ErrPaymentExceeds)
	require.Equal(t, 1000.0, w.PaidAmount)
	require.Equal(t, PaymentPartiallyPaid, w.PaymentStatus)
}

func TestMarkPaidValidation(t *testing.T) {
	t.Parallel()

	w := newPendingWinner()
	require.ErrorIs(t, w.MarkPaid(0), auctionerrors.ErrValidation)
	require.ErrorIs(t, w.MarkPaid(-50), auctionerrors.ErrValidation)
}

func TestCancelRulesWinner(t *testing.T) {
	t.Parallel()

	w := newPendingWinner()
	require.NoError(t, w.Cancel())
	require.Equal(t, PaymentCancelled, w.PaymentStatus)
	require.ErrorIs(t, w.Cancel(), auctionerrors.ErrIllegalTransition)

	paid := newPendingWinner()
	require.NoError(t, paid.MarkPaid(1200))
	require.ErrorIs(t, paid.Cancel(), auctionerrors.ErrIllegalTransition)
}

func TestMarkFailed(t *testing.T) {
	t.Parallel()

	w := newPendingWinner()
	require.NoError(t, w.MarkPaid(100))
	require.NoError(t, w.MarkFailed())
	require.Equal(t, PaymentFailed, w.PaymentStatus)

	paid := newPendingWinner()
	require.NoError(t, paid.MarkPaid(1200))
	require.ErrorIs(t, paid.MarkFailed(), auctionerrors.ErrIllegalTransition)
}

func TestConfirmOnce(t *testing.T) {
	t.Parallel()

	w := newPendingWinner()
	now := time.Now().UTC()
	require.NoError(t, w.Confirm(now))
	require.Equal(t, now, *w.ConfirmedAt)
	require.ErrorIs(t, w.Confirm(now.Add(time.Hour)), auctionerrors.ErrIllegalTransition)
}

func TestExtendDueDate(t *testing.T) {
	t.Parallel()

	w := newPendingWinner()
	later := w.PaymentDueAt.AddDate(0, 0, 3)
	require.NoError(t, w.ExtendDueDate(later))
	require.Equal(t, later, w.PaymentDueAt)

	require.ErrorIs(t, w.ExtendDueDate(later.AddDate(0, 0, -1)), auctionerrors.ErrValidation)

	cancelled := newPendingWinner()
	require.NoError(t, cancelled.Cancel())
	require.ErrorIs(t, cancelled.ExtendDueDate(later), auctionerrors.ErrIllegalTransition)
}

func TestRecordReminder(t *testing.T) {
	t.Parallel()

	w := newPendingWinner()
	now := time.Now().UTC()
	w.RecordReminder(now)
	w.RecordReminder(now.Add(24 * time.Hour))
	require.Equal(t, 2, w.ReminderCount)
	require.Equal(t, now.Add(24*time.Hour), *w.LastReminderAt)
}
