package models

import (
	"fmt"
	"time"

	"car-auction/internal/auctionerrors"

	"github.com/shopspring/decimal"
)

// PaymentStatus is the payment sub-machine attached to a winner record.
type PaymentStatus string

const (
	PaymentPending       PaymentStatus = "Pending"
	PaymentPartiallyPaid PaymentStatus = "PartiallyPaid"
	PaymentPaid          PaymentStatus = "Paid"
	PaymentFailed        PaymentStatus = "Failed"
	PaymentCancelled     PaymentStatus = "Cancelled"
)

// Winner is the outcome of a closed lot. Winners are never physically
// deleted; cancellation keeps the record for the financial audit trail.
type Winner struct {
	ID           string    `gorm:"primaryKey;size:64" json:"id"`
	LotID        string    `gorm:"size:64;uniqueIndex:idx_winners_lot_active,where:is_second_chance = 0" json:"lot_id"`
	BidderID     string    `gorm:"size:64;index;not null" json:"bidder_id"`
	WinningBidID string    `gorm:"size:64;not null" json:"winning_bid_id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	Amount        float64       `gorm:"not null" json:"amount"`
	PaidAmount    float64       `json:"paid_amount"`
	PaymentStatus PaymentStatus `gorm:"size:16;index;not null" json:"payment_status"`

	AssignedAt   time.Time  `json:"assigned_at"`
	ConfirmedAt  *time.Time `json:"confirmed_at,omitempty"`
	PaymentDueAt time.Time  `json:"payment_due_at"`

	ReminderCount  int        `json:"reminder_count"`
	LastReminderAt *time.Time `json:"last_reminder_at,omitempty"`

	IsSecondChance   bool   `json:"is_second_chance"`
	OriginalWinnerID string `gorm:"size:64" json:"original_winner_id,omitempty"`

	Version int `gorm:"not null;default:0" json:"-"`
}

func (Winner) TableName() string { return "winners" }

// MarkPaid accumulates a payment. Rejects anything that would push
// paidAmount past amount; the status lands on PartiallyPaid or Paid.
func (w *Winner) MarkPaid(amount float64) error {
	if amount <= 0 {
		return fmt.Errorf("winner %s: %w: non-positive payment", w.ID, auctionerrors.ErrValidation)
	}
	if w.PaymentStatus != PaymentPending && w.PaymentStatus != PaymentPartiallyPaid {
		return fmt.Errorf("winner %s: %w: payment while %s", w.ID, auctionerrors.ErrIllegalTransition, w.PaymentStatus)
	}
	// money arithmetic in cents, never raw float addition
	paid := decimal.NewFromFloat(w.PaidAmount).Add(decimal.NewFromFloat(amount)).Round(2)
	due := decimal.NewFromFloat(w.Amount).Round(2)
	if paid.GreaterThan(due) {
		return fmt.Errorf("winner %s: %w: %.2f paid + %.2f > %.2f due", w.ID, auctionerrors.ErrPaymentExceeds, w.PaidAmount, amount, w.Amount)
	}
	w.PaidAmount, _ = paid.Float64()
	if paid.Equal(due) {
		w.PaymentStatus = PaymentPaid
	} else {
		w.PaymentStatus = PaymentPartiallyPaid
	}
	return nil
}

// Cancel is illegal once Paid.
func (w *Winner) Cancel() error {
	if w.PaymentStatus == PaymentPaid {
		return fmt.Errorf("winner %s: %w: cancel after full payment", w.ID, auctionerrors.ErrIllegalTransition)
	}
	if w.PaymentStatus == PaymentCancelled {
		return fmt.Errorf("winner %s: %w: already cancelled", w.ID, auctionerrors.ErrIllegalTransition)
	}
	w.PaymentStatus = PaymentCancelled
	return nil
}

// MarkFailed records a defaulted payment obligation.
func (w *Winner) MarkFailed() error {
	if w.PaymentStatus == PaymentPaid || w.PaymentStatus == PaymentCancelled {
		return fmt.Errorf("winner %s: %w: fail from %s", w.ID, auctionerrors.ErrIllegalTransition, w.PaymentStatus)
	}
	w.PaymentStatus = PaymentFailed
	return nil
}

// Confirm stamps the confirmation time, once.
func (w *Winner) Confirm(now time.Time) error {
	if w.ConfirmedAt != nil {
		return fmt.Errorf("winner %s: %w: already confirmed", w.ID, auctionerrors.ErrIllegalTransition)
	}
	w.ConfirmedAt = &now
	return nil
}

// ExtendDueDate pushes the payment due date out. The new date must be later
// than the current one.
func (w *Winner) ExtendDueDate(until time.Time) error {
	if w.PaymentStatus == PaymentPaid || w.PaymentStatus == PaymentCancelled {
		return fmt.Errorf("winner %s: %w: extend due date while %s", w.ID, auctionerrors.ErrIllegalTransition, w.PaymentStatus)
	}
	if !until.After(w.PaymentDueAt) {
		return fmt.Errorf("winner %s: %w: new due date must be later than current", w.ID, auctionerrors.ErrValidation)
	}
	w.PaymentDueAt = until
	return nil
}

// RecordReminder bumps the reminder bookkeeping.
func (w *Winner) RecordReminder(now time.Time) {
	w.ReminderCount++
	w.LastReminderAt = &now
}

// Outstanding is the unpaid balance, rounded to cents.
func (w *Winner) Outstanding() float64 {
	out, _ := decimal.NewFromFloat(w.Amount).
		Sub(decimal.NewFromFloat(w.PaidAmount)).
		Round(2).Float64()
	return out
}
