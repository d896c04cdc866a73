package auction

import (
	"context"
	"fmt"
	"time"

	"car-auction/internal/auctionerrors"
	model "car-auction/internal/models"
	"car-auction/internal/notify"
	"car-auction/utils"
)

// RecordPayment applies one payment toward a winner's obligation.
func (s *AuctionService) RecordPayment(ctx context.Context, winnerID string, amount float64) (*model.Winner, error) {
	w, err := s.repo.GetWinner(ctx, winnerID)
	if err != nil {
		return nil, fmt.Errorf("service: record payment: %w", err)
	}
	if err := w.MarkPaid(amount); err != nil {
		return nil, fmt.Errorf("service: record payment: %w", err)
	}
	if err := s.repo.SaveWinner(ctx, w); err != nil {
		return nil, fmt.Errorf("service: record payment: %w", err)
	}
	s.publish(ctx, notify.Event{
		Type:     notify.EventPaymentRecorded,
		LotID:    w.LotID,
		WinnerID: w.ID,
		BidderID: w.BidderID,
		Amount:   amount,
		Detail:   string(w.PaymentStatus),
	})
	return w, nil
}

// ApproveWinner is the seller's sign-off on a sale awaiting approval.
func (s *AuctionService) ApproveWinner(ctx context.Context, lotID string) (*model.Lot, error) {
	l, err := s.repo.GetLot(ctx, lotID)
	if err != nil {
		return nil, fmt.Errorf("service: approve winner: %w", err)
	}
	if err := l.ApproveWinner(); err != nil {
		return nil, fmt.Errorf("service: approve winner: %w", err)
	}
	if err := s.repo.SaveLot(ctx, l); err != nil {
		return nil, fmt.Errorf("service: approve winner: %w", err)
	}
	w, err := s.repo.GetWinnerByLot(ctx, lotID)
	if err != nil {
		return nil, fmt.Errorf("service: approve winner: %w", err)
	}
	if err := w.Confirm(s.clk.Now()); err != nil {
		return nil, fmt.Errorf("service: approve winner: %w", err)
	}
	if err := s.repo.SaveWinner(ctx, w); err != nil {
		return nil, fmt.Errorf("service: approve winner: %w", err)
	}
	return l, nil
}

// RejectWinner folds an approval-pending sale back into Unsold and cancels
// the winner's obligation.
func (s *AuctionService) RejectWinner(ctx context.Context, lotID string) (*model.Lot, error) {
	l, err := s.repo.GetLot(ctx, lotID)
	if err != nil {
		return nil, fmt.Errorf("service: reject winner: %w", err)
	}
	if err := l.RejectWinner(); err != nil {
		return nil, fmt.Errorf("service: reject winner: %w", err)
	}
	if err := s.repo.SaveLot(ctx, l); err != nil {
		return nil, fmt.Errorf("service: reject winner: %w", err)
	}
	w, err := s.repo.GetWinnerByLot(ctx, lotID)
	if err != nil {
		return nil, fmt.Errorf("service: reject winner: %w", err)
	}
	if err := w.Cancel(); err != nil {
		return nil, fmt.Errorf("service: reject winner: %w", err)
	}
	if err := s.repo.SaveWinner(ctx, w); err != nil {
		return nil, fmt.Errorf("service: reject winner: %w", err)
	}
	return l, nil
}

// MarkDepositPaid advances an approved lot into the full-payment stage.
func (s *AuctionService) MarkDepositPaid(ctx context.Context, lotID string) (*model.Lot, error) {
	l, err := s.repo.GetLot(ctx, lotID)
	if err != nil {
		return nil, fmt.Errorf("service: mark deposit paid: %w", err)
	}
	if err := l.MarkDepositPaid(); err != nil {
		return nil, fmt.Errorf("service: mark deposit paid: %w", err)
	}
	if err := s.repo.SaveLot(ctx, l); err != nil {
		return nil, fmt.Errorf("service: mark deposit paid: %w", err)
	}
	return l, nil
}

// CompletePayment closes out the payment stage. The winner's obligation must
// be fully settled first.
func (s *AuctionService) CompletePayment(ctx context.Context, lotID string) (*model.Lot, error) {
	l, err := s.repo.GetLot(ctx, lotID)
	if err != nil {
		return nil, fmt.Errorf("service: complete payment: %w", err)
	}
	w, err := s.repo.GetWinnerByLot(ctx, lotID)
	if err != nil {
		return nil, fmt.Errorf("service: complete payment: %w", err)
	}
	if w.PaymentStatus != model.PaymentPaid {
		return nil, fmt.Errorf("service: complete payment: %w: winner payment is %s with %.2f outstanding",
			auctionerrors.ErrInvariant, w.PaymentStatus, w.Outstanding())
	}
	if err := l.CompletePayment(); err != nil {
		return nil, fmt.Errorf("service: complete payment: %w", err)
	}
	if err := s.repo.SaveLot(ctx, l); err != nil {
		return nil, fmt.Errorf("service: complete payment: %w", err)
	}
	return l, nil
}

// CompleteSale is the final hand-over step.
func (s *AuctionService) CompleteSale(ctx context.Context, lotID string) (*model.Lot, error) {
	l, err := s.repo.GetLot(ctx, lotID)
	if err != nil {
		return nil, fmt.Errorf("service: complete sale: %w", err)
	}
	if err := l.CompleteSale(); err != nil {
		return nil, fmt.Errorf("service: complete sale: %w", err)
	}
	if err := s.repo.SaveLot(ctx, l); err != nil {
		return nil, fmt.Errorf("service: complete sale: %w", err)
	}
	return l, nil
}

// CancelWinner voids a winner's obligation, keeping the record for audit.
func (s *AuctionService) CancelWinner(ctx context.Context, winnerID string) (*model.Winner, error) {
	w, err := s.repo.GetWinner(ctx, winnerID)
	if err != nil {
		return nil, fmt.Errorf("service: cancel winner: %w", err)
	}
	if err := w.Cancel(); err != nil {
		return nil, fmt.Errorf("service: cancel winner: %w", err)
	}
	if err := s.repo.SaveWinner(ctx, w); err != nil {
		return nil, fmt.Errorf("service: cancel winner: %w", err)
	}
	return w, nil
}

// MarkWinnerFailed records a defaulted obligation, typically after the due
// date passes unpaid.
func (s *AuctionService) MarkWinnerFailed(ctx context.Context, winnerID string) (*model.Winner, error) {
	w, err := s.repo.GetWinner(ctx, winnerID)
	if err != nil {
		return nil, fmt.Errorf("service: mark winner failed: %w", err)
	}
	if err := w.MarkFailed(); err != nil {
		return nil, fmt.Errorf("service: mark winner failed: %w", err)
	}
	if err := s.repo.SaveWinner(ctx, w); err != nil {
		return nil, fmt.Errorf("service: mark winner failed: %w", err)
	}
	return w, nil
}

// ExtendPaymentDueDate pushes a winner's due date out.
func (s *AuctionService) ExtendPaymentDueDate(ctx context.Context, winnerID string, until time.Time) (*model.Winner, error) {
	w, err := s.repo.GetWinner(ctx, winnerID)
	if err != nil {
		return nil, fmt.Errorf("service: extend due date: %w", err)
	}
	if err := w.ExtendDueDate(until); err != nil {
		return nil, fmt.Errorf("service: extend due date: %w", err)
	}
	if err := s.repo.SaveWinner(ctx, w); err != nil {
		return nil, fmt.Errorf("service: extend due date: %w", err)
	}
	return w, nil
}

// SendPaymentReminder records a reminder and emits the notification. Fully
// paid or cancelled winners are never reminded.
func (s *AuctionService) SendPaymentReminder(ctx context.Context, winnerID string) (*model.Winner, error) {
	w, err := s.repo.GetWinner(ctx, winnerID)
	if err != nil {
		return nil, fmt.Errorf("service: send reminder: %w", err)
	}
	if w.PaymentStatus != model.PaymentPending && w.PaymentStatus != model.PaymentPartiallyPaid {
		return nil, fmt.Errorf("service: send reminder: %w: winner payment is %s", auctionerrors.ErrIllegalTransition, w.PaymentStatus)
	}
	w.RecordReminder(s.clk.Now())
	if err := s.repo.SaveWinner(ctx, w); err != nil {
		return nil, fmt.Errorf("service: send reminder: %w", err)
	}
	s.publish(ctx, notify.Event{
		Type:     notify.EventPaymentReminder,
		LotID:    w.LotID,
		WinnerID: w.ID,
		BidderID: w.BidderID,
		Amount:   w.Outstanding(),
		Detail:   fmt.Sprintf("reminder %d", w.ReminderCount),
	})
	return w, nil
}

// CreateSecondChanceWinner offers the lot to the next-highest distinct
// bidder after the original winner cancelled or defaulted.
func (s *AuctionService) CreateSecondChanceWinner(ctx context.Context, lotID string) (*model.Winner, error) {
	orig, err := s.repo.GetWinnerByLot(ctx, lotID)
	if err != nil {
		return nil, fmt.Errorf("service: second chance: %w", err)
	}
	if orig.PaymentStatus != model.PaymentCancelled && orig.PaymentStatus != model.PaymentFailed {
		return nil, fmt.Errorf("service: second chance: %w: original winner is %s", auctionerrors.ErrIllegalTransition, orig.PaymentStatus)
	}

	bids, err := s.repo.GetBidsByLot(ctx, lotID)
	if err != nil {
		return nil, fmt.Errorf("service: second chance: %w", err)
	}
	var runnerUp *model.Bid
	for _, b := range bids {
		if !b.SetsPrice() || b.BidderID == orig.BidderID {
			continue
		}
		if beats(b, runnerUp) {
			runnerUp = b
		}
	}
	if runnerUp == nil {
		return nil, fmt.Errorf("service: second chance: %w: no runner-up bid", auctionerrors.ErrBidNotFound)
	}

	now := s.clk.Now()
	w := &model.Winner{
		ID:               utils.GenerateID(),
		LotID:            lotID,
		BidderID:         runnerUp.BidderID,
		WinningBidID:     runnerUp.ID,
		Amount:           runnerUp.Amount,
		PaymentStatus:    model.PaymentPending,
		AssignedAt:       now,
		PaymentDueAt:     now.AddDate(0, 0, s.cfg.PaymentDueDays),
		IsSecondChance:   true,
		OriginalWinnerID: orig.ID,
		CreatedAt:        now,
	}
	if err := s.repo.CreateWinner(ctx, w); err != nil {
		return nil, fmt.Errorf("service: second chance: %w", err)
	}
	s.publish(ctx, notify.Event{
		Type:     notify.EventWinnerAssigned,
		LotID:    lotID,
		WinnerID: w.ID,
		BidderID: w.BidderID,
		BidID:    w.WinningBidID,
		Amount:   w.Amount,
		Detail:   "second_chance",
	})
	return w, nil
}
