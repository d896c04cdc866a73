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

// highestPreBid returns the strongest valid pre-bid in the ledger, or nil.
// Ties break by earlier placement, then by bid id for full determinism.
func highestPreBid(bids []*model.Bid) *model.Bid {
	var best *model.Bid
	for _, b := range bids {
		if b.Status != model.BidPlaced || !b.IsPreBid {
			continue
		}
		if beats(b, best) {
			best = b
		}
	}
	return best
}

// highestStandingBid returns the strongest price-setting bid, or nil.
func highestStandingBid(bids []*model.Bid) *model.Bid {
	var best *model.Bid
	for _, b := range bids {
		if !b.SetsPrice() {
			continue
		}
		if beats(b, best) {
			best = b
		}
	}
	return best
}

func beats(b, best *model.Bid) bool {
	if best == nil {
		return true
	}
	if b.Amount != best.Amount {
		return b.Amount > best.Amount
	}
	if !b.PlacedAt.Equal(best.PlacedAt) {
		return b.PlacedAt.Before(best.PlacedAt)
	}
	return b.ID < best.ID
}

// nextSequence returns the next per-lot ledger sequence number. Every entry
// gets one, registrations and auto-bids included.
func nextSequence(bids []*model.Bid) int {
	max := 0
	for _, b := range bids {
		if b.SequenceNumber > max {
			max = b.SequenceNumber
		}
	}
	return max + 1
}

// activeProxies returns the standing, unexpired proxy registrations.
func activeProxies(bids []*model.Bid, now time.Time) []*model.Bid {
	var out []*model.Bid
	for _, b := range bids {
		if b.IsActiveProxy(now) {
			out = append(out, b)
		}
	}
	return out
}

// closeLot settles one lot under its lock: the highest standing bid wins if
// the reserve is met, otherwise the lot passes unsold. Pre-bids seed the
// opening price but cannot win on their own. With onlyIfExpired the
// countdown is re-evaluated once the lock is held and the close is skipped
// when a late bid re-anchored the timer; the returned bool reports whether
// the lot actually closed.
func (s *AuctionService) closeLot(ctx context.Context, a *model.Auction, lotID string, onlyIfExpired bool) (bool, error) {
	if err := s.locks.acquire(lotID); err != nil {
		return false, err
	}
	defer s.locks.release(lotID)

	l, err := s.repo.GetLot(ctx, lotID)
	if err != nil {
		return false, err
	}
	if l.Condition != model.LotLiveAuction {
		return false, fmt.Errorf("lot %s: %w: close from %s", l.ID, auctionerrors.ErrIllegalTransition, l.Condition)
	}

	now := s.clk.Now()
	if onlyIfExpired && !l.IsTimeExpired(now, a.CountdownSeconds) {
		return false, nil
	}

	bids, err := s.repo.GetBidsByLot(ctx, lotID)
	if err != nil {
		return false, err
	}
	best := highestStandingBid(bids)

	switch {
	case best == nil:
		if err := l.MarkUnsold("no bids"); err != nil {
			return false, err
		}
	case l.ReservePrice != nil && !l.ReserveMet:
		if err := l.MarkUnsold("reserve not met"); err != nil {
			return false, err
		}
	default:
		dueAt := now.AddDate(0, 0, s.cfg.PaymentDueDays)
		if err := l.MarkWon(best.Amount, s.cfg.BuyersPremiumRate, s.cfg.RequireSellerApproval, dueAt, now); err != nil {
			return false, err
		}
	}
	if err := s.repo.SaveLot(ctx, l); err != nil {
		return false, err
	}

	if l.Condition != model.LotUnsold {
		w := &model.Winner{
			ID:            utils.GenerateID(),
			LotID:         l.ID,
			BidderID:      best.BidderID,
			WinningBidID:  best.ID,
			Amount:        best.Amount,
			PaymentStatus: model.PaymentPending,
			AssignedAt:    now,
			PaymentDueAt:  *l.PaymentDueAt,
			CreatedAt:     now,
		}
		if err := s.repo.CreateWinner(ctx, w); err != nil {
			return false, err
		}
		s.publish(ctx, notify.Event{
			Type:      notify.EventWinnerAssigned,
			AuctionID: a.ID,
			LotID:     l.ID,
			WinnerID:  w.ID,
			BidderID:  w.BidderID,
			BidID:     w.WinningBidID,
			Amount:    w.Amount,
		})
	}
	s.publish(ctx, notify.Event{
		Type:      notify.EventLotClosed,
		AuctionID: a.ID,
		LotID:     l.ID,
		Amount:    l.CurrentPrice,
		Detail:    string(l.Condition),
	})
	return true, nil
}
