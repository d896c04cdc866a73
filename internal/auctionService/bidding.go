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

// BidKind selects the validation path for a new ledger entry.
type BidKind string

const (
	BidKindPreBid BidKind = "prebid"
	BidKindLive   BidKind = "live"
	BidKindProxy  BidKind = "proxy"
)

// PlaceBidInput carries one bid submission. Amount is the offered price for
// pre-bids and live bids; for proxy registrations it is the ceiling.
type PlaceBidInput struct {
	LotID        string
	BidderID     string
	Amount       float64
	Kind         BidKind
	ProxyCeiling float64
	ValidUntil   *time.Time
}

// PlaceBid validates and records one bid under the lot's lock. Live bids
// advance the price and reset the countdown; proxy registrations never move
// the price themselves but may trigger the resolver.
func (s *AuctionService) PlaceBid(ctx context.Context, in PlaceBidInput) (*model.Bid, error) {
	if in.LotID == "" || in.BidderID == "" {
		return nil, fmt.Errorf("service: place bid: %w: missing lot or bidder id", auctionerrors.ErrValidation)
	}
	if in.Kind == BidKindProxy && in.ProxyCeiling > 0 && in.Amount == 0 {
		in.Amount = in.ProxyCeiling
	}
	if in.Amount <= 0 {
		return nil, fmt.Errorf("service: place bid: %w: non-positive amount", auctionerrors.ErrInvalidBid)
	}

	if err := s.locks.acquire(in.LotID); err != nil {
		return nil, fmt.Errorf("service: place bid: %w", err)
	}
	defer s.locks.release(in.LotID)

	l, err := s.repo.GetLot(ctx, in.LotID)
	if err != nil {
		return nil, fmt.Errorf("service: place bid: %w", err)
	}
	a, err := s.repo.GetAuction(ctx, l.AuctionID)
	if err != nil {
		return nil, fmt.Errorf("service: place bid: %w", err)
	}
	bids, err := s.repo.GetBidsByLot(ctx, in.LotID)
	if err != nil {
		return nil, fmt.Errorf("service: place bid: %w", err)
	}
	now := s.clk.Now()

	b := &model.Bid{
		ID:             utils.GenerateID(),
		LotID:          in.LotID,
		BidderID:       in.BidderID,
		Amount:         in.Amount,
		Status:         model.BidPlaced,
		PlacedAt:       now,
		CreatedAt:      now,
		SequenceNumber: nextSequence(bids),
	}

	switch in.Kind {
	case BidKindPreBid:
		if err := s.validatePreBid(a, l, bids, in, now); err != nil {
			return nil, fmt.Errorf("service: place bid: %w", err)
		}
		b.IsPreBid = true
	case BidKindLive:
		if err := s.validateLiveBid(a, l, bids, in, now); err != nil {
			return nil, fmt.Errorf("service: place bid: %w", err)
		}
	case BidKindProxy:
		if err := s.validateProxy(l, bids, in, now); err != nil {
			return nil, fmt.Errorf("service: place bid: %w", err)
		}
		b.IsProxy = true
		b.ProxyCeiling = in.ProxyCeiling
		b.ValidUntil = in.ValidUntil
	default:
		return nil, fmt.Errorf("service: place bid: %w: unknown bid kind %q", auctionerrors.ErrValidation, in.Kind)
	}

	if err := s.repo.RecordBid(ctx, b); err != nil {
		return nil, fmt.Errorf("service: place bid: %w", err)
	}

	switch in.Kind {
	case BidKindPreBid:
		l.PreBidCount++
		if err := s.repo.SaveLot(ctx, l); err != nil {
			return nil, fmt.Errorf("service: place bid: %w", err)
		}
		s.publish(ctx, notify.Event{
			Type:      notify.EventBidAccepted,
			AuctionID: a.ID,
			LotID:     l.ID,
			BidID:     b.ID,
			BidderID:  b.BidderID,
			Amount:    b.Amount,
			Detail:    "pre_bid",
		})
	case BidKindLive:
		if err := l.UpdateCurrentPrice(b.Amount, now); err != nil {
			return nil, fmt.Errorf("service: place bid: %w", err)
		}
		if err := s.repo.SaveLot(ctx, l); err != nil {
			return nil, fmt.Errorf("service: place bid: %w", err)
		}
		s.publish(ctx, notify.Event{
			Type:      notify.EventBidAccepted,
			AuctionID: a.ID,
			LotID:     l.ID,
			BidID:     b.ID,
			BidderID:  b.BidderID,
			Amount:    b.Amount,
			IsHighest: true,
		})
		s.publish(ctx, notify.Event{Type: notify.EventTimerReset, AuctionID: a.ID, LotID: l.ID})
		if err := s.resolveProxiesLocked(ctx, a, l); err != nil {
			return nil, fmt.Errorf("service: place bid: %w", err)
		}
	case BidKindProxy:
		s.publish(ctx, notify.Event{
			Type:      notify.EventBidAccepted,
			AuctionID: a.ID,
			LotID:     l.ID,
			BidID:     b.ID,
			BidderID:  b.BidderID,
			Amount:    b.ProxyCeiling,
			Detail:    "proxy_registration",
		})
		if l.Condition == model.LotLiveAuction {
			if err := s.resolveProxiesLocked(ctx, a, l); err != nil {
				return nil, fmt.Errorf("service: place bid: %w", err)
			}
		}
	}
	return b, nil
}

// validatePreBid checks the collection window and the pre-bid floor. A new
// pre-bid must beat the standing high pre-bid.
func (s *AuctionService) validatePreBid(a *model.Auction, l *model.Lot, bids []*model.Bid, in PlaceBidInput, now time.Time) error {
	if l.Condition != model.LotPreAuction && l.Condition != model.LotReadyForAuction {
		return fmt.Errorf("%w: lot is %s", auctionerrors.ErrLotNotBiddable, l.Condition)
	}
	if a.PreBidStart == nil || a.PreBidEnd == nil {
		return fmt.Errorf("%w: pre-bid window not open", auctionerrors.ErrLotNotBiddable)
	}
	if now.Before(*a.PreBidStart) || !now.Before(*a.PreBidEnd) {
		return fmt.Errorf("%w: outside pre-bid window", auctionerrors.ErrLotNotBiddable)
	}
	floor := l.StartingPrice
	if l.MinimumPreBid > floor {
		floor = l.MinimumPreBid
	}
	if in.Amount < floor {
		return fmt.Errorf("%w: %.2f is below pre-bid floor %.2f", auctionerrors.ErrBidTooLow, in.Amount, floor)
	}
	if top := highestPreBid(bids); top != nil && in.Amount <= top.Amount {
		return fmt.Errorf("%w: %.2f does not beat standing pre-bid %.2f", auctionerrors.ErrBidTooLow, in.Amount, top.Amount)
	}
	return nil
}

// validateLiveBid checks the lot is on the block and the amount clears the
// ladder. The first live bid may match the seeded opening price exactly. A
// bidder holding a standing registration must cancel it before bidding
// manually, so one bidder never competes against their own proxy.
func (s *AuctionService) validateLiveBid(a *model.Auction, l *model.Lot, bids []*model.Bid, in PlaceBidInput, now time.Time) error {
	if a.Status != model.AuctionRunning {
		return fmt.Errorf("%w: auction is %s", auctionerrors.ErrLotNotBiddable, a.Status)
	}
	if l.Condition != model.LotLiveAuction || !l.IsActive {
		return fmt.Errorf("%w: lot is %s", auctionerrors.ErrLotNotBiddable, l.Condition)
	}
	for _, b := range bids {
		if b.BidderID == in.BidderID && b.IsActiveProxy(now) {
			return fmt.Errorf("%w: cancel the standing proxy before bidding manually", auctionerrors.ErrProxyConflict)
		}
	}
	required := l.NextMinimumBid()
	if l.BidCount == 0 {
		required = l.CurrentPrice
	}
	if in.Amount < required {
		return fmt.Errorf("%w: %.2f is below required %.2f", auctionerrors.ErrBidTooLow, in.Amount, required)
	}
	return nil
}

// validateProxy rejects a second standing registration from the same bidder
// and ceilings the ladder can never reach.
func (s *AuctionService) validateProxy(l *model.Lot, bids []*model.Bid, in PlaceBidInput, now time.Time) error {
	if l.Closed() {
		return fmt.Errorf("%w", auctionerrors.ErrLotClosed)
	}
	if in.ProxyCeiling <= 0 {
		return fmt.Errorf("%w: non-positive proxy ceiling", auctionerrors.ErrInvalidBid)
	}
	if in.ProxyCeiling < l.CurrentPrice {
		return fmt.Errorf("%w: ceiling %.2f is below current price %.2f", auctionerrors.ErrBidTooLow, in.ProxyCeiling, l.CurrentPrice)
	}
	if in.ValidUntil != nil && !in.ValidUntil.After(now) {
		return fmt.Errorf("%w: proxy already expired", auctionerrors.ErrInvalidBid)
	}
	for _, b := range bids {
		if b.BidderID == in.BidderID && b.IsActiveProxy(now) {
			return fmt.Errorf("%w: bidder %s already holds a registration", auctionerrors.ErrProxyConflict, in.BidderID)
		}
	}
	return nil
}

// RetractBid terminates the bidder's own still-placed bid. The lot's price is
// never rolled back.
func (s *AuctionService) RetractBid(ctx context.Context, bidID, bidderID string) (*model.Bid, error) {
	b, err := s.repo.GetBid(ctx, bidID)
	if err != nil {
		return nil, fmt.Errorf("service: retract bid: %w", err)
	}
	if b.BidderID != bidderID {
		return nil, fmt.Errorf("service: retract bid: %w", auctionerrors.ErrNotOwner)
	}
	if err := s.locks.acquire(b.LotID); err != nil {
		return nil, fmt.Errorf("service: retract bid: %w", err)
	}
	defer s.locks.release(b.LotID)

	l, err := s.repo.GetLot(ctx, b.LotID)
	if err != nil {
		return nil, fmt.Errorf("service: retract bid: %w", err)
	}
	if l.Closed() {
		return nil, fmt.Errorf("service: retract bid: %w", auctionerrors.ErrLotClosed)
	}
	if err := b.Retract(); err != nil {
		return nil, fmt.Errorf("service: retract bid: %w", err)
	}
	if err := s.repo.SaveBid(ctx, b); err != nil {
		return nil, fmt.Errorf("service: retract bid: %w", err)
	}
	return b, nil
}

// InvalidateBid is the operator-side termination of a still-placed bid.
func (s *AuctionService) InvalidateBid(ctx context.Context, bidID string) (*model.Bid, error) {
	b, err := s.repo.GetBid(ctx, bidID)
	if err != nil {
		return nil, fmt.Errorf("service: invalidate bid: %w", err)
	}
	if err := s.locks.acquire(b.LotID); err != nil {
		return nil, fmt.Errorf("service: invalidate bid: %w", err)
	}
	defer s.locks.release(b.LotID)

	l, err := s.repo.GetLot(ctx, b.LotID)
	if err != nil {
		return nil, fmt.Errorf("service: invalidate bid: %w", err)
	}
	if l.Closed() {
		return nil, fmt.Errorf("service: invalidate bid: %w", auctionerrors.ErrLotClosed)
	}
	if err := b.Invalidate(); err != nil {
		return nil, fmt.Errorf("service: invalidate bid: %w", err)
	}
	if err := s.repo.SaveBid(ctx, b); err != nil {
		return nil, fmt.Errorf("service: invalidate bid: %w", err)
	}
	return b, nil
}

// CancelProxy retracts the bidder's standing registration. Auto-bids it
// already produced stand.
func (s *AuctionService) CancelProxy(ctx context.Context, bidID, bidderID string) (*model.Bid, error) {
	b, err := s.repo.GetBid(ctx, bidID)
	if err != nil {
		return nil, fmt.Errorf("service: cancel proxy: %w", err)
	}
	if !b.IsProxy || b.IsAutoBid {
		return nil, fmt.Errorf("service: cancel proxy: %w: bid %s is not a registration", auctionerrors.ErrInvalidBid, bidID)
	}
	return s.RetractBid(ctx, bidID, bidderID)
}

// UpdateBidAmount raises a pre-bid or a proxy ceiling in place. Live bids are
// immutable ledger entries; a live raise is a new bid.
func (s *AuctionService) UpdateBidAmount(ctx context.Context, bidID, bidderID string, amount float64) (*model.Bid, error) {
	b, err := s.repo.GetBid(ctx, bidID)
	if err != nil {
		return nil, fmt.Errorf("service: update bid: %w", err)
	}
	if b.BidderID != bidderID {
		return nil, fmt.Errorf("service: update bid: %w", auctionerrors.ErrNotOwner)
	}
	if !b.IsPreBid && !(b.IsProxy && !b.IsAutoBid) {
		return nil, fmt.Errorf("service: update bid: %w: live bids are immutable", auctionerrors.ErrInvalidBid)
	}
	if amount < b.Amount {
		return nil, fmt.Errorf("service: update bid: %w: amount can only be raised", auctionerrors.ErrInvalidBid)
	}

	if err := s.locks.acquire(b.LotID); err != nil {
		return nil, fmt.Errorf("service: update bid: %w", err)
	}
	defer s.locks.release(b.LotID)

	l, err := s.repo.GetLot(ctx, b.LotID)
	if err != nil {
		return nil, fmt.Errorf("service: update bid: %w", err)
	}
	if l.Closed() {
		return nil, fmt.Errorf("service: update bid: %w", auctionerrors.ErrLotClosed)
	}

	// a raise passes the same gates as a fresh bid of its kind
	now := s.clk.Now()
	switch {
	case b.IsPreBid:
		a, err := s.repo.GetAuction(ctx, l.AuctionID)
		if err != nil {
			return nil, fmt.Errorf("service: update bid: %w", err)
		}
		bids, err := s.repo.GetBidsByLot(ctx, b.LotID)
		if err != nil {
			return nil, fmt.Errorf("service: update bid: %w", err)
		}
		raise := PlaceBidInput{LotID: b.LotID, BidderID: bidderID, Amount: amount, Kind: BidKindPreBid}
		if err := s.validatePreBid(a, l, bids, raise, now); err != nil {
			return nil, fmt.Errorf("service: update bid: %w", err)
		}
	case b.IsProxy:
		if amount < l.CurrentPrice {
			return nil, fmt.Errorf("service: update bid: %w: ceiling %.2f is below current price %.2f", auctionerrors.ErrBidTooLow, amount, l.CurrentPrice)
		}
		if b.ValidUntil != nil && !b.ValidUntil.After(now) {
			return nil, fmt.Errorf("service: update bid: %w: proxy already expired", auctionerrors.ErrInvalidBid)
		}
	}

	if err := b.UpdateAmount(amount); err != nil {
		return nil, fmt.Errorf("service: update bid: %w", err)
	}
	if err := s.repo.SaveBid(ctx, b); err != nil {
		return nil, fmt.Errorf("service: update bid: %w", err)
	}

	if b.IsProxy && l.Condition == model.LotLiveAuction {
		a, err := s.repo.GetAuction(ctx, l.AuctionID)
		if err != nil {
			return nil, fmt.Errorf("service: update bid: %w", err)
		}
		if err := s.resolveProxiesLocked(ctx, a, l); err != nil {
			return nil, fmt.Errorf("service: update bid: %w", err)
		}
	}
	return b, nil
}

// GetBidsForLot returns the full ledger for one lot.
func (s *AuctionService) GetBidsForLot(ctx context.Context, lotID string) ([]*model.Bid, error) {
	bids, err := s.repo.GetBidsByLot(ctx, lotID)
	if err != nil {
		return nil, fmt.Errorf("service: get bids: %w", err)
	}
	return bids, nil
}

// GetHighestBid returns the standing high bid for one lot.
func (s *AuctionService) GetHighestBid(ctx context.Context, lotID string) (*model.Bid, error) {
	bids, err := s.repo.GetBidsByLot(ctx, lotID)
	if err != nil {
		return nil, fmt.Errorf("service: get highest bid: %w", err)
	}
	best := highestStandingBid(bids)
	if best == nil {
		return nil, fmt.Errorf("service: get highest bid: %w", auctionerrors.ErrBidNotFound)
	}
	return best, nil
}

// GetWinnerByLot returns the winner record for a closed lot.
func (s *AuctionService) GetWinnerByLot(ctx context.Context, lotID string) (*model.Winner, error) {
	w, err := s.repo.GetWinnerByLot(ctx, lotID)
	if err != nil {
		return nil, fmt.Errorf("service: get winner: %w", err)
	}
	return w, nil
}
