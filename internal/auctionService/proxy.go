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

// maxResolverRounds bounds the counter-bidding loop. A legitimate war ends
// long before this; hitting the cap means the ladder stopped climbing.
const maxResolverRounds = 10000

// ProxyStrategy is an informational read on a registration's posture
// relative to the strongest competing ceiling.
type ProxyStrategy string

const (
	StrategyNone         ProxyStrategy = "None"
	StrategyDefensive    ProxyStrategy = "Defensive"
	StrategyConservative ProxyStrategy = "Conservative"
	StrategyCompetitive  ProxyStrategy = "Competitive"
	StrategyAggressive   ProxyStrategy = "Aggressive"
)

// ResolveProxies re-runs the resolver for one lot, e.g. after a registration
// expires. Bids placed through PlaceBid trigger resolution automatically.
func (s *AuctionService) ResolveProxies(ctx context.Context, lotID string) error {
	if err := s.locks.acquire(lotID); err != nil {
		return fmt.Errorf("service: resolve proxies: %w", err)
	}
	defer s.locks.release(lotID)

	l, err := s.repo.GetLot(ctx, lotID)
	if err != nil {
		return fmt.Errorf("service: resolve proxies: %w", err)
	}
	if l.Condition != model.LotLiveAuction {
		return fmt.Errorf("service: resolve proxies: %w: lot is %s", auctionerrors.ErrLotNotBiddable, l.Condition)
	}
	a, err := s.repo.GetAuction(ctx, l.AuctionID)
	if err != nil {
		return fmt.Errorf("service: resolve proxies: %w", err)
	}
	if err := s.resolveProxiesLocked(ctx, a, l); err != nil {
		return fmt.Errorf("service: resolve proxies: %w", err)
	}
	return nil
}

// resolveProxiesLocked runs the counter-bidding loop to its fixed point.
// Caller holds the lot lock and has already persisted any triggering bid.
//
// Rules:
//   - A registration never counters a bid placed before it; it only answers
//     ledger entries with a higher sequence number. Registering against a
//     standing high bid is a no-op until that bidder moves again.
//   - When no price-setting bid exists yet, the lowest-ceiling registration
//     opens at the seeded price, so competing proxies bid each other up from
//     the bottom and the highest ceiling pays one step over the runner-up.
//   - Each counter raises to min(price + increment, ceiling). A final top-up
//     guarantees the winning registration pays one increment over the
//     strongest beaten rival, never its own ceiling without cause.
func (s *AuctionService) resolveProxiesLocked(ctx context.Context, a *model.Auction, l *model.Lot) error {
	bids, err := s.repo.GetBidsByLot(ctx, l.ID)
	if err != nil {
		return err
	}
	now := s.clk.Now()
	if len(activeProxies(bids, now)) == 0 {
		return nil
	}

	raised := false
	for round := 0; ; round++ {
		if round >= maxResolverRounds {
			return fmt.Errorf("lot %s: %w: proxy resolution did not converge", l.ID, auctionerrors.ErrInvariant)
		}
		leader := highestStandingBid(bids)
		p, target := nextCounter(bids, leader, l, now)
		if p == nil {
			break
		}

		auto := &model.Bid{
			ID:             utils.GenerateID(),
			LotID:          l.ID,
			BidderID:       p.BidderID,
			Amount:         target,
			Status:         model.BidPlaced,
			PlacedAt:       now,
			CreatedAt:      now,
			IsAutoBid:      true,
			ParentBidID:    p.ID,
			SequenceNumber: nextSequence(bids),
		}
		if err := l.UpdateCurrentPrice(target, now); err != nil {
			return err
		}
		if err := s.repo.RecordBid(ctx, auto); err != nil {
			return err
		}
		bids = append(bids, auto)
		raised = true

		s.publish(ctx, notify.Event{
			Type:      notify.EventProxyRaised,
			AuctionID: a.ID,
			LotID:     l.ID,
			BidID:     auto.ID,
			BidderID:  auto.BidderID,
			Amount:    auto.Amount,
			IsHighest: true,
			Detail:    string(classifyStrategy(p, bids)),
		})
	}

	if raised {
		if err := s.repo.SaveLot(ctx, l); err != nil {
			return err
		}
		s.publish(ctx, notify.Event{Type: notify.EventTimerReset, AuctionID: a.ID, LotID: l.ID})
	}
	return nil
}

// nextCounter picks the registration that acts next and the amount it bids,
// or nil when the ledger is at its fixed point.
func nextCounter(bids []*model.Bid, leader *model.Bid, l *model.Lot, now time.Time) (*model.Bid, float64) {
	proxies := activeProxies(bids, now)

	// No price-setting bid yet: the lowest ceiling opens at the seeded price.
	if leader == nil {
		var opener *model.Bid
		for _, p := range proxies {
			if p.ProxyCeiling < l.CurrentPrice {
				continue
			}
			if opener == nil || p.ProxyCeiling < opener.ProxyCeiling ||
				(p.ProxyCeiling == opener.ProxyCeiling && p.SequenceNumber < opener.SequenceNumber) {
				opener = p
			}
		}
		if opener == nil {
			return nil, 0
		}
		return opener, l.CurrentPrice
	}

	var pick *model.Bid
	for _, p := range proxies {
		if p.BidderID == leader.BidderID {
			continue
		}
		if leader.SequenceNumber <= p.SequenceNumber {
			continue
		}
		if p.ProxyCeiling <= leader.Amount {
			continue
		}
		if pick == nil || p.ProxyCeiling < pick.ProxyCeiling ||
			(p.ProxyCeiling == pick.ProxyCeiling && p.SequenceNumber < pick.SequenceNumber) {
			pick = p
		}
	}
	if pick == nil {
		return topUp(bids, leader, proxies)
	}
	target := leader.Amount + model.BidIncrement(leader.Amount)
	if pick.ProxyCeiling < target {
		target = pick.ProxyCeiling
	}
	return pick, target
}

// topUp closes the gap left by interleaved minimal raises: when the leading
// auto-bid sits exactly at a rival's exhausted ceiling, its registration
// raises once more to one increment over the strongest beaten rival, capped
// at its own ceiling.
func topUp(bids []*model.Bid, leader *model.Bid, proxies []*model.Bid) (*model.Bid, float64) {
	if !leader.IsAutoBid {
		return nil, 0
	}
	var reg *model.Bid
	for _, p := range proxies {
		if p.ID == leader.ParentBidID {
			reg = p
			break
		}
	}
	if reg == nil {
		return nil, 0
	}

	var strongest float64
	for _, p := range proxies {
		if p.BidderID == reg.BidderID || leader.SequenceNumber <= p.SequenceNumber {
			continue
		}
		if p.ProxyCeiling > strongest {
			strongest = p.ProxyCeiling
		}
	}
	for _, b := range bids {
		if !b.SetsPrice() || b.IsAutoBid || b.BidderID == reg.BidderID {
			continue
		}
		if b.SequenceNumber < leader.SequenceNumber && b.Amount > strongest {
			strongest = b.Amount
		}
	}
	if strongest == 0 {
		return nil, 0
	}

	target := strongest + model.BidIncrement(strongest)
	if target > reg.ProxyCeiling {
		target = reg.ProxyCeiling
	}
	if target <= leader.Amount {
		return nil, 0
	}
	return reg, target
}

// classifyStrategy compares a registration's ceiling against the strongest
// competing ceiling on the lot. Informational only.
func classifyStrategy(p *model.Bid, bids []*model.Bid) ProxyStrategy {
	var strongest float64
	for _, b := range bids {
		if b.ID == p.ID || !b.IsProxy || b.IsAutoBid || b.Status != model.BidPlaced {
			continue
		}
		if b.BidderID == p.BidderID {
			continue
		}
		if b.ProxyCeiling > strongest {
			strongest = b.ProxyCeiling
		}
	}
	switch {
	case strongest == 0:
		return StrategyDefensive
	case p.ProxyCeiling < strongest:
		return StrategyConservative
	case p.ProxyCeiling == strongest:
		return StrategyCompetitive
	default:
		return StrategyAggressive
	}
}
