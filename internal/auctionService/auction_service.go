package auction

import (
	"context"
	"fmt"
	"sort"
	"time"

	"car-auction/internal/auctionerrors"
	"car-auction/internal/clock"
	model "car-auction/internal/models"
	"car-auction/internal/notify"
	"car-auction/internal/repository"
	"car-auction/utils"
)

// Settings are the engine knobs. Zero values fall back to defaults in New.
type Settings struct {
	CountdownSeconds      int
	BuyersPremiumRate     float64
	RequireSellerApproval bool
	PaymentDueDays        int
	MinScheduleLead       time.Duration
	LotQueueDepth         int
}

// AuctionService owns the auction, lot, bid and winner state machines. All
// mutating work on a single lot passes through its per-lot lock; see locks.go.
type AuctionService struct {
	repo     repository.AuctionDB
	notifier notify.Publisher
	clk      clock.Clock
	cfg      Settings
	locks    *lotLockTable
}

// NewAuctionService creates a new AuctionService instance.
func NewAuctionService(repo repository.AuctionDB, notifier notify.Publisher, clk clock.Clock, cfg Settings) *AuctionService {
	if cfg.CountdownSeconds <= 0 {
		cfg.CountdownSeconds = 90
	}
	if cfg.PaymentDueDays <= 0 {
		cfg.PaymentDueDays = 7
	}
	if cfg.LotQueueDepth <= 0 {
		cfg.LotQueueDepth = 64
	}
	if cfg.MinScheduleLead <= 0 {
		cfg.MinScheduleLead = time.Hour
	}
	if notifier == nil {
		notifier = notify.NewLogPublisher()
	}
	if clk == nil {
		clk = clock.NewSystem()
	}
	return &AuctionService{
		repo:     repo,
		notifier: notifier,
		clk:      clk,
		cfg:      cfg,
		locks:    newLotLockTable(cfg.LotQueueDepth),
	}
}

// publish is fire-and-forget: sink failures are logged, never propagated.
func (s *AuctionService) publish(ctx context.Context, ev notify.Event) {
	ev.At = s.clk.Now()
	if err := s.notifier.Publish(ctx, ev); err != nil {
		utils.Warn("service: event publish failed", map[string]any{
			"type":  string(ev.Type),
			"error": err.Error(),
		})
	}
}

// CreateAuction registers a new Draft auction.
func (s *AuctionService) CreateAuction(ctx context.Context, name, locationID string, countdownSeconds int) (*model.Auction, error) {
	if name == "" {
		return nil, fmt.Errorf("service: %w: missing auction name", auctionerrors.ErrValidation)
	}
	if countdownSeconds <= 0 {
		countdownSeconds = s.cfg.CountdownSeconds
	}
	a := &model.Auction{
		ID:               utils.GenerateID(),
		Name:             name,
		LocationID:       locationID,
		Status:           model.AuctionDraft,
		CountdownSeconds: countdownSeconds,
		CreatedAt:        s.clk.Now(),
	}
	if err := s.repo.CreateAuction(ctx, a); err != nil {
		return nil, fmt.Errorf("service: create auction: %w", err)
	}
	return a, nil
}

// AddLot enters a vehicle into an auction that has not started running yet.
// Lot numbers are unique within the auction.
func (s *AuctionService) AddLot(ctx context.Context, auctionID, vehicleID string, lotNumber int, startingPrice float64, reservePrice *float64, minPreBid float64) (*model.Lot, error) {
	if vehicleID == "" {
		return nil, fmt.Errorf("service: %w: missing vehicle id", auctionerrors.ErrValidation)
	}
	if lotNumber <= 0 {
		return nil, fmt.Errorf("service: %w: lot number must be positive", auctionerrors.ErrValidation)
	}
	if startingPrice <= 0 {
		return nil, fmt.Errorf("service: %w: starting price must be positive", auctionerrors.ErrValidation)
	}
	if reservePrice != nil && *reservePrice < startingPrice {
		return nil, fmt.Errorf("service: %w: reserve below starting price", auctionerrors.ErrValidation)
	}

	a, err := s.repo.GetAuction(ctx, auctionID)
	if err != nil {
		return nil, fmt.Errorf("service: add lot: %w", err)
	}
	switch a.Status {
	case model.AuctionDraft, model.AuctionScheduled, model.AuctionReady:
	default:
		return nil, fmt.Errorf("service: add lot: %w: auction is %s", auctionerrors.ErrIllegalTransition, a.Status)
	}

	existing, err := s.repo.GetLotsByAuction(ctx, auctionID)
	if err != nil {
		return nil, fmt.Errorf("service: add lot: %w", err)
	}
	for _, l := range existing {
		if l.LotNumber == lotNumber {
			return nil, fmt.Errorf("service: add lot %d: %w", lotNumber, auctionerrors.ErrDuplicateLot)
		}
	}

	condition := model.LotPreAuction
	if a.Status == model.AuctionReady {
		condition = model.LotReadyForAuction
	}
	l := &model.Lot{
		ID:            utils.GenerateID(),
		AuctionID:     auctionID,
		VehicleID:     vehicleID,
		LotNumber:     lotNumber,
		StartingPrice: startingPrice,
		ReservePrice:  reservePrice,
		CurrentPrice:  startingPrice,
		MinimumPreBid: minPreBid,
		RunOrder:      lotNumber,
		Condition:     condition,
		WinnerStatus:  model.WinnerPending,
		CreatedAt:     s.clk.Now(),
	}
	if err := s.repo.CreateLot(ctx, l); err != nil {
		return nil, fmt.Errorf("service: add lot: %w", err)
	}

	a.TotalLots++
	if err := s.repo.SaveAuction(ctx, a); err != nil {
		return nil, fmt.Errorf("service: add lot: %w", err)
	}
	return l, nil
}

// ScheduleAuction fixes the auction window and opens the pre-bid window.
func (s *AuctionService) ScheduleAuction(ctx context.Context, auctionID string, start, end time.Time) (*model.Auction, error) {
	a, err := s.repo.GetAuction(ctx, auctionID)
	if err != nil {
		return nil, fmt.Errorf("service: schedule auction: %w", err)
	}
	if err := a.Schedule(start, end, s.clk.Now(), s.cfg.MinScheduleLead); err != nil {
		return nil, fmt.Errorf("service: schedule auction: %w", err)
	}
	if err := s.repo.SaveAuction(ctx, a); err != nil {
		return nil, fmt.Errorf("service: schedule auction: %w", err)
	}
	return a, nil
}

// MakeAuctionReady promotes every attached lot to ReadyForAuction and the
// auction to Ready. Requires at least one lot.
func (s *AuctionService) MakeAuctionReady(ctx context.Context, auctionID string) (*model.Auction, error) {
	a, err := s.repo.GetAuction(ctx, auctionID)
	if err != nil {
		return nil, fmt.Errorf("service: make ready: %w", err)
	}
	if a.Status != model.AuctionScheduled {
		return nil, fmt.Errorf("service: make ready: %w: auction is %s", auctionerrors.ErrIllegalTransition, a.Status)
	}
	lots, err := s.repo.GetLotsByAuction(ctx, auctionID)
	if err != nil {
		return nil, fmt.Errorf("service: make ready: %w", err)
	}
	if len(lots) == 0 {
		return nil, fmt.Errorf("service: make ready: %w: auction has no lots", auctionerrors.ErrValidation)
	}
	for _, l := range lots {
		if l.Condition != model.LotPreAuction {
			continue
		}
		if err := l.MakeReady(); err != nil {
			return nil, fmt.Errorf("service: make ready: %w", err)
		}
		if err := s.repo.SaveLot(ctx, l); err != nil {
			return nil, fmt.Errorf("service: make ready: %w", err)
		}
	}
	if err := a.MarkReady(); err != nil {
		return nil, fmt.Errorf("service: make ready: %w", err)
	}
	if err := s.repo.SaveAuction(ctx, a); err != nil {
		return nil, fmt.Errorf("service: make ready: %w", err)
	}
	return a, nil
}

// StartAuction begins the live phase, activating the first lot. A Scheduled
// auction is auto-promoted to Ready first.
func (s *AuctionService) StartAuction(ctx context.Context, auctionID string) (*model.Auction, error) {
	a, err := s.repo.GetAuction(ctx, auctionID)
	if err != nil {
		return nil, fmt.Errorf("service: start auction: %w", err)
	}
	if a.Status == model.AuctionScheduled {
		if a, err = s.MakeAuctionReady(ctx, auctionID); err != nil {
			return nil, err
		}
	}
	if a.Status != model.AuctionReady {
		return nil, fmt.Errorf("service: start auction: %w: auction is %s", auctionerrors.ErrIllegalTransition, a.Status)
	}

	lots, err := s.repo.GetLotsByAuction(ctx, auctionID)
	if err != nil {
		return nil, fmt.Errorf("service: start auction: %w", err)
	}
	first, err := s.selectFirstLot(ctx, lots)
	if err != nil {
		return nil, fmt.Errorf("service: start auction: %w", err)
	}
	if first == nil {
		return nil, fmt.Errorf("service: start auction: %w: no pending lots", auctionerrors.ErrValidation)
	}

	if err := a.StartRunning(); err != nil {
		return nil, fmt.Errorf("service: start auction: %w", err)
	}
	if err := s.activateLot(ctx, a, first); err != nil {
		return nil, fmt.Errorf("service: start auction: %w", err)
	}
	if err := s.repo.SaveAuction(ctx, a); err != nil {
		return nil, fmt.Errorf("service: start auction: %w", err)
	}
	s.publish(ctx, notify.Event{Type: notify.EventAuctionStarted, AuctionID: a.ID})
	return a, nil
}

// selectFirstLot orders pending lots for opening: lots carrying pre-bids
// come first, strongest pre-bid first, then the rest by ascending lot
// number. Equal pre-bids break by earlier placement.
func (s *AuctionService) selectFirstLot(ctx context.Context, lots []*model.Lot) (*model.Lot, error) {
	type candidate struct {
		lot    *model.Lot
		preBid float64
	}
	var cands []candidate
	for _, l := range lots {
		if l.WinnerStatus != model.WinnerPending || l.Closed() {
			continue
		}
		bids, err := s.repo.GetBidsByLot(ctx, l.ID)
		if err != nil {
			return nil, err
		}
		top := highestPreBid(bids)
		c := candidate{lot: l}
		if top != nil {
			c.preBid = top.Amount
		}
		cands = append(cands, c)
	}
	if len(cands) == 0 {
		return nil, nil
	}
	sort.Slice(cands, func(i, j int) bool {
		if cands[i].preBid != cands[j].preBid {
			return cands[i].preBid > cands[j].preBid
		}
		return cands[i].lot.LotNumber < cands[j].lot.LotNumber
	})
	return cands[0].lot, nil
}

// activateLot seeds the price from the highest valid pre-bid and puts the
// lot on the block. Standing proxy registrations resolve immediately.
// Caller saves the auction.
func (s *AuctionService) activateLot(ctx context.Context, a *model.Auction, l *model.Lot) error {
	if err := s.locks.acquire(l.ID); err != nil {
		return err
	}
	defer s.locks.release(l.ID)

	bids, err := s.repo.GetBidsByLot(ctx, l.ID)
	if err != nil {
		return err
	}
	seed := l.StartingPrice
	if top := highestPreBid(bids); top != nil && top.Amount > seed {
		seed = top.Amount
	}
	now := s.clk.Now()
	if err := l.Activate(seed, now); err != nil {
		return err
	}
	if err := s.repo.SaveLot(ctx, l); err != nil {
		return err
	}
	a.SetCurrentLot(l.ID, now)
	s.publish(ctx, notify.Event{
		Type:      notify.EventLotActivated,
		AuctionID: a.ID,
		LotID:     l.ID,
		Amount:    l.CurrentPrice,
	})
	return s.resolveProxiesLocked(ctx, a, l)
}

// MoveToNextCar closes the current lot and activates the next pending lot
// by ascending lot number; when none remain the auction ends. The operator
// path closes unconditionally.
func (s *AuctionService) MoveToNextCar(ctx context.Context, auctionID string) (*model.Auction, error) {
	return s.rotate(ctx, auctionID, false)
}

// RotateIfExpired is the driver's close path. The countdown is re-checked
// under the lot lock, so a bid that lands between the sweep's expiry check
// and the close keeps its round instead of being cut short.
func (s *AuctionService) RotateIfExpired(ctx context.Context, auctionID string) (*model.Auction, error) {
	return s.rotate(ctx, auctionID, true)
}

func (s *AuctionService) rotate(ctx context.Context, auctionID string, onlyIfExpired bool) (*model.Auction, error) {
	a, err := s.repo.GetAuction(ctx, auctionID)
	if err != nil {
		return nil, fmt.Errorf("service: move to next car: %w", err)
	}
	if a.Status != model.AuctionRunning {
		return nil, fmt.Errorf("service: move to next car: %w: auction is %s", auctionerrors.ErrIllegalTransition, a.Status)
	}

	if a.CurrentLotID != "" {
		closed, err := s.closeLot(ctx, a, a.CurrentLotID, onlyIfExpired)
		if err != nil {
			return nil, fmt.Errorf("service: move to next car: %w", err)
		}
		if !closed {
			return a, nil
		}
		a.CurrentLotID = ""
		a.CurrentLotStartedAt = nil
	}

	lots, err := s.repo.GetLotsByAuction(ctx, auctionID)
	if err != nil {
		return nil, fmt.Errorf("service: move to next car: %w", err)
	}
	var next *model.Lot
	for _, l := range lots {
		if l.WinnerStatus == model.WinnerPending && !l.Closed() {
			next = l
			break
		}
	}
	if next == nil {
		return s.endAuction(ctx, a)
	}

	if err := s.activateLot(ctx, a, next); err != nil {
		return nil, fmt.Errorf("service: move to next car: %w", err)
	}
	if err := s.repo.SaveAuction(ctx, a); err != nil {
		return nil, fmt.Errorf("service: move to next car: %w", err)
	}
	return a, nil
}

// EndAuction closes the live lot (if any) and ends the auction.
func (s *AuctionService) EndAuction(ctx context.Context, auctionID string) (*model.Auction, error) {
	a, err := s.repo.GetAuction(ctx, auctionID)
	if err != nil {
		return nil, fmt.Errorf("service: end auction: %w", err)
	}
	if a.Status != model.AuctionRunning {
		return nil, fmt.Errorf("service: end auction: %w: auction is %s", auctionerrors.ErrIllegalTransition, a.Status)
	}
	if a.CurrentLotID != "" {
		if _, err := s.closeLot(ctx, a, a.CurrentLotID, false); err != nil {
			return nil, fmt.Errorf("service: end auction: %w", err)
		}
	}
	return s.endAuction(ctx, a)
}

// endAuction finalizes pre-bid coverage stats and emits the totals.
func (s *AuctionService) endAuction(ctx context.Context, a *model.Auction) (*model.Auction, error) {
	lots, err := s.repo.GetLotsByAuction(ctx, a.ID)
	if err != nil {
		return nil, fmt.Errorf("service: end auction: %w", err)
	}
	preBidLots, soldLots := 0, 0
	var hammerTotal float64
	for _, l := range lots {
		if l.PreBidCount > 0 {
			preBidLots++
		}
		if l.HammerPrice != nil {
			soldLots++
			hammerTotal += *l.HammerPrice
		}
	}
	a.PreBidLots = preBidLots
	if err := a.Finish(); err != nil {
		return nil, fmt.Errorf("service: end auction: %w", err)
	}
	if err := s.repo.SaveAuction(ctx, a); err != nil {
		return nil, fmt.Errorf("service: end auction: %w", err)
	}
	s.publish(ctx, notify.Event{
		Type:      notify.EventAuctionEnded,
		AuctionID: a.ID,
		Amount:    hammerTotal,
		Detail:    fmt.Sprintf("sold=%d total=%d pre_bid_lots=%d", soldLots, a.TotalLots, preBidLots),
	})
	return a, nil
}

// ExtendAuction pushes the end time of a running auction forward.
func (s *AuctionService) ExtendAuction(ctx context.Context, auctionID string, minutes int) (*model.Auction, error) {
	a, err := s.repo.GetAuction(ctx, auctionID)
	if err != nil {
		return nil, fmt.Errorf("service: extend auction: %w", err)
	}
	if err := a.Extend(minutes); err != nil {
		return nil, fmt.Errorf("service: extend auction: %w", err)
	}
	if err := s.repo.SaveAuction(ctx, a); err != nil {
		return nil, fmt.Errorf("service: extend auction: %w", err)
	}
	utils.Info("service: auction extended", map[string]any{
		"auction_id": a.ID,
		"minutes":    minutes,
		"extensions": a.ExtensionCount,
	})
	return a, nil
}

// CancelAuction cancels a not-yet-ended auction and pulls any live lot off
// the block.
func (s *AuctionService) CancelAuction(ctx context.Context, auctionID string) (*model.Auction, error) {
	a, err := s.repo.GetAuction(ctx, auctionID)
	if err != nil {
		return nil, fmt.Errorf("service: cancel auction: %w", err)
	}
	liveLotID := a.CurrentLotID
	if err := a.Cancel(); err != nil {
		return nil, fmt.Errorf("service: cancel auction: %w", err)
	}
	if liveLotID != "" {
		if err := s.locks.acquire(liveLotID); err != nil {
			return nil, fmt.Errorf("service: cancel auction: %w", err)
		}
		defer s.locks.release(liveLotID)
		l, err := s.repo.GetLot(ctx, liveLotID)
		if err != nil {
			return nil, fmt.Errorf("service: cancel auction: %w", err)
		}
		if l.Condition == model.LotLiveAuction {
			if err := l.Deactivate(); err != nil {
				return nil, fmt.Errorf("service: cancel auction: %w", err)
			}
			if err := s.repo.SaveLot(ctx, l); err != nil {
				return nil, fmt.Errorf("service: cancel auction: %w", err)
			}
		}
	}
	if err := s.repo.SaveAuction(ctx, a); err != nil {
		return nil, fmt.Errorf("service: cancel auction: %w", err)
	}
	return a, nil
}

// SettleAuction closes the books on an ended auction.
func (s *AuctionService) SettleAuction(ctx context.Context, auctionID string) (*model.Auction, error) {
	a, err := s.repo.GetAuction(ctx, auctionID)
	if err != nil {
		return nil, fmt.Errorf("service: settle auction: %w", err)
	}
	if err := a.Settle(); err != nil {
		return nil, fmt.Errorf("service: settle auction: %w", err)
	}
	if err := s.repo.SaveAuction(ctx, a); err != nil {
		return nil, fmt.Errorf("service: settle auction: %w", err)
	}
	return a, nil
}

// GetAuction returns one auction by id.
func (s *AuctionService) GetAuction(ctx context.Context, auctionID string) (*model.Auction, error) {
	a, err := s.repo.GetAuction(ctx, auctionID)
	if err != nil {
		return nil, fmt.Errorf("service: get auction: %w", err)
	}
	return a, nil
}

// GetLot returns one lot by id.
func (s *AuctionService) GetLot(ctx context.Context, lotID string) (*model.Lot, error) {
	l, err := s.repo.GetLot(ctx, lotID)
	if err != nil {
		return nil, fmt.Errorf("service: get lot: %w", err)
	}
	return l, nil
}

// ListAuctions returns every auction in the given lifecycle state.
func (s *AuctionService) ListAuctions(ctx context.Context, status model.AuctionStatus) ([]*model.Auction, error) {
	switch status {
	case model.AuctionDraft, model.AuctionScheduled, model.AuctionReady,
		model.AuctionRunning, model.AuctionEnded, model.AuctionSettled, model.AuctionCancelled:
	default:
		return nil, fmt.Errorf("service: list auctions: %w: unknown status %q", auctionerrors.ErrValidation, status)
	}
	auctions, err := s.repo.ListAuctionsByStatus(ctx, status)
	if err != nil {
		return nil, fmt.Errorf("service: list auctions: %w", err)
	}
	return auctions, nil
}

// GetLotsByAuction returns the auction's lots in run order.
func (s *AuctionService) GetLotsByAuction(ctx context.Context, auctionID string) ([]*model.Lot, error) {
	lots, err := s.repo.GetLotsByAuction(ctx, auctionID)
	if err != nil {
		return nil, fmt.Errorf("service: get lots: %w", err)
	}
	return lots, nil
}
