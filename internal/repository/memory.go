package repository

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"car-auction/internal/auctionerrors"
	model "car-auction/internal/models"
)

// MemoryRepo is a concurrency-safe in-memory implementation of AuctionDB.
// Aggregates are stored and returned by value, so a caller's copy never
// aliases the stored one; Save* checks the version token like a real store.
type MemoryRepo struct {
	mu       sync.RWMutex
	auctions map[string]model.Auction
	lots     map[string]model.Lot
	bids     map[string][]model.Bid // key: lotID, in arrival order
	bidIndex map[string]string      // key: bidID -> lotID
	winners  map[string]model.Winner
}

// NewMemoryRepo creates a new in-memory repository instance.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		auctions: make(map[string]model.Auction),
		lots:     make(map[string]model.Lot),
		bids:     make(map[string][]model.Bid),
		bidIndex: make(map[string]string),
		winners:  make(map[string]model.Winner),
	}
}

func (r *MemoryRepo) CreateAuction(_ context.Context, a *model.Auction) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.auctions[a.ID]; ok {
		return fmt.Errorf("create auction %s: %w: already exists", a.ID, auctionerrors.ErrConflict)
	}
	r.auctions[a.ID] = *a
	return nil
}

func (r *MemoryRepo) GetAuction(_ context.Context, id string) (*model.Auction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	a, ok := r.auctions[id]
	if !ok {
		return nil, fmt.Errorf("get auction %s: %w", id, auctionerrors.ErrAuctionNotFound)
	}
	return &a, nil
}

func (r *MemoryRepo) SaveAuction(_ context.Context, a *model.Auction) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.auctions[a.ID]
	if !ok {
		return fmt.Errorf("save auction %s: %w", a.ID, auctionerrors.ErrAuctionNotFound)
	}
	if stored.Version != a.Version {
		return fmt.Errorf("save auction %s: %w", a.ID, auctionerrors.ErrStaleVersion)
	}
	a.Version++
	r.auctions[a.ID] = *a
	return nil
}

func (r *MemoryRepo) ListAuctionsByStatus(_ context.Context, status model.AuctionStatus) ([]*model.Auction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*model.Auction
	for _, a := range r.auctions {
		if a.Status == status {
			a := a
			out = append(out, &a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *MemoryRepo) CreateLot(_ context.Context, l *model.Lot) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.lots[l.ID]; ok {
		return fmt.Errorf("create lot %s: %w: already exists", l.ID, auctionerrors.ErrConflict)
	}
	r.lots[l.ID] = *l
	return nil
}

func (r *MemoryRepo) GetLot(_ context.Context, id string) (*model.Lot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	l, ok := r.lots[id]
	if !ok {
		return nil, fmt.Errorf("get lot %s: %w", id, auctionerrors.ErrLotNotFound)
	}
	return &l, nil
}

func (r *MemoryRepo) SaveLot(_ context.Context, l *model.Lot) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.lots[l.ID]
	if !ok {
		return fmt.Errorf("save lot %s: %w", l.ID, auctionerrors.ErrLotNotFound)
	}
	if stored.Version != l.Version {
		return fmt.Errorf("save lot %s: %w", l.ID, auctionerrors.ErrStaleVersion)
	}
	l.Version++
	r.lots[l.ID] = *l
	return nil
}

func (r *MemoryRepo) GetLotsByAuction(_ context.Context, auctionID string) ([]*model.Lot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*model.Lot
	for _, l := range r.lots {
		if l.AuctionID == auctionID {
			l := l
			out = append(out, &l)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].LotNumber < out[j].LotNumber })
	return out, nil
}

func (r *MemoryRepo) RecordBid(_ context.Context, b *model.Bid) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.lots[b.LotID]; !ok {
		return fmt.Errorf("record bid for lot %s: %w", b.LotID, auctionerrors.ErrLotNotFound)
	}
	if _, ok := r.bidIndex[b.ID]; ok {
		return fmt.Errorf("record bid %s: %w: already exists", b.ID, auctionerrors.ErrConflict)
	}
	r.bids[b.LotID] = append(r.bids[b.LotID], *b)
	r.bidIndex[b.ID] = b.LotID
	return nil
}

func (r *MemoryRepo) GetBid(_ context.Context, id string) (*model.Bid, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	lotID, ok := r.bidIndex[id]
	if !ok {
		return nil, fmt.Errorf("get bid %s: %w", id, auctionerrors.ErrBidNotFound)
	}
	for _, b := range r.bids[lotID] {
		if b.ID == id {
			return &b, nil
		}
	}
	return nil, fmt.Errorf("get bid %s: %w", id, auctionerrors.ErrBidNotFound)
}

func (r *MemoryRepo) SaveBid(_ context.Context, b *model.Bid) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	lotID, ok := r.bidIndex[b.ID]
	if !ok {
		return fmt.Errorf("save bid %s: %w", b.ID, auctionerrors.ErrBidNotFound)
	}
	ledger := r.bids[lotID]
	for i := range ledger {
		if ledger[i].ID == b.ID {
			if ledger[i].Version != b.Version {
				return fmt.Errorf("save bid %s: %w", b.ID, auctionerrors.ErrStaleVersion)
			}
			b.Version++
			ledger[i] = *b
			return nil
		}
	}
	return fmt.Errorf("save bid %s: %w", b.ID, auctionerrors.ErrBidNotFound)
}

func (r *MemoryRepo) GetBidsByLot(_ context.Context, lotID string) ([]*model.Bid, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if _, ok := r.lots[lotID]; !ok {
		return nil, fmt.Errorf("get bids for lot %s: %w", lotID, auctionerrors.ErrLotNotFound)
	}
	ledger := r.bids[lotID]
	out := make([]*model.Bid, 0, len(ledger))
	for _, b := range ledger {
		b := b
		out = append(out, &b)
	}
	return out, nil
}

func (r *MemoryRepo) CreateWinner(_ context.Context, w *model.Winner) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.winners[w.ID]; ok {
		return fmt.Errorf("create winner %s: %w: already exists", w.ID, auctionerrors.ErrConflict)
	}
	r.winners[w.ID] = *w
	return nil
}

func (r *MemoryRepo) GetWinner(_ context.Context, id string) (*model.Winner, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	w, ok := r.winners[id]
	if !ok {
		return nil, fmt.Errorf("get winner %s: %w", id, auctionerrors.ErrWinnerNotFound)
	}
	return &w, nil
}

// GetWinnerByLot returns the most recently assigned winner for the lot, so a
// second-chance re-offer shadows the cancelled original.
func (r *MemoryRepo) GetWinnerByLot(_ context.Context, lotID string) (*model.Winner, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var latest *model.Winner
	for _, w := range r.winners {
		if w.LotID != lotID {
			continue
		}
		w := w
		if latest == nil || w.AssignedAt.After(latest.AssignedAt) {
			latest = &w
		}
	}
	if latest == nil {
		return nil, fmt.Errorf("get winner for lot %s: %w", lotID, auctionerrors.ErrWinnerNotFound)
	}
	return latest, nil
}

func (r *MemoryRepo) SaveWinner(_ context.Context, w *model.Winner) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.winners[w.ID]
	if !ok {
		return fmt.Errorf("save winner %s: %w", w.ID, auctionerrors.ErrWinnerNotFound)
	}
	if stored.Version != w.Version {
		return fmt.Errorf("save winner %s: %w", w.ID, auctionerrors.ErrStaleVersion)
	}
	w.Version++
	r.winners[w.ID] = *w
	return nil
}
