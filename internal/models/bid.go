package models

import (
	"fmt"
	"time"

	"car-auction/internal/auctionerrors"
)

// BidStatus is the state of one ledger entry. Invalidated and Retracted are
// terminal.
type BidStatus string

const (
	BidPlaced      BidStatus = "Placed"
	BidInvalidated BidStatus = "Invalidated"
	BidRetracted   BidStatus = "Retracted"
)

// Bid is one attempt to raise (or stand ready to raise) the price of a lot.
//
// A proxy registration (IsProxy, not IsAutoBid) is a standing instruction
// and never sets the price; the resolver synthesizes auto-bids (IsAutoBid)
// on its behalf, linked back through ParentBidID.
type Bid struct {
	ID        string    `gorm:"primaryKey;size:64" json:"id"`
	LotID     string    `gorm:"size:64;index;not null" json:"lot_id"`
	BidderID  string    `gorm:"size:64;index;not null" json:"bidder_id"`
	Amount    float64   `gorm:"not null" json:"amount"`
	Status    BidStatus `gorm:"size:16;index;not null" json:"status"`
	PlacedAt  time.Time `json:"placed_at"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	IsPreBid     bool       `json:"is_pre_bid"`
	IsProxy      bool       `json:"is_proxy"`
	IsAutoBid    bool       `json:"is_auto_bid"`
	ProxyCeiling float64    `json:"proxy_ceiling,omitempty"`
	ValidUntil   *time.Time `json:"valid_until,omitempty"`

	ParentBidID    string `gorm:"size:64" json:"parent_bid_id,omitempty"`
	SequenceNumber int    `gorm:"index" json:"sequence_number"`

	Version int `gorm:"not null;default:0" json:"-"`
}

func (Bid) TableName() string { return "bids" }

// SetsPrice reports whether this ledger entry participates in the current
// price history (pre-bids only seed activation; proxy registrations never
// move price).
func (b *Bid) SetsPrice() bool {
	return b.Status == BidPlaced && !b.IsPreBid && !(b.IsProxy && !b.IsAutoBid)
}

// IsActiveProxy reports whether this is a standing, unexpired proxy
// registration. Expiry is re-evaluated against now on every call, never
// cached.
func (b *Bid) IsActiveProxy(now time.Time) bool {
	if !b.IsProxy || b.IsAutoBid || b.Status != BidPlaced {
		return false
	}
	return b.ValidUntil == nil || !now.After(*b.ValidUntil)
}

// Retract terminates a still-placed bid at the bidder's request.
func (b *Bid) Retract() error {
	if b.Status != BidPlaced {
		return fmt.Errorf("bid %s: %w: retract from %s", b.ID, auctionerrors.ErrIllegalTransition, b.Status)
	}
	b.Status = BidRetracted
	return nil
}

// Invalidate terminates a still-placed bid by operator decision.
func (b *Bid) Invalidate() error {
	if b.Status != BidPlaced {
		return fmt.Errorf("bid %s: %w: invalidate from %s", b.ID, auctionerrors.ErrIllegalTransition, b.Status)
	}
	b.Status = BidInvalidated
	return nil
}

// UpdateAmount is the single audited mutation of a placed bid's amount.
// Ladder and ceiling re-validation is the service's job; this guards the
// bid-local invariants.
func (b *Bid) UpdateAmount(amount float64) error {
	if b.Status != BidPlaced {
		return fmt.Errorf("bid %s: %w: amount update from %s", b.ID, auctionerrors.ErrIllegalTransition, b.Status)
	}
	if amount <= 0 {
		return fmt.Errorf("bid %s: %w: non-positive amount", b.ID, auctionerrors.ErrInvalidBid)
	}
	if b.IsProxy && !b.IsAutoBid {
		// registration amount tracks the ceiling
		b.ProxyCeiling = amount
	}
	if b.IsProxy && amount > b.ProxyCeiling {
		return fmt.Errorf("bid %s: %w: amount exceeds proxy ceiling %.2f", b.ID, auctionerrors.ErrInvalidBid, b.ProxyCeiling)
	}
	b.Amount = amount
	return nil
}
