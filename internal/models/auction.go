package models

import (
	"fmt"
	"time"

	"car-auction/internal/auctionerrors"
)

// AuctionStatus is the lifecycle state of a selling session.
type AuctionStatus string

const (
	AuctionDraft     AuctionStatus = "Draft"
	AuctionScheduled AuctionStatus = "Scheduled"
	AuctionReady     AuctionStatus = "Ready"
	AuctionRunning   AuctionStatus = "Running"
	AuctionEnded     AuctionStatus = "Ended"
	AuctionSettled   AuctionStatus = "Settled"
	AuctionCancelled AuctionStatus = "Cancelled"
)

// auctionTransitions maps each status to its legal successors. Cancel is
// handled separately because it is reachable from every non-terminal state.
var auctionTransitions = map[AuctionStatus][]AuctionStatus{
	AuctionDraft:     {AuctionScheduled},
	AuctionScheduled: {AuctionReady},
	AuctionReady:     {AuctionRunning},
	AuctionRunning:   {AuctionEnded},
	AuctionEnded:     {AuctionSettled},
}

func (s AuctionStatus) canTransitionTo(next AuctionStatus) bool {
	for _, t := range auctionTransitions[s] {
		if t == next {
			return true
		}
	}
	return false
}

// Terminal reports whether no further lifecycle transition is possible.
func (s AuctionStatus) Terminal() bool {
	return s == AuctionSettled || s == AuctionCancelled
}

// Auction represents one scheduled selling session of vehicle lots.
type Auction struct {
	ID         string    `gorm:"primaryKey;size:64" json:"id"`
	Name       string    `gorm:"size:128;not null" json:"name"`
	LocationID string    `gorm:"size:64;index" json:"location_id"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	StartTime   *time.Time `json:"start_time,omitempty"`
	EndTime     *time.Time `json:"end_time,omitempty"`
	PreBidStart *time.Time `json:"pre_bid_start,omitempty"`
	PreBidEnd   *time.Time `json:"pre_bid_end,omitempty"`

	Status           AuctionStatus `gorm:"size:16;index;not null" json:"status"`
	CountdownSeconds int           `gorm:"not null" json:"countdown_seconds"`

	CurrentLotID        string     `gorm:"size:64" json:"current_lot_id,omitempty"`
	CurrentLotStartedAt *time.Time `json:"current_lot_started_at,omitempty"`

	ExtensionCount int `json:"extension_count"`
	TotalLots      int `json:"total_lots"`
	PreBidLots     int `json:"pre_bid_lots"`

	// Version is the optimistic concurrency token checked on save.
	Version int `gorm:"not null;default:0" json:"-"`
}

func (Auction) TableName() string { return "auctions" }

func (a *Auction) transitionTo(next AuctionStatus) error {
	if !a.Status.canTransitionTo(next) {
		return fmt.Errorf("auction %s: %w: %s -> %s", a.ID, auctionerrors.ErrIllegalTransition, a.Status, next)
	}
	a.Status = next
	return nil
}

// Schedule fixes the start/end window and derives the pre-bid collection
// window (from now until the auction starts). Legal only from Draft.
func (a *Auction) Schedule(start, end, now time.Time, minLead time.Duration) error {
	if a.Status != AuctionDraft {
		return fmt.Errorf("auction %s: %w: schedule from %s", a.ID, auctionerrors.ErrIllegalTransition, a.Status)
	}
	if start.Before(now.Add(minLead)) {
		return fmt.Errorf("auction %s: %w: start must be at least %s in the future", a.ID, auctionerrors.ErrValidation, minLead)
	}
	if !start.Before(end) {
		return fmt.Errorf("auction %s: %w: start must be before end", a.ID, auctionerrors.ErrValidation)
	}
	a.StartTime = &start
	a.EndTime = &end
	preStart := now
	a.PreBidStart = &preStart
	a.PreBidEnd = &start
	return a.transitionTo(AuctionScheduled)
}

// MarkReady promotes a Scheduled auction; lot promotion is the caller's job.
func (a *Auction) MarkReady() error {
	return a.transitionTo(AuctionReady)
}

// StartRunning begins the live phase. Legal only from Ready.
func (a *Auction) StartRunning() error {
	return a.transitionTo(AuctionRunning)
}

// SetCurrentLot points the auction at its live lot and anchors the round start.
func (a *Auction) SetCurrentLot(lotID string, now time.Time) {
	a.CurrentLotID = lotID
	a.CurrentLotStartedAt = &now
}

// Finish ends the live phase, clearing the current-lot pointer and timer anchor.
func (a *Auction) Finish() error {
	if err := a.transitionTo(AuctionEnded); err != nil {
		return err
	}
	a.CurrentLotID = ""
	a.CurrentLotStartedAt = nil
	return nil
}

// Settle closes the books on an Ended auction.
func (a *Auction) Settle() error {
	return a.transitionTo(AuctionSettled)
}

// Cancel is reachable from any state before Ended/Settled and is terminal.
func (a *Auction) Cancel() error {
	if a.Status == AuctionEnded || a.Status.Terminal() {
		return fmt.Errorf("auction %s: %w: cancel from %s", a.ID, auctionerrors.ErrIllegalTransition, a.Status)
	}
	a.Status = AuctionCancelled
	a.CurrentLotID = ""
	a.CurrentLotStartedAt = nil
	return nil
}

// Extend pushes the auction end time forward. The per-lot countdown is
// unaffected.
func (a *Auction) Extend(minutes int) error {
	if a.Status != AuctionRunning {
		return fmt.Errorf("auction %s: %w: extend from %s", a.ID, auctionerrors.ErrIllegalTransition, a.Status)
	}
	if minutes <= 0 {
		return fmt.Errorf("auction %s: %w: extension minutes must be positive", a.ID, auctionerrors.ErrValidation)
	}
	if a.EndTime != nil {
		t := a.EndTime.Add(time.Duration(minutes) * time.Minute)
		a.EndTime = &t
	}
	a.ExtensionCount++
	return nil
}
