package models

import (
	"fmt"
	"time"

	"car-auction/internal/auctionerrors"

	"github.com/shopspring/decimal"
)

// LotCondition is the lifecycle state of one vehicle inside an auction.
// Sold lots continue through the post-sale payment chain.
type LotCondition string

const (
	LotPreAuction       LotCondition = "PreAuction"
	LotReadyForAuction  LotCondition = "ReadyForAuction"
	LotLiveAuction      LotCondition = "LiveAuction"
	LotSold             LotCondition = "Sold"
	LotUnsold           LotCondition = "Unsold"
	LotAwaitingApproval LotCondition = "AwaitingSellerApproval"
	LotSellerApproved   LotCondition = "SellerApproved"
	LotAwaitingPayment  LotCondition = "AwaitingFullPayment"
	LotReadyForPickup   LotCondition = "ReadyForPickup"
	LotCompleted        LotCondition = "Completed"
)

// WinnerStatus mirrors the post-close progress on the lot record.
type WinnerStatus string

const (
	WinnerPending         WinnerStatus = "Pending"
	WinnerAwaitingSeller  WinnerStatus = "AwaitingSellerApproval"
	WinnerSellerApproved  WinnerStatus = "SellerApproved"
	WinnerSellerRejected  WinnerStatus = "SellerRejected"
	WinnerDepositPaid     WinnerStatus = "DepositPaid"
	WinnerPaymentComplete WinnerStatus = "PaymentComplete"
	WinnerCompleted       WinnerStatus = "Completed"
	WinnerUnsold          WinnerStatus = "Unsold"
)

var lotTransitions = map[LotCondition][]LotCondition{
	LotPreAuction:       {LotReadyForAuction},
	LotReadyForAuction:  {LotLiveAuction},
	LotLiveAuction:      {LotSold, LotUnsold, LotReadyForAuction},
	LotSold:             {LotAwaitingApproval, LotSellerApproved},
	LotAwaitingApproval: {LotSellerApproved, LotUnsold},
	LotSellerApproved:   {LotAwaitingPayment},
	LotAwaitingPayment:  {LotReadyForPickup},
	LotReadyForPickup:   {LotCompleted},
}

// Lot is one vehicle entered into one auction.
type Lot struct {
	ID        string    `gorm:"primaryKey;size:64" json:"id"`
	AuctionID string    `gorm:"size:64;index;not null" json:"auction_id"`
	VehicleID string    `gorm:"size:64;not null" json:"vehicle_id"`
	LotNumber int       `gorm:"not null;index" json:"lot_number"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	StartingPrice float64  `gorm:"not null" json:"starting_price"`
	ReservePrice  *float64 `json:"reserve_price,omitempty"`
	CurrentPrice  float64  `gorm:"not null" json:"current_price"`
	HammerPrice   *float64 `json:"hammer_price,omitempty"`
	BuyersPremium float64  `json:"buyers_premium"`
	TotalPrice    float64  `json:"total_price"`
	MinimumPreBid float64  `json:"minimum_pre_bid"`

	BidCount    int  `json:"bid_count"`
	PreBidCount int  `json:"pre_bid_count"`
	ReserveMet  bool `json:"reserve_met"`

	IsActive        bool       `gorm:"index" json:"is_active"`
	ActiveStartedAt *time.Time `json:"active_started_at,omitempty"`
	LastBidAt       *time.Time `json:"last_bid_at,omitempty"`

	Lane     string `gorm:"size:16" json:"lane,omitempty"`
	RunOrder int    `json:"run_order"`

	Condition    LotCondition `gorm:"size:32;index;not null" json:"condition"`
	WinnerStatus WinnerStatus `gorm:"size:32;index;not null" json:"winner_status"`
	UnsoldReason string       `gorm:"size:128" json:"unsold_reason,omitempty"`
	PaymentDueAt *time.Time   `json:"payment_due_at,omitempty"`

	Version int `gorm:"not null;default:0" json:"-"`
}

func (Lot) TableName() string { return "lots" }

func (l *Lot) transitionTo(next LotCondition) error {
	for _, t := range lotTransitions[l.Condition] {
		if t == next {
			l.Condition = next
			return nil
		}
	}
	return fmt.Errorf("lot %s: %w: %s -> %s", l.ID, auctionerrors.ErrIllegalTransition, l.Condition, next)
}

// MakeReady promotes the lot for an auction that is being made ready.
func (l *Lot) MakeReady() error {
	return l.transitionTo(LotReadyForAuction)
}

// Activate puts the lot under the hammer. seedPrice is the highest valid
// pre-bid, or the starting price when no pre-bid exists.
func (l *Lot) Activate(seedPrice float64, now time.Time) error {
	if err := l.transitionTo(LotLiveAuction); err != nil {
		return err
	}
	if seedPrice < l.StartingPrice {
		seedPrice = l.StartingPrice
	}
	l.IsActive = true
	l.ActiveStartedAt = &now
	l.LastBidAt = nil
	l.CurrentPrice = seedPrice
	if l.ReservePrice != nil && l.CurrentPrice >= *l.ReservePrice {
		l.ReserveMet = true
	}
	return nil
}

// Deactivate pulls a live lot back off the block without closing it.
func (l *Lot) Deactivate() error {
	if err := l.transitionTo(LotReadyForAuction); err != nil {
		return err
	}
	l.IsActive = false
	l.ActiveStartedAt = nil
	return nil
}

// UpdateCurrentPrice advances the price and stamps the timer anchor.
// The price is monotonically non-decreasing for the life of the lot.
func (l *Lot) UpdateCurrentPrice(amount float64, now time.Time) error {
	if l.Condition != LotLiveAuction {
		return fmt.Errorf("lot %s: %w: condition is %s", l.ID, auctionerrors.ErrLotNotBiddable, l.Condition)
	}
	if amount < l.CurrentPrice {
		return fmt.Errorf("lot %s: %w: %.2f is below current price %.2f", l.ID, auctionerrors.ErrBidTooLow, amount, l.CurrentPrice)
	}
	l.CurrentPrice = amount
	l.BidCount++
	l.LastBidAt = &now
	if l.ReservePrice != nil && l.CurrentPrice >= *l.ReservePrice {
		l.ReserveMet = true
	}
	return nil
}

// NextMinimumBid returns the required amount of the next bid, using the
// tiered increment ladder keyed on the current price.
func (l *Lot) NextMinimumBid() float64 {
	return l.CurrentPrice + BidIncrement(l.CurrentPrice)
}

// BidIncrement is the ladder step for a given price. Tier edges use strict
// upper bounds, so a lot sitting exactly at 1000 steps by 100.
func BidIncrement(price float64) float64 {
	switch {
	case price < 500:
		return 25
	case price < 1000:
		return 50
	case price < 5000:
		return 100
	case price < 10000:
		return 250
	default:
		return 500
	}
}

// IsTimeExpired reports whether the round has run out: the lot is active and
// the countdown has elapsed since the later of the last bid and activation.
func (l *Lot) IsTimeExpired(now time.Time, countdownSeconds int) bool {
	if !l.IsActive || l.ActiveStartedAt == nil {
		return false
	}
	anchor := *l.ActiveStartedAt
	if l.LastBidAt != nil && l.LastBidAt.After(anchor) {
		anchor = *l.LastBidAt
	}
	return now.Sub(anchor) >= time.Duration(countdownSeconds)*time.Second
}

// MarkWon closes the lot as sold: computes hammer price, buyer's premium and
// total, and enters the approval chain (or skips straight past it when the
// seller's sign-off is not required).
func (l *Lot) MarkWon(amount, premiumRate float64, requireApproval bool, dueAt, now time.Time) error {
	if err := l.transitionTo(LotSold); err != nil {
		return err
	}
	hammer := amount
	l.HammerPrice = &hammer
	premium, _ := decimal.NewFromFloat(amount).
		Mul(decimal.NewFromFloat(premiumRate)).
		Round(2).Float64()
	l.BuyersPremium = premium
	l.TotalPrice, _ = decimal.NewFromFloat(amount).
		Add(decimal.NewFromFloat(premium)).
		Round(2).Float64()
	l.IsActive = false
	l.PaymentDueAt = &dueAt
	if requireApproval {
		l.WinnerStatus = WinnerAwaitingSeller
		return l.transitionTo(LotAwaitingApproval)
	}
	l.WinnerStatus = WinnerSellerApproved
	return l.transitionTo(LotSellerApproved)
}

// MarkUnsold closes the lot without a sale.
func (l *Lot) MarkUnsold(reason string) error {
	if err := l.transitionTo(LotUnsold); err != nil {
		return err
	}
	l.WinnerStatus = WinnerUnsold
	l.UnsoldReason = reason
	l.IsActive = false
	return nil
}

// ApproveWinner moves AwaitingSellerApproval -> SellerApproved.
func (l *Lot) ApproveWinner() error {
	if l.Condition != LotAwaitingApproval {
		return fmt.Errorf("lot %s: %w: approve from %s", l.ID, auctionerrors.ErrIllegalTransition, l.Condition)
	}
	l.WinnerStatus = WinnerSellerApproved
	return l.transitionTo(LotSellerApproved)
}

// RejectWinner folds the lot back into Unsold.
func (l *Lot) RejectWinner() error {
	if l.Condition != LotAwaitingApproval {
		return fmt.Errorf("lot %s: %w: reject from %s", l.ID, auctionerrors.ErrIllegalTransition, l.Condition)
	}
	l.WinnerStatus = WinnerSellerRejected
	return l.transitionTo(LotUnsold)
}

// MarkDepositPaid moves SellerApproved -> AwaitingFullPayment.
func (l *Lot) MarkDepositPaid() error {
	if l.Condition != LotSellerApproved {
		return fmt.Errorf("lot %s: %w: deposit from %s", l.ID, auctionerrors.ErrIllegalTransition, l.Condition)
	}
	l.WinnerStatus = WinnerDepositPaid
	return l.transitionTo(LotAwaitingPayment)
}

// CompletePayment moves AwaitingFullPayment -> ReadyForPickup.
func (l *Lot) CompletePayment() error {
	if l.Condition != LotAwaitingPayment {
		return fmt.Errorf("lot %s: %w: complete payment from %s", l.ID, auctionerrors.ErrIllegalTransition, l.Condition)
	}
	l.WinnerStatus = WinnerPaymentComplete
	return l.transitionTo(LotReadyForPickup)
}

// CompleteSale moves ReadyForPickup -> Completed.
func (l *Lot) CompleteSale() error {
	if l.Condition != LotReadyForPickup {
		return fmt.Errorf("lot %s: %w: complete sale from %s", l.ID, auctionerrors.ErrIllegalTransition, l.Condition)
	}
	l.WinnerStatus = WinnerCompleted
	return l.transitionTo(LotCompleted)
}

// Closed reports whether the lot has left the bidding phase for good.
func (l *Lot) Closed() bool {
	switch l.Condition {
	case LotPreAuction, LotReadyForAuction, LotLiveAuction:
		return false
	}
	return true
}
