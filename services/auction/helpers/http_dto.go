package helpers

import "time"

// Request/Response DTOs

type CreateAuctionRequest struct {
	Name             string `json:"name" binding:"required"`
	LocationID       string `json:"location_id"`
	CountdownSeconds int    `json:"countdown_seconds"`
}

type ScheduleAuctionRequest struct {
	StartTime time.Time `json:"start_time" binding:"required"`
	EndTime   time.Time `json:"end_time" binding:"required"`
}

type ExtendAuctionRequest struct {
	Minutes int `json:"minutes" binding:"required,gt=0"`
}

type AddLotRequest struct {
	VehicleID     string   `json:"vehicle_id" binding:"required"`
	LotNumber     int      `json:"lot_number" binding:"required,gt=0"`
	StartingPrice float64  `json:"starting_price" binding:"required,gt=0"`
	ReservePrice  *float64 `json:"reserve_price"`
	MinimumPreBid float64  `json:"minimum_pre_bid"`
}

type PlaceBidRequest struct {
	LotID        string     `json:"lot_id" binding:"required"`
	BidderID     string     `json:"bidder_id" binding:"required"`
	Amount       float64    `json:"amount"`
	Kind         string     `json:"kind" binding:"required,oneof=prebid live proxy"`
	ProxyCeiling float64    `json:"proxy_ceiling"`
	ValidUntil   *time.Time `json:"valid_until"`
}

type BidOwnerRequest struct {
	BidderID string `json:"bidder_id" binding:"required"`
}

type UpdateBidAmountRequest struct {
	BidderID string  `json:"bidder_id" binding:"required"`
	Amount   float64 `json:"amount" binding:"required,gt=0"`
}

type PaymentRequest struct {
	Amount float64 `json:"amount" binding:"required,gt=0"`
}

type ExtendDueDateRequest struct {
	Until time.Time `json:"until" binding:"required"`
}

type BidResponse struct {
	BidID          string  `json:"bid_id"`
	LotID          string  `json:"lot_id"`
	BidderID       string  `json:"bidder_id"`
	Amount         float64 `json:"amount"`
	Status         string  `json:"status"`
	IsPreBid       bool    `json:"is_pre_bid"`
	IsProxy        bool    `json:"is_proxy"`
	IsAutoBid      bool    `json:"is_auto_bid"`
	SequenceNumber int     `json:"sequence_number"`
	PlacedAt       string  `json:"placed_at"`
}

type WinnerResponse struct {
	WinnerID       string  `json:"winner_id"`
	LotID          string  `json:"lot_id"`
	BidderID       string  `json:"bidder_id"`
	Amount         float64 `json:"amount"`
	PaidAmount     float64 `json:"paid_amount"`
	PaymentStatus  string  `json:"payment_status"`
	PaymentDueAt   string  `json:"payment_due_at"`
	IsSecondChance bool    `json:"is_second_chance"`
}
