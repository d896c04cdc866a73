package notify

import (
	"context"
	"time"

	"car-auction/utils"
)

// EventType enumerates the engine's fire-and-forget notifications.
type EventType string

const (
	EventAuctionStarted  EventType = "auction_started"
	EventAuctionEnded    EventType = "auction_ended"
	EventLotActivated    EventType = "lot_activated"
	EventBidAccepted     EventType = "bid_accepted"
	EventTimerReset      EventType = "timer_reset"
	EventProxyRaised     EventType = "proxy_raised"
	EventLotClosed       EventType = "lot_closed"
	EventWinnerAssigned  EventType = "winner_assigned"
	EventPaymentRecorded EventType = "payment_recorded"
	EventPaymentReminder EventType = "payment_reminder"
)

// Event is one notification. Identifier fields are filled as applicable.
type Event struct {
	Type      EventType `json:"type"`
	AuctionID string    `json:"auction_id,omitempty"`
	LotID     string    `json:"lot_id,omitempty"`
	BidID     string    `json:"bid_id,omitempty"`
	WinnerID  string    `json:"winner_id,omitempty"`
	BidderID  string    `json:"bidder_id,omitempty"`
	Amount    float64   `json:"amount,omitempty"`
	IsHighest bool      `json:"is_highest,omitempty"`
	Detail    string    `json:"detail,omitempty"`
	At        time.Time `json:"at"`
}

// Publisher is the notification sink. The engine never depends on delivery:
// publish errors are logged by the caller and otherwise ignored.
type Publisher interface {
	Publish(ctx context.Context, ev Event) error
}

// LogPublisher writes every event to the structured log. It is the default
// sink when no outbox is configured.
type LogPublisher struct{}

func NewLogPublisher() LogPublisher { return LogPublisher{} }

func (LogPublisher) Publish(_ context.Context, ev Event) error {
	utils.Info("auction event", map[string]any{
		"type":       string(ev.Type),
		"auction_id": ev.AuctionID,
		"lot_id":     ev.LotID,
		"bid_id":     ev.BidID,
		"winner_id":  ev.WinnerID,
		"bidder_id":  ev.BidderID,
		"amount":     ev.Amount,
		"is_highest": ev.IsHighest,
		"detail":     ev.Detail,
	})
	return nil
}

// Fanout publishes to every configured sink, returning the first error.
type Fanout []Publisher

func (f Fanout) Publish(ctx context.Context, ev Event) error {
	var first error
	for _, p := range f {
		if err := p.Publish(ctx, ev); err != nil && first == nil {
			first = err
		}
	}
	return first
}
