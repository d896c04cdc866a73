package notify

import (
	"context"
	"fmt"
	"strconv"

	rd "github.com/redis/go-redis/v9"
)

// StreamPublisher appends events to a Redis Stream outbox. A relay drains
// the stream into Kafka asynchronously, so bid handling never waits on the
// broker.
type StreamPublisher struct {
	rdb    *rd.Client
	stream string
}

func NewStreamPublisher(rdb *rd.Client, stream string) *StreamPublisher {
	return &StreamPublisher{rdb: rdb, stream: stream}
}

func (p *StreamPublisher) Publish(ctx context.Context, ev Event) error {
	err := p.rdb.XAdd(ctx, &rd.XAddArgs{
		Stream: p.stream,
		Values: map[string]any{
			"type":       string(ev.Type),
			"auction_id": ev.AuctionID,
			"lot_id":     ev.LotID,
			"bid_id":     ev.BidID,
			"winner_id":  ev.WinnerID,
			"bidder_id":  ev.BidderID,
			"amount":     strconv.FormatFloat(ev.Amount, 'f', -1, 64),
			"is_highest": strconv.FormatBool(ev.IsHighest),
			"detail":     ev.Detail,
			"at":         ev.At.UTC().Format("2006-01-02T15:04:05.000Z07:00"),
		},
	}).Err()
	if err != nil {
		return fmt.Errorf("notify: xadd to %s: %w", p.stream, err)
	}
	return nil
}
