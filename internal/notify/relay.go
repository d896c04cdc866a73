package notify

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"car-auction/utils"

	rd "github.com/redis/go-redis/v9"
)

// Relay forwards outbox events from the Redis Stream to Kafka. A message is
// ACKed only after the Kafka publish succeeds, so failed publishes stay
// pending and are retried.
type Relay struct {
	rdb      *rd.Client
	producer *Producer

	stream   string
	group    string
	consumer string
}

func NewRelay(rdb *rd.Client, producer *Producer, stream, group, consumer string) *Relay {
	return &Relay{
		rdb:      rdb,
		producer: producer,
		stream:   stream,
		group:    group,
		consumer: consumer,
	}
}

func (r *Relay) Run(ctx context.Context) {
	if err := r.ensureGroup(ctx); err != nil {
		utils.Error("relay: ensure group", map[string]any{"error": err.Error()})
		return
	}

	for {
		if ctx.Err() != nil {
			return
		}

		// Drain this consumer's pending entries before reading new ones.
		msgs, err := r.readGroup(ctx, "0", 0)
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, context.Canceled) {
				return
			}
			utils.Warn("relay: read pending", map[string]any{"error": err.Error()})
			time.Sleep(300 * time.Millisecond)
			continue
		}
		if len(msgs) == 0 {
			msgs, err = r.readGroup(ctx, ">", 2*time.Second)
			if err != nil {
				if ctx.Err() != nil || errors.Is(err, context.Canceled) {
					return
				}
				utils.Warn("relay: read new", map[string]any{"error": err.Error()})
				time.Sleep(300 * time.Millisecond)
				continue
			}
		}

		for _, xm := range msgs {
			if err := r.processOne(ctx, xm); err != nil {
				utils.Warn("relay: process message", map[string]any{"id": xm.ID, "error": err.Error()})
				time.Sleep(200 * time.Millisecond)
				break
			}
		}
	}
}

func (r *Relay) ensureGroup(ctx context.Context) error {
	err := r.rdb.XGroupCreateMkStream(ctx, r.stream, r.group, "0").Err()
	if err == nil || strings.Contains(err.Error(), "BUSYGROUP") {
		return nil
	}
	return err
}

func (r *Relay) readGroup(ctx context.Context, streamID string, block time.Duration) ([]rd.XMessage, error) {
	streams, err := r.rdb.XReadGroup(ctx, &rd.XReadGroupArgs{
		Group:    r.group,
		Consumer: r.consumer,
		Streams:  []string{r.stream, streamID},
		Count:    16,
		Block:    block,
		NoAck:    false,
	}).Result()
	if err != nil {
		if errors.Is(err, rd.Nil) {
			return nil, nil
		}
		return nil, err
	}
	out := make([]rd.XMessage, 0, 16)
	for _, s := range streams {
		out = append(out, s.Messages...)
	}
	return out, nil
}

func (r *Relay) processOne(ctx context.Context, xm rd.XMessage) error {
	ev, err := parseStreamEvent(xm.Values)
	if err != nil {
		// Malformed entries are ACKed away so they cannot wedge the stream.
		if ackErr := r.ackAndDelete(ctx, xm.ID); ackErr != nil {
			return fmt.Errorf("parse failed: %v, ack failed: %w", err, ackErr)
		}
		return nil
	}

	pubCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := r.producer.Publish(pubCtx, ev); err != nil {
		return err
	}
	return r.ackAndDelete(ctx, xm.ID)
}

func (r *Relay) ackAndDelete(ctx context.Context, id string) error {
	pipe := r.rdb.TxPipeline()
	pipe.XAck(ctx, r.stream, r.group, id)
	pipe.XDel(ctx, r.stream, id)
	_, err := pipe.Exec(ctx)
	return err
}

func parseStreamEvent(values map[string]interface{}) (Event, error) {
	typ, err := getStreamString(values, "type")
	if err != nil {
		return Event{}, err
	}
	ev := Event{Type: EventType(typ)}
	ev.AuctionID, _ = getStreamString(values, "auction_id")
	ev.LotID, _ = getStreamString(values, "lot_id")
	ev.BidID, _ = getStreamString(values, "bid_id")
	ev.WinnerID, _ = getStreamString(values, "winner_id")
	ev.BidderID, _ = getStreamString(values, "bidder_id")
	ev.Detail, _ = getStreamString(values, "detail")

	if s, err := getStreamString(values, "amount"); err == nil && s != "" {
		amount, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return Event{}, fmt.Errorf("invalid amount %q", s)
		}
		ev.Amount = amount
	}
	if s, err := getStreamString(values, "is_highest"); err == nil && s != "" {
		ev.IsHighest = s == "true"
	}
	if s, err := getStreamString(values, "at"); err == nil && s != "" {
		if at, err := time.Parse(time.RFC3339Nano, s); err == nil {
			ev.At = at
		}
	}
	return ev, nil
}

func getStreamString(values map[string]interface{}, key string) (string, error) {
	v, ok := values[key]
	if !ok {
		return "", fmt.Errorf("missing field %s", key)
	}
	switch x := v.(type) {
	case string:
		return x, nil
	case []byte:
		return string(x), nil
	default:
		return "", fmt.Errorf("unsupported field type %s: %T", key, v)
	}
}
