package auction

import (
	"context"
	"time"

	model "car-auction/internal/models"
	"car-auction/utils"
)

// RotationDriver advances running auctions when a lot's countdown runs out.
// It rotates through RotateIfExpired, which re-checks the countdown under
// the lot lock; operators can still force a rotation with MoveToNextCar.
type RotationDriver struct {
	svc      *AuctionService
	interval time.Duration
}

func NewRotationDriver(svc *AuctionService, interval time.Duration) *RotationDriver {
	if interval <= 0 {
		interval = time.Second
	}
	return &RotationDriver{svc: svc, interval: interval}
}

// Run polls until the context is cancelled.
func (d *RotationDriver) Run(ctx context.Context) {
	ticker := time.NewTicker(d.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			d.Tick(ctx)
		}
	}
}

// Tick runs one rotation sweep over every running auction.
func (d *RotationDriver) Tick(ctx context.Context) {
	auctions, err := d.svc.repo.ListAuctionsByStatus(ctx, model.AuctionRunning)
	if err != nil {
		utils.Warn("rotation: list running auctions", map[string]any{"error": err.Error()})
		return
	}
	for _, a := range auctions {
		if a.CurrentLotID == "" {
			continue
		}
		l, err := d.svc.repo.GetLot(ctx, a.CurrentLotID)
		if err != nil {
			utils.Warn("rotation: load current lot", map[string]any{
				"auction_id": a.ID,
				"lot_id":     a.CurrentLotID,
				"error":      err.Error(),
			})
			continue
		}
		if !l.IsTimeExpired(d.svc.clk.Now(), a.CountdownSeconds) {
			continue
		}
		if _, err := d.svc.RotateIfExpired(ctx, a.ID); err != nil {
			utils.Warn("rotation: move to next car", map[string]any{
				"auction_id": a.ID,
				"lot_id":     a.CurrentLotID,
				"error":      err.Error(),
			})
		}
	}
}
