package repository

import (
	"context"

	model "car-auction/internal/models"
)

// AuctionDB is the persistence contract for the auction engine. Every Save*
// method enforces optimistic concurrency: the aggregate's version must match
// the stored version, and is bumped on success. The bid ledger is
// append-only apart from status/amount updates through SaveBid.
type AuctionDB interface {
	CreateAuction(ctx context.Context, a *model.Auction) error
	GetAuction(ctx context.Context, id string) (*model.Auction, error)
	SaveAuction(ctx context.Context, a *model.Auction) error
	ListAuctionsByStatus(ctx context.Context, status model.AuctionStatus) ([]*model.Auction, error)

	CreateLot(ctx context.Context, l *model.Lot) error
	GetLot(ctx context.Context, id string) (*model.Lot, error)
	SaveLot(ctx context.Context, l *model.Lot) error
	GetLotsByAuction(ctx context.Context, auctionID string) ([]*model.Lot, error)

	RecordBid(ctx context.Context, b *model.Bid) error
	GetBid(ctx context.Context, id string) (*model.Bid, error)
	SaveBid(ctx context.Context, b *model.Bid) error
	GetBidsByLot(ctx context.Context, lotID string) ([]*model.Bid, error)

	CreateWinner(ctx context.Context, w *model.Winner) error
	GetWinner(ctx context.Context, id string) (*model.Winner, error)
	GetWinnerByLot(ctx context.Context, lotID string) (*model.Winner, error)
	SaveWinner(ctx context.Context, w *model.Winner) error
}
