package repository

import (
	"context"
	"errors"
	"fmt"

	"car-auction/internal/auctionerrors"
	model "car-auction/internal/models"

	"gorm.io/gorm"
)

// GormRepo is the SQL-backed implementation of AuctionDB. Optimistic
// concurrency is enforced with a version column: every save is a
// conditional update on (id, version) and bumps the version on success.
type GormRepo struct {
	db *gorm.DB
}

// NewGormRepo migrates the four aggregate tables and returns the repo.
func NewGormRepo(db *gorm.DB) (*GormRepo, error) {
	if err := db.AutoMigrate(&model.Auction{}, &model.Lot{}, &model.Bid{}, &model.Winner{}); err != nil {
		return nil, fmt.Errorf("repository: migrate: %w", err)
	}
	return &GormRepo{db: db}, nil
}

func (r *GormRepo) create(ctx context.Context, entity any, kind string) error {
	if err := r.db.WithContext(ctx).Create(entity).Error; err != nil {
		return fmt.Errorf("create %s: %w", kind, err)
	}
	return nil
}

// saveVersioned performs the conditional update. table is a zero value used
// to address the table, entity carries the new field values; version points
// at the entity's version field and is bumped in place on success.
func (r *GormRepo) saveVersioned(ctx context.Context, table any, id string, version *int, entity any, kind string) error {
	oldVersion := *version
	*version = oldVersion + 1
	res := r.db.WithContext(ctx).
		Model(table).
		Where("id = ? AND version = ?", id, oldVersion).
		Select("*").
		Omit("id", "created_at").
		Updates(entity)
	if res.Error != nil {
		*version = oldVersion
		return fmt.Errorf("save %s %s: %w", kind, id, res.Error)
	}
	if res.RowsAffected == 0 {
		*version = oldVersion
		return fmt.Errorf("save %s %s: %w", kind, id, auctionerrors.ErrStaleVersion)
	}
	return nil
}

func (r *GormRepo) CreateAuction(ctx context.Context, a *model.Auction) error {
	return r.create(ctx, a, "auction")
}

func (r *GormRepo) GetAuction(ctx context.Context, id string) (*model.Auction, error) {
	var a model.Auction
	err := r.db.WithContext(ctx).First(&a, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("get auction %s: %w", id, auctionerrors.ErrAuctionNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get auction %s: %w", id, err)
	}
	return &a, nil
}

func (r *GormRepo) SaveAuction(ctx context.Context, a *model.Auction) error {
	return r.saveVersioned(ctx, &model.Auction{}, a.ID, &a.Version, a, "auction")
}

func (r *GormRepo) ListAuctionsByStatus(ctx context.Context, status model.AuctionStatus) ([]*model.Auction, error) {
	var out []*model.Auction
	if err := r.db.WithContext(ctx).Where("status = ?", status).Order("id").Find(&out).Error; err != nil {
		return nil, fmt.Errorf("list auctions by status %s: %w", status, err)
	}
	return out, nil
}

func (r *GormRepo) CreateLot(ctx context.Context, l *model.Lot) error {
	return r.create(ctx, l, "lot")
}

func (r *GormRepo) GetLot(ctx context.Context, id string) (*model.Lot, error) {
	var l model.Lot
	err := r.db.WithContext(ctx).First(&l, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("get lot %s: %w", id, auctionerrors.ErrLotNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get lot %s: %w", id, err)
	}
	return &l, nil
}

func (r *GormRepo) SaveLot(ctx context.Context, l *model.Lot) error {
	return r.saveVersioned(ctx, &model.Lot{}, l.ID, &l.Version, l, "lot")
}

func (r *GormRepo) GetLotsByAuction(ctx context.Context, auctionID string) ([]*model.Lot, error) {
	var out []*model.Lot
	if err := r.db.WithContext(ctx).Where("auction_id = ?", auctionID).Order("lot_number").Find(&out).Error; err != nil {
		return nil, fmt.Errorf("get lots for auction %s: %w", auctionID, err)
	}
	return out, nil
}

func (r *GormRepo) RecordBid(ctx context.Context, b *model.Bid) error {
	return r.create(ctx, b, "bid")
}

func (r *GormRepo) GetBid(ctx context.Context, id string) (*model.Bid, error) {
	var b model.Bid
	err := r.db.WithContext(ctx).First(&b, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("get bid %s: %w", id, auctionerrors.ErrBidNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get bid %s: %w", id, err)
	}
	return &b, nil
}

func (r *GormRepo) SaveBid(ctx context.Context, b *model.Bid) error {
	return r.saveVersioned(ctx, &model.Bid{}, b.ID, &b.Version, b, "bid")
}

func (r *GormRepo) GetBidsByLot(ctx context.Context, lotID string) ([]*model.Bid, error) {
	var out []*model.Bid
	if err := r.db.WithContext(ctx).Where("lot_id = ?", lotID).Order("sequence_number").Find(&out).Error; err != nil {
		return nil, fmt.Errorf("get bids for lot %s: %w", lotID, err)
	}
	return out, nil
}

func (r *GormRepo) CreateWinner(ctx context.Context, w *model.Winner) error {
	return r.create(ctx, w, "winner")
}

func (r *GormRepo) GetWinner(ctx context.Context, id string) (*model.Winner, error) {
	var w model.Winner
	err := r.db.WithContext(ctx).First(&w, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("get winner %s: %w", id, auctionerrors.ErrWinnerNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get winner %s: %w", id, err)
	}
	return &w, nil
}

func (r *GormRepo) GetWinnerByLot(ctx context.Context, lotID string) (*model.Winner, error) {
	var w model.Winner
	err := r.db.WithContext(ctx).
		Where("lot_id = ?", lotID).
		Order("assigned_at DESC").
		First(&w).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("get winner for lot %s: %w", lotID, auctionerrors.ErrWinnerNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get winner for lot %s: %w", lotID, err)
	}
	return &w, nil
}

func (r *GormRepo) SaveWinner(ctx context.Context, w *model.Winner) error {
	return r.saveVersioned(ctx, &model.Winner{}, w.ID, &w.Version, w, "winner")
}
