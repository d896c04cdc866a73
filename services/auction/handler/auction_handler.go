package handler

import (
	"context"
	"fmt"
	"net/http"
	"time"

	auction "car-auction/internal/auctionService"
	model "car-auction/internal/models"
	"car-auction/services/auction/helpers"
	"car-auction/utils"

	"github.com/gin-gonic/gin"
)

type AuctionServiceInterface interface {
	CreateAuction(ctx context.Context, name, locationID string, countdownSeconds int) (*model.Auction, error)
	AddLot(ctx context.Context, auctionID, vehicleID string, lotNumber int, startingPrice float64, reservePrice *float64, minPreBid float64) (*model.Lot, error)
	ScheduleAuction(ctx context.Context, auctionID string, start, end time.Time) (*model.Auction, error)
	MakeAuctionReady(ctx context.Context, auctionID string) (*model.Auction, error)
	StartAuction(ctx context.Context, auctionID string) (*model.Auction, error)
	MoveToNextCar(ctx context.Context, auctionID string) (*model.Auction, error)
	EndAuction(ctx context.Context, auctionID string) (*model.Auction, error)
	ExtendAuction(ctx context.Context, auctionID string, minutes int) (*model.Auction, error)
	CancelAuction(ctx context.Context, auctionID string) (*model.Auction, error)
	SettleAuction(ctx context.Context, auctionID string) (*model.Auction, error)
	GetAuction(ctx context.Context, auctionID string) (*model.Auction, error)
	ListAuctions(ctx context.Context, status model.AuctionStatus) ([]*model.Auction, error)
	GetLot(ctx context.Context, lotID string) (*model.Lot, error)
	GetLotsByAuction(ctx context.Context, auctionID string) ([]*model.Lot, error)

	PlaceBid(ctx context.Context, in auction.PlaceBidInput) (*model.Bid, error)
	RetractBid(ctx context.Context, bidID, bidderID string) (*model.Bid, error)
	InvalidateBid(ctx context.Context, bidID string) (*model.Bid, error)
	CancelProxy(ctx context.Context, bidID, bidderID string) (*model.Bid, error)
	UpdateBidAmount(ctx context.Context, bidID, bidderID string, amount float64) (*model.Bid, error)
	GetBidsForLot(ctx context.Context, lotID string) ([]*model.Bid, error)
	GetHighestBid(ctx context.Context, lotID string) (*model.Bid, error)
	GetWinnerByLot(ctx context.Context, lotID string) (*model.Winner, error)

	RecordPayment(ctx context.Context, winnerID string, amount float64) (*model.Winner, error)
	ApproveWinner(ctx context.Context, lotID string) (*model.Lot, error)
	RejectWinner(ctx context.Context, lotID string) (*model.Lot, error)
	MarkDepositPaid(ctx context.Context, lotID string) (*model.Lot, error)
	CompletePayment(ctx context.Context, lotID string) (*model.Lot, error)
	CompleteSale(ctx context.Context, lotID string) (*model.Lot, error)
	CancelWinner(ctx context.Context, winnerID string) (*model.Winner, error)
	MarkWinnerFailed(ctx context.Context, winnerID string) (*model.Winner, error)
	ExtendPaymentDueDate(ctx context.Context, winnerID string, until time.Time) (*model.Winner, error)
	SendPaymentReminder(ctx context.Context, winnerID string) (*model.Winner, error)
	CreateSecondChanceWinner(ctx context.Context, lotID string) (*model.Winner, error)
}

type AuctionHandler struct {
	service AuctionServiceInterface
}

func NewAuctionHandler(service AuctionServiceInterface) *AuctionHandler {
	return &AuctionHandler{service: service}
}

func (h *AuctionHandler) fail(c *gin.Context, handlerName string, err error, ctx map[string]any) {
	status, message := helpers.MapErrorToHTTP(err)
	utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
	ctx["error"] = err.Error()
	utils.Warn(handlerName+": request failed", ctx)
}

// CreateAuctionHandler handles POST /auctions
func (h *AuctionHandler) CreateAuctionHandler(c *gin.Context) {
	var req helpers.CreateAuctionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CreateAuctionHandler", err)
		return
	}

	a, err := h.service.CreateAuction(c.Request.Context(), req.Name, req.LocationID, req.CountdownSeconds)
	if err != nil {
		h.fail(c, "CreateAuctionHandler", err, map[string]any{"name": req.Name})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, a, "auction created successfully")
	helpers.LogSuccess("CreateAuctionHandler", "auction created successfully", map[string]any{
		"auction_id": a.ID,
		"name":       a.Name,
	})
}

// GetAuctionHandler handles GET /auctions/:auction_id
func (h *AuctionHandler) GetAuctionHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")
	a, err := h.service.GetAuction(c.Request.Context(), auctionID)
	if err != nil {
		h.fail(c, "GetAuctionHandler", err, map[string]any{"auction_id": auctionID})
		return
	}
	utils.JSONResponse(c, http.StatusOK, a, "auction retrieved successfully")
}

// ScheduleAuctionHandler handles POST /auctions/:auction_id/schedule
func (h *AuctionHandler) ScheduleAuctionHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")
	var req helpers.ScheduleAuctionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "ScheduleAuctionHandler", err)
		return
	}

	a, err := h.service.ScheduleAuction(c.Request.Context(), auctionID, req.StartTime, req.EndTime)
	if err != nil {
		h.fail(c, "ScheduleAuctionHandler", err, map[string]any{"auction_id": auctionID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, a, "auction scheduled successfully")
	helpers.LogSuccess("ScheduleAuctionHandler", "auction scheduled successfully", map[string]any{
		"auction_id": a.ID,
		"start_time": req.StartTime,
	})
}

// lifecycleHandler wraps the single-verb auction transitions.
func (h *AuctionHandler) lifecycleHandler(name, message string, op func(context.Context, string) (*model.Auction, error)) gin.HandlerFunc {
	return func(c *gin.Context) {
		auctionID := c.Param("auction_id")
		a, err := op(c.Request.Context(), auctionID)
		if err != nil {
			h.fail(c, name, err, map[string]any{"auction_id": auctionID})
			return
		}
		utils.JSONResponse(c, http.StatusOK, a, message)
		helpers.LogSuccess(name, message, map[string]any{
			"auction_id": a.ID,
			"status":     string(a.Status),
		})
	}
}

func (h *AuctionHandler) ReadyAuctionHandler() gin.HandlerFunc {
	return h.lifecycleHandler("ReadyAuctionHandler", "auction marked ready", h.service.MakeAuctionReady)
}

func (h *AuctionHandler) StartAuctionHandler() gin.HandlerFunc {
	return h.lifecycleHandler("StartAuctionHandler", "auction started", h.service.StartAuction)
}

func (h *AuctionHandler) NextCarHandler() gin.HandlerFunc {
	return h.lifecycleHandler("NextCarHandler", "moved to next car", h.service.MoveToNextCar)
}

func (h *AuctionHandler) EndAuctionHandler() gin.HandlerFunc {
	return h.lifecycleHandler("EndAuctionHandler", "auction ended", h.service.EndAuction)
}

func (h *AuctionHandler) CancelAuctionHandler() gin.HandlerFunc {
	return h.lifecycleHandler("CancelAuctionHandler", "auction cancelled", h.service.CancelAuction)
}

func (h *AuctionHandler) SettleAuctionHandler() gin.HandlerFunc {
	return h.lifecycleHandler("SettleAuctionHandler", "auction settled", h.service.SettleAuction)
}

// ExtendAuctionHandler handles POST /auctions/:auction_id/extend
func (h *AuctionHandler) ExtendAuctionHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")
	var req helpers.ExtendAuctionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "ExtendAuctionHandler", err)
		return
	}

	a, err := h.service.ExtendAuction(c.Request.Context(), auctionID, req.Minutes)
	if err != nil {
		h.fail(c, "ExtendAuctionHandler", err, map[string]any{"auction_id": auctionID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, a, "auction extended successfully")
}

// AddLotHandler handles POST /auctions/:auction_id/lots
func (h *AuctionHandler) AddLotHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")
	var req helpers.AddLotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "AddLotHandler", err)
		return
	}

	l, err := h.service.AddLot(c.Request.Context(), auctionID, req.VehicleID, req.LotNumber, req.StartingPrice, req.ReservePrice, req.MinimumPreBid)
	if err != nil {
		h.fail(c, "AddLotHandler", err, map[string]any{
			"auction_id": auctionID,
			"lot_number": req.LotNumber,
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, l, "lot added successfully")
	helpers.LogSuccess("AddLotHandler", "lot added successfully", map[string]any{
		"auction_id": auctionID,
		"lot_id":     l.ID,
		"lot_number": l.LotNumber,
	})
}

// ListAuctionsHandler handles GET /auctions
func (h *AuctionHandler) ListAuctionsHandler(c *gin.Context) {
	status := model.AuctionStatus(c.DefaultQuery("status", string(model.AuctionRunning)))
	auctions, err := h.service.ListAuctions(c.Request.Context(), status)
	if err != nil {
		h.fail(c, "ListAuctionsHandler", err, map[string]any{"status": string(status)})
		return
	}
	if auctions == nil {
		auctions = []*model.Auction{}
	}
	utils.JSONResponse(c, http.StatusOK, auctions, "auctions retrieved successfully")
}

// GetLotsHandler handles GET /auctions/:auction_id/lots
func (h *AuctionHandler) GetLotsHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")
	lots, err := h.service.GetLotsByAuction(c.Request.Context(), auctionID)
	if err != nil {
		h.fail(c, "GetLotsHandler", err, map[string]any{"auction_id": auctionID})
		return
	}
	if lots == nil {
		lots = []*model.Lot{}
	}
	utils.JSONResponse(c, http.StatusOK, lots, "lots retrieved successfully")
}

// GetLotHandler handles GET /lots/:lot_id
func (h *AuctionHandler) GetLotHandler(c *gin.Context) {
	lotID := c.Param("lot_id")
	l, err := h.service.GetLot(c.Request.Context(), lotID)
	if err != nil {
		h.fail(c, "GetLotHandler", err, map[string]any{"lot_id": lotID})
		return
	}
	utils.JSONResponse(c, http.StatusOK, l, "lot retrieved successfully")
}
