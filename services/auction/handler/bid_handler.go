package handler

import (
	"net/http"

	auction "car-auction/internal/auctionService"
	"car-auction/services/auction/helpers"
	"car-auction/utils"

	"github.com/gin-gonic/gin"
)

// PlaceBidHandler handles POST /bids
func (h *AuctionHandler) PlaceBidHandler(c *gin.Context) {
	var req helpers.PlaceBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "PlaceBidHandler", err)
		return
	}

	b, err := h.service.PlaceBid(c.Request.Context(), auction.PlaceBidInput{
		LotID:        req.LotID,
		BidderID:     req.BidderID,
		Amount:       req.Amount,
		Kind:         auction.BidKind(req.Kind),
		ProxyCeiling: req.ProxyCeiling,
		ValidUntil:   req.ValidUntil,
	})
	if err != nil {
		h.fail(c, "PlaceBidHandler", err, map[string]any{
			"lot_id":    req.LotID,
			"bidder_id": req.BidderID,
			"kind":      req.Kind,
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, helpers.NewBidResponse(b), "bid recorded successfully")
	helpers.LogSuccess("PlaceBidHandler", "bid recorded successfully", map[string]any{
		"bid_id":    b.ID,
		"lot_id":    b.LotID,
		"bidder_id": b.BidderID,
		"amount":    b.Amount,
		"kind":      req.Kind,
	})
}

// RetractBidHandler handles POST /bids/:bid_id/retract
func (h *AuctionHandler) RetractBidHandler(c *gin.Context) {
	bidID := c.Param("bid_id")
	var req helpers.BidOwnerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "RetractBidHandler", err)
		return
	}

	b, err := h.service.RetractBid(c.Request.Context(), bidID, req.BidderID)
	if err != nil {
		h.fail(c, "RetractBidHandler", err, map[string]any{"bid_id": bidID, "bidder_id": req.BidderID})
		return
	}
	utils.JSONResponse(c, http.StatusOK, helpers.NewBidResponse(b), "bid retracted successfully")
}

// InvalidateBidHandler handles POST /bids/:bid_id/invalidate
func (h *AuctionHandler) InvalidateBidHandler(c *gin.Context) {
	bidID := c.Param("bid_id")
	b, err := h.service.InvalidateBid(c.Request.Context(), bidID)
	if err != nil {
		h.fail(c, "InvalidateBidHandler", err, map[string]any{"bid_id": bidID})
		return
	}
	utils.JSONResponse(c, http.StatusOK, helpers.NewBidResponse(b), "bid invalidated successfully")
}

// CancelProxyHandler handles POST /bids/:bid_id/cancel-proxy
func (h *AuctionHandler) CancelProxyHandler(c *gin.Context) {
	bidID := c.Param("bid_id")
	var req helpers.BidOwnerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CancelProxyHandler", err)
		return
	}

	b, err := h.service.CancelProxy(c.Request.Context(), bidID, req.BidderID)
	if err != nil {
		h.fail(c, "CancelProxyHandler", err, map[string]any{"bid_id": bidID, "bidder_id": req.BidderID})
		return
	}
	utils.JSONResponse(c, http.StatusOK, helpers.NewBidResponse(b), "proxy cancelled successfully")
}

// UpdateBidAmountHandler handles POST /bids/:bid_id/amount
func (h *AuctionHandler) UpdateBidAmountHandler(c *gin.Context) {
	bidID := c.Param("bid_id")
	var req helpers.UpdateBidAmountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "UpdateBidAmountHandler", err)
		return
	}

	b, err := h.service.UpdateBidAmount(c.Request.Context(), bidID, req.BidderID, req.Amount)
	if err != nil {
		h.fail(c, "UpdateBidAmountHandler", err, map[string]any{"bid_id": bidID, "amount": req.Amount})
		return
	}
	utils.JSONResponse(c, http.StatusOK, helpers.NewBidResponse(b), "bid amount updated successfully")
}

// GetBidsByLotHandler handles GET /lots/:lot_id/bids
func (h *AuctionHandler) GetBidsByLotHandler(c *gin.Context) {
	lotID := c.Param("lot_id")
	bids, err := h.service.GetBidsForLot(c.Request.Context(), lotID)
	if err != nil {
		h.fail(c, "GetBidsByLotHandler", err, map[string]any{"lot_id": lotID})
		return
	}

	resp := make([]helpers.BidResponse, 0, len(bids))
	for _, b := range bids {
		resp = append(resp, helpers.NewBidResponse(b))
	}
	utils.JSONResponse(c, http.StatusOK, resp, "bids retrieved successfully")
	helpers.LogSuccess("GetBidsByLotHandler", "bids retrieved successfully", map[string]any{
		"lot_id": lotID,
		"count":  len(resp),
	})
}

// GetHighestBidHandler handles GET /lots/:lot_id/highest
func (h *AuctionHandler) GetHighestBidHandler(c *gin.Context) {
	lotID := c.Param("lot_id")
	b, err := h.service.GetHighestBid(c.Request.Context(), lotID)
	if err != nil {
		h.fail(c, "GetHighestBidHandler", err, map[string]any{"lot_id": lotID})
		return
	}
	utils.JSONResponse(c, http.StatusOK, helpers.NewBidResponse(b), "highest bid retrieved successfully")
}

// GetWinnerHandler handles GET /lots/:lot_id/winner
func (h *AuctionHandler) GetWinnerHandler(c *gin.Context) {
	lotID := c.Param("lot_id")
	w, err := h.service.GetWinnerByLot(c.Request.Context(), lotID)
	if err != nil {
		h.fail(c, "GetWinnerHandler", err, map[string]any{"lot_id": lotID})
		return
	}
	utils.JSONResponse(c, http.StatusOK, helpers.NewWinnerResponse(w), "winner retrieved successfully")
}
