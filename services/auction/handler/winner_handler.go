package handler

import (
	"context"
	"net/http"

	model "car-auction/internal/models"
	"car-auction/services/auction/helpers"
	"car-auction/utils"

	"github.com/gin-gonic/gin"
)

// RecordPaymentHandler handles POST /winners/:winner_id/payments
func (h *AuctionHandler) RecordPaymentHandler(c *gin.Context) {
	winnerID := c.Param("winner_id")
	var req helpers.PaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "RecordPaymentHandler", err)
		return
	}

	w, err := h.service.RecordPayment(c.Request.Context(), winnerID, req.Amount)
	if err != nil {
		h.fail(c, "RecordPaymentHandler", err, map[string]any{"winner_id": winnerID, "amount": req.Amount})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.NewWinnerResponse(w), "payment recorded successfully")
	helpers.LogSuccess("RecordPaymentHandler", "payment recorded successfully", map[string]any{
		"winner_id":      winnerID,
		"amount":         req.Amount,
		"payment_status": string(w.PaymentStatus),
	})
}

// ExtendDueDateHandler handles POST /winners/:winner_id/extend-due
func (h *AuctionHandler) ExtendDueDateHandler(c *gin.Context) {
	winnerID := c.Param("winner_id")
	var req helpers.ExtendDueDateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "ExtendDueDateHandler", err)
		return
	}

	w, err := h.service.ExtendPaymentDueDate(c.Request.Context(), winnerID, req.Until)
	if err != nil {
		h.fail(c, "ExtendDueDateHandler", err, map[string]any{"winner_id": winnerID})
		return
	}
	utils.JSONResponse(c, http.StatusOK, helpers.NewWinnerResponse(w), "payment due date extended")
}

// winnerActionHandler wraps the single-verb winner transitions.
func (h *AuctionHandler) winnerActionHandler(name, message string, op func(context.Context, string) (*model.Winner, error)) gin.HandlerFunc {
	return func(c *gin.Context) {
		winnerID := c.Param("winner_id")
		w, err := op(c.Request.Context(), winnerID)
		if err != nil {
			h.fail(c, name, err, map[string]any{"winner_id": winnerID})
			return
		}
		utils.JSONResponse(c, http.StatusOK, helpers.NewWinnerResponse(w), message)
		helpers.LogSuccess(name, message, map[string]any{
			"winner_id":      w.ID,
			"payment_status": string(w.PaymentStatus),
		})
	}
}

func (h *AuctionHandler) CancelWinnerHandler() gin.HandlerFunc {
	return h.winnerActionHandler("CancelWinnerHandler", "winner cancelled", h.service.CancelWinner)
}

func (h *AuctionHandler) FailWinnerHandler() gin.HandlerFunc {
	return h.winnerActionHandler("FailWinnerHandler", "winner marked failed", h.service.MarkWinnerFailed)
}

func (h *AuctionHandler) RemindWinnerHandler() gin.HandlerFunc {
	return h.winnerActionHandler("RemindWinnerHandler", "payment reminder sent", h.service.SendPaymentReminder)
}

// lotActionHandler wraps the single-verb post-sale lot transitions.
func (h *AuctionHandler) lotActionHandler(name, message string, op func(context.Context, string) (*model.Lot, error)) gin.HandlerFunc {
	return func(c *gin.Context) {
		lotID := c.Param("lot_id")
		l, err := op(c.Request.Context(), lotID)
		if err != nil {
			h.fail(c, name, err, map[string]any{"lot_id": lotID})
			return
		}
		utils.JSONResponse(c, http.StatusOK, l, message)
		helpers.LogSuccess(name, message, map[string]any{
			"lot_id":    l.ID,
			"condition": string(l.Condition),
		})
	}
}

func (h *AuctionHandler) ApproveWinnerHandler() gin.HandlerFunc {
	return h.lotActionHandler("ApproveWinnerHandler", "winner approved", h.service.ApproveWinner)
}

func (h *AuctionHandler) RejectWinnerHandler() gin.HandlerFunc {
	return h.lotActionHandler("RejectWinnerHandler", "winner rejected", h.service.RejectWinner)
}

func (h *AuctionHandler) DepositPaidHandler() gin.HandlerFunc {
	return h.lotActionHandler("DepositPaidHandler", "deposit recorded", h.service.MarkDepositPaid)
}

func (h *AuctionHandler) CompletePaymentHandler() gin.HandlerFunc {
	return h.lotActionHandler("CompletePaymentHandler", "payment completed", h.service.CompletePayment)
}

func (h *AuctionHandler) CompleteSaleHandler() gin.HandlerFunc {
	return h.lotActionHandler("CompleteSaleHandler", "sale completed", h.service.CompleteSale)
}

// SecondChanceHandler handles POST /lots/:lot_id/second-chance
func (h *AuctionHandler) SecondChanceHandler(c *gin.Context) {
	lotID := c.Param("lot_id")
	w, err := h.service.CreateSecondChanceWinner(c.Request.Context(), lotID)
	if err != nil {
		h.fail(c, "SecondChanceHandler", err, map[string]any{"lot_id": lotID})
		return
	}
	utils.JSONResponse(c, http.StatusCreated, helpers.NewWinnerResponse(w), "second chance winner assigned")
	helpers.LogSuccess("SecondChanceHandler", "second chance winner assigned", map[string]any{
		"lot_id":    lotID,
		"winner_id": w.ID,
		"bidder_id": w.BidderID,
	})
}
