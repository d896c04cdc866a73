package helpers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"car-auction/internal/auctionerrors"
	model "car-auction/internal/models"
	"car-auction/utils"

	"github.com/gin-gonic/gin"
)

// HandleBindError sends a standardized JSON error for binding failures
func HandleBindError(c *gin.Context, handlerName string, err error) {
	wrappedErr := fmt.Errorf("invalid request payload: %w", err)
	utils.JSONError(c, http.StatusBadRequest, wrappedErr, "invalid request payload")
	utils.Warn(handlerName+": binding error", map[string]any{"error": err.Error()})
}

// MapErrorToHTTP maps domain/service errors to HTTP status code and message.
// Every domain error wraps one of the four category sentinels, so specific
// cases are checked first and the categories catch the rest.
func MapErrorToHTTP(err error) (int, string) {
	switch {
	case errors.Is(err, auctionerrors.ErrLotBusy):
		return http.StatusServiceUnavailable, "lot busy, retry"
	case errors.Is(err, auctionerrors.ErrBidTooLow):
		return http.StatusBadRequest, "bid amount too low"
	case errors.Is(err, auctionerrors.ErrNotFound):
		return http.StatusNotFound, "resource not found"
	case errors.Is(err, auctionerrors.ErrValidation):
		return http.StatusBadRequest, "validation failed"
	case errors.Is(err, auctionerrors.ErrConflict):
		return http.StatusConflict, "conflicting request"
	case errors.Is(err, auctionerrors.ErrInvariant):
		return http.StatusUnprocessableEntity, "operation not allowed in current state"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}

// NewBidResponse converts a ledger entry into its wire shape.
func NewBidResponse(b *model.Bid) BidResponse {
	return BidResponse{
		BidID:          b.ID,
		LotID:          b.LotID,
		BidderID:       b.BidderID,
		Amount:         b.Amount,
		Status:         string(b.Status),
		IsPreBid:       b.IsPreBid,
		IsProxy:        b.IsProxy,
		IsAutoBid:      b.IsAutoBid,
		SequenceNumber: b.SequenceNumber,
		PlacedAt:       b.PlacedAt.UTC().Format(time.RFC3339),
	}
}

// NewWinnerResponse converts a winner record into its wire shape.
func NewWinnerResponse(w *model.Winner) WinnerResponse {
	return WinnerResponse{
		WinnerID:       w.ID,
		LotID:          w.LotID,
		BidderID:       w.BidderID,
		Amount:         w.Amount,
		PaidAmount:     w.PaidAmount,
		PaymentStatus:  string(w.PaymentStatus),
		PaymentDueAt:   w.PaymentDueAt.UTC().Format(time.RFC3339),
		IsSecondChance: w.IsSecondChance,
	}
}
