package auctionerrors

import (
	"errors"
	"fmt"
)

// Category errors. Every specific error below wraps exactly one of these,
// so callers can match either the category or the specific failure with
// errors.Is.
var (
	ErrValidation = errors.New("validation failed")
	ErrConflict   = errors.New("conflict")
	ErrInvariant  = errors.New("invariant violation")
	ErrNotFound   = errors.New("not found")
)

// Repository-level errors
var (
	ErrAuctionNotFound = fmt.Errorf("%w: auction does not exist", ErrNotFound)
	ErrLotNotFound     = fmt.Errorf("%w: lot does not exist", ErrNotFound)
	ErrBidNotFound     = fmt.Errorf("%w: bid does not exist", ErrNotFound)
	ErrWinnerNotFound  = fmt.Errorf("%w: winner does not exist", ErrNotFound)
	ErrStaleVersion    = fmt.Errorf("%w: aggregate version is stale, refetch and retry", ErrConflict)
	ErrDuplicateLot    = fmt.Errorf("%w: lot number already taken in this auction", ErrConflict)
)

// business logic errors
var (
	ErrInvalidBid        = fmt.Errorf("%w: invalid bid", ErrValidation)
	ErrBidTooLow         = fmt.Errorf("%w: bid amount below next minimum", ErrValidation)
	ErrLotNotBiddable    = fmt.Errorf("%w: lot is not open for this bid kind", ErrValidation)
	ErrPaymentExceeds    = fmt.Errorf("%w: payment would exceed amount due", ErrValidation)
	ErrProxyConflict     = fmt.Errorf("%w: bidder already holds an active proxy on this lot", ErrConflict)
	ErrLotBusy           = fmt.Errorf("%w: lot busy, retry", ErrConflict)
	ErrLotClosed         = fmt.Errorf("%w: lot already closed", ErrConflict)
	ErrIllegalTransition = fmt.Errorf("%w: illegal state transition", ErrInvariant)
	ErrNotOwner          = fmt.Errorf("%w: bid belongs to another bidder", ErrConflict)
)
