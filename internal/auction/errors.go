package auction

import (
	"errors"

	"github.com/katatrina/vgvault-BE/internal/apperror"
	db "github.com/katatrina/vgvault-BE/internal/db/sqlc"
)

// toAppError turns store errors into the kinds reported to clients.
func toAppError(err error) error {
	if err == nil {
		return nil
	}

	var tooLow *db.BidTooLowError
	switch {
	case errors.Is(err, db.ErrRecordNotFound):
		return apperror.Wrap(apperror.KindNotFound, "auction not found", err)
	case errors.Is(err, db.ErrAuctionExpired):
		return apperror.Wrap(apperror.KindConflict, "auction has ended", err)
	case errors.Is(err, db.ErrAuctionInactive):
		return apperror.Wrap(apperror.KindConflict, "auction is no longer active", err)
	case errors.Is(err, db.ErrSelfBid):
		return apperror.Wrap(apperror.KindConflict, "you cannot bid on or buy your own auction", err)
	case errors.As(err, &tooLow):
		return apperror.Wrap(apperror.KindConflict, tooLow.Error(), err)
	case errors.Is(err, db.ErrBuyNowUnavailable):
		return apperror.Wrap(apperror.KindConflict, "buy now is not available for this auction", err)
	case errors.Is(err, db.ErrNotSeller):
		return apperror.Wrap(apperror.KindForbidden, "you can only end your own auctions", err)
	}

	errCode, constraintName := db.ErrorDescription(err)
	if errCode == db.UniqueViolationCode && constraintName == db.UniqueBidAmountConstraint {
		return apperror.Wrap(apperror.KindConflict, "a bid with this amount was already placed", err)
	}

	return apperror.Internal(err)
}

// rejectReason labels a failed bid or purchase for metrics.
func rejectReason(err error) string {
	switch {
	case errors.Is(err, db.ErrRecordNotFound):
		return "not_found"
	case errors.Is(err, db.ErrAuctionExpired):
		return "expired"
	case errors.Is(err, db.ErrAuctionInactive):
		return "inactive"
	case errors.Is(err, db.ErrSelfBid):
		return "self_bid"
	case errors.Is(err, db.ErrBidTooLow):
		return "bid_too_low"
	case errors.Is(err, db.ErrBuyNowUnavailable):
		return "buy_now_unavailable"
	}

	if errCode, _ := db.ErrorDescription(err); errCode == db.UniqueViolationCode {
		return "duplicate_amount"
	}

	return "internal"
}
