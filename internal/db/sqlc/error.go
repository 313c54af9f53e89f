package db

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/katatrina/vgvault-BE/internal/money"
	"github.com/shopspring/decimal"
)

const (
	UniqueViolationCode     = "23505"
	ForeignKeyViolationCode = "23503"
	CheckViolationCode      = "23514"
)

const (
	UniqueUsernameConstraint  = "users_username_key"
	UniqueEmailConstraint     = "users_email_key"
	UniqueBidAmountConstraint = "bids_auction_amount_key"
)

var ErrRecordNotFound = pgx.ErrNoRows

var (
	ErrAuctionInactive   = errors.New("auction is no longer active")
	ErrAuctionExpired    = fmt.Errorf("%w: end time has passed", ErrAuctionInactive)
	ErrAuctionNotDue     = errors.New("auction end time has not been reached")
	ErrSelfBid           = errors.New("sellers cannot bid on or buy their own auction")
	ErrBidTooLow         = errors.New("bid amount is below the minimum bid")
	ErrBuyNowUnavailable = errors.New("buy now is not available for this auction")
	ErrNotSeller         = errors.New("only the seller can end this auction")
)

// BidTooLowError carries the minimum the rejected bid had to reach.
type BidTooLowError struct {
	Amount     decimal.Decimal
	MinimumBid decimal.Decimal
}

func (e *BidTooLowError) Error() string {
	return fmt.Sprintf("bid of %s is too low, minimum bid is %s", money.Format(e.Amount), money.Format(e.MinimumBid))
}

func (e *BidTooLowError) Unwrap() error {
	return ErrBidTooLow
}

// ErrorDescription returns the error code and constraint name from a Postgres error.
func ErrorDescription(err error) (errCode string, constraintName string) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code, pgErr.ConstraintName
	}

	return
}
