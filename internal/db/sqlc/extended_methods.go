package db

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/katatrina/vgvault-BE/internal/money"
	"github.com/shopspring/decimal"
)

func (ns NullAuctionEndReason) MarshalJSON() ([]byte, error) {
	if !ns.Valid {
		return []byte("null"), nil
	}

	return json.Marshal(string(ns.AuctionEndReason))
}

func (ns *NullAuctionEndReason) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		ns.AuctionEndReason, ns.Valid = "", false
		return nil
	}

	var reason string
	if err := json.Unmarshal(data, &reason); err != nil {
		return fmt.Errorf("invalid auction end reason: %w", err)
	}

	ns.AuctionEndReason, ns.Valid = AuctionEndReason(reason), true
	return nil
}

func (e NotificationType) Valid() bool {
	switch e {
	case NotificationTypeOutbid,
		NotificationTypeAuctionWon,
		NotificationTypeBuyNowPurchase,
		NotificationTypeAuctionEndedSeller:
		return true
	}
	return false
}

// MinimumIncrement returns the smallest raise the next bid must add.
func (a Auction) MinimumIncrement() decimal.Decimal {
	return money.MinimumIncrement(a.StartingPrice, a.CurrentBid)
}

// MinimumBid returns the lowest amount the next bid may have.
func (a Auction) MinimumBid() decimal.Decimal {
	return money.MinimumBid(a.StartingPrice, a.CurrentBid)
}

// HasExpired reports whether bidding has closed on the clock, regardless of is_active.
func (a Auction) HasExpired(now time.Time) bool {
	return now.After(a.EndDate)
}

// DueForExpiry reports whether the sweeper should end the auction.
func (a Auction) DueForExpiry(now time.Time) bool {
	return a.IsActive && !a.EndDate.After(now)
}

func (a Auction) HasWinner() bool {
	return a.HighestBidderID != nil
}

func (a Auction) IsSeller(userID uuid.UUID) bool {
	return a.SellerID == userID
}

// CheckBid validates a bid against the auction as currently stored.
// Errors are checked in order: inactive, expired, self bid, too low.
func (a Auction) CheckBid(bidderID uuid.UUID, amount decimal.Decimal, now time.Time) error {
	if !a.IsActive {
		return ErrAuctionInactive
	}

	if a.HasExpired(now) {
		return ErrAuctionExpired
	}

	if a.IsSeller(bidderID) {
		return ErrSelfBid
	}

	minimumBid := a.MinimumBid()
	if amount.LessThan(minimumBid) {
		return &BidTooLowError{
			Amount:     amount,
			MinimumBid: minimumBid,
		}
	}

	return nil
}

// CheckBuyNow validates a buy-now purchase against the auction as currently stored.
func (a Auction) CheckBuyNow(buyerID uuid.UUID, now time.Time) error {
	if !a.IsActive {
		return ErrAuctionInactive
	}

	if a.HasExpired(now) {
		return ErrAuctionExpired
	}

	if a.IsSeller(buyerID) {
		return ErrSelfBid
	}

	// Bidding already reached the hammer price, buying now would lower current_bid.
	if a.HammerPrice == nil || a.CurrentBid.GreaterThanOrEqual(*a.HammerPrice) {
		return ErrBuyNowUnavailable
	}

	return nil
}

// CheckEndEarly validates a seller-initiated early end.
func (a Auction) CheckEndEarly(requesterID uuid.UUID) error {
	if !a.IsSeller(requesterID) {
		return ErrNotSeller
	}

	if !a.IsActive {
		return ErrAuctionInactive
	}

	return nil
}
