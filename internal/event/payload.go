package event

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type BidUpdatePayload struct {
	AuctionID            uuid.UUID       `json:"auction_id"`
	CurrentBid           decimal.Decimal `json:"current_bid"`
	HighestBidderDisplay string          `json:"highest_bidder_display"`
	MinimumBid           decimal.Decimal `json:"minimum_bid"`
	BidAt                time.Time       `json:"bid_at"`
}

// AuctionEndedPayload is sent for both auctionEnded and auctionEndedEarly.
type AuctionEndedPayload struct {
	AuctionID  uuid.UUID       `json:"auction_id"`
	Winner     string          `json:"winner"`
	FinalPrice decimal.Decimal `json:"final_price"`
	Message    string          `json:"message,omitempty"`
}

// AuctionDeletedPayload is sent for both auctionDeleted and auctionCompletelyDeleted.
type AuctionDeletedPayload struct {
	AuctionID uuid.UUID `json:"auction_id"`
	Message   string    `json:"message"`
}

type NewNotificationPayload struct {
	ID           uuid.UUID  `json:"id"`
	Type         string     `json:"type"`
	Title        string     `json:"title"`
	Message      string     `json:"message"`
	AuctionID    *uuid.UUID `json:"auction_id"`
	AuctionTitle string     `json:"auction_title"`
	IsRead       bool       `json:"is_read"`
	CreatedAt    time.Time  `json:"created_at"`
}
