package db

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// UserIdentity is the public face of a user shown next to auctions and bids.
type UserIdentity struct {
	ID          uuid.UUID `json:"id"`
	Username    string    `json:"username"`
	DisplayName string    `json:"display_name"`
}

func (u User) Identity() UserIdentity {
	return UserIdentity{
		ID:          u.ID,
		Username:    u.Username,
		DisplayName: u.DisplayName,
	}
}

type AuctionBidDetails struct {
	ID        uuid.UUID       `json:"id"`
	Bidder    UserIdentity    `json:"bidder"`
	Amount    decimal.Decimal `json:"amount"`
	CreatedAt time.Time       `json:"created_at"`
}

// AuctionDetails is an auction with seller, highest bidder and bid history resolved.
type AuctionDetails struct {
	Auction
	Seller           UserIdentity        `json:"seller"`
	HighestBidder    *UserIdentity       `json:"highest_bidder"`
	Bids             []AuctionBidDetails `json:"bids"`
	MinimumBid       decimal.Decimal     `json:"minimum_bid"`
	MinimumIncrement decimal.Decimal     `json:"minimum_increment"`
}

// NewAuctionDetails assembles the details view from the joined rows.
func NewAuctionDetails(row GetAuctionDetailsRow, bids []ListAuctionBidsRow) AuctionDetails {
	details := AuctionDetails{
		Auction: row.Auction,
		Seller: UserIdentity{
			ID:          row.Auction.SellerID,
			Username:    row.SellerUsername,
			DisplayName: row.SellerDisplayName,
		},
		Bids:             make([]AuctionBidDetails, len(bids)),
		MinimumBid:       row.Auction.MinimumBid(),
		MinimumIncrement: row.Auction.MinimumIncrement(),
	}

	if row.Auction.HighestBidderID != nil && row.HighestBidderUsername != nil {
		details.HighestBidder = &UserIdentity{
			ID:          *row.Auction.HighestBidderID,
			Username:    *row.HighestBidderUsername,
			DisplayName: derefString(row.HighestBidderDisplayName),
		}
	}

	for i, b := range bids {
		details.Bids[i] = AuctionBidDetails{
			ID: b.ID,
			Bidder: UserIdentity{
				ID:          b.BidderID,
				Username:    b.BidderUsername,
				DisplayName: b.BidderDisplayName,
			},
			Amount:    b.Amount,
			CreatedAt: b.CreatedAt,
		}
	}

	return details
}
