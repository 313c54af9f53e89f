package api

import (
	"time"

	"github.com/google/uuid"
	db "github.com/katatrina/vgvault-BE/internal/db/sqlc"
	"github.com/katatrina/vgvault-BE/internal/money"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// userResponse is a user without credentials.
type userResponse struct {
	ID          uuid.UUID `json:"id" example:"0192d9c4-5a1e-7c3a-9f00-2b6c1f1c0a11"`
	Username    string    `json:"username" example:"samus"`
	DisplayName string    `json:"display_name" example:"Samus Aran"`
	Email       string    `json:"email" example:"samus@example.com"`
	IsAdmin     bool      `json:"is_admin" example:"false"`
	CreatedAt   time.Time `json:"created_at"`
}

func newUserResponse(user db.User) userResponse {
	return userResponse{
		ID:          user.ID,
		Username:    user.Username,
		DisplayName: user.DisplayName,
		Email:       user.Email,
		IsAdmin:     user.IsAdmin,
		CreatedAt:   user.CreatedAt,
	}
}

// auctionResponse adds the bidding hints clients show next to the bid box.
type auctionResponse struct {
	db.Auction
	MinimumBid       decimal.Decimal `json:"minimum_bid" swaggertype:"number" example:"110"`
	MinimumIncrement decimal.Decimal `json:"minimum_increment" swaggertype:"number" example:"10"`
}

func newAuctionResponse(auction db.Auction) auctionResponse {
	return auctionResponse{
		Auction:          auction,
		MinimumBid:       auction.MinimumBid(),
		MinimumIncrement: auction.MinimumIncrement(),
	}
}

func newAuctionResponses(auctions []db.Auction) []auctionResponse {
	return lo.Map(auctions, func(auction db.Auction, _ int) auctionResponse {
		return newAuctionResponse(auction)
	})
}

type userBidResponse struct {
	ID        uuid.UUID       `json:"id"`
	Amount    decimal.Decimal `json:"amount" swaggertype:"number" example:"121"`
	CreatedAt time.Time       `json:"created_at"`
	Auction   bidAuctionInfo  `json:"auction"`
	IsWinning bool            `json:"is_winning"`
}

type bidAuctionInfo struct {
	ID         uuid.UUID       `json:"id"`
	Title      string          `json:"title" example:"Chrono Trigger SNES"`
	Slug       string          `json:"slug" example:"chrono-trigger-snes-x8Kq2mZa"`
	IsActive   bool            `json:"is_active"`
	CurrentBid decimal.Decimal `json:"current_bid" swaggertype:"number" example:"121"`
	EndDate    time.Time       `json:"end_date"`
}

func newUserBidResponses(rows []db.ListUserBidsRow) []userBidResponse {
	return lo.Map(rows, func(row db.ListUserBidsRow, _ int) userBidResponse {
		return userBidResponse{
			ID:        row.ID,
			Amount:    row.Amount,
			CreatedAt: row.CreatedAt,
			Auction: bidAuctionInfo{
				ID:         row.AuctionID,
				Title:      row.AuctionTitle,
				Slug:       row.AuctionSlug,
				IsActive:   row.AuctionIsActive,
				CurrentBid: row.AuctionCurrentBid,
				EndDate:    row.AuctionEndDate,
			},
			IsWinning: row.AuctionHighestBidderID != nil && *row.AuctionHighestBidderID == row.BidderID &&
				row.Amount.Equal(row.AuctionCurrentBid),
		}
	})
}

type adminAuctionResponse struct {
	auctionResponse
	Seller db.UserIdentity `json:"seller"`
}

func newAdminAuctionResponses(rows []db.ListAllAuctionsRow) []adminAuctionResponse {
	return lo.Map(rows, func(row db.ListAllAuctionsRow, _ int) adminAuctionResponse {
		return adminAuctionResponse{
			auctionResponse: newAuctionResponse(row.Auction),
			Seller: db.UserIdentity{
				ID:          row.Auction.SellerID,
				Username:    row.SellerUsername,
				DisplayName: row.SellerDisplayName,
			},
		}
	})
}

type bidResponse struct {
	Bid            db.Bid          `json:"bid"`
	Auction        auctionResponse `json:"auction"`
	FormattedPrice string          `json:"formatted_price" example:"$121.00"`
}

func newBidResponse(result db.PlaceBidTxResult) bidResponse {
	return bidResponse{
		Bid:            result.Bid,
		Auction:        newAuctionResponse(result.Auction),
		FormattedPrice: money.Format(result.Auction.CurrentBid),
	}
}
