package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PlaceBidTxParams struct {
	AuctionID uuid.UUID
	BidderID  uuid.UUID
	Amount    decimal.Decimal
	Now       time.Time
}

type PlaceBidTxResult struct {
	Bid            Bid     `json:"bid"`
	Auction        Auction `json:"updated_auction"`
	Bidder         User    `json:"bidder"`
	PreviousBidder *User   `json:"previous_bidder"`
}

// PlaceBidTx accepts a bid only if it still beats the latest committed current_bid.
// The auction row stays locked until commit, so bids on one auction are serialized.
func (store *SQLStore) PlaceBidTx(ctx context.Context, arg PlaceBidTxParams) (PlaceBidTxResult, error) {
	var result PlaceBidTxResult

	err := store.ExecTx(ctx, func(qTx *Queries) error {
		// 1. Lock the auction row and re-read the latest state
		auction, err := qTx.GetAuctionByIDForUpdate(ctx, arg.AuctionID)
		if err != nil {
			return err
		}

		// 2. Re-validate against the locked state
		if err = auction.CheckBid(arg.BidderID, arg.Amount, arg.Now); err != nil {
			return err
		}

		bidder, err := qTx.GetUserByID(ctx, arg.BidderID)
		if err != nil {
			return fmt.Errorf("failed to get bidder: %w", err)
		}
		result.Bidder = bidder

		// 3. Remember who held the lead, for the outbid notification
		if auction.HighestBidderID != nil {
			previousBidder, err := qTx.GetUserByID(ctx, *auction.HighestBidderID)
			if err != nil && !errors.Is(err, ErrRecordNotFound) {
				return fmt.Errorf("failed to get previous bidder: %w", err)
			}
			if err == nil {
				result.PreviousBidder = &previousBidder
			}
		}

		// 4. Append the bid
		bidID, err := uuid.NewV7()
		if err != nil {
			return fmt.Errorf("failed to generate bid ID: %w", err)
		}

		bid, err := qTx.CreateBid(ctx, CreateBidParams{
			ID:        bidID,
			AuctionID: auction.ID,
			BidderID:  arg.BidderID,
			Amount:    arg.Amount,
		})
		if err != nil {
			return fmt.Errorf("failed to create bid: %w", err)
		}
		result.Bid = bid

		// 5. Move the auction to the new highest bid
		updatedAuction, err := qTx.UpdateAuction(ctx, UpdateAuctionParams{
			ID:              auction.ID,
			CurrentBid:      &bid.Amount,
			HighestBidderID: &bid.BidderID,
		})
		if err != nil {
			return fmt.Errorf("failed to update auction: %w", err)
		}
		result.Auction = updatedAuction

		return nil
	})

	return result, err
}

type BuyNowTxParams struct {
	AuctionID uuid.UUID
	BuyerID   uuid.UUID
	Now       time.Time
}

type BuyNowTxResult struct {
	Bid     Bid     `json:"bid"`
	Auction Auction `json:"updated_auction"`
	Buyer   User    `json:"buyer"`
	Seller  User    `json:"seller"`
}

// BuyNowTx ends the auction at its hammer price in favour of the buyer.
func (store *SQLStore) BuyNowTx(ctx context.Context, arg BuyNowTxParams) (BuyNowTxResult, error) {
	var result BuyNowTxResult

	err := store.ExecTx(ctx, func(qTx *Queries) error {
		auction, err := qTx.GetAuctionByIDForUpdate(ctx, arg.AuctionID)
		if err != nil {
			return err
		}

		if err = auction.CheckBuyNow(arg.BuyerID, arg.Now); err != nil {
			return err
		}

		buyer, err := qTx.GetUserByID(ctx, arg.BuyerID)
		if err != nil {
			return fmt.Errorf("failed to get buyer: %w", err)
		}
		result.Buyer = buyer

		seller, err := qTx.GetUserByID(ctx, auction.SellerID)
		if err != nil {
			return fmt.Errorf("failed to get seller: %w", err)
		}
		result.Seller = seller

		bidID, err := uuid.NewV7()
		if err != nil {
			return fmt.Errorf("failed to generate bid ID: %w", err)
		}

		bid, err := qTx.CreateBid(ctx, CreateBidParams{
			ID:        bidID,
			AuctionID: auction.ID,
			BidderID:  arg.BuyerID,
			Amount:    *auction.HammerPrice,
		})
		if err != nil {
			return fmt.Errorf("failed to create buy now bid: %w", err)
		}
		result.Bid = bid

		isActive := false
		updatedAuction, err := qTx.UpdateAuction(ctx, UpdateAuctionParams{
			ID:              auction.ID,
			CurrentBid:      auction.HammerPrice,
			HighestBidderID: &arg.BuyerID,
			IsActive:        &isActive,
			EndReason: NullAuctionEndReason{
				AuctionEndReason: AuctionEndReasonBuyNow,
				Valid:            true,
			},
			EndedAt: &arg.Now,
		})
		if err != nil {
			return fmt.Errorf("failed to end auction: %w", err)
		}
		result.Auction = updatedAuction

		return nil
	})

	return result, err
}
