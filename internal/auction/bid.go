package auction

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/katatrina/vgvault-BE/internal/apperror"
	db "github.com/katatrina/vgvault-BE/internal/db/sqlc"
	"github.com/katatrina/vgvault-BE/internal/event"
	"github.com/katatrina/vgvault-BE/internal/money"
	"github.com/katatrina/vgvault-BE/internal/notification"
	"github.com/katatrina/vgvault-BE/internal/validator"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

type PlaceBidParams struct {
	AuctionID uuid.UUID
	BidderID  uuid.UUID
	Amount    decimal.Decimal
}

// PlaceBid accepts a bid only if it beats the latest committed bid.
// A bid that arrives after the end date ends the auction on the spot and is rejected.
func (s *Service) PlaceBid(ctx context.Context, arg PlaceBidParams) (db.PlaceBidTxResult, error) {
	if err := validator.ValidateBidAmount(arg.Amount); err != nil {
		s.metrics.RecordBidRejected("invalid_amount")
		return db.PlaceBidTxResult{}, apperror.InvalidInput("%s", err.Error())
	}

	result, err := s.store.PlaceBidTx(ctx, db.PlaceBidTxParams{
		AuctionID: arg.AuctionID,
		BidderID:  arg.BidderID,
		Amount:    money.Normalize(arg.Amount),
		Now:       s.now(),
	})
	if err != nil {
		s.metrics.RecordBidRejected(rejectReason(err))
		if errors.Is(err, db.ErrAuctionExpired) {
			s.expireInline(ctx, arg.AuctionID)
		}
		return db.PlaceBidTxResult{}, toAppError(err)
	}
	s.metrics.RecordBidAccepted()

	// The bid is committed; what follows must not depend on the client staying connected.
	ctx = context.WithoutCancel(ctx)

	auction := result.Auction
	if result.PreviousBidder != nil && result.PreviousBidder.ID != result.Bidder.ID {
		s.notify(ctx, outbidNotification(auction, *result.PreviousBidder))
	}

	s.publishToAuction(ctx, auction.ID, event.EventTypeBidUpdate, event.BidUpdatePayload{
		AuctionID:            auction.ID,
		CurrentBid:           auction.CurrentBid,
		HighestBidderDisplay: result.Bidder.DisplayName,
		MinimumBid:           auction.MinimumBid(),
		BidAt:                result.Bid.CreatedAt,
	})

	log.Info().
		Str("auction_id", auction.ID.String()).
		Str("user_id", arg.BidderID.String()).
		Str("amount", auction.CurrentBid.StringFixed(2)).
		Msg("bid placed")

	return result, nil
}

// BuyNow ends the auction at its hammer price in favour of the buyer.
func (s *Service) BuyNow(ctx context.Context, auctionID, buyerID uuid.UUID) (db.BuyNowTxResult, error) {
	result, err := s.store.BuyNowTx(ctx, db.BuyNowTxParams{
		AuctionID: auctionID,
		BuyerID:   buyerID,
		Now:       s.now(),
	})
	if err != nil {
		s.metrics.RecordBidRejected(rejectReason(err))
		if errors.Is(err, db.ErrAuctionExpired) {
			s.expireInline(ctx, auctionID)
		}
		return db.BuyNowTxResult{}, toAppError(err)
	}
	s.metrics.RecordAuctionEnded(string(db.AuctionEndReasonBuyNow))

	ctx = context.WithoutCancel(ctx)
	auction := result.Auction
	price := money.Format(auction.CurrentBid)
	s.cancelScheduledEnd(ctx, auction.ID)

	s.notify(ctx, notification.Notification{
		RecipientID:  result.Seller.ID,
		Type:         db.NotificationTypeBuyNowPurchase,
		Title:        "Your item was bought",
		Message:      fmt.Sprintf("%s bought %q for %s with Buy Now.", result.Buyer.DisplayName, auction.Title, price),
		AuctionID:    &auction.ID,
		AuctionTitle: auction.Title,
	})
	s.notify(ctx, wonNotification(auction, result.Buyer,
		fmt.Sprintf("You bought %q for %s with Buy Now.", auction.Title, price)))

	s.publishToAuction(ctx, auction.ID, event.EventTypeAuctionEnded, event.AuctionEndedPayload{
		AuctionID:  auction.ID,
		Winner:     result.Buyer.DisplayName,
		FinalPrice: auction.CurrentBid,
		Message:    "Sold with Buy Now",
	})

	log.Info().
		Str("auction_id", auction.ID.String()).
		Str("user_id", buyerID.String()).
		Msg("auction bought now")

	return result, nil
}

// expireInline ends an auction whose end date passed before the sweeper got to it.
func (s *Service) expireInline(ctx context.Context, auctionID uuid.UUID) {
	if _, err := s.ExpireAuction(context.WithoutCancel(ctx), auctionID); err != nil {
		log.Err(err).Str("auction_id", auctionID.String()).Msg("failed to expire auction")
	}
}
