package auction

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	db "github.com/katatrina/vgvault-BE/internal/db/sqlc"
	"golang.org/x/sync/errgroup"
)

func clampLimit(limit, fallback int32) int32 {
	if limit <= 0 || limit > fallback {
		return fallback
	}
	return limit
}

// ListActiveAuctions returns active auctions, newest first.
func (s *Service) ListActiveAuctions(ctx context.Context, limit int32) ([]db.Auction, error) {
	auctions, err := s.store.ListActiveAuctions(ctx, clampLimit(limit, DefaultListLimit))
	if err != nil {
		return nil, fmt.Errorf("failed to list active auctions: %w", err)
	}
	return auctions, nil
}

// GetAuctionDetails returns the auction with seller, highest bidder and bid history.
func (s *Service) GetAuctionDetails(ctx context.Context, auctionID uuid.UUID) (db.AuctionDetails, error) {
	var (
		row  db.GetAuctionDetailsRow
		bids []db.ListAuctionBidsRow
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		row, err = s.store.GetAuctionDetails(gctx, auctionID)
		return err
	})
	g.Go(func() error {
		var err error
		bids, err = s.store.ListAuctionBids(gctx, auctionID)
		return err
	})

	if err := g.Wait(); err != nil {
		return db.AuctionDetails{}, toAppError(err)
	}

	return db.NewAuctionDetails(row, bids), nil
}

// ListUserBids returns the user's bids on auctions that still exist.
func (s *Service) ListUserBids(ctx context.Context, userID uuid.UUID) ([]db.ListUserBidsRow, error) {
	bids, err := s.store.ListUserBids(ctx, db.ListUserBidsParams{
		BidderID: userID,
		Limit:    DefaultUserListLimit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list user bids: %w", err)
	}
	return bids, nil
}

func (s *Service) ListUserAuctions(ctx context.Context, userID uuid.UUID) ([]db.Auction, error) {
	auctions, err := s.store.ListAuctionsBySeller(ctx, db.ListAuctionsBySellerParams{
		SellerID: userID,
		Limit:    DefaultUserListLimit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list user auctions: %w", err)
	}
	return auctions, nil
}

// ListAllAuctions is the admin view of every auction in any state.
func (s *Service) ListAllAuctions(ctx context.Context, limit, offset int32) ([]db.ListAllAuctionsRow, error) {
	if offset < 0 {
		offset = 0
	}

	auctions, err := s.store.ListAllAuctions(ctx, db.ListAllAuctionsParams{
		Limit:  clampLimit(limit, DefaultListLimit),
		Offset: offset,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list all auctions: %w", err)
	}
	return auctions, nil
}
