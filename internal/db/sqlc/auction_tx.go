package db

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type EndAuctionTxParams struct {
	AuctionID uuid.UUID
	Now       time.Time
}

type EndAuctionTxResult struct {
	Auction Auction `json:"auction"`
	// Ended is false when another caller already ended the auction.
	Ended  bool  `json:"ended"`
	Winner *User `json:"winner"`
	Seller User  `json:"seller"`
}

// EndAuctionTx closes an auction whose end date has passed.
// It is idempotent: only the call that flips is_active reports Ended.
func (store *SQLStore) EndAuctionTx(ctx context.Context, arg EndAuctionTxParams) (EndAuctionTxResult, error) {
	var result EndAuctionTxResult

	err := store.ExecTx(ctx, func(qTx *Queries) error {
		auction, err := qTx.GetAuctionByIDForUpdate(ctx, arg.AuctionID)
		if err != nil {
			return err
		}
		result.Auction = auction

		if !auction.IsActive {
			return nil
		}

		if !auction.DueForExpiry(arg.Now) {
			return ErrAuctionNotDue
		}

		isActive := false
		updatedAuction, err := qTx.UpdateAuction(ctx, UpdateAuctionParams{
			ID:       auction.ID,
			IsActive: &isActive,
			EndReason: NullAuctionEndReason{
				AuctionEndReason: AuctionEndReasonExpired,
				Valid:            true,
			},
			EndedAt: &arg.Now,
		})
		if err != nil {
			return fmt.Errorf("failed to end auction: %w", err)
		}
		result.Auction = updatedAuction
		result.Ended = true

		return loadParties(ctx, qTx, updatedAuction, &result.Seller, &result.Winner)
	})

	return result, err
}

type EndEarlyTxParams struct {
	AuctionID   uuid.UUID
	RequesterID uuid.UUID
	Now         time.Time
}

type EndEarlyTxResult struct {
	Auction Auction `json:"auction"`
	// Deleted is true when the auction had no bids and was removed instead of ended.
	Deleted              bool  `json:"deleted"`
	DeletedBids          int64 `json:"deleted_bids"`
	DeletedNotifications int64 `json:"deleted_notifications"`
	Winner               *User `json:"winner"`
	Seller               User  `json:"seller"`
}

// EndEarlyTx lets the seller close their auction before its end date.
// Without any bid the auction is deleted along with everything that references it.
func (store *SQLStore) EndEarlyTx(ctx context.Context, arg EndEarlyTxParams) (EndEarlyTxResult, error) {
	var result EndEarlyTxResult

	err := store.ExecTx(ctx, func(qTx *Queries) error {
		auction, err := qTx.GetAuctionByIDForUpdate(ctx, arg.AuctionID)
		if err != nil {
			return err
		}
		result.Auction = auction

		if err = auction.CheckEndEarly(arg.RequesterID); err != nil {
			return err
		}

		if !auction.HasWinner() {
			result.DeletedBids, result.DeletedNotifications, err = deleteAuctionCascade(ctx, qTx, auction.ID)
			if err != nil {
				return err
			}
			result.Deleted = true
			return nil
		}

		isActive := false
		updatedAuction, err := qTx.UpdateAuction(ctx, UpdateAuctionParams{
			ID:       auction.ID,
			IsActive: &isActive,
			EndReason: NullAuctionEndReason{
				AuctionEndReason: AuctionEndReasonEarly,
				Valid:            true,
			},
			EndedAt: &arg.Now,
		})
		if err != nil {
			return fmt.Errorf("failed to end auction: %w", err)
		}
		result.Auction = updatedAuction

		return loadParties(ctx, qTx, updatedAuction, &result.Seller, &result.Winner)
	})

	return result, err
}

type DeleteAuctionTxResult struct {
	Auction              Auction `json:"auction"`
	DeletedBids          int64   `json:"deleted_bids"`
	DeletedNotifications int64   `json:"deleted_notifications"`
}

// DeleteAuctionTx removes an auction regardless of its state.
func (store *SQLStore) DeleteAuctionTx(ctx context.Context, auctionID uuid.UUID) (DeleteAuctionTxResult, error) {
	var result DeleteAuctionTxResult

	err := store.ExecTx(ctx, func(qTx *Queries) error {
		auction, err := qTx.GetAuctionByIDForUpdate(ctx, auctionID)
		if err != nil {
			return err
		}
		result.Auction = auction

		result.DeletedBids, result.DeletedNotifications, err = deleteAuctionCascade(ctx, qTx, auction.ID)
		return err
	})

	return result, err
}

func loadParties(ctx context.Context, qTx *Queries, auction Auction, seller *User, winner **User) error {
	s, err := qTx.GetUserByID(ctx, auction.SellerID)
	if err != nil {
		return fmt.Errorf("failed to get seller: %w", err)
	}
	*seller = s

	if auction.HighestBidderID != nil {
		w, err := qTx.GetUserByID(ctx, *auction.HighestBidderID)
		if err != nil {
			return fmt.Errorf("failed to get winner: %w", err)
		}
		*winner = &w
	}

	return nil
}
