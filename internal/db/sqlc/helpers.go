package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// deleteAuctionCascade removes an auction with its bids and notifications.
// The caller must hold the auction row lock.
func deleteAuctionCascade(ctx context.Context, qTx *Queries, auctionID uuid.UUID) (deletedBids, deletedNotifications int64, err error) {
	deletedNotifications, err = qTx.DeleteAuctionNotifications(ctx, &auctionID)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to delete auction notifications: %w", err)
	}

	deletedBids, err = qTx.DeleteAuctionBids(ctx, auctionID)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to delete auction bids: %w", err)
	}

	rows, err := qTx.DeleteAuction(ctx, auctionID)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to delete auction: %w", err)
	}
	if rows == 0 {
		return 0, 0, ErrRecordNotFound
	}

	return deletedBids, deletedNotifications, nil
}
