package auction

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	db "github.com/katatrina/vgvault-BE/internal/db/sqlc"
	"github.com/katatrina/vgvault-BE/internal/event"
	"github.com/rs/zerolog/log"
)

// ExpireAuction is the one way an auction ends on the clock.
// The sweeper, the scheduled end task and late bids all come through here.
// Only the call that actually ends the auction notifies and broadcasts.
func (s *Service) ExpireAuction(ctx context.Context, auctionID uuid.UUID) (db.EndAuctionTxResult, error) {
	result, err := s.store.EndAuctionTx(ctx, db.EndAuctionTxParams{
		AuctionID: auctionID,
		Now:       s.now(),
	})
	if err != nil {
		return result, fmt.Errorf("failed to expire auction %s: %w", auctionID, err)
	}

	if !result.Ended {
		return result, nil
	}
	s.metrics.RecordAuctionEnded(string(db.AuctionEndReasonExpired))

	auction := result.Auction
	s.notifyEnded(ctx, auction, result.Seller, result.Winner, false)
	s.publishToAuction(ctx, auction.ID, event.EventTypeAuctionEnded, event.AuctionEndedPayload{
		AuctionID:  auction.ID,
		Winner:     winnerName(result.Winner),
		FinalPrice: auction.CurrentBid,
		Message:    endedMessage(result.Winner),
	})

	log.Info().
		Str("auction_id", auction.ID.String()).
		Bool("has_winner", result.Winner != nil).
		Msg("auction expired")

	return result, nil
}

// SweepExpire ends every active auction past its end date and returns how many it ended.
// A failure on one auction does not stop the others.
func (s *Service) SweepExpire(ctx context.Context) (int, error) {
	began := time.Now()

	auctionIDs, err := s.store.ListExpiredActiveAuctionIDs(ctx, s.now())
	if err != nil {
		return 0, fmt.Errorf("failed to list expired auctions: %w", err)
	}

	ended := 0
	for _, auctionID := range auctionIDs {
		if ctx.Err() != nil {
			break
		}

		result, err := s.ExpireAuction(ctx, auctionID)
		if err != nil {
			if errors.Is(err, db.ErrRecordNotFound) {
				continue
			}
			log.Err(err).Str("auction_id", auctionID.String()).Msg("failed to expire auction during sweep")
			continue
		}
		if result.Ended {
			ended++
		}
	}

	s.metrics.RecordSweep(time.Since(began), ended)
	if ended > 0 {
		log.Info().Int("ended", ended).Int("found", len(auctionIDs)).Msg("expired auctions processed")
	}

	return ended, ctx.Err()
}

// EndEarly lets the seller close an active auction. Without any bid the auction is deleted.
func (s *Service) EndEarly(ctx context.Context, auctionID, requesterID uuid.UUID) (db.EndEarlyTxResult, error) {
	result, err := s.store.EndEarlyTx(ctx, db.EndEarlyTxParams{
		AuctionID:   auctionID,
		RequesterID: requesterID,
		Now:         s.now(),
	})
	if err != nil {
		return db.EndEarlyTxResult{}, toAppError(err)
	}

	ctx = context.WithoutCancel(ctx)
	auction := result.Auction

	if result.Deleted {
		s.metrics.RecordAuctionDeleted("no_bids")
		s.cleanupDeleted(ctx, auction)
		s.publishToAuction(ctx, auction.ID, event.EventTypeAuctionDeleted, event.AuctionDeletedPayload{
			AuctionID: auction.ID,
			Message:   messageDeletedNoBids,
		})

		log.Info().Str("auction_id", auction.ID.String()).Msg("auction deleted by seller with no bids")
		return result, nil
	}

	s.metrics.RecordAuctionEnded(string(db.AuctionEndReasonEarly))
	s.cancelScheduledEnd(ctx, auction.ID)
	s.notifyEnded(ctx, auction, result.Seller, result.Winner, true)
	s.publishToAuction(ctx, auction.ID, event.EventTypeAuctionEndedEarly, event.AuctionEndedPayload{
		AuctionID:  auction.ID,
		Winner:     winnerName(result.Winner),
		FinalPrice: auction.CurrentBid,
		Message:    messageEndedEarly,
	})

	log.Info().Str("auction_id", auction.ID.String()).Msg("auction ended early")
	return result, nil
}

// AdminDelete removes an auction in any state, with its bids, notifications and images.
func (s *Service) AdminDelete(ctx context.Context, auctionID uuid.UUID) (db.DeleteAuctionTxResult, error) {
	return s.deleteAuction(ctx, auctionID, reasonDeletedByAdmin)
}

// AdminTerminate is AdminDelete under the name the admin console uses for it.
func (s *Service) AdminTerminate(ctx context.Context, auctionID uuid.UUID) (db.DeleteAuctionTxResult, error) {
	return s.deleteAuction(ctx, auctionID, reasonTerminatedAdmin)
}

func (s *Service) deleteAuction(ctx context.Context, auctionID uuid.UUID, reason string) (db.DeleteAuctionTxResult, error) {
	result, err := s.store.DeleteAuctionTx(ctx, auctionID)
	if err != nil {
		return db.DeleteAuctionTxResult{}, toAppError(err)
	}
	s.metrics.RecordAuctionDeleted("admin")

	ctx = context.WithoutCancel(ctx)
	s.cleanupDeleted(ctx, result.Auction)
	s.publishToAuction(ctx, auctionID, event.EventTypeAuctionCompletelyDeleted, event.AuctionDeletedPayload{
		AuctionID: auctionID,
		Message:   "Auction completely removed - " + reason,
	})

	log.Info().
		Str("auction_id", auctionID.String()).
		Str("reason", reason).
		Int64("deleted_bids", result.DeletedBids).
		Int64("deleted_notifications", result.DeletedNotifications).
		Msg("auction completely deleted")

	return result, nil
}

// cleanupDeleted removes what lives outside the database once an auction row is gone.
func (s *Service) cleanupDeleted(ctx context.Context, auction db.Auction) {
	for _, imageURL := range auction.Images {
		if err := s.files.DeleteFile(ctx, imageURL); err != nil {
			log.Warn().Err(err).
				Str("auction_id", auction.ID.String()).
				Str("url", imageURL).
				Msg("failed to delete auction image")
		}
	}

	s.notifier.ForgetAuction(ctx, auction.ID)
	s.cancelScheduledEnd(ctx, auction.ID)
}

func (s *Service) cancelScheduledEnd(ctx context.Context, auctionID uuid.UUID) {
	if s.canceller == nil {
		return
	}

	if err := s.canceller.CancelAuctionEnd(ctx, auctionID); err != nil {
		log.Warn().Err(err).Str("auction_id", auctionID.String()).Msg("failed to cancel scheduled auction end")
	}
}
