package auction

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	db "github.com/katatrina/vgvault-BE/internal/db/sqlc"
	"github.com/katatrina/vgvault-BE/internal/event"
	"github.com/katatrina/vgvault-BE/internal/money"
	"github.com/katatrina/vgvault-BE/internal/notification"
	"github.com/rs/zerolog/log"
)

const (
	noWinner = "No winner"

	messageEndedEarly     = "Auction ended early by seller"
	messageDeletedNoBids  = "Auction deleted by seller - no bidders"
	reasonDeletedByAdmin  = "deleted by admin"
	reasonTerminatedAdmin = "terminated by admin"
)

// notify sends one notification. Failures are logged: the state change it reports has already committed.
func (s *Service) notify(ctx context.Context, n notification.Notification) {
	if _, err := s.notifier.Notify(ctx, n); err != nil {
		log.Err(err).
			Str("user_id", n.RecipientID.String()).
			Str("type", string(n.Type)).
			Msg("failed to send notification")
	}
}

func (s *Service) publishToAuction(ctx context.Context, auctionID uuid.UUID, eventType string, data any) {
	err := s.broadcaster.PublishToAuction(ctx, auctionID, event.Event{
		Type: eventType,
		Data: data,
	})
	if err != nil {
		log.Err(err).
			Str("auction_id", auctionID.String()).
			Str("event", eventType).
			Msg("failed to broadcast auction event")
	}
}

func outbidNotification(auction db.Auction, previousBidder db.User) notification.Notification {
	return notification.Notification{
		RecipientID: previousBidder.ID,
		Type:        db.NotificationTypeOutbid,
		Title:       "You have been outbid",
		Message: fmt.Sprintf("Someone placed a bid of %s on %q. The minimum bid is now %s.",
			money.Format(auction.CurrentBid), auction.Title, money.Format(auction.MinimumBid())),
		AuctionID:    &auction.ID,
		AuctionTitle: auction.Title,
	}
}

func wonNotification(auction db.Auction, winner db.User, message string) notification.Notification {
	return notification.Notification{
		RecipientID:  winner.ID,
		Type:         db.NotificationTypeAuctionWon,
		Title:        "You won the auction",
		Message:      message,
		AuctionID:    &auction.ID,
		AuctionTitle: auction.Title,
	}
}

func sellerEndedNotification(auction db.Auction, seller db.User, message string) notification.Notification {
	return notification.Notification{
		RecipientID:  seller.ID,
		Type:         db.NotificationTypeAuctionEndedSeller,
		Title:        "Your auction has ended",
		Message:      message,
		AuctionID:    &auction.ID,
		AuctionTitle: auction.Title,
	}
}

// notifyEnded tells the winner and the seller how an auction ended.
// Without a winner only the seller hears about it.
func (s *Service) notifyEnded(ctx context.Context, auction db.Auction, seller db.User, winner *db.User, early bool) {
	price := money.Format(auction.CurrentBid)

	if winner == nil {
		s.notify(ctx, sellerEndedNotification(auction, seller,
			fmt.Sprintf("%q ended with no bids.", auction.Title)))
		return
	}

	winnerMessage := fmt.Sprintf("Congratulations! You won %q with a bid of %s.", auction.Title, price)
	if early {
		winnerMessage = fmt.Sprintf("The seller ended %q early. You won with a bid of %s.", auction.Title, price)
	}

	s.notify(ctx, wonNotification(auction, *winner, winnerMessage))
	s.notify(ctx, sellerEndedNotification(auction, seller,
		fmt.Sprintf("%q ended. Winner: %s with a bid of %s.", auction.Title, winner.DisplayName, price)))
}

func winnerName(winner *db.User) string {
	if winner == nil {
		return noWinner
	}
	return winner.DisplayName
}

func endedMessage(winner *db.User) string {
	if winner == nil {
		return "No winner - no bids placed"
	}
	return "Winner: " + winner.DisplayName
}
