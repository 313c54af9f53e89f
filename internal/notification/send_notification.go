package notification

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/katatrina/vgvault-BE/internal/apperror"
	db "github.com/katatrina/vgvault-BE/internal/db/sqlc"
	"github.com/katatrina/vgvault-BE/internal/event"
	"github.com/katatrina/vgvault-BE/internal/util"
	"github.com/rs/zerolog/log"
)

// Notify persists the notification first, then pushes it to the recipient.
// A failed push is logged and does not fail the call.
func (d *Dispatcher) Notify(ctx context.Context, n Notification) (db.Notification, error) {
	if !n.Type.Valid() {
		return db.Notification{}, apperror.InvalidInput("unknown notification type %q", n.Type)
	}

	id, err := uuid.NewV7()
	if err != nil {
		return db.Notification{}, fmt.Errorf("failed to generate notification ID: %w", err)
	}

	notification, err := d.store.CreateNotification(ctx, db.CreateNotificationParams{
		ID:           id,
		UserID:       n.RecipientID,
		Type:         n.Type,
		Title:        n.Title,
		Message:      n.Message,
		AuctionID:    n.AuctionID,
		AuctionTitle: n.AuctionTitle,
	})
	if err != nil {
		return db.Notification{}, fmt.Errorf("failed to create notification: %w", err)
	}
	d.metrics.RecordNotificationSent(string(notification.Type))

	err = d.broadcaster.PublishToUser(ctx, notification.UserID, event.Event{
		Type: event.EventTypeNewNotification,
		Data: newNotificationPayload(notification),
	})
	if err != nil {
		log.Err(err).
			Str("notification_id", notification.ID.String()).
			Str("user_id", notification.UserID.String()).
			Msg("failed to push notification")
	}

	if d.emails != nil && emailTypes[notification.Type] {
		d.enqueueEmail(ctx, notification)
	}

	return notification, nil
}

func (d *Dispatcher) enqueueEmail(ctx context.Context, notification db.Notification) {
	user, err := d.store.GetUserByID(ctx, notification.UserID)
	if err != nil {
		log.Err(err).Str("user_id", notification.UserID.String()).Msg("failed to get notification recipient")
		return
	}

	if err = d.emails.EnqueueEmail(ctx, user.Email, emailSubject(notification), notification.Message); err != nil {
		log.Err(err).Str("notification_id", notification.ID.String()).Msg("failed to enqueue notification email")
	}
}

func emailSubject(notification db.Notification) string {
	if notification.AuctionTitle == "" {
		return notification.Title
	}
	return fmt.Sprintf("%s: %s", notification.Title, util.TruncateContent(notification.AuctionTitle, maxSubjectTitleLength))
}

// MarkRead marks one of the user's notifications as read. Marking it twice is harmless.
func (d *Dispatcher) MarkRead(ctx context.Context, notificationID, userID uuid.UUID) (db.Notification, error) {
	notification, err := d.store.MarkNotificationAsRead(ctx, db.MarkNotificationAsReadParams{
		ID:     notificationID,
		UserID: userID,
	})
	if err != nil {
		if errors.Is(err, db.ErrRecordNotFound) {
			return db.Notification{}, apperror.NotFound("notification %s not found", notificationID)
		}
		return db.Notification{}, fmt.Errorf("failed to mark notification as read: %w", err)
	}

	if d.mirror != nil {
		if err = d.mirror.MarkRead(ctx, notification.ID); err != nil {
			log.Err(err).Str("notification_id", notification.ID.String()).Msg("failed to sync notification read state")
		}
	}

	return notification, nil
}

// MarkAllRead marks every unread notification of the user as read and returns how many changed.
func (d *Dispatcher) MarkAllRead(ctx context.Context, userID uuid.UUID) (int64, error) {
	count, err := d.store.MarkAllNotificationsAsRead(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to mark all notifications as read: %w", err)
	}

	if d.mirror != nil {
		if err = d.mirror.MarkAllRead(ctx, userID); err != nil {
			log.Err(err).Str("user_id", userID.String()).Msg("failed to sync notification read state")
		}
	}

	return count, nil
}

// ForgetAuction removes mirrored notifications of a deleted auction. The rows
// themselves go with the auction through the foreign key cascade.
func (d *Dispatcher) ForgetAuction(ctx context.Context, auctionID uuid.UUID) {
	if d.mirror == nil {
		return
	}

	if err := d.mirror.DeleteByAuction(ctx, auctionID); err != nil {
		log.Err(err).Str("auction_id", auctionID.String()).Msg("failed to delete mirrored notifications")
	}
}

// List returns the user's newest notifications first.
func (d *Dispatcher) List(ctx context.Context, userID uuid.UUID, limit int32) ([]db.Notification, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}
	if limit > MaxListLimit {
		limit = MaxListLimit
	}

	notifications, err := d.store.ListUserNotifications(ctx, db.ListUserNotificationsParams{
		UserID: userID,
		Limit:  limit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}

	return notifications, nil
}

func (d *Dispatcher) UnreadCount(ctx context.Context, userID uuid.UUID) (int64, error) {
	count, err := d.store.CountUnreadNotifications(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to count unread notifications: %w", err)
	}

	return count, nil
}

func newNotificationPayload(n db.Notification) event.NewNotificationPayload {
	return event.NewNotificationPayload{
		ID:           n.ID,
		Type:         string(n.Type),
		Title:        n.Title,
		Message:      n.Message,
		AuctionID:    n.AuctionID,
		AuctionTitle: n.AuctionTitle,
		IsRead:       n.IsRead,
		CreatedAt:    n.CreatedAt,
	}
}
