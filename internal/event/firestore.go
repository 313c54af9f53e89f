package event

import (
	"context"
	"errors"
	"fmt"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"github.com/google/uuid"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const notificationsCollection = "notifications"

// FirestoreMirror copies newNotification events into Firestore for mobile clients
// and keeps their read state and lifetime in step with Postgres.
// Auction events are not mirrored.
type FirestoreMirror struct {
	client *firestore.Client
}

func NewFirestoreMirror(ctx context.Context, credentialsFile string) (*FirestoreMirror, error) {
	app, err := firebase.NewApp(ctx, nil, option.WithCredentialsFile(credentialsFile))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize firebase app: %w", err)
	}

	client, err := app.Firestore(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create firestore client: %w", err)
	}

	return &FirestoreMirror{client: client}, nil
}

func (m *FirestoreMirror) PublishToUser(ctx context.Context, userID uuid.UUID, evt Event) error {
	if evt.Type != EventTypeNewNotification {
		return nil
	}

	payload, ok := evt.Data.(NewNotificationPayload)
	if !ok {
		return fmt.Errorf("unexpected notification payload type %T", evt.Data)
	}

	_, err := m.client.Collection(notificationsCollection).Doc(payload.ID.String()).Set(ctx, notificationDocument(userID, payload))
	if err != nil {
		return fmt.Errorf("failed to mirror notification: %w", err)
	}

	return nil
}

func (m *FirestoreMirror) PublishToAuction(context.Context, uuid.UUID, Event) error {
	return nil
}

// MarkRead flags one mirrored notification as read. A notification that was never
// mirrored is skipped.
func (m *FirestoreMirror) MarkRead(ctx context.Context, notificationID uuid.UUID) error {
	_, err := m.client.Collection(notificationsCollection).Doc(notificationID.String()).Update(ctx, []firestore.Update{
		{Path: "isRead", Value: true},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil
		}
		return fmt.Errorf("failed to mark mirrored notification as read: %w", err)
	}

	return nil
}

// MarkAllRead flags every unread mirrored notification of the user as read.
func (m *FirestoreMirror) MarkAllRead(ctx context.Context, userID uuid.UUID) error {
	query := m.client.Collection(notificationsCollection).
		Where("recipientID", "==", userID.String()).
		Where("isRead", "==", false)

	return eachDocument(ctx, query, func(ref *firestore.DocumentRef) error {
		_, err := ref.Update(ctx, []firestore.Update{{Path: "isRead", Value: true}})
		return err
	})
}

// DeleteByAuction removes the mirrored notifications that reference the auction.
func (m *FirestoreMirror) DeleteByAuction(ctx context.Context, auctionID uuid.UUID) error {
	query := m.client.Collection(notificationsCollection).
		Where("referenceID", "==", auctionID.String())

	return eachDocument(ctx, query, func(ref *firestore.DocumentRef) error {
		_, err := ref.Delete(ctx)
		return err
	})
}

func eachDocument(ctx context.Context, query firestore.Query, fn func(ref *firestore.DocumentRef) error) error {
	docs := query.Documents(ctx)
	defer docs.Stop()

	for {
		doc, err := docs.Next()
		if errors.Is(err, iterator.Done) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to query mirrored notifications: %w", err)
		}

		if err = fn(doc.Ref); err != nil {
			return fmt.Errorf("failed to update mirrored notification %s: %w", doc.Ref.ID, err)
		}
	}
}

func (m *FirestoreMirror) Close() error {
	return m.client.Close()
}

func notificationDocument(userID uuid.UUID, payload NewNotificationPayload) map[string]interface{} {
	doc := map[string]interface{}{
		"recipientID":  userID.String(),
		"title":        payload.Title,
		"message":      payload.Message,
		"type":         payload.Type,
		"auctionTitle": payload.AuctionTitle,
		"isRead":       payload.IsRead,
		"createdAt":    payload.CreatedAt,
	}
	if payload.AuctionID != nil {
		doc["referenceID"] = payload.AuctionID.String()
	}
	return doc
}
