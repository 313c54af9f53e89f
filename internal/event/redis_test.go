package event

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type recordingBroadcaster struct {
	users    []uuid.UUID
	auctions []uuid.UUID
	err      error
}

func (r *recordingBroadcaster) PublishToUser(_ context.Context, userID uuid.UUID, _ Event) error {
	r.users = append(r.users, userID)
	return r.err
}

func (r *recordingBroadcaster) PublishToAuction(_ context.Context, auctionID uuid.UUID, _ Event) error {
	r.auctions = append(r.auctions, auctionID)
	return r.err
}

func TestRedisBroadcasterPublishes(t *testing.T) {
	client, mock := redismock.NewClientMock()
	defer client.Close()

	auctionID := uuid.New()
	evt := Event{
		Topic: AuctionTopic(auctionID),
		Type:  EventTypeAuctionDeleted,
		Data:  AuctionDeletedPayload{AuctionID: auctionID, Message: "deleted"},
	}
	data, err := json.Marshal(evt)
	require.NoError(t, err)

	mock.ExpectPublish(RedisChannel, string(data)).SetVal(1)

	broadcaster := NewRedisBroadcaster(client, RedisChannel)
	require.NoError(t, broadcaster.PublishToAuction(context.Background(), auctionID, Event{
		Type: EventTypeAuctionDeleted,
		Data: AuctionDeletedPayload{AuctionID: auctionID, Message: "deleted"},
	}))

	require.Eventually(t, func() bool {
		return mock.ExpectationsWereMet() == nil
	}, time.Second, 10*time.Millisecond)

	broadcaster.Close()
	require.ErrorIs(t, broadcaster.PublishToUser(context.Background(), uuid.New(), Event{Type: EventTypeNewNotification}), ErrBroadcasterClosed)
}

func TestRedisBroadcasterPublishAfterCloseDoesNotBlock(t *testing.T) {
	client, _ := redismock.NewClientMock()
	defer client.Close()

	broadcaster := NewRedisBroadcaster(client, RedisChannel)
	broadcaster.Close()
	// A publisher that passed the closed check just before Close.
	broadcaster.closed.Store(false)

	errs := make(chan error, 1)
	go func() {
		var err error
		for i := 0; i < 3*publishBufferSize && err == nil; i++ {
			err = broadcaster.PublishToAuction(context.Background(), uuid.New(), Event{Type: EventTypeBidUpdate})
		}
		errs <- err
	}()

	select {
	case err := <-errs:
		require.ErrorIs(t, err, ErrBroadcasterClosed)
	case <-time.After(time.Second):
		t.Fatal("publish blocked after close")
	}
}

func TestDecodeEvent(t *testing.T) {
	evt, err := decodeEvent(`{"topic":"user:1","type":"newNotification","data":{"title":"Outbid"}}`)
	require.NoError(t, err)
	require.Equal(t, "user:1", evt.Topic)
	require.Equal(t, EventTypeNewNotification, evt.Type)
	require.Equal(t, map[string]any{"title": "Outbid"}, evt.Data)

	_, err = decodeEvent(`{"type":"bidUpdate"}`)
	require.Error(t, err)

	_, err = decodeEvent(`not json`)
	require.Error(t, err)
}

func TestFanout(t *testing.T) {
	first := &recordingBroadcaster{}
	second := &recordingBroadcaster{err: errors.New("down")}
	fanout := Fanout{first, second}

	userID := uuid.New()
	err := fanout.PublishToUser(context.Background(), userID, Event{Type: EventTypeNewNotification})
	require.Error(t, err)
	require.Equal(t, []uuid.UUID{userID}, first.users)
	require.Equal(t, []uuid.UUID{userID}, second.users)

	auctionID := uuid.New()
	second.err = nil
	require.NoError(t, fanout.PublishToAuction(context.Background(), auctionID, Event{Type: EventTypeBidUpdate}))
	require.Equal(t, []uuid.UUID{auctionID}, first.auctions)
}

func TestNotificationDocumentFromRedisPayload(t *testing.T) {
	userID := uuid.New()
	auctionID := uuid.New()
	doc := notificationDocument(userID, NewNotificationPayload{
		ID:           uuid.New(),
		Type:         "outbid",
		Title:        "You've been outbid",
		AuctionID:    &auctionID,
		AuctionTitle: "Lamp",
	})

	require.Equal(t, userID.String(), doc["recipientID"])
	require.Equal(t, auctionID.String(), doc["referenceID"])
	require.Equal(t, false, doc["isRead"])

	doc = notificationDocument(userID, NewNotificationPayload{ID: uuid.New()})
	_, ok := doc["referenceID"]
	require.False(t, ok)
}
