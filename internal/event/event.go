package event

import (
	"context"
	"strings"

	"github.com/google/uuid"
)

// Event is a named message delivered to every subscriber of a topic.
type Event struct {
	Topic string `json:"topic"` // "auction:<id>", "user:<id>"
	Type  string `json:"type"`
	Data  any    `json:"data"`
}

const (
	EventTypeBidUpdate                = "bidUpdate"
	EventTypeAuctionEnded             = "auctionEnded"
	EventTypeAuctionEndedEarly        = "auctionEndedEarly"
	EventTypeAuctionDeleted           = "auctionDeleted"
	EventTypeAuctionCompletelyDeleted = "auctionCompletelyDeleted"
	EventTypeNewNotification          = "newNotification"
)

// TopicAuctions receives a copy of every auction event.
const TopicAuctions = "auctions"

const (
	userTopicPrefix    = "user:"
	auctionTopicPrefix = "auction:"
)

func UserTopic(userID uuid.UUID) string {
	return userTopicPrefix + userID.String()
}

func AuctionTopic(auctionID uuid.UUID) string {
	return auctionTopicPrefix + auctionID.String()
}

func isAuctionTopic(topic string) bool {
	return strings.HasPrefix(topic, auctionTopicPrefix)
}

// Broadcaster pushes events to live subscribers. Delivery is fire-and-forget.
type Broadcaster interface {
	PublishToUser(ctx context.Context, userID uuid.UUID, evt Event) error
	PublishToAuction(ctx context.Context, auctionID uuid.UUID, evt Event) error
}

// EventSender is the subscription side used by the SSE endpoints.
type EventSender interface {
	Register(topic string, client chan Event)
	Unregister(topic string, client chan Event)
	Broadcast(event Event)
	Run()
}
