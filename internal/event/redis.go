package event

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"github.com/smallnest/chanx"
)

const (
	RedisChannel      = "vgvault:events"
	publishBufferSize = 100
)

var ErrBroadcasterClosed = errors.New("broadcaster is closed")

// RedisBroadcaster publishes events to a Redis pub/sub channel so that every
// API instance can deliver them to its own SSE clients.
type RedisBroadcaster struct {
	client   *redis.Client
	channel  string
	upstream *chanx.UnboundedChan[string]
	cancel   context.CancelFunc
	done     <-chan struct{}
	wg       sync.WaitGroup
	closed   atomic.Bool
}

func NewRedisBroadcaster(client *redis.Client, channel string) *RedisBroadcaster {
	ctx, cancel := context.WithCancel(context.Background())

	b := &RedisBroadcaster{
		client:   client,
		channel:  channel,
		upstream: chanx.NewUnboundedChan[string](ctx, publishBufferSize),
		cancel:   cancel,
		done:     ctx.Done(),
	}

	b.wg.Add(1)
	go b.run(ctx)

	return b
}

func (b *RedisBroadcaster) run(ctx context.Context) {
	defer b.wg.Done()

	for {
		select {
		case <-ctx.Done():
			return
		case message, ok := <-b.upstream.Out:
			if !ok {
				return
			}

			if err := b.client.Publish(ctx, b.channel, message).Err(); err != nil {
				if errors.Is(err, context.Canceled) {
					return
				}
				log.Error().Err(err).Str("channel", b.channel).Msg("failed to publish event")
			}
		}
	}
}

func (b *RedisBroadcaster) PublishToUser(_ context.Context, userID uuid.UUID, evt Event) error {
	evt.Topic = UserTopic(userID)
	return b.enqueue(evt)
}

func (b *RedisBroadcaster) PublishToAuction(_ context.Context, auctionID uuid.UUID, evt Event) error {
	evt.Topic = AuctionTopic(auctionID)
	return b.enqueue(evt)
}

func (b *RedisBroadcaster) enqueue(evt Event) error {
	if b.closed.Load() {
		return ErrBroadcasterClosed
	}

	data, err := json.Marshal(evt)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	// Nothing drains In once Close has cancelled the queue.
	select {
	case b.upstream.In <- string(data):
		return nil
	case <-b.done:
		return ErrBroadcasterClosed
	}
}

// Close stops the publishing goroutine. Queued events not yet published are dropped.
func (b *RedisBroadcaster) Close() {
	if b.closed.Swap(true) {
		return
	}
	b.cancel()
	b.wg.Wait()
}

// RedisRelay forwards events from the Redis channel into a local EventSender.
type RedisRelay struct {
	client  *redis.Client
	channel string
	sink    EventSender
}

func NewRedisRelay(client *redis.Client, channel string, sink EventSender) *RedisRelay {
	return &RedisRelay{
		client:  client,
		channel: channel,
		sink:    sink,
	}
}

// Run blocks until ctx is done or the subscription is closed.
func (r *RedisRelay) Run(ctx context.Context) error {
	pubsub := r.client.Subscribe(ctx, r.channel)
	defer pubsub.Close()

	if _, err := pubsub.Receive(ctx); err != nil {
		return fmt.Errorf("failed to subscribe to %s: %w", r.channel, err)
	}
	log.Info().Str("channel", r.channel).Msg("event relay subscribed")

	messages := pubsub.Channel()
	for {
		select {
		case <-ctx.Done():
			return nil
		case msg, ok := <-messages:
			if !ok {
				return nil
			}

			evt, err := decodeEvent(msg.Payload)
			if err != nil {
				log.Warn().Err(err).Msg("dropping malformed event")
				continue
			}
			r.sink.Broadcast(evt)
		}
	}
}

func decodeEvent(payload string) (Event, error) {
	var evt Event
	if err := json.Unmarshal([]byte(payload), &evt); err != nil {
		return evt, fmt.Errorf("failed to unmarshal event: %w", err)
	}
	if evt.Topic == "" || evt.Type == "" {
		return evt, errors.New("event is missing topic or type")
	}
	return evt, nil
}
