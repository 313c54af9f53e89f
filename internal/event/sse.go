package event

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const eventQueueSize = 256

// SSEServer keeps the in-process subscriptions of connected SSE clients.
type SSEServer struct {
	clients map[string]map[chan Event]bool // topic -> set of client channels
	events  chan Event
	done    chan struct{}
	once    sync.Once
	mu      sync.RWMutex
}

func NewSSEServer() *SSEServer {
	return &SSEServer{
		clients: make(map[string]map[chan Event]bool),
		events:  make(chan Event, eventQueueSize),
		done:    make(chan struct{}),
	}
}

// Register subscribes a client channel to a topic.
func (s *SSEServer) Register(topic string, client chan Event) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.clients[topic]; !ok {
		s.clients[topic] = make(map[chan Event]bool)
	}
	s.clients[topic][client] = true
}

// Unregister removes the client channel from the topic and closes it.
func (s *SSEServer) Unregister(topic string, client chan Event) {
	s.mu.Lock()
	defer s.mu.Unlock()

	clients, ok := s.clients[topic]
	if !ok || !clients[client] {
		return
	}

	delete(clients, client)
	close(client)
	if len(clients) == 0 {
		delete(s.clients, topic)
	}
}

// Broadcast queues an event for delivery. It is dropped once the server is closed.
func (s *SSEServer) Broadcast(event Event) {
	select {
	case s.events <- event:
	case <-s.done:
	}
}

// Run delivers queued events until Close is called.
func (s *SSEServer) Run() {
	for {
		select {
		case event := <-s.events:
			s.dispatch(event)
		case <-s.done:
			return
		}
	}
}

func (s *SSEServer) Close() {
	s.once.Do(func() {
		close(s.done)
	})
}

func (s *SSEServer) dispatch(event Event) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	s.sendToTopic(event.Topic, event)
	if isAuctionTopic(event.Topic) {
		s.sendToTopic(TopicAuctions, event)
	}
}

func (s *SSEServer) sendToTopic(topic string, event Event) {
	for client := range s.clients[topic] {
		select {
		case client <- event:
		default:
			log.Warn().
				Str("topic", topic).
				Str("type", event.Type).
				Msg("sse client is not keeping up, event dropped")
		}
	}
}

func (s *SSEServer) SubscriberCount(topic string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.clients[topic])
}

func (s *SSEServer) PublishToUser(_ context.Context, userID uuid.UUID, evt Event) error {
	evt.Topic = UserTopic(userID)
	s.Broadcast(evt)
	return nil
}

func (s *SSEServer) PublishToAuction(_ context.Context, auctionID uuid.UUID, evt Event) error {
	evt.Topic = AuctionTopic(auctionID)
	s.Broadcast(evt)
	return nil
}
