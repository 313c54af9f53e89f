package auction

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	db "github.com/katatrina/vgvault-BE/internal/db/sqlc"
	"github.com/katatrina/vgvault-BE/internal/event"
	"github.com/katatrina/vgvault-BE/internal/notification"
)

type fakeNotifier struct {
	mu        sync.Mutex
	sent      []notification.Notification
	forgotten []uuid.UUID
}

func (n *fakeNotifier) Notify(_ context.Context, notif notification.Notification) (db.Notification, error) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.sent = append(n.sent, notif)
	return db.Notification{ID: uuid.New(), UserID: notif.RecipientID, Type: notif.Type}, nil
}

func (n *fakeNotifier) ForgetAuction(_ context.Context, auctionID uuid.UUID) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.forgotten = append(n.forgotten, auctionID)
}

func (n *fakeNotifier) types() []db.NotificationType {
	types := make([]db.NotificationType, len(n.sent))
	for i, notif := range n.sent {
		types[i] = notif.Type
	}
	return types
}

type recordingBroadcaster struct {
	mu     sync.Mutex
	events []event.Event
}

func (b *recordingBroadcaster) PublishToUser(_ context.Context, userID uuid.UUID, evt event.Event) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	evt.Topic = event.UserTopic(userID)
	b.events = append(b.events, evt)
	return nil
}

func (b *recordingBroadcaster) PublishToAuction(_ context.Context, auctionID uuid.UUID, evt event.Event) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	evt.Topic = event.AuctionTopic(auctionID)
	b.events = append(b.events, evt)
	return nil
}

func (b *recordingBroadcaster) types() []string {
	types := make([]string, len(b.events))
	for i, evt := range b.events {
		types[i] = evt.Type
	}
	return types
}

type fakeScheduler struct {
	scheduled map[uuid.UUID]time.Time
	cancelled []uuid.UUID
}

func newFakeScheduler() *fakeScheduler {
	return &fakeScheduler{scheduled: make(map[uuid.UUID]time.Time)}
}

func (s *fakeScheduler) ScheduleAuctionEnd(_ context.Context, auctionID uuid.UUID, endDate time.Time) error {
	s.scheduled[auctionID] = endDate
	return nil
}

func (s *fakeScheduler) CancelAuctionEnd(_ context.Context, auctionID uuid.UUID) error {
	s.cancelled = append(s.cancelled, auctionID)
	return nil
}

type fakeFileStore struct {
	uploadErr error
	uploaded  []string
	deleted   []string
}

func (f *fakeFileStore) UploadFile(_ context.Context, _ []byte, filename string, folder string) (string, error) {
	if f.uploadErr != nil {
		return "", f.uploadErr
	}
	url := "https://cdn.example.com/" + folder + "/" + filename
	f.uploaded = append(f.uploaded, url)
	return url, nil
}

func (f *fakeFileStore) DeleteFile(_ context.Context, fileURL string) error {
	f.deleted = append(f.deleted, fileURL)
	return nil
}
