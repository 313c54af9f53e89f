package notification

import (
	"context"

	"github.com/google/uuid"
	db "github.com/katatrina/vgvault-BE/internal/db/sqlc"
	"github.com/katatrina/vgvault-BE/internal/event"
	"github.com/katatrina/vgvault-BE/internal/metrics"
)

// EmailQueue hands an email off to background delivery.
type EmailQueue interface {
	EnqueueEmail(ctx context.Context, to, subject, body string) error
}

// Mirror is an external copy of the notifications table that must follow
// read state and auction deletion.
type Mirror interface {
	MarkRead(ctx context.Context, notificationID uuid.UUID) error
	MarkAllRead(ctx context.Context, userID uuid.UUID) error
	DeleteByAuction(ctx context.Context, auctionID uuid.UUID) error
}

// Notifier is what the auction service needs from the dispatcher.
type Notifier interface {
	Notify(ctx context.Context, n Notification) (db.Notification, error)
	// ForgetAuction drops copies of the auction's notifications kept outside Postgres.
	ForgetAuction(ctx context.Context, auctionID uuid.UUID)
}

// Dispatcher stores notifications in Postgres and pushes them to connected clients.
type Dispatcher struct {
	store       db.Store
	broadcaster event.Broadcaster
	emails      EmailQueue
	mirror      Mirror
	metrics     metrics.Recorder
}

// NewDispatcher creates a dispatcher. emails may be nil when email delivery is disabled.
func NewDispatcher(store db.Store, broadcaster event.Broadcaster, emails EmailQueue, recorder metrics.Recorder) *Dispatcher {
	if recorder == nil {
		recorder = metrics.Nop{}
	}

	return &Dispatcher{
		store:       store,
		broadcaster: broadcaster,
		emails:      emails,
		metrics:     recorder,
	}
}

// WithMirror keeps mirror in step with read and delete operations.
func (d *Dispatcher) WithMirror(mirror Mirror) *Dispatcher {
	d.mirror = mirror
	return d
}

var _ Notifier = (*Dispatcher)(nil)
