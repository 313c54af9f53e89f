// Package auction runs the auction lifecycle: bidding, buy now, early end, expiry and deletion.
package auction

import (
	"context"
	"time"

	"github.com/google/uuid"
	db "github.com/katatrina/vgvault-BE/internal/db/sqlc"
	"github.com/katatrina/vgvault-BE/internal/event"
	"github.com/katatrina/vgvault-BE/internal/metrics"
	"github.com/katatrina/vgvault-BE/internal/notification"
	"github.com/katatrina/vgvault-BE/internal/storage"
	"github.com/microcosm-cc/bluemonday"
)

const (
	DefaultListLimit     = 100
	DefaultUserListLimit = 50
)

// EndScheduler schedules the precise end of an auction at its end date.
type EndScheduler interface {
	ScheduleAuctionEnd(ctx context.Context, auctionID uuid.UUID, endDate time.Time) error
}

// EndCanceller drops a pending scheduled end.
type EndCanceller interface {
	CancelAuctionEnd(ctx context.Context, auctionID uuid.UUID) error
}

type Service struct {
	store       db.Store
	notifier    notification.Notifier
	broadcaster event.Broadcaster
	files       storage.FileStore
	scheduler   EndScheduler
	canceller   EndCanceller
	metrics     metrics.Recorder

	titlePolicy       *bluemonday.Policy
	descriptionPolicy *bluemonday.Policy

	now func() time.Time
}

type Option func(*Service)

// WithFileStore sets where auction images go. Without it uploads are skipped.
func WithFileStore(files storage.FileStore) Option {
	return func(s *Service) {
		s.files = files
	}
}

func WithEndScheduler(scheduler EndScheduler, canceller EndCanceller) Option {
	return func(s *Service) {
		s.scheduler = scheduler
		s.canceller = canceller
	}
}

func WithMetrics(recorder metrics.Recorder) Option {
	return func(s *Service) {
		s.metrics = recorder
	}
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

func NewService(store db.Store, notifier notification.Notifier, broadcaster event.Broadcaster, opts ...Option) *Service {
	s := &Service{
		store:             store,
		notifier:          notifier,
		broadcaster:       broadcaster,
		files:             storage.NoopStore{},
		metrics:           metrics.Nop{},
		titlePolicy:       bluemonday.StrictPolicy(),
		descriptionPolicy: newDescriptionPolicy(),
		now:               time.Now,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

func newDescriptionPolicy() *bluemonday.Policy {
	p := bluemonday.NewPolicy()
	p.AllowElements("p", "br", "ul", "ol", "li", "strong", "em")
	return p
}
