package event

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// Fanout publishes every event to all of its broadcasters.
type Fanout []Broadcaster

func (f Fanout) PublishToUser(ctx context.Context, userID uuid.UUID, evt Event) error {
	var errs []error
	for _, b := range f {
		if err := b.PublishToUser(ctx, userID, evt); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (f Fanout) PublishToAuction(ctx context.Context, auctionID uuid.UUID, evt Event) error {
	var errs []error
	for _, b := range f {
		if err := b.PublishToAuction(ctx, auctionID, evt); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
