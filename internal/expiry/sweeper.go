// Package expiry ends auctions whose end date has passed.
package expiry

import (
	"context"
	"fmt"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/rs/zerolog/log"
)

const sweepJobName = "expire_auctions"

type AuctionSweeper interface {
	SweepExpire(ctx context.Context) (int, error)
}

// Sweeper runs the expiry sweep on a fixed interval, and once at start.
// It backs up the per-auction end tasks, which can be lost when Redis is.
type Sweeper struct {
	auctions  AuctionSweeper
	interval  time.Duration
	scheduler gocron.Scheduler
	ctx       context.Context
	cancel    context.CancelFunc
}

func NewSweeper(auctions AuctionSweeper, interval time.Duration) (*Sweeper, error) {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return nil, fmt.Errorf("failed to create scheduler: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	return &Sweeper{
		auctions:  auctions,
		interval:  interval,
		scheduler: scheduler,
		ctx:       ctx,
		cancel:    cancel,
	}, nil
}

func (s *Sweeper) Start() error {
	_, err := s.scheduler.NewJob(
		gocron.DurationJob(s.interval),
		gocron.NewTask(s.sweep),
		gocron.WithName(sweepJobName),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
		gocron.WithStartAt(gocron.WithStartImmediately()),
	)
	if err != nil {
		return fmt.Errorf("failed to schedule %s job: %w", sweepJobName, err)
	}

	s.scheduler.Start()
	log.Info().Dur("interval", s.interval).Msg("expiry sweeper started")
	return nil
}

// Stop cancels a running sweep and waits for it to return.
func (s *Sweeper) Stop() error {
	s.cancel()
	return s.scheduler.Shutdown()
}

func (s *Sweeper) sweep() {
	ended, err := s.auctions.SweepExpire(s.ctx)
	if err != nil {
		if s.ctx.Err() != nil {
			return
		}
		log.Err(err).Str("job", sweepJobName).Msg("expiry sweep failed")
		return
	}

	log.Debug().Str("job", sweepJobName).Int("ended", ended).Msg("expiry sweep finished")
}
