package worker

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	db "github.com/katatrina/vgvault-BE/internal/db/sqlc"
	"github.com/rs/zerolog/log"
)

type PayloadEndAuction struct {
	AuctionID uuid.UUID `json:"auction_id"`
}

// EndAuctionTaskID is unique per auction, so scheduling twice never creates two tasks.
func EndAuctionTaskID(auctionID uuid.UUID) string {
	return fmt.Sprintf("auction:end:%s", auctionID.String())
}

// DistributeTaskEndAuction schedules the task that ends an auction.
func (distributor *RedisTaskDistributor) DistributeTaskEndAuction(
	ctx context.Context,
	payload *PayloadEndAuction,
	opts ...asynq.Option,
) error {
	jsonPayload, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal task payload: %w", err)
	}

	taskID := EndAuctionTaskID(payload.AuctionID)
	task := asynq.NewTask(TaskEndAuction, jsonPayload, append(opts, asynq.TaskID(taskID))...)
	info, err := distributor.client.EnqueueContext(ctx, task)
	if err != nil {
		return fmt.Errorf("failed to enqueue task: %w", err)
	}

	log.Info().
		Str("type", task.Type()).
		Str("task_id", taskID).
		Str("auction_id", payload.AuctionID.String()).
		Str("queue", info.Queue).
		Int("max_retry", info.MaxRetry).
		Time("process_at", info.NextProcessAt).
		Msg("auction end task scheduled")

	return nil
}

// ScheduleAuctionEnd enqueues the end task to run at the auction's end date.
func (distributor *RedisTaskDistributor) ScheduleAuctionEnd(ctx context.Context, auctionID uuid.UUID, endDate time.Time) error {
	err := distributor.DistributeTaskEndAuction(ctx, &PayloadEndAuction{AuctionID: auctionID},
		asynq.ProcessAt(endDate),
		asynq.Queue(QueueCritical),
		asynq.MaxRetry(10),
	)
	if errors.Is(err, asynq.ErrTaskIDConflict) {
		return nil
	}

	return err
}

// ProcessTaskEndAuction ends the auction through the same path as the expiry sweeper.
func (processor *RedisTaskProcessor) ProcessTaskEndAuction(
	ctx context.Context,
	task *asynq.Task,
) error {
	var payload PayloadEndAuction
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return fmt.Errorf("failed to unmarshal payload: %w", asynq.SkipRetry)
	}

	log.Info().
		Str("auction_id", payload.AuctionID.String()).
		Msg("processing auction end task")

	result, err := processor.expirer.ExpireAuction(ctx, payload.AuctionID)
	if err != nil {
		switch {
		case errors.Is(err, db.ErrRecordNotFound):
			log.Info().
				Str("auction_id", payload.AuctionID.String()).
				Msg("auction not found, skipping task")
			return nil
		case errors.Is(err, db.ErrAuctionNotDue):
			// Fired before the end date; asynq retries with backoff.
			return err
		}
		return fmt.Errorf("failed to end auction: %w", err)
	}

	if !result.Ended {
		log.Info().
			Str("auction_id", payload.AuctionID.String()).
			Msg("auction already ended, skipping task")
		return nil
	}

	log.Info().
		Str("auction_id", payload.AuctionID.String()).
		Bool("has_winner", result.Winner != nil).
		Msg("auction ended successfully")

	return nil
}
