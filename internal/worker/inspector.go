package worker

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"
)

type TaskInspector interface {
	DeleteTask(ctx context.Context, queue, taskID string) error
	GetTaskInfo(ctx context.Context, queue, taskID string) (*asynq.TaskInfo, error)
	CancelAuctionEnd(ctx context.Context, auctionID uuid.UUID) error
	Close() error
}

type RedisTaskInspector struct {
	inspector *asynq.Inspector
}

func NewTaskInspector(redisOpt asynq.RedisClientOpt) TaskInspector {
	return &RedisTaskInspector{
		inspector: asynq.NewInspector(redisOpt),
	}
}

func (i *RedisTaskInspector) DeleteTask(ctx context.Context, queue, taskID string) error {
	return i.inspector.DeleteTask(queue, taskID)
}

func (i *RedisTaskInspector) GetTaskInfo(ctx context.Context, queue, taskID string) (*asynq.TaskInfo, error) {
	return i.inspector.GetTaskInfo(queue, taskID)
}

// CancelAuctionEnd removes the scheduled end task of an auction, if one is still pending.
func (i *RedisTaskInspector) CancelAuctionEnd(ctx context.Context, auctionID uuid.UUID) error {
	taskID := EndAuctionTaskID(auctionID)

	err := i.DeleteTask(ctx, QueueCritical, taskID)
	if err != nil {
		if errors.Is(err, asynq.ErrTaskNotFound) || errors.Is(err, asynq.ErrQueueNotFound) {
			return nil
		}
		return fmt.Errorf("failed to delete task %s: %w", taskID, err)
	}

	log.Info().Str("task_id", taskID).Str("auction_id", auctionID.String()).Msg("auction end task cancelled")
	return nil
}

func (i *RedisTaskInspector) Close() error {
	return i.inspector.Close()
}
