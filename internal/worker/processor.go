package worker

import (
	"context"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	db "github.com/katatrina/vgvault-BE/internal/db/sqlc"
	"github.com/katatrina/vgvault-BE/internal/mailer"
	"github.com/rs/zerolog/log"
)

/*
 This file contains code that will pick up the tasks from the Redis queue and process them.
*/

const (
	QueueCritical = "critical"
	QueueDefault  = "default"
)

// AuctionExpirer ends an auction whose end date has passed.
type AuctionExpirer interface {
	ExpireAuction(ctx context.Context, auctionID uuid.UUID) (db.EndAuctionTxResult, error)
}

type RedisTaskProcessor struct {
	server  *asynq.Server
	expirer AuctionExpirer
	mailer  mailer.EmailSender
}

// NewRedisTaskProcessor creates the task processor. sender may be nil when email delivery is disabled.
func NewRedisTaskProcessor(redisOpt asynq.RedisClientOpt, expirer AuctionExpirer, sender mailer.EmailSender) *RedisTaskProcessor {
	server := asynq.NewServer(
		redisOpt,
		asynq.Config{
			Queues: map[string]int{
				QueueCritical: 10,
				QueueDefault:  5,
			},
			ErrorHandler: asynq.ErrorHandlerFunc(func(ctx context.Context, task *asynq.Task, err error) {
				log.Error().Err(err).Str("type", task.Type()).
					Bytes("payload", task.Payload()).Msg("process task failed")
			}),
			Logger: NewLogger(),
		},
	)

	return &RedisTaskProcessor{
		server:  server,
		expirer: expirer,
		mailer:  sender,
	}
}

// Start registers the task handlers for the mux, attaches the mux to the asynq server, and starts the server.
func (processor *RedisTaskProcessor) Start() error {
	mux := asynq.NewServeMux()

	mux.HandleFunc(TaskEndAuction, processor.ProcessTaskEndAuction)
	mux.HandleFunc(TaskSendEmail, processor.ProcessTaskSendEmail)

	return processor.server.Start(mux)
}

// Shutdown waits for in-flight tasks and stops the server.
func (processor *RedisTaskProcessor) Shutdown() {
	processor.server.Shutdown()
}
