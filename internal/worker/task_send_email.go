package worker

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
	"github.com/katatrina/vgvault-BE/internal/mailer"
	"github.com/rs/zerolog/log"
)

// PayloadSendEmail contain all data of the task that we want to store in Redis.
type PayloadSendEmail struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

func (distributor *RedisTaskDistributor) DistributeTaskSendEmail(
	ctx context.Context,
	payload *PayloadSendEmail,
	opts ...asynq.Option,
) error {
	jsonPayload, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal task payload: %w", err)
	}

	task := asynq.NewTask(TaskSendEmail, jsonPayload, opts...)
	info, err := distributor.client.EnqueueContext(ctx, task)
	if err != nil {
		return fmt.Errorf("failed to enqueue task: %w", err)
	}

	log.Info().Str("type", task.Type()).Str("queue", info.Queue).Int("max_retry", info.MaxRetry).Msg("task enqueued")

	return nil
}

// EnqueueEmail queues a plain email on the default queue.
func (distributor *RedisTaskDistributor) EnqueueEmail(ctx context.Context, to, subject, body string) error {
	return distributor.DistributeTaskSendEmail(ctx, &PayloadSendEmail{
		To:      to,
		Subject: subject,
		Body:    body,
	}, asynq.Queue(QueueDefault), asynq.MaxRetry(5))
}

func (processor *RedisTaskProcessor) ProcessTaskSendEmail(
	ctx context.Context,
	task *asynq.Task,
) error {
	// Emails queued while SMTP was configured can outlive a restart without it.
	if processor.mailer == nil {
		log.Warn().Str("type", task.Type()).Msg("email delivery disabled, dropping task")
		return fmt.Errorf("email delivery is disabled: %w", asynq.SkipRetry)
	}

	var payload PayloadSendEmail
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return fmt.Errorf("failed to unmarshal payload: %w", asynq.SkipRetry)
	}

	err := processor.mailer.SendEmail(ctx, mailer.EmailHeader{
		Subject: payload.Subject,
		To:      []string{payload.To},
	}, payload.Body)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	log.Info().Str("type", task.Type()).Str("subject", payload.Subject).Msg("task processed")

	return nil
}
