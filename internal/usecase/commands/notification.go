package commands

import (
	"context"
	"log/slog"
	"time"

	"hof-drops/internal/domain/notification"
	"hof-drops/internal/infra/messaging"
	"hof-drops/internal/pkg/clock"
	"hof-drops/internal/pkg/errs"
	"hof-drops/internal/usecase/shared"
)

const (
	baseRetryDelay = 5 * time.Second
	maxRetryDelay  = 10 * time.Minute
)

type NotificationPublisher interface {
	Publish(ctx context.Context, ev messaging.Event) error
}

type DispatchResult struct {
	Sent    int
	Retried int
	Failed  int
	Skipped int
}

type NotificationCommands interface {
	// DispatchDue publishes one batch of queued jobs. Publish failures never
	// surface as errors; only storage failures do.
	DispatchDue(ctx context.Context) (*DispatchResult, error)
}

type notificationUseCaseImpl struct {
	uow         shared.UnitOfWork
	publisher   NotificationPublisher
	clock       clock.Clock
	batchSize   int32
	maxAttempts int32
}

func NewNotificationUseCase(uow shared.UnitOfWork, publisher NotificationPublisher, clock clock.Clock, batchSize, maxAttempts int32) NotificationCommands {
	return &notificationUseCaseImpl{
		uow:         uow,
		publisher:   publisher,
		clock:       clock,
		batchSize:   batchSize,
		maxAttempts: maxAttempts,
	}
}

func (n *notificationUseCaseImpl) DispatchDue(ctx context.Context) (*DispatchResult, error) {
	var result *DispatchResult
	err := n.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		result = &DispatchResult{}
		now := n.clock.Now()

		jobs, err := tx.Notifications().Due(ctx, tx.DB(), now, n.batchSize)
		if err != nil {
			return err
		}

		// Delivery is at-least-once: a retried transaction republishes the batch,
		// so consumers dedupe on the job ID carried as the message key.
		for i, job := range jobs {
			pubErr := n.publisher.Publish(ctx, messaging.Event{
				Key:       job.ID.String(),
				EventType: job.Kind,
				Payload:   job.Payload,
			})

			if errs.Is(pubErr, messaging.ErrPublisherUnavailable) {
				// breaker is open; leave the rest queued untouched
				result.Skipped = len(jobs) - i
				slog.WarnContext(ctx, "notification publisher unavailable, deferring batch", "deferred", result.Skipped)
				return nil
			}

			status, lastErr, runAt := n.nextState(job, pubErr, now)
			if err := tx.Notifications().UpdateStatus(ctx, tx.DB(), job.ID, status, lastErr, runAt); err != nil {
				return err
			}

			switch status {
			case notification.StatusSent:
				result.Sent++
			case notification.StatusFailed:
				result.Failed++
				slog.ErrorContext(ctx, "notification job exhausted retries",
					"job_id", job.ID, "kind", job.Kind, "error", lastErr)
			default:
				result.Retried++
				slog.WarnContext(ctx, "notification publish failed, will retry",
					"job_id", job.ID, "kind", job.Kind, "attempt", job.Attempts+1, "error", lastErr)
			}
		}
		return nil
	})
	if err != nil {
		return nil, errs.Mark(err, ErrTransactionFailure)
	}
	return result, nil
}

func (n *notificationUseCaseImpl) nextState(job shared.NotificationJobRecord, pubErr error, now time.Time) (notification.JobStatus, string, time.Time) {
	if pubErr == nil {
		return notification.StatusSent, "", now
	}
	attempts := job.Attempts + 1
	if attempts >= n.maxAttempts {
		return notification.StatusFailed, pubErr.Error(), now
	}
	return notification.StatusQueued, pubErr.Error(), now.Add(retryDelay(attempts))
}

func retryDelay(attempts int32) time.Duration {
	d := baseRetryDelay
	for i := int32(1); i < attempts && d < maxRetryDelay; i++ {
		d *= 2
	}
	return min(d, maxRetryDelay)
}
