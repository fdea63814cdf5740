package repository

import (
	"context"
	"time"

	"hof-drops/internal/domain/notification"
	"hof-drops/internal/infra"
	sqlc "hof-drops/internal/infra/sqlc/generated"
	"hof-drops/internal/pkg/pgconv"
	"hof-drops/internal/usecase/shared"

	"github.com/google/uuid"
)

type NotificationWriteQueries interface {
	CreateNotificationJob(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateNotificationJobParams) error
	ListDueNotificationJobs(ctx context.Context, db sqlc.DBTX, arg sqlc.ListDueNotificationJobsParams) ([]sqlc.NotificationJobs, error)
	UpdateNotificationJobStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateNotificationJobStatusParams) error
}

type NotificationRepository struct {
	queries NotificationWriteQueries
}

func NewNotificationRepository(queries NotificationWriteQueries) *NotificationRepository {
	return &NotificationRepository{queries: queries}
}

func (r *NotificationRepository) Enqueue(ctx context.Context, db sqlc.DBTX, job notification.Job) error {
	params := sqlc.CreateNotificationJobParams{
		Kind:    string(job.Kind),
		Channel: job.Channel,
		Payload: job.Payload,
		RunAt:   pgconv.TimeToPgtype(job.RunAt),
	}

	if err := r.queries.CreateNotificationJob(ctx, db, params); err != nil {
		return infra.WrapRepoErr("failed to create notification job", err)
	}

	return nil
}

// Due locks up to limit queued jobs; other dispatchers skip them until commit.
func (r *NotificationRepository) Due(ctx context.Context, db sqlc.DBTX, now time.Time, limit int32) ([]shared.NotificationJobRecord, error) {
	rows, err := r.queries.ListDueNotificationJobs(ctx, db, sqlc.ListDueNotificationJobsParams{
		Now:       pgconv.TimeToPgtype(now),
		BatchSize: limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list due notification jobs", err)
	}

	jobs := make([]shared.NotificationJobRecord, 0, len(rows))
	for _, row := range rows {
		jobs = append(jobs, shared.NotificationJobRecord{
			ID:       row.ID,
			Kind:     row.Kind,
			Channel:  row.Channel,
			Payload:  row.Payload,
			Attempts: row.Attempts,
		})
	}
	return jobs, nil
}

func (r *NotificationRepository) UpdateStatus(ctx context.Context, db sqlc.DBTX, id uuid.UUID, status notification.JobStatus, lastErr string, runAt time.Time) error {
	params := sqlc.UpdateNotificationJobStatusParams{
		Status:    string(status),
		LastError: pgconv.OptionalStringToPgtype(lastErr),
		RunAt:     pgconv.TimeToPgtype(runAt),
		ID:        id,
	}

	if err := r.queries.UpdateNotificationJobStatus(ctx, db, params); err != nil {
		return infra.WrapRepoErr("failed to update notification job status", err)
	}

	return nil
}
