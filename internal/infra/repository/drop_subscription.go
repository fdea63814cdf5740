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

type DropSubscriptionWriteQueries interface {
	UpsertDropNotification(ctx context.Context, db sqlc.DBTX, arg sqlc.UpsertDropNotificationParams) (sqlc.UpsertDropNotificationRow, error)
	ListPendingDropNotifications(ctx context.Context, db sqlc.DBTX, productID uuid.UUID) ([]sqlc.ListPendingDropNotificationsRow, error)
	MarkDropNotificationsNotified(ctx context.Context, db sqlc.DBTX, arg sqlc.MarkDropNotificationsNotifiedParams) (int64, error)
}

type DropSubscriptionRepository struct {
	queries DropSubscriptionWriteQueries
}

func NewDropSubscriptionRepository(queries DropSubscriptionWriteQueries) *DropSubscriptionRepository {
	return &DropSubscriptionRepository{queries: queries}
}

func (r *DropSubscriptionRepository) Upsert(ctx context.Context, db sqlc.DBTX, s *notification.DropSubscription) (bool, error) {
	row, err := r.queries.UpsertDropNotification(ctx, db, sqlc.UpsertDropNotificationParams{
		Email:     s.Email().String(),
		ProductID: s.ProductID(),
		Source:    s.Source(),
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to upsert drop subscription", err)
	}
	return row.Inserted, nil
}

func (r *DropSubscriptionRepository) PendingForProduct(ctx context.Context, db sqlc.DBTX, productID uuid.UUID) ([]shared.PendingSubscriber, error) {
	rows, err := r.queries.ListPendingDropNotifications(ctx, db, productID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list pending drop subscriptions", err)
	}
	out := make([]shared.PendingSubscriber, 0, len(rows))
	for _, row := range rows {
		out = append(out, shared.PendingSubscriber{ID: row.ID, Email: row.Email})
	}
	return out, nil
}

func (r *DropSubscriptionRepository) MarkNotified(ctx context.Context, db sqlc.DBTX, ids []uuid.UUID, now time.Time) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	n, err := r.queries.MarkDropNotificationsNotified(ctx, db, sqlc.MarkDropNotificationsNotifiedParams{
		Now: pgconv.TimeToPgtype(now),
		Ids: ids,
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to mark subscribers notified", err)
	}
	return n, nil
}
