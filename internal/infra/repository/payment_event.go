package repository

import (
	"context"
	"time"

	"hof-drops/internal/infra"
	sqlc "hof-drops/internal/infra/sqlc/generated"
	"hof-drops/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type PaymentEventWriteQueries interface {
	InsertPaymentEvent(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertPaymentEventParams) (int64, error)
}

type PaymentEventRepository struct {
	queries PaymentEventWriteQueries
}

func NewPaymentEventRepository(queries PaymentEventWriteQueries) *PaymentEventRepository {
	return &PaymentEventRepository{queries: queries}
}

func (r *PaymentEventRepository) Record(ctx context.Context, db sqlc.DBTX, eventID, eventType string, orderID *uuid.UUID, now time.Time) (bool, error) {
	n, err := r.queries.InsertPaymentEvent(ctx, db, sqlc.InsertPaymentEventParams{
		EventID:     eventID,
		EventType:   eventType,
		OrderID:     pgconv.UUIDPtrToPgtype(orderID),
		ProcessedAt: pgconv.TimeToPgtype(now),
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to record payment event", err)
	}
	return n == 1, nil
}
