package repository

import (
	"context"
	"time"

	"hof-drops/internal/infra"
	sqlc "hof-drops/internal/infra/sqlc/generated"
	"hof-drops/internal/pkg/pgconv"
	"hof-drops/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type IdempotencyWriteQueries interface {
	TryInsertIdempotencyKey(ctx context.Context, db sqlc.DBTX, arg sqlc.TryInsertIdempotencyKeyParams) (int64, error)
	GetIdempotencyKey(ctx context.Context, db sqlc.DBTX, arg sqlc.GetIdempotencyKeyParams) (sqlc.IdempotencyKeys, error)
	CompleteIdempotencyKey(ctx context.Context, db sqlc.DBTX, arg sqlc.CompleteIdempotencyKeyParams) error
	DeleteIdempotencyKey(ctx context.Context, db sqlc.DBTX, arg sqlc.DeleteIdempotencyKeyParams) error
	DeleteExpiredIdempotencyKeys(ctx context.Context, db sqlc.DBTX, now pgtype.Timestamptz) (int64, error)
}

type IdempotencyRepository struct {
	queries IdempotencyWriteQueries
}

func NewIdempotencyRepository(queries IdempotencyWriteQueries) *IdempotencyRepository {
	return &IdempotencyRepository{queries: queries}
}

// TryInsert also reclaims a key whose previous lease has expired.
func (r *IdempotencyRepository) TryInsert(ctx context.Context, db sqlc.DBTX, key uuid.UUID, sessionID, endpoint, requestHash string, expiresAt, now time.Time) (bool, error) {
	params := sqlc.TryInsertIdempotencyKeyParams{
		Key:         key,
		SessionID:   sessionID,
		Endpoint:    endpoint,
		RequestHash: requestHash,
		ExpiresAt:   pgconv.TimeToPgtype(expiresAt),
		Now:         pgconv.TimeToPgtype(now),
	}

	n, err := r.queries.TryInsertIdempotencyKey(ctx, db, params)
	if err != nil {
		return false, infra.WrapRepoErr("failed to try insert idempotency key", err)
	}

	return n == 1, nil
}

func (r *IdempotencyRepository) Get(ctx context.Context, db sqlc.DBTX, key uuid.UUID, sessionID string) (*shared.IdempotencyRecord, error) {
	row, err := r.queries.GetIdempotencyKey(ctx, db, sqlc.GetIdempotencyKeyParams{Key: key, SessionID: sessionID})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get idempotency key", err)
	}

	return &shared.IdempotencyRecord{
		Key:           row.Key,
		SessionID:     row.SessionID,
		Status:        row.Status,
		RequestHash:   row.RequestHash,
		ResultOrderID: pgconv.UUIDPtrFromPgtype(row.ResultOrderID),
		ExpiresAt:     pgconv.TimeFromPgtype(row.ExpiresAt),
	}, nil
}

func (r *IdempotencyRepository) Complete(ctx context.Context, db sqlc.DBTX, key uuid.UUID, sessionID string, orderID uuid.UUID) error {
	params := sqlc.CompleteIdempotencyKeyParams{
		Key:           key,
		SessionID:     sessionID,
		ResultOrderID: pgconv.UUIDToPgtype(orderID),
	}

	if err := r.queries.CompleteIdempotencyKey(ctx, db, params); err != nil {
		return infra.WrapRepoErr("failed to complete idempotency key", err)
	}

	return nil
}

func (r *IdempotencyRepository) Delete(ctx context.Context, db sqlc.DBTX, key uuid.UUID, sessionID string) error {
	if err := r.queries.DeleteIdempotencyKey(ctx, db, sqlc.DeleteIdempotencyKeyParams{Key: key, SessionID: sessionID}); err != nil {
		return infra.WrapRepoErr("failed to delete idempotency key", err)
	}
	return nil
}

func (r *IdempotencyRepository) DeleteExpired(ctx context.Context, db sqlc.DBTX, now time.Time) (int64, error) {
	count, err := r.queries.DeleteExpiredIdempotencyKeys(ctx, db, pgconv.TimeToPgtype(now))
	if err != nil {
		return 0, infra.WrapRepoErr("failed to delete expired idempotency keys", err)
	}

	return count, nil
}
