package repository

import (
	"context"
	"time"

	"hof-drops/internal/domain/reservation"
	"hof-drops/internal/infra"
	"hof-drops/internal/infra/repository/converter"
	sqlc "hof-drops/internal/infra/sqlc/generated"
	"hof-drops/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type ReservationWriteQueries interface {
	SweepExpiredReservations(ctx context.Context, db sqlc.DBTX, now pgtype.Timestamptz) (int64, error)
	SweepExpiredReservationsForVariant(ctx context.Context, db sqlc.DBTX, arg sqlc.SweepExpiredReservationsForVariantParams) (int64, error)
	SumActiveHeldQuantity(ctx context.Context, db sqlc.DBTX, arg sqlc.SumActiveHeldQuantityParams) (int64, error)
	GetActiveReservationForSession(ctx context.Context, db sqlc.DBTX, arg sqlc.GetActiveReservationForSessionParams) (sqlc.CartReservations, error)
	CreateCartReservation(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateCartReservationParams) (uuid.UUID, error)
	RefreshCartReservation(ctx context.Context, db sqlc.DBTX, arg sqlc.RefreshCartReservationParams) (int64, error)
	ReleaseSessionReservations(ctx context.Context, db sqlc.DBTX, arg sqlc.ReleaseSessionReservationsParams) (int64, error)
	ReleaseReservationByID(ctx context.Context, db sqlc.DBTX, arg sqlc.ReleaseReservationByIDParams) (int64, error)
}

type ReservationRepository struct {
	queries ReservationWriteQueries
}

func NewReservationRepository(queries ReservationWriteQueries) *ReservationRepository {
	return &ReservationRepository{queries: queries}
}

func (r *ReservationRepository) SweepExpired(ctx context.Context, db sqlc.DBTX, now time.Time) (int64, error) {
	n, err := r.queries.SweepExpiredReservations(ctx, db, pgconv.TimeToPgtype(now))
	if err != nil {
		return 0, infra.WrapRepoErr("failed to sweep expired reservations", err)
	}
	return n, nil
}

func (r *ReservationRepository) SweepExpiredForVariant(ctx context.Context, db sqlc.DBTX, variantID uuid.UUID, now time.Time) (int64, error) {
	n, err := r.queries.SweepExpiredReservationsForVariant(ctx, db, sqlc.SweepExpiredReservationsForVariantParams{
		Now:       pgconv.TimeToPgtype(now),
		VariantID: variantID,
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to sweep expired reservations for variant", err)
	}
	return n, nil
}

func (r *ReservationRepository) HeldByOthers(ctx context.Context, db sqlc.DBTX, variantID uuid.UUID, sessionID string, now time.Time) (int64, error) {
	held, err := r.queries.SumActiveHeldQuantity(ctx, db, sqlc.SumActiveHeldQuantityParams{
		VariantID:        variantID,
		Now:              pgconv.TimeToPgtype(now),
		ExcludeSessionID: sessionID,
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to sum held quantity", err)
	}
	return held, nil
}

func (r *ReservationRepository) ActiveForSession(ctx context.Context, db sqlc.DBTX, sessionID string, variantID uuid.UUID, now time.Time) (*reservation.CartReservation, error) {
	row, err := r.queries.GetActiveReservationForSession(ctx, db, sqlc.GetActiveReservationForSessionParams{
		SessionID: sessionID,
		VariantID: variantID,
		Now:       pgconv.TimeToPgtype(now),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get active reservation", err)
	}
	res, err := converter.CartReservationFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to map reservation row", err, infra.KindDBFailure)
	}
	return res, nil
}

func (r *ReservationRepository) Create(ctx context.Context, db sqlc.DBTX, res *reservation.CartReservation) (uuid.UUID, error) {
	id, err := r.queries.CreateCartReservation(ctx, db, converter.CartReservationToCreateParams(res))
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create reservation", err)
	}
	return id, nil
}

func (r *ReservationRepository) Refresh(ctx context.Context, db sqlc.DBTX, res *reservation.CartReservation) error {
	n, err := r.queries.RefreshCartReservation(ctx, db, converter.CartReservationToRefreshParams(res))
	if err != nil {
		return infra.WrapRepoErr("failed to refresh reservation", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("reservation is no longer active", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ReservationRepository) ReleaseSession(ctx context.Context, db sqlc.DBTX, sessionID string, now time.Time) (int64, error) {
	n, err := r.queries.ReleaseSessionReservations(ctx, db, sqlc.ReleaseSessionReservationsParams{
		Now:       pgconv.TimeToPgtype(now),
		SessionID: sessionID,
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to release session reservations", err)
	}
	return n, nil
}

func (r *ReservationRepository) ReleaseByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID, sessionID string, now time.Time) (bool, error) {
	n, err := r.queries.ReleaseReservationByID(ctx, db, sqlc.ReleaseReservationByIDParams{
		Now:       pgconv.TimeToPgtype(now),
		ID:        id,
		SessionID: sessionID,
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to release reservation", err)
	}
	return n > 0, nil
}
