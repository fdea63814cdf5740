package readstore

import (
	"context"
	"time"

	"hof-drops/internal/infra"
	sqlc "hof-drops/internal/infra/sqlc/generated"
	"hof-drops/internal/pkg/pgconv"
	"hof-drops/internal/usecase/queries"
)

type ReservationViewQueries interface {
	ListSessionReservations(ctx context.Context, db sqlc.DBTX, arg sqlc.ListSessionReservationsParams) ([]sqlc.ListSessionReservationsRow, error)
}

type ReservationReadStore struct {
	queries ReservationViewQueries
	db      sqlc.DBTX
}

func NewReservationReadStore(queries ReservationViewQueries, db sqlc.DBTX) *ReservationReadStore {
	return &ReservationReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ReservationReadStore) ListActiveForSession(ctx context.Context, sessionID string, now time.Time) ([]queries.ReservationView, error) {
	rows, err := r.queries.ListSessionReservations(ctx, r.db, sqlc.ListSessionReservationsParams{
		SessionID: sessionID,
		Now:       pgconv.TimeToPgtype(now),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list session reservations", err)
	}

	result := make([]queries.ReservationView, len(rows))
	for i, row := range rows {
		result[i] = queries.ReservationView{
			ID:          row.ID,
			ProductID:   row.ProductID,
			VariantID:   row.VariantID,
			ProductName: row.ProductName,
			SKU:         row.Sku,
			Quantity:    row.Quantity,
			ExpiresAt:   pgconv.TimeFromPgtype(row.ExpiresAt),
			CreatedAt:   pgconv.TimeFromPgtype(row.CreatedAt),
		}
	}
	return result, nil
}
