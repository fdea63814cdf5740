package converter

import (
	"hof-drops/internal/domain/reservation"
	sqlc "hof-drops/internal/infra/sqlc/generated"
	"hof-drops/internal/pkg/errs"
	"hof-drops/internal/pkg/pgconv"
)

func CartReservationToCreateParams(r *reservation.CartReservation) sqlc.CreateCartReservationParams {
	return sqlc.CreateCartReservationParams{
		ID:        r.ID(),
		SessionID: r.SessionID().String(),
		ProductID: r.ProductID(),
		VariantID: r.VariantID(),
		Quantity:  r.Quantity().Int32(),
		ExpiresAt: pgconv.TimeToPgtype(r.ExpiresAt()),
		CreatedAt: pgconv.TimeToPgtype(r.CreatedAt()),
	}
}

func CartReservationToRefreshParams(r *reservation.CartReservation) sqlc.RefreshCartReservationParams {
	return sqlc.RefreshCartReservationParams{
		ID:        r.ID(),
		Quantity:  r.Quantity().Int32(),
		ExpiresAt: pgconv.TimeToPgtype(r.ExpiresAt()),
		UpdatedAt: pgconv.TimeToPgtype(r.UpdatedAt()),
	}
}

// CartReservationFromRow rebuilds the entity; rows violating the value object
// rules are reported rather than silently clamped.
func CartReservationFromRow(row sqlc.CartReservations) (*reservation.CartReservation, error) {
	sessionID, err := reservation.NewSessionID(row.SessionID)
	if err != nil {
		return nil, errs.Wrapf(err, "reservation %s has invalid session id", row.ID)
	}
	qty, err := reservation.NewQuantity(int(row.Quantity))
	if err != nil {
		return nil, errs.Wrapf(err, "reservation %s has invalid quantity", row.ID)
	}
	return reservation.ReconstructCartReservation(
		row.ID,
		sessionID,
		row.ProductID,
		row.VariantID,
		qty,
		pgconv.TimeFromPgtype(row.ExpiresAt),
		row.IsActive,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}
