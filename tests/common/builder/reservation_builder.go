//go:build unit || e2e

package builder

import (
	"time"

	"hof-drops/internal/domain/reservation"
	sqlc "hof-drops/internal/infra/sqlc/generated"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type ReservationBuilder struct {
	ID        uuid.UUID
	SessionID string
	ProductID uuid.UUID
	VariantID uuid.UUID
	Quantity  int
	Hold      time.Duration
	IsActive  bool
	CreatedAt time.Time
}

func NewReservationBuilder() *ReservationBuilder {
	return &ReservationBuilder{
		ID:        uuid.New(),
		SessionID: "sess-1",
		ProductID: uuid.New(),
		VariantID: uuid.New(),
		Quantity:  1,
		Hold:      15 * time.Minute,
		IsActive:  true,
		CreatedAt: time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC),
	}
}

func (r *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(r)
	return r
}

// Build methods
func (r *ReservationBuilder) BuildDomain() (*reservation.CartReservation, error) {
	sessionID, err := reservation.NewSessionID(r.SessionID)
	if err != nil {
		return nil, err
	}
	qty, err := reservation.NewQuantity(r.Quantity)
	if err != nil {
		return nil, err
	}
	return reservation.ReconstructCartReservation(
		r.ID, sessionID, r.ProductID, r.VariantID, qty,
		r.CreatedAt.Add(r.Hold), r.IsActive, r.CreatedAt, r.CreatedAt,
	), nil
}

func (r *ReservationBuilder) BuildInfra() sqlc.CartReservations {
	return sqlc.CartReservations{
		ID:        r.ID,
		SessionID: r.SessionID,
		ProductID: r.ProductID,
		VariantID: r.VariantID,
		Quantity:  int32(r.Quantity),
		ExpiresAt: pgtype.Timestamptz{Time: r.CreatedAt.Add(r.Hold), Valid: true},
		IsActive:  r.IsActive,
		CreatedAt: pgtype.Timestamptz{Time: r.CreatedAt, Valid: true},
		UpdatedAt: pgtype.Timestamptz{Time: r.CreatedAt, Valid: true},
	}
}
