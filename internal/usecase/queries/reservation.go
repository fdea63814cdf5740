package queries

import (
	"context"
	"time"

	"hof-drops/internal/pkg/clock"
)

type ReservationQueries interface {
	ListForSession(ctx context.Context, sessionID string) ([]ReservationView, error)
}

type ReservationViewRepo interface {
	ListActiveForSession(ctx context.Context, sessionID string, now time.Time) ([]ReservationView, error)
}

type reservationQueriesImpl struct {
	repo  ReservationViewRepo
	clock clock.Clock
}

func NewReservationQueries(repo ReservationViewRepo, clock clock.Clock) ReservationQueries {
	return &reservationQueriesImpl{repo: repo, clock: clock}
}

func (q *reservationQueriesImpl) ListForSession(ctx context.Context, sessionID string) ([]ReservationView, error) {
	if sessionID == "" {
		return []ReservationView{}, nil
	}
	now := q.clock.Now()
	views, err := q.repo.ListActiveForSession(ctx, sessionID, now)
	if err != nil {
		return nil, err
	}
	for i := range views {
		if remaining := views[i].ExpiresAt.Sub(now); remaining > 0 {
			views[i].RemainingMs = remaining.Milliseconds()
		}
	}
	return views, nil
}
