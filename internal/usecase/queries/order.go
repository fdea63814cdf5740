package queries

import (
	"context"

	"hof-drops/internal/domain/order"
	"hof-drops/internal/infra"
	"hof-drops/internal/pkg/errs"

	"github.com/google/uuid"
)

type OrderQueries interface {
	// GetByNumber only returns orders placed by sessionID.
	GetByNumber(ctx context.Context, number, sessionID string) (*OrderView, error)
	// GetByIDSystem skips the session check; used for idempotent replays.
	GetByIDSystem(ctx context.Context, id uuid.UUID) (*OrderView, error)
}

type OrderViewRepo interface {
	FindByNumber(ctx context.Context, number string) (*OrderView, error)
	FindByID(ctx context.Context, id uuid.UUID) (*OrderView, error)
}

type orderQueriesImpl struct {
	repo OrderViewRepo
}

func NewOrderQueries(repo OrderViewRepo) OrderQueries {
	return &orderQueriesImpl{repo: repo}
}

func (q *orderQueriesImpl) GetByNumber(ctx context.Context, number, sessionID string) (*OrderView, error) {
	n, err := order.ParseNumber(number)
	if err != nil {
		return nil, ErrOrderNotFound
	}
	view, err := q.repo.FindByNumber(ctx, n.String())
	if err != nil {
		return nil, mapOrderErr(err)
	}
	if view.SessionID == "" || view.SessionID != sessionID {
		return nil, ErrOrderNotFound
	}
	return view, nil
}

func (q *orderQueriesImpl) GetByIDSystem(ctx context.Context, id uuid.UUID) (*OrderView, error) {
	view, err := q.repo.FindByID(ctx, id)
	if err != nil {
		return nil, mapOrderErr(err)
	}
	return view, nil
}

func mapOrderErr(err error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return ErrOrderNotFound
	}
	return errs.Wrap(err, "find order")
}
