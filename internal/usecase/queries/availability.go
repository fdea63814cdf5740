package queries

import (
	"context"
	"log/slog"
	"time"

	"hof-drops/internal/domain/drop"
	"hof-drops/internal/domain/reservation"
	"hof-drops/internal/infra"
	"hof-drops/internal/pkg/clock"
	"hof-drops/internal/pkg/errs"

	"github.com/google/uuid"
)

type AvailabilityQueries interface {
	GetProductAvailability(ctx context.Context, productID uuid.UUID) (*AvailabilityView, error)
}

type CatalogViewRepo interface {
	FindProduct(ctx context.Context, id uuid.UUID) (*ProductRecord, error)
	SweepExpiredForProduct(ctx context.Context, productID uuid.UUID, now time.Time) (int64, error)
	// VariantAvailability fills Ledger and Held; Available is derived here.
	VariantAvailability(ctx context.Context, productID uuid.UUID, now time.Time) ([]VariantAvailabilityView, error)
	DropCandidates(ctx context.Context, now time.Time) ([]ProductRecord, error)
}

type availabilityQueriesImpl struct {
	repo  CatalogViewRepo
	clock clock.Clock
}

func NewAvailabilityQueries(repo CatalogViewRepo, clock clock.Clock) AvailabilityQueries {
	return &availabilityQueriesImpl{repo: repo, clock: clock}
}

func (q *availabilityQueriesImpl) GetProductAvailability(ctx context.Context, productID uuid.UUID) (*AvailabilityView, error) {
	now := q.clock.Now()

	product, err := findActiveProduct(ctx, q.repo, productID)
	if err != nil {
		return nil, err
	}

	if n, err := q.repo.SweepExpiredForProduct(ctx, productID, now); err != nil {
		// expired holds are excluded from the sum regardless, so the read can proceed
		slog.WarnContext(ctx, "expired hold sweep failed before availability read",
			"product_id", productID, "error", err.Error())
	} else if n > 0 {
		slog.DebugContext(ctx, "swept expired holds", "product_id", productID, "count", n)
	}

	variants, err := q.repo.VariantAvailability(ctx, productID, now)
	if err != nil {
		return nil, err
	}
	for i := range variants {
		variants[i].Available = reservation.NewAvailability(variants[i].Ledger, variants[i].Held).Available()
	}

	view := &AvailabilityView{
		ProductID:        product.ID,
		IsLimitedEdition: product.IsLimitedEdition,
		Variants:         variants,
	}
	if product.IsLimitedEdition {
		view.Phase = drop.ReconstructWindow(product.ReleaseDate, product.DropEndDate).Classify(now).String()
	}
	return view, nil
}

func findActiveProduct(ctx context.Context, repo CatalogViewRepo, productID uuid.UUID) (*ProductRecord, error) {
	product, err := repo.FindProduct(ctx, productID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, errs.Wrap(err, "find product")
	}
	if !product.IsActive {
		return nil, ErrProductNotFound
	}
	return product, nil
}
