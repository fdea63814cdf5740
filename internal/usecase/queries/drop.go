package queries

import (
	"context"
	"errors"
	"log/slog"

	"hof-drops/internal/domain/drop"
	"hof-drops/internal/pkg/clock"
	"hof-drops/internal/pkg/errs"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"
)

var ErrCacheMiss = errors.New("cache miss")

// ActiveDropCache is a best-effort store; callers fall back to the database on any error.
type ActiveDropCache interface {
	GetActiveDrop(ctx context.Context) (*DropView, error)
	SetActiveDrop(ctx context.Context, view *DropView) error
	InvalidateActiveDrop(ctx context.Context) error
}

type DropQueries interface {
	ActiveDrop(ctx context.Context) (*DropView, error)
	ProductDrop(ctx context.Context, productID uuid.UUID) (*DropView, error)
}

type dropQueriesImpl struct {
	repo  CatalogViewRepo
	cache ActiveDropCache
	clock clock.Clock
	sfg   singleflight.Group // collapses concurrent cache misses
}

func NewDropQueries(repo CatalogViewRepo, cache ActiveDropCache, clock clock.Clock) DropQueries {
	return &dropQueriesImpl{repo: repo, cache: cache, clock: clock}
}

const activeDropFlightKey = "active-drop"

func (q *dropQueriesImpl) ActiveDrop(ctx context.Context) (*DropView, error) {
	v, err, _ := q.sfg.Do(activeDropFlightKey, func() (interface{}, error) {
		cached, err := q.cache.GetActiveDrop(ctx)
		if err == nil {
			return cached, nil
		}
		if !errors.Is(err, ErrCacheMiss) {
			slog.WarnContext(ctx, "active drop cache read failed", "error", err.Error())
		}
		return q.selectAndCache(ctx)
	})
	if err != nil {
		return nil, err
	}

	// the phase is re-derived on every read so a cached selection never reports a stale phase
	view := *v.(*DropView)
	phase := drop.ReconstructWindow(view.ReleaseDate, view.DropEndDate).Classify(q.clock.Now())
	if phase != drop.PhaseEnded {
		view.Phase = phase.String()
		return &view, nil
	}

	// the cached drop closed; another live or upcoming drop may take its place
	if err := q.cache.InvalidateActiveDrop(ctx); err != nil {
		slog.WarnContext(ctx, "active drop cache invalidation failed", "error", err.Error())
	}
	return q.selectAndCache(ctx)
}

func (q *dropQueriesImpl) selectAndCache(ctx context.Context) (*DropView, error) {
	view, err := q.selectActiveDrop(ctx)
	if err != nil {
		return nil, err
	}
	if setErr := q.cache.SetActiveDrop(ctx, view); setErr != nil {
		slog.WarnContext(ctx, "active drop cache write failed", "error", setErr.Error())
	}
	return view, nil
}

func (q *dropQueriesImpl) selectActiveDrop(ctx context.Context) (*DropView, error) {
	now := q.clock.Now()
	products, err := q.repo.DropCandidates(ctx, now)
	if err != nil {
		return nil, errs.Wrap(err, "list drop candidates")
	}

	byID := make(map[uuid.UUID]ProductRecord, len(products))
	candidates := make([]drop.Candidate, 0, len(products))
	for _, p := range products {
		byID[p.ID] = p
		candidates = append(candidates, drop.Candidate{
			ProductID: p.ID,
			Window:    drop.ReconstructWindow(p.ReleaseDate, p.DropEndDate),
		})
	}

	chosen, phase, ok := drop.SelectActive(candidates, now)
	if !ok {
		return nil, ErrNoActiveDrop
	}
	return toDropView(byID[chosen.ProductID], phase), nil
}

func (q *dropQueriesImpl) ProductDrop(ctx context.Context, productID uuid.UUID) (*DropView, error) {
	product, err := findActiveProduct(ctx, q.repo, productID)
	if err != nil {
		return nil, err
	}
	if !product.IsLimitedEdition {
		return nil, ErrNotLimited
	}

	window := drop.ReconstructWindow(product.ReleaseDate, product.DropEndDate)
	if !window.IsScheduled() {
		slog.WarnContext(ctx, "limited edition product has no drop window; reporting upcoming",
			"product_id", product.ID)
	}
	return toDropView(*product, window.Classify(q.clock.Now())), nil
}

func toDropView(p ProductRecord, phase drop.Phase) *DropView {
	return &DropView{
		ProductID:   p.ID,
		Name:        p.Name,
		Slug:        p.Slug,
		ImageURL:    p.ImageURL,
		PriceCents:  p.PriceCents,
		ReleaseDate: p.ReleaseDate,
		DropEndDate: p.DropEndDate,
		Phase:       phase.String(),
	}
}
