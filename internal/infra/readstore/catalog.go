package readstore

import (
	"context"
	"time"

	"hof-drops/internal/infra"
	sqlc "hof-drops/internal/infra/sqlc/generated"
	"hof-drops/internal/pkg/pgconv"
	"hof-drops/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type CatalogViewQueries interface {
	GetProductByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Products, error)
	ListDropCandidates(ctx context.Context, db sqlc.DBTX, now pgtype.Timestamptz) ([]sqlc.Products, error)
	ListVariantAvailability(ctx context.Context, db sqlc.DBTX, arg sqlc.ListVariantAvailabilityParams) ([]sqlc.ListVariantAvailabilityRow, error)
	SweepExpiredReservationsForProduct(ctx context.Context, db sqlc.DBTX, arg sqlc.SweepExpiredReservationsForProductParams) (int64, error)
}

type CatalogReadStore struct {
	queries CatalogViewQueries
	db      sqlc.DBTX
}

func NewCatalogReadStore(queries CatalogViewQueries, db sqlc.DBTX) *CatalogReadStore {
	return &CatalogReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *CatalogReadStore) FindProduct(ctx context.Context, id uuid.UUID) (*queries.ProductRecord, error) {
	row, err := r.queries.GetProductByID(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find product", err)
	}
	rec := toProductRecord(row)
	return &rec, nil
}

// SweepExpiredForProduct deactivates lapsed holds outside of any command transaction.
func (r *CatalogReadStore) SweepExpiredForProduct(ctx context.Context, productID uuid.UUID, now time.Time) (int64, error) {
	n, err := r.queries.SweepExpiredReservationsForProduct(ctx, r.db, sqlc.SweepExpiredReservationsForProductParams{
		Now:       pgconv.TimeToPgtype(now),
		ProductID: productID,
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to sweep expired holds for product", err)
	}
	return n, nil
}

func (r *CatalogReadStore) VariantAvailability(ctx context.Context, productID uuid.UUID, now time.Time) ([]queries.VariantAvailabilityView, error) {
	rows, err := r.queries.ListVariantAvailability(ctx, r.db, sqlc.ListVariantAvailabilityParams{
		Now:       pgconv.TimeToPgtype(now),
		ProductID: productID,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list variant availability", err)
	}

	result := make([]queries.VariantAvailabilityView, len(rows))
	for i, row := range rows {
		result[i] = queries.VariantAvailabilityView{
			VariantID: row.ID,
			SKU:       row.Sku,
			Size:      pgconv.StringFromPgtype(row.Size),
			Color:     pgconv.StringFromPgtype(row.Color),
			Ledger:    row.Inventory,
			Held:      row.Held,
		}
	}
	return result, nil
}

func (r *CatalogReadStore) DropCandidates(ctx context.Context, now time.Time) ([]queries.ProductRecord, error) {
	rows, err := r.queries.ListDropCandidates(ctx, r.db, pgconv.TimeToPgtype(now))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list drop candidates", err)
	}

	result := make([]queries.ProductRecord, len(rows))
	for i, row := range rows {
		result[i] = toProductRecord(row)
	}
	return result, nil
}

func toProductRecord(row sqlc.Products) queries.ProductRecord {
	return queries.ProductRecord{
		ID:               row.ID,
		Name:             row.Name,
		Slug:             row.Slug,
		ImageURL:         pgconv.StringFromPgtype(row.ImageUrl),
		PriceCents:       row.PriceCents,
		IsLimitedEdition: row.IsLimitedEdition,
		ReleaseDate:      pgconv.TimePtrFromPgtype(row.ReleaseDate),
		DropEndDate:      pgconv.TimePtrFromPgtype(row.DropEndDate),
		IsActive:         row.IsActive,
	}
}
