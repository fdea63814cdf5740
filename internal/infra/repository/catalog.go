package repository

import (
	"context"

	"hof-drops/internal/infra"
	"hof-drops/internal/infra/repository/converter"
	sqlc "hof-drops/internal/infra/sqlc/generated"
	"hof-drops/internal/usecase/shared"

	"github.com/google/uuid"
)

type CatalogWriteQueries interface {
	GetProductByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Products, error)
	LockVariantForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.ProductVariants, error)
	GetDefaultVariant(ctx context.Context, db sqlc.DBTX, productID uuid.UUID) (sqlc.ProductVariants, error)
	DecrementVariantInventory(ctx context.Context, db sqlc.DBTX, arg sqlc.DecrementVariantInventoryParams) (int64, error)
	RestockVariant(ctx context.Context, db sqlc.DBTX, arg sqlc.RestockVariantParams) (int32, error)
}

type CatalogRepository struct {
	queries CatalogWriteQueries
}

func NewCatalogRepository(queries CatalogWriteQueries) *CatalogRepository {
	return &CatalogRepository{queries: queries}
}

func (r *CatalogRepository) ProductByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (*shared.ProductSnapshot, error) {
	row, err := r.queries.GetProductByID(ctx, db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get product", err)
	}
	return converter.ProductFromRow(row), nil
}

func (r *CatalogRepository) LockVariant(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (*shared.VariantSnapshot, error) {
	row, err := r.queries.LockVariantForUpdate(ctx, db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock variant", err)
	}
	return converter.VariantFromRow(row), nil
}

func (r *CatalogRepository) DefaultVariant(ctx context.Context, db sqlc.DBTX, productID uuid.UUID) (*shared.VariantSnapshot, error) {
	row, err := r.queries.GetDefaultVariant(ctx, db, productID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get default variant", err)
	}
	return converter.VariantFromRow(row), nil
}

func (r *CatalogRepository) DecrementInventory(ctx context.Context, db sqlc.DBTX, variantID uuid.UUID, qty int32) (bool, error) {
	affected, err := r.queries.DecrementVariantInventory(ctx, db, sqlc.DecrementVariantInventoryParams{
		ID:        variantID,
		Inventory: qty,
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to decrement inventory", err)
	}
	return affected == 1, nil
}

func (r *CatalogRepository) Restock(ctx context.Context, db sqlc.DBTX, variantID uuid.UUID, qty int32) (int32, error) {
	inventory, err := r.queries.RestockVariant(ctx, db, sqlc.RestockVariantParams{
		ID:        variantID,
		Inventory: qty,
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to restock variant", err)
	}
	return inventory, nil
}
