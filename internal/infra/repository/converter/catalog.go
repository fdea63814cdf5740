package converter

import (
	"hof-drops/internal/domain/drop"
	sqlc "hof-drops/internal/infra/sqlc/generated"
	"hof-drops/internal/pkg/pgconv"
	"hof-drops/internal/usecase/shared"
)

func ProductFromRow(row sqlc.Products) *shared.ProductSnapshot {
	return &shared.ProductSnapshot{
		ID:               row.ID,
		Name:             row.Name,
		Slug:             row.Slug,
		ImageURL:         pgconv.StringFromPgtype(row.ImageUrl),
		PriceCents:       row.PriceCents,
		IsLimitedEdition: row.IsLimitedEdition,
		Window: drop.ReconstructWindow(
			pgconv.TimePtrFromPgtype(row.ReleaseDate),
			pgconv.TimePtrFromPgtype(row.DropEndDate),
		),
		MaxQuantity: pgconv.Int32PtrFromPgtype(row.MaxQuantity),
		IsActive:    row.IsActive,
	}
}

func VariantFromRow(row sqlc.ProductVariants) *shared.VariantSnapshot {
	return &shared.VariantSnapshot{
		ID:        row.ID,
		ProductID: row.ProductID,
		SKU:       row.Sku,
		Size:      pgconv.StringFromPgtype(row.Size),
		Color:     pgconv.StringFromPgtype(row.Color),
		Inventory: row.Inventory,
		IsActive:  row.IsActive,
	}
}
