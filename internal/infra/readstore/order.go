package readstore

import (
	"context"

	"hof-drops/internal/infra"
	sqlc "hof-drops/internal/infra/sqlc/generated"
	"hof-drops/internal/pkg/pgconv"
	"hof-drops/internal/usecase/queries"

	"github.com/google/uuid"
)

type OrderViewQueries interface {
	GetOrderViewByNumber(ctx context.Context, db sqlc.DBTX, orderNumber string) (sqlc.GetOrderViewByNumberRow, error)
	GetOrderViewByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetOrderViewByIDRow, error)
	ListOrderItems(ctx context.Context, db sqlc.DBTX, orderID uuid.UUID) ([]sqlc.OrderItems, error)
}

type OrderReadStore struct {
	queries OrderViewQueries
	db      sqlc.DBTX
}

func NewOrderReadStore(queries OrderViewQueries, db sqlc.DBTX) *OrderReadStore {
	return &OrderReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *OrderReadStore) FindByNumber(ctx context.Context, number string) (*queries.OrderView, error) {
	row, err := r.queries.GetOrderViewByNumber(ctx, r.db, number)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find order by number", err)
	}
	return r.withItems(ctx, toOrderView(sqlc.GetOrderViewByIDRow(row)))
}

func (r *OrderReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.OrderView, error) {
	row, err := r.queries.GetOrderViewByID(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find order by ID", err)
	}
	return r.withItems(ctx, toOrderView(row))
}

func (r *OrderReadStore) withItems(ctx context.Context, view *queries.OrderView) (*queries.OrderView, error) {
	rows, err := r.queries.ListOrderItems(ctx, r.db, view.ID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list order items", err)
	}

	view.Items = make([]queries.OrderItemView, len(rows))
	for i, row := range rows {
		view.Items[i] = queries.OrderItemView{
			ProductID:      row.ProductID,
			VariantID:      row.VariantID,
			ProductName:    row.ProductName,
			ProductImage:   pgconv.StringFromPgtype(row.ProductImage),
			SKU:            row.Sku,
			Size:           pgconv.StringFromPgtype(row.Size),
			Color:          pgconv.StringFromPgtype(row.Color),
			Quantity:       row.Quantity,
			UnitPriceCents: row.UnitPriceCents,
		}
	}
	return view, nil
}

func toOrderView(row sqlc.GetOrderViewByIDRow) *queries.OrderView {
	return &queries.OrderView{
		ID:            row.ID,
		OrderNumber:   row.OrderNumber,
		SessionID:     pgconv.StringFromPgtype(row.SessionID),
		Status:        row.Status,
		Email:         row.Email,
		FirstName:     row.FirstName,
		LastName:      row.LastName,
		SubtotalCents: row.SubtotalCents,
		ShippingCents: row.ShippingCents,
		TaxCents:      row.TaxCents,
		TotalCents:    row.TotalCents,
		Currency:      row.Currency,
		PaidAt:        pgconv.TimePtrFromPgtype(row.PaidAt),
		CreatedAt:     pgconv.TimeFromPgtype(row.CreatedAt),
	}
}
