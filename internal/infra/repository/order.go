package repository

import (
	"context"
	"time"

	"hof-drops/internal/domain/order"
	"hof-drops/internal/infra"
	"hof-drops/internal/infra/repository/converter"
	sqlc "hof-drops/internal/infra/sqlc/generated"
	"hof-drops/internal/pkg/pgconv"
	"hof-drops/internal/usecase/shared"

	"github.com/google/uuid"
)

type OrderWriteQueries interface {
	UpsertCustomer(ctx context.Context, db sqlc.DBTX, arg sqlc.UpsertCustomerParams) (uuid.UUID, error)
	CreateAddress(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateAddressParams) (uuid.UUID, error)
	InsertOrder(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertOrderParams) (uuid.UUID, error)
	CreateOrderItem(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateOrderItemParams) error
	MarkOrderInventoryApplied(ctx context.Context, db sqlc.DBTX, arg sqlc.MarkOrderInventoryAppliedParams) (int64, error)
	LockOrderByNumber(ctx context.Context, db sqlc.DBTX, orderNumber string) (sqlc.Orders, error)
	ListOrderItems(ctx context.Context, db sqlc.DBTX, orderID uuid.UUID) ([]sqlc.OrderItems, error)
	MarkOrderPaid(ctx context.Context, db sqlc.DBTX, arg sqlc.MarkOrderPaidParams) (int64, error)
	MarkOrderPaymentFailed(ctx context.Context, db sqlc.DBTX, arg sqlc.MarkOrderPaymentFailedParams) (int64, error)
}

type OrderRepository struct {
	queries OrderWriteQueries
}

func NewOrderRepository(queries OrderWriteQueries) *OrderRepository {
	return &OrderRepository{queries: queries}
}

func (r *OrderRepository) UpsertCustomer(ctx context.Context, db sqlc.DBTX, c order.Customer) (uuid.UUID, error) {
	id, err := r.queries.UpsertCustomer(ctx, db, sqlc.UpsertCustomerParams{
		Email:     c.Email.String(),
		FirstName: c.FirstName,
		LastName:  c.LastName,
		Phone:     pgconv.OptionalStringToPgtype(c.Phone),
	})
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to upsert customer", err)
	}
	return id, nil
}

func (r *OrderRepository) CreateAddress(ctx context.Context, db sqlc.DBTX, customerID uuid.UUID, kind order.AddressKind, a order.Address) (uuid.UUID, error) {
	id, err := r.queries.CreateAddress(ctx, db, converter.AddressToParams(customerID, kind, a))
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create address", err)
	}
	return id, nil
}

func (r *OrderRepository) Insert(ctx context.Context, db sqlc.DBTX, o *order.Order, shippingAddressID, billingAddressID uuid.UUID) (bool, error) {
	_, err := r.queries.InsertOrder(ctx, db, converter.OrderToInsertParams(o, shippingAddressID, billingAddressID))
	if err != nil {
		// ON CONFLICT (order_number) DO NOTHING returns no row
		if pgconv.IsNoRows(err) {
			return false, nil
		}
		return false, infra.WrapRepoErr("failed to insert order", err)
	}
	return true, nil
}

func (r *OrderRepository) CreateItem(ctx context.Context, db sqlc.DBTX, orderID uuid.UUID, item order.Item) error {
	if err := r.queries.CreateOrderItem(ctx, db, converter.OrderItemToParams(orderID, item)); err != nil {
		return infra.WrapRepoErr("failed to create order item", err)
	}
	return nil
}

func (r *OrderRepository) MarkInventoryApplied(ctx context.Context, db sqlc.DBTX, orderID uuid.UUID, now time.Time) (bool, error) {
	n, err := r.queries.MarkOrderInventoryApplied(ctx, db, sqlc.MarkOrderInventoryAppliedParams{
		Now: pgconv.TimeToPgtype(now),
		ID:  orderID,
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to mark inventory applied", err)
	}
	return n == 1, nil
}

func (r *OrderRepository) LockByNumber(ctx context.Context, db sqlc.DBTX, number string) (*shared.OrderState, error) {
	row, err := r.queries.LockOrderByNumber(ctx, db, number)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock order", err)
	}
	return &shared.OrderState{
		ID:               row.ID,
		Number:           row.OrderNumber,
		SessionID:        pgconv.StringFromPgtype(row.SessionID),
		Status:           order.Status(row.Status),
		InventoryApplied: row.InventoryAppliedAt.Valid,
	}, nil
}

func (r *OrderRepository) Items(ctx context.Context, db sqlc.DBTX, orderID uuid.UUID) ([]shared.OrderLine, error) {
	rows, err := r.queries.ListOrderItems(ctx, db, orderID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list order items", err)
	}
	lines := make([]shared.OrderLine, 0, len(rows))
	for _, row := range rows {
		lines = append(lines, shared.OrderLine{
			ProductID: row.ProductID,
			VariantID: row.VariantID,
			Quantity:  row.Quantity,
		})
	}
	return lines, nil
}

func (r *OrderRepository) MarkPaid(ctx context.Context, db sqlc.DBTX, orderID uuid.UUID, now time.Time) (bool, error) {
	n, err := r.queries.MarkOrderPaid(ctx, db, sqlc.MarkOrderPaidParams{Now: pgconv.TimeToPgtype(now), ID: orderID})
	if err != nil {
		return false, infra.WrapRepoErr("failed to mark order paid", err)
	}
	return n == 1, nil
}

func (r *OrderRepository) MarkPaymentFailed(ctx context.Context, db sqlc.DBTX, orderID uuid.UUID, now time.Time) (bool, error) {
	n, err := r.queries.MarkOrderPaymentFailed(ctx, db, sqlc.MarkOrderPaymentFailedParams{Now: pgconv.TimeToPgtype(now), ID: orderID})
	if err != nil {
		return false, infra.WrapRepoErr("failed to mark order payment failed", err)
	}
	return n == 1, nil
}
