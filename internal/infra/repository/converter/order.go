package converter

import (
	"hof-drops/internal/domain/order"
	sqlc "hof-drops/internal/infra/sqlc/generated"
	"hof-drops/internal/pkg/pgconv"

	"github.com/google/uuid"
)

func OrderToInsertParams(o *order.Order, shippingAddressID, billingAddressID uuid.UUID) sqlc.InsertOrderParams {
	totals := o.Totals()
	return sqlc.InsertOrderParams{
		ID:                o.ID(),
		OrderNumber:       o.Number().String(),
		CustomerID:        o.CustomerID(),
		SessionID:         pgconv.OptionalStringToPgtype(o.SessionID()),
		Status:            o.Status().String(),
		SubtotalCents:     totals.Subtotal.Cents(),
		ShippingCents:     totals.Shipping.Cents(),
		TaxCents:          totals.Tax.Cents(),
		TotalCents:        totals.Total.Cents(),
		Currency:          o.Currency().String(),
		ShippingAddressID: shippingAddressID,
		BillingAddressID:  billingAddressID,
		PaymentIntentID:   pgconv.OptionalStringToPgtype(o.PaymentIntentID()),
		CreatedAt:         pgconv.TimeToPgtype(o.CreatedAt()),
	}
}

func OrderItemToParams(orderID uuid.UUID, it order.Item) sqlc.CreateOrderItemParams {
	snap := it.Snapshot()
	return sqlc.CreateOrderItemParams{
		OrderID:        orderID,
		ProductID:      it.ProductID(),
		VariantID:      it.VariantID(),
		ProductName:    snap.ProductName,
		ProductImage:   pgconv.OptionalStringToPgtype(snap.ProductImage),
		Sku:            snap.SKU,
		Size:           pgconv.OptionalStringToPgtype(snap.Size),
		Color:          pgconv.OptionalStringToPgtype(snap.Color),
		Quantity:       it.Quantity(),
		UnitPriceCents: it.UnitPrice().Cents(),
	}
}

func AddressToParams(customerID uuid.UUID, kind order.AddressKind, a order.Address) sqlc.CreateAddressParams {
	return sqlc.CreateAddressParams{
		CustomerID: customerID,
		Kind:       string(kind),
		Line1:      a.Line1,
		Line2:      pgconv.OptionalStringToPgtype(a.Line2),
		City:       a.City,
		Region:     pgconv.OptionalStringToPgtype(a.Region),
		PostalCode: a.PostalCode,
		Country:    a.Country,
	}
}
