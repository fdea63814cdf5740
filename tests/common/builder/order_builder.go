//go:build unit || e2e

package builder

import (
	"time"

	reqdto "hof-drops/internal/handler/dto/request"
	sqlc "hof-drops/internal/infra/sqlc/generated"
	"hof-drops/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type OrderBuilder struct {
	ID             uuid.UUID
	OrderNumber    string
	SessionID      string
	Status         string
	Email          string
	FirstName      string
	LastName       string
	ProductID      uuid.UUID
	VariantID      uuid.UUID
	ProductName    string
	Quantity       int32
	UnitPriceCents int64
	ShippingCents  int64
	TaxCents       int64
	CreatedAt      time.Time
}

func NewOrderBuilder() *OrderBuilder {
	return &OrderBuilder{
		ID:             uuid.New(),
		OrderNumber:    "HOF-260314-K7M2QX",
		SessionID:      "sess-1",
		Status:         "pending",
		Email:          "fan@example.com",
		FirstName:      "Ada",
		LastName:       "Lovelace",
		ProductID:      uuid.New(),
		VariantID:      uuid.New(),
		ProductName:    "Archive Hoodie",
		Quantity:       1,
		UnitPriceCents: 9900,
		ShippingCents:  1000,
		CreatedAt:      time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC),
	}
}

func (o *OrderBuilder) With(mutate func(*OrderBuilder)) *OrderBuilder {
	mutate(o)
	return o
}

func (o *OrderBuilder) subtotal() int64 {
	return o.UnitPriceCents * int64(o.Quantity)
}

// Build methods
func (o *OrderBuilder) BuildCreateRequestDTO() reqdto.CreateOrderRequest {
	return reqdto.CreateOrderRequest{
		Customer: reqdto.CustomerRequest{Email: o.Email, FirstName: o.FirstName, LastName: o.LastName},
		ShippingAddress: reqdto.AddressRequest{
			Line1: "1 Drop St", City: "Brooklyn", PostalCode: "11201", Country: "US",
		},
		Items:         []reqdto.OrderItemRequest{{ProductID: o.ProductID, Quantity: o.Quantity}},
		ShippingCents: o.ShippingCents,
		TaxCents:      o.TaxCents,
	}
}

func (o *OrderBuilder) BuildView() *queries.OrderView {
	return &queries.OrderView{
		ID:            o.ID,
		OrderNumber:   o.OrderNumber,
		SessionID:     o.SessionID,
		Status:        o.Status,
		Email:         o.Email,
		FirstName:     o.FirstName,
		LastName:      o.LastName,
		SubtotalCents: o.subtotal(),
		ShippingCents: o.ShippingCents,
		TaxCents:      o.TaxCents,
		TotalCents:    o.subtotal() + o.ShippingCents + o.TaxCents,
		Currency:      "USD",
		CreatedAt:     o.CreatedAt,
		Items: []queries.OrderItemView{{
			ProductID:      o.ProductID,
			VariantID:      o.VariantID,
			ProductName:    o.ProductName,
			Quantity:       o.Quantity,
			UnitPriceCents: o.UnitPriceCents,
		}},
	}
}

func (o *OrderBuilder) BuildInfraViewRow() sqlc.GetOrderViewByIDRow {
	return sqlc.GetOrderViewByIDRow{
		ID:            o.ID,
		OrderNumber:   o.OrderNumber,
		SessionID:     pgtype.Text{String: o.SessionID, Valid: o.SessionID != ""},
		Status:        o.Status,
		SubtotalCents: o.subtotal(),
		ShippingCents: o.ShippingCents,
		TaxCents:      o.TaxCents,
		TotalCents:    o.subtotal() + o.ShippingCents + o.TaxCents,
		Currency:      "USD",
		CreatedAt:     pgtype.Timestamptz{Time: o.CreatedAt, Valid: true},
		Email:         o.Email,
		FirstName:     o.FirstName,
		LastName:      o.LastName,
	}
}

func (o *OrderBuilder) BuildInfraItems() []sqlc.OrderItems {
	return []sqlc.OrderItems{{
		ID:             uuid.New(),
		OrderID:        o.ID,
		ProductID:      o.ProductID,
		VariantID:      o.VariantID,
		ProductName:    o.ProductName,
		Sku:            "HOF-HD-S",
		Size:           pgtype.Text{String: "S", Valid: true},
		Quantity:       o.Quantity,
		UnitPriceCents: o.UnitPriceCents,
		CreatedAt:      pgtype.Timestamptz{Time: o.CreatedAt, Valid: true},
	}}
}
