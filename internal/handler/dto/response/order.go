package response

import (
	"time"

	"hof-drops/internal/usecase/queries"

	"github.com/google/uuid"
)

type OrderItemResponse struct {
	ProductID      uuid.UUID `json:"productId"`
	VariantID      uuid.UUID `json:"variantId"`
	ProductName    string    `json:"productName"`
	ProductImage   string    `json:"productImage,omitempty"`
	SKU            string    `json:"sku"`
	Size           string    `json:"size,omitempty"`
	Color          string    `json:"color,omitempty"`
	Quantity       int32     `json:"quantity"`
	UnitPriceCents int64     `json:"unitPriceCents"`
}

type OrderResponse struct {
	ID            uuid.UUID           `json:"id"`
	OrderNumber   string              `json:"orderNumber"`
	Status        string              `json:"status"`
	Email         string              `json:"email"`
	FirstName     string              `json:"firstName"`
	LastName      string              `json:"lastName"`
	SubtotalCents int64               `json:"subtotalCents"`
	ShippingCents int64               `json:"shippingCents"`
	TaxCents      int64               `json:"taxCents"`
	TotalCents    int64               `json:"totalCents"`
	Currency      string              `json:"currency"`
	PaidAt        *time.Time          `json:"paidAt,omitempty"`
	CreatedAt     time.Time           `json:"createdAt"`
	Items         []OrderItemResponse `json:"items"`
	IsReplayed    bool                `json:"isReplayed,omitempty"`
}

func FromOrderView(v *queries.OrderView) *OrderResponse {
	items := make([]OrderItemResponse, len(v.Items))
	for i, it := range v.Items {
		items[i] = OrderItemResponse{
			ProductID:      it.ProductID,
			VariantID:      it.VariantID,
			ProductName:    it.ProductName,
			ProductImage:   it.ProductImage,
			SKU:            it.SKU,
			Size:           it.Size,
			Color:          it.Color,
			Quantity:       it.Quantity,
			UnitPriceCents: it.UnitPriceCents,
		}
	}
	return &OrderResponse{
		ID:            v.ID,
		OrderNumber:   v.OrderNumber,
		Status:        v.Status,
		Email:         v.Email,
		FirstName:     v.FirstName,
		LastName:      v.LastName,
		SubtotalCents: v.SubtotalCents,
		ShippingCents: v.ShippingCents,
		TaxCents:      v.TaxCents,
		TotalCents:    v.TotalCents,
		Currency:      v.Currency,
		PaidAt:        v.PaidAt,
		CreatedAt:     v.CreatedAt,
		Items:         items,
	}
}
