package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)

type ProductRecord struct {
	ID               uuid.UUID
	Name             string
	Slug             string
	ImageURL         string
	PriceCents       int64
	IsLimitedEdition bool
	ReleaseDate      *time.Time
	DropEndDate      *time.Time
	IsActive         bool
}

type VariantAvailabilityView struct {
	VariantID uuid.UUID `json:"variant_id"`
	SKU       string    `json:"sku"`
	Size      string    `json:"size,omitempty"`
	Color     string    `json:"color,omitempty"`
	Ledger    int32     `json:"ledger"`
	Held      int64     `json:"held"`
	Available int64     `json:"available"`
}

type AvailabilityView struct {
	ProductID        uuid.UUID                 `json:"product_id"`
	IsLimitedEdition bool                      `json:"is_limited_edition"`
	Phase            string                    `json:"phase,omitempty"`
	Variants         []VariantAvailabilityView `json:"variants"`
}

type DropView struct {
	ProductID   uuid.UUID  `json:"product_id"`
	Name        string     `json:"name"`
	Slug        string     `json:"slug"`
	ImageURL    string     `json:"image_url,omitempty"`
	PriceCents  int64      `json:"price_cents"`
	ReleaseDate *time.Time `json:"release_date,omitempty"`
	DropEndDate *time.Time `json:"drop_end_date,omitempty"`
	Phase       string     `json:"phase"`
}

type OrderItemView struct {
	ProductID      uuid.UUID `json:"product_id"`
	VariantID      uuid.UUID `json:"variant_id"`
	ProductName    string    `json:"product_name"`
	ProductImage   string    `json:"product_image,omitempty"`
	SKU            string    `json:"sku"`
	Size           string    `json:"size,omitempty"`
	Color          string    `json:"color,omitempty"`
	Quantity       int32     `json:"quantity"`
	UnitPriceCents int64     `json:"unit_price_cents"`
}

type OrderView struct {
	ID            uuid.UUID       `json:"id"`
	OrderNumber   string          `json:"order_number"`
	SessionID     string          `json:"-"`
	Status        string          `json:"status"`
	Email         string          `json:"email"`
	FirstName     string          `json:"first_name"`
	LastName      string          `json:"last_name"`
	SubtotalCents int64           `json:"subtotal_cents"`
	ShippingCents int64           `json:"shipping_cents"`
	TaxCents      int64           `json:"tax_cents"`
	TotalCents    int64           `json:"total_cents"`
	Currency      string          `json:"currency"`
	PaidAt        *time.Time      `json:"paid_at,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	Items         []OrderItemView `json:"items"`
}

type ReservationView struct {
	ID          uuid.UUID `json:"id"`
	ProductID   uuid.UUID `json:"product_id"`
	VariantID   uuid.UUID `json:"variant_id"`
	ProductName string    `json:"product_name"`
	SKU         string    `json:"sku"`
	Quantity    int32     `json:"quantity"`
	ExpiresAt   time.Time `json:"expires_at"`
	RemainingMs int64     `json:"remaining_ms"`
	CreatedAt   time.Time `json:"created_at"`
}
