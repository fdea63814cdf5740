package response

import (
	"time"

	"hof-drops/internal/usecase/commands"
	"hof-drops/internal/usecase/queries"

	"github.com/google/uuid"
)

type DropResponse struct {
	ProductID   uuid.UUID  `json:"productId"`
	Name        string     `json:"name"`
	Slug        string     `json:"slug"`
	ImageURL    string     `json:"imageUrl,omitempty"`
	PriceCents  int64      `json:"priceCents"`
	ReleaseDate *time.Time `json:"releaseDate,omitempty"`
	DropEndDate *time.Time `json:"dropEndDate,omitempty"`
	Phase       string     `json:"phase"`
}

func FromDropView(v *queries.DropView) *DropResponse {
	return &DropResponse{
		ProductID:   v.ProductID,
		Name:        v.Name,
		Slug:        v.Slug,
		ImageURL:    v.ImageURL,
		PriceCents:  v.PriceCents,
		ReleaseDate: v.ReleaseDate,
		DropEndDate: v.DropEndDate,
		Phase:       v.Phase,
	}
}

type VariantAvailabilityResponse struct {
	VariantID uuid.UUID `json:"variantId"`
	SKU       string    `json:"sku"`
	Size      string    `json:"size,omitempty"`
	Color     string    `json:"color,omitempty"`
	Inventory int32     `json:"inventory"`
	Held      int64     `json:"held"`
	Available int64     `json:"available"`
}

type AvailabilityResponse struct {
	ProductID        uuid.UUID                     `json:"productId"`
	IsLimitedEdition bool                          `json:"isLimitedEdition"`
	Phase            string                        `json:"phase,omitempty"`
	Variants         []VariantAvailabilityResponse `json:"variants"`
}

func FromAvailabilityView(v *queries.AvailabilityView) *AvailabilityResponse {
	variants := make([]VariantAvailabilityResponse, len(v.Variants))
	for i, va := range v.Variants {
		variants[i] = VariantAvailabilityResponse{
			VariantID: va.VariantID,
			SKU:       va.SKU,
			Size:      va.Size,
			Color:     va.Color,
			Inventory: va.Ledger,
			Held:      va.Held,
			Available: va.Available,
		}
	}
	return &AvailabilityResponse{
		ProductID:        v.ProductID,
		IsLimitedEdition: v.IsLimitedEdition,
		Phase:            v.Phase,
		Variants:         variants,
	}
}

type SubscribeResponse struct {
	ProductID uuid.UUID `json:"productId"`
	Email     string    `json:"email"`
	Created   bool      `json:"created"`
}

func FromSubscribeResult(r *commands.SubscribeResult) *SubscribeResponse {
	return &SubscribeResponse{ProductID: r.ProductID, Email: r.Email, Created: r.Created}
}

type NotifyResponse struct {
	ProductID uuid.UUID `json:"productId"`
	Enqueued  int       `json:"enqueued"`
}

type RestockResponse struct {
	VariantID uuid.UUID `json:"variantId"`
	Inventory int32     `json:"inventory"`
}

type WebhookResponse struct {
	Received  bool `json:"received"`
	Duplicate bool `json:"duplicate,omitempty"`
}
