package shared

import (
	"time"

	"hof-drops/internal/domain/drop"
	"hof-drops/internal/domain/order"

	"github.com/google/uuid"
)

// Write-side snapshots; read models live in the queries package.

type ProductSnapshot struct {
	ID               uuid.UUID
	Name             string
	Slug             string
	ImageURL         string
	PriceCents       int64
	IsLimitedEdition bool
	Window           drop.Window
	MaxQuantity      *int32
	IsActive         bool
}

type VariantSnapshot struct {
	ID        uuid.UUID
	ProductID uuid.UUID
	SKU       string
	Size      string
	Color     string
	Inventory int32
	IsActive  bool
}

type OrderState struct {
	ID               uuid.UUID
	Number           string
	SessionID        string
	Status           order.Status
	InventoryApplied bool
}

type OrderLine struct {
	ProductID uuid.UUID
	VariantID uuid.UUID
	Quantity  int32
}

type IdempotencyRecord struct {
	Key           uuid.UUID
	SessionID     string
	Status        string
	RequestHash   string
	ResultOrderID *uuid.UUID
	ExpiresAt     time.Time
}

const (
	IdempotencyProcessing = "processing"
	IdempotencyCompleted  = "completed"
)

type NotificationJobRecord struct {
	ID       uuid.UUID
	Kind     string
	Channel  string
	Payload  []byte
	Attempts int32
}

type PendingSubscriber struct {
	ID    uuid.UUID
	Email string
}
