package request

import (
	"strings"

	"hof-drops/internal/domain/reservation"

	"github.com/google/uuid"
)

type ReserveRequest struct {
	ProductID uuid.UUID  `json:"productId" binding:"required"`
	VariantID *uuid.UUID `json:"variantId,omitempty"`
	Quantity  int        `json:"quantity" binding:"required"`
	SessionID string     `json:"sessionId,omitempty"`
}

func (r ReserveRequest) ToDomain() (reservation.Quantity, error) {
	return reservation.NewQuantity(r.Quantity)
}

// ReleaseRequest is optional; the session may also come from the header or cookie.
type ReleaseRequest struct {
	SessionID string `json:"sessionId,omitempty"`
}

func (r ReleaseRequest) GetSessionID() string {
	return strings.TrimSpace(r.SessionID)
}
