package response

import (
	"time"

	"hof-drops/internal/usecase/commands"
	"hof-drops/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReserveResponse struct {
	Reserved      bool       `json:"reserved"`
	Message       string     `json:"message,omitempty"`
	ReservationID *uuid.UUID `json:"reservationId,omitempty"`
	SessionID     string     `json:"sessionId,omitempty"`
	ProductID     uuid.UUID  `json:"productId"`
	VariantID     *uuid.UUID `json:"variantId,omitempty"`
	Quantity      int32      `json:"quantity,omitempty"`
	ExpiresAt     *time.Time `json:"expiresAt,omitempty"`
	RemainingMs   int64      `json:"remainingMs,omitempty"`
}

func FromReserveResult(r *commands.ReserveResult) *ReserveResponse {
	resp := &ReserveResponse{
		Reserved:  r.Reserved,
		Message:   r.Message,
		SessionID: r.SessionID,
		ProductID: r.ProductID,
	}
	if !r.Reserved {
		return resp
	}
	reservationID, variantID, expiresAt := r.ReservationID, r.VariantID, r.ExpiresAt
	resp.ReservationID = &reservationID
	resp.VariantID = &variantID
	resp.Quantity = r.Quantity
	resp.ExpiresAt = &expiresAt
	resp.RemainingMs = r.RemainingMs
	return resp
}

type ReleaseResponse struct {
	Released int64 `json:"released"`
}

type ReservationResponse struct {
	ID          uuid.UUID `json:"id"`
	ProductID   uuid.UUID `json:"productId"`
	VariantID   uuid.UUID `json:"variantId"`
	ProductName string    `json:"productName"`
	SKU         string    `json:"sku"`
	Quantity    int32     `json:"quantity"`
	ExpiresAt   time.Time `json:"expiresAt"`
	RemainingMs int64     `json:"remainingMs"`
	CreatedAt   time.Time `json:"createdAt"`
}

type ReservationListResponse struct {
	SessionID    string                 `json:"sessionId"`
	Reservations []*ReservationResponse `json:"reservations"`
}

func FromReservationView(v *queries.ReservationView) *ReservationResponse {
	return &ReservationResponse{
		ID:          v.ID,
		ProductID:   v.ProductID,
		VariantID:   v.VariantID,
		ProductName: v.ProductName,
		SKU:         v.SKU,
		Quantity:    v.Quantity,
		ExpiresAt:   v.ExpiresAt,
		RemainingMs: v.RemainingMs,
		CreatedAt:   v.CreatedAt,
	}
}

func FromReservationViews(sessionID string, views []queries.ReservationView) *ReservationListResponse {
	resp := &ReservationListResponse{
		SessionID:    sessionID,
		Reservations: make([]*ReservationResponse, len(views)),
	}
	for i, v := range views {
		resp.Reservations[i] = FromReservationView(&v)
	}
	return resp
}

type SweepResponse struct {
	Reservations    int64 `json:"reservations"`
	IdempotencyKeys int64 `json:"idempotencyKeys"`
}

func FromSweepResult(r *commands.SweepResult) *SweepResponse {
	return &SweepResponse{Reservations: r.Reservations, IdempotencyKeys: r.IdempotencyKeys}
}
