package reservation

import (
	"time"

	"github.com/google/uuid"
)

// CartReservation is a temporary hold of inventory by a shopper session.
type CartReservation struct {
	id        uuid.UUID
	sessionID SessionID
	productID uuid.UUID
	variantID uuid.UUID
	quantity  Quantity
	expiresAt time.Time
	isActive  bool
	createdAt time.Time
	updatedAt time.Time
}

func NewCartReservation(
	sessionID SessionID,
	productID, variantID uuid.UUID,
	quantity Quantity,
	policy HoldPolicy,
	now time.Time,
) *CartReservation {
	return &CartReservation{
		id:        uuid.New(),
		sessionID: sessionID,
		productID: productID,
		variantID: variantID,
		quantity:  quantity,
		expiresAt: policy.ExpiresAt(now),
		isActive:  true,
		createdAt: now,
		updatedAt: now,
	}
}

func ReconstructCartReservation(
	id uuid.UUID,
	sessionID SessionID,
	productID, variantID uuid.UUID,
	quantity Quantity,
	expiresAt time.Time,
	isActive bool,
	createdAt, updatedAt time.Time,
) *CartReservation {
	return &CartReservation{
		id:        id,
		sessionID: sessionID,
		productID: productID,
		variantID: variantID,
		quantity:  quantity,
		expiresAt: expiresAt,
		isActive:  isActive,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

// State treats expiresAt == now as expired.
func (r *CartReservation) State(now time.Time) State {
	if !r.isActive {
		return StateInactive
	}
	if !now.Before(r.expiresAt) {
		return StateActiveExpired
	}
	return StateActiveValid
}

// Refresh replaces the quantity and restarts the hold window in place.
func (r *CartReservation) Refresh(quantity Quantity, policy HoldPolicy, now time.Time) error {
	if r.State(now) != StateActiveValid {
		return ErrHoldNotRefreshed
	}
	r.quantity = quantity
	r.expiresAt = policy.ExpiresAt(now)
	r.updatedAt = now
	return nil
}

func (r *CartReservation) Deactivate(now time.Time) {
	if !r.isActive {
		return
	}
	r.isActive = false
	r.updatedAt = now
}

func (r *CartReservation) Remaining(now time.Time) time.Duration {
	if r.State(now) != StateActiveValid {
		return 0
	}
	return r.expiresAt.Sub(now)
}

func (r *CartReservation) ID() uuid.UUID        { return r.id }
func (r *CartReservation) SessionID() SessionID { return r.sessionID }
func (r *CartReservation) ProductID() uuid.UUID { return r.productID }
func (r *CartReservation) VariantID() uuid.UUID { return r.variantID }
func (r *CartReservation) Quantity() Quantity   { return r.quantity }
func (r *CartReservation) ExpiresAt() time.Time { return r.expiresAt }
func (r *CartReservation) IsActive() bool       { return r.isActive }
func (r *CartReservation) CreatedAt() time.Time { return r.createdAt }
func (r *CartReservation) UpdatedAt() time.Time { return r.updatedAt }
