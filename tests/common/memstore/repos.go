//go:build unit || e2e

package memstore

import (
	"context"
	"sort"
	"time"

	"hof-drops/internal/domain/notification"
	"hof-drops/internal/domain/order"
	"hof-drops/internal/domain/reservation"
	"hof-drops/internal/infra"
	sqlc "hof-drops/internal/infra/sqlc/generated"
	"hof-drops/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

func notFound(msg string) error {
	return infra.WrapRepoErr(msg, pgx.ErrNoRows)
}

// ---- catalog ----

type catalogRepo struct{ s *Store }

func (r *catalogRepo) ProductByID(_ context.Context, _ sqlc.DBTX, id uuid.UUID) (*shared.ProductSnapshot, error) {
	if err := r.s.fault("Catalog.ProductByID"); err != nil {
		return nil, err
	}
	p, ok := r.s.st.products[id]
	if !ok {
		return nil, notFound("product not found")
	}
	return p.snapshot(), nil
}

func (r *catalogRepo) LockVariant(_ context.Context, _ sqlc.DBTX, id uuid.UUID) (*shared.VariantSnapshot, error) {
	if err := r.s.fault("Catalog.LockVariant"); err != nil {
		return nil, err
	}
	v, ok := r.s.st.variants[id]
	if !ok {
		return nil, notFound("variant not found")
	}
	return v.snapshot(), nil
}

func (r *catalogRepo) DefaultVariant(_ context.Context, _ sqlc.DBTX, productID uuid.UUID) (*shared.VariantSnapshot, error) {
	var found *variantRow
	for _, v := range r.s.st.variants {
		if v.ProductID != productID || !v.IsActive {
			continue
		}
		if found == nil || v.CreatedAt.Before(found.CreatedAt) {
			v := v
			found = &v
		}
	}
	if found == nil {
		return nil, notFound("default variant not found")
	}
	return found.snapshot(), nil
}

func (r *catalogRepo) DecrementInventory(_ context.Context, _ sqlc.DBTX, variantID uuid.UUID, qty int32) (bool, error) {
	if err := r.s.fault("Catalog.DecrementInventory"); err != nil {
		return false, err
	}
	v, ok := r.s.st.variants[variantID]
	if !ok || v.Inventory < qty {
		return false, nil
	}
	v.Inventory -= qty
	r.s.st.variants[variantID] = v
	return true, nil
}

func (r *catalogRepo) Restock(_ context.Context, _ sqlc.DBTX, variantID uuid.UUID, qty int32) (int32, error) {
	v, ok := r.s.st.variants[variantID]
	if !ok {
		return 0, notFound("variant not found")
	}
	v.Inventory += qty
	r.s.st.variants[variantID] = v
	return v.Inventory, nil
}

// ---- reservations ----

type reservationRepo struct{ s *Store }

func (r *reservationRepo) sweep(match func(ReservationRow) bool, now time.Time) int64 {
	var n int64
	for id, row := range r.s.st.reservations {
		if row.IsActive && !row.ExpiresAt.After(now) && match(row) {
			row.IsActive = false
			row.UpdatedAt = now
			r.s.st.reservations[id] = row
			n++
		}
	}
	return n
}

func (r *reservationRepo) SweepExpired(_ context.Context, _ sqlc.DBTX, now time.Time) (int64, error) {
	return r.sweep(func(ReservationRow) bool { return true }, now), nil
}

func (r *reservationRepo) SweepExpiredForVariant(_ context.Context, _ sqlc.DBTX, variantID uuid.UUID, now time.Time) (int64, error) {
	return r.sweep(func(row ReservationRow) bool { return row.VariantID == variantID }, now), nil
}

func (r *reservationRepo) HeldByOthers(_ context.Context, _ sqlc.DBTX, variantID uuid.UUID, sessionID string, now time.Time) (int64, error) {
	var held int64
	for _, row := range r.s.st.reservations {
		if row.VariantID == variantID && row.IsActive && row.ExpiresAt.After(now) && row.SessionID != sessionID {
			held += int64(row.Quantity)
		}
	}
	return held, nil
}

func (r *reservationRepo) ActiveForSession(_ context.Context, _ sqlc.DBTX, sessionID string, variantID uuid.UUID, now time.Time) (*reservation.CartReservation, error) {
	for _, row := range r.s.st.reservations {
		if row.SessionID == sessionID && row.VariantID == variantID && row.IsActive && row.ExpiresAt.After(now) {
			session, err := reservation.NewSessionID(row.SessionID)
			if err != nil {
				return nil, err
			}
			qty, err := reservation.NewQuantity(int(row.Quantity))
			if err != nil {
				return nil, err
			}
			return reservation.ReconstructCartReservation(row.ID, session, row.ProductID, row.VariantID, qty,
				row.ExpiresAt, row.IsActive, row.CreatedAt, row.UpdatedAt), nil
		}
	}
	return nil, notFound("active reservation not found")
}

func (r *reservationRepo) Create(_ context.Context, _ sqlc.DBTX, res *reservation.CartReservation) (uuid.UUID, error) {
	for _, row := range r.s.st.reservations {
		if row.IsActive && row.SessionID == res.SessionID().String() && row.VariantID == res.VariantID() {
			return uuid.Nil, infra.WrapRepoErr("active reservation exists", nil, infra.KindDuplicateKey)
		}
	}
	r.s.st.reservations[res.ID()] = ReservationRow{
		ID:        res.ID(),
		SessionID: res.SessionID().String(),
		ProductID: res.ProductID(),
		VariantID: res.VariantID(),
		Quantity:  res.Quantity().Int32(),
		ExpiresAt: res.ExpiresAt(),
		IsActive:  res.IsActive(),
		CreatedAt: res.CreatedAt(),
		UpdatedAt: res.UpdatedAt(),
	}
	return res.ID(), nil
}

func (r *reservationRepo) Refresh(_ context.Context, _ sqlc.DBTX, res *reservation.CartReservation) error {
	row, ok := r.s.st.reservations[res.ID()]
	if !ok || !row.IsActive {
		return notFound("reservation not found")
	}
	row.Quantity = res.Quantity().Int32()
	row.ExpiresAt = res.ExpiresAt()
	row.UpdatedAt = res.UpdatedAt()
	r.s.st.reservations[res.ID()] = row
	return nil
}

func (r *reservationRepo) ReleaseSession(_ context.Context, _ sqlc.DBTX, sessionID string, now time.Time) (int64, error) {
	if err := r.s.fault("Reservations.ReleaseSession"); err != nil {
		return 0, err
	}
	var n int64
	for id, row := range r.s.st.reservations {
		if row.SessionID == sessionID && row.IsActive {
			row.IsActive = false
			row.UpdatedAt = now
			r.s.st.reservations[id] = row
			n++
		}
	}
	return n, nil
}

func (r *reservationRepo) ReleaseByID(_ context.Context, _ sqlc.DBTX, id uuid.UUID, sessionID string, now time.Time) (bool, error) {
	row, ok := r.s.st.reservations[id]
	if !ok || !row.IsActive || row.SessionID != sessionID {
		return false, nil
	}
	row.IsActive = false
	row.UpdatedAt = now
	r.s.st.reservations[id] = row
	return true, nil
}

// ---- orders ----

type orderRepo struct{ s *Store }

func (r *orderRepo) UpsertCustomer(_ context.Context, _ sqlc.DBTX, c order.Customer) (uuid.UUID, error) {
	email := c.Email.String()
	row, ok := r.s.st.customers[email]
	if !ok {
		row = customerRow{ID: uuid.New(), Email: email}
	}
	row.FirstName, row.LastName = c.FirstName, c.LastName
	r.s.st.customers[email] = row
	return row.ID, nil
}

func (r *orderRepo) CreateAddress(_ context.Context, _ sqlc.DBTX, _ uuid.UUID, _ order.AddressKind, _ order.Address) (uuid.UUID, error) {
	r.s.st.addresses++
	return uuid.New(), nil
}

func (r *orderRepo) Insert(_ context.Context, _ sqlc.DBTX, o *order.Order, _, _ uuid.UUID) (bool, error) {
	for _, existing := range r.s.st.orders {
		if existing.Number == o.Number().String() {
			return false, nil
		}
	}
	totals := o.Totals()
	r.s.st.orders[o.ID()] = OrderRow{
		ID:              o.ID(),
		Number:          o.Number().String(),
		CustomerID:      o.CustomerID(),
		SessionID:       o.SessionID(),
		Status:          o.Status(),
		Subtotal:        totals.Subtotal.Cents(),
		Shipping:        totals.Shipping.Cents(),
		Tax:             totals.Tax.Cents(),
		Total:           totals.Total.Cents(),
		Currency:        o.Currency().String(),
		PaymentIntentID: o.PaymentIntentID(),
		CreatedAt:       o.CreatedAt(),
	}
	return true, nil
}

func (r *orderRepo) CreateItem(_ context.Context, _ sqlc.DBTX, orderID uuid.UUID, item order.Item) error {
	row, ok := r.s.st.orders[orderID]
	if !ok {
		return infra.WrapRepoErr("order missing", nil, infra.KindForeignKeyViolated)
	}
	row.Items = append(row.Items, item)
	r.s.st.orders[orderID] = row
	return nil
}

func (r *orderRepo) MarkInventoryApplied(_ context.Context, _ sqlc.DBTX, orderID uuid.UUID, now time.Time) (bool, error) {
	row, ok := r.s.st.orders[orderID]
	if !ok || row.InventoryAppliedAt != nil {
		return false, nil
	}
	row.InventoryAppliedAt = &now
	r.s.st.orders[orderID] = row
	return true, nil
}

func (r *orderRepo) LockByNumber(_ context.Context, _ sqlc.DBTX, number string) (*shared.OrderState, error) {
	for _, row := range r.s.st.orders {
		if row.Number == number {
			return &shared.OrderState{
				ID:               row.ID,
				Number:           row.Number,
				SessionID:        row.SessionID,
				Status:           row.Status,
				InventoryApplied: row.InventoryAppliedAt != nil,
			}, nil
		}
	}
	return nil, notFound("order not found")
}

func (r *orderRepo) Items(_ context.Context, _ sqlc.DBTX, orderID uuid.UUID) ([]shared.OrderLine, error) {
	row := r.s.st.orders[orderID]
	lines := make([]shared.OrderLine, len(row.Items))
	for i, it := range row.Items {
		lines[i] = shared.OrderLine{ProductID: it.ProductID(), VariantID: it.VariantID(), Quantity: it.Quantity()}
	}
	return lines, nil
}

func (r *orderRepo) MarkPaid(_ context.Context, _ sqlc.DBTX, orderID uuid.UUID, now time.Time) (bool, error) {
	row, ok := r.s.st.orders[orderID]
	if !ok || !row.Status.CanBecomePaid() {
		return false, nil
	}
	row.Status = order.StatusPaid
	row.PaidAt = &now
	r.s.st.orders[orderID] = row
	return true, nil
}

func (r *orderRepo) MarkPaymentFailed(_ context.Context, _ sqlc.DBTX, orderID uuid.UUID, _ time.Time) (bool, error) {
	row, ok := r.s.st.orders[orderID]
	if !ok || !row.Status.CanFailPayment() {
		return false, nil
	}
	row.Status = order.StatusPaymentFailed
	r.s.st.orders[orderID] = row
	return true, nil
}

// ---- payment events ----

type paymentEventRepo struct{ s *Store }

func (r *paymentEventRepo) Record(_ context.Context, _ sqlc.DBTX, eventID, _ string, orderID *uuid.UUID, _ time.Time) (bool, error) {
	if _, seen := r.s.st.paymentEvents[eventID]; seen {
		return false, nil
	}
	r.s.st.paymentEvents[eventID] = orderID
	return true, nil
}

// ---- idempotency ----

type idempotencyRepo struct{ s *Store }

func (r *idempotencyRepo) TryInsert(_ context.Context, _ sqlc.DBTX, key uuid.UUID, sessionID, endpoint, requestHash string, expiresAt, now time.Time) (bool, error) {
	if existing, ok := r.s.st.idempotency[key]; ok && existing.ExpiresAt.After(now) {
		return false, nil
	}
	r.s.st.idempotency[key] = IdempotencyRow{
		Key:         key,
		SessionID:   sessionID,
		Endpoint:    endpoint,
		RequestHash: requestHash,
		Status:      shared.IdempotencyProcessing,
		ExpiresAt:   expiresAt,
	}
	return true, nil
}

func (r *idempotencyRepo) Get(_ context.Context, _ sqlc.DBTX, key uuid.UUID, sessionID string) (*shared.IdempotencyRecord, error) {
	row, ok := r.s.st.idempotency[key]
	if !ok || row.SessionID != sessionID {
		return nil, notFound("idempotency key not found")
	}
	return &shared.IdempotencyRecord{
		Key:           row.Key,
		SessionID:     row.SessionID,
		Status:        row.Status,
		RequestHash:   row.RequestHash,
		ResultOrderID: row.ResultOrderID,
		ExpiresAt:     row.ExpiresAt,
	}, nil
}

func (r *idempotencyRepo) Complete(_ context.Context, _ sqlc.DBTX, key uuid.UUID, sessionID string, orderID uuid.UUID) error {
	row, ok := r.s.st.idempotency[key]
	if !ok || row.SessionID != sessionID {
		return notFound("idempotency key not found")
	}
	row.Status = shared.IdempotencyCompleted
	row.ResultOrderID = &orderID
	r.s.st.idempotency[key] = row
	return nil
}

func (r *idempotencyRepo) Delete(_ context.Context, _ sqlc.DBTX, key uuid.UUID, sessionID string) error {
	if row, ok := r.s.st.idempotency[key]; ok && row.SessionID == sessionID {
		delete(r.s.st.idempotency, key)
	}
	return nil
}

func (r *idempotencyRepo) DeleteExpired(_ context.Context, _ sqlc.DBTX, now time.Time) (int64, error) {
	var n int64
	for key, row := range r.s.st.idempotency {
		if !row.ExpiresAt.After(now) {
			delete(r.s.st.idempotency, key)
			n++
		}
	}
	return n, nil
}

// ---- notifications ----

type notificationRepo struct{ s *Store }

func (r *notificationRepo) Enqueue(_ context.Context, _ sqlc.DBTX, job notification.Job) error {
	if err := r.s.fault("Notifications.Enqueue"); err != nil {
		return err
	}
	r.s.st.jobs = append(r.s.st.jobs, JobRow{
		ID:      uuid.New(),
		Kind:    job.Kind,
		Channel: job.Channel,
		Payload: job.Payload,
		RunAt:   job.RunAt,
		Status:  notification.StatusQueued,
	})
	return nil
}

func (r *notificationRepo) Due(_ context.Context, _ sqlc.DBTX, now time.Time, limit int32) ([]shared.NotificationJobRecord, error) {
	due := make([]JobRow, 0)
	for _, j := range r.s.st.jobs {
		if j.Status == notification.StatusQueued && !j.RunAt.After(now) {
			due = append(due, j)
		}
	}
	sort.SliceStable(due, func(a, b int) bool { return due[a].RunAt.Before(due[b].RunAt) })
	if int32(len(due)) > limit {
		due = due[:limit]
	}

	out := make([]shared.NotificationJobRecord, len(due))
	for i, j := range due {
		out[i] = shared.NotificationJobRecord{
			ID:       j.ID,
			Kind:     string(j.Kind),
			Channel:  j.Channel,
			Payload:  j.Payload,
			Attempts: j.Attempts,
		}
	}
	return out, nil
}

func (r *notificationRepo) UpdateStatus(_ context.Context, _ sqlc.DBTX, id uuid.UUID, status notification.JobStatus, lastErr string, runAt time.Time) error {
	for i, j := range r.s.st.jobs {
		if j.ID == id {
			j.Status = status
			j.Attempts++
			j.LastError = lastErr
			j.RunAt = runAt
			r.s.st.jobs[i] = j
			return nil
		}
	}
	return notFound("notification job not found")
}

// ---- drop subscriptions ----

type subscriptionRepo struct{ s *Store }

func (r *subscriptionRepo) Upsert(_ context.Context, _ sqlc.DBTX, sub *notification.DropSubscription) (bool, error) {
	for i, row := range r.s.st.subscriptions {
		if row.Email == sub.Email().String() && row.ProductID == sub.ProductID() {
			row.Source = sub.Source()
			r.s.st.subscriptions[i] = row
			return false, nil
		}
	}
	r.s.st.subscriptions = append(r.s.st.subscriptions, SubscriptionRow{
		ID:        uuid.New(),
		Email:     sub.Email().String(),
		ProductID: sub.ProductID(),
		Source:    sub.Source(),
	})
	return true, nil
}

func (r *subscriptionRepo) PendingForProduct(_ context.Context, _ sqlc.DBTX, productID uuid.UUID) ([]shared.PendingSubscriber, error) {
	var out []shared.PendingSubscriber
	for _, row := range r.s.st.subscriptions {
		if row.ProductID == productID && !row.Notified {
			out = append(out, shared.PendingSubscriber{ID: row.ID, Email: row.Email})
		}
	}
	return out, nil
}

func (r *subscriptionRepo) MarkNotified(_ context.Context, _ sqlc.DBTX, ids []uuid.UUID, _ time.Time) (int64, error) {
	want := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		want[id] = struct{}{}
	}
	var n int64
	for i, row := range r.s.st.subscriptions {
		if _, ok := want[row.ID]; ok {
			row.Notified = true
			r.s.st.subscriptions[i] = row
			n++
		}
	}
	return n, nil
}
