//go:build unit || e2e

package memstore

import (
	"context"
	"sort"
	"time"

	"hof-drops/internal/usecase/queries"

	"github.com/google/uuid"
)

var (
	_ queries.CatalogViewRepo     = (*Store)(nil)
	_ queries.OrderViewRepo       = (*Store)(nil)
	_ queries.ReservationViewRepo = (*Store)(nil)
)

func (p productRow) record() queries.ProductRecord {
	return queries.ProductRecord{
		ID:               p.ID,
		Name:             p.Name,
		Slug:             p.Slug,
		ImageURL:         p.ImageURL,
		PriceCents:       p.PriceCents,
		IsLimitedEdition: p.IsLimitedEdition,
		ReleaseDate:      p.ReleaseDate,
		DropEndDate:      p.DropEndDate,
		IsActive:         p.IsActive,
	}
}

func (s *Store) FindProduct(_ context.Context, id uuid.UUID) (*queries.ProductRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.st.products[id]
	if !ok {
		return nil, notFound("failed to find product")
	}
	rec := p.record()
	return &rec, nil
}

func (s *Store) SweepExpiredForProduct(_ context.Context, productID uuid.UUID, now time.Time) (int64, error) {
	if err := s.fault("Catalog.SweepExpiredForProduct"); err != nil {
		return 0, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	r := &reservationRepo{s: s}
	return r.sweep(func(row ReservationRow) bool { return row.ProductID == productID }, now), nil
}

func (s *Store) VariantAvailability(_ context.Context, productID uuid.UUID, now time.Time) ([]queries.VariantAvailabilityView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	variants := make([]variantRow, 0)
	for _, v := range s.st.variants {
		if v.ProductID == productID && v.IsActive {
			variants = append(variants, v)
		}
	}
	sort.Slice(variants, func(a, b int) bool { return variants[a].CreatedAt.Before(variants[b].CreatedAt) })

	out := make([]queries.VariantAvailabilityView, len(variants))
	for i, v := range variants {
		var held int64
		for _, r := range s.st.reservations {
			if r.VariantID == v.ID && r.IsActive && r.ExpiresAt.After(now) {
				held += int64(r.Quantity)
			}
		}
		out[i] = queries.VariantAvailabilityView{
			VariantID: v.ID,
			SKU:       v.SKU,
			Size:      v.Size,
			Color:     v.Color,
			Ledger:    v.Inventory,
			Held:      held,
		}
	}
	return out, nil
}

func (s *Store) DropCandidates(_ context.Context, now time.Time) ([]queries.ProductRecord, error) {
	if err := s.fault("Catalog.DropCandidates"); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]queries.ProductRecord, 0)
	for _, p := range s.st.products {
		if !p.IsLimitedEdition || !p.IsActive {
			continue
		}
		if p.DropEndDate != nil && p.DropEndDate.Before(now) {
			continue
		}
		out = append(out, p.record())
	}
	sort.Slice(out, func(a, b int) bool {
		ra, rb := out[a].ReleaseDate, out[b].ReleaseDate
		switch {
		case ra == nil && rb == nil:
			return out[a].ID.String() < out[b].ID.String()
		case ra == nil:
			return false
		case rb == nil:
			return true
		default:
			return ra.Before(*rb)
		}
	})
	return out, nil
}

func (s *Store) orderView(row OrderRow) *queries.OrderView {
	view := &queries.OrderView{
		ID:            row.ID,
		OrderNumber:   row.Number,
		SessionID:     row.SessionID,
		Status:        row.Status.String(),
		SubtotalCents: row.Subtotal,
		ShippingCents: row.Shipping,
		TaxCents:      row.Tax,
		TotalCents:    row.Total,
		Currency:      row.Currency,
		PaidAt:        row.PaidAt,
		CreatedAt:     row.CreatedAt,
		Items:         make([]queries.OrderItemView, len(row.Items)),
	}
	for _, c := range s.st.customers {
		if c.ID == row.CustomerID {
			view.Email, view.FirstName, view.LastName = c.Email, c.FirstName, c.LastName
		}
	}
	for i, it := range row.Items {
		snap := it.Snapshot()
		view.Items[i] = queries.OrderItemView{
			ProductID:      it.ProductID(),
			VariantID:      it.VariantID(),
			ProductName:    snap.ProductName,
			ProductImage:   snap.ProductImage,
			SKU:            snap.SKU,
			Size:           snap.Size,
			Color:          snap.Color,
			Quantity:       it.Quantity(),
			UnitPriceCents: it.UnitPrice().Cents(),
		}
	}
	return view
}

func (s *Store) FindByNumber(_ context.Context, number string) (*queries.OrderView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, row := range s.st.orders {
		if row.Number == number {
			return s.orderView(row), nil
		}
	}
	return nil, notFound("failed to find order")
}

func (s *Store) FindByID(_ context.Context, id uuid.UUID) (*queries.OrderView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	row, ok := s.st.orders[id]
	if !ok {
		return nil, notFound("failed to find order")
	}
	return s.orderView(row), nil
}

func (s *Store) ListActiveForSession(_ context.Context, sessionID string, now time.Time) ([]queries.ReservationView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]queries.ReservationView, 0)
	for _, r := range s.st.reservations {
		if r.SessionID != sessionID || !r.IsActive || !r.ExpiresAt.After(now) {
			continue
		}
		out = append(out, queries.ReservationView{
			ID:          r.ID,
			ProductID:   r.ProductID,
			VariantID:   r.VariantID,
			ProductName: s.st.products[r.ProductID].Name,
			SKU:         s.st.variants[r.VariantID].SKU,
			Quantity:    r.Quantity,
			ExpiresAt:   r.ExpiresAt,
			CreatedAt:   r.CreatedAt,
		})
	}
	sort.Slice(out, func(a, b int) bool { return out[a].CreatedAt.Before(out[b].CreatedAt) })
	return out, nil
}
