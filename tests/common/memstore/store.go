//go:build unit || e2e

// Package memstore is an in-memory UnitOfWork for use case tests. Transactions
// are serialized and roll back by restoring a snapshot taken on entry.
package memstore

import (
	"context"
	"sync"
	"time"

	"hof-drops/internal/domain/drop"
	"hof-drops/internal/domain/notification"
	"hof-drops/internal/domain/order"
	sqlc "hof-drops/internal/infra/sqlc/generated"
	"hof-drops/internal/usecase/shared"

	"github.com/google/uuid"
)

type productRow struct {
	ID               uuid.UUID
	Name             string
	Slug             string
	ImageURL         string
	PriceCents       int64
	IsLimitedEdition bool
	ReleaseDate      *time.Time
	DropEndDate      *time.Time
	IsActive         bool
	CreatedAt        time.Time
}

type variantRow struct {
	ID        uuid.UUID
	ProductID uuid.UUID
	SKU       string
	Size      string
	Color     string
	Inventory int32
	IsActive  bool
	CreatedAt time.Time
}

type ReservationRow struct {
	ID        uuid.UUID
	SessionID string
	ProductID uuid.UUID
	VariantID uuid.UUID
	Quantity  int32
	ExpiresAt time.Time
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

type OrderRow struct {
	ID                 uuid.UUID
	Number             string
	CustomerID         uuid.UUID
	SessionID          string
	Status             order.Status
	Subtotal           int64
	Shipping           int64
	Tax                int64
	Total              int64
	Currency           string
	PaymentIntentID    string
	InventoryAppliedAt *time.Time
	PaidAt             *time.Time
	CreatedAt          time.Time
	Items              []order.Item
}

type customerRow struct {
	ID        uuid.UUID
	Email     string
	FirstName string
	LastName  string
}

type IdempotencyRow struct {
	Key           uuid.UUID
	SessionID     string
	Endpoint      string
	RequestHash   string
	Status        string
	ResultOrderID *uuid.UUID
	ExpiresAt     time.Time
}

type JobRow struct {
	ID        uuid.UUID
	Kind      notification.JobKind
	Channel   string
	Payload   []byte
	RunAt     time.Time
	Status    notification.JobStatus
	Attempts  int32
	LastError string
}

type SubscriptionRow struct {
	ID        uuid.UUID
	Email     string
	ProductID uuid.UUID
	Source    string
	Notified  bool
}

type state struct {
	products      map[uuid.UUID]productRow
	variants      map[uuid.UUID]variantRow
	reservations  map[uuid.UUID]ReservationRow
	customers     map[string]customerRow
	addresses     int
	orders        map[uuid.UUID]OrderRow
	paymentEvents map[string]*uuid.UUID
	idempotency   map[uuid.UUID]IdempotencyRow
	jobs          []JobRow
	subscriptions []SubscriptionRow
}

func newState() *state {
	return &state{
		products:      map[uuid.UUID]productRow{},
		variants:      map[uuid.UUID]variantRow{},
		reservations:  map[uuid.UUID]ReservationRow{},
		customers:     map[string]customerRow{},
		orders:        map[uuid.UUID]OrderRow{},
		paymentEvents: map[string]*uuid.UUID{},
		idempotency:   map[uuid.UUID]IdempotencyRow{},
	}
}

func (s *state) clone() *state {
	c := newState()
	for k, v := range s.products {
		c.products[k] = v
	}
	for k, v := range s.variants {
		c.variants[k] = v
	}
	for k, v := range s.reservations {
		c.reservations[k] = v
	}
	for k, v := range s.customers {
		c.customers[k] = v
	}
	c.addresses = s.addresses
	for k, v := range s.orders {
		v.Items = append([]order.Item(nil), v.Items...)
		c.orders[k] = v
	}
	for k, v := range s.paymentEvents {
		c.paymentEvents[k] = v
	}
	for k, v := range s.idempotency {
		c.idempotency[k] = v
	}
	c.jobs = append([]JobRow(nil), s.jobs...)
	c.subscriptions = append([]SubscriptionRow(nil), s.subscriptions...)
	return c
}

// Store implements shared.UnitOfWork plus the read-side repositories.
type Store struct {
	mu sync.Mutex
	st *state

	faultMu sync.Mutex
	faults  map[string]error
}

func New() *Store {
	return &Store{st: newState(), faults: map[string]error{}}
}

var _ shared.UnitOfWork = (*Store)(nil)

func (s *Store) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := s.st.clone()
	if err := fn(ctx, &memTx{s: s}); err != nil {
		s.st = snapshot
		return err
	}
	return nil
}

// FailOn makes the named operation (e.g. "Notifications.Enqueue") return err until cleared.
func (s *Store) FailOn(op string, err error) {
	s.faultMu.Lock()
	defer s.faultMu.Unlock()
	if err == nil {
		delete(s.faults, op)
		return
	}
	s.faults[op] = err
}

func (s *Store) fault(op string) error {
	s.faultMu.Lock()
	defer s.faultMu.Unlock()
	return s.faults[op]
}

type memTx struct {
	s *Store
}

func (t *memTx) DB() sqlc.DBTX                                { return nil }
func (t *memTx) Catalog() shared.CatalogRepository            { return &catalogRepo{s: t.s} }
func (t *memTx) Reservations() shared.ReservationRepository   { return &reservationRepo{s: t.s} }
func (t *memTx) Orders() shared.OrderRepository               { return &orderRepo{s: t.s} }
func (t *memTx) PaymentEvents() shared.PaymentEventRepository { return &paymentEventRepo{s: t.s} }
func (t *memTx) Idempotency() shared.IdempotencyRepository    { return &idempotencyRepo{s: t.s} }
func (t *memTx) Notifications() shared.NotificationRepository { return &notificationRepo{s: t.s} }
func (t *memTx) DropSubscriptions() shared.DropSubscriptionRepository {
	return &subscriptionRepo{s: t.s}
}

// ---- seeding and inspection ----

type ProductSeed struct {
	Name             string
	PriceCents       int64
	IsLimitedEdition bool
	ReleaseDate      *time.Time
	DropEndDate      *time.Time
	Inactive         bool
}

func (s *Store) AddProduct(p ProductSeed) uuid.UUID {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := uuid.New()
	name := p.Name
	if name == "" {
		name = "Product " + id.String()[:8]
	}
	s.st.products[id] = productRow{
		ID:               id,
		Name:             name,
		Slug:             id.String(),
		PriceCents:       p.PriceCents,
		IsLimitedEdition: p.IsLimitedEdition,
		ReleaseDate:      p.ReleaseDate,
		DropEndDate:      p.DropEndDate,
		IsActive:         !p.Inactive,
		CreatedAt:        time.Now(),
	}
	return id
}

func (s *Store) AddVariant(productID uuid.UUID, inventory int32) uuid.UUID {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := uuid.New()
	s.st.variants[id] = variantRow{
		ID:        id,
		ProductID: productID,
		SKU:       "SKU-" + id.String()[:8],
		Size:      "M",
		Inventory: inventory,
		IsActive:  true,
		CreatedAt: time.Now().Add(time.Duration(len(s.st.variants)) * time.Millisecond),
	}
	return id
}

func (s *Store) Inventory(variantID uuid.UUID) int32 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.st.variants[variantID].Inventory
}

// ActiveHolds returns active rows on the variant, expired or not.
func (s *Store) ActiveHolds(variantID uuid.UUID) []ReservationRow {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []ReservationRow
	for _, r := range s.st.reservations {
		if r.VariantID == variantID && r.IsActive {
			out = append(out, r)
		}
	}
	return out
}

func (s *Store) Reservations() []ReservationRow {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]ReservationRow, 0, len(s.st.reservations))
	for _, r := range s.st.reservations {
		out = append(out, r)
	}
	return out
}

func (s *Store) Orders() []OrderRow {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]OrderRow, 0, len(s.st.orders))
	for _, o := range s.st.orders {
		out = append(out, o)
	}
	return out
}

func (s *Store) Order(id uuid.UUID) (OrderRow, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.st.orders[id]
	return o, ok
}

func (s *Store) Jobs() []JobRow {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]JobRow(nil), s.st.jobs...)
}

func (s *Store) Subscriptions() []SubscriptionRow {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]SubscriptionRow(nil), s.st.subscriptions...)
}

func (s *Store) IdempotencyKey(key uuid.UUID) (IdempotencyRow, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.st.idempotency[key]
	return r, ok
}

func (s *Store) PutIdempotencyKey(row IdempotencyRow) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.st.idempotency[row.Key] = row
}

func (s *Store) PaymentEvents() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.st.paymentEvents)
}

func (p productRow) snapshot() *shared.ProductSnapshot {
	return &shared.ProductSnapshot{
		ID:               p.ID,
		Name:             p.Name,
		Slug:             p.Slug,
		ImageURL:         p.ImageURL,
		PriceCents:       p.PriceCents,
		IsLimitedEdition: p.IsLimitedEdition,
		Window:           drop.ReconstructWindow(p.ReleaseDate, p.DropEndDate),
		IsActive:         p.IsActive,
	}
}

func (v variantRow) snapshot() *shared.VariantSnapshot {
	return &shared.VariantSnapshot{
		ID:        v.ID,
		ProductID: v.ProductID,
		SKU:       v.SKU,
		Size:      v.Size,
		Color:     v.Color,
		Inventory: v.Inventory,
		IsActive:  v.IsActive,
	}
}

// PutOrder seeds an order row directly, bypassing checkout.
func (s *Store) PutOrder(row OrderRow) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if row.ID == uuid.Nil {
		row.ID = uuid.New()
	}
	s.st.orders[row.ID] = row
}
