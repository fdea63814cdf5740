package shared

import (
	"context"
	"time"

	"hof-drops/internal/domain/notification"
	"hof-drops/internal/domain/order"
	"hof-drops/internal/domain/reservation"
	sqlc "hof-drops/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

type Tx interface {
	Catalog() CatalogRepository
	Reservations() ReservationRepository
	Orders() OrderRepository
	PaymentEvents() PaymentEventRepository
	Idempotency() IdempotencyRepository
	Notifications() NotificationRepository
	DropSubscriptions() DropSubscriptionRepository
	DB() sqlc.DBTX
}

type CatalogRepository interface {
	ProductByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (*ProductSnapshot, error)
	// LockVariant takes a row lock that serializes every inventory decision for the variant.
	LockVariant(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (*VariantSnapshot, error)
	DefaultVariant(ctx context.Context, db sqlc.DBTX, productID uuid.UUID) (*VariantSnapshot, error)
	// DecrementInventory reports false when the ledger holds fewer than qty units.
	DecrementInventory(ctx context.Context, db sqlc.DBTX, variantID uuid.UUID, qty int32) (bool, error)
	Restock(ctx context.Context, db sqlc.DBTX, variantID uuid.UUID, qty int32) (int32, error)
}

type ReservationRepository interface {
	SweepExpired(ctx context.Context, db sqlc.DBTX, now time.Time) (int64, error)
	SweepExpiredForVariant(ctx context.Context, db sqlc.DBTX, variantID uuid.UUID, now time.Time) (int64, error)
	// HeldByOthers sums active, unexpired holds on the variant excluding sessionID.
	HeldByOthers(ctx context.Context, db sqlc.DBTX, variantID uuid.UUID, sessionID string, now time.Time) (int64, error)
	ActiveForSession(ctx context.Context, db sqlc.DBTX, sessionID string, variantID uuid.UUID, now time.Time) (*reservation.CartReservation, error)
	Create(ctx context.Context, db sqlc.DBTX, r *reservation.CartReservation) (uuid.UUID, error)
	Refresh(ctx context.Context, db sqlc.DBTX, r *reservation.CartReservation) error
	ReleaseSession(ctx context.Context, db sqlc.DBTX, sessionID string, now time.Time) (int64, error)
	ReleaseByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID, sessionID string, now time.Time) (bool, error)
}

type OrderRepository interface {
	UpsertCustomer(ctx context.Context, db sqlc.DBTX, c order.Customer) (uuid.UUID, error)
	CreateAddress(ctx context.Context, db sqlc.DBTX, customerID uuid.UUID, kind order.AddressKind, a order.Address) (uuid.UUID, error)
	// Insert reports false when the order number is already taken.
	Insert(ctx context.Context, db sqlc.DBTX, o *order.Order, shippingAddressID, billingAddressID uuid.UUID) (bool, error)
	CreateItem(ctx context.Context, db sqlc.DBTX, orderID uuid.UUID, item order.Item) error
	// MarkInventoryApplied sets the one-shot guard and reports whether this call set it.
	MarkInventoryApplied(ctx context.Context, db sqlc.DBTX, orderID uuid.UUID, now time.Time) (bool, error)
	LockByNumber(ctx context.Context, db sqlc.DBTX, number string) (*OrderState, error)
	Items(ctx context.Context, db sqlc.DBTX, orderID uuid.UUID) ([]OrderLine, error)
	MarkPaid(ctx context.Context, db sqlc.DBTX, orderID uuid.UUID, now time.Time) (bool, error)
	MarkPaymentFailed(ctx context.Context, db sqlc.DBTX, orderID uuid.UUID, now time.Time) (bool, error)
}

type PaymentEventRepository interface {
	// Record reports false when the event id was already processed.
	Record(ctx context.Context, db sqlc.DBTX, eventID, eventType string, orderID *uuid.UUID, now time.Time) (bool, error)
}

type IdempotencyRepository interface {
	// TryInsert reports false when a live key already exists for the session.
	TryInsert(ctx context.Context, db sqlc.DBTX, key uuid.UUID, sessionID, endpoint, requestHash string, expiresAt, now time.Time) (bool, error)
	Get(ctx context.Context, db sqlc.DBTX, key uuid.UUID, sessionID string) (*IdempotencyRecord, error)
	Complete(ctx context.Context, db sqlc.DBTX, key uuid.UUID, sessionID string, orderID uuid.UUID) error
	Delete(ctx context.Context, db sqlc.DBTX, key uuid.UUID, sessionID string) error
	DeleteExpired(ctx context.Context, db sqlc.DBTX, now time.Time) (int64, error)
}

type NotificationRepository interface {
	Enqueue(ctx context.Context, db sqlc.DBTX, job notification.Job) error
	Due(ctx context.Context, db sqlc.DBTX, now time.Time, limit int32) ([]NotificationJobRecord, error)
	UpdateStatus(ctx context.Context, db sqlc.DBTX, id uuid.UUID, status notification.JobStatus, lastErr string, runAt time.Time) error
}

type DropSubscriptionRepository interface {
	// Upsert reports true when a new subscription row was created.
	Upsert(ctx context.Context, db sqlc.DBTX, s *notification.DropSubscription) (bool, error)
	PendingForProduct(ctx context.Context, db sqlc.DBTX, productID uuid.UUID) ([]PendingSubscriber, error)
	MarkNotified(ctx context.Context, db sqlc.DBTX, ids []uuid.UUID, now time.Time) (int64, error)
}
