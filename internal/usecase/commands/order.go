package commands

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"log/slog"
	"sort"
	"time"

	"hof-drops/internal/domain/notification"
	"hof-drops/internal/domain/order"
	"hof-drops/internal/domain/reservation"
	reqdto "hof-drops/internal/handler/dto/request"
	"hof-drops/internal/infra"
	"hof-drops/internal/pkg/clock"
	"hof-drops/internal/pkg/errs"
	"hof-drops/internal/usecase/queries"
	"hof-drops/internal/usecase/shared"

	"github.com/google/uuid"
)

const (
	createOrderEndpoint    = "POST /api/orders"
	idempotencyKeyTTL      = 24 * time.Hour
	maxOrderNumberAttempts = 5
)

var errOrderNumberExhausted = errs.New("could not allocate a unique order number")

type CreateOrderResult struct {
	Order      *queries.OrderView
	IsReplayed bool
}

type OrderCommands interface {
	CreateOrder(ctx context.Context, req reqdto.CreateOrderRequest, sessionID string, idempotencyKey uuid.UUID) (*CreateOrderResult, error)
}

type orderUseCaseImpl struct {
	uow          shared.UnitOfWork
	orderQueries queries.OrderQueries
	clock        clock.Clock
}

func NewOrderUseCase(uow shared.UnitOfWork, orderQueries queries.OrderQueries, clock clock.Clock) OrderCommands {
	return &orderUseCaseImpl{
		uow:          uow,
		orderQueries: orderQueries,
		clock:        clock,
	}
}

// orderLine is one request item resolved against the catalog.
type orderLine struct {
	product  *shared.ProductSnapshot
	variant  *shared.VariantSnapshot
	quantity int32
}

func (o *orderUseCaseImpl) CreateOrder(
	ctx context.Context,
	req reqdto.CreateOrderRequest,
	sessionID string,
	idempotencyKey uuid.UUID,
) (*CreateOrderResult, error) {
	session, err := reservation.NewSessionID(sessionID)
	if err != nil {
		return nil, errs.Mark(err, ErrValidation)
	}
	draft, err := req.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, ErrValidation)
	}

	requestHash := o.calculateRequestHash(req)

	replayed, err := o.handleIdempotency(ctx, idempotencyKey, session.String(), requestHash)
	if err != nil {
		return nil, err
	}
	if replayed != nil {
		return &CreateOrderResult{Order: replayed, IsReplayed: true}, nil
	}

	orderID, err := o.finalize(ctx, req, draft, session.String(), idempotencyKey)
	if err != nil {
		o.releaseIdempotencyKey(ctx, idempotencyKey, session.String())
		return nil, o.classifyFinalizeErr(ctx, err)
	}

	// Read-after-write from the read store
	view, err := o.orderQueries.GetByIDSystem(ctx, orderID)
	if err != nil {
		return nil, errs.Mark(err, ErrTransactionFailure)
	}
	return &CreateOrderResult{Order: view, IsReplayed: false}, nil
}

func (o *orderUseCaseImpl) handleIdempotency(
	ctx context.Context,
	key uuid.UUID,
	sessionID, requestHash string,
) (*queries.OrderView, error) {
	var existing *shared.IdempotencyRecord
	err := o.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		now := o.clock.Now()
		existing = nil

		inserted, err := tx.Idempotency().TryInsert(ctx, tx.DB(), key, sessionID, createOrderEndpoint, requestHash, now.Add(idempotencyKeyTTL), now)
		if err != nil || inserted {
			return err
		}

		existing, err = tx.Idempotency().Get(ctx, tx.DB(), key, sessionID)
		return err
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			// the key is live under another session
			return nil, ErrIdempotencyKeyReused
		}
		return nil, errs.Mark(err, ErrIdempotencyCheckFailed)
	}
	if existing == nil {
		return nil, nil
	}

	if existing.RequestHash != requestHash {
		return nil, ErrIdempotencyKeyReused
	}

	switch existing.Status {
	case shared.IdempotencyCompleted:
		if existing.ResultOrderID == nil {
			return nil, errs.Mark(errs.New("completed request missing result order ID"), ErrIdempotencyCheckFailed)
		}
		slog.InfoContext(ctx, "replaying completed order request", "idempotency_key", key)
		return o.orderQueries.GetByIDSystem(ctx, *existing.ResultOrderID)
	case shared.IdempotencyProcessing:
		return nil, ErrIdempotencyInProgress
	default:
		return nil, errs.Mark(errs.Newf("invalid idempotency key status %q", existing.Status), ErrIdempotencyCheckFailed)
	}
}

// finalize runs the whole checkout in one transaction: either the order, its
// items, every decrement and the hold release commit together or nothing does.
func (o *orderUseCaseImpl) finalize(
	ctx context.Context,
	req reqdto.CreateOrderRequest,
	draft *reqdto.OrderDraft,
	sessionID string,
	idempotencyKey uuid.UUID,
) (uuid.UUID, error) {
	var orderID uuid.UUID
	err := o.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		now := o.clock.Now()

		lines, err := o.resolveLines(ctx, tx, req.Items)
		if err != nil {
			return err
		}
		if err := o.checkAvailability(ctx, tx, lines, sessionID, now); err != nil {
			return err
		}

		customerID, err := tx.Orders().UpsertCustomer(ctx, tx.DB(), draft.Customer)
		if err != nil {
			return err
		}
		shippingID, err := tx.Orders().CreateAddress(ctx, tx.DB(), customerID, order.AddressShipping, draft.Shipping)
		if err != nil {
			return err
		}
		billingID, err := tx.Orders().CreateAddress(ctx, tx.DB(), customerID, order.AddressBilling, draft.Billing)
		if err != nil {
			return err
		}

		entity, err := o.buildOrder(lines, draft, customerID, sessionID, now)
		if err != nil {
			return err
		}
		if err := o.insertWithUniqueNumber(ctx, tx, entity, shippingID, billingID, now); err != nil {
			return err
		}
		for _, item := range entity.Items() {
			if err := tx.Orders().CreateItem(ctx, tx.DB(), entity.ID(), item); err != nil {
				return err
			}
		}

		if err := applyInventory(ctx, tx, entity.ID(), linesToOrderLines(lines), now); err != nil {
			return err
		}

		if _, err := tx.Reservations().ReleaseSession(ctx, tx.DB(), sessionID, now); err != nil {
			return err
		}

		if err := o.enqueueConfirmation(ctx, tx, entity, draft, now); err != nil {
			return err
		}

		if err := tx.Idempotency().Complete(ctx, tx.DB(), idempotencyKey, sessionID, entity.ID()); err != nil {
			return err
		}

		orderID = entity.ID()
		return nil
	})
	return orderID, err
}

// resolveLines loads every product and locks every variant in ascending id order.
func (o *orderUseCaseImpl) resolveLines(ctx context.Context, tx shared.Tx, items []reqdto.OrderItemRequest) ([]orderLine, error) {
	lines := make([]orderLine, 0, len(items))
	for _, it := range items {
		if it.Quantity <= 0 {
			return nil, errs.Mark(order.ErrInvalidItem, ErrValidation)
		}
		product, err := loadActiveProduct(ctx, tx, it.ProductID)
		if err != nil {
			return nil, err
		}

		variantID := uuid.Nil
		if it.VariantID != nil {
			variantID = *it.VariantID
		} else {
			def, err := tx.Catalog().DefaultVariant(ctx, tx.DB(), product.ID)
			if err != nil {
				if infra.IsKind(err, infra.KindNotFound) {
					return nil, ErrVariantNotFound
				}
				return nil, err
			}
			variantID = def.ID
		}

		lines = append(lines, orderLine{
			product:  product,
			variant:  &shared.VariantSnapshot{ID: variantID},
			quantity: it.Quantity,
		})
	}

	lockOrder := make([]int, len(lines))
	for i := range lockOrder {
		lockOrder[i] = i
	}
	sort.SliceStable(lockOrder, func(a, b int) bool {
		return lessUUID(lines[lockOrder[a]].variant.ID, lines[lockOrder[b]].variant.ID)
	})

	for _, idx := range lockOrder {
		l := &lines[idx]
		variant, err := tx.Catalog().LockVariant(ctx, tx.DB(), l.variant.ID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return nil, ErrVariantNotFound
			}
			return nil, err
		}
		if variant.ProductID != l.product.ID || !variant.IsActive {
			return nil, ErrVariantNotFound
		}
		l.variant = variant
	}
	return lines, nil
}

// checkAvailability re-validates limited-edition lines against the ledger
// minus holds owned by other sessions; the caller's own holds are being converted.
func (o *orderUseCaseImpl) checkAvailability(ctx context.Context, tx shared.Tx, lines []orderLine, sessionID string, now time.Time) error {
	for _, l := range lines {
		if !l.product.IsLimitedEdition {
			continue
		}
		if _, err := tx.Reservations().SweepExpiredForVariant(ctx, tx.DB(), l.variant.ID, now); err != nil {
			return err
		}
		held, err := tx.Reservations().HeldByOthers(ctx, tx.DB(), l.variant.ID, sessionID, now)
		if err != nil {
			return err
		}
		if err := reservation.NewAvailability(l.variant.Inventory, held).Ensure(int64(l.quantity)); err != nil {
			return err
		}
	}
	return nil
}

func (o *orderUseCaseImpl) buildOrder(lines []orderLine, draft *reqdto.OrderDraft, customerID uuid.UUID, sessionID string, now time.Time) (*order.Order, error) {
	items := make([]order.Item, 0, len(lines))
	for _, l := range lines {
		price, err := order.NewMoney(l.product.PriceCents)
		if err != nil {
			return nil, errs.Mark(err, ErrValidation)
		}
		item, err := order.NewItem(l.product.ID, l.variant.ID, l.quantity, price, order.ItemSnapshot{
			ProductName:  l.product.Name,
			ProductImage: l.product.ImageURL,
			SKU:          l.variant.SKU,
			Size:         l.variant.Size,
			Color:        l.variant.Color,
		})
		if err != nil {
			return nil, errs.Mark(err, ErrValidation)
		}
		items = append(items, item)
	}

	entity, err := order.NewOrder(order.NewOrderParams{
		CustomerID:      customerID,
		SessionID:       sessionID,
		Items:           items,
		Shipping:        draft.ShippingCost,
		Tax:             draft.Tax,
		Currency:        draft.Currency,
		PaymentIntentID: draft.PaymentIntentID,
		Now:             now,
	})
	if err != nil {
		return nil, errs.Mark(err, ErrValidation)
	}
	return entity, nil
}

func (o *orderUseCaseImpl) insertWithUniqueNumber(ctx context.Context, tx shared.Tx, entity *order.Order, shippingID, billingID uuid.UUID, now time.Time) error {
	for attempt := 1; attempt <= maxOrderNumberAttempts; attempt++ {
		number, err := order.GenerateNumber(now, nil)
		if err != nil {
			return err
		}
		entity.WithNumber(number)

		inserted, err := tx.Orders().Insert(ctx, tx.DB(), entity, shippingID, billingID)
		if err != nil {
			return err
		}
		if inserted {
			return nil
		}
		slog.WarnContext(ctx, "order number collision, regenerating", "order_number", number.String(), "attempt", attempt)
	}
	return errOrderNumberExhausted
}

func (o *orderUseCaseImpl) enqueueConfirmation(ctx context.Context, tx shared.Tx, entity *order.Order, draft *reqdto.OrderDraft, now time.Time) error {
	job, err := notification.NewOrderConfirmationJob(notification.OrderConfirmationPayload{
		OrderID:     entity.ID(),
		OrderNumber: entity.Number().String(),
		Email:       draft.Customer.Email.String(),
		FirstName:   draft.Customer.FirstName,
		TotalCents:  entity.Totals().Total.Cents(),
		Currency:    entity.Currency().String(),
	}, now)
	if err != nil {
		return err
	}
	return tx.Notifications().Enqueue(ctx, tx.DB(), job)
}

func (o *orderUseCaseImpl) releaseIdempotencyKey(ctx context.Context, key uuid.UUID, sessionID string) {
	err := o.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Idempotency().Delete(ctx, tx.DB(), key, sessionID)
	})
	if err != nil {
		slog.ErrorContext(ctx, "failed to release idempotency key after failed order",
			"idempotency_key", key, "error", err.Error())
	}
}

func (o *orderUseCaseImpl) classifyFinalizeErr(ctx context.Context, err error) error {
	if short, ok := reservation.AsInsufficientInventory(err); ok {
		slog.InfoContext(ctx, "order rejected: insufficient inventory",
			"available", short.Available, "requested", short.Requested)
		return err
	}
	switch {
	case errs.Is(err, ErrProductNotFound), errs.Is(err, ErrVariantNotFound), errs.Is(err, ErrValidation):
		slog.InfoContext(ctx, "order rejected", "error", err.Error())
		return err
	}
	slog.ErrorContext(ctx, "order transaction failed", "error", err.Error())
	return errs.Mark(err, ErrTransactionFailure)
}

func (o *orderUseCaseImpl) calculateRequestHash(req reqdto.CreateOrderRequest) string {
	data, _ := json.Marshal(req)
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}

// applyInventory decrements each line at most once per order. The guard row
// update and the decrements commit together.
func applyInventory(ctx context.Context, tx shared.Tx, orderID uuid.UUID, lines []shared.OrderLine, now time.Time) error {
	first, err := tx.Orders().MarkInventoryApplied(ctx, tx.DB(), orderID, now)
	if err != nil {
		return err
	}
	if !first {
		slog.DebugContext(ctx, "inventory already applied", "order_id", orderID)
		return nil
	}

	sort.SliceStable(lines, func(i, j int) bool { return lessUUID(lines[i].VariantID, lines[j].VariantID) })
	for _, l := range lines {
		variant, err := tx.Catalog().LockVariant(ctx, tx.DB(), l.VariantID)
		if err != nil {
			return err
		}
		ok, err := tx.Catalog().DecrementInventory(ctx, tx.DB(), l.VariantID, l.Quantity)
		if err != nil {
			return err
		}
		if !ok {
			return &reservation.InsufficientInventoryError{
				Available: max(int64(variant.Inventory), 0),
				Requested: int64(l.Quantity),
			}
		}
	}
	return nil
}

func linesToOrderLines(lines []orderLine) []shared.OrderLine {
	out := make([]shared.OrderLine, len(lines))
	for i, l := range lines {
		out[i] = shared.OrderLine{ProductID: l.product.ID, VariantID: l.variant.ID, Quantity: l.quantity}
	}
	return out
}

func lessUUID(a, b uuid.UUID) bool {
	for i := range a {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return false
}
