package order

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNoItems            = errors.New("order requires at least one item")
	ErrInvalidItem        = errors.New("order item requires a positive quantity and a product/variant")
	ErrDuplicateVariant   = errors.New("each variant may appear only once per order")
	ErrInvalidTransition  = errors.New("invalid order status transition")
	ErrMissingItemDetails = errors.New("order item snapshot requires a product name")
)

// ItemSnapshot freezes catalog details at purchase time.
type ItemSnapshot struct {
	ProductName  string
	ProductImage string
	SKU          string
	Size         string
	Color        string
}

type Item struct {
	productID uuid.UUID
	variantID uuid.UUID
	quantity  int32
	unitPrice Money
	snapshot  ItemSnapshot
}

func NewItem(productID, variantID uuid.UUID, quantity int32, unitPrice Money, snapshot ItemSnapshot) (Item, error) {
	if productID == uuid.Nil || variantID == uuid.Nil || quantity <= 0 {
		return Item{}, ErrInvalidItem
	}
	if snapshot.ProductName == "" {
		return Item{}, ErrMissingItemDetails
	}
	return Item{productID: productID, variantID: variantID, quantity: quantity, unitPrice: unitPrice, snapshot: snapshot}, nil
}

func (i Item) ProductID() uuid.UUID   { return i.productID }
func (i Item) VariantID() uuid.UUID   { return i.variantID }
func (i Item) Quantity() int32        { return i.quantity }
func (i Item) UnitPrice() Money       { return i.unitPrice }
func (i Item) Snapshot() ItemSnapshot { return i.snapshot }
func (i Item) LineTotal() Money       { return i.unitPrice.Times(i.quantity) }

type Totals struct {
	Subtotal Money
	Shipping Money
	Tax      Money
	Total    Money
}

type Order struct {
	id              uuid.UUID
	number          Number
	customerID      uuid.UUID
	sessionID       string
	status          Status
	items           []Item
	totals          Totals
	currency        Currency
	paymentIntentID string
	createdAt       time.Time
}

type NewOrderParams struct {
	Number          Number
	CustomerID      uuid.UUID
	SessionID       string
	Items           []Item
	Shipping        Money
	Tax             Money
	Currency        Currency
	PaymentIntentID string
	Now             time.Time
}

func NewOrder(p NewOrderParams) (*Order, error) {
	if len(p.Items) == 0 {
		return nil, ErrNoItems
	}
	seen := make(map[uuid.UUID]struct{}, len(p.Items))
	subtotal := Money{}
	for _, it := range p.Items {
		if _, dup := seen[it.variantID]; dup {
			return nil, ErrDuplicateVariant
		}
		seen[it.variantID] = struct{}{}
		subtotal = subtotal.Add(it.LineTotal())
	}

	return &Order{
		id:         uuid.New(),
		number:     p.Number,
		customerID: p.CustomerID,
		sessionID:  p.SessionID,
		status:     StatusPending,
		items:      append([]Item(nil), p.Items...),
		totals: Totals{
			Subtotal: subtotal,
			Shipping: p.Shipping,
			Tax:      p.Tax,
			Total:    subtotal.Add(p.Shipping).Add(p.Tax),
		},
		currency:        p.Currency,
		paymentIntentID: p.PaymentIntentID,
		createdAt:       p.Now,
	}, nil
}

// WithNumber is used when the generated number collided and was regenerated.
func (o *Order) WithNumber(n Number) {
	o.number = n
}

func ReconstructOrder(id uuid.UUID, number Number, customerID uuid.UUID, sessionID string, status Status, totals Totals, currency Currency, paymentIntentID string, createdAt time.Time) *Order {
	return &Order{
		id:              id,
		number:          number,
		customerID:      customerID,
		sessionID:       sessionID,
		status:          status,
		totals:          totals,
		currency:        currency,
		paymentIntentID: paymentIntentID,
		createdAt:       createdAt,
	}
}

// MarkPaid reports false when the order was already paid.
func (o *Order) MarkPaid() (bool, error) {
	if o.status == StatusPaid {
		return false, nil
	}
	if !o.status.CanBecomePaid() {
		return false, ErrInvalidTransition
	}
	o.status = StatusPaid
	return true, nil
}

func (o *Order) MarkPaymentFailed() (bool, error) {
	if o.status == StatusPaymentFailed {
		return false, nil
	}
	if !o.status.CanFailPayment() {
		return false, ErrInvalidTransition
	}
	o.status = StatusPaymentFailed
	return true, nil
}

func (o *Order) ID() uuid.UUID           { return o.id }
func (o *Order) Number() Number          { return o.number }
func (o *Order) CustomerID() uuid.UUID   { return o.customerID }
func (o *Order) SessionID() string       { return o.sessionID }
func (o *Order) Status() Status          { return o.status }
func (o *Order) Items() []Item           { return o.items }
func (o *Order) Totals() Totals          { return o.totals }
func (o *Order) Currency() Currency      { return o.currency }
func (o *Order) PaymentIntentID() string { return o.paymentIntentID }
func (o *Order) CreatedAt() time.Time    { return o.createdAt }
