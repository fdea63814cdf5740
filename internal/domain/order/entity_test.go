//go:build unit

package order_test

import (
	"bytes"
	"testing"
	"time"

	"hof-drops/internal/domain/order"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func money(t *testing.T, cents int64) order.Money {
	t.Helper()
	m, err := order.NewMoney(cents)
	require.NoError(t, err)
	return m
}

func item(t *testing.T, qty int32, cents int64) order.Item {
	t.Helper()
	it, err := order.NewItem(uuid.New(), uuid.New(), qty, money(t, cents), order.ItemSnapshot{ProductName: "Crewneck", SKU: "CRW-M"})
	require.NoError(t, err)
	return it
}

func TestNewOrder_Totals(t *testing.T) {
	o, err := order.NewOrder(order.NewOrderParams{
		Number:   order.Number{},
		Items:    []order.Item{item(t, 2, 4500), item(t, 1, 12000)},
		Shipping: money(t, 800),
		Tax:      money(t, 1680),
		Currency: "USD",
		Now:      time.Now(),
	})
	require.NoError(t, err)

	assert.Equal(t, int64(21000), o.Totals().Subtotal.Cents())
	assert.Equal(t, int64(23480), o.Totals().Total.Cents())
	assert.Equal(t, order.StatusPending, o.Status())
}

func TestNewOrder_Rejects(t *testing.T) {
	_, err := order.NewOrder(order.NewOrderParams{})
	assert.ErrorIs(t, err, order.ErrNoItems)

	dup := item(t, 1, 100)
	_, err = order.NewOrder(order.NewOrderParams{Items: []order.Item{dup, dup}})
	assert.ErrorIs(t, err, order.ErrDuplicateVariant)

	_, err = order.NewItem(uuid.New(), uuid.New(), 0, money(t, 100), order.ItemSnapshot{ProductName: "x"})
	assert.ErrorIs(t, err, order.ErrInvalidItem)

	_, err = order.NewMoney(-1)
	assert.ErrorIs(t, err, order.ErrNegativeMoney)
}

func TestOrder_StatusTransitions(t *testing.T) {
	o := order.ReconstructOrder(uuid.New(), order.Number{}, uuid.New(), "s", order.StatusPending, order.Totals{}, "USD", "", time.Now())

	changed, err := o.MarkPaid()
	require.NoError(t, err)
	assert.True(t, changed)

	changed, err = o.MarkPaid()
	require.NoError(t, err)
	assert.False(t, changed, "second success is a no-op")

	_, err = o.MarkPaymentFailed()
	assert.ErrorIs(t, err, order.ErrInvalidTransition)

	failed := order.ReconstructOrder(uuid.New(), order.Number{}, uuid.New(), "s", order.StatusPaymentFailed, order.Totals{}, "USD", "", time.Now())
	changed, err = failed.MarkPaid()
	require.NoError(t, err)
	assert.True(t, changed, "a retried payment may succeed after failure")
}

func TestGenerateNumber(t *testing.T) {
	now := time.Date(2026, 3, 1, 23, 0, 0, 0, time.UTC)
	n, err := order.GenerateNumber(now, bytes.NewReader([]byte{0, 1, 2, 3, 4, 5}))
	require.NoError(t, err)
	assert.Equal(t, "HOF-260301-234567", n.String())

	parsed, err := order.ParseNumber("hof-260301-234567")
	require.NoError(t, err)
	assert.Equal(t, n, parsed)

	_, err = order.ParseNumber("ORD-1")
	assert.ErrorIs(t, err, order.ErrInvalidOrderNumber)

	random, err := order.GenerateNumber(now, nil)
	require.NoError(t, err)
	assert.NotEqual(t, n, random)
}

func TestCustomerAndAddress(t *testing.T) {
	c, err := order.NewCustomer(" Ada@Example.com ", "Ada", "Lovelace", "")
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", c.Email.String())

	_, err = order.NewCustomer("not-an-email", "Ada", "Lovelace", "")
	assert.ErrorIs(t, err, order.ErrInvalidEmail)
	_, err = order.NewCustomer("a@b.co", "", "Lovelace", "")
	assert.ErrorIs(t, err, order.ErrInvalidName)

	addr, err := order.NewAddress("1 Main St", "", "Portland", "OR", "97201", "us")
	require.NoError(t, err)
	assert.Equal(t, "US", addr.Country)
	_, err = order.NewAddress("1 Main St", "", "Portland", "OR", "97201", "USA")
	assert.ErrorIs(t, err, order.ErrInvalidAddress)
}
