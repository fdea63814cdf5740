//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"hof-drops/internal/domain/order"
	"hof-drops/internal/domain/reservation"
	reqdto "hof-drops/internal/handler/dto/request"
	"hof-drops/internal/pkg/clock"
	"hof-drops/internal/pkg/errs"
	"hof-drops/internal/usecase/commands"
	"hof-drops/internal/usecase/queries"
	"hof-drops/tests/common/memstore"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type PaymentCommandsTestSuite struct {
	suite.Suite
	store    *memstore.Store
	clock    *clock.MockClock
	payments commands.PaymentCommands
	orders   commands.OrderCommands
}

func (s *PaymentCommandsTestSuite) SetupTest() {
	s.store = memstore.New()
	s.clock = clock.NewMockClock(baseTime)
	s.payments = commands.NewPaymentUseCase(s.store, s.clock)
	s.orders = commands.NewOrderUseCase(s.store, queries.NewOrderQueries(s.store), s.clock)
}

func TestPaymentCommandsSuite(t *testing.T) {
	suite.Run(t, new(PaymentCommandsTestSuite))
}

func (s *PaymentCommandsTestSuite) placeOrder(inventory int32, qty int32) (string, uuid.UUID, uuid.UUID) {
	productID := s.store.AddProduct(memstore.ProductSeed{PriceCents: 8000})
	variantID := s.store.AddVariant(productID, inventory)
	res, err := s.orders.CreateOrder(context.Background(), orderRequest(line(productID, variantID, qty)), "session-a", uuid.New())
	s.Require().NoError(err)
	return res.Order.OrderNumber, res.Order.ID, variantID
}

// seedUnappliedOrder stores a pending order whose inventory was never decremented.
func (s *PaymentCommandsTestSuite) seedUnappliedOrder(qty int32) (string, uuid.UUID, uuid.UUID) {
	productID := s.store.AddProduct(memstore.ProductSeed{PriceCents: 8000})
	variantID := s.store.AddVariant(productID, 4)
	price, err := order.NewMoney(8000)
	s.Require().NoError(err)
	item, err := order.NewItem(productID, variantID, qty, price, order.ItemSnapshot{ProductName: "Tee"})
	s.Require().NoError(err)

	id := uuid.New()
	number := "HOF-260314-ABCDEF"
	s.store.PutOrder(memstore.OrderRow{
		ID:        id,
		Number:    number,
		SessionID: "session-w",
		Status:    order.StatusPending,
		Items:     []order.Item{item},
		CreatedAt: baseTime,
	})
	return number, id, variantID
}

func (s *PaymentCommandsTestSuite) TestPaymentSucceeded() {
	s.Run("order already finalized is not decremented twice", func() {
		s.SetupTest()
		number, orderID, variantID := s.placeOrder(5, 2)
		s.Require().Equal(int32(3), s.store.Inventory(variantID))

		res, err := s.payments.HandlePaymentEvent(context.Background(), commands.PaymentEvent{
			ID: "evt_1", Type: "payment_intent.succeeded", Outcome: commands.PaymentSucceeded, OrderNumber: number,
		})
		s.Require().NoError(err)
		s.True(res.OrderFound)
		s.True(res.Changed)
		s.Equal(order.StatusPaid.String(), res.OrderStatus)

		s.Equal(int32(3), s.store.Inventory(variantID))
		row, _ := s.store.Order(orderID)
		s.Equal(order.StatusPaid, row.Status)
		s.NotNil(row.PaidAt)
	})

	s.Run("webhook path applies inventory and releases holds once", func() {
		s.SetupTest()
		number, orderID, variantID := s.seedUnappliedOrder(3)

		release := baseTime.Add(-time.Hour)
		end := baseTime.Add(time.Hour)
		heldProduct := s.store.AddProduct(memstore.ProductSeed{IsLimitedEdition: true, ReleaseDate: &release, DropEndDate: &end})
		heldVariant := s.store.AddVariant(heldProduct, 2)
		policy, _ := reservation.NewHoldPolicy(reservation.DefaultHoldPeriod)
		_, err := commands.NewReservationUseCase(s.store, policy, s.clock).Reserve(context.Background(), reqdto.ReserveRequest{
			ProductID: heldProduct, VariantID: &heldVariant, Quantity: 1, SessionID: "session-w",
		})
		s.Require().NoError(err)

		ev := commands.PaymentEvent{ID: "evt_2", Type: "payment_intent.succeeded", Outcome: commands.PaymentSucceeded, OrderNumber: number}
		_, err = s.payments.HandlePaymentEvent(context.Background(), ev)
		s.Require().NoError(err)

		s.Equal(int32(1), s.store.Inventory(variantID))
		s.Empty(s.store.ActiveHolds(heldVariant))
		row, _ := s.store.Order(orderID)
		s.NotNil(row.InventoryAppliedAt)

		// a different event for the same order converges without a second decrement
		ev.ID = "evt_3"
		res, err := s.payments.HandlePaymentEvent(context.Background(), ev)
		s.Require().NoError(err)
		s.False(res.Duplicate)
		s.False(res.Changed)
		s.Equal(int32(1), s.store.Inventory(variantID))
	})

	s.Run("duplicate event id is acknowledged without effect", func() {
		s.SetupTest()
		number, _, variantID := s.seedUnappliedOrder(1)
		ev := commands.PaymentEvent{ID: "evt_dup", Type: "payment_intent.succeeded", Outcome: commands.PaymentSucceeded, OrderNumber: number}

		_, err := s.payments.HandlePaymentEvent(context.Background(), ev)
		s.Require().NoError(err)
		res, err := s.payments.HandlePaymentEvent(context.Background(), ev)
		s.Require().NoError(err)

		s.True(res.Duplicate)
		s.Equal(int32(3), s.store.Inventory(variantID))
		s.Equal(1, s.store.PaymentEvents())
	})

	s.Run("ledger short on the webhook path rolls back", func() {
		s.SetupTest()
		number, orderID, variantID := s.seedUnappliedOrder(9)

		_, err := s.payments.HandlePaymentEvent(context.Background(), commands.PaymentEvent{
			ID: "evt_short", Type: "payment_intent.succeeded", Outcome: commands.PaymentSucceeded, OrderNumber: number,
		})
		s.True(errs.Is(err, commands.ErrTransactionFailure), "got %v", err)

		s.Equal(int32(4), s.store.Inventory(variantID))
		row, _ := s.store.Order(orderID)
		s.Equal(order.StatusPending, row.Status)
		s.Zero(s.store.PaymentEvents(), "event must stay retryable")
	})
}

func (s *PaymentCommandsTestSuite) TestPaymentFailed() {
	s.Run("pending order moves to payment_failed without restoring inventory", func() {
		s.SetupTest()
		number, orderID, variantID := s.placeOrder(5, 2)

		res, err := s.payments.HandlePaymentEvent(context.Background(), commands.PaymentEvent{
			ID: "evt_f", Type: "payment_intent.payment_failed", Outcome: commands.PaymentFailed, OrderNumber: number,
		})
		s.Require().NoError(err)
		s.True(res.Changed)

		row, _ := s.store.Order(orderID)
		s.Equal(order.StatusPaymentFailed, row.Status)
		s.Equal(int32(3), s.store.Inventory(variantID))
	})

	s.Run("a later success still pays the order", func() {
		s.SetupTest()
		number, orderID, _ := s.placeOrder(5, 1)

		_, err := s.payments.HandlePaymentEvent(context.Background(), commands.PaymentEvent{
			ID: "evt_f1", Outcome: commands.PaymentFailed, OrderNumber: number,
		})
		s.Require().NoError(err)
		_, err = s.payments.HandlePaymentEvent(context.Background(), commands.PaymentEvent{
			ID: "evt_s1", Outcome: commands.PaymentSucceeded, OrderNumber: number,
		})
		s.Require().NoError(err)

		row, _ := s.store.Order(orderID)
		s.Equal(order.StatusPaid, row.Status)
	})

	s.Run("failure after payment is ignored", func() {
		s.SetupTest()
		number, orderID, _ := s.placeOrder(5, 1)

		_, err := s.payments.HandlePaymentEvent(context.Background(), commands.PaymentEvent{
			ID: "evt_s2", Outcome: commands.PaymentSucceeded, OrderNumber: number,
		})
		s.Require().NoError(err)
		res, err := s.payments.HandlePaymentEvent(context.Background(), commands.PaymentEvent{
			ID: "evt_f2", Outcome: commands.PaymentFailed, OrderNumber: number,
		})
		s.Require().NoError(err)
		s.False(res.Changed)

		row, _ := s.store.Order(orderID)
		s.Equal(order.StatusPaid, row.Status)
	})
}

func (s *PaymentCommandsTestSuite) TestEdgeCases() {
	s.Run("unknown order is acknowledged and recorded", func() {
		s.SetupTest()
		res, err := s.payments.HandlePaymentEvent(context.Background(), commands.PaymentEvent{
			ID: "evt_x", Outcome: commands.PaymentSucceeded, OrderNumber: "HOF-260314-ZZZZZZ",
		})
		s.Require().NoError(err)
		s.False(res.OrderFound)
		s.Equal(1, s.store.PaymentEvents())
	})

	s.Run("ignored event types touch nothing", func() {
		s.SetupTest()
		res, err := s.payments.HandlePaymentEvent(context.Background(), commands.PaymentEvent{
			ID: "evt_i", Type: "charge.refunded", Outcome: commands.PaymentIgnored,
		})
		s.Require().NoError(err)
		s.False(res.OrderFound)
		s.Zero(s.store.PaymentEvents())
	})

	s.Run("event id is required", func() {
		s.SetupTest()
		_, err := s.payments.HandlePaymentEvent(context.Background(), commands.PaymentEvent{Outcome: commands.PaymentSucceeded})
		s.True(errs.Is(err, commands.ErrValidation), "got %v", err)
	})
}
