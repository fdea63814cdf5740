//go:build unit

package commands_test

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"hof-drops/internal/domain/notification"
	"hof-drops/internal/domain/order"
	"hof-drops/internal/domain/reservation"
	reqdto "hof-drops/internal/handler/dto/request"
	"hof-drops/internal/pkg/clock"
	"hof-drops/internal/pkg/errs"
	"hof-drops/internal/usecase/commands"
	"hof-drops/internal/usecase/queries"
	"hof-drops/internal/usecase/shared"
	"hof-drops/tests/common/memstore"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type OrderCommandsTestSuite struct {
	suite.Suite
	store        *memstore.Store
	clock        *clock.MockClock
	cmds         commands.OrderCommands
	reservations commands.ReservationCommands
}

func (s *OrderCommandsTestSuite) SetupTest() {
	s.store = memstore.New()
	s.clock = clock.NewMockClock(baseTime)

	policy, err := reservation.NewHoldPolicy(reservation.DefaultHoldPeriod)
	s.Require().NoError(err)
	s.cmds = commands.NewOrderUseCase(s.store, queries.NewOrderQueries(s.store), s.clock)
	s.reservations = commands.NewReservationUseCase(s.store, policy, s.clock)
}

func TestOrderCommandsSuite(t *testing.T) {
	suite.Run(t, new(OrderCommandsTestSuite))
}

func (s *OrderCommandsTestSuite) limitedVariant(inventory int32) (uuid.UUID, uuid.UUID) {
	release := baseTime.Add(-time.Hour)
	end := baseTime.Add(24 * time.Hour)
	productID := s.store.AddProduct(memstore.ProductSeed{
		Name:             "Runway Jacket",
		PriceCents:       12000,
		IsLimitedEdition: true,
		ReleaseDate:      &release,
		DropEndDate:      &end,
	})
	return productID, s.store.AddVariant(productID, inventory)
}

func orderRequest(items ...reqdto.OrderItemRequest) reqdto.CreateOrderRequest {
	return reqdto.CreateOrderRequest{
		Customer: reqdto.CustomerRequest{
			Email:     "ada@example.com",
			FirstName: "Ada",
			LastName:  "Lovelace",
		},
		ShippingAddress: reqdto.AddressRequest{
			Line1:      "1 Analytical Way",
			City:       "London",
			PostalCode: "N1 9GU",
			Country:    "GB",
		},
		Items:         items,
		ShippingCents: 500,
		TaxCents:      100,
	}
}

func line(productID, variantID uuid.UUID, qty int32) reqdto.OrderItemRequest {
	return reqdto.OrderItemRequest{ProductID: productID, VariantID: &variantID, Quantity: qty}
}

func requestHash(req reqdto.CreateOrderRequest) string {
	data, _ := json.Marshal(req)
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

func (s *OrderCommandsTestSuite) TestCreateOrder() {
	s.Run("finalize decrements the ledger, releases holds and queues a confirmation", func() {
		s.SetupTest()
		productID, variantID := s.limitedVariant(5)
		_, err := s.reservations.Reserve(context.Background(), reqdto.ReserveRequest{
			ProductID: productID, VariantID: &variantID, Quantity: 2, SessionID: "session-a",
		})
		s.Require().NoError(err)

		res, err := s.cmds.CreateOrder(context.Background(), orderRequest(line(productID, variantID, 2)), "session-a", uuid.New())
		s.Require().NoError(err)
		s.False(res.IsReplayed)

		s.Equal(order.StatusPending.String(), res.Order.Status)
		s.Equal(int64(24000), res.Order.SubtotalCents)
		s.Equal(int64(24600), res.Order.TotalCents)
		s.Equal("USD", res.Order.Currency)
		s.Equal("ada@example.com", res.Order.Email)
		s.Require().Len(res.Order.Items, 1)
		s.Equal("Runway Jacket", res.Order.Items[0].ProductName)
		s.Equal(int64(12000), res.Order.Items[0].UnitPriceCents)

		_, err = order.ParseNumber(res.Order.OrderNumber)
		s.NoError(err)

		s.Equal(int32(3), s.store.Inventory(variantID))
		s.Empty(s.store.ActiveHolds(variantID))

		row, ok := s.store.Order(res.Order.ID)
		s.Require().True(ok)
		s.NotNil(row.InventoryAppliedAt)

		jobs := s.store.Jobs()
		s.Require().Len(jobs, 1)
		s.Equal(notification.KindOrderConfirmation, jobs[0].Kind)
		var payload notification.OrderConfirmationPayload
		s.Require().NoError(json.Unmarshal(jobs[0].Payload, &payload))
		s.Equal(res.Order.OrderNumber, payload.OrderNumber)
		s.Equal(int64(24600), payload.TotalCents)
	})

	s.Run("missing product rolls back the whole order", func() {
		s.SetupTest()
		productID, variantID := s.limitedVariant(5)
		key := uuid.New()

		req := orderRequest(line(productID, variantID, 1), line(uuid.New(), uuid.New(), 1))
		_, err := s.cmds.CreateOrder(context.Background(), req, "session-a", key)
		s.True(errs.Is(err, commands.ErrProductNotFound), "got %v", err)

		s.Equal(int32(5), s.store.Inventory(variantID))
		s.Empty(s.store.Orders())
		s.Empty(s.store.Jobs())
		_, kept := s.store.IdempotencyKey(key)
		s.False(kept, "failed attempt must free the idempotency key")
	})

	s.Run("failure after the decrements rolls them back", func() {
		s.SetupTest()
		productID, variantID := s.limitedVariant(5)
		s.store.FailOn("Notifications.Enqueue", errors.New("disk full"))

		_, err := s.cmds.CreateOrder(context.Background(), orderRequest(line(productID, variantID, 2)), "session-a", uuid.New())
		s.True(errs.Is(err, commands.ErrTransactionFailure), "got %v", err)
		s.Equal(int32(5), s.store.Inventory(variantID))
		s.Empty(s.store.Orders())
	})

	s.Run("holds of other sessions are respected", func() {
		s.SetupTest()
		productID, variantID := s.limitedVariant(3)
		_, err := s.reservations.Reserve(context.Background(), reqdto.ReserveRequest{
			ProductID: productID, VariantID: &variantID, Quantity: 2, SessionID: "session-b",
		})
		s.Require().NoError(err)

		_, err = s.cmds.CreateOrder(context.Background(), orderRequest(line(productID, variantID, 2)), "session-a", uuid.New())
		short, ok := reservation.AsInsufficientInventory(err)
		s.Require().True(ok, "got %v", err)
		s.Equal(int64(1), short.Available)
		s.Equal(int32(3), s.store.Inventory(variantID))
	})

	s.Run("regular products cannot oversell", func() {
		s.SetupTest()
		productID := s.store.AddProduct(memstore.ProductSeed{PriceCents: 3000})
		variantID := s.store.AddVariant(productID, 1)

		_, err := s.cmds.CreateOrder(context.Background(), orderRequest(line(productID, variantID, 2)), "session-a", uuid.New())
		_, ok := reservation.AsInsufficientInventory(err)
		s.True(ok, "got %v", err)
		s.Equal(int32(1), s.store.Inventory(variantID))
	})

	s.Run("concurrent checkouts of the last unit", func() {
		s.SetupTest()
		productID, variantID := s.limitedVariant(1)

		const shoppers = 8
		var (
			wg        sync.WaitGroup
			mu        sync.Mutex
			succeeded int
			rejected  int
		)
		for i := 0; i < shoppers; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				session := "session-" + string(rune('a'+i))
				_, err := s.cmds.CreateOrder(context.Background(), orderRequest(line(productID, variantID, 1)), session, uuid.New())
				mu.Lock()
				defer mu.Unlock()
				if err == nil {
					succeeded++
				} else if _, ok := reservation.AsInsufficientInventory(err); ok {
					rejected++
				}
			}(i)
		}
		wg.Wait()

		s.Equal(1, succeeded)
		s.Equal(shoppers-1, rejected)
		s.Equal(int32(0), s.store.Inventory(variantID))
		s.Len(s.store.Orders(), 1)
	})

	s.Run("invalid input", func() {
		s.SetupTest()
		productID, variantID := s.limitedVariant(5)

		bad := orderRequest(line(productID, variantID, 1))
		bad.Customer.Email = "not-an-email"
		_, err := s.cmds.CreateOrder(context.Background(), bad, "session-a", uuid.New())
		s.True(errs.Is(err, commands.ErrValidation), "got %v", err)

		_, err = s.cmds.CreateOrder(context.Background(), orderRequest(line(productID, variantID, 1)), "", uuid.New())
		s.True(errs.Is(err, commands.ErrValidation), "got %v", err)

		dup := orderRequest(line(productID, variantID, 1), line(productID, variantID, 1))
		_, err = s.cmds.CreateOrder(context.Background(), dup, "session-a", uuid.New())
		s.True(errs.Is(err, commands.ErrValidation), "got %v", err)
		s.Equal(int32(5), s.store.Inventory(variantID))
	})
}

func (s *OrderCommandsTestSuite) TestIdempotency() {
	s.Run("same key and body replays the original order", func() {
		s.SetupTest()
		productID, variantID := s.limitedVariant(5)
		key := uuid.New()
		req := orderRequest(line(productID, variantID, 1))

		first, err := s.cmds.CreateOrder(context.Background(), req, "session-a", key)
		s.Require().NoError(err)
		second, err := s.cmds.CreateOrder(context.Background(), req, "session-a", key)
		s.Require().NoError(err)

		s.True(second.IsReplayed)
		s.Equal(first.Order.ID, second.Order.ID)
		s.Equal(int32(4), s.store.Inventory(variantID))
		s.Len(s.store.Orders(), 1)

		row, ok := s.store.IdempotencyKey(key)
		s.Require().True(ok)
		s.Equal(shared.IdempotencyCompleted, row.Status)
	})

	s.Run("same key with a different body is rejected", func() {
		s.SetupTest()
		productID, variantID := s.limitedVariant(5)
		key := uuid.New()

		_, err := s.cmds.CreateOrder(context.Background(), orderRequest(line(productID, variantID, 1)), "session-a", key)
		s.Require().NoError(err)
		_, err = s.cmds.CreateOrder(context.Background(), orderRequest(line(productID, variantID, 2)), "session-a", key)
		s.True(errs.Is(err, commands.ErrIdempotencyKeyReused), "got %v", err)
	})

	s.Run("same key from another session is rejected", func() {
		s.SetupTest()
		productID, variantID := s.limitedVariant(5)
		key := uuid.New()
		req := orderRequest(line(productID, variantID, 1))

		_, err := s.cmds.CreateOrder(context.Background(), req, "session-a", key)
		s.Require().NoError(err)
		_, err = s.cmds.CreateOrder(context.Background(), req, "session-b", key)
		s.True(errs.Is(err, commands.ErrIdempotencyKeyReused), "got %v", err)
	})

	s.Run("request still processing", func() {
		s.SetupTest()
		productID, variantID := s.limitedVariant(5)
		key := uuid.New()
		req := orderRequest(line(productID, variantID, 1))
		s.store.PutIdempotencyKey(memstore.IdempotencyRow{
			Key:         key,
			SessionID:   "session-a",
			RequestHash: requestHash(req),
			Status:      shared.IdempotencyProcessing,
			ExpiresAt:   baseTime.Add(time.Hour),
		})

		_, err := s.cmds.CreateOrder(context.Background(), req, "session-a", key)
		s.True(errs.Is(err, commands.ErrIdempotencyInProgress), "got %v", err)
		s.Equal(int32(5), s.store.Inventory(variantID))
	})

	s.Run("expired key is reusable", func() {
		s.SetupTest()
		productID, variantID := s.limitedVariant(5)
		key := uuid.New()
		s.store.PutIdempotencyKey(memstore.IdempotencyRow{
			Key:         key,
			SessionID:   "session-a",
			RequestHash: "stale",
			Status:      shared.IdempotencyProcessing,
			ExpiresAt:   baseTime.Add(-time.Minute),
		})

		res, err := s.cmds.CreateOrder(context.Background(), orderRequest(line(productID, variantID, 1)), "session-a", key)
		s.Require().NoError(err)
		s.False(res.IsReplayed)
	})
}
