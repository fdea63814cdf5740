//go:build e2e

package checkout_test

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	nethttptest "net/http/httptest"
	"sync"
	"testing"
	"time"

	reqdto "hof-drops/internal/handler/dto/request"
	resdto "hof-drops/internal/handler/dto/response"
	"hof-drops/internal/handler/middleware"
	"hof-drops/tests/common/authtest"
	"hof-drops/tests/common/dbtest"
	"hof-drops/tests/common/httptest"
	"hof-drops/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	reservationsURL = "/api/reservations"
	ordersURL       = "/api/orders"
	availabilityURL = "/api/products/%s/availability"
	webhookURL      = "/api/webhooks/payments"
	sweepURL        = "/api/admin/reservations/sweep"
)

type CheckoutSuite struct {
	e2e.SharedSuite
}

func TestCheckoutSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(CheckoutSuite))
}

func session(id string) map[string]string {
	return map[string]string{middleware.SessionHeader: id}
}

func (s *CheckoutSuite) reserve(sessionID string, productID, variantID uuid.UUID, qty int) (int, resdto.ReserveResponse) {
	t := s.T()
	w := httptest.PerformRequestWithHeaders(t, s.Router, http.MethodPost, reservationsURL,
		reqdto.ReserveRequest{ProductID: productID, VariantID: &variantID, Quantity: qty}, session(sessionID))
	var resp resdto.ReserveResponse
	if w.Code == http.StatusOK {
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &resp))
	}
	return w.Code, resp
}

func orderRequest(productID, variantID uuid.UUID, qty int32) reqdto.CreateOrderRequest {
	return reqdto.CreateOrderRequest{
		Customer: reqdto.CustomerRequest{Email: "Fan@Example.com", FirstName: "Ada", LastName: "Lovelace"},
		ShippingAddress: reqdto.AddressRequest{
			Line1: "1 Drop St", City: "Brooklyn", PostalCode: "11201", Country: "US",
		},
		Items:         []reqdto.OrderItemRequest{{ProductID: productID, VariantID: &variantID, Quantity: qty}},
		ShippingCents: 1000,
		TaxCents:      500,
	}
}

func (s *CheckoutSuite) signedEvent(eventID, eventType, orderNumber string) ([]byte, string) {
	payload := []byte(fmt.Sprintf(`{
  "id": %q,
  "object": "event",
  "type": %q,
  "api_version": "2023-10-16",
  "data": {"object": {"id": "pi_e2e", "object": "payment_intent", "metadata": {"order_number": %q}}}
}`, eventID, eventType, orderNumber))

	ts := time.Now().Unix()
	mac := hmac.New(sha256.New, []byte(s.Config.Payment.WebhookSecret))
	_, _ = fmt.Fprintf(mac, "%d.%s", ts, payload)
	return payload, fmt.Sprintf("t=%d,v1=%s", ts, hex.EncodeToString(mac.Sum(nil)))
}

// =============================================================================
// TestReservations - holds against a shared ledger
// =============================================================================

func (s *CheckoutSuite) TestReservations() {
	s.Run("two shoppers compete for five units", func() {
		t := s.T()
		productID := dbtest.CreateLiveDrop(t, s.DB, "Archive Hoodie", 15000)
		variantID := dbtest.CreateTestVariant(t, s.DB, productID, "M", 5)

		code, resA := s.reserve("session-a", productID, variantID, 3)
		require.Equal(t, http.StatusOK, code)
		require.True(t, resA.Reserved)

		w := httptest.PerformRequestWithHeaders(t, s.Router, http.MethodPost, reservationsURL,
			reqdto.ReserveRequest{ProductID: productID, VariantID: &variantID, Quantity: 3}, session("session-b"))
		httptest.AssertErrorCode(t, w, http.StatusConflict, "INSUFFICIENT_INVENTORY")
		var conflict struct {
			Detail struct {
				Available int64 `json:"available"`
				Requested int64 `json:"requested"`
			} `json:"detail"`
		}
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &conflict))
		require.Equal(t, int64(2), conflict.Detail.Available)
		require.Equal(t, int64(3), conflict.Detail.Requested)

		code, _ = s.reserve("session-b", productID, variantID, 2)
		require.Equal(t, http.StatusOK, code)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(availabilityURL, productID), nil, "")
		var avail resdto.AvailabilityResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &avail)
		require.Len(t, avail.Variants, 1)
		require.Equal(t, int32(5), avail.Variants[0].Inventory)
		require.Equal(t, int64(5), avail.Variants[0].Held)
		require.Zero(t, avail.Variants[0].Available)

		require.Equal(t, int32(5), dbtest.VariantInventory(t, s.DB, variantID), "holds never touch the ledger")
	})

	s.Run("re-reserving refreshes the same hold", func() {
		t := s.T()
		productID := dbtest.CreateLiveDrop(t, s.DB, "Cap", 4000)
		variantID := dbtest.CreateTestVariant(t, s.DB, productID, "OS", 5)

		_, first := s.reserve("session-a", productID, variantID, 1)
		_, second := s.reserve("session-a", productID, variantID, 4)
		require.Equal(t, first.ReservationID, second.ReservationID)
		require.Equal(t, int32(4), second.Quantity)
		require.Equal(t, 1, dbtest.ActiveHoldCount(t, s.DB, variantID))
	})

	s.Run("regular products need no hold", func() {
		t := s.T()
		productID := dbtest.CreateTestProduct(t, s.DB, dbtest.ProductFixture{Name: "Tee", PriceCents: 3000})
		variantID := dbtest.CreateTestVariant(t, s.DB, productID, "L", 10)

		code, resp := s.reserve("session-a", productID, variantID, 2)
		require.Equal(t, http.StatusOK, code)
		require.False(t, resp.Reserved)
		require.Zero(t, dbtest.ActiveHoldCount(t, s.DB, variantID))
	})

	s.Run("ended drops reject reservations", func() {
		t := s.T()
		release := time.Now().Add(-48 * time.Hour)
		end := time.Now().Add(-time.Hour)
		productID := dbtest.CreateTestProduct(t, s.DB, dbtest.ProductFixture{
			Name: "Past Drop", PriceCents: 9000, IsLimitedEdition: true, ReleaseDate: &release, DropEndDate: &end,
		})
		variantID := dbtest.CreateTestVariant(t, s.DB, productID, "M", 5)

		w := httptest.PerformRequestWithHeaders(t, s.Router, http.MethodPost, reservationsURL,
			reqdto.ReserveRequest{ProductID: productID, VariantID: &variantID, Quantity: 1}, session("session-a"))
		httptest.AssertErrorCode(t, w, http.StatusConflict, "DROP_ENDED")
	})

	s.Run("release, list and sweep", func() {
		t := s.T()
		productID := dbtest.CreateLiveDrop(t, s.DB, "Scarf", 5000)
		variantID := dbtest.CreateTestVariant(t, s.DB, productID, "OS", 5)
		s.reserve("session-a", productID, variantID, 2)
		s.reserve("session-b", productID, variantID, 1)

		w := httptest.PerformRequestWithHeaders(t, s.Router, http.MethodGet, reservationsURL, nil, session("session-a"))
		var list resdto.ReservationListResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &list)
		require.Len(t, list.Reservations, 1)
		require.Positive(t, list.Reservations[0].RemainingMs)

		w = httptest.PerformRequestWithHeaders(t, s.Router, http.MethodDelete, reservationsURL, nil, session("session-a"))
		var released resdto.ReleaseResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &released)
		require.Equal(t, int64(1), released.Released)

		dbtest.ExpireHolds(t, s.DB, "session-b")
		token := authtest.NewJWTHelper(s.Config.JWT).AdminToken(t)
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, sweepURL, nil, token)
		var swept resdto.SweepResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &swept)
		require.Equal(t, int64(1), swept.Reservations)
		require.Zero(t, dbtest.ActiveHoldCount(t, s.DB, variantID))
	})
}

// =============================================================================
// TestCheckout - order finalization, idempotency and the payment webhook
// =============================================================================

func (s *CheckoutSuite) TestCheckout() {
	s.Run("reserved units become an order exactly once", func() {
		t := s.T()
		productID := dbtest.CreateLiveDrop(t, s.DB, "Archive Hoodie", 15000)
		variantID := dbtest.CreateTestVariant(t, s.DB, productID, "M", 5)
		s.reserve("session-a", productID, variantID, 2)

		key := uuid.NewString()
		headers := map[string]string{middleware.SessionHeader: "session-a", "Idempotency-Key": key}
		body := orderRequest(productID, variantID, 2)

		w := httptest.PerformRequestWithHeaders(t, s.Router, http.MethodPost, ordersURL, body, headers)
		var created resdto.OrderResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &created)

		want := resdto.OrderResponse{
			OrderNumber:   created.OrderNumber,
			Status:        "pending",
			Email:         "fan@example.com",
			FirstName:     "Ada",
			LastName:      "Lovelace",
			SubtotalCents: 30000,
			ShippingCents: 1000,
			TaxCents:      500,
			TotalCents:    31500,
			Currency:      "USD",
			Items: []resdto.OrderItemResponse{{
				ProductID: productID, VariantID: variantID, ProductName: "Archive Hoodie", Quantity: 2, UnitPriceCents: 15000,
			}},
		}
		opts := cmp.Options{
			cmpopts.IgnoreFields(resdto.OrderResponse{}, "ID", "CreatedAt"),
			cmpopts.IgnoreFields(resdto.OrderItemResponse{}, "SKU", "Size"),
		}
		if diff := cmp.Diff(want, created, opts); diff != "" {
			t.Fatalf("order mismatch (-want +got):\n%s", diff)
		}
		require.Regexp(t, `^HOF-\d{6}-[A-Z0-9]{6}$`, created.OrderNumber)

		require.Equal(t, int32(3), dbtest.VariantInventory(t, s.DB, variantID))
		require.Zero(t, dbtest.ActiveHoldCount(t, s.DB, variantID), "checkout releases the session's holds")
		require.Equal(t, 1, dbtest.QueuedJobCount(t, s.DB, "order_confirmation"))

		w = httptest.PerformRequestWithHeaders(t, s.Router, http.MethodPost, ordersURL, body, headers)
		var replay resdto.OrderResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &replay)
		require.True(t, replay.IsReplayed)
		require.Equal(t, created.ID, replay.ID)
		require.Equal(t, int32(3), dbtest.VariantInventory(t, s.DB, variantID), "replay must not decrement again")

		other := orderRequest(productID, variantID, 1)
		w = httptest.PerformRequestWithHeaders(t, s.Router, http.MethodPost, ordersURL, other, headers)
		httptest.AssertErrorCode(t, w, http.StatusConflict, "IDEMPOTENCY_CONFLICT")

		w = httptest.PerformRequestWithHeaders(t, s.Router, http.MethodGet, ordersURL+"/"+created.OrderNumber, nil, session("session-a"))
		httptest.AssertSuccessResponse(t, w, http.StatusOK, nil)
		w = httptest.PerformRequestWithHeaders(t, s.Router, http.MethodGet, ordersURL+"/"+created.OrderNumber, nil, session("session-b"))
		httptest.AssertErrorCode(t, w, http.StatusNotFound, "NOT_FOUND")
	})

	s.Run("order cannot take units held by another shopper", func() {
		t := s.T()
		productID := dbtest.CreateLiveDrop(t, s.DB, "Cap", 4000)
		variantID := dbtest.CreateTestVariant(t, s.DB, productID, "OS", 3)
		s.reserve("session-b", productID, variantID, 2)

		w := httptest.PerformRequestWithHeaders(t, s.Router, http.MethodPost, ordersURL, orderRequest(productID, variantID, 2),
			map[string]string{middleware.SessionHeader: "session-a", "Idempotency-Key": uuid.NewString()})
		httptest.AssertErrorCode(t, w, http.StatusConflict, "INSUFFICIENT_INVENTORY")
		require.Equal(t, int32(3), dbtest.VariantInventory(t, s.DB, variantID))
	})

	s.Run("confirmation is dispatched to the broker", func() {
		t := s.T()
		productID := dbtest.CreateLiveDrop(t, s.DB, "Socks", 1500)
		variantID := dbtest.CreateTestVariant(t, s.DB, productID, "OS", 10)

		w := httptest.PerformRequestWithHeaders(t, s.Router, http.MethodPost, ordersURL, orderRequest(productID, variantID, 1),
			map[string]string{middleware.SessionHeader: "session-a", "Idempotency-Key": uuid.NewString()})
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, nil)

		before := len(s.Publisher.Events())
		res, err := s.Notifications.DispatchDue(context.Background())
		require.NoError(t, err)
		require.Equal(t, 1, res.Sent)

		events := s.Publisher.Events()
		require.Len(t, events, before+1)
		require.Equal(t, "order_confirmation", events[len(events)-1].EventType)
		require.Zero(t, dbtest.QueuedJobCount(t, s.DB, "order_confirmation"))
	})

	s.Run("signed payment webhook marks the order paid once", func() {
		t := s.T()
		productID := dbtest.CreateLiveDrop(t, s.DB, "Jacket", 20000)
		variantID := dbtest.CreateTestVariant(t, s.DB, productID, "L", 2)

		w := httptest.PerformRequestWithHeaders(t, s.Router, http.MethodPost, ordersURL, orderRequest(productID, variantID, 1),
			map[string]string{middleware.SessionHeader: "session-a", "Idempotency-Key": uuid.NewString()})
		var created resdto.OrderResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &created)

		payload, sig := s.signedEvent("evt_paid_1", "payment_intent.succeeded", created.OrderNumber)
		w = httptest.PerformRequestWithHeaders(t, s.Router, http.MethodPost, webhookURL, payload, map[string]string{"Stripe-Signature": sig})
		var ack resdto.WebhookResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &ack)
		require.True(t, ack.Received)
		require.False(t, ack.Duplicate)
		require.Equal(t, "paid", dbtest.OrderStatus(t, s.DB, created.OrderNumber))
		require.Equal(t, int32(1), dbtest.VariantInventory(t, s.DB, variantID), "inventory was applied at checkout")

		w = httptest.PerformRequestWithHeaders(t, s.Router, http.MethodPost, webhookURL, payload, map[string]string{"Stripe-Signature": sig})
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &ack)
		require.True(t, ack.Duplicate)

		w = httptest.PerformRequestWithHeaders(t, s.Router, http.MethodPost, webhookURL, payload,
			map[string]string{"Stripe-Signature": "t=1,v1=deadbeef"})
		httptest.AssertErrorCode(t, w, http.StatusBadRequest, "INVALID_SIGNATURE")
	})
}

// =============================================================================
// TestContention - concurrent requests racing for the last unit
// =============================================================================

const contenders = 8

// race fires one request per contender at once and returns the status codes.
func (s *CheckoutSuite) race(build func(i int) *http.Request) []int {
	reqs := make([]*http.Request, contenders)
	for i := range reqs {
		reqs[i] = build(i)
	}

	codes := make([]int, contenders)
	start := make(chan struct{})
	var wg sync.WaitGroup
	for i := range reqs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			<-start
			w := nethttptest.NewRecorder()
			s.Router.ServeHTTP(w, reqs[i])
			codes[i] = w.Code
		}(i)
	}
	close(start)
	wg.Wait()
	return codes
}

func jsonRequest(t *testing.T, method, path string, body any, headers map[string]string) *http.Request {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)
	req := nethttptest.NewRequest(method, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	return req
}

func countCodes(codes []int) map[int]int {
	counts := make(map[int]int)
	for _, c := range codes {
		counts[c]++
	}
	return counts
}

func (s *CheckoutSuite) TestContention() {
	s.Run("concurrent orders for the last unit: exactly one succeeds", func() {
		t := s.T()
		productID := dbtest.CreateLiveDrop(t, s.DB, "Last One", 15000)
		variantID := dbtest.CreateTestVariant(t, s.DB, productID, "M", 1)

		codes := s.race(func(i int) *http.Request {
			return jsonRequest(t, http.MethodPost, ordersURL, orderRequest(productID, variantID, 1), map[string]string{
				middleware.SessionHeader: fmt.Sprintf("buyer-%d", i),
				"Idempotency-Key":        uuid.NewString(),
			})
		})

		counts := countCodes(codes)
		require.Equal(t, 1, counts[http.StatusCreated], "codes: %v", codes)
		require.Equal(t, contenders-1, counts[http.StatusConflict], "codes: %v", codes)
		require.Zero(t, dbtest.VariantInventory(t, s.DB, variantID))
	})

	s.Run("concurrent reserves for the last unit: exactly one hold", func() {
		t := s.T()
		productID := dbtest.CreateLiveDrop(t, s.DB, "Last Hold", 15000)
		variantID := dbtest.CreateTestVariant(t, s.DB, productID, "M", 1)

		codes := s.race(func(i int) *http.Request {
			return jsonRequest(t, http.MethodPost, reservationsURL,
				reqdto.ReserveRequest{ProductID: productID, VariantID: &variantID, Quantity: 1},
				session(fmt.Sprintf("shopper-%d", i)))
		})

		counts := countCodes(codes)
		require.Equal(t, 1, counts[http.StatusOK], "codes: %v", codes)
		require.Equal(t, contenders-1, counts[http.StatusConflict], "codes: %v", codes)
		require.Equal(t, 1, dbtest.ActiveHoldCount(t, s.DB, variantID))
		require.Equal(t, int32(1), dbtest.VariantInventory(t, s.DB, variantID), "holds never touch the ledger")
	})

	s.Run("large holds are limited only by stock", func() {
		t := s.T()
		productID := dbtest.CreateLiveDrop(t, s.DB, "Bulk", 2000)
		variantID := dbtest.CreateTestVariant(t, s.DB, productID, "OS", 500)

		code, res := s.reserve("session-bulk", productID, variantID, 100)
		require.Equal(t, http.StatusOK, code)
		require.Equal(t, int32(100), res.Quantity)
	})
}
