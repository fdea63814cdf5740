//go:build unit

package queries_test

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
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderQueries(t *testing.T) {
	store := memstore.New()
	q := queries.NewOrderQueries(store)

	id := uuid.New()
	store.PutOrder(memstore.OrderRow{
		ID:        id,
		Number:    "HOF-260314-K7M2QX",
		SessionID: "session-a",
		Status:    order.StatusPending,
		Total:     4200,
		Currency:  "USD",
		CreatedAt: baseTime,
	})

	testCases := []struct {
		name    string
		number  string
		session string
		found   bool
	}{
		{name: "owner session", number: "HOF-260314-K7M2QX", session: "session-a", found: true},
		{name: "number is case-insensitive", number: "hof-260314-k7m2qx", session: "session-a", found: true},
		{name: "other session", number: "HOF-260314-K7M2QX", session: "session-b"},
		{name: "no session", number: "HOF-260314-K7M2QX", session: ""},
		{name: "malformed number", number: "12345", session: "session-a"},
		{name: "unknown number", number: "HOF-260314-AAAAAA", session: "session-a"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			view, err := q.GetByNumber(context.Background(), tc.number, tc.session)
			if tc.found {
				require.NoError(t, err)
				assert.Equal(t, id, view.ID)
				assert.Equal(t, int64(4200), view.TotalCents)
				return
			}
			assert.True(t, errs.Is(err, queries.ErrOrderNotFound), "got %v", err)
		})
	}

	t.Run("system lookup skips the session check", func(t *testing.T) {
		view, err := q.GetByIDSystem(context.Background(), id)
		require.NoError(t, err)
		assert.Equal(t, "HOF-260314-K7M2QX", view.OrderNumber)

		_, err = q.GetByIDSystem(context.Background(), uuid.New())
		assert.True(t, errs.Is(err, queries.ErrOrderNotFound), "got %v", err)
	})
}

func TestListReservationsForSession(t *testing.T) {
	ctx := context.Background()
	store := memstore.New()
	clk := clock.NewMockClock(baseTime)
	q := queries.NewReservationQueries(store, clk)

	policy, err := reservation.NewHoldPolicy(reservation.DefaultHoldPeriod)
	require.NoError(t, err)
	reserve := commands.NewReservationUseCase(store, policy, clk)

	productID := store.AddProduct(memstore.ProductSeed{Name: "Cap", IsLimitedEdition: true})
	variantID := store.AddVariant(productID, 5)
	_, err = reserve.Reserve(ctx, reqdto.ReserveRequest{ProductID: productID, VariantID: &variantID, Quantity: 2, SessionID: "session-a"})
	require.NoError(t, err)

	clk.Add(5 * time.Minute)

	views, err := q.ListForSession(ctx, "session-a")
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, "Cap", views[0].ProductName)
	assert.Equal(t, int32(2), views[0].Quantity)
	assert.Equal(t, (10 * time.Minute).Milliseconds(), views[0].RemainingMs)

	views, err = q.ListForSession(ctx, "session-b")
	require.NoError(t, err)
	assert.Empty(t, views)

	views, err = q.ListForSession(ctx, "")
	require.NoError(t, err)
	assert.NotNil(t, views)
	assert.Empty(t, views)

	clk.Add(time.Hour)
	views, err = q.ListForSession(ctx, "session-a")
	require.NoError(t, err)
	assert.Empty(t, views)
}
