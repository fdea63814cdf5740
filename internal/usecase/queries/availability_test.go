//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"
	"time"

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

func TestGetProductAvailability(t *testing.T) {
	ctx := context.Background()
	store := memstore.New()
	clk := clock.NewMockClock(baseTime)
	q := queries.NewAvailabilityQueries(store, clk)

	policy, err := reservation.NewHoldPolicy(reservation.DefaultHoldPeriod)
	require.NoError(t, err)
	reserve := commands.NewReservationUseCase(store, policy, clk)

	release := baseTime.Add(-time.Hour)
	end := baseTime.Add(time.Hour)
	productID := store.AddProduct(memstore.ProductSeed{IsLimitedEdition: true, ReleaseDate: &release, DropEndDate: &end})
	small := store.AddVariant(productID, 2)
	large := store.AddVariant(productID, 10)

	_, err = reserve.Reserve(ctx, reqdto.ReserveRequest{ProductID: productID, VariantID: &large, Quantity: 4, SessionID: "s1"})
	require.NoError(t, err)

	t.Run("ledger minus active holds per variant", func(t *testing.T) {
		view, err := q.GetProductAvailability(ctx, productID)
		require.NoError(t, err)
		assert.True(t, view.IsLimitedEdition)
		assert.Equal(t, "live", view.Phase)
		require.Len(t, view.Variants, 2)

		byID := map[uuid.UUID]queries.VariantAvailabilityView{}
		for _, v := range view.Variants {
			byID[v.VariantID] = v
		}
		assert.Equal(t, int64(2), byID[small].Available)
		assert.Equal(t, int64(4), byID[large].Held)
		assert.Equal(t, int64(6), byID[large].Available)
	})

	t.Run("expired holds are swept on read", func(t *testing.T) {
		clk.Add(16 * time.Minute)
		view, err := q.GetProductAvailability(ctx, productID)
		require.NoError(t, err)
		for _, v := range view.Variants {
			assert.Zero(t, v.Held)
		}
		assert.Empty(t, store.ActiveHolds(large))
	})

	t.Run("sweep failure does not block the read", func(t *testing.T) {
		store.FailOn("Catalog.SweepExpiredForProduct", errors.New("lock timeout"))
		defer store.FailOn("Catalog.SweepExpiredForProduct", nil)

		_, err := q.GetProductAvailability(ctx, productID)
		assert.NoError(t, err)
	})

	t.Run("regular product has no phase", func(t *testing.T) {
		regular := store.AddProduct(memstore.ProductSeed{})
		store.AddVariant(regular, 3)

		view, err := q.GetProductAvailability(ctx, regular)
		require.NoError(t, err)
		assert.Empty(t, view.Phase)
		assert.Equal(t, int64(3), view.Variants[0].Available)
	})

	t.Run("unknown product", func(t *testing.T) {
		_, err := q.GetProductAvailability(ctx, uuid.New())
		assert.True(t, errs.Is(err, queries.ErrProductNotFound), "got %v", err)
	})
}
