//go:build unit

package readstore

import (
	"context"
	"testing"
	"time"

	"hof-drops/internal/infra"
	sqlc "hof-drops/internal/infra/sqlc/generated"
	"hof-drops/tests/common/builder"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockCatalogViewQueries struct {
	mock.Mock
}

func (m *MockCatalogViewQueries) GetProductByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Products, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(sqlc.Products), args.Error(1)
}

func (m *MockCatalogViewQueries) ListDropCandidates(ctx context.Context, db sqlc.DBTX, now pgtype.Timestamptz) ([]sqlc.Products, error) {
	args := m.Called(ctx, db, now)
	rows, _ := args.Get(0).([]sqlc.Products)
	return rows, args.Error(1)
}

func (m *MockCatalogViewQueries) ListVariantAvailability(ctx context.Context, db sqlc.DBTX, arg sqlc.ListVariantAvailabilityParams) ([]sqlc.ListVariantAvailabilityRow, error) {
	args := m.Called(ctx, db, arg)
	rows, _ := args.Get(0).([]sqlc.ListVariantAvailabilityRow)
	return rows, args.Error(1)
}

func (m *MockCatalogViewQueries) SweepExpiredReservationsForProduct(ctx context.Context, db sqlc.DBTX, arg sqlc.SweepExpiredReservationsForProductParams) (int64, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(int64), args.Error(1)
}

func TestFindProduct(t *testing.T) {
	drop := builder.NewProductBuilder().BuildInfra()
	regular := builder.NewProductBuilder().AsRegular().BuildInfra()

	tests := []struct {
		name       string
		mockReturn sqlc.Products
		mockError  error
		wantKind   infra.RepositoryErrorKind
	}{
		{name: "success - limited drop", mockReturn: drop},
		{name: "success - regular product", mockReturn: regular},
		{name: "product not found", mockError: pgx.ErrNoRows, wantKind: infra.KindNotFound},
		{name: "database error", mockError: assert.AnError, wantKind: infra.KindDBFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id := tt.mockReturn.ID
			if id == uuid.Nil {
				id = uuid.New()
			}
			mockQueries := new(MockCatalogViewQueries)
			mockQueries.On("GetProductByID", mock.Anything, mock.Anything, id).Return(tt.mockReturn, tt.mockError)

			readStore := NewCatalogReadStore(mockQueries, nil)
			rec, err := readStore.FindProduct(context.Background(), id)

			if tt.wantKind != "" {
				assert.Error(t, err)
				assert.Nil(t, rec)
				assert.True(t, infra.IsKind(err, tt.wantKind))
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.mockReturn.Name, rec.Name)
				assert.Equal(t, tt.mockReturn.IsLimitedEdition, rec.IsLimitedEdition)
				assert.Equal(t, tt.mockReturn.ReleaseDate.Valid, rec.ReleaseDate != nil)
				assert.Equal(t, tt.mockReturn.DropEndDate.Valid, rec.DropEndDate != nil)
			}

			mockQueries.AssertExpectations(t)
		})
	}
}

func TestVariantAvailability(t *testing.T) {
	productID := uuid.New()
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	params := sqlc.ListVariantAvailabilityParams{
		Now:       pgtype.Timestamptz{Time: now, Valid: true},
		ProductID: productID,
	}

	t.Run("maps ledger and held counts", func(t *testing.T) {
		mockQueries := new(MockCatalogViewQueries)
		mockQueries.On("ListVariantAvailability", mock.Anything, mock.Anything, params).Return([]sqlc.ListVariantAvailabilityRow{
			{ID: uuid.New(), Sku: "HOF-HD-S", Size: pgtype.Text{String: "S", Valid: true}, Inventory: 5, Held: 2},
			{ID: uuid.New(), Sku: "HOF-HD-M", Inventory: 0, Held: 0},
		}, nil)

		views, err := NewCatalogReadStore(mockQueries, nil).VariantAvailability(context.Background(), productID, now)

		require.NoError(t, err)
		require.Len(t, views, 2)
		assert.Equal(t, "S", views[0].Size)
		assert.Equal(t, int32(5), views[0].Ledger)
		assert.Equal(t, int64(2), views[0].Held)
		assert.Empty(t, views[1].Size)
		mockQueries.AssertExpectations(t)
	})

	t.Run("database error", func(t *testing.T) {
		mockQueries := new(MockCatalogViewQueries)
		mockQueries.On("ListVariantAvailability", mock.Anything, mock.Anything, params).Return(nil, assert.AnError)

		views, err := NewCatalogReadStore(mockQueries, nil).VariantAvailability(context.Background(), productID, now)

		assert.Nil(t, views)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

func TestDropCandidates(t *testing.T) {
	now := time.Now()
	live := builder.NewProductBuilder().BuildInfra()
	ended := builder.NewProductBuilder().AsEnded().BuildInfra()

	mockQueries := new(MockCatalogViewQueries)
	mockQueries.On("ListDropCandidates", mock.Anything, mock.Anything, pgtype.Timestamptz{Time: now, Valid: true}).
		Return([]sqlc.Products{live, ended}, nil)

	recs, err := NewCatalogReadStore(mockQueries, nil).DropCandidates(context.Background(), now)

	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, live.ID, recs[0].ID)
	assert.True(t, recs[1].DropEndDate.Before(now))
	mockQueries.AssertExpectations(t)
}

func TestSweepExpiredForProduct(t *testing.T) {
	productID := uuid.New()
	now := time.Now()
	params := sqlc.SweepExpiredReservationsForProductParams{
		Now:       pgtype.Timestamptz{Time: now, Valid: true},
		ProductID: productID,
	}

	tests := []struct {
		name      string
		swept     int64
		mockError error
		wantError bool
	}{
		{name: "sweeps lapsed holds", swept: 3},
		{name: "nothing to sweep", swept: 0},
		{name: "database error", mockError: assert.AnError, wantError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockQueries := new(MockCatalogViewQueries)
			mockQueries.On("SweepExpiredReservationsForProduct", mock.Anything, mock.Anything, params).Return(tt.swept, tt.mockError)

			n, err := NewCatalogReadStore(mockQueries, nil).SweepExpiredForProduct(context.Background(), productID, now)

			if tt.wantError {
				assert.True(t, infra.IsKind(err, infra.KindDBFailure))
				assert.Zero(t, n)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.swept, n)
			}
			mockQueries.AssertExpectations(t)
		})
	}
}
