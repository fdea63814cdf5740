//go:build unit

package readstore

import (
	"context"
	"testing"

	"hof-drops/internal/infra"
	sqlc "hof-drops/internal/infra/sqlc/generated"
	"hof-drops/tests/common/builder"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderViewQueries struct {
	mock.Mock
}

func (m *MockOrderViewQueries) GetOrderViewByNumber(ctx context.Context, db sqlc.DBTX, orderNumber string) (sqlc.GetOrderViewByNumberRow, error) {
	args := m.Called(ctx, db, orderNumber)
	return args.Get(0).(sqlc.GetOrderViewByNumberRow), args.Error(1)
}

func (m *MockOrderViewQueries) GetOrderViewByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetOrderViewByIDRow, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(sqlc.GetOrderViewByIDRow), args.Error(1)
}

func (m *MockOrderViewQueries) ListOrderItems(ctx context.Context, db sqlc.DBTX, orderID uuid.UUID) ([]sqlc.OrderItems, error) {
	args := m.Called(ctx, db, orderID)
	rows, _ := args.Get(0).([]sqlc.OrderItems)
	return rows, args.Error(1)
}

func TestFindByNumber(t *testing.T) {
	order := builder.NewOrderBuilder().With(func(b *builder.OrderBuilder) { b.Quantity = 2 })
	row := sqlc.GetOrderViewByNumberRow(order.BuildInfraViewRow())

	tests := []struct {
		name       string
		mockReturn sqlc.GetOrderViewByNumberRow
		mockError  error
		itemsError error
		wantKind   infra.RepositoryErrorKind
	}{
		{name: "success", mockReturn: row},
		{name: "order not found", mockError: pgx.ErrNoRows, wantKind: infra.KindNotFound},
		{name: "database error", mockError: assert.AnError, wantKind: infra.KindDBFailure},
		{name: "items query fails", mockReturn: row, itemsError: assert.AnError, wantKind: infra.KindDBFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockQueries := new(MockOrderViewQueries)
			mockQueries.On("GetOrderViewByNumber", mock.Anything, mock.Anything, order.OrderNumber).Return(tt.mockReturn, tt.mockError)
			if tt.mockError == nil {
				mockQueries.On("ListOrderItems", mock.Anything, mock.Anything, order.ID).Return(order.BuildInfraItems(), tt.itemsError)
			}

			view, err := NewOrderReadStore(mockQueries, nil).FindByNumber(context.Background(), order.OrderNumber)

			if tt.wantKind != "" {
				assert.Nil(t, view)
				assert.True(t, infra.IsKind(err, tt.wantKind))
			} else {
				require.NoError(t, err)
				assert.Equal(t, order.OrderNumber, view.OrderNumber)
				assert.Equal(t, "sess-1", view.SessionID)
				assert.Equal(t, int64(19800), view.SubtotalCents)
				assert.Equal(t, int64(20800), view.TotalCents)
				assert.Nil(t, view.PaidAt)
				require.Len(t, view.Items, 1)
				assert.Equal(t, "S", view.Items[0].Size)
				assert.Equal(t, int32(2), view.Items[0].Quantity)
			}

			mockQueries.AssertExpectations(t)
		})
	}
}

func TestFindByID(t *testing.T) {
	order := builder.NewOrderBuilder().With(func(b *builder.OrderBuilder) {
		b.SessionID = ""
		b.Status = "paid"
	})

	t.Run("webhook orders carry no session", func(t *testing.T) {
		mockQueries := new(MockOrderViewQueries)
		mockQueries.On("GetOrderViewByID", mock.Anything, mock.Anything, order.ID).Return(order.BuildInfraViewRow(), nil)
		mockQueries.On("ListOrderItems", mock.Anything, mock.Anything, order.ID).Return([]sqlc.OrderItems{}, nil)

		view, err := NewOrderReadStore(mockQueries, nil).FindByID(context.Background(), order.ID)

		require.NoError(t, err)
		assert.Empty(t, view.SessionID)
		assert.Equal(t, "paid", view.Status)
		assert.NotNil(t, view.Items)
		assert.Empty(t, view.Items)
		mockQueries.AssertExpectations(t)
	})

	t.Run("order not found", func(t *testing.T) {
		mockQueries := new(MockOrderViewQueries)
		mockQueries.On("GetOrderViewByID", mock.Anything, mock.Anything, order.ID).Return(sqlc.GetOrderViewByIDRow{}, pgx.ErrNoRows)

		view, err := NewOrderReadStore(mockQueries, nil).FindByID(context.Background(), order.ID)

		assert.Nil(t, view)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
		mockQueries.AssertNotCalled(t, "ListOrderItems", mock.Anything, mock.Anything, mock.Anything)
	})
}
