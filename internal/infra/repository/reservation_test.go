//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"hof-drops/internal/infra"
	"hof-drops/internal/infra/repository"
	sqlc "hof-drops/internal/infra/sqlc/generated"
	"hof-drops/tests/common/builder"
	repositorymock "hof-drops/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var now = time.Date(2026, 3, 14, 12, 5, 0, 0, time.UTC)

// =============================================================================
// ActiveForSession Tests
// =============================================================================

func TestReservationRepository_ActiveForSession(t *testing.T) {
	ctx := context.Background()
	hold := builder.NewReservationBuilder()

	testCases := []struct {
		name          string
		row           sqlc.CartReservations
		queryErr      error
		expectedError bool
		expectKind    infra.RepositoryErrorKind
	}{
		{
			name: "success: active hold rebuilt from row",
			row:  hold.BuildInfra(),
		},
		{
			name:          "error: no active hold",
			queryErr:      pgx.ErrNoRows,
			expectedError: true,
			expectKind:    infra.KindNotFound,
		},
		{
			name: "error: stored quantity violates the hold rules",
			row: builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) {
				b.Quantity = 0
			}).BuildInfra(),
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockReservationWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewReservationRepository(mockQueries)

			mockQueries.EXPECT().GetActiveReservationForSession(ctx, mockDB, sqlc.GetActiveReservationForSessionParams{
				SessionID: "sess-1",
				VariantID: hold.VariantID,
				Now:       pgtype.Timestamptz{Time: now, Valid: true},
			}).Return(tc.row, tc.queryErr)

			res, err := repo.ActiveForSession(ctx, mockDB, "sess-1", hold.VariantID, now)

			if tc.expectedError {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got [%T] (%v)", tc.expectKind, err, err)
				assert.Nil(t, res)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tc.row.ID, res.ID())
				assert.Equal(t, "sess-1", res.SessionID().String())
				assert.Equal(t, int32(1), res.Quantity().Int32())
				assert.True(t, res.IsActive())
			}
		})
	}
}

// =============================================================================
// Create / Refresh Tests
// =============================================================================

func TestReservationRepository_Create(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name          string
		returnErr     error
		expectedError bool
		expectKind    infra.RepositoryErrorKind
	}{
		{name: "success: hold inserted"},
		{
			name:          "error: one active hold per session and variant",
			returnErr:     &pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint"},
			expectedError: true,
			expectKind:    infra.KindDuplicateKey,
		},
		{
			name:          "error: database error occurs",
			returnErr:     errors.New("database connection error"),
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockReservationWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewReservationRepository(mockQueries)

			hold, err := builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) { b.Quantity = 3 }).BuildDomain()
			require.NoError(t, err)

			returnID := hold.ID()
			if tc.returnErr != nil {
				returnID = uuid.Nil
			}
			mockQueries.EXPECT().CreateCartReservation(ctx, mockDB, gomock.Cond(func(p sqlc.CreateCartReservationParams) bool {
				return p.ID == hold.ID() && p.Quantity == 3 && p.SessionID == "sess-1" && p.ExpiresAt.Time.Equal(hold.ExpiresAt())
			})).Return(returnID, tc.returnErr)

			id, err := repo.Create(ctx, mockDB, hold)

			if tc.expectedError {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got [%T] (%v)", tc.expectKind, err, err)
				assert.Equal(t, uuid.Nil, id)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, hold.ID(), id)
			}
		})
	}
}

func TestReservationRepository_Refresh(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name          string
		affected      int64
		returnErr     error
		expectedError bool
		expectKind    infra.RepositoryErrorKind
	}{
		{name: "success: hold refreshed", affected: 1},
		{
			name:          "error: hold swept concurrently",
			affected:      0,
			expectedError: true,
			expectKind:    infra.KindNotFound,
		},
		{
			name:          "error: database error occurs",
			returnErr:     errors.New("database connection error"),
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockReservationWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewReservationRepository(mockQueries)

			hold, err := builder.NewReservationBuilder().BuildDomain()
			require.NoError(t, err)

			mockQueries.EXPECT().RefreshCartReservation(ctx, mockDB, gomock.Any()).Return(tc.affected, tc.returnErr)

			err = repo.Refresh(ctx, mockDB, hold)

			if tc.expectedError {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got [%T] (%v)", tc.expectKind, err, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

// =============================================================================
// Counting and Release Tests
// =============================================================================

func TestReservationRepository_HeldByOthers(t *testing.T) {
	ctx := context.Background()
	variantID := uuid.New()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQueries := repositorymock.NewMockReservationWriteQueries(ctrl)
	mockDB := &mockDBTX{}
	repo := repository.NewReservationRepository(mockQueries)

	mockQueries.EXPECT().SumActiveHeldQuantity(ctx, mockDB, sqlc.SumActiveHeldQuantityParams{
		VariantID:        variantID,
		Now:              pgtype.Timestamptz{Time: now, Valid: true},
		ExcludeSessionID: "sess-1",
	}).Return(int64(4), nil)

	held, err := repo.HeldByOthers(ctx, mockDB, variantID, "sess-1", now)

	require.NoError(t, err)
	assert.Equal(t, int64(4), held)
}

func TestReservationRepository_ReleaseByID(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	testCases := []struct {
		name          string
		affected      int64
		returnErr     error
		expectedFound bool
		expectedError bool
	}{
		{name: "success: hold released", affected: 1, expectedFound: true},
		{name: "success: hold belongs to another session", affected: 0, expectedFound: false},
		{name: "error: database error occurs", returnErr: errors.New("database connection error"), expectedError: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockReservationWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewReservationRepository(mockQueries)

			mockQueries.EXPECT().ReleaseReservationByID(ctx, mockDB, sqlc.ReleaseReservationByIDParams{
				Now:       pgtype.Timestamptz{Time: now, Valid: true},
				ID:        id,
				SessionID: "sess-1",
			}).Return(tc.affected, tc.returnErr)

			found, err := repo.ReleaseByID(ctx, mockDB, id, "sess-1", now)

			if tc.expectedError {
				assert.True(t, infra.IsKind(err, infra.KindDBFailure))
				assert.False(t, found)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tc.expectedFound, found)
			}
		})
	}
}

func TestReservationRepository_Sweeps(t *testing.T) {
	ctx := context.Background()
	variantID := uuid.New()
	ts := pgtype.Timestamptz{Time: now, Valid: true}

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQueries := repositorymock.NewMockReservationWriteQueries(ctrl)
	mockDB := &mockDBTX{}
	repo := repository.NewReservationRepository(mockQueries)

	mockQueries.EXPECT().SweepExpiredReservations(ctx, mockDB, ts).Return(int64(7), nil)
	mockQueries.EXPECT().SweepExpiredReservationsForVariant(ctx, mockDB, sqlc.SweepExpiredReservationsForVariantParams{
		Now:       ts,
		VariantID: variantID,
	}).Return(int64(0), errors.New("database connection error"))
	mockQueries.EXPECT().ReleaseSessionReservations(ctx, mockDB, sqlc.ReleaseSessionReservationsParams{
		Now:       ts,
		SessionID: "sess-1",
	}).Return(int64(2), nil)

	n, err := repo.SweepExpired(ctx, mockDB, now)
	require.NoError(t, err)
	assert.Equal(t, int64(7), n)

	_, err = repo.SweepExpiredForVariant(ctx, mockDB, variantID, now)
	assert.True(t, infra.IsKind(err, infra.KindDBFailure))

	n, err = repo.ReleaseSession(ctx, mockDB, "sess-1", now)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
}

// =============================================================================
// Test Helper Functions
// =============================================================================

// mockDBTX is a mock implementation of sqlc.DBTX interface
type mockDBTX struct{}

func (m *mockDBTX) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (m *mockDBTX) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}

func (m *mockDBTX) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	panic("mockDBTX.QueryRow was called unexpectedly. Use sqlc mock instead.")
}
