//go:build unit

package repository

import (
	"context"
	"testing"

	"braceria-backend/internal/domain/customer"
	"braceria-backend/internal/infra"
	"braceria-backend/internal/infra/query"
	"braceria-backend/tests/common/builder"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockReservationWriteQueries struct {
	mock.Mock
}

func (m *MockReservationWriteQueries) CreateReservation(ctx context.Context, db query.DBTX, arg query.CreateReservationParams) (int64, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockReservationWriteQueries) DeleteReservation(ctx context.Context, db query.DBTX, arg query.DeleteReservationParams) (query.DeletedReservationRow, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(query.DeletedReservationRow), args.Error(1)
}

type MockCustomerWriteQueries struct {
	mock.Mock
}

func (m *MockCustomerWriteQueries) UpsertCustomerRefreshNames(ctx context.Context, db query.DBTX, arg query.UpsertCustomerParams) error {
	return m.Called(ctx, db, arg).Error(0)
}

func (m *MockCustomerWriteQueries) UpsertCustomerKeepNames(ctx context.Context, db query.DBTX, arg query.UpsertCustomerParams) error {
	return m.Called(ctx, db, arg).Error(0)
}

// query.DBTX stand-in; the repositories only pass it through
type nopDBTX struct{}

func (nopDBTX) Exec(context.Context, string, ...interface{}) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (nopDBTX) Query(context.Context, string, ...interface{}) (pgx.Rows, error) { return nil, nil }

func (nopDBTX) QueryRow(context.Context, string, ...interface{}) pgx.Row { return nil }

func TestReservationRepositoryCreate(t *testing.T) {
	res, err := builder.NewReservationBuilder().WithProfiling(true).BuildDomain()
	require.NoError(t, err)

	tests := []struct {
		name      string
		mockID    int64
		mockError error
		wantKind  infra.RepositoryErrorKind
	}{
		{name: "success", mockID: 17},
		{name: "database error", mockError: assert.AnError, wantKind: infra.KindDBFailure},
		{name: "serialization failure", mockError: &pgconn.PgError{Code: "40001"}, wantKind: infra.KindConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockQueries := new(MockReservationWriteQueries)
			mockQueries.On("CreateReservation", mock.Anything, mock.Anything, mock.MatchedBy(func(p query.CreateReservationParams) bool {
				return p.RestaurantID == "BRACERIA" &&
					p.FirstName == "Anna" &&
					p.Guests == 2 &&
					p.ReservationDate.Valid &&
					p.ReservationTime.Microseconds == 20*3600*1_000_000 &&
					p.CookieConsent && p.ProfilingConsent &&
					p.CancelTokenHash.String == res.CancelToken().Hash()
			})).Return(tt.mockID, tt.mockError)

			repo := NewReservationRepository(mockQueries)
			id, err := repo.Create(context.Background(), nopDBTX{}, res)

			if tt.wantKind != "" {
				assert.Error(t, err)
				assert.True(t, infra.IsKind(err, tt.wantKind))
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.mockID, id)
			}
			mockQueries.AssertExpectations(t)
		})
	}
}

func TestReservationRepositoryDelete(t *testing.T) {
	hash := "abc123"
	row := query.DeletedReservationRow{
		ID:              5,
		FirstName:       "Anna",
		LastName:        "Rossi",
		Email:           "anna.rossi@example.com",
		Guests:          4,
		ReservationDate: pgtype.Date{Valid: true},
		ReservationTime: pgtype.Time{Microseconds: 19 * 3600 * 1_000_000, Valid: true},
	}

	tests := []struct {
		name      string
		tokenHash *string
		mockRow   query.DeletedReservationRow
		mockError error
		wantKind  infra.RepositoryErrorKind
	}{
		{name: "success with token", tokenHash: &hash, mockRow: row},
		{name: "success without token check", mockRow: row},
		{name: "no matching row", tokenHash: &hash, mockError: pgx.ErrNoRows, wantKind: infra.KindNotFound},
		{name: "database error", tokenHash: &hash, mockError: assert.AnError, wantKind: infra.KindDBFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockQueries := new(MockReservationWriteQueries)
			mockQueries.On("DeleteReservation", mock.Anything, mock.Anything, mock.MatchedBy(func(p query.DeleteReservationParams) bool {
				return p.ID == 5 && p.RestaurantID == "BRACERIA" && p.CancelTokenHash.Valid == (tt.tokenHash != nil)
			})).Return(tt.mockRow, tt.mockError)

			repo := NewReservationRepository(mockQueries)
			got, err := repo.Delete(context.Background(), nopDBTX{}, 5, "BRACERIA", tt.tokenHash)

			if tt.wantKind != "" {
				assert.Nil(t, got)
				assert.True(t, infra.IsKind(err, tt.wantKind))
			} else {
				require.NoError(t, err)
				assert.Equal(t, int64(5), got.ID)
				assert.Equal(t, 4, got.Guests)
				assert.Equal(t, "19:00:00", got.Time.String())
			}
			mockQueries.AssertExpectations(t)
		})
	}
}

func TestCustomerRepositoryUpsert(t *testing.T) {
	c := customer.Customer{PhoneNumber: "+393331234567", FirstName: "Anna", LastName: "Rossi"}
	params := query.UpsertCustomerParams{PhoneNumber: c.PhoneNumber, FirstName: c.FirstName, LastName: c.LastName}

	t.Run("refresh names policy", func(t *testing.T) {
		mockQueries := new(MockCustomerWriteQueries)
		mockQueries.On("UpsertCustomerRefreshNames", mock.Anything, mock.Anything, params).Return(nil)

		err := NewCustomerRepository(mockQueries).Upsert(context.Background(), nopDBTX{}, c, customer.RefreshNames)
		assert.NoError(t, err)
		mockQueries.AssertExpectations(t)
		mockQueries.AssertNotCalled(t, "UpsertCustomerKeepNames", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("keep names policy", func(t *testing.T) {
		mockQueries := new(MockCustomerWriteQueries)
		mockQueries.On("UpsertCustomerKeepNames", mock.Anything, mock.Anything, params).Return(nil)

		err := NewCustomerRepository(mockQueries).Upsert(context.Background(), nopDBTX{}, c, customer.KeepNames)
		assert.NoError(t, err)
		mockQueries.AssertExpectations(t)
	})

	t.Run("database error", func(t *testing.T) {
		mockQueries := new(MockCustomerWriteQueries)
		mockQueries.On("UpsertCustomerRefreshNames", mock.Anything, mock.Anything, params).Return(assert.AnError)

		err := NewCustomerRepository(mockQueries).Upsert(context.Background(), nopDBTX{}, c, customer.RefreshNames)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}
