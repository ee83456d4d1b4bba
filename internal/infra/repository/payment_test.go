//go:build unit

package repository

import (
	"context"
	"testing"

	"event-booking-api/internal/infra"
	sqlc "event-booking-api/internal/infra/sqlc/generated"
	"event-booking-api/tests/common/builder"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockPaymentWriteQueries struct {
	mock.Mock
}

func (m *MockPaymentWriteQueries) CreatePayment(ctx context.Context, db sqlc.DBTX, arg sqlc.CreatePaymentParams) (uuid.UUID, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

// sqlc.DBTX implementation for MockPaymentWriteQueries
func (m *MockPaymentWriteQueries) Exec(ctx context.Context, query string, args ...interface{}) (pgconn.CommandTag, error) {
	mockArgs := m.Called(ctx, query, args)
	return mockArgs.Get(0).(pgconn.CommandTag), mockArgs.Error(1)
}

func (m *MockPaymentWriteQueries) Query(ctx context.Context, query string, args ...interface{}) (pgx.Rows, error) {
	mockArgs := m.Called(ctx, query, args)
	return mockArgs.Get(0).(pgx.Rows), mockArgs.Error(1)
}

func (m *MockPaymentWriteQueries) QueryRow(ctx context.Context, query string, args ...interface{}) pgx.Row {
	mockArgs := m.Called(ctx, query, args)
	return mockArgs.Get(0).(pgx.Row)
}

func TestPaymentCreate(t *testing.T) {
	pay, err := builder.NewPaymentBuilder().BuildDomain()
	require.NoError(t, err)

	tests := []struct {
		name      string
		mockError error
		wantKind  infra.RepositoryErrorKind
		wantError bool
	}{
		{
			name: "success",
		},
		{
			name:      "second payment for the same ticket violates unique index",
			mockError: &pgconn.PgError{Code: "23505"},
			wantKind:  infra.KindDuplicateKey,
			wantError: true,
		},
		{
			name:      "missing ticket violates foreign key",
			mockError: &pgconn.PgError{Code: "23503"},
			wantKind:  infra.KindForeignKeyViolated,
			wantError: true,
		},
		{
			name:      "database error",
			mockError: assert.AnError,
			wantKind:  infra.KindDBFailure,
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockQueries := new(MockPaymentWriteQueries)
			mockQueries.On("CreatePayment", mock.Anything, mock.Anything, mock.Anything).Return(pay.ID(), tt.mockError)

			repo := NewPaymentRepository(mockQueries)

			id, err := repo.Create(context.Background(), mockQueries, pay)

			if tt.wantError {
				assert.Error(t, err)
				assert.Equal(t, uuid.Nil, id)
				assert.True(t, infra.IsKind(err, tt.wantKind))
			} else {
				assert.NoError(t, err)
				assert.Equal(t, pay.ID(), id)
			}

			mockQueries.AssertExpectations(t)
		})
	}
}
