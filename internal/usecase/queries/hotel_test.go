//go:build unit

package queries_test

import (
	"context"
	"testing"

	"event-booking-api/internal/domain/ticket"
	"event-booking-api/internal/infra"
	"event-booking-api/internal/usecase/queries"
	"event-booking-api/tests/common/builder"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeHotelReadStore struct {
	hotels    []*queries.HotelView
	hotelsErr error
	withRooms *queries.HotelWithRoomsView
	byIDErr   error
}

func (f *fakeHotelReadStore) FindAll(_ context.Context) ([]*queries.HotelView, error) {
	return f.hotels, f.hotelsErr
}

func (f *fakeHotelReadStore) FindByIDWithRooms(_ context.Context, _ uuid.UUID) (*queries.HotelWithRoomsView, error) {
	return f.withRooms, f.byIDErr
}

type fakeAccessReadStore struct {
	enrollments []ticket.EnrollmentSnapshot
	err         error
}

func (f *fakeAccessReadStore) TicketGateByUserID(_ context.Context, _ uuid.UUID) ([]ticket.EnrollmentSnapshot, error) {
	return f.enrollments, f.err
}

func paidHotelAccess() []ticket.EnrollmentSnapshot {
	return []ticket.EnrollmentSnapshot{builder.NewTicketBuilder().AsPaid().BuildAccessSnapshot()}
}

func TestListHotels(t *testing.T) {
	userID := uuid.New()
	hotelView := builder.NewHotelBuilder().BuildView()

	tests := []struct {
		name        string
		enrollments []ticket.EnrollmentSnapshot
		errIs       error
	}{
		{
			name:        "paid in-person hotel ticket passes the gate",
			enrollments: paidHotelAccess(),
		},
		{
			name:  "no enrollment",
			errIs: queries.ErrEnrollmentNotFound,
		},
		{
			name:        "enrollment without ticket",
			enrollments: []ticket.EnrollmentSnapshot{{ID: uuid.New()}},
			errIs:       queries.ErrTicketNotFound,
		},
		{
			name:        "reserved ticket requires payment",
			enrollments: []ticket.EnrollmentSnapshot{builder.NewTicketBuilder().BuildAccessSnapshot()},
			errIs:       queries.ErrPaymentRequired,
		},
		{
			name:        "remote ticket never grants hotel access",
			enrollments: []ticket.EnrollmentSnapshot{builder.NewTicketBuilder().AsPaid().AsRemote().BuildAccessSnapshot()},
			errIs:       queries.ErrPaymentRequired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := queries.NewHotelQueries(
				&fakeHotelReadStore{hotels: []*queries.HotelView{hotelView}},
				&fakeAccessReadStore{enrollments: tt.enrollments},
			)

			got, err := q.ListHotels(context.Background(), userID)

			if tt.errIs != nil {
				require.ErrorIs(t, err, tt.errIs)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, []*queries.HotelView{hotelView}, got)
		})
	}
}

func TestGetHotelWithRooms(t *testing.T) {
	userID := uuid.New()

	t.Run("success", func(t *testing.T) {
		view := builder.NewHotelBuilder().BuildViewWithRooms()
		q := queries.NewHotelQueries(
			&fakeHotelReadStore{withRooms: view},
			&fakeAccessReadStore{enrollments: paidHotelAccess()},
		)

		got, err := q.GetHotelWithRooms(context.Background(), view.ID, userID)
		require.NoError(t, err)
		assert.Equal(t, view, got)
	})

	t.Run("unknown hotel", func(t *testing.T) {
		q := queries.NewHotelQueries(
			&fakeHotelReadStore{byIDErr: infra.WrapRepoErr("hotel not found", pgx.ErrNoRows, infra.KindNotFound)},
			&fakeAccessReadStore{enrollments: paidHotelAccess()},
		)

		got, err := q.GetHotelWithRooms(context.Background(), uuid.New(), userID)
		require.ErrorIs(t, err, queries.ErrHotelNotFound)
		assert.Nil(t, got)
	})

	t.Run("gate failure blocks the lookup", func(t *testing.T) {
		q := queries.NewHotelQueries(
			&fakeHotelReadStore{withRooms: builder.NewHotelBuilder().BuildViewWithRooms()},
			&fakeAccessReadStore{},
		)

		got, err := q.GetHotelWithRooms(context.Background(), uuid.New(), userID)
		require.ErrorIs(t, err, queries.ErrEnrollmentNotFound)
		assert.Nil(t, got)
	})

	t.Run("gate read failure is passed through", func(t *testing.T) {
		q := queries.NewHotelQueries(
			&fakeHotelReadStore{},
			&fakeAccessReadStore{err: assert.AnError},
		)

		got, err := q.GetHotelWithRooms(context.Background(), uuid.New(), userID)
		require.ErrorIs(t, err, assert.AnError)
		assert.Nil(t, got)
	})
}
