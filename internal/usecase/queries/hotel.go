package queries

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"event-booking-api/internal/domain/ticket"
	"event-booking-api/internal/infra"
	"event-booking-api/internal/pkg/errs"
)

var (
	ErrHotelNotFound   = errs.New("hotel not found")
	ErrPaymentRequired = errs.New("hotel access requires a paid in-person ticket")
)

type HotelView struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Image     string    `json:"image"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type RoomView struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Capacity  int32     `json:"capacity"`
	HotelID   uuid.UUID `json:"hotel_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type HotelWithRoomsView struct {
	HotelView
	Rooms []RoomView `json:"rooms"`
}

type HotelQueries interface {
	ListHotels(ctx context.Context, userID uuid.UUID) ([]*HotelView, error)
	GetHotelWithRooms(ctx context.Context, hotelID, userID uuid.UUID) (*HotelWithRoomsView, error)
}

type HotelReadStore interface {
	FindAll(ctx context.Context) ([]*HotelView, error)
	FindByIDWithRooms(ctx context.Context, id uuid.UUID) (*HotelWithRoomsView, error)
}

// AccessReadStore loads the enrollment/ticket state feeding the hotel
// access decision.
type AccessReadStore interface {
	TicketGateByUserID(ctx context.Context, userID uuid.UUID) ([]ticket.EnrollmentSnapshot, error)
}

type hotelQueriesImpl struct {
	hotels HotelReadStore
	access AccessReadStore
}

func NewHotelQueries(hotels HotelReadStore, access AccessReadStore) HotelQueries {
	return &hotelQueriesImpl{
		hotels: hotels,
		access: access,
	}
}

func (q *hotelQueriesImpl) ListHotels(ctx context.Context, userID uuid.UUID) ([]*HotelView, error) {
	if err := q.checkAccess(ctx, userID); err != nil {
		return nil, err
	}

	return q.hotels.FindAll(ctx)
}

func (q *hotelQueriesImpl) GetHotelWithRooms(ctx context.Context, hotelID, userID uuid.UUID) (*HotelWithRoomsView, error) {
	if err := q.checkAccess(ctx, userID); err != nil {
		return nil, err
	}

	hotel, err := q.hotels.FindByIDWithRooms(ctx, hotelID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrHotelNotFound
		}
		return nil, err
	}

	return hotel, nil
}

// checkAccess translates the domain access decision into query-level
// sentinels so handlers can map them to statuses uniformly.
func (q *hotelQueriesImpl) checkAccess(ctx context.Context, userID uuid.UUID) error {
	enrollments, err := q.access.TicketGateByUserID(ctx, userID)
	if err != nil {
		return err
	}

	switch err := ticket.CheckHotelAccess(enrollments); {
	case err == nil:
		return nil
	case errors.Is(err, ticket.ErrNotEnrolled):
		return errs.Mark(err, ErrEnrollmentNotFound)
	case errors.Is(err, ticket.ErrNoTicket):
		return errs.Mark(err, ErrTicketNotFound)
	default:
		return errs.Mark(err, ErrPaymentRequired)
	}
}
