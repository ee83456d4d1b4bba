package queries

import (
	"context"
	"time"

	"github.com/google/uuid"

	"event-booking-api/internal/infra"
	"event-booking-api/internal/pkg/errs"
)

var (
	ErrEnrollmentNotFound = errs.New("enrollment not found")
	ErrTicketNotFound     = errs.New("ticket not found")
	ErrTicketTypeNotFound = errs.New("ticket type not found")
)

// Read models (DTO for read side)
type TicketTypeView struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Price         int32     `json:"price"`
	IsRemote      bool      `json:"is_remote"`
	IncludesHotel bool      `json:"includes_hotel"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type TicketView struct {
	ID           uuid.UUID      `json:"id"`
	Status       string         `json:"status"`
	EnrollmentID uuid.UUID      `json:"enrollment_id"`
	TicketTypeID uuid.UUID      `json:"ticket_type_id"`
	Type         TicketTypeView `json:"ticket_type"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}

type EnrollmentView struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// OwnedTicketView is a ticket joined with its type and the user owning its
// enrollment, used for ownership validation.
type OwnedTicketView struct {
	ID           uuid.UUID
	EnrollmentID uuid.UUID
	OwnerUserID  uuid.UUID
	Status       string
	TicketTypeID uuid.UUID
	TypeName     string
	Price        int32
}

type TicketQueries interface {
	ListTicketTypes(ctx context.Context) ([]*TicketTypeView, error)
	GetTicketType(ctx context.Context, typeID uuid.UUID) (*TicketTypeView, error)
	GetUserTicket(ctx context.Context, userID uuid.UUID) (*TicketView, error)
	GetTicket(ctx context.Context, ticketID uuid.UUID) (*TicketView, error)
}

type TicketReadStore interface {
	FindTypes(ctx context.Context) ([]*TicketTypeView, error)
	FindTypeByID(ctx context.Context, typeID uuid.UUID) (*TicketTypeView, error)
	FindByID(ctx context.Context, ticketID uuid.UUID) (*TicketView, error)
	FindByEnrollmentID(ctx context.Context, enrollmentID uuid.UUID) (*TicketView, error)
	FindOwnedByID(ctx context.Context, ticketID uuid.UUID) (*OwnedTicketView, error)
}

type EnrollmentReadStore interface {
	FindByUserID(ctx context.Context, userID uuid.UUID) (*EnrollmentView, error)
}

type ticketQueriesImpl struct {
	tickets     TicketReadStore
	enrollments EnrollmentReadStore
}

func NewTicketQueries(tickets TicketReadStore, enrollments EnrollmentReadStore) TicketQueries {
	return &ticketQueriesImpl{
		tickets:     tickets,
		enrollments: enrollments,
	}
}

// ListTicketTypes returns public reference data; no gating applies.
func (q *ticketQueriesImpl) ListTicketTypes(ctx context.Context) ([]*TicketTypeView, error) {
	return q.tickets.FindTypes(ctx)
}

func (q *ticketQueriesImpl) GetTicketType(ctx context.Context, typeID uuid.UUID) (*TicketTypeView, error) {
	tt, err := q.tickets.FindTypeByID(ctx, typeID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrTicketTypeNotFound
		}
		return nil, err
	}

	return tt, nil
}

// GetTicket resolves a single ticket by its id, type included.
func (q *ticketQueriesImpl) GetTicket(ctx context.Context, ticketID uuid.UUID) (*TicketView, error) {
	tk, err := q.tickets.FindByID(ctx, ticketID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrTicketNotFound
		}
		return nil, err
	}

	return tk, nil
}

func (q *ticketQueriesImpl) GetUserTicket(ctx context.Context, userID uuid.UUID) (*TicketView, error) {
	enrollment, err := q.enrollments.FindByUserID(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrEnrollmentNotFound
		}
		return nil, err
	}

	tk, err := q.tickets.FindByEnrollmentID(ctx, enrollment.ID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrTicketNotFound
		}
		return nil, err
	}

	return tk, nil
}
