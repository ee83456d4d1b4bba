package commands

import (
	"context"

	"github.com/google/uuid"

	"event-booking-api/internal/domain/ticket"
	reqdto "event-booking-api/internal/handler/dto/request"
	"event-booking-api/internal/infra"
	"event-booking-api/internal/pkg/errs"
	"event-booking-api/internal/usecase/queries"
	"event-booking-api/internal/usecase/shared"
)

var (
	ErrTicketTypeRequired = errs.New("ticket type id is required")
	ErrEnrollmentNotFound = errs.New("enrollment not found")
	ErrTicketTypeNotFound = errs.New("ticket type not found")
	ErrInvalidTicketType  = errs.New("invalid ticket type")
)

type TicketCommands interface {
	CreateTicket(ctx context.Context, req reqdto.CreateTicketRequest, userID uuid.UUID) (*queries.TicketView, error)
	CreateTicketType(ctx context.Context, req reqdto.CreateTicketTypeRequest) (*queries.TicketTypeView, error)
}

type ticketCommandsImpl struct {
	uow           shared.UnitOfWork
	ticketQueries queries.TicketQueries
}

func NewTicketCommands(uow shared.UnitOfWork, ticketQueries queries.TicketQueries) TicketCommands {
	return &ticketCommandsImpl{
		uow:           uow,
		ticketQueries: ticketQueries,
	}
}

// CreateTicket books a ticket of the requested type against the user's
// enrollment. The enrollment must exist before the request body is judged,
// so a missing enrollment always reports 404 even when the body is bad.
func (t *ticketCommandsImpl) CreateTicket(ctx context.Context, req reqdto.CreateTicketRequest, userID uuid.UUID) (*queries.TicketView, error) {
	enrollment, err := t.uow.CommandReads().EnrollmentByUserID(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrEnrollmentNotFound
		}
		return nil, err
	}

	if req.TicketTypeID == uuid.Nil {
		return nil, ErrTicketTypeRequired
	}

	newTicket := ticket.NewTicket(enrollment.ID, req.TicketTypeID)

	err = t.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		_, createErr := tx.Tickets().Create(ctx, tx.DB(), newTicket)
		return createErr
	})
	if err != nil {
		if infra.IsKind(err, infra.KindForeignKeyViolated) {
			return nil, errs.Mark(err, ErrTicketTypeNotFound)
		}
		return nil, err
	}

	return t.ticketQueries.GetTicket(ctx, newTicket.ID())
}

// CreateTicketType registers a new ticket type. Admin only; the route is
// gated before this is reached.
func (t *ticketCommandsImpl) CreateTicketType(ctx context.Context, req reqdto.CreateTicketTypeRequest) (*queries.TicketTypeView, error) {
	newType, err := ticket.NewTicketType(req.Name, req.Price, req.IsRemote, req.IncludesHotel)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidTicketType)
	}

	err = t.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		_, createErr := tx.Tickets().CreateType(ctx, tx.DB(), newType)
		return createErr
	})
	if err != nil {
		return nil, err
	}

	return t.ticketQueries.GetTicketType(ctx, newType.ID())
}
