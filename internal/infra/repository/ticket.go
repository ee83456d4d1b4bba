package repository

import (
	"context"

	"github.com/google/uuid"

	"event-booking-api/internal/domain/ticket"
	"event-booking-api/internal/infra"
	"event-booking-api/internal/infra/repository/converter"
	sqlc "event-booking-api/internal/infra/sqlc/generated"
)

type TicketWriteQueries interface {
	CreateTicket(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateTicketParams) (uuid.UUID, error)
	CreateTicketType(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateTicketTypeParams) (uuid.UUID, error)
	UpdateTicketStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateTicketStatusParams) error
}

type TicketRepository struct {
	queries TicketWriteQueries
}

func NewTicketRepository(queries TicketWriteQueries) *TicketRepository {
	return &TicketRepository{
		queries: queries,
	}
}

func (r *TicketRepository) Create(ctx context.Context, tx sqlc.DBTX, tk *ticket.Ticket) (uuid.UUID, error) {
	params := converter.TicketToCreateParams(tk)

	resultID, err := r.queries.CreateTicket(ctx, tx, params)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create ticket", err, classifyKind(err))
	}

	return resultID, nil
}

func (r *TicketRepository) CreateType(ctx context.Context, tx sqlc.DBTX, tt *ticket.TicketType) (uuid.UUID, error) {
	params := converter.TicketTypeToCreateParams(tt)

	resultID, err := r.queries.CreateTicketType(ctx, tx, params)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create ticket type", err, classifyKind(err))
	}

	return resultID, nil
}

func (r *TicketRepository) UpdateStatus(ctx context.Context, tx sqlc.DBTX, ticketID uuid.UUID, status ticket.Status) error {
	params := sqlc.UpdateTicketStatusParams{
		ID:     ticketID,
		Status: status.String(),
	}

	if err := r.queries.UpdateTicketStatus(ctx, tx, params); err != nil {
		return infra.WrapRepoErr("failed to update ticket status", err)
	}

	return nil
}
