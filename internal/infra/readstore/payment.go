package readstore

import (
	"context"

	"github.com/google/uuid"

	"event-booking-api/internal/infra"
	sqlc "event-booking-api/internal/infra/sqlc/generated"
	"event-booking-api/internal/pkg/pgconv"
	"event-booking-api/internal/usecase/queries"
)

type PaymentReadQueries interface {
	GetPaymentByTicketID(ctx context.Context, db sqlc.DBTX, ticketID uuid.UUID) (sqlc.Payments, error)
}

type PaymentReadStore struct {
	queries PaymentReadQueries
	db      sqlc.DBTX
}

func NewPaymentReadStore(queries PaymentReadQueries, db sqlc.DBTX) *PaymentReadStore {
	return &PaymentReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *PaymentReadStore) FindByTicketID(ctx context.Context, ticketID uuid.UUID) (*queries.PaymentView, error) {
	row, err := r.queries.GetPaymentByTicketID(ctx, r.db, ticketID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("payment not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find payment by ticket ID", err)
	}

	return &queries.PaymentView{
		ID:             row.ID,
		TicketID:       row.TicketID,
		Value:          row.Value,
		CardIssuer:     row.CardIssuer,
		CardLastDigits: row.CardLastDigits,
		CreatedAt:      pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:      pgconv.TimeFromPgtype(row.UpdatedAt),
	}, nil
}
