package queries

import (
	"context"
	"time"

	"github.com/google/uuid"

	"event-booking-api/internal/infra"
	"event-booking-api/internal/pkg/errs"
)

var ErrTicketNotOwned = errs.New("ticket does not belong to user")

type PaymentView struct {
	ID             uuid.UUID `json:"id"`
	TicketID       uuid.UUID `json:"ticket_id"`
	Value          int32     `json:"value"`
	CardIssuer     string    `json:"card_issuer"`
	CardLastDigits string    `json:"card_last_digits"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type PaymentQueries interface {
	GetPayment(ctx context.Context, userID, ticketID uuid.UUID) (*PaymentView, error)
}

type PaymentReadStore interface {
	FindByTicketID(ctx context.Context, ticketID uuid.UUID) (*PaymentView, error)
}

type paymentQueriesImpl struct {
	payments PaymentReadStore
	tickets  TicketReadStore
}

func NewPaymentQueries(payments PaymentReadStore, tickets TicketReadStore) PaymentQueries {
	return &paymentQueriesImpl{
		payments: payments,
		tickets:  tickets,
	}
}

// GetPayment validates ticket ownership, then returns the stored payment.
// A ticket without a payment row is a valid state and yields (nil, nil).
func (q *paymentQueriesImpl) GetPayment(ctx context.Context, userID, ticketID uuid.UUID) (*PaymentView, error) {
	tk, err := q.tickets.FindOwnedByID(ctx, ticketID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrTicketNotFound
		}
		return nil, err
	}

	if tk.OwnerUserID != userID {
		return nil, ErrTicketNotOwned
	}

	pay, err := q.payments.FindByTicketID(ctx, ticketID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return pay, nil
}
