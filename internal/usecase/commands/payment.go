package commands

import (
	"context"
	"time"

	"github.com/google/uuid"

	"event-booking-api/internal/domain/payment"
	"event-booking-api/internal/domain/ticket"
	reqdto "event-booking-api/internal/handler/dto/request"
	"event-booking-api/internal/infra"
	"event-booking-api/internal/pkg/errs"
	"event-booking-api/internal/usecase/queries"
	"event-booking-api/internal/usecase/shared"
)

var (
	ErrTicketNotFound    = errs.New("ticket not found")
	ErrTicketNotOwned    = errs.New("ticket does not belong to user")
	ErrTicketAlreadyPaid = errs.New("ticket already paid")
	ErrInvalidPayment    = errs.New("invalid payment")
)

type PaymentCommands interface {
	ProcessPayment(ctx context.Context, req reqdto.ProcessPaymentRequest, userID uuid.UUID) (*queries.PaymentView, error)
}

type paymentCommandsImpl struct {
	uow      shared.UnitOfWork
	payments queries.PaymentReadStore
}

func NewPaymentCommands(uow shared.UnitOfWork, payments queries.PaymentReadStore) PaymentCommands {
	return &paymentCommandsImpl{
		uow:      uow,
		payments: payments,
	}
}

// ProcessPayment captures the ticket type's price against a RESERVED ticket
// and moves it to PAID. The payment row and the status transition commit in
// the same transaction.
func (p *paymentCommandsImpl) ProcessPayment(ctx context.Context, req reqdto.ProcessPaymentRequest, userID uuid.UUID) (*queries.PaymentView, error) {
	err := p.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		owned, err := tx.Reads().TicketWithTypeAndOwner(ctx, req.TicketID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrTicketNotFound
			}
			return err
		}

		if owned.OwnerUserID != userID {
			return ErrTicketNotOwned
		}

		status, err := ticket.NewStatus(owned.Status)
		if err != nil {
			return err
		}

		tk := ticket.ReconstructTicket(owned.ID, owned.EnrollmentID, owned.TicketTypeID, status, time.Time{}, time.Time{})
		if err := tk.MarkPaid(); err != nil {
			return errs.Mark(err, ErrTicketAlreadyPaid)
		}

		pay, err := payment.NewPayment(owned.ID, owned.Price, req.ToCardData())
		if err != nil {
			return errs.Mark(err, ErrInvalidPayment)
		}

		if _, err = tx.Payments().Create(ctx, tx.DB(), pay); err != nil {
			// 同時決済で負けた側はユニーク制約に当たる
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return errs.Mark(err, ErrTicketAlreadyPaid)
			}
			return err
		}

		return tx.Tickets().UpdateStatus(ctx, tx.DB(), tk.ID(), tk.Status())
	})
	if err != nil {
		return nil, err
	}

	pay, err := p.payments.FindByTicketID(ctx, req.TicketID)
	if err != nil {
		return nil, err
	}

	return pay, nil
}
