package repository

import (
	"context"

	"github.com/google/uuid"

	"event-booking-api/internal/domain/payment"
	"event-booking-api/internal/infra"
	"event-booking-api/internal/infra/repository/converter"
	sqlc "event-booking-api/internal/infra/sqlc/generated"
)

type PaymentWriteQueries interface {
	CreatePayment(ctx context.Context, db sqlc.DBTX, arg sqlc.CreatePaymentParams) (uuid.UUID, error)
}

type PaymentRepository struct {
	queries PaymentWriteQueries
}

func NewPaymentRepository(queries PaymentWriteQueries) *PaymentRepository {
	return &PaymentRepository{
		queries: queries,
	}
}

func (r *PaymentRepository) Create(ctx context.Context, tx sqlc.DBTX, pay *payment.Payment) (uuid.UUID, error) {
	params := converter.PaymentToCreateParams(pay)

	resultID, err := r.queries.CreatePayment(ctx, tx, params)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create payment", err, classifyKind(err))
	}

	return resultID, nil
}
