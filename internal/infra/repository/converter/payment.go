package converter

import (
	"event-booking-api/internal/domain/payment"
	sqlc "event-booking-api/internal/infra/sqlc/generated"
)

func PaymentToCreateParams(pay *payment.Payment) sqlc.CreatePaymentParams {
	return sqlc.CreatePaymentParams{
		ID:             pay.ID(),
		TicketID:       pay.TicketID(),
		Value:          pay.Value(),
		CardIssuer:     pay.CardIssuer(),
		CardLastDigits: pay.CardLastDigits(),
	}
}
