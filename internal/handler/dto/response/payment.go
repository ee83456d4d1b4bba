package response

import (
	"time"

	"github.com/google/uuid"

	"event-booking-api/internal/usecase/queries"
)

type PaymentResponse struct {
	ID             uuid.UUID `json:"id"`
	TicketID       uuid.UUID `json:"ticketId"`
	Value          int32     `json:"value"`
	CardIssuer     string    `json:"cardIssuer"`
	CardLastDigits string    `json:"cardLastDigits"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

func FromPaymentView(rm *queries.PaymentView) *PaymentResponse {
	return &PaymentResponse{
		ID:             rm.ID,
		TicketID:       rm.TicketID,
		Value:          rm.Value,
		CardIssuer:     rm.CardIssuer,
		CardLastDigits: rm.CardLastDigits,
		CreatedAt:      rm.CreatedAt,
		UpdatedAt:      rm.UpdatedAt,
	}
}
