package request

import (
	"github.com/google/uuid"

	"event-booking-api/internal/domain/payment"
)

type CardData struct {
	Number         string `json:"number" binding:"required"`
	Issuer         string `json:"issuer" binding:"required"`
	Name           string `json:"name"`
	ExpirationDate string `json:"expirationDate"`
	CVV            string `json:"cvv"`
}

type ProcessPaymentRequest struct {
	TicketID uuid.UUID `json:"ticketId" binding:"required"`
	CardData CardData  `json:"cardData" binding:"required"`
}

func (r *ProcessPaymentRequest) ToCardData() payment.CardData {
	return payment.CardData{
		Number:         r.CardData.Number,
		Issuer:         r.CardData.Issuer,
		Name:           r.CardData.Name,
		ExpirationDate: r.CardData.ExpirationDate,
		CVV:            r.CardData.CVV,
	}
}
