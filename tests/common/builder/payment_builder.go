//go:build unit || e2e

package builder

import (
	"time"

	dompayment "event-booking-api/internal/domain/payment"
	reqdto "event-booking-api/internal/handler/dto/request"
	"event-booking-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type PaymentBuilder struct {
	TicketID       uuid.UUID
	Value          int32
	CardNumber     string
	CardIssuer     string
	CardName       string
	ExpirationDate string
	CVV            string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func NewPaymentBuilder() *PaymentBuilder {
	now := time.Now()
	return &PaymentBuilder{
		TicketID:       uuid.New(),
		Value:          500,
		CardNumber:     "4111111111111111",
		CardIssuer:     "VISA",
		CardName:       "Test User",
		ExpirationDate: "12/30",
		CVV:            "123",
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

func (b *PaymentBuilder) With(mutate func(*PaymentBuilder)) *PaymentBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *PaymentBuilder) BuildDomain() (*dompayment.Payment, error) {
	return dompayment.NewPayment(b.TicketID, b.Value, b.BuildCardData())
}

func (b *PaymentBuilder) BuildCardData() dompayment.CardData {
	return dompayment.CardData{
		Number:         b.CardNumber,
		Issuer:         b.CardIssuer,
		Name:           b.CardName,
		ExpirationDate: b.ExpirationDate,
		CVV:            b.CVV,
	}
}

func (b *PaymentBuilder) BuildProcessRequestDTO() reqdto.ProcessPaymentRequest {
	return reqdto.ProcessPaymentRequest{
		TicketID: b.TicketID,
		CardData: reqdto.CardData{
			Number:         b.CardNumber,
			Issuer:         b.CardIssuer,
			Name:           b.CardName,
			ExpirationDate: b.ExpirationDate,
			CVV:            b.CVV,
		},
	}
}

func (b *PaymentBuilder) BuildView() *queries.PaymentView {
	return &queries.PaymentView{
		ID:             uuid.New(),
		TicketID:       b.TicketID,
		Value:          b.Value,
		CardIssuer:     b.CardIssuer,
		CardLastDigits: "1111",
		CreatedAt:      b.CreatedAt,
		UpdatedAt:      b.UpdatedAt,
	}
}

// Fluent builder methods
func (b *PaymentBuilder) WithTicketID(ticketID uuid.UUID) *PaymentBuilder {
	b.TicketID = ticketID
	return b
}

func (b *PaymentBuilder) WithValue(value int32) *PaymentBuilder {
	b.Value = value
	return b
}

func (b *PaymentBuilder) WithCard(number, issuer string) *PaymentBuilder {
	b.CardNumber = number
	b.CardIssuer = issuer
	return b
}
