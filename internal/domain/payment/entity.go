package payment

import (
	"time"

	"github.com/google/uuid"

	"event-booking-api/internal/pkg/errs"
)

var ErrNonPositiveValue = errs.New("payment value must be positive")

// CardData is the card input as supplied by the client. No gateway sits
// behind this service, so the number is never validated or charged; only
// the issuer and the masked digits are persisted.
type CardData struct {
	Number         string
	Issuer         string
	Name           string
	ExpirationDate string
	CVV            string
}

// LastDigits returns the final four characters of the card number. Inputs
// shorter than four characters are returned whole.
func (c CardData) LastDigits() string {
	if len(c.Number) <= 4 {
		return c.Number
	}
	return c.Number[len(c.Number)-4:]
}

// Payment records funds captured against a ticket. Value is fixed to the
// ticket type's price at creation time.
type Payment struct {
	id             uuid.UUID
	ticketID       uuid.UUID
	value          int32
	cardIssuer     string
	cardLastDigits string
	createdAt      time.Time
	updatedAt      time.Time
}

func NewPayment(ticketID uuid.UUID, value int32, card CardData) (*Payment, error) {
	if value <= 0 {
		return nil, ErrNonPositiveValue
	}

	return &Payment{
		id:             uuid.New(),
		ticketID:       ticketID,
		value:          value,
		cardIssuer:     card.Issuer,
		cardLastDigits: card.LastDigits(),
	}, nil
}

func ReconstructPayment(
	id, ticketID uuid.UUID,
	value int32,
	cardIssuer, cardLastDigits string,
	createdAt, updatedAt time.Time,
) *Payment {
	return &Payment{
		id:             id,
		ticketID:       ticketID,
		value:          value,
		cardIssuer:     cardIssuer,
		cardLastDigits: cardLastDigits,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}
}

func (p *Payment) ID() uuid.UUID          { return p.id }
func (p *Payment) TicketID() uuid.UUID    { return p.ticketID }
func (p *Payment) Value() int32           { return p.value }
func (p *Payment) CardIssuer() string     { return p.cardIssuer }
func (p *Payment) CardLastDigits() string { return p.cardLastDigits }
func (p *Payment) CreatedAt() time.Time   { return p.createdAt }
func (p *Payment) UpdatedAt() time.Time   { return p.updatedAt }
