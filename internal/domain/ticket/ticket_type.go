package ticket

import (
	"strings"

	"github.com/google/uuid"

	"event-booking-api/internal/pkg/errs"
)

var (
	ErrEmptyTypeName    = errs.New("ticket type name is required")
	ErrNonPositivePrice = errs.New("ticket type price must be positive")
)

// TicketType is the catalog entry a ticket is booked against. IsRemote and
// IncludesHotel drive the hotel access gate downstream.
type TicketType struct {
	id            uuid.UUID
	name          string
	price         int32
	isRemote      bool
	includesHotel bool
}

func NewTicketType(name string, price int32, isRemote, includesHotel bool) (*TicketType, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrEmptyTypeName
	}
	if price <= 0 {
		return nil, ErrNonPositivePrice
	}

	return &TicketType{
		id:            uuid.New(),
		name:          name,
		price:         price,
		isRemote:      isRemote,
		includesHotel: includesHotel,
	}, nil
}

func (t *TicketType) ID() uuid.UUID       { return t.id }
func (t *TicketType) Name() string        { return t.name }
func (t *TicketType) Price() int32        { return t.price }
func (t *TicketType) IsRemote() bool      { return t.isRemote }
func (t *TicketType) IncludesHotel() bool { return t.includesHotel }
