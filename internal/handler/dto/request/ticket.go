package request

import (
	"github.com/google/uuid"
)

// TicketTypeID is validated in the usecase so a missing or zero value maps
// to the dedicated "ticket type required" error instead of a generic 400.
type CreateTicketRequest struct {
	TicketTypeID uuid.UUID `json:"ticketTypeId"`
}

type CreateTicketTypeRequest struct {
	Name          string `json:"name" binding:"required"`
	Price         int32  `json:"price" binding:"required,gt=0"`
	IsRemote      bool   `json:"isRemote"`
	IncludesHotel bool   `json:"includesHotel"`
}
