package response

import (
	"time"

	"github.com/google/uuid"

	"event-booking-api/internal/usecase/queries"
)

type TicketTypeResponse struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Price         int32     `json:"price"`
	IsRemote      bool      `json:"isRemote"`
	IncludesHotel bool      `json:"includesHotel"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

type TicketResponse struct {
	ID           uuid.UUID          `json:"id"`
	Status       string             `json:"status"`
	EnrollmentID uuid.UUID          `json:"enrollmentId"`
	TicketTypeID uuid.UUID          `json:"ticketTypeId"`
	TicketType   TicketTypeResponse `json:"TicketType"`
	CreatedAt    time.Time          `json:"createdAt"`
	UpdatedAt    time.Time          `json:"updatedAt"`
}

func FromTicketTypeView(rm *queries.TicketTypeView) *TicketTypeResponse {
	return &TicketTypeResponse{
		ID:            rm.ID,
		Name:          rm.Name,
		Price:         rm.Price,
		IsRemote:      rm.IsRemote,
		IncludesHotel: rm.IncludesHotel,
		CreatedAt:     rm.CreatedAt,
		UpdatedAt:     rm.UpdatedAt,
	}
}

func FromTicketView(rm *queries.TicketView) *TicketResponse {
	return &TicketResponse{
		ID:           rm.ID,
		Status:       rm.Status,
		EnrollmentID: rm.EnrollmentID,
		TicketTypeID: rm.TicketTypeID,
		TicketType:   *FromTicketTypeView(&rm.Type),
		CreatedAt:    rm.CreatedAt,
		UpdatedAt:    rm.UpdatedAt,
	}
}
