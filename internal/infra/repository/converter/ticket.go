package converter

import (
	"event-booking-api/internal/domain/ticket"
	sqlc "event-booking-api/internal/infra/sqlc/generated"
)

func TicketToCreateParams(tk *ticket.Ticket) sqlc.CreateTicketParams {
	return sqlc.CreateTicketParams{
		ID:           tk.ID(),
		TicketTypeID: tk.TicketTypeID(),
		EnrollmentID: tk.EnrollmentID(),
		Status:       tk.Status().String(),
	}
}

func TicketTypeToCreateParams(tt *ticket.TicketType) sqlc.CreateTicketTypeParams {
	return sqlc.CreateTicketTypeParams{
		ID:            tt.ID(),
		Name:          tt.Name(),
		Price:         tt.Price(),
		IsRemote:      tt.IsRemote(),
		IncludesHotel: tt.IncludesHotel(),
	}
}
