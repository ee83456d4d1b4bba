//go:build unit || e2e

package builder

import (
	"time"

	domticket "event-booking-api/internal/domain/ticket"
	reqdto "event-booking-api/internal/handler/dto/request"
	sqlc "event-booking-api/internal/infra/sqlc/generated"
	"event-booking-api/internal/pkg/pgconv"
	"event-booking-api/internal/usecase/queries"
	"event-booking-api/internal/usecase/shared"

	"github.com/google/uuid"
)

type TicketBuilder struct {
	EnrollmentID  uuid.UUID
	OwnerUserID   uuid.UUID
	TicketTypeID  uuid.UUID
	TypeName      string
	Price         int32
	IsRemote      bool
	IncludesHotel bool
	Status        string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func NewTicketBuilder() *TicketBuilder {
	now := time.Now()
	return &TicketBuilder{
		EnrollmentID:  uuid.New(),
		OwnerUserID:   uuid.New(),
		TicketTypeID:  uuid.New(),
		TypeName:      "Full Pass",
		Price:         500,
		IsRemote:      false,
		IncludesHotel: true,
		Status:        "RESERVED",
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func (b *TicketBuilder) With(mutate func(*TicketBuilder)) *TicketBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *TicketBuilder) BuildDomain() *domticket.Ticket {
	return domticket.NewTicket(b.EnrollmentID, b.TicketTypeID)
}

func (b *TicketBuilder) BuildInfra() sqlc.Tickets {
	return sqlc.Tickets{
		ID:           uuid.New(),
		TicketTypeID: b.TicketTypeID,
		EnrollmentID: b.EnrollmentID,
		Status:       b.Status,
		CreatedAt:    pgconv.TimeToPgtype(b.CreatedAt),
		UpdatedAt:    pgconv.TimeToPgtype(b.UpdatedAt),
	}
}

func (b *TicketBuilder) BuildCreateRequestDTO() reqdto.CreateTicketRequest {
	return reqdto.CreateTicketRequest{
		TicketTypeID: b.TicketTypeID,
	}
}

func (b *TicketBuilder) BuildTypeView() *queries.TicketTypeView {
	return &queries.TicketTypeView{
		ID:            b.TicketTypeID,
		Name:          b.TypeName,
		Price:         b.Price,
		IsRemote:      b.IsRemote,
		IncludesHotel: b.IncludesHotel,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
}

func (b *TicketBuilder) BuildView() *queries.TicketView {
	return &queries.TicketView{
		ID:           uuid.New(),
		Status:       b.Status,
		EnrollmentID: b.EnrollmentID,
		TicketTypeID: b.TicketTypeID,
		Type:         *b.BuildTypeView(),
		CreatedAt:    b.CreatedAt,
		UpdatedAt:    b.UpdatedAt,
	}
}

func (b *TicketBuilder) BuildOwnedView() *queries.OwnedTicketView {
	return &queries.OwnedTicketView{
		ID:           uuid.New(),
		EnrollmentID: b.EnrollmentID,
		OwnerUserID:  b.OwnerUserID,
		Status:       b.Status,
		TicketTypeID: b.TicketTypeID,
		TypeName:     b.TypeName,
		Price:        b.Price,
	}
}

func (b *TicketBuilder) BuildOwnedSnapshot() *shared.OwnedTicketSnapshot {
	return &shared.OwnedTicketSnapshot{
		ID:           uuid.New(),
		EnrollmentID: b.EnrollmentID,
		OwnerUserID:  b.OwnerUserID,
		Status:       b.Status,
		TicketTypeID: b.TicketTypeID,
		Price:        b.Price,
	}
}

func (b *TicketBuilder) BuildAccessSnapshot() domticket.EnrollmentSnapshot {
	status, _ := domticket.NewStatus(b.Status)
	return domticket.EnrollmentSnapshot{
		ID: b.EnrollmentID,
		Tickets: []domticket.TicketSnapshot{
			{
				ID:     uuid.New(),
				Status: status,
				Type: domticket.TypeFlags{
					IsRemote:      b.IsRemote,
					IncludesHotel: b.IncludesHotel,
				},
			},
		},
	}
}

// Fluent builder methods
func (b *TicketBuilder) WithEnrollmentID(id uuid.UUID) *TicketBuilder {
	b.EnrollmentID = id
	return b
}

func (b *TicketBuilder) WithOwnerUserID(id uuid.UUID) *TicketBuilder {
	b.OwnerUserID = id
	return b
}

func (b *TicketBuilder) WithTicketTypeID(id uuid.UUID) *TicketBuilder {
	b.TicketTypeID = id
	return b
}

func (b *TicketBuilder) WithTypeName(name string) *TicketBuilder {
	b.TypeName = name
	return b
}

func (b *TicketBuilder) WithPrice(price int32) *TicketBuilder {
	b.Price = price
	return b
}

func (b *TicketBuilder) AsPaid() *TicketBuilder {
	b.Status = "PAID"
	return b
}

func (b *TicketBuilder) AsRemote() *TicketBuilder {
	b.IsRemote = true
	b.IncludesHotel = false
	return b
}

func (b *TicketBuilder) WithoutHotel() *TicketBuilder {
	b.IncludesHotel = false
	return b
}
