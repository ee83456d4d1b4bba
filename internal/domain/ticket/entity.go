package ticket

import (
	"time"

	"github.com/google/uuid"

	"event-booking-api/internal/pkg/errs"
)

var (
	ErrInvalidStatus = errs.New("invalid ticket status")
	ErrAlreadyPaid   = errs.New("ticket already paid")
)

// Ticket is a purchase record tied to an enrollment and a ticket type.
// It is created RESERVED and the only legal transition is RESERVED -> PAID.
type Ticket struct {
	id           uuid.UUID
	enrollmentID uuid.UUID
	ticketTypeID uuid.UUID
	status       Status
	createdAt    time.Time
	updatedAt    time.Time
}

func NewTicket(enrollmentID, ticketTypeID uuid.UUID) *Ticket {
	return &Ticket{
		id:           uuid.New(),
		enrollmentID: enrollmentID,
		ticketTypeID: ticketTypeID,
		status:       StatusReserved,
	}
}

func ReconstructTicket(
	id, enrollmentID, ticketTypeID uuid.UUID,
	status Status,
	createdAt, updatedAt time.Time,
) *Ticket {
	return &Ticket{
		id:           id,
		enrollmentID: enrollmentID,
		ticketTypeID: ticketTypeID,
		status:       status,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

// MarkPaid moves the ticket to PAID. Paying an already-paid ticket is
// rejected; the status never moves backward.
func (t *Ticket) MarkPaid() error {
	if t.status == StatusPaid {
		return ErrAlreadyPaid
	}
	t.status = StatusPaid
	return nil
}

func (t *Ticket) IsPaid() bool {
	return t.status == StatusPaid
}

func (t *Ticket) ID() uuid.UUID           { return t.id }
func (t *Ticket) EnrollmentID() uuid.UUID { return t.enrollmentID }
func (t *Ticket) TicketTypeID() uuid.UUID { return t.ticketTypeID }
func (t *Ticket) Status() Status          { return t.status }
func (t *Ticket) CreatedAt() time.Time    { return t.createdAt }
func (t *Ticket) UpdatedAt() time.Time    { return t.updatedAt }
