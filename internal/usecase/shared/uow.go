package shared

import (
	"context"

	"github.com/google/uuid"

	"event-booking-api/internal/domain/payment"
	"event-booking-api/internal/domain/ticket"
	sqlc "event-booking-api/internal/infra/sqlc/generated"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Tickets() TicketRepository
	Payments() PaymentRepository
	Users() UserRepository
	Reads() CommandReads
	DB() sqlc.DBTX
}

type CommandReads interface {
	EnrollmentByUserID(ctx context.Context, userID uuid.UUID) (*EnrollmentSnapshot, error)
	TicketWithTypeAndOwner(ctx context.Context, ticketID uuid.UUID) (*OwnedTicketSnapshot, error)
}

// Minimal snapshots for command read operations
type EnrollmentSnapshot struct {
	ID     uuid.UUID
	UserID uuid.UUID
}

type OwnedTicketSnapshot struct {
	ID           uuid.UUID
	EnrollmentID uuid.UUID
	OwnerUserID  uuid.UUID
	Status       string
	TicketTypeID uuid.UUID
	Price        int32
}

type TicketRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, tk *ticket.Ticket) (uuid.UUID, error)
	CreateType(ctx context.Context, tx sqlc.DBTX, tt *ticket.TicketType) (uuid.UUID, error)
	UpdateStatus(ctx context.Context, tx sqlc.DBTX, ticketID uuid.UUID, status ticket.Status) error
}

type PaymentRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, pay *payment.Payment) (uuid.UUID, error)
}

type UserRepository interface {
	UpdateLastLogin(ctx context.Context, tx sqlc.DBTX, userID uuid.UUID) error
	Create(ctx context.Context, tx sqlc.DBTX, params sqlc.CreateUserParams) (uuid.UUID, error)
}
