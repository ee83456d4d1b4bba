//go:build unit

package commands_test

import (
	"context"

	"github.com/google/uuid"

	"event-booking-api/internal/domain/payment"
	"event-booking-api/internal/domain/ticket"
	sqlc "event-booking-api/internal/infra/sqlc/generated"
	"event-booking-api/internal/usecase/queries"
	"event-booking-api/internal/usecase/shared"
)

// Hand-rolled stand-ins for the unit of work surface. The command flows only
// need deterministic returns and call recording, not expectation matching.

type fakeCommandReads struct {
	enrollment    *shared.EnrollmentSnapshot
	enrollmentErr error
	owned         *shared.OwnedTicketSnapshot
	ownedErr      error
}

func (f *fakeCommandReads) EnrollmentByUserID(_ context.Context, _ uuid.UUID) (*shared.EnrollmentSnapshot, error) {
	return f.enrollment, f.enrollmentErr
}

func (f *fakeCommandReads) TicketWithTypeAndOwner(_ context.Context, _ uuid.UUID) (*shared.OwnedTicketSnapshot, error) {
	return f.owned, f.ownedErr
}

type fakeTicketRepo struct {
	createErr     error
	created       []*ticket.Ticket
	typeCreateErr error
	createdTypes  []*ticket.TicketType
	updateErr     error
	updated       []ticket.Status
}

func (f *fakeTicketRepo) Create(_ context.Context, _ sqlc.DBTX, tk *ticket.Ticket) (uuid.UUID, error) {
	if f.createErr != nil {
		return uuid.Nil, f.createErr
	}
	f.created = append(f.created, tk)
	return tk.ID(), nil
}

func (f *fakeTicketRepo) CreateType(_ context.Context, _ sqlc.DBTX, tt *ticket.TicketType) (uuid.UUID, error) {
	if f.typeCreateErr != nil {
		return uuid.Nil, f.typeCreateErr
	}
	f.createdTypes = append(f.createdTypes, tt)
	return tt.ID(), nil
}

func (f *fakeTicketRepo) UpdateStatus(_ context.Context, _ sqlc.DBTX, _ uuid.UUID, status ticket.Status) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.updated = append(f.updated, status)
	return nil
}

type fakePaymentRepo struct {
	createErr error
	created   []*payment.Payment
}

func (f *fakePaymentRepo) Create(_ context.Context, _ sqlc.DBTX, pay *payment.Payment) (uuid.UUID, error) {
	if f.createErr != nil {
		return uuid.Nil, f.createErr
	}
	f.created = append(f.created, pay)
	return pay.ID(), nil
}

type fakeUserRepo struct {
	lastLoginCalls int
	lastLoginErr   error
	createErr      error
}

func (f *fakeUserRepo) UpdateLastLogin(_ context.Context, _ sqlc.DBTX, _ uuid.UUID) error {
	f.lastLoginCalls++
	return f.lastLoginErr
}

func (f *fakeUserRepo) Create(_ context.Context, _ sqlc.DBTX, _ sqlc.CreateUserParams) (uuid.UUID, error) {
	if f.createErr != nil {
		return uuid.Nil, f.createErr
	}
	return uuid.New(), nil
}

type fakeTx struct {
	tickets  *fakeTicketRepo
	payments *fakePaymentRepo
	users    *fakeUserRepo
	reads    *fakeCommandReads
}

func (f *fakeTx) Tickets() shared.TicketRepository   { return f.tickets }
func (f *fakeTx) Payments() shared.PaymentRepository { return f.payments }
func (f *fakeTx) Users() shared.UserRepository       { return f.users }
func (f *fakeTx) Reads() shared.CommandReads         { return f.reads }
func (f *fakeTx) DB() sqlc.DBTX                      { return nil }

type fakeUoW struct {
	tx        *fakeTx
	withinErr error
}

func newFakeUoW() *fakeUoW {
	return &fakeUoW{
		tx: &fakeTx{
			tickets:  &fakeTicketRepo{},
			payments: &fakePaymentRepo{},
			users:    &fakeUserRepo{},
			reads:    &fakeCommandReads{},
		},
	}
}

func (f *fakeUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	if f.withinErr != nil {
		return f.withinErr
	}
	return fn(ctx, f.tx)
}

func (f *fakeUoW) WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	return fn(ctx, nil)
}

func (f *fakeUoW) CommandReads() shared.CommandReads { return f.tx.reads }

type fakePaymentReadStore struct {
	view *queries.PaymentView
	err  error
}

func (f *fakePaymentReadStore) FindByTicketID(_ context.Context, _ uuid.UUID) (*queries.PaymentView, error) {
	return f.view, f.err
}
