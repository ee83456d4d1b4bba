package ticket

import (
	"github.com/google/uuid"

	"event-booking-api/internal/pkg/errs"
)

var (
	ErrNotEnrolled     = errs.New("user has no enrollment")
	ErrNoTicket        = errs.New("enrollment has no ticket")
	ErrPaymentRequired = errs.New("ticket does not grant access")
)

// TypeFlags carries the feature flags of a ticket type that matter for
// access decisions.
type TypeFlags struct {
	IsRemote      bool
	IncludesHotel bool
}

type TicketSnapshot struct {
	ID     uuid.UUID
	Status Status
	Type   TypeFlags
}

type EnrollmentSnapshot struct {
	ID      uuid.UUID
	Tickets []TicketSnapshot
}

// PrimaryEnrollment returns the user's first enrollment. Users with more
// than one enrollment are not supported; only the first is ever consulted.
func PrimaryEnrollment(enrollments []EnrollmentSnapshot) (EnrollmentSnapshot, bool) {
	if len(enrollments) == 0 {
		return EnrollmentSnapshot{}, false
	}
	return enrollments[0], true
}

// PrimaryTicket returns the enrollment's first ticket.
func PrimaryTicket(e EnrollmentSnapshot) (TicketSnapshot, bool) {
	if len(e.Tickets) == 0 {
		return TicketSnapshot{}, false
	}
	return e.Tickets[0], true
}

// CheckHotelAccess decides whether the holder of the given enrollments may
// use hotel features. The check ordering is part of the contract: existence
// failures (ErrNotEnrolled, ErrNoTicket) are distinct from gating failures
// (ErrPaymentRequired) and callers map them to different HTTP statuses.
func CheckHotelAccess(enrollments []EnrollmentSnapshot) error {
	enrollment, ok := PrimaryEnrollment(enrollments)
	if !ok {
		return ErrNotEnrolled
	}

	tk, ok := PrimaryTicket(enrollment)
	if !ok {
		return ErrNoTicket
	}

	if tk.Status == StatusReserved || tk.Type.IsRemote || !tk.Type.IncludesHotel {
		return ErrPaymentRequired
	}

	return nil
}
