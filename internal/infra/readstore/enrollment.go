package readstore

import (
	"context"

	"github.com/google/uuid"

	"event-booking-api/internal/domain/ticket"
	"event-booking-api/internal/infra"
	sqlc "event-booking-api/internal/infra/sqlc/generated"
	"event-booking-api/internal/pkg/pgconv"
	"event-booking-api/internal/usecase/queries"
)

type EnrollmentReadQueries interface {
	GetEnrollmentByUserID(ctx context.Context, db sqlc.DBTX, userID uuid.UUID) (sqlc.Enrollments, error)
	GetTicketGateByUserID(ctx context.Context, db sqlc.DBTX, userID uuid.UUID) ([]sqlc.GetTicketGateByUserIDRow, error)
}

type EnrollmentReadStore struct {
	queries EnrollmentReadQueries
	db      sqlc.DBTX
}

func NewEnrollmentReadStore(queries EnrollmentReadQueries, db sqlc.DBTX) *EnrollmentReadStore {
	return &EnrollmentReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *EnrollmentReadStore) FindByUserID(ctx context.Context, userID uuid.UUID) (*queries.EnrollmentView, error) {
	row, err := r.queries.GetEnrollmentByUserID(ctx, r.db, userID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("enrollment not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find enrollment by user ID", err)
	}

	return &queries.EnrollmentView{
		ID:        row.ID,
		UserID:    row.UserID,
		Name:      row.Name,
		CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
	}, nil
}

// TicketGateByUserID assembles the enrollment and ticket state consulted by
// the hotel access decision. Enrollments without tickets come back from the
// LEFT JOIN with null ticket columns and produce empty ticket slices.
func (r *EnrollmentReadStore) TicketGateByUserID(ctx context.Context, userID uuid.UUID) ([]ticket.EnrollmentSnapshot, error) {
	rows, err := r.queries.GetTicketGateByUserID(ctx, r.db, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load ticket gate state", err)
	}

	var snapshots []ticket.EnrollmentSnapshot
	index := map[uuid.UUID]int{}

	for _, row := range rows {
		pos, ok := index[row.EnrollmentID]
		if !ok {
			snapshots = append(snapshots, ticket.EnrollmentSnapshot{ID: row.EnrollmentID})
			pos = len(snapshots) - 1
			index[row.EnrollmentID] = pos
		}

		ticketID := pgconv.UUIDPtrFromPgtype(row.TicketID)
		rawStatus := pgconv.StringPtrFromPgtype(row.Status)
		if ticketID == nil || rawStatus == nil {
			continue
		}

		status, err := ticket.NewStatus(*rawStatus)
		if err != nil {
			return nil, infra.WrapRepoErr("invalid ticket status in gate row", err)
		}

		snapshots[pos].Tickets = append(snapshots[pos].Tickets, ticket.TicketSnapshot{
			ID:     *ticketID,
			Status: status,
			Type: ticket.TypeFlags{
				IsRemote:      row.IsRemote.Bool,
				IncludesHotel: row.IncludesHotel.Bool,
			},
		})
	}

	return snapshots, nil
}
